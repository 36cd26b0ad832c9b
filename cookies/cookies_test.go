package cookies

import (
	"context"
	"testing"

	"github.com/loutube-cli/loutube/filesystem"
	"github.com/loutube-cli/loutube/key"
	"github.com/loutube-cli/loutube/runner"
	"github.com/samber/lo"
	convey "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

// stubRunner accepts only the browsers listed in ok and records every probe.
type stubRunner struct {
	ok     map[string]bool
	probed []string
}

func (s *stubRunner) Run(_ context.Context, _ runner.Command) error {
	return nil
}

func (s *stubRunner) Output(_ context.Context, command runner.Command) (string, error) {
	browser := command.Args[1]
	s.probed = append(s.probed, browser)
	if s.ok[browser] {
		return "2026.01.01", nil
	}
	return "", &runner.ExternalToolError{Name: command.Name, ExitCode: 1}
}

func (s *stubRunner) Pipe(_ context.Context, _, _ runner.Command) error {
	return nil
}

func TestDetect(t *testing.T) {
	convey.Convey("Given cookie detection", t, func() {
		filesystem.SetMemMapFs()
		viper.Reset()
		viper.Set(key.CookiesDetect, true)

		Reset()

		convey.Convey("An explicit browser setting wins without probing", func() {
			run := &stubRunner{}
			viper.Set(key.CookiesFromBrowser, "firefox")

			detected := Detect(context.Background(), run)

			convey.So(detected.MustGet(), convey.ShouldEqual, "firefox")
			convey.So(run.probed, convey.ShouldBeEmpty)
		})

		convey.Convey("Disabled detection yields no browser", func() {
			run := &stubRunner{}
			viper.Set(key.CookiesDetect, false)

			convey.So(Detect(context.Background(), run).IsAbsent(), convey.ShouldBeTrue)
			convey.So(run.probed, convey.ShouldBeEmpty)
		})

		convey.Convey("The first accepted candidate wins", func() {
			order := Candidates()
			convey.So(order, convey.ShouldNotBeEmpty)

			second := order[lo.Min([]int{1, len(order) - 1})]
			run := &stubRunner{ok: map[string]bool{second: true}}

			detected := Detect(context.Background(), run)

			convey.So(detected.MustGet(), convey.ShouldEqual, second)
			convey.So(run.probed[len(run.probed)-1], convey.ShouldEqual, second)
		})

		convey.Convey("Failures across the whole chain yield no browser", func() {
			run := &stubRunner{}

			convey.So(Detect(context.Background(), run).IsAbsent(), convey.ShouldBeTrue)
			convey.So(run.probed, convey.ShouldResemble, Candidates())
		})

		convey.Convey("A successful probe is cached and not repeated", func() {
			run := &stubRunner{ok: map[string]bool{Candidates()[0]: true}}

			first := Detect(context.Background(), run)
			second := Detect(context.Background(), run)

			convey.So(second.MustGet(), convey.ShouldEqual, first.MustGet())
			convey.So(run.probed, convey.ShouldHaveLength, 1)
		})

		convey.Convey("Reset forgets the cached detection and is idempotent", func() {
			run := &stubRunner{ok: map[string]bool{Candidates()[0]: true}}
			Detect(context.Background(), run)

			convey.So(Reset(), convey.ShouldBeNil)
			convey.So(Reset(), convey.ShouldBeNil)

			Detect(context.Background(), run)
			convey.So(run.probed, convey.ShouldHaveLength, 2)
		})
	})
}
