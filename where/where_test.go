package where

import (
	"strings"
	"testing"

	"github.com/loutube-cli/loutube/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("History() lives under Config()", func() {
			So(strings.HasPrefix(History(), Config()), ShouldBeTrue)
		})

		Convey("Videos() and Music() resolve without creating directories", func() {
			So(Videos(), ShouldNotBeEmpty)
			So(Music(), ShouldNotBeEmpty)
			So(Videos(), ShouldNotEqual, Music())
		})
	})
}
