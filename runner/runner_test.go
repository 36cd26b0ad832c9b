package runner

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTailBuffer(t *testing.T) {
	Convey("Given a tail buffer", t, func() {
		tail := newTailBuffer(3)

		Convey("It keeps only the trailing lines", func() {
			for _, line := range []string{"one", "two", "three", "four"} {
				_, err := tail.Write([]byte(line + "\n"))
				So(err, ShouldBeNil)
			}
			So(tail.String(), ShouldEqual, "two\nthree\nfour")
		})

		Convey("It collapses carriage-return progress rewrites", func() {
			_, _ = tail.Write([]byte("10%\r50%\r100%\n"))
			So(tail.String(), ShouldEqual, "100%")
		})

		Convey("It drops blank lines", func() {
			_, _ = tail.Write([]byte("\n\nreal output\n\n"))
			So(tail.String(), ShouldEqual, "real output")
		})

		Convey("It includes an unterminated trailing line", func() {
			_, _ = tail.Write([]byte("done\nno newline"))
			So(tail.String(), ShouldEqual, "done\nno newline")
		})
	})
}

func TestErrors(t *testing.T) {
	Convey("ExternalToolError", t, func() {
		err := &ExternalToolError{Name: "yt-dlp", ExitCode: 1, Tail: "ERROR: no video"}
		So(err.Error(), ShouldContainSubstring, "yt-dlp")
		So(err.Error(), ShouldContainSubstring, "status 1")
		So(err.Error(), ShouldContainSubstring, "no video")
	})

	Convey("MissingDependencyError", t, func() {
		err := &MissingDependencyError{Binary: "ffmpeg", Hint: "sudo apt install ffmpeg"}
		So(err.Error(), ShouldContainSubstring, "ffmpeg")
		So(err.Error(), ShouldContainSubstring, "try:")

		bare := &MissingDependencyError{Binary: "ffmpeg"}
		So(bare.Error(), ShouldNotContainSubstring, "try:")
	})
}

func TestResolve(t *testing.T) {
	Convey("Resolve", t, func() {
		Convey("A nonexistent binary yields MissingDependencyError", func() {
			err := Resolve("definitely-not-a-real-binary-1b2f")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "not found in PATH")
		})
	})
}

func TestPipe(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh and cat")
	}

	Convey("Given a producer piped into a consumer", t, func() {
		run := New()

		Convey("Both sides exiting cleanly yields no error", func() {
			err := run.Pipe(context.Background(),
				Command{Name: "sh", Args: []string{"-c", "echo payload"}},
				Command{Name: "cat"},
			)
			So(err, ShouldBeNil)
		})

		Convey("A producer that fails on its own is surfaced", func() {
			err := run.Pipe(context.Background(),
				Command{Name: "sh", Args: []string{"-c", "echo oops >&2; exit 3"}},
				Command{Name: "cat"},
			)
			So(err, ShouldNotBeNil)

			var toolErr *ExternalToolError
			So(errors.As(err, &toolErr), ShouldBeTrue)
			So(toolErr.Name, ShouldEqual, "sh")
			So(toolErr.ExitCode, ShouldEqual, 3)
			So(toolErr.Tail, ShouldContainSubstring, "oops")
		})

		Convey("A failing consumer takes precedence", func() {
			err := run.Pipe(context.Background(),
				Command{Name: "sh", Args: []string{"-c", "echo payload"}},
				Command{Name: "sh", Args: []string{"-c", "exit 2"}},
			)

			var toolErr *ExternalToolError
			So(errors.As(err, &toolErr), ShouldBeTrue)
			So(toolErr.ExitCode, ShouldEqual, 2)
		})
	})
}

func TestCommandString(t *testing.T) {
	Convey("Command renders as a space-joined invocation", t, func() {
		cmd := Command{Name: "yt-dlp", Args: []string{"-f", "303+251"}}
		So(cmd.String(), ShouldEqual, "yt-dlp -f 303+251")
		So(strings.HasPrefix(cmd.String(), cmd.Name), ShouldBeTrue)
	})
}
