package mini

import (
	"testing"

	"github.com/loutube-cli/loutube/filesystem"
	"github.com/loutube-cli/loutube/icon"
	"github.com/loutube-cli/loutube/media"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFormatInput(t *testing.T) {
	Convey("Given the format selection input pattern", t, func() {
		Convey("Accepted inputs", func() {
			for _, in := range []string{"", "137", "303+251", "bestvideo", "v4.2-dash"} {
				So(formatInputPattern.MatchString(in), ShouldBeTrue)
			}
		})

		Convey("Rejected inputs", func() {
			for _, in := range []string{"137+251+140", "a b", "137+", "+251"} {
				So(formatInputPattern.MatchString(in), ShouldBeFalse)
			}
		})
	})
}

func TestStateStack(t *testing.T) {
	Convey("Given the prompt state machine", t, func() {
		m := newMini()
		m.setState(urlInputState)

		Convey("newState records the previous state", func() {
			m.newState(modeSelectState)
			m.newState(formatSelectState)

			m.previousState()
			So(m.state, ShouldEqual, modeSelectState)

			m.previousState()
			So(m.state, ShouldEqual, urlInputState)
		})

		Convey("Re-entering the current state pushes nothing", func() {
			m.newState(urlInputState)
			So(m.statesHistory.Len(), ShouldEqual, 0)
		})

		Convey("previousState on an empty stack is a no-op", func() {
			m.previousState()
			So(m.state, ShouldEqual, urlInputState)
		})

		Convey("restart clears every selection", func() {
			m.intent = media.Intent{URL: "https://example.com", Mode: media.ModeAudio}
			m.newState(modeSelectState)

			m.restart()

			So(m.state, ShouldEqual, urlInputState)
			So(m.intent, ShouldResemble, media.Intent{})
			So(m.statesHistory.Len(), ShouldEqual, 0)
		})
	})
}

func TestEditHelpers(t *testing.T) {
	Convey("Given the edit flow helpers", t, func() {
		filesystem.SetMemMapFs()

		Convey("The suggested extension follows the operation", func() {
			So(extensionFor(editGIF, "clip.mp4"), ShouldEqual, ".gif")
			So(extensionFor(editTrim, "clip.mkv"), ShouldEqual, ".mkv")
			So(extensionFor(editConvert, "clip"), ShouldEqual, ".mp4")
		})

		Convey("outputFolder resolves a file to its directory", func() {
			So(outputFolder("/videos/clip.mp4"), ShouldEqual, "/videos")
		})

		Convey("outputFolder keeps an existing directory as is", func() {
			So(filesystem.API().MkdirAll("/videos", 0755), ShouldBeNil)
			So(outputFolder("/videos"), ShouldEqual, "/videos")
		})
	})
}

func TestModeIcon(t *testing.T) {
	Convey("Every mode maps to its own summary icon", t, func() {
		So(modeIcon(media.ModeVideo), ShouldEqual, icon.Video)
		So(modeIcon(media.ModeVideoOnly), ShouldEqual, icon.Video)
		So(modeIcon(media.ModeAudio), ShouldEqual, icon.Audio)
		So(modeIcon(media.ModeStream), ShouldEqual, icon.Stream)
		So(modeIcon(media.ModeLive), ShouldEqual, icon.Stream)
		So(modeIcon(media.ModeEdit), ShouldEqual, icon.Edit)
	})
}
