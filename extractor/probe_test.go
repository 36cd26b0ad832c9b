package extractor

import (
	"testing"

	"github.com/loutube-cli/loutube/media"
	. "github.com/smartystreets/goconvey/convey"
)

const listFormatsOutput = `[youtube] Extracting URL: https://example.com/watch?v=x
[info] Available formats for x:
ID  EXT   RESOLUTION FPS CH | FILESIZE    TBR PROTO | VCODEC          VBR ACODEC      ABR ASR MORE INFO
------------------------------------------------------------------------------------------------------
sb2 mhtml 48x27        0.0  |                 mhtml | images                                  storyboard
251 webm  audio only      2 |   3.50MiB   124k https | audio only          opus       124k 48k medium
303 webm  1920x1080   60    | 197.63MiB  1155k https | vp9            1155k video only          1080p60
18  mp4   640x360     30  2 |  25.00MiB   500k https | avc1.42001E     400k mp4a.40.2  96k 44k 360p
`

const liveOutput = `ID EXT RESOLUTION FPS CH | FILESIZE TBR PROTO | VCODEC VBR ACODEC ABR ASR MORE INFO
300 mp4 1280x720    60   |          2000k m3u8 | avc1.4d4020 2000k mp4a.40.2 128k 44k is live
`

func TestParseFormats(t *testing.T) {
	Convey("Given well-formed list-formats output", t, func() {
		list := ParseFormats(listFormatsOutput)

		Convey("Each data line yields one record, noise lines are skipped", func() {
			So(len(list.Records), ShouldEqual, 3)
		})

		Convey("Columns map onto the record fields", func() {
			audio := list.Records[0]
			So(audio.ID, ShouldEqual, "251")
			So(audio.Extension, ShouldEqual, "webm")
			So(audio.Resolution, ShouldEqual, "audio only")
			So(audio.Kind, ShouldEqual, media.KindAudio)
			So(audio.Size, ShouldEqual, "3.50MiB")

			video := list.Records[1]
			So(video.ID, ShouldEqual, "303")
			So(video.Resolution, ShouldEqual, "1920x1080")
			So(video.Kind, ShouldEqual, media.KindVideo)

			combined := list.Records[2]
			So(combined.ID, ShouldEqual, "18")
			So(combined.Kind, ShouldEqual, media.KindVideoAudio)
		})

		Convey("Parsing is idempotent", func() {
			again := ParseFormats(listFormatsOutput)
			So(again, ShouldResemble, list)
		})

		Convey("The source is not live", func() {
			So(list.Live, ShouldBeFalse)
		})
	})

	Convey("Given output with no data lines", t, func() {
		list := ParseFormats("[youtube] Extracting URL\nnothing tabular here\n")

		Convey("The list is empty, not an error", func() {
			So(list.Empty(), ShouldBeTrue)
		})
	})

	Convey("Given empty output", t, func() {
		So(ParseFormats("").Empty(), ShouldBeTrue)
	})

	Convey("Given a livestream table", t, func() {
		list := ParseFormats(liveOutput)

		Convey("The live marker is surfaced", func() {
			So(list.Live, ShouldBeTrue)
			So(len(list.Records), ShouldEqual, 1)
		})
	})

	Convey("Box-drawing pipes parse the same as ASCII pipes", t, func() {
		boxed := "251 webm  audio only      2 │   3.50MiB   124k https │ audio only opus 124k 48k medium\n"
		list := ParseFormats(boxed)
		So(len(list.Records), ShouldEqual, 1)
		So(list.Records[0].ID, ShouldEqual, "251")
	})
}
