package media

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func sampleList() *FormatList {
	return &FormatList{
		Records: []*FormatRecord{
			{ID: "303", Extension: "webm", Resolution: "1920x1080", Kind: KindVideo},
			{ID: "251", Extension: "webm", Resolution: "audio only", Kind: KindAudio},
		},
	}
}

func TestFormatList(t *testing.T) {
	Convey("Given a probed format list", t, func() {
		list := sampleList()

		Convey("Has finds present ids", func() {
			So(list.Has("303"), ShouldBeTrue)
			So(list.Has("251"), ShouldBeTrue)
			So(list.Has("137"), ShouldBeFalse)
		})

		Convey("Validate accepts offered ids", func() {
			So(list.Validate([]string{"303", "251"}), ShouldBeNil)
		})

		Convey("Validate rejects absent ids with ErrInvalidSelection", func() {
			err := list.Validate([]string{"303", "140"})
			So(err, ShouldNotBeNil)
			So(errors.Is(err, ErrInvalidSelection), ShouldBeTrue)
		})

		Convey("Empty reflects record count", func() {
			So(list.Empty(), ShouldBeFalse)
			So((&FormatList{}).Empty(), ShouldBeTrue)
		})
	})
}

func TestSelector(t *testing.T) {
	Convey("Selector", t, func() {
		So(Selector([]string{"303", "251"}), ShouldEqual, "303+251")
		So(Selector([]string{"303"}), ShouldEqual, "303")
		So(Selector(nil), ShouldEqual, "")
	})
}

func TestIntentValidate(t *testing.T) {
	Convey("Given an intent", t, func() {
		list := sampleList()

		Convey("Two offered ids validate", func() {
			intent := Intent{URL: "https://example.com/watch?v=x", Mode: ModeVideo, FormatIDs: []string{"303", "251"}}
			So(intent.Validate(list), ShouldBeNil)
		})

		Convey("Three ids are rejected", func() {
			intent := Intent{FormatIDs: []string{"1", "2", "3"}}
			So(errors.Is(intent.Validate(list), ErrInvalidSelection), ShouldBeTrue)
		})

		Convey("Ids without a probe are rejected", func() {
			intent := Intent{FormatIDs: []string{"303"}}
			So(errors.Is(intent.Validate(nil), ErrInvalidSelection), ShouldBeTrue)
		})

		Convey("No ids and no probe is the default selector path", func() {
			So(Intent{}.Validate(nil), ShouldBeNil)
		})
	})
}

func TestIntentPlaylist(t *testing.T) {
	Convey("Playlist detection", t, func() {
		So(Intent{URL: "https://youtube.com/watch?v=a&list=PL123"}.Playlist(), ShouldBeTrue)
		So(Intent{URL: "https://youtube.com/watch?v=a"}.Playlist(), ShouldBeFalse)
		So(Intent{URL: "://bad"}.Playlist(), ShouldBeFalse)
	})
}
