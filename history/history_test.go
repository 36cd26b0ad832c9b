package history

import (
	"strings"
	"testing"
	"time"

	"github.com/loutube-cli/loutube/filesystem"
	"github.com/loutube-cli/loutube/key"
	"github.com/loutube-cli/loutube/media"
	"github.com/loutube-cli/loutube/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func sampleEntry(url string) Entry {
	return Entry{
		Timestamp: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		Mode:      media.ModeVideo,
		URL:       url,
		Output:    "/home/user/Videos/loutube",
	}
}

func TestHistory(t *testing.T) {
	Convey("Given the operations history", t, func() {
		filesystem.SetMemMapFs()
		viper.Reset()
		viper.Set(key.HistoryRecentLimit, 10)

		Convey("A missing file is an empty history", func() {
			entries, err := All()
			So(err, ShouldBeNil)
			So(entries, ShouldBeEmpty)
		})

		Convey("Appended entries come back in order", func() {
			So(Append(sampleEntry("https://example.com/a")), ShouldBeNil)
			So(Append(sampleEntry("https://example.com/b")), ShouldBeNil)

			entries, err := All()
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 2)
			So(entries[0].URL, ShouldEqual, "https://example.com/a")
			So(entries[1].URL, ShouldEqual, "https://example.com/b")
			So(entries[0].Mode, ShouldEqual, media.ModeVideo)
		})

		Convey("Recent lists newest first and honors the limit", func() {
			for _, url := range []string{"u1", "u2", "u3"} {
				So(Append(sampleEntry(url)), ShouldBeNil)
			}

			entries, err := Recent(2)
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 2)
			So(entries[0].URL, ShouldEqual, "u3")
			So(entries[1].URL, ShouldEqual, "u2")
		})

		Convey("Recent without an explicit limit uses the configured one", func() {
			viper.Set(key.HistoryRecentLimit, 1)
			So(Append(sampleEntry("u1")), ShouldBeNil)
			So(Append(sampleEntry("u2")), ShouldBeNil)

			entries, err := Recent(0)
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 1)
			So(entries[0].URL, ShouldEqual, "u2")
		})

		Convey("Unparseable lines are skipped", func() {
			So(Append(sampleEntry("good")), ShouldBeNil)
			So(filesystem.API().WriteFile(
				where.History(),
				[]byte(sampleEntry("kept").encode()+"\ngarbage line\n\t\t\t\n"),
				0644,
			), ShouldBeNil)

			entries, err := All()
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 1)
			So(entries[0].URL, ShouldEqual, "kept")
		})

		Convey("Lines are written as timestamp, url, output path, mode", func() {
			fields := strings.Split(sampleEntry("https://example.com/w").encode(), "\t")
			So(fields, ShouldHaveLength, 4)
			So(fields[0], ShouldEqual, "2026-03-14T09:26:53Z")
			So(fields[1], ShouldEqual, "https://example.com/w")
			So(fields[2], ShouldEqual, "/home/user/Videos/loutube")
			So(fields[3], ShouldEqual, "video")
		})

		Convey("Entries survive an encode and parse round trip", func() {
			original := sampleEntry("https://example.com/watch?v=x")
			parsed, err := parseEntry(original.encode())
			So(err, ShouldBeNil)
			So(parsed, ShouldResemble, original)
		})

		Convey("Tabs inside fields do not break the line format", func() {
			entry := sampleEntry("https://example.com")
			entry.Output = "dir\twith\ttabs"

			parsed, err := parseEntry(entry.encode())
			So(err, ShouldBeNil)
			So(parsed.Output, ShouldEqual, "dir with tabs")
		})

		Convey("Clear removes everything and is idempotent", func() {
			So(Append(sampleEntry("u")), ShouldBeNil)
			So(Clear(), ShouldBeNil)
			So(Clear(), ShouldBeNil)

			entries, err := All()
			So(err, ShouldBeNil)
			So(entries, ShouldBeEmpty)
		})
	})
}
