package config

import (
	"testing"

	"github.com/loutube-cli/loutube/filesystem"
	"github.com/loutube-cli/loutube/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Audio extraction defaults to mp3", func() {
			_ = Setup()
			So(viper.GetString(key.DownloadAudioFormat), ShouldEqual, "mp3")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("download.output.template")
			So(result, ShouldEqual, "download_output_template")
		})
	})
}
