package cmd

import (
	"testing"

	"github.com/loutube-cli/loutube/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestCheckDependencies(t *testing.T) {
	Convey("Missing binaries warn without aborting startup", t, func() {
		viper.Reset()
		viper.Set(key.ExtractorBinary, "no-such-extractor-1b2f")
		viper.Set(key.TranscoderBinary, "no-such-transcoder-1b2f")
		viper.Set(key.StreamPlayer, "no-such-player-1b2f")

		// Reaching the assertion means none of the checks exited the process,
		// so the menu (and the transcoder-only edit path) stays reachable.
		CheckDependencies()
		So(viper.GetString(key.ExtractorBinary), ShouldEqual, "no-such-extractor-1b2f")
	})
}
