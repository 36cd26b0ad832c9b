package extractor

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/loutube-cli/loutube/key"
	"github.com/loutube-cli/loutube/media"
	"github.com/loutube-cli/loutube/runner"
	"github.com/loutube-cli/loutube/util"
	"github.com/loutube-cli/loutube/where"
	"github.com/spf13/viper"
)

// BuildArgs assembles the deterministic extractor argument vector for an
// intent. The chosen format ids are validated against the last probed list
// first; an absent id yields media.ErrInvalidSelection and no command.
//
// Argument order is fixed: format selector, mode-specific flags, SponsorBlock,
// cookies, playlist policy, output target, URL.
func BuildArgs(intent media.Intent, formats *media.FormatList, cookies string) ([]string, error) {
	if intent.Mode == media.ModeEdit {
		return nil, fmt.Errorf("edit intents are served by the transcoder, not the extractor")
	}

	if err := intent.Validate(formats); err != nil {
		return nil, err
	}

	var args []string

	args = append(args, "-f", formatSelector(intent))

	switch intent.Mode {
	case media.ModeVideo:
		args = append(args, "--merge-output-format", viper.GetString(key.DownloadMergeFormat))
	case media.ModeAudio:
		args = append(args,
			"--extract-audio",
			"--audio-format", viper.GetString(key.DownloadAudioFormat),
			"--audio-quality", viper.GetString(key.DownloadAudioQuality),
		)
	}

	// Live playback and downloads of live sources honor the same
	// from-start preference.
	live := intent.Mode == media.ModeLive || (formats != nil && formats.Live)
	if live && viper.GetBool(key.StreamLiveFromStart) {
		args = append(args, "--live-from-start")
	}

	// Live sources carry no SponsorBlock annotations to strip.
	if viper.GetBool(key.SponsorblockEnable) && !live {
		categories := viper.GetStringSlice(key.SponsorblockCategories)
		if len(categories) > 0 {
			args = append(args, "--sponsorblock-remove", strings.Join(categories, ","))
		}
	}

	if cookies != "" {
		args = append(args, "--cookies-from-browser", cookies)
	}

	switch intent.Mode {
	case media.ModeStream, media.ModeLive:
		// Streaming pipes to the player: no playlist expansion, no output path.
		args = append(args, "-o", "-")
	default:
		if intent.Playlist() {
			args = append(args, "--yes-playlist")
		} else {
			args = append(args, "--no-playlist")
		}
		args = append(args, "-o", outputTemplate(intent))
	}

	return append(args, intent.URL), nil
}

// PlayerBinary returns the configured media player binary name.
func PlayerBinary() string {
	return viper.GetString(key.StreamPlayer)
}

// PlayerCommand is the consumer side of the stream pipe: the configured media
// player reading from stdin. Live playback gets a deeper network cache to ride
// out feed jitter.
func PlayerCommand(live bool) runner.Command {
	caching := viper.GetInt(key.StreamNetworkCaching)
	if live {
		caching *= 2
	}

	return runner.Command{
		Name: viper.GetString(key.StreamPlayer),
		Args: []string{
			"--play-and-exit",
			"--network-caching", strconv.Itoa(caching),
			"-",
		},
	}
}

// formatSelector renders the chosen ids into the extractor's format
// expression, falling back to the configured defaults when none were chosen.
func formatSelector(intent media.Intent) string {
	if len(intent.FormatIDs) > 0 {
		// Audio extraction works from whatever streams the ids name; a lone
		// video-only id still yields an audio track via the transcoder.
		return media.Selector(intent.FormatIDs)
	}

	switch intent.Mode {
	case media.ModeAudio:
		return "bestaudio/best"
	case media.ModeVideoOnly:
		return "bestvideo"
	case media.ModeStream, media.ModeLive:
		return viper.GetString(key.StreamDefaultFormat)
	default:
		return viper.GetString(key.DownloadFormat)
	}
}

// outputTemplate resolves the destination directory and filename template for
// download intents.
func outputTemplate(intent media.Intent) string {
	dir := intent.OutputDir
	if dir == "" {
		dir = defaultDir(intent.Mode)
	}

	name := viper.GetString(key.DownloadOutputTemplate)
	if intent.Title != "" {
		name = util.SanitizeFilename(intent.Title) + ".%(ext)s"
	}

	switch intent.Mode {
	case media.ModeVideoOnly:
		name = strings.TrimSuffix(name, ".%(ext)s") + "_video_only.%(ext)s"
	case media.ModeAudio:
		if intent.Playlist() && intent.Title == "" {
			// Playlists get track numbering.
			name = "%(playlist_index)02d - %(title)s.%(ext)s"
		}
	}

	return filepath.Join(dir, name)
}

// OutputDir resolves the directory downloads for this intent land in.
func OutputDir(intent media.Intent) string {
	if intent.OutputDir != "" {
		return intent.OutputDir
	}
	return defaultDir(intent.Mode)
}

func defaultDir(mode media.Mode) string {
	if mode == media.ModeAudio {
		if dir := viper.GetString(key.DownloadAudioDir); dir != "" {
			return dir
		}
		return where.Music()
	}

	if dir := viper.GetString(key.DownloadVideoDir); dir != "" {
		return dir
	}
	return where.Videos()
}
