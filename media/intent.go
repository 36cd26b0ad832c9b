package media

import (
	"errors"
	"fmt"
	"net/url"
)

// ErrInvalidSelection signals user input that does not match an offered choice.
// It is recoverable: the interactive flow re-prompts instead of aborting.
var ErrInvalidSelection = errors.New("invalid selection")

// Mode enumerates the supported user intents.
type Mode int

const (
	ModeVideo Mode = iota + 1
	ModeAudio
	ModeVideoOnly
	ModeStream
	ModeEdit
	ModeLive
)

func (m Mode) String() string {
	switch m {
	case ModeVideo:
		return "video"
	case ModeAudio:
		return "audio"
	case ModeVideoOnly:
		return "video-only"
	case ModeStream:
		return "stream"
	case ModeEdit:
		return "edit"
	case ModeLive:
		return "live"
	default:
		return "unknown"
	}
}

// Modes lists every mode in menu order.
func Modes() []Mode {
	return []Mode{ModeVideo, ModeAudio, ModeVideoOnly, ModeStream, ModeEdit, ModeLive}
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	for _, mode := range Modes() {
		if mode.String() == s {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// Intent captures one resolved user request. It is constructed once per
// invocation and passed by value to the command builder.
type Intent struct {
	URL  string
	Mode Mode

	// FormatIDs holds 0-2 chosen format ids, video first.
	FormatIDs []string

	// OutputDir overrides the configured destination directory when non-empty.
	OutputDir string

	// Title overrides the extractor's auto-generated filename when non-empty.
	Title string
}

// Validate checks structural invariants and the chosen format ids against the
// last probed list. A nil list skips id validation (default selector path).
func (i Intent) Validate(formats *FormatList) error {
	if len(i.FormatIDs) > 2 {
		return fmt.Errorf("%w: at most two format ids may be combined", ErrInvalidSelection)
	}

	if formats != nil {
		return formats.Validate(i.FormatIDs)
	}

	if len(i.FormatIDs) > 0 {
		return fmt.Errorf("%w: format ids chosen without a probed format list", ErrInvalidSelection)
	}

	return nil
}

// Playlist reports whether the intent URL addresses a playlist, mirroring the
// extractor's own detection of the "list" query parameter.
func (i Intent) Playlist() bool {
	parsed, err := url.Parse(i.URL)
	if err != nil {
		return false
	}
	return parsed.Query().Has("list")
}
