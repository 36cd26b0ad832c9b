package editor

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// timestampPattern accepts SS, MM:SS and HH:MM:SS forms with an optional
// fractional part, matching what the transcoder's -ss/-to flags accept.
var timestampPattern = regexp.MustCompile(`^(\d+:)?(\d{1,2}:)?\d{1,2}(\.\d+)?$`)

// parseSeconds converts a timestamp into seconds for ordering checks.
func parseSeconds(ts string) float64 {
	var total float64
	for _, part := range strings.Split(ts, ":") {
		v, _ := strconv.ParseFloat(part, 64)
		total = total*60 + v
	}
	return total
}

// Trim cuts the file to the [Start, End] window without re-encoding.
// An empty End keeps everything until the end of the file.
type Trim struct {
	Start, End string
}

func (t Trim) String() string {
	if t.End == "" {
		return fmt.Sprintf("Trim from %s", t.Start)
	}
	return fmt.Sprintf("Trim %s - %s", t.Start, t.End)
}

func (t Trim) Validate() error {
	if !timestampPattern.MatchString(t.Start) {
		return fmt.Errorf("edit: invalid start timestamp %q", t.Start)
	}
	if t.End != "" {
		if !timestampPattern.MatchString(t.End) {
			return fmt.Errorf("edit: invalid end timestamp %q", t.End)
		}
		if parseSeconds(t.End) <= parseSeconds(t.Start) {
			return fmt.Errorf("edit: end %q is not after start %q", t.End, t.Start)
		}
	}
	return nil
}

func (t Trim) seekFlags() []string {
	flags := []string{"-ss", t.Start}
	if t.End != "" {
		flags = append(flags, "-to", t.End)
	}
	return flags
}

func (t Trim) flags() []string {
	return []string{"-c", "copy"}
}

// Transcode re-encodes the streams with the given codecs. An empty codec
// leaves that stream untouched.
type Transcode struct {
	VideoCodec, AudioCodec string
}

func (t Transcode) String() string {
	return fmt.Sprintf("Transcode to %s/%s", orCopy(t.VideoCodec), orCopy(t.AudioCodec))
}

func (t Transcode) Validate() error {
	if t.VideoCodec == "" && t.AudioCodec == "" {
		return fmt.Errorf("edit: transcode needs at least one target codec")
	}
	return nil
}

func (t Transcode) flags() []string {
	return []string{"-c:v", orCopy(t.VideoCodec), "-c:a", orCopy(t.AudioCodec)}
}

func orCopy(codec string) string {
	if codec == "" {
		return "copy"
	}
	return codec
}

// Convert remuxes the streams into the container implied by the destination
// extension, copying every stream verbatim.
type Convert struct{}

func (Convert) String() string {
	return "Convert container"
}

func (Convert) Validate() error {
	return nil
}

func (Convert) flags() []string {
	return []string{"-c", "copy"}
}

// GIF renders the file as an animated GIF at the given frame rate, scaled to
// Width pixels wide with the aspect ratio preserved.
type GIF struct {
	FPS, Width int
}

func (g GIF) String() string {
	return fmt.Sprintf("GIF %dfps %dpx", g.FPS, g.Width)
}

func (g GIF) Validate() error {
	if g.FPS <= 0 {
		return fmt.Errorf("edit: gif frame rate must be positive, got %d", g.FPS)
	}
	if g.Width <= 0 {
		return fmt.Errorf("edit: gif width must be positive, got %d", g.Width)
	}
	return nil
}

func (g GIF) flags() []string {
	filter := fmt.Sprintf("fps=%d,scale=%d:-1:flags=lanczos", g.FPS, g.Width)
	return []string{"-vf", filter, "-loop", "0"}
}

// Letterbox pads the video to exactly Width x Height, keeping the original
// aspect ratio and centering the picture on black bars.
type Letterbox struct {
	Width, Height int
}

func (l Letterbox) String() string {
	return fmt.Sprintf("Letterbox %dx%d", l.Width, l.Height)
}

func (l Letterbox) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("edit: letterbox dimensions must be positive, got %dx%d", l.Width, l.Height)
	}
	return nil
}

func (l Letterbox) flags() []string {
	filter := fmt.Sprintf(
		"scale=%d:%d:force_original_aspect_ratio=decrease,pad=%d:%d:(ow-iw)/2:(oh-ih)/2",
		l.Width, l.Height, l.Width, l.Height,
	)
	return []string{"-vf", filter}
}
