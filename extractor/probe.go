package extractor

import (
	"regexp"
	"strings"

	"github.com/loutube-cli/loutube/media"
)

var resolutionPattern = regexp.MustCompile(`^\d+x\d+$`)

// ParseFormats converts the extractor's list-formats table into a FormatList.
//
// Data lines use pipe-separated sections:
//
//	ID EXT RESOLUTION FPS CH | FILESIZE TBR PROTO | VCODEC VBR ACODEC ABR ASR MORE
//
// Lines that do not match this shape (headers, separators, progress noise)
// are skipped, never an error. Parsing is pure and idempotent.
func ParseFormats(output string) *media.FormatList {
	list := &media.FormatList{}

	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(strings.ToLower(line), "is live") {
			list.Live = true
		}

		record, ok := parseLine(line)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(record.Note), "is live") {
			list.Live = true
		}
		list.Records = append(list.Records, record)
	}

	return list
}

func parseLine(line string) (*media.FormatRecord, bool) {
	// Recent extractor builds draw the table with box-drawing pipes.
	line = strings.ReplaceAll(line, "│", "|")

	if strings.TrimSpace(line) == "" || !strings.Contains(line, "|") {
		return nil, false
	}

	sections := strings.Split(line, "|")
	if len(sections) < 3 {
		return nil, false
	}

	head := strings.Fields(sections[0])
	if len(head) < 2 {
		return nil, false
	}

	id, ext := head[0], head[1]

	// Header and separator rows.
	if strings.EqualFold(id, "ID") || strings.HasPrefix(id, "-") {
		return nil, false
	}

	// Storyboard pseudo-formats are not selectable media.
	if ext == "mhtml" {
		return nil, false
	}

	record := &media.FormatRecord{ID: id, Extension: ext}

	if len(head) >= 4 && head[2] == "audio" && head[3] == "only" {
		record.Resolution = "audio only"
	} else if len(head) >= 3 && resolutionPattern.MatchString(head[2]) {
		record.Resolution = head[2]
	}

	if size := strings.Fields(sections[1]); len(size) > 0 && strings.Contains(size[0], "iB") {
		record.Size = strings.TrimPrefix(size[0], "~")
	}

	tail := strings.TrimSpace(sections[len(sections)-1])
	record.Kind = classify(record.Resolution, tail)
	record.Note = tail

	return record, true
}

// classify derives the stream kind from the resolution column and the codec section.
func classify(resolution, codecs string) media.Kind {
	switch {
	case resolution == "audio only" || strings.HasPrefix(codecs, "audio only"):
		return media.KindAudio
	case strings.Contains(codecs, "video only"):
		return media.KindVideo
	default:
		return media.KindVideoAudio
	}
}
