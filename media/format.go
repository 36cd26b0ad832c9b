// Package media defines the domain types exchanged between the prober, the command builder and the interactive flow.
package media

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Kind classifies the streams a format carries.
type Kind int

const (
	KindVideo Kind = iota + 1
	KindAudio
	KindVideoAudio
)

func (k Kind) String() string {
	switch k {
	case KindVideo:
		return "video"
	case KindAudio:
		return "audio"
	case KindVideoAudio:
		return "video+audio"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the kind as its display name.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// FormatRecord describes one selectable stream variant offered by the extractor.
// Records are immutable; a fresh sequence is produced per probe and discarded
// once the interactive selection completes.
type FormatRecord struct {
	// ID is the extractor-assigned token identifying this variant.
	ID string

	// Extension is the container extension reported by the extractor.
	Extension string

	// Resolution is the WxH (or "audio only") column; empty when unreported.
	Resolution string

	Kind Kind

	// Size is the approximate filesize column; empty when unreported.
	Size string

	// Note carries the trailing free-form column (codec hints, "is live", ...).
	Note string
}

func (f *FormatRecord) String() string {
	parts := []string{f.ID, f.Extension}
	if f.Resolution != "" {
		parts = append(parts, f.Resolution)
	}
	if f.Size != "" {
		parts = append(parts, f.Size)
	}
	parts = append(parts, f.Kind.String())
	return strings.Join(parts, "  ")
}

// FormatList is the ordered sequence of records produced by one probe call.
type FormatList struct {
	Records []*FormatRecord

	// Live reports whether the source was detected as an ongoing livestream.
	Live bool
}

// Empty reports whether the source offered no selectable formats.
// An empty list is a legitimate probe outcome; callers fall back to the
// configured default selector.
func (l *FormatList) Empty() bool {
	return len(l.Records) == 0
}

// Has reports whether a format id is present in the probed sequence.
func (l *FormatList) Has(id string) bool {
	return lo.ContainsBy(l.Records, func(r *FormatRecord) bool {
		return r.ID == id
	})
}

// Validate checks every chosen format id against the probed sequence.
// A missing id yields ErrInvalidSelection wrapped with the offending token.
func (l *FormatList) Validate(ids []string) error {
	for _, id := range ids {
		if !l.Has(id) {
			return fmt.Errorf("%w: format id %q is not offered by this source", ErrInvalidSelection, id)
		}
	}
	return nil
}

// Selector renders chosen format ids into the extractor's format selector
// expression: "id0+id1" for two ids, the single id for one.
func Selector(ids []string) string {
	return strings.Join(ids, "+")
}
