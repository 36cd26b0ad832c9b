package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/loutube-cli/loutube/media"
)

// timeLayout is the timestamp format used in the history file.
const timeLayout = time.RFC3339

// fieldCount is the number of tab-separated fields per line.
const fieldCount = 4

// Entry is one completed operation.
type Entry struct {
	Timestamp time.Time
	Mode      media.Mode
	URL       string
	Output    string
}

// NewEntry stamps a completed intent with the current time.
func NewEntry(intent media.Intent, output string) Entry {
	return Entry{
		Timestamp: time.Now(),
		Mode:      intent.Mode,
		URL:       intent.URL,
		Output:    output,
	}
}

func (e Entry) String() string {
	return fmt.Sprintf("%s  %s  %s", e.Timestamp.Format("2006-01-02 15:04"), e.Mode, e.URL)
}

// encode renders the entry as one tab-separated line in the order timestamp,
// url, output path, mode. Tabs inside fields are replaced with spaces so the
// line stays parseable.
func (e Entry) encode() string {
	fields := []string{
		e.Timestamp.Format(timeLayout),
		e.URL,
		e.Output,
		e.Mode.String(),
	}
	for i, field := range fields {
		fields[i] = strings.ReplaceAll(field, "\t", " ")
	}
	return strings.Join(fields, "\t")
}

// parseEntry reads one history line back into an Entry.
func parseEntry(line string) (Entry, error) {
	fields := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
	if len(fields) != fieldCount {
		return Entry{}, fmt.Errorf("history: expected %d fields, got %d", fieldCount, len(fields))
	}

	timestamp, err := time.Parse(timeLayout, fields[0])
	if err != nil {
		return Entry{}, fmt.Errorf("history: bad timestamp: %w", err)
	}

	if fields[1] == "" {
		return Entry{}, fmt.Errorf("history: entry has no url")
	}

	mode, err := media.ParseMode(fields[3])
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		Timestamp: timestamp,
		Mode:      mode,
		URL:       fields[1],
		Output:    fields[2],
	}, nil
}
