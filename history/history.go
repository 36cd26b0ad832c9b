// Package history provides the append-only log of completed operations.
// Each successful download, stream or edit adds exactly one line, so the
// recent list doubles as a replay menu.
package history

import (
	"bufio"
	"os"

	"github.com/loutube-cli/loutube/filesystem"
	"github.com/loutube-cli/loutube/key"
	"github.com/loutube-cli/loutube/util"
	"github.com/loutube-cli/loutube/where"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Append records one completed operation at the end of the history file.
func Append(entry Entry) error {
	file, err := filesystem.API().OpenFile(
		where.History(),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return err
	}
	defer util.Ignore(file.Close)

	_, err = file.WriteString(entry.encode() + "\n")
	return err
}

// All returns every parseable entry in file order, oldest first.
// A missing history file is an empty history, not an error.
func All() ([]Entry, error) {
	exists, err := filesystem.API().Exists(where.History())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}

	file, err := filesystem.API().Open(where.History())
	if err != nil {
		return nil, err
	}
	defer util.Ignore(file.Close)

	var entries []Entry
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		entry, err := parseEntry(scanner.Text())
		if err != nil {
			// Hand-edited or truncated lines are skipped, not fatal.
			continue
		}
		entries = append(entries, entry)
	}

	return entries, scanner.Err()
}

// Recent returns up to limit entries, newest first. A non-positive limit
// falls back to the configured history.recent_limit.
func Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = viper.GetInt(key.HistoryRecentLimit)
	}

	entries, err := All()
	if err != nil {
		return nil, err
	}

	entries = lo.Reverse(entries)
	if len(entries) > limit {
		entries = entries[:limit]
	}

	return entries, nil
}

// Clear removes the history file entirely.
func Clear() error {
	exists, err := filesystem.API().Exists(where.History())
	if err != nil || !exists {
		return err
	}
	return filesystem.API().Remove(where.History())
}
