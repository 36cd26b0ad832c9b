package runner

import (
	"strings"
	"sync"
)

// tailBuffer is an io.Writer that retains only the last few complete lines
// written through it. It is safe for concurrent writes since stdout and
// stderr of a child process may share one buffer.
type tailBuffer struct {
	mu      sync.Mutex
	limit   int
	lines   []string
	partial strings.Builder
}

func newTailBuffer(limit int) *tailBuffer {
	return &tailBuffer{limit: limit}
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, r := range string(p) {
		if r == '\n' {
			t.pushLine(t.partial.String())
			t.partial.Reset()
			continue
		}
		t.partial.WriteRune(r)
	}
	return len(p), nil
}

func (t *tailBuffer) pushLine(line string) {
	// Progress meters rewrite the same line with carriage returns; keep the
	// final rendition only.
	if idx := strings.LastIndexByte(line, '\r'); idx >= 0 {
		line = line[idx+1:]
	}
	if strings.TrimSpace(line) == "" {
		return
	}

	t.lines = append(t.lines, line)
	if len(t.lines) > t.limit {
		t.lines = t.lines[len(t.lines)-t.limit:]
	}
}

func (t *tailBuffer) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	lines := t.lines
	if rest := t.partial.String(); strings.TrimSpace(rest) != "" {
		lines = append(append([]string{}, lines...), rest)
		if len(lines) > t.limit {
			lines = lines[len(lines)-t.limit:]
		}
	}
	return strings.Join(lines, "\n")
}
