// Package mini implements the interactive prompt loop that walks a user from
// a URL to a finished download, stream or edit.
package mini

import (
	"context"
	"os"

	"github.com/loutube-cli/loutube/editor"
	"github.com/loutube-cli/loutube/media"
	"github.com/loutube-cli/loutube/runner"
	"github.com/loutube-cli/loutube/util"
	"github.com/samber/lo"
)

type Options struct {
	// URL skips the url prompt when non-empty.
	URL string

	// EditFile enters edit mode directly for a local file.
	EditFile string
}

type mini struct {
	run runner.Runner

	state         state
	statesHistory util.Stack[state]

	intent media.Intent

	// cachedFormats keeps probe results per url so going back and forth
	// between states never probes twice.
	cachedFormats map[string]*media.FormatList

	editOp   editor.Operation
	editDest string
}

func newMini() *mini {
	return &mini{
		run:           runner.New(),
		statesHistory: util.Stack[state]{},
		cachedFormats: make(map[string]*media.FormatList),
	}
}

func (m *mini) previousState() {
	if m.statesHistory.Len() > 0 {
		m.setState(m.statesHistory.Pop())
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	// executeState never makes sense to go "back" into.
	if !lo.Contains([]state{executeState}, m.state) {
		m.statesHistory.Push(m.state)
	}

	m.setState(s)
}

// formats returns the cached probe result for the current url, if any.
func (m *mini) formats() *media.FormatList {
	return m.cachedFormats[m.intent.URL]
}

func Run(options *Options) error {
	m := newMini()

	switch {
	case options.EditFile != "":
		m.intent.Mode = media.ModeEdit
		m.intent.URL = options.EditFile
		m.state = editSelectState
	case options.URL != "":
		m.intent.URL = options.URL
		m.state = modeSelectState
	default:
		m.state = urlInputState
	}

	for {
		if err := m.handleState(context.Background()); err != nil {
			return err
		}
	}
}

func (m *mini) handleState(ctx context.Context) error {
	switch m.state {
	case urlInputState:
		return m.handleURLInputState()
	case modeSelectState:
		return m.handleModeSelectState()
	case formatSelectState:
		return m.handleFormatSelectState(ctx)
	case editSelectState:
		return m.handleEditSelectState()
	case confirmState:
		return m.handleConfirmState()
	case executeState:
		return m.handleExecuteState(ctx)
	case quitState:
		os.Exit(0)
	}

	return nil
}
