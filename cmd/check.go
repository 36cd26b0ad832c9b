package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/loutube-cli/loutube/editor"
	"github.com/loutube-cli/loutube/extractor"
	"github.com/loutube-cli/loutube/icon"
	"github.com/loutube-cli/loutube/runner"
	"github.com/loutube-cli/loutube/style"
)

// CheckDependencies reports the external collaborator binaries missing from
// PATH. A missing binary only degrades the menu paths that need it, so every
// one is a warning: the per-operation check gates the affected paths later.
// The extractor gets the full suggestion box since most paths need it.
func CheckDependencies() {
	if err := runner.Resolve(extractor.Binary()); err != nil {
		printMissingDependencyError(err)
	}

	for _, binary := range []string{editor.Binary(), extractor.PlayerBinary()} {
		if err := runner.Resolve(binary); err != nil {
			fmt.Printf("%s %s\n", icon.Get(icon.Fail), style.Faint(err.Error()))
		}
	}
}

func printMissingDependencyError(err error) {
	var missing *runner.MissingDependencyError
	if !errors.As(err, &missing) {
		handleErr(err)
		return
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The required dependency '%s' was not found in your PATH.", missing.Binary))

	suggestion := ""
	if missing.Hint != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(missing.Hint))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
