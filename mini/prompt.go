package mini

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/loutube-cli/loutube/icon"
	"github.com/loutube-cli/loutube/style"
	"github.com/loutube-cli/loutube/util"
)

// bind is a menu action that is not a list item, e.g. quitting.
type bind struct {
	name string
}

func (b *bind) String() string {
	return b.name
}

func (b *bind) eq(other *bind) bool {
	return b == other
}

var (
	quit       = &bind{"Quit"}
	back       = &bind{"Back"}
	again      = &bind{"Run again"}
	start      = &bind{"Start"}
	openFolder = &bind{"Open folder"}
)

// title prints a styled section header.
func title(text string) {
	fmt.Println(style.Title(text))
}

// fail prints a non-fatal error message and lets the caller re-prompt.
func fail(text string) {
	fmt.Printf("%s %s\n", icon.Get(icon.Fail), style.Fg(style.ErrorColor)(text))
}

// progress prints an ephemeral status line and returns its eraser.
func progress(text string) (erase func()) {
	return util.PrintErasable(fmt.Sprintf("%s %s", icon.Get(icon.Progress), text))
}

// menu presents list items followed by the given binds (quit is always
// appended last). Exactly one of the returned bind and item is meaningful.
func menu[T fmt.Stringer](message string, items []T, binds ...*bind) (*bind, T, error) {
	var none T

	binds = append(binds, quit)

	options := make([]string, 0, len(items)+len(binds))
	for _, item := range items {
		options = append(options, item.String())
	}
	for _, b := range binds {
		options = append(options, b.String())
	}

	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: menuPageSize(len(options)),
	}

	var answer survey.OptionAnswer
	if err := survey.AskOne(prompt, &answer); err != nil {
		return nil, none, err
	}

	if answer.Index < len(items) {
		return nil, items[answer.Index], nil
	}

	return binds[answer.Index-len(items)], none, nil
}

func menuPageSize(options int) int {
	if _, height, err := util.TerminalSize(); err == nil && height-2 < options {
		return height - 2
	}
	return options
}

type input struct {
	value string
}

// getInput reads a line, re-prompting until the validator accepts it.
func getInput(message string, validate func(string) bool) (*input, error) {
	prompt := &survey.Input{Message: message}

	var value string
	err := survey.AskOne(prompt, &value, survey.WithValidator(func(answer interface{}) error {
		s, ok := answer.(string)
		if !ok || !validate(s) {
			return fmt.Errorf("invalid input")
		}
		return nil
	}))
	if err != nil {
		return nil, err
	}

	return &input{value: value}, nil
}
