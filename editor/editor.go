// Package editor assembles transcoder argument vectors for local edit
// operations: trimming, transcoding, container conversion, GIF rendering and
// letterbox padding. Edits never touch the extractor.
package editor

import (
	"context"
	"fmt"

	"github.com/loutube-cli/loutube/filesystem"
	"github.com/loutube-cli/loutube/key"
	"github.com/loutube-cli/loutube/runner"
	"github.com/spf13/viper"
)

// Binary returns the configured transcoder binary name.
func Binary() string {
	return viper.GetString(key.TranscoderBinary)
}

// Operation is one edit the transcoder can perform on a local file.
type Operation interface {
	fmt.Stringer

	// Validate checks the operation's parameters before any command is built.
	Validate() error

	// flags returns the operation-specific arguments placed between the
	// input and the destination.
	flags() []string
}

// BuildArgs assembles the deterministic transcoder argument vector for an
// operation applied to a source file.
func BuildArgs(op Operation, source, dest string) ([]string, error) {
	if source == "" {
		return nil, fmt.Errorf("edit: no source file given")
	}
	if dest == "" {
		return nil, fmt.Errorf("edit: no destination file given")
	}
	if err := op.Validate(); err != nil {
		return nil, err
	}

	args := []string{"-nostdin", "-y"}

	// Trim seeks before the input for fast keyframe-aligned seeking.
	if trim, ok := op.(Trim); ok {
		args = append(args, trim.seekFlags()...)
	}

	args = append(args, "-i", source)
	args = append(args, op.flags()...)
	return append(args, dest), nil
}

// Editor runs edit operations through a process runner.
type Editor struct {
	run runner.Runner
}

// New creates an Editor on top of the given runner.
func New(run runner.Runner) *Editor {
	return &Editor{run: run}
}

// Edit builds and executes the transcoder invocation for one operation.
func (e *Editor) Edit(ctx context.Context, op Operation, source, dest string) error {
	exists, err := filesystem.API().Exists(source)
	if err != nil {
		return fmt.Errorf("edit: stat source: %w", err)
	}
	if !exists {
		return fmt.Errorf("edit: source file %q does not exist", source)
	}

	args, err := BuildArgs(op, source, dest)
	if err != nil {
		return err
	}
	return e.run.Run(ctx, runner.Command{Name: Binary(), Args: args})
}
