// Package extractor drives the external media extractor: probing format
// tables and assembling deterministic argument vectors for downloads and streams.
package extractor

import (
	"context"

	"github.com/loutube-cli/loutube/key"
	"github.com/loutube-cli/loutube/media"
	"github.com/loutube-cli/loutube/runner"
	"github.com/spf13/viper"
)

// Binary returns the configured extractor binary name.
func Binary() string {
	return viper.GetString(key.ExtractorBinary)
}

// Extractor wraps a process runner with the extractor's operations.
type Extractor struct {
	run runner.Runner
}

// New creates an Extractor on top of the given runner.
func New(run runner.Runner) *Extractor {
	return &Extractor{run: run}
}

// Probe invokes the extractor's list-formats operation for a URL and parses
// its tabular output. An empty list is a valid outcome; callers fall back to
// the configured default selector.
func (e *Extractor) Probe(ctx context.Context, url string) (*media.FormatList, error) {
	out, err := e.run.Output(ctx, runner.Command{
		Name: Binary(),
		Args: []string{"--list-formats", url},
	})
	if err != nil {
		return nil, err
	}
	return ParseFormats(out), nil
}

// Download builds and runs the extractor invocation for a download intent.
func (e *Extractor) Download(ctx context.Context, intent media.Intent, formats *media.FormatList, cookies string) error {
	args, err := BuildArgs(intent, formats, cookies)
	if err != nil {
		return err
	}
	return e.run.Run(ctx, runner.Command{Name: Binary(), Args: args})
}

// Stream builds the extractor-to-player pipeline for a stream intent and runs
// both processes until either exits.
func (e *Extractor) Stream(ctx context.Context, intent media.Intent, formats *media.FormatList, cookies string) error {
	args, err := BuildArgs(intent, formats, cookies)
	if err != nil {
		return err
	}
	return e.run.Pipe(ctx,
		runner.Command{Name: Binary(), Args: args},
		PlayerCommand(intent.Mode == media.ModeLive),
	)
}
