package mini

import (
	"context"

	"github.com/loutube-cli/loutube/cookies"
	"github.com/loutube-cli/loutube/editor"
	"github.com/loutube-cli/loutube/extractor"
	"github.com/loutube-cli/loutube/history"
	"github.com/loutube-cli/loutube/key"
	"github.com/loutube-cli/loutube/log"
	"github.com/loutube-cli/loutube/media"
	"github.com/loutube-cli/loutube/runner"
	"github.com/spf13/viper"
)

// executeIntent performs the external work for a confirmed intent and
// returns where the result ended up. Exactly one history entry is appended
// on success; a failed run writes nothing anywhere.
func executeIntent(
	ctx context.Context,
	run runner.Runner,
	intent media.Intent,
	formats *media.FormatList,
	op editor.Operation,
	editDest string,
) (string, error) {

	var output string

	switch intent.Mode {
	case media.ModeEdit:
		if err := editor.New(run).Edit(ctx, op, intent.URL, editDest); err != nil {
			return "", err
		}
		output = editDest

	case media.ModeStream, media.ModeLive:
		browser := cookies.Detect(ctx, run).OrElse("")
		if err := extractor.New(run).Stream(ctx, intent, formats, browser); err != nil {
			return "", err
		}
		output = "-"

	default:
		browser := cookies.Detect(ctx, run).OrElse("")
		if err := extractor.New(run).Download(ctx, intent, formats, browser); err != nil {
			return "", err
		}
		output = extractor.OutputDir(intent)
	}

	if viper.GetBool(key.HistorySaveOnSuccess) {
		if err := history.Append(history.NewEntry(intent, output)); err != nil {
			// The operation already succeeded; a bookkeeping failure
			// must not turn it into an error.
			log.Warnf("history: appending entry: %s", err)
		}
	}

	return output, nil
}
