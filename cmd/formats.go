package cmd

import (
	"context"
	"encoding/json"
	"os"

	"github.com/loutube-cli/loutube/extractor"
	"github.com/loutube-cli/loutube/runner"
	"github.com/loutube-cli/loutube/style"
	"github.com/loutube-cli/loutube/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(formatsCmd)
	formatsCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON array")
	formatsCmd.SetOut(os.Stdout)
}

// formatsCmd probes a URL and prints the available formats, for scripting
// and for picking ids ahead of a download.
var formatsCmd = &cobra.Command{
	Use:   "formats URL",
	Short: "List the formats the extractor offers for a URL",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(runner.Resolve(extractor.Binary()))

		formats, err := extractor.New(runner.New()).Probe(context.Background(), args[0])
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			lo.Must0(encoder.Encode(formats.Records))
			return
		}

		if formats.Empty() {
			cmd.Println(style.Faint("No formats listed"))
			return
		}

		for _, record := range formats.Records {
			cmd.Printf(
				"%-8s %-6s %-12s %-10s %s\n",
				record.ID, record.Extension, record.Resolution, record.Size,
				style.Faint(record.Note),
			)
		}

		if formats.Live {
			cmd.Println(style.Faint("This is a live stream"))
		}

		cmd.Println(style.Faint(util.Quantify(len(formats.Records), "format", "formats")))

	},
}
