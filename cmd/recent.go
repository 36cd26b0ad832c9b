package cmd

import (
	"os"

	"github.com/loutube-cli/loutube/color"
	"github.com/loutube-cli/loutube/history"
	"github.com/loutube-cli/loutube/style"
	"github.com/loutube-cli/loutube/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(recentCmd)
	recentCmd.Flags().IntP("number", "n", 0, "How many entries to show (default from history.recent_limit)")
	recentCmd.SetOut(os.Stdout)
}

// recentCmd lists the most recent completed operations, newest first.
var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List the most recent downloads, streams and edits",
	Run: func(cmd *cobra.Command, args []string) {
		limit, _ := cmd.Flags().GetInt("number")

		entries, err := history.Recent(limit)
		handleErr(err)

		if len(entries) == 0 {
			cmd.Println(style.Faint("No history yet"))
			return
		}

		for _, entry := range entries {
			cmd.Printf(
				"%s %s %s\n",
				style.Faint(entry.Timestamp.Format("2006-01-02 15:04")),
				style.Fg(color.Yellow)(util.Capitalize(entry.Mode.String())),
				entry.URL,
			)
			if entry.Output != "" && entry.Output != "-" {
				cmd.Printf("  %s\n", style.Faint(entry.Output))
			}
		}

		cmd.Println(style.Faint(util.Quantify(len(entries), "entry", "entries")))
	},
}
