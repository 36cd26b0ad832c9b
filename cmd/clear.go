package cmd

import (
	"fmt"
	"os"

	"github.com/loutube-cli/loutube/cookies"
	"github.com/loutube-cli/loutube/history"
	"github.com/loutube-cli/loutube/icon"
	"github.com/loutube-cli/loutube/util"
	"github.com/loutube-cli/loutube/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget defines an application artifact eligible for automated cleanup.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	clear    func() error
}

// clearLocation removes a managed path, tolerating its absence.
func clearLocation(location func() string) func() error {
	return func() error {
		if err := util.Delete(location()); err != nil && !os.IsNotExist(err) {
			return err
		}
		return nil
	}
}

// clearTargets registry of all application artifacts that can be selectively cleared.
var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), clearLocation(where.Cache)},
	{"history file", "history", mo.Some("s"), history.Clear},
	{"cookie detection", "cookies", mo.Some("k"), cookies.Reset},
	{"log files", "logs", mo.Some("l"), clearLocation(where.Logs)},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

// clearCmd manages the cleanup of temporary and cached application artifacts.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear temporary and cached application artifacts",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if lo.Must(cmd.Flags().GetBool(target.argLong)) {
				anyCleared = true
				e := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), util.Capitalize(target.name)))
				if err := target.clear(); err != nil {
					handleErr(err)
				}
				e()
				fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
			}
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
