package cmd

import (
	"fmt"

	"github.com/loutube-cli/loutube/filesystem"
	"github.com/loutube-cli/loutube/mini"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(editCmd)
}

// editCmd enters the interactive edit flow for a local media file.
var editCmd = &cobra.Command{
	Use:   "edit FILE",
	Short: "Edit a local media file with the transcoder (trim, transcode, convert, gif, letterbox)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		file := args[0]

		exists, err := filesystem.API().Exists(file)
		handleErr(err)
		if !exists {
			handleErr(fmt.Errorf("file %q does not exist", file))
		}

		err = mini.Run(&mini.Options{EditFile: file})
		if err != nil && err.Error() != "interrupt" {
			handleErr(err)
		}
	},
}
