// Package cmd implements the command-line interface for loutube.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/loutube-cli/loutube/color"
	"github.com/loutube-cli/loutube/constant"
	"github.com/loutube-cli/loutube/icon"
	"github.com/loutube-cli/loutube/key"
	"github.com/loutube-cli/loutube/log"
	"github.com/loutube-cli/loutube/mini"
	"github.com/loutube-cli/loutube/style"
	"github.com/loutube-cli/loutube/util"
	"github.com/loutube-cli/loutube/version"
	"github.com/loutube-cli/loutube/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
	rootCmd.Flags().BoolP("recent", "r", false, "Show the most recent operations and exit")
	rootCmd.Flags().BoolP("config", "c", false, "Print the configuration file location and exit")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Record successful operations in the history file")
	lo.Must0(viper.BindPFlag(key.HistorySaveOnSuccess, rootCmd.PersistentFlags().Lookup("write-history")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the loutube application.
var rootCmd = &cobra.Command{
	Use:   constant.Loutube + " [URL]",
	Short: "A minimalist command-line interface for downloading, streaming and editing online media",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A minimalist command-line interface for downloading, streaming and editing online media"),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, nil)
			return
		}

		if cmd.Flags().Changed("recent") {
			recentCmd.Run(recentCmd, nil)
			return
		}

		if cmd.Flags().Changed("config") {
			fmt.Println(configFilePath())
			return
		}

		CheckDependencies()

		options := mini.Options{}
		if len(args) > 0 {
			options.URL = args[0]
		}

		err := mini.Run(&options)
		if err != nil && err.Error() != "interrupt" {
			handleErr(err)
		}
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
