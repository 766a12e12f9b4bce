// Package main implements the floatwin demo: floating windows in the
// terminal that can be dragged by their header, resized from any border
// and toggled fullscreen with a double click.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/Gaurav-Gosain/floatwin/pkg/floatwin"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode       bool
	logFile         string
	asciiOnly       bool
	themeName       string
	listThemes      bool
	borderStyle     string
	hideCloseButton bool
	windowCount     int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "floatwin",
		Short: "Floating windows for the terminal",
		Long: `floatwin - floating windows for the terminal

Opens a few demo windows. Drag a window by its header, resize it from any
border or corner, and double click the header to toggle fullscreen. Hold
the header of a fullscreen window to drag it back out.

Keys:
  n  open another window
  o  open the custom header window
  s  open the system stats window
  x  close the focused window
  q  quit`,
		Example: `  # Run the demo
  floatwin

  # Start with six windows
  floatwin --windows 6

  # Run with a specific theme and border
  floatwin --theme dracula --border-style double

  # Write debug logs to a file
  floatwin --debug --log-file /tmp/floatwin.log

  # List all available themes
  floatwin --list-themes

  # Edit configuration
  floatwin config edit`,
		Version: version,
		RunE: func(_ *cobra.Command, _ []string) error {
			if listThemes {
				for _, t := range floatwin.Themes() {
					fmt.Println(t)
				}
				return nil
			}
			return runDemo()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file (default with --debug: $XDG_STATE_HOME/floatwin/floatwin.log)")
	rootCmd.PersistentFlags().BoolVar(&asciiOnly, "ascii-only", false, "Use ASCII characters instead of Unicode glyphs")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord, tokyonight). Leave empty to use standard terminal colors without theming")
	rootCmd.PersistentFlags().BoolVar(&listThemes, "list-themes", false, "List all available themes and exit")
	rootCmd.PersistentFlags().StringVar(&borderStyle, "border-style", "", "Window border style: rounded, normal, thick, double, hidden, block, ascii, outer-half-block, inner-half-block (default: from config or rounded)")
	rootCmd.PersistentFlags().BoolVar(&hideCloseButton, "hide-close-button", false, "Hide the close button of the default header")
	rootCmd.Flags().IntVar(&windowCount, "windows", 3, "Number of demo windows to open at startup")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage floatwin configuration",
		Long:  `Manage floatwin configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		Long:  `Print the path to the floatwin configuration file`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the floatwin configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi, nano, and emacs in that order.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return editConfigFile()
		},
	}

	var resetYes bool
	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the floatwin configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return resetConfigToDefaults(cmd.InOrStdin(), cmd.OutOrStdout(), resetYes)
		},
	}
	configResetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Skip the confirmation prompt")

	configValidateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration file",
		Long:  `Load the floatwin configuration file and report errors and warnings`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return validateConfigFile(cmd.OutOrStdout())
		},
	}

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd, configValidateCmd)
	rootCmd.AddCommand(configCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}
