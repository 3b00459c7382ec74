// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"renamex-cli/internal/config"
	"renamex-cli/internal/logging"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug logging
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// flags of the root (search/rename) command
	replacement   string
	recurse       bool
	testRun       bool
	rootDir       string
	includeHidden bool
	confirm       bool

	// appConfig is the loaded configuration, populated before any RunE.
	appConfig = config.DefaultConfig()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "renamex PATTERN",
		Short: "Filename find and (optionally) replace using regex",
		Long: TitleStyle.Render("renamex") + SubtitleStyle.Render(" - filename find and replace with regular expressions") + `

Searches filenames (never full paths) under a directory with an RE2
pattern. With --rep, matched files are renamed using capture-group
substitution: reference groups as $1 or ${1}.

Files are only renamed when --rep is given AND --test-run is not.

` + SubtitleStyle.Render("Examples:") + `
  renamex '\.jpeg$'                            List matching files
  renamex '(\d+)x(\d+)' --rep '${2}x${1}' -t   Preview swapped groups
  renamex 'IMG_(\d+)' --rep 'photo-${1}' -r    Rename across subdirectories
  renamex config show                          Show current configuration`,
		Args: cobra.ExactArgs(1),
		RunE: runRoot,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/renamex/config.toml)")

	// Search/rename flags
	rootCmd.Flags().StringVar(&replacement, "rep", "", "replacement template; $1 or ${1} reference capture groups")
	rootCmd.Flags().BoolVarP(&recurse, "recurse", "r", false, "recurse into child directories")
	rootCmd.Flags().BoolVarP(&testRun, "test-run", "t", false, "show renames that would occur without performing them")
	rootCmd.Flags().StringVar(&rootDir, "root", ".", "directory to search")
	rootCmd.Flags().BoolVar(&includeHidden, "include-hidden", false, "include dot-prefixed files and directories")
	rootCmd.Flags().BoolVar(&confirm, "confirm", false, "show the rename plan and ask before applying it")

	// Add subcommands
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads the config file and applies it beneath explicit flags.
func initRootConfig() {
	cfg, _, err := config.Load(config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		// Config problems never block a run; say so and fall back to defaults.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		cfg = config.DefaultConfig()
	}
	appConfig = cfg

	if !verbose && cfg.UI.Verbose {
		verbose = true
	}
	if !rootCmd.Flags().Changed("include-hidden") && cfg.Scan.IncludeHidden {
		includeHidden = true
	}

	logging.Setup(os.Stderr, verbose)
}

// glamourStyle maps the configured color scheme to a glamour style name.
func glamourStyle(scheme config.ColorScheme) string {
	switch scheme {
	case config.ColorSchemeDark:
		return "dark"
	case config.ColorSchemeLight:
		return "light"
	case config.ColorSchemeNever:
		return "notty"
	default:
		return "auto"
	}
}
