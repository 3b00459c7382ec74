// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"renamex-cli/internal/config"

	"github.com/spf13/cobra"
)

// configCmd is the `renamex config` command tree.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage renamex configuration",
	Long: `Manage renamex configuration.

Configuration is stored in:
  - Linux: ~/.config/renamex/config.toml
  - macOS: ~/Library/Application Support/renamex/config.toml
  - Windows: %APPDATA%\renamex\config.toml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd)
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.FilePath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.WriteDefault()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", SuccessStyle.Render(path))
			return nil
		},
	})
}

func showConfig(cmd *cobra.Command) error {
	cfg, resolved, err := config.Load(config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	fmt.Fprintln(out, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(out)

	if resolved != "" {
		fmt.Fprintf(out, "%s: %s\n", TargetStyle.Render("Config file"), resolved)
	} else {
		fmt.Fprintf(out, "%s: %s\n", TargetStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "%s: %s\n", TargetStyle.Render("scan.include_hidden"), SuccessStyle.Render(fmt.Sprintf("%t", cfg.Scan.IncludeHidden)))
	fmt.Fprintf(out, "%s: %s\n", TargetStyle.Render("ui.color_scheme"), SuccessStyle.Render(string(cfg.UI.ColorScheme)))
	fmt.Fprintf(out, "%s: %s\n", TargetStyle.Render("ui.verbose"), SuccessStyle.Render(fmt.Sprintf("%t", cfg.UI.Verbose)))

	return nil
}
