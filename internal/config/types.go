// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark-background styling.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light-background styling.
	ColorSchemeLight ColorScheme = "light"
	// ColorSchemeNever disables styled output entirely.
	ColorSchemeNever ColorScheme = "never"
)

// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
var ErrInvalidColorScheme = errors.New("invalid color scheme")

type (
	// ColorScheme selects how output is styled.
	ColorScheme string

	// ScanConfig holds defaults for the filesystem scan.
	ScanConfig struct {
		// IncludeHidden includes dot-prefixed files and directories.
		IncludeHidden bool `mapstructure:"include_hidden" toml:"include_hidden"`
	}

	// UIConfig holds output preferences.
	UIConfig struct {
		ColorScheme ColorScheme `mapstructure:"color_scheme" toml:"color_scheme"`
		Verbose     bool        `mapstructure:"verbose" toml:"verbose"`
	}

	// Config is the full application configuration.
	Config struct {
		Scan ScanConfig `mapstructure:"scan" toml:"scan"`
		UI   UIConfig   `mapstructure:"ui" toml:"ui"`
	}
)

// Validate checks enum-valued fields.
func (s ColorScheme) Validate() error {
	switch s {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight, ColorSchemeNever:
		return nil
	}
	return fmt.Errorf("%w: %q (expected auto, dark, light or never)", ErrInvalidColorScheme, string(s))
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	return c.UI.ColorScheme.Validate()
}

// DefaultConfig returns the built-in defaults used when no config file
// exists.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{IncludeHidden: false},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}
