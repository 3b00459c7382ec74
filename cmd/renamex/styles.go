// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Color palette - shared hex colors for consistent theming across all CLI output.
// These colors are designed for dark terminal backgrounds with good contrast.
const (
	// ColorPrimary is purple - used for titles and primary emphasis.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray - used for secondary text and de-emphasized content.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green - used for matches and completed renames.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red - used for failed renames.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber - used for template warnings and skipped files.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue - used for target filenames.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

// Base styles - reusable lipgloss styles built from the color palette.
var (
	// TitleStyle is for primary headers and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// MatchStyle is for matched (source) filenames.
	MatchStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	// TargetStyle is for substituted (target) filenames.
	TargetStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight)

	// SuccessStyle is for success messages and counters.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for error messages and failure indicators.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for warning messages and skip notices.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)
