// SPDX-License-Identifier: MPL-2.0

// Package tui holds the interactive terminal components. The only one the
// CLI currently needs is a yes/no confirmation prompt, shown before a
// rename plan is applied.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type (
	// ConfirmOptions configures the Confirm component.
	ConfirmOptions struct {
		// Title is the question to display.
		Title string
		// Description provides additional context below the title.
		Description string
		// Affirmative is the text for the affirmative option (default: "Yes").
		Affirmative string
		// Negative is the text for the negative option (default: "No").
		Negative string
		// Default is the initially selected answer.
		Default bool
	}

	// ConfirmModel is the bubbletea model behind Confirm. Exposed so tests
	// can drive it with key messages without a terminal.
	ConfirmModel struct {
		title       string
		description string
		affirmative string
		negative    string
		selection   bool
		result      bool
		done        bool
		cancelled   bool
	}
)

// NewConfirmModel creates a confirm component with the initial selection set
// to the configured default.
func NewConfirmModel(opts ConfirmOptions) *ConfirmModel {
	affirmative := opts.Affirmative
	if affirmative == "" {
		affirmative = "Yes"
	}
	negative := opts.Negative
	if negative == "" {
		negative = "No"
	}

	return &ConfirmModel{
		title:       opts.Title,
		description: opts.Description,
		affirmative: affirmative,
		negative:    negative,
		selection:   opts.Default,
		result:      opts.Default,
	}
}

// Result returns the chosen answer once the model is done.
func (m *ConfirmModel) Result() bool { return m.result }

// IsDone reports whether a choice was submitted or the prompt cancelled.
func (m *ConfirmModel) IsDone() bool { return m.done }

// Cancelled reports whether the prompt was dismissed with esc/ctrl+c.
func (m *ConfirmModel) Cancelled() bool { return m.cancelled }

// Init implements tea.Model.
func (m *ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.done = true
			m.cancelled = true
			m.result = false
			return m, tea.Quit
		case "y":
			m.selection = true
			m.result = true
			m.done = true
			return m, tea.Quit
		case "n":
			m.selection = false
			m.result = false
			m.done = true
			return m, tea.Quit
		case "left", "h":
			m.selection = true
		case "right", "l":
			m.selection = false
		case "up", "down", "tab", "shift+tab":
			m.selection = !m.selection
		case "enter", " ":
			m.result = m.selection
			m.done = true
			return m, tea.Quit
		}
	}

	return m, nil
}

var (
	confirmTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	confirmDescStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	confirmActiveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#7C3AED")).Bold(true).Padding(0, 1)
	confirmInactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")).Padding(0, 1)
	confirmHelpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// View implements tea.Model.
func (m *ConfirmModel) View() string {
	if m.done {
		return ""
	}

	yesView := confirmInactiveStyle.Render(m.affirmative)
	noView := confirmInactiveStyle.Render(m.negative)
	if m.selection {
		yesView = confirmActiveStyle.Render(m.affirmative)
	} else {
		noView = confirmActiveStyle.Render(m.negative)
	}

	view := ""
	if m.title != "" {
		view += confirmTitleStyle.Render(m.title) + "\n"
	}
	if m.description != "" {
		view += confirmDescStyle.Render(m.description) + "\n"
	}
	view += "\n" + yesView + "  " + noView + "\n"
	view += confirmHelpStyle.Render("←/→ select • enter confirm • y/n direct • esc cancel")

	return view
}

// Confirm renders the prompt and blocks until the user answers. Cancelling
// (esc, ctrl+c) reports false.
func Confirm(opts ConfirmOptions) (bool, error) {
	program := tea.NewProgram(NewConfirmModel(opts))

	final, err := program.Run()
	if err != nil {
		return false, fmt.Errorf("confirm prompt failed: %w", err)
	}

	model, ok := final.(*ConfirmModel)
	if !ok {
		return false, fmt.Errorf("confirm prompt returned unexpected model %T", final)
	}
	return model.Result(), nil
}
