package tui

import "github.com/charmbracelet/lipgloss"

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleBufferText = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleEmptyHint = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleDirty = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	stylePickerTitle = lipgloss.NewStyle().
				Bold(true)

	stylePickerSelected = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34")).
				Bold(true)

	stylePickerMessage = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243"))
)
