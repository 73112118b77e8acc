package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Report colours
var (
	ColorSuccess = lipgloss.Color("#10B981") // Emerald
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
)

var (
	PrintableStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	PartialStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	RejectedStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	SampleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
