package console

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle is used for the reading line and record titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF8C42"))

	// InfoStyle is used for written files.
	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	// MutedStyle is used for counts and record metadata.
	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	// WarnStyle is used for skipped sheets.
	WarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFB84D"))

	// ErrorStyle is used for the fatal error line.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4757")).
			Bold(true)

	// SuccessStyle is used for the converted count.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFB84D")).
			Bold(true)
)
