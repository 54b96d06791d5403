package ui

import "github.com/charmbracelet/lipgloss"

var (
	risingColor  = lipgloss.Color("#2DA44E") // Green
	fallingColor = lipgloss.Color("#CF222E") // Red
	neutralColor = lipgloss.Color("#D29922") // Orange
	titleColor   = lipgloss.Color("#39D353") // Bright green
	sectionColor = lipgloss.Color("#8250DF") // Purple
	sourceColor  = lipgloss.Color("#FFA657") // Light orange
	scoreColor   = lipgloss.Color("#F778BA") // Pink
	dimColor     = lipgloss.Color("#6E7681") // Gray

	headerStyle = lipgloss.NewStyle().
			Foreground(titleColor).
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(sectionColor)

	sectionStyle = lipgloss.NewStyle().
			Foreground(sectionColor).
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Foreground(titleColor).
			Bold(true)

	risingStyle = lipgloss.NewStyle().
			Foreground(risingColor).
			Bold(true)

	fallingStyle = lipgloss.NewStyle().
			Foreground(fallingColor).
			Bold(true)

	neutralStyle = lipgloss.NewStyle().
			Foreground(neutralColor)

	sourceStyle = lipgloss.NewStyle().
			Foreground(sourceColor)

	scoreStyle = lipgloss.NewStyle().
			Foreground(scoreColor).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(dimColor)
)
