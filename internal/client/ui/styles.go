package ui

import "github.com/charmbracelet/lipgloss"

// Color palette - felt table greens with warm card accents
var (
	primaryColor   = lipgloss.Color("#E8C4A0") // Light warm beige
	secondaryColor = lipgloss.Color("#7EBB81") // Light forest green
	successColor   = lipgloss.Color("#B5D99C") // Bright sage
	mutedColor     = lipgloss.Color("#B8A890") // Light taupe
	redSuitColor   = lipgloss.Color("#E07B7B") // Hearts and diamonds
	highlightColor = lipgloss.Color("#F0DEB4") // Cream highlight
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Padding(1, 2).
			Align(lipgloss.Center)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Italic(true).
			Align(lipgloss.Center)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(secondaryColor).
			Padding(0, 1).
			Width(30)

	highlightStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	instructionStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Italic(true).
				Margin(1, 0)

	cursorStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	tableBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)

	handBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondaryColor).
			Padding(0, 1)

	turnStyle = lipgloss.NewStyle().
			Foreground(highlightColor).
			Bold(true)

	redCardStyle = lipgloss.NewStyle().
			Foreground(redSuitColor)

	promptStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true).
			Margin(1, 0)

	errorStyle = lipgloss.NewStyle().
			Foreground(redSuitColor).
			Bold(true)
)
