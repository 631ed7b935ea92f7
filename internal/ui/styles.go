package ui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("170")
	muted  = lipgloss.Color("241")

	appStyle     = lipgloss.NewStyle().Padding(1, 2)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	buttonStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("62")).Padding(0, 1)
	outlineStyle = lipgloss.NewStyle().Foreground(muted).Padding(0, 1)
	statusStyle  = lipgloss.NewStyle().Foreground(muted)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1)
	selectedCardStyle = cardStyle.BorderForeground(accent)
	cardTitleStyle    = lipgloss.NewStyle().Bold(true)

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(accent).
			Padding(1, 2)
	labelStyle         = lipgloss.NewStyle().Foreground(muted)
	focusedLabelStyle  = lipgloss.NewStyle().Foreground(accent).Bold(true)
	priorityStyle      = lipgloss.NewStyle().Padding(0, 1)
	selectedPriorStyle = priorityStyle.Foreground(lipgloss.Color("252")).Background(accent)
)
