package cli

import "github.com/charmbracelet/lipgloss"

var (
	dateHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	indexStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	createdStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	tagStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dueStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	doneStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	locationStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
