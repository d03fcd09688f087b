package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Help      lipgloss.Style
	Mode      lipgloss.Style
	Card      lipgloss.Style
	ErrorCard lipgloss.Style
	OK        lipgloss.Style
	Alert     lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Mode:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		ErrorCard: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("203")),
		OK:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Alert: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}
