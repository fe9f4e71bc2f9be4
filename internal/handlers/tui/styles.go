package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	Primary     = lipgloss.Color("#16a34a")
	Info        = lipgloss.Color("#2563eb")
	Warning     = lipgloss.Color("#ea580c")
	Destructive = lipgloss.Color("#dc2626")
	Muted       = lipgloss.Color("#6b7280")
)

// Styles holds the lipgloss styles used by the pages
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Status   lipgloss.Style
	Note     lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
	Selected lipgloss.Style
	Card     lipgloss.Style
	Value    lipgloss.Style
	Live     lipgloss.Style
}

// DefaultStyles returns the FootSlip terminal theme
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(Primary).MarginBottom(1),
		Header:   lipgloss.NewStyle().Bold(true).Foreground(Info),
		Status:   lipgloss.NewStyle().Italic(true),
		Note:     lipgloss.NewStyle().Foreground(Warning),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(Destructive),
		Help:     lipgloss.NewStyle().Foreground(Muted).MarginTop(1),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(Primary),
		Card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Muted).Padding(0, 1),
		Value:    lipgloss.NewStyle().Bold(true),
		Live:     lipgloss.NewStyle().Bold(true).Foreground(Primary),
	}
}
