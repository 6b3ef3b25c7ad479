package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Filter        lipgloss.Style
	InfoBox       lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Highlight     lipgloss.Style
	SelectionBg   lipgloss.Style
	Label         lipgloss.Style
	Section       lipgloss.Style
	Heading       lipgloss.Style
	Official      lipgloss.Style
	Region        lipgloss.Style
	RegionActive  lipgloss.Style
	Border        lipgloss.Style
	BorderActive  lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1).
			MarginBottom(1),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			MarginBottom(1).
			Width(60).
			BorderForeground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2).
			MaxHeight(100), // Will be dynamically adjusted
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Label:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Section:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1),
		Heading:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		Official:      lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
		Region:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		RegionActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")).Padding(0, 1),
		Border:        lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		BorderActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
	}
}

// RegionColor returns the accent color for a region name
func RegionColor(region string) string {
	switch region {
	case "Africa":
		return "214" // yellow
	case "Americas":
		return "78" // green
	case "Asia":
		return "203" // red
	case "Europe":
		return "33" // blue
	case "Oceania":
		return "51" // cyan
	default:
		return "245"
	}
}
