package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	keys  [][2]string
}

var helpSections = []helpSection{
	{"Navigation", [][2]string{
		{"↑/↓, j/k", "Navigate up/down"},
		{"PgUp/PgDn", "Page up/down"},
		{"gg/G", "Go to top/bottom"},
		{"Enter", "Show country details"},
	}},
	{"Search & Filter", [][2]string{
		{"/", "Search countries by name"},
		{"Enter", "Search now (while typing)"},
		{"Esc", "Clear search"},
		{"f", "Choose a region"},
		{"0-5", "Jump to a region (while choosing)"},
		{"s", "Cycle sort order"},
	}},
	{"Country Details", [][2]string{
		{"←/→, j/k", "Pick a border country"},
		{"Enter", "Open the border country"},
		{"o", "Open details in pager"},
		{"r", "Retry a failed load"},
		{"Esc, b", "Back to countries"},
	}},
	{"Other", [][2]string{
		{"r", "Retry a failed list"},
		{"?", "Toggle this help"},
		{"H", "Open help in pager"},
		{"q", "Quit"},
	}},
}

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	title   lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	desc    lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		key:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		desc: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

// Render generates the help content for the popup and the pager
func (r *HelpRenderer) Render() string {
	width := 0
	for _, s := range helpSections {
		for _, k := range s.keys {
			width = max(width, lipgloss.Width(k[0]))
		}
	}

	var help strings.Builder
	help.WriteString(r.title.Render("countryexplorer Help"))
	help.WriteString("\n")

	for i, s := range helpSections {
		if i > 0 {
			help.WriteString("\n")
		}
		help.WriteString(r.section.Render(s.title))
		help.WriteString("\n")
		for _, k := range s.keys {
			pad := strings.Repeat(" ", width-lipgloss.Width(k[0]))
			help.WriteString(fmt.Sprintf("  %s%s  %s\n", r.key.Render(k[0]), pad, r.desc.Render(k[1])))
		}
	}

	return strings.TrimRight(help.String(), "\n")
}
