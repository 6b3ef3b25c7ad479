package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"countryexplorer/internal/domain"
)

const (
	nameColumn       = 28
	populationColumn = 15
	regionColumn     = 10
)

// CountryRenderer handles rendering of country rows
type CountryRenderer struct {
	styles *Styles
}

// NewCountryRenderer creates a new country renderer
func NewCountryRenderer(styles *Styles) *CountryRenderer {
	return &CountryRenderer{
		styles: styles,
	}
}

// RenderHeader renders the column titles
func (r *CountryRenderer) RenderHeader(width int) string {
	line := fmt.Sprintf("  %s %s  %s %s",
		fit("Country", nameColumn),
		fitRight("Population", populationColumn),
		fit("Region", regionColumn),
		"Capital")
	return r.styles.Label.Render(clip(line, width))
}

// RenderCountry renders a single list row
func (r *CountryRenderer) RenderCountry(country domain.CountrySummary, isSelected bool, searchQuery string, width int) string {
	bgColor := ""
	if isSelected {
		bgColor = "238"
	}
	base := lipgloss.NewStyle()
	if bgColor != "" {
		base = base.Background(lipgloss.Color(bgColor))
	}

	marker := "  "
	if isSelected {
		marker = "▶ "
	}

	name := fit(CountryName(country.Name), nameColumn)
	if searchQuery != "" {
		name = r.highlightMatch(name, strings.TrimSpace(searchQuery), base.Foreground(lipgloss.Color("226")).Bold(true), base)
	} else {
		name = base.Render(name)
	}

	regionStyle := base.Foreground(lipgloss.Color(RegionColor(country.Region)))

	parts := []string{
		base.Render(marker),
		name,
		base.Render(" " + fitRight(FormatPopulation(country.Population), populationColumn) + "  "),
		regionStyle.Render(fit(OrNA(country.Region), regionColumn)),
		base.Render(" " + JoinOrNA(country.Capital)),
	}
	line := strings.Join(parts, "")

	if width > 0 {
		line = clip(line, width)
		if isSelected {
			if pad := width - lipgloss.Width(line); pad > 0 {
				line += base.Render(strings.Repeat(" ", pad))
			}
		}
	}
	return line
}

// highlightMatch highlights matching text within a string
func (r *CountryRenderer) highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	index := strings.Index(lowerText, lowerQuery)
	if index == -1 || query == "" || len(lowerText) != len(text) {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(query)]
	after := text[index+len(query):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}

// fit pads or truncates s to exactly width cells
func fit(s string, width int) string {
	if lipgloss.Width(s) > width {
		return ansi.Truncate(s, width, "…")
	}
	return s + strings.Repeat(" ", width-lipgloss.Width(s))
}

func fitRight(s string, width int) string {
	if lipgloss.Width(s) > width {
		return ansi.Truncate(s, width, "…")
	}
	return strings.Repeat(" ", width-lipgloss.Width(s)) + s
}

func clip(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "")
}
