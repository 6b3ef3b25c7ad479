package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"countryexplorer/internal/domain"
	"countryexplorer/internal/ui/services/detail"
	"countryexplorer/internal/ui/services/query"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Countries      []domain.CountrySummary
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int
	Query          query.State
	RegionIndex    int
	SearchText     string
	SortLabel      string
	Spinner        string
	InputMode      string // "", "search" or "region"
	TextInput      string
	ShowDetail     bool
	Detail         detail.State
	BorderIndex    int
	ShowHelp       bool
	HelpContent    string
	HelpScroll     int
	HelpLine       string
	StatusMessage  string
}

// Renderer handles all view rendering
type Renderer struct {
	styles        *Styles
	countryRender *CountryRenderer
	regionRender  *RegionRenderer
	detailRender  *DetailRenderer
	popupRender   *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:        styles,
		countryRender: NewCountryRenderer(styles),
		regionRender:  NewRegionRenderer(styles),
		detailRender:  NewDetailRenderer(styles),
		popupRender:   NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n")

	if state.ShowDetail {
		content.WriteString(r.detailRender.Render(state.Detail, state.BorderIndex, state.Spinner))
	} else {
		switch state.InputMode {
		case "search":
			content.WriteString("Search: " + state.TextInput)
		case "region":
			content.WriteString(r.regionRender.RenderSelector(state.RegionIndex))
		default:
			content.WriteString(r.regionRender.RenderBar(state.RegionIndex))
		}
		content.WriteString("\n\n")
		content.WriteString(r.renderMain(state))
	}

	helpText := ""
	if !state.ShowHelp {
		helpText = state.HelpLine
		if helpText == "" {
			helpText = "Press ? for help"
		}
		helpText = r.styles.Help.Render(helpText)
	}

	if helpText != "" {
		currentLines := strings.Count(content.String(), "\n") + 1

		// Account for container padding (1 top, 1 bottom from Padding(1, 2))
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22
		}

		if paddingNeeded := availableLines - currentLines - 1; paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}
		content.WriteString("\n")
		content.WriteString(helpText)
	}

	mainStyle := r.styles.Main.MaxHeight(state.Height)
	finalContent := mainStyle.Render(content.String())

	if state.ShowHelp {
		helpContent := scrollWindow(state.HelpContent, state.Height, state.HelpScroll)
		return r.popupRender.RenderPopupOverlay(finalContent, helpContent, state.Height, state.Width, r.styles.InfoBox)
	}

	return finalContent
}

// renderTitle renders the logo with right-aligned status indicators, followed by a spacer line
func (r *Renderer) renderTitle(state ViewState) string {
	return r.titleLine(state) + "\n"
}

func (r *Renderer) titleLine(state ViewState) string {
	// indicators share the logo's line
	logo := r.styles.Title.UnsetMarginBottom().Render("countryexplorer")

	var indicators []string
	if state.Query.Status == query.StatusLoading {
		indicators = append(indicators, r.styles.Dim.Render(state.Spinner+" Loading"))
	}
	if state.SearchText != "" {
		indicators = append(indicators, r.styles.Filter.Render(fmt.Sprintf("[Search: %s]", state.SearchText)))
	}
	if state.SortLabel != "" {
		indicators = append(indicators, r.styles.Dim.Render("sort: "+state.SortLabel))
	}
	if state.StatusMessage != "" {
		indicators = append(indicators, r.styles.StatusError.Render(state.StatusMessage))
	}
	if len(indicators) == 0 {
		return logo
	}

	right := strings.Join(indicators, "  ")
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

// renderMain renders the list body for the query state
func (r *Renderer) renderMain(state ViewState) string {
	switch state.Query.Status {
	case query.StatusIdle:
		return r.styles.Dim.Render(state.Spinner + " Discovering amazing countries...")
	case query.StatusFailed:
		return r.styles.StatusError.Render(state.Query.ErrorMessage()) + "\n" +
			r.styles.Dim.Render("Press r to retry")
	case query.StatusLoading:
		if len(state.Countries) == 0 {
			return r.styles.Dim.Render(state.Spinner + " Discovering amazing countries...")
		}
	}

	if len(state.Countries) == 0 {
		return strings.Join([]string{
			r.styles.Heading.Render("No countries found"),
			r.styles.Dim.Render("We couldn't find any countries matching your search criteria. Try a"),
			r.styles.Dim.Render("different search term or region filter."),
		}, "\n")
	}

	return r.renderCountryList(state)
}

// renderCountryList renders the visible window of the list with scroll indicators
func (r *Renderer) renderCountryList(state ViewState) string {
	width := state.Width - 4
	total := len(state.Countries)

	start := min(max(state.ViewportOffset, 0), total)
	end := min(start+max(state.ViewportHeight, 1), total)

	lines := []string{r.countryRender.RenderHeader(width)}
	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", start)))
	}
	for i := start; i < end; i++ {
		lines = append(lines, r.countryRender.RenderCountry(state.Countries[i], i == state.SelectedIndex, state.SearchText, width))
	}
	if below := total - end; below > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", below)))
	}
	return strings.Join(lines, "\n")
}

// scrollWindow clips content to the popup height, marking hidden lines
func scrollWindow(content string, height, scrollOffset int) string {
	lines := strings.Split(content, "\n")
	totalLines := len(lines)

	// Account for popup border and padding
	visibleHeight := max(height-6, 5)
	if totalLines <= visibleHeight {
		return content
	}

	scrollOffset = min(max(scrollOffset, 0), totalLines-visibleHeight)
	endLine := scrollOffset + visibleHeight
	lines = lines[scrollOffset:endLine]

	more := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if scrollOffset > 0 {
		lines[0] = more.Render("↑ (more above)")
	}
	if endLine < totalLines {
		lines[len(lines)-1] = more.Render("↓ (more below, H opens the pager)")
	}
	return strings.Join(lines, "\n")
}
