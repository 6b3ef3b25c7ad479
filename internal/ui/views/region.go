package views

import (
	"strings"

	"countryexplorer/internal/domain"
)

// RegionRenderer renders the region filter bar
type RegionRenderer struct {
	styles *Styles
}

// NewRegionRenderer creates a new region renderer
func NewRegionRenderer(styles *Styles) *RegionRenderer {
	return &RegionRenderer{
		styles: styles,
	}
}

// RenderBar renders every region with the active one highlighted
func (g *RegionRenderer) RenderBar(activeIndex int) string {
	parts := make([]string, 0, len(domain.Regions))
	for i, region := range domain.Regions {
		if i == activeIndex {
			parts = append(parts, g.styles.RegionActive.Render(region.Label))
		} else {
			parts = append(parts, g.styles.Region.Render(region.Label))
		}
	}
	return strings.Join(parts, " ")
}

// RenderSelector renders the bar with its key hints while choosing a region
func (g *RegionRenderer) RenderSelector(activeIndex int) string {
	help := g.styles.Dim.Render("↑/↓ or j/k to change • 0-5 to jump • Enter to accept • Esc to cancel")
	return "Region: " + g.RenderBar(activeIndex) + "\n" + help
}
