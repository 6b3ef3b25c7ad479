package input

import (
	"countryexplorer/internal/ui/coordinator"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Coordinator *coordinator.Coordinator
}

// CurrentIndex returns the cursor position in the list
func (c *ModelContext) CurrentIndex() int {
	return c.Coordinator.Navigation.GetCursor()
}

// TotalItems returns the number of visible rows
func (c *ModelContext) TotalItems() int {
	return len(c.Coordinator.Rows())
}

// HasCountry returns true if the cursor is on a country
func (c *ModelContext) HasCountry() bool {
	return c.Coordinator.Selected() != nil
}

// CurrentRegion returns the selected region key
func (c *ModelContext) CurrentRegion() string {
	return c.Coordinator.Region()
}

// SearchText returns the raw search input
func (c *ModelContext) SearchText() string {
	return c.Coordinator.SearchText()
}

// BorderCount returns the number of neighbours of the shown country
func (c *ModelContext) BorderCount() int {
	return len(c.Coordinator.Borders())
}
