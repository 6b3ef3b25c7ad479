package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"countryexplorer/internal/ui/input/types"
)

// SearchMode edits the country name search. Leaving the mode keeps the text.
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}
