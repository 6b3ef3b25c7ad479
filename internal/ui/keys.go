package ui

import (
	"github.com/charmbracelet/bubbles/key"

	inputtypes "countryexplorer/internal/ui/input/types"
)

// keyMap describes the bindings shown in the footer. Key routing itself is
// done by the input modes.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Search   key.Binding
	Region   key.Binding
	Sort     key.Binding
	Retry    key.Binding
	Help     key.Binding
	Quit     key.Binding
	Back     key.Binding
	Pager    key.Binding
	Border   key.Binding
	Submit   key.Binding
	Accept   key.Binding
	Cancel   key.Binding
	Clear    key.Binding
	HelpPage key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Region:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "region")),
		Sort:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Retry:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Pager:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "pager")),
		Border:   key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "neighbour")),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search now")),
		Accept:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Clear:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		HelpPage: key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "help in pager")),
	}
}

// shortHelp returns the footer bindings for a mode
func (k keyMap) shortHelp(mode inputtypes.Mode, searching bool) []key.Binding {
	switch mode {
	case inputtypes.ModeSearch:
		return []key.Binding{k.Submit, k.Cancel}
	case inputtypes.ModeRegionSelect:
		return []key.Binding{k.Up, k.Down, k.Accept, k.Cancel}
	case inputtypes.ModeDetail:
		return []key.Binding{k.Back, k.Border, k.Open, k.Pager, k.Retry, k.Help}
	default:
		bindings := []key.Binding{k.Up, k.Down, k.Open, k.Search, k.Region, k.Sort}
		if searching {
			bindings = append(bindings, k.Clear)
		}
		return append(bindings, k.Help, k.Quit)
	}
}
