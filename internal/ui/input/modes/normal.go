package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"countryexplorer/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		// Enter opens the highlighted country; nothing to open on an empty list
		if ctx.HasCountry() {
			return []types.Action{
				types.OpenDetailAction{},
				types.ChangeModeAction{Mode: types.ModeDetail},
			}, true
		}
		return nil, false
	}

	// Handle string keys
	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "/":
		// Enter search mode, keeping the current term for editing
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.SearchText()}}, true

	case "f", "F":
		// Region selector
		return []types.Action{types.ChangeModeAction{Mode: types.ModeRegionSelect}}, true

	case "s":
		// Cycle display order
		return []types.Action{types.CycleSortAction{}}, true

	case "r":
		// Re-run the last query
		return []types.Action{types.RetryAction{}}, true

	case "?":
		// Toggle help
		return []types.Action{types.ToggleHelpAction{}}, true

	case "H":
		// Help in the pager
		return []types.Action{types.HelpPagerAction{}}, true

	case "esc":
		// Clear the search if any, otherwise do nothing
		if ctx.SearchText() != "" {
			return []types.Action{types.ClearSearchAction{}}, true
		}
		return nil, true // Consume the key even if no action

	case "q":
		// Quit
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top (within timeout)
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		// First g, wait for next key
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		// G - go to bottom
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	default:
		// Any other key cancels the 'g' prefix
		m.lastKeyWasG = false
	}

	return nil, false
}
