package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"countryexplorer/internal/ui/input/types"
)

// DetailMode handles keys while a country is shown
type DetailMode struct{}

func NewDetailMode() *DetailMode {
	return &DetailMode{}
}

func (m *DetailMode) Name() string {
	return "detail"
}

func (m *DetailMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *DetailMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.CloseDetailAction{}}
}

func (m *DetailMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc", "backspace", "b", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case "r":
		return []types.Action{types.RetryAction{}}, true

	case "o", "p":
		return []types.Action{types.OpenPagerAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "up", "k", "left", "h":
		if ctx.BorderCount() > 0 {
			return []types.Action{types.SelectBorderAction{Delta: -1}}, true
		}
		return nil, true

	case "down", "j", "right", "l", "tab":
		if ctx.BorderCount() > 0 {
			return []types.Action{types.SelectBorderAction{Delta: 1}}, true
		}
		return nil, true

	case "enter":
		if ctx.BorderCount() > 0 {
			return []types.Action{types.OpenBorderAction{}}, true
		}
		return nil, true
	}

	return nil, false
}
