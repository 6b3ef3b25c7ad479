package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"countryexplorer/internal/domain"
	"countryexplorer/internal/ui/input/types"
)

// RegionSelectMode picks a region filter. Moving the highlight applies the
// region at once; esc restores the region that was active on entry.
type RegionSelectMode struct {
	regionIndex   int
	originalIndex int
}

func NewRegionSelectMode() *RegionSelectMode {
	return &RegionSelectMode{}
}

func (m *RegionSelectMode) Name() string {
	return "region"
}

func (m *RegionSelectMode) Enter(ctx types.Context) []types.Action {
	m.regionIndex = domain.RegionIndex(ctx.CurrentRegion())
	m.originalIndex = m.regionIndex
	return []types.Action{types.UpdateRegionIndexAction{Index: m.regionIndex}}
}

func (m *RegionSelectMode) Exit(ctx types.Context) []types.Action {
	return nil
}

// HandleKey processes key messages for region selection
func (m *RegionSelectMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc", "q":
		actions := []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}
		if m.regionIndex != m.originalIndex {
			m.regionIndex = m.originalIndex
			actions = append([]types.Action{
				types.SelectRegionAction{Region: domain.Regions[m.originalIndex].Key},
			}, actions...)
		}
		return actions, true

	case "enter":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case "up", "k":
		return m.move(-1), true

	case "down", "j":
		return m.move(1), true
	}

	// number keys jump straight to a region
	if s := msg.String(); len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		i := int(s[0] - '0')
		if i < len(domain.Regions) && i != m.regionIndex {
			m.regionIndex = i
			return m.apply(), true
		}
		return nil, true
	}

	return nil, false
}

// GetCurrentIndex returns the highlighted region index
func (m *RegionSelectMode) GetCurrentIndex() int {
	return m.regionIndex
}

func (m *RegionSelectMode) move(delta int) []types.Action {
	m.regionIndex = (m.regionIndex + delta + len(domain.Regions)) % len(domain.Regions)
	return m.apply()
}

func (m *RegionSelectMode) apply() []types.Action {
	return []types.Action{
		types.UpdateRegionIndexAction{Index: m.regionIndex},
		types.SelectRegionAction{Region: domain.Regions[m.regionIndex].Key},
	}
}
