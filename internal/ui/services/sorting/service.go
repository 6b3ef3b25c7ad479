package sorting

import (
	"sort"
	"strings"

	"countryexplorer/internal/domain"
)

// Service orders results for display. It never modifies the slice it is given.
type Service struct {
	state *State
}

// NewService creates a new sorting service
func NewService(mode Mode) *Service {
	s := &Service{state: &State{CurrentMode: ModeAPI}}
	s.SetMode(mode)
	return s
}

// ParseMode returns the mode named by s, falling back to ModeAPI
func ParseMode(s string) Mode {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m
		}
	}
	return ModeAPI
}

// GetCurrentMode returns the current sort mode
func (s *Service) GetCurrentMode() Mode {
	return s.state.CurrentMode
}

// SetMode sets the sort mode; unknown modes are ignored
func (s *Service) SetMode(mode Mode) {
	for _, known := range Modes {
		if mode == known {
			s.state.CurrentMode = mode
			return
		}
	}
}

// NextMode cycles to the next sort mode
func (s *Service) NextMode() {
	currentIndex := 0
	for i, mode := range Modes {
		if mode == s.state.CurrentMode {
			currentIndex = i
			break
		}
	}
	s.state.CurrentMode = Modes[(currentIndex+1)%len(Modes)]
}

// Sorted returns list in the current order. ModeAPI returns list itself.
func (s *Service) Sorted(list []domain.CountrySummary) []domain.CountrySummary {
	if s.state.CurrentMode == ModeAPI || len(list) < 2 {
		return list
	}

	out := make([]domain.CountrySummary, len(list))
	copy(out, list)

	switch s.state.CurrentMode {
	case ModeName:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name.Common) < strings.ToLower(out[j].Name.Common)
		})

	case ModePopulation:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Population > out[j].Population
		})

	case ModeRegion:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Region != out[j].Region {
				return out[i].Region < out[j].Region
			}
			return strings.ToLower(out[i].Name.Common) < strings.ToLower(out[j].Name.Common)
		})
	}
	return out
}

// GetModeString returns a string representation of the current mode
func (s *Service) GetModeString() string {
	switch s.state.CurrentMode {
	case ModeName:
		return "name"
	case ModePopulation:
		return "population"
	case ModeRegion:
		return "region"
	default:
		return "as returned"
	}
}
