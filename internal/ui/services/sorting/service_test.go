package sorting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"countryexplorer/internal/domain"
)

func sample() []domain.CountrySummary {
	return []domain.CountrySummary{
		{Name: domain.Name{Common: "japan"}, Population: 125, Region: "Asia", Code: "JPN"},
		{Name: domain.Name{Common: "Brazil"}, Population: 203, Region: "Americas", Code: "BRA"},
		{Name: domain.Name{Common: "Chile"}, Population: 19, Region: "Americas", Code: "CHL"},
		{Name: domain.Name{Common: "Fiji"}, Population: 1, Region: "Oceania", Code: "FJI"},
	}
}

func codes(list []domain.CountrySummary) []string {
	out := make([]string, len(list))
	for i, c := range list {
		out[i] = c.Code
	}
	return out
}

func TestSortedModes(t *testing.T) {
	tests := []struct {
		mode Mode
		want []string
	}{
		{ModeAPI, []string{"JPN", "BRA", "CHL", "FJI"}},
		{ModeName, []string{"BRA", "CHL", "FJI", "JPN"}},
		{ModePopulation, []string{"BRA", "JPN", "CHL", "FJI"}},
		{ModeRegion, []string{"BRA", "CHL", "JPN", "FJI"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			list := sample()
			s := NewService(tt.mode)

			assert.Equal(t, tt.want, codes(s.Sorted(list)))
			assert.Equal(t, []string{"JPN", "BRA", "CHL", "FJI"}, codes(list), "input must not be reordered")
		})
	}
}

func TestNextModeCycles(t *testing.T) {
	s := NewService(ModeAPI)
	var seen []Mode
	for range Modes {
		s.NextMode()
		seen = append(seen, s.GetCurrentMode())
	}
	assert.Equal(t, []Mode{ModeName, ModePopulation, ModeRegion, ModeAPI}, seen)
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModePopulation, ParseMode(" Population "))
	assert.Equal(t, ModeAPI, ParseMode("bogus"))
	assert.Equal(t, ModeAPI, NewService("bogus").GetCurrentMode())
	assert.Equal(t, "as returned", NewService(ModeAPI).GetModeString())
}
