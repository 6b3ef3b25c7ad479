package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"countryexplorer/internal/domain"
)

func TestFormatPopulation(t *testing.T) {
	tests := []struct {
		name string
		in   uint64
		want string
	}{
		{"zero is unknown", 0, "N/A"},
		{"small", 812, "812"},
		{"thousands", 125836021, "125,836,021"},
		{"billions", 1402112000, "1,402,112,000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPopulation(tt.in))
		})
	}
}

func TestFlagURL(t *testing.T) {
	assert.Equal(t, "a.svg", FlagURL(domain.Flags{SVG: "a.svg", PNG: "a.png"}))
	assert.Equal(t, "a.png", FlagURL(domain.Flags{PNG: "a.png"}))
	assert.Equal(t, "No flag available", FlagURL(domain.Flags{}))
}

func TestFlagAlt(t *testing.T) {
	assert.Equal(t, "A red disc", FlagAlt(domain.Flags{Alt: "A red disc"}, domain.Name{Common: "Japan"}))
	assert.Equal(t, "Flag of Japan", FlagAlt(domain.Flags{}, domain.Name{Common: "Japan"}))
	assert.Equal(t, "Flag of Unknown Country", FlagAlt(domain.Flags{}, domain.Name{}))
}

func TestCountryNameAndFallbacks(t *testing.T) {
	assert.Equal(t, "Japan", CountryName(domain.Name{Common: "Japan"}))
	assert.Equal(t, "Unknown Country", CountryName(domain.Name{Official: "Nowhere"}))

	assert.Equal(t, "N/A", OrNA(""))
	assert.Equal(t, "N/A", OrNA("  "))
	assert.Equal(t, "Asia", OrNA("Asia"))

	assert.Equal(t, "N/A", JoinOrNA(nil))
	assert.Equal(t, "Pretoria, Bloemfontein, Cape Town", JoinOrNA([]string{"Pretoria", "Bloemfontein", "Cape Town"}))
}

func TestFormatLanguages(t *testing.T) {
	assert.Equal(t, "N/A", FormatLanguages(nil))
	assert.Equal(t, "French, Swiss German, Italian, Romansh", FormatLanguages(map[string]string{
		"roh": "Romansh",
		"ita": "Italian",
		"gsw": "Swiss German",
		"fra": "French",
	}))
}

func TestFormatCurrencies(t *testing.T) {
	assert.Equal(t, "N/A", FormatCurrencies(nil))
	assert.Equal(t, "Japanese yen (¥)", FormatCurrencies(map[string]domain.Currency{
		"JPY": {Name: "Japanese yen", Symbol: "¥"},
	}))
	assert.Equal(t, "Swiss franc, Euro (€)", FormatCurrencies(map[string]domain.Currency{
		"EUR": {Name: "Euro", Symbol: "€"},
		"CHF": {Name: "Swiss franc"},
	}), "ordered by code, symbol optional")
}
