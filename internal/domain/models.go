package domain

import "strings"

// Name holds the common and official names of a country
type Name struct {
	Common   string `json:"common"`
	Official string `json:"official"`
}

// Flags holds flag image locations
type Flags struct {
	PNG string `json:"png,omitempty"`
	SVG string `json:"svg,omitempty"`
	Alt string `json:"alt,omitempty"`
}

// CountrySummary is the reduced record returned by list queries
type CountrySummary struct {
	Name       Name     `json:"name"`
	Flags      Flags    `json:"flags"`
	Population uint64   `json:"population"`
	Region     string   `json:"region"`
	Capital    []string `json:"capital"`
	Code       string   `json:"cca3"` // unique, stable identifier
}

// Currency describes a currency used by a country
type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// CountryDetail is the full record shown by the detail view
type CountryDetail struct {
	CountrySummary
	Subregion  string              `json:"subregion"`
	Languages  map[string]string   `json:"languages"`  // language code -> name
	Currencies map[string]Currency `json:"currencies"` // currency code -> currency
	Borders    []string            `json:"borders"`    // neighbour country codes
	Timezones  []string            `json:"timezones"`
}

// Region is a value accepted by the region filter
type Region struct {
	Key   string // API value, "" for all regions
	Label string
}

// Regions lists the region filter options in display order
var Regions = []Region{
	{Key: "", Label: "All Regions"},
	{Key: "africa", Label: "Africa"},
	{Key: "americas", Label: "Americas"},
	{Key: "asia", Label: "Asia"},
	{Key: "europe", Label: "Europe"},
	{Key: "oceania", Label: "Oceania"},
}

// RegionIndex returns the index of key in Regions, or 0 (all regions) if unknown
func RegionIndex(key string) int {
	key = strings.ToLower(strings.TrimSpace(key))
	for i, r := range Regions {
		if r.Key == key {
			return i
		}
	}
	return 0
}
