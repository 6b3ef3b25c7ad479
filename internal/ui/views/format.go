package views

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"countryexplorer/internal/domain"
)

const (
	notAvailable   = "N/A"
	noFlag         = "No flag available"
	unknownCountry = "Unknown Country"
)

var printer = message.NewPrinter(language.English)

// CountryName returns the common name, or a placeholder when it is missing
func CountryName(name domain.Name) string {
	if name.Common == "" {
		return unknownCountry
	}
	return name.Common
}

// FormatPopulation renders a population with thousands separators. Zero is unknown.
func FormatPopulation(n uint64) string {
	if n == 0 {
		return notAvailable
	}
	return printer.Sprintf("%d", n)
}

// FlagURL prefers the SVG flag and falls back to the PNG one
func FlagURL(flags domain.Flags) string {
	switch {
	case flags.SVG != "":
		return flags.SVG
	case flags.PNG != "":
		return flags.PNG
	default:
		return noFlag
	}
}

// FlagAlt returns the flag description
func FlagAlt(flags domain.Flags, name domain.Name) string {
	if flags.Alt != "" {
		return flags.Alt
	}
	return "Flag of " + CountryName(name)
}

// OrNA returns s, or N/A when s is blank
func OrNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	return s
}

// JoinOrNA joins values with ", ", or returns N/A for an empty list
func JoinOrNA(values []string) string {
	if len(values) == 0 {
		return notAvailable
	}
	return strings.Join(values, ", ")
}

// FormatLanguages lists language names ordered by language code
func FormatLanguages(languages map[string]string) string {
	if len(languages) == 0 {
		return notAvailable
	}
	codes := sortedKeys(languages)
	names := make([]string, 0, len(codes))
	for _, code := range codes {
		names = append(names, languages[code])
	}
	return strings.Join(names, ", ")
}

// FormatCurrencies lists currencies as "Name (symbol)" ordered by currency code
func FormatCurrencies(currencies map[string]domain.Currency) string {
	if len(currencies) == 0 {
		return notAvailable
	}
	codes := sortedKeys(currencies)
	parts := make([]string, 0, len(codes))
	for _, code := range codes {
		c := currencies[code]
		name := c.Name
		if name == "" {
			name = code
		}
		if c.Symbol == "" {
			parts = append(parts, name)
			continue
		}
		parts = append(parts, name+" ("+c.Symbol+")")
	}
	return strings.Join(parts, ", ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
