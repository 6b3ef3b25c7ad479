package views

import (
	"fmt"
	"strings"

	"countryexplorer/internal/domain"
	"countryexplorer/internal/ui/services/detail"
)

// DetailRenderer renders the country detail page
type DetailRenderer struct {
	styles *Styles
}

// NewDetailRenderer creates a new detail renderer
func NewDetailRenderer(styles *Styles) *DetailRenderer {
	return &DetailRenderer{
		styles: styles,
	}
}

// Render renders the detail page for the loader state
func (d *DetailRenderer) Render(state detail.State, borderIndex int, spinner string) string {
	var b strings.Builder
	b.WriteString(d.styles.Dim.Render("← Back to Countries (esc)"))
	b.WriteString("\n\n")

	switch state.Status {
	case detail.StatusLoading:
		b.WriteString(d.styles.StatusLoading.Render(spinner + " Loading country details..."))
	case detail.StatusNotFound:
		b.WriteString(d.styles.StatusError.Render(state.ErrorMessage()))
		b.WriteString("\n\n")
		b.WriteString("We couldn't find the country you're looking for. It may not exist.")
	case detail.StatusFailed:
		b.WriteString(d.styles.StatusError.Render(state.ErrorMessage()))
		b.WriteString("\n\n")
		b.WriteString("Something went wrong while loading this country. Check your connection\n")
		b.WriteString("and try again.")
		b.WriteString("\n\n")
		b.WriteString(d.styles.Dim.Render("Press r to retry"))
	case detail.StatusReady:
		if state.Detail != nil {
			b.WriteString(d.renderCountry(state.Detail, borderIndex))
		}
	}
	return b.String()
}

func (d *DetailRenderer) renderCountry(c *domain.CountryDetail, borderIndex int) string {
	var b strings.Builder

	b.WriteString(d.styles.Heading.Render(CountryName(c.Name)))
	b.WriteString("\n")
	if c.Name.Official != "" {
		b.WriteString(d.styles.Official.Render(c.Name.Official))
		b.WriteString("\n")
	}
	b.WriteString(d.field("Flag", FlagURL(c.Flags)))
	b.WriteString("\n")

	b.WriteString(d.styles.Section.Render("General Information"))
	b.WriteString("\n")
	b.WriteString(d.field("Population", FormatPopulation(c.Population)))
	b.WriteString(d.field("Region", OrNA(c.Region)))
	b.WriteString(d.field("Sub Region", OrNA(c.Subregion)))
	b.WriteString(d.field("Capital", JoinOrNA(c.Capital)))

	b.WriteString(d.styles.Section.Render("Cultural Information"))
	b.WriteString("\n")
	b.WriteString(d.field("Languages", FormatLanguages(c.Languages)))
	b.WriteString(d.field("Currencies", FormatCurrencies(c.Currencies)))
	b.WriteString(d.field("Timezones", JoinOrNA(c.Timezones)))

	if len(c.Borders) > 0 {
		codes := make([]string, len(c.Borders))
		for i, code := range c.Borders {
			if i == borderIndex {
				codes[i] = d.styles.BorderActive.Render(code)
			} else {
				codes[i] = d.styles.Border.Render(code)
			}
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", d.styles.Label.Render("Border Countries:"), strings.Join(codes, " ")))
		b.WriteString(d.styles.Dim.Render("  ←/→ to pick a neighbour • Enter to open it"))
		b.WriteString("\n")
	}
	return b.String()
}

func (d *DetailRenderer) field(label, value string) string {
	return fmt.Sprintf("  %s %s\n", d.styles.Label.Render(label+":"), value)
}

// PlainText renders a loaded country without styling for the pager
func PlainText(c *domain.CountryDetail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", CountryName(c.Name))
	if c.Name.Official != "" {
		fmt.Fprintf(&b, "%s\n", c.Name.Official)
	}
	fmt.Fprintf(&b, "\nFlag: %s\n", FlagURL(c.Flags))
	fmt.Fprintf(&b, "Flag description: %s\n", FlagAlt(c.Flags, c.Name))

	fmt.Fprintf(&b, "\nGeneral Information\n")
	fmt.Fprintf(&b, "  Population: %s\n", FormatPopulation(c.Population))
	fmt.Fprintf(&b, "  Region: %s\n", OrNA(c.Region))
	fmt.Fprintf(&b, "  Sub Region: %s\n", OrNA(c.Subregion))
	fmt.Fprintf(&b, "  Capital: %s\n", JoinOrNA(c.Capital))

	fmt.Fprintf(&b, "\nCultural Information\n")
	fmt.Fprintf(&b, "  Languages: %s\n", FormatLanguages(c.Languages))
	fmt.Fprintf(&b, "  Currencies: %s\n", FormatCurrencies(c.Currencies))
	fmt.Fprintf(&b, "  Timezones: %s\n", JoinOrNA(c.Timezones))
	if len(c.Borders) > 0 {
		fmt.Fprintf(&b, "  Border Countries: %s\n", strings.Join(c.Borders, ", "))
	}
	return b.String()
}
