package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a popup centered on top of a greyed out copy of the main content
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	x := max((width-modalW)/2, 0)
	y := max((height-modalH)/2, 0)

	base := strings.Split(ansi.Strip(mainContent), "\n")
	for len(base) < y+modalH {
		base = append(base, "")
	}

	gray := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	out := make([]string, len(base))
	for i, line := range base {
		out[i] = gray.Render(line)
	}

	for i, popupLine := range strings.Split(styledPopup, "\n") {
		row := base[y+i]
		left := ansi.Truncate(row, x, "")
		if pad := x - lipgloss.Width(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ""
		if rest := lipgloss.Width(row) - x - lipgloss.Width(popupLine); rest > 0 {
			right = ansi.TruncateLeft(row, x+lipgloss.Width(popupLine), "")
		}
		out[y+i] = gray.Render(left) + popupLine + gray.Render(right)
	}

	if height > 0 && len(out) > height {
		out = out[:height]
	}
	return strings.Join(out, "\n")
}
