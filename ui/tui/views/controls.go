package views

import (
	"strings"

	"artspace/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

const buttonWidth = 12

// RenderControls draws Previous at the left and Next at the right of a
// full-width row.
func RenderControls(width int) string {
	prev := zone.Mark(ZonePrevious, styles.ButtonStyle.Width(buttonWidth).Render("Previous"))
	next := zone.Mark(ZoneNext, styles.ButtonStyle.Width(buttonWidth).Render("Next"))

	gap := width - 2*sideMarginCols - 2*buttonWidth
	if gap < 1 {
		gap = 1
	}

	fill := lipgloss.NewStyle().Background(styles.Background)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		fill.Render(strings.Repeat(" ", sideMarginCols)),
		prev,
		fill.Render(strings.Repeat(" ", gap)),
		next,
	)
}
