package views

import (
	"artspace/internal/output"
	"artspace/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// RenderInfo shows the title, then the author in bold followed by the year.
func RenderInfo(p output.Panel, width int) string {
	title := styles.TitleStyle.Width(width).Render(p.Title)

	byline := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.AuthorStyle.Render(p.Author),
		styles.PanelStyle.Render("  "+output.ParenYear(p.Year)),
	)

	return styles.PanelStyle.
		Width(width).
		Height(PanelRows).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			title,
			styles.BylineStyle.Width(width).Render(byline),
		))
}

// RenderDescription shows the description centred in the panel.
func RenderDescription(p output.Panel, width int) string {
	return styles.DescriptionStyle.
		Width(width).
		Height(PanelRows).
		AlignVertical(lipgloss.Center).
		Render(p.Description)
}

// RenderPanel picks the info or description panel.
func RenderPanel(p output.Panel, width int) string {
	if p.Kind == output.PanelDescription {
		return RenderDescription(p, width)
	}
	return RenderInfo(p, width)
}
