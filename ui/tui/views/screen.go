package views

import (
	"fmt"
	"strings"

	"artspace/internal/output"
	"artspace/ui/tui/state"
	"artspace/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

type GalleryView struct{}

func (v GalleryView) Render(s state.AppState, props ViewProps) string {
	out, _ := render(s, props)
	return out
}

// render returns the visible rows and the height of the uncropped screen.
func render(s state.AppState, props ViewProps) (string, int) {
	full := Compose(s, props)
	return zone.Scan(Crop(full, props.Height, props.ScrollY)), lipgloss.Height(full)
}

// Compose lays out the whole screen top to bottom without cropping.
func Compose(s state.AppState, props ViewProps) string {
	layout := ComputeLayout(props.Width, props.Height)
	center := func(block string) string {
		return lipgloss.PlaceHorizontal(props.Width, lipgloss.Center, block,
			lipgloss.WithWhitespaceBackground(styles.Background))
	}

	var upper []string
	if s.Err != nil {
		upper = append(upper, center(styles.ErrorStyle.Width(layout.CardWidth).Render(
			fmt.Sprintf("Artwork %s could not be shown:\n%v", output.Position(s.Nav.Index, s.Size), s.Err))))
	} else {
		card := slide(RenderArtworkCard(props.ImageView), props.SlideOffset)
		upper = append(upper,
			center(card),
			blank(props.Width, cardGapRows),
			center(RenderPanel(s.Panel, layout.CardWidth)),
		)
	}

	top := lipgloss.JoinVertical(lipgloss.Left, append([]string{blank(props.Width, topSpacerRows)}, upper...)...)

	hint := styles.HintStyle.Width(props.Width).Align(lipgloss.Center).
		Render(output.Position(s.Nav.Index, s.Size) + "  " + props.HelpView)
	bottom := lipgloss.JoinVertical(lipgloss.Left,
		RenderControls(props.Width),
		blank(props.Width, bottomGapRows),
		hint,
	)

	flex := props.Height - lipgloss.Height(top) - lipgloss.Height(bottom)
	if flex < 1 {
		flex = 1
	}

	return lipgloss.Place(props.Width, 0, lipgloss.Left, lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, top, blank(props.Width, flex), bottom),
		lipgloss.WithWhitespaceBackground(styles.Background))
}

// Crop returns the height rows starting at scrollY, clamped to the content.
func Crop(content string, height, scrollY int) string {
	lines := strings.Split(content, "\n")
	total := len(lines)
	if height <= 0 || total <= height {
		return content
	}

	scrollY = ClampScroll(scrollY, total, height)
	return strings.Join(lines[scrollY:scrollY+height], "\n")
}

// ClampScroll keeps scrollY within [0, total-height].
func ClampScroll(scrollY, total, height int) int {
	if scrollY > total-height {
		scrollY = total - height
	}
	if scrollY < 0 {
		scrollY = 0
	}
	return scrollY
}

// slide shifts a block horizontally by offset columns once centred.
func slide(block string, offset int) string {
	if offset == 0 {
		return block
	}
	pad := lipgloss.NewStyle().Background(styles.Background)
	if offset > 0 {
		return pad.PaddingLeft(2 * offset).Render(block)
	}
	return pad.PaddingRight(-2 * offset).Render(block)
}

func blank(width, rows int) string {
	if rows <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Background(styles.Background).Width(width).Height(rows).Render("")
}
