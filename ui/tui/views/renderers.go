package views

import (
	"artspace/ui/tui/state"
)

// RenderGallery renders the visible part of the gallery screen and reports
// the full content height so the caller can bound scrolling.
func RenderGallery(s state.AppState, width, height int, imageView string, slideOffset, scrollY int, helpView string) (string, int) {
	return render(s, ViewProps{
		Width:       width,
		Height:      height,
		ImageView:   imageView,
		SlideOffset: slideOffset,
		ScrollY:     scrollY,
		HelpView:    helpView,
	})
}
