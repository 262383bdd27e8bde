package views

import (
	"artspace/ui/tui/state"
)

// Zone IDs for the clickable regions of the screen.
const (
	ZoneArtwork  = "artwork"
	ZonePrevious = "btn_prev"
	ZoneNext     = "btn_next"
)

// ViewProps contains UI-specific properties provided by the Controller.
type ViewProps struct {
	Width, Height int

	// Component States
	ImageView   string
	SlideOffset int
	ScrollY     int
	HelpView    string
}

// View defines the contract for any renderable page in the TUI.
type View interface {
	Render(s state.AppState, props ViewProps) string
}
