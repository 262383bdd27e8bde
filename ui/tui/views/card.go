package views

import (
	"artspace/ui/tui/styles"

	zone "github.com/lrstanley/bubblezone"
)

// RenderArtworkCard frames the image and marks it as the toggle target.
func RenderArtworkCard(imageView string) string {
	return zone.Mark(ZoneArtwork, styles.CardStyle.Render(imageView))
}
