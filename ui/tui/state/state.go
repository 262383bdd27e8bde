package state

import (
	"artspace/internal/catalog"
	"artspace/internal/gallery"
	"artspace/internal/output"
)

// AppState is the snapshot a frame is rendered from. It is rebuilt on
// every View from the navigator and the catalog; nothing here is stored.
type AppState struct {
	Name   string
	Size   int
	Nav    gallery.State
	Assets catalog.Assets
	Panel  output.Panel
	Err    error
}

// Snapshot resolves the assets for the navigator's current index.
func Snapshot(c *catalog.Catalog, nav *gallery.Navigator) AppState {
	s := AppState{
		Name: c.Name(),
		Size: nav.Size(),
		Nav:  nav.State(),
	}
	a, err := c.Resolve(s.Nav.Index)
	if err != nil {
		s.Err = err
		return s
	}
	s.Assets = a
	s.Panel = output.BuildPanel(a, s.Nav.InfoVisible)
	return s
}
