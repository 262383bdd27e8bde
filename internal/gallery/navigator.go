// Package gallery holds the navigation state of the gallery screen: which
// artwork is shown and whether its info panel or its description is visible.
package gallery

import "fmt"

// State is a snapshot of the navigation state.
type State struct {
	Index       int
	InfoVisible bool
}

// Navigator owns the navigation state for a catalog of fixed size.
// The index is always in [0, size).
type Navigator struct {
	size        int
	index       int
	infoVisible bool
}

// NewNavigator starts at the first artwork with the info panel visible.
func NewNavigator(size int) (*Navigator, error) {
	if size < 1 {
		return nil, fmt.Errorf("gallery: size must be at least 1, got %d", size)
	}
	return &Navigator{size: size, index: 0, infoVisible: true}, nil
}

// Next moves to the following artwork, wrapping to the first.
func (n *Navigator) Next() State {
	n.index = (n.index + 1) % n.size
	n.infoVisible = true
	return n.State()
}

// Previous moves to the preceding artwork, wrapping to the last.
func (n *Navigator) Previous() State {
	if n.index == 0 {
		n.index = n.size - 1
	} else {
		n.index--
	}
	n.infoVisible = true
	return n.State()
}

// ToggleInfo swaps between the info panel and the description panel.
func (n *Navigator) ToggleInfo() State {
	n.infoVisible = !n.infoVisible
	return n.State()
}

func (n *Navigator) State() State {
	return State{Index: n.index, InfoVisible: n.infoVisible}
}

func (n *Navigator) Index() int        { return n.index }
func (n *Navigator) InfoVisible() bool { return n.infoVisible }
func (n *Navigator) Size() int         { return n.size }
