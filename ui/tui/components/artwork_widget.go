package components

import (
	"fmt"
	"image"
	"image/color"

	"github.com/NimbleMarkets/ntcharts/canvas"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"artspace/internal/catalog"
	"artspace/internal/imaging"
)

// halfBlock draws two vertically stacked pixels per cell: foreground on top,
// background below.
const halfBlock = '▀'

// ArtworkWidget draws an artwork onto a cell canvas, two pixel rows per
// terminal row.
type ArtworkWidget struct {
	Canvas canvas.Model
	Cols   int
	Rows   int
	Matte  color.Color

	index    int
	decoded  image.Image
	err      error
	rendered string
	dirty    bool
}

func NewArtworkWidget(cols, rows int) *ArtworkWidget {
	return &ArtworkWidget{
		Canvas: canvas.New(cols, rows),
		Cols:   cols,
		Rows:   rows,
		Matte:  color.White,
		index:  -1,
		dirty:  true,
	}
}

func (w *ArtworkWidget) Init() tea.Cmd {
	return nil
}

func (w *ArtworkWidget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return w, nil
}

// SetArtwork decodes a's image unless it is already the one shown.
func (w *ArtworkWidget) SetArtwork(a catalog.Assets) error {
	if a.Index == w.index && w.decoded != nil {
		return nil
	}
	w.index = a.Index
	w.dirty = true
	w.decoded, w.err = imaging.Decode(a.Image)
	return w.err
}

// Resize changes the drawing area to cols x rows cells.
func (w *ArtworkWidget) Resize(cols, rows int) {
	if cols == w.Cols && rows == w.Rows {
		return
	}
	w.Cols = cols
	w.Rows = rows
	// canvas.Model.Resize keeps the old view size, so start from a fresh canvas.
	w.Canvas = canvas.New(cols, rows)
	w.dirty = true
}

// Err is the decode error of the current artwork, if any.
func (w *ArtworkWidget) Err() error {
	return w.err
}

func (w *ArtworkWidget) View() string {
	if w.err != nil {
		return lipgloss.NewStyle().Width(w.Cols).Height(w.Rows).Render(fmt.Sprintf("image unavailable: %v", w.err))
	}
	if w.decoded == nil {
		return lipgloss.NewStyle().Width(w.Cols).Height(w.Rows).Render("")
	}
	if !w.dirty {
		return w.rendered
	}

	pixels := imaging.Fit(w.decoded, w.Cols, w.Rows*2, w.Matte)
	w.Canvas.Clear()
	for y := 0; y < w.Rows; y++ {
		for x := 0; x < w.Cols; x++ {
			style := lipgloss.NewStyle().
				Foreground(hexColor(pixels.At(x, 2*y))).
				Background(hexColor(pixels.At(x, 2*y+1)))
			w.Canvas.SetCell(canvas.Point{X: x, Y: y}, canvas.NewCellWithStyle(halfBlock, style))
		}
	}

	w.rendered = w.Canvas.View()
	w.dirty = false
	return w.rendered
}

func hexColor(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}
