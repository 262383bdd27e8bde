package views

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artspace/internal/catalog"
	"artspace/internal/gallery"
	"artspace/internal/output"
	"artspace/ui/tui/state"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func snapshot(t *testing.T, steps ...func(*gallery.Navigator) gallery.State) state.AppState {
	t.Helper()
	c, err := catalog.Load(catalog.DefaultConfig())
	require.NoError(t, err)
	nav, err := gallery.NewNavigator(c.Size())
	require.NoError(t, err)
	for _, step := range steps {
		step(nav)
	}
	return state.Snapshot(c, nav)
}

func TestComputeLayout(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          Layout
	}{
		{"roomy terminal caps rows", 80, 50, Layout{ImageCols: 36, ImageRows: 24, CardWidth: 42}},
		{"short terminal keeps minimum", 80, 20, Layout{ImageCols: 9, ImageRows: 6, CardWidth: 15}},
		{"narrow terminal limits columns", 30, 50, Layout{ImageCols: 16, ImageRows: 10, CardWidth: 22}},
		{"tiny terminal keeps minimum", 10, 50, Layout{ImageCols: 9, ImageRows: 6, CardWidth: 15}},
		{"unknown size", 0, 0, Layout{ImageCols: 9, ImageRows: 6, CardWidth: 15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeLayout(tt.width, tt.height))
		})
	}
}

func TestClampScroll(t *testing.T) {
	assert.Equal(t, 5, ClampScroll(5, 10, 4))
	assert.Equal(t, 6, ClampScroll(7, 10, 4))
	assert.Equal(t, 0, ClampScroll(-1, 10, 4))
	assert.Equal(t, 0, ClampScroll(3, 2, 4))
}

func TestCrop(t *testing.T) {
	content := "a\nb\nc\nd"

	assert.Equal(t, "b\nc", Crop(content, 2, 1))
	assert.Equal(t, "c\nd", Crop(content, 2, 10))
	assert.Equal(t, content, Crop(content, 10, 3))
	assert.Equal(t, content, Crop(content, 0, 1))
}

func TestRenderInfo(t *testing.T) {
	p := output.Panel{Kind: output.PanelInfo, Title: "Black Square", Author: "Kazimir Malevich", Year: "1915"}

	out := RenderInfo(p, 40)
	assert.Contains(t, out, "Black Square")
	assert.Contains(t, out, "Kazimir Malevich")
	assert.Contains(t, out, "  (1915)")
	assert.Equal(t, PanelRows, lipgloss.Height(out))
	assert.Equal(t, 40, lipgloss.Width(out))
}

func TestRenderPanelPicksKind(t *testing.T) {
	info := output.Panel{Kind: output.PanelInfo, Title: "Amorpha", Author: "František Kupka", Year: "1912"}
	desc := output.Panel{Kind: output.PanelDescription, Description: "Red and blue ribbons loop around each other."}

	assert.Contains(t, RenderPanel(info, 40), "Amorpha")

	out := RenderPanel(desc, 40)
	assert.Contains(t, out, "ribbons")
	assert.NotContains(t, out, "Amorpha")
	assert.Equal(t, PanelRows, lipgloss.Height(out))
}

func TestRenderControls(t *testing.T) {
	out := zone.Scan(RenderControls(80))

	prev := strings.Index(out, "Previous")
	next := strings.Index(out, "Next")
	require.GreaterOrEqual(t, prev, 0)
	require.Greater(t, next, prev)
	assert.Equal(t, 1, lipgloss.Height(out))
	assert.Equal(t, 80-sideMarginCols, lipgloss.Width(out))
}

func TestRenderArtworkCard(t *testing.T) {
	out := zone.Scan(RenderArtworkCard("xx\nxx"))
	assert.Contains(t, out, "xx")
	assert.Equal(t, 2+cardChromeRows, lipgloss.Height(out))
	assert.Equal(t, 2+cardChromeCols, lipgloss.Width(out))
}

func TestSlide(t *testing.T) {
	assert.Equal(t, "ab", slide("ab", 0))
	assert.Equal(t, 6, lipgloss.Width(slide("ab", 2)))
	assert.Equal(t, 4, lipgloss.Width(slide("ab", -1)))
}

func TestComposeFillsTerminal(t *testing.T) {
	s := snapshot(t)
	props := ViewProps{Width: 80, Height: 50, ImageView: "img", HelpView: "? help"}

	out, height := render(s, props)
	assert.Equal(t, 50, height)
	assert.Equal(t, 50, lipgloss.Height(out))
	assert.Contains(t, out, "Composition with Red")
	assert.Contains(t, out, "Piet Mondrian  (1930)")
	assert.Contains(t, out, "1 / 10")
	assert.Contains(t, out, "? help")
}

func TestComposeDescription(t *testing.T) {
	s := snapshot(t, (*gallery.Navigator).Next, (*gallery.Navigator).ToggleInfo)

	out := GalleryView{}.Render(s, ViewProps{Width: 80, Height: 50, ImageView: "img"})
	assert.Contains(t, out, "2 / 10")
	assert.NotContains(t, out, "Several Circles")
	assert.Contains(t, out, strings.Fields(s.Assets.Description)[0])
}

func TestRenderGalleryScrolls(t *testing.T) {
	s := snapshot(t)

	top, total := RenderGallery(s, 80, 12, "img", 0, 0, "")
	require.Greater(t, total, 12)
	assert.Equal(t, 12, lipgloss.Height(top))

	bottom, _ := RenderGallery(s, 80, 12, "img", 0, total, "")
	assert.Equal(t, 12, lipgloss.Height(bottom))
	assert.Contains(t, bottom, "Previous")
	assert.NotContains(t, top, "Previous")
}

func TestComposeError(t *testing.T) {
	s := state.AppState{Size: 10, Nav: gallery.State{Index: 4, InfoVisible: true}, Err: errors.New("lookup img4: not found")}

	out := Compose(s, ViewProps{Width: 80, Height: 30})
	assert.Contains(t, out, "Artwork 5 / 10")
	assert.NotContains(t, out, "Artwork 4")
	assert.Contains(t, out, "not be shown")
	assert.Contains(t, out, "img4")
}
