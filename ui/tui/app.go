package tui

import (
	"fmt"
	"math"
	"time"

	"artspace/internal/catalog"
	"artspace/internal/gallery"
	"artspace/ui/tui/components"
	"artspace/ui/tui/state"
	"artspace/ui/tui/views"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"
)

// slideDistance is how far, in columns, a new artwork starts from centre.
const slideDistance = 6.0

// Options toggles optional behaviour of the gallery screen.
type Options struct {
	Mouse   bool
	Animate bool
}

// MainModel is the Bubble Tea Model acting as the Controller
type MainModel struct {
	catalog *catalog.Catalog
	nav     *gallery.Navigator
	log     *zap.Logger
	opts    Options

	keys    KeyMap
	help    help.Model
	artwork *components.ArtworkWidget

	spring    harmonica.Spring
	slide     float64
	velocity  float64
	animating bool

	scrollY       int
	contentHeight int
	quitting      bool
	width         int
	height        int
}

// Messages
type AnimateMsg time.Time

func InitialModel(c *catalog.Catalog, log *zap.Logger, opts Options) (MainModel, error) {
	nav, err := gallery.NewNavigator(c.Size())
	if err != nil {
		return MainModel{}, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	layout := views.ComputeLayout(0, 0)

	return MainModel{
		catalog: c,
		nav:     nav,
		log:     log,
		opts:    opts,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		artwork: components.NewArtworkWidget(layout.ImageCols, layout.ImageRows),
		spring:  harmonica.NewSpring(harmonica.FPS(60), 8.0, 0.8),
	}, nil
}

func (m *MainModel) Init() tea.Cmd {
	zone.NewGlobal()
	return nil
}

// Commands
func animateCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*16, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case AnimateMsg:
		return m.handleAnimateMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Previous):
		return m, m.previous()
	case key.Matches(msg, m.keys.Next):
		return m, m.next()
	case key.Matches(msg, m.keys.ToggleInfo):
		m.toggleInfo()
	case key.Matches(msg, m.keys.ScrollUp):
		m.scroll(-1)
	case key.Matches(msg, m.keys.ScrollDown):
		m.scroll(1)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scroll(-1)
		return m, nil
	case msg.Button == tea.MouseButtonWheelDown:
		m.scroll(1)
		return m, nil
	}

	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	for _, id := range []string{views.ZoneArtwork, views.ZonePrevious, views.ZoneNext} {
		if zone.Get(id).InBounds(msg) {
			return m, m.handleClick(id)
		}
	}
	return m, nil
}

// handleClick dispatches a click on one of the screen's zones.
func (m *MainModel) handleClick(id string) tea.Cmd {
	switch id {
	case views.ZoneArtwork:
		m.toggleInfo()
	case views.ZonePrevious:
		return m.previous()
	case views.ZoneNext:
		return m.next()
	}
	return nil
}

func (m *MainModel) next() tea.Cmd {
	s := m.nav.Next()
	m.log.Debug("navigate", zap.String("action", "next"), zap.Int("index", s.Index))
	return m.startSlide(slideDistance)
}

func (m *MainModel) previous() tea.Cmd {
	s := m.nav.Previous()
	m.log.Debug("navigate", zap.String("action", "previous"), zap.Int("index", s.Index))
	return m.startSlide(-slideDistance)
}

func (m *MainModel) toggleInfo() {
	s := m.nav.ToggleInfo()
	m.log.Debug("toggle info", zap.Int("index", s.Index), zap.Bool("info_visible", s.InfoVisible))
}

// startSlide begins the entrance animation of a new artwork. The navigation
// state has already changed; only the drawing position animates.
func (m *MainModel) startSlide(from float64) tea.Cmd {
	if !m.opts.Animate {
		return nil
	}
	m.slide = from
	m.velocity = 0
	if m.animating {
		return nil
	}
	m.animating = true
	return animateCmd()
}

func (m *MainModel) handleAnimateMsg(msg AnimateMsg) (tea.Model, tea.Cmd) {
	if !m.animating {
		return m, nil
	}
	m.slide, m.velocity = m.spring.Update(m.slide, m.velocity, 0)
	if math.Abs(m.slide) < 0.05 && math.Abs(m.velocity) < 0.05 {
		m.slide = 0
		m.velocity = 0
		m.animating = false
		return m, nil
	}
	return m, animateCmd()
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	layout := views.ComputeLayout(msg.Width, msg.Height)
	m.artwork.Resize(layout.ImageCols, layout.ImageRows)
	m.scrollY = 0
	return m, nil
}

func (m *MainModel) scroll(delta int) {
	m.scrollY = views.ClampScroll(m.scrollY+delta, m.contentHeight, m.height)
}

func (m *MainModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading gallery..."
	}

	s := state.Snapshot(m.catalog, m.nav)
	if s.Err != nil {
		m.log.Error("resolve artwork", zap.Int("index", s.Nav.Index), zap.Error(s.Err))
	} else if err := m.artwork.SetArtwork(s.Assets); err != nil {
		m.log.Error("decode artwork", zap.String("image", s.Assets.Image.Name), zap.Error(err))
	}

	out, contentHeight := views.RenderGallery(
		s,
		m.width,
		m.height,
		m.artwork.View(),
		int(math.Round(m.slide)),
		m.scrollY,
		m.help.View(m.keys),
	)
	m.contentHeight = contentHeight
	return out
}

func Start(c *catalog.Catalog, log *zap.Logger, opts Options) error {
	m, err := InitialModel(c, log, opts)
	if err != nil {
		return err
	}

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(&m, programOpts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running gallery: %w", err)
	}
	return nil
}
