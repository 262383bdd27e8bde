package mcpserver

import (
	"context"
	"fmt"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"artspace/internal/catalog"
	"artspace/internal/gallery"
	"artspace/internal/output"
)

// Server wraps the MCP server with gallery capabilities.
type Server struct {
	mcpServer *mcp.Server
	catalog   *catalog.Catalog
	log       *zap.Logger

	// One navigation session per server; tool calls may arrive concurrently.
	navMu sync.Mutex
	nav   *gallery.Navigator
}

// Config holds configuration for the MCP server.
type Config struct {
	ServerName    string
	ServerVersion string
}

// DefaultConfig names the server after the binary.
func DefaultConfig() Config {
	return Config{
		ServerName:    "artspace-mcp",
		ServerVersion: "1.0.0",
	}
}

// NewServer creates a new MCP server instance over c.
func NewServer(cfg Config, c *catalog.Catalog, log *zap.Logger) (*Server, error) {
	nav, err := gallery.NewNavigator(c.Size())
	if err != nil {
		return nil, fmt.Errorf("navigator: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}

	impl := &mcp.Implementation{
		Name:    cfg.ServerName,
		Version: cfg.ServerVersion,
	}

	s := &Server{
		mcpServer: mcp.NewServer(impl, nil),
		catalog:   c,
		log:       log,
		nav:       nav,
	}
	s.registerTools()

	return s, nil
}

// ListArtworksArgs defines the input for list_artworks tool.
type ListArtworksArgs struct{}

// GetArtworkArgs defines the input for get_artwork tool.
type GetArtworkArgs struct {
	Index int `json:"index" jsonschema:"zero-based artwork index"`
}

// ArtworkResult describes one artwork.
type ArtworkResult struct {
	Index       int    `json:"index" jsonschema:"zero-based artwork index"`
	Position    string `json:"position" jsonschema:"one-based position, e.g. 3 / 10"`
	Image       string `json:"image" jsonschema:"image resource name"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Year        string `json:"year"`
	Description string `json:"description"`
}

// GalleryArgs is the empty input of the navigation tools.
type GalleryArgs struct{}

// GalleryStateResult is the navigation session after a tool call.
type GalleryStateResult struct {
	Index       int          `json:"index" jsonschema:"zero-based index of the artwork on display"`
	Position    string       `json:"position" jsonschema:"one-based position, e.g. 3 / 10"`
	InfoVisible bool         `json:"info_visible" jsonschema:"true when the info panel is shown, false for the description"`
	Panel       output.Panel `json:"panel" jsonschema:"content of the panel under the artwork"`
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_artworks",
		Description: "List every artwork in the gallery with its index, title, author and year.",
	}, s.handleListArtworks)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_artwork",
		Description: "Get the title, author, year and description of the artwork at a zero-based index.",
	}, s.handleGetArtwork)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "gallery_state",
		Description: "Show which artwork the gallery session is displaying and whether the info or description panel is visible.",
	}, s.handleGalleryState)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "gallery_next",
		Description: "Advance the gallery to the next artwork, wrapping from the last to the first. Shows the info panel.",
	}, s.handleGalleryNext)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "gallery_previous",
		Description: "Move the gallery to the previous artwork, wrapping from the first to the last. Shows the info panel.",
	}, s.handleGalleryPrevious)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "gallery_toggle_info",
		Description: "Switch the panel under the current artwork between info and description.",
	}, s.handleGalleryToggleInfo)
}

func (s *Server) handleListArtworks(_ context.Context, _ *mcp.CallToolRequest, _ ListArtworksArgs) (*mcp.CallToolResult, output.Listing, error) {
	s.log.Debug("tool call", zap.String("tool", "list_artworks"))
	return nil, output.BuildListing(s.catalog), nil
}

func (s *Server) handleGetArtwork(_ context.Context, _ *mcp.CallToolRequest, args GetArtworkArgs) (*mcp.CallToolResult, ArtworkResult, error) {
	s.log.Debug("tool call", zap.String("tool", "get_artwork"), zap.Int("index", args.Index))

	a, err := s.catalog.Resolve(args.Index)
	if err != nil {
		return nil, ArtworkResult{}, fmt.Errorf("get artwork %d: %w", args.Index, err)
	}

	return nil, ArtworkResult{
		Index:       a.Index,
		Position:    output.Position(a.Index, s.catalog.Size()),
		Image:       a.Image.Name,
		Title:       a.Title,
		Author:      a.Author,
		Year:        a.Year,
		Description: a.Description,
	}, nil
}

func (s *Server) handleGalleryState(_ context.Context, _ *mcp.CallToolRequest, _ GalleryArgs) (*mcp.CallToolResult, GalleryStateResult, error) {
	return s.transition("gallery_state", (*gallery.Navigator).State)
}

func (s *Server) handleGalleryNext(_ context.Context, _ *mcp.CallToolRequest, _ GalleryArgs) (*mcp.CallToolResult, GalleryStateResult, error) {
	return s.transition("gallery_next", (*gallery.Navigator).Next)
}

func (s *Server) handleGalleryPrevious(_ context.Context, _ *mcp.CallToolRequest, _ GalleryArgs) (*mcp.CallToolResult, GalleryStateResult, error) {
	return s.transition("gallery_previous", (*gallery.Navigator).Previous)
}

func (s *Server) handleGalleryToggleInfo(_ context.Context, _ *mcp.CallToolRequest, _ GalleryArgs) (*mcp.CallToolResult, GalleryStateResult, error) {
	return s.transition("gallery_toggle_info", (*gallery.Navigator).ToggleInfo)
}

// transition applies step to the session under the lock and describes the result.
func (s *Server) transition(tool string, step func(*gallery.Navigator) gallery.State) (*mcp.CallToolResult, GalleryStateResult, error) {
	s.navMu.Lock()
	st := step(s.nav)
	s.navMu.Unlock()

	s.log.Debug("tool call",
		zap.String("tool", tool),
		zap.Int("index", st.Index),
		zap.Bool("info_visible", st.InfoVisible),
	)

	a, err := s.catalog.Resolve(st.Index)
	if err != nil {
		s.log.Error("resolve artwork", zap.Int("index", st.Index), zap.Error(err))
		return nil, GalleryStateResult{}, fmt.Errorf("%s: %w", tool, err)
	}

	return nil, GalleryStateResult{
		Index:       st.Index,
		Position:    output.Position(st.Index, s.catalog.Size()),
		InfoVisible: st.InfoVisible,
		Panel:       output.BuildPanel(a, st.InfoVisible),
	}, nil
}

// Start starts the MCP server using stdio transport.
func (s *Server) Start(ctx context.Context) error {
	s.log.Info("starting MCP server on stdio",
		zap.String("catalog", s.catalog.Name()),
		zap.Int("size", s.catalog.Size()),
		zap.String("locale", s.catalog.Locale()),
	)
	transport := &mcp.StdioTransport{}
	return s.mcpServer.Run(ctx, transport)
}
