package styles

import "github.com/charmbracelet/lipgloss"

var (
	Background = lipgloss.Color("#627b91")
	CardColor  = lipgloss.Color("#ffffff")
	PanelColor = lipgloss.Color("#d9ffff")
	InkColor   = lipgloss.Color("#1c1b1f")
	Shadow     = lipgloss.Color("#3e4f5e")
	ButtonFill = lipgloss.Color("#6650a4")
	ButtonInk  = lipgloss.Color("#ffffff")
	Subtle     = lipgloss.Color("#c5d1dc")
	ErrorInk   = lipgloss.Color("#b3261e")

	// CardStyle frames the artwork; the heavy bottom and right edges stand in for elevation.
	CardStyle = lipgloss.NewStyle().
			Background(CardColor).
			Padding(1, 2).
			Border(elevatedBorder).
			BorderForeground(Shadow).
			BorderBackground(Background)

	PanelStyle = lipgloss.NewStyle().
			Background(PanelColor).
			Foreground(InkColor)

	TitleStyle = lipgloss.NewStyle().
			Background(PanelColor).
			Foreground(InkColor).
			Bold(true).
			Underline(true).
			PaddingLeft(2).
			PaddingTop(1)

	BylineStyle = lipgloss.NewStyle().
			Background(PanelColor).
			Foreground(InkColor).
			PaddingLeft(2)

	AuthorStyle = lipgloss.NewStyle().
			Background(PanelColor).
			Foreground(InkColor).
			Bold(true)

	DescriptionStyle = lipgloss.NewStyle().
				Background(PanelColor).
				Foreground(InkColor).
				Bold(true).
				Italic(true).
				Align(lipgloss.Center).
				Padding(0, 2)

	ButtonStyle = lipgloss.NewStyle().
			Background(ButtonFill).
			Foreground(ButtonInk).
			Bold(true).
			Align(lipgloss.Center).
			Padding(0, 1)

	HintStyle = lipgloss.NewStyle().
			Background(Background).
			Foreground(Subtle)

	ErrorStyle = lipgloss.NewStyle().
			Background(CardColor).
			Foreground(ErrorInk).
			Bold(true).
			Padding(1, 2)
)

var elevatedBorder = lipgloss.Border{
	Top:         " ",
	Bottom:      "▀",
	Left:        " ",
	Right:       "█",
	TopLeft:     " ",
	TopRight:    "▄",
	BottomLeft:  " ",
	BottomRight: "▀",
}
