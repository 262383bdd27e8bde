package console

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"artspace/internal/catalog"
	"artspace/internal/output"
)

const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

const (
	labelWidth = 40
	wrapWidth  = 60
)

// PrintListing renders the catalog in the compact dotted-leader format.
func PrintListing(w io.Writer, l output.Listing) {
	fmt.Fprintf(w, "%s%s %s%s\n", colorCyan, "■", strings.ToUpper(l.Name), colorReset)

	for _, r := range l.Rows {
		label := truncate.StringWithTail(r.Title, labelWidth-2, "...")
		dots := strings.Repeat("·", labelWidth-utf8.RuneCountInString(label))

		// Format: "   1 Title.............. Author (year)"
		fmt.Fprintf(w, "%4d %s%s %s%s%s %s\n",
			r.Index+1,
			label,
			colorCyan+dots+colorReset,
			colorFor(output.PanelInfo), r.Author, colorReset,
			output.ParenYear(r.Year),
		)
	}

	fmt.Fprintf(w, "%s─ Summary%s: %d artworks\n\n", colorCyan, colorReset, len(l.Rows))
}

// PrintArtwork renders both panels of one artwork.
func PrintArtwork(w io.Writer, a catalog.Assets, size int) {
	fmt.Fprintf(w, "%s■ %s%s  %s\n", colorCyan, a.Title, colorReset, output.Position(a.Index, size))

	info := output.BuildPanel(a, true)
	fmt.Fprintf(w, "%s─ %s%s\n", colorCyan, info.Kind, colorReset)
	fmt.Fprintf(w, "  %s%s%s\n", colorFor(info.Kind), info.Byline(), colorReset)
	fmt.Fprintf(w, "  %s\n", a.Image.Name)

	desc := output.BuildPanel(a, false)
	fmt.Fprintf(w, "%s─ %s%s\n", colorCyan, desc.Kind, colorReset)
	for _, line := range strings.Split(wordwrap.String(desc.Description, wrapWidth), "\n") {
		fmt.Fprintf(w, "  %s%s%s\n", colorFor(desc.Kind), line, colorReset)
	}
	fmt.Fprintln(w)
}

func colorFor(kind output.PanelKind) string {
	switch kind {
	case output.PanelDescription:
		return colorYellow
	default:
		return colorGreen
	}
}
