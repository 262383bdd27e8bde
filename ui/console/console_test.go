package console

import (
	"bytes"
	"strings"
	"testing"

	"artspace/internal/catalog"
	"artspace/internal/output"
)

func TestColorFor(t *testing.T) {
	tests := []struct {
		kind     output.PanelKind
		expected string
	}{
		{output.PanelInfo, colorGreen},
		{output.PanelDescription, colorYellow},
		{"", colorGreen},
	}

	for _, tt := range tests {
		result := colorFor(tt.kind)
		if result != tt.expected {
			t.Errorf("colorFor(%q) = %q; want %q", tt.kind, result, tt.expected)
		}
	}
}

func TestPrintListing(t *testing.T) {
	l := output.Listing{
		Name: "Test Gallery",
		Rows: []output.Row{
			{Index: 0, Title: "Short", Author: "A. Painter", Year: "1900"},
			{Index: 1, Title: strings.Repeat("Very long title ", 5), Author: "B. Painter", Year: "1901"},
		},
	}

	var buf bytes.Buffer
	PrintListing(&buf, l)
	out := buf.String()

	for _, want := range []string{"TEST GALLERY", "   1 Short", "A. Painter", "(1900)", "   2 Very long", "...", "2 artworks"} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q:\n%s", want, out)
		}
	}
}

func TestPrintArtwork(t *testing.T) {
	a := catalog.Assets{
		Index:       2,
		Image:       catalog.Image{Name: "img2.svg"},
		Title:       "Black Square",
		Author:      "Kazimir Malevich",
		Year:        "1915",
		Description: strings.Repeat("word ", 40),
	}

	var buf bytes.Buffer
	PrintArtwork(&buf, a, 10)
	out := buf.String()

	for _, want := range []string{"Black Square", "3 / 10", "Kazimir Malevich  (1915)", "img2.svg", "description"} {
		if !strings.Contains(out, want) {
			t.Errorf("artwork missing %q:\n%s", want, out)
		}
	}
}

func TestPrintListingTruncatesLongTitles(t *testing.T) {
	l := output.Listing{
		Name: "Gallery",
		Rows: []output.Row{{Index: 0, Title: strings.Repeat("x", 60), Author: "A", Year: "1900"}},
	}

	var buf bytes.Buffer
	PrintListing(&buf, l)

	want := "   1 " + strings.Repeat("x", labelWidth-5) + "..."
	if !strings.Contains(buf.String(), want) {
		t.Errorf("listing missing truncated title %q:\n%s", want, buf.String())
	}
	if strings.Contains(buf.String(), strings.Repeat("x", labelWidth-4)) {
		t.Error("title not truncated to the label width")
	}
}

func TestPrintArtworkWrapsDescription(t *testing.T) {
	a := catalog.Assets{
		Index:       0,
		Title:       "Amorpha",
		Author:      "František Kupka",
		Year:        "1912",
		Description: strings.Repeat("ribbon ", 30),
	}

	var buf bytes.Buffer
	PrintArtwork(&buf, a, 10)

	var wrapped int
	for _, line := range strings.Split(buf.String(), "\n") {
		if !strings.Contains(line, "ribbon") {
			continue
		}
		wrapped++
		text := strings.TrimSuffix(strings.TrimPrefix(line, "  "+colorYellow), colorReset)
		if n := len(strings.TrimRight(text, " ")); n > wrapWidth {
			t.Errorf("description line is %d wide, want at most %d: %q", n, wrapWidth, text)
		}
	}
	if wrapped < 2 {
		t.Errorf("expected the description on several lines, got %d", wrapped)
	}
}
