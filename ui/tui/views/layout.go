package views

const (
	MaxImageRows = 24
	MinImageRows = 6
	MinImageCols = 9

	topSpacerRows   = 2
	cardGapRows     = 1
	PanelRows       = 5
	controlsRows    = 1
	bottomGapRows   = 1
	hintRows        = 1
	cardChromeRows  = 4 // padding + border, top and bottom
	cardChromeCols  = 6 // padding 2+2, border 1+1
	sideMarginCols  = 4
	fixedScreenRows = topSpacerRows + cardChromeRows + cardGapRows + PanelRows + 1 + controlsRows + bottomGapRows + hintRows
)

// Layout is the size of the artwork image area and of the card around it.
type Layout struct {
	ImageCols int
	ImageRows int
	CardWidth int
}

// ComputeLayout fits a 3:4 image (two pixels per row) into the terminal.
// Below the minimum size the screen scrolls instead of shrinking further.
func ComputeLayout(width, height int) Layout {
	rows := height - fixedScreenRows
	rows = min(max(rows, MinImageRows), MaxImageRows)
	cols := rows * 3 / 2

	if maxCols := width - cardChromeCols - 2*sideMarginCols; cols > maxCols {
		cols = max(maxCols, MinImageCols)
		rows = max(cols*2/3, MinImageRows)
	}

	return Layout{
		ImageCols: cols,
		ImageRows: rows,
		CardWidth: cols + cardChromeCols,
	}
}
