package ui

import (
	"time"

	"github.com/five82/sheetcal/internal/datemath"
)

// Screen rows above the calendar body.
const (
	// titleRows holds the month label and mode.
	titleRows = 1

	// weekdayRows holds the weekday names.
	weekdayRows = 1

	// gridTop is the first row of the week strip and of the month grid.
	gridTop = titleRows + weekdayRows
)

// Cell geometry.
const (
	// cellWidth is the width of one day cell, e.g. " 17 ".
	cellWidth = 4

	// pageWidth is the width of one week or month page.
	pageWidth = 7 * cellWidth

	// gridRows is the number of week rows on a month page.
	gridRows = datemath.GridCells / 7
)

// Trace overlay limits.
const (
	// traceLines is how many trace lines the overlay reads.
	traceLines = 500
)

// gridLayout answers where day cells land on screen. It implements
// position.Measurer for the month pages.
type gridLayout struct {
	math       datemath.Math
	cellHeight int
}

// OffsetY returns the screen row of date on the month page holding
// pageMonth, measured with the grid fully expanded.
func (g gridLayout) OffsetY(date, pageMonth time.Time) (float64, bool) {
	row := g.math.GridRow(pageMonth, date)
	if row < 0 {
		return 0, false
	}
	return float64(gridTop + row*g.cellHeight), true
}

// threshold is the drag distance between the week strip and the full grid.
func (g gridLayout) threshold() float64 {
	return float64((gridRows - 1) * g.cellHeight)
}

// gridLines is the height of a full month page.
func (g gridLayout) gridLines() int {
	return gridRows * g.cellHeight
}
