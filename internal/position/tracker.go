// Package position records the on-screen offsets the sheet morph anchors to.
package position

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/five82/sheetcal/internal/datemath"
)

// DayCell is one laid-out day on a month page.
type DayCell struct {
	Date time.Time
	// PageMonth is any date in the month whose page holds the cell. Padding
	// cells from neighbouring months still belong to this page.
	PageMonth time.Time
	OffsetY   float64
}

// Measurer answers layout queries for day cells on a month page.
type Measurer interface {
	OffsetY(date, pageMonth time.Time) (float64, bool)
}

// Values is a consistent read of both offsets.
type Values struct {
	SelectedDayOffset float64
	WeekRowOffset     float64
}

// Tracker holds the latest measured offsets. Writes come from layout passes
// and reads from frame code; both may happen on any goroutine.
type Tracker struct {
	math        datemath.Math
	selectedDay atomic.Uint64
	weekRow     atomic.Uint64
}

func NewTracker(m datemath.Math) *Tracker {
	return &Tracker{math: m}
}

// ReportDay records cell's offset when it is the selected day on the page of
// the displayed month. Cells from other pages are ignored so that the
// off-screen pages of the month pager cannot overwrite the value.
func (t *Tracker) ReportDay(cell DayCell, selected, displayedMonth time.Time) bool {
	if !t.math.IsSameDay(cell.Date, selected) {
		return false
	}
	if !t.math.IsSameMonth(cell.PageMonth, displayedMonth) {
		return false
	}
	t.selectedDay.Store(math.Float64bits(cell.OffsetY))
	return true
}

// ReportWeekRow records the collapsed week strip's offset.
func (t *Tracker) ReportWeekRow(y float64) {
	t.weekRow.Store(math.Float64bits(y))
}

// Measure asks m for the selected cell on the displayed month's page.
func (t *Tracker) Measure(m Measurer, selected, displayedMonth time.Time) bool {
	y, ok := m.OffsetY(selected, displayedMonth)
	if !ok {
		return false
	}
	return t.ReportDay(DayCell{Date: selected, PageMonth: displayedMonth, OffsetY: y}, selected, displayedMonth)
}

func (t *Tracker) SelectedDayOffset() float64 {
	return math.Float64frombits(t.selectedDay.Load())
}

func (t *Tracker) WeekRowOffset() float64 {
	return math.Float64frombits(t.weekRow.Load())
}

func (t *Tracker) Values() Values {
	return Values{
		SelectedDayOffset: t.SelectedDayOffset(),
		WeekRowOffset:     t.WeekRowOffset(),
	}
}
