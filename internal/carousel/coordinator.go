package carousel

import (
	"time"

	"github.com/five82/sheetcal/internal/datemath"
	"github.com/five82/sheetcal/internal/state"
)

// CoordinatorOptions configure both carousels.
type CoordinatorOptions struct {
	Radius    int
	Dwell     time.Duration
	FrameRate int
	// Expanded reports whether the month grid is the interactive view.
	Expanded func() bool
}

// Coordinator owns the month and week carousels that share one calendar.
type Coordinator struct {
	State *state.Calendar
	Month *Carousel
	Week  *Carousel
}

// NewCoordinator subscribes a month and a week carousel to st. Call Close
// to unsubscribe both.
func NewCoordinator(st *state.Calendar, opts CoordinatorOptions) *Coordinator {
	expanded := opts.Expanded
	if expanded == nil {
		expanded = func() bool { return false }
	}
	return &Coordinator{
		State: st,
		Month: New(st, Options{
			Kind:      datemath.Month,
			Radius:    opts.Radius,
			Dwell:     opts.Dwell,
			FrameRate: opts.FrameRate,
			Visible:   expanded,
		}),
		Week: New(st, Options{
			Kind:      datemath.Week,
			Radius:    opts.Radius,
			Dwell:     opts.Dwell,
			FrameRate: opts.FrameRate,
			Visible:   func() bool { return !expanded() },
		}),
	}
}

// TapDay selects date as a day-cell tap. Tapping the selected day does
// nothing.
func (c *Coordinator) TapDay(date time.Time) {
	cur := c.State.CurrentDate()
	if c.State.Math().IsSameDay(cur, date) {
		return
	}
	c.State.SelectPreviousDate(cur)
	c.State.DaySelectDate(date)
}

// Today selects today. When today is more than one page away from what
// either carousel shows, both are re-centered without animation.
func (c *Coordinator) Today() {
	today := c.State.Today()
	m := c.State.Math()
	far := func(cr *Carousel) bool {
		shown := cr.Pager().Visible().PeriodStart
		n := m.PeriodsBetween(shown, today, cr.Kind())
		return n > 1 || n < -1
	}
	reset := far(c.Month) || far(c.Week)

	c.State.SelectDate(today)
	if reset {
		c.Month.Reset()
		c.Week.Reset()
	}
}

// Advance runs one frame on both carousels.
func (c *Coordinator) Advance(now time.Time) {
	c.Month.Advance(now)
	c.Week.Advance(now)
}

func (c *Coordinator) Busy() bool {
	return c.Month.Busy() || c.Week.Busy()
}

// Active returns the carousel that currently takes input.
func (c *Coordinator) Active(expanded bool) *Carousel {
	if expanded {
		return c.Month
	}
	return c.Week
}

func (c *Coordinator) Close() {
	c.Month.Close()
	c.Week.Close()
}
