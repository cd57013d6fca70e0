// Package carousel binds a pager to the shared calendar state and keeps the
// two in step without feedback loops.
package carousel

import (
	"log"
	"time"

	"github.com/five82/sheetcal/internal/datemath"
	"github.com/five82/sheetcal/internal/pager"
	"github.com/five82/sheetcal/internal/period"
	"github.com/five82/sheetcal/internal/state"
)

// Options configure a Carousel.
type Options struct {
	Kind      datemath.Kind
	Radius    int
	Dwell     time.Duration
	FrameRate int
	// Visible reports whether the carousel is the interactive view. Hidden
	// carousels follow the state silently instead of animating.
	Visible func() bool
}

// Carousel is one pager of week or month pages following the calendar.
type Carousel struct {
	kind    datemath.Kind
	radius  int
	state   *state.Calendar
	math    datemath.Math
	memo    *period.Memo
	pager   *pager.Pager
	visible func() bool
	unsubs  []func()

	resync bool
	jumps  int
}

// New subscribes a carousel to st. Call Close to unsubscribe.
func New(st *state.Calendar, opts Options) *Carousel {
	c := &Carousel{
		kind:    opts.Kind,
		radius:  opts.Radius,
		state:   st,
		math:    st.Math(),
		memo:    period.NewMemo(st.Math()),
		visible: opts.Visible,
	}
	w := c.memo.Derive(st.CurrentDate(), c.kind, c.radius)
	c.pager = pager.New(w, pager.Options{
		Name:       c.kind.String(),
		Dwell:      opts.Dwell,
		FrameRate:  opts.FrameRate,
		OnSettle:   c.handleSettle,
		OnRecenter: c.handleRecenter,
	})
	c.unsubs = append(c.unsubs,
		st.Subscribe(func() { c.follow(pager.ReasonState) }),
		st.DaySubscribe(func() { c.follow(pager.ReasonDayTap) }),
	)
	if c.kind == datemath.Month {
		st.SetDayOfDisplayedMonth(w.Pivot().PeriodStart)
	}
	return c
}

func (c *Carousel) Kind() datemath.Kind   { return c.kind }
func (c *Carousel) Pager() *pager.Pager   { return c.pager }
func (c *Carousel) Window() period.Window { return c.pager.Window() }

// Jumps counts the animated jumps this carousel has issued.
func (c *Carousel) Jumps() int { return c.jumps }

// Busy reports whether the carousel needs more frames.
func (c *Carousel) Busy() bool {
	return c.pager.Busy() || c.resync
}

// Advance runs one frame. A resync requested by a landing that missed the
// selection is started once the guard is free again.
func (c *Carousel) Advance(now time.Time) {
	c.pager.Advance(now)
	if c.resync && c.pager.Guard().Phase() == pager.Idle {
		c.resync = false
		c.follow(pager.ReasonState)
	}
}

// Swipe pages by dir as a user gesture.
func (c *Carousel) Swipe(dir int) bool {
	return c.pager.Swipe(dir)
}

// Reset drops any animation and re-centers on the current date.
func (c *Carousel) Reset() {
	c.resync = false
	c.pager.Reset(c.memo.Derive(c.state.CurrentDate(), c.kind, c.radius))
}

// Close unsubscribes from the calendar.
func (c *Carousel) Close() {
	for _, unsub := range c.unsubs {
		unsub()
	}
	c.unsubs = nil
}

func (c *Carousel) isVisible() bool {
	return c.visible != nil && c.visible()
}

// follow reacts to a state change. It issues at most one animated jump, and
// only when this carousel is on screen, idle, and not already showing the
// selected period.
func (c *Carousel) follow(reason pager.Reason) {
	cur := c.state.CurrentDate()
	guard := c.pager.Guard()

	switch guard.Phase() {
	case pager.UserScrollInFlight:
		// The write came from this pager's own settle.
		c.pager.Bind(c.memo.Derive(cur, c.kind, c.radius))
		return
	case pager.ProgrammaticScrollInFlight:
		c.pager.Bind(period.Follow(c.math, c.pager.Window(), cur))
		return
	}

	shown := c.pager.Visible()
	if shown.Contains(c.math, cur) {
		c.pager.Bind(c.memo.Derive(cur, c.kind, c.radius))
		return
	}

	if !c.isVisible() {
		c.pager.Bind(c.memo.Derive(cur, c.kind, c.radius))
		return
	}

	step := 1
	if c.math.Compare(cur, shown.PeriodStart, c.kind) == datemath.Before {
		step = -1
	}
	if c.pager.JumpTo(c.pager.Index()+step, true, reason) {
		c.jumps++
	}
	c.pager.Bind(period.Follow(c.math, c.pager.Window(), cur))
}

func (c *Carousel) handleSettle(ev pager.Settle) {
	cur := c.state.CurrentDate()

	if ev.Origin == pager.OriginProgrammatic {
		c.showMonth(ev.Snapshot)
		if !ev.Snapshot.Contains(c.math, cur) {
			log.Printf("carousel %s: landed on %s, selection moved on; resyncing", c.kind, ev.Snapshot.ID)
			c.resync = true
		}
		return
	}

	if ev.Clamped || ev.Snapshot.Contains(c.math, cur) {
		c.showMonth(ev.Snapshot)
		return
	}

	date := c.landingDate(ev.Snapshot, cur)
	c.state.SelectPreviousDate(cur)
	c.state.SelectDate(date)
	c.showMonth(ev.Snapshot)
}

func (c *Carousel) handleRecenter(snap period.Snapshot) {
	c.showMonth(snap)
}

func (c *Carousel) showMonth(snap period.Snapshot) {
	if c.kind == datemath.Month {
		c.state.SetDayOfDisplayedMonth(snap.PeriodStart)
	}
}

// landingDate picks the date selected after a user swipe. Month pages select
// their first day; week pages keep the weekday of the old selection.
func (c *Carousel) landingDate(snap period.Snapshot, cur time.Time) time.Time {
	if c.kind == datemath.Month {
		return snap.PeriodStart
	}
	offset := (int(cur.Weekday()) - int(c.math.WeekStart) + 7) % 7
	return snap.PeriodStart.AddDate(0, 0, offset)
}
