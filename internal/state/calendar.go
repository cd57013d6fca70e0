package state

import (
	"sync"
	"time"

	"github.com/five82/sheetcal/internal/datemath"
)

// Snapshot is a point-in-time copy of the calendar's dates.
type Snapshot struct {
	Current        time.Time
	Previous       time.Time
	DisplayedMonth time.Time
	Today          time.Time
}

// Option customizes a Calendar at construction.
type Option func(*Calendar)

// WithClock overrides the clock used for the today date.
func WithClock(now func() time.Time) Option {
	return func(c *Calendar) {
		if now != nil {
			c.now = now
		}
	}
}

// WithMath sets the date arithmetic used for same-day and same-month checks.
func WithMath(m datemath.Math) Option {
	return func(c *Calendar) {
		c.math = m
	}
}

type channel int

const (
	generic channel = iota
	dayTap
)

type subscriber struct {
	id int
	fn func()
}

// Calendar is the single source of truth for the selected date. Writes are
// expected from one goroutine (the UI loop); reads are safe from any.
//
// Subscribers are called synchronously after a write, without the lock held.
// A write issued from inside a callback is queued and applied once the
// current dispatch has finished, so notifications never nest.
type Calendar struct {
	mu       sync.RWMutex
	snapshot Snapshot
	math     datemath.Math
	now      func() time.Time

	nextID int
	subs   [2][]subscriber

	dispatching bool
	pending     []func() (channel, bool)
}

// New creates a calendar whose current, previous and displayed dates are all
// initial.
func New(initial time.Time, opts ...Option) *Calendar {
	c := &Calendar{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	c.snapshot = Snapshot{
		Current:        initial,
		Previous:       initial,
		DisplayedMonth: initial,
		Today:          datemath.StartOfDay(c.now()),
	}
	return c
}

// Snapshot returns a copy of all dates.
func (c *Calendar) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot
}

// CurrentDate returns the selected date.
func (c *Calendar) CurrentDate() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot.Current
}

// PreviousDate returns the date recorded by the last SelectPreviousDate.
func (c *Calendar) PreviousDate() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot.Previous
}

// DateOfDisplayedMonth returns a date in the month page on screen. The
// month carousel writes the page's first day each time it comes to rest.
func (c *Calendar) DateOfDisplayedMonth() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot.DisplayedMonth
}

// Today returns the today date normalized to midnight.
func (c *Calendar) Today() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot.Today
}

// RefreshToday re-reads the clock and reports whether the day rolled over.
func (c *Calendar) RefreshToday() bool {
	today := datemath.StartOfDay(c.now())
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.math.IsSameDay(today, c.snapshot.Today) {
		return false
	}
	c.snapshot.Today = today
	return true
}

// Math returns the date arithmetic the calendar was built with.
func (c *Calendar) Math() datemath.Math {
	return c.math
}

// SelectDate moves the selection to date, remembering the old selection as
// the previous date, and notifies generic subscribers. Selecting the day that
// is already current does nothing.
func (c *Calendar) SelectDate(date time.Time) {
	c.write(func() (channel, bool) {
		if c.math.IsSameDay(date, c.snapshot.Current) {
			return generic, false
		}
		c.snapshot.Previous = c.snapshot.Current
		c.snapshot.Current = date
		return generic, true
	})
}

// DaySelectDate sets the selection from a day-cell tap and notifies day-tap
// subscribers only. The previous date is left alone.
func (c *Calendar) DaySelectDate(date time.Time) {
	c.write(func() (channel, bool) {
		c.snapshot.Current = date
		return dayTap, true
	})
}

// SelectPreviousDate overwrites the previous date without notifying anyone.
func (c *Calendar) SelectPreviousDate(date time.Time) {
	c.write(func() (channel, bool) {
		c.snapshot.Previous = date
		return generic, false
	})
}

// SetDayOfDisplayedMonth records which month page is on screen. Writing a
// date on the same day as the stored one is a no-op.
func (c *Calendar) SetDayOfDisplayedMonth(date time.Time) {
	c.write(func() (channel, bool) {
		if c.math.IsSameDay(date, c.snapshot.DisplayedMonth) {
			return generic, false
		}
		c.snapshot.DisplayedMonth = date
		return generic, false
	})
}

// Subscribe registers fn for generic date changes.
func (c *Calendar) Subscribe(fn func()) (unsubscribe func()) {
	return c.subscribe(generic, fn)
}

// DaySubscribe registers fn for day-cell taps.
func (c *Calendar) DaySubscribe(fn func()) (unsubscribe func()) {
	return c.subscribe(dayTap, fn)
}

func (c *Calendar) subscribe(ch channel, fn func()) func() {
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.subs[ch] = append(c.subs[ch], subscriber{id: id, fn: fn})
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			list := c.subs[ch]
			for i, s := range list {
				if s.id == id {
					c.subs[ch] = append(list[:i:i], list[i+1:]...)
					return
				}
			}
		})
	}
}

// write applies op under the lock and then notifies the channel op names if
// it reports a change. Writes arriving during a dispatch are queued.
func (c *Calendar) write(op func() (channel, bool)) {
	c.mu.Lock()
	if c.dispatching {
		c.pending = append(c.pending, op)
		c.mu.Unlock()
		return
	}
	c.dispatching = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.dispatching = false
		c.pending = nil
		c.mu.Unlock()
	}()

	for op != nil {
		c.mu.Lock()
		ch, changed := op()
		var subs []subscriber
		if changed {
			subs = append(subs, c.subs[ch]...)
		}
		c.mu.Unlock()

		for _, s := range subs {
			s.fn()
		}

		c.mu.Lock()
		op = nil
		if len(c.pending) > 0 {
			op = c.pending[0]
			c.pending = c.pending[1:]
		}
		c.mu.Unlock()
	}
}
