package period

import (
	"time"

	"github.com/five82/sheetcal/internal/datemath"
)

type memoKey struct {
	start  string
	kind   datemath.Kind
	radius int
}

// Memo caches the most recent derivation. Consecutive lookups with pivots in
// the same period return the cached window without recomputing it.
type Memo struct {
	math   datemath.Math
	key    memoKey
	window Window
	valid  bool
	misses int
}

// NewMemo returns an empty memo deriving windows with m.
func NewMemo(m datemath.Math) *Memo {
	return &Memo{math: m}
}

// Derive returns the window around pivot, recomputing only when pivot's
// period, kind or radius differs from the previous call.
func (c *Memo) Derive(pivot time.Time, kind datemath.Kind, radius int) Window {
	if radius < 1 {
		radius = 1
	}
	key := memoKey{
		start:  c.math.StartOfPeriod(pivot, kind).Format("2006-01-02"),
		kind:   kind,
		radius: radius,
	}
	if c.valid && key == c.key {
		return c.window
	}
	c.key = key
	c.window = Derive(c.math, pivot, kind, radius)
	c.valid = true
	c.misses++
	return c.window
}

// Recomputations reports how many times Derive had to build a new window.
func (c *Memo) Recomputations() int {
	return c.misses
}
