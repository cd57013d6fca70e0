// Package period derives the finite window of week or month pages a pager
// renders around the selected date.
package period

import (
	"fmt"
	"time"

	"github.com/five82/sheetcal/internal/datemath"
)

// Snapshot identifies one page of a window.
type Snapshot struct {
	ID          string
	PeriodStart time.Time
	Kind        datemath.Kind
}

// Contains reports whether date falls inside the snapshot's period.
func (s Snapshot) Contains(m datemath.Math, date time.Time) bool {
	return m.IsSamePeriod(s.PeriodStart, date, s.Kind)
}

// snapshotID keys a page on its period start so the same period always maps
// to the same ID regardless of which pivot produced it.
func snapshotID(kind datemath.Kind, start time.Time) string {
	return fmt.Sprintf("%s:%s", kind, start.Format("2006-01-02"))
}

// Window is an odd-length run of consecutive periods centered on a pivot.
type Window struct {
	kind      datemath.Kind
	radius    int
	snapshots []Snapshot
}

// Derive builds the window of 2*radius+1 periods whose center contains pivot.
// A radius below one is raised to one.
func Derive(m datemath.Math, pivot time.Time, kind datemath.Kind, radius int) Window {
	if radius < 1 {
		radius = 1
	}
	center := m.StartOfPeriod(pivot, kind)
	snaps := make([]Snapshot, 0, 2*radius+1)
	for i := -radius; i <= radius; i++ {
		start := m.AddPeriods(center, kind, i)
		snaps = append(snaps, Snapshot{
			ID:          snapshotID(kind, start),
			PeriodStart: start,
			Kind:        kind,
		})
	}
	return Window{kind: kind, radius: radius, snapshots: snaps}
}

// Follow moves prev toward pivot. When pivot is still in the center period
// prev is returned unchanged; otherwise the window shifts by exactly one
// period in pivot's direction, however far away pivot is.
func Follow(m datemath.Math, prev Window, pivot time.Time) Window {
	if prev.Len() == 0 {
		return prev
	}
	center := prev.Pivot()
	switch m.Compare(pivot, center.PeriodStart, prev.kind) {
	case datemath.Before:
		return Derive(m, m.AddPeriods(center.PeriodStart, prev.kind, -1), prev.kind, prev.radius)
	case datemath.After:
		return Derive(m, m.AddPeriods(center.PeriodStart, prev.kind, 1), prev.kind, prev.radius)
	default:
		return prev
	}
}

func (w Window) Kind() datemath.Kind { return w.kind }
func (w Window) Radius() int         { return w.radius }
func (w Window) Len() int            { return len(w.snapshots) }

// Center is the index of the pivot snapshot.
func (w Window) Center() int { return w.radius }

// At returns the snapshot at i. It panics on an out-of-range index like a
// slice access does.
func (w Window) At(i int) Snapshot { return w.snapshots[i] }

// Pivot returns the center snapshot.
func (w Window) Pivot() Snapshot {
	return w.snapshots[w.Center()]
}

// Snapshots returns a copy of the pages in order.
func (w Window) Snapshots() []Snapshot {
	out := make([]Snapshot, len(w.snapshots))
	copy(out, w.snapshots)
	return out
}

// IndexOf returns the index of the page containing date.
func (w Window) IndexOf(m datemath.Math, date time.Time) (int, bool) {
	for i, s := range w.snapshots {
		if s.Contains(m, date) {
			return i, true
		}
	}
	return -1, false
}

// Contains reports whether any page holds date.
func (w Window) Contains(m datemath.Math, date time.Time) bool {
	_, ok := w.IndexOf(m, date)
	return ok
}

// Equal compares windows by page IDs.
func (w Window) Equal(other Window) bool {
	if len(w.snapshots) != len(other.snapshots) {
		return false
	}
	for i := range w.snapshots {
		if w.snapshots[i].ID != other.snapshots[i].ID {
			return false
		}
	}
	return true
}

// ClampIndex limits i to the window's bounds.
func (w Window) ClampIndex(i int) int {
	switch {
	case i < 0:
		return 0
	case i >= len(w.snapshots):
		return len(w.snapshots) - 1
	default:
		return i
	}
}
