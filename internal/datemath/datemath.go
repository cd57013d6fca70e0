// Package datemath holds the calendar arithmetic the view-state core relies
// on. Every function compares calendar dates only; the time of day and the
// monotonic clock reading are ignored.
package datemath

import "time"

// Kind selects the granularity of a period.
type Kind int

const (
	Week Kind = iota
	Month
)

func (k Kind) String() string {
	switch k {
	case Week:
		return "week"
	case Month:
		return "month"
	default:
		return "unknown"
	}
}

// Order is the result of comparing two dates by period.
type Order int

const (
	Before Order = -1
	Same   Order = 0
	After  Order = 1
)

// GridCells is the number of day cells on a month page (6 rows of 7 days).
const GridCells = 42

// Math performs period arithmetic for a given first day of the week.
// The zero value starts weeks on Sunday.
type Math struct {
	WeekStart time.Weekday
}

// StartOfDay truncates t to local midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfDay is a convenience wrapper so callers can hold only a Math.
func (Math) StartOfDay(t time.Time) time.Time {
	return StartOfDay(t)
}

// StartOfWeek returns midnight of the first day of t's week.
func (m Math) StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) - int(m.WeekStart) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

// StartOfMonth returns midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	y, mo, _ := t.Date()
	return time.Date(y, mo, 1, 0, 0, 0, 0, t.Location())
}

// StartOfPeriod returns the first day of the period of the given kind that
// contains t.
func (m Math) StartOfPeriod(t time.Time, kind Kind) time.Time {
	if kind == Month {
		return StartOfMonth(t)
	}
	return m.StartOfWeek(t)
}

// AddPeriods moves t by n periods. Month arithmetic is anchored on the first
// of the month so that Jan 31 + 1 month never overflows into March.
func (m Math) AddPeriods(t time.Time, kind Kind, n int) time.Time {
	if kind == Month {
		start := StartOfMonth(t)
		return start.AddDate(0, n, 0)
	}
	return StartOfDay(t).AddDate(0, 0, 7*n)
}

func (Math) IsSameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func (m Math) IsSameWeek(a, b time.Time) bool {
	return m.IsSameDay(m.StartOfWeek(a), m.StartOfWeek(b))
}

func (Math) IsSameMonth(a, b time.Time) bool {
	ay, am, _ := a.Date()
	by, bm, _ := b.Date()
	return ay == by && am == bm
}

// IsSamePeriod reports whether a and b fall in the same period of kind.
func (m Math) IsSamePeriod(a, b time.Time, kind Kind) bool {
	if kind == Month {
		return m.IsSameMonth(a, b)
	}
	return m.IsSameWeek(a, b)
}

// Compare orders a relative to b at the granularity of kind.
func (m Math) Compare(a, b time.Time, kind Kind) Order {
	pa := m.StartOfPeriod(a, kind)
	pb := m.StartOfPeriod(b, kind)
	switch {
	case m.IsSameDay(pa, pb):
		return Same
	case dayKey(pa) < dayKey(pb):
		return Before
	default:
		return After
	}
}

// PeriodsBetween returns the number of calendar periods from a to b. It is
// negative when b precedes a.
func (m Math) PeriodsBetween(a, b time.Time, kind Kind) int {
	if kind == Month {
		ay, am, _ := a.Date()
		by, bm, _ := b.Date()
		return (by-ay)*12 + int(bm) - int(am)
	}
	return (dayKey(m.StartOfWeek(b)) - dayKey(m.StartOfWeek(a))) / 7
}

// WeekDays returns the seven days of the week containing t.
func (m Math) WeekDays(t time.Time) [7]time.Time {
	var days [7]time.Time
	start := m.StartOfWeek(t)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// MonthGrid lays out the month containing t as six full weeks. Leading and
// trailing cells are filled with days from the neighbouring months.
func (m Math) MonthGrid(t time.Time) [GridCells]time.Time {
	var cells [GridCells]time.Time
	start := m.StartOfWeek(StartOfMonth(t))
	for i := range cells {
		cells[i] = start.AddDate(0, 0, i)
	}
	return cells
}

// GridRow returns the zero-based row of day within the month grid of
// monthStart, or -1 when the day is not on that page.
func (m Math) GridRow(monthStart, day time.Time) int {
	first := m.StartOfWeek(StartOfMonth(monthStart))
	diff := dayKey(StartOfDay(day)) - dayKey(first)
	if diff < 0 || diff >= GridCells {
		return -1
	}
	return diff / 7
}

// WeekdayNames returns short weekday labels ordered from WeekStart.
func (m Math) WeekdayNames() [7]string {
	var names [7]string
	for i := range names {
		names[i] = time.Weekday((int(m.WeekStart) + i) % 7).String()[:3]
	}
	return names
}

// dayKey maps a calendar date to a day count that is independent of the
// location's offset and DST transitions.
func dayKey(t time.Time) int {
	y, m, d := t.Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}
