package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/sheetcal/internal/datemath"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDeriveShape(t *testing.T) {
	var m datemath.Math
	for _, kind := range []datemath.Kind{datemath.Week, datemath.Month} {
		for radius := 1; radius <= 3; radius++ {
			w := Derive(m, day(2026, time.March, 14), kind, radius)
			require.Equal(t, 2*radius+1, w.Len())
			assert.Equal(t, radius, w.Center())
			assert.True(t, w.Pivot().Contains(m, day(2026, time.March, 14)))
			for i := 1; i < w.Len(); i++ {
				assert.Equal(t, m.AddPeriods(w.At(i-1).PeriodStart, kind, 1), w.At(i).PeriodStart)
			}
		}
	}
}

func TestDeriveRaisesSmallRadius(t *testing.T) {
	w := Derive(datemath.Math{}, day(2026, time.March, 14), datemath.Month, 0)
	assert.Equal(t, 3, w.Len())
}

func TestIDsAreStableAcrossPivots(t *testing.T) {
	var m datemath.Math
	a := Derive(m, day(2026, time.March, 2), datemath.Month, 1)
	b := Derive(m, day(2026, time.March, 30), datemath.Month, 1)
	assert.True(t, a.Equal(b))
	assert.Equal(t, "month:2026-03-01", a.Pivot().ID)

	c := Derive(m, day(2026, time.April, 10), datemath.Month, 1)
	assert.Equal(t, a.At(2).ID, c.At(1).ID, "the same period keeps its ID in a shifted window")
}

func TestWeekIDsUseWeekStart(t *testing.T) {
	w := Derive(datemath.Math{WeekStart: time.Monday}, day(2026, time.March, 14), datemath.Week, 1)
	assert.Equal(t, "week:2026-03-09", w.Pivot().ID)
}

func TestIndexOf(t *testing.T) {
	var m datemath.Math
	w := Derive(m, day(2026, time.March, 14), datemath.Month, 1)

	idx, ok := w.IndexOf(m, day(2026, time.April, 30))
	require.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = w.IndexOf(m, day(2026, time.June, 1))
	assert.False(t, ok)
}

func TestFollowKeepsWindowInSamePeriod(t *testing.T) {
	var m datemath.Math
	w := Derive(m, day(2026, time.March, 14), datemath.Month, 1)
	got := Follow(m, w, day(2026, time.March, 31))
	assert.True(t, got.Equal(w))
}

func TestFollowShiftsAtMostOnePeriod(t *testing.T) {
	var m datemath.Math
	w := Derive(m, day(2026, time.March, 14), datemath.Month, 1)

	next := Follow(m, w, day(2026, time.April, 2))
	assert.Equal(t, "month:2026-04-01", next.Pivot().ID)

	far := Follow(m, w, day(2027, time.January, 1))
	assert.Equal(t, "month:2026-04-01", far.Pivot().ID, "a far jump is clamped to the adjacent period")

	back := Follow(m, w, day(2020, time.January, 1))
	assert.Equal(t, "month:2026-02-01", back.Pivot().ID)
}

func TestFollowKeepsRadius(t *testing.T) {
	var m datemath.Math
	w := Derive(m, day(2026, time.March, 14), datemath.Week, 2)
	next := Follow(m, w, day(2026, time.March, 22))
	assert.Equal(t, 5, next.Len())
	assert.Equal(t, "week:2026-03-15", next.Pivot().ID)
}

func TestClampIndex(t *testing.T) {
	w := Derive(datemath.Math{}, day(2026, time.March, 14), datemath.Month, 1)
	assert.Equal(t, 0, w.ClampIndex(-4))
	assert.Equal(t, 2, w.ClampIndex(9))
	assert.Equal(t, 1, w.ClampIndex(1))
}

func TestMemoRecomputesOnlyOnPeriodChange(t *testing.T) {
	memo := NewMemo(datemath.Math{})

	a := memo.Derive(day(2026, time.March, 1), datemath.Month, 1)
	for d := 2; d <= 31; d++ {
		memo.Derive(day(2026, time.March, d), datemath.Month, 1)
	}
	assert.Equal(t, 1, memo.Recomputations())

	b := memo.Derive(day(2026, time.April, 1), datemath.Month, 1)
	assert.Equal(t, 2, memo.Recomputations())
	assert.False(t, a.Equal(b))

	memo.Derive(day(2026, time.April, 1), datemath.Month, 2)
	assert.Equal(t, 3, memo.Recomputations())
}
