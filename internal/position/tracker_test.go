package position

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/five82/sheetcal/internal/datemath"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fakeMeasurer map[string]float64

func (f fakeMeasurer) OffsetY(date, pageMonth time.Time) (float64, bool) {
	y, ok := f[pageMonth.Format("2006-01")+"/"+date.Format("02")]
	return y, ok
}

func TestReportDayOnlyForDisplayedMonth(t *testing.T) {
	tr := NewTracker(datemath.Math{})
	selected := day(2026, time.March, 31)

	// The April page also shows March 31 as a padding cell.
	wrote := tr.ReportDay(DayCell{Date: selected, PageMonth: day(2026, time.April, 1), OffsetY: 3}, selected, day(2026, time.March, 1))
	assert.False(t, wrote)
	assert.Zero(t, tr.SelectedDayOffset())

	wrote = tr.ReportDay(DayCell{Date: selected, PageMonth: day(2026, time.March, 1), OffsetY: 7}, selected, day(2026, time.March, 1))
	assert.True(t, wrote)
	assert.Equal(t, 7.0, tr.SelectedDayOffset())
}

func TestReportDayIgnoresOtherDays(t *testing.T) {
	tr := NewTracker(datemath.Math{})
	wrote := tr.ReportDay(DayCell{Date: day(2026, time.March, 2), PageMonth: day(2026, time.March, 1), OffsetY: 9}, day(2026, time.March, 3), day(2026, time.March, 1))
	assert.False(t, wrote)
}

func TestReportWeekRowOverwrites(t *testing.T) {
	tr := NewTracker(datemath.Math{})
	tr.ReportWeekRow(2)
	tr.ReportWeekRow(4.5)
	assert.Equal(t, Values{WeekRowOffset: 4.5}, tr.Values())
}

func TestMeasure(t *testing.T) {
	tr := NewTracker(datemath.Math{})
	m := fakeMeasurer{"2026-03/18": 6}

	assert.True(t, tr.Measure(m, day(2026, time.March, 18), day(2026, time.March, 1)))
	assert.Equal(t, 6.0, tr.SelectedDayOffset())

	assert.False(t, tr.Measure(m, day(2026, time.March, 19), day(2026, time.March, 1)))
	assert.Equal(t, 6.0, tr.SelectedDayOffset())
}

func TestConcurrentReadsAndWrites(t *testing.T) {
	tr := NewTracker(datemath.Math{})
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tr.ReportWeekRow(float64(i * j))
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = tr.Values()
			}
		}()
	}
	wg.Wait()
}
