package app

import (
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/five82/sheetcal/internal/config"
	"github.com/five82/sheetcal/internal/datemath"
	"github.com/five82/sheetcal/internal/logtail"
)

func restoreLog(t *testing.T) {
	t.Helper()
	prefix, flags := log.Prefix(), log.Flags()
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetPrefix(prefix)
		log.SetFlags(flags)
	})
}

func TestNewCalendar_UsesConfiguredWeekStart(t *testing.T) {
	cfg := config.Default()
	cfg.WeekStart = time.Monday

	day := time.Date(2026, time.October, 17, 15, 30, 0, 0, time.Local)
	st := NewCalendar(cfg, day)

	if got := st.Math().WeekStart; got != time.Monday {
		t.Fatalf("WeekStart = %v, want Monday", got)
	}
	if got := st.CurrentDate(); got.Day() != 17 || got.Month() != time.October {
		t.Fatalf("CurrentDate = %v, want October 17", got)
	}
}

func TestNewCalendar_ZeroDateIsToday(t *testing.T) {
	st := NewCalendar(config.Default(), time.Time{})
	if !st.Math().IsSameDay(st.CurrentDate(), time.Now()) {
		t.Fatalf("CurrentDate = %v, want today", st.CurrentDate())
	}
	if got := st.CurrentDate(); !got.Equal(datemath.StartOfDay(got)) {
		t.Fatalf("CurrentDate = %v, want midnight", got)
	}
}

func TestNewCalendar_DropsTimeOfDay(t *testing.T) {
	st := NewCalendar(config.Default(), time.Date(2026, time.October, 17, 18, 45, 12, 0, time.Local))

	want := time.Date(2026, time.October, 17, 0, 0, 0, 0, time.Local)
	for name, got := range map[string]time.Time{
		"CurrentDate":          st.CurrentDate(),
		"PreviousDate":         st.PreviousDate(),
		"DateOfDisplayedMonth": st.DateOfDisplayedMonth(),
	} {
		if !got.Equal(want) {
			t.Fatalf("%s = %v, want %v", name, got, want)
		}
	}
}

func TestStartTrace_WritesParsableLines(t *testing.T) {
	restoreLog(t)

	cfg := config.Default()
	cfg.TraceLog = filepath.Join(t.TempDir(), "state", "trace.log")

	closeTrace, err := startTrace(cfg)
	if err != nil {
		t.Fatalf("startTrace: %v", err)
	}
	log.Printf("pager week: idle -> programmatic")
	closeTrace()

	entries, err := logtail.ReadEntries(cfg.TraceLog, 10)
	if err != nil {
		t.Fatalf("ReadEntries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if e := entries[0]; e.Component != "pager week" || e.Message != "idle -> programmatic" || e.Time.IsZero() {
		t.Fatalf("entry = %+v", e)
	}
}

func TestStartTrace_Disabled(t *testing.T) {
	restoreLog(t)

	cfg := config.Default()
	cfg.TraceLog = ""

	closeTrace, err := startTrace(cfg)
	if err != nil {
		t.Fatalf("startTrace: %v", err)
	}
	defer closeTrace()

	if w := log.Writer(); w == os.Stderr {
		t.Fatalf("log output still goes to stderr with tracing disabled")
	}
}
