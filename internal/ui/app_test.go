package ui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/sheetcal/internal/config"
	"github.com/five82/sheetcal/internal/prefs"
	"github.com/five82/sheetcal/internal/sheet"
	"github.com/five82/sheetcal/internal/state"
)

var saturday = time.Date(2026, time.October, 17, 0, 0, 0, 0, time.Local)

func newTestModel(t *testing.T, expanded bool) (Model, string) {
	t.Helper()
	st := state.New(saturday, state.WithClock(func() time.Time { return saturday }))
	cfg := config.Default()
	cfg.TraceLog = ""
	prefsPath := filepath.Join(t.TempDir(), "prefs.toml")

	m := New(Options{State: st, Config: cfg, Expanded: expanded, PrefsPath: prefsPath})
	t.Cleanup(m.Close)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model), prefsPath
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// click presses and releases the left button on one cell.
func click(m Model, x, y int) Model {
	m, _ = send(m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = send(m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	return m
}

func runFrames(t *testing.T, m Model) Model {
	t.Helper()
	now := time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 1000 && m.animating(); i++ {
		now = now.Add(16 * time.Millisecond)
		m, _ = send(m, frameMsg(now))
	}
	if m.animating() {
		t.Fatalf("still animating after 1000 frames")
	}
	if m.ticking {
		t.Fatalf("ticking = true after animations finished")
	}
	return m
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func TestGridLayoutOffsetY(t *testing.T) {
	st := state.New(saturday)
	g := gridLayout{math: st.Math(), cellHeight: 2}

	tests := []struct {
		name string
		date time.Time
		want float64
		ok   bool
	}{
		{"leading padding day", time.Date(2026, time.September, 27, 0, 0, 0, 0, time.Local), gridTop, true},
		{"third row", saturday, gridTop + 2*2, true},
		{"last row", time.Date(2026, time.November, 7, 0, 0, 0, 0, time.Local), gridTop + 5*2, true},
		{"off the page", time.Date(2026, time.November, 8, 0, 0, 0, 0, time.Local), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := g.OffsetY(tt.date, saturday)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("OffsetY = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}

	if got := g.threshold(); got != 10 {
		t.Fatalf("threshold = %v, want 10", got)
	}
}

func TestNextDayAcrossWeekAnimatesWeekPager(t *testing.T) {
	m, _ := newTestModel(t, false)

	m, cmd := send(m, keyMsg("l"))
	if want := saturday.AddDate(0, 0, 1); !sameDay(m.state.CurrentDate(), want) {
		t.Fatalf("CurrentDate = %v, want %v", m.state.CurrentDate(), want)
	}
	if cmd == nil || !m.ticking {
		t.Fatalf("expected the frame loop to start for the week jump")
	}

	m = runFrames(t, m)
	visible := m.coord.Week.Pager().Visible()
	if !visible.Contains(m.state.Math(), m.state.CurrentDate()) {
		t.Fatalf("week pager shows %s, want the week of %v", visible.ID, m.state.CurrentDate())
	}
}

func TestSameWeekKeyDoesNotAnimate(t *testing.T) {
	m, _ := newTestModel(t, false)

	m, cmd := send(m, keyMsg("h"))
	if want := saturday.AddDate(0, 0, -1); !sameDay(m.state.CurrentDate(), want) {
		t.Fatalf("CurrentDate = %v, want %v", m.state.CurrentDate(), want)
	}
	if cmd != nil || m.ticking {
		t.Fatalf("did not expect frames for a move within the visible week")
	}
}

func TestToggleSheetSavesMode(t *testing.T) {
	m, prefsPath := newTestModel(t, false)

	m, _ = send(m, keyMsg(" "))
	m = runFrames(t, m)

	if m.sheet.Mode() != sheet.Expanded {
		t.Fatalf("Mode = %v, want expanded", m.sheet.Mode())
	}
	if p := prefs.Load(prefsPath); !p.Expanded {
		t.Fatalf("saved prefs = %+v, want Expanded", p)
	}
	if !m.style().MonthInteractive {
		t.Fatalf("month view should take input once expanded")
	}
}

func TestClickWeekStripSelectsDay(t *testing.T) {
	m, _ := newTestModel(t, false)

	m = click(m, cellWidth+1, gridTop)

	monday := time.Date(2026, time.October, 12, 0, 0, 0, 0, time.Local)
	if !sameDay(m.state.CurrentDate(), monday) {
		t.Fatalf("CurrentDate = %v, want %v", m.state.CurrentDate(), monday)
	}
	if !sameDay(m.state.PreviousDate(), saturday) {
		t.Fatalf("PreviousDate = %v, want %v", m.state.PreviousDate(), saturday)
	}
}

func TestClickMonthGridSelectsDay(t *testing.T) {
	m, _ := newTestModel(t, true)

	m = click(m, 3*cellWidth, gridTop+4)

	want := time.Date(2026, time.October, 28, 0, 0, 0, 0, time.Local)
	if !sameDay(m.state.CurrentDate(), want) {
		t.Fatalf("CurrentDate = %v, want %v", m.state.CurrentDate(), want)
	}
}

func TestPressWithoutReleaseDoesNotSelect(t *testing.T) {
	m, _ := newTestModel(t, false)

	m, _ = send(m, tea.MouseMsg{X: cellWidth + 1, Y: gridTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !sameDay(m.state.CurrentDate(), saturday) {
		t.Fatalf("CurrentDate = %v, want the selection to wait for release", m.state.CurrentDate())
	}
}

func TestTapTrailingDayMovesSelectedOffsetAfterLanding(t *testing.T) {
	m, _ := newTestModel(t, true)
	cellH := m.layout.cellHeight

	// November 2nd trails October's page on its sixth row and leads
	// November's page on its first.
	m = click(m, cellWidth+1, gridTop+5*cellH)

	nov2 := time.Date(2026, time.November, 2, 0, 0, 0, 0, time.Local)
	if !sameDay(m.state.CurrentDate(), nov2) {
		t.Fatalf("CurrentDate = %v, want %v", m.state.CurrentDate(), nov2)
	}
	if got := m.coord.Month.Jumps(); got != 1 {
		t.Fatalf("month jumps = %d, want 1", got)
	}
	if got := m.state.DateOfDisplayedMonth(); got.Month() != time.October {
		t.Fatalf("DateOfDisplayedMonth = %v while the jump is in flight, want October", got)
	}
	if got, want := m.tracker.SelectedDayOffset(), float64(gridTop+5*cellH); got != want {
		t.Fatalf("SelectedDayOffset in flight = %v, want %v", got, want)
	}

	m = runFrames(t, m)

	if got := m.state.DateOfDisplayedMonth(); got.Month() != time.November {
		t.Fatalf("DateOfDisplayedMonth = %v after landing, want November", got)
	}
	if got, want := m.tracker.SelectedDayOffset(), float64(gridTop); got != want {
		t.Fatalf("SelectedDayOffset after landing = %v, want %v", got, want)
	}
	if got := m.coord.Month.Pager().Visible().ID; got != "month:2026-11-01" {
		t.Fatalf("month pager shows %s, want month:2026-11-01", got)
	}
}

func TestHorizontalDragPagesWeek(t *testing.T) {
	m, _ := newTestModel(t, false)
	week := m.coord.Week.Pager()

	m, _ = send(m, tea.MouseMsg{X: 20, Y: gridTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = send(m, tea.MouseMsg{X: 2, Y: gridTop, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if !week.Dragging() {
		t.Fatalf("horizontal motion should drag the week pager")
	}
	if !m.ticking {
		t.Fatalf("expected frames while the pager is dragged")
	}

	m, _ = send(m, tea.MouseMsg{X: 2, Y: gridTop, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if week.Dragging() {
		t.Fatalf("release should end the pager drag")
	}
	m = runFrames(t, m)

	// The landing keeps Saturday in the following week.
	want := time.Date(2026, time.October, 24, 0, 0, 0, 0, time.Local)
	if !sameDay(m.state.CurrentDate(), want) {
		t.Fatalf("CurrentDate = %v, want %v", m.state.CurrentDate(), want)
	}
	if !sameDay(m.state.PreviousDate(), saturday) {
		t.Fatalf("PreviousDate = %v, want %v", m.state.PreviousDate(), saturday)
	}
}

func TestShortHorizontalDragSnapsBack(t *testing.T) {
	m, _ := newTestModel(t, false)

	m, _ = send(m, tea.MouseMsg{X: 20, Y: gridTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = send(m, tea.MouseMsg{X: 16, Y: gridTop, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m, _ = send(m, tea.MouseMsg{X: 16, Y: gridTop, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = runFrames(t, m)

	if !sameDay(m.state.CurrentDate(), saturday) {
		t.Fatalf("CurrentDate = %v, want the drag to neither page nor tap", m.state.CurrentDate())
	}
	if got := m.coord.Week.Pager().Visible().ID; !strings.HasSuffix(got, "2026-10-11") {
		t.Fatalf("week pager shows %s, want the week of Oct 11", got)
	}
}

func TestClickBelowWeekStripIgnoredWhenCollapsed(t *testing.T) {
	m, _ := newTestModel(t, false)

	if _, ok := m.dayAt(cellWidth, gridTop+1); ok {
		t.Fatalf("dayAt below the strip should miss while collapsed")
	}
	if _, ok := m.dayAt(7*cellWidth, gridTop); ok {
		t.Fatalf("dayAt right of the page should miss")
	}
}

func TestHandleDragExpandsPastHalfway(t *testing.T) {
	m, _ := newTestModel(t, false)
	row := m.handleRow()

	m, _ = send(m, tea.MouseMsg{X: 10, Y: row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.sheet.Dragging() {
		t.Fatalf("pressing the handle should start a drag")
	}
	m, _ = send(m, tea.MouseMsg{X: 10, Y: row + 3, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if got := m.sheet.Value(); got != 3 {
		t.Fatalf("Value = %v, want 3", got)
	}
	if got := m.bodyHeight(); got != 4 {
		t.Fatalf("bodyHeight = %d, want 4", got)
	}
	m, _ = send(m, tea.MouseMsg{X: 10, Y: row + 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if got := m.sheet.Value(); got != 1 {
		t.Fatalf("Value after moving back up = %v, want 1", got)
	}
	m, _ = send(m, tea.MouseMsg{X: 10, Y: row + 3, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})

	m, _ = send(m, tea.MouseMsg{X: 10, Y: row + 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = runFrames(t, m)

	if m.sheet.Mode() != sheet.Expanded || m.sheet.Value() != m.sheet.Threshold() {
		t.Fatalf("sheet = %v at %v, want expanded at %v", m.sheet.Mode(), m.sheet.Value(), m.sheet.Threshold())
	}
}

func TestCollapsedScrollAnchorsSelectedRow(t *testing.T) {
	m, _ := newTestModel(t, false)

	// October 17th is on the third row of its page.
	if got := m.scroll(m.style()); got != 2 {
		t.Fatalf("scroll = %d, want 2", got)
	}

	m.sheet.DragBy(m.sheet.Threshold())
	if got := m.scroll(m.style()); got != 0 {
		t.Fatalf("scroll at threshold = %d, want 0", got)
	}
}

func TestHelpClosesOnAnyKey(t *testing.T) {
	m, _ := newTestModel(t, false)

	m, _ = send(m, keyMsg("?"))
	if !m.showHelp {
		t.Fatalf("showHelp = false after ?")
	}
	if view := ansi.Strip(m.View()); !strings.Contains(view, "Keyboard Shortcuts") {
		t.Fatalf("help view missing title")
	}

	m, _ = send(m, keyMsg("x"))
	if m.showHelp {
		t.Fatalf("showHelp = true after another key")
	}
}

func TestTraceModalWhenDisabled(t *testing.T) {
	m, _ := newTestModel(t, false)

	m, _ = send(m, keyMsg("g"))
	if m.modal == nil {
		t.Fatalf("g should open the trace overlay")
	}
	if view := ansi.Strip(m.View()); !strings.Contains(view, "Tracing is disabled") {
		t.Fatalf("trace view = %q, want the disabled notice", view)
	}

	m, _ = send(m, keyMsg("esc"))
	if m.modal != nil {
		t.Fatalf("esc should close the trace overlay")
	}
}

func TestCycleThemeSavesPrefs(t *testing.T) {
	m, prefsPath := newTestModel(t, false)

	m, _ = send(m, keyMsg("T"))
	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", m.theme.Name)
	}
	if p := prefs.Load(prefsPath); p.Theme != "Kanagawa" {
		t.Fatalf("saved theme = %q, want Kanagawa", p.Theme)
	}
}

func TestTodayMsgRefreshesToday(t *testing.T) {
	now := saturday
	st := state.New(saturday, state.WithClock(func() time.Time { return now }))
	m := New(Options{State: st, Config: config.Default()})
	t.Cleanup(m.Close)

	now = saturday.AddDate(0, 0, 1).Add(3 * time.Second)
	m, _ = send(m, TodayMsg(now))

	if !sameDay(m.state.Today(), now) {
		t.Fatalf("Today = %v, want %v", m.state.Today(), now)
	}
	if !sameDay(m.state.CurrentDate(), saturday) {
		t.Fatalf("a new day must not move the selection, got %v", m.state.CurrentDate())
	}
}

func TestThemeCycle(t *testing.T) {
	tests := []struct {
		current string
		want    string
	}{
		{"Nightfox", "Kanagawa"},
		{"Kanagawa", "Slate"},
		{"Slate", "Nightfox"},
		{"unknown", "Nightfox"},
	}
	for _, tt := range tests {
		if got := NextTheme(tt.current); got != tt.want {
			t.Fatalf("NextTheme(%q) = %q, want %q", tt.current, got, tt.want)
		}
	}
	if got := GetTheme("missing").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(missing) = %q, want Nightfox", got)
	}
}
