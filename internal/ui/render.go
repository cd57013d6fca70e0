package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/sheetcal/internal/datemath"
	"github.com/five82/sheetcal/internal/pager"
	"github.com/five82/sheetcal/internal/period"
	"github.com/five82/sheetcal/internal/sheet"
)

// renderMain renders the full screen.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderCalendar())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderCalendar renders the title, the weekday row, the morphing body and
// the drag handle.
func (m Model) renderCalendar() string {
	st := m.style()
	lines := make([]string, 0, gridTop+m.layout.gridLines()+1)
	lines = append(lines, m.renderTitle(), m.renderWeekdays())
	lines = append(lines, m.renderBody(st)...)
	lines = append(lines, m.renderHandle())
	return strings.Join(lines, "\n")
}

func (m Model) renderTitle() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	month := m.state.DateOfDisplayedMonth()
	left := bg.Render(month.Format("January 2006"), styles.Title)
	right := bg.Render(m.sheet.Mode().String(), styles.MutedText)

	width := max(m.width, pageWidth)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	return bg.FillLine(left+bg.Spaces(gap)+right, width)
}

func (m Model) renderWeekdays() string {
	styles := m.theme.Styles()
	var b strings.Builder
	for _, name := range m.state.Math().WeekdayNames() {
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("%3.2s ", name)))
	}
	return b.String()
}

// renderBody renders cellHeight+d rows. The month grid is scrolled so the
// selected row sits on the week strip's row while collapsed and slides to
// its own row as d reaches the threshold.
func (m Model) renderBody(st sheet.Style) []string {
	styles := m.theme.Styles()
	cellH := m.layout.cellHeight
	height := m.bodyHeight()
	scroll := m.scroll(st)

	grid := slide(m.pages(m.coord.Month.Pager(), styles), m.coord.Month.Pager().Offset())
	faint := st.MonthOpacity < 0.5

	lines := make([]string, height)
	for i := range lines {
		idx := scroll + i
		if idx < 0 || idx >= len(grid) {
			lines[i] = strings.Repeat(" ", pageWidth)
			continue
		}
		line := grid[idx]
		if faint {
			line = styles.FaintText.Render(ansi.Strip(line))
		}
		lines[i] = line
	}

	if st.WeekOpacity >= 0.5 {
		strip := slide(m.pages(m.coord.Week.Pager(), styles), m.coord.Week.Pager().Offset())
		copy(lines[:min(cellH, height)], strip)
	}
	return lines
}

func (m Model) renderHandle() string {
	styles := m.theme.Styles()
	style := styles.Handle
	if m.sheet.Dragging() || m.grab.active {
		style = styles.HandleActive
	}
	return lipgloss.PlaceHorizontal(pageWidth, lipgloss.Center, style.Render("━━━━━━"))
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	selected := styles.AccentText.Render(m.state.CurrentDate().Format("Mon Jan 2"))
	return styles.Footer.Width(max(m.width, pageWidth)).Render(selected + "  " + m.help.View(m.keys))
}

// bodyHeight is the number of rows between the weekday names and the handle.
func (m Model) bodyHeight() int {
	return m.layout.cellHeight + int(math.Round(m.sheet.Value()))
}

// scroll converts the month translation into the first grid row shown.
func (m Model) scroll(st sheet.Style) int {
	s := int(math.Round(st.MonthTranslateY - st.EndTranslateY))
	return max(0, min(s, m.layout.gridLines()-1))
}

func (m Model) style() sheet.Style {
	return sheet.Compute(sheet.Inputs{
		Drag:          m.sheet.Value(),
		Threshold:     m.sheet.Threshold(),
		CrossfadeBand: m.cfg.CrossfadeBand,
		Positions:     m.tracker.Values(),
		HeaderHeight:  m.cfg.HeaderHeight,
		TopInset:      m.cfg.TopInset,
	})
}

// pages renders every page in the pager's window.
func (m Model) pages(p *pager.Pager, styles Styles) [][]string {
	w := p.Window()
	out := make([][]string, w.Len())
	for i, snap := range w.Snapshots() {
		out[i] = m.renderPage(snap, styles)
	}
	return out
}

func (m Model) renderPage(snap period.Snapshot, styles Styles) []string {
	dm := m.state.Math()
	cellH := m.layout.cellHeight
	blank := strings.Repeat(" ", pageWidth)

	var days []time.Time
	if snap.Kind == datemath.Month {
		grid := dm.MonthGrid(snap.PeriodStart)
		days = grid[:]
	} else {
		week := dm.WeekDays(snap.PeriodStart)
		days = week[:]
	}

	lines := make([]string, 0, len(days)/7*cellH)
	for row := 0; row < len(days)/7; row++ {
		var b strings.Builder
		for _, day := range days[row*7 : row*7+7] {
			b.WriteString(m.renderDay(day, snap, styles))
		}
		lines = append(lines, b.String())
		for i := 1; i < cellH; i++ {
			lines = append(lines, blank)
		}
	}
	return lines
}

func (m Model) renderDay(day time.Time, snap period.Snapshot, styles Styles) string {
	dm := m.state.Math()
	label := fmt.Sprintf("%3d ", day.Day())
	switch {
	case dm.IsSameDay(day, m.state.CurrentDate()):
		return styles.Selected.Render(label)
	case snap.Kind == datemath.Month && !dm.IsSameMonth(day, snap.PeriodStart):
		return styles.FaintText.Render(label)
	case dm.IsSameDay(day, m.state.Today()):
		return styles.Today.Render(label)
	default:
		return styles.Text.Render(label)
	}
}

// slide composes the visible lines for a fractional pager offset. Offset 1.5
// shows the right half of page 1 next to the left half of page 2.
func slide(pages [][]string, offset float64) []string {
	if len(pages) == 0 {
		return nil
	}
	i := int(math.Floor(offset))
	i = max(0, min(i, len(pages)-1))
	frac := offset - float64(i)
	if frac <= 0 || i+1 >= len(pages) {
		return pages[i]
	}

	start := int(math.Round(frac * pageWidth))
	out := make([]string, len(pages[i]))
	for l := range out {
		joined := pages[i][l]
		if l < len(pages[i+1]) {
			joined += pages[i+1][l]
		}
		out[l] = ansi.Cut(joined, start, start+pageWidth)
	}
	return out
}
