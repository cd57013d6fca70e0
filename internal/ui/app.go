package ui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/sheetcal/internal/carousel"
	"github.com/five82/sheetcal/internal/config"
	"github.com/five82/sheetcal/internal/datemath"
	"github.com/five82/sheetcal/internal/position"
	"github.com/five82/sheetcal/internal/prefs"
	"github.com/five82/sheetcal/internal/sheet"
	"github.com/five82/sheetcal/internal/state"
)

// Options configures the UI.
type Options struct {
	State     *state.Calendar
	Config    config.Config
	Expanded  bool
	ThemeName string
	// PrefsPath is where theme and sheet mode are saved. Empty disables
	// saving.
	PrefsPath string
}

// grab tracks a mouse drag on the sheet handle. y is the row of the last
// motion event.
type grab struct {
	active bool
	y      int
}

// pan tracks a press on the day cells. Horizontal motion turns it into a page
// drag on the carousel under the pointer; a release without motion is a tap.
type pan struct {
	active bool
	target *carousel.Carousel
	x      int
	day    time.Time
	hit    bool
	moved  bool
}

// Model is the root application state for Bubble Tea. Its pointer fields are
// shared between copies; Bubble Tea only ever runs one copy at a time.
type Model struct {
	// Configuration
	cfg   config.Config
	saver *prefsWriter

	// View state core
	state   *state.Calendar
	coord   *carousel.Coordinator
	sheet   *sheet.Controller
	tracker *position.Tracker
	layout  gridLayout

	// UI state
	keys     keyMap
	help     help.Model
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
	modal    Modal
	grab     grab
	pan      pan
	ticking  bool
}

// New creates a new Bubble Tea model around st.
func New(opts Options) Model {
	cfg := opts.Config
	st := opts.State
	if st == nil {
		st = state.New(datemath.StartOfDay(time.Now()))
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Default().Theme
	}
	theme := GetTheme(themeName)

	layout := gridLayout{math: st.Math(), cellHeight: max(cfg.CellHeight, 1)}

	start := sheet.Collapsed
	if opts.Expanded {
		start = sheet.Expanded
	}
	saver := &prefsWriter{path: opts.PrefsPath, theme: theme.Name, expanded: opts.Expanded}
	sh := sheet.New(sheet.Options{
		Threshold:    layout.threshold(),
		FrameRate:    cfg.FrameRate,
		Start:        start,
		OnModeChange: saver.modeChanged,
	})

	coord := carousel.NewCoordinator(st, carousel.CoordinatorOptions{
		Radius:    cfg.WindowRadius,
		Dwell:     cfg.SettleDwell,
		FrameRate: cfg.FrameRate,
		Expanded:  func() bool { return sh.Mode() == sheet.Expanded },
	})

	m := Model{
		cfg:     cfg,
		saver:   saver,
		state:   st,
		coord:   coord,
		sheet:   sh,
		tracker: position.NewTracker(st.Math()),
		layout:  layout,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		theme:   theme,
	}
	m.applyHelpStyles()
	m.measure()
	return m
}

// Close unsubscribes the carousels from the calendar.
func (m Model) Close() {
	m.coord.Close()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case frameMsg:
		return m.handleFrame(time.Time(msg))

	case TodayMsg:
		if m.state.RefreshToday() {
			log.Printf("ui: today is now %s", m.state.Today().Format(time.DateOnly))
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		next, cmd, done := m.modal.Update(msg, m.keys)
		if done {
			m.modal = nil
		} else {
			m.modal = next
		}
		return m, cmd
	}

	cur := m.state.CurrentDate()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyHelpStyles()
		m.saver.setTheme(m.theme.Name)
		return m, nil

	case key.Matches(msg, m.keys.Trace):
		m.modal = newTraceModal(m.cfg.TraceLog, m.theme, m.width, m.height)
		return m, nil

	case key.Matches(msg, m.keys.PrevDay):
		m.coord.TapDay(cur.AddDate(0, 0, -1))
	case key.Matches(msg, m.keys.NextDay):
		m.coord.TapDay(cur.AddDate(0, 0, 1))
	case key.Matches(msg, m.keys.PrevWeek):
		m.coord.TapDay(cur.AddDate(0, 0, -7))
	case key.Matches(msg, m.keys.NextWeek):
		m.coord.TapDay(cur.AddDate(0, 0, 7))
	case key.Matches(msg, m.keys.Today):
		m.coord.Today()

	case key.Matches(msg, m.keys.PrevPage):
		m.active().Swipe(-1)
	case key.Matches(msg, m.keys.NextPage):
		m.active().Swipe(1)

	case key.Matches(msg, m.keys.ToggleSheet):
		m.sheet.Toggle()

	default:
		return m, nil
	}

	return m.afterInput()
}

// handleMouse processes clicks on day cells, drags on the handle, horizontal
// drags on the pages and wheel swipes.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || m.modal != nil {
		return m, nil
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelLeft:
		m.active().Swipe(-1)

	case msg.Button == tea.MouseButtonWheelDown || msg.Button == tea.MouseButtonWheelRight:
		m.active().Swipe(1)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if msg.Y == m.handleRow() {
			m.grab = grab{active: true, y: msg.Y}
			m.sheet.BeginDrag()
			break
		}
		if body := msg.Y - gridTop; body < 0 || body >= m.bodyHeight() {
			return m, nil
		}
		day, ok := m.dayAt(msg.X, msg.Y)
		m.pan = pan{active: true, target: m.active(), x: msg.X, day: day, hit: ok}

	case msg.Action == tea.MouseActionMotion && m.grab.active:
		m.sheet.DragBy(float64(msg.Y - m.grab.y))
		m.grab.y = msg.Y

	case msg.Action == tea.MouseActionMotion && m.pan.active:
		if msg.X == m.pan.x {
			return m, nil
		}
		// Moving the pointer left brings the next page in.
		m.pan.target.Pager().Drag(float64(m.pan.x-msg.X) / pageWidth)
		m.pan.x = msg.X
		m.pan.moved = true

	case msg.Action == tea.MouseActionRelease && m.grab.active:
		m.grab = grab{}
		m.sheet.EndDrag()

	case msg.Action == tea.MouseActionRelease && m.pan.active:
		p := m.pan
		m.pan = pan{}
		switch {
		case p.moved && p.target.Pager().Dragging():
			p.target.Pager().Release()
		case !p.moved && p.hit:
			m.coord.TapDay(p.day)
		}

	default:
		return m, nil
	}

	return m.afterInput()
}

// handleFrame advances every animation by one frame and keeps ticking while
// anything still moves.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	m.coord.Advance(now)
	m.sheet.Advance()
	m.measure()

	if m.animating() {
		return m, frameCmd(m.cfg.FrameInterval())
	}
	m.ticking = false
	return m, nil
}

// afterInput re-measures and starts the frame loop if input started an
// animation.
func (m Model) afterInput() (tea.Model, tea.Cmd) {
	m.measure()
	if m.ticking || !m.animating() {
		return m, nil
	}
	m.ticking = true
	return m, frameCmd(m.cfg.FrameInterval())
}

func (m Model) animating() bool {
	return m.coord.Busy() || m.sheet.Animating()
}

func (m Model) active() *carousel.Carousel {
	return m.coord.Active(m.sheet.Mode() == sheet.Expanded)
}

// measure reports the layout offsets the morph anchors to.
func (m Model) measure() {
	m.tracker.ReportWeekRow(float64(gridTop))
	m.tracker.Measure(m.layout, m.state.CurrentDate(), m.state.DateOfDisplayedMonth())
}

// prefsWriter saves the theme and the sheet mode. The sheet reports mode
// crossings to it directly.
type prefsWriter struct {
	path     string
	theme    string
	expanded bool
}

func (w *prefsWriter) setTheme(name string) {
	w.theme = name
	w.save()
}

func (w *prefsWriter) modeChanged(mode sheet.Mode) {
	w.expanded = mode == sheet.Expanded
	w.save()
}

func (w *prefsWriter) save() {
	if w.path == "" {
		return
	}
	p := prefs.Prefs{Theme: w.theme, Expanded: w.expanded}
	if err := prefs.Save(w.path, p); err != nil {
		log.Printf("ui: save prefs: %v", err)
	}
}

func (m *Model) applyHelpStyles() {
	styles := m.theme.Styles()
	m.help.Styles.ShortKey = styles.WarningText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
}

// handleRow is the screen row of the sheet handle.
func (m Model) handleRow() int {
	return gridTop + m.bodyHeight()
}

// dayAt maps a screen cell to the day drawn there by the interactive view.
func (m Model) dayAt(x, y int) (time.Time, bool) {
	col := x / cellWidth
	body := y - gridTop
	if x < 0 || col > 6 || body < 0 || body >= m.bodyHeight() {
		return time.Time{}, false
	}

	dm := m.state.Math()
	st := m.style()
	if st.MonthInteractive {
		row := (body + m.scroll(st)) / m.layout.cellHeight
		if row >= gridRows {
			return time.Time{}, false
		}
		grid := dm.MonthGrid(m.coord.Month.Pager().Visible().PeriodStart)
		return grid[row*7+col], true
	}

	if body >= m.layout.cellHeight {
		return time.Time{}, false
	}
	week := dm.WeekDays(m.coord.Week.Pager().Visible().PeriodStart)
	return week[col], true
}

// Messages

type frameMsg time.Time

// TodayMsg tells the model the local date may have changed.
type TodayMsg time.Time

// Commands

func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
