package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/sheetcal/internal/config"
	"github.com/five82/sheetcal/internal/datemath"
	"github.com/five82/sheetcal/internal/prefs"
	"github.com/five82/sheetcal/internal/state"
	"github.com/five82/sheetcal/internal/ui"
)

// Options configure the sheetcal application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/sheetcal/prefs.toml
	// Date is the initially selected day. Zero means today.
	Date time.Time
	// Expanded overrides the saved sheet mode when set.
	Expanded *bool
}

// Run boots the sheetcal TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)

	closeTrace, err := startTrace(cfg)
	if err != nil {
		return err
	}
	defer closeTrace()

	expanded := userPrefs.Expanded
	if opts.Expanded != nil {
		expanded = *opts.Expanded
	}

	st := NewCalendar(cfg, opts.Date)
	model := ui.New(ui.Options{
		State:     st,
		Config:    cfg,
		Expanded:  expanded,
		ThemeName: userPrefs.Theme,
		PrefsPath: prefsPath,
	})
	defer model.Close()

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	// Tell the UI when the local date rolls over
	StartTodayWatcher(ctx, time.Now, defaultWatchInterval, func(now time.Time) {
		p.Send(ui.TodayMsg(now))
	})

	log.Printf("app: starting on %s", st.CurrentDate().Format(time.DateOnly))
	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// NewCalendar builds the shared calendar state for cfg. A zero date selects
// today. The date is truncated to midnight.
func NewCalendar(cfg config.Config, date time.Time) *state.Calendar {
	if date.IsZero() {
		date = time.Now()
	}
	return state.New(datemath.StartOfDay(date), state.WithMath(datemath.Math{WeekStart: cfg.WeekStart}))
}

// startTrace points the standard logger at the trace file, or discards log
// output when tracing is off. The terminal belongs to the UI either way.
func startTrace(cfg config.Config) (func(), error) {
	if !cfg.TraceEnabled() {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.TraceLog), 0o755); err != nil {
		return nil, fmt.Errorf("create trace dir: %w", err)
	}
	f, err := tea.LogToFile(cfg.TraceLog, "sheetcal")
	if err != nil {
		return nil, fmt.Errorf("open trace log: %w", err)
	}
	return func() { _ = f.Close() }, nil
}
