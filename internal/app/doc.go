// Package app provides the orchestration layer for sheetcal.
//
// # Overview
//
// This package wires together configuration, preferences, the calendar
// state, tracing and the UI. It is the composition root: the one place that
// decides which concrete pieces make up a running sheetcal.
//
// # Architecture
//
//  1. Load ~/.config/sheetcal/config.toml (defaults when missing)
//  2. Load ~/.config/sheetcal/prefs.toml (theme, last sheet mode)
//  3. Point the standard logger at the trace file, or discard it
//  4. Create the shared state.Calendar with the configured week start
//  5. Build the ui.Model, which owns the carousels and the sheet
//  6. Start the today watcher
//  7. Run the Bubble Tea program until the user quits or ctx is cancelled
//
// # Components
//
//   - app.go: Run, NewCalendar and trace setup
//   - today.go: background goroutine that reports local date changes
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()         Read tunables
//	       ├─────> prefs.Load()          Theme and sheet mode
//	       ├─────> startTrace()          log -> trace file
//	       ├─────> NewCalendar()         Shared selection state
//	       ├─────> ui.New()              Carousels, sheet, tracker
//	       ├─────> StartTodayWatcher()   Midnight notifications
//	       └─────> tea.Program.Run()     TUI (blocks)
//
//	Today watcher loop:
//	┌─────────────────────────────────────────┐
//	│ StartTodayWatcher() goroutine           │
//	│  ├─> sleep until midnight (or maxWait)  │
//	│  ├─> compare local date with last seen  │
//	│  └─> p.Send(ui.TodayMsg)                │
//	│      └─> Update: Calendar.RefreshToday  │
//	└─────────────────────────────────────────┘
//
// The watcher never touches the calendar itself. All writes happen on the
// Bubble Tea update goroutine.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Config file unreadable or invalid TOML
//   - Trace directory or file cannot be created
//   - The Bubble Tea program fails
//
// Everything else degrades: a missing config or prefs file yields defaults,
// and a failed prefs save is logged to the trace.
//
// # Usage Example
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//
//	if err := app.Run(ctx, app.Options{}); err != nil {
//		log.Fatalf("sheetcal failed: %v", err)
//	}
package app
