// Package ui provides the terminal calendar for sheetcal.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program and a thin client of the view-state core.
// It owns no calendar logic: selection lives in state.Calendar, paging in the
// two carousels of a carousel.Coordinator, and the week/month morph in a
// sheet.Controller. The UI turns input into calls on those types and draws
// whatever they report.
//
// # Package Structure
//
//   - app.go: Model, input handling and the frame loop
//   - render.go: pages, horizontal paging and the morphing body
//   - layout.go: screen geometry and the position.Measurer for month pages
//   - keys.go: key bindings (bubbles/key) shared by footer and help
//   - help.go: help overlay
//   - trace.go: trace log overlay (a Modal)
//   - theme.go, style_helpers.go: palettes and lipgloss helpers
//   - static.go: one-shot render used by `sheetcal show`
//
// # Two Domains
//
// Discrete events (keys, clicks, settles) run in Update. Continuous values
// (pager offsets, the sheet's drag value d) advance on frameMsg ticks. The
// frame loop only runs while something animates:
//
//	input ──> state/carousel/sheet ──> afterInput ──┐
//	                                                │ busy?
//	frameMsg <── tea.Tick(frame interval) <─────────┘
//	   │
//	   ├─> Coordinator.Advance  (springs, settle dwell, resync)
//	   ├─> Controller.Advance   (sheet snap)
//	   └─> measure              (position.Tracker)
//
// # The Morph
//
// The body between the weekday names and the handle is cellHeight+d rows
// tall. The month grid is scrolled by MonthTranslateY-EndTranslateY rows,
// so while collapsed the selected row sits where the week strip is and at
// d = T the grid shows from its first row. Opacity is quantized: the grid
// is drawn faint below half opacity and the week strip covers the first row
// while its opacity is at least one half. Exactly one view takes clicks, as
// sheet.Style reports.
//
// # Key Bindings
//
//   - h/l, ←/→: previous/next day
//   - k/j, ↑/↓: previous/next week
//   - H/L, [/]: swipe the interactive pager
//   - space: toggle week/month
//   - t: today
//   - T: cycle theme
//   - g: trace log
//   - ?: help
//   - q or Ctrl+C: quit
package ui
