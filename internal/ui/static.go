package ui

import (
	"github.com/five82/sheetcal/internal/config"
	"github.com/five82/sheetcal/internal/state"
)

// RenderStatic renders st once, without a program, as the week strip or the
// month grid.
func RenderStatic(st *state.Calendar, cfg config.Config, themeName string, expanded bool) string {
	m := New(Options{
		State:     st,
		Config:    cfg,
		Expanded:  expanded,
		ThemeName: themeName,
	})
	defer m.Close()
	return m.renderCalendar()
}
