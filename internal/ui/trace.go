package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/sheetcal/internal/logtail"
)

// traceModal shows the tail of the trace log.
type traceModal struct {
	path     string
	viewport viewport.Model
}

func newTraceModal(path string, theme Theme, width, height int) *traceModal {
	w := max(width-8, 20)
	h := max(height-6, 3)
	vp := viewport.New(w, h)
	vp.SetContent(traceContent(path, theme.Styles()))
	vp.GotoBottom()
	return &traceModal{path: path, viewport: vp}
}

func traceContent(path string, styles Styles) string {
	if path == "" {
		return styles.MutedText.Render("Tracing is disabled. Set trace_log in config.toml.")
	}
	entries, err := logtail.ReadEntries(path, traceLines)
	if err != nil {
		return styles.DangerText.Render(err.Error())
	}
	if len(entries) == 0 {
		return styles.MutedText.Render(fmt.Sprintf("No trace lines in %s yet.", path))
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		var b strings.Builder
		if !e.Time.IsZero() {
			b.WriteString(styles.FaintText.Render(e.Time.Format("15:04:05")))
			b.WriteString(" ")
		}
		if e.Component != "" {
			b.WriteString(componentStyle(e.Component, styles).Render(e.Component))
			b.WriteString(" ")
		}
		b.WriteString(styles.Text.Render(e.Message))
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func componentStyle(component string, styles Styles) lipgloss.Style {
	switch {
	case strings.HasPrefix(component, "pager"):
		return styles.AccentText
	case strings.HasPrefix(component, "carousel"):
		return styles.InfoText
	case strings.HasPrefix(component, "sheet"):
		return styles.SuccessText
	default:
		return styles.MutedText
	}
}

func (t *traceModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, keys.Close) {
		return t, nil, true
	}
	var cmd tea.Cmd
	t.viewport, cmd = t.viewport.Update(msg)
	return t, cmd, false
}

func (t *traceModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	title := styles.AccentText.Bold(true).Render("Trace")
	if t.path != "" {
		title += " " + styles.FaintText.Render(t.path)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(0, 1)

	body := lipgloss.JoinVertical(lipgloss.Left, title, t.viewport.View())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box.Render(body))
}
