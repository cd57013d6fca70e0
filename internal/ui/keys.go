package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Days
	PrevDay  key.Binding
	NextDay  key.Binding
	PrevWeek key.Binding
	NextWeek key.Binding
	Today    key.Binding

	// Pages
	PrevPage key.Binding
	NextPage key.Binding

	// Sheet
	ToggleSheet key.Binding

	// General
	CycleTheme key.Binding
	Trace      key.Binding
	Help       key.Binding
	Quit       key.Binding
	Close      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		PrevDay: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "Previous day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "Next day"),
		),
		PrevWeek: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "Previous week"),
		),
		NextWeek: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "Next week"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Today"),
		),

		PrevPage: key.NewBinding(
			key.WithKeys("H", "["),
			key.WithHelp("H/[", "Swipe back"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("L", "]"),
			key.WithHelp("L/]", "Swipe forward"),
		),

		ToggleSheet: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "Week/month"),
		),

		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Trace: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "Trace log"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "g", "q"),
			key.WithHelp("esc", "Close"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleSheet, k.Today, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay, one group per section.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevDay, k.NextDay, k.PrevWeek, k.NextWeek, k.Today},
		{k.PrevPage, k.NextPage},
		{k.ToggleSheet},
		{k.CycleTheme, k.Trace, k.Help, k.Quit},
	}
}

// helpTitles name the FullHelp groups.
var helpTitles = []string{"Days", "Pages", "Sheet", "General"}
