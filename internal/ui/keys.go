package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding

	// Navigation
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	PageSize key.Binding

	// Formatting
	Bold        key.Binding
	Italic      key.Binding
	Underline   key.Binding
	Color       key.Binding
	ClearColor  key.Binding
	AlignLeft   key.Binding
	AlignCenter key.Binding
	AlignRight  key.Binding

	// History
	Undo key.Binding
	Redo key.Binding

	// Data
	Edit   key.Binding
	Sort   key.Binding
	Export key.Binding

	// Edit prompt
	Confirm key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "Move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "Move right"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "Page down"),
		),
		PageSize: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "Cycle page size"),
		),

		// Formatting
		Bold: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "Bold"),
		),
		Italic: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "Italic"),
		),
		Underline: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "Underline"),
		),
		Color: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Next colour"),
		),
		ClearColor: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "Clear colour"),
		),
		AlignLeft: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Align left"),
		),
		AlignCenter: key.NewBinding(
			key.WithKeys("="),
			key.WithHelp("=", "Align center"),
		),
		AlignRight: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "Align right"),
		),

		// History
		Undo: key.NewBinding(
			key.WithKeys("ctrl+z", "U"),
			key.WithHelp("U/ctrl+z", "Undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("ctrl+y", "R"),
			key.WithHelp("R/ctrl+y", "Redo"),
		),

		// Data
		Edit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Edit cell"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Sort column"),
		),
		Export: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Export xlsx"),
		),

		// Edit prompt
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Bold, k.Italic, k.Underline, k.Color, k.Undo, k.Redo, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Navigation
		{k.Up, k.Down, k.Left, k.Right, k.Top, k.Bottom},
		{k.PageUp, k.PageDown, k.PageSize},
		// Formatting
		{k.Bold, k.Italic, k.Underline, k.Color, k.ClearColor},
		{k.AlignLeft, k.AlignCenter, k.AlignRight},
		// Data
		{k.Edit, k.Sort, k.Export, k.Undo, k.Redo},
		// General
		{k.CycleTheme, k.Help, k.Quit},
	}
}
