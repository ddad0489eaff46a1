package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Grab    key.Binding
	Cancel  key.Binding
	AddRow  key.Binding
	Undo    key.Binding
	Redo    key.Binding
	Copy    key.Binding
	Command key.Binding
	Search  key.Binding
	Next    key.Binding
	Prev    key.Binding
	Help    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Grab, k.AddRow, k.Undo, k.Redo, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Grab, k.Cancel, k.AddRow},
		{k.Undo, k.Redo, k.Copy},
		{k.Command, k.Search, k.Next, k.Prev, k.Help},
	}
}

var defaultKeyMap = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	Grab: key.NewBinding(
		key.WithKeys(" ", "space", "enter"),
		key.WithHelp("space", "pick up/drop"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel drag"),
	),
	AddRow: key.NewBinding(
		key.WithKeys("a", "o"),
		key.WithHelp("a", "add row"),
	),
	Undo: key.NewBinding(
		key.WithKeys("u", "ctrl+z"),
		key.WithHelp("u", "undo"),
	),
	Redo: key.NewBinding(
		key.WithKeys("ctrl+r", "U"),
		key.WithHelp("ctrl+r", "redo"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy label"),
	),
	Command: key.NewBinding(
		key.WithKeys(PROMPT_COMMAND),
		key.WithHelp(PROMPT_COMMAND, "command"),
	),
	Search: key.NewBinding(
		key.WithKeys(PROMPT_SEARCH),
		key.WithHelp(PROMPT_SEARCH, "search label"),
	),
	Next: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next match"),
	),
	Prev: key.NewBinding(
		key.WithKeys("N"),
		key.WithHelp("N", "previous match"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}
