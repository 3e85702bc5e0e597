package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	FocusNext key.Binding
	FocusPrev key.Binding
	Undock    key.Binding
	Dock      key.Binding
	Close     key.Binding
	Reopen    key.Binding
	Activate  key.Binding
	Palette   key.Binding
	Touch     key.Binding
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Narrow    key.Binding
	Widen     key.Binding
	Shorten   key.Binding
	Lengthen  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		FocusNext: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next panel")),
		FocusPrev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev panel")),
		Undock:    key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undock")),
		Dock:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dock")),
		Close:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "close")),
		Reopen:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "reopen")),
		Activate:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "activate")),
		Palette:   key.NewBinding(key.WithKeys(":", "ctrl+p"), key.WithHelp(":", "palette")),
		Touch:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit content")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "move left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "move right")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move down")),
		Narrow:    key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "narrower")),
		Widen:     key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "wider")),
		Shorten:   key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "shorter")),
		Lengthen:  key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "taller")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp is part of help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusNext, k.Undock, k.Dock, k.Close, k.Reopen, k.Palette, k.Help, k.Quit}
}

// FullHelp is part of help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FocusNext, k.FocusPrev, k.Activate, k.Touch},
		{k.Undock, k.Dock, k.Close, k.Reopen},
		{k.Left, k.Right, k.Up, k.Down},
		{k.Narrow, k.Widen, k.Shorten, k.Lengthen},
		{k.Palette, k.Help, k.Quit},
	}
}
