package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	left    key.Binding
	right   key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	logout  key.Binding

	newItem   key.Binding
	attach    key.Binding
	refresh   key.Binding
	delete    key.Binding
	yank      key.Binding
	moveLeft  key.Binding
	moveRight key.Binding
	markAll   key.Binding
	allScope  key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	left:    key.NewBinding(key.WithKeys("left", "h")),
	right:   key.NewBinding(key.WithKeys("right", "l")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:  key.NewBinding(key.WithKeys("L")),

	newItem:   key.NewBinding(key.WithKeys("n")),
	attach:    key.NewBinding(key.WithKeys("f")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	delete:    key.NewBinding(key.WithKeys("d")),
	yank:      key.NewBinding(key.WithKeys("c")),
	moveLeft:  key.NewBinding(key.WithKeys("[")),
	moveRight: key.NewBinding(key.WithKeys("]")),
	markAll:   key.NewBinding(key.WithKeys("a")),
	allScope:  key.NewBinding(key.WithKeys("A")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
