package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	quit      key.Binding
	forceQuit key.Binding
	copy      key.Binding
	qr        key.Binding
	info      key.Binding
}

// Letters are only bound on screens without a text input.
var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "ctrl+p")),
	down:      key.NewBinding(key.WithKeys("down", "ctrl+n")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	copy:      key.NewBinding(key.WithKeys("c")),
	qr:        key.NewBinding(key.WithKeys("r")),
	info:      key.NewBinding(key.WithKeys("i")),
}
