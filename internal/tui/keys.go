package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up     key.Binding
	down   key.Binding
	enter  key.Binding
	esc    key.Binding
	search key.Binding
	add    key.Binding
	edit   key.Binding
	del    key.Binding
	review key.Binding
	copy   key.Binding
	stats  key.Binding
	logout key.Binding
}

var keys = keyMap{
	up:     key.NewBinding(key.WithKeys("up", "k")),
	down:   key.NewBinding(key.WithKeys("down", "j")),
	enter:  key.NewBinding(key.WithKeys("enter")),
	esc:    key.NewBinding(key.WithKeys("esc")),
	search: key.NewBinding(key.WithKeys("/")),
	add:    key.NewBinding(key.WithKeys("a")),
	edit:   key.NewBinding(key.WithKeys("e")),
	del:    key.NewBinding(key.WithKeys("ctrl+d")),
	review: key.NewBinding(key.WithKeys("r")),
	copy:   key.NewBinding(key.WithKeys("c")),
	stats:  key.NewBinding(key.WithKeys("t")),
	logout: key.NewBinding(key.WithKeys("l")),
}
