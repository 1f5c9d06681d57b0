package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit key.Binding
	yes  key.Binding
	no   key.Binding
}

var keys = keyMap{
	quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	yes:  key.NewBinding(key.WithKeys("y", "Y")),
	no:   key.NewBinding(key.WithKeys("n", "N", "enter")),
}
