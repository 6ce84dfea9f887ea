package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	addPerson key.Binding
	newGift   key.Binding
	edit      key.Binding
	delete    key.Binding
	reorder   key.Binding
	refresh   key.Binding
	copyList  key.Binding
	purchased key.Binding
	wrapped   key.Binding
	logout    key.Binding
	quit      key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	addPerson: key.NewBinding(key.WithKeys("a")),
	newGift:   key.NewBinding(key.WithKeys("n")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("ctrl+d")),
	reorder:   key.NewBinding(key.WithKeys("r")),
	refresh:   key.NewBinding(key.WithKeys("s")),
	copyList:  key.NewBinding(key.WithKeys("c")),
	purchased: key.NewBinding(key.WithKeys("p")),
	wrapped:   key.NewBinding(key.WithKeys("w")),
	logout:    key.NewBinding(key.WithKeys("l")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
