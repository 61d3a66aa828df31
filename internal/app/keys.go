package app

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	ToggleLog key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		ToggleLog: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "toggle log")),
	}
}
