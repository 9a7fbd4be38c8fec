package quiz

import "charm.land/bubbles/v2/key"

// keyMap holds the quiz screen bindings.
type keyMap struct {
	Choose  key.Binding
	Up      key.Binding
	Down    key.Binding
	Reveal  key.Binding
	Advance key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Choose:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "choose")),
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "move")),
	Down:    key.NewBinding(key.WithKeys("down", "j")),
	Reveal:  key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("enter", "check")),
	Advance: key.NewBinding(key.WithKeys("enter", "n", "right"), key.WithHelp("enter", "next")),
	Quit:    key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
}
