package roadmap

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextPhase key.Binding
	PrevPhase key.Binding
	Select    key.Binding
	Clear     key.Binding
	Export    key.Binding
	Search    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		NextPhase: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "Phase"),
		),
		PrevPhase: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("⇧Tab", "Phase"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", "space"),
			key.WithHelp("Enter", "Details"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Close"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "Export"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Find"),
		),
	}
}
