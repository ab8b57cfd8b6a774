package dialog

import "charm.land/bubbles/v2/key"

// keyMap defines the key bindings shared by both dialogs.
type keyMap struct {
	Accept  key.Binding // activate the focused button
	Dismiss key.Binding // close, resolving to false
	Yes     key.Binding // confirm shortcut
	No      key.Binding // cancel shortcut
	Left    key.Binding
	Right   key.Binding
	Copy    key.Binding // copy alert message to clipboard
}

func defaultKeyMap() keyMap {
	return keyMap{
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "choose"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "cancel"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←", "move"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→", "move"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy"),
		),
	}
}
