package components

import "charm.land/bubbles/v2/key"

// MenuKeyMap holds the bindings a Menu responds to.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
}

// DefaultMenuKeys returns arrow/vi navigation with Enter to select.
func DefaultMenuKeys() MenuKeyMap {
	return MenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		Select: key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("Enter", "select")),
	}
}
