package level

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Digit  key.Binding
	Submit key.Binding
	Clear  key.Binding
	Back   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Digit:  key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("0-9", "Type")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "OK")),
		Clear:  key.NewBinding(key.WithKeys("backspace", "delete", "c"), key.WithHelp("⌫/C", "Clear")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Levels")),
	}
}
