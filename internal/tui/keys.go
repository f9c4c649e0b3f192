package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Delete key.Binding
	Sort   key.Binding
	Clear  key.Binding
	Yank   key.Binding
	Quit   key.Binding

	// add form
	Submit key.Binding
	Cancel key.Binding
	More   key.Binding
	Less   key.Binding
	Packed key.Binding
	Yes    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pack")),
		Delete: key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		Sort:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Clear:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Yank:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		More:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "more")),
		Less:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "less")),
		Packed: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "packed")),
		Yes:    key.NewBinding(key.WithKeys("y", "Y")),
	}
}

func (k keyMap) listBindings() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Delete, k.Sort, k.Clear, k.Yank}
}
