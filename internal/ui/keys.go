package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"tasks/internal/config"
)

type listKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func (k listKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.Help, k.Quit}
}

func (k listKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Add, k.Edit, k.Delete},
		{k.Help, k.Quit},
	}
}

type formKeyMap struct {
	Next         key.Binding
	Prev         key.Binding
	Confirm      key.Binding
	Save         key.Binding
	Cancel       key.Binding
	PriorityUp   key.Binding
	PriorityDown key.Binding
}

func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Save, k.Cancel}
}

func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Confirm},
		{k.PriorityUp, k.PriorityDown},
		{k.Save, k.Cancel},
	}
}

func newListKeyMap(k config.Keymap) listKeyMap {
	return listKeyMap{
		Up:     key.NewBinding(key.WithKeys(k.Up, "up"), key.WithHelp(k.Up+"/↑", "up")),
		Down:   key.NewBinding(key.WithKeys(k.Down, "down"), key.WithHelp(k.Down+"/↓", "down")),
		Add:    key.NewBinding(key.WithKeys(k.Add), key.WithHelp(k.Add, "add task")),
		Edit:   key.NewBinding(key.WithKeys(k.Edit), key.WithHelp(k.Edit, "edit")),
		Delete: key.NewBinding(key.WithKeys(k.Delete), key.WithHelp(k.Delete, "delete")),
		Help:   key.NewBinding(key.WithKeys(k.Help), key.WithHelp(k.Help, "more")),
		Quit:   key.NewBinding(key.WithKeys(k.Quit, "ctrl+c"), key.WithHelp(k.Quit, "quit")),
	}
}

func newFormKeyMap(k config.Keymap) formKeyMap {
	return formKeyMap{
		Next:         key.NewBinding(key.WithKeys(k.NextField), key.WithHelp(k.NextField, "next field")),
		Prev:         key.NewBinding(key.WithKeys(k.PrevField), key.WithHelp(k.PrevField, "prev field")),
		Confirm:      key.NewBinding(key.WithKeys(k.Confirm), key.WithHelp(k.Confirm, "next/save")),
		Save:         key.NewBinding(key.WithKeys(k.Save), key.WithHelp(k.Save, "save")),
		Cancel:       key.NewBinding(key.WithKeys(k.Cancel), key.WithHelp(k.Cancel, "cancel")),
		PriorityUp:   key.NewBinding(key.WithKeys(k.PriorityUp, "right"), key.WithHelp(k.PriorityUp+"/→", "raise priority")),
		PriorityDown: key.NewBinding(key.WithKeys(k.PriorityDown, "left"), key.WithHelp(k.PriorityDown+"/←", "lower priority")),
	}
}
