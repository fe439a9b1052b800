package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NewDocument    key.Binding
	Save           key.Binding
	Export         key.Binding
	CopyHTML       key.Binding
	ExternalEditor key.Binding

	DarkMode key.Binding
	Settings key.Binding
	Help     key.Binding
	FontSize key.Binding
	Changes  key.Binding
	Focus    key.Binding
	Close    key.Binding

	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NewDocument:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new document")),
		Save:           key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save now")),
		Export:         key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "export HTML")),
		CopyHTML:       key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy HTML")),
		ExternalEditor: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "edit in $EDITOR")),

		DarkMode: key.NewBinding(key.WithKeys("ctrl+t", "f3"), key.WithHelp("ctrl+t/f3", "toggle dark mode")),
		Settings: key.NewBinding(key.WithKeys("ctrl+o", "f2"), key.WithHelp("ctrl+o/f2", "settings")),
		Help:     key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		FontSize: key.NewBinding(key.WithKeys("f4"), key.WithHelp("f4", "cycle font size")),
		Changes:  key.NewBinding(key.WithKeys("f5"), key.WithHelp("f5", "changes since save")),
		Focus:    key.NewBinding(key.WithKeys("f6"), key.WithHelp("f6", "switch input/preview")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close panels")),

		Quit: key.NewBinding(key.WithKeys("ctrl+c", "ctrl+q"), key.WithHelp("ctrl+c/ctrl+q", "save and quit")),
	}
}

type keyGroup struct {
	title    string
	bindings []key.Binding
}

func (k keyMap) groups() []keyGroup {
	return []keyGroup{
		{title: "Document", bindings: []key.Binding{k.NewDocument, k.Save, k.Export, k.CopyHTML, k.ExternalEditor}},
		{title: "View", bindings: []key.Binding{k.DarkMode, k.Settings, k.Help, k.FontSize, k.Changes, k.Focus, k.Close}},
		{title: "App", bindings: []key.Binding{k.Quit}},
	}
}
