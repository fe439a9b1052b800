package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the full-screen editor and blocks until the user quits. A
// pending autosave is written before Run returns.
func Run(opts Options) error {
	applyColorProfilePreference()

	sched := &loopScheduler{}
	m := newModel(opts, sched)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	sched.attach(p.Send)

	_, err := p.Run()
	sched.attach(nil)
	m.session.Flush()
	return err
}
