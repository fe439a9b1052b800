package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// autosaveFireMsg carries an expired timer back onto the event loop.
type autosaveFireMsg struct {
	fire func()
}

// loopScheduler runs timers on the runtime but delivers their callbacks as
// messages, so the session is only ever touched from Update.
type loopScheduler struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

func (s *loopScheduler) attach(send func(tea.Msg)) {
	s.mu.Lock()
	s.send = send
	s.mu.Unlock()
}

func (s *loopScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	t := time.AfterFunc(d, func() {
		s.mu.Lock()
		send := s.send
		s.mu.Unlock()
		if send != nil {
			send(autosaveFireMsg{fire: f})
		}
	})
	return t.Stop
}
