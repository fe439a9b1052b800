package editor

// UIState holds the visibility flags. Settings and help are never open at the
// same time; the modal flag is independent of both.
//
// Transitions are value methods so callers can keep the previous state around.
type UIState struct {
	SettingsOpen bool
	HelpOpen     bool
	ModalOpen    bool
	DarkMode     bool
}

func (s UIState) ToggleDarkMode() UIState {
	s.DarkMode = !s.DarkMode
	return s
}

func (s UIState) OpenSettings() UIState {
	s.SettingsOpen = true
	s.HelpOpen = false
	return s
}

func (s UIState) OpenHelp() UIState {
	s.HelpOpen = true
	s.SettingsOpen = false
	return s
}

func (s UIState) ToggleSettings() UIState {
	if s.SettingsOpen {
		s.SettingsOpen = false
		return s
	}
	return s.OpenSettings()
}

func (s UIState) ToggleHelp() UIState {
	if s.HelpOpen {
		s.HelpOpen = false
		return s
	}
	return s.OpenHelp()
}

// CloseAll closes both panels. The modal has its own lifecycle and is left alone.
func (s UIState) CloseAll() UIState {
	s.SettingsOpen = false
	s.HelpOpen = false
	return s
}

func (s UIState) SetModal(open bool) UIState {
	s.ModalOpen = open
	return s
}

// PanelOpen reports whether a side panel currently replaces the preview.
func (s UIState) PanelOpen() bool {
	return s.SettingsOpen || s.HelpOpen
}
