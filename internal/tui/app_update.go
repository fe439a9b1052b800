package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"mdpad/internal/export"
)

func (m model) Init() tea.Cmd { return textarea.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case autosaveFireMsg:
		if msg.fire != nil {
			msg.fire()
		}
		return m, nil

	case externalEditorDoneMsg:
		m.applyExternalEditorResult(msg)
		m.setFocus(focusInput)
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	// Cursor blink and similar component messages.
	var cmd tea.Cmd
	if m.exporting {
		m.exportInput, cmd = m.exportInput.Update(msg)
		return m, cmd
	}
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.minibufferText = ""

	if key.Matches(msg, m.keys.Quit) {
		m.quit()
		return m, tea.Quit
	}
	if m.exporting {
		return m.updateExportKey(msg)
	}
	if m.session.Gate().IsOpen() {
		return m.updateConfirmKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Save):
		if err := m.session.Save(); err != nil {
			m.log.Warn("save failed", "error", err)
			m.showMinibuffer("Save failed: " + err.Error())
		} else {
			m.showMinibuffer("Saved")
		}
		return m, nil

	case key.Matches(msg, m.keys.NewDocument):
		m.session.RequestNewDocument()
		m.confirmFocus = confirmFocusConfirm
		return m, nil

	case key.Matches(msg, m.keys.Export):
		m.exporting = true
		m.exportInput.SetValue(export.DefaultPath(m.exportOpts))
		m.exportInput.CursorEnd()
		m.input.Blur()
		return m, m.exportInput.Focus()

	case key.Matches(msg, m.keys.CopyHTML):
		if err := copyToClipboard(m.session.HTML()); err != nil {
			m.log.Warn("clipboard write failed", "error", err)
			m.showMinibuffer("Copy failed: " + err.Error())
		} else {
			m.showMinibuffer("Copied HTML to clipboard")
		}
		return m, nil

	case key.Matches(msg, m.keys.ExternalEditor):
		cmd, err := m.openExternalEditor()
		if err != nil {
			m.showMinibuffer("Editor failed: " + err.Error())
			return m, nil
		}
		return m, cmd

	case key.Matches(msg, m.keys.DarkMode):
		m.session.ToggleDarkMode()
		m.refreshPreview()
		return m, nil

	case key.Matches(msg, m.keys.Settings):
		m.changesOpen = false
		m.session.ToggleSettings()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.changesOpen = false
		m.session.ToggleHelp()
		return m, nil

	case key.Matches(msg, m.keys.Changes):
		m.changesOpen = !m.changesOpen
		if m.changesOpen {
			m.session.CloseAll()
		}
		return m, nil

	case key.Matches(msg, m.keys.FontSize):
		m.showMinibuffer("Font size: " + m.session.CycleFontSize().String())
		return m, nil

	case key.Matches(msg, m.keys.Focus):
		if m.focus == focusInput {
			m.setFocus(focusPreview)
		} else {
			m.setFocus(focusInput)
		}
		return m, nil

	case key.Matches(msg, m.keys.Close):
		if m.session.State().PanelOpen() || m.changesOpen {
			m.session.CloseAll()
			m.changesOpen = false
		} else if m.focus == focusPreview {
			m.setFocus(focusInput)
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == focusPreview {
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}
	// The textarea rewrites tabs and CRLF on load, so only a change of its
	// value counts as an edit. Cursor keys leave the stored text alone.
	before := m.input.Value()
	if msg.Type == tea.KeyTab {
		m.input.InsertString("\t")
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	if after := m.input.Value(); after != before {
		m.setText(after)
	}
	return m, cmd
}

func (m model) updateConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "left", "right":
		m.confirmFocus = m.confirmFocus.next()
	case "y":
		m.confirm()
	case "enter":
		if m.confirmFocus == confirmFocusConfirm {
			m.confirm()
		} else {
			m.session.Cancel()
		}
	case "n", "esc", "ctrl+g":
		m.session.Cancel()
	}
	return m, nil
}

func (m *model) confirm() {
	m.session.Confirm()
	if m.input.Value() != m.session.Text() {
		m.input.SetValue(m.session.Text())
	}
	m.refreshPreview()
}

func (m model) updateExportKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+g":
		m.closeExport()
		return m, nil
	case "enter":
		path := strings.TrimSpace(m.exportInput.Value())
		m.closeExport()
		if path == "" {
			return m, nil
		}
		if err := export.WriteFile(path, m.session.HTML(), m.exportOpts); err != nil {
			m.log.Error("export failed", "path", path, "error", err)
			return m, nil
		}
		m.log.Info("exported", "path", path)
		m.showMinibuffer("Exported to " + path)
		return m, nil
	}

	var cmd tea.Cmd
	m.exportInput, cmd = m.exportInput.Update(msg)
	return m, cmd
}

func (m *model) closeExport() {
	m.exporting = false
	m.exportInput.Blur()
	m.exportInput.SetValue("")
	m.setFocus(m.focus)
}

func (m model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.session.Gate().IsOpen() {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			box := renderConfirmModal(m.width, m.session.Gate(), m.confirmFocus)
			if !centeredRect(box, m.width, m.height).contains(msg.X, msg.Y) {
				m.session.Cancel()
			}
		}
		return m, nil
	}
	if m.exporting {
		return m, nil
	}

	sz := splitPanes(m.width, m.height)
	if msg.X < sz.inputW+splitGapW {
		return m, nil
	}
	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

// quit writes any pending autosave before the program exits.
func (m *model) quit() {
	if m.session.Flush() {
		m.log.Debug("flushed pending autosave on quit")
	}
}
