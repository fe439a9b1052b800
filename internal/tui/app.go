package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Loading…"
	}
	if box := renderConfirmModal(m.width, m.session.Gate(), m.confirmFocus); box != "" {
		return placeCentered(box, m.width, m.height)
	}
	if m.exporting {
		return placeCentered(renderExportModal(m.width, m.exportInput), m.width, m.height)
	}

	sz := splitPanes(m.width, m.height)
	left := fitPane(m.input.View(), sz.inputW, sz.bodyH)

	st := m.session.State()
	var right string
	switch {
	case st.SettingsOpen:
		right = renderSettingsPanel(st, m.session.FontSize(), m.keys)
	case st.HelpOpen:
		right = renderHelpPanel(m.keys)
	case m.changesOpen:
		right = renderChangesPanel(m.session.Saved(), m.session.Text())
	default:
		right = m.preview.View()
	}
	right = fitPane(right, sz.previewW, sz.bodyH)

	sep := styleMuted().Render(strings.TrimSuffix(strings.Repeat("│\n", sz.bodyH), "\n"))
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, sep, right)

	return strings.Join([]string{
		m.headerView(),
		body,
		m.statusView(),
		fitLine(m.minibufferText, m.width),
	}, "\n")
}

func (m model) headerView() string {
	name := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render("mdpad")
	parts := []string{name}
	if t := strings.TrimSpace(m.title); t != "" {
		parts = append(parts, styleMuted().Render(t))
	}
	parts = append(parts, styleMuted().Render("focus: "+m.focus.String()))
	return fitLine(strings.Join(parts, "  "), m.width)
}

func (m model) statusView() string {
	met := m.session.Metrics()
	// Dirty rather than the autosave state: a failed write stays unsaved.
	dirty := m.session.Dirty()
	saveLabel := "saved"
	if dirty {
		saveLabel = "unsaved"
	}
	theme := "light"
	if m.session.State().DarkMode {
		theme = "dark"
	}

	left := fmt.Sprintf("%d words · %d characters · %s · %s", met.Words, met.Characters, saveLabel, theme)
	hint := m.keys.Help.Help().Key + " help"

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(hint)
	if gap < 2 {
		return fitLine(left, m.width)
	}
	bar := lipgloss.NewStyle().
		Foreground(colorAccentFg).
		Background(colorAccent)
	if dirty {
		bar = bar.Background(colorPending)
	}
	return bar.Render(left + strings.Repeat(" ", gap) + hint)
}
