package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mdpad/internal/editor"
)

func panelTitle(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render(s)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func renderSettingsPanel(st editor.UIState, font editor.FontSize, k keyMap) string {
	label := lipgloss.NewStyle().Width(14)
	rows := []string{
		panelTitle("Settings"),
		"",
		label.Render("Dark mode") + onOff(st.DarkMode) + "   " + styleMuted().Render(k.DarkMode.Help().Key),
		label.Render("Font size") + font.String() + "   " + styleMuted().Render(k.FontSize.Help().Key),
		"",
		styleMuted().Render("Font size is shown for reference; the terminal font is unchanged."),
		styleMuted().Render("Raw HTML, emoji and code highlighting settings apply to export,"),
		styleMuted().Render("copy and the browser preview, not to this pane."),
		"",
		styleMuted().Render(k.Close.Help().Key + ": close"),
	}
	return strings.Join(rows, "\n")
}

func renderHelpPanel(k keyMap) string {
	keyStyle := lipgloss.NewStyle().Width(16).Foreground(colorAccent)
	var b strings.Builder
	b.WriteString(panelTitle("Keys"))
	b.WriteString("\n")
	for _, g := range k.groups() {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(g.title))
		b.WriteString("\n")
		for _, kb := range g.bindings {
			h := kb.Help()
			fmt.Fprintf(&b, "  %s%s\n", keyStyle.Render(h.Key), h.Desc)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
