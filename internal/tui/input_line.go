package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

func newExportInput() textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 4096
	in.Placeholder = "path/to/document.html"
	return in
}

// renderInputLine keeps a text input on exactly one visual line of bodyW
// columns. Wrapped input inside a modal reads like inserted newlines.
func renderInputLine(bodyW int, inputView string) string {
	if bodyW < 10 {
		bodyW = 10
	}
	inputView = strings.NewReplacer("\r", " ", "\n", " ").Replace(inputView)

	line := lipgloss.PlaceHorizontal(
		bodyW,
		lipgloss.Left,
		" "+inputView+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) > bodyW {
		line = xansi.Cut(line, 0, bodyW) + "\x1b[0m"
	}
	return line
}

func renderExportModal(width int, input textinput.Model) string {
	bodyW := modalBodyWidth(width)
	body := strings.Join([]string{
		"Write the rendered HTML to:",
		"",
		renderInputLine(bodyW, input.View()),
		"",
		styleMuted().Width(bodyW).Render("enter: export   esc: cancel"),
	}, "\n")
	return renderModalBox(width, "Export", body)
}
