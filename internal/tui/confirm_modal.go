package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mdpad/internal/editor"
)

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

func (f confirmModalFocus) next() confirmModalFocus {
	if f == confirmFocusConfirm {
		return confirmFocusCancel
	}
	return confirmFocusConfirm
}

func modalBodyWidth(width int) int {
	w := width - 10
	if w > 64 {
		w = 64
	}
	if w < 24 {
		w = 24
	}
	return w
}

// renderModalBox draws a titled box on the surface background. Borders are
// left out: some terminals smear background colors across nested borders.
func renderModalBox(width int, title string, body string) string {
	bodyW := modalBodyWidth(width)
	header := lipgloss.NewStyle().
		Bold(true).
		Width(bodyW).
		Foreground(colorModalHeaderFg).
		Background(colorModalHeaderBg).
		Render(" " + title)

	content := lipgloss.NewStyle().
		Width(bodyW).
		Foreground(colorModalSurfaceFg).
		Background(colorModalSurfaceBg).
		Render(body)

	return lipgloss.NewStyle().
		Padding(1, 2).
		Background(colorModalSurfaceBg).
		Render(header + "\n\n" + content)
}

// renderConfirmModal renders the gate's prompt, or "" when the gate is closed.
func renderConfirmModal(width int, gate *editor.ConfirmGate, focus confirmModalFocus) string {
	cfg, ok := gate.Config()
	if !ok {
		return ""
	}

	btnBase := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	btnActive := btnBase.
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true)

	confirm := btnBase.Render(cfg.ConfirmLabel)
	cancel := btnBase.Render(cfg.CancelLabel)
	if focus == confirmFocusConfirm {
		confirm = btnActive.Render(cfg.ConfirmLabel)
	} else {
		cancel = btnActive.Render(cfg.CancelLabel)
	}
	controls := lipgloss.JoinHorizontal(lipgloss.Top, confirm, " ", cancel)

	bodyW := modalBodyWidth(width)
	msg := lipgloss.NewStyle().Width(bodyW).Render(cfg.Message)
	help := styleMuted().Width(bodyW).Render("tab: focus   enter/y: select   esc/n: cancel")

	body := strings.Join([]string{msg, "", controls, "", help}, "\n")
	return renderModalBox(width, cfg.Title, body)
}

type rect struct{ x, y, w, h int }

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// centeredRect is where lipgloss.Place(Center, Center) puts a box of the
// given size.
func centeredRect(box string, width, height int) rect {
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	x, y := 0, 0
	if width > w {
		x = (width - w) / 2
	}
	if height > h {
		y = (height - h) / 2
	}
	return rect{x: x, y: y, w: w, h: h}
}

func placeCentered(box string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
