package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

const (
	splitGapW     = 1
	minPaneW      = 20
	chromeLines   = 3 // header, status bar, minibuffer
	minBodyHeight = 3
)

type paneSizes struct {
	inputW, previewW, bodyH int
}

// splitPanes divides the terminal between the input and preview panes.
func splitPanes(width, height int) paneSizes {
	bodyH := height - chromeLines
	if bodyH < minBodyHeight {
		bodyH = minBodyHeight
	}
	avail := width - splitGapW
	if avail < 2*minPaneW {
		avail = 2 * minPaneW
	}
	inputW := avail / 2
	return paneSizes{inputW: inputW, previewW: avail - inputW, bodyH: bodyH}
}

// fitPane forces s to exactly width columns and height lines (ANSI-aware) so
// lipgloss.JoinHorizontal keeps the split stable.
func fitPane(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	lines := strings.Split(s, "\n")
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}
	for i, ln := range lines {
		lines[i] = fitLine(ln, width)
	}
	return strings.Join(lines, "\n")
}

func fitLine(ln string, width int) string {
	if width <= 0 {
		return ""
	}
	// Bound the width computation on pathological lines.
	if len(ln) > 8192 {
		ln = xansi.Cut(ln, 0, width)
	}
	w := xansi.StringWidth(ln)
	if w > width {
		if width == 1 {
			ln = xansi.Cut(ln, 0, 1)
		} else {
			ln = xansi.Cut(ln, 0, width-1) + "…"
		}
		w = xansi.StringWidth(ln)
	}
	if w < width {
		ln += strings.Repeat(" ", width-w)
	}
	return ln
}
