package tui

import (
	"os"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette. Every color is adaptive; applyTheme decides which side lipgloss
// picks, so the stored dark-mode preference wins over terminal detection.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted      = ac("240", "243")
	colorSurfaceBg  = ac("255", "235")
	colorSurfaceFg  = ac("235", "252")
	colorControlBg  = ac("252", "237")
	colorInputBg    = ac("254", "234")
	colorAccent     = ac("27", "62")
	colorAccentFg   = ac("255", "235")
	colorSelectedBg = ac("#e9e9e9", "#262626")
	colorSelectedFg = ac("235", "255")
	colorPending    = ac("130", "214")

	colorModalSurfaceBg = colorSurfaceBg
	colorModalSurfaceFg = colorSurfaceFg
	colorModalHeaderBg  = colorControlBg
	colorModalHeaderFg  = colorSurfaceFg
)

var darkTheme atomic.Bool

// applyTheme is the single place dark mode reaches the terminal: lipgloss
// background detection and the glamour style both follow it.
func applyTheme(dark bool) {
	darkTheme.Store(dark)
	lipgloss.SetHasDarkBackground(dark)
}

func themeIsDark() bool { return darkTheme.Load() }

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if themeIsDark() {
		return st.Faint(true)
	}
	return st
}

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

// applyColorProfilePreference sets the lipgloss color profile for the TUI.
//
// termenv.EnvColorProfile also honors CLICOLOR, which tends to switch colors
// off inside a full-screen program. Only NO_COLOR is respected here.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	switch {
	case strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit"):
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	case strings.Contains(term, "256color"):
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}
	lipgloss.SetColorProfile(profile)
}
