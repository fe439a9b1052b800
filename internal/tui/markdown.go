package tui

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

var (
	mdRendererMu sync.Mutex
	// Keyed by style, width and line-break mode. WithAutoStyle is avoided on
	// purpose: it queries the terminal and can block.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

// renderMarkdown renders md for the preview pane. With hardWraps every
// source newline stays a line break, matching the HTML pipeline.
func renderMarkdown(md string, width int, hardWraps bool) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	style := markdownStyle()
	key := style + ":" + strconv.Itoa(width) + ":" + strconv.FormatBool(hardWraps)

	mdRendererMu.Lock()
	r := mdRenderers[key]
	mdRendererMu.Unlock()

	if r == nil {
		opts := []glamour.TermRendererOption{
			glamour.WithStyles(markdownStyleConfig(style)),
			glamour.WithWordWrap(width),
		}
		if hardWraps {
			opts = append(opts, glamour.WithPreservedNewLines())
		}
		rr, err := glamour.NewTermRenderer(opts...)
		if err != nil {
			return md
		}
		mdRendererMu.Lock()
		if existing := mdRenderers[key]; existing != nil {
			r = existing
		} else {
			mdRenderers[key] = rr
			r = rr
		}
		mdRendererMu.Unlock()
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

// markdownStyle follows the applied theme. MDPAD_TUI_MD_STYLE overrides it
// for terminals where the chosen palette reads badly.
func markdownStyle() string {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("MDPAD_TUI_MD_STYLE"))) {
	case "light":
		return "light"
	case "dark":
		return "dark"
	}
	if themeIsDark() {
		return "dark"
	}
	return "light"
}

func markdownStyleConfig(styleName string) ansi.StyleConfig {
	if strings.EqualFold(strings.TrimSpace(styleName), "light") {
		cfg := styles.LightStyleConfig
		applyMarkdownPalette(&cfg, "light")
		return cfg
	}
	cfg := styles.DarkStyleConfig
	applyMarkdownPalette(&cfg, "dark")
	return cfg
}

func applyMarkdownPalette(cfg *ansi.StyleConfig, styleName string) {
	if cfg == nil {
		return
	}

	headingColor := mdColor(colorSurfaceFg, styleName)
	cfg.Heading.Color = headingColor
	cfg.H1.Color = headingColor
	cfg.H2.Color = headingColor
	cfg.H3.Color = headingColor
	cfg.H4.Color = headingColor
	cfg.H5.Color = headingColor
	cfg.H6.Color = headingColor

	cfg.Code.Color = mdColor(colorSurfaceFg, styleName)
	if cfg.CodeBlock.BackgroundColor == nil {
		cfg.CodeBlock.BackgroundColor = mdColor(colorControlBg, styleName)
	}
	cfg.Text.Color = mdColor(colorSurfaceFg, styleName)

	cfg.Strong.Color = nil
	cfg.Emph.Color = nil
	cfg.BlockQuote.Faint = mdBoolPtr(false)
}

func mdColor(c lipgloss.AdaptiveColor, styleName string) *string {
	if strings.EqualFold(strings.TrimSpace(styleName), "light") {
		return mdStrPtr(c.Light)
	}
	return mdStrPtr(c.Dark)
}

func mdStrPtr(s string) *string { return &s }
func mdBoolPtr(b bool) *bool    { return &b }
