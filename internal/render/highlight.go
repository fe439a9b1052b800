package render

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const DefaultStyle = "github"

// Highlighter colors code with chroma. Output uses inline styles so exported
// files need no stylesheet.
type Highlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewHighlighter uses the named chroma style, or chroma's fallback style when
// the name is unknown.
func NewHighlighter(style string) *Highlighter {
	st := styles.Get(strings.TrimSpace(style))
	if st == nil {
		st = styles.Fallback
	}
	return &Highlighter{
		style:     st,
		formatter: chromahtml.New(chromahtml.WithClasses(false), chromahtml.TabWidth(4)),
	}
}

// Highlight satisfies HighlightFunc. The lexer is picked by tag when chroma
// knows it, otherwise guessed from the code, otherwise plain text.
func (h *Highlighter) Highlight(code, lang string) (string, error) {
	it, err := h.lexer(code, lang).Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("highlight %q: %w", lang, err)
	}
	var b strings.Builder
	if err := h.formatter.Format(&b, h.style, it); err != nil {
		return "", fmt.Errorf("highlight %q: %w", lang, err)
	}
	return b.String(), nil
}

// Detect reports the name of the lexer Highlight would use.
func (h *Highlighter) Detect(code, lang string) string {
	return h.lexer(code, lang).Config().Name
}

func (h *Highlighter) lexer(code, lang string) chroma.Lexer {
	var l chroma.Lexer
	if lang = strings.TrimSpace(lang); lang != "" {
		l = lexers.Get(lang)
	}
	if l == nil {
		l = lexers.Analyse(code)
	}
	if l == nil {
		l = lexers.Fallback
	}
	return chroma.Coalesce(l)
}
