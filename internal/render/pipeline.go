package render

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// HighlightFunc turns a code block into an HTML fragment. lang is the fence
// info tag, or "" for untagged and indented blocks.
type HighlightFunc func(code, lang string) (string, error)

type pipelineConfig struct {
	hardWraps bool
	unsafe    bool
	emoji     bool
	highlight HighlightFunc
}

type Option func(*pipelineConfig)

// WithHardWraps turns single newlines inside a paragraph into <br>. On by default.
func WithHardWraps(on bool) Option {
	return func(c *pipelineConfig) { c.hardWraps = on }
}

// WithUnsafeHTML passes raw HTML through untouched. On by default: the author
// is the only reader of the output.
func WithUnsafeHTML(on bool) Option {
	return func(c *pipelineConfig) { c.unsafe = on }
}

// WithEmoji expands :shortcodes:. On by default.
func WithEmoji(on bool) Option {
	return func(c *pipelineConfig) { c.emoji = on }
}

// WithHighlighter routes code blocks through fn. A nil fn renders them plain.
func WithHighlighter(fn HighlightFunc) Option {
	return func(c *pipelineConfig) { c.highlight = fn }
}

// Pipeline converts markdown to HTML. It is stateless after construction and
// safe for concurrent use.
type Pipeline struct {
	md goldmark.Markdown
}

func NewPipeline(opts ...Option) *Pipeline {
	cfg := pipelineConfig{
		hardWraps: true,
		unsafe:    true,
		emoji:     true,
		highlight: NewHighlighter(DefaultStyle).Highlight,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	exts := []goldmark.Extender{extension.GFM}
	if cfg.emoji {
		exts = append(exts, emoji.Emoji)
	}
	exts = append(exts, &codeBlocks{highlight: cfg.highlight})

	rendererOptions := []renderer.Option{}
	if cfg.hardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if cfg.unsafe {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	return &Pipeline{
		md: goldmark.New(
			goldmark.WithExtensions(exts...),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(rendererOptions...),
		),
	}
}

// HTML renders src. It never fails: on a converter error the source comes
// back escaped inside <pre>.
func (p *Pipeline) HTML(src string) string {
	var b bytes.Buffer
	if err := p.md.Convert([]byte(src), &b); err != nil {
		return "<pre>" + template.HTMLEscapeString(src) + "</pre>"
	}
	return b.String()
}
