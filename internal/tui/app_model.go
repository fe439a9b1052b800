package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"mdpad/internal/editor"
	"mdpad/internal/export"
	"mdpad/internal/logging"
	"mdpad/internal/store"
)

// Options configures the terminal editor.
type Options struct {
	Store    store.Preferences
	Renderer editor.Renderer
	// HardWraps keeps source newlines as line breaks in the terminal preview.
	HardWraps     bool
	AutosaveDelay time.Duration
	Export        export.Options
	// EditorCommand overrides $VISUAL / $EDITOR for ctrl+x.
	EditorCommand string
	Publisher     editor.Publisher
	Logger        logging.Logger
	// Title is shown in the header, usually the database path.
	Title string
}

type focusArea int

const (
	focusInput focusArea = iota
	focusPreview
)

func (f focusArea) String() string {
	if f == focusPreview {
		return "preview"
	}
	return "input"
}

type previewState struct {
	ok    bool
	text  string
	width int
	dark  bool
}

type model struct {
	session *editor.Session
	keys    keyMap
	log     logging.Logger

	exportOpts export.Options
	editorCmd  string
	hardWraps  bool
	title      string

	input       textarea.Model
	preview     viewport.Model
	exportInput textinput.Model

	exporting    bool
	changesOpen  bool
	confirmFocus confirmModalFocus
	focus        focusArea

	width    int
	height   int
	rendered previewState

	minibufferText string

	externalEditorPath   string
	externalEditorBefore string
}

func newModel(opts Options, sched editor.Scheduler) model {
	log := logging.OrNoOp(opts.Logger)
	s := editor.NewSession(editor.SessionOptions{
		Store:         opts.Store,
		Renderer:      opts.Renderer,
		Scheduler:     sched,
		AutosaveDelay: opts.AutosaveDelay,
		ApplyTheme:    applyTheme,
		Publisher:     opts.Publisher,
		Logger:        log,
	})

	in := textarea.New()
	in.Prompt = ""
	in.ShowLineNumbers = false
	in.CharLimit = 0
	in.MaxHeight = 0
	in.SetValue(s.Text())
	in.Focus()

	m := model{
		session:     s,
		keys:        defaultKeyMap(),
		log:         log,
		exportOpts:  opts.Export.Normalize(),
		editorCmd:   opts.EditorCommand,
		hardWraps:   opts.HardWraps,
		title:       opts.Title,
		input:       in,
		preview:     viewport.New(40, 10),
		exportInput: newExportInput(),
		focus:       focusInput,
	}
	return m
}

func (m *model) showMinibuffer(text string) {
	m.minibufferText = text
}

// setText pushes an edit into the session and refreshes the preview when the
// document actually changed.
func (m *model) setText(text string) {
	if m.session.SetText(text) {
		m.refreshPreview()
	}
}

func (m *model) resize() {
	sz := splitPanes(m.width, m.height)
	m.input.SetWidth(sz.inputW)
	m.input.SetHeight(sz.bodyH)
	m.preview.Width = sz.previewW
	m.preview.Height = sz.bodyH
	m.exportInput.Width = modalBodyWidth(m.width) - 4
	m.refreshPreview()
}

func (m *model) refreshPreview() {
	text, w, dark := m.session.Text(), m.preview.Width, themeIsDark()
	if m.rendered.ok && m.rendered.text == text && m.rendered.width == w && m.rendered.dark == dark {
		return
	}
	m.preview.SetContent(renderMarkdown(text, w, m.hardWraps))
	m.rendered = previewState{ok: true, text: text, width: w, dark: dark}
}

func (m *model) setFocus(f focusArea) {
	m.focus = f
	if f == focusInput {
		m.input.Focus()
		return
	}
	m.input.Blur()
}
