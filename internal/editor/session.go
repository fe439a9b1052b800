package editor

import (
	"time"

	"mdpad/internal/logging"
	"mdpad/internal/render"
	"mdpad/internal/store"
)

// Renderer turns markdown into HTML. It must not fail outward.
type Renderer interface {
	HTML(src string) string
}

// Publisher receives every fresh render (the live preview hub).
type Publisher interface {
	Publish(html string)
}

type SessionOptions struct {
	Store     store.Preferences
	Renderer  Renderer
	Scheduler Scheduler
	// AutosaveDelay defaults to DefaultAutosaveDelay.
	AutosaveDelay time.Duration
	// ApplyTheme is called once at startup and once per dark-mode transition.
	ApplyTheme func(dark bool)
	Publisher  Publisher
	Logger     logging.Logger
}

// Session coordinates the document, its persistence and the UI flags.
// It is not safe for concurrent use; the TUI drives it from the event loop.
type Session struct {
	prefs      store.Preferences
	renderer   Renderer
	applyTheme func(bool)
	publisher  Publisher
	log        logging.Logger

	text     string
	saved    string
	html     string
	metrics  Metrics
	ui       UIState
	fontSize FontSize

	autosave *Debouncer
	gate     ConfirmGate
}

func NewSession(opts SessionOptions) *Session {
	s := &Session{
		prefs:      opts.Store,
		renderer:   opts.Renderer,
		applyTheme: opts.ApplyTheme,
		publisher:  opts.Publisher,
		log:        logging.OrNoOp(opts.Logger),
		fontSize:   FontMedium,
	}
	if s.prefs == nil {
		s.prefs = store.NewMemory()
	}
	if s.renderer == nil {
		s.renderer = render.NewPipeline()
	}
	s.autosave = NewDebouncer(opts.AutosaveDelay, opts.Scheduler, s.saveDocument)

	s.text = DefaultDocument
	if v, ok := s.prefs.Load(store.KeyDocument); ok {
		s.text = v
	}
	if dark, ok := store.LoadBool(s.prefs, store.KeyDarkMode); ok {
		s.ui.DarkMode = dark
	}
	s.saved = s.text

	s.rerender()
	s.callApplyTheme()
	return s
}

func (s *Session) Text() string                 { return s.text }
func (s *Session) HTML() string                 { return s.html }
func (s *Session) Metrics() Metrics             { return s.metrics }
func (s *Session) State() UIState               { return s.ui }
func (s *Session) Gate() *ConfirmGate           { return &s.gate }
func (s *Session) Autosave() *Debouncer         { return s.autosave }
func (s *Session) AutosaveState() AutosaveState { return s.autosave.State() }

// Saved is the document as last loaded or written.
func (s *Session) Saved() string { return s.saved }

func (s *Session) Dirty() bool { return s.text != s.saved }

// SetText replaces the document, re-renders synchronously and re-arms the
// autosave. It reports false when text is unchanged.
func (s *Session) SetText(text string) bool {
	if text == s.text {
		return false
	}
	s.text = text
	s.rerender()
	s.autosave.Start()
	return true
}

// Save writes the document now and drops any pending autosave.
func (s *Session) Save() error {
	s.autosave.Cancel()
	if err := s.prefs.Save(store.KeyDocument, s.text); err != nil {
		return err
	}
	s.saved = s.text
	return nil
}

// Flush writes a pending autosave immediately. Used on orderly shutdown.
func (s *Session) Flush() bool {
	return s.autosave.Flush()
}

func (s *Session) saveDocument() {
	if err := s.prefs.Save(store.KeyDocument, s.text); err != nil {
		s.log.Warn("autosave failed", "error", err)
		return
	}
	s.saved = s.text
	s.log.Debug("document saved", "chars", s.metrics.Characters)
}

func (s *Session) rerender() {
	s.html = s.renderer.HTML(s.text)
	s.metrics = ComputeMetrics(s.text)
	if s.publisher != nil {
		s.publisher.Publish(s.html)
	}
}

// ToggleDarkMode flips the theme, persists it right away and applies it once.
func (s *Session) ToggleDarkMode() bool {
	s.ui = s.ui.ToggleDarkMode()
	if err := s.prefs.Save(store.KeyDarkMode, store.FormatBool(s.ui.DarkMode)); err != nil {
		s.log.Warn("saving dark mode failed", "error", err)
	}
	s.callApplyTheme()
	return s.ui.DarkMode
}

func (s *Session) callApplyTheme() {
	if s.applyTheme != nil {
		s.applyTheme(s.ui.DarkMode)
	}
}

func (s *Session) OpenSettings()   { s.ui = s.ui.OpenSettings() }
func (s *Session) OpenHelp()       { s.ui = s.ui.OpenHelp() }
func (s *Session) ToggleSettings() { s.ui = s.ui.ToggleSettings() }
func (s *Session) ToggleHelp()     { s.ui = s.ui.ToggleHelp() }
func (s *Session) CloseAll()       { s.ui = s.ui.CloseAll() }

// RequestNewDocument asks before replacing the document with the template.
func (s *Session) RequestNewDocument() {
	s.gate.Open(ConfirmConfig{
		Title:        "New document",
		Message:      "Discard the current document and start from the template?",
		ConfirmLabel: "Discard",
		CancelLabel:  "Keep editing",
		OnConfirm: func() {
			s.SetText(NewDocumentTemplate)
		},
	})
	s.ui = s.ui.SetModal(true)
}

func (s *Session) Confirm() {
	s.gate.Confirm()
	s.ui = s.ui.SetModal(s.gate.IsOpen())
}

func (s *Session) Cancel() {
	s.gate.Cancel()
	s.ui = s.ui.SetModal(s.gate.IsOpen())
}

// FontSize is the settings-panel size selector. It is shown and cycled but
// has no effect on rendering and is not persisted.
type FontSize int

const (
	FontSmall FontSize = iota
	FontMedium
	FontLarge
)

func (f FontSize) String() string {
	switch f {
	case FontSmall:
		return "small"
	case FontLarge:
		return "large"
	default:
		return "medium"
	}
}

func (s *Session) FontSize() FontSize { return s.fontSize }

func (s *Session) CycleFontSize() FontSize {
	s.fontSize = (s.fontSize + 1) % 3
	return s.fontSize
}
