package editor

import (
	"errors"
	"strings"
	"testing"
	"time"

	"mdpad/internal/store"
)

type themeRecorder struct{ calls []bool }

func (r *themeRecorder) apply(dark bool) { r.calls = append(r.calls, dark) }

type publishRecorder struct{ got []string }

func (p *publishRecorder) Publish(html string) { p.got = append(p.got, html) }

func newTestSession(t *testing.T, prefs store.Preferences, clock *fakeClock) (*Session, *themeRecorder) {
	t.Helper()
	theme := &themeRecorder{}
	s := NewSession(SessionOptions{
		Store:         prefs,
		Renderer:      &stubRenderer{},
		Scheduler:     clock,
		AutosaveDelay: 1000 * time.Millisecond,
		ApplyTheme:    theme.apply,
	})
	return s, theme
}

func TestNewSession_DefaultsWhenStorageEmpty(t *testing.T) {
	clock := &fakeClock{}
	s, theme := newTestSession(t, newRecordingPrefs(clock), clock)

	if s.Text() != DefaultDocument {
		t.Fatalf("expected default document")
	}
	if s.State().DarkMode {
		t.Fatalf("expected light mode by default")
	}
	if len(theme.calls) != 1 || theme.calls[0] != false {
		t.Fatalf("theme hook should be applied once with light, got %v", theme.calls)
	}
	if s.HTML() != "<p>"+DefaultDocument+"</p>" {
		t.Fatalf("expected initial render, got %q", s.HTML())
	}
	if s.AutosaveState() != AutosaveIdle {
		t.Fatalf("startup must not schedule a write")
	}
}

func TestNewSession_LoadsStoredValues(t *testing.T) {
	clock := &fakeClock{}
	prefs := newRecordingPrefs(clock)
	prefs.values[store.KeyDocument] = "stored doc"
	prefs.values[store.KeyDarkMode] = "true"

	s, theme := newTestSession(t, prefs, clock)
	if s.Text() != "stored doc" {
		t.Fatalf("got %q", s.Text())
	}
	if !s.State().DarkMode {
		t.Fatalf("expected dark mode from storage")
	}
	if len(theme.calls) != 1 || !theme.calls[0] {
		t.Fatalf("expected one dark theme application, got %v", theme.calls)
	}
}

func TestNewSession_UnparseableDarkModeFallsBackToLight(t *testing.T) {
	clock := &fakeClock{}
	prefs := newRecordingPrefs(clock)
	prefs.values[store.KeyDarkMode] = "maybe"

	s, _ := newTestSession(t, prefs, clock)
	if s.State().DarkMode {
		t.Fatalf("expected light mode")
	}
}

func TestSession_AutosaveDebounce(t *testing.T) {
	clock := &fakeClock{}
	prefs := newRecordingPrefs(clock)
	s, _ := newTestSession(t, prefs, clock)

	s.SetText("a")
	clock.Advance(200 * time.Millisecond)
	s.SetText("ab")
	clock.Advance(200 * time.Millisecond)
	s.SetText("abc")
	clock.Advance(5 * time.Second)

	writes := prefs.writesFor(store.KeyDocument)
	if len(writes) != 1 {
		t.Fatalf("expected exactly one write, got %d: %+v", len(writes), writes)
	}
	if writes[0].at != 1400*time.Millisecond {
		t.Fatalf("write at %v, want 1400ms", writes[0].at)
	}
	if writes[0].value != "abc" {
		t.Fatalf("write value %q, want %q", writes[0].value, "abc")
	}
}

func TestSession_SetTextUnchangedIsNoOp(t *testing.T) {
	clock := &fakeClock{}
	prefs := newRecordingPrefs(clock)
	s, _ := newTestSession(t, prefs, clock)

	if s.SetText(s.Text()) {
		t.Fatalf("SetText with identical text should report false")
	}
	if s.AutosaveState() != AutosaveIdle {
		t.Fatalf("identical text must not arm the autosave")
	}
}

func TestSession_MetricsFollowText(t *testing.T) {
	clock := &fakeClock{}
	s, _ := newTestSession(t, newRecordingPrefs(clock), clock)

	s.SetText("  hello   wörld \n")
	m := s.Metrics()
	if m.Words != 2 {
		t.Fatalf("words=%d, want 2", m.Words)
	}
	if m.Characters != len([]rune("  hello   wörld \n")) {
		t.Fatalf("characters=%d", m.Characters)
	}
}

func TestSession_ToggleDarkModePersistsImmediately(t *testing.T) {
	clock := &fakeClock{}
	prefs := newRecordingPrefs(clock)
	s, theme := newTestSession(t, prefs, clock)

	if got := s.ToggleDarkMode(); !got {
		t.Fatalf("expected dark after toggle")
	}
	if prefs.values[store.KeyDarkMode] != "true" {
		t.Fatalf("dark mode not persisted, got %q", prefs.values[store.KeyDarkMode])
	}
	if len(theme.calls) != 2 || !theme.calls[1] {
		t.Fatalf("expected theme hook once per transition, got %v", theme.calls)
	}

	s.ToggleDarkMode()
	if prefs.values[store.KeyDarkMode] != "false" {
		t.Fatalf("expected false, got %q", prefs.values[store.KeyDarkMode])
	}
	if len(theme.calls) != 3 || theme.calls[2] {
		t.Fatalf("unexpected theme calls %v", theme.calls)
	}
}

func TestSession_SaveErrorsAreSwallowed(t *testing.T) {
	clock := &fakeClock{}
	prefs := newRecordingPrefs(clock)
	s, _ := newTestSession(t, prefs, clock)
	prefs.fail = errors.New("disk full")

	s.SetText("x")
	clock.Advance(2 * time.Second)
	s.ToggleDarkMode()

	if !s.State().DarkMode {
		t.Fatalf("toggle must still flip the flag when persistence fails")
	}
	if s.Text() != "x" {
		t.Fatalf("document must be untouched by a failed write")
	}
}

func TestSession_PanelsAreMutuallyExclusive(t *testing.T) {
	clock := &fakeClock{}
	s, _ := newTestSession(t, newRecordingPrefs(clock), clock)

	s.OpenSettings()
	s.OpenHelp()
	st := s.State()
	if st.SettingsOpen || !st.HelpOpen {
		t.Fatalf("expected help only, got %+v", st)
	}

	s.ToggleSettings()
	st = s.State()
	if !st.SettingsOpen || st.HelpOpen {
		t.Fatalf("expected settings only, got %+v", st)
	}

	s.CloseAll()
	st = s.State()
	if st.SettingsOpen || st.HelpOpen {
		t.Fatalf("expected both closed, got %+v", st)
	}
}

func TestSession_NewDocumentConfirmed(t *testing.T) {
	clock := &fakeClock{}
	prefs := newRecordingPrefs(clock)
	s, _ := newTestSession(t, prefs, clock)

	s.SetText("hello")
	s.RequestNewDocument()
	if !s.State().ModalOpen || !s.Gate().IsOpen() {
		t.Fatalf("expected modal open")
	}
	if s.Text() != "hello" {
		t.Fatalf("document must not change before confirmation")
	}

	s.Confirm()
	if s.Text() != NewDocumentTemplate {
		t.Fatalf("expected template, got %q", s.Text())
	}
	if s.State().ModalOpen {
		t.Fatalf("modal should close on confirm")
	}

	// The pending autosave persists the template, not the discarded text.
	clock.Advance(time.Second)
	writes := prefs.writesFor(store.KeyDocument)
	if len(writes) != 1 || writes[0].value != NewDocumentTemplate {
		t.Fatalf("expected one write of the template, got %+v", writes)
	}
}

func TestSession_NewDocumentCancelled(t *testing.T) {
	clock := &fakeClock{}
	s, _ := newTestSession(t, newRecordingPrefs(clock), clock)

	s.SetText("hello")
	s.RequestNewDocument()
	s.Cancel()

	if s.Text() != "hello" {
		t.Fatalf("cancel must leave the document unchanged, got %q", s.Text())
	}
	if s.State().ModalOpen || s.Gate().IsOpen() {
		t.Fatalf("modal should close on cancel")
	}
}

func TestSession_CloseAllLeavesModal(t *testing.T) {
	clock := &fakeClock{}
	s, _ := newTestSession(t, newRecordingPrefs(clock), clock)

	s.OpenHelp()
	s.RequestNewDocument()
	s.CloseAll()

	st := s.State()
	if st.HelpOpen {
		t.Fatalf("help should be closed")
	}
	if !st.ModalOpen {
		t.Fatalf("modal is independent of CloseAll")
	}
}

func TestSession_FlushAndSave(t *testing.T) {
	clock := &fakeClock{}
	prefs := newRecordingPrefs(clock)
	s, _ := newTestSession(t, prefs, clock)

	s.SetText("draft")
	if !s.Flush() {
		t.Fatalf("expected flush to write the pending draft")
	}
	if prefs.values[store.KeyDocument] != "draft" {
		t.Fatalf("flush did not persist, got %q", prefs.values[store.KeyDocument])
	}

	s.SetText("draft 2")
	if err := s.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	clock.Advance(2 * time.Second)
	if n := len(prefs.writesFor(store.KeyDocument)); n != 2 {
		t.Fatalf("explicit save should cancel the pending autosave, writes=%d", n)
	}
}

func TestSession_PublishesEveryRender(t *testing.T) {
	clock := &fakeClock{}
	pub := &publishRecorder{}
	s := NewSession(SessionOptions{
		Store:     newRecordingPrefs(clock),
		Renderer:  &stubRenderer{},
		Scheduler: clock,
		Publisher: pub,
	})
	s.SetText("one")
	s.SetText("two")

	if len(pub.got) != 3 {
		t.Fatalf("expected initial + 2 publishes, got %d", len(pub.got))
	}
	if pub.got[2] != "<p>two</p>" {
		t.Fatalf("last publish %q", pub.got[2])
	}
}

func TestSession_DefaultRendererProducesHTML(t *testing.T) {
	s := NewSession(SessionOptions{Store: store.NewMemory(), Scheduler: &fakeClock{}})
	s.SetText("# Title\nline one\nline two")
	html := s.HTML()
	if !strings.Contains(html, "<h1") || !strings.Contains(html, "<br") {
		t.Fatalf("expected heading and hard break, got %q", html)
	}
}

func TestSession_FontSizeStub(t *testing.T) {
	clock := &fakeClock{}
	s, _ := newTestSession(t, newRecordingPrefs(clock), clock)
	before := s.HTML()

	if s.FontSize() != FontMedium {
		t.Fatalf("default font size %v", s.FontSize())
	}
	if got := s.CycleFontSize(); got != FontLarge {
		t.Fatalf("cycle -> %v", got)
	}
	if got := s.CycleFontSize(); got != FontSmall {
		t.Fatalf("cycle wraps -> %v", got)
	}
	if s.HTML() != before {
		t.Fatalf("font size must not affect rendering")
	}
}

func TestSession_SavedTracksLastWrite(t *testing.T) {
	clock := &fakeClock{}
	prefs := newRecordingPrefs(clock)
	prefs.values[store.KeyDocument] = "v1"
	s, _ := newTestSession(t, prefs, clock)

	if s.Dirty() || s.Saved() != "v1" {
		t.Fatalf("fresh session should be clean, saved=%q", s.Saved())
	}
	s.SetText("v2")
	if !s.Dirty() {
		t.Fatalf("edit should mark the document dirty")
	}
	if s.Saved() != "v1" {
		t.Fatalf("saved baseline moved before the write: %q", s.Saved())
	}
	clock.Advance(time.Second)
	if s.Dirty() || s.Saved() != "v2" {
		t.Fatalf("autosave should move the baseline, saved=%q", s.Saved())
	}
}
