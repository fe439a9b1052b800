package tui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type externalEditorDoneMsg struct {
	err error
}

// externalEditorName resolves the editor command: the configured override,
// then $VISUAL, then $EDITOR, then vi.
func externalEditorName(override string) string {
	if v := strings.TrimSpace(override); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv("VISUAL")); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv("EDITOR")); v != "" {
		return v
	}
	return "vi"
}

func (m *model) openExternalEditor() (tea.Cmd, error) {
	args := splitShellWords(externalEditorName(m.editorCmd))
	if len(args) == 0 {
		args = []string{"vi"}
	}

	f, err := os.CreateTemp("", "mdpad-*.md")
	if err != nil {
		return nil, err
	}
	path := f.Name()
	if _, err := f.WriteString(m.session.Text()); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return nil, err
	}
	_ = f.Close()

	m.externalEditorPath = path
	m.externalEditorBefore = m.session.Text()

	cmd := exec.Command(args[0], append(args[1:], path)...)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return externalEditorDoneMsg{err: err}
	}), nil
}

func (m *model) applyExternalEditorResult(msg externalEditorDoneMsg) {
	path := m.externalEditorPath
	before := m.externalEditorBefore
	m.externalEditorPath = ""
	m.externalEditorBefore = ""

	if strings.TrimSpace(path) == "" {
		return
	}
	defer func() { _ = os.Remove(path) }()

	name := externalEditorName(m.editorCmd)
	if msg.err != nil {
		m.log.Warn("external editor failed", "editor", name, "error", msg.err)
		m.showMinibuffer("Editor failed: " + msg.err.Error())
		return
	}

	b, err := os.ReadFile(path)
	if err != nil {
		m.showMinibuffer("Editor read failed: " + err.Error())
		return
	}
	after := string(b)
	if after == before {
		m.showMinibuffer(fmt.Sprintf("No changes from %s", name))
		return
	}
	m.setText(after)
	m.input.SetValue(after)
	m.showMinibuffer(fmt.Sprintf("Updated from %s", name))
}
