package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

var (
	colorDiffDel = ac("160", "203")
	colorDiffAdd = ac("28", "114")
)

// changesContext is how many unchanged lines are kept around each hunk.
const changesContext = 2

// renderChangesPanel shows the document against the last saved copy, line by
// line, with character-level highlights where a line was edited in place.
func renderChangesPanel(saved, current string) string {
	var b strings.Builder
	b.WriteString(panelTitle("Changes since save"))
	b.WriteString("\n\n")
	b.WriteString(renderChanges(saved, current))
	return b.String()
}

func renderChanges(saved, current string) string {
	if saved == current {
		return styleMuted().Render("No changes since the last save.")
	}

	d := dmp.New()
	a, c, lines := d.DiffLinesToChars(saved, current)
	diffs := d.DiffCharsToLines(d.DiffMain(a, c, false), lines)

	delLine := lipgloss.NewStyle().Foreground(colorDiffDel)
	addLine := lipgloss.NewStyle().Foreground(colorDiffAdd)

	var out []string
	for i := 0; i < len(diffs); i++ {
		df := diffs[i]
		switch df.Type {
		case dmp.DiffEqual:
			out = append(out, contextLines(splitDiffLines(df.Text), i == 0, i == len(diffs)-1)...)
		case dmp.DiffDelete:
			del := splitDiffLines(df.Text)
			if i+1 < len(diffs) && diffs[i+1].Type == dmp.DiffInsert {
				ins := splitDiffLines(diffs[i+1].Text)
				if len(ins) == len(del) {
					for j := range del {
						out = append(out, editedLine(d, del[j], ins[j])...)
					}
					i++
					continue
				}
			}
			for _, l := range del {
				out = append(out, delLine.Render("- "+l))
			}
		case dmp.DiffInsert:
			for _, l := range splitDiffLines(df.Text) {
				out = append(out, addLine.Render("+ "+l))
			}
		}
	}
	return strings.Join(out, "\n")
}

// editedLine renders a changed line as a -/+ pair with the changed runs
// underlined.
func editedLine(d *dmp.DiffMatchPatch, before, after string) []string {
	diffs := d.DiffCleanupSemantic(d.DiffMain(before, after, false))

	del := lipgloss.NewStyle().Foreground(colorDiffDel)
	add := lipgloss.NewStyle().Foreground(colorDiffAdd)
	delChar := del.Underline(true)
	addChar := add.Underline(true)

	var minus, plus strings.Builder
	minus.WriteString(del.Render("- "))
	plus.WriteString(add.Render("+ "))
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffDelete:
			minus.WriteString(delChar.Render(df.Text))
		case dmp.DiffInsert:
			plus.WriteString(addChar.Render(df.Text))
		case dmp.DiffEqual:
			minus.WriteString(del.Render(df.Text))
			plus.WriteString(add.Render(df.Text))
		}
	}
	return []string{minus.String(), plus.String()}
}

// contextLines trims an unchanged run down to the lines next to a change.
func contextLines(lines []string, first, last bool) []string {
	faint := styleMuted()
	render := func(ls []string) []string {
		out := make([]string, 0, len(ls))
		for _, l := range ls {
			out = append(out, faint.Render("  "+l))
		}
		return out
	}
	gap := faint.Render("  ⋯")

	switch {
	case first && last:
		return render(lines)
	case first:
		if len(lines) > changesContext {
			return append([]string{gap}, render(lines[len(lines)-changesContext:])...)
		}
	case last:
		if len(lines) > changesContext {
			return append(render(lines[:changesContext]), gap)
		}
	default:
		if len(lines) > 2*changesContext+1 {
			head := render(lines[:changesContext])
			tail := render(lines[len(lines)-changesContext:])
			return append(append(head, gap), tail...)
		}
	}
	return render(lines)
}

func splitDiffLines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
