package tui

import "unicode"

// splitShellWords splits an editor command like `code --wait` into argv.
// Single quotes, double quotes and backslash escapes (outside single quotes)
// are honored.
func splitShellWords(s string) []string {
	var out []string
	var cur []rune
	inSingle, inDouble, escaped := false, false, false

	flush := func() {
		if len(cur) == 0 {
			return
		}
		out = append(out, string(cur))
		cur = cur[:0]
	}

	for _, r := range s {
		switch {
		case escaped:
			cur = append(cur, r)
			escaped = false
		case r == '\\' && !inSingle:
			escaped = true
		case r == '\'' && !inDouble:
			inSingle = !inSingle
		case r == '"' && !inSingle:
			inDouble = !inDouble
		case !inSingle && !inDouble && unicode.IsSpace(r):
			flush()
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return out
}
