package editor

import (
	"strings"
	"unicode/utf8"
)

// DefaultDocument is shown on first start, before anything has been saved.
const DefaultDocument = "# Welcome to mdpad\n" +
	"\n" +
	"Type markdown on the left; the preview on the right follows every keystroke.\n" +
	"Single newlines\n" +
	"become line breaks.\n" +
	"\n" +
	"## Code\n" +
	"\n" +
	"```go\n" +
	"func main() {\n" +
	"\tfmt.Println(\"hello\")\n" +
	"}\n" +
	"```\n" +
	"\n" +
	"## Keys\n" +
	"\n" +
	"- **f1** help\n" +
	"- **f2** settings\n" +
	"- **ctrl+e** export to HTML\n" +
	"- **ctrl+n** new document\n"

// NewDocumentTemplate replaces the document after a confirmed "new document".
const NewDocumentTemplate = "# Untitled\n\nStart writing here.\n"

// Metrics are derived from the document on every change and never stored.
type Metrics struct {
	Words      int
	Characters int
}

// ComputeMetrics counts whitespace-delimited words and Unicode code points.
// Empty or all-whitespace text has zero words.
func ComputeMetrics(text string) Metrics {
	return Metrics{
		Words:      len(strings.Fields(strings.TrimSpace(text))),
		Characters: utf8.RuneCountInString(text),
	}
}
