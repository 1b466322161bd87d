package dmp

import (
	"bytes"
	"html"
	"strings"
)

// DiffPrettyHtml renders a diff as an HTML fragment, wrapping insertions in
// <ins>, deletions in <del>, and equalities in <span>. It's a reference
// rendering rather than a styling API — callers wanting their own markup
// should walk diffs directly.
func DiffPrettyHtml(diffs []Diff) string {
	var buf bytes.Buffer
	for _, d := range diffs {
		text := strings.ReplaceAll(html.EscapeString(d.Text), "\n", "&para;<br>")
		switch d.Type {
		case DiffInsert:
			buf.WriteString(`<ins style="background:#e6ffe6;">`)
			buf.WriteString(text)
			buf.WriteString("</ins>")
		case DiffDelete:
			buf.WriteString(`<del style="background:#ffe6e6;">`)
			buf.WriteString(text)
			buf.WriteString("</del>")
		case DiffEqual:
			buf.WriteString("<span>")
			buf.WriteString(text)
			buf.WriteString("</span>")
		}
	}
	return buf.String()
}
