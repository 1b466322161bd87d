package dmp

import "strings"

// DiffText1 reconstructs the source text: every equality and deletion,
// in order.
func DiffText1(diffs []Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		if d.Type != DiffInsert {
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

// DiffText2 reconstructs the destination text: every equality and
// insertion, in order.
func DiffText2(diffs []Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		if d.Type != DiffDelete {
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
