package dmp

// Diff is one operation in an edit script: keep, delete, or insert Text.
type Diff struct {
	Type Operation
	Text string
}

func diffEq(s string) Diff { return Diff{DiffEqual, s} }

// diffPrepend returns a new slice with head placed before diffs.
func diffPrepend(head Diff, diffs []Diff) []Diff {
	ret := make([]Diff, 0, len(diffs)+1)
	ret = append(ret, head)
	return append(ret, diffs...)
}

// diffAppend returns diffs with tail placed at the end.
func diffAppend(diffs []Diff, tail Diff) []Diff {
	return append(diffs, tail)
}
