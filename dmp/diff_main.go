package dmp

import (
	"time"
)

// DiffMain finds the differences between two texts.
func (dmp *DMP) DiffMain(s1, s2 string, checkLines bool) []Diff {
	return dmp.diffMain(s1, s2, checkLines, deadline(dmp.DiffTimeout))
}

func (dmp *DMP) diffMain(
	s1, s2 string, checkLines bool, deadline time.Time,
) []Diff {
	return dmp.diffMainRunes([]rune(s1), []rune(s2), checkLines, deadline)
}

// DiffMainRunes finds the differences between two rune sequences.
func (dmp *DMP) DiffMainRunes(s1, s2 []rune, checkLines bool) []Diff {
	return dmp.diffMainRunes(s1, s2, checkLines, deadline(dmp.DiffTimeout))
}

// diffMainRunes trims any shared prefix/suffix off text1/text2 before
// handing the remainder to diffCompute, then restores them around the
// result. The data structure representing a diff is a slice of Diff: e.g.
// [{DiffDelete, "Hello"}, {DiffInsert, "Goodbye"}, {DiffEqual, " world."}]
// means delete "Hello", add "Goodbye" and keep " world.".
func (dmp *DMP) diffMainRunes(
	text1, text2 []rune, checkLines bool, deadline time.Time,
) []Diff {
	if runesEqual(text1, text2) {
		var diffs []Diff
		if len(text1) > 0 {
			diffs = append(diffs, Diff{DiffEqual, string(text1)})
		}
		return diffs
	}

	prefixLen := commonPrefixLength(text1, text2)
	prefix := text1[:prefixLen]
	text1 = text1[prefixLen:]
	text2 = text2[prefixLen:]

	suffixLen := commonSuffixLength(text1, text2)
	suffix := text1[len(text1)-suffixLen:]
	text1 = text1[:len(text1)-suffixLen]
	text2 = text2[:len(text2)-suffixLen]

	diffs := dmp.diffCompute(text1, text2, checkLines, deadline)

	if len(prefix) != 0 {
		diffs = diffPrepend(diffEq(string(prefix)), diffs)
	}
	if len(suffix) != 0 {
		diffs = diffAppend(diffs, diffEq(string(suffix)))
	}
	return DiffCleanupMerge(diffs)
}

// diffCompute finds the differences between two rune slices that share no
// common prefix or suffix, picking the cheapest applicable strategy: a
// trivial insert/delete, a substring shortcut, a half-match split, the
// line-mode speedup, or, failing all of those, full bisection.
func (dmp *DMP) diffCompute(
	text1, text2 []rune, checkLines bool, deadline time.Time,
) []Diff {
	if len(text1) == 0 {
		return []Diff{{DiffInsert, string(text2)}}
	}
	if len(text2) == 0 {
		return []Diff{{DiffDelete, string(text1)}}
	}

	longText, shortText := text2, text1
	if len(text1) > len(text2) {
		longText, shortText = text1, text2
	}

	if i := runesIndex(longText, shortText); i != -1 {
		op := DiffInsert
		// Swap insertions for deletions if the diff is reversed.
		if len(text1) > len(text2) {
			op = DiffDelete
		}
		return []Diff{
			{op, string(longText[:i])},
			{DiffEqual, string(shortText)},
			{op, string(longText[i+len(shortText):])},
		}
	}

	if len(shortText) == 1 {
		// After the substring speedup above, a single character can't be
		// an equality.
		return []Diff{
			{DiffDelete, string(text1)},
			{DiffInsert, string(text2)},
		}
	}

	if halves := diffHalfMatch(dmp, text1, text2); halves != nil {
		text1Head, text1Tail := halves[0], halves[1]
		text2Head, text2Tail := halves[2], halves[3]
		midCommon := halves[4]

		diffsHead := dmp.diffMainRunes(text1Head, text2Head, checkLines, deadline)
		diffsTail := dmp.diffMainRunes(text1Tail, text2Tail, checkLines, deadline)
		return append(diffsHead, append(
			[]Diff{{DiffEqual, string(midCommon)}}, diffsTail...,
		)...)
	}

	if checkLines && len(text1) > 100 && len(text2) > 100 {
		return dmp.diffLineMode(text1, text2, deadline)
	}
	return dmp.diffBisect(text1, text2, deadline)
}
