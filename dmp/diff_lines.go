package dmp

import (
	"strings"
)

// DiffLinesToChars splits two texts into a list of strings, and reduces
// the texts to strings of hashes where each rune represents one line.
// It's slightly faster to call diffLinesToRunes directly followed by
// diffMainRunes.
func DiffLinesToChars(text1, text2 string) (string, string, []string) {
	chars1, chars2, lineArray := diffLinesToStrings(text1, text2)
	return chars1, chars2, lineArray
}

// DiffLinesToRunes is the rune-slice counterpart of DiffLinesToChars, for
// callers already working with []rune texts.
func DiffLinesToRunes(text1, text2 []rune) ([]rune, []rune, []string) {
	return diffLinesToRunes(text1, text2)
}

// diffLinesToRunes is the rune-slice counterpart of DiffLinesToChars.
func diffLinesToRunes(text1, text2 []rune) ([]rune, []rune, []string) {
	chars1, chars2, lineArray := diffLinesToStrings(string(text1), string(text2))
	return []rune(chars1), []rune(chars2), lineArray
}

// DiffCharsToLines rehydrates the text in a diff from a string of line
// hashes to real lines of text.
func DiffCharsToLines(diffs []Diff, lineArray []string) []Diff {
	hydrated := make([]Diff, 0, len(diffs))
	for _, d := range diffs {
		text := make([]string, 0, len(d.Text))
		for _, r := range d.Text {
			text = append(text, lineArray[r])
		}
		d.Text = strings.Join(text, "")
		hydrated = append(hydrated, d)
	}
	return hydrated
}

// text1MaxLines and text2MaxLines bound the line alphabet each text may
// contribute. Once text1 has contributed this many distinct lines, the
// remainder of text1 is folded into a single trailing pseudo-line rather
// than split further; text2 gets a looser cap since it is encoded second
// and inherits whatever text1 already added to lineArray.
const (
	text1MaxLines = 40000
	text2MaxLines = 65535
)

// diffLinesToStrings splits two texts into a list of strings. Each
// string represents one line, addressed by the rune value encoding it.
func diffLinesToStrings(text1, text2 string) (string, string, []string) {
	// '\x00' is a valid character, but various debuggers don't like it,
	// so a junk entry at index 0 keeps a real line from ever landing
	// there.
	lineArray := []string{""}
	lineHash := map[string]int{}
	chars1 := diffLinesToStringsMunge(text1, &lineArray, lineHash, text1MaxLines)
	chars2 := diffLinesToStringsMunge(text2, &lineArray, lineHash, text2MaxLines)
	return chars1, chars2, lineArray
}

// diffLinesToStringsMunge splits a text into lines and encodes each
// distinct line as a single rune indexing into lineArray. Once lineArray
// reaches maxLines entries, the rest of text is folded into one final
// line so the alphabet never overflows its rune budget.
func diffLinesToStringsMunge(text string, lineArray *[]string, lineHash map[string]int, maxLines int) string {
	lineStart := 0
	lineEnd := -1
	var chars strings.Builder
	for lineEnd < len(text)-1 {
		lineEnd = indexOf(text, "\n", lineStart)
		if lineEnd == -1 {
			lineEnd = len(text) - 1
		}
		line := text[lineStart : lineEnd+1]

		if lineValue, ok := lineHash[line]; ok {
			chars.WriteRune(rune(lineValue))
		} else {
			if len(*lineArray) == maxLines {
				line = text[lineStart:]
				lineEnd = len(text)
			}
			*lineArray = append(*lineArray, line)
			lineHash[line] = len(*lineArray) - 1
			chars.WriteRune(rune(len(*lineArray) - 1))
		}
		lineStart = lineEnd + 1
	}
	return chars.String()
}
