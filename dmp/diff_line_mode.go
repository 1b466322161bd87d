package dmp

import "time"

// diffLineMode does a quick line-level diff on both rune slices, then
// rediffs the replacement blocks character-by-character for accuracy.
// This speedup can produce non-minimal diffs.
func (dmp *DMP) diffLineMode(text1, text2 []rune, deadline time.Time) []Diff {
	// Scan the text on a line-by-line basis first.
	text1, text2, lineArray := diffLinesToRunes(text1, text2)

	diffs := dmp.diffMainRunes(text1, text2, false, deadline)

	// Convert the diff back to the original text.
	diffs = DiffCharsToLines(diffs, lineArray)
	// Eliminate freak matches (e.g. blank lines).
	diffs = dmp.DiffCleanupSemantic(diffs)

	// Rediff any replacement blocks, this time character-by-character.
	// Add a dummy entry at the end.
	diffs = append(diffs, Diff{DiffEqual, ""})

	pointer := 0
	countDelete := 0
	countInsert := 0
	textDelete := ""
	textInsert := ""

	for pointer < len(diffs) {
		switch diffs[pointer].Type {
		case DiffInsert:
			countInsert++
			textInsert += diffs[pointer].Text
		case DiffDelete:
			countDelete++
			textDelete += diffs[pointer].Text
		case DiffEqual:
			// Upon reaching an equality, check for prior redundancies.
			if countDelete >= 1 && countInsert >= 1 {
				// Delete the offending records and add the merged ones.
				diffs = splice(diffs, pointer-countDelete-countInsert,
					countDelete+countInsert)

				pointer = pointer - countDelete - countInsert
				rediffed := dmp.diffMain(textDelete, textInsert, false, deadline)
				for j := len(rediffed) - 1; j >= 0; j-- {
					diffs = splice(diffs, pointer, 0, rediffed[j])
				}
				pointer += len(rediffed)
			}

			countInsert = 0
			countDelete = 0
			textDelete = ""
			textInsert = ""
		}
		pointer++
	}

	return diffs[:len(diffs)-1] // Remove the dummy entry at the end.
}
