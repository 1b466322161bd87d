package dmp

import (
	"strings"
)

// DiffCleanupMerge reorders and merges like edit sections. Any edit
// section can move as long as it doesn't cross an equality.
func DiffCleanupMerge(ds []Diff) []Diff {
	// Add a dummy entry at the end.
	ds = append(ds, Diff{DiffEqual, ""})
	i := 0
	numDelete := 0
	numInsert := 0
	commonLength := 0
	deleteText := ""
	insertText := ""

	for i < len(ds) {
		switch ds[i].Type {
		case DiffInsert:
			numInsert++
			insertText += ds[i].Text
			i++
		case DiffDelete:
			numDelete++
			deleteText += ds[i].Text
			i++
		case DiffEqual:
			// Upon reaching an equality, check for prior redundancies.
			if numDelete+numInsert > 1 {
				if numDelete != 0 && numInsert != 0 {
					// Factor out any common prefixes.
					commonLength = DiffCommonPrefix(insertText, deleteText)
					if commonLength != 0 {
						x := i - numDelete - numInsert
						if x > 0 && ds[x-1].Type == DiffEqual {
							ds[x-1].Text += insertText[:commonLength]
						} else {
							ds = append(
								[]Diff{
									{DiffEqual, insertText[:commonLength]},
								},
								ds...,
							)
							i++
						}
						insertText = insertText[commonLength:]
						deleteText = deleteText[commonLength:]
					}
					// Factor out any common suffixes.
					commonLength = DiffCommonSuffix(insertText, deleteText)
					if commonLength != 0 {
						insertIndex := len(insertText) - commonLength
						deleteIndex := len(deleteText) - commonLength
						ds[i].Text = insertText[insertIndex:] + ds[i].Text
						insertText = insertText[:insertIndex]
						deleteText = deleteText[:deleteIndex]
					}
				}
				// Delete the offending records and add the merged ones.
				switch {
				case numDelete == 0:
					ds = splice(ds, i-numInsert,
						numDelete+numInsert,
						Diff{DiffInsert, insertText})
				case numInsert == 0:
					ds = splice(ds, i-numDelete,
						numDelete+numInsert,
						Diff{DiffDelete, deleteText})
				default:
					ds = splice(
						ds, i-numDelete-numInsert,
						numDelete+numInsert,
						Diff{DiffDelete, deleteText},
						Diff{DiffInsert, insertText},
					)
				}

				i = i - numDelete - numInsert + 1
				if numDelete != 0 {
					i++
				}
				if numInsert != 0 {
					i++
				}
			} else if i != 0 && ds[i-1].Type == DiffEqual {
				// Merge this equality with the previous one.
				ds[i-1].Text += ds[i].Text
				ds = append(ds[:i], ds[i+1:]...)
			} else {
				i++
			}
			numInsert = 0
			numDelete = 0
			deleteText = ""
			insertText = ""
		}
	}

	if len(ds[len(ds)-1].Text) == 0 {
		ds = ds[0 : len(ds)-1] // Remove the dummy entry at the end.
	}

	// Second pass: look for single edits surrounded on both sides by
	// equalities which can be shifted sideways to eliminate an equality.
	// e.g: A<ins>BA</ins>C -> <ins>AB</ins>AC
	changes := false
	i = 1
	// Intentionally ignore the first and last element (don't need checking).
	for i < (len(ds) - 1) {
		if ds[i-1].Type == DiffEqual &&
			ds[i+1].Type == DiffEqual {
			// This is a single edit surrounded by equalities.
			if strings.HasSuffix(ds[i].Text, ds[i-1].Text) {
				// Shift the edit over the previous equality.
				ds[i].Text = ds[i-1].Text +
					ds[i].Text[:len(ds[i].Text)-len(ds[i-1].Text)]
				ds[i+1].Text = ds[i-1].Text + ds[i+1].Text
				ds = splice(ds, i-1, 1)
				changes = true
			} else if strings.HasPrefix(ds[i].Text, ds[i+1].Text) {
				// Shift the edit over the next equality.
				ds[i-1].Text += ds[i+1].Text
				ds[i].Text = ds[i].Text[len(ds[i+1].Text):] + ds[i+1].Text
				ds = splice(ds, i+1, 1)
				changes = true
			}
		}
		i++
	}

	// If shifts were made, the diff needs reordering and another shift sweep.
	if changes {
		ds = DiffCleanupMerge(ds)
	}

	return ds
}
