package dmp

import (
	"bytes"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// unescaper reverses percent-encoding for a handful of characters that
// url.QueryEscape escapes but that are safe, and more readable, literal
// in patch and delta text. Mirrors encodeURI's exemption list; it is
// case-sensitive, which is fine since QueryEscape always emits uppercase
// hex.
var unescaper = strings.NewReplacer(
	"%21", "!", "%7E", "~", "%27", "'",
	"%28", "(", "%29", ")", "%3B", ";",
	"%2F", "/", "%3F", "?", "%3A", ":",
	"%40", "@", "%26", "&", "%3D", "=",
	"%2B", "+", "%24", "$", "%2C", ",", "%23", "#", "%2A", "*",
)

var patchHeaderRegex = regexp.MustCompile(`^@@ -(\d+),?(\d*) \+(\d+),?(\d*) @@$`)

// Patch is a single context-carrying edit: the span it replaces in the
// source, the span it produces in the destination, and the diff between
// them.
type Patch struct {
	diffs   []Diff
	start1  int
	start2  int
	length1 int
	length2 int
}

// String renders p in GNU-diff-style unified format:
//
//	@@ -start1,length1 +start2,length2 @@
//	 context
//	-deleted
//	+inserted
//
// Indices are printed 1-based; a length of 1 is printed bare.
func (p *Patch) String() string {
	var coords1, coords2 string

	if p.length1 == 0 {
		coords1 = strconv.Itoa(p.start1) + ",0"
	} else if p.length1 == 1 {
		coords1 = strconv.Itoa(p.start1 + 1)
	} else {
		coords1 = strconv.Itoa(p.start1+1) + "," + strconv.Itoa(p.length1)
	}

	if p.length2 == 0 {
		coords2 = strconv.Itoa(p.start2) + ",0"
	} else if p.length2 == 1 {
		coords2 = strconv.Itoa(p.start2 + 1)
	} else {
		coords2 = strconv.Itoa(p.start2+1) + "," + strconv.Itoa(p.length2)
	}

	var text bytes.Buffer
	text.WriteString("@@ -" + coords1 + " +" + coords2 + " @@\n")

	// Escape the body of the patch with %xx notation.
	for _, d := range p.diffs {
		switch d.Type {
		case DiffInsert:
			text.WriteString("+")
		case DiffDelete:
			text.WriteString("-")
		case DiffEqual:
			text.WriteString(" ")
		}
		text.WriteString(strings.Replace(url.QueryEscape(d.Text), "+", " ", -1))
		text.WriteString("\n")
	}

	return unescaper.Replace(text.String())
}

// PatchToText concatenates the textual representation of a list of
// patches.
func PatchToText(patches []Patch) string {
	var text bytes.Buffer
	for i := range patches {
		text.WriteString(patches[i].String())
	}
	return text.String()
}

// PatchFromText parses the textual representation produced by
// PatchToText back into a list of patches.
func PatchFromText(textline string) ([]Patch, error) {
	patches := []Patch{}
	if len(textline) == 0 {
		return patches, nil
	}
	text := strings.Split(textline, "\n")
	textPointer := 0

	for textPointer < len(text) {
		if !patchHeaderRegex.MatchString(text[textPointer]) {
			return patches, newError(InvalidPatchHeader, "invalid patch string: %s", text[textPointer])
		}

		var patch Patch
		m := patchHeaderRegex.FindStringSubmatch(text[textPointer])

		patch.start1, _ = strconv.Atoi(m[1])
		if len(m[2]) == 0 {
			patch.start1--
			patch.length1 = 1
		} else if m[2] == "0" {
			patch.length1 = 0
		} else {
			patch.start1--
			patch.length1, _ = strconv.Atoi(m[2])
		}

		patch.start2, _ = strconv.Atoi(m[3])
		if len(m[4]) == 0 {
			patch.start2--
			patch.length2 = 1
		} else if m[4] == "0" {
			patch.length2 = 0
		} else {
			patch.start2--
			patch.length2, _ = strconv.Atoi(m[4])
		}
		textPointer++

		for textPointer < len(text) {
			if len(text[textPointer]) == 0 {
				textPointer++
				continue
			}
			sign := text[textPointer][0]
			if sign == '@' {
				// Start of next patch.
				break
			}

			line := text[textPointer][1:]
			line = strings.Replace(line, "+", "%2b", -1)
			line, _ = url.QueryUnescape(line)
			switch sign {
			case '-':
				patch.diffs = append(patch.diffs, Diff{DiffDelete, line})
			case '+':
				patch.diffs = append(patch.diffs, Diff{DiffInsert, line})
			case ' ':
				patch.diffs = append(patch.diffs, Diff{DiffEqual, line})
			default:
				return patches, newError(InvalidOp, "invalid patch mode %q in: %s", sign, line)
			}
			textPointer++
		}

		patches = append(patches, patch)
	}
	return patches, nil
}

// PatchDeepCopy returns an independent copy of a list of patches.
func PatchDeepCopy(patches []Patch) []Patch {
	patchesCopy := []Patch{}
	for _, p := range patches {
		pCopy := Patch{
			start1:  p.start1,
			start2:  p.start2,
			length1: p.length1,
			length2: p.length2,
		}
		for _, d := range p.diffs {
			pCopy.diffs = append(pCopy.diffs, Diff{d.Type, d.Text})
		}
		patchesCopy = append(patchesCopy, pCopy)
	}
	return patchesCopy
}

// patchAddContext increases the context carried by p until it is
// unique within s, but never lets the pattern grow past
// dmp.MatchMaxBits.
func patchAddContext(dmp *DMP, p Patch, s string) Patch {
	if len(s) == 0 {
		return p
	}

	pattern := s[p.start2 : p.start2+p.length1]
	padding := 0

	// Look for the first and last matches of pattern in s. If two
	// different matches are found, increase the pattern length.
	for strings.Index(s, pattern) != strings.LastIndex(s, pattern) &&
		len(pattern) < dmp.MatchMaxBits-2*dmp.PatchMargin {
		padding += dmp.PatchMargin
		maxStart := max(0, p.start2-padding)
		minEnd := min(len(s), p.start2+p.length1+padding)
		pattern = s[maxStart:minEnd]
	}
	// Add one chunk for good luck.
	padding += dmp.PatchMargin

	// Add the prefix.
	prefix := s[max(0, p.start2-padding):p.start2]
	if len(prefix) != 0 {
		p.diffs = append([]Diff{{DiffEqual, prefix}}, p.diffs...)
	}
	// Add the suffix.
	suffix := s[p.start2+p.length1 : min(len(s), p.start2+p.length1+padding)]
	if len(suffix) != 0 {
		p.diffs = append(p.diffs, Diff{DiffEqual, suffix})
	}

	// Roll back the start points.
	p.start1 -= len(prefix)
	p.start2 -= len(prefix)
	// Extend the lengths.
	p.length1 += len(prefix) + len(suffix)
	p.length2 += len(prefix) + len(suffix)

	return p
}

// patchMake2 turns a diff between text1 and an implicit text2 into a
// list of patches, rebuilding text1 and text2 as it walks the diff so
// each patch carries accurate context.
func patchMake2(dmp *DMP, text1 string, diffs []Diff) []Patch {
	patches := []Patch{}
	if len(diffs) == 0 {
		return patches // Get rid of the null case.
	}

	var patch Patch
	charCount1 := 0 // Number of characters into the text1 string.
	charCount2 := 0 // Number of characters into the text2 string.
	// Start with text1 (prepatchText) and apply the diffs until we
	// arrive at text2 (postpatchText). The patches are built one at a
	// time to determine context info.
	prepatchText := text1
	postpatchText := text1

	for i, d := range diffs {
		if len(patch.diffs) == 0 && d.Type != DiffEqual {
			// A new patch starts here.
			patch.start1 = charCount1
			patch.start2 = charCount2
		}

		switch d.Type {
		case DiffInsert:
			patch.diffs = append(patch.diffs, d)
			patch.length2 += len(d.Text)
			postpatchText = postpatchText[:charCount2] + d.Text + postpatchText[charCount2:]
		case DiffDelete:
			patch.length1 += len(d.Text)
			patch.diffs = append(patch.diffs, d)
			postpatchText = postpatchText[:charCount2] + postpatchText[charCount2+len(d.Text):]
		case DiffEqual:
			if len(d.Text) <= 2*dmp.PatchMargin &&
				len(patch.diffs) != 0 && i != len(diffs)-1 {
				// Small equality inside a patch.
				patch.diffs = append(patch.diffs, d)
				patch.length1 += len(d.Text)
				patch.length2 += len(d.Text)
			}
			if len(d.Text) >= 2*dmp.PatchMargin {
				// Time for a new patch.
				if len(patch.diffs) != 0 {
					patch = patchAddContext(dmp, patch, prepatchText)
					patches = append(patches, patch)
					patch = Patch{}
					// Unlike Unidiff, patch lists here have a rolling
					// context: update prepatch text & pos to reflect
					// the application of the just-completed patch.
					prepatchText = postpatchText
					charCount1 = charCount2
				}
			}
		}

		if d.Type != DiffInsert {
			charCount1 += len(d.Text)
		}
		if d.Type != DiffDelete {
			charCount2 += len(d.Text)
		}
	}

	// Pick up the leftover patch if not empty.
	if len(patch.diffs) != 0 {
		patch = patchAddContext(dmp, patch, prepatchText)
		patches = append(patches, patch)
	}

	return patches
}

// patchAddPadding adds padding made of the runes 1..margin around the start and end of
// the patch list so edge patches have something to match against.
// Intended to be called only from within Apply.
func patchAddPadding(patches []Patch, margin int) string {
	nullPadding := ""
	for x := 1; x <= margin; x++ {
		nullPadding += string(rune(x))
	}

	// Bump all the patches forward.
	for i := range patches {
		patches[i].start1 += margin
		patches[i].start2 += margin
	}

	// Add some padding on start of first diff.
	first := &patches[0]
	if len(first.diffs) == 0 || first.diffs[0].Type != DiffEqual {
		// Add nullPadding equality.
		first.diffs = append([]Diff{{DiffEqual, nullPadding}}, first.diffs...)
		first.start1 -= margin // Should be 0.
		first.start2 -= margin // Should be 0.
		first.length1 += margin
		first.length2 += margin
	} else if margin > len(first.diffs[0].Text) {
		// Grow first equality.
		extraLength := margin - len(first.diffs[0].Text)
		first.diffs[0].Text = nullPadding[len(first.diffs[0].Text):] + first.diffs[0].Text
		first.start1 -= extraLength
		first.start2 -= extraLength
		first.length1 += extraLength
		first.length2 += extraLength
	}

	// Add some padding on end of last diff.
	last := &patches[len(patches)-1]
	if len(last.diffs) == 0 || last.diffs[len(last.diffs)-1].Type != DiffEqual {
		// Add nullPadding equality.
		last.diffs = append(last.diffs, Diff{DiffEqual, nullPadding})
		last.length1 += margin
		last.length2 += margin
	} else if margin > len(last.diffs[len(last.diffs)-1].Text) {
		// Grow last equality.
		lastDiff := last.diffs[len(last.diffs)-1]
		extraLength := margin - len(lastDiff.Text)
		last.diffs[len(last.diffs)-1].Text += nullPadding[:extraLength]
		last.length1 += extraLength
		last.length2 += extraLength
	}

	return nullPadding
}

// patchSplitMax breaks up any patch whose text1 span is longer than
// maxBits, the ceiling Bitap can search against. Intended to be called
// only from within Apply.
func patchSplitMax(patches []Patch, maxBits, margin int) []Patch {
	patchSize := maxBits
	for x := 0; x < len(patches); x++ {
		if patches[x].length1 <= patchSize {
			continue
		}
		bigpatch := patches[x]
		// Remove the big old patch.
		patches = append(patches[:x], patches[x+1:]...)
		x--

		start1 := bigpatch.start1
		start2 := bigpatch.start2
		precontext := ""
		for len(bigpatch.diffs) != 0 {
			// Create one of several smaller patches.
			patch := Patch{}
			empty := true
			patch.start1 = start1 - len(precontext)
			patch.start2 = start2 - len(precontext)
			if len(precontext) != 0 {
				patch.length1 = len(precontext)
				patch.length2 = len(precontext)
				patch.diffs = append(patch.diffs, Diff{DiffEqual, precontext})
			}
			for len(bigpatch.diffs) != 0 && patch.length1 < patchSize-margin {
				diffType := bigpatch.diffs[0].Type
				diffText := bigpatch.diffs[0].Text
				if diffType == DiffInsert {
					// Insertions are harmless.
					patch.length2 += len(diffText)
					start2 += len(diffText)
					patch.diffs = append(patch.diffs, bigpatch.diffs[0])
					bigpatch.diffs = bigpatch.diffs[1:]
					empty = false
				} else if diffType == DiffDelete && len(patch.diffs) == 1 &&
					patch.diffs[0].Type == DiffEqual && len(diffText) > 2*patchSize {
					// This is a large deletion. Let it pass in one chunk.
					patch.length1 += len(diffText)
					start1 += len(diffText)
					empty = false
					patch.diffs = append(patch.diffs, Diff{diffType, diffText})
					bigpatch.diffs = bigpatch.diffs[1:]
				} else {
					// Deletion or equality. Only take as much as we
					// can stomach.
					diffText = diffText[:min(len(diffText), patchSize-patch.length1-margin)]

					patch.length1 += len(diffText)
					start1 += len(diffText)
					if diffType == DiffEqual {
						patch.length2 += len(diffText)
						start2 += len(diffText)
					} else {
						empty = false
					}
					patch.diffs = append(patch.diffs, Diff{diffType, diffText})
					if diffText == bigpatch.diffs[0].Text {
						bigpatch.diffs = bigpatch.diffs[1:]
					} else {
						bigpatch.diffs[0].Text = bigpatch.diffs[0].Text[len(diffText):]
					}
				}
			}
			// Compute the head context for the next patch.
			precontext = DiffText2(patch.diffs)
			precontext = precontext[max(0, len(precontext)-margin):]

			var postcontext string
			// Append the end context for this patch.
			if len(DiffText1(bigpatch.diffs)) > margin {
				postcontext = DiffText1(bigpatch.diffs)[:margin]
			} else {
				postcontext = DiffText1(bigpatch.diffs)
			}

			if len(postcontext) != 0 {
				patch.length1 += len(postcontext)
				patch.length2 += len(postcontext)
				if len(patch.diffs) != 0 && patch.diffs[len(patch.diffs)-1].Type == DiffEqual {
					patch.diffs[len(patch.diffs)-1].Text += postcontext
				} else {
					patch.diffs = append(patch.diffs, Diff{DiffEqual, postcontext})
				}
			}
			if !empty {
				x++
				patches = append(patches[:x], append([]Patch{patch}, patches[x:]...)...)
			}
		}
	}
	return patches
}

// PatchAddContext increases the context until it is unique, but doesn't
// let the pattern expand beyond MatchMaxBits.
func (dmp *DMP) PatchAddContext(p Patch, s string) Patch {
	return patchAddContext(dmp, p, s)
}

// PatchMake accepts the same call shapes as the JS/Java ports: a diff
// alone, a pair of texts, a text and a diff, or three positional
// arguments where only the first and third are used. Any other shape
// returns an empty patch list rather than an error, matching how the
// rest of the package treats an unrecognized call as "nothing to do"
// rather than a hard failure.
func (dmp *DMP) PatchMake(opt ...interface{}) []Patch {
	switch len(opt) {
	case 1:
		diffs, _ := opt[0].([]Diff)
		text1 := DiffText1(diffs)
		return dmp.PatchMake(text1, diffs)

	case 2:
		text1, ok := opt[0].(string)
		if !ok {
			return []Patch{}
		}
		switch t := opt[1].(type) {
		case string:
			diffs := dmp.DiffMain(text1, t, true)
			if len(diffs) > 2 {
				diffs = dmp.DiffCleanupSemantic(diffs)
				diffs = dmp.DiffCleanupEfficiency(diffs)
			}
			return dmp.PatchMake(text1, diffs)
		case []Diff:
			return patchMake2(dmp, text1, t)
		}

	case 3:
		return dmp.PatchMake(opt[0], opt[2])
	}
	return []Patch{}
}

// Apply merges a set of patches onto s. Returns the patched text and a
// parallel slice of bools recording which patches actually applied.
func (dmp *DMP) Apply(ps []Patch, s string) (string, []bool) {
	if len(ps) == 0 {
		return s, []bool{}
	}

	// Deep copy the patches so that no changes are made to originals.
	ps = PatchDeepCopy(ps)

	nullPadding := patchAddPadding(ps, dmp.PatchMargin)
	s = nullPadding + s + nullPadding
	ps = patchSplitMax(ps, dmp.MatchMaxBits, dmp.PatchMargin)

	x := 0
	// delta tracks the offset between a patch's expected and actual
	// location. If patches are expected at positions 10 and 20 but the
	// first patch was found at 12, delta is 2 and the second patch has
	// an effective expected position of 22.
	delta := 0
	results := make([]bool, len(ps))
	for _, p := range ps {
		expectedLoc := p.start2 + delta
		text1 := DiffText1(p.diffs)
		var startLoc int
		endLoc := -1
		if len(text1) > dmp.MatchMaxBits {
			// patchSplitMax only produces an oversized pattern in the
			// case of a monster delete.
			startLoc = dmp.MatchMain(s, text1[:dmp.MatchMaxBits], expectedLoc)
			if startLoc != -1 {
				endLoc = dmp.MatchMain(
					s, text1[len(text1)-dmp.MatchMaxBits:],
					expectedLoc+len(text1)-dmp.MatchMaxBits,
				)
				if endLoc == -1 || startLoc >= endLoc {
					// Can't find valid trailing context; drop this patch.
					startLoc = -1
				}
			}
		} else {
			startLoc = dmp.MatchMain(s, text1, expectedLoc)
		}
		if startLoc == -1 {
			// No match found.
			results[x] = false
			// Subtract this failed patch's delta from subsequent patches.
			delta -= p.length2 - p.length1
		} else {
			// Found a match.
			results[x] = true
			delta = startLoc - expectedLoc
			var text2 string
			if endLoc == -1 {
				text2 = s[startLoc:int(math.Min(float64(startLoc+len(text1)),
					float64(len(s))))]
			} else {
				text2 = s[startLoc:int(math.Min(float64(endLoc+dmp.MatchMaxBits),
					float64(len(s))))]
			}
			if text1 == text2 {
				// Perfect match: shove the replacement text straight in.
				s = s[:startLoc] + DiffText2(p.diffs) + s[startLoc+len(text1):]
			} else {
				// Imperfect match: run a diff to get a framework of
				// equivalent indices.
				diffs := dmp.DiffMain(text1, text2, false)
				if len(text1) > dmp.MatchMaxBits &&
					float64(DiffLevenshtein(diffs))/float64(len(text1)) >
						dmp.PatchDeleteThreshold {
					// The end points match, but the content is
					// unacceptably different.
					results[x] = false
				} else {
					diffs = DiffCleanupSemanticLossless(diffs)
					index1 := 0
					for _, d := range p.diffs {
						if d.Type != DiffEqual {
							index2 := DiffXIndex(diffs, index1)
							if d.Type == DiffInsert {
								s = s[:startLoc+index2] + d.Text + s[startLoc+index2:]
							} else if d.Type == DiffDelete {
								startIndex := startLoc + index2
								s = s[:startIndex] +
									s[startIndex+DiffXIndex(diffs, index1+len(d.Text))-index2:]
							}
						}
						if d.Type != DiffDelete {
							index1 += len(d.Text)
						}
					}
				}
			}
		}
		x++
	}
	// Strip the padding off.
	s = s[len(nullPadding) : len(nullPadding)+(len(s)-2*len(nullPadding))]
	return s, results
}

// PatchAddPadding adds padding around the start and end of the patch list
// so edges can match something. Intended to be called only from within
// Apply.
func (dmp *DMP) PatchAddPadding(ps []Patch) string {
	return patchAddPadding(ps, dmp.PatchMargin)
}

// PatchSplitMax breaks up any patch whose span is longer than the Bitap
// match ceiling. Intended to be called only from within Apply.
func (dmp *DMP) PatchSplitMax(ps []Patch) []Patch {
	return patchSplitMax(ps, dmp.MatchMaxBits, dmp.PatchMargin)
}
