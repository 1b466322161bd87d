/**
 * diff_bisect.go
 *
 * Go language implementation of Google Diff, Match, and Patch library
 *
 * Original library is Copyright (c) 2006 Google Inc.
 * http://code.google.com/p/google-diff-match-patch/
 *
 * Copyright (c) 2012 Sergi Mansilla <sergi.mansilla@gmail.com>
 * https://github.com/sergi/go-diff
 *
 * See included LICENSE file for license details.
 */

package dmp

import "time"

// DiffBisect finds the 'middle snake' of a diff, splits the problem in two
// and returns the recursively constructed diff.
// See Myers 1986 paper: An O(ND) Difference Algorithm and Its Variations.
func (dmp *DMP) DiffBisect(s1, s2 string, deadline time.Time) []Diff {
	return dmp.diffBisect([]rune(s1), []rune(s2), deadline)
}

// diffBisect finds the 'middle snake' of a diff, splits the problem in two
// and returns the recursively constructed diff.
func (dmp *DMP) diffBisect(s1, s2 []rune, deadline time.Time) []Diff {
	// Cache the text lengths to prevent multiple calls.
	len1, len2 := len(s1), len(s2)

	dmax := (len1 + len2 + 1) / 2
	offset := dmax
	vlen := 2 * dmax

	v1 := make([]int, vlen)
	v2 := make([]int, vlen)
	for i := range v1 {
		v1[i] = -1
		v2[i] = -1
	}
	v1[offset+1] = 0
	v2[offset+1] = 0

	delta := len1 - len2
	// If the total number of characters is odd, then the front path will
	// collide with the reverse path.
	front := (delta%2 != 0)
	// Offsets for start and end of k loop.
	// Prevents mapping of space beyond the grid.
	k1start := 0
	k1end := 0
	k2start := 0
	k2end := 0
	for d := 0; d < dmax; d++ {
		// Bail out if deadline is reached.
		if time.Now().After(deadline) {
			break
		}

		// Walk the front path one step.
		for k1 := -d + k1start; k1 <= d-k1end; k1 += 2 {
			k1Offset := offset + k1
			var x1 int

			if k1 == -d || (k1 != d && v1[k1Offset-1] < v1[k1Offset+1]) {
				x1 = v1[k1Offset+1]
			} else {
				x1 = v1[k1Offset-1] + 1
			}

			y1 := x1 - k1
			for x1 < len1 && y1 < len2 {
				if s1[x1] != s2[y1] {
					break
				}
				x1++
				y1++
			}
			v1[k1Offset] = x1
			if x1 > len1 {
				// Ran off the right of the graph.
				k1end += 2
			} else if y1 > len2 {
				// Ran off the bottom of the graph.
				k1start += 2
			} else if front {
				k2Offset := offset + delta - k1
				if k2Offset >= 0 && k2Offset < vlen &&
					v2[k2Offset] != -1 {
					// Mirror x2 onto top-left coordinate system.
					x2 := len1 - v2[k2Offset]
					if x1 >= x2 {
						// Overlap detected.
						return dmp.diffBisectSplit(
							s1, s2, x1, y1, deadline,
						)
					}
				}
			}
		}
		// Walk the reverse path one step.
		for k2 := -d + k2start; k2 <= d-k2end; k2 += 2 {
			k2Offset := offset + k2
			var x2 int
			if k2 == -d || (k2 != d && v2[k2Offset-1] < v2[k2Offset+1]) {
				x2 = v2[k2Offset+1]
			} else {
				x2 = v2[k2Offset-1] + 1
			}
			y2 := x2 - k2
			for x2 < len1 && y2 < len2 {
				if s1[len1-x2-1] != s2[len2-y2-1] {
					break
				}
				x2++
				y2++
			}
			v2[k2Offset] = x2
			if x2 > len1 {
				// Ran off the left of the graph.
				k2end += 2
			} else if y2 > len2 {
				// Ran off the top of the graph.
				k2start += 2
			} else if !front {
				k1Offset := offset + delta - k2
				if k1Offset >= 0 && k1Offset < vlen &&
					v1[k1Offset] != -1 {
					x1 := v1[k1Offset]
					y1 := offset + x1 - k1Offset
					// Mirror x2 onto top-left coordinate system.
					x2 = len1 - x2
					if x1 >= x2 {
						// Overlap detected.
						return dmp.diffBisectSplit(
							s1, s2, x1, y1, deadline,
						)
					}
				}
			}
		}
	}
	// Diff took too long and hit the deadline, or the number of diffs
	// equals the number of characters: no commonality at all.
	return []Diff{
		{DiffDelete, string(s1)},
		{DiffInsert, string(s2)},
	}
}

func (dmp *DMP) diffBisectSplit(runes1, runes2 []rune, x, y int,
	deadline time.Time) []Diff {
	runes1a := runes1[:x]
	runes2a := runes2[:y]
	runes1b := runes1[x:]
	runes2b := runes2[y:]

	// Compute both diffs serially.
	diffsHead := dmp.diffMainRunes(runes1a, runes2a, false, deadline)
	diffsTail := dmp.diffMainRunes(runes1b, runes2b, false, deadline)

	return append(diffsHead, diffsTail...)
}

// DiffHalfMatch checks whether the two texts share a substring which is at
// least half the length of the longer text. This speedup can produce
// non-minimal diffs.
func (dmp *DMP) DiffHalfMatch(text1, text2 string) []string {
	rs := diffHalfMatch(dmp, []rune(text1), []rune(text2))
	if rs == nil {
		return nil
	}

	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = string(r)
	}
	return result
}
