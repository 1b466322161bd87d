package dmp

import "math"

// MatchMain locates the best instance of pattern in s near loc. Returns -1
// if no match is found.
func (dmp *DMP) MatchMain(s, pattern string, loc int) int {
	loc = int(math.Max(0, math.Min(float64(loc), float64(len(s)))))
	if s == pattern {
		// Shortcut (potentially not guaranteed by the algorithm).
		return 0
	}
	if len(s) == 0 {
		// Nothing to match.
		return -1
	}
	if loc+len(pattern) <= len(s) && s[loc:loc+len(pattern)] == pattern {
		// Perfect match at the perfect spot (includes the case of an
		// empty pattern).
		return loc
	}
	// Do a fuzzy compare.
	return dmp.MatchBitap(s, pattern, loc)
}

// MatchBitap locates the best instance of pattern in text near loc using
// the Bitap algorithm. Returns -1 if no match found.
func (dmp *DMP) MatchBitap(text, pattern string, loc int) int {
	return matchBitap(dmp, text, pattern, loc)
}

// matchBitap locates the best instance of pattern in text near loc using
// the Bitap (Shift-Or) algorithm. Returns -1 if no match is found within
// dmp.MatchThreshold.
func matchBitap(dmp *DMP, text, pattern string, loc int) int {
	// Initialise the alphabet.
	s := MatchAlphabet(pattern)

	// Highest score beyond which we give up.
	scoreThreshold := dmp.MatchThreshold
	// Is there a nearby exact match? (speedup)
	bestLoc := indexOf(text, pattern, loc)
	if bestLoc != -1 {
		scoreThreshold = math.Min(
			matchBitapScore(dmp, 0, bestLoc, loc, pattern), scoreThreshold,
		)
		// What about in the other direction? (speedup)
		bestLoc = lastIndexOf(text, pattern, loc+len(pattern))
		if bestLoc != -1 {
			scoreThreshold = math.Min(
				matchBitapScore(dmp, 0, bestLoc, loc, pattern), scoreThreshold,
			)
		}
	}

	// Initialise the bit arrays.
	matchmask := 1 << uint(len(pattern)-1)
	bestLoc = -1

	var binMin, binMid int
	binMax := len(pattern) + len(text)
	var lastRd []int
	for d := 0; d < len(pattern); d++ {
		// Scan for the best match; each iteration allows for one more
		// error. Run a binary search to determine how far from loc we
		// can stray at this error level.
		binMin = 0
		binMid = binMax
		for binMin < binMid {
			if matchBitapScore(dmp, d, loc+binMid, loc, pattern) <= scoreThreshold {
				binMin = binMid
			} else {
				binMax = binMid
			}
			binMid = (binMax-binMin)/2 + binMin
		}
		// Use the result from this iteration as the maximum for the next.
		binMax = binMid
		start := int(math.Max(1, float64(loc-binMid+1)))
		finish := int(math.Min(float64(loc+binMid), float64(len(text))) + float64(len(pattern)))

		rd := make([]int, finish+2)
		rd[finish+1] = (1 << uint(d)) - 1

		for j := finish; j >= start; j-- {
			var charMatch int
			if len(text) <= j-1 {
				// Out of range.
				charMatch = 0
			} else if _, ok := s[text[j-1]]; !ok {
				charMatch = 0
			} else {
				charMatch = s[text[j-1]]
			}

			if d == 0 {
				// First pass: exact match.
				rd[j] = ((rd[j+1] << 1) | 1) & charMatch
			} else {
				// Subsequent passes: fuzzy match.
				rd[j] = ((rd[j+1]<<1)|1)&charMatch | (((lastRd[j+1] | lastRd[j]) << 1) | 1) | lastRd[j+1]
			}
			if (rd[j] & matchmask) != 0 {
				score := matchBitapScore(dmp, d, j-1, loc, pattern)
				// This match will almost certainly be better than any
				// existing match. But check anyway.
				if score <= scoreThreshold {
					scoreThreshold = score
					bestLoc = j - 1
					if bestLoc > loc {
						// When passing loc, don't exceed our current
						// distance from loc.
						start = int(math.Max(1, float64(2*loc-bestLoc)))
					} else {
						// Already passed loc, downhill from here on in.
						break
					}
				}
			}
		}
		if matchBitapScore(dmp, d+1, loc, loc, pattern) > scoreThreshold {
			// No hope for a (better) match at greater error levels.
			break
		}
		lastRd = rd
	}
	return bestLoc
}

// matchBitapScore computes the score for a match with e errors at
// location x against the hinted location loc.
func matchBitapScore(dmp *DMP, e, x, loc int, pattern string) float64 {
	accuracy := float64(e) / float64(len(pattern))
	proximity := math.Abs(float64(loc - x))
	if dmp.MatchDistance == 0 {
		// Dodge divide by zero error.
		if proximity == 0 {
			return accuracy
		}
		return 1.0
	}
	return accuracy + (proximity / float64(dmp.MatchDistance))
}

// MatchAlphabet initialises the alphabet bitmasks for the Bitap
// algorithm: for each byte in pattern, a mask with a 1 bit at every
// position the byte occurs.
func MatchAlphabet(pattern string) map[byte]int {
	s := map[byte]int{}
	charPattern := []byte(pattern)
	for _, c := range charPattern {
		if _, ok := s[c]; !ok {
			s[c] = 0
		}
	}
	for i, c := range charPattern {
		s[c] |= 1 << uint(len(pattern)-i-1)
	}
	return s
}
