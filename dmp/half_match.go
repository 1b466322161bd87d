package dmp

// diffHalfMatch checks whether the two rune slices share a substring
// which is at least half the length of the longer one. This speedup can
// produce non-minimal diffs, so it is skipped whenever the engine's
// diff deadline is disabled (DiffTimeout <= 0).
func diffHalfMatch(dmp *DMP, text1, text2 []rune) [][]rune {
	if dmp.DiffTimeout <= 0 {
		// Don't risk returning a non-optimal diff if we have unlimited time.
		return nil
	}

	var longtext, shorttext []rune
	if len(text1) > len(text2) {
		longtext = text1
		shorttext = text2
	} else {
		longtext = text2
		shorttext = text1
	}
	if len(longtext) < 4 || len(shorttext)*2 < len(longtext) {
		return nil // Pointless.
	}

	// First check if the second quarter is the seed for a half-match.
	hm1 := diffHalfMatchI(longtext, shorttext, (len(longtext)+3)/4)
	// Check again based on the third quarter.
	hm2 := diffHalfMatchI(longtext, shorttext, (len(longtext)+1)/2)

	var hm [][]rune
	if hm1 == nil && hm2 == nil {
		return nil
	} else if hm2 == nil {
		hm = hm1
	} else if hm1 == nil {
		hm = hm2
	} else {
		// Both matched. Select the longest.
		if len(hm1[4]) > len(hm2[4]) {
			hm = hm1
		} else {
			hm = hm2
		}
	}

	// A half-match was found, sort out the return data.
	if len(text1) > len(text2) {
		return hm
	}
	return [][]rune{hm[2], hm[3], hm[0], hm[1], hm[4]}
}

// diffHalfMatchI checks if a substring of shorttext exists within
// longtext such that the substring is at least half the length of
// longtext. It returns the prefix of longtext, the suffix of longtext,
// the prefix of shorttext, the suffix of shorttext and the common
// middle, seeded from a quarter-length slice of longtext starting at i.
// Returns nil if no match was found.
func diffHalfMatchI(longtext, shorttext []rune, i int) [][]rune {
	var bestCommonA, bestCommonB []rune
	var bestCommonLen int
	var bestLongtextA, bestLongtextB []rune
	var bestShorttextA, bestShorttextB []rune

	seed := longtext[i : i+len(longtext)/4]
	for j := runesIndexOf(shorttext, seed, 0); j != -1; j = runesIndexOf(shorttext, seed, j+1) {
		prefixLength := commonPrefixLength(longtext[i:], shorttext[j:])
		suffixLength := commonSuffixLength(longtext[:i], shorttext[:j])
		if bestCommonLen < suffixLength+prefixLength {
			bestCommonA = shorttext[j-suffixLength : j]
			bestCommonB = shorttext[j : j+prefixLength]
			bestCommonLen = len(bestCommonA) + len(bestCommonB)
			bestLongtextA = longtext[:i-suffixLength]
			bestLongtextB = longtext[i+prefixLength:]
			bestShorttextA = shorttext[:j-suffixLength]
			bestShorttextB = shorttext[j+prefixLength:]
		}
	}
	if bestCommonLen*2 < len(longtext) {
		return nil
	}
	return [][]rune{
		bestLongtextA,
		bestLongtextB,
		bestShorttextA,
		bestShorttextB,
		append(bestCommonA, bestCommonB...),
	}
}
