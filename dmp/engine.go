package dmp

import "time"

// DMP holds the tunable knobs shared by the diff, match and patch engines.
// New fills in the standard defaults. A zero DMP has every knob at zero;
// diffing works with it, but Apply and PatchSplitMax need a positive
// MatchMaxBits.
type DMP struct {
	// DiffTimeout bounds diff_main's wall-clock budget. Zero means
	// unlimited, which also disables the half-match speedup.
	DiffTimeout time.Duration
	// DiffEditCost is the minimum edit size, in characters, worth
	// keeping an equality around for during efficiency cleanup.
	DiffEditCost int
	// MatchThreshold is the maximum acceptable Bitap score; 0 is an
	// exact match and 1 matches almost anything.
	MatchThreshold float64
	// MatchDistance is how many characters away from the expected
	// location add 1.0 to the match score.
	MatchDistance int
	// PatchDeleteThreshold bounds how different the content straddled
	// by an imperfect patch match may be, as a fraction of text1's
	// length, before the patch is rejected.
	PatchDeleteThreshold float64
	// PatchMargin is the number of context characters kept around
	// each patch.
	PatchMargin int
	// MatchMaxBits is the Bitap pattern length ceiling (the number of
	// bits in the machine word Bitap operates on).
	MatchMaxBits int
}

// New returns a DMP populated with the library's standard defaults.
func New() *DMP {
	return &DMP{
		DiffTimeout:          time.Second,
		DiffEditCost:         4,
		MatchThreshold:       0.5,
		MatchDistance:        1000,
		PatchDeleteThreshold: 0.5,
		PatchMargin:          4,
		MatchMaxBits:         32,
	}
}

// unlimitedHorizon stands in for "no deadline" in diffBisect, which
// compares the wall clock against its deadline argument unconditionally.
// A century out is close enough to forever for any caller.
const unlimitedHorizon = 100 * 365 * 24 * time.Hour

// deadline turns a timeout duration into an absolute deadline. A
// non-positive timeout means unlimited time.
func deadline(timeout time.Duration) time.Time {
	if timeout <= 0 {
		return time.Now().Add(unlimitedHorizon)
	}
	return time.Now().Add(timeout)
}
