package sevenseg

import (
	"fmt"

	"crosswarped.com/sevenseg/pkg/primitives"
)

// Digit is one of the ten values a seven-segment display can show.
type Digit int

// canonicalPatterns maps each digit to the segments lit for it on a
// correctly wired display.
var canonicalPatterns = [10]string{
	0: "abcefg",
	1: "cf",
	2: "acdeg",
	3: "acdfg",
	4: "bcdf",
	5: "abdfg",
	6: "abdefg",
	7: "acf",
	8: "abcdefg",
	9: "abcdfg",
}

var canonical [10]primitives.SegmentSet

// digitBySize resolves the four segment counts that only one digit has.
// Sizes 5 (digits 2, 3, 5) and 6 (digits 0, 6, 9) are ambiguous.
var digitBySize = map[int]Digit{
	2: 1,
	3: 7,
	4: 4,
	7: 8,
}

func init() {
	for d, pattern := range canonicalPatterns {
		s, err := primitives.ParseSegmentSet(pattern)
		if err != nil {
			panic(fmt.Sprintf("canonical pattern for digit %d: %v", d, err))
		}
		canonical[d] = s
	}
}

// Canonical returns the segment set digit d lights on an unscrambled display.
func Canonical(d Digit) primitives.SegmentSet {
	return canonical[d]
}

// LookupUnique returns the digit identified by the segment count of s
// alone. The second return is false when the count is shared by several
// digits (sizes 5 and 6) or matches no digit at all.
func LookupUnique(s primitives.SegmentSet) (Digit, bool) {
	d, ok := digitBySize[s.Count()]
	return d, ok
}
