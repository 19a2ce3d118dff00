package sevenseg

import (
	"fmt"

	"crosswarped.com/sevenseg/pkg/primitives"
)

// Solve deduces which of the ten cipher patterns stands for which digit
// and returns the resulting bijection. The deduction is purely set-based,
// no search: the four uniquely sized patterns anchor it, and each
// remaining digit is the single candidate satisfying a superset test.
//
// Solve returns ErrInvalidCipher when the patterns cannot belong to one
// display: a duplicate pattern, a size multiset other than
// {2,3,4,5,5,5,6,6,6,7}, or a deduction step matching zero or several
// candidates.
func Solve(cipher [10]primitives.SegmentSet) (map[primitives.SegmentSet]Digit, error) {
	// One pattern per digit means exactly one each of sizes 2, 3, 4 and 7,
	// three of size 5 (digits 2, 3, 5) and three of size 6 (digits 0, 6, 9).
	wantBySize := [primitives.SegmentCount + 1]int{2: 1, 3: 1, 4: 1, 5: 3, 6: 3, 7: 1}

	var bySize [primitives.SegmentCount + 1][]primitives.SegmentSet
	seen := make(map[primitives.SegmentSet]bool, len(cipher))
	for _, s := range cipher {
		if seen[s] {
			return nil, fmt.Errorf("%w: duplicate pattern %q", ErrInvalidCipher, s)
		}
		seen[s] = true
		bySize[s.Count()] = append(bySize[s.Count()], s)
	}
	for size, want := range wantBySize {
		if len(bySize[size]) != want {
			return nil, fmt.Errorf("%w: %d patterns with %d segments, want %d",
				ErrInvalidCipher, len(bySize[size]), size, want)
		}
	}

	one, seven, four, eight := bySize[2][0], bySize[3][0], bySize[4][0], bySize[7][0]
	sizeFive, sizeSix := bySize[5], bySize[6]

	// Of 2, 3 and 5, only 3 lights both segments of 1.
	three, sizeFive, err := takeSuperset(sizeFive, one, "three")
	if err != nil {
		return nil, err
	}

	// Of 0, 6 and 9, only 9 covers all of 3.
	nine, sizeSix, err := takeSuperset(sizeSix, three, "nine")
	if err != nil {
		return nil, err
	}

	// Of 0 and 6, only 0 covers 7. The leftover is 6.
	zero, sizeSix, err := takeSuperset(sizeSix, seven, "zero")
	if err != nil {
		return nil, err
	}
	six := sizeSix[0]

	// Of 2 and 5, only 5 lights both segments that 4 adds over 1.
	// The leftover is 2.
	five, sizeFive, err := takeSuperset(sizeFive, four.Minus(one), "five")
	if err != nil {
		return nil, err
	}
	two := sizeFive[0]

	return map[primitives.SegmentSet]Digit{
		zero:  0,
		one:   1,
		two:   2,
		three: 3,
		four:  4,
		five:  5,
		six:   6,
		seven: 7,
		eight: 8,
		nine:  9,
	}, nil
}

// takeSuperset finds the single candidate containing every segment of
// want and returns it alongside the remaining candidates. Zero or several
// matches make the cipher unsolvable and are a hard error.
func takeSuperset(candidates []primitives.SegmentSet, want primitives.SegmentSet, digit string) (primitives.SegmentSet, []primitives.SegmentSet, error) {
	var match primitives.SegmentSet
	var rest []primitives.SegmentSet
	found := 0

	for _, c := range candidates {
		if c.ContainsAll(want) {
			match = c
			found++
			continue
		}
		rest = append(rest, c)
	}

	if found != 1 {
		return primitives.SegmentSet{}, nil, fmt.Errorf("%w: %d candidates for %s contain %q, want exactly 1",
			ErrInvalidCipher, found, digit, want)
	}
	return match, rest, nil
}
