package primitives

import (
	"fmt"
	"strings"
)

const (
	minSegment rune = 'a'
	maxSegment rune = 'g'

	// SegmentCount is the number of strokes on a seven-segment display.
	SegmentCount = int(maxSegment-minSegment) + 1
)

// SegmentSet efficiently represents a set of display segments.
//
// It is a comparable value type, so two sets holding the same segments
// compare equal with == and a SegmentSet can be used as a map key.
type SegmentSet struct {
	lit   [SegmentCount]bool
	count int
}

// ParseSegmentSet parses a signal pattern token into a SegmentSet.
// Input is case-insensitive; any character outside a-g is an error.
func ParseSegmentSet(token string) (SegmentSet, error) {
	var s SegmentSet
	for _, r := range strings.ToLower(token) {
		if err := s.Add(r); err != nil {
			return SegmentSet{}, err
		}
	}
	return s, nil
}

// Add adds a segment to the set.
func (s *SegmentSet) Add(r rune) error {
	if r < minSegment || r > maxSegment {
		return fmt.Errorf("character %c is out of range", r)
	}

	if s.lit[r-minSegment] {
		return nil
	}

	s.count++
	s.lit[r-minSegment] = true
	return nil
}

// Contains checks if a segment is in the set.
func (s SegmentSet) Contains(r rune) bool {
	if r < minSegment || r > maxSegment {
		return false
	}
	return s.lit[r-minSegment]
}

// ContainsAll checks if every segment of other is also in this set.
func (s SegmentSet) ContainsAll(other SegmentSet) bool {
	for r := minSegment; r <= maxSegment; r++ {
		if other.Contains(r) && !s.Contains(r) {
			return false
		}
	}
	return true
}

// Minus returns the segments of this set that are not in other.
func (s SegmentSet) Minus(other SegmentSet) SegmentSet {
	var out SegmentSet
	for r := minSegment; r <= maxSegment; r++ {
		if s.Contains(r) && !other.Contains(r) {
			out.lit[r-minSegment] = true
			out.count++
		}
	}
	return out
}

// Count returns the number of segments in the set.
func (s SegmentSet) Count() int {
	return s.count
}

// String returns the segment letters in sorted order.
func (s SegmentSet) String() string {
	var b strings.Builder
	for i, lit := range s.lit {
		if lit {
			b.WriteRune(minSegment + rune(i))
		}
	}
	return b.String()
}
