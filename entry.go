package sevenseg

import (
	"fmt"
	"strings"

	"crosswarped.com/sevenseg/pkg/primitives"
)

// Entry is one parsed puzzle line: the ten signal patterns observed on a
// display, and the four output patterns to decode under the same wiring.
type Entry struct {
	Cipher  [10]primitives.SegmentSet
	Outputs [4]primitives.SegmentSet
}

// ParseLine parses a raw input line of the form
//
//	<ten space-separated patterns> | <four space-separated patterns>
//
// It returns ErrMalformedLine when the delimiter or token counts are wrong
// and ErrMalformedPattern when a token holds a character outside a-g.
func ParseLine(line string) (Entry, error) {
	var entry Entry

	parts := strings.Split(line, "|")
	if len(parts) != 2 {
		return Entry{}, fmt.Errorf("%w: expected one %q delimiter in %q", ErrMalformedLine, "|", line)
	}

	cipherTokens := strings.Fields(parts[0])
	if len(cipherTokens) != len(entry.Cipher) {
		return Entry{}, fmt.Errorf("%w: expected %d signal patterns, got %d", ErrMalformedLine, len(entry.Cipher), len(cipherTokens))
	}

	outputTokens := strings.Fields(parts[1])
	if len(outputTokens) != len(entry.Outputs) {
		return Entry{}, fmt.Errorf("%w: expected %d output patterns, got %d", ErrMalformedLine, len(entry.Outputs), len(outputTokens))
	}

	for i, token := range cipherTokens {
		s, err := primitives.ParseSegmentSet(token)
		if err != nil {
			return Entry{}, fmt.Errorf("%w: signal pattern %q: %v", ErrMalformedPattern, token, err)
		}
		entry.Cipher[i] = s
	}

	for i, token := range outputTokens {
		s, err := primitives.ParseSegmentSet(token)
		if err != nil {
			return Entry{}, fmt.Errorf("%w: output pattern %q: %v", ErrMalformedPattern, token, err)
		}
		entry.Outputs[i] = s
	}

	return entry, nil
}
