package sevenseg

import "errors"

// Sentinel errors for the decoding pipeline. Callers match them with
// errors.Is; wrapped messages carry the offending line or pattern.
var (
	// ErrMalformedPattern reports a token with a character outside a-g.
	ErrMalformedPattern = errors.New("malformed pattern")

	// ErrMalformedLine reports a line with the wrong delimiter or token counts.
	ErrMalformedLine = errors.New("malformed line")

	// ErrInvalidCipher reports ten patterns that cannot belong to one display:
	// wrong size multiset, duplicates, or an ambiguous deduction step.
	ErrInvalidCipher = errors.New("invalid cipher")

	// ErrUnknownPattern reports an output pattern absent from the decode map.
	ErrUnknownPattern = errors.New("unknown output pattern")
)
