package sevenseg

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"crosswarped.com/sevenseg/pkg/primitives"
)

// DecodeOutputs looks up the four output patterns in a decode map produced
// by Solve and combines the digits positionally into one number. An output
// pattern missing from the map returns ErrUnknownPattern; valid puzzle
// input never triggers it, since outputs are wired like the cipher.
func DecodeOutputs(outputs [4]primitives.SegmentSet, decodeMap map[primitives.SegmentSet]Digit) (int, error) {
	value := 0
	for _, s := range outputs {
		d, ok := decodeMap[s]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownPattern, s)
		}
		value = value*10 + int(d)
	}
	return value, nil
}

// DecodeLine parses one puzzle line, solves its wiring and decodes its
// four outputs into a number. The decode map lives and dies here; it is
// never reused across lines.
func DecodeLine(line string) (int, error) {
	entry, err := ParseLine(line)
	if err != nil {
		return 0, err
	}

	decodeMap, err := Solve(entry.Cipher)
	if err != nil {
		return 0, err
	}

	return DecodeOutputs(entry.Outputs, decodeMap)
}

// CountUniqueOutputs reads puzzle lines from r and counts the output
// patterns whose segment count alone identifies a digit (the 1s, 4s, 7s
// and 8s). Blank lines are skipped; the first malformed line aborts the
// count.
func CountUniqueOutputs(r io.Reader) (int, error) {
	count := 0
	err := forEachLine(r, func(line string) error {
		entry, err := ParseLine(line)
		if err != nil {
			return err
		}
		for _, s := range entry.Outputs {
			if _, ok := LookupUnique(s); ok {
				count++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// SumOutputs reads puzzle lines from r, decodes each line's output number
// and returns the sum. Blank lines are skipped; the first malformed line
// aborts the sum.
func SumOutputs(r io.Reader) (int, error) {
	sum := 0
	err := forEachLine(r, func(line string) error {
		value, err := DecodeLine(line)
		if err != nil {
			return err
		}
		sum += value
		return nil
	})
	if err != nil {
		return 0, err
	}
	return sum, nil
}

func forEachLine(r io.Reader, fn func(line string) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}
