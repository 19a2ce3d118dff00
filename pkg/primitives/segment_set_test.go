package primitives

import (
	"testing"
)

func TestSegmentSet_Add(t *testing.T) {
	var s SegmentSet

	tests := []struct {
		name      string
		char      rune
		wantErr   bool
		wantCount int
	}{
		{"add 'a'", 'a', false, 1},
		{"add 'b'", 'b', false, 2},
		{"add 'g'", 'g', false, 3},
		{"add 'a' again", 'a', false, 3}, // should not increase count
		{"add out of range low", 'A', true, 3},
		{"add out of range high", 'h', true, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Add(tt.char)
			if (err != nil) != tt.wantErr {
				t.Errorf("Add() error = %v, wantErr %v", err, tt.wantErr)
			}
			if s.Count() != tt.wantCount {
				t.Errorf("count = %d, want %d", s.Count(), tt.wantCount)
			}
		})
	}
}

func TestParseSegmentSet(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    string
		wantErr bool
	}{
		{"single segment", "a", "a", false},
		{"unsorted input", "gcb", "bcg", false},
		{"duplicate characters", "aab", "ab", false},
		{"uppercase input", "CAB", "abc", false},
		{"all segments", "gfedcba", "abcdefg", false},
		{"empty token", "", "", false},
		{"out of range character", "abz", "", true},
		{"digit character", "a1", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSegmentSet(tt.token)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSegmentSet() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got.String() != tt.want {
				t.Errorf("String() = %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestParseSegmentSet_RoundTrip(t *testing.T) {
	// Parsing a set's own string form must yield the same set.
	for _, token := range []string{"ab", "dab", "eafb", "cdfbe", "cdfgeb", "acedgfb"} {
		s, err := ParseSegmentSet(token)
		if err != nil {
			t.Fatalf("ParseSegmentSet(%q) error = %v", token, err)
		}
		again, err := ParseSegmentSet(s.String())
		if err != nil {
			t.Fatalf("ParseSegmentSet(%q) error = %v", s.String(), err)
		}
		if again != s {
			t.Errorf("round trip of %q = %v, want %v", token, again, s)
		}
	}
}

func TestSegmentSet_Contains(t *testing.T) {
	s, err := ParseSegmentSet("ac")
	if err != nil {
		t.Fatalf("ParseSegmentSet() error = %v", err)
	}

	tests := []struct {
		name string
		char rune
		want bool
	}{
		{"contains 'a'", 'a', true},
		{"contains 'b'", 'b', false},
		{"contains 'c'", 'c', true},
		{"out of range", 'z', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Contains(tt.char); got != tt.want {
				t.Errorf("Contains() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSegmentSet_ContainsAll(t *testing.T) {
	tests := []struct {
		name  string
		set   string
		other string
		want  bool
	}{
		{"superset", "abcdf", "ab", true},
		{"equal sets", "ab", "ab", true},
		{"missing one segment", "acdfg", "ab", false},
		{"disjoint sets", "ab", "cd", false},
		{"empty other", "ab", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustParse(t, tt.set)
			other := mustParse(t, tt.other)
			if got := s.ContainsAll(other); got != tt.want {
				t.Errorf("ContainsAll() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSegmentSet_Minus(t *testing.T) {
	tests := []struct {
		name  string
		set   string
		other string
		want  string
	}{
		{"remove shared segments", "eafb", "ab", "ef"},
		{"disjoint other", "ab", "cd", "ab"},
		{"remove everything", "ab", "ab", ""},
		{"empty set", "", "ab", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustParse(t, tt.set)
			other := mustParse(t, tt.other)
			got := s.Minus(other)
			if got.String() != tt.want {
				t.Errorf("Minus() = %q, want %q", got.String(), tt.want)
			}
			if got.Count() != len(tt.want) {
				t.Errorf("Minus().Count() = %d, want %d", got.Count(), len(tt.want))
			}
		})
	}
}

func mustParse(t *testing.T, token string) SegmentSet {
	t.Helper()
	s, err := ParseSegmentSet(token)
	if err != nil {
		t.Fatalf("ParseSegmentSet(%q) error = %v", token, err)
	}
	return s
}
