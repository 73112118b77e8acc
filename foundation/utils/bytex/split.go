// File: split.go
// Title: Pattern-Based Splitting
// Description: Splits byte sequences on the occurrences reported by a
//              Matcher, with an optional part limit and trimming of empty
//              parts. Parts alias the input.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation

package bytex

// SplitOptions controls Split.
type SplitOptions struct {
	// Parts limits the number of parts; the last part holds the
	// unsplit remainder. Zero or negative means no limit.
	Parts int

	// Trim drops empty parts from the result.
	Trim bool
}

// Split slices b into the parts separated by the matches of m.
//
// A zero-width match at the start of b does not produce an empty leading
// part, the same as regexp.Regexp.Split.
func Split(b []byte, m Matcher, opts SplitOptions) [][]byte {
	if len(b) == 0 {
		if opts.Trim {
			return [][]byte{}
		}
		return [][]byte{b}
	}

	if opts.Trim {
		return splitTrimmed(b, m, opts.Parts)
	}

	limit := -1
	if opts.Parts > 0 {
		limit = opts.Parts
	}

	parts := make([][]byte, 0, 4)
	beg, end := 0, 0
	for _, loc := range m.FindAllIndex(b, limit) {
		if limit > 0 && len(parts) == limit-1 {
			break
		}
		end = loc[0]
		if loc[1] != 0 {
			parts = append(parts, b[beg:end:end])
		}
		beg = loc[1]
	}
	if end != len(b) {
		parts = append(parts, b[beg:])
	}
	return parts
}

// splitTrimmed splits b and drops empty parts. Empty parts do not count
// against the limit, so all matches have to be considered.
func splitTrimmed(b []byte, m Matcher, limit int) [][]byte {
	parts := make([][]byte, 0, 4)
	beg := 0
	for _, loc := range m.FindAllIndex(b, -1) {
		if limit > 0 && len(parts) == limit-1 {
			break
		}
		if loc[0] > beg {
			parts = append(parts, b[beg:loc[0]:loc[0]])
		}
		if loc[1] > beg {
			beg = loc[1]
		}
	}
	if beg < len(b) {
		parts = append(parts, b[beg:])
	}
	return parts
}

// SplitString splits b on every occurrence of the literal sep. An empty
// sep returns b as the only part.
func SplitString(b, sep []byte) [][]byte {
	if len(sep) == 0 {
		return [][]byte{b}
	}
	m, _ := Literal(sep)
	return Split(b, m, SplitOptions{})
}
