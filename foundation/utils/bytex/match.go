// File: match.go
// Title: Pattern Matching Collaborator
// Description: Defines the Matcher abstraction used by Split and Replace.
//              Regular expressions come from the regexp package, literal
//              alternatives from a small leftmost-longest scanner.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation

package bytex

import (
	"bytes"
	"regexp"

	"github.com/msto63/bytex/foundation/core/errors"
)

// Matcher finds successive non-overlapping occurrences of a pattern.
// It returns at most n matches as [start, end) pairs; n < 0 means all.
// *regexp.Regexp satisfies Matcher.
type Matcher interface {
	FindAllIndex(b []byte, n int) [][]int
}

var _ Matcher = (*regexp.Regexp)(nil)

// literalMatcher matches any of a fixed set of byte patterns.
type literalMatcher struct {
	patterns [][]byte
}

// Literal returns a Matcher for the given literal alternatives. At each
// position the leftmost occurrence wins, and among alternatives starting
// there the longest one.
func Literal(patterns ...[]byte) (Matcher, error) {
	if len(patterns) == 0 {
		return nil, errors.BytexInvalidPattern("literal", "", nil)
	}
	m := &literalMatcher{patterns: make([][]byte, len(patterns))}
	for i, p := range patterns {
		if len(p) == 0 {
			return nil, errors.BytexInvalidPattern("literal", "", nil).
				WithDetail("index", i)
		}
		m.patterns[i] = bytes.Clone(p)
	}
	return m, nil
}

// LiteralString is Literal for string patterns.
func LiteralString(patterns ...string) (Matcher, error) {
	bs := make([][]byte, len(patterns))
	for i, p := range patterns {
		bs[i] = []byte(p)
	}
	return Literal(bs...)
}

// FindAllIndex implements Matcher.
func (m *literalMatcher) FindAllIndex(b []byte, n int) [][]int {
	if n == 0 {
		return nil
	}
	var out [][]int
	off := 0
	for off <= len(b) && (n < 0 || len(out) < n) {
		start, length := m.find(b[off:])
		if start < 0 {
			break
		}
		out = append(out, []int{off + start, off + start + length})
		off += start + length
	}
	return out
}

// find returns the leftmost-longest match in b, or -1.
func (m *literalMatcher) find(b []byte) (int, int) {
	best, bestLen := -1, 0
	for _, p := range m.patterns {
		limit := b
		if best >= 0 {
			// Only a match starting at or before best can win
			end := best + len(p)
			if end > len(b) {
				end = len(b)
			}
			limit = b[:end]
		}
		i := bytes.Index(limit, p)
		if i < 0 {
			continue
		}
		if best < 0 || i < best || (i == best && len(p) > bestLen) {
			best, bestLen = i, len(p)
		}
	}
	return best, bestLen
}

// Compile parses a regular expression into a Matcher.
func Compile(expr string) (Matcher, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.BytexInvalidPattern("compile", expr, err)
	}
	return re, nil
}

// MustCompile is like Compile but panics if the expression is invalid.
func MustCompile(expr string) Matcher {
	m, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return m
}

// Match returns the position and length of the first occurrence of m in b.
func Match(b []byte, m Matcher) (start, length int, ok bool) {
	loc := m.FindAllIndex(b, 1)
	if len(loc) == 0 {
		return 0, 0, false
	}
	return loc[0][0], loc[0][1] - loc[0][0], true
}

// Matches returns the position and length of every occurrence of m in b.
func Matches(b []byte, m Matcher) [][2]int {
	locs := m.FindAllIndex(b, -1)
	if len(locs) == 0 {
		return nil
	}
	out := make([][2]int, len(locs))
	for i, loc := range locs {
		out[i] = [2]int{loc[0], loc[1] - loc[0]}
	}
	return out
}
