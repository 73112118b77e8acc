// File: replace.go
// Title: Pattern-Based Search and Replace
// Description: Replaces the first or every occurrence reported by a Matcher,
//              either with fixed bytes (optionally re-inserting the matched
//              text) or with the result of a callback.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation

package bytex

import "sort"

// ReplaceOptions controls Replace.
type ReplaceOptions struct {
	// Global replaces every occurrence instead of only the first.
	Global bool

	// InsertReplaced lists byte offsets into the replacement at which the
	// matched text is inserted. Offsets past the end of the replacement
	// append the match at the end.
	InsertReplaced []int
}

// Replace returns a copy of b with occurrences of m replaced by repl.
func Replace(b []byte, m Matcher, repl []byte, opts ReplaceOptions) []byte {
	if len(opts.InsertReplaced) == 0 {
		return ReplaceFunc(b, m, func([]byte) []byte { return repl }, opts.Global)
	}

	offsets := append([]int(nil), opts.InsertReplaced...)
	sort.Ints(offsets)
	return ReplaceFunc(b, m, func(match []byte) []byte {
		return insertAt(repl, match, offsets)
	}, opts.Global)
}

// ReplaceString replaces every occurrence of the literal old with repl.
// An empty old returns a copy of b.
func ReplaceString(b, old, repl []byte) []byte {
	if len(old) == 0 {
		return append([]byte(nil), b...)
	}
	m, _ := Literal(old)
	return Replace(b, m, repl, ReplaceOptions{Global: true})
}

// ReplaceFunc returns a copy of b in which occurrences of m are replaced by
// the result of fn applied to the matched bytes. fn must not retain the
// slice it is given.
func ReplaceFunc(b []byte, m Matcher, fn func(match []byte) []byte, global bool) []byte {
	n := 1
	if global {
		n = -1
	}
	locs := m.FindAllIndex(b, n)
	if len(locs) == 0 {
		return append([]byte(nil), b...)
	}

	out := make([]byte, 0, len(b))
	last := 0
	for _, loc := range locs {
		out = append(out, b[last:loc[0]]...)
		out = append(out, fn(b[loc[0]:loc[1]:loc[1]])...)
		last = loc[1]
	}
	return append(out, b[last:]...)
}

// insertAt builds repl with match inserted at each of the sorted offsets.
func insertAt(repl, match []byte, offsets []int) []byte {
	out := make([]byte, 0, len(repl)+len(match)*len(offsets))
	prev := 0
	for _, off := range offsets {
		if off < 0 {
			off = 0
		}
		if off > len(repl) {
			off = len(repl)
		}
		out = append(out, repl[prev:off]...)
		out = append(out, match...)
		prev = off
	}
	return append(out, repl[prev:]...)
}
