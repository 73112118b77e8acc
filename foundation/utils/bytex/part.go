// File: part.go
// Title: Substring Extraction by Offset and Range
// Description: Byte-offset slicing helpers. Part is strict and reports
//              ranges that do not fit; Slice and SplitAt clamp like
//              Python-style slicing. All results alias the input.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation

package bytex

import (
	"github.com/msto63/bytex/foundation/core/errors"
)

// Part returns length bytes of b starting at start. A negative length
// selects the -length bytes that end at start. The range must lie within
// b, otherwise an out-of-range error is returned.
func Part(b []byte, start, length int) ([]byte, error) {
	if start < 0 || start > len(b) {
		return nil, errors.BytexOutOfRange("part", start, 0, len(b))
	}

	from, to := start, start+length
	if length < 0 {
		from, to = start+length, start
	}
	if from < 0 || to > len(b) || to < from {
		return nil, errors.BytexOutOfRange("part", start+length, 0, len(b)).
			WithDetail("start", start).
			WithDetail("length", length)
	}
	return b[from:to:to], nil
}

// MustPart is like Part but panics on an invalid range.
func MustPart(b []byte, start, length int) []byte {
	p, err := Part(b, start, length)
	if err != nil {
		panic(err)
	}
	return p
}

// Slice returns b[start:end] where negative indices count from the end of
// b. Indices are clamped to the bounds of b and an empty slice is
// returned when start >= end.
func Slice(b []byte, start, end int) []byte {
	from := clampIndex(start, len(b))
	to := clampIndex(end, len(b))
	if from >= to {
		return b[from:from]
	}
	return b[from:to]
}

// SliceFrom returns everything from start to the end of b.
func SliceFrom(b []byte, start int) []byte {
	return Slice(b, start, len(b))
}

// SplitAt splits b into b[:pos] and b[pos:]. A negative pos counts from
// the end of b; pos is clamped to the bounds of b.
func SplitAt(b []byte, pos int) ([]byte, []byte) {
	p := clampIndex(pos, len(b))
	return b[:p:p], b[p:]
}

func clampIndex(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
	}
	if i > n {
		return n
	}
	return i
}
