// File: repeat.go
// Title: Repetition
// Description: Repeats a byte sequence with explicit errors for negative
//              counts and results that would overflow int.
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
	"math"

	"github.com/msto63/bytex/foundation/core/errors"
)

// Repeat returns n concatenated copies of b.
func Repeat(b []byte, n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.BytexInvalidInput("repeat", n, "non-negative count")
	}
	if n == 0 || len(b) == 0 {
		return []byte{}, nil
	}
	if len(b) > math.MaxInt/n {
		return nil, errors.BytexLengthExceeded("repeat", len(b), n)
	}
	return bytes.Repeat(b, n), nil
}

// MustRepeat is like Repeat but panics on invalid input.
func MustRepeat(b []byte, n int) []byte {
	out, err := Repeat(b, n)
	if err != nil {
		panic(err)
	}
	return out
}
