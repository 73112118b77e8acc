// File: printable.go
// Title: UTF-8 Printable Validation
// Description: Implements the byte-level state machine that decides whether
//              a byte sequence consists entirely of valid, displayable UTF-8.
//              Every legal encoding shape (1-4 bytes) has its own guarded
//              range check; surrogates, overlong forms, the non-characters
//              U+FFFE/U+FFFF and code points above U+10FFFF are rejected.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation of the printable predicate

package bytex

// Control characters accepted as printable in addition to 0x20-0x7E.
const (
	charBackspace = 0x08
	charTab       = 0x09
	charNewline   = 0x0A
	charVTab      = 0x0B
	charFormFeed  = 0x0C
	charReturn    = 0x0D
	charEscape    = 0x1B
)

// IsPrintable reports whether b is made up entirely of printable UTF-8
// sequences. The empty sequence is printable.
//
// Accepted are ASCII 0x20-0x7E, the control characters \n \r \t \v \b \f
// and \e, and every well-formed multi-byte encoding of U+00A0-U+10FFFF
// except surrogates and the non-characters U+FFFE and U+FFFF.
func IsPrintable(b []byte) bool {
	return PrintablePrefix(b) == len(b)
}

// IsPrintableString is the string form of IsPrintable.
func IsPrintableString(s string) bool {
	return IsPrintable([]byte(s))
}

// IsPrintableLimit is like IsPrintable but only inspects the first limit
// code points. A limit <= 0 inspects the whole input.
func IsPrintableLimit(b []byte, limit int) bool {
	if limit <= 0 {
		return IsPrintable(b)
	}
	for i := 0; i < limit && len(b) > 0; i++ {
		n := printableSeq(b)
		if n == 0 {
			return false
		}
		b = b[n:]
	}
	return true
}

// PrintablePrefix returns the length in bytes of the longest printable
// prefix of b, which is the offset of the first rejected byte.
func PrintablePrefix(b []byte) int {
	off := 0
	for off < len(b) {
		n := printableSeq(b[off:])
		if n == 0 {
			return off
		}
		off += n
	}
	return off
}

// printableSeq classifies the sequence at the front of b. It returns the
// number of bytes consumed by an accepted sequence, or 0 when the front
// of b is rejected (including when b is empty).
//
// Branches are evaluated in order. The two explicit rejections (U+FFFE,
// U+FFFF and lead 0xF4 above U+10FFFF) are strict subsets of the ranges
// that follow them and must stay ahead of those.
func printableSeq(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	c0 := b[0]

	switch {
	case c0 >= 0x20 && c0 <= 0x7E:
		return 1
	case c0 == charNewline, c0 == charReturn, c0 == charTab, c0 == charVTab,
		c0 == charBackspace, c0 == charFormFeed, c0 == charEscape:
		return 1
	}

	switch {
	case c0 == 0xC2:
		// U+00A0-U+00BF; C2 80..9F are the C1 controls.
		if len(b) >= 2 && inRange(b[1], 0xA0, 0xBF) {
			return 2
		}
	case c0 >= 0xC3 && c0 <= 0xDF:
		if len(b) >= 2 && isCont(b[1]) {
			return 2
		}
	case c0 == 0xE0:
		// U+0800-U+0FFF. The E0-EC class admits any continuation byte
		// after E0, but E0 80..9F encodes U+0000-U+07FF in three bytes,
		// so the first continuation is narrowed to A0..BF here.
		if len(b) >= 3 && inRange(b[1], 0xA0, 0xBF) && isCont(b[2]) {
			return 3
		}
	case c0 >= 0xE1 && c0 <= 0xEC:
		if len(b) >= 3 && isCont(b[1]) && isCont(b[2]) {
			return 3
		}
	case c0 == 0xED:
		// U+D000-U+D7FF; ED A0..BF are the surrogates.
		if len(b) >= 3 && inRange(b[1], 0x80, 0x9F) && isCont(b[2]) {
			return 3
		}
	case c0 == 0xEE || c0 == 0xEF:
		if len(b) < 3 {
			return 0
		}
		if c0 == 0xEF && b[1] == 0xBF && (b[2] == 0xBE || b[2] == 0xBF) {
			return 0
		}
		if isCont(b[1]) && isCont(b[2]) {
			return 3
		}
	case c0 == 0xF0:
		// U+10000-U+3FFFF; F0 80..8F would be overlong.
		if len(b) >= 4 && inRange(b[1], 0x90, 0xBF) && isCont(b[2]) && isCont(b[3]) {
			return 4
		}
	case c0 >= 0xF1 && c0 <= 0xF4:
		if len(b) < 4 {
			return 0
		}
		if c0 == 0xF4 && b[1] >= 0x90 {
			return 0
		}
		if isCont(b[1]) && isCont(b[2]) && isCont(b[3]) {
			return 4
		}
	}
	return 0
}

func isCont(c byte) bool {
	return c >= 0x80 && c <= 0xBF
}

func inRange(c, lo, hi byte) bool {
	return c >= lo && c <= hi
}
