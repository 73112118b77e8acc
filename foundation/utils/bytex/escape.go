// File: escape.go
// Title: Escaping and Unescaping of Quoted Literals
// Description: Converts raw bytes into the body of a quoted literal and
//              back. Escaping uses the printable boundary from printable.go
//              so that anything IsPrintable accepts is copied verbatim and
//              everything else becomes a backslash sequence. Unescaping is
//              driven by a caller-suppliable escape map.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation

package bytex

import (
	"unicode/utf8"

	"github.com/msto63/bytex/foundation/core/errors"
)

const hexDigits = "0123456789abcdef"

// EscapeFunc lets callers override how a single byte is escaped. It
// returns the replacement and true, or false to use the default.
type EscapeFunc func(c byte) ([]byte, bool)

// UnescapeFunc maps the character following a backslash to its unescaped
// form. Returning false keeps the backslash and the character unchanged.
// Returning HexEscape or UnicodeEscape requests numeric decoding of the
// digits that follow.
type UnescapeFunc func(c byte) (rune, bool)

// Sentinels an UnescapeFunc can return to request numeric decoding.
const (
	// HexEscape decodes \xHH or \x{H...}
	HexEscape rune = -1
	// UnicodeEscape decodes \uHHHH or \u{H...}
	UnicodeEscape rune = -2
)

// controlEscapes maps the accepted control characters to their escape letter.
var controlEscapes = [...]byte{
	charNewline:   'n',
	charReturn:    'r',
	charTab:       't',
	charVTab:      'v',
	charBackspace: 'b',
	charFormFeed:  'f',
	charEscape:    'e',
}

// DefaultUnescapeMap understands the usual C-style escapes plus \e, \s, \d,
// hex and unicode escapes. Any other character stands for itself, so \\
// yields a backslash and \" a double quote.
func DefaultUnescapeMap(c byte) (rune, bool) {
	switch c {
	case '0':
		return 0, true
	case 'a':
		return 0x07, true
	case 'b':
		return charBackspace, true
	case 'd':
		return 0x7F, true
	case 'e':
		return charEscape, true
	case 'f':
		return charFormFeed, true
	case 'n':
		return charNewline, true
	case 'r':
		return charReturn, true
	case 's':
		return ' ', true
	case 't':
		return charTab, true
	case 'v':
		return charVTab, true
	case 'x':
		return HexEscape, true
	case 'u':
		return UnicodeEscape, true
	default:
		return rune(c), true
	}
}

// Escape returns b escaped for use inside a literal delimited by quote.
// A quote of 0 escapes no delimiter.
func Escape(b []byte, quote byte) []byte {
	return EscapeWith(b, quote, nil)
}

// EscapeString is the string form of Escape.
func EscapeString(s string, quote byte) string {
	return string(Escape([]byte(s), quote))
}

// Quote wraps the escaped form of b in double quotes.
func Quote(b []byte) []byte {
	out := make([]byte, 0, len(b)+2)
	out = append(out, '"')
	out = append(out, Escape(b, '"')...)
	return append(out, '"')
}

// EscapeWith is Escape with a per-byte override. fn may be nil.
func EscapeWith(b []byte, quote byte, fn EscapeFunc) []byte {
	out := make([]byte, 0, len(b)+len(b)/8)

	for len(b) > 0 {
		c := b[0]

		if fn != nil {
			if repl, ok := fn(c); ok {
				out = append(out, repl...)
				b = b[1:]
				continue
			}
		}

		switch {
		case c == '\\' || (quote != 0 && c == quote):
			out = append(out, '\\', c)
			b = b[1:]
			continue
		case int(c) < len(controlEscapes) && controlEscapes[c] != 0:
			out = append(out, '\\', controlEscapes[c])
			b = b[1:]
			continue
		}

		if n := printableSeq(b); n > 0 {
			out = append(out, b[:n]...)
			b = b[n:]
			continue
		}

		out = append(out, '\\', 'x', hexDigits[c>>4], hexDigits[c&0x0F])
		b = b[1:]
	}
	return out
}

// Unescape decodes b using DefaultUnescapeMap.
func Unescape(b []byte) ([]byte, error) {
	return UnescapeWith(b, DefaultUnescapeMap)
}

// UnescapeString is the string form of Unescape.
func UnescapeString(s string) (string, error) {
	out, err := Unescape([]byte(s))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// UnescapeWith decodes backslash sequences in b using m. A trailing lone
// backslash is kept as is.
func UnescapeWith(b []byte, m UnescapeFunc) ([]byte, error) {
	if m == nil {
		m = DefaultUnescapeMap
	}
	out := make([]byte, 0, len(b))

	i := 0
	for i < len(b) {
		c := b[i]
		if c != '\\' || i+1 >= len(b) {
			out = append(out, c)
			i++
			continue
		}

		next := b[i+1]
		r, ok := m(next)
		if !ok {
			out = append(out, c, next)
			i += 2
			continue
		}

		switch r {
		case HexEscape, UnicodeEscape:
			cp, n, err := decodeNumeric(b, i, r)
			if err != nil {
				return nil, err
			}
			if r == HexEscape && n == 4 {
				// \xHH is a raw byte, not a code point
				out = append(out, byte(cp))
			} else {
				out = utf8.AppendRune(out, cp)
			}
			i += n
		default:
			if r < utf8.RuneSelf {
				out = append(out, byte(r))
			} else {
				out = utf8.AppendRune(out, r)
			}
			i += 2
		}
	}
	return out, nil
}

// decodeNumeric parses the numeric escape starting at b[start] (the
// backslash). It returns the decoded value and the total length of the
// escape sequence.
func decodeNumeric(b []byte, start int, kind rune) (rune, int, error) {
	digitsAt := start + 2

	if digitsAt < len(b) && b[digitsAt] == '{' {
		end := digitsAt + 1
		for end < len(b) && b[end] != '}' {
			end++
		}
		if end >= len(b) {
			return 0, 0, errors.BytexInvalidEscape(start, b[start:], "missing closing brace")
		}
		digits := b[digitsAt+1 : end]
		if len(digits) == 0 || len(digits) > 6 {
			return 0, 0, errors.BytexInvalidEscape(start, b[start:end+1], "expected 1 to 6 hex digits")
		}
		cp, ok := parseHex(digits)
		if !ok {
			return 0, 0, errors.BytexInvalidEscape(start, b[start:end+1], "invalid hex digit")
		}
		if !validCodePoint(cp) {
			return 0, 0, errors.BytexInvalidEscape(start, b[start:end+1], "not a valid code point")
		}
		return cp, end + 1 - start, nil
	}

	width := 2
	if kind == UnicodeEscape {
		width = 4
	}
	if digitsAt+width > len(b) {
		return 0, 0, errors.BytexInvalidEscape(start, b[start:], "sequence is incomplete")
	}
	seq := b[start : digitsAt+width]
	cp, ok := parseHex(b[digitsAt : digitsAt+width])
	if !ok {
		return 0, 0, errors.BytexInvalidEscape(start, seq, "invalid hex digit")
	}
	if kind == UnicodeEscape && !validCodePoint(cp) {
		return 0, 0, errors.BytexInvalidEscape(start, seq, "not a valid code point")
	}
	return cp, len(seq), nil
}

func parseHex(digits []byte) (rune, bool) {
	var v rune
	for _, d := range digits {
		switch {
		case d >= '0' && d <= '9':
			v = v<<4 | rune(d-'0')
		case d >= 'a' && d <= 'f':
			v = v<<4 | rune(d-'a'+10)
		case d >= 'A' && d <= 'F':
			v = v<<4 | rune(d-'A'+10)
		default:
			return 0, false
		}
	}
	return v, true
}

func validCodePoint(cp rune) bool {
	return cp >= 0 && cp <= utf8.MaxRune && (cp < 0xD800 || cp > 0xDFFF)
}
