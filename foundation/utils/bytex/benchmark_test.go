// File: benchmark_test.go
// Title: Performance Benchmarks for bytex Functions
// Description: Benchmarks for the validator and the escaping helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial benchmark implementation

package bytex

import (
	"bytes"
	"testing"
	"unicode/utf8"
)

var (
	benchASCII   = bytes.Repeat([]byte("The quick brown fox jumps over the lazy dog. "), 64)
	benchUnicode = bytes.Repeat([]byte("Grüße aus Köln, 東京 und 😀! "), 64)
	benchBinary  = bytes.Repeat([]byte{0x00, 0xFF, 0x41, 0xC3, 0xA9, 0x80}, 256)
)

func BenchmarkIsPrintableASCII(b *testing.B) {
	b.SetBytes(int64(len(benchASCII)))
	for i := 0; i < b.N; i++ {
		_ = IsPrintable(benchASCII)
	}
}

func BenchmarkIsPrintableUnicode(b *testing.B) {
	b.SetBytes(int64(len(benchUnicode)))
	for i := 0; i < b.N; i++ {
		_ = IsPrintable(benchUnicode)
	}
}

// Baseline for comparison; utf8.Valid accepts a larger set.
func BenchmarkUTF8ValidUnicode(b *testing.B) {
	b.SetBytes(int64(len(benchUnicode)))
	for i := 0; i < b.N; i++ {
		_ = utf8.Valid(benchUnicode)
	}
}

func BenchmarkEscapeUnicode(b *testing.B) {
	b.SetBytes(int64(len(benchUnicode)))
	for i := 0; i < b.N; i++ {
		_ = Escape(benchUnicode, '"')
	}
}

func BenchmarkEscapeBinary(b *testing.B) {
	b.SetBytes(int64(len(benchBinary)))
	for i := 0; i < b.N; i++ {
		_ = Escape(benchBinary, '"')
	}
}

func BenchmarkUnescape(b *testing.B) {
	escaped := Escape(benchBinary, '"')
	b.SetBytes(int64(len(escaped)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Unescape(escaped)
	}
}

func BenchmarkSplitLiteral(b *testing.B) {
	sep, _ := LiteralString(" ")
	for i := 0; i < b.N; i++ {
		_ = Split(benchASCII, sep, SplitOptions{Trim: true})
	}
}
