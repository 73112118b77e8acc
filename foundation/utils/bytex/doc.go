// File: doc.go
// Title: Package Documentation for bytex
// Description: Package bytex provides text utilities that work on raw byte
//              sequences rather than decoded strings.
// Author: msto63
// Version: v0.1.1
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation
// - 2025-02-03 v0.1.1: Doc comment headings

// Package bytex provides byte-sequence text utilities for the bytex tool.
//
// It covers escaping and unescaping of quoted literals, substring
// extraction by offset or range, pattern-based splitting and replacement,
// repetition, and UTF-8 printable validation.
//
// # Overview
//
// The central piece is IsPrintable, a byte-level state machine that decides
// whether input is entirely valid, displayable UTF-8. It does not decode
// runes; each legal encoding shape is matched by its own range check, and
// surrogates, overlong forms, U+FFFE, U+FFFF and code points above
// U+10FFFF are rejected. The ASCII control characters \n \r \t \v \b \f
// and \e count as printable. Escape relies on exactly this boundary, so
// anything IsPrintable accepts is copied verbatim into an escaped literal.
//
// # Architecture
//
//   - Validation: IsPrintable, PrintablePrefix, IsPrintableLimit (printable.go)
//   - Escaping: Escape, Quote, Unescape with pluggable maps (escape.go)
//   - Offsets: Part, Slice, SplitAt (part.go)
//   - Matching: Matcher, Literal, Compile (match.go)
//   - Splitting and replacing: Split, Replace, ReplaceFunc (split.go, replace.go)
//   - Repetition: Repeat (repeat.go)
//
// Split and Replace accept any Matcher; *regexp.Regexp is one, Literal
// builds one from fixed alternatives.
//
// # Usage Examples
//
//	bytex.IsPrintable([]byte("caf\xc3\xa9"))      // true
//	bytex.IsPrintable([]byte{0xed, 0xa0, 0x80})   // false, surrogate
//
//	bytex.Escape([]byte("a\"b\x00"), '"')          // a\"b\x00
//
//	sep, _ := bytex.LiteralString(",")
//	bytex.Split([]byte("a,,b"), sep, bytex.SplitOptions{Trim: true})
//	// ["a" "b"]
//
// # Error Handling
//
// Operations that can fail return errors built by foundation/core/errors,
// carrying the module "bytex", the operation name and a code such as
// BYTEX_OUT_OF_RANGE or BYTEX_INVALID_ESCAPE. The validator itself never
// fails.
//
// # Thread Safety
//
// All functions are pure and may be called concurrently. Results of Part,
// Slice, SplitAt and Split alias their input; the others allocate.
package bytex
