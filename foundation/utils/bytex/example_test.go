// File: example_test.go
// Title: Example Tests for bytex Package Documentation
// Description: Executable examples that serve as both documentation and tests.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial example implementation

package bytex_test

import (
	"fmt"

	"github.com/msto63/bytex/foundation/utils/bytex"
)

func ExampleIsPrintable() {
	fmt.Println(bytex.IsPrintable([]byte("hello\n")))
	fmt.Println(bytex.IsPrintable([]byte{0xE2, 0x82, 0xAC}))
	fmt.Println(bytex.IsPrintable([]byte{0xED, 0xA0, 0x80}))
	fmt.Println(bytex.IsPrintable([]byte{0x00}))
	// Output:
	// true
	// true
	// false
	// false
}

func ExamplePrintablePrefix() {
	fmt.Println(bytex.PrintablePrefix([]byte("abc\x00def")))
	// Output:
	// 3
}

func ExampleEscape() {
	fmt.Println(string(bytex.Escape([]byte("tab\there \"quoted\" \xff"), '"')))
	// Output:
	// tab\there \"quoted\" \xff
}

func ExampleUnescape() {
	out, err := bytex.Unescape([]byte(`line\né\x21`))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%q\n", out)
	// Output:
	// "line\né!"
}

func ExamplePart() {
	p, _ := bytex.Part([]byte("hello world"), 6, 5)
	fmt.Println(string(p))

	_, err := bytex.Part([]byte("hello"), 3, 10)
	fmt.Println(err != nil)
	// Output:
	// world
	// true
}

func ExampleSlice() {
	fmt.Println(string(bytex.Slice([]byte("abcdef"), -3, -1)))
	// Output:
	// de
}

func ExampleSplit() {
	sep, _ := bytex.LiteralString(",")
	for _, part := range bytex.Split([]byte("a,,b,c"), sep, bytex.SplitOptions{Trim: true}) {
		fmt.Println(string(part))
	}
	// Output:
	// a
	// b
	// c
}

func ExampleReplace() {
	digits := bytex.MustCompile(`\d+`)
	out := bytex.Replace([]byte("a1b22"), digits, []byte("()"), bytex.ReplaceOptions{
		Global:         true,
		InsertReplaced: []int{1},
	})
	fmt.Println(string(out))
	// Output:
	// a(1)b(22)
}

func ExampleRepeat() {
	out, _ := bytex.Repeat([]byte("ab"), 3)
	fmt.Println(string(out))
	// Output:
	// ababab
}
