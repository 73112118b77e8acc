// File: split_test.go
// Title: Unit Tests for Matching and Splitting
// Description: Tests literal and regular expression matchers together with
//              Split and its part limit and trim options.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial test implementation

package bytex

import (
	"reflect"
	"regexp"
	"testing"

	mdwerror "github.com/msto63/bytex/foundation/core/error"
)

func toStrings(parts [][]byte) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = string(p)
	}
	return out
}

func TestLiteral(t *testing.T) {
	t.Run("leftmost longest", func(t *testing.T) {
		m, err := LiteralString("ab", "abc", "b")
		if err != nil {
			t.Fatal(err)
		}
		got := Matches([]byte("xabcab b"), m)
		want := [][2]int{{1, 3}, {4, 2}, {7, 1}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Matches() = %v; want %v", got, want)
		}
	})

	t.Run("non overlapping", func(t *testing.T) {
		m, _ := LiteralString("aa")
		got := Matches([]byte("aaaaa"), m)
		want := [][2]int{{0, 2}, {2, 2}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Matches() = %v; want %v", got, want)
		}
	})

	t.Run("limit", func(t *testing.T) {
		m, _ := LiteralString(",")
		if got := m.FindAllIndex([]byte("a,b,c"), 1); len(got) != 1 {
			t.Errorf("FindAllIndex(n=1) returned %d matches", len(got))
		}
		if got := m.FindAllIndex([]byte("a,b,c"), 0); got != nil {
			t.Errorf("FindAllIndex(n=0) = %v", got)
		}
	})

	t.Run("patterns are copied", func(t *testing.T) {
		p := []byte(",")
		m, _ := Literal(p)
		p[0] = ';'
		if _, _, ok := Match([]byte("a,b"), m); !ok {
			t.Error("matcher must not alias caller's pattern")
		}
	})

	t.Run("invalid", func(t *testing.T) {
		if _, err := Literal(); !mdwerror.HasCode(err, mdwerror.CodeInvalidPattern) {
			t.Errorf("Literal() error = %v", err)
		}
		if _, err := LiteralString("a", ""); !mdwerror.HasCode(err, mdwerror.CodeInvalidPattern) {
			t.Errorf("Literal(empty) error = %v", err)
		}
	})
}

func TestCompile(t *testing.T) {
	m, err := Compile(`\d+`)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	start, length, ok := Match([]byte("abc 123 45"), m)
	if !ok || start != 4 || length != 3 {
		t.Errorf("Match() = %d, %d, %v", start, length, ok)
	}

	if _, err := Compile(`(unclosed`); !mdwerror.HasCode(err, mdwerror.CodeInvalidPattern) {
		t.Errorf("Compile(invalid) error = %v", err)
	}

	if _, _, ok := Match([]byte("abc"), m); ok {
		t.Error("Match() should report no match")
	}
	if Matches([]byte("abc"), m) != nil {
		t.Error("Matches() should be nil without matches")
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCompile should panic on an invalid expression")
		}
	}()
	MustCompile(`[`)
}

func TestSplit(t *testing.T) {
	comma, _ := LiteralString(",")
	spaces := regexp.MustCompile(`\s+`)
	empty := regexp.MustCompile(``)

	tests := []struct {
		name     string
		input    string
		matcher  Matcher
		opts     SplitOptions
		expected []string
	}{
		{"basic", "a,b,c", comma, SplitOptions{}, []string{"a", "b", "c"}},
		{"no match", "abc", comma, SplitOptions{}, []string{"abc"}},
		{"empty input", "", comma, SplitOptions{}, []string{""}},
		{"empty input trimmed", "", comma, SplitOptions{Trim: true}, []string{}},
		{"leading and trailing", ",a,,b,", comma, SplitOptions{}, []string{"", "a", "", "b", ""}},
		{"trim", ",a,,b,", comma, SplitOptions{Trim: true}, []string{"a", "b"}},
		{"only separators trimmed", ",,,", comma, SplitOptions{Trim: true}, []string{}},
		{"parts", "a,b,c,d", comma, SplitOptions{Parts: 2}, []string{"a", "b,c,d"}},
		{"parts one", "a,b", comma, SplitOptions{Parts: 1}, []string{"a,b"}},
		{"parts more than matches", "a,b", comma, SplitOptions{Parts: 5}, []string{"a", "b"}},
		{"parts with trim", " a  b c ", regexp.MustCompile(` `), SplitOptions{Parts: 2, Trim: true}, []string{"a", " b c "}},
		{"regex", "a  b\tc", spaces, SplitOptions{}, []string{"a", "b", "c"}},
		{"zero width", "abc", empty, SplitOptions{}, []string{"a", "b", "c"}},
		{"zero width trimmed", "abc", empty, SplitOptions{Trim: true}, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := toStrings(Split([]byte(tt.input), tt.matcher, tt.opts))
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Split(%q, %+v) = %q; want %q", tt.input, tt.opts, result, tt.expected)
			}
		})
	}
}

func TestSplitMatchesRegexpSplit(t *testing.T) {
	inputs := []string{"", "a", "a,b", ",a,", "a,,b,,", "xyz,,,"}
	re := regexp.MustCompile(`,`)
	for _, in := range inputs {
		for _, n := range []int{-1, 1, 2, 3} {
			want := re.Split(in, n)
			opts := SplitOptions{Parts: n}
			got := toStrings(Split([]byte(in), re, opts))
			if in == "" {
				// regexp.Split returns [""] for empty input as well
				want = []string{""}
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Split(%q, n=%d) = %q; regexp.Split = %q", in, n, got, want)
			}
		}
	}
}

func TestSplitString(t *testing.T) {
	got := toStrings(SplitString([]byte("k=v=w"), []byte("=")))
	if !reflect.DeepEqual(got, []string{"k", "v", "w"}) {
		t.Errorf("SplitString() = %q", got)
	}
	got = toStrings(SplitString([]byte("kv"), nil))
	if !reflect.DeepEqual(got, []string{"kv"}) {
		t.Errorf("SplitString(empty sep) = %q", got)
	}
}

func TestSplitPartsAlias(t *testing.T) {
	in := []byte("a,b")
	comma, _ := LiteralString(",")
	parts := Split(in, comma, SplitOptions{})
	parts[0] = append(parts[0], 'X')
	if string(in) != "a,b" {
		t.Errorf("append to a part modified the input: %q", in)
	}
}
