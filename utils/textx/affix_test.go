// File: affix_test.go
// Title: Unit Tests for Common Prefix and Suffix
// Description: Tests for CommonPrefix and CommonSuffix covering plain ASCII,
//              multi-byte boundary protection, invalid byte sequences, and
//              the maximality property.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial test implementation

package textx

import (
	"strings"
	"testing"

	kiterror "github.com/msto63/textkit/core/error"
)

func TestCommonPrefix(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected string
	}{
		{"both empty", "", "", ""},
		{"one empty", "abc", "", ""},
		{"identical", "abc", "abc", "abc"},
		{"no common prefix", "abc", "xyz", ""},
		{"partial", "abcd", "abef", "ab"},
		{"one is prefix of other", "ab", "abcd", "ab"},
		{"unicode clean boundary", "résumé", "résister", "rés"},
		// "é" is C3 A9 and "è" is C3 A8: the shared lead byte alone must
		// not survive as a prefix
		{"bisected two-byte rune", "é", "è", ""},
		{"bisected two-byte rune after ascii", "aé", "aè", "a"},
		// "😀" and "😁" share their first three bytes
		{"bisected four-byte rune", "😀x", "😁y", ""},
		{"shared emoji kept whole", "😀a", "😀b", "😀"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CommonPrefix(&tt.a, &tt.b)
			if err != nil {
				t.Fatalf("CommonPrefix(%q, %q) returned error: %v", tt.a, tt.b, err)
			}
			if result != tt.expected {
				t.Errorf("CommonPrefix(%q, %q) = %q; want %q", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestCommonSuffix(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected string
	}{
		{"both empty", "", "", ""},
		{"one empty", "abc", "", ""},
		{"identical", "abc", "abc", "abc"},
		{"no common suffix", "abc", "xyz", ""},
		{"partial", "cdab", "efab", "ab"},
		{"one is suffix of other", "cd", "abcd", "cd"},
		{"unicode clean boundary", "grande", "ronde", "nde"},
		// "é" is C3 A9 and "Щ" is D0 A9: the shared trailing byte alone
		// must not survive as a suffix
		{"bisected two-byte rune", "é", "Щ", ""},
		{"shared accented suffix kept whole", "café", "consommé", "é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CommonSuffix(&tt.a, &tt.b)
			if err != nil {
				t.Fatalf("CommonSuffix(%q, %q) returned error: %v", tt.a, tt.b, err)
			}
			if result != tt.expected {
				t.Errorf("CommonSuffix(%q, %q) = %q; want %q", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestCommonAffixNilInput(t *testing.T) {
	s := "x"
	if _, err := CommonPrefix(nil, &s); !kiterror.HasCode(err, kiterror.CodeMissingInput) {
		t.Errorf("CommonPrefix(nil, x) error = %v; want MISSING_INPUT", err)
	}
	if _, err := CommonPrefix(&s, nil); !kiterror.HasCode(err, kiterror.CodeMissingInput) {
		t.Errorf("CommonPrefix(x, nil) error = %v; want MISSING_INPUT", err)
	}
	if _, err := CommonSuffix(nil, &s); !kiterror.HasCode(err, kiterror.CodeMissingInput) {
		t.Errorf("CommonSuffix(nil, x) error = %v; want MISSING_INPUT", err)
	}
	if _, err := CommonSuffix(&s, nil); !kiterror.HasCode(err, kiterror.CodeMissingInput) {
		t.Errorf("CommonSuffix(x, nil) error = %v; want MISSING_INPUT", err)
	}
}

func TestCommonPrefixInvalidBytes(t *testing.T) {
	// Cuts inside invalid sequences are allowed: there is no logical
	// character to protect
	a := "ab\xff\xfe"
	b := "ab\xff\x01"
	result, err := CommonPrefix(&a, &b)
	if err != nil {
		t.Fatalf("CommonPrefix returned error: %v", err)
	}
	if result != "ab\xff" {
		t.Errorf("CommonPrefix(%q, %q) = %q; want %q", a, b, result, "ab\xff")
	}
}

func TestCommonPrefixMaximality(t *testing.T) {
	pairs := [][2]string{
		{"abcd", "abef"},
		{"résumé", "résister"},
		{"😀a", "😀b"},
		{"same", "same"},
	}

	for _, p := range pairs {
		a, b := p[0], p[1]
		prefix, err := CommonPrefix(&a, &b)
		if err != nil {
			t.Fatalf("CommonPrefix(%q, %q) error: %v", a, b, err)
		}
		if !strings.HasPrefix(a, prefix) || !strings.HasPrefix(b, prefix) {
			t.Errorf("CommonPrefix(%q, %q) = %q is not a prefix of both", a, b, prefix)
		}

		suffix, err := CommonSuffix(&a, &b)
		if err != nil {
			t.Fatalf("CommonSuffix(%q, %q) error: %v", a, b, err)
		}
		if !strings.HasSuffix(a, suffix) || !strings.HasSuffix(b, suffix) {
			t.Errorf("CommonSuffix(%q, %q) = %q is not a suffix of both", a, b, suffix)
		}
	}
}
