// File: affix.go
// Title: Common Prefix and Suffix Detection
// Description: Implements maximal common prefix and suffix computation on
//              UTF-8 strings. The comparison runs byte-wise; the boundary
//              is then pulled back so the result never cuts through the
//              middle of a validly encoded multi-byte character.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package textx

import (
	"unicode/utf8"

	"github.com/msto63/textkit/core/check"
)

// CommonPrefix returns the longest string that both a and b start with,
// taking care not to split a multi-byte character. Returns the empty
// string when there is no common prefix, and a MISSING_INPUT error when
// either input is absent.
func CommonPrefix(a, b *string) (string, error) {
	if err := check.NotNil(a, "a"); err != nil {
		return "", err
	}
	if err := check.NotNil(b, "b"); err != nil {
		return "", err
	}
	sa, sb := *a, *b

	maxPrefixLength := min(len(sa), len(sb))
	p := 0
	for p < maxPrefixLength && sa[p] == sb[p] {
		p++
	}

	// Never cut a valid multi-byte character in either input
	for p > 0 && (bisectsRune(sa, p) || bisectsRune(sb, p)) {
		p--
	}
	return sa[:p], nil
}

// CommonSuffix returns the longest string that both a and b end with,
// taking care not to split a multi-byte character. Returns the empty
// string when there is no common suffix, and a MISSING_INPUT error when
// either input is absent.
func CommonSuffix(a, b *string) (string, error) {
	if err := check.NotNil(a, "a"); err != nil {
		return "", err
	}
	if err := check.NotNil(b, "b"); err != nil {
		return "", err
	}
	sa, sb := *a, *b

	maxSuffixLength := min(len(sa), len(sb))
	s := 0
	for s < maxSuffixLength && sa[len(sa)-s-1] == sb[len(sb)-s-1] {
		s++
	}

	// The suffix must start on a character boundary of both inputs
	for s > 0 && (bisectsRune(sa, len(sa)-s) || bisectsRune(sb, len(sb)-s)) {
		s--
	}
	return sa[len(sa)-s:], nil
}

// bisectsRune reports whether cutting str at position p would split a
// validly encoded multi-byte rune. Cuts inside invalid byte sequences do
// not count: there is no logical character to protect there.
func bisectsRune(str string, p int) bool {
	if p <= 0 || p >= len(str) {
		return false
	}
	start := p - 1
	for start > 0 && p-start < utf8.UTFMax && !utf8.RuneStart(str[start]) {
		start--
	}
	r, size := utf8.DecodeRuneInString(str[start:])
	if r == utf8.RuneError && size <= 1 {
		return false
	}
	return start+size > p
}
