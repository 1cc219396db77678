// File: pad.go
// Title: String Padding Functions
// Description: Implements minimum-length padding at the start or end of a
//              string. Lengths are counted in runes so multi-byte UTF-8
//              characters count as one position. Includes an ASCII fast
//              path with exact allocation.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package textx

import (
	"strings"
	"unicode/utf8"

	"github.com/msto63/textkit/core/check"
)

// PadStart returns a string of at least minLength runes consisting of s
// prepended with as many copies of padChar as necessary. If s already has
// minLength runes or more it is returned unchanged, which also covers a
// zero or negative minLength. Returns a MISSING_INPUT error when s is
// absent, before any other computation.
func PadStart(s *string, minLength int, padChar rune) (string, error) {
	if err := check.NotNil(s, "string"); err != nil {
		return "", err
	}
	str := *s

	// ASCII fast path: byte length equals rune length, exact allocation
	if isASCII(str) && padChar >= 0 && padChar < utf8.RuneSelf {
		if len(str) >= minLength {
			return str, nil
		}
		result := make([]byte, minLength)
		padCount := minLength - len(str)
		for i := 0; i < padCount; i++ {
			result[i] = byte(padChar)
		}
		copy(result[padCount:], str)
		return string(result), nil
	}

	runeCount := utf8.RuneCountInString(str)
	if runeCount >= minLength {
		return str, nil
	}

	var builder strings.Builder
	padCount := minLength - runeCount
	builder.Grow(len(str) + padCount*padRuneLen(padChar))
	for i := 0; i < padCount; i++ {
		builder.WriteRune(padChar)
	}
	builder.WriteString(str)
	return builder.String(), nil
}

// PadEnd returns a string of at least minLength runes consisting of s
// appended with as many copies of padChar as necessary. Same absence and
// length rules as PadStart.
func PadEnd(s *string, minLength int, padChar rune) (string, error) {
	if err := check.NotNil(s, "string"); err != nil {
		return "", err
	}
	str := *s

	if isASCII(str) && padChar >= 0 && padChar < utf8.RuneSelf {
		if len(str) >= minLength {
			return str, nil
		}
		result := make([]byte, minLength)
		copy(result, str)
		for i := len(str); i < minLength; i++ {
			result[i] = byte(padChar)
		}
		return string(result), nil
	}

	runeCount := utf8.RuneCountInString(str)
	if runeCount >= minLength {
		return str, nil
	}

	var builder strings.Builder
	padCount := minLength - runeCount
	builder.Grow(len(str) + padCount*padRuneLen(padChar))
	builder.WriteString(str)
	for i := 0; i < padCount; i++ {
		builder.WriteRune(padChar)
	}
	return builder.String(), nil
}

// padRuneLen returns the encoded length of the pad rune; invalid runes
// are written by WriteRune as U+FFFD, which encodes to three bytes
func padRuneLen(r rune) int {
	if n := utf8.RuneLen(r); n > 0 {
		return n
	}
	return 3
}

// isASCII checks if a string contains only ASCII bytes
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 128 {
			return false
		}
	}
	return true
}
