// File: utf16.go
// Title: UTF-16 Code Unit Operations
// Description: Implements the common prefix/suffix operations on UTF-16
//              code unit sequences, for interop with systems that index
//              text in UTF-16 units (editor protocols, JVM and JavaScript
//              boundaries). Here the multi-unit encoding of one character
//              is the surrogate pair, and the boundary rule protects it.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package textx

import (
	"unicode/utf16"
)

// UTF-16 surrogate code unit ranges
const (
	minHighSurrogate = 0xD800
	maxHighSurrogate = 0xDBFF
	minLowSurrogate  = 0xDC00
	maxLowSurrogate  = 0xDFFF
)

// IsHighSurrogate returns true if u is a UTF-16 high (leading) surrogate
// code unit.
func IsHighSurrogate(u uint16) bool {
	return u >= minHighSurrogate && u <= maxHighSurrogate
}

// IsLowSurrogate returns true if u is a UTF-16 low (trailing) surrogate
// code unit.
func IsLowSurrogate(u uint16) bool {
	return u >= minLowSurrogate && u <= maxLowSurrogate
}

// ValidSurrogatePairAt returns true if a valid surrogate pair starts at
// index in s: index must lie in [0, len(s)-2], s[index] must be a high
// surrogate and s[index+1] a low surrogate. Every out-of-range index,
// including negative ones, returns false.
func ValidSurrogatePairAt(s []uint16, index int) bool {
	return index >= 0 &&
		index <= len(s)-2 &&
		IsHighSurrogate(s[index]) &&
		IsLowSurrogate(s[index+1])
}

// CommonPrefixUTF16 returns the longest sequence of code units that both
// a and b start with. If the cut would land between the halves of a valid
// surrogate pair in either input, the pair is excluded. A nil slice is an
// empty sequence.
func CommonPrefixUTF16(a, b []uint16) []uint16 {
	maxPrefixLength := min(len(a), len(b))
	p := 0
	for p < maxPrefixLength && a[p] == b[p] {
		p++
	}
	if ValidSurrogatePairAt(a, p-1) || ValidSurrogatePairAt(b, p-1) {
		p--
	}
	return a[:p]
}

// CommonSuffixUTF16 returns the longest sequence of code units that both
// a and b end with, with the same surrogate pair protection applied at
// the suffix start.
func CommonSuffixUTF16(a, b []uint16) []uint16 {
	maxSuffixLength := min(len(a), len(b))
	s := 0
	for s < maxSuffixLength && a[len(a)-s-1] == b[len(b)-s-1] {
		s++
	}
	if ValidSurrogatePairAt(a, len(a)-s-1) || ValidSurrogatePairAt(b, len(b)-s-1) {
		s--
	}
	return a[len(a)-s:]
}

// EncodeUTF16 converts a string into its UTF-16 code unit sequence.
func EncodeUTF16(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// DecodeUTF16 converts a UTF-16 code unit sequence into a string.
// Unpaired surrogates become U+FFFD.
func DecodeUTF16(s []uint16) string {
	return string(utf16.Decode(s))
}
