// File: repeat.go
// Title: Overflow-Safe String Repetition
// Description: Implements string repetition with a deterministic overflow
//              check on the result size and doubling-copy concatenation
//              for logarithmic copy rounds.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package textx

import (
	"math/bits"

	"github.com/msto63/textkit/core/check"
	kiterror "github.com/msto63/textkit/core/error"
)

const maxInt = int(^uint(0) >> 1)

// Repeat returns count concatenated copies of s. Returns a MISSING_INPUT
// error when s is absent, an INVALID_INPUT error when count is negative,
// and a SIZE_OVERFLOW error when the result length len(s)*count cannot be
// represented as an int. The overflow check is performed on the full
// 128-bit product, so it never truncates or wraps.
func Repeat(s *string, count int) (string, error) {
	if err := check.NotNil(s, "string"); err != nil {
		return "", err
	}
	if count <= 1 {
		if err := check.Argument(count >= 0, "invalid count: %s", count); err != nil {
			return "", err
		}
		if count == 0 {
			return "", nil
		}
		return *s, nil
	}

	str := *s
	hi, lo := bits.Mul64(uint64(len(str)), uint64(count))
	if hi != 0 || lo > uint64(maxInt) {
		return "", kiterror.New("required result size too large").
			WithCode(kiterror.CodeSizeOverflow).
			WithOperation("textx.Repeat").
			WithDetail("length", len(str)).
			WithDetail("count", count)
	}
	size := int(lo)

	// Doubling copy: each round duplicates the already-built prefix
	result := make([]byte, size)
	n := copy(result, str)
	for n < size {
		n += copy(result[n:], result[:n])
	}
	return string(result), nil
}
