// File: textx.go
// Title: Null and Empty String Normalization
// Description: Implements the absence-aware normalization helpers. A nil
//              *string is the absence marker throughout the package and is
//              always distinct from a pointer to the empty string.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package textx

// NullToEmpty returns the referenced string if s is present, and the
// empty string if s is absent. Idempotent and total.
func NullToEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// EmptyToNull returns s unchanged if it is present and non-empty, and
// nil if it is absent or empty. Total.
func EmptyToNull(s *string) *string {
	if IsNullOrEmpty(s) {
		return nil
	}
	return s
}

// IsNullOrEmpty returns true if s is absent or has length zero.
func IsNullOrEmpty(s *string) bool {
	return s == nil || len(*s) == 0
}

// Ptr returns a pointer to s. Convenience for building present inputs
// to the absence-aware functions in this package.
func Ptr(s string) *string {
	return &s
}
