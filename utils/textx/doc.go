// File: doc.go
// Title: Package Documentation for textx
// Description: Package textx provides absence-aware text utilities for the
//              textkit library: null/empty normalization, padding,
//              overflow-safe repetition, boundary-safe common prefix and
//              suffix detection, and a lenient template formatter.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

// Package textx provides absence-aware text utilities for the textkit library.
//
// Package: textx
// Title: Text Utility Operations
// Description: This package provides a small set of stateless helper
//              functions for manipulating text: null/empty normalization,
//              left/right padding, string repetition, common prefix and
//              suffix detection, and fault-tolerant template substitution.
//              Every function is a pure transformation of its inputs; the
//              only side effect anywhere is a single warning-level log
//              record when an argument's string conversion panics inside
//              LenientFormat.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// # Absence
//
// Go strings are never nil, but several operations here must distinguish
// "no string was provided" from "the empty string was provided". The
// package represents absence as a nil *string; Ptr provides the
// present-value constructor:
//
//	textx.IsNullOrEmpty(nil)            // true
//	textx.IsNullOrEmpty(textx.Ptr(""))  // true
//	textx.NullToEmpty(nil)              // ""
//
// Operations that require a present input (PadStart, PadEnd, Repeat,
// CommonPrefix, CommonSuffix) return a MISSING_INPUT coded error when
// given nil, eagerly, before looking at any other argument.
//
// # Character boundaries
//
// CommonPrefix and CommonSuffix compare byte-wise but never return a
// result that ends (or starts) in the middle of a validly encoded
// multi-byte UTF-8 character. The parallel UTF-16 API (CommonPrefixUTF16,
// CommonSuffixUTF16, ValidSurrogatePairAt) applies the same rule to
// surrogate pairs for interop with UTF-16-indexed systems.
//
// # Lenient formatting
//
// LenientFormat recognizes only the exact two-character "%s" placeholder
// and is total: malformed templates, argument count mismatches, and
// argument values whose String/Error methods panic all produce a
// best-effort result instead of a panic or error.
//
// # Concurrency
//
// All functions are reentrant and safe for unsynchronized concurrent use.
// The logger injected via SetLogger is swapped atomically.
package textx
