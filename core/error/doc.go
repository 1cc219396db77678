// Package error provides structured error handling for the textkit library.
//
// Package: error
// Title: textkit Error Handling Framework
// Description: This package implements a structured error type with error
//              codes, severity levels, and metadata. It provides the
//              foundation for consistent error classification across all
//              textkit packages and their callers.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with coded errors
//
// Features:
// - Error wrapping with additional metadata
// - Structured error codes for consistent classification
// - Error severity levels and categorization
// - JSON marshalling for structured logging
//
// Usage:
//   import "github.com/msto63/textkit/core/error"
//
//   // Create a new error with classification
//   err := error.New("repeat count is negative").
//     WithCode(error.CodeInvalidInput).
//     WithDetail("count", -3)
//
//   // Wrap an existing error with context
//   wrapped := error.Wrap(err, "failed to render banner").
//     WithOperation("banner.Render")
//
//   // Check error codes
//   if error.HasCode(err, error.CodeSizeOverflow) {
//     // Handle oversized results specifically
//   }
package error
