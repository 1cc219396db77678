// Package check provides precondition checking for the textkit library.
//
// Package: check
// Title: textkit Precondition Checks
// Description: This package implements the contract-checking facility that
//              textkit operations use to reject absent required inputs and
//              invalid argument values eagerly, before any other
//              computation. Messages are rendered with the lenient
//              substitution rule, so building the failure message can never
//              itself fail.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation
//
// Usage:
//   import "github.com/msto63/textkit/core/check"
//
//   func Repeat(s *string, count int) (string, error) {
//     if err := check.NotNil(s, "string"); err != nil {
//       return "", err
//     }
//     if err := check.Argument(count >= 0, "invalid count: %s", count); err != nil {
//       return "", err
//     }
//     // ...
//   }
package check
