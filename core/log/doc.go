// Package log provides structured logging for the textkit library.
//
// Package: log
// Title: textkit Structured Logging Framework
// Description: This package implements a structured logging system with
//              leveled output, contextual fields, multiple output formats,
//              and integration with the textkit error system. It is the
//              sink that the lenient formatter reports suppressed
//              conversion failures through.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with structured logging
//
// Features:
// - Structured logging with JSON, text, and console formats
// - Multiple log levels with filtering capabilities
// - Contextual logging with persistent custom fields
// - Integration with the textkit error system for automatic error logging
// - Immutable With* configuration producing logger copies
//
// Usage:
//   import kitlog "github.com/msto63/textkit/core/log"
//
//   // Create a logger with context
//   logger := kitlog.New().
//     WithLevel(kitlog.LevelInfo).
//     WithFormat(kitlog.FormatJSON).
//     WithField("component", "render")
//
//   // Log messages with different levels
//   logger.Info("template rendered", kitlog.Field("placeholders", 3))
//   logger.WarnWithErr("conversion failed", err)
package log
