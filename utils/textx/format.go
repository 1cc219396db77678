// File: format.go
// Title: Lenient Template Formatting
// Description: Exposes the fault-tolerant template formatter. The heavy
//              lifting lives in internal/lenient so the check package can
//              share the identical substitution rule for its own failure
//              messages without an import cycle.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package textx

import (
	kitlog "github.com/msto63/textkit/core/log"
	"github.com/msto63/textkit/internal/lenient"
)

// LenientFormat returns template with each occurrence of the exact
// two-character placeholder "%s" replaced by the corresponding argument,
// consuming arguments in order. Placeholders beyond the supplied
// arguments stay verbatim; surplus arguments are appended at the end,
// comma separated inside " [" and "]".
//
// A nil argument becomes "null". Arguments whose own string conversion
// panics are suppressed to a warning through the injected logger and
// rendered as "<type@addr threw panicType>". LenientFormat never panics
// and never returns an error, for any inputs.
//
//	LenientFormat("%s and %s", "a", "b")  // "a and b"
//	LenientFormat("%s", 1, 2, 3)          // "1 [2, 3]"
//	LenientFormat("no placeholders", "x") // "no placeholders [x]"
func LenientFormat(template string, args ...interface{}) string {
	return lenient.Format(template, args)
}

// SetLogger injects the logger that receives the warning record emitted
// when an argument's string conversion panics inside LenientFormat.
// Defaults to the package default logger of core/log. Safe for concurrent
// use; passing nil restores the default.
func SetLogger(l *kitlog.Logger) {
	lenient.SetLogger(l)
}
