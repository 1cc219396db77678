// File: lenient.go
// Title: Lenient Template Substitution Engine
// Description: Implements the fault-tolerant placeholder substitution and the
//              panic-safe stringifier shared by the textx utilities and the
//              check preconditions. The engine never panics regardless of
//              template shape or argument behavior.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package lenient

import (
	"fmt"
	"reflect"
	"strings"
	"sync/atomic"

	kitlog "github.com/msto63/textkit/core/log"
)

// Placeholder is the exact two-character marker recognized by Format.
// No other format specifiers are interpreted.
const Placeholder = "%s"

// logger holds the injected logging sink for suppressed conversion
// failures. A nil value means the package default logger is used.
var logger atomic.Pointer[kitlog.Logger]

// SetLogger injects the logger used to report suppressed conversion
// failures. Safe for concurrent use; passing nil restores the default.
func SetLogger(l *kitlog.Logger) {
	logger.Store(l)
}

func activeLogger() *kitlog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return kitlog.GetDefault()
}

// Format substitutes the first min(#placeholders, #args) occurrences of
// the exact "%s" placeholder in template with the stringified args, in
// order. Placeholders beyond the supplied arguments are left verbatim.
// Surplus arguments are appended comma-separated in square brackets.
// Format never panics and never returns an error.
func Format(template string, args []interface{}) string {
	if len(args) == 0 {
		return template
	}

	converted := make([]string, len(args))
	for i, arg := range args {
		converted[i] = Stringify(arg)
	}

	var builder strings.Builder
	builder.Grow(len(template) + 16*len(converted))

	templateStart := 0
	i := 0
	for i < len(converted) {
		placeholderStart := strings.Index(template[templateStart:], Placeholder)
		if placeholderStart == -1 {
			break
		}
		placeholderStart += templateStart
		builder.WriteString(template[templateStart:placeholderStart])
		builder.WriteString(converted[i])
		i++
		templateStart = placeholderStart + len(Placeholder)
	}
	builder.WriteString(template[templateStart:])

	// Arguments without a matching placeholder are still worth seeing
	if i < len(converted) {
		builder.WriteString(" [")
		builder.WriteString(converted[i])
		i++
		for i < len(converted) {
			builder.WriteString(", ")
			builder.WriteString(converted[i])
			i++
		}
		builder.WriteByte(']')
	}

	return builder.String()
}

// Stringify converts a value to its textual form without ever panicking.
// A nil value becomes "null". If the value's own conversion panics, the
// panic is suppressed, a warning is emitted through the injected logger,
// and a bracketed identity representation is returned instead.
func Stringify(value interface{}) string {
	if value == nil {
		return "null"
	}

	s, recovered := tryString(value)
	if recovered == nil {
		return s
	}

	identity := identityString(value)

	// The recovered value may itself carry a panicking Error method, so it
	// never reaches the logger directly. fmt recovers panics raised inside
	// String/Error methods itself, so rendering it here cannot panic again.
	cause := fmt.Errorf("%v", recovered)
	activeLogger().WarnWithErr("panic during lenient format for "+identity, cause)

	return "<" + identity + " threw " + fmt.Sprintf("%T", recovered) + ">"
}

// tryString performs the value's standard textual conversion, reporting
// any panic through the second return value instead of propagating it.
func tryString(value interface{}) (s string, recovered interface{}) {
	defer func() {
		recovered = recover()
	}()

	switch v := value.(type) {
	case string:
		return v, nil
	case error:
		return v.Error(), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return fmt.Sprint(value), nil
	}
}

// identityString builds a type@address representation without invoking
// any method on the value. Pointer-like kinds use the address they refer
// to; other kinds fall back to the address of the boxed copy, which is
// stable only for the duration of the call. The exact representation is
// implementation-defined and must not be parsed.
func identityString(value interface{}) string {
	return fmt.Sprintf("%T@%x", value, identityHash(value))
}

func identityHash(value interface{}) uintptr {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map,
		reflect.Chan, reflect.Func, reflect.Slice:
		return rv.Pointer()
	default:
		return reflect.ValueOf(&value).Pointer()
	}
}
