// File: check.go
// Title: Precondition Checks
// Description: Implements the contract-checking facility used by textkit
//              operations to reject absent required inputs and invalid
//              argument values. Failure messages are built with the same
//              lenient substitution rule as the textx formatter, so a bad
//              message template can never mask the original violation.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package check

import (
	kiterror "github.com/msto63/textkit/core/error"
	"github.com/msto63/textkit/internal/lenient"
)

// Argument returns nil when condition holds, and an INVALID_INPUT error
// otherwise. The message template supports the "%s" placeholder with the
// lenient substitution rule.
func Argument(condition bool, template string, args ...interface{}) error {
	if condition {
		return nil
	}
	return kiterror.New(lenient.Format(template, args)).
		WithCode(kiterror.CodeInvalidInput)
}

// NotNil returns nil when v is present, and a MISSING_INPUT error naming
// the absent input otherwise. The name should identify the parameter from
// the caller's perspective.
func NotNil[T any](v *T, name string) error {
	if v != nil {
		return nil
	}
	return kiterror.New(lenient.Format("%s must not be nil", []interface{}{name})).
		WithCode(kiterror.CodeMissingInput).
		WithDetail("input", name)
}

// State returns nil when condition holds, and a VALIDATION_FAILED error
// otherwise. Used for invariants that depend on computed state rather
// than raw arguments.
func State(condition bool, template string, args ...interface{}) error {
	if condition {
		return nil
	}
	return kiterror.New(lenient.Format(template, args)).
		WithCode(kiterror.CodeValidationFailed)
}
