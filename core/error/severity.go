// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper
//              prioritization, monitoring, and alerting in applications
//              built on top of the textkit library.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: invalid user input, missing optional fields
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: oversized results, rejected operations
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: unreadable configuration, internal inconsistencies
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the system unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the appropriate severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh

	case CodeSizeOverflow, CodeValueOutOfRange:
		return SeverityMedium

	case CodeMissingInput, CodeInvalidInput, CodeNotFound,
		CodeValidationFailed, CodeInvalidFormat:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
