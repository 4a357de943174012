// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so that tooling can pick a
//              log level and an exit behaviour for each error kind.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-11
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2025-02-11 v0.2.0: Severity mapping for byte-string error kinds

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers bad data handed in by a caller, e.g. a malformed number
	SeverityLow Severity = iota

	// SeverityMedium covers misuse of the API, e.g. popping an empty string
	SeverityMedium

	// SeverityHigh covers resource exhaustion
	SeverityHigh

	// SeverityCritical is reserved for tooling failures that end the process
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

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeConfigError, CodeInvalidConfig:
		return SeverityCritical

	case CodeAllocationFailure, CodeIOFailure:
		return SeverityHigh

	case CodeNullReference, CodeInvalidState, CodeEmptyStringPop, CodeBufferOverflow:
		return SeverityMedium

	case CodeNumberOverflow, CodeInvalidNumberFormat, CodeUnexpectedEndOfInput,
		CodeInvalidInput, CodeNotFound:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
