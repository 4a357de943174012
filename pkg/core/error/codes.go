// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error kinds reported by the dynstr byte-string
//              library and its tooling. Every fallible operation returns an
//              error carrying exactly one of these codes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-11
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-02-11 v0.2.0: Replaced platform codes with byte-string error kinds

package error

// Code represents a structured error code for categorizing errors
type Code string

// Error kinds of the byte-string library
const (
	// CodeNone is the "no error" sentinel reported by a cleared channel
	CodeNone Code = "NO_ERROR"

	// Resource failures
	CodeAllocationFailure Code = "ALLOCATION_FAILURE"

	// Precondition violations
	CodeNullReference  Code = "NULL_REFERENCE"
	CodeInvalidState   Code = "INVALID_STATE"
	CodeEmptyStringPop Code = "EMPTY_STRING_POP"

	// Capacity and contract violations
	CodeBufferOverflow Code = "BUFFER_OVERFLOW"

	// Data format failures
	CodeNumberOverflow       Code = "NUMBER_OVERFLOW"
	CodeInvalidNumberFormat  Code = "INVALID_NUMBER_FORMAT"
	CodeUnexpectedEndOfInput Code = "UNEXPECTED_END_OF_INPUT"

	// Stream failures other than end of input
	CodeIOFailure Code = "IO_FAILURE"

	// Tooling
	CodeUnknown       Code = "UNKNOWN"
	CodeInvalidInput  Code = "INVALID_INPUT"
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
	CodeNotFound      Code = "NOT_FOUND"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeNone, CodeAllocationFailure,
		CodeNullReference, CodeInvalidState, CodeEmptyStringPop,
		CodeBufferOverflow,
		CodeNumberOverflow, CodeInvalidNumberFormat, CodeUnexpectedEndOfInput,
		CodeIOFailure,
		CodeUnknown, CodeInvalidInput, CodeConfigError, CodeInvalidConfig, CodeNotFound:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeNone:
		return "none"
	case CodeAllocationFailure:
		return "resource"
	case CodeNullReference, CodeInvalidState, CodeEmptyStringPop:
		return "precondition"
	case CodeBufferOverflow:
		return "contract"
	case CodeNumberOverflow, CodeInvalidNumberFormat, CodeUnexpectedEndOfInput:
		return "format"
	case CodeIOFailure:
		return "io"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// Message returns the human readable default message for the code
func (c Code) Message() string {
	switch c {
	case CodeNone:
		return ""
	case CodeAllocationFailure:
		return "unable to allocate memory"
	case CodeNullReference:
		return "string or its callback is nil"
	case CodeInvalidState:
		return "string is in a state that does not allow the operation"
	case CodeEmptyStringPop:
		return "pop from an empty string"
	case CodeBufferOverflow:
		return "buffer is too small for the requested range"
	case CodeNumberOverflow:
		return "number does not fit into 64 bits"
	case CodeInvalidNumberFormat:
		return "invalid number representation"
	case CodeUnexpectedEndOfInput:
		return "end of input reached before any data"
	case CodeIOFailure:
		return "stream operation failed"
	case CodeInvalidInput:
		return "invalid input"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration problem"
	case CodeNotFound:
		return "not found"
	default:
		return "unknown error"
	}
}
