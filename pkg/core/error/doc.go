// File: doc.go
// Title: Package Documentation for error
// Description: Package error provides the structured error type shared by the
//              dynstr library and its command line tooling.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-11
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2025-02-11 v0.2.0: Documented byte-string error kinds

// Package error provides structured errors with codes and severities.
//
// Every fallible operation of package dynstr returns an *Error whose Code names
// the failure kind (ALLOCATION_FAILURE, EMPTY_STRING_POP, NUMBER_OVERFLOW, ...).
// Callers classify errors without type assertions:
//
//	n, err := s.ParseInt()
//	if mdwerror.HasCode(err, mdwerror.CodeNumberOverflow) {
//	    // n holds the digits consumed before the overflow
//	}
//
// or with the standard library, because *Error implements Is by code:
//
//	if errors.Is(err, mdwerror.FromCode(mdwerror.CodeEmptyStringPop)) { ... }
//
// Severity is derived from the code and drives the log level chosen by
// log.Logger.LogError.
//
// The package is intentionally named error; import it under an alias:
//
//	import mdwerror "github.com/msto63/dynstr/pkg/core/error"
package error
