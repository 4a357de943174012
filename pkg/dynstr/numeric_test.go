// File: numeric_test.go
// Title: Unit Tests for Numeric Conversion
// Description: Integer parsing including both int64 extremes and overflow
//              reporting, and decimal fraction parsing.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-11
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-11 v0.1.0: Initial test implementation

package dynstr

import (
	"math"
	"testing"

	mdwerror "github.com/msto63/dynstr/pkg/core/error"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
		code     mdwerror.Code
	}{
		{"simple", "42", 42, mdwerror.CodeNone},
		{"leading spaces", "   42", 42, mdwerror.CodeNone},
		{"plus sign", "+7", 7, mdwerror.CodeNone},
		{"negative", "-15", -15, mdwerror.CodeNone},
		{"trailing garbage stops", "12abc", 12, mdwerror.CodeNone},
		{"trailing space stops", "12 34", 12, mdwerror.CodeNone},
		{"leading zeros", "0007", 7, mdwerror.CodeNone},
		{"max", "9223372036854775807", math.MaxInt64, mdwerror.CodeNone},
		{"min", "-9223372036854775808", math.MinInt64, mdwerror.CodeNone},
		{"overflow", "9223372036854775808", 922337203685477580, mdwerror.CodeNumberOverflow},
		{"negative overflow", "-9223372036854775809", -922337203685477580, mdwerror.CodeNumberOverflow},
		{"far overflow", "99999999999999999999", 9999999999999999999 / 10, mdwerror.CodeNumberOverflow},
		{"bare minus", "-", 0, mdwerror.CodeInvalidNumberFormat},
		{"bare plus", "+", 0, mdwerror.CodeInvalidNumberFormat},
		{"empty", "", 0, mdwerror.CodeInvalidNumberFormat},
		{"only spaces", "   ", 0, mdwerror.CodeInvalidNumberFormat},
		{"letters", "abc", 0, mdwerror.CodeInvalidNumberFormat},
		{"tab is not skipped", "\t5", 0, mdwerror.CodeInvalidNumberFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mustString(t, tt.input).ParseInt()
			if code := mdwerror.GetCode(err); code != tt.code {
				t.Errorf("ParseInt(%q) code = %v; want %v", tt.input, code, tt.code)
			}
			if got != tt.expected {
				t.Errorf("ParseInt(%q) = %d; want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		code     mdwerror.Code
	}{
		{"integer", "12", 12, mdwerror.CodeNone},
		{"fraction", "3.25", 3.25, mdwerror.CodeNone},
		{"negative", "-0.5", -0.5, mdwerror.CodeNone},
		{"no integer part", ".5", 0.5, mdwerror.CodeNone},
		{"no fraction digits", "1.", 1, mdwerror.CodeNone},
		{"negative integer", "-8", -8, mdwerror.CodeNone},
		{"letters", "1a", 0, mdwerror.CodeInvalidNumberFormat},
		{"two points", "1.2.3", 0, mdwerror.CodeInvalidNumberFormat},
		{"plus sign", "+1", 0, mdwerror.CodeInvalidNumberFormat},
		{"inner minus", "1-2", 0, mdwerror.CodeInvalidNumberFormat},
		{"bad fraction", "1.x", 0, mdwerror.CodeInvalidNumberFormat},
		{"empty", "", 0, mdwerror.CodeInvalidNumberFormat},
		{"bare minus", "-", 0, mdwerror.CodeInvalidNumberFormat},
		{"bare point", ".", 0, mdwerror.CodeInvalidNumberFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mustString(t, tt.input).ParseFloat()
			if code := mdwerror.GetCode(err); code != tt.code {
				t.Errorf("ParseFloat(%q) code = %v; want %v", tt.input, code, tt.code)
			}
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("ParseFloat(%q) = %g; want %g", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseFloatPrecision(t *testing.T) {
	got, err := mustString(t, "0.1").ParseFloat()
	if err != nil || got != 0.1 {
		t.Errorf("ParseFloat(0.1) = %v, %v", got, err)
	}
}
