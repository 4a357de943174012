// File: numeric.go
// Title: Numeric Conversion
// Description: Overflow-checked decimal integer parsing and simple decimal
//              fraction parsing of String content.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-11
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-11 v0.1.0: Initial implementation

package dynstr

import (
	"math"

	mdwerror "github.com/msto63/dynstr/pkg/core/error"
)

// ParseInt reads a decimal int64. Leading spaces and one optional sign are
// skipped, digits are consumed up to the first non-digit. On overflow the
// value accumulated before the offending digit is returned together with a
// NUMBER_OVERFLOW error. Input without any digit is INVALID_NUMBER_FORMAT.
func (s String) ParseInt() (int64, error) {
	b := s.Bytes()
	i := 0
	for i < len(b) && b[i] == ' ' {
		i++
	}

	neg := false
	if i < len(b) && (b[i] == '-' || b[i] == '+') {
		neg = b[i] == '-'
		i++
	}

	// The magnitude of MinInt64 is one more than MaxInt64.
	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}

	var mag uint64
	digits := 0
	for ; i < len(b) && IsDigit(b[i]); i++ {
		d := uint64(b[i] - '0')
		if mag > (limit-d)/10 {
			return applySign(mag, neg), newError("ParseInt", mdwerror.CodeNumberOverflow).
				WithDetail("input", s.String()).
				WithDetail("position", i)
		}
		mag = mag*10 + d
		digits++
	}

	if digits == 0 {
		return 0, newError("ParseInt", mdwerror.CodeInvalidNumberFormat).WithDetail("input", s.String())
	}
	return applySign(mag, neg), nil
}

func applySign(mag uint64, neg bool) int64 {
	if neg {
		return int64(-mag)
	}
	return int64(mag)
}

// ParseFloat reads an optionally negative decimal of the form [-]digits[.digits].
// The fractional digits are evaluated from the last one back to the point.
func (s String) ParseFloat() (float64, error) {
	b := s.Bytes()
	invalid := func(pos int) (float64, error) {
		return 0, newError("ParseFloat", mdwerror.CodeInvalidNumberFormat).
			WithDetail("input", s.String()).
			WithDetail("position", pos)
	}

	i := 0
	neg := len(b) > 0 && b[0] == '-'
	if neg {
		i = 1
	}

	var whole float64
	digits := 0
	for ; i < len(b) && b[i] != '.'; i++ {
		if !IsDigit(b[i]) {
			return invalid(i)
		}
		whole = whole*10 + float64(b[i]-'0')
		digits++
	}

	var frac float64
	if i < len(b) {
		point := i
		for j := len(b) - 1; j > point; j-- {
			if !IsDigit(b[j]) {
				return invalid(j)
			}
			frac = (frac + float64(b[j]-'0')) / 10
			digits++
		}
	}

	if digits == 0 {
		return invalid(i)
	}
	if neg {
		return -(whole + frac), nil
	}
	return whole + frac, nil
}
