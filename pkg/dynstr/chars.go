// File: chars.go
// Title: ASCII Byte Classification
// Description: Locale-independent classification and case mapping of single
//              bytes plus whole-content predicates built on them.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-11
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-11 v0.1.0: Initial implementation

package dynstr

import mdwerror "github.com/msto63/dynstr/pkg/core/error"

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool { return c >= '0' && c <= '9' }

// IsAlpha reports whether c is an ASCII letter.
func IsAlpha(c byte) bool { return IsLower(c) || IsUpper(c) }

// IsLower reports whether c is an ASCII lowercase letter.
func IsLower(c byte) bool { return c >= 'a' && c <= 'z' }

// IsUpper reports whether c is an ASCII uppercase letter.
func IsUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

// IsAlphanum reports whether c is an ASCII letter or digit.
func IsAlphanum(c byte) bool { return IsAlpha(c) || IsDigit(c) }

// ToLowerByte maps ASCII uppercase to lowercase and leaves other bytes alone.
func ToLowerByte(c byte) byte {
	if IsUpper(c) {
		return c + 'a' - 'A'
	}
	return c
}

// ToUpperByte maps ASCII lowercase to uppercase and leaves other bytes alone.
func ToUpperByte(c byte) byte {
	if IsLower(c) {
		return c - ('a' - 'A')
	}
	return c
}

// DigitValue returns the numeric value of an ASCII digit.
func DigitValue(c byte) (int, error) {
	if !IsDigit(c) {
		return 0, newError("DigitValue", mdwerror.CodeInvalidNumberFormat).WithDetail("byte", c)
	}
	return int(c - '0'), nil
}

func all(b []byte, pred func(byte) bool) bool {
	for _, c := range b {
		if !pred(c) {
			return false
		}
	}
	return true
}

// IsDigits reports whether every byte is a digit. An empty String yields true.
func (s String) IsDigits() bool { return all(s.Bytes(), IsDigit) }

// IsAlphas reports whether every byte is a letter. An empty String yields true.
func (s String) IsAlphas() bool { return all(s.Bytes(), IsAlpha) }

// IsAlphanums reports whether every byte is a letter or digit.
func (s String) IsAlphanums() bool { return all(s.Bytes(), IsAlphanum) }

// IsPalindrome reports whether the content reads the same in both directions,
// byte for byte and case-sensitively.
func (s String) IsPalindrome() bool {
	b := s.Bytes()
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		if b[i] != b[j] {
			return false
		}
	}
	return true
}

// Count returns the number of occurrences of c.
func (s String) Count(c byte) int {
	n := 0
	for _, b := range s.Bytes() {
		if b == c {
			n++
		}
	}
	return n
}
