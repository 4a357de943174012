// File: compare.go
// Title: Comparison and Search
// Description: Range comparison, equality, prefix and suffix tests and
//              naive substring search over String content.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-11
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-11 v0.1.0: Initial implementation

package dynstr

// NotFound is returned by the search functions when there is no match.
const NotFound = -1

// compareRange orders a[offA:offA+lenA] against b[offB:offB+lenB]. Ranges are
// clamped to the inputs. The first mismatching byte pair decides; when one
// range is a prefix of the other, the shorter one sorts first.
func compareRange[A, B byteSeq](a A, offA, lenA int, b B, offB, lenB int, caseSensitive bool) int {
	offA = clamp(offA, 0, len(a))
	lenA = clamp(lenA, 0, len(a)-offA)
	offB = clamp(offB, 0, len(b))
	lenB = clamp(lenB, 0, len(b)-offB)

	n := min(lenA, lenB)
	for i := 0; i < n; i++ {
		ca, cb := a[offA+i], b[offB+i]
		if !caseSensitive {
			ca, cb = ToLowerByte(ca), ToLowerByte(cb)
		}
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}

	switch {
	case lenA < lenB:
		return -1
	case lenA > lenB:
		return 1
	}
	return 0
}

// Compare orders s against other byte by byte. It returns -1, 0 or +1.
func (s String) Compare(other String) int {
	return compareRange(s.Bytes(), 0, s.size, other.Bytes(), 0, other.size, true)
}

// CompareIgnoreCase is Compare with ASCII case folding.
func (s String) CompareIgnoreCase(other String) int {
	return compareRange(s.Bytes(), 0, s.size, other.Bytes(), 0, other.size, false)
}

// Equals reports whether s and other hold the same bytes.
func (s String) Equals(other String) bool {
	return s.size == other.size && s.Compare(other) == 0
}

// EqualsIgnoreCase reports equality under ASCII case folding.
func (s String) EqualsIgnoreCase(other String) bool {
	return s.size == other.size && s.CompareIgnoreCase(other) == 0
}

// EqualsString reports whether the content equals str.
func (s String) EqualsString(str string) bool {
	return s.size == len(str) && compareRange(s.Bytes(), 0, s.size, str, 0, len(str), true) == 0
}

func hasPrefix[H, P byteSeq](h H, p P) bool {
	return len(h) >= len(p) && compareRange(h, 0, len(p), p, 0, len(p), true) == 0
}

func hasSuffix[H, P byteSeq](h H, p P) bool {
	return len(h) >= len(p) && compareRange(h, len(h)-len(p), len(p), p, 0, len(p), true) == 0
}

// HasPrefix reports whether s begins with prefix.
func (s String) HasPrefix(prefix String) bool { return hasPrefix(s.Bytes(), prefix.Bytes()) }

// HasPrefixString reports whether s begins with prefix.
func (s String) HasPrefixString(prefix string) bool { return hasPrefix(s.Bytes(), prefix) }

// HasSuffix reports whether s ends with suffix.
func (s String) HasSuffix(suffix String) bool { return hasSuffix(s.Bytes(), suffix.Bytes()) }

// HasSuffixString reports whether s ends with suffix.
func (s String) HasSuffixString(suffix string) bool { return hasSuffix(s.Bytes(), suffix) }

// findFirst scans left to right for the first full match of pattern.
// An empty pattern matches at 0.
func findFirst[H, P byteSeq](hay H, pattern P) int {
	if len(pattern) == 0 {
		return 0
	}
	if len(pattern) > len(hay) {
		return NotFound
	}
	for i := 0; i <= len(hay)-len(pattern); i++ {
		j := 0
		for j < len(pattern) && hay[i+j] == pattern[j] {
			j++
		}
		if j == len(pattern) {
			return i
		}
	}
	return NotFound
}

// FindFirst returns the index of the first occurrence of pattern, or NotFound.
func (s String) FindFirst(pattern String) int { return findFirst(s.Bytes(), pattern.Bytes()) }

// FindFirstString is FindFirst for a Go string pattern.
func (s String) FindFirstString(pattern string) int { return findFirst(s.Bytes(), pattern) }

// Contains reports whether pattern occurs anywhere in s, including at index 0.
func (s String) Contains(pattern String) bool { return s.FindFirst(pattern) >= 0 }

// ContainsString is Contains for a Go string pattern.
func (s String) ContainsString(pattern string) bool { return s.FindFirstString(pattern) >= 0 }
