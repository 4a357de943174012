// File: mutate.go
// Title: In-Place Mutators
// Description: Push and pop at both ends, trimming, padding, case mapping,
//              reversal, filtering and mapping, removal, replacement and
//              capitalization of String content.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-11
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-11 v0.1.0: Initial implementation

package dynstr

import (
	mdwerror "github.com/msto63/dynstr/pkg/core/error"
	"github.com/msto63/dynstr/pkg/core/log"
)

func appendSeq[T byteSeq](s *String, op string, src T) error {
	if len(src) == 0 {
		return nil
	}
	if err := s.ensureSpace(op, len(src)); err != nil {
		return err
	}
	s.size += copy(s.data[s.size:], src)
	return nil
}

// PushBack appends c.
func (s *String) PushBack(c byte) error {
	if s.size == len(s.data) {
		if err := s.ensureSpace("PushBack", 1); err != nil {
			return err
		}
	}
	s.data[s.size] = c
	s.size++
	return nil
}

// WriteByte appends c. It implements io.ByteWriter.
func (s *String) WriteByte(c byte) error {
	return s.PushBack(c)
}

// Write appends p. It implements io.Writer so a String can be the target of
// fmt.Fprintf.
func (s *String) Write(p []byte) (int, error) {
	if err := appendSeq(s, "Write", p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Append appends the content of other.
func (s *String) Append(other String) error {
	return appendSeq(s, "Append", other.Bytes())
}

// AppendString appends str.
func (s *String) AppendString(str string) error {
	return appendSeq(s, "AppendString", str)
}

// PopBack removes and returns the last byte.
func (s *String) PopBack() (byte, error) {
	if s.size == 0 {
		return 0, newError("PopBack", mdwerror.CodeEmptyStringPop)
	}
	s.size--
	return s.data[s.size], nil
}

// PushFront prepends c.
func (s *String) PushFront(c byte) error {
	if s.size == len(s.data) && s.borrowed {
		return newError("PushFront", mdwerror.CodeInvalidState).WithDetail("reason", "borrowed alias cannot reallocate")
	}
	s.Reverse()
	err := s.PushBack(c)
	s.Reverse()
	return err
}

// PopFront removes and returns the first byte.
func (s *String) PopFront() (byte, error) {
	if s.size == 0 {
		return 0, newError("PopFront", mdwerror.CodeEmptyStringPop)
	}
	c := s.data[0]
	copy(s.data, s.data[1:s.size])
	s.size--
	return c, nil
}

func isDelimiter(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n'
}

// TrimLeft strips leading spaces, tabs and newlines.
func (s *String) TrimLeft() {
	i := 0
	for i < s.size && isDelimiter(s.data[i]) {
		i++
	}
	if i > 0 {
		copy(s.data, s.data[i:s.size])
		s.size -= i
	}
}

// TrimRight strips trailing spaces, tabs and newlines.
func (s *String) TrimRight() {
	for s.size > 0 && isDelimiter(s.data[s.size-1]) {
		s.size--
	}
}

// Trim strips delimiters from both ends.
func (s *String) Trim() {
	s.TrimRight()
	s.TrimLeft()
}

// PadRight appends fill until the length reaches n. Longer content is left alone.
func (s *String) PadRight(n int, fill byte) error {
	if s.size >= n {
		return nil
	}
	if err := s.ensureSpace("PadRight", n-s.size); err != nil {
		return err
	}
	for s.size < n {
		s.data[s.size] = fill
		s.size++
	}
	return nil
}

// PadLeft prepends fill until the length reaches n. Longer content is left alone.
func (s *String) PadLeft(n int, fill byte) error {
	if s.size >= n {
		return nil
	}
	k := n - s.size
	if err := s.ensureSpace("PadLeft", k); err != nil {
		return err
	}
	copy(s.data[k:n], s.data[:s.size])
	for i := 0; i < k; i++ {
		s.data[i] = fill
	}
	s.size = n
	return nil
}

// ToUpper maps ASCII lowercase letters to uppercase.
func (s *String) ToUpper() {
	for i := 0; i < s.size; i++ {
		s.data[i] = ToUpperByte(s.data[i])
	}
}

// ToLower maps ASCII uppercase letters to lowercase.
func (s *String) ToLower() {
	for i := 0; i < s.size; i++ {
		s.data[i] = ToLowerByte(s.data[i])
	}
}

// Reverse reverses the content in place.
func (s *String) Reverse() {
	for i, j := 0, s.size-1; i < j; i, j = i+1, j-1 {
		s.data[i], s.data[j] = s.data[j], s.data[i]
	}
}

// Filter keeps the bytes for which keep returns true, preserving their order.
func (s *String) Filter(keep func(byte) bool) error {
	if keep == nil {
		return newError("Filter", mdwerror.CodeNullReference)
	}
	n := 0
	for i := 0; i < s.size; i++ {
		if keep(s.data[i]) {
			s.data[n] = s.data[i]
			n++
		}
	}
	s.size = n
	return nil
}

// RemoveByte deletes every occurrence of c.
func (s *String) RemoveByte(c byte) {
	_ = s.Filter(func(b byte) bool { return b != c })
}

// Map replaces every byte b with fn(b).
func (s *String) Map(fn func(byte) byte) error {
	if fn == nil {
		return newError("Map", mdwerror.CodeNullReference)
	}
	for i := 0; i < s.size; i++ {
		s.data[i] = fn(s.data[i])
	}
	return nil
}

// MapIndexed replaces the byte b at index i with fn(i, b).
func (s *String) MapIndexed(fn func(int, byte) byte) error {
	if fn == nil {
		return newError("MapIndexed", mdwerror.CodeNullReference)
	}
	for i := 0; i < s.size; i++ {
		s.data[i] = fn(i, s.data[i])
	}
	return nil
}

// Remove deletes n bytes starting at pos. The range is clamped to the
// content; pos at or past the end is a no-op.
func (s *String) Remove(pos, n int) error {
	if pos < 0 || n < 0 {
		return newError("Remove", mdwerror.CodeInvalidState).
			WithDetail("pos", pos).
			WithDetail("len", n)
	}
	if pos >= s.size || n == 0 {
		return nil
	}
	n = min(n, s.size-pos)
	copy(s.data[pos:], s.data[pos+n:s.size])
	s.size -= n
	return nil
}

// ReplaceAll replaces every non-overlapping occurrence of old with repl,
// scanning left to right. An empty old, or one that never occurs, leaves s
// untouched. The result is built in a fresh buffer that replaces the
// original only when construction succeeded.
func (s *String) ReplaceAll(old, repl string) error {
	if len(old) == 0 || findFirst(s.Bytes(), old) < 0 {
		return nil
	}
	if s.borrowed {
		return newError("ReplaceAll", mdwerror.CodeInvalidState).WithDetail("reason", "borrowed alias cannot reallocate")
	}

	var result String
	window := s.View()
	count := 0
	for window.Len() > 0 {
		pos := window.Index(old)
		if pos < 0 {
			break
		}
		if err := appendSeq(&result, "ReplaceAll", window.Sub(0, pos).Bytes()); err != nil {
			return err
		}
		if err := appendSeq(&result, "ReplaceAll", repl); err != nil {
			return err
		}
		window = window.Advance(pos + len(old))
		count++
	}
	if err := appendSeq(&result, "ReplaceAll", window.Bytes()); err != nil {
		return err
	}

	if l := pkgLogger(); l.IsLevelEnabled(log.LevelDebug) {
		l.Debug("replaced occurrences", log.Fields{
			"count":    count,
			"old_size": s.size,
			"new_size": result.size,
		})
	}
	*s = result
	return nil
}

func isWordSeparator(c byte) bool {
	return isDelimiter(c) || c == ',' || c == '.'
}

// Capitalize uppercases the first byte and every lowercase letter that
// directly follows a space, tab, newline, comma or period.
func (s *String) Capitalize() {
	for i := 0; i < s.size; i++ {
		if i == 0 || isWordSeparator(s.data[i-1]) {
			s.data[i] = ToUpperByte(s.data[i])
		}
	}
}
