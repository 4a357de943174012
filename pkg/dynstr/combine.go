// File: combine.go
// Title: Substrings, Concatenation and Joining
// Description: Operations producing new owned values from existing ones.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-11
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-11 v0.1.0: Initial implementation

package dynstr

import mdwerror "github.com/msto63/dynstr/pkg/core/error"

// Substring returns a copy of n bytes starting at pos, cut short at the end
// of s. The result's capacity equals its length.
func (s String) Substring(pos, n int) (String, error) {
	if pos < 0 || n < 0 {
		return String{}, newError("Substring", mdwerror.CodeInvalidState).
			WithDetail("pos", pos).
			WithDetail("len", n)
	}
	v := s.Slice(pos, n)
	sub, err := withCapacity("Substring", v.Len())
	if err != nil {
		return String{}, err
	}
	if err := boundedCopy(&sub, v.Bytes(), v.Len()); err != nil {
		return String{}, err
	}
	sub.size = v.Len()
	return sub, nil
}

// Concat returns a new String holding a followed by b.
func Concat(a, b String) (String, error) {
	return ConcatAll(a, b)
}

// ConcatAll returns a new String holding all parts in order.
func ConcatAll(parts ...String) (String, error) {
	total := 0
	for _, p := range parts {
		total += p.size
	}
	out, err := withCapacity("ConcatAll", total)
	if err != nil {
		return String{}, err
	}
	for _, p := range parts {
		if err := appendSeq(&out, "ConcatAll", p.Bytes()); err != nil {
			return String{}, err
		}
	}
	return out, nil
}

// Join returns a, delim, b concatenated.
func Join(a, b String, delim string) (String, error) {
	return JoinAll([]String{a, b}, delim)
}

// JoinAll concatenates parts with delim between neighbours.
func JoinAll(parts []String, delim string) (String, error) {
	if len(parts) == 0 {
		return String{}, nil
	}
	total := len(delim) * (len(parts) - 1)
	for _, p := range parts {
		total += p.size
	}
	out, err := withCapacity("JoinAll", total)
	if err != nil {
		return String{}, err
	}
	for i, p := range parts {
		if i > 0 {
			if err := appendSeq(&out, "JoinAll", delim); err != nil {
				return String{}, err
			}
		}
		if err := appendSeq(&out, "JoinAll", p.Bytes()); err != nil {
			return String{}, err
		}
	}
	return out, nil
}

// CString returns a fresh NUL-terminated copy of the content.
func (s String) CString() []byte {
	out := make([]byte, s.size+1)
	copy(out, s.data[:s.size])
	return out
}
