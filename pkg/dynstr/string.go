// File: string.go
// Title: Dynamic String Value
// Description: The String value type with construction, copying, release
//              and read-only access. A String owns a growable byte buffer
//              unless it is a borrowed alias produced by ShallowCopy.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-11
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-11 v0.1.0: Initial implementation

package dynstr

import (
	"bytes"

	mdwerror "github.com/msto63/dynstr/pkg/core/error"
)

// byteSeq is the set of inputs accepted wherever raw bytes or Go strings can
// be used interchangeably.
type byteSeq interface {
	~string | ~[]byte
}

// String is a mutable byte string. len(data) is the capacity, the first size
// bytes are the content. The zero value is an empty String without a buffer.
type String struct {
	data     []byte
	size     int
	borrowed bool
}

// Empty returns the zero String.
func Empty() String {
	return String{}
}

// WithCapacity returns an empty String with room for n bytes.
func WithCapacity(n int) (String, error) {
	return withCapacity("WithCapacity", n)
}

func withCapacity(op string, n int) (String, error) {
	buf, err := allocate(op, n)
	if err != nil {
		return String{}, err
	}
	return String{data: buf}, nil
}

func fromSeq[T byteSeq](op string, src T) (String, error) {
	s, err := withCapacity(op, len(src))
	if err != nil {
		return String{}, err
	}
	if err := boundedCopy(&s, src, len(src)); err != nil {
		return String{}, err
	}
	s.size = len(src)
	return s, nil
}

// FromBytes returns a String holding a copy of b. Capacity equals len(b).
func FromBytes(b []byte) (String, error) {
	return fromSeq("FromBytes", b)
}

// FromString returns a String holding a copy of str.
func FromString(str string) (String, error) {
	return fromSeq("FromString", str)
}

// FromCString copies b up to, not including, the first NUL byte.
func FromCString(b []byte) (String, error) {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return fromSeq("FromCString", b)
}

// MustFromString is like FromString but panics on allocation failure.
func MustFromString(str string) String {
	s, err := FromString(str)
	if err != nil {
		panic(err)
	}
	return s
}

// FromInt returns the decimal rendering of n, with a leading '-' when negative.
func FromInt(n int64) (String, error) {
	if n == 0 {
		return fromSeq("FromInt", "0")
	}

	var s String
	mag := uint64(n)
	neg := n < 0
	if neg {
		mag = -mag
	}
	for mag > 0 {
		if err := s.PushBack('0' + byte(mag%10)); err != nil {
			return String{}, err
		}
		mag /= 10
	}
	if neg {
		if err := s.PushBack('-'); err != nil {
			return String{}, err
		}
	}
	s.Reverse()
	return s, nil
}

// ShallowCopy returns an alias sharing s's buffer. Writes through either
// value within the shared content are visible to both. The alias refuses to
// reallocate; releasing it only detaches it.
func (s String) ShallowCopy() String {
	return String{data: s.data, size: s.size, borrowed: true}
}

// DeepCopy returns an owned String with its own buffer of the same capacity
// and content as s.
func (s String) DeepCopy() (String, error) {
	c, err := withCapacity("DeepCopy", len(s.data))
	if err != nil {
		return String{}, err
	}
	if err := boundedCopy(&c, s.data[:s.size], s.size); err != nil {
		return String{}, err
	}
	c.size = s.size
	return c, nil
}

// Destroy releases the buffer and resets s to the empty state. On a borrowed
// alias the shared buffer is left to its owner.
func (s *String) Destroy() {
	*s = String{}
}

// Len returns the number of content bytes.
func (s String) Len() int { return s.size }

// Cap returns the buffer capacity.
func (s String) Cap() int { return len(s.data) }

// IsEmpty reports whether the content is empty.
func (s String) IsEmpty() bool { return s.size == 0 }

// IsNil reports whether s has no buffer at all.
func (s String) IsNil() bool { return s.data == nil }

// IsBorrowed reports whether s is an alias created by ShallowCopy.
func (s String) IsBorrowed() bool { return s.borrowed }

// Bytes returns the content. The slice aliases the buffer and is only valid
// until the next operation that may reallocate.
func (s String) Bytes() []byte {
	return s.data[:s.size:s.size]
}

// String returns the content as a Go string.
func (s String) String() string {
	return string(s.data[:s.size])
}

// At returns the byte at index i.
func (s String) At(i int) (byte, error) {
	if i < 0 || i >= s.size {
		return 0, newError("At", mdwerror.CodeBufferOverflow).
			WithDetail("index", i).
			WithDetail("size", s.size)
	}
	return s.data[i], nil
}

// Front returns the first byte.
func (s String) Front() (byte, error) {
	if s.size == 0 {
		return 0, newError("Front", mdwerror.CodeEmptyStringPop)
	}
	return s.data[0], nil
}

// Back returns the last byte.
func (s String) Back() (byte, error) {
	if s.size == 0 {
		return 0, newError("Back", mdwerror.CodeEmptyStringPop)
	}
	return s.data[s.size-1], nil
}

// Swap exchanges the full states of a and b.
func Swap(a, b *String) {
	*a, *b = *b, *a
}
