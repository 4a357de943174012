// File: buffer.go
// Title: Buffer Core
// Description: Raw allocation through a replaceable Allocator, geometric
//              growth and bounded byte copies for String.
// Author: msto63
// Version: v0.2.0
// Created: 2025-02-11
// Modified: 2025-02-14
//
// Change History:
// - 2025-02-11 v0.1.0: Initial implementation
// - 2025-02-14 v0.2.0: Allocation ceiling, overflow-safe growth through grow

package dynstr

import (
	"math"
	"sync"

	mdwerror "github.com/msto63/dynstr/pkg/core/error"
	"github.com/msto63/dynstr/pkg/core/log"
)

// DefaultCapacity is the capacity given to a buffer-less String on its first append.
const DefaultCapacity = 10

// MaxAllocation is the largest single request HeapAllocator serves.
const MaxAllocation = math.MaxInt32

// Allocator provides backing storage for String buffers.
// Allocate must return a slice of length n or an error.
type Allocator interface {
	Allocate(n int) ([]byte, error)
}

// HeapAllocator allocates from the Go heap. A positive Limit caps a single
// request; requests above Limit, or above MaxAllocation when Limit is zero or
// larger, fail with ALLOCATION_FAILURE.
type HeapAllocator struct {
	Limit int
}

func (a HeapAllocator) limit() int {
	if a.Limit > 0 && a.Limit < MaxAllocation {
		return a.Limit
	}
	return MaxAllocation
}

// Allocate implements Allocator.
func (a HeapAllocator) Allocate(n int) ([]byte, error) {
	if limit := a.limit(); n > limit {
		return nil, newError("Allocate", mdwerror.CodeAllocationFailure).
			WithDetail("requested", n).
			WithDetail("limit", limit)
	}
	return make([]byte, n), nil
}

var (
	allocMu   sync.RWMutex
	allocator Allocator = HeapAllocator{}

	loggerMu sync.RWMutex
	logger   = log.Discard()
)

// SetAllocator installs a as the process allocator and returns a function
// restoring the previous one. A nil a restores the default HeapAllocator.
func SetAllocator(a Allocator) (restore func()) {
	if a == nil {
		a = HeapAllocator{}
	}
	allocMu.Lock()
	prev := allocator
	allocator = a
	allocMu.Unlock()

	return func() {
		allocMu.Lock()
		allocator = prev
		allocMu.Unlock()
	}
}

func currentAllocator() Allocator {
	allocMu.RLock()
	defer allocMu.RUnlock()
	return allocator
}

// SetLogger installs the logger used for buffer tracing. nil silences it.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.Discard()
	}
	loggerMu.Lock()
	logger = l.WithField("component", "dynstr")
	loggerMu.Unlock()
}

func pkgLogger() *log.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// allocate requests n bytes. Zero yields no buffer.
func allocate(op string, n int) ([]byte, error) {
	if n < 0 {
		return nil, newError(op, mdwerror.CodeInvalidState).WithDetail("capacity", n)
	}
	if n == 0 {
		return nil, nil
	}

	buf, err := currentAllocator().Allocate(n)
	if err != nil {
		if !mdwerror.HasCode(err, mdwerror.CodeAllocationFailure) {
			return nil, mdwerror.Wrap(err, op).WithCode(mdwerror.CodeAllocationFailure)
		}
		return nil, mdwerror.Wrap(err, op)
	}
	if len(buf) < n {
		return nil, newError(op, mdwerror.CodeAllocationFailure).
			WithDetail("requested", n).
			WithDetail("returned", len(buf))
	}
	return buf[:n], nil
}

// reallocate installs a fresh buffer of newCap bytes holding the current content.
func (s *String) reallocate(op string, newCap int) error {
	if s.borrowed {
		return newError(op, mdwerror.CodeInvalidState).WithDetail("reason", "borrowed alias cannot reallocate")
	}
	if newCap < s.size {
		newCap = s.size
	}

	buf, err := allocate(op, newCap)
	if err != nil {
		return err
	}
	copy(buf, s.data[:s.size])

	oldCap := len(s.data)
	s.data = buf

	if l := pkgLogger(); l.IsLevelEnabled(log.LevelTrace) {
		l.Trace("buffer reallocated", log.Fields{
			"op":      op,
			"size":    s.size,
			"old_cap": oldCap,
			"new_cap": newCap,
		})
	}
	return nil
}

// doubled returns twice c, 1 for 0 and math.MaxInt once doubling overflows.
func doubled(c int) int {
	switch {
	case c == 0:
		return 1
	case c > math.MaxInt/2:
		return math.MaxInt
	}
	return c * 2
}

// capacityFor doubles c until it holds need bytes. Past math.MaxInt/2 it
// returns need itself.
func capacityFor(c, need int) int {
	for c < need {
		if c > math.MaxInt/2 {
			return need
		}
		c = doubled(c)
	}
	return c
}

// grow doubles the capacity, 0 becomes 1.
func (s *String) grow(op string) error {
	return s.reallocate(op, doubled(len(s.data)))
}

// growTo grows the buffer to capacityFor(start, need) in a single reallocation.
func (s *String) growTo(op string, start, need int) error {
	newCap := capacityFor(start, need)
	if newCap == doubled(len(s.data)) {
		return s.grow(op)
	}
	return s.reallocate(op, newCap)
}

// ensureSpace makes room for extra more bytes with a single reallocation.
// The new capacity is the current one doubled until it fits; a buffer-less
// value starts at DefaultCapacity.
func (s *String) ensureSpace(op string, extra int) error {
	if extra > math.MaxInt-s.size {
		return newError(op, mdwerror.CodeAllocationFailure).
			WithDetail("size", s.size).
			WithDetail("extra", extra)
	}
	need := s.size + extra
	if need <= len(s.data) {
		return nil
	}

	start := len(s.data)
	if s.data == nil {
		start = DefaultCapacity
	}
	return s.growTo(op, start, need)
}

// boundedCopy copies up to n bytes of src into the start of dest's buffer.
// dest must have capacity for n bytes.
func boundedCopy[T byteSeq](dest *String, src T, n int) error {
	if n < 0 || len(dest.data) < n {
		return newError("boundedCopy", mdwerror.CodeBufferOverflow).
			WithDetail("capacity", len(dest.data)).
			WithDetail("requested", n)
	}
	copy(dest.data[:n], src)
	return nil
}

// Reserve grows the buffer so that it holds at least n bytes.
func (s *String) Reserve(n int) error {
	if n <= len(s.data) {
		return nil
	}
	return s.growTo("Reserve", len(s.data), n)
}

// ShrinkToFit reallocates the buffer to exactly Len bytes.
func (s *String) ShrinkToFit() error {
	if s.size == len(s.data) {
		return nil
	}
	if s.size == 0 {
		if s.borrowed {
			return newError("ShrinkToFit", mdwerror.CodeInvalidState)
		}
		s.data = nil
		return nil
	}
	return s.reallocate("ShrinkToFit", s.size)
}
