// File: buffer_test.go
// Title: Unit Tests for the Buffer Core
// Description: Growth policy, reallocation counts, allocator failures,
//              bounded copies and trace logging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-02-11
// Modified: 2025-02-14
//
// Change History:
// - 2025-02-11 v0.1.0: Initial test implementation
// - 2025-02-14 v0.2.0: Oversized and overflowing size arguments

package dynstr

import (
	"bytes"
	"errors"
	"math"
	"math/bits"
	"strconv"
	"strings"
	"testing"

	mdwerror "github.com/msto63/dynstr/pkg/core/error"
	"github.com/msto63/dynstr/pkg/core/log"
)

type countingAllocator struct {
	sizes []int
}

func (a *countingAllocator) Allocate(n int) ([]byte, error) {
	a.sizes = append(a.sizes, n)
	return make([]byte, n), nil
}

type failingAllocator struct {
	err   error
	short bool
}

func (a failingAllocator) Allocate(n int) ([]byte, error) {
	if a.short {
		return make([]byte, n/2), nil
	}
	return nil, a.err
}

func useAllocator(t *testing.T, a Allocator) {
	t.Helper()
	restore := SetAllocator(a)
	t.Cleanup(restore)
}

func TestPushBackReallocations(t *testing.T) {
	for _, n := range []int{1, 10, 11, 100, 1000, 100000} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			counter := &countingAllocator{}
			useAllocator(t, counter)

			var s String
			for i := 0; i < n; i++ {
				if err := s.PushBack(byte('a' + i%26)); err != nil {
					t.Fatalf("PushBack #%d failed: %v", i, err)
				}
			}

			if s.Len() != n {
				t.Errorf("size = %d; want %d", s.Len(), n)
			}
			if maxAllocs := bits.Len(uint(n)) + 1; len(counter.sizes) > maxAllocs {
				t.Errorf("%d pushes caused %d reallocations; want at most %d", n, len(counter.sizes), maxAllocs)
			}
			if counter.sizes[0] != DefaultCapacity {
				t.Errorf("first allocation = %d; want %d", counter.sizes[0], DefaultCapacity)
			}
			for i := 1; i < len(counter.sizes); i++ {
				if counter.sizes[i] != 2*counter.sizes[i-1] {
					t.Errorf("allocation %d = %d; want double of %d", i, counter.sizes[i], counter.sizes[i-1])
				}
			}
		})
	}
}

func TestGrow(t *testing.T) {
	var s String
	if err := s.grow("test"); err != nil {
		t.Fatalf("grow failed: %v", err)
	}
	if s.Cap() != 1 {
		t.Errorf("grow from 0 gave capacity %d; want 1", s.Cap())
	}

	s = mustString(t, "abc")
	if err := s.grow("test"); err != nil {
		t.Fatalf("grow failed: %v", err)
	}
	if s.Cap() != 6 || s.String() != "abc" {
		t.Errorf("grow gave %s; want content kept and capacity 6", s.DebugString())
	}
}

func TestReserveAndShrink(t *testing.T) {
	s := mustString(t, "abc")
	if err := s.Reserve(100); err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}
	if s.Cap() < 100 || s.String() != "abc" {
		t.Errorf("Reserve(100) gave %s", s.DebugString())
	}

	before := s.Cap()
	if err := s.Reserve(10); err != nil || s.Cap() != before {
		t.Errorf("Reserve below capacity changed it to %d (%v)", s.Cap(), err)
	}

	if err := s.ShrinkToFit(); err != nil {
		t.Fatalf("ShrinkToFit failed: %v", err)
	}
	if s.Cap() != 3 || s.String() != "abc" {
		t.Errorf("ShrinkToFit gave %s", s.DebugString())
	}

	_ = s.Remove(0, 3)
	if err := s.ShrinkToFit(); err != nil || !s.IsNil() {
		t.Errorf("ShrinkToFit on empty content gave %s, %v", s.DebugString(), err)
	}
}

func TestHeapAllocatorLimit(t *testing.T) {
	useAllocator(t, HeapAllocator{Limit: 8})

	if _, err := WithCapacity(9); !errors.Is(err, ErrAllocationFailure) {
		t.Errorf("WithCapacity over limit error = %v; want ALLOCATION_FAILURE", err)
	}
	if _, err := FromString("123456789"); !errors.Is(err, ErrAllocationFailure) {
		t.Errorf("FromString over limit error = %v; want ALLOCATION_FAILURE", err)
	}

	var s String
	err := s.AppendString("0123456789")
	if !errors.Is(err, ErrAllocationFailure) {
		t.Fatalf("AppendString over limit error = %v", err)
	}
	if !s.IsNil() || s.Len() != 0 {
		t.Errorf("failed allocation left %s; want the empty representation", s.DebugString())
	}

	var e *mdwerror.Error
	if !errors.As(err, &e) {
		t.Fatalf("error %T is not *mdwerror.Error", err)
	}
	if limit, ok := e.Detail("limit"); !ok || limit != 8 {
		t.Errorf("limit detail = %v, %v", limit, ok)
	}
	if e.Severity() != mdwerror.SeverityHigh {
		t.Errorf("severity = %v; want high", e.Severity())
	}
}

func TestCapacityFor(t *testing.T) {
	tests := []struct {
		start, need int
		expected    int
	}{
		{0, 1, 1},
		{0, 5, 8},
		{10, 11, 20},
		{10, 10, 10},
		{3, math.MaxInt, math.MaxInt},
		{math.MaxInt/2 + 1, math.MaxInt, math.MaxInt},
		{1 << 40, 1<<40 + 1, 1 << 41},
	}

	for _, tt := range tests {
		if got := capacityFor(tt.start, tt.need); got != tt.expected {
			t.Errorf("capacityFor(%d, %d) = %d; want %d", tt.start, tt.need, got, tt.expected)
		}
	}

	if got := doubled(math.MaxInt/2 + 1); got != math.MaxInt {
		t.Errorf("doubled past half of MaxInt = %d; want MaxInt", got)
	}
}

func TestOversizedRequests(t *testing.T) {
	useAllocator(t, HeapAllocator{})

	sizes := []int{math.MaxInt, math.MaxInt/2 + 1, 1 << 40, MaxAllocation + 1}
	ops := []struct {
		name string
		run  func(s *String, n int) error
	}{
		{"WithCapacity", func(s *String, n int) error {
			_, err := WithCapacity(n)
			return err
		}},
		{"Reserve", func(s *String, n int) error { return s.Reserve(n) }},
		{"PadRight", func(s *String, n int) error { return s.PadRight(n, 'x') }},
		{"PadLeft", func(s *String, n int) error { return s.PadLeft(n, 'x') }},
		{"Random", func(s *String, n int) error {
			_, err := Random(n)
			return err
		}},
		{"ensureSpace", func(s *String, n int) error { return s.ensureSpace("test", n) }},
	}

	for _, op := range ops {
		for _, n := range sizes {
			t.Run(op.name+"/"+strconv.Itoa(n), func(t *testing.T) {
				s := mustString(t, "abc")
				err := op.run(&s, n)
				if !errors.Is(err, ErrAllocationFailure) {
					t.Fatalf("error = %v; want ALLOCATION_FAILURE", err)
				}
				if s.String() != "abc" || s.Cap() != 3 {
					t.Errorf("failed request changed the value to %s", s.DebugString())
				}
			})
		}
	}
}

func TestHeapAllocatorCeiling(t *testing.T) {
	tests := []struct {
		name  string
		alloc HeapAllocator
		limit int
	}{
		{"no limit", HeapAllocator{}, MaxAllocation},
		{"limit above ceiling", HeapAllocator{Limit: math.MaxInt}, MaxAllocation},
		{"limit below ceiling", HeapAllocator{Limit: 64}, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.alloc.Allocate(tt.limit + 1)
			var e *mdwerror.Error
			if !errors.As(err, &e) || e.Code() != mdwerror.CodeAllocationFailure {
				t.Fatalf("Allocate(%d) error = %v; want ALLOCATION_FAILURE", tt.limit+1, err)
			}
			if limit, _ := e.Detail("limit"); limit != tt.limit {
				t.Errorf("limit detail = %v; want %d", limit, tt.limit)
			}
		})
	}

	buf, err := HeapAllocator{}.Allocate(16)
	if err != nil || len(buf) != 16 {
		t.Errorf("Allocate(16) = %d bytes, %v", len(buf), err)
	}
}

func TestAllocatorFailures(t *testing.T) {
	tests := []struct {
		name      string
		allocator Allocator
	}{
		{"plain error", failingAllocator{err: errors.New("out of arena")}},
		{"short buffer", failingAllocator{short: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useAllocator(t, tt.allocator)

			s, err := FromString("abcdef")
			if got := mdwerror.GetCode(err); got != mdwerror.CodeAllocationFailure {
				t.Errorf("code = %v; want ALLOCATION_FAILURE", got)
			}
			if !s.IsNil() {
				t.Errorf("failed construction returned %s", s.DebugString())
			}
		})
	}
}

func TestSetAllocatorRestore(t *testing.T) {
	counter := &countingAllocator{}
	restore := SetAllocator(counter)
	if _, err := WithCapacity(4); err != nil {
		t.Fatal(err)
	}
	restore()
	if _, err := WithCapacity(4); err != nil {
		t.Fatal(err)
	}
	if len(counter.sizes) != 1 {
		t.Errorf("allocator saw %d requests after restore; want 1", len(counter.sizes))
	}

	restore = SetAllocator(nil)
	defer restore()
	if _, ok := currentAllocator().(HeapAllocator); !ok {
		t.Errorf("SetAllocator(nil) installed %T", currentAllocator())
	}
}

func TestBoundedCopy(t *testing.T) {
	s, _ := WithCapacity(4)

	if err := boundedCopy(&s, "abcdef", 4); err != nil {
		t.Fatalf("boundedCopy failed: %v", err)
	}
	s.size = 4
	if s.String() != "abcd" {
		t.Errorf("boundedCopy wrote %q", s.String())
	}

	if err := boundedCopy(&s, []byte("xy"), 4); err != nil {
		t.Fatalf("short source failed: %v", err)
	}
	if s.String() != "xycd" {
		t.Errorf("short source wrote %q", s.String())
	}

	if err := boundedCopy(&s, "abcdef", 5); !errors.Is(err, ErrBufferOverflow) {
		t.Errorf("copy past capacity error = %v; want BUFFER_OVERFLOW", err)
	}
}

func TestTraceLogging(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(log.NewWithConfig(log.Config{
		Level:  log.LevelTrace,
		Format: log.FormatText,
		Output: &buf,
	}))
	t.Cleanup(func() { SetLogger(nil) })

	var s String
	for i := 0; i < 11; i++ {
		_ = s.PushBack('x')
	}

	out := buf.String()
	if strings.Count(out, "buffer reallocated") != 2 {
		t.Errorf("expected two reallocation entries, got:\n%s", out)
	}
	if !strings.Contains(out, "new_cap=20") {
		t.Errorf("missing new capacity in:\n%s", out)
	}
}
