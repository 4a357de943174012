// File: view_test.go
// Title: Unit Tests for View
// Description: Window clamping, advancing and searching.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-11
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-11 v0.1.0: Initial test implementation

package dynstr

import "testing"

func TestView(t *testing.T) {
	s := mustString(t, "hello world")

	tests := []struct {
		name     string
		view     View
		expected string
	}{
		{"full", s.View(), "hello world"},
		{"slice", s.Slice(2, 3), "llo"},
		{"clamped length", s.Slice(6, 50), "world"},
		{"clamped start", s.Slice(50, 2), ""},
		{"negative start", s.Slice(-3, 2), "he"},
		{"advance", s.View().Advance(6), "world"},
		{"advance past end", s.View().Advance(99), ""},
		{"nested", s.Slice(1, 8).Sub(2, 3), "lo "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.view.String() != tt.expected || tt.view.Len() != len(tt.expected) {
				t.Errorf("view = %q (len %d); want %q", tt.view.String(), tt.view.Len(), tt.expected)
			}
		})
	}
}

func TestViewIndexAndOwned(t *testing.T) {
	s := mustString(t, "abcabc")
	v := s.View().Advance(1)

	if got := v.Index("abc"); got != 2 {
		t.Errorf("Index = %d; want 2", got)
	}
	if got := v.Index("zz"); got != NotFound {
		t.Errorf("Index of missing = %d", got)
	}

	owned, err := v.Owned()
	if err != nil {
		t.Fatal(err)
	}
	s.ToUpper()
	if owned.String() != "bcabc" || owned.IsBorrowed() {
		t.Errorf("Owned() = %q, borrowed=%v", owned.String(), owned.IsBorrowed())
	}

	if v.String() != "BCABC" {
		t.Errorf("view should track in-place writes, got %q", v.String())
	}
}

func TestViewOfEmpty(t *testing.T) {
	v := Empty().View()
	if v.Len() != 0 || v.Index("a") != NotFound || v.Index("") != 0 {
		t.Error("view of empty value misbehaves")
	}
}
