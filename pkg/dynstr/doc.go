// File: doc.go
// Title: Package Documentation for dynstr
// Description: Package dynstr provides a growable byte string value with an
//              in-place operation set and explicit error results.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-11
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-11 v0.1.0: Initial package documentation

// Package dynstr provides String, a mutable byte string backed by a growable
// buffer, together with construction, slicing, search, in-place mutation and
// numeric conversion.
//
// Overview
//
// All operations are byte oriented. Case mapping and classification only
// consider ASCII letters and digits; there is no Unicode awareness.
//
// The zero String is empty and holds no buffer. The first append allocates
// DefaultCapacity bytes, later growth doubles the capacity:
//
//	var s dynstr.String
//	for _, c := range []byte("hello") {
//		if err := s.PushBack(c); err != nil {
//			return err
//		}
//	}
//	s.ToUpper()
//	fmt.Println(s.String()) // HELLO
//
// Ownership
//
// A String owns its buffer. ShallowCopy returns a borrowed alias sharing the
// buffer: in-place changes through either value are visible to both, but the
// alias refuses every operation that would reallocate and Destroy only
// detaches it. DeepCopy returns an independent owner. For read-only windows
// use View, which is what ReplaceAll scans with.
//
// Errors
//
// Fallible operations return an error next to a best-effort result. Errors are
// *mdwerror.Error values from pkg/core/error and can be classified with
// errors.Is against the Err* kinds of this package or with mdwerror.GetCode:
//
//	n, err := s.ParseInt()
//	if errors.Is(err, dynstr.ErrNumberOverflow) {
//		// n holds the digits read before the overflow
//	}
//
// Code that prefers checking a flag after the fact can route results through
// a Channel. DefaultChannel is shared by the process; goroutines that need a
// reliable answer use their own NewChannel.
//
// Allocation
//
// Buffers come from the process Allocator, by default a HeapAllocator. Giving
// it a Limit turns oversized requests into ALLOCATION_FAILURE errors:
//
//	restore := dynstr.SetAllocator(dynstr.HeapAllocator{Limit: 1 << 20})
//	defer restore()
//
// Buffer reallocations are logged at trace level through the logger set with
// SetLogger. The package is silent by default.
package dynstr
