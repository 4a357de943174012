// File: random.go
// Title: Random Fixtures
// Description: Random alphanumeric Strings for tests and demos. Not suitable
//              for anything security related.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-11
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-11 v0.1.0: Initial implementation

package dynstr

import "math/rand/v2"

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Random returns n bytes drawn from [A-Za-z0-9] using the global source.
func Random(n int) (String, error) {
	return RandomFrom(nil, n)
}

// RandomFrom is Random with an explicit source; nil uses the global one.
func RandomFrom(r *rand.Rand, n int) (String, error) {
	s, err := withCapacity("Random", n)
	if err != nil {
		return String{}, err
	}
	for i := 0; i < n; i++ {
		var k int
		if r != nil {
			k = r.IntN(len(alphanumeric))
		} else {
			k = rand.IntN(len(alphanumeric))
		}
		s.data[i] = alphanumeric[k]
	}
	s.size = n
	return s, nil
}

// NewRand returns a deterministic source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
