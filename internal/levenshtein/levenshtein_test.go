package levenshtein

import (
	"testing"

	"github.com/msto63/dynstr/pkg/dynstr"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"hello world", "hello 112312ld", 6},
		{"ABC", "abc", 3},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			a := dynstr.MustFromString(tt.a)
			b := dynstr.MustFromString(tt.b)

			if got := Distance(a, b); got != tt.expected {
				t.Errorf("Distance(%q, %q) = %d; want %d", tt.a, tt.b, got, tt.expected)
			}
			if got := Distance(b, a); got != tt.expected {
				t.Errorf("Distance is not symmetric for %q, %q", tt.a, tt.b)
			}
		})
	}
}

func TestRecursiveAgreesWithDistance(t *testing.T) {
	words := []string{"", "a", "ab", "ba", "abc", "kitten", "sitting", "flaw", "lawn"}

	for _, x := range words {
		for _, y := range words {
			a := dynstr.MustFromString(x)
			b := dynstr.MustFromString(y)
			if r, d := Recursive(a, b), Distance(a, b); r != d {
				t.Errorf("Recursive(%q, %q) = %d; Distance = %d", x, y, r, d)
			}
		}
	}
}

func BenchmarkDistance(b *testing.B) {
	x := dynstr.MustFromString("the quick brown fox jumps over the lazy dog")
	y := dynstr.MustFromString("a quick brown dog jumps over the lazy fox")
	for i := 0; i < b.N; i++ {
		Distance(x, y)
	}
}
