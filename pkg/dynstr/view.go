// File: view.go
// Title: Read-Only Byte Windows
// Description: View is a bounded window into some String's buffer, used for
//              scanning without copying.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-11
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-11 v0.1.0: Initial implementation

package dynstr

// View is a read-only window over a buffer. It never outlives the
// String it was taken from in a meaningful way: after that String
// reallocates, the View still shows the old content.
type View struct {
	buf []byte
	off int
	n   int
}

// View returns a window over the full content.
func (s String) View() View {
	return View{buf: s.data, n: s.size}
}

// Slice returns a window over n bytes starting at pos, clamped to the content.
func (s String) Slice(pos, n int) View {
	return s.View().Sub(pos, n)
}

// Len returns the window length.
func (v View) Len() int { return v.n }

// Bytes returns the bytes in the window.
func (v View) Bytes() []byte {
	return v.buf[v.off : v.off+v.n : v.off+v.n]
}

func (v View) String() string {
	return string(v.Bytes())
}

// Sub returns the sub-window of n bytes at pos, clamped.
func (v View) Sub(pos, n int) View {
	pos = clamp(pos, 0, v.n)
	n = clamp(n, 0, v.n-pos)
	return View{buf: v.buf, off: v.off + pos, n: n}
}

// Advance drops the first k bytes of the window.
func (v View) Advance(k int) View {
	return v.Sub(k, v.n)
}

// Index returns the first position of pattern in the window, or NotFound.
func (v View) Index(pattern string) int {
	return findFirst(v.Bytes(), pattern)
}

// Owned copies the window into a new String.
func (v View) Owned() (String, error) {
	return fromSeq("View.Owned", v.Bytes())
}

func clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
