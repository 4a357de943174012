// File: io.go
// Title: Stream Boundary
// Description: Token scanning from a byte source and plain or debug output
//              to a byte sink.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-11
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-11 v0.1.0: Initial implementation

package dynstr

import (
	"errors"
	"fmt"
	"io"

	mdwerror "github.com/msto63/dynstr/pkg/core/error"
	"github.com/msto63/dynstr/pkg/core/log"
)

// Scan replaces the content of s with the next token from r. Leading spaces,
// tabs and newlines are skipped; the token ends at the next delimiter, which
// is consumed, or at end of input. On failure s is left empty.
func (s *String) Scan(r io.ByteReader) error {
	s.Destroy()

	var c byte
	for {
		var err error
		c, err = r.ReadByte()
		if errors.Is(err, io.EOF) {
			return newError("Scan", mdwerror.CodeUnexpectedEndOfInput)
		}
		if err != nil {
			return mdwerror.Wrap(err, "Scan").WithCode(mdwerror.CodeIOFailure)
		}
		if !isDelimiter(c) {
			break
		}
	}

	for {
		if err := s.PushBack(c); err != nil {
			s.Destroy()
			return err
		}
		var err error
		c, err = r.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			s.Destroy()
			return mdwerror.Wrap(err, "Scan").WithCode(mdwerror.CodeIOFailure)
		}
		if isDelimiter(c) {
			break
		}
	}

	if l := pkgLogger(); l.IsLevelEnabled(log.LevelTrace) {
		l.Trace("token scanned", log.Fields{"size": s.size, "cap": len(s.data)})
	}
	return nil
}

// ScanToken returns the next token from r as a new String.
func ScanToken(r io.ByteReader) (String, error) {
	var s String
	err := s.Scan(r)
	return s, err
}

// Print writes the content to w. A String without buffer writes nothing.
func (s String) Print(w io.Writer) error {
	if s.data == nil {
		return nil
	}
	if _, err := w.Write(s.Bytes()); err != nil {
		return mdwerror.Wrap(err, "Print").WithCode(mdwerror.CodeIOFailure)
	}
	return nil
}

// WriteTo implements io.WriterTo.
func (s String) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.Bytes())
	return int64(n), err
}

// DebugString renders s as [content, size = n, cap = n], or with NULL in
// place of the content when there is no buffer.
func (s String) DebugString() string {
	content := "NULL"
	if s.data != nil {
		content = s.String()
	}
	return fmt.Sprintf("[%s, size = %d, cap = %d]", content, s.size, len(s.data))
}

// Debug writes DebugString and a newline to w.
func (s String) Debug(w io.Writer) error {
	if _, err := io.WriteString(w, s.DebugString()+"\n"); err != nil {
		return mdwerror.Wrap(err, "Debug").WithCode(mdwerror.CodeIOFailure)
	}
	return nil
}
