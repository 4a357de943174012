// File: channel.go
// Title: Error Kinds and Error Channel
// Description: Error values returned by dynstr operations and the optional
//              Channel that records the last failure for callers that prefer
//              a check-after-call style.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-11
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-11 v0.1.0: Initial implementation

package dynstr

import (
	"sync"

	mdwerror "github.com/msto63/dynstr/pkg/core/error"
)

// Error kinds usable with errors.Is. Matching is by code, so any error
// returned by this package compares equal to the sentinel of its kind.
var (
	ErrAllocationFailure    = mdwerror.FromCode(mdwerror.CodeAllocationFailure)
	ErrBufferOverflow       = mdwerror.FromCode(mdwerror.CodeBufferOverflow)
	ErrEmptyStringPop       = mdwerror.FromCode(mdwerror.CodeEmptyStringPop)
	ErrUnexpectedEndOfInput = mdwerror.FromCode(mdwerror.CodeUnexpectedEndOfInput)
	ErrInvalidState         = mdwerror.FromCode(mdwerror.CodeInvalidState)
	ErrNullReference        = mdwerror.FromCode(mdwerror.CodeNullReference)
	ErrNumberOverflow       = mdwerror.FromCode(mdwerror.CodeNumberOverflow)
	ErrInvalidNumberFormat  = mdwerror.FromCode(mdwerror.CodeInvalidNumberFormat)
)

func newError(op string, code mdwerror.Code) *mdwerror.Error {
	return mdwerror.FromCode(code).WithOperation(op)
}

// Channel records the outcome of the last fallible call handed to Record.
// It is safe for concurrent use, but concurrent writers overwrite each other;
// give every goroutine that needs a reliable answer its own Channel.
type Channel struct {
	mu  sync.Mutex
	err error
}

// DefaultChannel is the process-wide channel.
var DefaultChannel = NewChannel()

// NewChannel returns a cleared channel.
func NewChannel() *Channel {
	return &Channel{}
}

// Record stores err (nil clears the channel) and returns it unchanged, so
// calls can be written as ch.Record(s.PopBack()).
func (c *Channel) Record(err error) error {
	c.mu.Lock()
	c.err = err
	c.mu.Unlock()
	return err
}

// Set marks the channel with a bare error kind.
func (c *Channel) Set(code mdwerror.Code) {
	if code == mdwerror.CodeNone {
		c.Clear()
		return
	}
	c.Record(mdwerror.FromCode(code))
}

// Clear resets the channel to the no-error state.
func (c *Channel) Clear() {
	c.Record(nil)
}

// IsError reports whether the channel holds a failure.
func (c *Channel) IsError() bool {
	return c.Err() != nil
}

// Err returns the recorded error or nil.
func (c *Channel) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Code returns the recorded error kind, CodeNone when clear.
func (c *Channel) Code() mdwerror.Code {
	return mdwerror.GetCode(c.Err())
}

// Message returns the message of the recorded error, "" when clear.
func (c *Channel) Message() string {
	if err := c.Err(); err != nil {
		return err.Error()
	}
	return ""
}
