// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"errors"
	"fmt"

	"github.com/gogpu/glhal/glenum"
	"github.com/gogpu/wgpu/hal"
)

// Errors returned when a context cannot be created.
var (
	// ErrNilDevice is returned when NewContext receives a nil device.
	ErrNilDevice = errors.New("glhal: nil device")

	// ErrNilProvider is returned when NewContextFromProvider receives nil.
	ErrNilProvider = errors.New("glhal: nil device provider")

	// ErrUnsupportedProvider is returned when a provider's device or queue
	// is not a HAL device or queue.
	ErrUnsupportedProvider = errors.New("glhal: provider does not expose a HAL device and queue")
)

// errorStack is the FIFO of pending API errors. When full, new errors are
// dropped so the oldest error is always reported first.
type errorStack struct {
	codes []glenum.ErrorCode
	depth int
}

func (s *errorStack) push(code glenum.ErrorCode) bool {
	if len(s.codes) >= s.depth {
		return false
	}
	s.codes = append(s.codes, code)
	return true
}

func (s *errorStack) pop() glenum.ErrorCode {
	if len(s.codes) == 0 {
		return glenum.NoError
	}
	code := s.codes[0]
	s.codes = s.codes[1:]
	return code
}

func (s *errorStack) len() int { return len(s.codes) }

// RecordError pushes an API error on the error stack. It is the entry point
// for errors detected outside the context, such as an invalid enumerant
// rejected at the ABI edge.
func (c *Context) RecordError(code glenum.ErrorCode) {
	c.errorf(code, "%s", code)
}

// errorf records code and reports a formatted explanation through the
// debug output.
func (c *Context) errorf(code glenum.ErrorCode, format string, args ...any) {
	if code == glenum.NoError {
		return
	}
	if !c.errs.push(code) {
		Logger().Debug("glhal: error stack full, dropping", "code", code)
	}
	msg := fmt.Sprintf(format, args...)
	Logger().Debug("glhal: api error", "code", code, "msg", msg)
	c.debugMessage(glenum.DebugSourceAPI, glenum.DebugTypeError, uint32(code), glenum.DebugSeverityHigh, msg)
}

// GetError returns and clears the oldest pending error. A lost context with
// no pending error reports CONTEXT_LOST.
func (c *Context) GetError() glenum.ErrorCode {
	code := c.errs.pop()
	if code == glenum.NoError && c.lost {
		return glenum.ContextLost
	}
	return code
}

// live reports whether the context accepts commands. A lost context records
// CONTEXT_LOST for every call.
func (c *Context) live() bool {
	if c.lost {
		c.errs.push(glenum.ContextLost)
		return false
	}
	return true
}

// backendError converts a backend failure into an API error. Device loss
// moves the context into the lost state.
func (c *Context) backendError(op string, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, hal.ErrDeviceLost) {
		if !c.lost {
			Logger().Warn("glhal: device lost", "op", op, "err", err)
			c.errorf(glenum.ContextLost, "%s: %v", op, err)
			c.lost = true
		}
		return
	}
	c.errorf(glenum.OutOfMemory, "%s: %v", op, err)
}
