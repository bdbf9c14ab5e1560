// Package abi exposes a Context as flat functions taking raw API argument
// types, one function per entry point. Every function runs on the
// process-wide current context; calling one with no current context
// panics.
//
// Enumerants are converted with the glenum parsers; a token outside its
// group records INVALID_ENUM on the current context and the call does
// nothing else. Bitfields are passed through and validated by the context.
// Pointer arguments are read or written in place and never retained.
//
// The package performs no locking. Callers make a context current on one
// thread and call into it from that thread only; builds with the gldebug
// tag check this on every call.
package abi

import (
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/gogpu/glhal"
)

var current atomic.Pointer[glhal.Context]

// MakeCurrent makes c the current context. Nil releases the current
// context.
func MakeCurrent(c *glhal.Context) {
	current.Store(c)
	bindThread(c != nil)
}

// Current returns the current context, or nil.
func Current() *glhal.Context {
	return current.Load()
}

// CreateContext creates a context on the noop backend configured from the
// file named by $GLHAL_CONFIG.
func CreateContext() (*glhal.Context, error) {
	cfg, err := glhal.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	if level, ok, _ := cfg.Level(); ok {
		glhal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	}
	return glhal.NewNoopContext(glhal.WithConfig(cfg))
}

// DestroyContext closes c, releasing it first if it is current.
func DestroyContext(c *glhal.Context) error {
	if c == nil {
		return nil
	}
	if current.Load() == c {
		MakeCurrent(nil)
	}
	return c.Close()
}

// ctx returns the current context for an entry point.
func ctx() *glhal.Context {
	c := current.Load()
	if c == nil {
		panic("glhal: no current context")
	}
	checkThread()
	return c
}
