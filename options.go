// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glhal/internal/bindcache"
	"github.com/gogpu/glhal/internal/translator"
)

// Defaults of a context created without options.
const (
	DefaultWidth           = 640
	DefaultHeight          = 480
	DefaultErrorStackDepth = 16
)

// ContextOption configures a Context during creation.
// Use functional options to customize Context behavior.
//
// Example:
//
//	// Default 640x480 framebuffer, WGSL shader sources
//	ctx, err := glhal.NewContext(dev, queue)
//
//	// Window-sized framebuffer and a GLSL translator
//	ctx, err := glhal.NewContext(dev, queue,
//	    glhal.WithDefaultFramebufferSize(1280, 720),
//	    glhal.WithTranslator(glslToWGSL))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	width, height      int
	errorStackDepth    int
	bindGroupCacheSize int
	translator         translator.Translator
	translatorLibrary  string
	translatorSymbol   string
	debugCallback      DebugCallback
	debugOutput        bool
	info               gputypes.AdapterInfo
	limits             gputypes.Limits
	infoSet, limitsSet bool
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		width:              DefaultWidth,
		height:             DefaultHeight,
		errorStackDepth:    DefaultErrorStackDepth,
		bindGroupCacheSize: bindcache.DefaultSize,
		translator:         translator.Identity{}, // sources are WGSL unless overridden
		limits:             gputypes.DefaultLimits(),
	}
}

// WithDefaultFramebufferSize sets the size of the default framebuffer and
// the initial viewport and scissor box.
func WithDefaultFramebufferSize(width, height int) ContextOption {
	return func(o *contextOptions) {
		if width > 0 && height > 0 {
			o.width, o.height = width, height
		}
	}
}

// WithErrorStackDepth sets how many errors are kept before new ones are
// dropped.
func WithErrorStackDepth(n int) ContextOption {
	return func(o *contextOptions) {
		if n > 0 {
			o.errorStackDepth = n
		}
	}
}

// WithBindGroupCacheSize sets the number of bind groups kept alive.
func WithBindGroupCacheSize(n int) ContextOption {
	return func(o *contextOptions) {
		o.bindGroupCacheSize = n
	}
}

// WithTranslator sets the shader source translator. Sources passed to
// ShaderSource are run through it before compilation.
//
// Example:
//
//	lib, err := translator.Open("/usr/lib/libglsl2wgsl.so", "glsl_to_wgsl")
//	ctx, err := glhal.NewContext(dev, queue, glhal.WithTranslator(lib))
func WithTranslator(t translator.Translator) ContextOption {
	return func(o *contextOptions) {
		if t != nil {
			o.translator = t
		}
	}
}

// WithDebugCallback installs a debug message callback from creation, so
// messages produced while the context is set up are delivered too.
func WithDebugCallback(cb DebugCallback) ContextOption {
	return func(o *contextOptions) {
		o.debugCallback = cb
	}
}

// WithDebugOutput enables DEBUG_OUTPUT at creation.
func WithDebugOutput(enabled bool) ContextOption {
	return func(o *contextOptions) {
		o.debugOutput = enabled
	}
}

// WithConfig applies a file configuration. Options given after it
// override its values.
func WithConfig(cfg Config) ContextOption {
	return func(o *contextOptions) {
		if cfg.Width > 0 && cfg.Height > 0 {
			o.width, o.height = cfg.Width, cfg.Height
		}
		if cfg.ErrorStackDepth > 0 {
			o.errorStackDepth = cfg.ErrorStackDepth
		}
		if cfg.BindGroupCacheSize > 0 {
			o.bindGroupCacheSize = cfg.BindGroupCacheSize
		}
		o.debugOutput = o.debugOutput || cfg.DebugOutput
		o.translatorLibrary = cfg.TranslatorLibrary
		o.translatorSymbol = cfg.TranslatorSymbol
	}
}

// WithAdapterInfo sets the adapter description reported by GetString and
// AdapterInfo.
func WithAdapterInfo(info gputypes.AdapterInfo) ContextOption {
	return func(o *contextOptions) {
		o.info = info
		o.infoSet = true
	}
}

// WithLimits sets the backend limits the context validates against.
func WithLimits(limits gputypes.Limits) ContextOption {
	return func(o *contextOptions) {
		o.limits = limits
		o.limitsSet = true
	}
}
