// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package glhal implements an OpenGL 4.5 core-profile style command API on
// top of the gogpu/wgpu hardware abstraction layer.
//
// # Overview
//
// A [Context] is the single mutable state vector of the API. It owns one
// name table per object category (buffers, textures, samplers, vertex
// arrays, framebuffers, renderbuffers, programs and shaders, program
// pipelines, queries, transform feedbacks and syncs), every binding point
// and the fixed-function state. State mutators never touch the backend
// directly; they record what changed in a dirty set.
//
// Before each draw or dispatch the context reconciles the dirty state into
// backend objects: it fetches or builds a cached render or compute pipeline
// keyed by the state that determines pipeline identity, builds or reuses the
// bind groups for uniform and storage blocks, textures, image units and
// the default uniform block, and updates the dynamic encoder state (viewport, scissor,
// stencil reference and blend constant) on the open render pass.
//
// # Quick Start
//
//	ctx, err := glhal.NewNoopContext(glhal.WithDefaultFramebufferSize(640, 480))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer ctx.Close()
//
//	ctx.ClearColor(0, 0, 0, 1)
//	ctx.Clear(glenum.ColorBufferBit)
//	ctx.Finish()
//	if code := ctx.GetError(); code != glenum.NoError {
//		log.Fatal(code)
//	}
//
// # Errors
//
// API-level failures never surface as Go errors. They are recorded on the
// context error stack and read back with [Context.GetError], in the same
// way the C API reports them. Every recorded error is also delivered as a
// debug message when debug output is enabled. Go errors are returned only
// by constructors and configuration loading.
//
// # Threading
//
// A context is not safe for concurrent use. Callers serialize access to it,
// normally by using it from a single goroutine locked to its OS thread.
//
// # Coordinate System
//
// Images are stored bottom row first, so memory row 0 is window row 0 for
// uploads, ReadPixels, Viewport and Scissor. Shaders emit backend clip
// space; the shader translator is responsible for the Y flip and depth
// remapping.
//
// # Logging
//
// The package is silent by default. Install a logger with [SetLogger] to
// receive pipeline builds, cache misses and backend events.
package glhal

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
