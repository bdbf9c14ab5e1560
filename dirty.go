// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import "strings"

// dirty is the set of state regions changed since the reconciler last
// serviced them.
type dirty uint32

// State regions.
const (
	dirtyBlend dirty = 1 << iota
	dirtyDepthStencil
	dirtyRaster
	dirtyViewport
	dirtyScissor
	dirtyVertexLayout
	dirtyVertexBuffers
	dirtyIndexBuffer
	dirtyProgram
	dirtyUniforms
	dirtyTextures
	dirtyFramebuffer
	dirtyStorage
	dirtyStencilRef
	dirtyBlendConstant
	dirtyImages

	dirtyAll dirty = 1<<iota - 1
)

// dirtyPipeline is the set of regions feeding the render pipeline key.
const dirtyPipeline = dirtyBlend | dirtyDepthStencil | dirtyRaster |
	dirtyVertexLayout | dirtyProgram | dirtyFramebuffer

// dirtyResources is the set of regions bound through bind groups.
const dirtyResources = dirtyUniforms | dirtyTextures | dirtyStorage | dirtyImages

// dirtyPass is the set of regions that are encoder state and must be set
// again on every new render pass.
const dirtyPass = dirtyViewport | dirtyScissor | dirtyVertexBuffers |
	dirtyIndexBuffer | dirtyStencilRef | dirtyBlendConstant | dirtyResources

var dirtyNames = [...]string{
	"blend", "depth-stencil", "raster", "viewport", "scissor",
	"vertex-layout", "vertex-buffers", "index-buffer", "program",
	"uniforms", "textures", "framebuffer", "storage", "stencil-ref",
	"blend-constant", "images",
}

func (d dirty) has(o dirty) bool { return d&o != 0 }

func (d dirty) String() string {
	if d == 0 {
		return "clean"
	}
	var parts []string
	for i, n := range dirtyNames {
		if d&(1<<i) != 0 {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, "|")
}

// mark sets bits. Setters call it only when a value actually changed.
func (c *Context) mark(d dirty) { c.dirty |= d }
