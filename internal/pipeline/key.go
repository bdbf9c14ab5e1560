// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package pipeline holds the identity of backend pipeline objects and the
// cache that builds each of them at most once.
//
// A RenderKey is a plain comparable value: every field has a fixed size and
// irrelevant fields are zeroed by the caller before lookup, so two
// equivalent states produce bitwise-equal keys.
package pipeline

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Fixed capacities of a key.
const (
	MaxColorTargets  = 8
	MaxVertexAttribs = 16
	MaxVertexBuffers = 16
)

// ProgramID identifies one link of a program object. Relinking a program
// bumps Generation so stale pipelines are never matched.
type ProgramID struct {
	Name       uint32
	Generation uint32
}

// VertexAttrib is one enabled vertex attribute.
type VertexAttrib struct {
	Enabled  bool
	Format   gputypes.VertexFormat
	Offset   uint64
	Location uint32
	Buffer   uint32
}

// VertexBuffer is the layout of one vertex buffer slot.
type VertexBuffer struct {
	Used   bool
	Stride uint64
	Step   gputypes.VertexStepMode
}

// ColorTarget is the per-attachment output state.
type ColorTarget struct {
	Format       gputypes.TextureFormat
	WriteMask    gputypes.ColorWriteMask
	BlendEnabled bool
	Color        gputypes.BlendComponent
	Alpha        gputypes.BlendComponent
}

// DepthStencil is the depth/stencil state of a pipeline. Format is
// TextureFormatUndefined when the framebuffer has no depth/stencil aspect.
type DepthStencil struct {
	Format           gputypes.TextureFormat
	DepthWrite       bool
	DepthCompare     gputypes.CompareFunction
	StencilFront     hal.StencilFaceState
	StencilBack      hal.StencilFaceState
	StencilReadMask  uint32
	StencilWriteMask uint32
	DepthBias        int32
	SlopeScale       float32
	BiasClamp        float32
}

// RenderKey is the complete identity of a render pipeline.
type RenderKey struct {
	Vertex   ProgramID
	Fragment ProgramID

	Attribs [MaxVertexAttribs]VertexAttrib
	Buffers [MaxVertexBuffers]VertexBuffer

	Targets      [MaxColorTargets]ColorTarget
	DepthStencil DepthStencil

	Topology       gputypes.PrimitiveTopology
	HasStripIndex  bool
	StripIndex     gputypes.IndexFormat
	CullMode       gputypes.CullMode
	FrontFace      gputypes.FrontFace
	UnclippedDepth bool

	SampleCount     uint32
	AlphaToCoverage bool
}

// ComputeKey is the identity of a compute pipeline.
type ComputeKey struct {
	Program ProgramID
}

// Hash returns a stable 64-bit digest of the key, used for labels and logs.
func (k *RenderKey) Hash() uint64 {
	h := fnv.New64a()
	// All fields are fixed-size; Write cannot fail on a hash.
	_ = binary.Write(h, binary.LittleEndian, k)
	return h.Sum64()
}

// Hash returns a stable 64-bit digest of the key.
func (k ComputeKey) Hash() uint64 {
	h := fnv.New64a()
	_ = binary.Write(h, binary.LittleEndian, k)
	return h.Sum64()
}

// VertexLayouts expands the key's vertex input into backend layouts. Slots
// with no enabled attribute are emitted with VertexStepModeVertexBufferNotUsed
// so buffer slot numbers stay stable.
func (k *RenderKey) VertexLayouts() []gputypes.VertexBufferLayout {
	last := -1
	for i := range k.Buffers {
		if k.Buffers[i].Used {
			last = i
		}
	}
	if last < 0 {
		return nil
	}
	out := make([]gputypes.VertexBufferLayout, last+1)
	for i := range out {
		b := k.Buffers[i]
		if !b.Used {
			out[i] = gputypes.VertexBufferLayout{StepMode: gputypes.VertexStepModeVertexBufferNotUsed}
			continue
		}
		out[i] = gputypes.VertexBufferLayout{ArrayStride: b.Stride, StepMode: b.Step}
	}
	for _, a := range k.Attribs {
		if !a.Enabled || int(a.Buffer) > last {
			continue
		}
		out[a.Buffer].Attributes = append(out[a.Buffer].Attributes, gputypes.VertexAttribute{
			Format:         a.Format,
			Offset:         a.Offset,
			ShaderLocation: a.Location,
		})
	}
	return out
}

// ColorTargets expands the key's color outputs. Trailing undefined formats
// are trimmed; holes keep their slot with an undefined format.
func (k *RenderKey) ColorTargets() []gputypes.ColorTargetState {
	n := 0
	for i := range k.Targets {
		if k.Targets[i].Format != gputypes.TextureFormatUndefined {
			n = i + 1
		}
	}
	out := make([]gputypes.ColorTargetState, n)
	for i := range out {
		t := k.Targets[i]
		out[i] = gputypes.ColorTargetState{Format: t.Format, WriteMask: t.WriteMask}
		if t.BlendEnabled {
			out[i].Blend = &gputypes.BlendState{Color: t.Color, Alpha: t.Alpha}
		}
	}
	return out
}

// DepthStencilState returns the backend depth/stencil state, or nil when the
// framebuffer has no depth/stencil attachment.
func (k *RenderKey) DepthStencilState() *hal.DepthStencilState {
	ds := k.DepthStencil
	if ds.Format == gputypes.TextureFormatUndefined {
		return nil
	}
	return &hal.DepthStencilState{
		Format:              ds.Format,
		DepthWriteEnabled:   ds.DepthWrite,
		DepthCompare:        ds.DepthCompare,
		StencilFront:        ds.StencilFront,
		StencilBack:         ds.StencilBack,
		StencilReadMask:     ds.StencilReadMask,
		StencilWriteMask:    ds.StencilWriteMask,
		DepthBias:           ds.DepthBias,
		DepthBiasSlopeScale: ds.SlopeScale,
		DepthBiasClamp:      ds.BiasClamp,
	}
}

// PrimitiveState returns the backend primitive state.
func (k *RenderKey) PrimitiveState() gputypes.PrimitiveState {
	ps := gputypes.PrimitiveState{
		Topology:       k.Topology,
		FrontFace:      k.FrontFace,
		CullMode:       k.CullMode,
		UnclippedDepth: k.UnclippedDepth,
	}
	if k.HasStripIndex {
		f := k.StripIndex
		ps.StripIndexFormat = &f
	}
	return ps
}

// MultisampleState returns the backend multisample state.
func (k *RenderKey) MultisampleState() gputypes.MultisampleState {
	count := k.SampleCount
	if count == 0 {
		count = 1
	}
	return gputypes.MultisampleState{
		Count:                  count,
		Mask:                   ^uint64(0),
		AlphaToCoverageEnabled: k.AlphaToCoverage,
	}
}
