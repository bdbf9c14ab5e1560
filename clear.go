// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/glhal/glenum"
	"github.com/gogpu/glhal/internal/pipeline"
	"github.com/gogpu/glhal/internal/shader"
)

// clearProgram identifies clear pipelines in the pipeline cache. No
// program object is ever named 0.
var clearProgram = pipeline.ProgramID{Name: 0, Generation: math.MaxUint32}

const clearVertexSource = `
struct VOut {
    @builtin(position) pos: vec4<f32>,
    @location(0) color: vec4<f32>,
}

@vertex
fn main(@location(0) pos: vec4<f32>, @location(1) color: vec4<f32>) -> VOut {
    var out: VOut;
    out.pos = pos;
    out.color = color;
    return out;
}
`

// clearPipeline holds the shader modules and layout of masked and
// scissored clears. Clears draw one triangle covering the target.
type clearPipeline struct {
	vertex    *shader.Module
	vertexMod hal.ShaderModule
	layout    hal.PipelineLayout
	fragments map[string]clearFragment
}

type clearFragment struct {
	module *shader.Module
	hal    hal.ShaderModule
}

func (p *clearPipeline) destroy(dev hal.Device) {
	for _, f := range p.fragments {
		dev.DestroyShaderModule(f.hal)
	}
	if p.vertexMod != nil {
		dev.DestroyShaderModule(p.vertexMod)
	}
	if p.layout != nil {
		dev.DestroyPipelineLayout(p.layout)
	}
}

// clearResources returns the clear pipeline resources, creating them on
// first use.
func (c *Context) clearResources() (*clearPipeline, bool) {
	if c.clearPipe != nil {
		return c.clearPipe, true
	}
	vs, err := shader.Compile(clearVertexSource, shader.StageVertex, shader.DefaultOptions())
	if err != nil {
		c.backendError("Clear", fmt.Errorf("clear vertex shader: %w", err))
		return nil, false
	}
	mod, err := c.dev.HAL.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "glhal clear vertex",
		Source: hal.ShaderSource{WGSL: vs.Source, SPIRV: vs.SPIRV},
	})
	if err != nil {
		c.backendError("Clear", err)
		return nil, false
	}
	layout, err := c.dev.HAL.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{Label: "glhal clear"})
	if err != nil {
		c.dev.HAL.DestroyShaderModule(mod)
		c.backendError("Clear", err)
		return nil, false
	}
	c.clearPipe = &clearPipeline{
		vertex: vs, vertexMod: mod, layout: layout,
		fragments: make(map[string]clearFragment),
	}
	return c.clearPipe, true
}

// clearFragmentSource writes the clear color to every color target of the
// key, converted to the component type of its format.
func clearFragmentSource(targets []gputypes.ColorTargetState) (source, signature string) {
	var fields, body, sig strings.Builder
	for i, t := range targets {
		if t.Format == gputypes.TextureFormatUndefined {
			sig.WriteByte('-')
			continue
		}
		typ := "f32"
		switch sampleTypeOf(t.Format) {
		case gputypes.TextureSampleTypeSint:
			typ = "i32"
		case gputypes.TextureSampleTypeUint:
			typ = "u32"
		}
		sig.WriteByte(typ[0])
		fmt.Fprintf(&fields, "    @location(%d) o%d: vec4<%s>,\n", i, i, typ)
		if typ == "f32" {
			fmt.Fprintf(&body, "    out.o%d = color;\n", i)
		} else {
			fmt.Fprintf(&body, "    out.o%d = vec4<%s>(color);\n", i, typ)
		}
	}
	source = fmt.Sprintf(`
struct FOut {
%s}

@fragment
fn main(@location(0) color: vec4<f32>) -> FOut {
    var out: FOut;
%s    return out;
}
`, fields.String(), body.String())
	return source, sig.String()
}

// clearFragment returns the clear fragment stage for targets.
func (c *Context) clearFragment(cp *clearPipeline, targets []gputypes.ColorTargetState) (clearFragment, bool) {
	source, sig := clearFragmentSource(targets)
	if f, ok := cp.fragments[sig]; ok {
		return f, true
	}
	fs, err := shader.Compile(source, shader.StageFragment, shader.DefaultOptions())
	if err != nil {
		c.backendError("Clear", fmt.Errorf("clear fragment shader %s: %w", sig, err))
		return clearFragment{}, false
	}
	mod, err := c.dev.HAL.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "glhal clear fragment " + sig,
		Source: hal.ShaderSource{WGSL: fs.Source, SPIRV: fs.SPIRV},
	})
	if err != nil {
		c.backendError("Clear", err)
		return clearFragment{}, false
	}
	f := clearFragment{module: fs, hal: mod}
	cp.fragments[sig] = f
	return f, true
}

// clearKey is the pipeline key of a clear of t.
func clearKey(t *target, colors [MaxDrawBuffers]gputypes.ColorWriteMask, depth bool, stencil uint32) pipeline.RenderKey {
	key := pipeline.RenderKey{
		Vertex:      clearProgram,
		Fragment:    clearProgram,
		Topology:    gputypes.PrimitiveTopologyTriangleList,
		SampleCount: t.samples,
	}
	key.Attribs[0] = pipeline.VertexAttrib{Enabled: true, Format: gputypes.VertexFormatFloat32x4, Location: 0}
	key.Attribs[1] = pipeline.VertexAttrib{Enabled: true, Format: gputypes.VertexFormatFloat32x4, Offset: 16, Location: 1}
	key.Buffers[0] = pipeline.VertexBuffer{Used: true, Stride: 32, Step: gputypes.VertexStepModeVertex}
	for i, s := range t.colors {
		if s != nil {
			key.Targets[i] = pipeline.ColorTarget{Format: s.tex.info.backend, WriteMask: colors[i]}
		}
	}
	if d := t.depth; d != nil {
		keep := hal.StencilFaceState{
			Compare: gputypes.CompareFunctionAlways,
			FailOp:  hal.StencilOperationKeep, DepthFailOp: hal.StencilOperationKeep, PassOp: hal.StencilOperationKeep,
		}
		ds := pipeline.DepthStencil{
			Format:       d.tex.info.backend,
			DepthWrite:   depth,
			DepthCompare: gputypes.CompareFunctionAlways,
			StencilFront: keep,
			StencilBack:  keep,
		}
		if stencil != 0 {
			replace := keep
			replace.PassOp = hal.StencilOperationReplace
			ds.StencilFront, ds.StencilBack = replace, replace
			ds.StencilReadMask, ds.StencilWriteMask = 0xFF, stencil
		}
		key.DepthStencil = ds
	}
	return key
}

// clearDraw clears the parts of t that load operations cannot: masked
// color channels, masked stencil bits and scissored regions. The pass on
// t must be open.
func (c *Context) clearDraw(t *target, colors [MaxDrawBuffers]gputypes.ColorWriteMask, depth bool, stencil uint32, rect [4]uint32) bool {
	cp, ok := c.clearResources()
	if !ok {
		return false
	}
	key := clearKey(t, colors, depth, stencil)
	p, err := c.pipelines.GetOrCreateRender(&key, func(k *pipeline.RenderKey) (hal.RenderPipeline, error) {
		targets := k.ColorTargets()
		desc := &hal.RenderPipelineDescriptor{
			Label:  fmt.Sprintf("glhal clear %016x", k.Hash()),
			Layout: cp.layout,
			Vertex: hal.VertexState{
				Module:     cp.vertexMod,
				EntryPoint: cp.vertex.EntryPoint,
				Buffers:    k.VertexLayouts(),
			},
			Primitive:    k.PrimitiveState(),
			DepthStencil: k.DepthStencilState(),
			Multisample:  k.MultisampleState(),
		}
		if len(targets) > 0 {
			f, ok := c.clearFragment(cp, targets)
			if !ok {
				return nil, errRejected
			}
			desc.Fragment = &hal.FragmentState{Module: f.hal, EntryPoint: f.module.EntryPoint, Targets: targets}
		}
		return c.dev.HAL.CreateRenderPipeline(desc)
	})
	if err != nil {
		if err != errRejected {
			c.backendError("Clear", err)
		}
		return false
	}

	s := &c.state
	z := min(max(s.clearDepth, 0), 1)
	cc := s.clearColor
	vertex := func(x, y float32) []float32 { return []float32{x, y, z, 1, cc[0], cc[1], cc[2], cc[3]} }
	var data []byte
	for _, v := range [][]float32{vertex(-1, -1), vertex(3, -1), vertex(-1, 3)} {
		for _, f := range v {
			data = append(data, 0, 0, 0, 0)
			putUint32(data[len(data)-4:], math.Float32bits(f))
		}
	}
	chunk, offset, ok := c.upload(data, 4)
	if !ok {
		return false
	}

	pass := c.enc.render
	pass.SetPipeline(p)
	pass.SetViewport(0, 0, float32(t.width), float32(t.height), 0, 1)
	pass.SetScissorRect(rect[0], rect[1], rect[2], rect[3])
	if stencil != 0 {
		pass.SetStencilReference(uint32(s.clearStencil) & 0xFF)
	}
	pass.SetVertexBuffer(0, chunk.buf, offset)
	pass.Draw(3, 1, 0, 0)
	c.enc.draws++

	// The clear replaced encoder state the reconciler set.
	c.enc.renderPipeline = nil
	c.mark(dirtyViewport | dirtyScissor | dirtyStencilRef | dirtyVertexBuffers | dirtyResources)
	return true
}

// Clear clears the buffers of the draw framebuffer selected by mask to the
// clear values, honoring the scissor test and the write masks.
func (c *Context) Clear(mask glenum.ClearMask) {
	if !c.live() {
		return
	}
	all := glenum.ColorBufferBit | glenum.DepthBufferBit | glenum.StencilBufferBit
	if mask.Difference(all) != 0 {
		c.errorf(glenum.InvalidValue, "Clear: mask %#x", uint32(mask))
		return
	}
	t, ok := c.drawTarget("Clear")
	if !ok || mask == 0 {
		return
	}
	s := &c.state
	if s.caps[glenum.RasterizerDiscard] {
		return
	}

	x, y, w, h, visible := clampRect([4]int32{0, 0, t.width, t.height}, t.width, t.height)
	if s.caps[glenum.ScissorTest] {
		x, y, w, h, visible = clampRect(s.scissor, t.width, t.height)
	}
	if !visible {
		return
	}
	whole := x == 0 && y == 0 && int32(w) == t.width && int32(h) == t.height

	var load pendingClear
	var masked [MaxDrawBuffers]gputypes.ColorWriteMask
	draw := false
	if mask.Contains(glenum.ColorBufferBit) {
		cc := s.clearColor
		for i, surf := range t.colors {
			if surf == nil {
				continue
			}
			m := writeMask(s.blend[i].mask)
			switch {
			case m == 0:
			case whole && m == gputypes.ColorWriteMaskAll:
				load.colors[i] = true
				load.color[i] = clearValue(surf.tex.info.backend, cc)
			default:
				masked[i], draw = m, true
			}
		}
	}
	depth := false
	if mask.Contains(glenum.DepthBufferBit) && t.hasDepth && s.depthMask {
		if whole {
			load.depth, load.depthV = true, min(max(s.clearDepth, 0), 1)
		} else {
			depth, draw = true, true
		}
	}
	stencil := uint32(0)
	if mask.Contains(glenum.StencilBufferBit) && t.hasStencil {
		wm := s.stencil[0].writeMask & 0xFF
		switch {
		case wm == 0:
		case whole && wm == 0xFF:
			load.stencil, load.stencV = true, uint32(s.clearStencil)&0xFF
		default:
			stencil, draw = wm, true
		}
	}

	if load.depth || load.stencil || slices.Contains(load.colors[:], true) {
		c.queueClear(t, &load)
	}
	if !draw {
		return
	}
	if !c.beginRender(t) {
		return
	}
	c.clearDraw(t, masked, depth, stencil, [4]uint32{x, y, w, h})
}

// queueClear folds whole-attachment clears into the load operations of the
// next pass on t. A pass already open on t is ended so the clear orders
// after its draws.
func (c *Context) queueClear(t *target, load *pendingClear) {
	e := &c.enc
	if e.clear.any() && e.clear.key != t.key {
		if !c.applyClears() {
			return
		}
	}
	if e.render != nil && e.pass == t.key {
		c.endPass()
	}
	if e.clear.target == nil {
		e.clear = pendingClear{}
	}
	e.clear.target, e.clear.key = t, t.key
	for i, on := range load.colors {
		if on {
			e.clear.colors[i], e.clear.color[i] = true, load.color[i]
		}
	}
	if load.depth {
		e.clear.depth, e.clear.depthV = true, load.depthV
	}
	if load.stencil {
		e.clear.stencil, e.clear.stencV = true, load.stencV
	}
}

// clearValue converts the clear color for a target of format f. Integer
// formats take the truncated components.
func clearValue(f gputypes.TextureFormat, cc [4]float32) gputypes.Color {
	switch sampleTypeOf(f) {
	case gputypes.TextureSampleTypeSint, gputypes.TextureSampleTypeUint:
		return gputypes.Color{
			R: math.Trunc(float64(cc[0])), G: math.Trunc(float64(cc[1])),
			B: math.Trunc(float64(cc[2])), A: math.Trunc(float64(cc[3])),
		}
	}
	return gputypes.Color{R: float64(cc[0]), G: float64(cc[1]), B: float64(cc[2]), A: float64(cc[3])}
}
