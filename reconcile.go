// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/glhal/glenum"
	"github.com/gogpu/glhal/internal/bindcache"
	"github.com/gogpu/glhal/internal/pipeline"
	"github.com/gogpu/glhal/internal/shader"
)

// indexState is the index buffer bound in the open render pass.
type indexState struct {
	serial uint64
	format gputypes.IndexFormat
	offset uint64
}

// stages is the program state a draw or dispatch runs: the link and the
// programs whose uniform values feed each stage.
type stages struct {
	link     *link
	vertex   *Program
	fragment *Program
	compute  *Program
}

// renderStages resolves the stages of a draw from the current program or
// the bound program pipeline.
func (c *Context) renderStages(op string) (stages, bool) {
	if c.currentProgram != 0 {
		p, ok := c.program(c.currentProgram)
		if !ok || !p.linked || p.link == nil {
			c.errorf(glenum.InvalidOperation, "%s: program %d is not linked", op, c.currentProgram)
			return stages{}, false
		}
		if p.vertex == nil {
			c.errorf(glenum.InvalidOperation, "%s: program %d has no vertex stage", op, p.name)
			return stages{}, false
		}
		return stages{link: p.link, vertex: p, fragment: p}, true
	}
	pp, ok := c.programPipelines.Get(c.programPipeline)
	if !ok {
		c.errorf(glenum.InvalidOperation, "%s: no program is in use", op)
		return stages{}, false
	}
	l, err := c.pipelineLink(pp, false)
	if err != nil {
		if isLinkError(err) {
			c.errorf(glenum.InvalidOperation, "%s: %v", op, err)
		}
		return stages{}, false
	}
	st := stages{link: l, vertex: c.stageProgram(pp, slotVertex), fragment: c.stageProgram(pp, slotFragment)}
	if st.fragment != nil && st.fragment.fragment == nil {
		st.fragment = nil
	}
	if st.fragment == nil && st.vertex.fragment != nil && l == st.vertex.link {
		st.fragment = st.vertex
	}
	return st, true
}

// computeStages resolves the compute stage of a dispatch.
func (c *Context) computeStages(op string) (stages, bool) {
	if c.currentProgram != 0 {
		p, ok := c.program(c.currentProgram)
		if !ok || !p.linked || p.link == nil || p.compute == nil {
			c.errorf(glenum.InvalidOperation, "%s: program %d has no compute stage", op, c.currentProgram)
			return stages{}, false
		}
		return stages{link: p.link, compute: p}, true
	}
	pp, ok := c.programPipelines.Get(c.programPipeline)
	if !ok {
		c.errorf(glenum.InvalidOperation, "%s: no program is in use", op)
		return stages{}, false
	}
	l, err := c.pipelineLink(pp, true)
	if err != nil {
		c.errorf(glenum.InvalidOperation, "%s: %v", op, err)
		return stages{}, false
	}
	return stages{link: l, compute: c.stageProgram(pp, slotCompute)}, true
}

// vertexPlan is the vertex input of one draw.
type vertexPlan struct {
	attribs  [MaxVertexAttribs]pipeline.VertexAttrib
	buffers  [MaxVertexAttribBindings]pipeline.VertexBuffer
	generic  int      // slot of the generic attribute buffer, or -1
	generics []uint32 // attribute locations read from generic values
}

func genericFormat(kind shader.ScalarKind) gputypes.VertexFormat {
	switch kind {
	case shader.KindSint:
		return gputypes.VertexFormatSint32x4
	case shader.KindUint, shader.KindBool:
		return gputypes.VertexFormatUint32x4
	}
	return gputypes.VertexFormatFloat32x4
}

// planVertices validates the arrays the vertex stage reads and lays them
// out in buffer slots. Inputs whose array is disabled read the generic
// values from one extra slot with stride zero.
func (c *Context) planVertices(op string, m *shader.Module) (vertexPlan, bool) {
	plan := vertexPlan{generic: -1}
	vao := c.currentVAO()
	var inputs []shader.Input
	for _, in := range m.Inputs {
		if in.Location >= MaxVertexAttribs {
			continue
		}
		a := vao.attribs[in.Location]
		if !a.enabled {
			inputs = append(inputs, in)
			continue
		}
		b := vao.bindings[a.binding]
		buf, ok := c.buffers.Get(b.buffer)
		if b.buffer == 0 || !ok || buf.hal == nil {
			c.errorf(glenum.InvalidOperation, "%s: attribute %d has no buffer storage", op, in.Location)
			return plan, false
		}
		if buf.mapped && !buf.persistent() {
			c.errorf(glenum.InvalidOperation, "%s: buffer %d is mapped", op, buf.name)
			return plan, false
		}
		format, ok := vertexFormat(a.typ, a.size, a.normalized, a.integer)
		if !ok {
			c.errorf(glenum.InvalidOperation, "%s: attribute %d format is not supported", op, in.Location)
			return plan, false
		}
		step := gputypes.VertexStepModeVertex
		if b.divisor > 0 {
			step = gputypes.VertexStepModeInstance
		}
		plan.attribs[in.Location] = pipeline.VertexAttrib{
			Enabled: true, Format: format, Offset: uint64(a.offset),
			Location: in.Location, Buffer: a.binding,
		}
		plan.buffers[a.binding] = pipeline.VertexBuffer{Used: true, Stride: uint64(b.stride), Step: step}
	}
	if len(inputs) == 0 {
		return plan, true
	}
	for i := range plan.buffers {
		if !plan.buffers[i].Used {
			plan.generic = i
			break
		}
	}
	if plan.generic < 0 {
		c.errorf(glenum.InvalidOperation, "%s: no vertex buffer slot is left for generic attributes", op)
		return plan, false
	}
	for k, in := range inputs {
		plan.attribs[in.Location] = pipeline.VertexAttrib{
			Enabled: true, Format: genericFormat(in.Kind), Offset: uint64(16 * k),
			Location: in.Location, Buffer: uint32(plan.generic),
		}
		plan.generics = append(plan.generics, in.Location)
	}
	plan.buffers[plan.generic] = pipeline.VertexBuffer{Used: true, Step: gputypes.VertexStepModeInstance}
	return plan, true
}

// renderKey assembles the pipeline key of a draw. Fields that do not
// affect the result are left zero so equal states give equal keys.
func (c *Context) renderKey(st stages, t *target, plan *vertexPlan, topo gputypes.PrimitiveTopology, strip gputypes.IndexFormat) pipeline.RenderKey {
	s := &c.state
	l := st.link
	key := pipeline.RenderKey{
		Vertex:   l.ids[0],
		Fragment: l.ids[1],
		Attribs:  plan.attribs,
		Buffers:  plan.buffers,
		Topology: topo,
	}
	for i, surf := range t.colors {
		if surf == nil {
			continue
		}
		ct := pipeline.ColorTarget{Format: surf.tex.info.backend}
		if l.fragment != nil && l.fragment.WritesLocation(uint32(i)) {
			b := s.blend[i]
			ct.WriteMask = writeMask(b.mask)
			if b.enabled && sampleTypeOf(ct.Format) == gputypes.TextureSampleTypeFloat {
				ct.BlendEnabled = true
				ct.Color = blendComponent(b.srcRGB, b.dstRGB, b.eqRGB)
				ct.Alpha = blendComponent(b.srcAlpha, b.dstAlpha, b.eqAlpha)
			}
		}
		key.Targets[i] = ct
	}
	if d := t.depth; d != nil {
		ds := pipeline.DepthStencil{Format: d.tex.info.backend, DepthCompare: gputypes.CompareFunctionAlways}
		keep := hal.StencilFaceState{
			Compare: gputypes.CompareFunctionAlways,
			FailOp:  hal.StencilOperationKeep, DepthFailOp: hal.StencilOperationKeep, PassOp: hal.StencilOperationKeep,
		}
		ds.StencilFront, ds.StencilBack = keep, keep
		if t.hasDepth && s.caps[glenum.DepthTest] {
			ds.DepthWrite = s.depthMask
			ds.DepthCompare = compareFunction(s.depthFunc)
		}
		if t.hasStencil && s.caps[glenum.StencilTest] {
			ds.StencilFront = stencilFaceState(s.stencil[0])
			ds.StencilBack = stencilFaceState(s.stencil[1])
			ds.StencilReadMask = s.stencil[0].valueMask & 0xFF
			ds.StencilWriteMask = s.stencil[0].writeMask & 0xFF
		}
		if t.hasDepth && s.caps[glenum.PolygonOffsetFill] && isTriangleTopology(topo) {
			ds.DepthBias = int32(s.offsetUnits)
			ds.SlopeScale = s.offsetFactor
		}
		key.DepthStencil = ds
	}
	if strip != 0 && isStripTopology(topo) {
		key.HasStripIndex, key.StripIndex = true, strip
	}
	if isTriangleTopology(topo) {
		key.CullMode = cullModeOf(s.caps[glenum.CullFace], s.cullFace)
		key.FrontFace = frontFaceOf(s.frontFace)
	}
	key.UnclippedDepth = s.caps[glenum.DepthClamp]
	key.SampleCount = t.samples
	key.AlphaToCoverage = t.samples > 1 && s.caps[glenum.SampleAlphaToCoverage]
	return key
}

func isStripTopology(t gputypes.PrimitiveTopology) bool {
	return t == gputypes.PrimitiveTopologyLineStrip || t == gputypes.PrimitiveTopologyTriangleStrip
}

func isTriangleTopology(t gputypes.PrimitiveTopology) bool {
	return t == gputypes.PrimitiveTopologyTriangleList || t == gputypes.PrimitiveTopologyTriangleStrip
}

// blendComponent maps one blend equation. MIN and MAX ignore the factors,
// which the backend requires to be ONE.
func blendComponent(src, dst glenum.BlendFactor, eq glenum.BlendEquation) gputypes.BlendComponent {
	op := blendOperation(eq)
	if op == gputypes.BlendOperationMin || op == gputypes.BlendOperationMax {
		return gputypes.BlendComponent{SrcFactor: gputypes.BlendFactorOne, DstFactor: gputypes.BlendFactorOne, Operation: op}
	}
	s, _ := blendFactor(src)
	d, _ := blendFactor(dst)
	return gputypes.BlendComponent{SrcFactor: s, DstFactor: d, Operation: op}
}

func stencilFaceState(f stencilFace) hal.StencilFaceState {
	return hal.StencilFaceState{
		Compare:     compareFunction(f.fn),
		FailOp:      stencilOperation(f.fail),
		DepthFailOp: stencilOperation(f.depthFail),
		PassOp:      stencilOperation(f.depthPass),
	}
}

// renderPipeline returns the pipeline for key, building it on first use.
func (c *Context) renderPipeline(st stages, key *pipeline.RenderKey) (hal.RenderPipeline, bool) {
	l := st.link
	p, err := c.pipelines.GetOrCreateRender(key, func(k *pipeline.RenderKey) (hal.RenderPipeline, error) {
		desc := &hal.RenderPipelineDescriptor{
			Label:  fmt.Sprintf("glhal render %016x", k.Hash()),
			Layout: l.layout,
			Vertex: hal.VertexState{
				Module:     l.modules[shader.StageVertex],
				EntryPoint: l.vertex.EntryPoint,
				Buffers:    k.VertexLayouts(),
			},
			Primitive:    k.PrimitiveState(),
			DepthStencil: k.DepthStencilState(),
			Multisample:  k.MultisampleState(),
		}
		if l.fragment != nil {
			desc.Fragment = &hal.FragmentState{
				Module:     l.modules[shader.StageFragment],
				EntryPoint: l.fragment.EntryPoint,
				Targets:    k.ColorTargets(),
			}
		}
		Logger().Debug("glhal: building render pipeline", "key", fmt.Sprintf("%016x", k.Hash()),
			"vertex", k.Vertex.Name, "fragment", k.Fragment.Name)
		return c.dev.HAL.CreateRenderPipeline(desc)
	})
	if err != nil {
		c.backendError("CreateRenderPipeline", err)
		return nil, false
	}
	return p, true
}

// computePipeline returns the compute pipeline of st.
func (c *Context) computePipeline(st stages) (hal.ComputePipeline, bool) {
	l := st.link
	p, err := c.pipelines.GetOrCreateCompute(pipeline.ComputeKey{Program: l.ids[0]}, func(k pipeline.ComputeKey) (hal.ComputePipeline, error) {
		Logger().Debug("glhal: building compute pipeline", "program", k.Program.Name)
		return c.dev.HAL.CreateComputePipeline(&hal.ComputePipelineDescriptor{
			Label:  fmt.Sprintf("glhal compute %d.%d", k.Program.Name, k.Program.Generation),
			Layout: l.layout,
			Compute: hal.ComputeState{
				Module:     l.modules[shader.StageCompute],
				EntryPoint: l.compute.EntryPoint,
			},
		})
	})
	if err != nil {
		c.backendError("CreateComputePipeline", err)
		return nil, false
	}
	return p, true
}

// bindGroup returns the cached bind group for key, creating it from
// entries on a miss.
func (c *Context) bindGroup(op string, l *link, group int, key *bindcache.Key, entries []gputypes.BindGroupEntry) (hal.BindGroup, bool) {
	bg, err := c.bindGroups.GetOrCreate(key, func() (hal.BindGroup, error) {
		return c.dev.HAL.CreateBindGroup(&hal.BindGroupDescriptor{
			Label:   fmt.Sprintf("glhal group %d", group),
			Layout:  l.groups[group],
			Entries: entries,
		})
	})
	if err != nil {
		c.backendError(op, err)
		return nil, false
	}
	return bg, true
}

func addEntry(op string, key *bindcache.Key, e bindcache.Entry) error {
	if err := key.Add(e); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// blockGroup builds group 0 from the indexed buffer bindings the blocks of
// l read.
func (c *Context) blockGroup(op string, l *link) (hal.BindGroup, bool) {
	key := bindcache.Key{Layout: l.groupSerials[shader.GroupBlocks]}
	entries := make([]gputypes.BindGroupEntry, 0, len(l.blocks))
	for _, lb := range l.blocks {
		owner, ok := c.program(lb.owner)
		if !ok {
			c.errorf(glenum.InvalidOperation, "%s: program %d was deleted", op, lb.owner)
			return nil, false
		}
		family, list := glenum.UniformBuffer, owner.uniformBlocks
		if lb.storage {
			family, list = glenum.ShaderStorageBuffer, owner.storageBlocks
		}
		info := list[lb.index]
		slot := c.indexed[family][info.point]
		buf, ok := c.buffers.Get(slot.buffer)
		if slot.buffer == 0 || !ok || buf.hal == nil {
			c.errorf(glenum.InvalidOperation, "%s: block %s reads %s binding %d with no buffer", op, info.name, family, info.point)
			return nil, false
		}
		if buf.mapped && !buf.persistent() {
			c.errorf(glenum.InvalidOperation, "%s: buffer %d is mapped", op, buf.name)
			return nil, false
		}
		size := slot.size
		if size == 0 {
			size = buf.size - slot.offset
		}
		if size < int64(lb.size) || slot.offset+size > buf.size {
			c.errorf(glenum.InvalidOperation, "%s: block %s needs %d bytes at %s binding %d", op, info.name, lb.size, family, info.point)
			return nil, false
		}
		if err := addEntry(op, &key, bindcache.Entry{
			Binding: lb.binding, Kind: bindcache.KindBuffer, Resource: buf.serial,
			Offset: uint64(slot.offset), Size: uint64(size),
		}); err != nil {
			c.errorf(glenum.InvalidOperation, "%v", err)
			return nil, false
		}
		entries = append(entries, gputypes.BindGroupEntry{
			Binding: lb.binding,
			Resource: gputypes.BufferBinding{
				Buffer: buf.hal.NativeHandle(), Offset: uint64(slot.offset), Size: uint64(size),
			},
		})
		c.enc.use(buf.serial)
	}
	return c.bindGroup(op, l, shader.GroupBlocks, &key, entries)
}

// unitTargets returns the texture targets whose bindings a shader texture
// of dim may read, in lookup order.
func unitTargets(dim gputypes.TextureViewDimension, multisampled bool) []glenum.TextureTarget {
	switch dim {
	case gputypes.TextureViewDimension1D:
		return []glenum.TextureTarget{glenum.Texture1D}
	case gputypes.TextureViewDimension2DArray:
		if multisampled {
			return []glenum.TextureTarget{glenum.Texture2DMultisampleArray}
		}
		return []glenum.TextureTarget{glenum.Texture2DArray, glenum.Texture1DArray}
	case gputypes.TextureViewDimensionCube:
		return []glenum.TextureTarget{glenum.TextureCubeMap}
	case gputypes.TextureViewDimensionCubeArray:
		return []glenum.TextureTarget{glenum.TextureCubeMapArray}
	case gputypes.TextureViewDimension3D:
		return []glenum.TextureTarget{glenum.Texture3D}
	}
	if multisampled {
		return []glenum.TextureTarget{glenum.Texture2DMultisample}
	}
	return []glenum.TextureTarget{glenum.Texture2D, glenum.TextureRectangle}
}

// unitTexture returns the texture bound at unit for a shader texture and
// the sampling state that applies to it.
func (c *Context) unitTexture(unit uint32, lt *linkTexture) (*Texture, samplerState) {
	u := &c.units[unit]
	var tex *Texture
	for _, target := range unitTargets(lt.dim, lt.multisampled) {
		if name := u.bound[targetSlot(target)]; name != 0 {
			if t, ok := c.textures.Get(name); ok {
				tex = t
				break
			}
		}
	}
	state := defaultSamplerState()
	if tex != nil {
		state = tex.params
	}
	if u.sampler != 0 {
		if s, ok := c.samplers.Get(u.sampler); ok {
			state = s.state
		}
	}
	return tex, state
}

// textureLayers returns the array layers a view of dim covers.
func textureLayers(t *Texture, dim gputypes.TextureViewDimension) uint32 {
	switch dim {
	case gputypes.TextureViewDimension2DArray, gputypes.TextureViewDimensionCube, gputypes.TextureViewDimensionCubeArray:
		_, _, _, layers := layout(t.target, t.width, t.height, t.depth)
		return layers
	}
	return 1
}

// textureGroup builds group 1 from the texture units the sampler uniforms
// of l select. Incomplete or absent textures read a placeholder.
func (c *Context) textureGroup(op string, l *link) (hal.BindGroup, bool) {
	key := bindcache.Key{Layout: l.groupSerials[shader.GroupTextures]}
	entries := make([]gputypes.BindGroupEntry, 0, len(l.textures))
	for i := range l.textures {
		lt := &l.textures[i]
		owner, ok := c.program(lt.owner)
		if !ok {
			c.errorf(glenum.InvalidOperation, "%s: program %d was deleted", op, lt.owner)
			return nil, false
		}
		unit := owner.samplers[lt.slot].unit
		tex, state := c.unitTexture(unit, lt)
		depth := tex != nil && isDepthFormat(tex.info.backend)

		if lt.sampler {
			switch {
			case lt.comparison:
				state.compareMode, depth = glenum.CompareRefToTexture, true
			case !l.filterable(lt.binding - 1):
				state.minFilter, state.magFilter = glenum.Nearest, glenum.Nearest
				state.anisotropy = 1
			}
			bs, ok := c.backendSamplerFor(state, depth)
			if !ok {
				return nil, false
			}
			if err := addEntry(op, &key, bindcache.Entry{Binding: lt.binding, Kind: bindcache.KindSampler, Resource: bs.serial}); err != nil {
				c.errorf(glenum.InvalidOperation, "%v", err)
				return nil, false
			}
			entries = append(entries, gputypes.BindGroupEntry{
				Binding: lt.binding, Resource: gputypes.SamplerBinding{Sampler: bs.hal.NativeHandle()},
			})
			continue
		}

		var view hal.TextureView
		var serial uint64
		if tex != nil && tex.complete(state) {
			base, count := tex.effectiveLevels(state)
			aspect := gputypes.TextureAspectAll
			if tex.internal.HasDepth() {
				aspect = gputypes.TextureAspectDepthOnly
			}
			v, ok := c.view(tex, viewKey{
				dim: lt.dim, aspect: aspect,
				baseLevel: uint32(base), levels: uint32(count),
				layers: textureLayers(tex, lt.dim),
			})
			if !ok {
				return nil, false
			}
			view, serial = v.hal, v.serial
			c.enc.use(tex.serial)
		} else {
			d, ok := c.dummy(lt.dim)
			if !ok {
				return nil, false
			}
			view, serial = d.view, d.serial
		}
		if err := addEntry(op, &key, bindcache.Entry{Binding: lt.binding, Kind: bindcache.KindTexture, Resource: serial}); err != nil {
			c.errorf(glenum.InvalidOperation, "%v", err)
			return nil, false
		}
		entries = append(entries, gputypes.BindGroupEntry{
			Binding: lt.binding, Resource: gputypes.TextureViewBinding{TextureView: view.NativeHandle()},
		})
	}
	return c.bindGroup(op, l, shader.GroupTextures, &key, entries)
}

// defaultBlockData composes the default uniform block of st. In a
// combined link the fragment program supplies the fragment uniforms.
func defaultBlockData(st stages) []byte {
	l := st.link
	data := make([]byte, l.defaultSize)
	switch {
	case st.compute != nil:
		copy(data, st.compute.values)
		return data
	case st.vertex != nil:
		copy(data, st.vertex.values)
	}
	fp := st.fragment
	if fp == nil || fp == st.vertex || l.fragment == nil || l.fragment.DefaultBlock == nil {
		return data
	}
	for _, u := range l.fragment.DefaultBlock.Uniforms {
		end := min(u.Offset+u.Stride*uint32(u.ArrayLen), uint32(len(data)), uint32(len(fp.values)))
		if u.Offset < end {
			copy(data[u.Offset:end], fp.values[u.Offset:end])
		}
	}
	return data
}

// defaultGroup uploads the default uniform block and returns group 2 with
// its dynamic offset.
func (c *Context) defaultGroup(op string, st stages) (hal.BindGroup, []uint32, bool) {
	l := st.link
	key := bindcache.Key{Layout: l.groupSerials[shader.GroupDefault]}
	if l.defaultSize == 0 {
		bg, ok := c.bindGroup(op, l, shader.GroupDefault, &key, nil)
		return bg, nil, ok
	}
	align := uint64(max(c.dev.Limits.MinUniformBufferOffsetAlignment, 4))
	chunk, offset, ok := c.upload(defaultBlockData(st), align)
	if !ok {
		return nil, nil, false
	}
	size := uint64(l.defaultSize)
	_ = key.Add(bindcache.Entry{Binding: 0, Kind: bindcache.KindBuffer, Resource: chunk.serial, Size: size})
	bg, ok := c.bindGroup(op, l, shader.GroupDefault, &key, []gputypes.BindGroupEntry{{
		Binding:  0,
		Resource: gputypes.BufferBinding{Buffer: chunk.buf.NativeHandle(), Size: size},
	}})
	return bg, []uint32{uint32(offset)}, ok
}

// passState is the subset of the encoder interface shared by render and
// compute passes.
type passState interface {
	SetBindGroup(index uint32, group hal.BindGroup, offsets []uint32)
}

// resourceSet holds the resolved bind groups of groups 0, 1 and 3.
type resourceSet struct {
	blocks, textures, images hal.BindGroup
}

// resourceGroups resolves the bind groups of groups 0, 1 and 3. They are
// resolved before a pass opens so a failed validation emits nothing.
func (c *Context) resourceGroups(op string, l *link) (resourceSet, bool) {
	var rs resourceSet
	var ok bool
	if rs.blocks, ok = c.blockGroup(op, l); !ok {
		return resourceSet{}, false
	}
	if rs.textures, ok = c.textureGroup(op, l); !ok {
		return resourceSet{}, false
	}
	if rs.images, ok = c.imageGroup(op, l); !ok {
		return resourceSet{}, false
	}
	return rs, true
}

// setGroups binds the groups whose state is dirty and returns the
// serviced bits. The writes of st are recorded against the open pass.
func (c *Context) setGroups(op string, pass passState, st stages, rs resourceSet) (dirty, bool) {
	serviced := dirty(0)
	if c.dirty.has(dirtyStorage | dirtyProgram) {
		pass.SetBindGroup(shader.GroupBlocks, rs.blocks, nil)
		serviced |= dirtyStorage
	}
	if c.dirty.has(dirtyTextures | dirtyProgram) {
		pass.SetBindGroup(shader.GroupTextures, rs.textures, nil)
		serviced |= dirtyTextures
	}
	if c.dirty.has(dirtyImages | dirtyProgram) {
		pass.SetBindGroup(shader.GroupImages, rs.images, nil)
		serviced |= dirtyImages
	}
	if c.dirty.has(dirtyUniforms | dirtyProgram) {
		bg, offsets, ok := c.defaultGroup(op, st)
		if !ok {
			return serviced, false
		}
		pass.SetBindGroup(shader.GroupDefault, bg, offsets)
		serviced |= dirtyUniforms
	}
	c.enc.passWrites |= st.link.writes
	return serviced, true
}

// clampRect intersects r with a width x height target.
func clampRect(r [4]int32, width, height int32) (x, y, w, h uint32, ok bool) {
	x0, y0 := max(r[0], 0), max(r[1], 0)
	x1, y1 := min(r[0]+r[2], width), min(r[1]+r[3], height)
	if x1 <= x0 || y1 <= y0 {
		return 0, 0, 0, 0, false
	}
	return uint32(x0), uint32(y0), uint32(x1 - x0), uint32(y1 - y0), true
}

// scissorRect returns the part of the target fragments may be written to:
// the scissor box when the test is enabled, clipped to the viewport.
func (c *Context) scissorRect(t *target) (x, y, w, h uint32, ok bool) {
	r := c.state.viewport
	if c.state.caps[glenum.ScissorTest] {
		s := c.state.scissor
		x0, y0 := max(r[0], s[0]), max(r[1], s[1])
		x1, y1 := min(r[0]+r[2], s[0]+s[2]), min(r[1]+r[3], s[1]+s[3])
		r = [4]int32{x0, y0, x1 - x0, y1 - y0}
	}
	return clampRect(r, t.width, t.height)
}

// visible reports whether draws to t can produce fragments.
func (c *Context) visible(t *target) bool {
	_, _, _, _, ok := c.scissorRect(t)
	return ok
}

// setVertexBuffers binds the buffers of plan.
func (c *Context) setVertexBuffers(op string, pass hal.RenderPassEncoder, plan *vertexPlan) bool {
	vao := c.currentVAO()
	for slot, b := range plan.buffers {
		if !b.Used {
			continue
		}
		if slot == plan.generic {
			data := make([]byte, 16*len(plan.generics))
			for k, loc := range plan.generics {
				for j, v := range c.generic[loc].bits {
					putUint32(data[16*k+4*j:], v)
				}
			}
			chunk, offset, ok := c.upload(data, 4)
			if !ok {
				return false
			}
			pass.SetVertexBuffer(uint32(slot), chunk.buf, offset)
			continue
		}
		vb := vao.bindings[slot]
		buf, _ := c.buffers.Get(vb.buffer)
		pass.SetVertexBuffer(uint32(slot), buf.hal, uint64(vb.offset))
		c.enc.use(buf.serial)
	}
	return true
}

func putUint32(b []byte, v uint32) {
	_ = b[3]
	b[0], b[1], b[2], b[3] = byte(v), byte(v>>8), byte(v>>16), byte(v>>24)
}

// setIndexBuffer binds buf as the index buffer of the open pass unless it
// already is.
func (c *Context) setIndexBuffer(pass hal.RenderPassEncoder, buf hal.Buffer, serial uint64, format gputypes.IndexFormat, offset uint64) {
	s := indexState{serial: serial, format: format, offset: offset}
	if c.enc.index == s {
		return
	}
	pass.SetIndexBuffer(buf, format, offset)
	c.enc.index = s
	c.enc.use(serial)
}

// Outcomes of prepareDraw other than success. A rejected draw recorded an
// error; a dropped draw is valid but cannot produce fragments.
var (
	errRejected = errors.New("draw rejected")
	errDropped  = errors.New("draw dropped")
)

// drawInputs are the draw framebuffer and program stages of a validated
// draw.
type drawInputs struct {
	target *target
	stages stages
}

// checkDraw validates the bindings a draw of mode depends on. It records
// errors but emits no backend work.
func (c *Context) checkDraw(op string, mode glenum.PrimitiveMode) (drawInputs, bool) {
	t, ok := c.drawTarget(op)
	if !ok {
		return drawInputs{}, false
	}
	st, ok := c.renderStages(op)
	if !ok {
		return drawInputs{}, false
	}
	if c.vertexArray == 0 {
		c.errorf(glenum.InvalidOperation, "%s: no vertex array is bound", op)
		return drawInputs{}, false
	}
	if !c.feedbackAllows(mode) {
		c.errorf(glenum.InvalidOperation, "%s: %s does not match the transform feedback mode", op, mode)
		return drawInputs{}, false
	}
	return drawInputs{target: t, stages: st}, true
}

// prepareDraw reconciles the context with the backend for a draw checked
// by checkDraw and issued as topo. strip is the index format when
// primitive restart applies to an indexed draw, zero otherwise. On success
// the render pass is open with every piece of state the draw needs set.
func (c *Context) prepareDraw(op string, in drawInputs, topo gputypes.PrimitiveTopology, strip gputypes.IndexFormat) (hal.RenderPassEncoder, error) {
	t, st := in.target, in.stages
	plan, ok := c.planVertices(op, st.link.vertex)
	if !ok {
		return nil, errRejected
	}
	rs, ok := c.resourceGroups(op, st.link)
	if !ok {
		return nil, errRejected
	}
	if !c.visible(t) {
		return nil, errDropped
	}
	if !c.beginRender(t) {
		return nil, errRejected
	}
	pass := c.enc.render
	serviced := dirty(0)

	if !isStripTopology(topo) {
		strip = 0
	}
	e := &c.enc
	reuse := e.renderPipeline != nil && !c.dirty.has(dirtyPipeline|dirtyVertexLayout) &&
		e.key.Topology == topo && e.key.StripIndex == strip &&
		e.key.Vertex == st.link.ids[0] && e.key.Fragment == st.link.ids[1]
	if !reuse {
		key := c.renderKey(st, t, &plan, topo, strip)
		if e.renderPipeline == nil || key != e.key {
			p, ok := c.renderPipeline(st, &key)
			if !ok {
				return nil, errRejected
			}
			if p != e.renderPipeline {
				pass.SetPipeline(p)
				e.renderPipeline = p
			}
			e.key = key
		}
		serviced |= dirtyPipeline
	}

	groups, ok := c.setGroups(op, pass, st, rs)
	if !ok {
		return nil, errRejected
	}
	serviced |= groups

	if c.dirty.has(dirtyVertexBuffers | dirtyVertexLayout | dirtyProgram) {
		if !c.setVertexBuffers(op, pass, &plan) {
			return nil, errRejected
		}
		serviced |= dirtyVertexBuffers
	}
	if c.dirty.has(dirtyViewport) {
		v, r := c.state.viewport, c.state.depthRange
		pass.SetViewport(float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3]), min(r[0], r[1]), max(r[0], r[1]))
		serviced |= dirtyViewport
	}
	if c.dirty.has(dirtyScissor | dirtyViewport) {
		x, y, w, h, _ := c.scissorRect(t)
		pass.SetScissorRect(x, y, w, h)
		serviced |= dirtyScissor
	}
	if c.dirty.has(dirtyStencilRef) {
		pass.SetStencilReference(uint32(c.state.stencil[0].ref) & 0xFF)
		serviced |= dirtyStencilRef
	}
	if c.dirty.has(dirtyBlendConstant) {
		bc := c.state.blendColor
		pass.SetBlendConstant(&gputypes.Color{R: float64(bc[0]), G: float64(bc[1]), B: float64(bc[2]), A: float64(bc[3])})
		serviced |= dirtyBlendConstant
	}
	c.dirty &^= serviced
	return pass, nil
}

// prepareDispatch reconciles the context with the backend for a compute
// dispatch and returns the open compute pass.
func (c *Context) prepareDispatch(op string) (hal.ComputePassEncoder, bool) {
	st, ok := c.computeStages(op)
	if !ok {
		return nil, false
	}
	rs, ok := c.resourceGroups(op, st.link)
	if !ok {
		return nil, false
	}
	pass, ok := c.beginCompute()
	if !ok {
		return nil, false
	}
	p, ok := c.computePipeline(st)
	if !ok {
		return nil, false
	}
	if p != c.enc.computePipeline {
		pass.SetPipeline(p)
		c.enc.computePipeline = p
		c.mark(dirtyResources)
	}
	serviced, ok := c.setGroups(op, pass, st, rs)
	c.dirty &^= serviced
	return pass, ok
}
