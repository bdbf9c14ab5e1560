// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/glhal/internal/pipeline"
	"github.com/gogpu/glhal/internal/shader"
)

var errLink = errors.New("link failed")

// linkBlock is a uniform or storage block binding in group 0.
type linkBlock struct {
	binding  uint32
	storage  bool
	readOnly bool
	size     uint32
	stages   gputypes.ShaderStages
	owner    uint32 // program whose block bindings apply
	index    int    // block index in the owner
}

// linkTexture is a texture or sampler binding in group 1.
type linkTexture struct {
	binding      uint32
	sampler      bool
	dim          gputypes.TextureViewDimension
	sampleType   gputypes.TextureSampleType
	multisampled bool
	comparison   bool
	stages       gputypes.ShaderStages
	owner        uint32
	slot         int // sampler uniform index in the owner
}

// linkImage is a storage texture binding in group 3. Binding n reads
// image unit n.
type linkImage struct {
	binding uint32
	dim     gputypes.TextureViewDimension
	format  gputypes.TextureFormat
	access  gputypes.StorageTextureAccess
	stages  gputypes.ShaderStages
}

// shaderWrites records which kinds of resources shaders may write.
type shaderWrites uint8

const (
	writesBuffers shaderWrites = 1 << iota
	writesImages
)

// link is the backend realization of the stages one draw or dispatch runs:
// shader modules, the bind group layouts and the pipeline layout.
// A program owns the link of its own stages; a program pipeline combines
// stages of separable programs into links cached by stage identity.
type link struct {
	ids      [2]pipeline.ProgramID // vertex and fragment, or compute in ids[0]
	owners   [2]uint32
	vertex   *shader.Module
	fragment *shader.Module
	compute  *shader.Module

	modules      [3]hal.ShaderModule
	groups       [shader.NumGroups]hal.BindGroupLayout
	groupSerials [shader.NumGroups]uint64
	layout       hal.PipelineLayout

	blocks        []linkBlock
	textures      []linkTexture
	images        []linkImage
	defaultSize   uint32
	defaultStages gputypes.ShaderStages
	writes        shaderWrites
}

// linkStage is one stage given to buildLink.
type linkStage struct {
	module *shader.Module
	owner  *Program
}

func stageBit(s shader.Stage) gputypes.ShaderStages {
	switch s {
	case shader.StageFragment:
		return gputypes.ShaderStageFragment
	case shader.StageCompute:
		return gputypes.ShaderStageCompute
	}
	return gputypes.ShaderStageVertex
}

// buildLink merges the interfaces of stages and creates their backend
// objects. Stages are indexed vertex, fragment, compute; absent stages
// have a nil module.
func (c *Context) buildLink(label string, stages [3]linkStage) (*link, error) {
	l := &link{
		vertex:   stages[shader.StageVertex].module,
		fragment: stages[shader.StageFragment].module,
		compute:  stages[shader.StageCompute].module,
	}
	for i, st := range stages[:2] {
		if st.owner != nil {
			l.ids[i] = st.owner.id()
			l.owners[i] = st.owner.name
		}
	}
	if st := stages[shader.StageCompute]; st.owner != nil {
		l.ids[0] = st.owner.id()
		l.owners[0] = st.owner.name
	}
	if err := l.merge(stages); err != nil {
		return nil, err
	}
	if err := c.createLinkObjects(label, l); err != nil {
		c.destroyLink(l)
		return nil, err
	}
	return l, nil
}

// merge collects the resources of every stage. Two stages may share a
// binding only when they declare it the same way.
func (l *link) merge(stages [3]linkStage) error {
	var defaults []*shader.Block
	for _, st := range stages {
		m := st.module
		if m == nil {
			continue
		}
		bit := stageBit(m.Stage)
		if m.DefaultBlock != nil {
			defaults = append(defaults, m.DefaultBlock)
			l.defaultSize = max(l.defaultSize, m.DefaultBlock.Size)
			l.defaultStages |= bit
		}
		for i := range m.Resources {
			r := &m.Resources[i]
			var err error
			switch r.Kind {
			case shader.UniformBlock, shader.StorageBlock:
				err = l.addBlock(r, bit, st.owner)
			case shader.Image:
				err = l.addImage(r, bit)
			default:
				err = l.addTexture(r, bit, st.owner)
			}
			if err != nil {
				return err
			}
		}
	}
	if len(defaults) == 2 {
		if err := compatibleBlocks(defaults[0], defaults[1]); err != nil {
			return err
		}
	}
	for _, b := range l.blocks {
		if b.storage && !b.readOnly {
			l.writes |= writesBuffers
		}
	}
	for _, im := range l.images {
		if im.access != gputypes.StorageTextureAccessReadOnly {
			l.writes |= writesImages
		}
	}
	return nil
}

func (l *link) addImage(r *shader.Resource, bit gputypes.ShaderStages) error {
	for i := range l.images {
		im := &l.images[i]
		if im.binding != r.Binding {
			continue
		}
		if im.dim != r.ViewDimension || im.format != r.Format || im.access != r.Access {
			return fmt.Errorf("%w: %s is declared differently by two stages", errLink, r.Name)
		}
		im.stages |= bit
		return nil
	}
	l.images = append(l.images, linkImage{
		binding: r.Binding, dim: r.ViewDimension, format: r.Format, access: r.Access, stages: bit,
	})
	return nil
}

func (l *link) addBlock(r *shader.Resource, bit gputypes.ShaderStages, owner *Program) error {
	storage := r.Kind == shader.StorageBlock
	for i := range l.blocks {
		b := &l.blocks[i]
		if b.binding != r.Binding {
			continue
		}
		if b.storage != storage {
			return fmt.Errorf("%w: block binding %d is a uniform block in one stage and a storage block in another", errLink, r.Binding)
		}
		b.stages |= bit
		b.size = max(b.size, r.Size)
		b.readOnly = b.readOnly && r.ReadOnly
		return nil
	}
	index := owner.blockIndex(storage, r.Binding)
	if index < 0 {
		return fmt.Errorf("%w: block %s has no binding in program %d", errLink, r.Name, owner.name)
	}
	l.blocks = append(l.blocks, linkBlock{
		binding: r.Binding, storage: storage, readOnly: r.ReadOnly, size: r.Size,
		stages: bit, owner: owner.name, index: index,
	})
	return nil
}

func (l *link) addTexture(r *shader.Resource, bit gputypes.ShaderStages, owner *Program) error {
	sampler := r.Kind == shader.Sampler
	for i := range l.textures {
		t := &l.textures[i]
		if t.binding != r.Binding {
			continue
		}
		if t.sampler != sampler || t.dim != r.ViewDimension || t.sampleType != r.SampleType || t.comparison != r.Comparison {
			return fmt.Errorf("%w: %s is declared differently by two stages", errLink, r.Name)
		}
		t.stages |= bit
		return nil
	}
	slot := owner.samplerSlot(r.Binding / 2)
	if slot < 0 {
		return fmt.Errorf("%w: %s has no texture unit in program %d", errLink, r.Name, owner.name)
	}
	l.textures = append(l.textures, linkTexture{
		binding: r.Binding, sampler: sampler, dim: r.ViewDimension, sampleType: r.SampleType,
		multisampled: r.Multisampled, comparison: r.Comparison, stages: bit,
		owner: owner.name, slot: slot,
	})
	return nil
}

// compatibleBlocks reports an error when two default blocks place
// different uniforms over the same bytes. Both stages read one buffer.
func compatibleBlocks(a, b *shader.Block) error {
	for i := range a.Uniforms {
		ua := &a.Uniforms[i]
		aEnd := ua.Offset + ua.Stride*uint32(ua.ArrayLen)
		for j := range b.Uniforms {
			ub := &b.Uniforms[j]
			bEnd := ub.Offset + ub.Stride*uint32(ub.ArrayLen)
			if ua.Offset >= bEnd || ub.Offset >= aEnd {
				continue
			}
			if ua.Name != ub.Name || ua.Offset != ub.Offset || ua.Kind != ub.Kind ||
				ua.Columns != ub.Columns || ua.Rows != ub.Rows || ua.ArrayLen != ub.ArrayLen {
				return fmt.Errorf("%w: uniforms %s and %s overlap in the default uniform block", errLink, ua.Name, ub.Name)
			}
		}
	}
	return nil
}

// filterable reports whether the texture at binding may be read through a
// filtering sampler.
func (l *link) filterable(binding uint32) bool {
	for _, t := range l.textures {
		if !t.sampler && t.binding == binding {
			return t.sampleType == gputypes.TextureSampleTypeFloat
		}
	}
	return true
}

func (c *Context) createLinkObjects(label string, l *link) error {
	dev := c.dev.HAL
	for i, m := range []*shader.Module{l.vertex, l.fragment, l.compute} {
		if m == nil {
			continue
		}
		mod, err := dev.CreateShaderModule(&hal.ShaderModuleDescriptor{
			Label:  fmt.Sprintf("%s %s", label, m.Stage),
			Source: hal.ShaderSource{WGSL: m.Source, SPIRV: m.SPIRV},
		})
		if err != nil {
			return fmt.Errorf("create %s module: %w", m.Stage, err)
		}
		l.modules[i] = mod
	}

	var entries [shader.NumGroups][]gputypes.BindGroupLayoutEntry
	for _, b := range l.blocks {
		typ := gputypes.BufferBindingTypeUniform
		if b.storage {
			typ = gputypes.BufferBindingTypeStorage
			if b.readOnly {
				typ = gputypes.BufferBindingTypeReadOnlyStorage
			}
		}
		entries[shader.GroupBlocks] = append(entries[shader.GroupBlocks], gputypes.BindGroupLayoutEntry{
			Binding:    b.binding,
			Visibility: b.stages,
			Buffer:     &gputypes.BufferBindingLayout{Type: typ},
		})
	}
	for _, t := range l.textures {
		e := gputypes.BindGroupLayoutEntry{Binding: t.binding, Visibility: t.stages}
		if t.sampler {
			st := gputypes.SamplerBindingTypeFiltering
			if t.comparison {
				st = gputypes.SamplerBindingTypeComparison
			} else if !l.filterable(t.binding - 1) {
				st = gputypes.SamplerBindingTypeNonFiltering
			}
			e.Sampler = &gputypes.SamplerBindingLayout{Type: st}
		} else {
			e.Texture = &gputypes.TextureBindingLayout{
				SampleType:    t.sampleType,
				ViewDimension: t.dim,
				Multisampled:  t.multisampled,
			}
		}
		entries[shader.GroupTextures] = append(entries[shader.GroupTextures], e)
	}
	for _, im := range l.images {
		entries[shader.GroupImages] = append(entries[shader.GroupImages], gputypes.BindGroupLayoutEntry{
			Binding:    im.binding,
			Visibility: im.stages,
			StorageTexture: &gputypes.StorageTextureBindingLayout{
				Access: im.access, Format: im.format, ViewDimension: im.dim,
			},
		})
	}
	if l.defaultSize > 0 {
		entries[shader.GroupDefault] = append(entries[shader.GroupDefault], gputypes.BindGroupLayoutEntry{
			Binding:    0,
			Visibility: l.defaultStages,
			Buffer: &gputypes.BufferBindingLayout{
				Type:             gputypes.BufferBindingTypeUniform,
				HasDynamicOffset: true,
				MinBindingSize:   uint64(l.defaultSize),
			},
		})
	}
	for g := range l.groups {
		bgl, err := dev.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
			Label:   fmt.Sprintf("%s group %d", label, g),
			Entries: entries[g],
		})
		if err != nil {
			return fmt.Errorf("create bind group layout %d: %w", g, err)
		}
		l.groups[g] = bgl
		l.groupSerials[g] = c.dev.NextSerial()
	}
	layout, err := dev.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            label,
		BindGroupLayouts: l.groups[:],
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	l.layout = layout
	return nil
}

// destroyLink releases the backend objects of l once no submitted work
// can reference them. Pipelines built from l must be evicted first.
func (c *Context) destroyLink(l *link) {
	if l == nil {
		return
	}
	for _, s := range l.groupSerials {
		if s != 0 {
			c.bindGroups.ForgetLayout(s)
		}
	}
	dev := c.dev.HAL
	objs := *l
	c.retire(func() {
		if objs.layout != nil {
			dev.DestroyPipelineLayout(objs.layout)
		}
		for _, g := range objs.groups {
			if g != nil {
				dev.DestroyBindGroupLayout(g)
			}
		}
		for _, m := range objs.modules {
			if m != nil {
				dev.DestroyShaderModule(m)
			}
		}
	})
	*l = link{}
}

// evictProgram destroys the pipelines and combined links built from the
// program name. Pending work is completed first because the pipeline cache
// destroys immediately.
func (c *Context) evictProgram(name uint32) {
	for k, l := range c.links {
		if k[0].Name == name || k[1].Name == name {
			delete(c.links, k)
			c.destroyLink(l)
		}
	}
	if c.enc.cmd != nil || c.dev.Queue.PollCompleted() < c.enc.submitted {
		c.waitIdle()
	}
	if n := c.pipelines.EvictProgram(name); n > 0 {
		Logger().Debug("glhal: pipelines evicted", "program", name, "count", n)
	}
	c.enc.renderPipeline, c.enc.computePipeline = nil, nil
}
