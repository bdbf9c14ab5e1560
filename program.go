// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/glhal/glenum"
	"github.com/gogpu/glhal/internal/pipeline"
	"github.com/gogpu/glhal/internal/shader"
)

// InvalidIndex is returned by index queries for names that are not active.
const InvalidIndex = 0xFFFFFFFF

// blockInfo is an active uniform or storage block.
type blockInfo struct {
	name    string
	binding uint32 // shader binding in group 0
	size    uint32
	point   uint32 // indexed buffer binding read by the block
}

// samplerUniform is a texture unit selector. The texture and sampler at
// bindings 2*pair and 2*pair+1 of group 1 read unit.
type samplerUniform struct {
	name string
	pair uint32
	unit uint32
}

// uniformInfo is an active uniform. Default block members have sampler -1.
type uniformInfo struct {
	shader.Uniform
	sampler int
}

type uniformLoc struct {
	index   int
	element int
}

// Program is a program object.
type Program struct {
	name      uint32
	shaders   []*Shader
	deleted   bool
	separable bool

	linked     bool
	linkedSep  bool
	log        string
	validated  bool
	generation uint32
	link       *link

	vertex   *shader.Module
	fragment *shader.Module
	compute  *shader.Module

	uniforms      []uniformInfo
	locations     []uniformLoc
	values        []byte
	uniformBlocks []blockInfo
	storageBlocks []blockInfo
	samplers      []samplerUniform

	varyings       []string
	feedbackMode   glenum.TransformFeedbackBufferMode
	linkedVaryings []string
}

func (p *Program) objectName() uint32 { return p.name }

func (p *Program) id() pipeline.ProgramID {
	return pipeline.ProgramID{Name: p.name, Generation: p.generation}
}

// blockIndex returns the index of the block at shader binding, or -1.
func (p *Program) blockIndex(storage bool, binding uint32) int {
	list := p.uniformBlocks
	if storage {
		list = p.storageBlocks
	}
	for i := range list {
		if list[i].binding == binding {
			return i
		}
	}
	return -1
}

// samplerSlot returns the sampler uniform of a texture pair, or -1.
func (p *Program) samplerSlot(pair uint32) int {
	for i := range p.samplers {
		if p.samplers[i].pair == pair {
			return i
		}
	}
	return -1
}

// program returns the program object named name.
func (c *Context) program(name uint32) (*Program, bool) {
	o, ok := c.programs.Get(name)
	if !ok {
		return nil, false
	}
	p, ok := o.(*Program)
	return p, ok
}

// programObject resolves name for op. A shader name records
// INVALID_OPERATION, an unknown name INVALID_VALUE.
func (c *Context) programObject(op string, name uint32) (*Program, bool) {
	o, ok := c.programs.Get(name)
	if !ok {
		c.errorf(glenum.InvalidValue, "%s: %d is not a shader or program", op, name)
		return nil, false
	}
	p, ok := o.(*Program)
	if !ok {
		c.errorf(glenum.InvalidOperation, "%s: %d is a shader", op, name)
		return nil, false
	}
	return p, true
}

// linkedProgram resolves name and requires a successful link.
func (c *Context) linkedProgram(op string, name uint32) (*Program, bool) {
	p, ok := c.programObject(op, name)
	if !ok {
		return nil, false
	}
	if !p.linked {
		c.errorf(glenum.InvalidOperation, "%s: program %d is not linked", op, name)
		return nil, false
	}
	return p, true
}

// CreateProgram creates an empty program object.
func (c *Context) CreateProgram() uint32 {
	if !c.live() {
		return 0
	}
	name := c.programs.Gen(1)[0]
	c.programs.Set(name, &Program{name: name, feedbackMode: glenum.InterleavedAttribs})
	return name
}

// IsProgram reports whether name is a program object.
func (c *Context) IsProgram(name uint32) bool {
	if !c.live() {
		return false
	}
	_, ok := c.program(name)
	return ok
}

// DeleteProgram deletes a program. A program in use stays alive, flagged
// for deletion, until it is no longer current.
func (c *Context) DeleteProgram(name uint32) {
	if !c.live() || name == 0 {
		return
	}
	p, ok := c.programObject("DeleteProgram", name)
	if !ok {
		return
	}
	p.deleted = true
	c.freeProgram(p)
}

// programInUse reports whether name is part of the current rendering state.
func (c *Context) programInUse(name uint32) bool {
	if c.currentProgram == name {
		return true
	}
	if pp, ok := c.programPipelines.Get(c.programPipeline); ok {
		return pp.uses(name)
	}
	return false
}

// freeProgram releases a deleted program that is not in use.
func (c *Context) freeProgram(p *Program) {
	if !p.deleted || c.programInUse(p.name) {
		return
	}
	for _, s := range p.shaders {
		s.refs--
		c.freeShader(s)
	}
	p.shaders = nil
	c.evictProgram(p.name)
	c.destroyLink(p.link)
	p.link = nil
	c.programs.Delete([]uint32{p.name})
	c.dropLabel(glenum.ObjectProgram, p.name)
}

// releaseIfUnused frees a program left behind by a binding change.
func (c *Context) releaseIfUnused(name uint32) {
	if name == 0 {
		return
	}
	if p, ok := c.program(name); ok {
		c.freeProgram(p)
	}
}

// AttachShader attaches a shader to a program. One shader per stage.
func (c *Context) AttachShader(prog, sh uint32) {
	if !c.live() {
		return
	}
	p, ok := c.programObject("AttachShader", prog)
	if !ok {
		return
	}
	s, ok := c.shaderObject("AttachShader", sh)
	if !ok {
		return
	}
	for _, a := range p.shaders {
		if a == s {
			c.errorf(glenum.InvalidOperation, "AttachShader: shader %d is already attached to program %d", sh, prog)
			return
		}
		if a.kind == s.kind {
			c.errorf(glenum.InvalidOperation, "AttachShader: program %d already has a %s", prog, s.kind)
			return
		}
	}
	p.shaders = append(p.shaders, s)
	s.refs++
}

// DetachShader detaches a shader from a program.
func (c *Context) DetachShader(prog, sh uint32) {
	if !c.live() {
		return
	}
	p, ok := c.programObject("DetachShader", prog)
	if !ok {
		return
	}
	s, ok := c.shaderObject("DetachShader", sh)
	if !ok {
		return
	}
	for i, a := range p.shaders {
		if a == s {
			p.shaders = append(p.shaders[:i], p.shaders[i+1:]...)
			s.refs--
			c.freeShader(s)
			return
		}
	}
	c.errorf(glenum.InvalidOperation, "DetachShader: shader %d is not attached to program %d", sh, prog)
}

// ProgramParameteri sets PROGRAM_SEPARABLE. It takes effect at the next
// link.
func (c *Context) ProgramParameteri(prog uint32, pname glenum.ProgramParameter, value int32) {
	if !c.live() {
		return
	}
	p, ok := c.programObject("ProgramParameteri", prog)
	if !ok {
		return
	}
	if pname != glenum.ProgramSeparable {
		c.errorf(glenum.InvalidEnum, "ProgramParameteri: pname %s", pname)
		return
	}
	if value != 0 && value != 1 {
		c.errorf(glenum.InvalidValue, "ProgramParameteri: value %d", value)
		return
	}
	p.separable = value == 1
}

// TransformFeedbackVaryings sets the outputs captured by transform
// feedback. It takes effect at the next link.
func (c *Context) TransformFeedbackVaryings(prog uint32, varyings []string, mode glenum.TransformFeedbackBufferMode) {
	if !c.live() {
		return
	}
	p, ok := c.programObject("TransformFeedbackVaryings", prog)
	if !ok {
		return
	}
	if mode == glenum.SeparateAttribs && len(varyings) > MaxTransformFeedbackBuffers {
		c.errorf(glenum.InvalidValue, "TransformFeedbackVaryings: %d separate varyings", len(varyings))
		return
	}
	p.varyings = append([]string(nil), varyings...)
	p.feedbackMode = mode
}

// LinkProgram links the attached shaders. A failed link is not an API
// error; its diagnostics go to the info log and the program loses its
// previous executable.
func (c *Context) LinkProgram(name uint32) {
	if !c.live() {
		return
	}
	p, ok := c.programObject("LinkProgram", name)
	if !ok {
		return
	}
	if c.feedbackActive() && c.programInUse(name) {
		c.errorf(glenum.InvalidOperation, "LinkProgram: program %d is in use by active transform feedback", name)
		return
	}

	if p.link != nil || p.linked {
		c.evictProgram(name)
		c.destroyLink(p.link)
	}
	p.link = nil
	p.linked, p.validated = false, false
	p.vertex, p.fragment, p.compute = nil, nil, nil
	p.uniforms, p.locations, p.values = nil, nil, nil
	p.uniformBlocks, p.storageBlocks, p.samplers = nil, nil, nil
	p.generation++
	if c.programInUse(name) {
		c.mark(dirtyProgram | dirtyVertexLayout | dirtyResources)
	}

	if err := c.linkProgram(p); err != nil {
		p.log = err.Error()
		p.vertex, p.fragment, p.compute = nil, nil, nil
		p.uniforms, p.locations, p.values = nil, nil, nil
		p.uniformBlocks, p.storageBlocks, p.samplers = nil, nil, nil
		Logger().Debug("glhal: link failed", "program", name, "log", p.log)
		c.debugMessage(glenum.DebugSourceShaderCompiler, glenum.DebugTypeError, name, glenum.DebugSeverityMedium, p.log)
		return
	}
	p.log = ""
	p.linked = true
	p.linkedSep = p.separable
	p.linkedVaryings = append([]string(nil), p.varyings...)
	Logger().Debug("glhal: program linked", "program", name,
		"generation", p.generation,
		"uniforms", len(p.uniforms),
		"blocks", len(p.uniformBlocks)+len(p.storageBlocks),
		"samplers", len(p.samplers))
}

func (c *Context) linkProgram(p *Program) error {
	var stages [3]linkStage
	for _, s := range p.shaders {
		if !s.compiled {
			return fmt.Errorf("%w: %s %d is not compiled", errLink, s.kind, s.name)
		}
		st := s.module.Stage
		stages[st] = linkStage{module: s.module, owner: p}
	}
	v, f, cs := stages[shader.StageVertex].module, stages[shader.StageFragment].module, stages[shader.StageCompute].module
	switch {
	case cs != nil && (v != nil || f != nil):
		return fmt.Errorf("%w: a compute shader cannot be linked with other stages", errLink)
	case cs == nil && v == nil && f == nil:
		return fmt.Errorf("%w: no shaders attached", errLink)
	case cs == nil && v == nil && !p.separable:
		return fmt.Errorf("%w: no vertex shader", errLink)
	}
	if v != nil {
		if len(v.Inputs) > MaxVertexAttribs {
			return fmt.Errorf("%w: %d vertex inputs, limit %d", errLink, len(v.Inputs), MaxVertexAttribs)
		}
		for _, in := range v.Inputs {
			if in.Location >= MaxVertexAttribs {
				return fmt.Errorf("%w: vertex input %s at location %d", errLink, in.Name, in.Location)
			}
		}
	}
	if f != nil {
		for _, loc := range f.Outputs {
			if loc >= MaxDrawBuffers {
				return fmt.Errorf("%w: fragment output at location %d", errLink, loc)
			}
		}
	}
	if len(p.varyings) > 0 && v == nil {
		return fmt.Errorf("%w: transform feedback varyings without a vertex shader", errLink)
	}
	p.vertex, p.fragment, p.compute = v, f, cs

	if err := p.reflect(); err != nil {
		return err
	}
	l, err := c.buildLink(fmt.Sprintf("program %d", p.name), stages)
	if err != nil {
		c.linkBackendError(err)
		return err
	}
	p.link = l
	return nil
}

// linkBackendError reports backend failures that are not link errors.
func (c *Context) linkBackendError(err error) {
	if !isLinkError(err) {
		c.backendError("LinkProgram", err)
	}
}

func isLinkError(err error) bool { return errors.Is(err, errLink) }

// reflect builds the uniform, block and sampler tables of p from its
// stage modules.
func (p *Program) reflect() error {
	size := uint32(0)
	for _, m := range p.modules() {
		if blk := m.DefaultBlock; blk != nil {
			size = max(size, blk.Size)
			for _, u := range blk.Uniforms {
				if i := p.uniformIndex(u.Name); i >= 0 {
					if p.uniforms[i].Offset != u.Offset || p.uniforms[i].Kind != u.Kind ||
						p.uniforms[i].Components() != u.Components() {
						return fmt.Errorf("%w: uniform %s is declared differently by two stages", errLink, u.Name)
					}
					continue
				}
				p.uniforms = append(p.uniforms, uniformInfo{Uniform: u, sampler: -1})
			}
		}
		for _, r := range m.Resources {
			switch r.Kind {
			case shader.UniformBlock:
				if p.blockIndex(false, r.Binding) < 0 {
					p.uniformBlocks = append(p.uniformBlocks, blockInfo{
						name: r.Name, binding: r.Binding, size: r.Size,
						point: r.Binding % MaxUniformBufferBindings,
					})
				}
			case shader.StorageBlock:
				if p.blockIndex(true, r.Binding) < 0 {
					p.storageBlocks = append(p.storageBlocks, blockInfo{
						name: r.Name, binding: r.Binding, size: r.Size,
						point: r.Binding % MaxShaderStorageBufferBindings,
					})
				}
			case shader.Image:
				if r.Binding >= MaxImageUnits {
					return fmt.Errorf("%w: %s at binding %d exceeds %d image units", errLink, r.Name, r.Binding, MaxImageUnits)
				}
			case shader.Texture, shader.Sampler:
				pair := r.Binding / 2
				if pair >= MaxTextureUnits {
					return fmt.Errorf("%w: %s at binding %d exceeds %d texture units", errLink, r.Name, r.Binding, MaxTextureUnits)
				}
				if i := p.samplerSlot(pair); i >= 0 {
					if r.Kind == shader.Texture {
						p.samplers[i].name = r.Name
					}
					continue
				}
				p.samplers = append(p.samplers, samplerUniform{name: r.Name, pair: pair, unit: pair})
			}
		}
	}
	for i := range p.samplers {
		p.uniforms = append(p.uniforms, uniformInfo{
			Uniform: shader.Uniform{Name: p.samplers[i].name, Kind: shader.KindSint, Columns: 1, Rows: 1, ArrayLen: 1},
			sampler: i,
		})
	}
	for i := range p.uniforms {
		for e := 0; e < p.uniforms[i].ArrayLen; e++ {
			p.locations = append(p.locations, uniformLoc{index: i, element: e})
		}
	}
	p.values = make([]byte, size)
	return nil
}

func (p *Program) modules() []*shader.Module {
	var out []*shader.Module
	for _, m := range []*shader.Module{p.vertex, p.fragment, p.compute} {
		if m != nil {
			out = append(out, m)
		}
	}
	return out
}

func (p *Program) uniformIndex(name string) int {
	for i := range p.uniforms {
		if p.uniforms[i].Name == name {
			return i
		}
	}
	return -1
}

// location returns the location of name, accepting name[i] for array
// elements and name[0] for the array itself.
func (p *Program) location(name string) int32 {
	base, elem := name, 0
	if n := len(name); n > 3 && name[n-1] == ']' {
		if open := strings.LastIndexByte(name, '['); open > 0 {
			v := 0
			digits := name[open+1 : n-1]
			ok := digits != ""
			for _, ch := range digits {
				if ch < '0' || ch > '9' {
					ok = false
					break
				}
				v = v*10 + int(ch-'0')
			}
			if ok {
				base, elem = name[:open], v
			}
		}
	}
	for loc, l := range p.locations {
		u := &p.uniforms[l.index]
		if u.Name == base && l.element == elem {
			return int32(loc)
		}
	}
	return -1
}

// UseProgram installs a program for rendering. Zero uninstalls.
func (c *Context) UseProgram(name uint32) {
	if !c.live() {
		return
	}
	if c.feedbackActive() && !c.feedbackPaused() {
		c.errorf(glenum.InvalidOperation, "UseProgram: transform feedback is active")
		return
	}
	if name != 0 {
		p, ok := c.programObject("UseProgram", name)
		if !ok {
			return
		}
		if !p.linked {
			c.errorf(glenum.InvalidOperation, "UseProgram: program %d is not linked", name)
			return
		}
	}
	if c.currentProgram == name {
		return
	}
	old := c.currentProgram
	c.currentProgram = name
	c.mark(dirtyProgram | dirtyVertexLayout | dirtyResources)
	c.releaseIfUnused(old)
}

// ValidateProgram checks whether the program can run in the current state.
func (c *Context) ValidateProgram(name uint32) {
	if !c.live() {
		return
	}
	p, ok := c.programObject("ValidateProgram", name)
	if !ok {
		return
	}
	p.validated = false
	switch {
	case !p.linked:
		p.log = "program is not linked"
	default:
		if msg := c.samplerConflict(p); msg != "" {
			p.log = msg
			return
		}
		p.validated = true
	}
}

// samplerConflict reports texture units read with two view dimensions.
func (c *Context) samplerConflict(p *Program) string {
	if p.link == nil {
		return ""
	}
	seen := make(map[uint32]*linkTexture)
	for i := range p.link.textures {
		t := &p.link.textures[i]
		if t.sampler {
			continue
		}
		unit := p.samplers[t.slot].unit
		if prev, ok := seen[unit]; ok && prev.dim != t.dim {
			return fmt.Sprintf("texture unit %d is read as %s and %s", unit, prev.dim, t.dim)
		}
		seen[unit] = t
	}
	return ""
}

// GetProgramiv returns program parameters into params.
func (c *Context) GetProgramiv(name uint32, pname glenum.ProgramParameter, params []int32) {
	if !c.live() {
		return
	}
	p, ok := c.programObject("GetProgramiv", name)
	if !ok {
		return
	}
	if len(params) == 0 {
		c.errorf(glenum.InvalidValue, "GetProgramiv: no room for %s", pname)
		return
	}
	b := func(v bool) int32 { return glenum.ToInt32(glenum.FromBool(v)) }
	switch pname {
	case glenum.ProgramDeleteStatus:
		params[0] = b(p.deleted)
	case glenum.LinkStatus:
		params[0] = b(p.linked)
	case glenum.ValidateStatus:
		params[0] = b(p.validated)
	case glenum.ProgramInfoLogLength:
		params[0] = logLength(p.log)
	case glenum.AttachedShaders:
		params[0] = int32(len(p.shaders))
	case glenum.ActiveUniforms:
		params[0] = int32(len(p.uniforms))
	case glenum.ActiveUniformMaxLength:
		n := 0
		for _, u := range p.uniforms {
			n = max(n, len(u.Name)+1)
		}
		params[0] = int32(n)
	case glenum.ActiveAttributes, glenum.ActiveAttributeMaxLength:
		n, longest := 0, 0
		if p.vertex != nil {
			n = len(p.vertex.Inputs)
			for _, in := range p.vertex.Inputs {
				longest = max(longest, len(in.Name)+1)
			}
		}
		if pname == glenum.ActiveAttributes {
			params[0] = int32(n)
		} else {
			params[0] = int32(longest)
		}
	case glenum.ActiveUniformBlocks:
		params[0] = int32(len(p.uniformBlocks))
	case glenum.ProgramSeparable:
		params[0] = b(p.separable)
	case glenum.TransformFeedbackVaryingCount:
		params[0] = int32(len(p.linkedVaryings))
	case glenum.ComputeWorkGroupSize:
		if !p.linked || p.compute == nil {
			c.errorf(glenum.InvalidOperation, "GetProgramiv: program %d has no compute stage", name)
			return
		}
		if len(params) < 3 {
			c.errorf(glenum.InvalidValue, "GetProgramiv: COMPUTE_WORK_GROUP_SIZE needs 3 values")
			return
		}
		for i, v := range p.compute.Workgroup {
			params[i] = int32(v)
		}
	default:
		c.errorf(glenum.InvalidEnum, "GetProgramiv: pname %s", pname)
	}
}

// GetProgramInfoLog returns the diagnostics of the last link or
// validation.
func (c *Context) GetProgramInfoLog(name uint32) string {
	if !c.live() {
		return ""
	}
	p, ok := c.programObject("GetProgramInfoLog", name)
	if !ok {
		return ""
	}
	return p.log
}

// GetUniformLocation returns the location of an active uniform, or -1.
func (c *Context) GetUniformLocation(prog uint32, name string) int32 {
	if !c.live() {
		return -1
	}
	p, ok := c.linkedProgram("GetUniformLocation", prog)
	if !ok {
		return -1
	}
	return p.location(name)
}

// GetAttribLocation returns the location of an active vertex input, or -1.
func (c *Context) GetAttribLocation(prog uint32, name string) int32 {
	if !c.live() {
		return -1
	}
	p, ok := c.linkedProgram("GetAttribLocation", prog)
	if !ok || p.vertex == nil {
		return -1
	}
	if in, ok := p.vertex.Input(name); ok {
		return int32(in.Location)
	}
	return -1
}

// GetUniformBlockIndex returns the index of a uniform block, or
// InvalidIndex.
func (c *Context) GetUniformBlockIndex(prog uint32, name string) uint32 {
	if !c.live() {
		return InvalidIndex
	}
	p, ok := c.linkedProgram("GetUniformBlockIndex", prog)
	if !ok {
		return InvalidIndex
	}
	return blockByName(p.uniformBlocks, name)
}

func blockByName(list []blockInfo, name string) uint32 {
	for i := range list {
		if list[i].name == name {
			return uint32(i)
		}
	}
	return InvalidIndex
}

// UniformBlockBinding selects the UNIFORM_BUFFER binding a block reads.
func (c *Context) UniformBlockBinding(prog, index, point uint32) {
	if !c.live() {
		return
	}
	p, ok := c.linkedProgram("UniformBlockBinding", prog)
	if !ok {
		return
	}
	c.blockBinding("UniformBlockBinding", p, p.uniformBlocks, index, point, MaxUniformBufferBindings)
}

// ShaderStorageBlockBinding selects the SHADER_STORAGE_BUFFER binding a
// block reads.
func (c *Context) ShaderStorageBlockBinding(prog, index, point uint32) {
	if !c.live() {
		return
	}
	p, ok := c.linkedProgram("ShaderStorageBlockBinding", prog)
	if !ok {
		return
	}
	c.blockBinding("ShaderStorageBlockBinding", p, p.storageBlocks, index, point, MaxShaderStorageBufferBindings)
}

func (c *Context) blockBinding(op string, p *Program, list []blockInfo, index, point uint32, limit int) {
	if index >= uint32(len(list)) {
		c.errorf(glenum.InvalidValue, "%s: block index %d", op, index)
		return
	}
	if point >= uint32(limit) {
		c.errorf(glenum.InvalidValue, "%s: binding %d, limit %d", op, point, limit)
		return
	}
	if list[index].point == point {
		return
	}
	list[index].point = point
	if c.programInUse(p.name) {
		c.mark(dirtyStorage)
	}
}

// GetProgramResourceIndex returns the index of a named resource of a
// program interface, or InvalidIndex.
func (c *Context) GetProgramResourceIndex(prog uint32, iface glenum.ProgramInterface, name string) uint32 {
	if !c.live() {
		return InvalidIndex
	}
	p, ok := c.linkedProgram("GetProgramResourceIndex", prog)
	if !ok {
		return InvalidIndex
	}
	switch iface {
	case glenum.UniformBlockInterface:
		return blockByName(p.uniformBlocks, name)
	case glenum.ShaderStorageBlockInterface:
		return blockByName(p.storageBlocks, name)
	case glenum.UniformInterface:
		if i := p.uniformIndex(strings.TrimSuffix(name, "[0]")); i >= 0 {
			return uint32(i)
		}
		return InvalidIndex
	case glenum.ProgramInputInterface:
		if p.vertex != nil {
			for i, in := range p.vertex.Inputs {
				if in.Name == name {
					return uint32(i)
				}
			}
		}
		return InvalidIndex
	}
	c.errorf(glenum.InvalidEnum, "GetProgramResourceIndex: interface %s", iface)
	return InvalidIndex
}
