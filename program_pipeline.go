// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"fmt"

	"github.com/gogpu/glhal/glenum"
	"github.com/gogpu/glhal/internal/pipeline"
	"github.com/gogpu/glhal/internal/shader"
)

// Program pipeline stage slots.
const (
	slotVertex = iota
	slotFragment
	slotCompute
)

// ProgramPipeline combines the stages of separable programs.
type ProgramPipeline struct {
	name      uint32
	stages    [3]uint32
	active    uint32
	validated bool
	log       string
}

func newProgramPipeline(name uint32) *ProgramPipeline {
	return &ProgramPipeline{name: name}
}

func (pp *ProgramPipeline) uses(name uint32) bool {
	return name != 0 && (pp.stages[0] == name || pp.stages[1] == name || pp.stages[2] == name || pp.active == name)
}

// GenProgramPipelines reserves n program pipeline names.
func (c *Context) GenProgramPipelines(n int32) []uint32 {
	if !c.live() || !c.count("GenProgramPipelines", n) {
		return nil
	}
	return c.programPipelines.Gen(int(n))
}

// CreateProgramPipelines creates n program pipelines.
func (c *Context) CreateProgramPipelines(n int32) []uint32 {
	if !c.live() || !c.count("CreateProgramPipelines", n) {
		return nil
	}
	return c.programPipelines.Create(int(n))
}

// IsProgramPipeline reports whether name is a program pipeline.
func (c *Context) IsProgramPipeline(name uint32) bool {
	if !c.live() {
		return false
	}
	return c.programPipelines.Is(name)
}

// DeleteProgramPipelines deletes program pipelines. A bound pipeline is
// unbound first.
func (c *Context) DeleteProgramPipelines(list []uint32) {
	if !c.live() {
		return
	}
	if !c.count("DeleteProgramPipelines", int32(len(list))) {
		return
	}
	for _, name := range list {
		if name == 0 || !c.programPipelines.Reserved(name) {
			continue
		}
		if c.programPipeline == name {
			c.bindProgramPipeline(0)
		}
		c.dropLabel(glenum.ObjectProgramPipeline, name)
	}
	c.programPipelines.Delete(list)
}

// BindProgramPipeline makes a program pipeline supply the stages of draws
// and dispatches while no program is current.
func (c *Context) BindProgramPipeline(name uint32) {
	if !c.live() {
		return
	}
	if c.feedbackActive() && !c.feedbackPaused() {
		c.errorf(glenum.InvalidOperation, "BindProgramPipeline: transform feedback is active")
		return
	}
	c.bindProgramPipeline(name)
}

func (c *Context) bindProgramPipeline(name uint32) {
	if c.programPipeline == name {
		return
	}
	var old []uint32
	if pp, ok := c.programPipelines.Get(c.programPipeline); ok {
		old = append(old, pp.stages[:]...)
		old = append(old, pp.active)
	}
	if name != 0 {
		bindName(c.programPipelines, name)
	}
	c.programPipeline = name
	if c.currentProgram == 0 {
		c.mark(dirtyProgram | dirtyVertexLayout | dirtyResources)
	}
	for _, n := range old {
		c.releaseIfUnused(n)
	}
}

// pipelineObject initializes and returns a reserved program pipeline.
func (c *Context) pipelineObject(op string, name uint32) (*ProgramPipeline, bool) {
	if name == 0 || !c.programPipelines.Reserved(name) {
		c.errorf(glenum.InvalidOperation, "%s: %d is not a program pipeline name", op, name)
		return nil, false
	}
	return c.programPipelines.EnsureInit(name), true
}

// separableProgram resolves a program usable as a pipeline stage.
func (c *Context) separableProgram(op string, name uint32) (*Program, bool) {
	p, ok := c.programObject(op, name)
	if !ok {
		return nil, false
	}
	if !p.linked || !p.linkedSep {
		c.errorf(glenum.InvalidOperation, "%s: program %d is not linked as separable", op, name)
		return nil, false
	}
	return p, true
}

// UseProgramStages installs the stages named by mask of program in a
// program pipeline. Program zero clears them.
func (c *Context) UseProgramStages(name uint32, mask glenum.ShaderStageMask, program uint32) {
	if !c.live() {
		return
	}
	valid := glenum.VertexShaderBit | glenum.FragmentShaderBit | glenum.ComputeShaderBit
	if mask != glenum.AllShaderBits && mask.Difference(valid) != 0 {
		c.errorf(glenum.InvalidValue, "UseProgramStages: stages %#x", uint32(mask))
		return
	}
	pp, ok := c.pipelineObject("UseProgramStages", name)
	if !ok {
		return
	}
	if program != 0 {
		if _, ok := c.separableProgram("UseProgramStages", program); !ok {
			return
		}
	}
	var replaced []uint32
	for slot, bit := range []glenum.ShaderStageMask{glenum.VertexShaderBit, glenum.FragmentShaderBit, glenum.ComputeShaderBit} {
		if !mask.Contains(bit) || pp.stages[slot] == program {
			continue
		}
		replaced = append(replaced, pp.stages[slot])
		pp.stages[slot] = program
	}
	if len(replaced) == 0 {
		return
	}
	pp.validated = false
	if c.programPipeline == name && c.currentProgram == 0 {
		c.mark(dirtyProgram | dirtyVertexLayout | dirtyResources)
	}
	for _, n := range replaced {
		c.releaseIfUnused(n)
	}
}

// ActiveShaderProgram selects the program Uniform* calls modify while the
// pipeline is bound and no program is current.
func (c *Context) ActiveShaderProgram(name, program uint32) {
	if !c.live() {
		return
	}
	pp, ok := c.pipelineObject("ActiveShaderProgram", name)
	if !ok {
		return
	}
	if program != 0 {
		p, ok := c.programObject("ActiveShaderProgram", program)
		if !ok {
			return
		}
		if !p.linked {
			c.errorf(glenum.InvalidOperation, "ActiveShaderProgram: program %d is not linked", program)
			return
		}
	}
	old := pp.active
	pp.active = program
	c.releaseIfUnused(old)
}

// ValidateProgramPipeline checks whether the pipeline can draw.
func (c *Context) ValidateProgramPipeline(name uint32) bool {
	if !c.live() {
		return false
	}
	pp, ok := c.pipelineObject("ValidateProgramPipeline", name)
	if !ok {
		return false
	}
	pp.validated, pp.log = false, ""
	if _, err := c.pipelineLink(pp, false); err != nil {
		pp.log = err.Error()
		return false
	}
	pp.validated = true
	return true
}

// GetProgramPipelineInfoLog returns the diagnostics of the last validation.
func (c *Context) GetProgramPipelineInfoLog(name uint32) string {
	if !c.live() {
		return ""
	}
	pp, ok := c.pipelineObject("GetProgramPipelineInfoLog", name)
	if !ok {
		return ""
	}
	return pp.log
}

// stageProgram returns the linked program installed in a pipeline slot.
func (c *Context) stageProgram(pp *ProgramPipeline, slot int) *Program {
	p, ok := c.program(pp.stages[slot])
	if !ok || !p.linked {
		return nil
	}
	return p
}

// pipelineLink returns the link that runs the stages of pp.
func (c *Context) pipelineLink(pp *ProgramPipeline, compute bool) (*link, error) {
	if compute {
		p := c.stageProgram(pp, slotCompute)
		if p == nil || p.compute == nil {
			return nil, fmt.Errorf("%w: program pipeline %d has no compute stage", errLink, pp.name)
		}
		return p.link, nil
	}
	vp, fp := c.stageProgram(pp, slotVertex), c.stageProgram(pp, slotFragment)
	if vp == nil || vp.vertex == nil {
		return nil, fmt.Errorf("%w: program pipeline %d has no vertex stage", errLink, pp.name)
	}
	if fp != nil && fp.fragment == nil {
		fp = nil
	}
	if fp == vp || (fp == nil && vp.fragment == nil) {
		return vp.link, nil
	}
	var fid pipeline.ProgramID
	if fp != nil {
		fid = fp.id()
	}
	key := [2]pipeline.ProgramID{vp.id(), fid}
	if l, ok := c.links[key]; ok {
		return l, nil
	}
	var stages [3]linkStage
	stages[shader.StageVertex] = linkStage{module: vp.vertex, owner: vp}
	if fp != nil {
		stages[shader.StageFragment] = linkStage{module: fp.fragment, owner: fp}
	}
	l, err := c.buildLink(fmt.Sprintf("pipeline %d", pp.name), stages)
	if err != nil {
		c.linkBackendError(err)
		return nil, err
	}
	c.links[key] = l
	Logger().Debug("glhal: program pipeline linked", "pipeline", pp.name,
		"vertex", vp.name, "fragment", fid.Name)
	return l, nil
}
