// Package shader compiles WGSL shader stages for the context and reflects
// the interface a program needs to be linked and bound: vertex inputs,
// fragment outputs, uniform and storage blocks, textures, samplers and the
// default uniform block.
//
// Resource groups follow a fixed convention:
//
//	@group(0)  uniform and storage blocks, bound from the indexed buffer bindings
//	@group(1)  textures at even bindings, samplers at odd bindings; the pair
//	           (2n, 2n+1) reads texture unit n unless remapped
//	@group(2)  @binding(0) is the default uniform block holding loose uniforms
//	@group(3)  storage textures; @binding(n) reads image unit n
package shader

import (
	"errors"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
	"github.com/gogpu/naga/spirv"
)

// Resource groups.
const (
	GroupBlocks   = 0
	GroupTextures = 1
	GroupDefault  = 2
	GroupImages   = 3

	// NumGroups is the number of bind groups in every pipeline layout.
	NumGroups = 4
)

// Errors returned by Compile.
var (
	ErrEmptySource      = errors.New("shader: empty source")
	ErrNoEntryPoint     = errors.New("shader: no entry point for stage")
	ErrUnsupportedGroup = errors.New("shader: resource in unsupported bind group")
	ErrStorageTexture   = errors.New("shader: unsupported storage texture")
)

// Stage is a pipeline stage.
type Stage uint8

// Stages.
const (
	StageVertex Stage = iota
	StageFragment
	StageCompute
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageCompute:
		return "compute"
	}
	return fmt.Sprintf("Stage(%d)", uint8(s))
}

func (s Stage) ir() ir.ShaderStage {
	switch s {
	case StageFragment:
		return ir.StageFragment
	case StageCompute:
		return ir.StageCompute
	}
	return ir.StageVertex
}

// Options controls compilation.
type Options struct {
	// Validate runs IR validation before code generation.
	Validate bool
	// Debug embeds debug names in the SPIR-V output.
	Debug bool
}

// DefaultOptions returns the options used by contexts.
func DefaultOptions() Options {
	return Options{Validate: true}
}

// Module is a compiled shader stage.
type Module struct {
	Source     string
	SPIRV      []uint32
	Stage      Stage
	EntryPoint string
	Workgroup  [3]uint32

	Inputs       []Input
	Outputs      []uint32
	Resources    []Resource
	DefaultBlock *Block
}

// Compile parses, validates and reflects one stage of source and emits
// SPIR-V for it.
func Compile(source string, stage Stage, opts Options) (*Module, error) {
	if source == "" {
		return nil, ErrEmptySource
	}
	ast, err := naga.Parse(source)
	if err != nil {
		return nil, err
	}
	mod, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return nil, err
	}
	if opts.Validate {
		verrs, err := naga.Validate(mod)
		if err != nil {
			return nil, err
		}
		if len(verrs) > 0 {
			return nil, &verrs[0]
		}
	}

	ep, err := pickEntryPoint(mod, stage)
	if err != nil {
		return nil, err
	}

	out := &Module{
		Source:     source,
		Stage:      stage,
		EntryPoint: ep.Name,
		Workgroup:  ep.Workgroup,
	}
	if err := reflectModule(mod, ep, out); err != nil {
		return nil, err
	}

	code, err := naga.GenerateSPIRV(mod, spirv.Options{Version: spirv.Version1_3, Debug: opts.Debug})
	if err != nil {
		return nil, err
	}
	out.SPIRV = words(code)

	slogger().Debug("shader: compiled",
		"stage", stage,
		"entry", ep.Name,
		"inputs", len(out.Inputs),
		"resources", len(out.Resources),
		"spirv_words", len(out.SPIRV))
	return out, nil
}

// pickEntryPoint returns the entry point named "main" for the stage, or the
// first one.
func pickEntryPoint(mod *ir.Module, stage Stage) (*ir.EntryPoint, error) {
	var found *ir.EntryPoint
	for i := range mod.EntryPoints {
		ep := &mod.EntryPoints[i]
		if ep.Stage != stage.ir() {
			continue
		}
		if ep.Name == "main" {
			return ep, nil
		}
		if found == nil {
			found = ep
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%w %s", ErrNoEntryPoint, stage)
	}
	return found, nil
}

// words converts little-endian SPIR-V bytes to words.
func words(b []byte) []uint32 {
	out := make([]uint32, len(b)/4)
	for i := range out {
		out[i] = uint32(b[i*4]) |
			uint32(b[i*4+1])<<8 |
			uint32(b[i*4+2])<<16 |
			uint32(b[i*4+3])<<24
	}
	return out
}

// Resource finds the resource at group/binding.
func (m *Module) Resource(group, binding uint32) (*Resource, bool) {
	for i := range m.Resources {
		r := &m.Resources[i]
		if r.Group == group && r.Binding == binding {
			return r, true
		}
	}
	return nil, false
}

// Input finds a vertex input by name.
func (m *Module) Input(name string) (Input, bool) {
	for _, in := range m.Inputs {
		if in.Name == name {
			return in, true
		}
	}
	return Input{}, false
}

// WritesLocation reports whether the fragment stage writes the location.
func (m *Module) WritesLocation(loc uint32) bool {
	for _, l := range m.Outputs {
		if l == loc {
			return true
		}
	}
	return false
}
