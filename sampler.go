// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/glhal/glenum"
)

// samplerState is the sampling state shared by textures and sampler
// objects. It is comparable and keys the backend sampler cache.
type samplerState struct {
	minFilter   glenum.TextureFilter
	magFilter   glenum.TextureFilter
	wrapS       glenum.TextureWrap
	wrapT       glenum.TextureWrap
	wrapR       glenum.TextureWrap
	minLOD      float32
	maxLOD      float32
	lodBias     float32
	compareMode glenum.CompareMode
	compareFunc glenum.CompareFunc
	anisotropy  float32
	border      [4]float32
}

func defaultSamplerState() samplerState {
	return samplerState{
		minFilter:   glenum.NearestMipmapLinear,
		magFilter:   glenum.Linear,
		wrapS:       glenum.Repeat,
		wrapT:       glenum.Repeat,
		wrapR:       glenum.Repeat,
		minLOD:      -1000,
		maxLOD:      1000,
		compareMode: glenum.CompareNone,
		compareFunc: glenum.LEqual,
		anisotropy:  1,
	}
}

// MaxTextureMaxAnisotropy is the largest accepted TEXTURE_MAX_ANISOTROPY.
const MaxTextureMaxAnisotropy = 16

// set applies one sampling parameter. fv holds the value as float; iv as
// integer. It reports whether pname is a sampling parameter and records
// errors for bad values.
func (s *samplerState) set(c *Context, op string, pname glenum.TextureParameter, iv int32, fv []float32) (known, ok bool) {
	enum := uint32(iv)
	switch pname {
	case glenum.TextureMinFilter:
		f := glenum.TextureFilter(enum)
		switch f {
		case glenum.Nearest, glenum.Linear, glenum.NearestMipmapNearest, glenum.LinearMipmapNearest,
			glenum.NearestMipmapLinear, glenum.LinearMipmapLinear:
			s.minFilter = f
			return true, true
		}
	case glenum.TextureMagFilter:
		f := glenum.TextureFilter(enum)
		if f == glenum.Nearest || f == glenum.Linear {
			s.magFilter = f
			return true, true
		}
	case glenum.TextureWrapS, glenum.TextureWrapT, glenum.TextureWrapR:
		w := glenum.TextureWrap(enum)
		switch w {
		case glenum.Repeat, glenum.ClampToEdge, glenum.ClampToBorder, glenum.MirroredRepeat, glenum.MirrorClampToEdge:
		default:
			c.errorf(glenum.InvalidEnum, "%s: wrap %s", op, w)
			return true, false
		}
		switch pname {
		case glenum.TextureWrapS:
			s.wrapS = w
		case glenum.TextureWrapT:
			s.wrapT = w
		default:
			s.wrapR = w
		}
		return true, true
	case glenum.TextureMinLOD:
		s.minLOD = fv[0]
		return true, true
	case glenum.TextureMaxLOD:
		s.maxLOD = fv[0]
		return true, true
	case glenum.TextureLODBias:
		s.lodBias = fv[0]
		return true, true
	case glenum.TextureCompareMode:
		m := glenum.CompareMode(enum)
		if m == glenum.CompareNone || m == glenum.CompareRefToTexture {
			s.compareMode = m
			return true, true
		}
	case glenum.TextureCompareFunc:
		f := glenum.CompareFunc(enum)
		if f >= glenum.Never && f <= glenum.Always {
			s.compareFunc = f
			return true, true
		}
	case glenum.TextureMaxAnisotropy:
		if fv[0] < 1 {
			c.errorf(glenum.InvalidValue, "%s: anisotropy %v", op, fv[0])
			return true, false
		}
		s.anisotropy = min(fv[0], MaxTextureMaxAnisotropy)
		return true, true
	case glenum.TextureBorderColor:
		if len(fv) < 4 {
			c.errorf(glenum.InvalidEnum, "%s: TEXTURE_BORDER_COLOR needs four values", op)
			return true, false
		}
		copy(s.border[:], fv)
		return true, true
	default:
		return false, false
	}
	c.errorf(glenum.InvalidEnum, "%s: %s value 0x%X", op, pname, enum)
	return true, false
}

// get reads one sampling parameter as floats.
func (s *samplerState) get(pname glenum.TextureParameter) ([]float32, bool) {
	switch pname {
	case glenum.TextureMinFilter:
		return []float32{float32(s.minFilter)}, true
	case glenum.TextureMagFilter:
		return []float32{float32(s.magFilter)}, true
	case glenum.TextureWrapS:
		return []float32{float32(s.wrapS)}, true
	case glenum.TextureWrapT:
		return []float32{float32(s.wrapT)}, true
	case glenum.TextureWrapR:
		return []float32{float32(s.wrapR)}, true
	case glenum.TextureMinLOD:
		return []float32{s.minLOD}, true
	case glenum.TextureMaxLOD:
		return []float32{s.maxLOD}, true
	case glenum.TextureLODBias:
		return []float32{s.lodBias}, true
	case glenum.TextureCompareMode:
		return []float32{float32(s.compareMode)}, true
	case glenum.TextureCompareFunc:
		return []float32{float32(s.compareFunc)}, true
	case glenum.TextureMaxAnisotropy:
		return []float32{s.anisotropy}, true
	case glenum.TextureBorderColor:
		return s.border[:], true
	}
	return nil, false
}

// descriptor converts the state to a backend sampler. Comparison is
// honored only for depth formats.
func (s samplerState) descriptor(depth bool) hal.SamplerDescriptor {
	d := hal.SamplerDescriptor{
		Label:        "glhal",
		AddressModeU: addressMode(s.wrapS),
		AddressModeV: addressMode(s.wrapT),
		AddressModeW: addressMode(s.wrapR),
		MagFilter:    filterMode(s.magFilter),
		MinFilter:    filterMode(s.minFilter),
		MipmapFilter: mipmapMode(s.minFilter),
		LodMinClamp:  max(s.minLOD, 0),
		LodMaxClamp:  s.maxLOD,
		Anisotropy:   uint16(math.Round(float64(s.anisotropy))),
	}
	if !s.minFilter.Mipmapped() {
		d.LodMaxClamp = 0.25
	}
	if d.LodMaxClamp < d.LodMinClamp {
		d.LodMaxClamp = d.LodMinClamp
	}
	if depth && s.compareMode == glenum.CompareRefToTexture {
		d.Compare = compareFunction(s.compareFunc)
	}
	if d.Anisotropy > 1 && (d.MagFilter != gputypes.FilterModeLinear || d.MinFilter != gputypes.FilterModeLinear || d.MipmapFilter != gputypes.FilterModeLinear) {
		d.Anisotropy = 1
	}
	return d
}

// backendSampler is a cached backend sampler.
type backendSampler struct {
	hal    hal.Sampler
	serial uint64
}

type samplerCacheKey struct {
	state samplerState
	depth bool
}

// backendSamplerFor returns the cached backend sampler for s.
func (c *Context) backendSamplerFor(s samplerState, depth bool) (*backendSampler, bool) {
	if !depth || s.compareMode != glenum.CompareRefToTexture {
		s.compareFunc = 0
		depth = false
	}
	s.border = [4]float32{}
	k := samplerCacheKey{s, depth}
	if bs, ok := c.samplerCache[k]; ok {
		return bs, true
	}
	desc := s.descriptor(depth)
	h, err := c.dev.HAL.CreateSampler(&desc)
	if err != nil {
		c.backendError("CreateSampler", err)
		return nil, false
	}
	bs := &backendSampler{hal: h, serial: c.dev.NextSerial()}
	c.samplerCache[k] = bs
	Logger().Debug("glhal: sampler created", "min", s.minFilter, "mag", s.magFilter)
	return bs, true
}

// Sampler is the body of a sampler object.
type Sampler struct {
	name  uint32
	state samplerState
}

func newSampler(name uint32) *Sampler {
	return &Sampler{name: name, state: defaultSamplerState()}
}

// GenSamplers reserves n sampler names.
func (c *Context) GenSamplers(n int32) []uint32 {
	if !c.live() || !c.count("GenSamplers", n) {
		return nil
	}
	return c.samplers.Gen(int(n))
}

// CreateSamplers creates n sampler objects.
func (c *Context) CreateSamplers(n int32) []uint32 {
	if !c.live() || !c.count("CreateSamplers", n) {
		return nil
	}
	return c.samplers.Create(int(n))
}

// IsSampler reports whether name is a sampler object.
func (c *Context) IsSampler(name uint32) bool {
	if !c.live() {
		return false
	}
	return c.samplers.Is(name)
}

// DeleteSamplers deletes sampler objects and unbinds them from every unit.
func (c *Context) DeleteSamplers(list []uint32) {
	if !c.live() {
		return
	}
	for _, name := range list {
		if name == 0 || !c.samplers.Reserved(name) {
			continue
		}
		for i := range c.units {
			if c.units[i].sampler == name {
				c.units[i].sampler = 0
				c.mark(dirtyTextures)
			}
		}
		c.dropLabel(glenum.ObjectSampler, name)
	}
	c.samplers.Delete(list)
}

// BindSampler binds a sampler object to a texture unit. Zero restores the
// sampling state of the bound texture.
func (c *Context) BindSampler(unit uint32, name uint32) {
	if !c.live() {
		return
	}
	if unit >= MaxTextureUnits {
		c.errorf(glenum.InvalidValue, "BindSampler: unit %d", unit)
		return
	}
	if name != 0 {
		bindName(c.samplers, name)
	}
	if c.units[unit].sampler != name {
		c.units[unit].sampler = name
		c.mark(dirtyTextures)
	}
}

func (c *Context) samplerObject(op string, name uint32) (*Sampler, bool) {
	if !c.samplers.Reserved(name) || name == 0 {
		c.errorf(glenum.InvalidOperation, "%s: %d is not a sampler", op, name)
		return nil, false
	}
	return c.samplers.EnsureInit(name), true
}

// SamplerParameteri sets an integer sampler parameter.
func (c *Context) SamplerParameteri(name uint32, pname glenum.TextureParameter, param int32) {
	c.samplerParameter("SamplerParameteri", name, pname, param, []float32{float32(param)})
}

// SamplerParameterf sets a float sampler parameter.
func (c *Context) SamplerParameterf(name uint32, pname glenum.TextureParameter, param float32) {
	c.samplerParameter("SamplerParameterf", name, pname, int32(param), []float32{param})
}

// SamplerParameterfv sets a vector sampler parameter such as the border
// color.
func (c *Context) SamplerParameterfv(name uint32, pname glenum.TextureParameter, params []float32) {
	if len(params) == 0 {
		c.errorf(glenum.InvalidValue, "SamplerParameterfv: no values")
		return
	}
	c.samplerParameter("SamplerParameterfv", name, pname, int32(params[0]), params)
}

func (c *Context) samplerParameter(op string, name uint32, pname glenum.TextureParameter, iv int32, fv []float32) {
	if !c.live() {
		return
	}
	s, ok := c.samplerObject(op, name)
	if !ok {
		return
	}
	next := s.state
	known, valid := next.set(c, op, pname, iv, fv)
	if !known {
		c.errorf(glenum.InvalidEnum, "%s: pname %s", op, pname)
		return
	}
	if valid && next != s.state {
		s.state = next
		c.mark(dirtyTextures)
	}
}

// GetSamplerParameteriv reads a sampler parameter into params.
func (c *Context) GetSamplerParameteriv(name uint32, pname glenum.TextureParameter, params []int32) {
	if !c.live() {
		return
	}
	s, ok := c.samplerObject("GetSamplerParameteriv", name)
	if !ok {
		return
	}
	v, ok := s.state.get(pname)
	if !ok {
		c.errorf(glenum.InvalidEnum, "GetSamplerParameteriv: pname %s", pname)
		return
	}
	for i := 0; i < len(v) && i < len(params); i++ {
		params[i] = int32(v[i])
	}
}

// GetSamplerParameterfv reads a sampler parameter into params.
func (c *Context) GetSamplerParameterfv(name uint32, pname glenum.TextureParameter, params []float32) {
	if !c.live() {
		return
	}
	s, ok := c.samplerObject("GetSamplerParameterfv", name)
	if !ok {
		return
	}
	v, ok := s.state.get(pname)
	if !ok {
		c.errorf(glenum.InvalidEnum, "GetSamplerParameterfv: pname %s", pname)
		return
	}
	copy(params, v)
}
