// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"fmt"
	"io"
	"time"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/glhal/glenum"
	"github.com/gogpu/glhal/internal/bindcache"
	"github.com/gogpu/glhal/internal/device"
	"github.com/gogpu/glhal/internal/names"
	"github.com/gogpu/glhal/internal/pipeline"
	"github.com/gogpu/glhal/internal/translator"
)

// Implementation limits.
const (
	MaxDrawBuffers                 = pipeline.MaxColorTargets
	MaxViewports                   = 1
	MaxViewportDim                 = 16384
	MaxVertexAttribs               = pipeline.MaxVertexAttribs
	MaxVertexAttribBindings        = pipeline.MaxVertexBuffers
	MaxTextureUnits                = 32
	MaxImageUnits                  = 8
	MaxUniformBufferBindings       = 24
	MaxShaderStorageBufferBindings = 8
	MaxAtomicCounterBufferBindings = 8
	MaxTransformFeedbackBuffers    = 4
	MaxSamples                     = 4
)

// Context is the state machine of one GL context over a backend device.
//
// A Context is not safe for concurrent use. Every method records API errors
// on the context error stack instead of returning them; GetError drains it.
// Context implements io.Closer.
type Context struct {
	dev       *device.Device
	ownDevice bool
	translate translator.Translator
	library   *translator.Library
	closed    bool

	lost  bool
	errs  errorStack
	debug debugState
	state fixedState
	pixel pixelStore
	dirty dirty

	// Object tables. Shaders and programs share one namespace.
	buffers          *names.List[*Buffer]
	textures         *names.List[*Texture]
	samplers         *names.List[*Sampler]
	vertexArrays     *names.List[*VertexArray]
	framebuffers     *names.List[*Framebuffer]
	renderbuffers    *names.List[*Renderbuffer]
	programs         *names.List[programObject]
	programPipelines *names.List[*ProgramPipeline]
	queries          *names.List[*Query]
	feedbacks        *names.List[*TransformFeedback]
	syncs            map[uintptr]*syncObject
	nextSync         uintptr

	// Binding points.
	bufferTargets   map[glenum.BufferTarget]uint32
	indexed         map[glenum.BufferTarget][]indexedBinding
	activeUnit      uint32
	units           [MaxTextureUnits]textureUnit
	images          [MaxImageUnits]imageUnit
	vertexArray     uint32
	drawFramebuffer uint32
	readFramebuffer uint32
	renderbuffer    uint32
	currentProgram  uint32
	programPipeline uint32
	feedback        uint32
	activeQueries   map[glenum.QueryTarget]uint32

	defaultFB       *Framebuffer
	defaultFeedback *TransformFeedback
	defaultVAO      *VertexArray
	generic         [MaxVertexAttribs]genericAttrib

	// Backend reconciliation.
	pipelines    *pipeline.Cache
	bindGroups   *bindcache.Cache
	enc          encoder
	arena        arena
	graveyard    []retired
	samplerCache map[samplerCacheKey]*backendSampler
	dummies      map[gputypes.TextureViewDimension]*dummyTexture
	links        map[[2]pipeline.ProgramID]*link
	clearPipe    *clearPipeline
	stats        statCounters
	epoch        time.Time
}

var _ io.Closer = (*Context)(nil)

// NewContext creates a context that drives dev and queue.
//
//	ctx, err := glhal.NewContext(dev, queue,
//	    glhal.WithDefaultFramebufferSize(1280, 720))
func NewContext(dev hal.Device, queue hal.Queue, opts ...ContextOption) (*Context, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if dev == nil {
		return nil, ErrNilDevice
	}
	d, err := device.New(dev, queue, options.info, options.limits)
	if err != nil {
		return nil, fmt.Errorf("glhal: %w", err)
	}
	return newContext(d, false, options)
}

// NewContextFromProvider creates a context on the device of a host
// application's device provider.
func NewContextFromProvider(provider gpucontext.DeviceProvider, opts ...ContextOption) (*Context, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	dev, ok := provider.Device().(hal.Device)
	if !ok {
		return nil, ErrUnsupportedProvider
	}
	queue, ok := provider.Queue().(hal.Queue)
	if !ok {
		return nil, ErrUnsupportedProvider
	}
	info := provider.AdapterInfo()
	opts = append([]ContextOption{WithAdapterInfo(gputypes.AdapterInfo{Name: info.Name})}, opts...)
	return NewContext(dev, queue, opts...)
}

// NewNoopContext creates a context on the noop backend. Draws are accepted
// and recorded but produce no pixels; buffers and textures keep their data.
func NewNoopContext(opts ...ContextOption) (*Context, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	d, err := device.OpenNoop()
	if err != nil {
		return nil, fmt.Errorf("glhal: %w", err)
	}
	if options.infoSet {
		d.Info = options.info
	}
	if options.limitsSet {
		d.Limits = options.limits
	}
	ctx, err := newContext(d, true, options)
	if err != nil {
		d.Close()
		return nil, err
	}
	return ctx, nil
}

func newContext(d *device.Device, own bool, o contextOptions) (*Context, error) {
	bg, err := bindcache.New(d.HAL, o.bindGroupCacheSize)
	if err != nil {
		return nil, fmt.Errorf("glhal: bind group cache: %w", err)
	}
	c := &Context{
		dev:           d,
		ownDevice:     own,
		translate:     o.translator,
		errs:          errorStack{depth: o.errorStackDepth},
		debug:         newDebugState(o.debugCallback),
		state:         defaultState(int32(o.width), int32(o.height)),
		pixel:         defaultPixelStore(),
		dirty:         dirtyAll,
		bufferTargets: make(map[glenum.BufferTarget]uint32),
		indexed: map[glenum.BufferTarget][]indexedBinding{
			glenum.UniformBuffer:           make([]indexedBinding, MaxUniformBufferBindings),
			glenum.ShaderStorageBuffer:     make([]indexedBinding, MaxShaderStorageBufferBindings),
			glenum.AtomicCounterBuffer:     make([]indexedBinding, MaxAtomicCounterBufferBindings),
			glenum.TransformFeedbackBuffer: make([]indexedBinding, MaxTransformFeedbackBuffers),
		},
		syncs:         make(map[uintptr]*syncObject),
		activeQueries: make(map[glenum.QueryTarget]uint32),
		pipelines:     pipeline.New(d.HAL),
		bindGroups:    bg,
		samplerCache:  make(map[samplerCacheKey]*backendSampler),
		dummies:       make(map[gputypes.TextureViewDimension]*dummyTexture),
		links:         make(map[[2]pipeline.ProgramID]*link),
		epoch:         time.Now(),
	}
	c.state.caps[glenum.DebugOutput] = o.debugOutput

	c.buffers = names.New(func(name uint32) *Buffer { return newBuffer(name) })
	c.textures = names.New(func(name uint32) *Texture { return newTexture(name) })
	c.samplers = names.New(func(name uint32) *Sampler { return newSampler(name) })
	c.vertexArrays = names.New(func(name uint32) *VertexArray { return newVertexArray(name) })
	c.framebuffers = names.New(func(name uint32) *Framebuffer { return newFramebuffer(name) })
	c.renderbuffers = names.New(func(name uint32) *Renderbuffer { return newRenderbuffer(name) })
	c.programs = names.New(func(uint32) programObject { return nil })
	c.programPipelines = names.New(func(name uint32) *ProgramPipeline { return newProgramPipeline(name) })
	c.queries = names.New(func(name uint32) *Query { return newQuery(name) })
	c.feedbacks = names.New(func(name uint32) *TransformFeedback { return newTransformFeedback(name) })
	c.defaultFeedback = newTransformFeedback(0)
	c.defaultVAO = newVertexArray(0)
	for i := range c.generic {
		c.generic[i] = defaultGeneric()
	}
	for i := range c.images {
		c.images[i] = defaultImageUnit()
	}

	if o.translatorLibrary != "" {
		lib, err := translator.Open(o.translatorLibrary, o.translatorSymbol)
		if err != nil {
			c.bindGroups.DestroyAll()
			return nil, fmt.Errorf("glhal: %w", err)
		}
		c.library = lib
		c.translate = lib
	}

	fb, err := c.newDefaultFramebuffer(int32(o.width), int32(o.height))
	if err != nil {
		c.release()
		return nil, fmt.Errorf("glhal: default framebuffer: %w", err)
	}
	c.defaultFB = fb

	Logger().Info("glhal: context created",
		"adapter", d.Info.Name,
		"backend", d.Info.Backend,
		"width", o.width, "height", o.height)
	return c, nil
}

// Close finishes outstanding work and releases every backend object the
// context owns. Close is idempotent.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if !c.lost {
		c.submit()
		_ = c.dev.HAL.WaitIdle()
	}
	c.release()
	return nil
}

// release destroys every backend object. The device must be idle.
func (c *Context) release() {
	c.enc.discard()
	c.buffers.Each(func(_ uint32, b *Buffer) { c.destroyBuffer(b) })
	c.textures.Each(func(_ uint32, t *Texture) { c.destroyTexture(t) })
	c.renderbuffers.Each(func(_ uint32, r *Renderbuffer) { c.destroyTexture(&r.storage) })
	c.programs.Each(func(_ uint32, p programObject) {
		if prog, ok := p.(*Program); ok {
			c.destroyLink(prog.link)
		}
	})
	for _, l := range c.links {
		c.destroyLink(l)
	}
	if c.defaultFB != nil {
		c.destroyDefaultFramebuffer(c.defaultFB)
	}
	for _, s := range c.samplerCache {
		c.dev.HAL.DestroySampler(s.hal)
	}
	for _, d := range c.dummies {
		d.destroy(c.dev.HAL)
	}
	if c.clearPipe != nil {
		c.clearPipe.destroy(c.dev.HAL)
	}
	c.reapAll()
	c.pipelines.DestroyAll()
	c.bindGroups.DestroyAll()
	if c.library != nil {
		_ = c.library.Close()
	}
	if c.ownDevice {
		c.dev.Close()
	}
}

// IsLost reports whether the device was lost. A lost context ignores every
// call and reports CONTEXT_LOST.
func (c *Context) IsLost() bool { return c.lost }

// AdapterInfo describes the backend adapter.
func (c *Context) AdapterInfo() gputypes.AdapterInfo { return c.dev.Info }

// Device returns the backend device and queue the context drives.
func (c *Context) Device() (hal.Device, hal.Queue) { return c.dev.HAL, c.dev.Queue }

// bindName initializes name for a bind call. A name absent from l is
// created on the spot, as if it had been generated.
func bindName[T any](l *names.List[T], name uint32) T {
	l.Reserve(name)
	return l.EnsureInit(name)
}
