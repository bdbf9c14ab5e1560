// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pipeline

import (
	"errors"
	"sync/atomic"

	"github.com/gogpu/wgpu/hal"
)

// ErrNilBuild is returned when a lookup misses and no builder was supplied.
var ErrNilBuild = errors.New("pipeline: build function is nil")

// RenderBuilder constructs the backend pipeline for a key on cache miss.
type RenderBuilder func(key *RenderKey) (hal.RenderPipeline, error)

// ComputeBuilder constructs the backend compute pipeline for a key.
type ComputeBuilder func(key ComputeKey) (hal.ComputePipeline, error)

// Cache is the only owner of backend pipeline objects. Each key is built at
// most once; a failed build leaves no entry behind.
//
// Cache is used from the single thread that owns its context and performs
// no locking. The hit and miss counters are atomic so Stats may be sampled
// from elsewhere.
type Cache struct {
	device hal.Device

	render  map[RenderKey]hal.RenderPipeline
	compute map[ComputeKey]hal.ComputePipeline

	hits   atomic.Uint64
	misses atomic.Uint64
}

// New creates an empty cache whose pipelines are destroyed on device.
func New(device hal.Device) *Cache {
	return &Cache{
		device:  device,
		render:  make(map[RenderKey]hal.RenderPipeline),
		compute: make(map[ComputeKey]hal.ComputePipeline),
	}
}

// GetOrCreateRender returns the cached pipeline for key, building it on miss.
func (c *Cache) GetOrCreateRender(key *RenderKey, build RenderBuilder) (hal.RenderPipeline, error) {
	if p, ok := c.render[*key]; ok {
		c.hits.Add(1)
		return p, nil
	}
	if build == nil {
		return nil, ErrNilBuild
	}
	p, err := build(key)
	if err != nil {
		return nil, err
	}
	c.render[*key] = p
	c.misses.Add(1)
	return p, nil
}

// GetOrCreateCompute returns the cached compute pipeline for key.
func (c *Cache) GetOrCreateCompute(key ComputeKey, build ComputeBuilder) (hal.ComputePipeline, error) {
	if p, ok := c.compute[key]; ok {
		c.hits.Add(1)
		return p, nil
	}
	if build == nil {
		return nil, ErrNilBuild
	}
	p, err := build(key)
	if err != nil {
		return nil, err
	}
	c.compute[key] = p
	c.misses.Add(1)
	return p, nil
}

// EvictProgram destroys every pipeline built from any link of the program
// name. The caller must ensure no pending command buffer still uses them.
func (c *Cache) EvictProgram(name uint32) int {
	n := 0
	for k, p := range c.render {
		if k.Vertex.Name == name || k.Fragment.Name == name {
			c.device.DestroyRenderPipeline(p)
			delete(c.render, k)
			n++
		}
	}
	for k, p := range c.compute {
		if k.Program.Name == name {
			c.device.DestroyComputePipeline(p)
			delete(c.compute, k)
			n++
		}
	}
	return n
}

// Stats returns the number of cache hits and misses.
func (c *Cache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

// HitRate returns hits / (hits + misses), or 0 before the first lookup.
func (c *Cache) HitRate() float64 {
	hits, misses := c.Stats()
	total := hits + misses
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}

// Len returns the number of cached pipelines.
func (c *Cache) Len() int {
	return len(c.render) + len(c.compute)
}

// DestroyAll destroys every cached pipeline and resets the statistics.
func (c *Cache) DestroyAll() {
	for _, p := range c.render {
		c.device.DestroyRenderPipeline(p)
	}
	for _, p := range c.compute {
		c.device.DestroyComputePipeline(p)
	}
	c.render = make(map[RenderKey]hal.RenderPipeline)
	c.compute = make(map[ComputeKey]hal.ComputePipeline)
	c.hits.Store(0)
	c.misses.Store(0)
}
