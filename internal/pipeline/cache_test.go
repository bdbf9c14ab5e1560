// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pipeline

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

type fakePipeline struct{ destroyed bool }

func (p *fakePipeline) Destroy() { p.destroyed = true }

// destroyingDevice forwards pipeline destruction to the pipeline itself so
// tests can observe it.
type destroyingDevice struct {
	hal.Device
}

func (d destroyingDevice) DestroyRenderPipeline(p hal.RenderPipeline)   { p.Destroy() }
func (d destroyingDevice) DestroyComputePipeline(p hal.ComputePipeline) { p.Destroy() }

func testKey() RenderKey {
	var k RenderKey
	k.Vertex = ProgramID{Name: 3, Generation: 1}
	k.Fragment = k.Vertex
	k.Targets[0] = ColorTarget{Format: gputypes.TextureFormatRGBA8Unorm, WriteMask: gputypes.ColorWriteMaskAll}
	k.Topology = gputypes.PrimitiveTopologyTriangleList
	k.SampleCount = 1
	return k
}

func TestGetOrCreateRenderBuildsOnce(t *testing.T) {
	c := New(&noop.Device{})
	builds := 0
	build := func(*RenderKey) (hal.RenderPipeline, error) {
		builds++
		return &fakePipeline{}, nil
	}

	k1 := testKey()
	k2 := testKey()
	p1, err := c.GetOrCreateRender(&k1, build)
	if err != nil {
		t.Fatalf("first lookup: %v", err)
	}
	p2, err := c.GetOrCreateRender(&k2, build)
	if err != nil {
		t.Fatalf("second lookup: %v", err)
	}
	if p1 != p2 {
		t.Error("equal keys returned different pipelines")
	}
	if builds != 1 {
		t.Errorf("builds = %d, want 1", builds)
	}
	hits, misses := c.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("Stats() = (%d, %d), want (1, 1)", hits, misses)
	}
	if got := c.HitRate(); got != 0.5 {
		t.Errorf("HitRate() = %v, want 0.5", got)
	}
}

func TestDistinctKeysBuildSeparately(t *testing.T) {
	c := New(&noop.Device{})
	build := func(*RenderKey) (hal.RenderPipeline, error) { return &fakePipeline{}, nil }

	k1 := testKey()
	k2 := testKey()
	k2.CullMode = gputypes.CullModeBack

	p1, _ := c.GetOrCreateRender(&k1, build)
	p2, _ := c.GetOrCreateRender(&k2, build)
	if p1 == p2 {
		t.Error("distinct keys shared a pipeline")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	if k1.Hash() == k2.Hash() {
		t.Error("distinct keys hashed equal")
	}
}

func TestFailedBuildLeavesNoEntry(t *testing.T) {
	c := New(&noop.Device{})
	errBoom := errors.New("boom")
	k := testKey()
	if _, err := c.GetOrCreateRender(&k, func(*RenderKey) (hal.RenderPipeline, error) {
		return nil, errBoom
	}); !errors.Is(err, errBoom) {
		t.Fatalf("err = %v, want %v", err, errBoom)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d after failed build", c.Len())
	}
	if _, err := c.GetOrCreateRender(&k, nil); !errors.Is(err, ErrNilBuild) {
		t.Errorf("nil build err = %v, want ErrNilBuild", err)
	}
}

func TestEvictProgram(t *testing.T) {
	c := New(destroyingDevice{&noop.Device{}})
	var built []*fakePipeline
	build := func(*RenderKey) (hal.RenderPipeline, error) {
		p := &fakePipeline{}
		built = append(built, p)
		return p, nil
	}

	k1 := testKey()
	k2 := testKey()
	k2.Vertex.Name, k2.Fragment.Name = 9, 9
	_, _ = c.GetOrCreateRender(&k1, build)
	_, _ = c.GetOrCreateRender(&k2, build)
	cp := &fakePipeline{}
	_, _ = c.GetOrCreateCompute(ComputeKey{Program: ProgramID{Name: 3}}, func(ComputeKey) (hal.ComputePipeline, error) {
		return cp, nil
	})

	if n := c.EvictProgram(3); n != 2 {
		t.Errorf("EvictProgram(3) = %d, want 2", n)
	}
	if !built[0].destroyed || built[1].destroyed || !cp.destroyed {
		t.Error("wrong pipelines destroyed")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}

	c.DestroyAll()
	if !built[1].destroyed || c.Len() != 0 {
		t.Error("DestroyAll left pipelines behind")
	}
}

func TestKeyExpansion(t *testing.T) {
	k := testKey()
	k.Buffers[1] = VertexBuffer{Used: true, Stride: 16, Step: gputypes.VertexStepModeVertex}
	k.Attribs[0] = VertexAttrib{Enabled: true, Format: gputypes.VertexFormatFloat32x4, Location: 0, Buffer: 1}
	k.Targets[2] = ColorTarget{Format: gputypes.TextureFormatR8Unorm, BlendEnabled: true}

	layouts := k.VertexLayouts()
	if len(layouts) != 2 {
		t.Fatalf("len(VertexLayouts()) = %d, want 2", len(layouts))
	}
	if layouts[0].StepMode != gputypes.VertexStepModeVertexBufferNotUsed {
		t.Errorf("unused slot step mode = %v", layouts[0].StepMode)
	}
	if len(layouts[1].Attributes) != 1 || layouts[1].ArrayStride != 16 {
		t.Errorf("slot 1 = %+v", layouts[1])
	}

	targets := k.ColorTargets()
	if len(targets) != 3 {
		t.Fatalf("len(ColorTargets()) = %d, want 3", len(targets))
	}
	if targets[0].Blend != nil || targets[2].Blend == nil {
		t.Error("blend state not expanded per target")
	}
	if k.DepthStencilState() != nil {
		t.Error("DepthStencilState() non-nil without a depth format")
	}
	if ps := k.PrimitiveState(); ps.StripIndexFormat != nil {
		t.Error("strip index format set without HasStripIndex")
	}
}
