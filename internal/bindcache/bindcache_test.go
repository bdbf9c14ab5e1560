// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bindcache

import (
	"testing"

	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

type fakeGroup struct{ destroyed bool }

func (g *fakeGroup) Destroy() { g.destroyed = true }

type destroyingDevice struct {
	hal.Device
}

func (destroyingDevice) DestroyBindGroup(g hal.BindGroup) { g.Destroy() }

func newCache(t *testing.T, size int) *Cache {
	t.Helper()
	c, err := New(destroyingDevice{&noop.Device{}}, size)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func keyFor(layout, resource uint64) Key {
	k := Key{Layout: layout}
	_ = k.Add(Entry{Binding: 0, Kind: KindBuffer, Resource: resource, Size: 64})
	return k
}

func TestGetOrCreateHit(t *testing.T) {
	c := newCache(t, 4)
	builds := 0
	build := func() (hal.BindGroup, error) {
		builds++
		return &fakeGroup{}, nil
	}
	k := keyFor(1, 10)
	g1, _ := c.GetOrCreate(&k, build)
	g2, _ := c.GetOrCreate(&k, build)
	if g1 != g2 || builds != 1 {
		t.Errorf("builds = %d, same group = %v", builds, g1 == g2)
	}
	hits, misses, _ := c.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("Stats() = (%d, %d)", hits, misses)
	}
}

func TestEvictionDefersDestroyUntilComplete(t *testing.T) {
	c := newCache(t, 1)
	first := &fakeGroup{}
	k1 := keyFor(1, 10)
	_, _ = c.GetOrCreate(&k1, func() (hal.BindGroup, error) { return first, nil })

	// first was used by epoch 1; submission 1 is in flight.
	c.Submitted(1)

	k2 := keyFor(1, 11)
	_, _ = c.GetOrCreate(&k2, func() (hal.BindGroup, error) { return &fakeGroup{}, nil })
	if c.Retired() != 1 {
		t.Fatalf("Retired() = %d, want 1", c.Retired())
	}
	if n := c.Reap(0); n != 0 || first.destroyed {
		t.Fatal("destroyed before its submission completed")
	}
	if n := c.Reap(1); n != 1 || !first.destroyed {
		t.Fatal("not destroyed after its submission completed")
	}
}

func TestForgetResource(t *testing.T) {
	c := newCache(t, 8)
	build := func() (hal.BindGroup, error) { return &fakeGroup{}, nil }
	k1 := keyFor(1, 10)
	k2 := keyFor(1, 11)
	_, _ = c.GetOrCreate(&k1, build)
	_, _ = c.GetOrCreate(&k2, build)

	c.Forget(10)
	if c.Len() != 1 || c.Retired() != 1 {
		t.Errorf("Len() = %d, Retired() = %d", c.Len(), c.Retired())
	}
	c.ForgetLayout(1)
	if c.Len() != 0 {
		t.Errorf("Len() = %d after ForgetLayout", c.Len())
	}
	c.DestroyAll()
	if c.Retired() != 0 {
		t.Error("DestroyAll left retired groups")
	}
}

func TestKeyCapacity(t *testing.T) {
	var k Key
	for i := 0; i < MaxEntries; i++ {
		if err := k.Add(Entry{Binding: uint32(i)}); err != nil {
			t.Fatalf("Add %d: %v", i, err)
		}
	}
	if err := k.Add(Entry{}); err != ErrTooManyEntries {
		t.Errorf("overflow err = %v", err)
	}
}
