// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package bindcache caches backend bind groups keyed by the exact resources
// they reference.
//
// Evicted bind groups may still be referenced by recorded or in-flight
// command buffers, so they are not destroyed immediately. They are parked
// with the submission index of their last use and destroyed by Reap once
// the queue reports that submission as complete.
package bindcache

import (
	"errors"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru"

	"github.com/gogpu/wgpu/hal"
)

// MaxEntries is the largest number of bindings one key can describe.
const MaxEntries = 64

// DefaultSize is the number of bind groups kept when no size is configured.
const DefaultSize = 256

// ErrTooManyEntries is returned when a key cannot hold another entry.
var ErrTooManyEntries = errors.New("bindcache: too many entries for one bind group")

// Kind tells what an Entry binds.
type Kind uint8

// Entry kinds.
const (
	KindBuffer Kind = iota + 1
	KindTexture
	KindSampler
)

// Entry is one binding of a key. Resource is the serial of the backend
// object, not its native handle, so distinct objects never collide.
type Entry struct {
	Binding  uint32
	Kind     Kind
	Resource uint64
	Offset   uint64
	Size     uint64
}

// Key identifies a bind group. It is comparable and can be used as a map key.
type Key struct {
	Layout  uint64
	Count   int
	Entries [MaxEntries]Entry
}

// Add appends an entry to the key.
func (k *Key) Add(e Entry) error {
	if k.Count == MaxEntries {
		return ErrTooManyEntries
	}
	k.Entries[k.Count] = e
	k.Count++
	return nil
}

// References reports whether the key binds the resource serial.
func (k *Key) References(resource uint64) bool {
	for i := 0; i < k.Count; i++ {
		if k.Entries[i].Resource == resource {
			return true
		}
	}
	return false
}

type cached struct {
	group   hal.BindGroup
	lastUse uint64
}

// Cache is a bounded LRU of bind groups.
type Cache struct {
	device  hal.Device
	lru     *lru.Cache
	retired []*cached
	epoch   uint64

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// New creates a cache holding at most size bind groups. A size of zero or
// less selects DefaultSize.
func New(device hal.Device, size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	c := &Cache{device: device, epoch: 1}
	l, err := lru.NewWithEvict(size, c.onEvict)
	if err != nil {
		return nil, err
	}
	c.lru = l
	return c, nil
}

func (c *Cache) onEvict(_, value interface{}) {
	c.evictions.Add(1)
	c.retired = append(c.retired, value.(*cached))
}

// GetOrCreate returns the bind group for key, building it on miss. The
// returned group is marked as used by the current epoch.
func (c *Cache) GetOrCreate(key *Key, build func() (hal.BindGroup, error)) (hal.BindGroup, error) {
	if v, ok := c.lru.Get(*key); ok {
		e := v.(*cached)
		e.lastUse = c.epoch
		c.hits.Add(1)
		return e.group, nil
	}
	group, err := build()
	if err != nil {
		return nil, err
	}
	c.misses.Add(1)
	c.lru.Add(*key, &cached{group: group, lastUse: c.epoch})
	return group, nil
}

// Submitted records that the commands of the current epoch were submitted
// as index. Later uses belong to the next submission.
func (c *Cache) Submitted(index uint64) {
	c.epoch = index + 1
}

// Reap destroys retired bind groups whose last use is at or before
// completed. It returns the number destroyed.
func (c *Cache) Reap(completed uint64) int {
	kept := c.retired[:0]
	n := 0
	for _, e := range c.retired {
		if e.lastUse <= completed {
			c.device.DestroyBindGroup(e.group)
			n++
			continue
		}
		kept = append(kept, e)
	}
	c.retired = kept
	return n
}

// Forget retires every bind group that references resource. It is called
// before the resource itself is destroyed.
func (c *Cache) Forget(resource uint64) {
	for _, k := range c.lru.Keys() {
		key := k.(Key)
		if key.References(resource) {
			c.lru.Remove(k)
		}
	}
}

// ForgetLayout retires every bind group created against layout.
func (c *Cache) ForgetLayout(layout uint64) {
	for _, k := range c.lru.Keys() {
		if k.(Key).Layout == layout {
			c.lru.Remove(k)
		}
	}
}

// Len returns the number of live cached bind groups.
func (c *Cache) Len() int { return c.lru.Len() }

// Retired returns the number of bind groups awaiting destruction.
func (c *Cache) Retired() int { return len(c.retired) }

// Stats returns hit, miss and eviction counts.
func (c *Cache) Stats() (hits, misses, evictions uint64) {
	return c.hits.Load(), c.misses.Load(), c.evictions.Load()
}

// DestroyAll destroys every bind group, live or retired. The caller must
// have waited for the device to go idle.
func (c *Cache) DestroyAll() {
	c.lru.Purge()
	for _, e := range c.retired {
		c.device.DestroyBindGroup(e.group)
	}
	c.retired = nil
}
