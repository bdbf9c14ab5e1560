// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"github.com/gogpu/wgpu/hal"
)

// arenaChunkSize is the size of one upload chunk.
const arenaChunkSize = 256 << 10

// arenaChunk is one host-visible buffer that per-draw data is appended to.
type arenaChunk struct {
	buf    hal.Buffer
	serial uint64
	size   uint64
	used   uint64
	after  uint64 // submission that must complete before reuse
}

// arena hands out transient ranges for default uniform blocks, generic
// vertex attributes, generated index buffers and clear parameters. A range
// stays valid until the submission that reads it completes.
type arena struct {
	cur    *arenaChunk
	filled []*arenaChunk // full, read by unsubmitted commands
	busy   []*arenaChunk // full, read by submitted commands
	free   []*arenaChunk
}

// upload copies data into the arena at an offset aligned to align and
// returns its location.
func (c *Context) upload(data []byte, align uint64) (chunk *arenaChunk, offset uint64, ok bool) {
	size := uint64(len(data)+3) &^ 3
	if size == 0 {
		size = 4
	}
	a := &c.arena
	if a.cur != nil {
		offset = (a.cur.used + align - 1) / align * align
		if offset+size > a.cur.size {
			a.filled = append(a.filled, a.cur)
			a.cur = nil
		}
	}
	if a.cur == nil {
		a.cur = c.arenaChunk(size)
		if a.cur == nil {
			return nil, 0, false
		}
		offset = 0
	}
	if len(data)%4 != 0 {
		padded := make([]byte, size)
		copy(padded, data)
		data = padded
	}
	if err := c.dev.WriteBuffer(a.cur.buf, offset, data); err != nil {
		c.backendError("upload", err)
		return nil, 0, false
	}
	a.cur.used = offset + size
	c.enc.use(a.cur.serial)
	return a.cur, offset, true
}

// arenaChunk returns a free chunk of at least size bytes.
func (c *Context) arenaChunk(size uint64) *arenaChunk {
	a := &c.arena
	completed := c.dev.Queue.PollCompleted()
	keep := a.busy[:0]
	for _, ch := range a.busy {
		if ch.after <= completed {
			ch.used = 0
			a.free = append(a.free, ch)
			continue
		}
		keep = append(keep, ch)
	}
	a.busy = keep
	for i, ch := range a.free {
		if ch.size >= size {
			a.free = append(a.free[:i], a.free[i+1:]...)
			return ch
		}
	}
	n := max(uint64(arenaChunkSize), size)
	buf, err := c.dev.CreateBuffer("glhal arena", n, nil)
	if err != nil {
		c.backendError("arena", err)
		return nil
	}
	Logger().Debug("glhal: arena chunk allocated", "size", n)
	return &arenaChunk{buf: buf, serial: c.dev.NextSerial(), size: n}
}

// submitted moves chunks read by the commands of submission index to busy.
func (a *arena) submitted(index uint64) {
	for _, ch := range a.filled {
		ch.after = index
	}
	a.busy = append(a.busy, a.filled...)
	a.filled = a.filled[:0]
	if a.cur != nil {
		a.cur.after = index
	}
}

func (a *arena) destroy(dev hal.Device) {
	all := append(append(append([]*arenaChunk{}, a.filled...), a.busy...), a.free...)
	if a.cur != nil {
		all = append(all, a.cur)
	}
	for _, ch := range all {
		dev.DestroyBuffer(ch.buf)
	}
	*a = arena{}
}
