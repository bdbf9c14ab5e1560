// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"bytes"
	"testing"

	"github.com/gogpu/glhal/glenum"
)

func TestBufferLifecycle(t *testing.T) {
	ctx := newTestContext(t)
	name := ctx.GenBuffers(1)[0]
	if ctx.IsBuffer(name) {
		t.Error("generated name is a buffer before it is bound")
	}
	ctx.BindBuffer(glenum.ArrayBuffer, name)
	if !ctx.IsBuffer(name) {
		t.Fatal("bound name is not a buffer")
	}

	ctx.BufferStorage(glenum.ArrayBuffer, 64, nil, glenum.DynamicStorage)
	ctx.BufferSubData(glenum.ArrayBuffer, 0, []byte{1, 2, 3, 4})
	got := make([]byte, 4)
	ctx.GetBufferSubData(glenum.ArrayBuffer, 0, got)
	if !bytes.Equal(got, []byte{1, 2, 3, 4}) {
		t.Errorf("GetBufferSubData = %v", got)
	}
	if size := ctx.GetBufferParameteri64v(glenum.ArrayBuffer, glenum.BufferSize); size != 64 {
		t.Errorf("BUFFER_SIZE = %d", size)
	}
	if v := ctx.GetBufferParameteriv(glenum.ArrayBuffer, glenum.BufferImmutableStorage); v != 1 {
		t.Errorf("BUFFER_IMMUTABLE_STORAGE = %d", v)
	}
	expectNoError(t, ctx)

	ctx.DeleteBuffers([]uint32{name})
	if ctx.IsBuffer(name) {
		t.Error("deleted buffer is still a buffer")
	}
	expectNoError(t, ctx)
}

func TestBindUnknownBufferName(t *testing.T) {
	ctx := newTestContext(t)
	tests := []struct {
		name string
		bind func(name uint32)
	}{
		{"BindBuffer", func(n uint32) { ctx.BindBuffer(glenum.CopyReadBuffer, n) }},
		{"BindBufferBase", func(n uint32) { ctx.BindBufferBase(glenum.UniformBuffer, 0, n) }},
		{"BindVertexBuffer", func(n uint32) {
			ctx.BindVertexArray(ctx.GenVertexArrays(1)[0])
			ctx.BindVertexBuffer(0, n, 0, 16)
		}},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name := uint32(100 + i)
			tt.bind(name)
			expectNoError(t, ctx)
			if !ctx.IsBuffer(name) {
				t.Errorf("buffer %d not created by %s", name, tt.name)
			}
			for _, g := range ctx.GenBuffers(4) {
				if g == name {
					t.Errorf("GenBuffers returned the bound name %d", name)
				}
			}
		})
	}
}

func TestDeleteBoundBuffer(t *testing.T) {
	ctx := newTestContext(t)
	vao := ctx.GenVertexArrays(1)[0]
	ctx.BindVertexArray(vao)
	name := ctx.GenBuffers(1)[0]
	ctx.BindBuffer(glenum.ArrayBuffer, name)
	ctx.BufferData(glenum.ArrayBuffer, 1024, nil, glenum.DynamicDraw)
	ctx.BindBuffer(glenum.ElementArrayBuffer, name)
	ctx.BindBufferBase(glenum.UniformBuffer, 1, name)
	ctx.BindBufferRange(glenum.ShaderStorageBuffer, 2, name, 0, 64)
	ctx.BindVertexBuffer(3, name, 0, 16)
	expectNoError(t, ctx)

	ctx.DeleteBuffers([]uint32{name})
	expectNoError(t, ctx)

	v := make([]int32, 1)
	for _, pname := range []glenum.GetPName{
		glenum.ArrayBufferBinding,
		glenum.ElementArrayBufferBinding,
		glenum.UniformBufferBinding,
		glenum.ShaderStorageBufferBinding,
	} {
		ctx.GetIntegerv(pname, v)
		if v[0] != 0 {
			t.Errorf("%s = %d after delete", pname, v[0])
		}
	}
	indexed := []struct {
		pname glenum.GetPName
		index uint32
	}{
		{glenum.UniformBufferBinding, 1},
		{glenum.ShaderStorageBufferBinding, 2},
		{glenum.ShaderStorageBufferSize, 2},
	}
	for _, tt := range indexed {
		ctx.GetIntegeri_v(tt.pname, tt.index, v)
		if v[0] != 0 {
			t.Errorf("%s[%d] = %d after delete", tt.pname, tt.index, v[0])
		}
	}
	if b := ctx.currentVAO().bindings[3].buffer; b != 0 {
		t.Errorf("vertex buffer binding 3 = %d after delete", b)
	}
	expectNoError(t, ctx)
}

func TestBufferStorageWithoutBinding(t *testing.T) {
	ctx := newTestContext(t)
	ctx.BufferStorage(glenum.ArrayBuffer, 16, nil, 0)
	expectError(t, ctx, glenum.InvalidOperation)
	expectError(t, ctx, glenum.NoError)
}

func TestBufferStorageErrors(t *testing.T) {
	ctx := newTestContext(t)
	name := ctx.GenBuffers(1)[0]
	ctx.BindBuffer(glenum.ArrayBuffer, name)
	ctx.BufferStorage(glenum.ArrayBuffer, 32, nil, glenum.StorageMapRead)
	expectNoError(t, ctx)

	tests := []struct {
		name string
		call func()
		want glenum.ErrorCode
	}{
		{"respecify immutable", func() { ctx.BufferStorage(glenum.ArrayBuffer, 64, nil, glenum.DynamicStorage) }, glenum.InvalidOperation},
		{"BufferData on immutable", func() { ctx.BufferData(glenum.ArrayBuffer, 64, nil, glenum.StaticDraw) }, glenum.InvalidOperation},
		{"sub data without dynamic storage", func() { ctx.BufferSubData(glenum.ArrayBuffer, 0, []byte{1, 2, 3, 4}) }, glenum.InvalidOperation},
		{"sub data out of range", func() { ctx.BufferSubData(glenum.ArrayBuffer, 30, []byte{1, 2, 3, 4}) }, glenum.InvalidValue},
		{"copy with overflowing size", func() { ctx.CopyBufferSubData(glenum.ArrayBuffer, glenum.ArrayBuffer, 8, 0, 1<<63-1) }, glenum.InvalidValue},
		{"zero size", func() { ctx.NamedBufferStorage(ctx.CreateBuffers(1)[0], 0, nil, 0) }, glenum.InvalidValue},
		{"persistent without access", func() {
			ctx.NamedBufferStorage(ctx.CreateBuffers(1)[0], 16, nil, glenum.StorageMapPersistent)
		}, glenum.InvalidValue},
		{"coherent without persistent", func() {
			ctx.NamedBufferStorage(ctx.CreateBuffers(1)[0], 16, nil, glenum.StorageMapRead|glenum.StorageMapCoherent)
		}, glenum.InvalidValue},
		{"unknown flag", func() { ctx.NamedBufferStorage(ctx.CreateBuffers(1)[0], 16, nil, glenum.StorageFlags(0x8000)) }, glenum.InvalidValue},
		{"short data", func() { ctx.NamedBufferStorage(ctx.CreateBuffers(1)[0], 16, make([]byte, 4), 0) }, glenum.InvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.call()
			expectError(t, ctx, tt.want)
			expectError(t, ctx, glenum.NoError)
			if size := ctx.GetBufferParameteri64v(glenum.ArrayBuffer, glenum.BufferSize); size != 32 {
				t.Errorf("BUFFER_SIZE = %d after a rejected call", size)
			}
			if flags := ctx.GetBufferParameteriv(glenum.ArrayBuffer, glenum.BufferStorageFlags); flags != int32(glenum.StorageMapRead) {
				t.Errorf("BUFFER_STORAGE_FLAGS = %#x after a rejected call", flags)
			}
		})
	}
}

func TestBufferDataKeepsStateOnFailure(t *testing.T) {
	ctx := newTestContext(t)
	name := ctx.CreateBuffers(1)[0]
	ctx.BindBuffer(glenum.ArrayBuffer, name)
	ctx.NamedBufferData(name, 8, []byte{1, 2, 3, 4, 5, 6, 7, 8}, glenum.StaticDraw)
	expectNoError(t, ctx)

	tests := []struct {
		name string
		call func()
		want glenum.ErrorCode
	}{
		{"short data", func() { ctx.NamedBufferData(name, 16, make([]byte, 4), glenum.DynamicDraw) }, glenum.InvalidValue},
		{"negative size", func() { ctx.NamedBufferData(name, -1, nil, glenum.StreamDraw) }, glenum.InvalidValue},
		{"bad usage", func() { ctx.NamedBufferData(name, 16, nil, glenum.BufferUsage(0x1234)) }, glenum.InvalidEnum},
		{"unknown buffer", func() { ctx.NamedBufferData(9999, 16, nil, glenum.DynamicDraw) }, glenum.InvalidOperation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.call()
			expectError(t, ctx, tt.want)
			if u := ctx.GetBufferParameteriv(glenum.ArrayBuffer, glenum.BufferUsageParam); u != int32(glenum.StaticDraw) {
				t.Errorf("BUFFER_USAGE = %#x, want STATIC_DRAW", u)
			}
			if size := ctx.GetBufferParameteri64v(glenum.ArrayBuffer, glenum.BufferSize); size != 8 {
				t.Errorf("BUFFER_SIZE = %d, want 8", size)
			}
			got := make([]byte, 8)
			ctx.GetBufferSubData(glenum.ArrayBuffer, 0, got)
			if !bytes.Equal(got, []byte{1, 2, 3, 4, 5, 6, 7, 8}) {
				t.Errorf("contents = %v", got)
			}
			expectNoError(t, ctx)
		})
	}
}

func TestBindBufferRangeErrors(t *testing.T) {
	ctx := newTestContext(t)
	align := ctx.offsetAlignment(glenum.UniformBuffer)
	name := ctx.GenBuffers(1)[0]
	ctx.BindBuffer(glenum.UniformBuffer, name)
	ctx.BufferData(glenum.UniformBuffer, 2*align, nil, glenum.DynamicDraw)
	ctx.BindBuffer(glenum.UniformBuffer, 0)
	expectNoError(t, ctx)

	tests := []struct {
		name   string
		target glenum.BufferTarget
		index  uint32
		offset int64
		size   int64
		want   glenum.ErrorCode
	}{
		{"not indexed", glenum.ArrayBuffer, 0, 0, 16, glenum.InvalidEnum},
		{"index out of range", glenum.UniformBuffer, MaxUniformBufferBindings, 0, 16, glenum.InvalidValue},
		{"zero size", glenum.UniformBuffer, 0, 0, 0, glenum.InvalidValue},
		{"negative offset", glenum.UniformBuffer, 0, -align, 16, glenum.InvalidValue},
		{"misaligned offset", glenum.UniformBuffer, 0, align / 2, 16, glenum.InvalidValue},
		{"past the end", glenum.UniformBuffer, 0, align, align + 4, glenum.InvalidValue},
		{"overflowing size", glenum.UniformBuffer, 0, align, 1<<63 - 1, glenum.InvalidValue},
		{"valid", glenum.UniformBuffer, 0, align, align, glenum.NoError},
	}
	v := make([]int64, 1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx.BindBufferRange(tt.target, tt.index, name, tt.offset, tt.size)
			expectError(t, ctx, tt.want)
			want := int64(0)
			if tt.want == glenum.NoError {
				want = int64(name)
			}
			ctx.GetInteger64i_v(glenum.UniformBufferBinding, 0, v)
			if v[0] != want {
				t.Errorf("UNIFORM_BUFFER_BINDING[0] = %d, want %d", v[0], want)
			}
		})
	}
	ctx.GetInteger64i_v(glenum.UniformBufferStart, 0, v)
	if v[0] != align {
		t.Errorf("UNIFORM_BUFFER_START[0] = %d, want %d", v[0], align)
	}
	ctx.GetInteger64i_v(glenum.UniformBufferSize, 0, v)
	if v[0] != align {
		t.Errorf("UNIFORM_BUFFER_SIZE[0] = %d, want %d", v[0], align)
	}
}

func TestMapBufferRange(t *testing.T) {
	ctx := newTestContext(t)
	name := ctx.GenBuffers(1)[0]
	ctx.BindBuffer(glenum.ArrayBuffer, name)
	data := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	ctx.BufferData(glenum.ArrayBuffer, 16, data, glenum.DynamicDraw)

	m := ctx.MapBufferRange(glenum.ArrayBuffer, 4, 8, glenum.MapRead)
	if !bytes.Equal(m, data[4:12]) {
		t.Errorf("mapping = %v, want %v", m, data[4:12])
	}
	params := []struct {
		pname glenum.BufferParameter
		want  int64
	}{
		{glenum.BufferMapped, 1},
		{glenum.BufferMapOffset, 4},
		{glenum.BufferMapLength, 8},
		{glenum.BufferAccessFlags, int64(glenum.MapRead)},
	}
	for _, p := range params {
		if got := ctx.GetBufferParameteri64v(glenum.ArrayBuffer, p.pname); got != p.want {
			t.Errorf("%s = %d, want %d", p.pname, got, p.want)
		}
	}
	expectNoError(t, ctx)

	ctx.MapBufferRange(glenum.ArrayBuffer, 0, 4, glenum.MapRead)
	expectError(t, ctx, glenum.InvalidOperation)
	ctx.BufferSubData(glenum.ArrayBuffer, 0, []byte{1})
	expectError(t, ctx, glenum.InvalidOperation)
	ctx.GetBufferSubData(glenum.ArrayBuffer, 0, make([]byte, 1))
	expectError(t, ctx, glenum.InvalidOperation)

	if !ctx.UnmapBuffer(glenum.ArrayBuffer) {
		t.Error("UnmapBuffer = false")
	}
	if ctx.UnmapBuffer(glenum.ArrayBuffer) {
		t.Error("second UnmapBuffer = true")
	}
	expectError(t, ctx, glenum.InvalidOperation)
	if got := ctx.GetBufferParameteri64v(glenum.ArrayBuffer, glenum.BufferMapped); got != 0 {
		t.Errorf("BUFFER_MAPPED = %d after unmap", got)
	}
	expectNoError(t, ctx)
}

func TestMapBufferRangeErrors(t *testing.T) {
	ctx := newTestContext(t)
	name := ctx.GenBuffers(1)[0]
	ctx.BindBuffer(glenum.ArrayBuffer, name)
	ctx.BufferStorage(glenum.ArrayBuffer, 16, nil, glenum.StorageMapWrite)
	expectNoError(t, ctx)

	tests := []struct {
		name   string
		offset int64
		length int64
		access glenum.MapAccess
		want   glenum.ErrorCode
	}{
		{"zero length", 0, 0, glenum.MapWrite, glenum.InvalidValue},
		{"past the end", 8, 16, glenum.MapWrite, glenum.InvalidValue},
		{"unknown bit", 0, 4, glenum.MapAccess(0x8000), glenum.InvalidValue},
		{"no access", 0, 4, glenum.MapInvalidateRange, glenum.InvalidOperation},
		{"read with invalidate", 0, 4, glenum.MapRead | glenum.MapInvalidateRange, glenum.InvalidOperation},
		{"explicit flush without write", 0, 4, glenum.MapRead | glenum.MapFlushExplicit, glenum.InvalidOperation},
		{"read not allowed by storage", 0, 4, glenum.MapRead, glenum.InvalidOperation},
		{"persistent not allowed by storage", 0, 4, glenum.MapWrite | glenum.MapPersistent, glenum.InvalidOperation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if m := ctx.MapBufferRange(glenum.ArrayBuffer, tt.offset, tt.length, tt.access); m != nil {
				t.Errorf("MapBufferRange returned %d bytes", len(m))
			}
			expectError(t, ctx, tt.want)
			if got := ctx.GetBufferParameteri64v(glenum.ArrayBuffer, glenum.BufferMapped); got != 0 {
				t.Error("buffer mapped by a rejected call")
			}
		})
	}
}

func TestFlushMappedBufferRange(t *testing.T) {
	ctx := newTestContext(t)
	name := ctx.GenBuffers(1)[0]
	ctx.BindBuffer(glenum.ArrayBuffer, name)
	ctx.BufferData(glenum.ArrayBuffer, 16, nil, glenum.DynamicDraw)

	ctx.FlushMappedBufferRange(glenum.ArrayBuffer, 0, 4)
	expectError(t, ctx, glenum.InvalidOperation)

	m := ctx.MapBufferRange(glenum.ArrayBuffer, 8, 8, glenum.MapWrite|glenum.MapFlushExplicit)
	if len(m) != 8 {
		t.Fatalf("mapping length = %d", len(m))
	}
	copy(m, []byte{9, 8, 7, 6})
	ctx.FlushMappedBufferRange(glenum.ArrayBuffer, 0, 4)
	expectNoError(t, ctx)
	ctx.FlushMappedBufferRange(glenum.ArrayBuffer, 4, 8)
	expectError(t, ctx, glenum.InvalidValue)
	ctx.UnmapBuffer(glenum.ArrayBuffer)

	got := make([]byte, 4)
	ctx.GetBufferSubData(glenum.ArrayBuffer, 8, got)
	if !bytes.Equal(got, []byte{9, 8, 7, 6}) {
		t.Errorf("contents after flush = %v", got)
	}
	expectNoError(t, ctx)
}

func TestMapBuffer(t *testing.T) {
	ctx := newTestContext(t)
	name := ctx.GenBuffers(1)[0]
	ctx.BindBuffer(glenum.ArrayBuffer, name)
	ctx.BufferData(glenum.ArrayBuffer, 8, nil, glenum.DynamicDraw)

	ctx.MapBuffer(glenum.ArrayBuffer, glenum.BufferAccess(0x1234))
	expectError(t, ctx, glenum.InvalidEnum)

	m := ctx.MapBuffer(glenum.ArrayBuffer, glenum.WriteOnly)
	if len(m) != 8 {
		t.Fatalf("mapping length = %d", len(m))
	}
	if got := ctx.GetBufferParameteriv(glenum.ArrayBuffer, glenum.BufferAccessParam); got != int32(glenum.WriteOnly) {
		t.Errorf("BUFFER_ACCESS = %#x", got)
	}
	ctx.UnmapBuffer(glenum.ArrayBuffer)
	if got := ctx.GetBufferParameteriv(glenum.ArrayBuffer, glenum.BufferAccessParam); got != int32(glenum.ReadWrite) {
		t.Errorf("BUFFER_ACCESS after unmap = %#x", got)
	}
	expectNoError(t, ctx)
}

func TestDeleteMappedBuffer(t *testing.T) {
	ctx := newTestContext(t)
	name := ctx.GenBuffers(1)[0]
	ctx.BindBuffer(glenum.ArrayBuffer, name)
	ctx.BufferData(glenum.ArrayBuffer, 8, nil, glenum.DynamicDraw)
	ctx.MapBufferRange(glenum.ArrayBuffer, 0, 8, glenum.MapWrite)
	ctx.DeleteBuffers([]uint32{name})
	expectNoError(t, ctx)
	if ctx.IsBuffer(name) {
		t.Error("deleted mapped buffer is still a buffer")
	}
}
