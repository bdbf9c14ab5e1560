// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"testing"

	"github.com/gogpu/glhal/glenum"
)

func TestVertexArrayLifecycle(t *testing.T) {
	ctx := newTestContext(t)
	names := ctx.GenVertexArrays(2)
	a, b := names[0], names[1]
	if ctx.IsVertexArray(a) {
		t.Error("generated name is a vertex array before it is bound")
	}
	ctx.BindVertexArray(a)
	if !ctx.IsVertexArray(a) {
		t.Fatal("bound name is not a vertex array")
	}
	ctx.BindVertexArray(77)
	expectNoError(t, ctx)
	if !ctx.IsVertexArray(77) {
		t.Error("BindVertexArray did not create vertex array 77")
	}

	buf := ctx.CreateBuffers(1)[0]
	v := make([]int32, 1)
	ctx.BindVertexArray(a)
	ctx.BindBuffer(glenum.ElementArrayBuffer, buf)
	ctx.BindVertexArray(b)
	ctx.GetIntegerv(glenum.ElementArrayBufferBinding, v)
	if v[0] != 0 {
		t.Errorf("ELEMENT_ARRAY_BUFFER_BINDING on a fresh array = %d", v[0])
	}
	ctx.BindVertexArray(a)
	ctx.GetIntegerv(glenum.ElementArrayBufferBinding, v)
	if v[0] != int32(buf) {
		t.Errorf("ELEMENT_ARRAY_BUFFER_BINDING = %d, want %d", v[0], buf)
	}

	ctx.DeleteVertexArrays([]uint32{a})
	expectNoError(t, ctx)
	ctx.GetIntegerv(glenum.VertexArrayBinding, v)
	if v[0] != 0 {
		t.Errorf("VERTEX_ARRAY_BINDING after delete = %d", v[0])
	}
	if ctx.IsVertexArray(a) {
		t.Error("deleted name is still a vertex array")
	}
	if !ctx.IsVertexArray(b) {
		t.Error("deleting one array removed another")
	}
}

func TestVertexAttribPointer(t *testing.T) {
	ctx := newTestContext(t)
	vao := ctx.CreateVertexArrays(1)[0]
	ctx.BindVertexArray(vao)
	buf := ctx.CreateBuffers(1)[0]
	ctx.BindBuffer(glenum.ArrayBuffer, buf)

	ctx.VertexAttribPointer(1, 3, glenum.AttribFloat, false, 0, 8)
	ctx.VertexAttribIPointer(2, 4, glenum.AttribUnsignedByte, 0, 0)
	ctx.VertexAttribPointer(3, 4, glenum.AttribInt2101010Rev, true, 0, 0)
	expectNoError(t, ctx)

	va := ctx.currentVAO()
	if va.name != vao {
		t.Fatalf("current array = %d, want %d", va.name, vao)
	}
	tests := []struct {
		index  uint32
		stride int32
		offset int64
	}{
		{1, 12, 8},
		{2, 4, 0},
		{3, 4, 0},
	}
	for _, tt := range tests {
		b := va.bindings[tt.index]
		if b.buffer != buf || b.stride != tt.stride || b.offset != tt.offset {
			t.Errorf("binding %d = %+v, want buffer %d stride %d offset %d", tt.index, b, buf, tt.stride, tt.offset)
		}
		if va.attribs[tt.index].binding != tt.index {
			t.Errorf("attribute %d sources binding %d", tt.index, va.attribs[tt.index].binding)
		}
	}
	if !va.attribs[2].integer || va.attribs[1].integer {
		t.Error("integer flag not taken from the entry point")
	}

	ctx.BindBuffer(glenum.ArrayBuffer, 0)
	ctx.VertexAttribPointer(4, 4, glenum.AttribFloat, false, 0, 0)
	expectNoError(t, ctx)
	if va.bindings[4].buffer != 0 {
		t.Errorf("binding 4 sources buffer %d with no array buffer bound", va.bindings[4].buffer)
	}
}

func TestVertexAttribPointerErrors(t *testing.T) {
	ctx := newTestContext(t)
	ctx.BindVertexArray(ctx.CreateVertexArrays(1)[0])
	buf := ctx.CreateBuffers(1)[0]
	ctx.BindBuffer(glenum.ArrayBuffer, buf)
	expectNoError(t, ctx)

	tests := []struct {
		name string
		call func()
		want glenum.ErrorCode
	}{
		{"index out of range", func() { ctx.VertexAttribPointer(MaxVertexAttribs, 4, glenum.AttribFloat, false, 0, 0) }, glenum.InvalidValue},
		{"unknown type", func() { ctx.VertexAttribPointer(0, 4, glenum.AttribType(0x1234), false, 0, 0) }, glenum.InvalidEnum},
		{"float type for integer pointer", func() { ctx.VertexAttribIPointer(0, 4, glenum.AttribFloat, 0, 0) }, glenum.InvalidEnum},
		{"zero size", func() { ctx.VertexAttribPointer(0, 0, glenum.AttribFloat, false, 0, 0) }, glenum.InvalidValue},
		{"size five", func() { ctx.VertexAttribPointer(0, 5, glenum.AttribFloat, false, 0, 0) }, glenum.InvalidValue},
		{"packed 2101010 with size 3", func() { ctx.VertexAttribPointer(0, 3, glenum.AttribUnsignedInt2101010Rev, true, 0, 0) }, glenum.InvalidOperation},
		{"packed 10f11f11f with size 4", func() { ctx.VertexAttribPointer(0, 4, glenum.AttribUnsignedInt10F11F11FRev, false, 0, 0) }, glenum.InvalidOperation},
		{"negative stride", func() { ctx.VertexAttribPointer(0, 4, glenum.AttribFloat, false, -4, 0) }, glenum.InvalidValue},
		{"stride past the limit", func() { ctx.VertexAttribPointer(0, 4, glenum.AttribFloat, false, MaxVertexAttribStride+1, 0) }, glenum.InvalidValue},
		{"relative offset past the limit", func() { ctx.VertexAttribFormat(0, 4, glenum.AttribFloat, false, MaxVertexAttribStride+1) }, glenum.InvalidValue},
		{"client memory array", func() {
			ctx.BindBuffer(glenum.ArrayBuffer, 0)
			ctx.VertexAttribPointer(0, 4, glenum.AttribFloat, false, 0, 16)
		}, glenum.InvalidOperation},
	}
	va := ctx.currentVAO()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrib, binding := va.attribs[0], va.bindings[0]
			tt.call()
			expectError(t, ctx, tt.want)
			if va.attribs[0] != attrib || va.bindings[0] != binding {
				t.Errorf("attribute 0 changed by a rejected call: %+v %+v", va.attribs[0], va.bindings[0])
			}
		})
	}
}

func TestVertexBindings(t *testing.T) {
	ctx := newTestContext(t)
	ctx.BindVertexArray(ctx.CreateVertexArrays(1)[0])
	buf := ctx.CreateBuffers(1)[0]
	va := ctx.currentVAO()

	ctx.VertexAttribFormat(0, 2, glenum.AttribFloat, false, 8)
	ctx.VertexAttribBinding(0, 5)
	ctx.BindVertexBuffer(5, buf, 16, 32)
	ctx.VertexAttribDivisor(3, 1)
	ctx.VertexBindingDivisor(6, 2)
	expectNoError(t, ctx)

	if a := va.attribs[0]; a.binding != 5 || a.offset != 8 || a.size != 2 {
		t.Errorf("attribute 0 = %+v", a)
	}
	if b := va.bindings[5]; b.buffer != buf || b.offset != 16 || b.stride != 32 {
		t.Errorf("binding 5 = %+v", b)
	}
	if va.attribs[3].binding != 3 || va.bindings[3].divisor != 1 {
		t.Errorf("VertexAttribDivisor: attribute 3 binding %d divisor %d", va.attribs[3].binding, va.bindings[3].divisor)
	}
	if va.bindings[6].divisor != 2 {
		t.Errorf("binding 6 divisor = %d", va.bindings[6].divisor)
	}

	ctx.BindVertexBuffer(7, 500, 0, 16)
	expectNoError(t, ctx)
	if !ctx.IsBuffer(500) {
		t.Error("BindVertexBuffer did not create buffer 500")
	}

	tests := []struct {
		name string
		call func()
	}{
		{"attribute out of range", func() { ctx.VertexAttribBinding(MaxVertexAttribs, 0) }},
		{"binding out of range", func() { ctx.VertexAttribBinding(0, MaxVertexAttribBindings) }},
		{"buffer binding out of range", func() { ctx.BindVertexBuffer(MaxVertexAttribBindings, buf, 0, 16) }},
		{"negative offset", func() { ctx.BindVertexBuffer(5, buf, -1, 16) }},
		{"negative stride", func() { ctx.BindVertexBuffer(5, buf, 0, -1) }},
		{"stride past the limit", func() { ctx.BindVertexBuffer(5, buf, 0, MaxVertexAttribStride+1) }},
		{"divisor binding out of range", func() { ctx.VertexBindingDivisor(MaxVertexAttribBindings, 1) }},
		{"divisor attribute out of range", func() { ctx.VertexAttribDivisor(MaxVertexAttribs, 1) }},
		{"enable out of range", func() { ctx.EnableVertexAttribArray(MaxVertexAttribs) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := va.bindings[5]
			tt.call()
			expectError(t, ctx, glenum.InvalidValue)
			if va.bindings[5] != before {
				t.Errorf("binding 5 changed by a rejected call: %+v", va.bindings[5])
			}
		})
	}
}

func TestGenericVertexAttribs(t *testing.T) {
	ctx := newTestContext(t)
	v := make([]float32, 4)
	ctx.GetVertexAttribfv(0, v)
	if [4]float32(v) != [4]float32{0, 0, 0, 1} {
		t.Errorf("default generic value = %v", v)
	}

	tests := []struct {
		name  string
		index uint32
		set   func(index uint32)
		want  [4]float32
	}{
		{"float", 1, func(i uint32) { ctx.VertexAttrib4f(i, 0.5, 1, 2, 3) }, [4]float32{0.5, 1, 2, 3}},
		{"signed", 2, func(i uint32) { ctx.VertexAttribI4i(i, -2, 0, 7, 1) }, [4]float32{-2, 0, 7, 1}},
		{"unsigned", 3, func(i uint32) { ctx.VertexAttribI4ui(i, 4, 5, 6, 7) }, [4]float32{4, 5, 6, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.set(tt.index)
			expectNoError(t, ctx)
			ctx.GetVertexAttribfv(tt.index, v)
			if [4]float32(v) != tt.want {
				t.Errorf("generic value = %v, want %v", v, tt.want)
			}
		})
	}

	ctx.VertexAttrib4f(MaxVertexAttribs, 1, 1, 1, 1)
	expectError(t, ctx, glenum.InvalidValue)
	ctx.GetVertexAttribfv(MaxVertexAttribs, v)
	expectError(t, ctx, glenum.InvalidValue)
}
