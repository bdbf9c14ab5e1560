// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"slices"
	"testing"

	"github.com/gogpu/glhal/glenum"
)

func TestAssemble(t *testing.T) {
	tests := []struct {
		name    string
		mode    glenum.PrimitiveMode
		in      []uint32
		restart bool
		index   uint32
		want    []uint32
	}{
		{"points", glenum.Points, []uint32{4, 5, 6}, false, 0, []uint32{4, 5, 6}},
		{"lines drop odd vertex", glenum.Lines, []uint32{0, 1, 2}, false, 0, []uint32{0, 1}},
		{"triangles drop partial", glenum.Triangles, []uint32{0, 1, 2, 3, 4}, false, 0, []uint32{0, 1, 2}},
		{"line loop", glenum.LineLoop, []uint32{0, 1, 2}, false, 0, []uint32{0, 1, 1, 2, 2, 0}},
		{"line loop single vertex", glenum.LineLoop, []uint32{7}, false, 0, nil},
		{"triangle fan", glenum.TriangleFan, []uint32{0, 1, 2, 3}, false, 0, []uint32{0, 1, 2, 0, 2, 3}},
		{"lines adjacency", glenum.LinesAdjacency, []uint32{0, 1, 2, 3, 4, 5, 6, 7}, false, 0, []uint32{1, 2, 5, 6}},
		{"line strip adjacency", glenum.LineStripAdjacency, []uint32{0, 1, 2, 3, 4}, false, 0, []uint32{1, 2, 2, 3}},
		{"triangles adjacency", glenum.TrianglesAdjacency, []uint32{0, 1, 2, 3, 4, 5}, false, 0, []uint32{0, 2, 4}},
		{"triangle strip adjacency", glenum.TriangleStripAdjacency, []uint32{0, 1, 2, 3, 4, 5, 6, 7}, false, 0,
			[]uint32{0, 2, 4, 4, 2, 6}},
		{"strip restart", glenum.TriangleStrip, []uint32{0, 1, 2, 9, 3, 4, 5}, true, 9,
			[]uint32{0, 1, 2, restartMarker, 3, 4, 5}},
		{"strip leading restart", glenum.LineStrip, []uint32{9, 0, 1}, true, 9, []uint32{0, 1}},
		{"fan restart", glenum.TriangleFan, []uint32{0, 1, 2, 3, 9, 4, 5, 6}, true, 9,
			[]uint32{0, 1, 2, 0, 2, 3, 4, 5, 6}},
		{"loop restart", glenum.LineLoop, []uint32{0, 1, 9, 2, 3}, true, 9, []uint32{0, 1, 1, 0, 2, 3, 3, 2}},
		{"restart disabled", glenum.Triangles, []uint32{0, 9, 1}, false, 9, []uint32{0, 9, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := assemble(tt.mode, tt.in, tt.restart, tt.index)
			if !slices.Equal(got, tt.want) {
				t.Errorf("assemble(%s, %v) = %v, want %v", tt.mode, tt.in, got, tt.want)
			}
		})
	}
}

func TestPrimitives(t *testing.T) {
	tests := []struct {
		mode  glenum.PrimitiveMode
		count uint64
		want  uint64
	}{
		{glenum.Points, 5, 5},
		{glenum.Lines, 5, 2},
		{glenum.LineLoop, 1, 0},
		{glenum.LineLoop, 4, 4},
		{glenum.LineStrip, 4, 3},
		{glenum.Triangles, 7, 2},
		{glenum.TriangleStrip, 2, 0},
		{glenum.TriangleStrip, 5, 3},
		{glenum.TriangleFan, 5, 3},
		{glenum.LinesAdjacency, 8, 2},
		{glenum.LineStripAdjacency, 5, 2},
		{glenum.TrianglesAdjacency, 12, 2},
		{glenum.TriangleStripAdjacency, 8, 2},
		{glenum.Patches, 9, 0},
	}
	for _, tt := range tests {
		if got := primitives(tt.mode, tt.count); got != tt.want {
			t.Errorf("primitives(%s, %d) = %d, want %d", tt.mode, tt.count, got, tt.want)
		}
	}
}

func TestIndexCoding(t *testing.T) {
	tests := []struct {
		typ  glenum.IndexType
		data []byte
		want []uint32
	}{
		{glenum.IndexUnsignedByte, []byte{1, 2, 255}, []uint32{1, 2, 255}},
		{glenum.IndexUnsignedShort, []byte{1, 0, 0xFF, 0xFF}, []uint32{1, 0xFFFF}},
		{glenum.IndexUnsignedInt, []byte{1, 0, 0, 0, 0, 0, 0, 0x80}, []uint32{1, 0x80000000}},
	}
	for _, tt := range tests {
		got := decodeIndices(tt.typ, tt.data)
		if !slices.Equal(got, tt.want) {
			t.Errorf("decodeIndices(%s) = %v, want %v", tt.typ, got, tt.want)
		}
	}

	enc := encodeIndices([]uint32{1, 0x01020304})
	want := []byte{1, 0, 0, 0, 4, 3, 2, 1}
	if !slices.Equal(enc, want) {
		t.Errorf("encodeIndices = %v, want %v", enc, want)
	}
}

func TestSplitRestart(t *testing.T) {
	got := splitRestart([]uint32{7, 0, 1, 7, 7, 2, 7}, 7)
	if len(got) != 2 || !slices.Equal(got[0], []uint32{0, 1}) || !slices.Equal(got[1], []uint32{2}) {
		t.Errorf("splitRestart = %v", got)
	}
	if got := sequence(5, 3); !slices.Equal(got, []uint32{5, 6, 7}) {
		t.Errorf("sequence(5, 3) = %v", got)
	}
}
