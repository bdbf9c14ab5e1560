// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"github.com/gogpu/glhal/glenum"
)

// restartMarker is the strip restart index of generated uint32 indices.
const restartMarker = 0xFFFFFFFF

// sequence returns the indices first .. first+count-1.
func sequence(first, count uint32) []uint32 {
	out := make([]uint32, count)
	for i := range out {
		out[i] = first + uint32(i)
	}
	return out
}

// splitRestart splits indices at every occurrence of restart.
func splitRestart(indices []uint32, restart uint32) [][]uint32 {
	var parts [][]uint32
	start := 0
	for i, v := range indices {
		if v == restart {
			if i > start {
				parts = append(parts, indices[start:i])
			}
			start = i + 1
		}
	}
	if start < len(indices) {
		parts = append(parts, indices[start:])
	}
	return parts
}

// assemble rewrites the vertex sequence of a draw of mode into indices for
// the backend topology topologyOf reports for mode. When restart is set,
// occurrences of index end the current primitive. Strip modes keep their
// topology and mark restarts with restartMarker; every other mode is
// expanded into a list.
func assemble(mode glenum.PrimitiveMode, indices []uint32, restart bool, index uint32) []uint32 {
	parts := [][]uint32{indices}
	if restart {
		parts = splitRestart(indices, index)
	}
	var out []uint32
	for i, p := range parts {
		switch mode {
		case glenum.LineStrip, glenum.TriangleStrip:
			if i > 0 {
				out = append(out, restartMarker)
			}
			out = append(out, p...)
		default:
			out = appendPrimitives(out, mode, p)
		}
	}
	return out
}

// appendPrimitives appends the list primitives one segment of mode
// assembles. Adjacency vertices are dropped. Incomplete primitives at the
// end of a segment are ignored.
func appendPrimitives(out []uint32, mode glenum.PrimitiveMode, v []uint32) []uint32 {
	n := len(v)
	switch mode {
	case glenum.Points:
		out = append(out, v...)
	case glenum.Lines:
		out = append(out, v[:n&^1]...)
	case glenum.Triangles:
		out = append(out, v[:n-n%3]...)
	case glenum.LineLoop:
		if n < 2 {
			break
		}
		for i := 0; i+1 < n; i++ {
			out = append(out, v[i], v[i+1])
		}
		out = append(out, v[n-1], v[0])
	case glenum.TriangleFan:
		for i := 1; i+1 < n; i++ {
			out = append(out, v[0], v[i], v[i+1])
		}
	case glenum.LinesAdjacency:
		for i := 0; i+3 < n; i += 4 {
			out = append(out, v[i+1], v[i+2])
		}
	case glenum.LineStripAdjacency:
		for i := 1; i+2 < n; i++ {
			out = append(out, v[i], v[i+1])
		}
	case glenum.TrianglesAdjacency:
		for i := 0; i+5 < n; i += 6 {
			out = append(out, v[i], v[i+2], v[i+4])
		}
	case glenum.TriangleStripAdjacency:
		for i := 0; 2*i+5 < n; i++ {
			if i%2 == 0 {
				out = append(out, v[2*i], v[2*i+2], v[2*i+4])
			} else {
				out = append(out, v[2*i+2], v[2*i], v[2*i+4])
			}
		}
	}
	return out
}

// primitives returns the number of primitives count vertices of mode
// assemble, ignoring restarts.
func primitives(mode glenum.PrimitiveMode, count uint64) uint64 {
	switch mode {
	case glenum.Points:
		return count
	case glenum.Lines:
		return count / 2
	case glenum.LineLoop:
		if count < 2 {
			return 0
		}
		return count
	case glenum.LineStrip:
		if count < 2 {
			return 0
		}
		return count - 1
	case glenum.Triangles:
		return count / 3
	case glenum.TriangleStrip, glenum.TriangleFan:
		if count < 3 {
			return 0
		}
		return count - 2
	case glenum.LinesAdjacency:
		return count / 4
	case glenum.LineStripAdjacency:
		if count < 4 {
			return 0
		}
		return count - 3
	case glenum.TrianglesAdjacency:
		return count / 6
	case glenum.TriangleStripAdjacency:
		if count < 6 {
			return 0
		}
		return (count - 4) / 2
	}
	return 0
}

// decodeIndices widens raw index data of typ to uint32.
func decodeIndices(typ glenum.IndexType, data []byte) []uint32 {
	size := typ.Size()
	out := make([]uint32, len(data)/size)
	for i := range out {
		b := data[i*size:]
		switch size {
		case 1:
			out[i] = uint32(b[0])
		case 2:
			out[i] = uint32(b[0]) | uint32(b[1])<<8
		default:
			out[i] = uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
		}
	}
	return out
}

// encodeIndices packs indices as little-endian uint32.
func encodeIndices(indices []uint32) []byte {
	out := make([]byte, 4*len(indices))
	for i, v := range indices {
		putUint32(out[4*i:], v)
	}
	return out
}
