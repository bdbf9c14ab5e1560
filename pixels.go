// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"github.com/gogpu/glhal/glenum"
)

// Pixels is the client side of a pixel transfer. When a pixel unpack or
// pack buffer is bound, Offset is a byte offset into that buffer and Data
// is ignored; otherwise Offset indexes Data. Rows are bottom row first.
type Pixels struct {
	Data   []byte
	Offset int
}

// PixelData returns Pixels over a client slice.
func PixelData(data []byte) Pixels { return Pixels{Data: data} }

// pixelLayout is one direction of the pixel store state.
type pixelLayout struct {
	alignment   int32
	rowLength   int32
	imageHeight int32
	skipPixels  int32
	skipRows    int32
	skipImages  int32
	swapBytes   bool
	lsbFirst    bool
}

type pixelStore struct {
	unpack pixelLayout
	pack   pixelLayout
}

func defaultPixelStore() pixelStore {
	return pixelStore{
		unpack: pixelLayout{alignment: 4},
		pack:   pixelLayout{alignment: 4},
	}
}

// PixelStorei sets a pixel pack or unpack parameter.
func (c *Context) PixelStorei(pname glenum.PixelStoreParameter, param int32) {
	if !c.live() {
		return
	}
	l := &c.pixel.unpack
	switch pname {
	case glenum.PackSwapBytes, glenum.PackLSBFirst, glenum.PackRowLength, glenum.PackSkipRows,
		glenum.PackSkipPixels, glenum.PackAlignment, glenum.PackSkipImages, glenum.PackImageHeight:
		l = &c.pixel.pack
	}
	switch pname {
	case glenum.UnpackAlignment, glenum.PackAlignment:
		if param != 1 && param != 2 && param != 4 && param != 8 {
			c.errorf(glenum.InvalidValue, "PixelStorei: alignment %d", param)
			return
		}
		l.alignment = param
		return
	case glenum.UnpackSwapBytes, glenum.PackSwapBytes:
		l.swapBytes = param != 0
		return
	case glenum.UnpackLSBFirst, glenum.PackLSBFirst:
		l.lsbFirst = param != 0
		return
	}
	if param < 0 {
		c.errorf(glenum.InvalidValue, "PixelStorei: %s %d", pname, param)
		return
	}
	switch pname {
	case glenum.UnpackRowLength, glenum.PackRowLength:
		l.rowLength = param
	case glenum.UnpackSkipRows, glenum.PackSkipRows:
		l.skipRows = param
	case glenum.UnpackSkipPixels, glenum.PackSkipPixels:
		l.skipPixels = param
	case glenum.UnpackSkipImages, glenum.PackSkipImages:
		l.skipImages = param
	case glenum.UnpackImageHeight, glenum.PackImageHeight:
		l.imageHeight = param
	default:
		c.errorf(glenum.InvalidEnum, "PixelStorei: pname %s", pname)
	}
}

// span describes where the rows of a w x h x d image sit in client memory.
type span struct {
	start int // offset of the first texel
	pitch int // bytes between rows
	slice int // bytes between images
	row   int // bytes of texels in one row
	size  int // bytes from start to the end of the last texel
}

func (l pixelLayout) span(w, h, d, bpp int) span {
	rowLen := w
	if l.rowLength > 0 {
		rowLen = int(l.rowLength)
	}
	align := int(l.alignment)
	pitch := (rowLen*bpp + align - 1) / align * align
	imgH := h
	if l.imageHeight > 0 {
		imgH = int(l.imageHeight)
	}
	s := span{
		pitch: pitch,
		slice: pitch * imgH,
		row:   w * bpp,
	}
	s.start = int(l.skipImages)*s.slice + int(l.skipRows)*pitch + int(l.skipPixels)*bpp
	if w > 0 && h > 0 && d > 0 {
		s.size = (d-1)*s.slice + (h-1)*pitch + s.row
	}
	return s
}

// gather copies the rows described by s out of src into a tight image.
func (s span) gather(src []byte, h, d int) []byte {
	out := make([]byte, s.row*h*d)
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			from := s.start + z*s.slice + y*s.pitch
			copy(out[(z*h+y)*s.row:], src[from:from+s.row])
		}
	}
	return out
}

// scatter copies a tight image into the rows described by s in dst.
func (s span) scatter(dst, tight []byte, h, d int) {
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			to := s.start + z*s.slice + y*s.pitch
			copy(dst[to:to+s.row], tight[(z*h+y)*s.row:])
		}
	}
}

// swapComponents reverses the byte order of every component in place.
func swapComponents(data []byte, size int) {
	if size < 2 {
		return
	}
	for i := 0; i+size <= len(data); i += size {
		for a, b := i, i+size-1; a < b; a, b = a+1, b-1 {
			data[a], data[b] = data[b], data[a]
		}
	}
}

// PixelTransferSize returns how many bytes of client memory a w x h x d
// transfer of format and typ touches under the current pack or unpack
// state. buffer reports that a pixel pack or unpack buffer is bound, in
// which case the client pointer is an offset into it.
func (c *Context) PixelTransferSize(pack bool, w, h, d int32, format glenum.PixelFormat, typ glenum.PixelType) (n int, buffer bool) {
	l, target := c.pixel.unpack, glenum.PixelUnpackBuffer
	if pack {
		l, target = c.pixel.pack, glenum.PixelPackBuffer
	}
	if w <= 0 || h <= 0 || d <= 0 {
		return 0, c.bufferTargets[target] != 0
	}
	s := l.span(int(w), int(h), int(d), glenum.BytesPerPixel(format, typ))
	return s.start + s.size, c.bufferTargets[target] != 0
}

// unpackPixels reads a w x h x d client image described by the unpack state
// and returns it tightly packed. A nil result with ok means no data.
func (c *Context) unpackPixels(op string, px Pixels, w, h, d, bpp int, typ glenum.PixelType) (data []byte, ok bool) {
	l := c.pixel.unpack
	s := l.span(w, h, d, bpp)
	var src []byte
	if name := c.bufferTargets[glenum.PixelUnpackBuffer]; name != 0 {
		b, _ := c.buffers.Get(name)
		end := int64(px.Offset) + int64(s.start+s.size)
		if px.Offset < 0 || b == nil || end > b.size {
			c.errorf(glenum.InvalidOperation, "%s: unpack range exceeds the pixel unpack buffer", op)
			return nil, false
		}
		if b.mapped && !b.persistent() {
			c.errorf(glenum.InvalidOperation, "%s: pixel unpack buffer is mapped", op)
			return nil, false
		}
		if s.size == 0 {
			return nil, true
		}
		src = make([]byte, s.start+s.size)
		if !c.flushFor(b.serial) {
			return nil, false
		}
		if err := c.dev.ReadBuffer(b.hal, uint64(px.Offset), src); err != nil {
			c.backendError(op, err)
			return nil, false
		}
	} else {
		if px.Data == nil {
			return nil, true
		}
		if px.Offset < 0 || px.Offset+s.start+s.size > len(px.Data) {
			c.errorf(glenum.InvalidValue, "%s: %d bytes of pixel data, need %d", op, len(px.Data), px.Offset+s.start+s.size)
			return nil, false
		}
		src = px.Data[px.Offset:]
	}
	if s.size == 0 {
		return []byte{}, true
	}
	out := s.gather(src, h, d)
	if l.swapBytes && !typ.Packed() {
		swapComponents(out, typ.Size())
	}
	return out, true
}

// packPixels writes a tight w x h image into client memory described by the
// pack layout l.
func (c *Context) packPixels(op string, l pixelLayout, px Pixels, tight []byte, w, h, bpp int, typ glenum.PixelType) {
	s := l.span(w, h, 1, bpp)
	if l.swapBytes && !typ.Packed() {
		swapComponents(tight, typ.Size())
	}
	if name := c.bufferTargets[glenum.PixelPackBuffer]; name != 0 {
		b, _ := c.buffers.Get(name)
		end := int64(px.Offset) + int64(s.start+s.size)
		if px.Offset < 0 || b == nil || end > b.size {
			c.errorf(glenum.InvalidOperation, "%s: pack range exceeds the pixel pack buffer", op)
			return
		}
		if b.mapped && !b.persistent() {
			c.errorf(glenum.InvalidOperation, "%s: pixel pack buffer is mapped", op)
			return
		}
		dst := make([]byte, s.start+s.size)
		if s.start > 0 || s.pitch != s.row {
			if !c.flushFor(b.serial) {
				return
			}
			if err := c.dev.ReadBuffer(b.hal, uint64(px.Offset), dst); err != nil {
				c.backendError(op, err)
				return
			}
		}
		s.scatter(dst, tight, h, 1)
		c.writeBuffer(op, b, int64(px.Offset), dst)
		return
	}
	if px.Offset < 0 || px.Offset+s.start+s.size > len(px.Data) {
		c.errorf(glenum.InvalidValue, "%s: %d bytes of pixel storage, need %d", op, len(px.Data), px.Offset+s.start+s.size)
		return
	}
	s.scatter(px.Data[px.Offset:], tight, h, 1)
}
