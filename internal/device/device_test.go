// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import (
	"bytes"
	"errors"
	"testing"
	"unsafe"

	"github.com/gogpu/gputypes"
)

func openNoop(t *testing.T) *Device {
	t.Helper()
	d, err := OpenNoop()
	if err != nil {
		t.Fatalf("OpenNoop: %v", err)
	}
	t.Cleanup(d.Close)
	return d
}

func TestNewRejectsNil(t *testing.T) {
	if _, err := New(nil, nil, gputypes.AdapterInfo{}, gputypes.DefaultLimits()); !errors.Is(err, ErrNilDevice) {
		t.Errorf("err = %v, want ErrNilDevice", err)
	}
}

func TestBufferRoundTrip(t *testing.T) {
	d := openNoop(t)
	buf, err := d.CreateBuffer("test", 10, []byte{1, 2, 3})
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}
	if err := d.WriteBuffer(buf, 4, []byte{9, 8, 7, 6}); err != nil {
		t.Fatalf("WriteBuffer: %v", err)
	}

	got := make([]byte, 5)
	if err := d.ReadBuffer(buf, 2, got); err != nil {
		t.Fatalf("ReadBuffer: %v", err)
	}
	want := []byte{3, 0, 9, 8, 7}
	if !bytes.Equal(got, want) {
		t.Errorf("ReadBuffer = %v, want %v", got, want)
	}
}

func TestMapUnaligned(t *testing.T) {
	d := openNoop(t)
	buf, _ := d.CreateBuffer("map", 16, []byte{0, 1, 2, 3, 4, 5, 6, 7})
	p, err := d.Map(buf, 5, 2)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if got := unsafe.Slice((*byte)(p), 2); got[0] != 5 || got[1] != 6 {
		t.Errorf("mapped bytes = %v", got)
	}
	if err := d.Unmap(buf); err != nil {
		t.Errorf("Unmap: %v", err)
	}
}

func TestAlignedSize(t *testing.T) {
	for in, want := range map[uint64]uint64{0: 4, 1: 4, 4: 4, 5: 8, 64: 64} {
		if got := AlignedSize(in); got != want {
			t.Errorf("AlignedSize(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestSerialsAreUnique(t *testing.T) {
	d := openNoop(t)
	a, b := d.NextSerial(), d.NextSerial()
	if a == b || a == 0 {
		t.Errorf("serials %d, %d", a, b)
	}
}

func TestReadTexture(t *testing.T) {
	d := openNoop(t)
	tex, err := d.CreateTexture(TextureDesc{
		Label:     "rt",
		Format:    gputypes.TextureFormatRGBA8Unorm,
		Dimension: gputypes.TextureDimension2D,
		Width:     3,
		Height:    2,
	})
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	if err := d.WriteTexture(tex, Region{Width: 3, Height: 2}, 4, make([]byte, 24)); err != nil {
		t.Fatalf("WriteTexture: %v", err)
	}
	out, err := d.ReadTexture(tex, Region{Width: 3, Height: 2}, 4)
	if err != nil {
		t.Fatalf("ReadTexture: %v", err)
	}
	if len(out) != 24 {
		t.Errorf("len = %d, want 24", len(out))
	}
}

func TestTextureUsage(t *testing.T) {
	tests := []struct {
		name    string
		format  gputypes.TextureFormat
		samples uint32
		storage bool
		binding bool
	}{
		{"rgba8", gputypes.TextureFormatRGBA8Unorm, 1, true, true},
		{"r32uint", gputypes.TextureFormatR32Uint, 1, true, true},
		{"srgb", gputypes.TextureFormatRGBA8UnormSrgb, 1, false, true},
		{"depth", gputypes.TextureFormatDepth32Float, 1, false, true},
		{"multisampled", gputypes.TextureFormatRGBA8Unorm, 4, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := TextureUsage(tt.format, tt.samples)
			if got := u&gputypes.TextureUsageStorageBinding != 0; got != tt.storage {
				t.Errorf("storage binding = %v, want %v", got, tt.storage)
			}
			if got := u&gputypes.TextureUsageTextureBinding != 0; got != tt.binding {
				t.Errorf("texture binding = %v, want %v", got, tt.binding)
			}
		})
	}
}
