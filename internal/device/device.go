// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package device owns the backend device and queue of a context and wraps
// the allocation, upload and readback patterns every object category needs.
package device

import (
	"errors"
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

// Errors.
var (
	ErrNilDevice   = errors.New("device: device is nil")
	ErrNilQueue    = errors.New("device: queue is nil")
	ErrNoAdapter   = errors.New("device: no adapter available")
	ErrOutOfBounds = errors.New("device: range out of bounds")
)

// BufferUsage is the usage every buffer is created with. Storage is always
// host visible; the client usage hint is recorded but not mapped.
const BufferUsage = gputypes.BufferUsageMapRead |
	gputypes.BufferUsageMapWrite |
	gputypes.BufferUsageCopySrc |
	gputypes.BufferUsageCopyDst |
	gputypes.BufferUsageIndex |
	gputypes.BufferUsageVertex |
	gputypes.BufferUsageUniform |
	gputypes.BufferUsageStorage |
	gputypes.BufferUsageIndirect

// copyPitch is the row alignment of texture-to-buffer copies.
const copyPitch = 256

// Device is the backend device and queue of one context.
type Device struct {
	HAL    hal.Device
	Queue  hal.Queue
	Info   gputypes.AdapterInfo
	Limits gputypes.Limits

	instance hal.Instance
	serial   atomic.Uint64
}

// New wraps an already opened device.
func New(dev hal.Device, queue hal.Queue, info gputypes.AdapterInfo, limits gputypes.Limits) (*Device, error) {
	if dev == nil {
		return nil, ErrNilDevice
	}
	if queue == nil {
		return nil, ErrNilQueue
	}
	return &Device{HAL: dev, Queue: queue, Info: info, Limits: limits}, nil
}

// OpenNoop opens the first adapter of the noop backend.
func OpenNoop() (*Device, error) {
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		return nil, fmt.Errorf("device: create instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, ErrNoAdapter
	}
	a := adapters[0]
	open, err := a.Adapter.Open(0, a.Capabilities.Limits)
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("device: open adapter: %w", err)
	}
	d, err := New(open.Device, open.Queue, a.Info, a.Capabilities.Limits)
	if err != nil {
		instance.Destroy()
		return nil, err
	}
	d.instance = instance
	slogger().Info("device: opened", "adapter", a.Info.Name, "backend", a.Info.Backend)
	return d, nil
}

// Close destroys the device, and the instance when the Device opened it.
func (d *Device) Close() {
	if d.HAL != nil {
		_ = d.HAL.WaitIdle()
		d.HAL.Destroy()
		d.HAL = nil
	}
	if d.instance != nil {
		d.instance.Destroy()
		d.instance = nil
	}
}

// NextSerial returns a process-unique identity for a new backend object.
func (d *Device) NextSerial() uint64 { return d.serial.Add(1) }

// AlignedSize rounds a buffer size up to the copy alignment. Zero-sized
// buffers get one word so they can still be bound.
func AlignedSize(size uint64) uint64 {
	if size == 0 {
		return 4
	}
	return (size + 3) &^ 3
}

// CreateBuffer allocates a host-visible buffer of at least size bytes. If
// data is non-nil it is uploaded.
func (d *Device) CreateBuffer(label string, size uint64, data []byte) (hal.Buffer, error) {
	buf, err := d.HAL.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  AlignedSize(size),
		Usage: BufferUsage,
	})
	if err != nil {
		return nil, err
	}
	if len(data) > 0 {
		if err := d.Queue.WriteBuffer(buf, 0, padded(data)); err != nil {
			d.HAL.DestroyBuffer(buf)
			return nil, err
		}
	}
	slogger().Debug("device: buffer created", "label", label, "size", size)
	return buf, nil
}

// padded returns data extended to a multiple of four bytes.
func padded(data []byte) []byte {
	if len(data)%4 == 0 {
		return data
	}
	out := make([]byte, AlignedSize(uint64(len(data))))
	copy(out, data)
	return out
}

// WriteBuffer uploads data at offset through the queue.
func (d *Device) WriteBuffer(buf hal.Buffer, offset uint64, data []byte) error {
	return d.Queue.WriteBuffer(buf, offset, data)
}

// ReadBuffer waits for the device to go idle and copies size bytes at
// offset of buf into dst.
func (d *Device) ReadBuffer(buf hal.Buffer, offset uint64, dst []byte) error {
	if err := d.HAL.WaitIdle(); err != nil {
		return err
	}
	start := offset &^ 3
	end := AlignedSize(offset + uint64(len(dst)))
	m, err := d.HAL.MapBuffer(buf, start, end-start)
	if err != nil {
		return err
	}
	src := unsafe.Slice((*byte)(m.Ptr), end-start)
	copy(dst, src[offset-start:])
	return d.HAL.UnmapBuffer(buf)
}

// Map maps [offset, offset+size) of buf for host access.
func (d *Device) Map(buf hal.Buffer, offset, size uint64) (unsafe.Pointer, error) {
	if err := d.HAL.WaitIdle(); err != nil {
		return nil, err
	}
	start := offset &^ 3
	m, err := d.HAL.MapBuffer(buf, start, AlignedSize(offset+size)-start)
	if err != nil {
		return nil, err
	}
	return unsafe.Add(m.Ptr, offset-start), nil
}

// Unmap releases a mapping made by Map.
func (d *Device) Unmap(buf hal.Buffer) error {
	return d.HAL.UnmapBuffer(buf)
}

// TextureDesc describes a texture allocation.
type TextureDesc struct {
	Label       string
	Format      gputypes.TextureFormat
	Dimension   gputypes.TextureDimension
	Width       uint32
	Height      uint32
	Depth       uint32
	Levels      uint32
	SampleCount uint32
}

// storageFormats are the formats a single-sampled texture can be bound
// as a storage texture with.
var storageFormats = map[gputypes.TextureFormat]bool{
	gputypes.TextureFormatR32Float:     true,
	gputypes.TextureFormatR32Uint:      true,
	gputypes.TextureFormatR32Sint:      true,
	gputypes.TextureFormatRG32Float:    true,
	gputypes.TextureFormatRG32Uint:     true,
	gputypes.TextureFormatRG32Sint:     true,
	gputypes.TextureFormatRGBA8Unorm:   true,
	gputypes.TextureFormatRGBA8Snorm:   true,
	gputypes.TextureFormatRGBA8Uint:    true,
	gputypes.TextureFormatRGBA8Sint:    true,
	gputypes.TextureFormatRGBA16Float:  true,
	gputypes.TextureFormatRGBA16Uint:   true,
	gputypes.TextureFormatRGBA16Sint:   true,
	gputypes.TextureFormatRGBA32Float:  true,
	gputypes.TextureFormatRGBA32Uint:   true,
	gputypes.TextureFormatRGBA32Sint:   true,
	gputypes.TextureFormatBGRA8Unorm:   true,
	gputypes.TextureFormatRGB10A2Unorm: true,
}

// StorageCapable reports whether textures of format can be bound as
// storage textures.
func StorageCapable(format gputypes.TextureFormat) bool { return storageFormats[format] }

// TextureUsage is the usage every texture is created with.
func TextureUsage(format gputypes.TextureFormat, samples uint32) gputypes.TextureUsage {
	u := gputypes.TextureUsageCopySrc | gputypes.TextureUsageCopyDst | gputypes.TextureUsageRenderAttachment
	if samples <= 1 {
		u |= gputypes.TextureUsageTextureBinding
		if StorageCapable(format) {
			u |= gputypes.TextureUsageStorageBinding
		}
	}
	return u
}

// CreateTexture allocates a texture.
func (d *Device) CreateTexture(desc TextureDesc) (hal.Texture, error) {
	if desc.Depth == 0 {
		desc.Depth = 1
	}
	if desc.Levels == 0 {
		desc.Levels = 1
	}
	if desc.SampleCount == 0 {
		desc.SampleCount = 1
	}
	tex, err := d.HAL.CreateTexture(&hal.TextureDescriptor{
		Label:         desc.Label,
		Size:          hal.Extent3D{Width: desc.Width, Height: desc.Height, DepthOrArrayLayers: desc.Depth},
		MipLevelCount: desc.Levels,
		SampleCount:   desc.SampleCount,
		Dimension:     desc.Dimension,
		Format:        desc.Format,
		Usage:         TextureUsage(desc.Format, desc.SampleCount),
	})
	if err != nil {
		return nil, err
	}
	slogger().Debug("device: texture created",
		"label", desc.Label, "format", desc.Format,
		"width", desc.Width, "height", desc.Height, "depth", desc.Depth, "levels", desc.Levels)
	return tex, nil
}

// Region is a box inside one mip level of a texture.
type Region struct {
	Level  uint32
	X, Y   uint32
	Z      uint32
	Width  uint32
	Height uint32
	Depth  uint32
	Aspect gputypes.TextureAspect
}

func (r Region) extent() hal.Extent3D {
	depth := r.Depth
	if depth == 0 {
		depth = 1
	}
	return hal.Extent3D{Width: r.Width, Height: r.Height, DepthOrArrayLayers: depth}
}

func (r Region) origin(tex hal.Texture) hal.ImageCopyTexture {
	aspect := r.Aspect
	if aspect == gputypes.TextureAspectUndefined {
		aspect = gputypes.TextureAspectAll
	}
	return hal.ImageCopyTexture{
		Texture:  tex,
		MipLevel: r.Level,
		Origin:   hal.Origin3D{X: r.X, Y: r.Y, Z: r.Z},
		Aspect:   aspect,
	}
}

// WriteTexture uploads tightly packed rows of bpp-byte texels into region.
func (d *Device) WriteTexture(tex hal.Texture, r Region, bpp uint32, data []byte) error {
	dst := r.origin(tex)
	size := r.extent()
	layout := hal.ImageDataLayout{BytesPerRow: r.Width * bpp, RowsPerImage: r.Height}
	return d.Queue.WriteTexture(&dst, data, &layout, &size)
}

// ReadTexture copies region of tex back to the host and returns tightly
// packed rows of bpp-byte texels, top row first as stored.
func (d *Device) ReadTexture(tex hal.Texture, r Region, bpp uint32) ([]byte, error) {
	size := r.extent()
	pitch := (r.Width*bpp + copyPitch - 1) &^ (copyPitch - 1)
	staging, err := d.CreateBuffer("readback", uint64(pitch)*uint64(r.Height)*uint64(size.DepthOrArrayLayers), nil)
	if err != nil {
		return nil, err
	}
	defer d.HAL.DestroyBuffer(staging)

	enc, err := d.HAL.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "readback"})
	if err != nil {
		return nil, err
	}
	defer enc.Destroy()
	if err := enc.BeginEncoding("readback"); err != nil {
		return nil, err
	}
	enc.CopyTextureToBuffer(tex, staging, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{BytesPerRow: pitch, RowsPerImage: r.Height},
		TextureBase:  r.origin(tex),
		Size:         size,
	}})
	cmd, err := enc.EndEncoding()
	if err != nil {
		return nil, err
	}
	defer d.HAL.FreeCommandBuffer(cmd)
	if _, err := d.Queue.Submit([]hal.CommandBuffer{cmd}); err != nil {
		return nil, err
	}

	rowBytes := r.Width * bpp
	rows := r.Height * size.DepthOrArrayLayers
	raw := make([]byte, uint64(pitch)*uint64(rows))
	if err := d.ReadBuffer(staging, 0, raw); err != nil {
		return nil, err
	}
	out := make([]byte, uint64(rowBytes)*uint64(rows))
	for y := uint32(0); y < rows; y++ {
		copy(out[y*rowBytes:(y+1)*rowBytes], raw[y*pitch:])
	}
	return out, nil
}
