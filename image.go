// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/glhal/glenum"
	"github.com/gogpu/glhal/internal/bindcache"
	"github.com/gogpu/glhal/internal/device"
	"github.com/gogpu/glhal/internal/shader"
)

// imageUnit is the texture level a storage texture binding reads.
type imageUnit struct {
	texture uint32
	level   int32
	layered bool
	layer   int32
	access  glenum.BufferAccess
	format  glenum.InternalFormat
}

func defaultImageUnit() imageUnit {
	return imageUnit{access: glenum.ReadOnly, format: glenum.R8}
}

// BindImageTexture binds a level of texture to an image unit. A layered
// binding covers every layer of an array, cube or 3D texture; otherwise
// only layer is bound.
func (c *Context) BindImageTexture(unit, texture uint32, level int32, layered bool, layer int32, access glenum.BufferAccess, format glenum.InternalFormat) {
	if !c.live() {
		return
	}
	switch {
	case unit >= MaxImageUnits:
		c.errorf(glenum.InvalidValue, "BindImageTexture: unit %d", unit)
		return
	case level < 0 || layer < 0:
		c.errorf(glenum.InvalidValue, "BindImageTexture: level %d, layer %d", level, layer)
		return
	case !access.Valid():
		c.errorf(glenum.InvalidEnum, "BindImageTexture: access %s", access)
		return
	}
	if !imageFormat(format) {
		c.errorf(glenum.InvalidValue, "BindImageTexture: format %s", format)
		return
	}
	if texture != 0 {
		if _, ok := c.textures.Get(texture); !ok {
			c.errorf(glenum.InvalidValue, "BindImageTexture: %d is not a texture", texture)
			return
		}
	}
	u := imageUnit{texture: texture, level: level, layered: layered, layer: layer, access: access, format: format}
	if c.images[unit] != u {
		c.images[unit] = u
		c.mark(dirtyImages)
	}
}

// BindImageTextures binds level 0 of each texture, layered and read-write
// in its own format, to consecutive image units from first. A zero name
// resets its unit.
func (c *Context) BindImageTextures(first uint32, textures []uint32) {
	if !c.live() {
		return
	}
	if uint64(first)+uint64(len(textures)) > MaxImageUnits {
		c.errorf(glenum.InvalidOperation, "BindImageTextures: units %d..%d", first, int(first)+len(textures)-1)
		return
	}
	for i, name := range textures {
		u := defaultImageUnit()
		if name != 0 {
			t, ok := c.textures.Get(name)
			if !ok || !imageFormat(t.internal) {
				c.errorf(glenum.InvalidOperation, "BindImageTextures: texture %d cannot be bound to an image unit", name)
				continue
			}
			u = imageUnit{texture: name, layered: true, access: glenum.ReadWrite, format: t.internal}
		}
		if c.images[first+uint32(i)] != u {
			c.images[first+uint32(i)] = u
			c.mark(dirtyImages)
		}
	}
}

// imageFormat reports whether format may be the format of an image unit.
func imageFormat(format glenum.InternalFormat) bool {
	if format.Sized() != format {
		return false
	}
	info, ok := lookupFormat(format)
	return ok && device.StorageCapable(info.backend)
}

// unbindImage detaches the texture name from every image unit.
func (c *Context) unbindImage(name uint32) {
	for i := range c.images {
		if c.images[i].texture == name {
			c.images[i].texture = 0
			c.mark(dirtyImages)
		}
	}
}

// imageValue returns the indexed IMAGE_BINDING_* state of unit.
func (c *Context) imageValue(op string, pname glenum.GetPName, unit uint32) (stateValue, bool) {
	if unit >= MaxImageUnits {
		c.errorf(glenum.InvalidValue, "%s: image unit %d", op, unit)
		return stateValue{}, false
	}
	u := &c.images[unit]
	switch pname {
	case glenum.ImageBindingLevel:
		return enumValue(u.level), true
	case glenum.ImageBindingLayered:
		return boolValue(u.layered), true
	case glenum.ImageBindingLayer:
		return enumValue(u.layer), true
	case glenum.ImageBindingAccess:
		return enumValue(u.access), true
	case glenum.ImageBindingFormat:
		return enumValue(u.format), true
	}
	return enumValue(u.texture), true
}

// imageView returns the view of tex that unit u presents to a storage
// texture binding of li.
func imageView(tex *Texture, u *imageUnit, li *linkImage) (viewKey, bool) {
	k := viewKey{dim: li.dim, aspect: gputypes.TextureAspectAll, baseLevel: uint32(u.level), levels: 1, layers: 1}
	dim := viewDimension(tex.target)
	_, _, _, layers := layout(tex.target, tex.width, tex.height, tex.depth)
	switch {
	case u.layered || layers == 1:
		if dim == gputypes.TextureViewDimensionCube || dim == gputypes.TextureViewDimensionCubeArray {
			dim = gputypes.TextureViewDimension2DArray
		}
		if dim != li.dim {
			return viewKey{}, false
		}
		if dim == gputypes.TextureViewDimension2DArray {
			k.layers = layers
		}
	case tex.target == glenum.Texture3D || li.dim != gputypes.TextureViewDimension2D:
		return viewKey{}, false
	default:
		if uint32(u.layer) >= layers {
			return viewKey{}, false
		}
		k.baseLayer = uint32(u.layer)
	}
	return k, true
}

// imageGroup builds group 3 from the image units the storage textures of
// l read. Every unit a shader reads must hold a texture level whose format
// matches the declaration.
func (c *Context) imageGroup(op string, l *link) (hal.BindGroup, bool) {
	key := bindcache.Key{Layout: l.groupSerials[shader.GroupImages]}
	entries := make([]gputypes.BindGroupEntry, 0, len(l.images))
	for i := range l.images {
		li := &l.images[i]
		u := &c.images[li.binding]
		tex, ok := c.textures.Get(u.texture)
		if u.texture == 0 || !ok || tex.hal == nil {
			c.errorf(glenum.InvalidOperation, "%s: image unit %d has no texture", op, li.binding)
			return nil, false
		}
		info, _ := lookupFormat(u.format)
		if info.backend != li.format || tex.info.backend != li.format {
			c.errorf(glenum.InvalidOperation, "%s: image unit %d holds %s, the shader declares %s", op, li.binding, u.format, li.format)
			return nil, false
		}
		if u.level >= tex.levels {
			c.errorf(glenum.InvalidOperation, "%s: image unit %d level %d is out of range", op, li.binding, u.level)
			return nil, false
		}
		k, ok := imageView(tex, u, li)
		if !ok {
			c.errorf(glenum.InvalidOperation, "%s: image unit %d does not match a %s storage texture", op, li.binding, li.dim)
			return nil, false
		}
		v, ok := c.view(tex, k)
		if !ok {
			return nil, false
		}
		if err := addEntry(op, &key, bindcache.Entry{Binding: li.binding, Kind: bindcache.KindTexture, Resource: v.serial}); err != nil {
			c.errorf(glenum.InvalidOperation, "%v", err)
			return nil, false
		}
		entries = append(entries, gputypes.BindGroupEntry{
			Binding: li.binding, Resource: gputypes.TextureViewBinding{TextureView: v.hal.NativeHandle()},
		})
		c.enc.use(tex.serial)
	}
	return c.bindGroup(op, l, shader.GroupImages, &key, entries)
}
