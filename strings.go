// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"fmt"

	"github.com/gogpu/glhal/glenum"
)

// extensions lists the extensions GetStringi reports, in index order.
var extensions = []string{
	"GL_KHR_debug",
	"GL_ARB_direct_state_access",
	"GL_ARB_buffer_storage",
	"GL_ARB_separate_shader_objects",
	"GL_ARB_base_instance",
	"GL_ARB_draw_indirect",
	"GL_ARB_compute_shader",
	"GL_ARB_shader_storage_buffer_object",
	"GL_ARB_vertex_attrib_binding",
	"GL_ARB_sync",
	"GL_ARB_timer_query",
	"GL_ARB_ES3_compatibility",
}

// GetString returns an implementation string. Extensions is not valid
// here; use GetStringi.
func (c *Context) GetString(name glenum.StringName) string {
	if !c.live() {
		return ""
	}
	switch name {
	case glenum.Vendor:
		return "gogpu"
	case glenum.Renderer:
		adapter := c.dev.Info.Name
		if adapter == "" {
			adapter = c.dev.Info.Backend.String()
		}
		return "glhal on " + adapter
	case glenum.Version:
		return fmt.Sprintf("%d.%d core glhal", versionMajor, versionMinor)
	case glenum.ShadingLanguageVersion:
		return fmt.Sprintf("%d.%d0", versionMajor, versionMinor)
	}
	c.errorf(glenum.InvalidEnum, "GetString: name %s", name)
	return ""
}

// GetStringi returns the extension string at index.
func (c *Context) GetStringi(name glenum.StringName, index uint32) string {
	if !c.live() {
		return ""
	}
	if name != glenum.Extensions {
		c.errorf(glenum.InvalidEnum, "GetStringi: name %s", name)
		return ""
	}
	if index >= uint32(len(extensions)) {
		c.errorf(glenum.InvalidValue, "GetStringi: index %d out of range", index)
		return ""
	}
	return extensions[index]
}
