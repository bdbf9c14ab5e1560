// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"github.com/gogpu/glhal/glenum"
)

// Debug output limits.
const (
	MaxDebugMessageLength   = 1024
	MaxDebugGroupStackDepth = 64
	MaxLabelLength          = 256
)

// DebugCallback receives debug messages. It runs synchronously inside the
// call that produced the message and must not call back into the context.
type DebugCallback func(source glenum.DebugSource, typ glenum.DebugType, id uint32, severity glenum.DebugSeverity, message string)

// debugRule is one DebugMessageControl call. Later rules win.
type debugRule struct {
	source   glenum.DebugSource
	typ      glenum.DebugType
	severity glenum.DebugSeverity
	ids      map[uint32]struct{}
	enabled  bool
}

func (r *debugRule) matches(source glenum.DebugSource, typ glenum.DebugType, id uint32, severity glenum.DebugSeverity) bool {
	if r.source != glenum.DebugSourceDontCare && r.source != source {
		return false
	}
	if r.typ != glenum.DebugTypeDontCare && r.typ != typ {
		return false
	}
	if r.ids != nil {
		_, ok := r.ids[id]
		return ok
	}
	return r.severity == glenum.DebugSeverityDontCare || r.severity == severity
}

type debugGroup struct {
	source  glenum.DebugSource
	id      uint32
	message string
	rules   []debugRule
}

type labelKey struct {
	kind glenum.ObjectIdentifier
	name uint32
}

type debugState struct {
	callback DebugCallback
	groups   []debugGroup // groups[0] is the default group
	labels   map[labelKey]string
}

func newDebugState(cb DebugCallback) debugState {
	return debugState{
		callback: cb,
		groups:   []debugGroup{{}},
		labels:   make(map[labelKey]string),
	}
}

func (d *debugState) top() *debugGroup { return &d.groups[len(d.groups)-1] }

// enabled reports whether a message passes the active group's filters.
// Low severity messages are disabled until a rule enables them.
func (d *debugState) enabled(source glenum.DebugSource, typ glenum.DebugType, id uint32, severity glenum.DebugSeverity) bool {
	on := severity != glenum.DebugSeverityLow
	rules := d.top().rules
	for i := range rules {
		if rules[i].matches(source, typ, id, severity) {
			on = rules[i].enabled
		}
	}
	return on
}

// debugMessage delivers a message to the callback when DEBUG_OUTPUT is on.
func (c *Context) debugMessage(source glenum.DebugSource, typ glenum.DebugType, id uint32, severity glenum.DebugSeverity, msg string) {
	if c.debug.callback == nil || !c.state.caps[glenum.DebugOutput] {
		return
	}
	if !c.debug.enabled(source, typ, id, severity) {
		return
	}
	c.debug.callback(source, typ, id, severity, msg)
}

// DebugMessageCallback installs cb. A nil cb stops delivery.
func (c *Context) DebugMessageCallback(cb DebugCallback) {
	if !c.live() {
		return
	}
	c.debug.callback = cb
}

// DebugMessageInsert injects an application message into the debug stream.
func (c *Context) DebugMessageInsert(source glenum.DebugSource, typ glenum.DebugType, id uint32, severity glenum.DebugSeverity, msg string) {
	if !c.live() {
		return
	}
	if source != glenum.DebugSourceApplication && source != glenum.DebugSourceThirdParty {
		c.errorf(glenum.InvalidEnum, "DebugMessageInsert: source %s", source)
		return
	}
	if typ == glenum.DebugTypeDontCare || severity == glenum.DebugSeverityDontCare {
		c.errorf(glenum.InvalidEnum, "DebugMessageInsert: DONT_CARE type or severity")
		return
	}
	if len(msg) >= MaxDebugMessageLength {
		c.errorf(glenum.InvalidValue, "DebugMessageInsert: message length %d", len(msg))
		return
	}
	c.debugMessage(source, typ, id, severity, msg)
}

// DebugMessageControl enables or disables a class of messages in the
// current debug group. When ids is non-empty, source and type must be
// specific and severity must be DONT_CARE.
func (c *Context) DebugMessageControl(source glenum.DebugSource, typ glenum.DebugType, severity glenum.DebugSeverity, ids []uint32, enabled bool) {
	if !c.live() {
		return
	}
	if len(ids) > 0 && (source == glenum.DebugSourceDontCare || typ == glenum.DebugTypeDontCare || severity != glenum.DebugSeverityDontCare) {
		c.errorf(glenum.InvalidOperation, "DebugMessageControl: ids need a specific source and type")
		return
	}
	r := debugRule{source: source, typ: typ, severity: severity, enabled: enabled}
	if len(ids) > 0 {
		r.ids = make(map[uint32]struct{}, len(ids))
		for _, id := range ids {
			r.ids[id] = struct{}{}
		}
	}
	g := c.debug.top()
	g.rules = append(g.rules, r)
}

// PushDebugGroup opens a debug group. The group inherits the filters of its
// parent.
func (c *Context) PushDebugGroup(source glenum.DebugSource, id uint32, msg string) {
	if !c.live() {
		return
	}
	if source != glenum.DebugSourceApplication && source != glenum.DebugSourceThirdParty {
		c.errorf(glenum.InvalidEnum, "PushDebugGroup: source %s", source)
		return
	}
	if len(msg) >= MaxDebugMessageLength {
		c.errorf(glenum.InvalidValue, "PushDebugGroup: message length %d", len(msg))
		return
	}
	if len(c.debug.groups) > MaxDebugGroupStackDepth-1 {
		c.errorf(glenum.StackOverflow, "PushDebugGroup: depth %d", len(c.debug.groups))
		return
	}
	parent := c.debug.top().rules
	rules := make([]debugRule, len(parent))
	copy(rules, parent)
	c.debug.groups = append(c.debug.groups, debugGroup{source: source, id: id, message: msg, rules: rules})
	c.debugMessage(source, glenum.DebugTypePushGroup, id, glenum.DebugSeverityNotification, msg)
}

// PopDebugGroup closes the innermost debug group.
func (c *Context) PopDebugGroup() {
	if !c.live() {
		return
	}
	if len(c.debug.groups) == 1 {
		c.errorf(glenum.StackUnderflow, "PopDebugGroup: no group")
		return
	}
	g := *c.debug.top()
	c.debug.groups = c.debug.groups[:len(c.debug.groups)-1]
	c.debugMessage(g.source, glenum.DebugTypePopGroup, g.id, glenum.DebugSeverityNotification, g.message)
}

// objectExists reports whether name is an initialized object of kind.
func (c *Context) objectExists(kind glenum.ObjectIdentifier, name uint32) bool {
	switch kind {
	case glenum.ObjectBuffer:
		return c.buffers.Is(name)
	case glenum.ObjectTexture:
		return c.textures.Is(name)
	case glenum.ObjectSampler:
		return c.samplers.Is(name)
	case glenum.ObjectVertexArray:
		return c.vertexArrays.Is(name)
	case glenum.ObjectFramebuffer:
		return c.framebuffers.Is(name)
	case glenum.ObjectRenderbuffer:
		return c.renderbuffers.Is(name)
	case glenum.ObjectShader:
		_, ok := c.shader(name)
		return ok
	case glenum.ObjectProgram:
		_, ok := c.program(name)
		return ok
	case glenum.ObjectProgramPipeline:
		return c.programPipelines.Is(name)
	case glenum.ObjectQuery:
		return c.queries.Is(name)
	case glenum.ObjectTransformFeedback:
		return c.feedbacks.Is(name)
	}
	return false
}

// ObjectLabel attaches a label to an object. An empty label removes it.
func (c *Context) ObjectLabel(kind glenum.ObjectIdentifier, name uint32, label string) {
	if !c.live() {
		return
	}
	if !c.objectExists(kind, name) {
		c.errorf(glenum.InvalidValue, "ObjectLabel: %s %d does not exist", kind, name)
		return
	}
	if len(label) >= MaxLabelLength {
		c.errorf(glenum.InvalidValue, "ObjectLabel: label length %d", len(label))
		return
	}
	k := labelKey{kind, name}
	if label == "" {
		delete(c.debug.labels, k)
		return
	}
	c.debug.labels[k] = label
}

// GetObjectLabel returns the label of an object.
func (c *Context) GetObjectLabel(kind glenum.ObjectIdentifier, name uint32) string {
	if !c.live() {
		return ""
	}
	if !c.objectExists(kind, name) {
		c.errorf(glenum.InvalidValue, "GetObjectLabel: %s %d does not exist", kind, name)
		return ""
	}
	return c.debug.labels[labelKey{kind, name}]
}

// label returns the label used for backend objects created for an object.
func (c *Context) label(kind glenum.ObjectIdentifier, name uint32) string {
	if l, ok := c.debug.labels[labelKey{kind, name}]; ok {
		return l
	}
	return ""
}

func (c *Context) dropLabel(kind glenum.ObjectIdentifier, name uint32) {
	delete(c.debug.labels, labelKey{kind, name})
}
