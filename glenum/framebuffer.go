package glenum

// FramebufferTarget names a framebuffer binding point.
type FramebufferTarget uint32

const (
	ReadFramebuffer FramebufferTarget = 0x8CA8
	DrawFramebuffer FramebufferTarget = 0x8CA9
	Framebuffer     FramebufferTarget = 0x8D40
)

var framebufferTargets = newGroup("FramebufferTarget", map[FramebufferTarget]string{
	ReadFramebuffer: "READ_FRAMEBUFFER",
	DrawFramebuffer: "DRAW_FRAMEBUFFER",
	Framebuffer:     "FRAMEBUFFER",
})

// ParseFramebufferTarget converts a raw token into a FramebufferTarget.
func ParseFramebufferTarget(raw uint32) (FramebufferTarget, bool) {
	return framebufferTargets.parse(raw)
}

func (t FramebufferTarget) String() string { return framebufferTargets.str(t) }

// RenderbufferTarget names the renderbuffer binding point.
type RenderbufferTarget uint32

// Renderbuffer is the only renderbuffer target.
const Renderbuffer RenderbufferTarget = 0x8D41

var renderbufferTargets = newGroup("RenderbufferTarget", map[RenderbufferTarget]string{
	Renderbuffer: "RENDERBUFFER",
})

// ParseRenderbufferTarget converts a raw token into a RenderbufferTarget.
func ParseRenderbufferTarget(raw uint32) (RenderbufferTarget, bool) {
	return renderbufferTargets.parse(raw)
}

func (t RenderbufferTarget) String() string { return renderbufferTargets.str(t) }

// RenderbufferParameter names a property read by GetRenderbufferParameteriv.
type RenderbufferParameter uint32

const (
	RenderbufferSamples        RenderbufferParameter = 0x8CAB
	RenderbufferWidth          RenderbufferParameter = 0x8D42
	RenderbufferHeight         RenderbufferParameter = 0x8D43
	RenderbufferInternalFormat RenderbufferParameter = 0x8D44
)

var renderbufferParameters = newGroup("RenderbufferParameterName", map[RenderbufferParameter]string{
	RenderbufferSamples:        "RENDERBUFFER_SAMPLES",
	RenderbufferWidth:          "RENDERBUFFER_WIDTH",
	RenderbufferHeight:         "RENDERBUFFER_HEIGHT",
	RenderbufferInternalFormat: "RENDERBUFFER_INTERNAL_FORMAT",
})

// ParseRenderbufferParameter converts a raw token into a RenderbufferParameter.
func ParseRenderbufferParameter(raw uint32) (RenderbufferParameter, bool) {
	return renderbufferParameters.parse(raw)
}

func (p RenderbufferParameter) String() string { return renderbufferParameters.str(p) }

// MaxColorAttachments is the number of color attachment points per framebuffer.
const MaxColorAttachments = 8

// Attachment names a framebuffer attachment point.
type Attachment uint32

const (
	ColorAttachment0       Attachment = 0x8CE0
	ColorAttachment1       Attachment = 0x8CE1
	ColorAttachment2       Attachment = 0x8CE2
	ColorAttachment3       Attachment = 0x8CE3
	ColorAttachment4       Attachment = 0x8CE4
	ColorAttachment5       Attachment = 0x8CE5
	ColorAttachment6       Attachment = 0x8CE6
	ColorAttachment7       Attachment = 0x8CE7
	DepthAttachment        Attachment = 0x8D00
	StencilAttachment      Attachment = 0x8D20
	DepthStencilAttachment Attachment = 0x821A
)

var attachments = newGroup("FramebufferAttachment", map[Attachment]string{
	ColorAttachment0:       "COLOR_ATTACHMENT0",
	ColorAttachment1:       "COLOR_ATTACHMENT1",
	ColorAttachment2:       "COLOR_ATTACHMENT2",
	ColorAttachment3:       "COLOR_ATTACHMENT3",
	ColorAttachment4:       "COLOR_ATTACHMENT4",
	ColorAttachment5:       "COLOR_ATTACHMENT5",
	ColorAttachment6:       "COLOR_ATTACHMENT6",
	ColorAttachment7:       "COLOR_ATTACHMENT7",
	DepthAttachment:        "DEPTH_ATTACHMENT",
	StencilAttachment:      "STENCIL_ATTACHMENT",
	DepthStencilAttachment: "DEPTH_STENCIL_ATTACHMENT",
})

// ParseAttachment converts a raw token into an Attachment.
func ParseAttachment(raw uint32) (Attachment, bool) { return attachments.parse(raw) }

func (a Attachment) String() string { return attachments.str(a) }

// ColorIndex returns the color slot index of a color attachment.
func (a Attachment) ColorIndex() (int, bool) {
	if a >= ColorAttachment0 && a <= ColorAttachment7 {
		return int(a - ColorAttachment0), true
	}
	return 0, false
}

// FramebufferStatus is the completeness status of a framebuffer.
type FramebufferStatus uint32

const (
	FramebufferUndefined                   FramebufferStatus = 0x8219
	FramebufferComplete                    FramebufferStatus = 0x8CD5
	FramebufferIncompleteAttachment        FramebufferStatus = 0x8CD6
	FramebufferIncompleteMissingAttachment FramebufferStatus = 0x8CD7
	FramebufferIncompleteDrawBuffer        FramebufferStatus = 0x8CDB
	FramebufferIncompleteReadBuffer        FramebufferStatus = 0x8CDC
	FramebufferUnsupported                 FramebufferStatus = 0x8CDD
	FramebufferIncompleteMultisample       FramebufferStatus = 0x8D56
	FramebufferIncompleteLayerTargets      FramebufferStatus = 0x8DA8
)

var framebufferStatuses = newGroup("FramebufferStatus", map[FramebufferStatus]string{
	FramebufferUndefined:                   "FRAMEBUFFER_UNDEFINED",
	FramebufferComplete:                    "FRAMEBUFFER_COMPLETE",
	FramebufferIncompleteAttachment:        "FRAMEBUFFER_INCOMPLETE_ATTACHMENT",
	FramebufferIncompleteMissingAttachment: "FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT",
	FramebufferIncompleteDrawBuffer:        "FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER",
	FramebufferIncompleteReadBuffer:        "FRAMEBUFFER_INCOMPLETE_READ_BUFFER",
	FramebufferUnsupported:                 "FRAMEBUFFER_UNSUPPORTED",
	FramebufferIncompleteMultisample:       "FRAMEBUFFER_INCOMPLETE_MULTISAMPLE",
	FramebufferIncompleteLayerTargets:      "FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS",
})

// ParseFramebufferStatus converts a raw token into a FramebufferStatus.
func ParseFramebufferStatus(raw uint32) (FramebufferStatus, bool) {
	return framebufferStatuses.parse(raw)
}

func (s FramebufferStatus) String() string { return framebufferStatuses.str(s) }

// ColorBuffer selects a draw or read color buffer.
type ColorBuffer uint32

const (
	ColorBufferNone         ColorBuffer = 0
	ColorBufferFrontLeft    ColorBuffer = 0x0400
	ColorBufferFrontRight   ColorBuffer = 0x0401
	ColorBufferBackLeft     ColorBuffer = 0x0402
	ColorBufferBackRight    ColorBuffer = 0x0403
	ColorBufferFront        ColorBuffer = 0x0404
	ColorBufferBack         ColorBuffer = 0x0405
	ColorBufferLeft         ColorBuffer = 0x0406
	ColorBufferRight        ColorBuffer = 0x0407
	ColorBufferFrontAndBack ColorBuffer = 0x0408
)

var colorBuffers = newGroup("ColorBuffer", map[ColorBuffer]string{
	ColorBufferNone:         "NONE",
	ColorBufferFrontLeft:    "FRONT_LEFT",
	ColorBufferFrontRight:   "FRONT_RIGHT",
	ColorBufferBackLeft:     "BACK_LEFT",
	ColorBufferBackRight:    "BACK_RIGHT",
	ColorBufferFront:        "FRONT",
	ColorBufferBack:         "BACK",
	ColorBufferLeft:         "LEFT",
	ColorBufferRight:        "RIGHT",
	ColorBufferFrontAndBack: "FRONT_AND_BACK",
})

func init() {
	for a := ColorAttachment0; a <= ColorAttachment7; a++ {
		colorBuffers.members[ColorBuffer(a)] = attachments.members[a]
	}
}

// ParseColorBuffer converts a raw token into a ColorBuffer.
func ParseColorBuffer(raw uint32) (ColorBuffer, bool) { return colorBuffers.parse(raw) }

func (b ColorBuffer) String() string { return colorBuffers.str(b) }

// ColorIndex returns the attachment index named by b.
func (b ColorBuffer) ColorIndex() (int, bool) { return Attachment(b).ColorIndex() }

// Default reports whether b names a buffer of the default framebuffer.
func (b ColorBuffer) Default() bool {
	return b >= ColorBufferFrontLeft && b <= ColorBufferFrontAndBack
}
