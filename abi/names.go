package abi

import (
	"unsafe"

	"github.com/gogpu/glhal"
	"github.com/gogpu/glhal/glenum"
)

// gen writes n names produced by fn to out.
func gen(n int32, out unsafe.Pointer, fn func(int32) []uint32) {
	copy(uint32s(out, n), fn(n))
}

// del passes the n names at in to fn. A negative n is INVALID_VALUE.
func del(c *glhal.Context, n int32, in unsafe.Pointer, fn func([]uint32)) {
	if n < 0 {
		c.RecordError(glenum.InvalidValue)
		return
	}
	fn(uint32s(in, n))
}

// GenBuffers reserves n buffer names.
func GenBuffers(n int32, buffers unsafe.Pointer) { gen(n, buffers, ctx().GenBuffers) }

// CreateBuffers creates n buffer objects with default state.
func CreateBuffers(n int32, buffers unsafe.Pointer) { gen(n, buffers, ctx().CreateBuffers) }

// DeleteBuffers deletes buffer objects.
func DeleteBuffers(n int32, buffers unsafe.Pointer) {
	c := ctx()
	del(c, n, buffers, c.DeleteBuffers)
}

// IsBuffer reports whether name is a buffer object.
func IsBuffer(buffer uint32) uint8 { return fromBool(ctx().IsBuffer(buffer)) }

// GenVertexArrays reserves n vertex array names.
func GenVertexArrays(n int32, arrays unsafe.Pointer) { gen(n, arrays, ctx().GenVertexArrays) }

// CreateVertexArrays creates n vertex array objects.
func CreateVertexArrays(n int32, arrays unsafe.Pointer) { gen(n, arrays, ctx().CreateVertexArrays) }

// DeleteVertexArrays deletes vertex arrays.
func DeleteVertexArrays(n int32, arrays unsafe.Pointer) {
	c := ctx()
	del(c, n, arrays, c.DeleteVertexArrays)
}

// IsVertexArray reports whether name is a vertex array object.
func IsVertexArray(array uint32) uint8 { return fromBool(ctx().IsVertexArray(array)) }

// GenTextures reserves n texture names.
func GenTextures(n int32, textures unsafe.Pointer) { gen(n, textures, ctx().GenTextures) }

// CreateTextures creates n texture objects for target.
func CreateTextures(target uint32, n int32, textures unsafe.Pointer) {
	c := ctx()
	t, ok := parse(c, target, glenum.ParseTextureTarget)
	if !ok {
		return
	}
	copy(uint32s(textures, n), c.CreateTextures(t, n))
}

// DeleteTextures deletes texture objects.
func DeleteTextures(n int32, textures unsafe.Pointer) {
	c := ctx()
	del(c, n, textures, c.DeleteTextures)
}

// IsTexture reports whether name is a texture object.
func IsTexture(texture uint32) uint8 { return fromBool(ctx().IsTexture(texture)) }

// GenSamplers reserves n sampler names.
func GenSamplers(n int32, samplers unsafe.Pointer) { gen(n, samplers, ctx().GenSamplers) }

// CreateSamplers creates n sampler objects.
func CreateSamplers(n int32, samplers unsafe.Pointer) { gen(n, samplers, ctx().CreateSamplers) }

// DeleteSamplers deletes sampler objects and unbinds them from every unit.
func DeleteSamplers(n int32, samplers unsafe.Pointer) {
	c := ctx()
	del(c, n, samplers, c.DeleteSamplers)
}

// IsSampler reports whether name is a sampler object.
func IsSampler(sampler uint32) uint8 { return fromBool(ctx().IsSampler(sampler)) }

// GenFramebuffers reserves n framebuffer names.
func GenFramebuffers(n int32, framebuffers unsafe.Pointer) {
	gen(n, framebuffers, ctx().GenFramebuffers)
}

// CreateFramebuffers creates n framebuffer objects.
func CreateFramebuffers(n int32, framebuffers unsafe.Pointer) {
	gen(n, framebuffers, ctx().CreateFramebuffers)
}

// DeleteFramebuffers deletes framebuffers.
func DeleteFramebuffers(n int32, framebuffers unsafe.Pointer) {
	c := ctx()
	del(c, n, framebuffers, c.DeleteFramebuffers)
}

// IsFramebuffer reports whether name is a framebuffer object.
func IsFramebuffer(framebuffer uint32) uint8 { return fromBool(ctx().IsFramebuffer(framebuffer)) }

// GenRenderbuffers reserves n renderbuffer names.
func GenRenderbuffers(n int32, renderbuffers unsafe.Pointer) {
	gen(n, renderbuffers, ctx().GenRenderbuffers)
}

// CreateRenderbuffers creates n renderbuffer objects.
func CreateRenderbuffers(n int32, renderbuffers unsafe.Pointer) {
	gen(n, renderbuffers, ctx().CreateRenderbuffers)
}

// DeleteRenderbuffers deletes renderbuffers, detaching them from every
// framebuffer.
func DeleteRenderbuffers(n int32, renderbuffers unsafe.Pointer) {
	c := ctx()
	del(c, n, renderbuffers, c.DeleteRenderbuffers)
}

// IsRenderbuffer reports whether name is a renderbuffer object.
func IsRenderbuffer(renderbuffer uint32) uint8 { return fromBool(ctx().IsRenderbuffer(renderbuffer)) }

// GenQueries reserves n query names.
func GenQueries(n int32, ids unsafe.Pointer) { gen(n, ids, ctx().GenQueries) }

// CreateQueries creates n queries of target.
func CreateQueries(target uint32, n int32, ids unsafe.Pointer) {
	c := ctx()
	t, ok := parse(c, target, glenum.ParseQueryTarget)
	if !ok {
		return
	}
	copy(uint32s(ids, n), c.CreateQueries(t, n))
}

// DeleteQueries deletes queries.
func DeleteQueries(n int32, ids unsafe.Pointer) {
	c := ctx()
	del(c, n, ids, c.DeleteQueries)
}

// IsQuery reports whether name is a query object.
func IsQuery(id uint32) uint8 { return fromBool(ctx().IsQuery(id)) }

// GenTransformFeedbacks reserves n transform feedback names.
func GenTransformFeedbacks(n int32, ids unsafe.Pointer) { gen(n, ids, ctx().GenTransformFeedbacks) }

// CreateTransformFeedbacks creates n transform feedback objects.
func CreateTransformFeedbacks(n int32, ids unsafe.Pointer) {
	gen(n, ids, ctx().CreateTransformFeedbacks)
}

// DeleteTransformFeedbacks deletes transform feedback objects.
func DeleteTransformFeedbacks(n int32, ids unsafe.Pointer) {
	c := ctx()
	del(c, n, ids, c.DeleteTransformFeedbacks)
}

// IsTransformFeedback reports whether name is a transform feedback object.
func IsTransformFeedback(id uint32) uint8 { return fromBool(ctx().IsTransformFeedback(id)) }

// GenProgramPipelines reserves n program pipeline names.
func GenProgramPipelines(n int32, pipelines unsafe.Pointer) {
	gen(n, pipelines, ctx().GenProgramPipelines)
}

// CreateProgramPipelines creates n program pipelines.
func CreateProgramPipelines(n int32, pipelines unsafe.Pointer) {
	gen(n, pipelines, ctx().CreateProgramPipelines)
}

// DeleteProgramPipelines deletes program pipelines.
func DeleteProgramPipelines(n int32, pipelines unsafe.Pointer) {
	c := ctx()
	del(c, n, pipelines, c.DeleteProgramPipelines)
}

// IsProgramPipeline reports whether name is a program pipeline.
func IsProgramPipeline(pipeline uint32) uint8 { return fromBool(ctx().IsProgramPipeline(pipeline)) }
