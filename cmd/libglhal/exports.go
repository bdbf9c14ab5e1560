package main

/*
#include "gltypes.h"
*/
import "C"

import (
	"unsafe"

	"github.com/gogpu/glhal/abi"
)

//export glBindBuffer
func glBindBuffer(target, buffer C.GLuint) {
	abi.BindBuffer(uint32(target), uint32(buffer))
}

//export glBindBufferBase
func glBindBufferBase(target, index, buffer C.GLuint) {
	abi.BindBufferBase(uint32(target), uint32(index), uint32(buffer))
}

//export glBindBufferRange
func glBindBufferRange(target, index, buffer C.GLuint, offset, size C.GLsizeiptr) {
	abi.BindBufferRange(uint32(target), uint32(index), uint32(buffer), int(offset), int(size))
}

//export glBufferData
func glBufferData(target C.GLuint, size C.GLsizeiptr, data unsafe.Pointer, usage C.GLuint) {
	abi.BufferData(uint32(target), int(size), data, uint32(usage))
}

//export glNamedBufferData
func glNamedBufferData(buffer C.GLuint, size C.GLsizeiptr, data unsafe.Pointer, usage C.GLuint) {
	abi.NamedBufferData(uint32(buffer), int(size), data, uint32(usage))
}

//export glBufferStorage
func glBufferStorage(target C.GLuint, size C.GLsizeiptr, data unsafe.Pointer, flags C.GLuint) {
	abi.BufferStorage(uint32(target), int(size), data, uint32(flags))
}

//export glNamedBufferStorage
func glNamedBufferStorage(buffer C.GLuint, size C.GLsizeiptr, data unsafe.Pointer, flags C.GLuint) {
	abi.NamedBufferStorage(uint32(buffer), int(size), data, uint32(flags))
}

//export glBufferSubData
func glBufferSubData(target C.GLuint, offset, size C.GLsizeiptr, data unsafe.Pointer) {
	abi.BufferSubData(uint32(target), int(offset), int(size), data)
}

//export glNamedBufferSubData
func glNamedBufferSubData(buffer C.GLuint, offset, size C.GLsizeiptr, data unsafe.Pointer) {
	abi.NamedBufferSubData(uint32(buffer), int(offset), int(size), data)
}

//export glGetBufferSubData
func glGetBufferSubData(target C.GLuint, offset, size C.GLsizeiptr, data unsafe.Pointer) {
	abi.GetBufferSubData(uint32(target), int(offset), int(size), data)
}

//export glGetNamedBufferSubData
func glGetNamedBufferSubData(buffer C.GLuint, offset, size C.GLsizeiptr, data unsafe.Pointer) {
	abi.GetNamedBufferSubData(uint32(buffer), int(offset), int(size), data)
}

//export glCopyBufferSubData
func glCopyBufferSubData(readTarget, writeTarget C.GLuint, readOffset, writeOffset, size C.GLsizeiptr) {
	abi.CopyBufferSubData(uint32(readTarget), uint32(writeTarget), int(readOffset), int(writeOffset), int(size))
}

//export glCopyNamedBufferSubData
func glCopyNamedBufferSubData(read, write C.GLuint, readOffset, writeOffset, size C.GLsizeiptr) {
	abi.CopyNamedBufferSubData(uint32(read), uint32(write), int(readOffset), int(writeOffset), int(size))
}

//export glClearBufferSubData
func glClearBufferSubData(target, internalformat C.GLuint, offset, size C.GLsizeiptr, format, typ C.GLuint, data unsafe.Pointer) {
	abi.ClearBufferSubData(uint32(target), uint32(internalformat), int(offset), int(size), uint32(format), uint32(typ), data)
}

//export glGetBufferParameteriv
func glGetBufferParameteriv(target, pname C.GLuint, params unsafe.Pointer) {
	abi.GetBufferParameteriv(uint32(target), uint32(pname), params)
}

//export glGetBufferParameteri64v
func glGetBufferParameteri64v(target, pname C.GLuint, params unsafe.Pointer) {
	abi.GetBufferParameteri64v(uint32(target), uint32(pname), params)
}

//export glDebugMessageControl
func glDebugMessageControl(source, typ, severity C.GLuint, count C.GLint, ids unsafe.Pointer, enabled C.GLboolean) {
	abi.DebugMessageControl(uint32(source), uint32(typ), uint32(severity), int32(count), ids, uint8(enabled))
}

//export glDebugMessageInsert
func glDebugMessageInsert(source, typ, id, severity C.GLuint, length C.GLint, buf unsafe.Pointer) {
	abi.DebugMessageInsert(uint32(source), uint32(typ), uint32(id), uint32(severity), int32(length), buf)
}

//export glPushDebugGroup
func glPushDebugGroup(source, id C.GLuint, length C.GLint, message unsafe.Pointer) {
	abi.PushDebugGroup(uint32(source), uint32(id), int32(length), message)
}

//export glPopDebugGroup
func glPopDebugGroup() {
	abi.PopDebugGroup()
}

//export glObjectLabel
func glObjectLabel(identifier, name C.GLuint, length C.GLint, label unsafe.Pointer) {
	abi.ObjectLabel(uint32(identifier), uint32(name), int32(length), label)
}

//export glGetObjectLabel
func glGetObjectLabel(identifier, name C.GLuint, bufSize C.GLint, length, label unsafe.Pointer) {
	abi.GetObjectLabel(uint32(identifier), uint32(name), int32(bufSize), length, label)
}

//export glDrawArrays
func glDrawArrays(mode C.GLuint, first, count C.GLint) {
	abi.DrawArrays(uint32(mode), int32(first), int32(count))
}

//export glDrawArraysInstanced
func glDrawArraysInstanced(mode C.GLuint, first, count, instances C.GLint) {
	abi.DrawArraysInstanced(uint32(mode), int32(first), int32(count), int32(instances))
}

//export glDrawArraysInstancedBaseInstance
func glDrawArraysInstancedBaseInstance(mode C.GLuint, first, count, instances C.GLint, baseInstance C.GLuint) {
	abi.DrawArraysInstancedBaseInstance(uint32(mode), int32(first), int32(count), int32(instances), uint32(baseInstance))
}

//export glDrawArraysIndirect
func glDrawArraysIndirect(mode C.GLuint, indirect unsafe.Pointer) {
	abi.DrawArraysIndirect(uint32(mode), indirect)
}

//export glDrawElements
func glDrawElements(mode C.GLuint, count C.GLint, typ C.GLuint, indices unsafe.Pointer) {
	abi.DrawElements(uint32(mode), int32(count), uint32(typ), indices)
}

//export glDrawElementsBaseVertex
func glDrawElementsBaseVertex(mode C.GLuint, count C.GLint, typ C.GLuint, indices unsafe.Pointer, baseVertex C.GLint) {
	abi.DrawElementsBaseVertex(uint32(mode), int32(count), uint32(typ), indices, int32(baseVertex))
}

//export glDrawElementsInstanced
func glDrawElementsInstanced(mode C.GLuint, count C.GLint, typ C.GLuint, indices unsafe.Pointer, instances C.GLint) {
	abi.DrawElementsInstanced(uint32(mode), int32(count), uint32(typ), indices, int32(instances))
}

//export glDrawElementsInstancedBaseVertexBaseInstance
func glDrawElementsInstancedBaseVertexBaseInstance(mode C.GLuint, count C.GLint, typ C.GLuint, indices unsafe.Pointer, instances, baseVertex C.GLint, baseInstance C.GLuint) {
	abi.DrawElementsInstancedBaseVertexBaseInstance(uint32(mode), int32(count), uint32(typ), indices, int32(instances), int32(baseVertex), uint32(baseInstance))
}

//export glDrawRangeElements
func glDrawRangeElements(mode, start, end C.GLuint, count C.GLint, typ C.GLuint, indices unsafe.Pointer) {
	abi.DrawRangeElements(uint32(mode), uint32(start), uint32(end), int32(count), uint32(typ), indices)
}

//export glDrawElementsIndirect
func glDrawElementsIndirect(mode, typ C.GLuint, indirect unsafe.Pointer) {
	abi.DrawElementsIndirect(uint32(mode), uint32(typ), indirect)
}

//export glMultiDrawArrays
func glMultiDrawArrays(mode C.GLuint, first, count unsafe.Pointer, drawcount C.GLint) {
	abi.MultiDrawArrays(uint32(mode), first, count, int32(drawcount))
}

//export glMultiDrawElements
func glMultiDrawElements(mode C.GLuint, count unsafe.Pointer, typ C.GLuint, indices unsafe.Pointer, drawcount C.GLint) {
	abi.MultiDrawElements(uint32(mode), count, uint32(typ), indices, int32(drawcount))
}

//export glDispatchCompute
func glDispatchCompute(x, y, z C.GLuint) {
	abi.DispatchCompute(uint32(x), uint32(y), uint32(z))
}

//export glDispatchComputeIndirect
func glDispatchComputeIndirect(indirect C.GLsizeiptr) {
	abi.DispatchComputeIndirect(int(indirect))
}

//export glBindFramebuffer
func glBindFramebuffer(target, framebuffer C.GLuint) {
	abi.BindFramebuffer(uint32(target), uint32(framebuffer))
}

//export glFramebufferTexture
func glFramebufferTexture(target, attachment, texture C.GLuint, level C.GLint) {
	abi.FramebufferTexture(uint32(target), uint32(attachment), uint32(texture), int32(level))
}

//export glFramebufferTexture2D
func glFramebufferTexture2D(target, attachment, textarget, texture C.GLuint, level C.GLint) {
	abi.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(textarget), uint32(texture), int32(level))
}

//export glFramebufferTextureLayer
func glFramebufferTextureLayer(target, attachment, texture C.GLuint, level, layer C.GLint) {
	abi.FramebufferTextureLayer(uint32(target), uint32(attachment), uint32(texture), int32(level), int32(layer))
}

//export glFramebufferRenderbuffer
func glFramebufferRenderbuffer(target, attachment, renderbuffertarget, renderbuffer C.GLuint) {
	abi.FramebufferRenderbuffer(uint32(target), uint32(attachment), uint32(renderbuffertarget), uint32(renderbuffer))
}

//export glCheckFramebufferStatus
func glCheckFramebufferStatus(target C.GLuint) C.GLuint {
	return C.GLuint(abi.CheckFramebufferStatus(uint32(target)))
}

//export glDrawBuffer
func glDrawBuffer(buf C.GLuint) {
	abi.DrawBuffer(uint32(buf))
}

//export glDrawBuffers
func glDrawBuffers(n C.GLint, bufs unsafe.Pointer) {
	abi.DrawBuffers(int32(n), bufs)
}

//export glReadBuffer
func glReadBuffer(src C.GLuint) {
	abi.ReadBuffer(uint32(src))
}

//export glBlitFramebuffer
func glBlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 C.GLint, mask, filter C.GLuint) {
	abi.BlitFramebuffer(int32(srcX0), int32(srcY0), int32(srcX1), int32(srcY1), int32(dstX0), int32(dstY0), int32(dstX1), int32(dstY1), uint32(mask), uint32(filter))
}

//export glBindRenderbuffer
func glBindRenderbuffer(target, renderbuffer C.GLuint) {
	abi.BindRenderbuffer(uint32(target), uint32(renderbuffer))
}

//export glRenderbufferStorage
func glRenderbufferStorage(target, internalformat C.GLuint, width, height C.GLint) {
	abi.RenderbufferStorage(uint32(target), uint32(internalformat), int32(width), int32(height))
}

//export glRenderbufferStorageMultisample
func glRenderbufferStorageMultisample(target C.GLuint, samples C.GLint, internalformat C.GLuint, width, height C.GLint) {
	abi.RenderbufferStorageMultisample(uint32(target), int32(samples), uint32(internalformat), int32(width), int32(height))
}

//export glGetRenderbufferParameteriv
func glGetRenderbufferParameteriv(target, pname C.GLuint, params unsafe.Pointer) {
	abi.GetRenderbufferParameteriv(uint32(target), uint32(pname), params)
}

//export glGenBuffers
func glGenBuffers(n C.GLint, buffers unsafe.Pointer) {
	abi.GenBuffers(int32(n), buffers)
}

//export glCreateBuffers
func glCreateBuffers(n C.GLint, buffers unsafe.Pointer) {
	abi.CreateBuffers(int32(n), buffers)
}

//export glDeleteBuffers
func glDeleteBuffers(n C.GLint, buffers unsafe.Pointer) {
	abi.DeleteBuffers(int32(n), buffers)
}

//export glIsBuffer
func glIsBuffer(buffer C.GLuint) C.GLboolean {
	return C.GLboolean(abi.IsBuffer(uint32(buffer)))
}

//export glGenVertexArrays
func glGenVertexArrays(n C.GLint, arrays unsafe.Pointer) {
	abi.GenVertexArrays(int32(n), arrays)
}

//export glCreateVertexArrays
func glCreateVertexArrays(n C.GLint, arrays unsafe.Pointer) {
	abi.CreateVertexArrays(int32(n), arrays)
}

//export glDeleteVertexArrays
func glDeleteVertexArrays(n C.GLint, arrays unsafe.Pointer) {
	abi.DeleteVertexArrays(int32(n), arrays)
}

//export glIsVertexArray
func glIsVertexArray(array C.GLuint) C.GLboolean {
	return C.GLboolean(abi.IsVertexArray(uint32(array)))
}

//export glGenTextures
func glGenTextures(n C.GLint, textures unsafe.Pointer) {
	abi.GenTextures(int32(n), textures)
}

//export glCreateTextures
func glCreateTextures(target C.GLuint, n C.GLint, textures unsafe.Pointer) {
	abi.CreateTextures(uint32(target), int32(n), textures)
}

//export glDeleteTextures
func glDeleteTextures(n C.GLint, textures unsafe.Pointer) {
	abi.DeleteTextures(int32(n), textures)
}

//export glIsTexture
func glIsTexture(texture C.GLuint) C.GLboolean {
	return C.GLboolean(abi.IsTexture(uint32(texture)))
}

//export glGenSamplers
func glGenSamplers(n C.GLint, samplers unsafe.Pointer) {
	abi.GenSamplers(int32(n), samplers)
}

//export glCreateSamplers
func glCreateSamplers(n C.GLint, samplers unsafe.Pointer) {
	abi.CreateSamplers(int32(n), samplers)
}

//export glDeleteSamplers
func glDeleteSamplers(n C.GLint, samplers unsafe.Pointer) {
	abi.DeleteSamplers(int32(n), samplers)
}

//export glIsSampler
func glIsSampler(sampler C.GLuint) C.GLboolean {
	return C.GLboolean(abi.IsSampler(uint32(sampler)))
}

//export glGenFramebuffers
func glGenFramebuffers(n C.GLint, framebuffers unsafe.Pointer) {
	abi.GenFramebuffers(int32(n), framebuffers)
}

//export glCreateFramebuffers
func glCreateFramebuffers(n C.GLint, framebuffers unsafe.Pointer) {
	abi.CreateFramebuffers(int32(n), framebuffers)
}

//export glDeleteFramebuffers
func glDeleteFramebuffers(n C.GLint, framebuffers unsafe.Pointer) {
	abi.DeleteFramebuffers(int32(n), framebuffers)
}

//export glIsFramebuffer
func glIsFramebuffer(framebuffer C.GLuint) C.GLboolean {
	return C.GLboolean(abi.IsFramebuffer(uint32(framebuffer)))
}

//export glGenRenderbuffers
func glGenRenderbuffers(n C.GLint, renderbuffers unsafe.Pointer) {
	abi.GenRenderbuffers(int32(n), renderbuffers)
}

//export glCreateRenderbuffers
func glCreateRenderbuffers(n C.GLint, renderbuffers unsafe.Pointer) {
	abi.CreateRenderbuffers(int32(n), renderbuffers)
}

//export glDeleteRenderbuffers
func glDeleteRenderbuffers(n C.GLint, renderbuffers unsafe.Pointer) {
	abi.DeleteRenderbuffers(int32(n), renderbuffers)
}

//export glIsRenderbuffer
func glIsRenderbuffer(renderbuffer C.GLuint) C.GLboolean {
	return C.GLboolean(abi.IsRenderbuffer(uint32(renderbuffer)))
}

//export glGenQueries
func glGenQueries(n C.GLint, ids unsafe.Pointer) {
	abi.GenQueries(int32(n), ids)
}

//export glCreateQueries
func glCreateQueries(target C.GLuint, n C.GLint, ids unsafe.Pointer) {
	abi.CreateQueries(uint32(target), int32(n), ids)
}

//export glDeleteQueries
func glDeleteQueries(n C.GLint, ids unsafe.Pointer) {
	abi.DeleteQueries(int32(n), ids)
}

//export glIsQuery
func glIsQuery(id C.GLuint) C.GLboolean {
	return C.GLboolean(abi.IsQuery(uint32(id)))
}

//export glGenTransformFeedbacks
func glGenTransformFeedbacks(n C.GLint, ids unsafe.Pointer) {
	abi.GenTransformFeedbacks(int32(n), ids)
}

//export glCreateTransformFeedbacks
func glCreateTransformFeedbacks(n C.GLint, ids unsafe.Pointer) {
	abi.CreateTransformFeedbacks(int32(n), ids)
}

//export glDeleteTransformFeedbacks
func glDeleteTransformFeedbacks(n C.GLint, ids unsafe.Pointer) {
	abi.DeleteTransformFeedbacks(int32(n), ids)
}

//export glIsTransformFeedback
func glIsTransformFeedback(id C.GLuint) C.GLboolean {
	return C.GLboolean(abi.IsTransformFeedback(uint32(id)))
}

//export glGenProgramPipelines
func glGenProgramPipelines(n C.GLint, pipelines unsafe.Pointer) {
	abi.GenProgramPipelines(int32(n), pipelines)
}

//export glCreateProgramPipelines
func glCreateProgramPipelines(n C.GLint, pipelines unsafe.Pointer) {
	abi.CreateProgramPipelines(int32(n), pipelines)
}

//export glDeleteProgramPipelines
func glDeleteProgramPipelines(n C.GLint, pipelines unsafe.Pointer) {
	abi.DeleteProgramPipelines(int32(n), pipelines)
}

//export glIsProgramPipeline
func glIsProgramPipeline(pipeline C.GLuint) C.GLboolean {
	return C.GLboolean(abi.IsProgramPipeline(uint32(pipeline)))
}

//export glCreateShader
func glCreateShader(typ C.GLuint) C.GLuint {
	return C.GLuint(abi.CreateShader(uint32(typ)))
}

//export glShaderSource
func glShaderSource(shader C.GLuint, count C.GLint, strs, length unsafe.Pointer) {
	abi.ShaderSource(uint32(shader), int32(count), strs, length)
}

//export glCompileShader
func glCompileShader(shader C.GLuint) {
	abi.CompileShader(uint32(shader))
}

//export glDeleteShader
func glDeleteShader(shader C.GLuint) {
	abi.DeleteShader(uint32(shader))
}

//export glIsShader
func glIsShader(shader C.GLuint) C.GLboolean {
	return C.GLboolean(abi.IsShader(uint32(shader)))
}

//export glGetShaderiv
func glGetShaderiv(shader, pname C.GLuint, params unsafe.Pointer) {
	abi.GetShaderiv(uint32(shader), uint32(pname), params)
}

//export glGetShaderInfoLog
func glGetShaderInfoLog(shader C.GLuint, bufSize C.GLint, length, infoLog unsafe.Pointer) {
	abi.GetShaderInfoLog(uint32(shader), int32(bufSize), length, infoLog)
}

//export glGetShaderSource
func glGetShaderSource(shader C.GLuint, bufSize C.GLint, length, source unsafe.Pointer) {
	abi.GetShaderSource(uint32(shader), int32(bufSize), length, source)
}

//export glCreateProgram
func glCreateProgram() C.GLuint {
	return C.GLuint(abi.CreateProgram())
}

//export glAttachShader
func glAttachShader(program, shader C.GLuint) {
	abi.AttachShader(uint32(program), uint32(shader))
}

//export glDetachShader
func glDetachShader(program, shader C.GLuint) {
	abi.DetachShader(uint32(program), uint32(shader))
}

//export glLinkProgram
func glLinkProgram(program C.GLuint) {
	abi.LinkProgram(uint32(program))
}

//export glUseProgram
func glUseProgram(program C.GLuint) {
	abi.UseProgram(uint32(program))
}

//export glDeleteProgram
func glDeleteProgram(program C.GLuint) {
	abi.DeleteProgram(uint32(program))
}

//export glIsProgram
func glIsProgram(program C.GLuint) C.GLboolean {
	return C.GLboolean(abi.IsProgram(uint32(program)))
}

//export glValidateProgram
func glValidateProgram(program C.GLuint) {
	abi.ValidateProgram(uint32(program))
}

//export glGetProgramiv
func glGetProgramiv(program, pname C.GLuint, params unsafe.Pointer) {
	abi.GetProgramiv(uint32(program), uint32(pname), params)
}

//export glGetProgramInfoLog
func glGetProgramInfoLog(program C.GLuint, bufSize C.GLint, length, infoLog unsafe.Pointer) {
	abi.GetProgramInfoLog(uint32(program), int32(bufSize), length, infoLog)
}

//export glProgramParameteri
func glProgramParameteri(program, pname C.GLuint, value C.GLint) {
	abi.ProgramParameteri(uint32(program), uint32(pname), int32(value))
}

//export glGetAttribLocation
func glGetAttribLocation(program C.GLuint, name unsafe.Pointer) C.GLint {
	return C.GLint(abi.GetAttribLocation(uint32(program), name))
}

//export glGetUniformLocation
func glGetUniformLocation(program C.GLuint, name unsafe.Pointer) C.GLint {
	return C.GLint(abi.GetUniformLocation(uint32(program), name))
}

//export glGetUniformBlockIndex
func glGetUniformBlockIndex(program C.GLuint, name unsafe.Pointer) C.GLuint {
	return C.GLuint(abi.GetUniformBlockIndex(uint32(program), name))
}

//export glUniformBlockBinding
func glUniformBlockBinding(program, index, binding C.GLuint) {
	abi.UniformBlockBinding(uint32(program), uint32(index), uint32(binding))
}

//export glShaderStorageBlockBinding
func glShaderStorageBlockBinding(program, index, binding C.GLuint) {
	abi.ShaderStorageBlockBinding(uint32(program), uint32(index), uint32(binding))
}

//export glGetProgramResourceIndex
func glGetProgramResourceIndex(program, programInterface C.GLuint, name unsafe.Pointer) C.GLuint {
	return C.GLuint(abi.GetProgramResourceIndex(uint32(program), uint32(programInterface), name))
}

//export glTransformFeedbackVaryings
func glTransformFeedbackVaryings(program C.GLuint, count C.GLint, varyings unsafe.Pointer, bufferMode C.GLuint) {
	abi.TransformFeedbackVaryings(uint32(program), int32(count), varyings, uint32(bufferMode))
}

//export glBindProgramPipeline
func glBindProgramPipeline(pipeline C.GLuint) {
	abi.BindProgramPipeline(uint32(pipeline))
}

//export glUseProgramStages
func glUseProgramStages(pipeline, stages, program C.GLuint) {
	abi.UseProgramStages(uint32(pipeline), uint32(stages), uint32(program))
}

//export glActiveShaderProgram
func glActiveShaderProgram(pipeline, program C.GLuint) {
	abi.ActiveShaderProgram(uint32(pipeline), uint32(program))
}

//export glValidateProgramPipeline
func glValidateProgramPipeline(pipeline C.GLuint) {
	abi.ValidateProgramPipeline(uint32(pipeline))
}

//export glGetProgramPipelineInfoLog
func glGetProgramPipelineInfoLog(pipeline C.GLuint, bufSize C.GLint, length, infoLog unsafe.Pointer) {
	abi.GetProgramPipelineInfoLog(uint32(pipeline), int32(bufSize), length, infoLog)
}

//export glBeginQuery
func glBeginQuery(target, id C.GLuint) {
	abi.BeginQuery(uint32(target), uint32(id))
}

//export glEndQuery
func glEndQuery(target C.GLuint) {
	abi.EndQuery(uint32(target))
}

//export glQueryCounter
func glQueryCounter(id, target C.GLuint) {
	abi.QueryCounter(uint32(id), uint32(target))
}

//export glGetQueryiv
func glGetQueryiv(target, pname C.GLuint, params unsafe.Pointer) {
	abi.GetQueryiv(uint32(target), uint32(pname), params)
}

//export glGetQueryObjectuiv
func glGetQueryObjectuiv(id, pname C.GLuint, params unsafe.Pointer) {
	abi.GetQueryObjectuiv(uint32(id), uint32(pname), params)
}

//export glGetQueryObjectiv
func glGetQueryObjectiv(id, pname C.GLuint, params unsafe.Pointer) {
	abi.GetQueryObjectiv(uint32(id), uint32(pname), params)
}

//export glGetQueryObjectui64v
func glGetQueryObjectui64v(id, pname C.GLuint, params unsafe.Pointer) {
	abi.GetQueryObjectui64v(uint32(id), uint32(pname), params)
}

//export glGetQueryObjecti64v
func glGetQueryObjecti64v(id, pname C.GLuint, params unsafe.Pointer) {
	abi.GetQueryObjecti64v(uint32(id), uint32(pname), params)
}

//export glFenceSync
func glFenceSync(condition, flags C.GLuint) C.GLsync {
	return C.GLsync(abi.FenceSync(uint32(condition), uint32(flags)))
}

//export glIsSync
func glIsSync(sync C.GLsync) C.GLboolean {
	return C.GLboolean(abi.IsSync(uintptr(sync)))
}

//export glDeleteSync
func glDeleteSync(sync C.GLsync) {
	abi.DeleteSync(uintptr(sync))
}

//export glClientWaitSync
func glClientWaitSync(sync C.GLsync, flags C.GLuint, timeout C.GLuint64) C.GLuint {
	return C.GLuint(abi.ClientWaitSync(uintptr(sync), uint32(flags), uint64(timeout)))
}

//export glWaitSync
func glWaitSync(sync C.GLsync, flags C.GLuint, timeout C.GLuint64) {
	abi.WaitSync(uintptr(sync), uint32(flags), uint64(timeout))
}

//export glGetSynciv
func glGetSynciv(sync C.GLsync, pname C.GLuint, count C.GLint, length, values unsafe.Pointer) {
	abi.GetSynciv(uintptr(sync), uint32(pname), int32(count), length, values)
}

//export glBindTransformFeedback
func glBindTransformFeedback(target, id C.GLuint) {
	abi.BindTransformFeedback(uint32(target), uint32(id))
}

//export glBeginTransformFeedback
func glBeginTransformFeedback(primitiveMode C.GLuint) {
	abi.BeginTransformFeedback(uint32(primitiveMode))
}

//export glEndTransformFeedback
func glEndTransformFeedback() {
	abi.EndTransformFeedback()
}

//export glPauseTransformFeedback
func glPauseTransformFeedback() {
	abi.PauseTransformFeedback()
}

//export glResumeTransformFeedback
func glResumeTransformFeedback() {
	abi.ResumeTransformFeedback()
}

//export glEnable
func glEnable(capability C.GLuint) {
	abi.Enable(uint32(capability))
}

//export glDisable
func glDisable(capability C.GLuint) {
	abi.Disable(uint32(capability))
}

//export glIsEnabled
func glIsEnabled(capability C.GLuint) C.GLboolean {
	return C.GLboolean(abi.IsEnabled(uint32(capability)))
}

//export glEnablei
func glEnablei(capability, index C.GLuint) {
	abi.Enablei(uint32(capability), uint32(index))
}

//export glDisablei
func glDisablei(capability, index C.GLuint) {
	abi.Disablei(uint32(capability), uint32(index))
}

//export glIsEnabledi
func glIsEnabledi(capability, index C.GLuint) C.GLboolean {
	return C.GLboolean(abi.IsEnabledi(uint32(capability), uint32(index)))
}

//export glBlendFunc
func glBlendFunc(sfactor, dfactor C.GLuint) {
	abi.BlendFunc(uint32(sfactor), uint32(dfactor))
}

//export glBlendFunci
func glBlendFunci(buf, sfactor, dfactor C.GLuint) {
	abi.BlendFunci(uint32(buf), uint32(sfactor), uint32(dfactor))
}

//export glBlendFuncSeparate
func glBlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha C.GLuint) {
	abi.BlendFuncSeparate(uint32(srcRGB), uint32(dstRGB), uint32(srcAlpha), uint32(dstAlpha))
}

//export glBlendFuncSeparatei
func glBlendFuncSeparatei(buf, srcRGB, dstRGB, srcAlpha, dstAlpha C.GLuint) {
	abi.BlendFuncSeparatei(uint32(buf), uint32(srcRGB), uint32(dstRGB), uint32(srcAlpha), uint32(dstAlpha))
}

//export glBlendEquation
func glBlendEquation(mode C.GLuint) {
	abi.BlendEquation(uint32(mode))
}

//export glBlendEquationi
func glBlendEquationi(buf, mode C.GLuint) {
	abi.BlendEquationi(uint32(buf), uint32(mode))
}

//export glBlendEquationSeparate
func glBlendEquationSeparate(modeRGB, modeAlpha C.GLuint) {
	abi.BlendEquationSeparate(uint32(modeRGB), uint32(modeAlpha))
}

//export glBlendEquationSeparatei
func glBlendEquationSeparatei(buf, modeRGB, modeAlpha C.GLuint) {
	abi.BlendEquationSeparatei(uint32(buf), uint32(modeRGB), uint32(modeAlpha))
}

//export glBlendColor
func glBlendColor(r, g, b, a C.GLfloat) {
	abi.BlendColor(float32(r), float32(g), float32(b), float32(a))
}

//export glColorMask
func glColorMask(r, g, b, a C.GLboolean) {
	abi.ColorMask(uint8(r), uint8(g), uint8(b), uint8(a))
}

//export glColorMaski
func glColorMaski(buf C.GLuint, r, g, b, a C.GLboolean) {
	abi.ColorMaski(uint32(buf), uint8(r), uint8(g), uint8(b), uint8(a))
}

//export glDepthFunc
func glDepthFunc(fn C.GLuint) {
	abi.DepthFunc(uint32(fn))
}

//export glDepthMask
func glDepthMask(flag C.GLboolean) {
	abi.DepthMask(uint8(flag))
}

//export glDepthRange
func glDepthRange(near, far C.GLdouble) {
	abi.DepthRange(float64(near), float64(far))
}

//export glDepthRangef
func glDepthRangef(near, far C.GLfloat) {
	abi.DepthRangef(float32(near), float32(far))
}

//export glStencilFunc
func glStencilFunc(fn C.GLuint, ref C.GLint, mask C.GLuint) {
	abi.StencilFunc(uint32(fn), int32(ref), uint32(mask))
}

//export glStencilFuncSeparate
func glStencilFuncSeparate(face, fn C.GLuint, ref C.GLint, mask C.GLuint) {
	abi.StencilFuncSeparate(uint32(face), uint32(fn), int32(ref), uint32(mask))
}

//export glStencilOp
func glStencilOp(sfail, dpfail, dppass C.GLuint) {
	abi.StencilOp(uint32(sfail), uint32(dpfail), uint32(dppass))
}

//export glStencilOpSeparate
func glStencilOpSeparate(face, sfail, dpfail, dppass C.GLuint) {
	abi.StencilOpSeparate(uint32(face), uint32(sfail), uint32(dpfail), uint32(dppass))
}

//export glStencilMask
func glStencilMask(mask C.GLuint) {
	abi.StencilMask(uint32(mask))
}

//export glStencilMaskSeparate
func glStencilMaskSeparate(face, mask C.GLuint) {
	abi.StencilMaskSeparate(uint32(face), uint32(mask))
}

//export glCullFace
func glCullFace(mode C.GLuint) {
	abi.CullFace(uint32(mode))
}

//export glFrontFace
func glFrontFace(mode C.GLuint) {
	abi.FrontFace(uint32(mode))
}

//export glPolygonOffset
func glPolygonOffset(factor, units C.GLfloat) {
	abi.PolygonOffset(float32(factor), float32(units))
}

//export glLineWidth
func glLineWidth(width C.GLfloat) {
	abi.LineWidth(float32(width))
}

//export glViewport
func glViewport(x, y, width, height C.GLint) {
	abi.Viewport(int32(x), int32(y), int32(width), int32(height))
}

//export glScissor
func glScissor(x, y, width, height C.GLint) {
	abi.Scissor(int32(x), int32(y), int32(width), int32(height))
}

//export glPrimitiveRestartIndex
func glPrimitiveRestartIndex(index C.GLuint) {
	abi.PrimitiveRestartIndex(uint32(index))
}

//export glHint
func glHint(target, mode C.GLuint) {
	abi.Hint(uint32(target), uint32(mode))
}

//export glPixelStorei
func glPixelStorei(pname C.GLuint, param C.GLint) {
	abi.PixelStorei(uint32(pname), int32(param))
}

//export glClearColor
func glClearColor(r, g, b, a C.GLfloat) {
	abi.ClearColor(float32(r), float32(g), float32(b), float32(a))
}

//export glClearDepth
func glClearDepth(depth C.GLdouble) {
	abi.ClearDepth(float64(depth))
}

//export glClearDepthf
func glClearDepthf(depth C.GLfloat) {
	abi.ClearDepthf(float32(depth))
}

//export glClearStencil
func glClearStencil(s C.GLint) {
	abi.ClearStencil(int32(s))
}

//export glClear
func glClear(mask C.GLuint) {
	abi.Clear(uint32(mask))
}

//export glFlush
func glFlush() {
	abi.Flush()
}

//export glFinish
func glFinish() {
	abi.Finish()
}

//export glMemoryBarrier
func glMemoryBarrier(barriers C.GLuint) {
	abi.MemoryBarrier(uint32(barriers))
}

//export glGetError
func glGetError() C.GLuint {
	return C.GLuint(abi.GetError())
}

//export glGetIntegerv
func glGetIntegerv(pname C.GLuint, data unsafe.Pointer) {
	abi.GetIntegerv(uint32(pname), data)
}

//export glGetInteger64v
func glGetInteger64v(pname C.GLuint, data unsafe.Pointer) {
	abi.GetInteger64v(uint32(pname), data)
}

//export glGetFloatv
func glGetFloatv(pname C.GLuint, data unsafe.Pointer) {
	abi.GetFloatv(uint32(pname), data)
}

//export glGetDoublev
func glGetDoublev(pname C.GLuint, data unsafe.Pointer) {
	abi.GetDoublev(uint32(pname), data)
}

//export glGetBooleanv
func glGetBooleanv(pname C.GLuint, data unsafe.Pointer) {
	abi.GetBooleanv(uint32(pname), data)
}

//export glGetIntegeri_v
func glGetIntegeri_v(pname, index C.GLuint, data unsafe.Pointer) {
	abi.GetIntegeri_v(uint32(pname), uint32(index), data)
}

//export glGetInteger64i_v
func glGetInteger64i_v(pname, index C.GLuint, data unsafe.Pointer) {
	abi.GetInteger64i_v(uint32(pname), uint32(index), data)
}

//export glActiveTexture
func glActiveTexture(texture C.GLuint) {
	abi.ActiveTexture(uint32(texture))
}

//export glBindTexture
func glBindTexture(target, texture C.GLuint) {
	abi.BindTexture(uint32(target), uint32(texture))
}

//export glBindTextureUnit
func glBindTextureUnit(unit, texture C.GLuint) {
	abi.BindTextureUnit(uint32(unit), uint32(texture))
}

//export glBindImageTexture
func glBindImageTexture(unit, texture C.GLuint, level C.GLint, layered C.GLboolean, layer C.GLint, access, format C.GLuint) {
	abi.BindImageTexture(uint32(unit), uint32(texture), int32(level), uint8(layered), int32(layer), uint32(access), uint32(format))
}

//export glBindImageTextures
func glBindImageTextures(first C.GLuint, count C.GLint, textures unsafe.Pointer) {
	abi.BindImageTextures(uint32(first), int32(count), textures)
}

//export glTexParameteri
func glTexParameteri(target, pname C.GLuint, param C.GLint) {
	abi.TexParameteri(uint32(target), uint32(pname), int32(param))
}

//export glTexParameterf
func glTexParameterf(target, pname C.GLuint, param C.GLfloat) {
	abi.TexParameterf(uint32(target), uint32(pname), float32(param))
}

//export glTexParameterfv
func glTexParameterfv(target, pname C.GLuint, params unsafe.Pointer) {
	abi.TexParameterfv(uint32(target), uint32(pname), params)
}

//export glTexParameteriv
func glTexParameteriv(target, pname C.GLuint, params unsafe.Pointer) {
	abi.TexParameteriv(uint32(target), uint32(pname), params)
}

//export glGetTexParameterfv
func glGetTexParameterfv(target, pname C.GLuint, params unsafe.Pointer) {
	abi.GetTexParameterfv(uint32(target), uint32(pname), params)
}

//export glGetTexParameteriv
func glGetTexParameteriv(target, pname C.GLuint, params unsafe.Pointer) {
	abi.GetTexParameteriv(uint32(target), uint32(pname), params)
}

//export glTexImage2D
func glTexImage2D(target C.GLuint, level, internalformat, width, height, border C.GLint, format, typ C.GLuint, pixels unsafe.Pointer) {
	abi.TexImage2D(uint32(target), int32(level), int32(internalformat), int32(width), int32(height), int32(border), uint32(format), uint32(typ), pixels)
}

//export glTexImage3D
func glTexImage3D(target C.GLuint, level, internalformat, width, height, depth, border C.GLint, format, typ C.GLuint, pixels unsafe.Pointer) {
	abi.TexImage3D(uint32(target), int32(level), int32(internalformat), int32(width), int32(height), int32(depth), int32(border), uint32(format), uint32(typ), pixels)
}

//export glTexSubImage2D
func glTexSubImage2D(target C.GLuint, level, xoffset, yoffset, width, height C.GLint, format, typ C.GLuint, p unsafe.Pointer) {
	abi.TexSubImage2D(uint32(target), int32(level), int32(xoffset), int32(yoffset), int32(width), int32(height), uint32(format), uint32(typ), p)
}

//export glTexSubImage3D
func glTexSubImage3D(target C.GLuint, level, xoffset, yoffset, zoffset, width, height, depth C.GLint, format, typ C.GLuint, p unsafe.Pointer) {
	abi.TexSubImage3D(uint32(target), int32(level), int32(xoffset), int32(yoffset), int32(zoffset), int32(width), int32(height), int32(depth), uint32(format), uint32(typ), p)
}

//export glTexStorage2D
func glTexStorage2D(target C.GLuint, levels C.GLint, internalformat C.GLuint, width, height C.GLint) {
	abi.TexStorage2D(uint32(target), int32(levels), uint32(internalformat), int32(width), int32(height))
}

//export glTexStorage3D
func glTexStorage3D(target C.GLuint, levels C.GLint, internalformat C.GLuint, width, height, depth C.GLint) {
	abi.TexStorage3D(uint32(target), int32(levels), uint32(internalformat), int32(width), int32(height), int32(depth))
}

//export glGenerateMipmap
func glGenerateMipmap(target C.GLuint) {
	abi.GenerateMipmap(uint32(target))
}

//export glReadPixels
func glReadPixels(x, y, width, height C.GLint, format, typ C.GLuint, p unsafe.Pointer) {
	abi.ReadPixels(int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(typ), p)
}

//export glBindSampler
func glBindSampler(unit, sampler C.GLuint) {
	abi.BindSampler(uint32(unit), uint32(sampler))
}

//export glSamplerParameteri
func glSamplerParameteri(sampler, pname C.GLuint, param C.GLint) {
	abi.SamplerParameteri(uint32(sampler), uint32(pname), int32(param))
}

//export glSamplerParameterf
func glSamplerParameterf(sampler, pname C.GLuint, param C.GLfloat) {
	abi.SamplerParameterf(uint32(sampler), uint32(pname), float32(param))
}

//export glSamplerParameterfv
func glSamplerParameterfv(sampler, pname C.GLuint, params unsafe.Pointer) {
	abi.SamplerParameterfv(uint32(sampler), uint32(pname), params)
}

//export glSamplerParameteriv
func glSamplerParameteriv(sampler, pname C.GLuint, params unsafe.Pointer) {
	abi.SamplerParameteriv(uint32(sampler), uint32(pname), params)
}

//export glGetSamplerParameterfv
func glGetSamplerParameterfv(sampler, pname C.GLuint, params unsafe.Pointer) {
	abi.GetSamplerParameterfv(uint32(sampler), uint32(pname), params)
}

//export glGetSamplerParameteriv
func glGetSamplerParameteriv(sampler, pname C.GLuint, params unsafe.Pointer) {
	abi.GetSamplerParameteriv(uint32(sampler), uint32(pname), params)
}

//export glUniform1f
func glUniform1f(location C.GLint, v0 C.GLfloat) {
	abi.Uniform1f(int32(location), float32(v0))
}

//export glUniform2f
func glUniform2f(location C.GLint, v0, v1 C.GLfloat) {
	abi.Uniform2f(int32(location), float32(v0), float32(v1))
}

//export glUniform3f
func glUniform3f(location C.GLint, v0, v1, v2 C.GLfloat) {
	abi.Uniform3f(int32(location), float32(v0), float32(v1), float32(v2))
}

//export glUniform4f
func glUniform4f(location C.GLint, v0, v1, v2, v3 C.GLfloat) {
	abi.Uniform4f(int32(location), float32(v0), float32(v1), float32(v2), float32(v3))
}

//export glUniform1i
func glUniform1i(location, v0 C.GLint) {
	abi.Uniform1i(int32(location), int32(v0))
}

//export glUniform2i
func glUniform2i(location, v0, v1 C.GLint) {
	abi.Uniform2i(int32(location), int32(v0), int32(v1))
}

//export glUniform3i
func glUniform3i(location, v0, v1, v2 C.GLint) {
	abi.Uniform3i(int32(location), int32(v0), int32(v1), int32(v2))
}

//export glUniform4i
func glUniform4i(location, v0, v1, v2, v3 C.GLint) {
	abi.Uniform4i(int32(location), int32(v0), int32(v1), int32(v2), int32(v3))
}

//export glUniform1ui
func glUniform1ui(location C.GLint, v0 C.GLuint) {
	abi.Uniform1ui(int32(location), uint32(v0))
}

//export glUniform2ui
func glUniform2ui(location C.GLint, v0, v1 C.GLuint) {
	abi.Uniform2ui(int32(location), uint32(v0), uint32(v1))
}

//export glUniform3ui
func glUniform3ui(location C.GLint, v0, v1, v2 C.GLuint) {
	abi.Uniform3ui(int32(location), uint32(v0), uint32(v1), uint32(v2))
}

//export glUniform4ui
func glUniform4ui(location C.GLint, v0, v1, v2, v3 C.GLuint) {
	abi.Uniform4ui(int32(location), uint32(v0), uint32(v1), uint32(v2), uint32(v3))
}

//export glUniform1fv
func glUniform1fv(location, count C.GLint, value unsafe.Pointer) {
	abi.Uniform1fv(int32(location), int32(count), value)
}

//export glUniform2fv
func glUniform2fv(location, count C.GLint, value unsafe.Pointer) {
	abi.Uniform2fv(int32(location), int32(count), value)
}

//export glUniform3fv
func glUniform3fv(location, count C.GLint, value unsafe.Pointer) {
	abi.Uniform3fv(int32(location), int32(count), value)
}

//export glUniform4fv
func glUniform4fv(location, count C.GLint, value unsafe.Pointer) {
	abi.Uniform4fv(int32(location), int32(count), value)
}

//export glUniform1iv
func glUniform1iv(location, count C.GLint, value unsafe.Pointer) {
	abi.Uniform1iv(int32(location), int32(count), value)
}

//export glUniform2iv
func glUniform2iv(location, count C.GLint, value unsafe.Pointer) {
	abi.Uniform2iv(int32(location), int32(count), value)
}

//export glUniform3iv
func glUniform3iv(location, count C.GLint, value unsafe.Pointer) {
	abi.Uniform3iv(int32(location), int32(count), value)
}

//export glUniform4iv
func glUniform4iv(location, count C.GLint, value unsafe.Pointer) {
	abi.Uniform4iv(int32(location), int32(count), value)
}

//export glUniformMatrix2fv
func glUniformMatrix2fv(location, count C.GLint, transpose C.GLboolean, value unsafe.Pointer) {
	abi.UniformMatrix2fv(int32(location), int32(count), uint8(transpose), value)
}

//export glUniformMatrix3fv
func glUniformMatrix3fv(location, count C.GLint, transpose C.GLboolean, value unsafe.Pointer) {
	abi.UniformMatrix3fv(int32(location), int32(count), uint8(transpose), value)
}

//export glUniformMatrix4fv
func glUniformMatrix4fv(location, count C.GLint, transpose C.GLboolean, value unsafe.Pointer) {
	abi.UniformMatrix4fv(int32(location), int32(count), uint8(transpose), value)
}

//export glProgramUniform1f
func glProgramUniform1f(program C.GLuint, location C.GLint, v0 C.GLfloat) {
	abi.ProgramUniform1f(uint32(program), int32(location), float32(v0))
}

//export glProgramUniform1i
func glProgramUniform1i(program C.GLuint, location, v0 C.GLint) {
	abi.ProgramUniform1i(uint32(program), int32(location), int32(v0))
}

//export glProgramUniform4fv
func glProgramUniform4fv(program C.GLuint, location, count C.GLint, value unsafe.Pointer) {
	abi.ProgramUniform4fv(uint32(program), int32(location), int32(count), value)
}

//export glProgramUniformMatrix4fv
func glProgramUniformMatrix4fv(program C.GLuint, location, count C.GLint, transpose C.GLboolean, value unsafe.Pointer) {
	abi.ProgramUniformMatrix4fv(uint32(program), int32(location), int32(count), uint8(transpose), value)
}

//export glGetnUniformfv
func glGetnUniformfv(program C.GLuint, location, bufSize C.GLint, params unsafe.Pointer) {
	abi.GetnUniformfv(uint32(program), int32(location), int32(bufSize), params)
}

//export glGetnUniformiv
func glGetnUniformiv(program C.GLuint, location, bufSize C.GLint, params unsafe.Pointer) {
	abi.GetnUniformiv(uint32(program), int32(location), int32(bufSize), params)
}

//export glBindVertexArray
func glBindVertexArray(array C.GLuint) {
	abi.BindVertexArray(uint32(array))
}

//export glEnableVertexAttribArray
func glEnableVertexAttribArray(index C.GLuint) {
	abi.EnableVertexAttribArray(uint32(index))
}

//export glDisableVertexAttribArray
func glDisableVertexAttribArray(index C.GLuint) {
	abi.DisableVertexAttribArray(uint32(index))
}

//export glVertexAttribPointer
func glVertexAttribPointer(index C.GLuint, size C.GLint, typ C.GLuint, normalized C.GLboolean, stride C.GLint, pointer unsafe.Pointer) {
	abi.VertexAttribPointer(uint32(index), int32(size), uint32(typ), uint8(normalized), int32(stride), pointer)
}

//export glVertexAttribIPointer
func glVertexAttribIPointer(index C.GLuint, size C.GLint, typ C.GLuint, stride C.GLint, pointer unsafe.Pointer) {
	abi.VertexAttribIPointer(uint32(index), int32(size), uint32(typ), int32(stride), pointer)
}

//export glVertexAttribFormat
func glVertexAttribFormat(index C.GLuint, size C.GLint, typ C.GLuint, normalized C.GLboolean, relativeOffset C.GLuint) {
	abi.VertexAttribFormat(uint32(index), int32(size), uint32(typ), uint8(normalized), uint32(relativeOffset))
}

//export glVertexAttribIFormat
func glVertexAttribIFormat(index C.GLuint, size C.GLint, typ, relativeOffset C.GLuint) {
	abi.VertexAttribIFormat(uint32(index), int32(size), uint32(typ), uint32(relativeOffset))
}

//export glVertexAttribBinding
func glVertexAttribBinding(index, binding C.GLuint) {
	abi.VertexAttribBinding(uint32(index), uint32(binding))
}

//export glBindVertexBuffer
func glBindVertexBuffer(binding, buffer C.GLuint, offset C.GLsizeiptr, stride C.GLint) {
	abi.BindVertexBuffer(uint32(binding), uint32(buffer), int(offset), int32(stride))
}

//export glVertexBindingDivisor
func glVertexBindingDivisor(binding, divisor C.GLuint) {
	abi.VertexBindingDivisor(uint32(binding), uint32(divisor))
}

//export glVertexAttribDivisor
func glVertexAttribDivisor(index, divisor C.GLuint) {
	abi.VertexAttribDivisor(uint32(index), uint32(divisor))
}

//export glVertexAttrib1f
func glVertexAttrib1f(index C.GLuint, x C.GLfloat) {
	abi.VertexAttrib1f(uint32(index), float32(x))
}

//export glVertexAttrib2f
func glVertexAttrib2f(index C.GLuint, x, y C.GLfloat) {
	abi.VertexAttrib2f(uint32(index), float32(x), float32(y))
}

//export glVertexAttrib3f
func glVertexAttrib3f(index C.GLuint, x, y, z C.GLfloat) {
	abi.VertexAttrib3f(uint32(index), float32(x), float32(y), float32(z))
}

//export glVertexAttrib4f
func glVertexAttrib4f(index C.GLuint, x, y, z, w C.GLfloat) {
	abi.VertexAttrib4f(uint32(index), float32(x), float32(y), float32(z), float32(w))
}

//export glVertexAttrib4fv
func glVertexAttrib4fv(index C.GLuint, v unsafe.Pointer) {
	abi.VertexAttrib4fv(uint32(index), v)
}

//export glVertexAttribI4i
func glVertexAttribI4i(index C.GLuint, x, y, z, w C.GLint) {
	abi.VertexAttribI4i(uint32(index), int32(x), int32(y), int32(z), int32(w))
}

//export glVertexAttribI4ui
func glVertexAttribI4ui(index, x, y, z, w C.GLuint) {
	abi.VertexAttribI4ui(uint32(index), uint32(x), uint32(y), uint32(z), uint32(w))
}

//export glGetVertexAttribfv
func glGetVertexAttribfv(index, pname C.GLuint, params unsafe.Pointer) {
	abi.GetVertexAttribfv(uint32(index), uint32(pname), params)
}
