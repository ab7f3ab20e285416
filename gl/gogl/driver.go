// Package gogl implements gl.Driver on top of github.com/go-gl/gl.
//
// New must be called from the thread that owns a current OpenGL context.
package gogl

import (
	"strings"
	"unsafe"

	"github.com/db47h/glw/gl"
	core "github.com/go-gl/gl/v4.6-core/gl"
	"github.com/pkg/errors"
)

// Driver is a gl.Driver calling into the system OpenGL library.
type Driver struct{}

var _ gl.Driver = (*Driver)(nil)

// New loads the OpenGL function pointers for the current context and returns a
// Driver.
func New() (*Driver, error) {
	if err := core.Init(); err != nil {
		return nil, errors.Wrap(err, "gl init")
	}
	return new(Driver), nil
}

func ptr[T any](v []T) unsafe.Pointer {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Pointer(&v[0])
}

func (*Driver) GetError() uint32 { return core.GetError() }

func (*Driver) GetIntegerv(pname uint32) int32 {
	var v int32
	core.GetIntegerv(pname, &v)
	return v
}

func (*Driver) GetString(name uint32) string {
	s := core.GetString(name)
	if s == nil {
		return ""
	}
	return core.GoStr(s)
}

func (*Driver) Enable(capability uint32)  { core.Enable(capability) }
func (*Driver) Disable(capability uint32) { core.Disable(capability) }
func (*Driver) DepthFunc(fn uint32)       { core.DepthFunc(fn) }
func (*Driver) DepthMask(flag bool)       { core.DepthMask(flag) }
func (*Driver) DepthRange(near, far float64) {
	core.DepthRange(near, far)
}
func (*Driver) Viewport(x, y, width, height int32) { core.Viewport(x, y, width, height) }
func (*Driver) Scissor(x, y, width, height int32)  { core.Scissor(x, y, width, height) }
func (*Driver) BlendFunc(sfactor, dfactor uint32)  { core.BlendFunc(sfactor, dfactor) }
func (*Driver) PolygonMode(face, mode uint32)      { core.PolygonMode(face, mode) }
func (*Driver) CullFace(mode uint32)               { core.CullFace(mode) }
func (*Driver) ClearColor(r, g, b, a float32)      { core.ClearColor(r, g, b, a) }
func (*Driver) Clear(mask uint32)                  { core.Clear(mask) }

func (*Driver) ActiveTexture(texture uint32)       { core.ActiveTexture(texture) }
func (*Driver) BindTexture(target, texture uint32) { core.BindTexture(target, texture) }

func (*Driver) GenTexture() uint32 {
	var t uint32
	core.GenTextures(1, &t)
	return t
}

func (*Driver) DeleteTexture(texture uint32) { core.DeleteTextures(1, &texture) }

func (*Driver) TexImage2D(target uint32, level, internalFormat, width, height int32, format, xtype uint32, pixels []byte) {
	core.TexImage2D(target, level, internalFormat, width, height, 0, format, xtype, ptr(pixels))
}

func (*Driver) TexSubImage2D(target uint32, level, x, y, width, height int32, format, xtype uint32, pixels []byte) {
	core.TexSubImage2D(target, level, x, y, width, height, format, xtype, ptr(pixels))
}

func (*Driver) TexParameteri(target, pname uint32, param int32) {
	core.TexParameteri(target, pname, param)
}

func (*Driver) TexParameterfv(target, pname uint32, params []float32) {
	core.TexParameterfv(target, pname, &params[0])
}

func (*Driver) GenerateMipmap(target uint32)          { core.GenerateMipmap(target) }
func (*Driver) PixelStorei(pname uint32, param int32) { core.PixelStorei(pname, param) }

func (*Driver) GenBuffer() uint32 {
	var b uint32
	core.GenBuffers(1, &b)
	return b
}

func (*Driver) DeleteBuffer(buffer uint32)       { core.DeleteBuffers(1, &buffer) }
func (*Driver) BindBuffer(target, buffer uint32) { core.BindBuffer(target, buffer) }

func (*Driver) BindBufferBase(target, index, buffer uint32) {
	core.BindBufferBase(target, index, buffer)
}

func (*Driver) BufferData(target uint32, size int, data []byte, usage uint32) {
	core.BufferData(target, size, ptr(data), usage)
}

func (*Driver) BufferSubData(target uint32, offset int, data []byte) {
	core.BufferSubData(target, offset, len(data), ptr(data))
}

func (*Driver) GenVertexArray() uint32 {
	var a uint32
	core.GenVertexArrays(1, &a)
	return a
}

func (*Driver) DeleteVertexArray(array uint32)       { core.DeleteVertexArrays(1, &array) }
func (*Driver) BindVertexArray(array uint32)         { core.BindVertexArray(array) }
func (*Driver) EnableVertexAttribArray(index uint32) { core.EnableVertexAttribArray(index) }

func (*Driver) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	core.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, uintptr(offset))
}

func (*Driver) GenFramebuffer() uint32 {
	var f uint32
	core.GenFramebuffers(1, &f)
	return f
}

func (*Driver) DeleteFramebuffer(framebuffer uint32)       { core.DeleteFramebuffers(1, &framebuffer) }
func (*Driver) BindFramebuffer(target, framebuffer uint32) { core.BindFramebuffer(target, framebuffer) }

func (*Driver) FramebufferTexture2D(target, attachment, textarget, texture uint32, level int32) {
	core.FramebufferTexture2D(target, attachment, textarget, texture, level)
}

func (*Driver) FramebufferRenderbuffer(target, attachment, renderbufferTarget, renderbuffer uint32) {
	core.FramebufferRenderbuffer(target, attachment, renderbufferTarget, renderbuffer)
}

func (*Driver) CheckFramebufferStatus(target uint32) uint32 {
	return core.CheckFramebufferStatus(target)
}

func (*Driver) DrawBuffer(mode uint32) { core.DrawBuffer(mode) }
func (*Driver) ReadBuffer(mode uint32) { core.ReadBuffer(mode) }

func (*Driver) GenRenderbuffer() uint32 {
	var r uint32
	core.GenRenderbuffers(1, &r)
	return r
}

func (*Driver) DeleteRenderbuffer(renderbuffer uint32) { core.DeleteRenderbuffers(1, &renderbuffer) }
func (*Driver) BindRenderbuffer(target, renderbuffer uint32) {
	core.BindRenderbuffer(target, renderbuffer)
}

func (*Driver) RenderbufferStorage(target, internalFormat uint32, width, height int32) {
	core.RenderbufferStorage(target, internalFormat, width, height)
}

func (*Driver) CreateShader(xtype uint32) uint32 { return core.CreateShader(xtype) }

func (*Driver) ShaderSource(shader uint32, source string) {
	csrc, free := core.Strs(source + "\x00")
	core.ShaderSource(shader, 1, csrc, nil)
	free()
}

func (*Driver) CompileShader(shader uint32) { core.CompileShader(shader) }

func (*Driver) GetShaderiv(shader, pname uint32) int32 {
	var v int32
	core.GetShaderiv(shader, pname, &v)
	return v
}

func (d *Driver) GetShaderInfoLog(shader uint32) string {
	n := d.GetShaderiv(shader, gl.GL_INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	buf := strings.Repeat("\x00", int(n+1))
	core.GetShaderInfoLog(shader, n, nil, core.Str(buf))
	return strings.TrimRight(buf, "\x00")
}

func (*Driver) DeleteShader(shader uint32)          { core.DeleteShader(shader) }
func (*Driver) CreateProgram() uint32               { return core.CreateProgram() }
func (*Driver) AttachShader(program, shader uint32) { core.AttachShader(program, shader) }
func (*Driver) DetachShader(program, shader uint32) { core.DetachShader(program, shader) }
func (*Driver) LinkProgram(program uint32)          { core.LinkProgram(program) }
func (*Driver) ValidateProgram(program uint32)      { core.ValidateProgram(program) }
func (*Driver) DeleteProgram(program uint32)        { core.DeleteProgram(program) }
func (*Driver) UseProgram(program uint32)           { core.UseProgram(program) }

func (*Driver) GetProgramiv(program, pname uint32) int32 {
	var v int32
	core.GetProgramiv(program, pname, &v)
	return v
}

func (d *Driver) GetProgramInfoLog(program uint32) string {
	n := d.GetProgramiv(program, gl.GL_INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	buf := strings.Repeat("\x00", int(n+1))
	core.GetProgramInfoLog(program, n, nil, core.Str(buf))
	return strings.TrimRight(buf, "\x00")
}

func (*Driver) GetUniformLocation(program uint32, name string) int32 {
	return core.GetUniformLocation(program, core.Str(name+"\x00"))
}

func (*Driver) GetAttribLocation(program uint32, name string) int32 {
	return core.GetAttribLocation(program, core.Str(name+"\x00"))
}

func (*Driver) Uniformiv(location int32, components int, v []int32) {
	n := int32(len(v) / components)
	switch components {
	case 1:
		core.Uniform1iv(location, n, &v[0])
	case 2:
		core.Uniform2iv(location, n, &v[0])
	case 3:
		core.Uniform3iv(location, n, &v[0])
	case 4:
		core.Uniform4iv(location, n, &v[0])
	}
}

func (*Driver) Uniformuiv(location int32, components int, v []uint32) {
	n := int32(len(v) / components)
	switch components {
	case 1:
		core.Uniform1uiv(location, n, &v[0])
	case 2:
		core.Uniform2uiv(location, n, &v[0])
	case 3:
		core.Uniform3uiv(location, n, &v[0])
	case 4:
		core.Uniform4uiv(location, n, &v[0])
	}
}

func (*Driver) Uniformfv(location int32, components int, v []float32) {
	n := int32(len(v) / components)
	switch components {
	case 1:
		core.Uniform1fv(location, n, &v[0])
	case 2:
		core.Uniform2fv(location, n, &v[0])
	case 3:
		core.Uniform3fv(location, n, &v[0])
	case 4:
		core.Uniform4fv(location, n, &v[0])
	}
}

func (*Driver) Uniformdv(location int32, components int, v []float64) {
	n := int32(len(v) / components)
	switch components {
	case 1:
		core.Uniform1dv(location, n, &v[0])
	case 2:
		core.Uniform2dv(location, n, &v[0])
	case 3:
		core.Uniform3dv(location, n, &v[0])
	case 4:
		core.Uniform4dv(location, n, &v[0])
	}
}

func (*Driver) UniformMatrixfv(location int32, dim int, transpose bool, v []float32) {
	n := int32(len(v) / (dim * dim))
	switch dim {
	case 2:
		core.UniformMatrix2fv(location, n, transpose, &v[0])
	case 3:
		core.UniformMatrix3fv(location, n, transpose, &v[0])
	case 4:
		core.UniformMatrix4fv(location, n, transpose, &v[0])
	}
}

func (*Driver) DrawArrays(mode uint32, first, count int32) { core.DrawArrays(mode, first, count) }

func (*Driver) DrawElements(mode uint32, count int32, xtype uint32, offset int) {
	core.DrawElementsWithOffset(mode, count, xtype, uintptr(offset))
}
