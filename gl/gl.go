// Package gl defines the driver surface consumed by glw.
//
// A Driver is the raw OpenGL function table. glw never caches driver return
// values beyond the shadow state kept in glw.Context; everything else is a
// synchronous call through this interface. Package gogl provides the
// implementation backed by github.com/go-gl/gl, package gltest a recording
// fake for tests.
package gl

// Driver is the OpenGL function table.
//
// Method names and semantics follow the OpenGL calls they wrap. Object names
// are returned directly instead of through pointers and Go slices replace
// pointer/length pairs.
type Driver interface {
	GetError() uint32
	GetIntegerv(pname uint32) int32
	GetString(name uint32) string

	Enable(capability uint32)
	Disable(capability uint32)
	DepthFunc(fn uint32)
	DepthMask(flag bool)
	DepthRange(near, far float64)
	Viewport(x, y, width, height int32)
	Scissor(x, y, width, height int32)
	BlendFunc(sfactor, dfactor uint32)
	PolygonMode(face, mode uint32)
	CullFace(mode uint32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)

	ActiveTexture(texture uint32)
	BindTexture(target, texture uint32)
	GenTexture() uint32
	DeleteTexture(texture uint32)
	TexImage2D(target uint32, level, internalFormat, width, height int32, format, xtype uint32, pixels []byte)
	TexSubImage2D(target uint32, level, x, y, width, height int32, format, xtype uint32, pixels []byte)
	TexParameteri(target, pname uint32, param int32)
	TexParameterfv(target, pname uint32, params []float32)
	GenerateMipmap(target uint32)
	PixelStorei(pname uint32, param int32)

	GenBuffer() uint32
	DeleteBuffer(buffer uint32)
	BindBuffer(target, buffer uint32)
	BindBufferBase(target, index, buffer uint32)
	BufferData(target uint32, size int, data []byte, usage uint32)
	BufferSubData(target uint32, offset int, data []byte)

	GenVertexArray() uint32
	DeleteVertexArray(array uint32)
	BindVertexArray(array uint32)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int)

	GenFramebuffer() uint32
	DeleteFramebuffer(framebuffer uint32)
	BindFramebuffer(target, framebuffer uint32)
	FramebufferTexture2D(target, attachment, textarget, texture uint32, level int32)
	FramebufferRenderbuffer(target, attachment, renderbufferTarget, renderbuffer uint32)
	CheckFramebufferStatus(target uint32) uint32
	DrawBuffer(mode uint32)
	ReadBuffer(mode uint32)
	GenRenderbuffer() uint32
	DeleteRenderbuffer(renderbuffer uint32)
	BindRenderbuffer(target, renderbuffer uint32)
	RenderbufferStorage(target, internalFormat uint32, width, height int32)

	CreateShader(xtype uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader, pname uint32) int32
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	ValidateProgram(program uint32)
	GetProgramiv(program, pname uint32) int32
	GetProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
	UseProgram(program uint32)
	GetUniformLocation(program uint32, name string) int32
	GetAttribLocation(program uint32, name string) int32

	// Uniform*v upload count = len(v)/components elements of the given
	// component count (1 to 4) to the uniform at location.
	Uniformiv(location int32, components int, v []int32)
	Uniformuiv(location int32, components int, v []uint32)
	Uniformfv(location int32, components int, v []float32)
	Uniformdv(location int32, components int, v []float64)
	// UniformMatrixfv uploads len(v)/(dim*dim) square matrices of dimension dim.
	UniformMatrixfv(location int32, dim int, transpose bool, v []float32)

	DrawArrays(mode uint32, first, count int32)
	DrawElements(mode uint32, count int32, xtype uint32, offset int)
}

// ErrorString returns a printable name for a GetError code.
func ErrorString(code uint32) string {
	switch code {
	case GL_NO_ERROR:
		return "GL_NO_ERROR"
	case GL_INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case GL_INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case GL_INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case GL_OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	case GL_INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	}
	return "GL_UNKNOWN_ERROR"
}
