// Package gltest provides a recording gl.Driver for tests.
//
// The Driver logs every call, hands out fresh object names and mirrors the
// scalar state it is told to set, so that tests can assert both on what was
// sent to the driver and on how many calls were issued.
package gltest

import (
	"fmt"
	"strings"

	"github.com/db47h/glw/gl"
)

// A Call is one recorded driver call.
type Call struct {
	Name string
	Args []interface{}
}

func (c Call) String() string {
	var sb strings.Builder
	sb.WriteString(c.Name)
	sb.WriteByte('(')
	for i, a := range c.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, a)
	}
	sb.WriteByte(')')
	return sb.String()
}

// Driver is a fake gl.Driver.
type Driver struct {
	Calls []Call

	// Limits answers GetIntegerv queries.
	Limits map[uint32]int32
	// QueryErrors makes GetIntegerv(pname) raise the associated error code.
	QueryErrors map[uint32]uint32
	// Strings answers GetString queries.
	Strings map[uint32]string
	// CompileErrors makes compilation fail for any shader whose source
	// contains the key; the value is returned as the info log.
	CompileErrors map[string]string
	// LinkError, when not empty, makes every link fail with this log.
	LinkError string
	// MissingUniforms lists uniform names GetUniformLocation reports as -1.
	MissingUniforms map[string]bool
	// FramebufferStatus is returned by CheckFramebufferStatus.
	FramebufferStatus uint32

	// Mirrored driver state.
	Enabled      map[uint32]bool
	DepthFn      uint32
	DepthWrite   bool
	DepthNear    float64
	DepthFar     float64
	ViewportRect [4]int32
	ScissorRect  [4]int32
	BlendSrc     uint32
	BlendDst     uint32
	PolygonModes map[uint32]uint32
	CullMode     uint32
	ClearRGBA    [4]float32
	Program      uint32
	// UniformValues holds the last value uploaded to each location.
	UniformValues map[int32]interface{}

	errs     []uint32
	next     uint32
	sources  map[uint32]string
	status   map[uint32]bool
	logs     map[uint32]string
	uniforms map[uint32]map[string]int32
}

var _ gl.Driver = (*Driver)(nil)

// New returns a Driver with GL 4.6-like limits.
func New() *Driver {
	return &Driver{
		Limits: map[uint32]int32{
			gl.GL_MAX_COMBINED_TEXTURE_IMAGE_UNITS:   16,
			gl.GL_MAX_UNIFORM_BUFFER_BINDINGS:        36,
			gl.GL_MAX_TRANSFORM_FEEDBACK_BUFFERS:     4,
			gl.GL_MAX_SHADER_STORAGE_BUFFER_BINDINGS: 8,
			gl.GL_MAX_ATOMIC_COUNTER_BUFFER_BINDINGS: 8,
			gl.GL_MAX_TEXTURE_SIZE:                   4096,
			gl.GL_MAX_VERTEX_ATTRIBS:                 16,
		},
		QueryErrors:       make(map[uint32]uint32),
		Strings:           map[uint32]string{gl.GL_VERSION: "4.6.0 gltest", gl.GL_VENDOR: "gltest"},
		CompileErrors:     make(map[string]string),
		MissingUniforms:   make(map[string]bool),
		FramebufferStatus: gl.GL_FRAMEBUFFER_COMPLETE,
		Enabled:           make(map[uint32]bool),
		DepthFn:           gl.GL_LESS,
		DepthWrite:        true,
		DepthFar:          1,
		BlendSrc:          gl.GL_ONE,
		BlendDst:          gl.GL_ZERO,
		PolygonModes:      map[uint32]uint32{gl.GL_FRONT: gl.GL_FILL, gl.GL_BACK: gl.GL_FILL},
		CullMode:          gl.GL_BACK,
		UniformValues:     make(map[int32]interface{}),
		sources:           make(map[uint32]string),
		status:            make(map[uint32]bool),
		logs:              make(map[uint32]string),
		uniforms:          make(map[uint32]map[string]int32),
	}
}

func (d *Driver) record(name string, args ...interface{}) {
	d.Calls = append(d.Calls, Call{Name: name, Args: args})
}

func (d *Driver) newName() uint32 {
	d.next++
	return d.next
}

// Count returns the number of recorded calls to the named method.
func (d *Driver) Count(name string) int {
	n := 0
	for _, c := range d.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// CallsTo returns the recorded calls to the named method.
func (d *Driver) CallsTo(name string) []Call {
	var cs []Call
	for _, c := range d.Calls {
		if c.Name == name {
			cs = append(cs, c)
		}
	}
	return cs
}

// Reset clears the call log. Mirrored state is kept.
func (d *Driver) Reset() {
	d.Calls = d.Calls[:0]
}

// Source returns the source code last given to shader s.
func (d *Driver) Source(s uint32) string {
	return d.sources[s]
}

func (d *Driver) GetError() uint32 {
	d.record("GetError")
	if len(d.errs) == 0 {
		return gl.GL_NO_ERROR
	}
	e := d.errs[0]
	d.errs = d.errs[1:]
	return e
}

func (d *Driver) GetIntegerv(pname uint32) int32 {
	d.record("GetIntegerv", pname)
	if e, ok := d.QueryErrors[pname]; ok {
		d.errs = append(d.errs, e)
		return 0
	}
	return d.Limits[pname]
}

func (d *Driver) GetString(name uint32) string {
	d.record("GetString", name)
	return d.Strings[name]
}

func (d *Driver) Enable(c uint32) {
	d.record("Enable", c)
	d.Enabled[c] = true
}

func (d *Driver) Disable(c uint32) {
	d.record("Disable", c)
	d.Enabled[c] = false
}

func (d *Driver) DepthFunc(fn uint32) {
	d.record("DepthFunc", fn)
	d.DepthFn = fn
}

func (d *Driver) DepthMask(flag bool) {
	d.record("DepthMask", flag)
	d.DepthWrite = flag
}

func (d *Driver) DepthRange(near, far float64) {
	d.record("DepthRange", near, far)
	d.DepthNear, d.DepthFar = near, far
}

func (d *Driver) Viewport(x, y, w, h int32) {
	d.record("Viewport", x, y, w, h)
	d.ViewportRect = [4]int32{x, y, w, h}
}

func (d *Driver) Scissor(x, y, w, h int32) {
	d.record("Scissor", x, y, w, h)
	d.ScissorRect = [4]int32{x, y, w, h}
}

func (d *Driver) BlendFunc(s, dst uint32) {
	d.record("BlendFunc", s, dst)
	d.BlendSrc, d.BlendDst = s, dst
}

func (d *Driver) PolygonMode(face, mode uint32) {
	d.record("PolygonMode", face, mode)
	switch face {
	case gl.GL_FRONT_AND_BACK:
		d.PolygonModes[gl.GL_FRONT] = mode
		d.PolygonModes[gl.GL_BACK] = mode
	default:
		d.PolygonModes[face] = mode
	}
}

func (d *Driver) CullFace(mode uint32) {
	d.record("CullFace", mode)
	d.CullMode = mode
}

func (d *Driver) ClearColor(r, g, b, a float32) {
	d.record("ClearColor", r, g, b, a)
	d.ClearRGBA = [4]float32{r, g, b, a}
}

func (d *Driver) Clear(mask uint32) { d.record("Clear", mask) }

func (d *Driver) ActiveTexture(t uint32)       { d.record("ActiveTexture", t) }
func (d *Driver) BindTexture(target, t uint32) { d.record("BindTexture", target, t) }

func (d *Driver) GenTexture() uint32 {
	t := d.newName()
	d.record("GenTexture", t)
	return t
}

func (d *Driver) DeleteTexture(t uint32) { d.record("DeleteTexture", t) }

func (d *Driver) TexImage2D(target uint32, level, internalFormat, w, h int32, format, xtype uint32, pixels []byte) {
	d.record("TexImage2D", target, level, internalFormat, w, h, format, xtype, len(pixels))
}

func (d *Driver) TexSubImage2D(target uint32, level, x, y, w, h int32, format, xtype uint32, pixels []byte) {
	d.record("TexSubImage2D", target, level, x, y, w, h, format, xtype, len(pixels))
}

func (d *Driver) TexParameteri(target, pname uint32, param int32) {
	d.record("TexParameteri", target, pname, param)
}

func (d *Driver) TexParameterfv(target, pname uint32, params []float32) {
	d.record("TexParameterfv", target, pname, append([]float32(nil), params...))
}

func (d *Driver) GenerateMipmap(target uint32)          { d.record("GenerateMipmap", target) }
func (d *Driver) PixelStorei(pname uint32, param int32) { d.record("PixelStorei", pname, param) }

func (d *Driver) GenBuffer() uint32 {
	b := d.newName()
	d.record("GenBuffer", b)
	return b
}

func (d *Driver) DeleteBuffer(b uint32)       { d.record("DeleteBuffer", b) }
func (d *Driver) BindBuffer(target, b uint32) { d.record("BindBuffer", target, b) }
func (d *Driver) BindBufferBase(target, index, b uint32) {
	d.record("BindBufferBase", target, index, b)
}

func (d *Driver) BufferData(target uint32, size int, data []byte, usage uint32) {
	d.record("BufferData", target, size, len(data), usage)
}

func (d *Driver) BufferSubData(target uint32, offset int, data []byte) {
	d.record("BufferSubData", target, offset, len(data))
}

func (d *Driver) GenVertexArray() uint32 {
	a := d.newName()
	d.record("GenVertexArray", a)
	return a
}

func (d *Driver) DeleteVertexArray(a uint32)       { d.record("DeleteVertexArray", a) }
func (d *Driver) BindVertexArray(a uint32)         { d.record("BindVertexArray", a) }
func (d *Driver) EnableVertexAttribArray(i uint32) { d.record("EnableVertexAttribArray", i) }
func (d *Driver) VertexAttribPointer(i uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	d.record("VertexAttribPointer", i, size, xtype, normalized, stride, offset)
}

func (d *Driver) GenFramebuffer() uint32 {
	f := d.newName()
	d.record("GenFramebuffer", f)
	return f
}

func (d *Driver) DeleteFramebuffer(f uint32)       { d.record("DeleteFramebuffer", f) }
func (d *Driver) BindFramebuffer(target, f uint32) { d.record("BindFramebuffer", target, f) }

func (d *Driver) FramebufferTexture2D(target, attachment, textarget, t uint32, level int32) {
	d.record("FramebufferTexture2D", target, attachment, textarget, t, level)
}

func (d *Driver) FramebufferRenderbuffer(target, attachment, rbTarget, rb uint32) {
	d.record("FramebufferRenderbuffer", target, attachment, rbTarget, rb)
}

func (d *Driver) CheckFramebufferStatus(target uint32) uint32 {
	d.record("CheckFramebufferStatus", target)
	return d.FramebufferStatus
}

func (d *Driver) DrawBuffer(mode uint32) { d.record("DrawBuffer", mode) }
func (d *Driver) ReadBuffer(mode uint32) { d.record("ReadBuffer", mode) }

func (d *Driver) GenRenderbuffer() uint32 {
	r := d.newName()
	d.record("GenRenderbuffer", r)
	return r
}

func (d *Driver) DeleteRenderbuffer(r uint32)       { d.record("DeleteRenderbuffer", r) }
func (d *Driver) BindRenderbuffer(target, r uint32) { d.record("BindRenderbuffer", target, r) }
func (d *Driver) RenderbufferStorage(target, internalFormat uint32, w, h int32) {
	d.record("RenderbufferStorage", target, internalFormat, w, h)
}

func (d *Driver) CreateShader(xtype uint32) uint32 {
	s := d.newName()
	d.record("CreateShader", xtype, s)
	return s
}

func (d *Driver) ShaderSource(s uint32, source string) {
	d.record("ShaderSource", s)
	d.sources[s] = source
}

func (d *Driver) CompileShader(s uint32) {
	d.record("CompileShader", s)
	d.status[s] = true
	delete(d.logs, s)
	for k, msg := range d.CompileErrors {
		if strings.Contains(d.sources[s], k) {
			d.status[s] = false
			d.logs[s] = msg
			return
		}
	}
}

func (d *Driver) GetShaderiv(s, pname uint32) int32 {
	d.record("GetShaderiv", s, pname)
	switch pname {
	case gl.GL_COMPILE_STATUS:
		if d.status[s] {
			return gl.GL_TRUE
		}
		return gl.GL_FALSE
	case gl.GL_INFO_LOG_LENGTH:
		return int32(len(d.logs[s]))
	}
	return 0
}

func (d *Driver) GetShaderInfoLog(s uint32) string {
	d.record("GetShaderInfoLog", s)
	return d.logs[s]
}

func (d *Driver) DeleteShader(s uint32) { d.record("DeleteShader", s) }

func (d *Driver) CreateProgram() uint32 {
	p := d.newName()
	d.record("CreateProgram", p)
	d.uniforms[p] = make(map[string]int32)
	return p
}

func (d *Driver) AttachShader(p, s uint32) { d.record("AttachShader", p, s) }
func (d *Driver) DetachShader(p, s uint32) { d.record("DetachShader", p, s) }

func (d *Driver) LinkProgram(p uint32) {
	d.record("LinkProgram", p)
	d.status[p] = d.LinkError == ""
	if d.LinkError != "" {
		d.logs[p] = d.LinkError
	}
}

func (d *Driver) ValidateProgram(p uint32) { d.record("ValidateProgram", p) }

func (d *Driver) GetProgramiv(p, pname uint32) int32 {
	d.record("GetProgramiv", p, pname)
	switch pname {
	case gl.GL_LINK_STATUS, gl.GL_VALIDATE_STATUS:
		if d.status[p] {
			return gl.GL_TRUE
		}
		return gl.GL_FALSE
	case gl.GL_INFO_LOG_LENGTH:
		return int32(len(d.logs[p]))
	}
	return 0
}

func (d *Driver) GetProgramInfoLog(p uint32) string {
	d.record("GetProgramInfoLog", p)
	return d.logs[p]
}

func (d *Driver) DeleteProgram(p uint32) { d.record("DeleteProgram", p) }

func (d *Driver) UseProgram(p uint32) {
	d.record("UseProgram", p)
	d.Program = p
}

// GetUniformLocation hands out locations in query order, per program.
func (d *Driver) GetUniformLocation(p uint32, name string) int32 {
	d.record("GetUniformLocation", p, name)
	if d.MissingUniforms[name] {
		return -1
	}
	m := d.uniforms[p]
	if m == nil {
		m = make(map[string]int32)
		d.uniforms[p] = m
	}
	loc, ok := m[name]
	if !ok {
		loc = int32(len(m))
		m[name] = loc
	}
	return loc
}

func (d *Driver) GetAttribLocation(p uint32, name string) int32 {
	d.record("GetAttribLocation", p, name)
	switch name {
	case "aPos", "aPosition":
		return 0
	case "aColor", "aColour", "aTexCoord":
		return 1
	case "aNormal":
		return 2
	}
	return -1
}

func (d *Driver) Uniformiv(loc int32, components int, v []int32) {
	d.record("Uniformiv", loc, components, append([]int32(nil), v...))
	d.UniformValues[loc] = append([]int32(nil), v...)
}

func (d *Driver) Uniformuiv(loc int32, components int, v []uint32) {
	d.record("Uniformuiv", loc, components, append([]uint32(nil), v...))
	d.UniformValues[loc] = append([]uint32(nil), v...)
}

func (d *Driver) Uniformfv(loc int32, components int, v []float32) {
	d.record("Uniformfv", loc, components, append([]float32(nil), v...))
	d.UniformValues[loc] = append([]float32(nil), v...)
}

func (d *Driver) Uniformdv(loc int32, components int, v []float64) {
	d.record("Uniformdv", loc, components, append([]float64(nil), v...))
	d.UniformValues[loc] = append([]float64(nil), v...)
}

func (d *Driver) UniformMatrixfv(loc int32, dim int, transpose bool, v []float32) {
	d.record("UniformMatrixfv", loc, dim, transpose, append([]float32(nil), v...))
	d.UniformValues[loc] = append([]float32(nil), v...)
}

func (d *Driver) DrawArrays(mode uint32, first, count int32) {
	d.record("DrawArrays", mode, first, count)
}

func (d *Driver) DrawElements(mode uint32, count int32, xtype uint32, offset int) {
	d.record("DrawElements", mode, count, xtype, offset)
}
