// Package shader compiles GLSL programs and binds uniform values to them.
//
// A Program resolves a fixed list of uniform names to locations once, right
// after linking. The index of a name in that list is the handle typed setters
// use from then on, so no name lookup happens at draw time.
package shader

import (
	"fmt"
	"image/color"

	"github.com/db47h/glw"
	"github.com/db47h/glw/geom"
	"github.com/db47h/glw/gl"
	"github.com/db47h/glw/state"
	"github.com/pkg/errors"
)

var (
	// ErrCompile is wrapped by the *BuildError returned for a compilation
	// failure.
	ErrCompile = errors.New("shader compilation failed")
	// ErrLink is wrapped by the *BuildError returned for a link failure.
	ErrLink = errors.New("program link failed")
	// ErrUnknownUniform is returned when setting a uniform by a name the
	// program does not declare.
	ErrUnknownUniform = errors.New("unknown uniform")
	// ErrUnsupportedComponents is returned for uniform uploads with a
	// component count outside [1, 4] or a value count that is not a multiple
	// of it.
	ErrUnsupportedComponents = errors.New("unsupported component count")
	// ErrClosed is returned when using a closed program.
	ErrClosed = errors.New("program closed")
)

// BuildError describes a failed compilation or link.
type BuildError struct {
	Stage string // "vertex", "fragment" or "link"
	Log   string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%s: %s", e.Unwrap(), e.Log)
}

func (e *BuildError) Unwrap() error {
	if e.Stage == "link" {
		return ErrLink
	}
	return ErrCompile
}

// Shader is implemented by Program and the types embedding it.
type Shader interface {
	Base() *Program
	PrepareDraw()
}

// Program is a linked vertex and fragment shader pair.
//
// Model, View and Projection are combined into Model * View * Projection and
// uploaded by PrepareDraw to the uniform at MatrixIndex, if any.
type Program struct {
	Model, View, Projection geom.Matrix4[float32]

	ctx      *glw.Context
	id       uint32
	names    []string
	uniforms []int32
	matrix   int
	err      error
	closed   bool
}

// New compiles vertexSrc and fragmentSrc, links them and resolves the given
// uniform names. matrixIndex is the index in names of the uniform receiving
// the MVP matrix in PrepareDraw, -1 for none.
//
// How compile and link failures are handled depends on the compile policy of
// c: with glw.FailFast, New returns a *BuildError; with glw.LogAndContinue,
// the failure is logged, New returns a program that may not be usable and Err
// reports the failure.
func New(c *glw.Context, vertexSrc, fragmentSrc string, matrixIndex int, names ...string) (*Program, error) {
	if matrixIndex >= len(names) {
		return nil, errors.Errorf("shader: matrix index %d out of range for %d uniforms", matrixIndex, len(names))
	}
	p := &Program{
		Model:      geom.Identity4[float32](),
		View:       geom.Identity4[float32](),
		Projection: geom.Identity4[float32](),
		ctx:        c,
		names:      append([]string(nil), names...),
		matrix:     matrixIndex,
	}
	if err := p.build(vertexSrc, fragmentSrc); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Program) build(vertexSrc, fragmentSrc string) error {
	d := p.ctx.GL()
	log := p.ctx.Logger()
	failFast := p.ctx.CompilePolicy() == glw.FailFast

	// under glw.LogAndContinue, failures are logged once the program exists
	var failures []*BuildError
	fail := func(stage, msg string) error {
		err := &BuildError{Stage: stage, Log: msg}
		failures = append(failures, err)
		return err
	}

	vs, err := gl.CompileShader(d, gl.GL_VERTEX_SHADER, vertexSrc)
	if err != nil {
		err = fail("vertex", err.Error())
		if failFast {
			d.DeleteShader(vs)
			return err
		}
	}
	fs, err := gl.CompileShader(d, gl.GL_FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		err = fail("fragment", err.Error())
		if failFast {
			d.DeleteShader(vs)
			d.DeleteShader(fs)
			return err
		}
	}

	id, err := gl.LinkProgram(d, vs, fs)
	if err != nil {
		err = fail("link", err.Error())
	} else {
		d.ValidateProgram(id)
	}
	d.DetachShader(id, vs)
	d.DetachShader(id, fs)
	d.DeleteShader(vs)
	d.DeleteShader(fs)
	if err != nil && failFast {
		d.DeleteProgram(id)
		return err
	}

	p.id = id
	p.err = nil
	for _, f := range failures {
		log.Error("shader build failed", "stage", f.Stage, "program", id, "log", f.Log)
	}
	if len(failures) > 0 {
		p.err = failures[0]
	}
	p.resolve()
	log.Debug("shader program built", "program", id, "uniforms", len(p.names))
	return nil
}

// resolve looks up the location of every uniform name, in order.
func (p *Program) resolve() {
	d := p.ctx.GL()
	p.uniforms = make([]int32, len(p.names))
	for i, n := range p.names {
		p.uniforms[i] = d.GetUniformLocation(p.id, n)
		if p.uniforms[i] < 0 {
			p.ctx.Logger().Debug("uniform not active", "program", p.id, "name", n)
		}
	}
}

// Reload rebuilds the program from new sources, keeping its uniform names
// and matrices. On success, the previous driver program is deleted.
func (p *Program) Reload(vertexSrc, fragmentSrc string) error {
	if p.closed {
		return ErrClosed
	}
	old := p.id
	if err := p.build(vertexSrc, fragmentSrc); err != nil {
		return err
	}
	state.DeleteProgram(p.ctx, old)
	return nil
}

func (p *Program) Base() *Program { return p }

// ID returns the driver name of the program.
func (p *Program) ID() uint32            { return p.id }
func (p *Program) Context() *glw.Context { return p.ctx }
func (p *Program) MatrixIndex() int      { return p.matrix }

// Err returns the build failure that was logged and ignored under the
// glw.LogAndContinue policy, or nil.
func (p *Program) Err() error { return p.err }

// Names returns the uniform names, in index order.
func (p *Program) Names() []string { return append([]string(nil), p.names...) }

// Uniforms returns the uniform locations, in index order. A location of -1
// marks a name that is not an active uniform; setting it is a no-op.
func (p *Program) Uniforms() []int32 { return append([]int32(nil), p.uniforms...) }

// Uniform returns the location of the uniform at index i.
func (p *Program) Uniform(i int) int32 {
	if i < 0 || i >= len(p.uniforms) {
		panic(errors.Errorf("shader: uniform index %d out of range [0, %d)", i, len(p.uniforms)))
	}
	return p.uniforms[i]
}

// AttribLocation returns the location of the named vertex attribute.
func (p *Program) AttribLocation(name string) (uint32, error) {
	loc := p.ctx.GL().GetAttribLocation(p.id, name)
	if loc < 0 {
		return 0, errors.Errorf("shader: attribute %s not found", name)
	}
	return uint32(loc), nil
}

// Use makes p the current program.
func (p *Program) Use() { state.UseProgram(p.ctx, p.id) }

// MVP returns Model * View * Projection.
func (p *Program) MVP() geom.Matrix4[float32] {
	return p.Model.Mul(p.View).Mul(p.Projection)
}

// PrepareDraw makes p current and uploads the MVP matrix when p has a matrix
// uniform.
func (p *Program) PrepareDraw() {
	p.Use()
	if p.matrix >= 0 {
		p.SetMatrix4(p.matrix, p.MVP())
	}
}

func (p *Program) SetInt(i int, v ...int32)     { p.must(SetIndex(p, i, v...)) }
func (p *Program) SetUint(i int, v ...uint32)   { p.must(SetIndex(p, i, v...)) }
func (p *Program) SetFloat(i int, v ...float32) { p.must(SetIndex(p, i, v...)) }

func (p *Program) SetBool(i int, v bool) {
	var n int32
	if v {
		n = 1
	}
	p.SetInt(i, n)
}

func (p *Program) SetVec2(i int, v geom.Vector2F) { p.SetFloat(i, v.X, v.Y) }
func (p *Program) SetVec3(i int, v geom.Vector3F) { p.SetFloat(i, v.X, v.Y, v.Z) }
func (p *Program) SetVec4(i int, v geom.Vector4F) { p.SetFloat(i, v.X, v.Y, v.Z, v.W) }

// SetColor uploads c as a vec4 of premultiplied components. A nil color is
// opaque white.
func (p *Program) SetColor(i int, c color.Color) {
	gc := gl.ToColor(c)
	p.SetFloat(i, gc.R, gc.G, gc.B, gc.A)
}

func (p *Program) SetMatrix3(i int, m geom.Matrix3[float32]) { p.setMatrix(i, 3, m.Float32s()) }
func (p *Program) SetMatrix4(i int, m geom.Matrix4[float32]) { p.setMatrix(i, 4, m.Float32s()) }

func (p *Program) setMatrix(i, dim int, v []float32) {
	loc := p.Uniform(i)
	if loc < 0 || p.closed {
		return
	}
	p.Use()
	// row-major storage of row-vector transforms has the layout GL expects
	// for column-vector ones.
	p.ctx.GL().UniformMatrixfv(loc, dim, false, v)
}

// must panics on errors the typed setters can only get from a programming
// error: an invalid index or value count.
func (p *Program) must(err error) {
	if err != nil && !errors.Is(err, ErrClosed) {
		panic(err)
	}
}

// Close deletes the driver program. It is safe to call Close more than once.
func (p *Program) Close() {
	if p.closed {
		return
	}
	p.closed = true
	state.DeleteProgram(p.ctx, p.id)
}
