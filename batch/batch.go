// Package batch draws textured quads in as few draw calls as possible.
//
// Consecutive quads sharing a texture are accumulated in a vertex buffer and
// sent to the driver in a single DrawElements call when the texture changes,
// the buffer is full or Flush is called.
package batch

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/db47h/glw"
	"github.com/db47h/glw/geom"
	"github.com/db47h/glw/gl"
	"github.com/db47h/glw/shader"
	"github.com/db47h/glw/state"
	"github.com/pkg/errors"
)

const (
	floatsPerVertex = 8
	floatsPerQuad   = floatsPerVertex * 4
	indicesPerQuad  = 6
	// DefaultSize is the default capacity of a batch, in quads.
	DefaultSize = 10000
)

// Drawer is implemented by types that can draw drawables. Batch is the
// reference implementation.
type Drawer interface {
	Draw(d glw.Drawable, x, y, scaleX, scaleY, rot float32, c color.Color)
}

// Option configures a Batch.
type Option func(*Batch)

// Size sets the number of quads a batch holds before it flushes.
func Size(quads int) Option {
	return func(b *Batch) {
		b.size = quads
	}
}

// A Batch draws sprites in batches.
type Batch struct {
	ctx      *glw.Context
	shader   *shader.Sprite
	rs       *state.RenderState
	prevRS   *state.RenderState
	vp       *state.Viewport
	vao      uint32
	vbo      uint32
	ebo      uint32
	vertices []float32
	texture  glw.Drawable
	size     int
	index    int
}

var _ Drawer = (*Batch)(nil)

// New creates a batch drawing on c. Colors are expected premultiplied, as
// produced by gl.ToColor.
func New(c *glw.Context, opts ...Option) (*Batch, error) {
	b := &Batch{ctx: c, size: DefaultSize}
	for _, o := range opts {
		o(b)
	}
	if b.size <= 0 {
		return nil, glw.SizeError("batch size", b.size)
	}
	s, err := shader.SpriteFor(c)
	if err != nil {
		return nil, err
	}
	b.shader = s
	b.rs = state.NewRenderState()
	b.rs.SetBlending(true)
	b.rs.SetBlendFunc(gl.GL_ONE, gl.GL_ONE_MINUS_SRC_ALPHA)
	b.vertices = make([]float32, 0, b.size*floatsPerQuad)

	indices := make([]uint32, b.size*indicesPerQuad)
	for i, j := 0, uint32(0); i < len(indices); i, j = i+indicesPerQuad, j+4 {
		indices[i+0] = j + 0
		indices[i+1] = j + 1
		indices[i+2] = j + 2
		indices[i+3] = j + 2
		indices[i+4] = j + 1
		indices[i+5] = j + 3
	}

	d := c.GL()
	b.vao = d.GenVertexArray()
	state.BindVertexArray(c, b.vao)
	b.vbo = d.GenBuffer()
	state.BindBuffer(c, gl.GL_ARRAY_BUFFER, b.vbo)
	d.BufferData(gl.GL_ARRAY_BUFFER, b.size*floatsPerQuad*4, nil, gl.GL_DYNAMIC_DRAW)
	d.EnableVertexAttribArray(0)
	d.VertexAttribPointer(0, 4, gl.GL_FLOAT, false, floatsPerVertex*4, 0)
	d.EnableVertexAttribArray(1)
	d.VertexAttribPointer(1, 4, gl.GL_FLOAT, false, floatsPerVertex*4, 4*4)

	b.ebo = d.GenBuffer()
	state.BindBuffer(c, gl.GL_ELEMENT_ARRAY_BUFFER, b.ebo)
	d.BufferData(gl.GL_ELEMENT_ARRAY_BUFFER, gl.Sizeof(indices), gl.Bytes(indices), gl.GL_STATIC_DRAW)

	if err := glw.CheckError(d, "batch: create buffers"); err != nil {
		b.Delete()
		return nil, err
	}
	c.Logger().Debug("batch created", "quads", b.size)
	return b, nil
}

// Begin enables premultiplied alpha blending until End is called.
func (b *Batch) Begin() {
	if b.index != 0 {
		panic("call Flush() before Begin()")
	}
	if b.prevRS != nil {
		panic(errors.New("batch: Begin called twice"))
	}
	b.prevRS = state.RenderStateOf(b.ctx)
	state.SetRenderState(b.ctx, b.rs)
}

// SetProjectionMatrix flushes pending quads and sets the projection used for
// the next ones.
func (b *Batch) SetProjectionMatrix(projection geom.Matrix4[float32]) {
	if b.index != 0 {
		b.Flush()
	}
	b.shader.Projection = projection
}

// SetView wraps SetProjectionMatrix(v.ProjectionMatrix()) and a viewport
// change to v.GLRect() into a single call.
func (b *Batch) SetView(v *glw.View) error {
	r := v.GLRect()
	if b.vp == nil {
		vp, err := state.NewViewport(r.X, r.Y, r.Width, r.Height)
		if err != nil {
			return err
		}
		b.vp = vp
	} else if err := b.vp.SetView(r); err != nil {
		return err
	}
	b.SetProjectionMatrix(v.ProjectionMatrix())
	state.SetViewport(b.ctx, b.vp)
	return nil
}

// Draw adds d to the batch. The quad is scaled by (scaleX, scaleY) and
// rotated by rot radians around the origin of d, then translated to (x, y).
// A nil color draws d untinted.
func (b *Batch) Draw(d glw.Drawable, x, y, scaleX, scaleY, rot float32, c color.Color) {
	if b.index >= b.size {
		b.Flush()
	}

	if b.index > 0 {
		if b.texture.NativeID() != d.NativeID() {
			b.Flush()
			b.texture = d
		}
	} else {
		b.texture = d
	}

	gc := gl.ToColor(c)
	rf, gf, bf, af := gc.R, gc.G, gc.B, gc.A

	// 2D affine transform, unrolled.
	var m0, m1, m3, m4, m6, m7 float32 = 1, 0, 0, 1, x, y
	if rot != 0 {
		sin, cos := math32.Sincos(rot)
		m0, m1, m3, m4 = cos, sin, -sin, cos
	}

	o := d.Origin()
	tx, ty := -float32(o.X)*scaleX, -float32(o.Y)*scaleY
	m6, m7 = m0*tx+m3*ty+m6, m1*tx+m4*ty+m7

	sz := d.Size()
	sX, sY := scaleX*float32(sz.X), scaleY*float32(sz.Y)
	m0 *= sX
	m1 *= sX
	m3 *= sY
	m4 *= sY

	uv := d.UV()
	b.vertices = append(b.vertices,
		// top left, in GL orientation
		m3+m6, m4+m7, uv[0], uv[1], rf, gf, bf, af,
		// top right
		m0+m3+m6, m1+m4+m7, uv[2], uv[1], rf, gf, bf, af,
		// bottom left
		m6, m7, uv[0], uv[3], rf, gf, bf, af,
		// bottom right
		m0+m6, m1+m7, uv[2], uv[3], rf, gf, bf, af,
	)
	b.index++
}

// Pending returns the number of quads waiting for the next Flush.
func (b *Batch) Pending() int { return b.index }

// Flush draws pending quads.
func (b *Batch) Flush() {
	if b.index == 0 {
		return
	}
	c := b.ctx
	b.shader.PrepareDraw()
	state.BindTexture(c, 0, gl.GL_TEXTURE_2D, b.texture.NativeID())
	if binder, ok := b.texture.(glw.Binder); ok {
		binder.OnBind(c)
	}
	state.BindVertexArray(c, b.vao)
	state.BindBuffer(c, gl.GL_ARRAY_BUFFER, b.vbo)
	d := c.GL()
	d.BufferSubData(gl.GL_ARRAY_BUFFER, 0, gl.Bytes(b.vertices))
	d.DrawElements(gl.GL_TRIANGLES, int32(b.index*indicesPerQuad), gl.GL_UNSIGNED_INT, 0)
	b.index = 0
	b.vertices = b.vertices[:0]
}

// End flushes pending quads and restores the render state active before
// Begin.
func (b *Batch) End() {
	b.Flush()
	if b.prevRS != nil {
		state.SetRenderState(b.ctx, b.prevRS)
		b.prevRS = nil
	}
}

// Delete releases the buffers of the batch. The shared Sprite shader is kept.
func (b *Batch) Delete() {
	if b.vao == 0 {
		return
	}
	state.DeleteVertexArray(b.ctx, b.vao)
	state.DeleteBuffer(b.ctx, b.vbo)
	state.DeleteBuffer(b.ctx, b.ebo)
	b.vao, b.vbo, b.ebo = 0, 0, 0
}
