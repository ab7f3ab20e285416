package batch

import (
	"image"
	"image/color"
	"testing"

	"github.com/chewxy/math32"
	"github.com/db47h/glw"
	"github.com/db47h/glw/gl"
	"github.com/db47h/glw/gl/gltest"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sprite struct {
	id     uint32
	origin image.Point
	size   image.Point
	binds  int
}

func (s *sprite) Origin() image.Point   { return s.origin }
func (s *sprite) Size() image.Point     { return s.size }
func (s *sprite) UV() [4]float32        { return [4]float32{0, 1, 1, 0} }
func (s *sprite) NativeID() uint32      { return s.id }
func (s *sprite) OnBind(c *glw.Context) { s.binds++ }

func newBatch(t *testing.T, opts ...Option) (*Batch, *glw.Context, *gltest.Driver) {
	t.Helper()
	d := gltest.New()
	c, err := glw.New(d, glw.Config{Width: 800, Height: 600, CompilePolicy: glw.FailFast})
	require.NoError(t, err)
	b, err := New(c, opts...)
	require.NoError(t, err)
	d.Reset()
	return b, c, d
}

func TestNew(t *testing.T) {
	d := gltest.New()
	c, err := glw.New(d, glw.Config{Width: 800, Height: 600, CompilePolicy: glw.FailFast})
	require.NoError(t, err)
	b, err := New(c, Size(4))
	require.NoError(t, err)
	bd := d.CallsTo("BufferData")
	require.Len(t, bd, 2)
	assert.Equal(t, []interface{}{uint32(gl.GL_ARRAY_BUFFER), 4 * floatsPerQuad * 4, 0, uint32(gl.GL_DYNAMIC_DRAW)}, bd[0].Args)
	assert.Equal(t, []interface{}{uint32(gl.GL_ELEMENT_ARRAY_BUFFER), 4 * indicesPerQuad * 4, 4 * indicesPerQuad * 4, uint32(gl.GL_STATIC_DRAW)}, bd[1].Args)
	assert.Equal(t, []interface{}{uint32(1), int32(4), uint32(gl.GL_FLOAT), false, int32(32), 16},
		d.CallsTo("VertexAttribPointer")[1].Args)

	// the sprite shader is shared
	b2, err := New(c)
	require.NoError(t, err)
	assert.Same(t, b.shader, b2.shader)
	assert.Equal(t, 1, d.Count("CreateProgram"))

	_, err = New(c, Size(0))
	assert.True(t, errors.Is(err, glw.ErrInvalidSize))
}

func TestDrawVertices(t *testing.T) {
	b, _, _ := newBatch(t)
	s := &sprite{id: 1, size: image.Pt(10, 20)}

	b.Draw(s, 5, 7, 1, 1, 0, nil)
	assert.Equal(t, []float32{
		5, 27, 0, 1, 1, 1, 1, 1,
		15, 27, 1, 1, 1, 1, 1, 1,
		5, 7, 0, 0, 1, 1, 1, 1,
		15, 7, 1, 0, 1, 1, 1, 1,
	}, b.vertices)
	assert.Equal(t, 1, b.Pending())

	// scaling happens around the origin of the drawable
	b.vertices = b.vertices[:0]
	s.origin = image.Pt(5, 10)
	b.Draw(s, 5, 7, 2, 2, 0, nil)
	v := b.vertices
	assert.Equal(t, []float32{-5, -13}, v[16:18]) // bottom left
	assert.Equal(t, []float32{15, 27}, v[8:10])   // top right

	b.vertices = b.vertices[:0]
	s.origin = image.Point{}
	b.Draw(s, 0, 0, 1, 1, math32.Pi/2, color.NRGBA{R: 255, A: 128})
	v = b.vertices
	// bottom right: (10, 0) rotated by a quarter turn
	assert.InDelta(t, 0, v[24], 1e-5)
	assert.InDelta(t, 10, v[25], 1e-5)
	// premultiplied color
	assert.InDelta(t, 128.0/255, v[28], 1e-3)
	assert.InDelta(t, 0, v[29], 1e-6)
	assert.InDelta(t, 128.0/255, v[31], 1e-3)
}

func TestFlushOnTextureChange(t *testing.T) {
	b, _, d := newBatch(t)
	a, o := &sprite{id: 1, size: image.Pt(8, 8)}, &sprite{id: 2, size: image.Pt(8, 8)}

	b.Begin()
	assert.True(t, d.Enabled[gl.GL_BLEND])
	assert.Equal(t, uint32(gl.GL_ONE), d.BlendSrc)
	assert.Equal(t, uint32(gl.GL_ONE_MINUS_SRC_ALPHA), d.BlendDst)
	for i := 0; i < 3; i++ {
		b.Draw(a, float32(i), 0, 1, 1, 0, nil)
	}
	assert.Zero(t, d.Count("DrawElements"))
	b.Draw(o, 0, 0, 1, 1, 0, nil)
	require.Equal(t, 1, d.Count("DrawElements"))
	assert.Equal(t, []interface{}{uint32(gl.GL_TRIANGLES), int32(18), uint32(gl.GL_UNSIGNED_INT), 0},
		d.CallsTo("DrawElements")[0].Args)
	assert.Equal(t, []interface{}{uint32(gl.GL_ARRAY_BUFFER), 0, 3 * floatsPerQuad * 4},
		d.CallsTo("BufferSubData")[0].Args)
	assert.Equal(t, []interface{}{uint32(gl.GL_TEXTURE_2D), uint32(1)}, d.CallsTo("BindTexture")[0].Args)
	assert.Equal(t, 1, a.binds)

	b.End()
	require.Equal(t, 2, d.Count("DrawElements"))
	assert.Equal(t, int32(6), d.CallsTo("DrawElements")[1].Args[1])
	assert.Equal(t, 1, o.binds)
	assert.False(t, d.Enabled[gl.GL_BLEND])
	assert.Equal(t, uint32(gl.GL_ZERO), d.BlendDst)

	// nothing pending
	b.Flush()
	assert.Equal(t, 2, d.Count("DrawElements"))
}

func TestFlushWhenFull(t *testing.T) {
	b, _, d := newBatch(t, Size(2))
	s := &sprite{id: 1, size: image.Pt(1, 1)}
	b.Begin()
	for i := 0; i < 5; i++ {
		b.Draw(s, 0, 0, 1, 1, 0, nil)
	}
	assert.Equal(t, 2, d.Count("DrawElements"))
	assert.Equal(t, 1, b.Pending())
	assert.Panics(t, func() { b.Begin() })
	b.End()
	assert.Equal(t, 3, d.Count("DrawElements"))
	assert.Zero(t, b.Pending())
}

func TestBeginTwice(t *testing.T) {
	b, _, _ := newBatch(t)
	b.Begin()
	assert.Panics(t, func() { b.Begin() })
	b.End()
	assert.NotPanics(t, func() { b.Begin() })
}

func TestSetView(t *testing.T) {
	b, c, d := newBatch(t)
	v := c.Screen().View()
	require.NoError(t, b.SetView(v))
	assert.Equal(t, [4]int32{0, 0, 800, 600}, d.ViewportRect)
	assert.Equal(t, v.ProjectionMatrix(), b.shader.Projection)

	// a pending quad is drawn with the previous projection
	s := &sprite{id: 1, size: image.Pt(1, 1)}
	b.Draw(s, 0, 0, 1, 1, 0, nil)
	// GL window coordinates start at the bottom of the framebuffer
	top := &glw.View{Fb: c.Screen(), Rect: image.Rect(0, 0, 400, 300), Scale: 1}
	require.NoError(t, b.SetView(top))
	assert.Equal(t, 1, d.Count("DrawElements"))
	assert.Equal(t, [4]int32{0, 300, 400, 300}, d.ViewportRect)

	top.Rect = image.Rect(0, 0, 0, 300)
	assert.True(t, errors.Is(b.SetView(top), glw.ErrInvalidSize))
}

func TestDelete(t *testing.T) {
	b, _, d := newBatch(t)
	b.Delete()
	b.Delete()
	assert.Equal(t, 2, d.Count("DeleteBuffer"))
	assert.Equal(t, 1, d.Count("DeleteVertexArray"))
}
