package state_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/db47h/glw"
	"github.com/db47h/glw/geom"
	"github.com/db47h/glw/gl"
	"github.com/db47h/glw/gl/gltest"
	"github.com/db47h/glw/state"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(t *testing.T) (*glw.Context, *gltest.Driver) {
	t.Helper()
	d := gltest.New()
	c, err := glw.New(d, glw.Config{Width: 800, Height: 600})
	require.NoError(t, err)
	d.Reset()
	return c, d
}

func TestDepthWriteThrough(t *testing.T) {
	c, d := newContext(t)
	ds := state.NewDepthState()
	state.SetDepthState(c, ds)
	require.True(t, ds.Current())
	assert.Same(t, c, ds.Context())
	d.Reset()

	ds.SetTesting(true)
	assert.True(t, ds.Testing())
	assert.True(t, d.Enabled[gl.GL_DEPTH_TEST])

	ds.SetFunc(gl.GL_LEQUAL)
	assert.EqualValues(t, gl.GL_LEQUAL, ds.Func())
	assert.EqualValues(t, gl.GL_LEQUAL, d.DepthFn)

	ds.SetRange(0.25, 0.75)
	near, far := ds.Range()
	assert.Equal(t, 0.25, near)
	assert.Equal(t, 0.75, far)
	assert.Equal(t, 0.75, d.DepthFar)

	ds.SetMask(false)
	assert.False(t, ds.Mask())
	assert.False(t, d.DepthWrite)

	assert.Len(t, d.Calls, 4)

	// unchanged values do not reach the driver
	ds.SetTesting(true)
	ds.SetFunc(gl.GL_LEQUAL)
	assert.Len(t, d.Calls, 4)
}

func TestDepthDeferred(t *testing.T) {
	c, d := newContext(t)
	state.SetDepthState(c, state.NewDepthState())

	staged := state.NewDepthState()
	d.Reset()
	staged.SetTesting(true)
	staged.SetFunc(gl.GL_GREATER)
	staged.SetRange(0.1, 0.9)
	staged.SetMask(false)
	assert.Empty(t, d.Calls)
	assert.False(t, staged.Current())
	assert.True(t, staged.Testing())
	assert.EqualValues(t, gl.GL_GREATER, staged.Func())

	state.SetDepthState(c, staged)
	assert.True(t, staged.Current())
	assert.Same(t, staged, state.DepthStateOf(c))
	assert.True(t, d.Enabled[gl.GL_DEPTH_TEST])
	assert.EqualValues(t, gl.GL_GREATER, d.DepthFn)
	assert.Equal(t, 0.1, d.DepthNear)
	assert.Equal(t, 0.9, d.DepthFar)
	assert.False(t, d.DepthWrite)
	assert.Len(t, d.Calls, 4)
}

func TestDepthSwapOnlyWritesDifferences(t *testing.T) {
	c, d := newContext(t)
	a := state.NewDepthState()
	state.SetDepthState(c, a)
	b := a.Clone()
	b.SetFunc(gl.GL_ALWAYS)
	d.Reset()

	state.SetDepthState(c, b)
	assert.False(t, a.Current())
	assert.Equal(t, []gltest.Call{{Name: "DepthFunc", Args: []interface{}{uint32(gl.GL_ALWAYS)}}}, d.Calls)

	// setters on a stale façade are cached only
	d.Reset()
	a.SetTesting(true)
	assert.Empty(t, d.Calls)

	// assigning the current façade again is a no-op
	state.SetDepthState(c, b)
	assert.Empty(t, d.Calls)
}

func TestDepthBackFromOtherContext(t *testing.T) {
	c1, d1 := newContext(t)
	c2, d2 := newContext(t)
	ds := state.NewDepthState()
	state.SetDepthState(c1, ds)
	state.SetDepthState(c2, ds)
	assert.Same(t, c2, ds.Context())
	assert.Same(t, ds, state.DepthStateOf(c1))

	d1.Reset()
	d2.Reset()
	ds.SetFunc(gl.GL_GREATER)
	assert.Empty(t, d1.Calls)
	assert.Len(t, d2.Calls, 1)

	// c1 missed the change: everything is written again
	state.SetDepthState(c1, ds)
	assert.True(t, ds.Current())
	assert.Same(t, c1, ds.Context())
	assert.EqualValues(t, gl.GL_GREATER, d1.DepthFn)
	assert.Len(t, d1.Calls, 4)

	d1.Reset()
	state.SetDepthState(c1, ds)
	assert.Empty(t, d1.Calls)
}

func TestDepthLocked(t *testing.T) {
	c, d := newContext(t)
	def := state.DefaultDepth
	assert.True(t, def.Locked())

	def.SetTesting(true)
	def.SetFunc(gl.GL_NEVER)
	def.SetRange(0.5, 0.6)
	def.SetMask(false)
	assert.False(t, def.Testing())
	assert.EqualValues(t, gl.GL_LESS, def.Func())
	near, far := def.Range()
	assert.Zero(t, near)
	assert.Equal(t, 1.0, far)
	assert.True(t, def.Mask())
	assert.Empty(t, d.Calls)

	state.SetDepthState(c, def)
	assert.False(t, def.Current(), "locked façades never report being current")
	assert.Same(t, def, state.DepthStateOf(c))
	assert.Same(t, glw.None, def.Context())

	cl := def.Clone()
	assert.False(t, cl.Locked())
	cl.SetTesting(true)
	assert.True(t, cl.Testing())
}

func TestDepthStateOfDefault(t *testing.T) {
	c, _ := newContext(t)
	assert.Same(t, state.DefaultDepth, state.DepthStateOf(c))
	assert.Same(t, state.DefaultRender, state.RenderStateOf(c))
}

func TestViewportResize(t *testing.T) {
	v, err := state.NewViewport(0, 0, 800, 600)
	require.NoError(t, err)
	require.NoError(t, v.SetWidth(400))
	assert.Equal(t, geom.Rect[int32](0, 0, 400, 600), v.View())

	_, err = state.NewViewport(0, 0, 0, 600)
	assert.True(t, errors.Is(err, glw.ErrInvalidSize))
}

func TestViewportWriteThrough(t *testing.T) {
	c, d := newContext(t)
	v, err := state.NewViewport(10, 20, 300, 200)
	require.NoError(t, err)
	state.SetViewport(c, v)
	assert.Equal(t, [4]int32{10, 20, 300, 200}, d.ViewportRect)

	require.NoError(t, v.SetHeight(100))
	assert.EqualValues(t, 100, v.Height())
	assert.Equal(t, [4]int32{10, 20, 300, 100}, d.ViewportRect)

	v.SetPosition(0, 0)
	assert.Equal(t, [4]int32{0, 0, 300, 100}, d.ViewportRect)

	require.NoError(t, v.SetView(geom.Rect[int32](1, 2, 3, 4)))
	assert.Equal(t, [4]int32{1, 2, 3, 4}, d.ViewportRect)
	assert.EqualValues(t, 1, v.X())
	assert.EqualValues(t, 2, v.Y())
	assert.EqualValues(t, 3, v.Width())
}

func TestViewportInvalidSize(t *testing.T) {
	c, d := newContext(t)
	v, err := state.NewViewport(0, 0, 800, 600)
	require.NoError(t, err)
	state.SetViewport(c, v)
	d.Reset()

	for _, err := range []error{
		v.SetWidth(0),
		v.SetHeight(-1),
		v.SetView(geom.Rect[int32](0, 0, 10, 0)),
	} {
		assert.True(t, errors.Is(err, glw.ErrInvalidSize), "%v", err)
	}
	assert.Equal(t, geom.Rect[int32](0, 0, 800, 600), v.View())
	assert.Empty(t, d.Calls)
}

func TestViewportLocked(t *testing.T) {
	c, d := newContext(t)
	v := state.DefaultViewport(c)
	assert.Equal(t, geom.Rect[int32](0, 0, 800, 600), v.View())
	assert.True(t, v.Locked())
	assert.Equal(t, v.View(), state.ViewportOf(c).View())

	assert.NoError(t, v.SetWidth(-5), "locked setters are no-ops, even for invalid values")
	assert.NoError(t, v.SetHeight(10))
	v.SetPosition(4, 4)
	assert.Equal(t, geom.Rect[int32](0, 0, 800, 600), v.View())
	assert.Empty(t, d.Calls)
}

func TestScissor(t *testing.T) {
	c, d := newContext(t)
	s, err := state.NewScissor(5, 5, 50, 50)
	require.NoError(t, err)
	assert.True(t, s.Testing())

	require.NoError(t, s.SetWidth(60))
	assert.Empty(t, d.Calls)

	state.SetScissor(c, s)
	assert.True(t, d.Enabled[gl.GL_SCISSOR_TEST])
	assert.Equal(t, [4]int32{5, 5, 60, 50}, d.ScissorRect)

	s.SetTesting(false)
	assert.False(t, d.Enabled[gl.GL_SCISSOR_TEST])
	require.NoError(t, s.SetBox(geom.Rect[int32](0, 0, 8, 8)))
	assert.Equal(t, [4]int32{0, 0, 8, 8}, d.ScissorRect)
	assert.Error(t, s.SetHeight(0))
	assert.Equal(t, geom.Rect[int32](0, 0, 8, 8), s.Box())

	def := state.DefaultScissor(c)
	assert.False(t, def.Testing())
	def.SetTesting(true)
	assert.False(t, def.Testing())

	state.SetScissor(c, def)
	assert.False(t, s.Current())
	assert.Equal(t, [4]int32{0, 0, 800, 600}, d.ScissorRect)

	// a locked default is settled once attached
	d.Reset()
	state.SetScissor(c, def)
	assert.Empty(t, d.Calls)

	c2, d2 := newContext(t)
	state.SetScissor(c, s)
	state.SetScissor(c2, s)
	require.NoError(t, s.SetBox(geom.Rect[int32](1, 1, 4, 4)))
	assert.Equal(t, [4]int32{1, 1, 4, 4}, d2.ScissorRect)
	state.SetScissor(c, s)
	assert.Equal(t, [4]int32{1, 1, 4, 4}, d.ScissorRect)
}

func TestRenderState(t *testing.T) {
	c, d := newContext(t)
	r := state.NewRenderState()
	r.SetBlending(true)
	r.SetBlendFunc(gl.GL_SRC_ALPHA, gl.GL_ONE_MINUS_SRC_ALPHA)
	assert.Empty(t, d.Calls)

	state.SetRenderState(c, r)
	assert.True(t, d.Enabled[gl.GL_BLEND])
	assert.EqualValues(t, gl.GL_SRC_ALPHA, d.BlendSrc)
	assert.EqualValues(t, gl.GL_ONE_MINUS_SRC_ALPHA, d.BlendDst)
	assert.False(t, d.Enabled[gl.GL_CULL_FACE])
	d.Reset()

	r.SetCulling(true)
	r.SetCullFace(gl.GL_FRONT)
	r.SetPolygonMode(gl.GL_LINE)
	r.SetClearColor(color.NRGBA{R: 255, A: 255})
	assert.True(t, d.Enabled[gl.GL_CULL_FACE])
	assert.EqualValues(t, gl.GL_FRONT, d.CullMode)
	assert.EqualValues(t, gl.GL_LINE, d.PolygonModes[gl.GL_FRONT])
	assert.EqualValues(t, gl.GL_LINE, d.PolygonModes[gl.GL_BACK])
	assert.Equal(t, [4]float32{1, 0, 0, 1}, d.ClearRGBA)
	assert.Equal(t, gl.Color{R: 1, A: 1}, r.ClearColor())
	assert.Len(t, d.Calls, 4)

	src, dst := r.BlendFunc()
	assert.EqualValues(t, gl.GL_SRC_ALPHA, src)
	assert.EqualValues(t, gl.GL_ONE_MINUS_SRC_ALPHA, dst)
	assert.True(t, r.Culling())
	assert.True(t, r.Blending())
	assert.EqualValues(t, gl.GL_FRONT, r.CullFace())
	assert.EqualValues(t, gl.GL_LINE, r.PolygonMode())

	d.Reset()
	state.DefaultRender.SetBlending(false)
	assert.True(t, r.Blending())
	assert.Empty(t, d.Calls)
}

func TestSync(t *testing.T) {
	c, d := newContext(t)
	ds := state.NewDepthState()
	ds.SetTesting(true)
	state.SetDepthState(c, ds)

	// something outside the registry messes with the driver
	d.Disable(gl.GL_DEPTH_TEST)
	d.Viewport(0, 0, 1, 1)
	d.Reset()

	state.Sync(c)
	assert.True(t, d.Enabled[gl.GL_DEPTH_TEST])
	assert.Equal(t, [4]int32{0, 0, 800, 600}, d.ViewportRect)
	assert.Equal(t, 1, d.Count("Viewport"))
	assert.Equal(t, 1, d.Count("DepthFunc"))
	assert.Equal(t, 1, d.Count("BlendFunc"))
	assert.Equal(t, 1, d.Count("Scissor"))
}

func TestBindElision(t *testing.T) {
	c, d := newContext(t)

	state.BindTexture(c, 2, gl.GL_TEXTURE_2D, 5)
	state.BindTexture(c, 2, gl.GL_TEXTURE_2D, 5)
	assert.Equal(t, 1, d.Count("BindTexture"))
	assert.Equal(t, []gltest.Call{{Name: "ActiveTexture", Args: []interface{}{uint32(gl.GL_TEXTURE0 + 2)}}}, d.CallsTo("ActiveTexture"))
	state.ActiveTexture(c, 2)
	assert.Equal(t, 1, d.Count("ActiveTexture"))

	state.BindBuffer(c, gl.GL_ARRAY_BUFFER, 3)
	state.BindBuffer(c, gl.GL_ARRAY_BUFFER, 3)
	assert.Equal(t, 1, d.Count("BindBuffer"))

	state.BindBufferBase(c, gl.GL_UNIFORM_BUFFER, 1, 4)
	state.BindBufferBase(c, gl.GL_UNIFORM_BUFFER, 1, 4)
	assert.Equal(t, 1, d.Count("BindBufferBase"))
	state.BindBuffer(c, gl.GL_UNIFORM_BUFFER, 4)
	assert.Equal(t, 1, d.Count("BindBuffer"), "BindBufferBase binds the generic target too")

	state.UseProgram(c, 8)
	state.UseProgram(c, 8)
	assert.Equal(t, 1, d.Count("UseProgram"))

	state.BindBuffer(c, gl.GL_ELEMENT_ARRAY_BUFFER, 0)
	assert.Equal(t, 1, d.Count("BindBuffer"))
	state.BindVertexArray(c, 6)
	state.BindVertexArray(c, 6)
	assert.Equal(t, 1, d.Count("BindVertexArray"))
	state.BindBuffer(c, gl.GL_ELEMENT_ARRAY_BUFFER, 0)
	assert.Equal(t, 2, d.Count("BindBuffer"))

	state.DeleteTexture(c, 5)
	assert.EqualValues(t, 0, c.Texture(2, gl.GL_TEXTURE_2D))
	state.DeleteProgram(c, 8)
	state.UseProgram(c, 8)
	assert.Equal(t, 2, d.Count("UseProgram"))
}

func TestBindFramebuffer(t *testing.T) {
	c, d := newContext(t)
	state.BindFramebuffer(c, gl.GL_FRAMEBUFFER, 0)
	assert.Empty(t, d.Calls)
	state.BindFramebuffer(c, gl.GL_READ_FRAMEBUFFER, 3)
	state.BindFramebuffer(c, gl.GL_DRAW_FRAMEBUFFER, 0)
	assert.Equal(t, 1, d.Count("BindFramebuffer"))
	state.BindFramebuffer(c, gl.GL_FRAMEBUFFER, 3)
	state.BindFramebuffer(c, gl.GL_DRAW_FRAMEBUFFER, 3)
	assert.Equal(t, 2, d.Count("BindFramebuffer"))

	state.DeleteFramebuffer(c, 3)
	draw, read := c.Framebuffers()
	assert.Zero(t, draw)
	assert.Zero(t, read)
}

type offscreen struct {
	id uint32
	sz image.Point
}

func (o *offscreen) ID() uint32        { return o.id }
func (o *offscreen) Size() image.Point { return o.sz }
func (o *offscreen) View() *glw.View   { return nil }

func TestPushFramebuffer(t *testing.T) {
	c, d := newContext(t)
	v, err := state.NewViewport(0, 0, 800, 600)
	require.NoError(t, err)
	state.SetViewport(c, v)
	d.Reset()

	restore := state.PushFramebuffer(c, &offscreen{id: 9, sz: image.Pt(1024, 1024)})
	draw, read := c.Framebuffers()
	assert.EqualValues(t, 9, draw)
	assert.EqualValues(t, 9, read)
	assert.Equal(t, [4]int32{0, 0, 1024, 1024}, d.ViewportRect)
	assert.False(t, v.Current())

	restore()
	draw, read = c.Framebuffers()
	assert.Zero(t, draw)
	assert.Zero(t, read)
	assert.True(t, v.Current())
	assert.Equal(t, [4]int32{0, 0, 800, 600}, d.ViewportRect)
	assert.Equal(t, 2, d.Count("BindFramebuffer"))
}
