package framebuffer_test

import (
	"image"
	"testing"

	"github.com/db47h/glw"
	"github.com/db47h/glw/framebuffer"
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

func TestNewDefault(t *testing.T) {
	c, d := newContext(t)
	fb, err := framebuffer.New(c, 320, 200)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(320, 200), fb.Size())
	require.NotNil(t, fb.Color())
	assert.Nil(t, fb.Depth())
	assert.Equal(t, image.Pt(320, 200), fb.Color().Size())

	attach := d.CallsTo("FramebufferTexture2D")
	require.Len(t, attach, 1)
	assert.Equal(t, uint32(gl.GL_COLOR_ATTACHMENT0), attach[0].Args[1])
	assert.Equal(t, fb.Color().NativeID(), attach[0].Args[3])
	assert.Equal(t, []interface{}{uint32(gl.GL_RENDERBUFFER), uint32(gl.GL_DEPTH24_STENCIL8), int32(320), int32(200)},
		d.CallsTo("RenderbufferStorage")[0].Args)
	assert.Equal(t, 1, d.Count("FramebufferRenderbuffer"))
	assert.Equal(t, 1, d.Count("CheckFramebufferStatus"))

	// creation leaves the previous binding in place
	draw, read := c.Framebuffers()
	assert.Zero(t, draw)
	assert.Zero(t, read)
	assert.Equal(t, []interface{}{uint32(gl.GL_FRAMEBUFFER), uint32(0)}, d.CallsTo("BindFramebuffer")[1].Args)

	v := fb.View()
	assert.Same(t, fb, v.Fb)
	assert.Equal(t, image.Rect(0, 0, 320, 200), v.Rect)
}

func TestDepthOnly(t *testing.T) {
	c, d := newContext(t)
	fb, err := framebuffer.New(c, 1024, 1024, framebuffer.DepthOnly())
	require.NoError(t, err)
	assert.Nil(t, fb.Color())
	require.NotNil(t, fb.Depth())
	assert.Equal(t, 1, d.Count("DrawBuffer"))
	assert.Equal(t, 1, d.Count("ReadBuffer"))
	assert.Zero(t, d.Count("GenRenderbuffer"))
	attach := d.CallsTo("FramebufferTexture2D")
	require.Len(t, attach, 1)
	assert.Equal(t, uint32(gl.GL_DEPTH_ATTACHMENT), attach[0].Args[1])

	_, err = framebuffer.New(c, 16, 16, framebuffer.DepthOnly(), framebuffer.Depth(framebuffer.NoDepth))
	assert.Error(t, err)
}

func TestIncomplete(t *testing.T) {
	c, d := newContext(t)
	d.FramebufferStatus = 0x8CD6 // GL_FRAMEBUFFER_INCOMPLETE_ATTACHMENT
	_, err := framebuffer.New(c, 64, 64, framebuffer.Depth(framebuffer.DepthTexture))
	require.Error(t, err)
	assert.True(t, errors.Is(err, framebuffer.ErrIncomplete))
	assert.Equal(t, 1, d.Count("DeleteFramebuffer"))
	assert.Equal(t, 2, d.Count("DeleteTexture"))
	draw, _ := c.Framebuffers()
	assert.Zero(t, draw)
}

func TestInvalidSize(t *testing.T) {
	c, d := newContext(t)
	_, err := framebuffer.New(c, 0, 64)
	assert.True(t, errors.Is(err, glw.ErrInvalidSize))
	assert.Zero(t, d.Count("GenFramebuffer"))

	fb, err := framebuffer.New(c, 64, 64)
	require.NoError(t, err)
	assert.True(t, errors.Is(fb.Resize(64, -1), glw.ErrInvalidSize))
	assert.True(t, errors.Is(fb.Resize(8192, 64), glw.ErrInvalidSize))
	assert.Equal(t, image.Pt(64, 64), fb.Size())
}

func TestResize(t *testing.T) {
	c, d := newContext(t)
	fb, err := framebuffer.New(c, 64, 64, framebuffer.Depth(framebuffer.DepthTexture))
	require.NoError(t, err)
	d.Reset()
	require.NoError(t, fb.Resize(64, 64))
	assert.Empty(t, d.Calls)

	require.NoError(t, fb.Resize(128, 32))
	assert.Equal(t, image.Pt(128, 32), fb.Size())
	assert.Equal(t, image.Pt(128, 32), fb.Color().Size())
	assert.Equal(t, image.Pt(128, 32), fb.Depth().Size())
	assert.Equal(t, image.Rect(0, 0, 128, 32), fb.View().Rect)
	assert.Equal(t, 2, d.Count("TexImage2D"))
	assert.Equal(t, 1, d.Count("CheckFramebufferStatus"))
}

func TestResizeIncomplete(t *testing.T) {
	c, d := newContext(t)
	fb, err := framebuffer.New(c, 64, 64)
	require.NoError(t, err)
	d.Reset()

	d.FramebufferStatus = 0x8CD6 // GL_FRAMEBUFFER_INCOMPLETE_ATTACHMENT
	err = fb.Resize(128, 32)
	require.Error(t, err)
	assert.True(t, errors.Is(err, framebuffer.ErrIncomplete))
	assert.Equal(t, image.Pt(64, 64), fb.Size())
	assert.Equal(t, image.Rect(0, 0, 64, 64), fb.View().Rect)
	assert.Equal(t, image.Pt(64, 64), fb.Color().Size())
	rs := d.CallsTo("RenderbufferStorage")
	require.Len(t, rs, 2)
	assert.Equal(t, []interface{}{uint32(gl.GL_RENDERBUFFER), uint32(gl.GL_DEPTH24_STENCIL8), int32(64), int32(64)}, rs[1].Args)

	d.FramebufferStatus = gl.GL_FRAMEBUFFER_COMPLETE
	require.NoError(t, fb.Resize(128, 32))
	assert.Equal(t, image.Pt(128, 32), fb.Size())
}

func TestBind(t *testing.T) {
	c, d := newContext(t)
	vp, err := state.NewViewport(0, 0, 800, 600)
	require.NoError(t, err)
	state.SetViewport(c, vp)
	fb, err := framebuffer.New(c, 256, 128)
	require.NoError(t, err)
	d.Reset()

	restore := fb.Bind()
	draw, read := c.Framebuffers()
	assert.Equal(t, fb.ID(), draw)
	assert.Equal(t, fb.ID(), read)
	assert.Equal(t, [4]int32{0, 0, 256, 128}, d.ViewportRect)
	assert.Equal(t, geom.Rect[int32](0, 0, 256, 128), state.ViewportOf(c).View())

	restore()
	draw, _ = c.Framebuffers()
	assert.Zero(t, draw)
	assert.Equal(t, [4]int32{0, 0, 800, 600}, d.ViewportRect)
	assert.Same(t, vp, state.ViewportOf(c))
}

func TestDelete(t *testing.T) {
	c, d := newContext(t)
	fb, err := framebuffer.New(c, 32, 32)
	require.NoError(t, err)
	restore := fb.Bind()
	fb.Delete()
	fb.Delete()
	assert.Equal(t, 1, d.Count("DeleteFramebuffer"))
	assert.Equal(t, 1, d.Count("DeleteRenderbuffer"))
	assert.Equal(t, 1, d.Count("DeleteTexture"))
	draw, read := c.Framebuffers()
	assert.Zero(t, draw)
	assert.Zero(t, read)
	restore()
}
