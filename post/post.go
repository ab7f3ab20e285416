// Package post renders a scene into an offscreen target and draws it back
// through a full screen post-processing shader.
//
//	pp, err := post.New(c, w, h)
//	...
//	pp.Begin()
//	drawScene()
//	pp.End() // draws to the previous framebuffer
package post

import (
	"github.com/db47h/glw"
	"github.com/db47h/glw/framebuffer"
	"github.com/db47h/glw/gl"
	"github.com/db47h/glw/shader"
	"github.com/db47h/glw/state"
	"github.com/pkg/errors"
)

// quad is a full screen triangle strip: position (xyz) then texture
// coordinates (uv).
var quad = []float32{
	-1, -1, 0, 0, 0,
	1, -1, 0, 1, 0,
	-1, 1, 0, 0, 1,
	1, 1, 0, 1, 1,
}

// PostProcessing is an offscreen render target drawn to the screen with a
// shader.Post.
type PostProcessing struct {
	ctx     *glw.Context
	fb      *framebuffer.FrameBuffer
	shader  *shader.Post
	vao     uint32
	vbo     uint32
	depth   *state.DepthState
	restore func()
}

// New creates a post-processing target of the given size.
func New(c *glw.Context, width, height int, opts ...framebuffer.Option) (*PostProcessing, error) {
	if width <= 0 {
		return nil, glw.SizeError("post-processing width", width)
	}
	if height <= 0 {
		return nil, glw.SizeError("post-processing height", height)
	}
	fb, err := framebuffer.New(c, width, height, opts...)
	if err != nil {
		return nil, err
	}
	if fb.Color() == nil {
		fb.Delete()
		return nil, errors.New("post: framebuffer without color attachment")
	}
	s, err := shader.PostFor(c)
	if err != nil {
		fb.Delete()
		return nil, err
	}
	pp := &PostProcessing{ctx: c, fb: fb, shader: s, depth: state.NewDepthState()}

	d := c.GL()
	pp.vao = d.GenVertexArray()
	state.BindVertexArray(c, pp.vao)
	pp.vbo = d.GenBuffer()
	state.BindBuffer(c, gl.GL_ARRAY_BUFFER, pp.vbo)
	d.BufferData(gl.GL_ARRAY_BUFFER, gl.Sizeof(quad), gl.Bytes(quad), gl.GL_STATIC_DRAW)
	d.EnableVertexAttribArray(0)
	d.VertexAttribPointer(0, 3, gl.GL_FLOAT, false, 5*4, 0)
	d.EnableVertexAttribArray(1)
	d.VertexAttribPointer(1, 2, gl.GL_FLOAT, false, 5*4, 3*4)
	return pp, nil
}

// Size returns the size of the offscreen target.
func (pp *PostProcessing) Size() (width, height int) {
	sz := pp.fb.Size()
	return sz.X, sz.Y
}

// SetSize resizes the offscreen target, usually after the window was resized.
// Sizes <= 0 are rejected with an error wrapping glw.ErrInvalidSize.
func (pp *PostProcessing) SetSize(width, height int) error {
	if width <= 0 {
		return glw.SizeError("post-processing width", width)
	}
	if height <= 0 {
		return glw.SizeError("post-processing height", height)
	}
	return pp.fb.Resize(width, height)
}

// Shader returns the shader used by End. Its Exposure, Gamma and Greyscale
// fields can be changed at any time.
func (pp *PostProcessing) Shader() *shader.Post { return pp.shader }

// FrameBuffer returns the offscreen target.
func (pp *PostProcessing) FrameBuffer() *framebuffer.FrameBuffer { return pp.fb }

// Begin redirects rendering to the offscreen target and clears it with the
// clear color of the current render state.
func (pp *PostProcessing) Begin() {
	if pp.restore != nil {
		panic(errors.New("post: Begin called twice"))
	}
	pp.restore = pp.fb.Bind()
	state.Clear(pp.ctx, gl.GL_COLOR_BUFFER_BIT|gl.GL_DEPTH_BUFFER_BIT)
}

// End restores the framebuffer and viewport active before Begin and draws the
// offscreen color texture over them. Depth testing is disabled while drawing.
func (pp *PostProcessing) End() {
	if pp.restore == nil {
		panic(errors.New("post: End called without Begin"))
	}
	pp.restore()
	pp.restore = nil

	c := pp.ctx
	prev := state.DepthStateOf(c)
	state.SetDepthState(c, pp.depth)
	pp.shader.Texture = pp.fb.Color().NativeID()
	pp.shader.PrepareDraw()
	state.BindVertexArray(c, pp.vao)
	c.GL().DrawArrays(gl.GL_TRIANGLE_STRIP, 0, 4)
	state.SetDepthState(c, prev)
}

// Delete releases the offscreen target and the quad.
func (pp *PostProcessing) Delete() {
	if pp.vao == 0 {
		return
	}
	state.DeleteVertexArray(pp.ctx, pp.vao)
	state.DeleteBuffer(pp.ctx, pp.vbo)
	pp.vao, pp.vbo = 0, 0
	pp.fb.Delete()
}
