// Package framebuffer implements offscreen render targets.
package framebuffer

import (
	"image"
	"strconv"

	"github.com/db47h/glw"
	"github.com/db47h/glw/gl"
	"github.com/db47h/glw/state"
	"github.com/db47h/glw/texture"
	"github.com/pkg/errors"
)

// ErrIncomplete is returned when the driver reports a framebuffer as
// incomplete.
var ErrIncomplete = errors.New("framebuffer incomplete")

// DepthMode selects the depth attachment of a FrameBuffer.
type DepthMode int

const (
	// DepthRenderbuffer attaches a depth and stencil renderbuffer that cannot
	// be sampled.
	DepthRenderbuffer DepthMode = iota
	// DepthTexture attaches a depth texture, available through Depth.
	DepthTexture
	// NoDepth leaves the framebuffer without depth attachment.
	NoDepth
)

func (m DepthMode) String() string {
	switch m {
	case DepthRenderbuffer:
		return "renderbuffer"
	case DepthTexture:
		return "texture"
	case NoDepth:
		return "none"
	}
	return "DepthMode(" + strconv.Itoa(int(m)) + ")"
}

type options struct {
	color      bool
	depth      DepthMode
	colorParam []texture.Parameter
	depthParam []texture.Parameter
}

// Option configures a FrameBuffer. See New.
type Option func(*options)

// Depth selects the depth attachment. The default is DepthRenderbuffer.
// Texture parameters only apply to DepthTexture.
func Depth(m DepthMode, params ...texture.Parameter) Option {
	return func(o *options) {
		o.depth = m
		o.depthParam = params
	}
}

// DepthOnly creates a framebuffer without color attachment, as used for
// shadow maps. It implies DepthTexture.
func DepthOnly(params ...texture.Parameter) Option {
	return func(o *options) {
		o.color = false
		o.depth = DepthTexture
		o.depthParam = params
	}
}

// ColorParameters sets the parameters of the color texture.
func ColorParameters(params ...texture.Parameter) Option {
	return func(o *options) {
		o.colorParam = params
	}
}

// FrameBuffer is an offscreen glw.FrameBuffer rendering to textures.
type FrameBuffer struct {
	ctx   *glw.Context
	id    uint32
	rb    uint32
	color *texture.Texture
	depth *texture.Texture
	view  glw.View
}

var _ glw.FrameBuffer = (*FrameBuffer)(nil)

// New creates a framebuffer of the given size. By default it has an RGBA color
// texture with linear filtering and a depth renderbuffer.
func New(c *glw.Context, width, height int, opts ...Option) (*FrameBuffer, error) {
	o := options{color: true}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.color && o.depth != DepthTexture {
		return nil, errors.New("framebuffer: no attachment")
	}

	fb := &FrameBuffer{ctx: c}
	fb.view = glw.View{Fb: fb, Rect: image.Rect(0, 0, width, height), Scale: 1}
	var err error
	if o.color {
		params := append([]texture.Parameter{
			texture.Filter(texture.Linear, texture.Linear),
			texture.Wrap(texture.ClampToEdge, texture.ClampToEdge),
		}, o.colorParam...)
		if fb.color, err = texture.New(c, width, height, params...); err != nil {
			return nil, err
		}
	}
	if o.depth == DepthTexture {
		if fb.depth, err = texture.NewDepth(c, width, height, o.depthParam...); err != nil {
			fb.Delete()
			return nil, err
		}
	}

	d := c.GL()
	fb.id = d.GenFramebuffer()
	done := fb.bind()
	if fb.color != nil {
		d.FramebufferTexture2D(gl.GL_FRAMEBUFFER, gl.GL_COLOR_ATTACHMENT0, gl.GL_TEXTURE_2D, fb.color.NativeID(), 0)
	} else {
		d.DrawBuffer(gl.GL_NONE)
		d.ReadBuffer(gl.GL_NONE)
	}
	switch o.depth {
	case DepthTexture:
		d.FramebufferTexture2D(gl.GL_FRAMEBUFFER, gl.GL_DEPTH_ATTACHMENT, gl.GL_TEXTURE_2D, fb.depth.NativeID(), 0)
	case DepthRenderbuffer:
		fb.rb = d.GenRenderbuffer()
		fb.storage(width, height)
		d.FramebufferRenderbuffer(gl.GL_FRAMEBUFFER, gl.GL_DEPTH_STENCIL_ATTACHMENT, gl.GL_RENDERBUFFER, fb.rb)
	}
	err = fb.check()
	done()
	if err != nil {
		fb.Delete()
		return nil, err
	}
	c.Logger().Debug("framebuffer created", "id", fb.id, "width", width, "height", height, "depth", o.depth)
	return fb, nil
}

// bind binds fb for drawing and reading, without touching the viewport. The
// returned function restores the previous bindings.
func (fb *FrameBuffer) bind() (restore func()) {
	draw, read := fb.ctx.Framebuffers()
	state.BindFramebuffer(fb.ctx, gl.GL_FRAMEBUFFER, fb.id)
	return func() {
		if draw == read {
			state.BindFramebuffer(fb.ctx, gl.GL_FRAMEBUFFER, draw)
			return
		}
		state.BindFramebuffer(fb.ctx, gl.GL_DRAW_FRAMEBUFFER, draw)
		state.BindFramebuffer(fb.ctx, gl.GL_READ_FRAMEBUFFER, read)
	}
}

func (fb *FrameBuffer) storage(width, height int) {
	d := fb.ctx.GL()
	d.BindRenderbuffer(gl.GL_RENDERBUFFER, fb.rb)
	d.RenderbufferStorage(gl.GL_RENDERBUFFER, gl.GL_DEPTH24_STENCIL8, int32(width), int32(height))
	d.BindRenderbuffer(gl.GL_RENDERBUFFER, 0)
}

func (fb *FrameBuffer) check() error {
	if s := fb.ctx.GL().CheckFramebufferStatus(gl.GL_FRAMEBUFFER); s != gl.GL_FRAMEBUFFER_COMPLETE {
		return errors.Wrapf(ErrIncomplete, "status %#x", s)
	}
	return nil
}

// ID returns the driver name of the framebuffer.
func (fb *FrameBuffer) ID() uint32 { return fb.id }

func (fb *FrameBuffer) Size() image.Point { return fb.view.Rect.Size() }

// View returns a View covering the whole framebuffer.
func (fb *FrameBuffer) View() *glw.View { return &fb.view }

// Color returns the color texture, nil for depth only framebuffers.
func (fb *FrameBuffer) Color() *texture.Texture { return fb.color }

// Depth returns the depth texture, nil unless created with DepthTexture.
func (fb *FrameBuffer) Depth() *texture.Texture { return fb.depth }

// Bind makes fb the current render target with a viewport covering all of it.
// The returned function restores the previous framebuffer and viewport.
func (fb *FrameBuffer) Bind() (restore func()) {
	return state.PushFramebuffer(fb.ctx, fb)
}

// Resize reallocates the attachments. On error, the framebuffer is left
// unchanged.
func (fb *FrameBuffer) Resize(width, height int) error {
	if width <= 0 {
		return glw.SizeError("framebuffer width", width)
	}
	if height <= 0 {
		return glw.SizeError("framebuffer height", height)
	}
	sz := fb.Size()
	if sz.X == width && sz.Y == height {
		return nil
	}
	err := fb.realloc(width, height)
	if err == nil {
		done := fb.bind()
		err = fb.check()
		done()
	}
	if err != nil {
		if rerr := fb.realloc(sz.X, sz.Y); rerr != nil {
			fb.ctx.Logger().Error("restore framebuffer size", "width", sz.X, "height", sz.Y, "err", rerr)
		}
		return err
	}
	fb.view.Rect = image.Rect(0, 0, width, height)
	return nil
}

// realloc sets the size of every attachment.
func (fb *FrameBuffer) realloc(width, height int) error {
	if fb.color != nil {
		if err := fb.color.Resize(width, height); err != nil {
			return err
		}
	}
	if fb.depth != nil {
		if err := fb.depth.Resize(width, height); err != nil {
			return err
		}
	}
	if fb.rb != 0 {
		fb.storage(width, height)
	}
	return nil
}

// Delete releases the framebuffer and its attachments.
func (fb *FrameBuffer) Delete() {
	if fb.id != 0 {
		state.DeleteFramebuffer(fb.ctx, fb.id)
		fb.id = 0
	}
	if fb.rb != 0 {
		fb.ctx.GL().DeleteRenderbuffer(fb.rb)
		fb.rb = 0
	}
	if fb.color != nil {
		fb.color.Delete()
	}
	if fb.depth != nil {
		fb.depth.Delete()
	}
}
