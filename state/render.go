package state

import (
	"image/color"

	"github.com/db47h/glw"
	"github.com/db47h/glw/gl"
)

// RenderState mirrors blending, face culling, polygon rasterization and the
// clear color.
type RenderState struct {
	facade
	blend    bool
	src, dst uint32
	cull     bool
	cullFace uint32
	polygon  uint32
	clear    gl.Color
}

// DefaultRender holds the OpenGL initial values: blending and culling
// disabled, blend function (GL_ONE, GL_ZERO), back faces culled, filled
// polygons and a transparent black clear color.
var DefaultRender = func() *RenderState {
	r := NewRenderState()
	r.Lock()
	return r
}()

func NewRenderState() *RenderState {
	return &RenderState{
		src:      gl.GL_ONE,
		dst:      gl.GL_ZERO,
		cullFace: gl.GL_BACK,
		polygon:  gl.GL_FILL,
	}
}

func (r *RenderState) Clone() *RenderState {
	n := *r
	n.facade = facade{}
	return &n
}

func (r *RenderState) Blending() bool               { return r.blend }
func (r *RenderState) BlendFunc() (src, dst uint32) { return r.src, r.dst }
func (r *RenderState) Culling() bool                { return r.cull }
func (r *RenderState) CullFace() uint32             { return r.cullFace }
func (r *RenderState) PolygonMode() uint32          { return r.polygon }
func (r *RenderState) ClearColor() gl.Color         { return r.clear }

func (r *RenderState) SetBlending(on bool) {
	if r.locked || r.blend == on {
		return
	}
	r.blend = on
	if drv := r.live(); drv != nil {
		enable(drv, gl.GL_BLEND, on)
	}
}

func (r *RenderState) SetBlendFunc(src, dst uint32) {
	if r.locked || r.src == src && r.dst == dst {
		return
	}
	r.src, r.dst = src, dst
	if drv := r.live(); drv != nil {
		drv.BlendFunc(src, dst)
	}
}

func (r *RenderState) SetCulling(on bool) {
	if r.locked || r.cull == on {
		return
	}
	r.cull = on
	if drv := r.live(); drv != nil {
		enable(drv, gl.GL_CULL_FACE, on)
	}
}

// SetCullFace selects which faces get culled: GL_FRONT, GL_BACK or
// GL_FRONT_AND_BACK.
func (r *RenderState) SetCullFace(face uint32) {
	if r.locked || r.cullFace == face {
		return
	}
	r.cullFace = face
	if drv := r.live(); drv != nil {
		drv.CullFace(face)
	}
}

// SetPolygonMode sets the rasterization mode of both front and back faces.
func (r *RenderState) SetPolygonMode(mode uint32) {
	if r.locked || r.polygon == mode {
		return
	}
	r.polygon = mode
	if drv := r.live(); drv != nil {
		drv.PolygonMode(gl.GL_FRONT_AND_BACK, mode)
	}
}

// SetClearColor sets the color used by Clear. A nil color means opaque white.
func (r *RenderState) SetClearColor(c color.Color) {
	gc := gl.ToColor(c)
	if r.locked || r.clear == gc {
		return
	}
	r.clear = gc
	if drv := r.live(); drv != nil {
		drv.ClearColor(gc.R, gc.G, gc.B, gc.A)
	}
}

func (r *RenderState) sync(drv gl.Driver, prev *RenderState) {
	if prev == nil || prev.blend != r.blend {
		enable(drv, gl.GL_BLEND, r.blend)
	}
	if prev == nil || prev.src != r.src || prev.dst != r.dst {
		drv.BlendFunc(r.src, r.dst)
	}
	if prev == nil || prev.cull != r.cull {
		enable(drv, gl.GL_CULL_FACE, r.cull)
	}
	if prev == nil || prev.cullFace != r.cullFace {
		drv.CullFace(r.cullFace)
	}
	if prev == nil || prev.polygon != r.polygon {
		drv.PolygonMode(gl.GL_FRONT_AND_BACK, r.polygon)
	}
	if prev == nil || prev.clear != r.clear {
		drv.ClearColor(r.clear.R, r.clear.G, r.clear.B, r.clear.A)
	}
}

// SetRenderState makes r the current render state of c.
func SetRenderState(c *glw.Context, r *RenderState) {
	prev, _ := c.Attached(glw.KindRender).(*RenderState)
	if prev == r {
		if r.settledOn(c) {
			return
		}
		// made current on another context since
		prev = nil
	}
	r.attach(c, glw.KindRender, r)
	r.sync(c.GL(), prev)
}

// RenderStateOf returns the current render state of c, or DefaultRender.
func RenderStateOf(c *glw.Context) *RenderState {
	if r, ok := c.Attached(glw.KindRender).(*RenderState); ok {
		return r
	}
	return DefaultRender
}

// Clear clears the buffers selected by mask of the bound draw framebuffer,
// using the clear color of the current render state.
func Clear(c *glw.Context, mask uint32) {
	c.GL().Clear(mask)
}
