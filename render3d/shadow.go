package render3d

import (
	"github.com/chewxy/math32"
	"github.com/db47h/glw"
	"github.com/db47h/glw/framebuffer"
	"github.com/db47h/glw/geom"
	"github.com/db47h/glw/gl"
	"github.com/db47h/glw/shader"
	"github.com/db47h/glw/state"
	"github.com/db47h/glw/texture"
)

// ShadowMapper renders the depth of a scene as seen from a light into a
// square depth texture, for use by shader.Lighting.
//
// The light is directional: it looks from Light towards Target through an
// orthographic frustum of half size Extent.
type ShadowMapper struct {
	Light  geom.Vector3F
	Target geom.Vector3F
	Extent float32
	Near   float32
	Far    float32

	ctx   *glw.Context
	fb    *framebuffer.FrameBuffer
	depth *shader.DepthMap
	ds    *state.DepthState
	rs    *state.RenderState
	size  int
}

// NewShadowMapper creates a shadow mapper with a size×size depth map.
func NewShadowMapper(c *glw.Context, size int) (*ShadowMapper, error) {
	if size <= 0 {
		return nil, glw.SizeError("shadow map size", size)
	}
	fb, err := framebuffer.New(c, size, size, framebuffer.DepthOnly())
	if err != nil {
		return nil, err
	}
	dm, err := shader.DepthMapFor(c)
	if err != nil {
		fb.Delete()
		return nil, err
	}
	m := &ShadowMapper{
		Light:  geom.Vec3[float32](10, 10, 10),
		Extent: 10,
		Near:   0.1,
		Far:    50,
		ctx:    c,
		fb:     fb,
		depth:  dm,
		ds:     state.NewDepthState(),
		rs:     state.NewRenderState(),
		size:   size,
	}
	m.ds.SetTesting(true)
	// culling front faces moves self shadowing artifacts to back faces.
	m.rs.SetCulling(true)
	m.rs.SetCullFace(gl.GL_FRONT)
	return m, nil
}

// Size returns the width and height of the depth map.
func (m *ShadowMapper) Size() int { return m.size }

// SetSize resizes the depth map. A size <= 0 is rejected with an error
// wrapping glw.ErrInvalidSize and the depth map is left unchanged.
func (m *ShadowMapper) SetSize(size int) error {
	if size <= 0 {
		return glw.SizeError("shadow map size", size)
	}
	if err := m.fb.Resize(size, size); err != nil {
		return err
	}
	m.size = size
	return nil
}

// Fit adjusts Target, Extent and the depth range so that the light frustum
// encloses the given world space bounds.
func (m *ShadowMapper) Fit(b geom.CuboidF) {
	half := b.Size().Mul(0.5)
	m.Target = b.Position().Add(half)
	r := half.Length()
	if r == 0 {
		r = 1
	}
	m.Extent = r
	dist := m.Light.Sub(m.Target).Length()
	m.Near = math32.Max(dist-r, 0.01)
	m.Far = dist + r
}

// LightView returns the view matrix of the light.
func (m *ShadowMapper) LightView() geom.Matrix4[float32] {
	return LookAt(m.Light, m.Target, upFor(m.Target.Sub(m.Light)))
}

// LightProjection returns the orthographic projection of the light.
func (m *ShadowMapper) LightProjection() geom.Matrix4[float32] {
	e := m.Extent
	return Orthographic(-e, e, -e, e, m.Near, m.Far)
}

// LightSpace returns LightView * LightProjection, the transform from world
// space to the clip space of the depth map.
func (m *ShadowMapper) LightSpace() geom.Matrix4[float32] {
	return m.LightView().Mul(m.LightProjection())
}

// Render draws the depth of objects into the depth map. The framebuffer,
// viewport, depth and render states are restored on return.
func (m *ShadowMapper) Render(objects ...*Object3D) {
	c := m.ctx
	restore := m.fb.Bind()
	prevDepth, prevRender := state.DepthStateOf(c), state.RenderStateOf(c)
	state.SetDepthState(c, m.ds)
	state.SetRenderState(c, m.rs)
	state.Clear(c, gl.GL_DEPTH_BUFFER_BIT)

	m.depth.View = m.LightView()
	m.depth.Projection = m.LightProjection()
	for _, o := range objects {
		o.Draw(m.depth)
	}

	state.SetRenderState(c, prevRender)
	state.SetDepthState(c, prevDepth)
	restore()
}

// Texture returns the depth map.
func (m *ShadowMapper) Texture() *texture.Texture { return m.fb.Depth() }

// Apply configures l to sample the depth map.
func (m *ShadowMapper) Apply(l *shader.Lighting) {
	l.ShadowMap = m.fb.Depth().NativeID()
	l.LightSpace = m.LightSpace()
	l.Light = m.Light
}

// Delete releases the depth map. The shared DepthMap shader is kept.
func (m *ShadowMapper) Delete() {
	m.fb.Delete()
}
