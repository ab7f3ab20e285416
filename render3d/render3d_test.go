package render3d_test

import (
	"strings"
	"testing"

	"github.com/chewxy/math32"
	"github.com/db47h/glw"
	"github.com/db47h/glw/geom"
	"github.com/db47h/glw/gl"
	"github.com/db47h/glw/gl/gltest"
	"github.com/db47h/glw/render3d"
	"github.com/db47h/glw/shader"
	"github.com/db47h/glw/state"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(t *testing.T) (*glw.Context, *gltest.Driver) {
	t.Helper()
	d := gltest.New()
	c, err := glw.New(d, glw.Config{Width: 800, Height: 600, CompilePolicy: glw.FailFast})
	require.NoError(t, err)
	d.Reset()
	return c, d
}

func assertVec4(t *testing.T, want, got geom.Vector4F) {
	t.Helper()
	for i := 0; i < 4; i++ {
		assert.InDelta(t, want.At(i), got.At(i), 1e-4, "component %d of %v", i, got)
	}
}

func TestPerspective(t *testing.T) {
	p, err := render3d.NewPerspective(math32.Pi/4, 800, 600, 0.1, 100)
	require.NoError(t, err)
	assert.InDelta(t, 4.0/3, p.Aspect, 1e-6)
	assert.Equal(t, geom.FromMgl4(mgl32.Perspective(math32.Pi/4, 4.0/3, 0.1, 100)), p.Matrix())

	// points on the near and far planes map to -1 and 1
	m := p.Matrix()
	n := m.Transform(geom.Vec4[float32](0, 0, -0.1, 1))
	assert.InDelta(t, -1, n.Z/n.W, 1e-4)
	f := m.Transform(geom.Vec4[float32](0, 0, -100, 1))
	assert.InDelta(t, 1, f.Z/f.W, 1e-4)

	_, err = render3d.NewPerspective(1, 0, 600, 0.1, 100)
	assert.True(t, errors.Is(err, glw.ErrInvalidSize))
	assert.True(t, errors.Is(p.SetSize(800, -1), glw.ErrInvalidSize))
	_, err = render3d.NewPerspective(1, 800, 600, 0, 100)
	assert.Error(t, err)
	_, err = render3d.NewPerspective(0, 800, 600, 1, 100)
	assert.Error(t, err)
	_, err = render3d.NewPerspective(1, 800, 600, 10, 1)
	assert.Error(t, err)
}

func TestLookAt(t *testing.T) {
	v := render3d.LookAt(geom.Vec3[float32](0, 0, 5), geom.Vector3F{}, geom.Vec3[float32](0, 1, 0))
	assertVec4(t, geom.Vec4[float32](0, 0, -5, 1), v.Transform(geom.Vec4[float32](0, 0, 0, 1)))
	assertVec4(t, geom.Vec4[float32](1, 0, -5, 1), v.Transform(geom.Vec4[float32](1, 0, 0, 1)))
}

const quadOBJ = `# a unit quad
o quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1 4/4/1
`

func TestLoadOBJ(t *testing.T) {
	m, err := render3d.LoadOBJ(strings.NewReader(quadOBJ))
	require.NoError(t, err)
	assert.Len(t, m.Vertices, 4)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, m.Indices)
	assert.Equal(t, geom.Vec2[float32](1, 1), m.Vertices[2].UV)
	assert.Equal(t, geom.Vec3[float32](0, 0, 1), m.Vertices[3].Normal)
	assert.Equal(t, geom.CuboidF{Width: 1, Height: 1}, m.Bounds())
}

func TestLoadOBJComputesNormals(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 0 -1\nf -3 -2 -1\n"
	m, err := render3d.LoadOBJ(strings.NewReader(src))
	require.NoError(t, err)
	for _, v := range m.Vertices {
		assert.Equal(t, geom.Vec3[float32](0, 1, 0), v.Normal)
	}
	// shared positions with different attributes are different vertices
	m, err = render3d.LoadOBJ(strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 1 0\nvt 0 0\nvt 1 1\nf 1/1 2/1 3/1\nf 1/2 2/1 3/1\n"))
	require.NoError(t, err)
	assert.Len(t, m.Vertices, 4)
	assert.Equal(t, []uint32{0, 1, 2, 3, 1, 2}, m.Indices)
}

func TestLoadOBJErrors(t *testing.T) {
	tests := []struct {
		src  string
		line int
	}{
		{"v 0 0 0\nv 1 0\n", 2},
		{"v 0 0 0\nv 1 0 0\nf 1 2\n", 3},
		{"v 0 0 0\nv 1 0 0\nv 1 1 0\nf 1 2 4\n", 4},
		{"v 0 0 0\nv 1 0 0\nv 1 1 0\nf 1 2 x\n", 4},
		{"v 0 0 0\nv 1 0 0\nv 1 1 0\nf 1/1 2 3\n", 4},
	}
	for _, tt := range tests {
		_, err := render3d.LoadOBJ(strings.NewReader(tt.src))
		var oe *render3d.OBJError
		if assert.True(t, errors.As(err, &oe), tt.src) {
			assert.Equal(t, tt.line, oe.Line)
		}
	}
	_, err := render3d.LoadOBJ(strings.NewReader("v 0 0 0\n"))
	assert.Error(t, err)
}

func TestCube(t *testing.T) {
	m := render3d.Cube(2)
	assert.Len(t, m.Vertices, 24)
	assert.Len(t, m.Indices, 36)
	assert.Equal(t, geom.CuboidF{X: -1, Y: -1, Z: -1, Width: 2, Height: 2, Depth: 2}, m.Bounds())
	// triangles wind counter-clockwise seen from outside
	for i := 0; i < len(m.Indices); i += 3 {
		a, b, c := m.Vertices[m.Indices[i]], m.Vertices[m.Indices[i+1]], m.Vertices[m.Indices[i+2]]
		n := b.Position.Sub(a.Position).Cross(c.Position.Sub(a.Position))
		assert.Greater(t, n.Dot(a.Normal), float32(0), "triangle %d", i/3)
	}
}

func TestObject3D(t *testing.T) {
	c, d := newContext(t)
	o, err := render3d.NewObject3D(c, render3d.Plane(2))
	require.NoError(t, err)
	assert.Equal(t, 6, o.Count())

	data := d.CallsTo("BufferData")
	require.Len(t, data, 2)
	assert.Equal(t, []interface{}{uint32(gl.GL_ARRAY_BUFFER), 4 * 8 * 4, 4 * 8 * 4, uint32(gl.GL_STATIC_DRAW)}, data[0].Args)
	assert.Equal(t, []interface{}{uint32(gl.GL_ELEMENT_ARRAY_BUFFER), 24, 24, uint32(gl.GL_STATIC_DRAW)}, data[1].Args)
	attr := d.CallsTo("VertexAttribPointer")
	require.Len(t, attr, 3)
	assert.Equal(t, []interface{}{uint32(2), int32(3), uint32(gl.GL_FLOAT), false, int32(32), 20}, attr[2].Args)

	b, err := shader.NewBasic(c)
	require.NoError(t, err)
	o.Scale = geom.Vec3[float32](2, 2, 2)
	o.Position = geom.Vec3[float32](1, 0, 0)
	assertVec4(t, geom.Vec4[float32](3, 0, 0, 1), o.Model().Transform(geom.Vec4[float32](1, 0, 0, 1)))

	d.Reset()
	o.Draw(b)
	o.Draw(b)
	assert.Equal(t, o.Model(), b.Model)
	assert.Equal(t, []interface{}{uint32(gl.GL_TRIANGLES), int32(6), uint32(gl.GL_UNSIGNED_INT), 0}, d.CallsTo("DrawElements")[0].Args)
	assert.Equal(t, 2, d.Count("DrawElements"))
	assert.Zero(t, d.Count("BindVertexArray"), "still bound from the upload")

	o.Delete()
	o.Delete()
	assert.Equal(t, 1, d.Count("DeleteVertexArray"))
	assert.Equal(t, 2, d.Count("DeleteBuffer"))
	assert.Zero(t, c.VertexArray())
}

func TestObject3DInvalidMesh(t *testing.T) {
	c, d := newContext(t)
	_, err := render3d.NewObject3D(c, &render3d.Mesh{Vertices: make([]render3d.Vertex, 3), Indices: []uint32{0, 1}})
	assert.Error(t, err)
	_, err = render3d.NewObject3D(c, &render3d.Mesh{Vertices: make([]render3d.Vertex, 3), Indices: []uint32{0, 1, 3}})
	assert.Error(t, err)
	assert.Zero(t, d.Count("GenVertexArray"))
}

func TestShadowMapperSize(t *testing.T) {
	c, _ := newContext(t)
	_, err := render3d.NewShadowMapper(c, 0)
	assert.True(t, errors.Is(err, glw.ErrInvalidSize))

	m, err := render3d.NewShadowMapper(c, 1024)
	require.NoError(t, err)
	assert.Equal(t, 1024, m.Size())
	assert.True(t, errors.Is(m.SetSize(-1), glw.ErrInvalidSize))
	assert.Equal(t, 1024, m.Size())
	require.NoError(t, m.SetSize(512))
	assert.Equal(t, 512, m.Size())
	assert.Equal(t, 512, m.Texture().Size().X)
}

func TestShadowMapperRender(t *testing.T) {
	c, d := newContext(t)
	vp, err := state.NewViewport(0, 0, 800, 600)
	require.NoError(t, err)
	state.SetViewport(c, vp)
	ds := state.NewDepthState()
	state.SetDepthState(c, ds)

	m, err := render3d.NewShadowMapper(c, 256)
	require.NoError(t, err)
	cube, err := render3d.NewObject3D(c, render3d.Cube(1))
	require.NoError(t, err)
	m.Fit(cube.Bounds())
	assert.Equal(t, geom.Vector3F{}, m.Target)

	d.Reset()
	m.Render(cube)
	assert.Equal(t, 1, d.Count("DrawElements"))
	assert.Equal(t, []interface{}{uint32(gl.GL_DEPTH_BUFFER_BIT)}, d.CallsTo("Clear")[0].Args)
	assert.Contains(t, d.Calls, gltest.Call{Name: "CullFace", Args: []interface{}{uint32(gl.GL_FRONT)}})
	assert.Contains(t, d.Calls, gltest.Call{Name: "Viewport", Args: []interface{}{int32(0), int32(0), int32(256), int32(256)}})

	// everything is restored
	assert.Same(t, ds, state.DepthStateOf(c))
	assert.Same(t, vp, state.ViewportOf(c))
	assert.False(t, d.Enabled[gl.GL_DEPTH_TEST])
	assert.False(t, d.Enabled[gl.GL_CULL_FACE])
	assert.Equal(t, [4]int32{0, 0, 800, 600}, d.ViewportRect)
	draw, read := c.Framebuffers()
	assert.Zero(t, draw)
	assert.Zero(t, read)

	// the light looks at the centre of the scene
	ls := m.LightSpace()
	p := ls.Transform(geom.Vec4[float32](0, 0, 0, 1))
	assert.InDelta(t, 0, p.X, 1e-4)
	assert.InDelta(t, 0, p.Y, 1e-4)
	assert.True(t, p.Z > -1 && p.Z < 1, "%v inside the depth range", p)

	l, err := shader.NewLighting(c)
	require.NoError(t, err)
	m.Apply(l)
	assert.Equal(t, m.Texture().NativeID(), l.ShadowMap)
	assert.Equal(t, ls, l.LightSpace)
	assert.Equal(t, m.Light, l.Light)
}

func TestShadowMapperVerticalLight(t *testing.T) {
	c, _ := newContext(t)
	m, err := render3d.NewShadowMapper(c, 64)
	require.NoError(t, err)
	m.Light = geom.Vec3[float32](0, 10, 0)
	v := m.LightView()
	for _, x := range v.Array() {
		assert.False(t, math32.IsNaN(x))
	}
	assertVec4(t, geom.Vec4[float32](0, 0, -10, 1), v.Transform(geom.Vec4[float32](0, 0, 0, 1)))
}
