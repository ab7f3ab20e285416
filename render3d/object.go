package render3d

import (
	"github.com/db47h/glw"
	"github.com/db47h/glw/geom"
	"github.com/db47h/glw/gl"
	"github.com/db47h/glw/shader"
	"github.com/db47h/glw/state"
	"github.com/pkg/errors"
)

// Object3D is a mesh uploaded to the driver, with a transform.
type Object3D struct {
	Position geom.Vector3F
	Scale    geom.Vector3F
	// Rotation is applied after scaling, before translation.
	Rotation geom.Matrix4[float32]

	ctx    *glw.Context
	vao    uint32
	vbo    uint32
	ebo    uint32
	count  int32
	bounds geom.CuboidF
}

// NewObject3D uploads m into a new vertex array.
func NewObject3D(c *glw.Context, m *Mesh) (*Object3D, error) {
	if len(m.Indices) == 0 || len(m.Indices)%3 != 0 {
		return nil, errors.Errorf("render3d: %d indices do not form triangles", len(m.Indices))
	}
	for _, i := range m.Indices {
		if int(i) >= len(m.Vertices) {
			return nil, errors.Errorf("render3d: index %d out of range [0, %d)", i, len(m.Vertices))
		}
	}
	d := c.GL()
	o := &Object3D{
		Scale:    geom.Vec3[float32](1, 1, 1),
		Rotation: geom.Identity4[float32](),
		ctx:      c,
		count:    int32(len(m.Indices)),
		bounds:   m.Bounds(),
	}
	o.vao = d.GenVertexArray()
	state.BindVertexArray(c, o.vao)

	o.vbo = d.GenBuffer()
	state.BindBuffer(c, gl.GL_ARRAY_BUFFER, o.vbo)
	data := m.interleave()
	d.BufferData(gl.GL_ARRAY_BUFFER, gl.Sizeof(data), gl.Bytes(data), gl.GL_STATIC_DRAW)
	const stride = vertexSize * 4
	for i, a := range [...]struct{ size, offset int }{{3, 0}, {2, 3}, {3, 5}} {
		d.EnableVertexAttribArray(uint32(i))
		d.VertexAttribPointer(uint32(i), int32(a.size), gl.GL_FLOAT, false, stride, a.offset*4)
	}

	o.ebo = d.GenBuffer()
	state.BindBuffer(c, gl.GL_ELEMENT_ARRAY_BUFFER, o.ebo)
	d.BufferData(gl.GL_ELEMENT_ARRAY_BUFFER, gl.Sizeof(m.Indices), gl.Bytes(m.Indices), gl.GL_STATIC_DRAW)

	if err := glw.CheckError(d, "render3d: upload mesh"); err != nil {
		o.Delete()
		return nil, err
	}
	return o, nil
}

// Model returns the model matrix: scale, then rotate, then translate.
func (o *Object3D) Model() geom.Matrix4[float32] {
	return geom.Scaling(o.Scale.X, o.Scale.Y, o.Scale.Z).
		Mul(o.Rotation).
		Mul(geom.Translation(o.Position.X, o.Position.Y, o.Position.Z))
}

// Bounds returns the bounds of the mesh in model space.
func (o *Object3D) Bounds() geom.CuboidF { return o.bounds }

// Count returns the number of indices drawn.
func (o *Object3D) Count() int { return int(o.count) }

// Draw sets the model matrix of s, prepares it and draws the object.
func (o *Object3D) Draw(s shader.Shader) {
	s.Base().Model = o.Model()
	s.PrepareDraw()
	state.BindVertexArray(o.ctx, o.vao)
	o.ctx.GL().DrawElements(gl.GL_TRIANGLES, o.count, gl.GL_UNSIGNED_INT, 0)
}

// Delete releases the driver objects.
func (o *Object3D) Delete() {
	if o.vao == 0 {
		return
	}
	state.DeleteVertexArray(o.ctx, o.vao)
	state.DeleteBuffer(o.ctx, o.vbo)
	state.DeleteBuffer(o.ctx, o.ebo)
	o.vao, o.vbo, o.ebo = 0, 0, 0
}
