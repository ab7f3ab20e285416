package render3d

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"github.com/db47h/glw/geom"
	"github.com/pkg/errors"
)

// Vertex is the vertex format of meshes, matching the attribute locations of
// the shader package: 0 for the position, 1 for texture coordinates and 2 for
// the normal.
type Vertex struct {
	Position geom.Vector3F
	UV       geom.Vector2F
	Normal   geom.Vector3F
}

// vertexSize is the number of float32 in a Vertex.
const vertexSize = 8

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Bounds returns the smallest cuboid containing all vertices.
func (m *Mesh) Bounds() geom.CuboidF {
	if len(m.Vertices) == 0 {
		return geom.CuboidF{}
	}
	lo, hi := m.Vertices[0].Position, m.Vertices[0].Position
	for _, v := range m.Vertices[1:] {
		p := v.Position
		lo = geom.Vec3(math32.Min(lo.X, p.X), math32.Min(lo.Y, p.Y), math32.Min(lo.Z, p.Z))
		hi = geom.Vec3(math32.Max(hi.X, p.X), math32.Max(hi.Y, p.Y), math32.Max(hi.Z, p.Z))
	}
	sz := hi.Sub(lo)
	return geom.CuboidF{X: lo.X, Y: lo.Y, Z: lo.Z, Width: sz.X, Height: sz.Y, Depth: sz.Z}
}

// ComputeNormals sets vertex normals to the normalized sum of the normals of
// the triangles sharing them.
func (m *Mesh) ComputeNormals() {
	sum := make([]geom.Vector3F, len(m.Vertices))
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		pa := m.Vertices[a].Position
		n := m.Vertices[b].Position.Sub(pa).Cross(m.Vertices[c].Position.Sub(pa))
		sum[a], sum[b], sum[c] = sum[a].Add(n), sum[b].Add(n), sum[c].Add(n)
	}
	for i := range m.Vertices {
		m.Vertices[i].Normal = sum[i].Normalize()
	}
}

// interleave returns the vertex data as packed float32.
func (m *Mesh) interleave() []float32 {
	data := make([]float32, 0, len(m.Vertices)*vertexSize)
	for _, v := range m.Vertices {
		data = append(data,
			v.Position.X, v.Position.Y, v.Position.Z,
			v.UV.X, v.UV.Y,
			v.Normal.X, v.Normal.Y, v.Normal.Z)
	}
	return data
}

// OBJError reports a malformed line in a Wavefront OBJ file.
type OBJError struct {
	Line int
	Err  error
}

func (e *OBJError) Error() string { return "obj: line " + strconv.Itoa(e.Line) + ": " + e.Err.Error() }
func (e *OBJError) Unwrap() error { return e.Err }

type objKey struct{ v, vt, vn int }

// LoadOBJ reads a mesh in the Wavefront OBJ format. Only the v, vt, vn and f
// statements are used: polygons are triangulated as fans, other statements are
// ignored. Normals are computed when the file has none.
func LoadOBJ(r io.Reader) (*Mesh, error) {
	var (
		pos     []geom.Vector3F
		uv      []geom.Vector2F
		normals []geom.Vector3F
		m       = new(Mesh)
		index   = make(map[objKey]uint32)
	)

	vertex := func(ref string) (uint32, error) {
		var k objKey
		parts := strings.Split(ref, "/")
		if len(parts) > 3 {
			return 0, errors.Errorf("invalid vertex %q", ref)
		}
		ns := [3]int{len(pos), len(uv), len(normals)}
		idx := [3]*int{&k.v, &k.vt, &k.vn}
		for i, p := range parts {
			if p == "" {
				if i == 0 {
					return 0, errors.Errorf("missing position in %q", ref)
				}
				continue
			}
			n, err := strconv.Atoi(p)
			if err != nil {
				return 0, errors.Wrapf(err, "vertex %q", ref)
			}
			// OBJ indices are 1-based, negative ones are relative to the end.
			if n < 0 {
				n += ns[i] + 1
			}
			if n < 1 || n > ns[i] {
				return 0, errors.Errorf("index %d out of range in %q", n, ref)
			}
			*idx[i] = n
		}
		if i, ok := index[k]; ok {
			return i, nil
		}
		v := Vertex{Position: pos[k.v-1]}
		if k.vt > 0 {
			v.UV = uv[k.vt-1]
		}
		if k.vn > 0 {
			v.Normal = normals[k.vn-1]
		}
		i := uint32(len(m.Vertices))
		m.Vertices = append(m.Vertices, v)
		index[k] = i
		return i, nil
	}

	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		f := strings.Fields(s.Text())
		if len(f) == 0 || strings.HasPrefix(f[0], "#") {
			continue
		}
		var err error
		switch f[0] {
		case "v":
			var p []float32
			if p, err = parseFloats(f[1:], 3); err == nil {
				pos = append(pos, geom.Vec3(p[0], p[1], p[2]))
			}
		case "vt":
			var p []float32
			if p, err = parseFloats(f[1:], 2); err == nil {
				uv = append(uv, geom.Vec2(p[0], p[1]))
			}
		case "vn":
			var p []float32
			if p, err = parseFloats(f[1:], 3); err == nil {
				normals = append(normals, geom.Vec3(p[0], p[1], p[2]))
			}
		case "f":
			if len(f) < 4 {
				err = errors.New("face with less than 3 vertices")
				break
			}
			ids := make([]uint32, len(f)-1)
			for i, ref := range f[1:] {
				if ids[i], err = vertex(ref); err != nil {
					break
				}
			}
			for i := 1; err == nil && i+1 < len(ids); i++ {
				m.Indices = append(m.Indices, ids[0], ids[i], ids[i+1])
			}
		}
		if err != nil {
			return nil, &OBJError{Line: line, Err: err}
		}
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "obj")
	}
	if len(m.Indices) == 0 {
		return nil, errors.New("obj: no faces")
	}
	if len(normals) == 0 {
		m.ComputeNormals()
	}
	return m, nil
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, errors.Errorf("expected %d values, got %d", n, len(fields))
	}
	v := make([]float32, n)
	for i := range v {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, err
		}
		v[i] = float32(f)
	}
	return v, nil
}

// Cube returns an axis aligned cube of the given edge length centered on the
// origin, with one set of vertices per face.
func Cube(size float32) *Mesh {
	h := size / 2
	faces := [6]struct{ n, u, v geom.Vector3F }{
		{geom.Vec3[float32](0, 0, 1), geom.Vec3[float32](1, 0, 0), geom.Vec3[float32](0, 1, 0)},
		{geom.Vec3[float32](0, 0, -1), geom.Vec3[float32](-1, 0, 0), geom.Vec3[float32](0, 1, 0)},
		{geom.Vec3[float32](1, 0, 0), geom.Vec3[float32](0, 0, -1), geom.Vec3[float32](0, 1, 0)},
		{geom.Vec3[float32](-1, 0, 0), geom.Vec3[float32](0, 0, 1), geom.Vec3[float32](0, 1, 0)},
		{geom.Vec3[float32](0, 1, 0), geom.Vec3[float32](1, 0, 0), geom.Vec3[float32](0, 0, -1)},
		{geom.Vec3[float32](0, -1, 0), geom.Vec3[float32](1, 0, 0), geom.Vec3[float32](0, 0, 1)},
	}
	m := &Mesh{
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint32, 0, 36),
	}
	for _, f := range faces {
		base := uint32(len(m.Vertices))
		c := f.n.Mul(h)
		for _, q := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
			p := c.Add(f.u.Mul(q[0] * h)).Add(f.v.Mul(q[1] * h))
			m.Vertices = append(m.Vertices, Vertex{
				Position: p,
				UV:       geom.Vec2((q[0]+1)/2, (q[1]+1)/2),
				Normal:   f.n,
			})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

// Plane returns a square in the XZ plane centered on the origin, facing up.
func Plane(size float32) *Mesh {
	h := size / 2
	up := geom.Vec3[float32](0, 1, 0)
	return &Mesh{
		Vertices: []Vertex{
			{geom.Vec3(-h, 0, h), geom.Vec2[float32](0, 0), up},
			{geom.Vec3(h, 0, h), geom.Vec2[float32](1, 0), up},
			{geom.Vec3(h, 0, -h), geom.Vec2[float32](1, 1), up},
			{geom.Vec3(-h, 0, -h), geom.Vec2[float32](0, 1), up},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}
