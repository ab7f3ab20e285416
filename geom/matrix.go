package geom

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func formatMatrix[T Number](rows, cols int, at func(i, j int) T) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < rows; i++ {
		if i > 0 {
			sb.WriteString("; ")
		}
		for j := 0; j < cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprint(&sb, at(i, j))
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a Matrix2[T]) Determinant() T {
	return a.m[0][0]*a.m[1][1] - a.m[0][1]*a.m[1][0]
}

func (a Matrix3[T]) Determinant() T {
	m := &a.m
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// minor returns the 3×3 matrix obtained by removing row r and column c.
func (a Matrix4[T]) minor(r, c int) Matrix3[T] {
	var m Matrix3[T]
	for i, mi := 0, 0; i < 4; i++ {
		if i == r {
			continue
		}
		for j, mj := 0, 0; j < 4; j++ {
			if j == c {
				continue
			}
			m.m[mi][mj] = a.m[i][j]
			mj++
		}
		mi++
	}
	return m
}

func (a Matrix4[T]) cofactor(r, c int) T {
	d := a.minor(r, c).Determinant()
	if (r+c)&1 != 0 {
		return -d
	}
	return d
}

// Determinant computes the determinant by cofactor expansion along the first
// row.
func (a Matrix4[T]) Determinant() T {
	var d T
	for j := 0; j < 4; j++ {
		d += a.m[0][j] * a.cofactor(0, j)
	}
	return d
}

// Inverse returns the inverse of a. It returns false if a is singular.
// Integer matrices are inverted with integer division.
func (a Matrix4[T]) Inverse() (Matrix4[T], bool) {
	d := a.Determinant()
	if d == 0 {
		return Matrix4[T]{}, false
	}
	var inv Matrix4[T]
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			inv.m[j][i] = a.cofactor(i, j) / d
		}
	}
	return inv, true
}

// Matrix3 returns the upper left 3×3 part of a, as used for normal matrices.
func (a Matrix4[T]) Matrix3() Matrix3[T] {
	var m Matrix3[T]
	for i := 0; i < 3; i++ {
		copy(m.m[i][:], a.m[i][:3])
	}
	return m
}

// Translation returns the matrix translating points by (x, y, z).
func Translation[T Number](x, y, z T) Matrix4[T] {
	m := Identity4[T]()
	m.m[3][0], m.m[3][1], m.m[3][2] = x, y, z
	return m
}

// Scaling returns a matrix scaling points by (x, y, z) around the origin.
func Scaling[T Number](x, y, z T) Matrix4[T] {
	m := Identity4[T]()
	m.m[0][0], m.m[1][1], m.m[2][2] = x, y, z
	return m
}

// Rotation returns the matrix rotating points by angle radians around axis,
// counter-clockwise when looking down the axis towards the origin.
func Rotation(angle float32, axis Vector3F) Matrix4[float32] {
	return FromMgl4(mgl32.HomogRotate3D(angle, mgl32.Vec3(axis.Normalize().Array())))
}

// RotationZ is a shorthand for a rotation around the Z axis.
func RotationZ(angle float32) Matrix4[float32] {
	s, c := math32.Sincos(angle)
	m := Identity4[float32]()
	m.m[0][0], m.m[0][1] = c, s
	m.m[1][0], m.m[1][1] = -s, c
	return m
}

// FromMgl4 converts a mathgl matrix. mathgl stores column-major matrices
// transforming column vectors; that layout is identical to a row-major matrix
// transforming row vectors, so the conversion is a plain copy.
func FromMgl4(m mgl32.Mat4) Matrix4[float32] { return Matrix4FromArray([16]float32(m)) }

// Mgl4 is the inverse of FromMgl4.
func Mgl4(m Matrix4[float32]) mgl32.Mat4 { return mgl32.Mat4(m.Array()) }

// ConvertMatrix4 converts the elements of m to type U.
func ConvertMatrix4[U, T Number](m Matrix4[T]) Matrix4[U] {
	var r Matrix4[U]
	for i := range m.m {
		for j, v := range m.m[i] {
			r.m[i][j] = U(v)
		}
	}
	return r
}
