package geom

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vector2 is a 2 component vector.
type Vector2[T Number] struct {
	X, Y T
}

// Vector3 is a 3 component vector.
type Vector3[T Number] struct {
	X, Y, Z T
}

// Vector4 is a 4 component vector.
type Vector4[T Number] struct {
	X, Y, Z, W T
}

// Common instantiations.
type (
	Vector2F = Vector2[float32]
	Vector3F = Vector3[float32]
	Vector4F = Vector4[float32]
	Vector2I = Vector2[int32]
	Vector3I = Vector3[int32]
	Vector4I = Vector4[int32]
)

func Vec2[T Number](x, y T) Vector2[T]       { return Vector2[T]{x, y} }
func Vec3[T Number](x, y, z T) Vector3[T]    { return Vector3[T]{x, y, z} }
func Vec4[T Number](x, y, z, w T) Vector4[T] { return Vector4[T]{x, y, z, w} }

// At returns component i: 0 for X, 1 for Y.
func (v Vector2[T]) At(i int) T {
	checkIndex("Vector2", i, 2)
	if i == 0 {
		return v.X
	}
	return v.Y
}

// Set sets component i.
func (v *Vector2[T]) Set(i int, x T) {
	checkIndex("Vector2", i, 2)
	if i == 0 {
		v.X = x
	} else {
		v.Y = x
	}
}

func (v Vector2[T]) Add(o Vector2[T]) Vector2[T] { return Vector2[T]{v.X + o.X, v.Y + o.Y} }
func (v Vector2[T]) Sub(o Vector2[T]) Vector2[T] { return Vector2[T]{v.X - o.X, v.Y - o.Y} }
func (v Vector2[T]) Mul(k T) Vector2[T]          { return Vector2[T]{v.X * k, v.Y * k} }
func (v Vector2[T]) Div(k T) Vector2[T]          { return Vector2[T]{v.X / k, v.Y / k} }
func (v Vector2[T]) Dot(o Vector2[T]) T          { return v.X*o.X + v.Y*o.Y }

// Length returns the euclidean length of v.
func (v Vector2[T]) Length() float32 { return math32.Sqrt(float32(v.Dot(v))) }

// Array returns the components of v.
func (v Vector2[T]) Array() [2]T { return [2]T{v.X, v.Y} }

// Extend returns a Vector3 with v as its X and Y components.
func (v Vector2[T]) Extend(z T) Vector3[T] { return Vector3[T]{v.X, v.Y, z} }

func (v Vector2[T]) String() string { return fmt.Sprintf("(%v,%v)", v.X, v.Y) }

func (v Vector3[T]) At(i int) T {
	checkIndex("Vector3", i, 3)
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return v.Z
}

func (v *Vector3[T]) Set(i int, x T) {
	checkIndex("Vector3", i, 3)
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	default:
		v.Z = x
	}
}

func (v Vector3[T]) Add(o Vector3[T]) Vector3[T] { return Vector3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3[T]) Sub(o Vector3[T]) Vector3[T] { return Vector3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3[T]) Mul(k T) Vector3[T]          { return Vector3[T]{v.X * k, v.Y * k, v.Z * k} }
func (v Vector3[T]) Div(k T) Vector3[T]          { return Vector3[T]{v.X / k, v.Y / k, v.Z / k} }
func (v Vector3[T]) Dot(o Vector3[T]) T          { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product v × o.
func (v Vector3[T]) Cross(o Vector3[T]) Vector3[T] {
	return Vector3[T]{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vector3[T]) Length() float32 { return math32.Sqrt(float32(v.Dot(v))) }

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vector3[T]) Normalize() Vector3[float32] {
	l := v.Length()
	if l == 0 {
		return Vector3[float32]{}
	}
	return Vector3[float32]{float32(v.X) / l, float32(v.Y) / l, float32(v.Z) / l}
}

func (v Vector3[T]) Array() [3]T           { return [3]T{v.X, v.Y, v.Z} }
func (v Vector3[T]) XY() Vector2[T]        { return Vector2[T]{v.X, v.Y} }
func (v Vector3[T]) Extend(w T) Vector4[T] { return Vector4[T]{v.X, v.Y, v.Z, w} }
func (v Vector3[T]) String() string        { return fmt.Sprintf("(%v,%v,%v)", v.X, v.Y, v.Z) }

func (v Vector4[T]) At(i int) T {
	checkIndex("Vector4", i, 4)
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	return v.W
}

func (v *Vector4[T]) Set(i int, x T) {
	checkIndex("Vector4", i, 4)
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	case 2:
		v.Z = x
	default:
		v.W = x
	}
}

func (v Vector4[T]) Add(o Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

func (v Vector4[T]) Sub(o Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

func (v Vector4[T]) Mul(k T) Vector4[T] { return Vector4[T]{v.X * k, v.Y * k, v.Z * k, v.W * k} }
func (v Vector4[T]) Dot(o Vector4[T]) T { return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W }
func (v Vector4[T]) Array() [4]T        { return [4]T{v.X, v.Y, v.Z, v.W} }
func (v Vector4[T]) XYZ() Vector3[T]    { return Vector3[T]{v.X, v.Y, v.Z} }
func (v Vector4[T]) String() string     { return fmt.Sprintf("(%v,%v,%v,%v)", v.X, v.Y, v.Z, v.W) }

// ConvertVector2 converts the components of v to type U.
func ConvertVector2[U, T Number](v Vector2[T]) Vector2[U] {
	return Vector2[U]{U(v.X), U(v.Y)}
}

func ConvertVector3[U, T Number](v Vector3[T]) Vector3[U] {
	return Vector3[U]{U(v.X), U(v.Y), U(v.Z)}
}

func ConvertVector4[U, T Number](v Vector4[T]) Vector4[U] {
	return Vector4[U]{U(v.X), U(v.Y), U(v.Z), U(v.W)}
}

// vector accessors used by the generated matrix code.

func vec2From[T Number](a []T) Vector2[T] { return Vector2[T]{a[0], a[1]} }
func vec3From[T Number](a []T) Vector3[T] { return Vector3[T]{a[0], a[1], a[2]} }
func vec4From[T Number](a []T) Vector4[T] { return Vector4[T]{a[0], a[1], a[2], a[3]} }
