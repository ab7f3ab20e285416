package geom

import "image"

// Box is an axis aligned rectangle stored by its edges. Top is the smaller Y
// coordinate; Right and Bottom are exclusive for integer boxes.
type Box[T Number] struct {
	Left, Top, Right, Bottom T
}

// Rectangle is an axis aligned rectangle stored by origin and extent.
type Rectangle[T Number] struct {
	X, Y, Width, Height T
}

// Box3 is an axis aligned box stored by its faces.
type Box3[T Number] struct {
	Left, Top, Front, Right, Bottom, Back T
}

// Cuboid is an axis aligned box stored by origin and extent.
type Cuboid[T Number] struct {
	X, Y, Z, Width, Height, Depth T
}

type (
	BoxI       = Box[int32]
	BoxF       = Box[float32]
	RectangleI = Rectangle[int32]
	RectangleF = Rectangle[float32]
	CuboidF    = Cuboid[float32]
)

func Rect[T Number](x, y, width, height T) Rectangle[T] {
	return Rectangle[T]{x, y, width, height}
}

func (b Box[T]) Width() T  { return b.Right - b.Left }
func (b Box[T]) Height() T { return b.Bottom - b.Top }

// Centre returns the middle point of b. Integer coordinates round towards
// Left/Top.
func (b Box[T]) Centre() Vector2[T] {
	return Vector2[T]{b.Left + (b.Right-b.Left)/2, b.Top + (b.Bottom-b.Top)/2}
}

// SetWidth moves Left and Right by the same amount around the centre so that
// the width becomes w. With integer coordinates, an odd change in width puts
// the extra unit on the Right edge.
func (b *Box[T]) SetWidth(w T) {
	c := b.Centre().X
	b.Left = c - w/2
	b.Right = b.Left + w
}

// SetHeight is the vertical counterpart of SetWidth.
func (b *Box[T]) SetHeight(h T) {
	c := b.Centre().Y
	b.Top = c - h/2
	b.Bottom = b.Top + h
}

func (b Box[T]) Empty() bool { return b.Left >= b.Right || b.Top >= b.Bottom }

// Contains reports whether p lies inside b. The Right and Bottom edges are
// excluded.
func (b Box[T]) Contains(p Vector2[T]) bool {
	return b.Left <= p.X && p.X < b.Right && b.Top <= p.Y && p.Y < b.Bottom
}

// Intersect returns the largest box contained in both b and o. If they do not
// overlap, the zero Box is returned.
func (b Box[T]) Intersect(o Box[T]) Box[T] {
	r := Box[T]{max(b.Left, o.Left), max(b.Top, o.Top), min(b.Right, o.Right), min(b.Bottom, o.Bottom)}
	if r.Empty() {
		return Box[T]{}
	}
	return r
}

// Union returns the smallest box containing both b and o. Empty boxes are
// ignored.
func (b Box[T]) Union(o Box[T]) Box[T] {
	if b.Empty() {
		return o
	}
	if o.Empty() {
		return b
	}
	return Box[T]{min(b.Left, o.Left), min(b.Top, o.Top), max(b.Right, o.Right), max(b.Bottom, o.Bottom)}
}

func (b Box[T]) Translate(v Vector2[T]) Box[T] {
	return Box[T]{b.Left + v.X, b.Top + v.Y, b.Right + v.X, b.Bottom + v.Y}
}

// Rectangle converts b to origin and extent form.
func (b Box[T]) Rectangle() Rectangle[T] {
	return Rectangle[T]{b.Left, b.Top, b.Width(), b.Height()}
}

func (r Rectangle[T]) Right() T  { return r.X + r.Width }
func (r Rectangle[T]) Bottom() T { return r.Y + r.Height }

func (r Rectangle[T]) Position() Vector2[T] { return Vector2[T]{r.X, r.Y} }
func (r Rectangle[T]) Size() Vector2[T]     { return Vector2[T]{r.Width, r.Height} }

// Box converts r to edge form.
func (r Rectangle[T]) Box() Box[T] {
	return Box[T]{r.X, r.Y, r.X + r.Width, r.Y + r.Height}
}

func (r Rectangle[T]) Contains(p Vector2[T]) bool { return r.Box().Contains(p) }

func (r Rectangle[T]) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Image returns r as an image.Rectangle.
func (r Rectangle[T]) Image() image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X+r.Width), int(r.Y+r.Height))
}

// RectangleFromImage converts an image.Rectangle. The result is canonical.
func RectangleFromImage(r image.Rectangle) RectangleI {
	r = r.Canon()
	return RectangleI{int32(r.Min.X), int32(r.Min.Y), int32(r.Dx()), int32(r.Dy())}
}

func ConvertRectangle[U, T Number](r Rectangle[T]) Rectangle[U] {
	return Rectangle[U]{U(r.X), U(r.Y), U(r.Width), U(r.Height)}
}

func ConvertBox[U, T Number](b Box[T]) Box[U] {
	return Box[U]{U(b.Left), U(b.Top), U(b.Right), U(b.Bottom)}
}

func (b Box3[T]) Width() T  { return b.Right - b.Left }
func (b Box3[T]) Height() T { return b.Bottom - b.Top }
func (b Box3[T]) Depth() T  { return b.Back - b.Front }

func (b Box3[T]) Centre() Vector3[T] {
	return Vector3[T]{
		b.Left + (b.Right-b.Left)/2,
		b.Top + (b.Bottom-b.Top)/2,
		b.Front + (b.Back-b.Front)/2,
	}
}

// SetWidth, SetHeight and SetDepth keep the centre in place, as Box.SetWidth.

func (b *Box3[T]) SetWidth(w T) {
	c := b.Centre().X
	b.Left = c - w/2
	b.Right = b.Left + w
}

func (b *Box3[T]) SetHeight(h T) {
	c := b.Centre().Y
	b.Top = c - h/2
	b.Bottom = b.Top + h
}

func (b *Box3[T]) SetDepth(d T) {
	c := b.Centre().Z
	b.Front = c - d/2
	b.Back = b.Front + d
}

func (b Box3[T]) Contains(p Vector3[T]) bool {
	return b.Left <= p.X && p.X < b.Right &&
		b.Top <= p.Y && p.Y < b.Bottom &&
		b.Front <= p.Z && p.Z < b.Back
}

// Cuboid converts b to origin and extent form.
func (b Box3[T]) Cuboid() Cuboid[T] {
	return Cuboid[T]{b.Left, b.Top, b.Front, b.Width(), b.Height(), b.Depth()}
}

// Box3 converts c to face form.
func (c Cuboid[T]) Box3() Box3[T] {
	return Box3[T]{c.X, c.Y, c.Z, c.X + c.Width, c.Y + c.Height, c.Z + c.Depth}
}

func (c Cuboid[T]) Position() Vector3[T] { return Vector3[T]{c.X, c.Y, c.Z} }
func (c Cuboid[T]) Size() Vector3[T]     { return Vector3[T]{c.Width, c.Height, c.Depth} }

// Face returns the rectangle of c projected on the XY plane.
func (c Cuboid[T]) Face() Rectangle[T] { return Rectangle[T]{c.X, c.Y, c.Width, c.Height} }
