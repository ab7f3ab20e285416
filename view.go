package glw

import (
	"image"

	"github.com/db47h/glw/geom"
)

// Drawable is a textured quad batches can draw.
type Drawable interface {
	Origin() image.Point
	Size() image.Point
	UV() [4]float32
	NativeID() uint32
}

// Binder is implemented by drawables that need extra setup when their
// texture gets bound.
type Binder interface {
	OnBind(c *Context)
}

// A View is a 2D camera: it maps a region of the world onto a rectangle of a
// FrameBuffer.
type View struct {
	Fb FrameBuffer
	// Rect is the target area in framebuffer pixels, (0,0) being the top left
	// corner.
	Rect image.Rectangle
	// Origin is the world position shown at the top left of Rect.
	Origin geom.Vector2F
	Scale  float32
}

// CenterOn moves the view so that world position p is in the middle of Rect.
func (v *View) CenterOn(p geom.Vector2F) {
	v.Origin.X = p.X - float32(v.Rect.Dx())/(2*v.Scale)
	v.Origin.Y = p.Y - float32(v.Rect.Dy())/(2*v.Scale)
}

func (v *View) Size() image.Point { return v.Rect.Size() }

// ProjectionMatrix returns the orthographic projection from world to clip
// space for this view.
func (v *View) ProjectionMatrix() geom.Matrix4[float32] {
	sX, sY := float32(v.Rect.Dx()), float32(v.Rect.Dy())
	z2 := v.Scale * 2
	return geom.Matrix4FromArray([16]float32{
		z2 / sX, 0, 0, 0,
		0, -z2 / sY, 0, 0,
		0, 0, -1, 0,
		-(sX + v.Origin.X*z2) / sX, (sY + v.Origin.Y*z2) / sY, 0, 1,
	})
}

// GLRect returns Rect in OpenGL window coordinates, where (0,0) is the bottom
// left corner of the framebuffer. It is suitable for viewport and scissor
// boxes.
func (v *View) GLRect() geom.RectangleI {
	fh := v.Fb.Size().Y
	return geom.RectangleI{
		X:      int32(v.Rect.Min.X),
		Y:      int32(fh - v.Rect.Max.Y),
		Width:  int32(v.Rect.Dx()),
		Height: int32(v.Rect.Dy()),
	}
}

// ViewToWorld converts a point in framebuffer pixels to world coordinates.
func (v *View) ViewToWorld(p geom.Vector2F) geom.Vector2F {
	return geom.Vector2F{
		X: (p.X-float32(v.Rect.Min.X))/v.Scale + v.Origin.X,
		Y: (p.Y-float32(v.Rect.Min.Y))/v.Scale + v.Origin.Y,
	}
}

// WorldToView is the inverse of ViewToWorld.
func (v *View) WorldToView(p geom.Vector2F) geom.Vector2F {
	return geom.Vector2F{
		X: (p.X-v.Origin.X)*v.Scale + float32(v.Rect.Min.X),
		Y: (p.Y-v.Origin.Y)*v.Scale + float32(v.Rect.Min.Y),
	}
}
