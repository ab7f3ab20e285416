package geom_test

import (
	"image"
	"testing"

	"github.com/db47h/glw/geom"
	"github.com/stretchr/testify/assert"
)

func TestRectangleWidth(t *testing.T) {
	r := geom.Rect[int32](10, 20, 300, 400)
	assert.Equal(t, int32(300), r.Width)
	assert.Equal(t, int32(310), r.Right())

	r.Width = 100
	assert.Equal(t, int32(10), r.X)
	assert.Equal(t, int32(110), r.Right())
}

func TestBoxSymmetricWidth(t *testing.T) {
	b := geom.BoxF{Left: 10, Top: 0, Right: 30, Bottom: 8}
	c := b.Centre()
	b.SetWidth(40)
	assert.Equal(t, float32(40), b.Width())
	assert.Equal(t, c, b.Centre())
	assert.Equal(t, float32(0), b.Left)
	assert.Equal(t, float32(40), b.Right)

	b.SetHeight(2)
	assert.Equal(t, float32(3), b.Top)
	assert.Equal(t, float32(5), b.Bottom)
	assert.Equal(t, c, b.Centre())
}

func TestBoxIntegerWidth(t *testing.T) {
	b := geom.BoxI{Left: 0, Top: 0, Right: 10, Bottom: 10}
	b.SetWidth(4)
	assert.Equal(t, geom.BoxI{Left: 3, Top: 0, Right: 7, Bottom: 10}, b)
	b.SetWidth(5)
	assert.Equal(t, int32(5), b.Width())
	assert.Equal(t, int32(3), b.Left)
}

func TestBoxRectangleRoundTrip(t *testing.T) {
	for _, b := range []geom.BoxI{
		{Left: 0, Top: 0, Right: 800, Bottom: 600},
		{Left: -5, Top: 3, Right: 7, Bottom: 4},
		{},
	} {
		r := b.Rectangle()
		assert.Equal(t, b.Width(), r.Width)
		assert.Equal(t, b.Height(), r.Height)
		assert.Equal(t, b, r.Box())
		assert.Equal(t, r, geom.Rect(r.X, r.Y, r.Width, r.Height).Box().Rectangle())
	}
}

func TestBoxOps(t *testing.T) {
	a := geom.BoxI{Left: 0, Top: 0, Right: 10, Bottom: 10}
	b := geom.BoxI{Left: 5, Top: -5, Right: 15, Bottom: 5}
	assert.Equal(t, geom.BoxI{Left: 5, Top: 0, Right: 10, Bottom: 5}, a.Intersect(b))
	assert.Equal(t, geom.BoxI{Left: 0, Top: -5, Right: 15, Bottom: 10}, a.Union(b))
	assert.Equal(t, geom.BoxI{}, a.Intersect(a.Translate(geom.Vec2[int32](20, 0))))
	assert.Equal(t, a, geom.BoxI{}.Union(a))

	assert.True(t, a.Contains(geom.Vec2[int32](0, 0)))
	assert.False(t, a.Contains(geom.Vec2[int32](10, 5)))
	assert.True(t, a.Rectangle().Contains(geom.Vec2[int32](9, 9)))
}

func TestRectangleImage(t *testing.T) {
	r := geom.Rect[int32](1, 2, 3, 4)
	assert.Equal(t, image.Rect(1, 2, 4, 6), r.Image())
	assert.Equal(t, r, geom.RectangleFromImage(image.Rect(4, 6, 1, 2)))
	assert.Equal(t, geom.Rect[float32](1, 2, 3, 4), geom.ConvertRectangle[float32](r))
}

func TestCuboid(t *testing.T) {
	c := geom.CuboidF{X: 1, Y: 2, Z: 3, Width: 4, Height: 6, Depth: 8}
	b := c.Box3()
	assert.Equal(t, float32(11), b.Back)
	assert.Equal(t, c, b.Cuboid())
	assert.Equal(t, geom.Vec3[float32](3, 5, 7), b.Centre())

	b.SetDepth(2)
	assert.Equal(t, float32(6), b.Front)
	assert.Equal(t, float32(8), b.Back)
	assert.True(t, b.Contains(geom.Vec3[float32](3, 5, 7)))
	assert.False(t, b.Contains(geom.Vec3[float32](3, 5, 9)))
	assert.Equal(t, geom.Rect[float32](1, 2, 4, 6), c.Face())
}
