package glw_test

import (
	"image"
	"testing"

	"github.com/db47h/glw/geom"
	"github.com/stretchr/testify/assert"
)

func TestViewProjection(t *testing.T) {
	c, _ := newContext(t)
	v := *c.Screen().View()
	v.Rect = image.Rect(100, 50, 500, 350)
	v.Scale = 2
	v.CenterOn(geom.Vec2[float32](0, 0))
	assert.Equal(t, geom.Vec2[float32](-100, -75), v.Origin)

	m := v.ProjectionMatrix()
	tl := m.Transform(geom.Vec4(v.Origin.X, v.Origin.Y, 0, 1))
	assert.InDelta(t, -1, tl.X, 1e-6)
	assert.InDelta(t, 1, tl.Y, 1e-6)
	c0 := m.Transform(geom.Vec4[float32](0, 0, 0, 1))
	assert.InDelta(t, 0, c0.X, 1e-6)
	assert.InDelta(t, 0, c0.Y, 1e-6)

	assert.Equal(t, geom.Rect[int32](100, 250, 400, 300), v.GLRect())

	w := v.ViewToWorld(geom.Vec2[float32](300, 200))
	assert.Equal(t, geom.Vec2[float32](0, 0), w)
	assert.Equal(t, geom.Vec2[float32](300, 200), v.WorldToView(w))
}
