package debug_test

import (
	"image/color"
	"testing"
	"time"

	"github.com/db47h/glw"
	"github.com/db47h/glw/batch"
	"github.com/db47h/glw/debug"
	"github.com/db47h/glw/gl"
	"github.com/db47h/glw/gl/gltest"
	"github.com/db47h/glw/text"
	"github.com/db47h/glw/texture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func TestTimer(t *testing.T) {
	var tm debug.Timer
	assert.Zero(t, tm.Average())
	assert.Zero(t, tm.AveragePerSecond())

	tm.Add(10 * time.Millisecond)
	tm.Add(30 * time.Millisecond)
	assert.Equal(t, 20*time.Millisecond, tm.Average())
	assert.InDelta(t, 50, tm.AveragePerSecond(), 1e-9)

	// older samples are dropped
	for i := 0; i < 32; i++ {
		tm.Add(time.Millisecond)
	}
	assert.Equal(t, time.Millisecond, tm.Average())
	assert.InDelta(t, 1000, tm.AveragePerSecond(), 1e-9)
}

func newInfoBox(t *testing.T) (*debug.InfoBox, *glw.Context, *gltest.Driver) {
	t.Helper()
	d := gltest.New()
	c, err := glw.New(d, glw.Config{Width: 640, Height: 480, CompilePolicy: glw.FailFast})
	require.NoError(t, err)
	b, err := batch.New(c, batch.Size(64))
	require.NoError(t, err)
	td := text.NewDrawer(c, basicfont.Face7x13, texture.Nearest)
	d.Reset()
	return debug.NewInfoBox(c, b, td, color.Black), c, d
}

func TestInfoBoxCorners(t *testing.T) {
	ib, c, d := newInfoBox(t)
	v := c.Screen().View()

	require.NoError(t, ib.Draw(v, debug.TopLeft, "fps: 60"))
	sr := d.ScissorRect
	assert.Equal(t, int32(0), sr[0])
	assert.Equal(t, int32(480), sr[1]+sr[3])
	assert.Greater(t, int(sr[2]), 0)
	assert.Greater(t, int(sr[3]), 0)

	require.NoError(t, ib.Draw(v, debug.TopRight, "fps: 60"))
	sr = d.ScissorRect
	assert.Equal(t, int32(640), sr[0]+sr[2])
	assert.Equal(t, int32(480), sr[1]+sr[3])

	require.NoError(t, ib.Draw(v, debug.BottomLeft, "fps: 60"))
	sr = d.ScissorRect
	assert.Equal(t, int32(0), sr[0])
	assert.Equal(t, int32(0), sr[1])

	require.NoError(t, ib.Draw(v, debug.BottomRight, "fps: 60"))
	sr = d.ScissorRect
	assert.Equal(t, int32(640), sr[0]+sr[2])
	assert.Equal(t, int32(0), sr[1])
}

func TestInfoBoxRestoresState(t *testing.T) {
	ib, c, d := newInfoBox(t)
	require.NoError(t, ib.Draw(c.Screen().View(), debug.TopLeft, "hello"))

	clears := d.CallsTo("Clear")
	require.Len(t, clears, 1)
	assert.Equal(t, uint32(gl.GL_COLOR_BUFFER_BIT), clears[0].Args[0])
	assert.Equal(t, 1, d.Count("DrawElements"))

	assert.False(t, d.Enabled[gl.GL_SCISSOR_TEST])
	assert.Equal(t, [4]int32{0, 0, 640, 480}, d.ViewportRect)
}

func TestInfoBoxEmpty(t *testing.T) {
	ib, c, d := newInfoBox(t)
	require.NoError(t, ib.Draw(c.Screen().View(), debug.TopLeft, ""))
	assert.Zero(t, d.Count("Clear"))
	assert.Zero(t, d.Count("DrawElements"))
}
