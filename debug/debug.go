// Package debug provides frame timing and on-screen info boxes.
package debug

import (
	"image"
	"image/color"
	"time"

	"github.com/db47h/glw"
	"github.com/db47h/glw/batch"
	"github.com/db47h/glw/gl"
	"github.com/db47h/glw/state"
	"github.com/db47h/glw/text"
)

const samples = 32

// Timer keeps a moving average of the last 32 durations added to it.
type Timer struct {
	times [samples]time.Duration
	index int
	n     int
}

func (t *Timer) Add(dt time.Duration) {
	t.times[t.index] = dt
	t.index = (t.index + 1) & (samples - 1)
	if t.n < samples {
		t.n++
	}
}

// Average returns the average of the recorded samples, or 0 if none.
func (t *Timer) Average() time.Duration {
	if t.n == 0 {
		return 0
	}
	var avg time.Duration
	for _, dt := range t.times[:t.n] {
		avg += dt
	}
	return avg / time.Duration(t.n)
}

// AveragePerSecond returns how many times the average duration fits in a
// second. This is the frame rate when the samples are frame times.
func (t *Timer) AveragePerSecond() float64 {
	avg := t.Average()
	if avg == 0 {
		return 0
	}
	return float64(time.Second) / float64(avg)
}

// Corner selects where an info box is placed within its parent view.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// InfoBox draws single lines of text on an opaque background, in a corner of a
// view.
type InfoBox struct {
	ctx *glw.Context
	b   *batch.Batch
	td  *text.Drawer
	sc  *state.Scissor
	rs  *state.RenderState

	// Foreground is the text color. Defaults to white.
	Foreground color.Color
}

// NewInfoBox returns an InfoBox drawing with b and td. Background sets the
// color the box is cleared to.
func NewInfoBox(c *glw.Context, b *batch.Batch, td *text.Drawer, background color.Color) *InfoBox {
	rs := state.NewRenderState()
	rs.SetClearColor(background)
	sc, _ := state.NewScissor(0, 0, 1, 1)
	return &InfoBox{ctx: c, b: b, td: td, sc: sc, rs: rs, Foreground: color.White}
}

func (ib *InfoBox) box(v *glw.View, corner Corner, sz image.Point) image.Rectangle {
	r := v.Rect
	switch corner {
	case TopRight:
		return image.Rect(r.Max.X-sz.X, r.Min.Y, r.Max.X, r.Min.Y+sz.Y)
	case BottomLeft:
		return image.Rect(r.Min.X, r.Max.Y-sz.Y, r.Min.X+sz.X, r.Max.Y)
	case BottomRight:
		return image.Rectangle{Min: r.Max.Sub(sz), Max: r.Max}
	}
	return image.Rectangle{Min: r.Min, Max: r.Min.Add(sz)}
}

// Draw draws s in the given corner of v. The viewport, scissor and render
// state of the context are restored before returning.
func (ib *InfoBox) Draw(v *glw.View, corner Corner, s string) error {
	bounds, _ := ib.td.BoundString(s)
	tr := image.Rect(bounds.Min.X.Floor(), bounds.Min.Y.Floor(), bounds.Max.X.Ceil(), bounds.Max.Y.Ceil())
	if tr.Empty() {
		return nil
	}
	sz := tr.Size().Add(image.Pt(2, 2))
	dbgView := glw.View{Fb: v.Fb, Rect: ib.box(v, corner, sz), Scale: 1}

	prevSc, prevRS, prevVP := state.ScissorOf(ib.ctx), state.RenderStateOf(ib.ctx), state.ViewportOf(ib.ctx)
	defer func() {
		state.SetViewport(ib.ctx, prevVP)
		state.SetRenderState(ib.ctx, prevRS)
		state.SetScissor(ib.ctx, prevSc)
	}()

	if err := ib.sc.SetBox(dbgView.GLRect()); err != nil {
		return err
	}
	state.SetScissor(ib.ctx, ib.sc)
	state.SetRenderState(ib.ctx, ib.rs)
	state.Clear(ib.ctx, gl.GL_COLOR_BUFFER_BIT)

	if err := ib.b.SetView(&dbgView); err != nil {
		return err
	}
	ib.b.Begin()
	ib.td.DrawString(ib.b, float32(1-tr.Min.X), float32(1-tr.Min.Y), s, ib.Foreground)
	ib.b.End()
	return nil
}
