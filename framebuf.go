package glw

import (
	"image"

	"github.com/db47h/glw/geom"
)

// FrameBuffer represents a render target framebuffer.
type FrameBuffer interface {
	// ID returns the driver name of the framebuffer, 0 for the default one.
	ID() uint32
	Size() image.Point
	View() *View
}

// FbToGL converts framebuffer pixel coordinates to GL coordinates in range [-1, 1].
func FbToGL(fb FrameBuffer, p geom.Vector2F) geom.Vector2F {
	sz := fb.Size()
	return geom.Vector2F{
		X: 2.0*p.X/float32(sz.X) - 1.0,
		Y: -2.0*p.Y/float32(sz.Y) + 1.0,
	}
}

// GLToFb converts GL coordinates in range [-1, 1] to framebuffer pixel coordinates.
func GLToFb(fb FrameBuffer, p geom.Vector2F) geom.Vector2F {
	sz := fb.Size()
	return geom.Vector2F{
		X: (p.X + 1) * float32(sz.X) / 2.0,
		Y: (1 - p.Y) * float32(sz.Y) / 2.0,
	}
}

// A Screen is the default framebuffer of a Context.
type Screen struct {
	ctx *Context
	v   View
}

func newScreen(c *Context, w, h int) *Screen {
	s := &Screen{ctx: c}
	s.v = View{Fb: s, Rect: image.Rect(0, 0, w, h), Scale: 1}
	return s
}

func (s *Screen) ID() uint32 { return 0 }

// Size returns the screen size.
func (s *Screen) Size() image.Point { return s.v.Rect.Size() }

// Bounds returns the screen area as a rectangle with its origin at (0,0).
func (s *Screen) Bounds() geom.RectangleI {
	return geom.RectangleFromImage(s.v.Rect)
}

// Resize must be called whenever the window backing the default framebuffer
// changes size. The fullscreen view follows.
func (s *Screen) Resize(w, h int) error {
	if w <= 0 {
		return SizeError("screen width", w)
	}
	if h <= 0 {
		return SizeError("screen height", h)
	}
	s.v.Rect.Max = image.Pt(w, h)
	s.ctx.log.Debug("screen resized", "width", w, "height", h)
	return nil
}

// View returns the fullscreen view for that screen. The parent screen
// changes the view Rect whenever the Screen size is changed. Client code is
// free to adjust the view Origin and Scale.
func (s *Screen) View() *View { return &s.v }
