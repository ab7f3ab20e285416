package state

import (
	"github.com/db47h/glw"
	"github.com/db47h/glw/geom"
	"github.com/db47h/glw/gl"
)

// Viewport mirrors the viewport rectangle, in window coordinates.
type Viewport struct {
	facade
	r geom.RectangleI
}

// NewViewport returns a viewport for the given rectangle. The width and
// height must be positive.
func NewViewport(x, y, width, height int32) (*Viewport, error) {
	if err := checkSize("viewport", width, height); err != nil {
		return nil, err
	}
	return &Viewport{r: geom.Rect(x, y, width, height)}, nil
}

// DefaultViewport returns a locked viewport covering the default framebuffer
// of c.
func DefaultViewport(c *glw.Context) *Viewport {
	v := &Viewport{r: screenBounds(c)}
	v.Lock()
	return v
}

func screenBounds(c *glw.Context) geom.RectangleI {
	if s := c.Screen(); s != nil {
		return s.Bounds()
	}
	return geom.RectangleI{}
}

func (v *Viewport) Clone() *Viewport {
	return &Viewport{r: v.r}
}

func (v *Viewport) View() geom.RectangleI { return v.r }
func (v *Viewport) X() int32              { return v.r.X }
func (v *Viewport) Y() int32              { return v.r.Y }
func (v *Viewport) Width() int32          { return v.r.Width }
func (v *Viewport) Height() int32         { return v.r.Height }

// SetView sets the whole viewport rectangle.
func (v *Viewport) SetView(r geom.RectangleI) error {
	if v.locked {
		return nil
	}
	if err := checkSize("viewport", r.Width, r.Height); err != nil {
		return err
	}
	v.set(r)
	return nil
}

func (v *Viewport) SetPosition(x, y int32) {
	if v.locked {
		return
	}
	v.set(geom.Rect(x, y, v.r.Width, v.r.Height))
}

// SetWidth changes the width, keeping X.
func (v *Viewport) SetWidth(w int32) error {
	if v.locked {
		return nil
	}
	if w <= 0 {
		return glw.SizeError("viewport width", int(w))
	}
	v.set(geom.Rect(v.r.X, v.r.Y, w, v.r.Height))
	return nil
}

// SetHeight changes the height, keeping Y.
func (v *Viewport) SetHeight(h int32) error {
	if v.locked {
		return nil
	}
	if h <= 0 {
		return glw.SizeError("viewport height", int(h))
	}
	v.set(geom.Rect(v.r.X, v.r.Y, v.r.Width, h))
	return nil
}

func (v *Viewport) set(r geom.RectangleI) {
	if v.r == r {
		return
	}
	v.r = r
	if drv := v.live(); drv != nil {
		drv.Viewport(r.X, r.Y, r.Width, r.Height)
	}
}

func (v *Viewport) sync(drv gl.Driver, prev *Viewport) {
	if prev == nil || prev.r != v.r {
		drv.Viewport(v.r.X, v.r.Y, v.r.Width, v.r.Height)
	}
}

// SetViewport makes v the current viewport of c.
func SetViewport(c *glw.Context, v *Viewport) {
	prev, _ := c.Attached(glw.KindViewport).(*Viewport)
	if prev == v {
		if v.settledOn(c) {
			return
		}
		// made current on another context since
		prev = nil
	}
	v.attach(c, glw.KindViewport, v)
	v.sync(c.GL(), prev)
}

// ViewportOf returns the current viewport of c. If none was set, it returns
// DefaultViewport(c).
func ViewportOf(c *glw.Context) *Viewport {
	if v, ok := c.Attached(glw.KindViewport).(*Viewport); ok {
		return v
	}
	return DefaultViewport(c)
}

// Scissor mirrors the scissor test and box.
type Scissor struct {
	facade
	testing bool
	r       geom.RectangleI
}

// NewScissor returns a scissor box with testing enabled.
func NewScissor(x, y, width, height int32) (*Scissor, error) {
	if err := checkSize("scissor", width, height); err != nil {
		return nil, err
	}
	return &Scissor{testing: true, r: geom.Rect(x, y, width, height)}, nil
}

// DefaultScissor returns a locked scissor with testing disabled and a box
// covering the default framebuffer of c.
func DefaultScissor(c *glw.Context) *Scissor {
	s := &Scissor{r: screenBounds(c)}
	s.Lock()
	return s
}

func (s *Scissor) Clone() *Scissor {
	return &Scissor{testing: s.testing, r: s.r}
}

func (s *Scissor) Testing() bool        { return s.testing }
func (s *Scissor) Box() geom.RectangleI { return s.r }
func (s *Scissor) X() int32             { return s.r.X }
func (s *Scissor) Y() int32             { return s.r.Y }
func (s *Scissor) Width() int32         { return s.r.Width }
func (s *Scissor) Height() int32        { return s.r.Height }

// SetTesting enables or disables GL_SCISSOR_TEST.
func (s *Scissor) SetTesting(on bool) {
	if s.locked || s.testing == on {
		return
	}
	s.testing = on
	if drv := s.live(); drv != nil {
		enable(drv, gl.GL_SCISSOR_TEST, on)
	}
}

func (s *Scissor) SetBox(r geom.RectangleI) error {
	if s.locked {
		return nil
	}
	if err := checkSize("scissor", r.Width, r.Height); err != nil {
		return err
	}
	s.set(r)
	return nil
}

func (s *Scissor) SetPosition(x, y int32) {
	if s.locked {
		return
	}
	s.set(geom.Rect(x, y, s.r.Width, s.r.Height))
}

func (s *Scissor) SetWidth(w int32) error {
	if s.locked {
		return nil
	}
	if w <= 0 {
		return glw.SizeError("scissor width", int(w))
	}
	s.set(geom.Rect(s.r.X, s.r.Y, w, s.r.Height))
	return nil
}

func (s *Scissor) SetHeight(h int32) error {
	if s.locked {
		return nil
	}
	if h <= 0 {
		return glw.SizeError("scissor height", int(h))
	}
	s.set(geom.Rect(s.r.X, s.r.Y, s.r.Width, h))
	return nil
}

func (s *Scissor) set(r geom.RectangleI) {
	if s.r == r {
		return
	}
	s.r = r
	if drv := s.live(); drv != nil {
		drv.Scissor(r.X, r.Y, r.Width, r.Height)
	}
}

func (s *Scissor) sync(drv gl.Driver, prev *Scissor) {
	if prev == nil || prev.testing != s.testing {
		enable(drv, gl.GL_SCISSOR_TEST, s.testing)
	}
	if prev == nil || prev.r != s.r {
		drv.Scissor(s.r.X, s.r.Y, s.r.Width, s.r.Height)
	}
}

// SetScissor makes s the current scissor of c.
func SetScissor(c *glw.Context, s *Scissor) {
	prev, _ := c.Attached(glw.KindScissor).(*Scissor)
	if prev == s {
		if s.settledOn(c) {
			return
		}
		// made current on another context since
		prev = nil
	}
	s.attach(c, glw.KindScissor, s)
	s.sync(c.GL(), prev)
}

// ScissorOf returns the current scissor of c, or DefaultScissor(c).
func ScissorOf(c *glw.Context) *Scissor {
	if s, ok := c.Attached(glw.KindScissor).(*Scissor); ok {
		return s
	}
	return DefaultScissor(c)
}
