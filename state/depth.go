package state

import (
	"github.com/db47h/glw"
	"github.com/db47h/glw/gl"
)

// DepthState mirrors the depth buffer state.
type DepthState struct {
	facade
	testing   bool
	fn        uint32
	near, far float64
	mask      bool
}

// DefaultDepth holds the OpenGL initial depth state: testing disabled, depth
// function GL_LESS, range [0, 1] and writes enabled.
var DefaultDepth = func() *DepthState {
	d := NewDepthState()
	d.Lock()
	return d
}()

// NewDepthState returns a DepthState holding the OpenGL defaults.
func NewDepthState() *DepthState {
	return &DepthState{fn: gl.GL_LESS, far: 1, mask: true}
}

// Clone returns an unlocked copy of d that is not current anywhere.
func (d *DepthState) Clone() *DepthState {
	n := *d
	n.facade = facade{}
	return &n
}

func (d *DepthState) Testing() bool              { return d.testing }
func (d *DepthState) Func() uint32               { return d.fn }
func (d *DepthState) Range() (near, far float64) { return d.near, d.far }
func (d *DepthState) Mask() bool                 { return d.mask }

// SetTesting enables or disables GL_DEPTH_TEST.
func (d *DepthState) SetTesting(on bool) {
	if d.locked || d.testing == on {
		return
	}
	d.testing = on
	if drv := d.live(); drv != nil {
		enable(drv, gl.GL_DEPTH_TEST, on)
	}
}

// SetFunc sets the depth comparison function (GL_LESS, GL_LEQUAL, ...).
func (d *DepthState) SetFunc(fn uint32) {
	if d.locked || d.fn == fn {
		return
	}
	d.fn = fn
	if drv := d.live(); drv != nil {
		drv.DepthFunc(fn)
	}
}

func (d *DepthState) SetRange(near, far float64) {
	if d.locked || d.near == near && d.far == far {
		return
	}
	d.near, d.far = near, far
	if drv := d.live(); drv != nil {
		drv.DepthRange(near, far)
	}
}

// SetMask enables or disables writes to the depth buffer.
func (d *DepthState) SetMask(on bool) {
	if d.locked || d.mask == on {
		return
	}
	d.mask = on
	if drv := d.live(); drv != nil {
		drv.DepthMask(on)
	}
}

// sync writes the fields of d that differ from prev. A nil prev writes them
// all.
func (d *DepthState) sync(drv gl.Driver, prev *DepthState) {
	if prev == nil || prev.testing != d.testing {
		enable(drv, gl.GL_DEPTH_TEST, d.testing)
	}
	if prev == nil || prev.fn != d.fn {
		drv.DepthFunc(d.fn)
	}
	if prev == nil || prev.near != d.near || prev.far != d.far {
		drv.DepthRange(d.near, d.far)
	}
	if prev == nil || prev.mask != d.mask {
		drv.DepthMask(d.mask)
	}
}

// SetDepthState makes d the current depth state of c.
func SetDepthState(c *glw.Context, d *DepthState) {
	prev, _ := c.Attached(glw.KindDepth).(*DepthState)
	if prev == d {
		if d.settledOn(c) {
			return
		}
		// made current on another context since
		prev = nil
	}
	d.attach(c, glw.KindDepth, d)
	d.sync(c.GL(), prev)
}

// DepthStateOf returns the current depth state of c, DefaultDepth if none
// was set.
func DepthStateOf(c *glw.Context) *DepthState {
	if d, ok := c.Attached(glw.KindDepth).(*DepthState); ok {
		return d
	}
	return DefaultDepth
}
