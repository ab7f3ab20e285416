// Package state provides shadow copies of OpenGL state.
//
// A façade (DepthState, Viewport, Scissor, RenderState) caches a subset of the
// driver state. Its setters follow one rule:
//
//   - a locked façade ignores every setter;
//   - a façade that is not current on its context only updates its cache;
//   - the current façade updates its cache and writes through to the driver.
//
// A façade becomes current when assigned to a context with SetDepthState,
// SetViewport, etc. which bring the driver in line with every cached value.
// A façade is current on at most one context at a time.
//
// Locked façades can be shared freely, including across contexts. They can be
// assigned like any other, but never report being current.
package state

import (
	"github.com/db47h/glw"
	"github.com/db47h/glw/gl"
)

type facade struct {
	locked bool
	h      glw.Handle
}

// Lock makes the receiver read-only. There is no way back: use Clone to get a
// mutable copy.
func (f *facade) Lock() { f.locked = true }

func (f *facade) Locked() bool { return f.locked }

// Current reports whether writes go through to the driver.
func (f *facade) Current() bool { return !f.locked && f.h.Current() }

// settledOn reports whether the driver of c already holds every value cached
// by f, f being the object attached to c.
func (f *facade) settledOn(c *glw.Context) bool {
	return f.locked || f.h.Current() && f.h.Context() == c
}

// Context returns the context the façade was last assigned to, or glw.None.
func (f *facade) Context() *glw.Context {
	if c := f.h.Context(); c != nil {
		return c
	}
	return glw.None
}

// live returns the driver setters must write through to, or nil.
func (f *facade) live() gl.Driver {
	if f.h.Current() {
		return f.h.Context().GL()
	}
	return nil
}

func (f *facade) attach(c *glw.Context, k glw.Kind, obj any) {
	h := c.Attach(k, obj)
	if !f.locked {
		f.h = h
	}
}

func enable(d gl.Driver, capability uint32, on bool) {
	if on {
		d.Enable(capability)
	} else {
		d.Disable(capability)
	}
}

func checkSize(what string, w, h int32) error {
	if w <= 0 {
		return glw.SizeError(what+" width", int(w))
	}
	if h <= 0 {
		return glw.SizeError(what+" height", int(h))
	}
	return nil
}

// Sync writes every value cached by the current façades to the driver,
// regardless of what the driver is believed to hold. Call it after code
// outside of this package changed the driver state.
func Sync(c *glw.Context) {
	d := c.GL()
	DepthStateOf(c).sync(d, nil)
	ViewportOf(c).sync(d, nil)
	ScissorOf(c).sync(d, nil)
	RenderStateOf(c).sync(d, nil)
}
