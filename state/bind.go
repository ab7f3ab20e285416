package state

import (
	"github.com/db47h/glw"
	"github.com/db47h/glw/geom"
	"github.com/db47h/glw/gl"
)

// The bind helpers below update the registry of c and call the driver only
// when the binding actually changes.

// ActiveTexture selects texture unit (0-based) as the active one.
func ActiveTexture(c *glw.Context, unit uint32) {
	if c.ActiveUnit() == unit {
		return
	}
	c.SetActiveUnit(unit)
	c.GL().ActiveTexture(gl.GL_TEXTURE0 + unit)
}

// BindTexture binds texture to target on the given unit. The unit becomes
// the active one if a bind is necessary.
func BindTexture(c *glw.Context, unit, target, texture uint32) {
	if c.Texture(unit, target) == texture {
		return
	}
	ActiveTexture(c, unit)
	c.SetTexture(unit, target, texture)
	c.GL().BindTexture(target, texture)
}

func BindBuffer(c *glw.Context, target, buffer uint32) {
	if c.Buffer(target) == buffer {
		return
	}
	c.SetBuffer(target, buffer)
	c.GL().BindBuffer(target, buffer)
}

// BindBufferBase binds buffer to index of an indexed target. Like the driver
// call, this also binds it to the generic binding point of target.
func BindBufferBase(c *glw.Context, target, index, buffer uint32) {
	if c.IndexedBuffer(target, index) == buffer && c.Buffer(target) == buffer {
		return
	}
	c.SetIndexedBuffer(target, index, buffer)
	c.SetBuffer(target, buffer)
	c.GL().BindBufferBase(target, index, buffer)
}

// BindFramebuffer binds fb to target. GL_FRAMEBUFFER binds both the draw and
// read targets.
func BindFramebuffer(c *glw.Context, target, fb uint32) {
	draw, read := c.Framebuffers()
	switch target {
	case gl.GL_FRAMEBUFFER:
		if draw == fb && read == fb {
			return
		}
	case gl.GL_DRAW_FRAMEBUFFER:
		if draw == fb {
			return
		}
	case gl.GL_READ_FRAMEBUFFER:
		if read == fb {
			return
		}
	}
	c.SetFramebuffer(target, fb)
	c.GL().BindFramebuffer(target, fb)
}

// BindVertexArray binds vao. The element array buffer binding is part of the
// vertex array state, so it is marked unknown in the registry.
func BindVertexArray(c *glw.Context, vao uint32) {
	if c.VertexArray() == vao {
		return
	}
	c.SetVertexArray(vao)
	c.SetBuffer(gl.GL_ELEMENT_ARRAY_BUFFER, glw.Unknown)
	c.GL().BindVertexArray(vao)
}

func UseProgram(c *glw.Context, program uint32) {
	if c.Program() == program {
		return
	}
	c.SetProgram(program)
	c.GL().UseProgram(program)
}

// DeleteTexture deletes texture and clears it from the registry.
func DeleteTexture(c *glw.Context, texture uint32) {
	c.GL().DeleteTexture(texture)
	c.ForgetTexture(texture)
}

func DeleteBuffer(c *glw.Context, buffer uint32) {
	c.GL().DeleteBuffer(buffer)
	c.ForgetBuffer(buffer)
}

func DeleteFramebuffer(c *glw.Context, fb uint32) {
	c.GL().DeleteFramebuffer(fb)
	c.ForgetFramebuffer(fb)
}

func DeleteVertexArray(c *glw.Context, vao uint32) {
	c.GL().DeleteVertexArray(vao)
	c.ForgetVertexArray(vao)
}

func DeleteProgram(c *glw.Context, program uint32) {
	c.GL().DeleteProgram(program)
	c.ForgetProgram(program)
}

// PushFramebuffer binds fb for drawing and reading and makes a viewport
// covering all of it current. The returned function restores the previous
// framebuffers and viewport.
//
//	restore := state.PushFramebuffer(c, shadowMap)
//	defer restore()
func PushFramebuffer(c *glw.Context, fb glw.FrameBuffer) (restore func()) {
	draw, read := c.Framebuffers()
	prev := ViewportOf(c)

	BindFramebuffer(c, gl.GL_FRAMEBUFFER, fb.ID())
	sz := fb.Size()
	v := &Viewport{r: geom.Rect(0, 0, int32(sz.X), int32(sz.Y))}
	SetViewport(c, v)

	return func() {
		if draw == read {
			BindFramebuffer(c, gl.GL_FRAMEBUFFER, draw)
		} else {
			BindFramebuffer(c, gl.GL_DRAW_FRAMEBUFFER, draw)
			BindFramebuffer(c, gl.GL_READ_FRAMEBUFFER, read)
		}
		SetViewport(c, prev)
	}
}
