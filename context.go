package glw

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/db47h/glw/gl"
	"github.com/pkg/errors"
)

// Kind identifies a category of state façade.
type Kind int

const (
	KindDepth Kind = iota
	KindViewport
	KindScissor
	KindRender
	numKinds
)

func (k Kind) String() string {
	switch k {
	case KindDepth:
		return "depth"
	case KindViewport:
		return "viewport"
	case KindScissor:
		return "scissor"
	case KindRender:
		return "render"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

type attachment struct {
	gen uint64
	obj any
}

// Handle identifies one attachment of a façade to a context. The zero Handle
// is never current.
type Handle struct {
	ctx  *Context
	kind Kind
	gen  uint64
}

// Context returns the context h was issued by, or nil.
func (h Handle) Context() *Context { return h.ctx }

// Current reports whether the attachment h identifies is still the current
// one for its category.
func (h Handle) Current() bool {
	return h.ctx != nil && h.gen != 0 && h.ctx.current[h.kind].gen == h.gen
}

// Context is the binding registry of one OpenGL context.
type Context struct {
	gl      gl.Driver
	log     *slog.Logger
	policy  CompilePolicy
	version gl.Version
	limits  Limits
	stereo  bool
	double  bool
	screen  *Screen

	activeUnit uint32
	textures   []map[uint32]uint32
	buffers    map[uint32]uint32
	indexed    map[uint32][]uint32
	drawFB     uint32
	readFB     uint32
	vao        uint32
	program    uint32

	gen     uint64
	current [numKinds]attachment
	tracked []any
}

// None is a context without a driver behind it. All its limits are zero, so
// that binding anything to it panics. Façades that were never attached report
// None as their context.
var None = &Context{
	gl:      gl.Null,
	log:     slog.Default(),
	buffers: make(map[uint32]uint32),
	indexed: make(map[uint32][]uint32),
}

// New wraps the OpenGL context drv talks to. It queries the implementation
// limits and sizes the binding tables accordingly.
func New(drv gl.Driver, cfg Config) (*Context, error) {
	if drv == nil {
		return nil, errors.New("glw: nil driver")
	}
	c := &Context{
		gl:      drv,
		log:     cfg.Logger,
		policy:  cfg.CompilePolicy,
		version: cfg.Version,
		stereo:  cfg.Stereo,
		double:  cfg.DoubleBuffered,
		buffers: make(map[uint32]uint32),
		indexed: make(map[uint32][]uint32),
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	if c.version == (gl.Version{}) {
		v, err := gl.ParseVersion(drv.GetString(gl.GL_VERSION))
		if err != nil {
			return nil, errors.Wrap(err, "glw: query version")
		}
		c.version = v
	}

	l := &c.limits
	l.TextureUnits = int(drv.GetIntegerv(gl.GL_MAX_COMBINED_TEXTURE_IMAGE_UNITS))
	l.UniformBuffers = int(drv.GetIntegerv(gl.GL_MAX_UNIFORM_BUFFER_BINDINGS))
	l.TransformFeedbackBuffers = int(drv.GetIntegerv(gl.GL_MAX_TRANSFORM_FEEDBACK_BUFFERS))
	l.MaxTextureSize = int(drv.GetIntegerv(gl.GL_MAX_TEXTURE_SIZE))
	if c.version.AtLeast(4, 2) {
		l.AtomicCounterBuffers = int(drv.GetIntegerv(gl.GL_MAX_ATOMIC_COUNTER_BUFFER_BINDINGS))
	}
	if c.version.AtLeast(4, 3) {
		l.ShaderStorageBuffers = int(drv.GetIntegerv(gl.GL_MAX_SHADER_STORAGE_BUFFER_BINDINGS))
	}
	if err := CheckError(drv, "glw: query limits"); err != nil {
		return nil, err
	}

	c.textures = make([]map[uint32]uint32, l.TextureUnits)
	c.indexed[gl.GL_UNIFORM_BUFFER] = make([]uint32, l.UniformBuffers)
	c.indexed[gl.GL_TRANSFORM_FEEDBACK_BUFFER] = make([]uint32, l.TransformFeedbackBuffers)
	c.indexed[gl.GL_ATOMIC_COUNTER_BUFFER] = make([]uint32, l.AtomicCounterBuffers)
	c.indexed[gl.GL_SHADER_STORAGE_BUFFER] = make([]uint32, l.ShaderStorageBuffers)

	c.screen = newScreen(c, cfg.Width, cfg.Height)

	c.log.Debug("context created", "version", c.version, "textureUnits", l.TextureUnits,
		"uniformBuffers", l.UniformBuffers, "stereo", c.stereo, "doubleBuffered", c.double)
	return c, nil
}

// GL returns the driver.
func (c *Context) GL() gl.Driver { return c.gl }

func (c *Context) Logger() *slog.Logger         { return c.log }
func (c *Context) CompilePolicy() CompilePolicy { return c.policy }
func (c *Context) Version() gl.Version          { return c.version }
func (c *Context) Limits() Limits               { return c.limits }
func (c *Context) Stereo() bool                 { return c.stereo }
func (c *Context) DoubleBuffered() bool         { return c.double }

// Screen returns the default framebuffer.
func (c *Context) Screen() *Screen { return c.screen }

// Attach makes obj the current object of category k and returns the handle
// identifying this attachment. Any previously issued handle for k stops being
// current.
func (c *Context) Attach(k Kind, obj any) Handle {
	c.gen++
	c.current[k] = attachment{gen: c.gen, obj: obj}
	return Handle{ctx: c, kind: k, gen: c.gen}
}

// Attached returns the current object of category k, or nil.
func (c *Context) Attached(k Kind) any { return c.current[k].obj }

// ActiveUnit returns the index of the active texture unit.
func (c *Context) ActiveUnit() uint32 { return c.activeUnit }

func (c *Context) SetActiveUnit(unit uint32) {
	c.checkUnit(unit)
	c.activeUnit = unit
}

func (c *Context) checkUnit(unit uint32) {
	if int(unit) >= len(c.textures) {
		panic(errors.Errorf("glw: texture unit %d out of range [0, %d)", unit, len(c.textures)))
	}
}

// Texture returns the texture bound to target on the given unit.
func (c *Context) Texture(unit, target uint32) uint32 {
	c.checkUnit(unit)
	return c.textures[unit][target]
}

func (c *Context) SetTexture(unit, target, texture uint32) {
	c.checkUnit(unit)
	m := c.textures[unit]
	if m == nil {
		m = make(map[uint32]uint32)
		c.textures[unit] = m
	}
	m[target] = texture
}

// Buffer returns the buffer bound to the generic binding point of target.
func (c *Context) Buffer(target uint32) uint32 { return c.buffers[target] }

func (c *Context) SetBuffer(target, buffer uint32) { c.buffers[target] = buffer }

// IndexedBuffer returns the buffer bound to the given index of an indexed
// target (uniform, transform feedback, atomic counter or shader storage
// buffers).
func (c *Context) IndexedBuffer(target, index uint32) uint32 {
	return c.indexedSlots(target, index)[index]
}

func (c *Context) SetIndexedBuffer(target, index, buffer uint32) {
	c.indexedSlots(target, index)[index] = buffer
}

func (c *Context) indexedSlots(target, index uint32) []uint32 {
	s, ok := c.indexed[target]
	if !ok {
		panic(errors.Errorf("glw: buffer target %#x is not indexed", target))
	}
	if int(index) >= len(s) {
		panic(errors.Errorf("glw: buffer index %d out of range [0, %d) for target %#x", index, len(s), target))
	}
	return s
}

// Framebuffers returns the framebuffers bound for drawing and reading.
func (c *Context) Framebuffers() (draw, read uint32) { return c.drawFB, c.readFB }

// SetFramebuffer records a framebuffer binding. GL_FRAMEBUFFER sets both the
// draw and read bindings.
func (c *Context) SetFramebuffer(target, fb uint32) {
	switch target {
	case gl.GL_FRAMEBUFFER:
		c.drawFB, c.readFB = fb, fb
	case gl.GL_DRAW_FRAMEBUFFER:
		c.drawFB = fb
	case gl.GL_READ_FRAMEBUFFER:
		c.readFB = fb
	default:
		panic(errors.Errorf("glw: invalid framebuffer target %#x", target))
	}
}

func (c *Context) VertexArray() uint32       { return c.vao }
func (c *Context) SetVertexArray(vao uint32) { c.vao = vao }
func (c *Context) Program() uint32           { return c.program }
func (c *Context) SetProgram(program uint32) { c.program = program }

// ForgetTexture clears every binding of texture. Deleting a bound object
// makes the driver revert its binding points to 0.
func (c *Context) ForgetTexture(texture uint32) {
	for _, m := range c.textures {
		for t, v := range m {
			if v == texture {
				m[t] = 0
			}
		}
	}
}

func (c *Context) ForgetBuffer(buffer uint32) {
	for t, v := range c.buffers {
		if v == buffer {
			c.buffers[t] = 0
		}
	}
	for _, s := range c.indexed {
		for i, v := range s {
			if v == buffer {
				s[i] = 0
			}
		}
	}
}

func (c *Context) ForgetFramebuffer(fb uint32) {
	if c.drawFB == fb {
		c.drawFB = 0
	}
	if c.readFB == fb {
		c.readFB = 0
	}
}

func (c *Context) ForgetVertexArray(vao uint32) {
	if c.vao == vao {
		c.vao = 0
	}
}

func (c *Context) ForgetProgram(program uint32) {
	if c.program == program {
		c.program = 0
	}
}

// Track caches obj in c. At most one object per dynamic type is kept: an
// object of the same type tracked earlier is replaced.
func Track(c *Context, obj any) {
	t := reflect.TypeOf(obj)
	for i, o := range c.tracked {
		if reflect.TypeOf(o) == t {
			c.tracked[i] = obj
			return
		}
	}
	c.tracked = append(c.tracked, obj)
}

// Untrack removes obj from the cache. It reports whether obj was found.
func Untrack(c *Context, obj any) bool {
	for i, o := range c.tracked {
		if o == obj {
			c.tracked = append(c.tracked[:i], c.tracked[i+1:]...)
			return true
		}
	}
	return false
}

// Tracked returns the first cached object of type T.
func Tracked[T any](c *Context) (T, bool) {
	for _, o := range c.tracked {
		if v, ok := o.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
