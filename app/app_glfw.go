package app

import (
	"fmt"
	"time"

	"github.com/db47h/glw"
	"github.com/db47h/glw/gl"
	"github.com/db47h/glw/gl/gogl"
	"github.com/db47h/glw/loop"
	"github.com/db47h/glw/state"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
)

// DriverVersion returns the GLFW version and the vendor and version of the
// OpenGL implementation backing the window. Only valid after Init.
func DriverVersion(c *glw.Context) string {
	return fmt.Sprintf("GLFW %s - %s OpenGL %s", glfw.GetVersionString(), c.GL().GetString(gl.GL_VENDOR), c.Version())
}

var drv driver = new(glfwDriver)

type glfwDriver struct {
	w *window
}

func (d *glfwDriver) init(a Interface, cfg *config) error {
	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "glfw init")
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.Samples, cfg.samples)

	if err := d.createWindow(cfg); err != nil {
		glfw.Terminate()
		return err
	}

	if h, ok := a.(FrameBufferSizeHandler); ok {
		d.w.onFrameBufferSize = h
	}
	return nil
}

func (d *glfwDriver) terminate() {
	if d.w != nil {
		d.w.glfw.Destroy()
		d.w = nil
	}
	glfw.Terminate()
}

func (d *glfwDriver) createWindow(cfg *config) error {
	var (
		monitor *glfw.Monitor
		width   = cfg.w
		height  = cfg.h
	)
	if cfg.fullScreen {
		monitor = glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()
		glfw.WindowHint(glfw.RedBits, mode.RedBits)
		glfw.WindowHint(glfw.GreenBits, mode.GreenBits)
		glfw.WindowHint(glfw.BlueBits, mode.BlueBits)
		glfw.WindowHint(glfw.RefreshRate, mode.RefreshRate)
		width = mode.Width
		height = mode.Height
	}
	if cfg.hidden || (!cfg.fullScreen && cfg.x >= 0 && cfg.y >= 0) {
		glfw.WindowHint(glfw.Visible, glfw.False)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.True)
	}
	w, err := glfw.CreateWindow(width, height, cfg.title, monitor, nil)
	if err != nil {
		return errors.Wrap(err, "create window")
	}
	if !cfg.fullScreen && cfg.x >= 0 && cfg.y >= 0 {
		w.SetPos(cfg.x, cfg.y)
		if !cfg.hidden {
			w.Show()
		}
	}

	w.MakeContextCurrent()
	glfw.SwapInterval(cfg.vsync)

	gd, err := gogl.New()
	if err != nil {
		w.Destroy()
		return err
	}
	fw, fh := w.GetFramebufferSize()
	ctx, err := glw.New(gd, glw.Config{
		Width:          fw,
		Height:         fh,
		DoubleBuffered: true,
		Logger:         cfg.logger,
		CompilePolicy:  cfg.policy,
	})
	if err != nil {
		w.Destroy()
		return err
	}
	d.w = &window{glfw: w, ctx: ctx}
	w.SetFramebufferSizeCallback(d.w.glfwFrameBufferSizeCallback)
	return nil
}

func (d *glfwDriver) updater(a Interface) loop.FixedStepUpdater {
	return &glfwUpdater{w: d.w, a: a}
}

func (d *glfwDriver) window() Window {
	return d.w
}

type glfwUpdater struct {
	w       *window
	a       Interface
	started bool
}

// ProcessEvents swaps buffers, except before the first frame, then polls
// events.
func (u *glfwUpdater) ProcessEvents() bool {
	if u.started {
		u.w.glfw.SwapBuffers()
	}
	u.started = true
	glfw.PollEvents()
	return u.w.glfw.ShouldClose()
}

func (u *glfwUpdater) Update(dt time.Duration) { u.a.OnUpdate(dt) }

func (u *glfwUpdater) Draw(ft, partial time.Duration) {
	u.a.OnDraw(u.w, ft, partial)
}

type window struct {
	glfw              *glfw.Window
	ctx               *glw.Context
	onFrameBufferSize FrameBufferSizeHandler
}

func (w *window) NativeHandle() interface{} { return w.glfw }
func (w *window) Context() *glw.Context     { return w.ctx }
func (w *window) Close()                    { w.glfw.SetShouldClose(true) }

func (w *window) glfwFrameBufferSizeCallback(_ *glfw.Window, width int, height int) {
	// minimized
	if width <= 0 || height <= 0 {
		return
	}
	if err := w.ctx.Screen().Resize(width, height); err != nil {
		w.ctx.Logger().Error("resize screen", "err", err)
		return
	}
	// the default viewport follows the screen
	vp := state.ViewportOf(w.ctx)
	if vp.Locked() {
		state.SetViewport(w.ctx, state.DefaultViewport(w.ctx))
	}
	if h := w.onFrameBufferSize; h != nil {
		h.OnFrameBufferSize(w, width, height)
	}
}
