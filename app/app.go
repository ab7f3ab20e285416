// Package app runs an application in a single window, driving a fixed
// timestep update loop.
package app

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/db47h/glw"
	"github.com/db47h/glw/loop"
)

func init() {
	runtime.LockOSThread()
}

// Main creates the window and its glw.Context, then runs a until the window
// is closed or ctx is done.
func Main(ctx context.Context, a Interface, opts ...Option) error {
	cfg := newConfig(opts...)
	if err := drv.init(a, cfg); err != nil {
		return err
	}
	defer drv.terminate()
	if err := a.Init(drv.window()); err != nil {
		return err
	}
	l := loop.FixedStep{DT: cfg.dt, MaxFT: cfg.maxFT}
	err := l.Run(ctx, drv.updater(a))
	if terr := a.Terminate(); err == nil {
		err = terr
	}
	return err
}

type Window interface {
	NativeHandle() interface{}
	// Context returns the OpenGL context of the window. Its Screen is resized
	// along with the window framebuffer.
	Context() *glw.Context
	// Close requests the main loop to stop after the current frame.
	Close()
}

type driver interface {
	init(Interface, *config) error
	terminate()
	updater(Interface) loop.FixedStepUpdater
	window() Window
}

type Interface interface {
	Init(Window) error
	Terminate() error

	OnUpdate(time.Duration)
	OnDraw(w Window, frameTime, partialTimestep time.Duration)
}

// FrameBufferSizeHandler is implemented by applications that want to be
// notified of framebuffer size changes. The context Screen is already resized
// when OnFrameBufferSize is called.
type FrameBufferSizeHandler interface {
	OnFrameBufferSize(w Window, width, height int)
}

type Option interface {
	set(*config)
}

type config struct {
	fullScreen bool
	hidden     bool
	x, y, w, h int
	title      string
	samples    int
	vsync      int
	dt, maxFT  time.Duration
	logger     *slog.Logger
	policy     glw.CompilePolicy
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		title:   "glw",
		x:       -1,
		y:       -1,
		w:       800,
		h:       600,
		samples: 4,
		vsync:   1,
		dt:      time.Second / 60,
		maxFT:   loop.DefaultMaxFT,
	}
	for _, o := range opts {
		o.set(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	return cfg
}

type option func(*config)

func (f option) set(cfg *config) {
	f(cfg)
}

func Title(title string) Option {
	return option(func(cfg *config) {
		cfg.title = title
	})
}

// Pos sets the initial window position. Negative values let the window
// manager decide.
func Pos(x, y int) Option {
	return option(func(cfg *config) {
		cfg.x, cfg.y = x, y
	})
}

func Size(w, h int) Option {
	return option(func(cfg *config) {
		cfg.w, cfg.h = w, h
	})
}

// FullScreen opens the window full screen on the primary monitor, using its
// current video mode.
func FullScreen() Option {
	return option(func(cfg *config) {
		cfg.fullScreen = true
	})
}

func Visible(b bool) Option {
	return option(func(cfg *config) {
		cfg.hidden = !b
	})
}

// Samples sets the number of samples for multisampling. 0 disables it.
func Samples(n int) Option {
	return option(func(cfg *config) {
		cfg.samples = n
	})
}

// VSync sets the swap interval.
func VSync(interval int) Option {
	return option(func(cfg *config) {
		cfg.vsync = interval
	})
}

// Timestep sets the duration of one update step. The default is 1/60th of a
// second.
func Timestep(dt time.Duration) Option {
	return option(func(cfg *config) {
		cfg.dt = dt
	})
}

// MaxFrameTime caps the time accounted for a single frame, so that a long
// stall does not trigger a burst of updates.
func MaxFrameTime(ft time.Duration) Option {
	return option(func(cfg *config) {
		cfg.maxFT = ft
	})
}

// Logger sets the logger of the window context.
func Logger(l *slog.Logger) Option {
	return option(func(cfg *config) {
		cfg.logger = l
	})
}

// CompilePolicy sets the shader compile policy of the window context.
func CompilePolicy(p glw.CompilePolicy) Option {
	return option(func(cfg *config) {
		cfg.policy = p
	})
}
