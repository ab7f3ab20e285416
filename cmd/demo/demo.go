package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/chewxy/math32"
	"github.com/db47h/glw"
	"github.com/db47h/glw/app"
	"github.com/db47h/glw/asset"
	"github.com/db47h/glw/batch"
	"github.com/db47h/glw/debug"
	"github.com/db47h/glw/framebuffer"
	"github.com/db47h/glw/geom"
	"github.com/db47h/glw/gl"
	"github.com/db47h/glw/post"
	"github.com/db47h/glw/render3d"
	"github.com/db47h/glw/shader"
	"github.com/db47h/glw/state"
	"github.com/db47h/glw/text"
	"github.com/db47h/glw/texture"
	"github.com/db47h/ofs"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/goregular"
)

type demo struct {
	cfg Config
	log *slog.Logger

	ctx  *glw.Context
	mgr  *asset.Manager
	b    *batch.Batch
	td   *text.Drawer
	info *debug.InfoBox
	fps  debug.Timer

	// td is not cached by mgr
	ownTD bool

	pp       *post.PostProcessing
	shadow   *render3d.ShadowMapper
	lighting *shader.Lighting
	border   *shader.Border
	circle   *shader.Circle
	tint     *shader.Custom
	camera   render3d.PerspectiveMatrix
	depth    *state.DepthState
	rs       *state.RenderState

	cube, floor, panel *render3d.Object3D

	angle float32
	time  float32
}

var (
	_ app.Interface              = (*demo)(nil)
	_ app.FrameBufferSizeHandler = (*demo)(nil)
)

func (d *demo) Init(w app.Window) error {
	c := w.Context()
	d.ctx = c
	d.log.Info("driver", "version", app.DriverVersion(c))

	var ovl ofs.Overlay
	if err := ovl.Add(false, d.cfg.Assets.Dirs...); err != nil {
		return errors.Wrap(err, "asset directories")
	}
	d.mgr = asset.NewManager(c, &ovl,
		asset.TexturePath("textures"),
		asset.FontPath("fonts"),
		asset.ShaderPath("shaders"))

	var err error
	if d.td, err = d.textDrawer(); err != nil {
		return err
	}
	if d.b, err = batch.New(c); err != nil {
		return err
	}
	d.info = debug.NewInfoBox(c, d.b, d.td, color.Black)

	if err = d.initScene(); err != nil {
		return err
	}
	d.installKeys(w)
	return nil
}

func (d *demo) textDrawer() (*text.Drawer, error) {
	if name := d.cfg.Assets.Font; name != "" {
		rc, _ := d.mgr.Preload([]asset.Asset{asset.Font(name)}, false)
		err := asset.Wait(rc)
		if err == nil {
			return d.mgr.TextDrawer(name, 16, text.HintingFull, texture.Nearest)
		}
		d.log.Warn("font not found, using Go Regular", "font", name, "err", err)
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "parse embedded font")
	}
	d.ownTD = true
	return text.NewDrawer(d.ctx, truetype.NewFace(f, &truetype.Options{
		Size:       16,
		SubPixelsX: text.SubPixelsX,
		SubPixelsY: text.SubPixelsY,
	}), texture.Nearest), nil
}

func (d *demo) initScene() error {
	c := d.ctx
	sz := c.Screen().Size()
	var err error

	if d.pp, err = post.New(c, sz.X, sz.Y,
		framebuffer.ColorParameters(texture.Filter(texture.Linear, texture.Linear))); err != nil {
		return err
	}
	ps := d.pp.Shader()
	ps.Exposure, ps.Gamma, ps.Greyscale = d.cfg.Scene.Exposure, d.cfg.Scene.Gamma, d.cfg.Scene.Greyscale

	if d.shadow, err = render3d.NewShadowMapper(c, d.cfg.Scene.ShadowMapSize); err != nil {
		return err
	}
	d.shadow.Light = geom.Vec3[float32](4, 8, 3)
	d.shadow.Fit(geom.CuboidF{X: -5, Y: -0.5, Z: -5, Width: 10, Height: 2, Depth: 10})

	if d.camera, err = render3d.NewPerspective(math32.Pi/4, sz.X, sz.Y, 0.1, 100); err != nil {
		return err
	}
	if d.lighting, err = shader.LightingFor(c); err != nil {
		return err
	}
	d.lighting.LightColour = color.White
	d.lighting.Ambient = 0.15
	if d.border, err = shader.BorderFor(c); err != nil {
		return err
	}
	d.border.Colour = color.NRGBA{R: 32, G: 32, B: 48, A: 192}
	d.border.BorderColour = color.NRGBA{R: 200, G: 200, B: 255, A: 255}
	d.border.Width = 2
	if d.circle, err = shader.CircleFor(c); err != nil {
		return err
	}
	d.circle.Colour = color.NRGBA{R: 255, G: 160, B: 0, A: 255}
	d.circle.Thickness = 0.2

	// the tint shader is optional
	if d.tint, err = d.mgr.Shader("tint"); err != nil {
		d.log.Warn("tint shader unavailable", "err", err)
	}

	if d.cube, err = render3d.NewObject3D(c, render3d.Cube(1)); err != nil {
		return err
	}
	d.cube.Position = geom.Vec3[float32](0, 0.5, 0)
	if d.floor, err = render3d.NewObject3D(c, render3d.Plane(10)); err != nil {
		return err
	}
	if d.panel, err = render3d.NewObject3D(c, render3d.Plane(1)); err != nil {
		return err
	}

	d.depth = state.NewDepthState()
	d.depth.SetTesting(true)
	d.rs = state.NewRenderState()
	d.rs.SetClearColor(color.NRGBA{R: 20, G: 24, B: 40, A: 255})
	d.rs.SetBlending(true)
	// colors are premultiplied
	d.rs.SetBlendFunc(gl.GL_ONE, gl.GL_ONE_MINUS_SRC_ALPHA)
	return nil
}

func (d *demo) installKeys(w app.Window) {
	gw, ok := w.NativeHandle().(*glfw.Window)
	if !ok {
		return
	}
	gw.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			w.Close()
		case glfw.KeyG:
			ps := d.pp.Shader()
			ps.Greyscale = !ps.Greyscale
		case glfw.KeyR:
			if _, err := d.mgr.ReloadShader("tint"); err != nil {
				d.log.Error("reload tint shader", "err", err)
			}
		}
	})
}

func (d *demo) Terminate() error {
	d.panel.Delete()
	d.floor.Delete()
	d.cube.Delete()
	d.shadow.Delete()
	d.pp.Delete()
	d.b.Delete()
	if d.ownTD {
		if err := d.td.Close(); err != nil {
			d.log.Error("close text drawer", "err", err)
		}
	}
	return d.mgr.Close()
}

func (d *demo) OnFrameBufferSize(w app.Window, width, height int) {
	if err := d.camera.SetSize(width, height); err != nil {
		d.log.Error("resize camera", "err", err)
	}
	if err := d.pp.SetSize(width, height); err != nil {
		d.log.Error("resize post-processing", "err", err)
	}
}

func (d *demo) OnUpdate(dt time.Duration) {
	s := float32(dt.Seconds())
	d.angle += s
	d.time += s
	d.cube.Rotation = geom.Rotation(d.angle, geom.Vec3[float32](0, 1, 0))
}

func (d *demo) OnDraw(w app.Window, frameTime, partial time.Duration) {
	c := d.ctx
	d.fps.Add(frameTime)

	state.SetRenderState(c, d.rs)
	state.SetDepthState(c, d.depth)
	d.shadow.Render(d.cube, d.floor)

	eye := geom.Vec3[float32](6, 5, 8)
	d.lighting.View = render3d.LookAt(eye, geom.Vec3[float32](0, 0, 0), geom.Vec3[float32](0, 1, 0))
	d.lighting.Projection = d.camera.Matrix()
	d.lighting.Eye = eye
	d.shadow.Apply(d.lighting)

	d.pp.Begin()
	d.lighting.Colour = color.NRGBA{R: 200, G: 80, B: 60, A: 255}
	d.cube.Draw(d.lighting)
	d.lighting.Colour = color.NRGBA{R: 180, G: 180, B: 180, A: 255}
	d.floor.Draw(d.lighting)
	d.pp.End()

	state.SetDepthState(c, state.DefaultDepth)
	d.drawOverlay()
	state.SetRenderState(c, d.rs)
}

// drawOverlay draws the 2D widgets in screen pixels.
func (d *demo) drawOverlay() {
	v := d.ctx.Screen().View()
	proj := v.ProjectionMatrix()
	upright := geom.Rotation(-math32.Pi/2, geom.Vec3[float32](1, 0, 0))

	d.panel.Rotation = upright
	d.panel.Scale = geom.Vec3[float32](220, 1, 60)
	d.panel.Position = geom.Vec3[float32](130, float32(v.Rect.Dy())-50, 0)
	d.border.Projection = proj
	d.border.Size = geom.Vec2[float32](220, 60)
	d.panel.Draw(d.border)

	d.panel.Scale = geom.Vec3[float32](48, 1, 48)
	d.panel.Position = geom.Vec3[float32](float32(v.Rect.Dx())-40, float32(v.Rect.Dy())-40, 0)
	d.circle.Projection = proj
	d.circle.Thickness = 0.2 + 0.15*math32.Sin(d.time*3)
	d.panel.Draw(d.circle)

	if d.tint != nil {
		if err := d.drawTint(); err != nil {
			d.log.Error("draw tint", "err", err)
			d.tint = nil
		}
	}

	if err := d.info.Draw(v, debug.TopLeft, fmt.Sprintf("%.0f fps", d.fps.AveragePerSecond())); err != nil {
		d.log.Error("info box", "err", err)
	}
	if err := d.info.Draw(v, debug.TopRight, "G: greyscale  R: reload shaders  Esc: quit"); err != nil {
		d.log.Error("info box", "err", err)
	}
	if err := d.b.SetView(v); err != nil {
		d.log.Error("batch view", "err", err)
		return
	}
	d.b.Begin()
	d.td.DrawString(d.b, 20, float32(v.Rect.Dy())-45, "shadow mapping + post-processing", color.White)
	d.b.End()
}

func (d *demo) drawTint() error {
	if err := shader.SetUniform[float32](d.tint, "uRect", -1, -1, 0.5, 0.05); err != nil {
		return err
	}
	if err := shader.SetUniform[float32](d.tint, "uTint", 0.2, 0.6, 1, 0.8); err != nil {
		return err
	}
	if err := shader.SetUniform(d.tint, "uTime", d.time); err != nil {
		return err
	}
	d.panel.Rotation = geom.Identity4[float32]()
	d.panel.Scale = geom.Vec3[float32](1, 1, 1)
	d.panel.Position = geom.Vec3[float32](0, 0, 0)
	d.panel.Draw(d.tint)
	return nil
}
