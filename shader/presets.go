package shader

import (
	"embed"
	"image/color"

	"github.com/db47h/glw"
	"github.com/db47h/glw/geom"
	"github.com/db47h/glw/gl"
	"github.com/db47h/glw/state"
)

//go:embed glsl
var sources embed.FS

// Source returns the embedded GLSL source file with the given name, for
// instance "basic.vert".
func Source(name string) string {
	b, err := sources.ReadFile("glsl/" + name)
	if err != nil {
		panic(err)
	}
	return string(b)
}

// instance returns the program of type T tracked by c, building and tracking
// a new one if there is none.
func instance[T Shader](c *glw.Context, build func(*glw.Context) (T, error)) (T, error) {
	if s, ok := glw.Tracked[T](c); ok {
		return s, nil
	}
	s, err := build(c)
	if err != nil {
		return s, err
	}
	glw.Track(c, s)
	return s, nil
}

func release(s Shader) {
	p := s.Base()
	glw.Untrack(p.ctx, s)
	p.Close()
}

// Basic draws with a flat color, optionally modulated by a texture.
type Basic struct {
	*Program
	Colour color.Color
	// Texture is the 2D texture sampled on unit 0; 0 disables texturing.
	Texture uint32
}

const (
	basicMatrix = iota
	basicColour
	basicTexture
	basicUseTexture
)

func NewBasic(c *glw.Context) (*Basic, error) {
	p, err := New(c, Source("basic.vert"), Source("basic.frag"), basicMatrix,
		"matrix", "uColour", "uTexture", "uUseTexture")
	if err != nil {
		return nil, err
	}
	return &Basic{Program: p}, nil
}

// BasicFor returns the Basic shader shared by all users of c.
func BasicFor(c *glw.Context) (*Basic, error) { return instance(c, NewBasic) }

func (b *Basic) PrepareDraw() {
	b.Program.PrepareDraw()
	b.SetColor(basicColour, b.Colour)
	if b.Texture != 0 {
		state.BindTexture(b.ctx, 0, gl.GL_TEXTURE_2D, b.Texture)
		b.SetInt(basicTexture, 0)
	}
	b.SetBool(basicUseTexture, b.Texture != 0)
}

func (b *Basic) Close() { release(b) }

// Lighting is a Blinn-Phong shader with a single point light and optional
// shadow mapping.
type Lighting struct {
	*Program
	Light       geom.Vector3F
	LightColour color.Color
	Eye         geom.Vector3F
	Ambient     float32
	Colour      color.Color
	// ShadowMap is a depth texture rendered from the light with the
	// LightSpace transform. Shadows are disabled when it is 0.
	ShadowMap  uint32
	LightSpace geom.Matrix4[float32]
}

const (
	lightingMatrix = iota
	lightingModel
	lightingNormal
	lightingLightSpace
	lightingLight
	lightingLightColour
	lightingEye
	lightingAmbient
	lightingColour
	lightingShadowMap
	lightingShadows
)

// ShadowUnit is the texture unit Lighting samples shadow maps from.
const ShadowUnit = 1

func NewLighting(c *glw.Context) (*Lighting, error) {
	p, err := New(c, Source("lighting.vert"), Source("lighting.frag"), lightingMatrix,
		"matrix", "uModel", "uNormalMatrix", "uLightSpace", "uLightPos", "uLightColour",
		"uViewPos", "uAmbient", "uColour", "uShadowMap", "uShadows")
	if err != nil {
		return nil, err
	}
	return &Lighting{Program: p, Ambient: 0.1, LightSpace: geom.Identity4[float32]()}, nil
}

func LightingFor(c *glw.Context) (*Lighting, error) { return instance(c, NewLighting) }

// NormalMatrix returns the matrix transforming normals under Model.
func (l *Lighting) NormalMatrix() geom.Matrix3[float32] {
	inv, ok := l.Model.Inverse()
	if !ok {
		return l.Model.Matrix3()
	}
	return inv.Transpose().Matrix3()
}

func (l *Lighting) PrepareDraw() {
	l.Program.PrepareDraw()
	l.SetMatrix4(lightingModel, l.Model)
	l.SetMatrix3(lightingNormal, l.NormalMatrix())
	l.SetMatrix4(lightingLightSpace, l.LightSpace)
	l.SetVec3(lightingLight, l.Light)
	lc := gl.ToColor(l.LightColour)
	l.SetFloat(lightingLightColour, lc.R, lc.G, lc.B)
	l.SetVec3(lightingEye, l.Eye)
	l.SetFloat(lightingAmbient, l.Ambient)
	l.SetColor(lightingColour, l.Colour)
	if l.ShadowMap != 0 {
		state.BindTexture(l.ctx, ShadowUnit, gl.GL_TEXTURE_2D, l.ShadowMap)
		l.SetInt(lightingShadowMap, ShadowUnit)
	}
	l.SetBool(lightingShadows, l.ShadowMap != 0)
}

func (l *Lighting) Close() { release(l) }

// Border fills a quad with a color and draws a border along its edges. The
// quad is expected to have texture coordinates spanning [0, 1].
type Border struct {
	*Program
	Colour       color.Color
	BorderColour color.Color
	// Width of the border and Size of the quad, in the same unit.
	Width float32
	Size  geom.Vector2F
}

const (
	borderMatrix = iota
	borderColour
	borderBorderColour
	borderWidth
	borderSize
)

func NewBorder(c *glw.Context) (*Border, error) {
	p, err := New(c, Source("quad.vert"), Source("border.frag"), borderMatrix,
		"matrix", "uColour", "uBorderColour", "uBorderWidth", "uSize")
	if err != nil {
		return nil, err
	}
	return &Border{Program: p, Width: 1}, nil
}

func BorderFor(c *glw.Context) (*Border, error) { return instance(c, NewBorder) }

func (b *Border) PrepareDraw() {
	b.Program.PrepareDraw()
	b.SetColor(borderColour, b.Colour)
	b.SetColor(borderBorderColour, b.BorderColour)
	b.SetFloat(borderWidth, b.Width)
	b.SetVec2(borderSize, b.Size)
}

func (b *Border) Close() { release(b) }

// Circle draws a disc or ring inscribed in a quad with texture coordinates
// spanning [0, 1].
type Circle struct {
	*Program
	Colour color.Color
	// Thickness of the ring relative to the radius; 1 draws a disc.
	Thickness float32
	// Softness is the width of the antialiased edge relative to the radius.
	Softness float32
}

const (
	circleMatrix = iota
	circleColour
	circleThickness
	circleSoftness
)

func NewCircle(c *glw.Context) (*Circle, error) {
	p, err := New(c, Source("quad.vert"), Source("circle.frag"), circleMatrix,
		"matrix", "uColour", "uThickness", "uSoftness")
	if err != nil {
		return nil, err
	}
	return &Circle{Program: p, Thickness: 1, Softness: 0.02}, nil
}

func CircleFor(c *glw.Context) (*Circle, error) { return instance(c, NewCircle) }

func (cs *Circle) PrepareDraw() {
	cs.Program.PrepareDraw()
	cs.SetColor(circleColour, cs.Colour)
	cs.SetFloat(circleThickness, cs.Thickness)
	cs.SetFloat(circleSoftness, cs.Softness)
}

func (cs *Circle) Close() { release(cs) }

// DepthMap only writes depth. Set View and Projection to the light transforms
// to render shadow maps.
type DepthMap struct {
	*Program
}

func NewDepthMap(c *glw.Context) (*DepthMap, error) {
	p, err := New(c, Source("depth.vert"), Source("depth.frag"), 0, "matrix")
	if err != nil {
		return nil, err
	}
	return &DepthMap{p}, nil
}

func DepthMapFor(c *glw.Context) (*DepthMap, error) { return instance(c, NewDepthMap) }

func (d *DepthMap) Close() { release(d) }

// Post samples a color texture over a fullscreen quad, applying exposure
// tone mapping and gamma correction.
type Post struct {
	*Program
	Texture   uint32
	Exposure  float32
	Gamma     float32
	Greyscale bool
}

const (
	postTexture = iota
	postExposure
	postGamma
	postGreyscale
)

func NewPost(c *glw.Context) (*Post, error) {
	p, err := New(c, Source("post.vert"), Source("post.frag"), -1,
		"uTexture", "uExposure", "uGamma", "uGreyscale")
	if err != nil {
		return nil, err
	}
	return &Post{Program: p, Exposure: 1, Gamma: 2.2}, nil
}

func PostFor(c *glw.Context) (*Post, error) { return instance(c, NewPost) }

func (p *Post) PrepareDraw() {
	p.Program.PrepareDraw()
	state.BindTexture(p.ctx, 0, gl.GL_TEXTURE_2D, p.Texture)
	p.SetInt(postTexture, 0)
	p.SetFloat(postExposure, p.Exposure)
	p.SetFloat(postGamma, p.Gamma)
	p.SetBool(postGreyscale, p.Greyscale)
}

func (p *Post) Close() { release(p) }

// Sprite draws textured, tinted 2D quads. Vertices hold the position in xy
// and the texture coordinates in zw of attribute 0, and a premultiplied color
// in attribute 1. The projection is the MVP matrix.
type Sprite struct {
	*Program
}

const (
	spriteProjection = iota
	spriteTexture
)

func NewSprite(c *glw.Context) (*Sprite, error) {
	p, err := New(c, Source("sprite.vert"), Source("sprite.frag"), spriteProjection,
		"uProjection", "uTexture")
	if err != nil {
		return nil, err
	}
	return &Sprite{p}, nil
}

func SpriteFor(c *glw.Context) (*Sprite, error) { return instance(c, NewSprite) }

// PrepareDraw uploads the projection and selects texture unit 0 for the
// sampler. Binding the texture is left to the caller.
func (s *Sprite) PrepareDraw() {
	s.Program.PrepareDraw()
	s.SetInt(spriteTexture, 0)
}

func (s *Sprite) Close() { release(s) }
