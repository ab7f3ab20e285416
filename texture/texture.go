// Package texture manages 2D textures through the binding registry of a
// glw.Context.
package texture

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/db47h/glw"
	"github.com/db47h/glw/gl"
	"github.com/db47h/glw/state"
	"github.com/pkg/errors"
)

// FilterMode selects how to filter textures.
type FilterMode int32

// FilterMode values map directly to their OpenGL equivalents.
const (
	Nearest              FilterMode = gl.GL_NEAREST
	Linear               FilterMode = gl.GL_LINEAR
	NearestMipmapNearest FilterMode = gl.GL_NEAREST_MIPMAP_NEAREST
	NearestMipmapLinear  FilterMode = gl.GL_NEAREST_MIPMAP_LINEAR
	LinearMipmapNearest  FilterMode = gl.GL_LINEAR_MIPMAP_NEAREST
	LinearMipmapLinear   FilterMode = gl.GL_LINEAR_MIPMAP_LINEAR
)

func (f FilterMode) mipmap() bool {
	switch f {
	case NearestMipmapNearest, NearestMipmapLinear, LinearMipmapNearest, LinearMipmapLinear:
		return true
	}
	return false
}

// WrapMode selects how textures wrap when texture coordinates get outside of
// the range [0, 1].
//
// When used in conjunction with github.com/db47h/glw/batch, the only settings
// that make sense are ClampToEdge (the default) and ClampToBorder.
type WrapMode int32

// WrapMode values map directly to their OpenGL equivalents.
const (
	Repeat         WrapMode = gl.GL_REPEAT
	MirroredRepeat WrapMode = gl.GL_MIRRORED_REPEAT
	ClampToEdge    WrapMode = gl.GL_CLAMP_TO_EDGE
	ClampToBorder  WrapMode = gl.GL_CLAMP_TO_BORDER
)

// Format is the pixel format of a texture.
type Format int

const (
	// RGBA textures hold 8 bits per channel colors.
	RGBA Format = iota
	// Depth textures hold 24 bits depth values. They are used as depth
	// attachments and sampled as shadow maps.
	Depth
)

func (f Format) String() string {
	if f == Depth {
		return "depth"
	}
	return "rgba"
}

func (f Format) glFormat() (internal int32, format, xtype uint32) {
	if f == Depth {
		return gl.GL_DEPTH_COMPONENT24, gl.GL_DEPTH_COMPONENT, gl.GL_FLOAT
	}
	return gl.GL_RGBA8, gl.GL_RGBA, gl.GL_UNSIGNED_BYTE
}

// A Texture is a glw.Drawable that represents an OpenGL texture.
type Texture struct {
	ctx    *glw.Context
	width  int
	height int
	id     uint32
	format Format
	mipmap bool
	dirty  bool
}

var (
	_ glw.Drawable = (*Texture)(nil)
	_ glw.Binder   = (*Texture)(nil)
)

type tp struct {
	wrapS, wrapT         WrapMode
	minFilter, magFilter FilterMode
	border               color.Color
	compare              uint32
}

// Parameter is implemented by functions setting texture parameters. See New.
type Parameter interface {
	set(*tp)
}

type optionFunc func(*tp)

func (f optionFunc) set(p *tp) {
	f(p)
}

// Wrap sets the GL_TEXTURE_WRAP_S and GL_TEXTURE_WRAP_T texture parameters.
func Wrap(wrapS, wrapT WrapMode) Parameter {
	return optionFunc(func(p *tp) {
		p.wrapS = wrapS
		p.wrapT = wrapT
	})
}

// Filter sets the GL_TEXTURE_MIN_FILTER and GL_TEXTURE_MAG_FILTER texture parameters.
func Filter(min, mag FilterMode) Parameter {
	return optionFunc(func(p *tp) {
		p.minFilter = min
		p.magFilter = mag
	})
}

// BorderColor sets the GL_TEXTURE_BORDER_COLOR texture parameter.
func BorderColor(c color.Color) Parameter {
	return optionFunc(func(p *tp) {
		p.border = c
	})
}

// Compare enables depth comparison with the given function (gl.GL_LEQUAL,
// ...) for depth textures sampled through sampler2DShadow.
func Compare(fn uint32) Parameter {
	return optionFunc(func(p *tp) {
		p.compare = fn
	})
}

func checkSize(c *glw.Context, width, height int) error {
	limit := c.Limits().MaxTextureSize
	if width <= 0 || (limit > 0 && width > limit) {
		return glw.SizeError("texture width", width)
	}
	if height <= 0 || (limit > 0 && height > limit) {
		return glw.SizeError("texture height", height)
	}
	return nil
}

// New Returns a new uninitialized RGBA texture of the given width and height.
func New(c *glw.Context, width, height int, params ...Parameter) (*Texture, error) {
	return newTexture(c, RGBA, width, height, nil, params...)
}

// NewDepth returns a new depth texture. Unless overridden by params, it uses
// nearest filtering and clamps to a white border, so that lookups outside of
// a shadow map read the far plane.
func NewDepth(c *glw.Context, width, height int, params ...Parameter) (*Texture, error) {
	params = append([]Parameter{
		Filter(Nearest, Nearest),
		Wrap(ClampToBorder, ClampToBorder),
		BorderColor(color.White),
	}, params...)
	return newTexture(c, Depth, width, height, nil, params...)
}

// FromImage creates a new texture of the same dimensions as the source image.
// Regardless of the source image type, the resulting texture is always in RGBA
// format.
func FromImage(c *glw.Context, src image.Image, params ...Parameter) (*Texture, error) {
	sr := src.Bounds()
	return newTexture(c, RGBA, sr.Dx(), sr.Dy(), rgbaPixels(src, sr), params...)
}

// rgbaPixels returns the pixels of src within r, tightly packed.
func rgbaPixels(src image.Image, r image.Rectangle) []byte {
	if i, ok := src.(*image.RGBA); ok && i.Stride == 4*r.Dx() && r.In(i.Rect) {
		off := i.PixOffset(r.Min.X, r.Min.Y)
		return i.Pix[off : off+4*r.Dx()*r.Dy()]
	}
	dr := image.Rectangle{Max: r.Size()}
	dst := image.NewRGBA(dr)
	draw.Draw(dst, dr, src, r.Min, draw.Src)
	return dst.Pix
}

func newTexture(c *glw.Context, f Format, width, height int, pix []byte, params ...Parameter) (*Texture, error) {
	if err := checkSize(c, width, height); err != nil {
		return nil, err
	}
	t := &Texture{ctx: c, width: width, height: height, format: f}
	t.id = c.GL().GenTexture()
	t.bind()
	t.setParams(params...)
	t.upload(pix)
	if err := glw.CheckError(c.GL(), "texture: create"); err != nil {
		t.Delete()
		return nil, err
	}
	return t, nil
}

func (t *Texture) bind() {
	state.BindTexture(t.ctx, t.ctx.ActiveUnit(), gl.GL_TEXTURE_2D, t.id)
}

func (t *Texture) upload(pix []byte) {
	d := t.ctx.GL()
	internal, format, xtype := t.format.glFormat()
	// rows of RGBA pixels are always 4 bytes aligned.
	d.PixelStorei(gl.GL_UNPACK_ALIGNMENT, 4)
	d.TexImage2D(gl.GL_TEXTURE_2D, 0, internal, int32(t.width), int32(t.height), format, xtype, pix)
	if t.mipmap && pix != nil {
		d.GenerateMipmap(gl.GL_TEXTURE_2D)
		t.dirty = false
	}
}

// Parameters sets the given texture parameters.
func (t *Texture) Parameters(params ...Parameter) {
	if len(params) == 0 {
		return
	}
	t.bind()
	t.setParams(params...)
}

func (t *Texture) setParams(params ...Parameter) {
	var tp tp
	for _, p := range params {
		p.set(&tp)
	}
	d := t.ctx.GL()
	if tp.wrapS != 0 {
		d.TexParameteri(gl.GL_TEXTURE_2D, gl.GL_TEXTURE_WRAP_S, int32(tp.wrapS))
	}
	if tp.wrapT != 0 {
		d.TexParameteri(gl.GL_TEXTURE_2D, gl.GL_TEXTURE_WRAP_T, int32(tp.wrapT))
	}
	if tp.minFilter != 0 {
		d.TexParameteri(gl.GL_TEXTURE_2D, gl.GL_TEXTURE_MIN_FILTER, int32(tp.minFilter))
		t.mipmap = tp.minFilter.mipmap()
		t.dirty = t.mipmap
	}
	if tp.magFilter != 0 {
		d.TexParameteri(gl.GL_TEXTURE_2D, gl.GL_TEXTURE_MAG_FILTER, int32(tp.magFilter))
	}
	if tp.border != nil {
		c := gl.ToColor(tp.border)
		d.TexParameterfv(gl.GL_TEXTURE_2D, gl.GL_TEXTURE_BORDER_COLOR, []float32{c.R, c.G, c.B, c.A})
	}
	if tp.compare != 0 {
		d.TexParameteri(gl.GL_TEXTURE_2D, gl.GL_TEXTURE_COMPARE_MODE, gl.GL_COMPARE_REF_TO_TEXTURE)
		d.TexParameteri(gl.GL_TEXTURE_2D, gl.GL_TEXTURE_COMPARE_FUNC, int32(tp.compare))
	}
}

// Bind binds the texture to the given texture unit and regenerates mipmaps if
// needed.
func (t *Texture) Bind(unit uint32) {
	state.BindTexture(t.ctx, unit, gl.GL_TEXTURE_2D, t.id)
	t.OnBind(t.ctx)
}

// OnBind regenerates mipmaps if the texture was modified since they were last
// computed. The texture must be bound on the active unit.
func (t *Texture) OnBind(c *glw.Context) {
	if t.dirty {
		c.GL().GenerateMipmap(gl.GL_TEXTURE_2D)
		t.dirty = false
	}
}

// SetSubImage draws src to the texture. It works identically to draw.Draw with
// op set to draw.Src.
func (t *Texture) SetSubImage(dr image.Rectangle, src image.Image, sp image.Point) error {
	if t.format != RGBA {
		return errors.Errorf("texture: SetSubImage on a %v texture", t.format)
	}
	sz := dr.Size()
	if sz.X <= 0 || sz.Y <= 0 {
		return nil
	}
	if !dr.In(image.Rect(0, 0, t.width, t.height)) {
		return errors.Errorf("texture: %v outside of texture bounds %dx%d", dr, t.width, t.height)
	}
	pix := rgbaPixels(src, image.Rectangle{Min: sp, Max: sp.Add(sz)})

	t.bind()
	d := t.ctx.GL()
	d.PixelStorei(gl.GL_UNPACK_ALIGNMENT, 4)
	d.TexSubImage2D(gl.GL_TEXTURE_2D, 0, int32(dr.Min.X), int32(dr.Min.Y), int32(sz.X), int32(sz.Y), gl.GL_RGBA, gl.GL_UNSIGNED_BYTE, pix)
	if t.mipmap {
		t.dirty = true
	}
	return nil
}

// Resize reallocates the texture storage. The texture content is undefined
// afterwards.
func (t *Texture) Resize(width, height int) error {
	if err := checkSize(t.ctx, width, height); err != nil {
		return err
	}
	if width == t.width && height == t.height {
		return nil
	}
	t.width, t.height = width, height
	t.bind()
	t.upload(nil)
	return nil
}

// GLCoords return the coordinates of the point pt mapped to the range [0, 1].
func (t *Texture) GLCoords(pt image.Point) (glX float32, glY float32) {
	return float32(pt.X) / float32(t.width),
		float32(pt.Y) / float32(t.height)
}

// Origin returns the point of origin of the texture.
func (t *Texture) Origin() image.Point {
	return image.Point{}
}

// Size returns the size of the texture.
func (t *Texture) Size() image.Point {
	return image.Point{t.width, t.height}
}

func (t *Texture) Format() Format { return t.format }

// UV returns the texture's UV coordinates in the range [0, 1]
func (t *Texture) UV() [4]float32 {
	return [4]float32{0, 1, 1, 0}
}

// NativeID returns the native identifier of the texture.
func (t *Texture) NativeID() uint32 {
	return t.id
}

// Delete deletes the texture and clears it from the bindings of its context.
func (t *Texture) Delete() {
	if t.id == 0 {
		return
	}
	state.DeleteTexture(t.ctx, t.id)
	t.id = 0
}

// Region returns a region within the texture.
func (t *Texture) Region(bounds image.Rectangle, origin image.Point) *Region {
	return &Region{
		Texture: t,
		origin:  origin,
		bounds:  bounds,
	}
}

// Region is a glw.Drawable that represents a sub-region in a Texture or
// another Region.
type Region struct {
	*Texture
	origin image.Point
	bounds image.Rectangle
}

// Origin returns the point of origin of the region.
func (r *Region) Origin() image.Point {
	return r.origin
}

// Size returns the size of the region.
func (r *Region) Size() image.Point {
	return r.bounds.Size()
}

// UV returns the regions's UV coordinates in the range [0, 1]
func (r *Region) UV() [4]float32 {
	u0, v0 := r.GLCoords(r.bounds.Min)
	u1, v1 := r.GLCoords(r.bounds.Max)
	return [4]float32{u0, v1, u1, v0}
}

// Region returns a sub-region within the Region.
func (r *Region) Region(bounds image.Rectangle, origin image.Point) *Region {
	return &Region{
		Texture: r.Texture,
		origin:  origin.Add(r.bounds.Min),
		bounds:  bounds.Add(r.bounds.Min),
	}
}
