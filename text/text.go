// Package text draws strings with a batch.Drawer, caching rendered glyphs in
// texture atlases.
package text

import (
	"image"
	"image/color"
	"unicode/utf8"

	"github.com/db47h/glw"
	"github.com/db47h/glw/batch"
	"github.com/db47h/glw/texture"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	// see subPixels() in github.com/golang/freetype/truetype/face.go
	SubPixelsX    = 8
	subPixelBiasX = 4
	subPixelMaskX = -8
	SubPixelsY    = 8
	subPixelBiasY = 4
	subPixelMaskY = -8
)

// TextureSize is the size of glyph atlas textures. Drawers use the smaller of
// TextureSize and the maximum texture size of their context.
var TextureSize = 1024

// Drawer draws text with a font.Face.
type Drawer struct {
	ctx    *glw.Context
	face   font.Face
	glyphs []*texture.Region
	cache  map[cacheKey]cacheValue
	ts     []*texture.Texture // atlases, the last one is being filled
	p      image.Point        // current point
	lh     int                // line height in current texture
	mf     texture.FilterMode
	size   int
}

type cacheKey struct {
	r  rune
	fx uint8
	fy uint8
}

type cacheValue struct {
	index int // glyph index
	adv   fixed.Int26_6
}

// Hinting selects how to quantize a vector font's glyph nodes.
//
// Not all fonts support hinting.
//
// This is a convenience duplicate of golang.org/x/image/font#Hinting
type Hinting int

const (
	HintingNone     Hinting = Hinting(font.HintingNone)
	HintingVertical         = Hinting(font.HintingVertical)
	HintingFull             = Hinting(font.HintingFull)
)

// NewDrawer returns a drawer for f. magFilter is the magnification filter of
// the atlases, use texture.Nearest for pixel fonts drawn at integer scales.
func NewDrawer(c *glw.Context, f font.Face, magFilter texture.FilterMode) *Drawer {
	size := TextureSize
	if m := c.Limits().MaxTextureSize; m > 0 && m < size {
		size = m
	}
	return &Drawer{
		ctx:   c,
		face:  f,
		cache: make(map[cacheKey]cacheValue),
		mf:    magFilter,
		size:  size,
	}
}

func (d *Drawer) Face() font.Face {
	return d.face
}

// Textures returns the number of atlases in use.
func (d *Drawer) Textures() int { return len(d.ts) }

func (d *Drawer) DrawBytes(b batch.Drawer, x, y float32, s []byte, c color.Color) (advance float32) {
	dot := fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
	sp := dot.X
	prev := rune(-1)
	for len(s) > 0 {
		r, sz := utf8.DecodeRune(s)
		s = s[sz:]
		if prev >= 0 {
			dot.X += d.face.Kern(prev, r)
		}
		dp, glyph, advance := d.Glyph(dot, r)
		if glyph != nil {
			b.Draw(glyph, float32(dp.X), float32(dp.Y), 1, 1, 0, c)
		}
		dot.X += advance
		prev = r
	}
	return float32(dot.X-sp) / 64
}

// DrawString draws s with its baseline starting at (x, y) and returns how
// far the dot advanced.
func (d *Drawer) DrawString(b batch.Drawer, x, y float32, s string, c color.Color) (advance float32) {
	dot := fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
	sp := dot.X
	prev := rune(-1)
	for _, r := range s {
		if prev >= 0 {
			dot.X += d.face.Kern(prev, r)
		}
		dp, glyph, advance := d.Glyph(dot, r)
		if glyph != nil {
			b.Draw(glyph, float32(dp.X), float32(dp.Y), 1, 1, 0, c)
		}
		dot.X += advance
		prev = r
	}
	return float32(dot.X-sp) / 64
}

func (d *Drawer) currentTexture() *texture.Texture {
	l := len(d.ts)
	if l == 0 {
		return nil
	}
	return d.ts[l-1]
}

// Glyph returns the atlas region of r rendered at dot, quantized to
// SubPixelsX and SubPixelsY positions, and where to draw it. gr is nil for
// runes the face has no glyph for, and for blank glyphs.
func (d *Drawer) Glyph(dot fixed.Point26_6, r rune) (dp image.Point, gr *texture.Region, advance fixed.Int26_6) {
	dx, dy := (dot.X+subPixelBiasX)&subPixelMaskX, (dot.Y+subPixelBiasY)&subPixelMaskY
	ix, iy := int(dx>>6), int(dy>>6)

	key := cacheKey{r, uint8(dx & 0x3f), uint8(dy & 0x3f)}
	if v, ok := d.cache[key]; ok {
		if idx := v.index; idx >= 0 {
			return image.Point{X: ix, Y: iy}, d.glyphs[idx], v.adv
		}
		return image.Point{}, nil, v.adv
	}

	dr, mask, maskp, advance, ok := d.face.Glyph(fixed.Point26_6{X: dot.X & 0x3f, Y: dot.Y & 0x3f}, r)
	if !ok {
		return image.Point{}, nil, 0
	}
	sz := dr.Size()
	if sz.X == 0 || sz.Y == 0 {
		// empty glyph
		d.cache[key] = cacheValue{-1, advance}
		return image.Point{}, nil, advance
	}
	if sz.X > d.size || sz.Y > d.size {
		d.ctx.Logger().Warn("glyph larger than atlas", "rune", string(r), "width", sz.X, "height", sz.Y)
		d.cache[key] = cacheValue{-1, advance}
		return image.Point{}, nil, advance
	}
	// adjust point of origin to account for rounding when quantizing subPixels
	org := image.Pt(-dr.Min.X+(ix-dot.X.Floor()), -dr.Min.Y+(iy-dot.Y.Floor()))
	tr := dr.Add(image.Pt(-dr.Min.X+d.p.X, -dr.Min.Y+d.p.Y))
	t := d.currentTexture()
	if t != nil {
		sz := t.Size()
		if tr.Max.X > sz.X {
			d.p = image.Pt(0, d.p.Y+d.lh)
			tr = tr.Add(image.Pt(-tr.Min.X, d.lh))
		}
		if tr.Max.Y > sz.Y {
			t = nil
		}
	}
	if t == nil {
		var err error
		t, err = texture.New(d.ctx, d.size, d.size,
			texture.Wrap(texture.ClampToBorder, texture.ClampToBorder),
			texture.Filter(texture.LinearMipmapLinear, d.mf))
		if err != nil {
			d.ctx.Logger().Error("glyph atlas allocation failed", "error", err)
			return image.Point{}, nil, advance
		}
		// glyphs do not fill their cells: start from transparent black.
		if err = t.SetSubImage(image.Rect(0, 0, d.size, d.size), image.Transparent, image.Point{}); err != nil {
			d.ctx.Logger().Error("glyph atlas clear failed", "error", err)
		}
		d.ts = append(d.ts, t)
		d.p = image.Point{}
		tr = dr.Add(image.Pt(-dr.Min.X, -dr.Min.Y))
		d.lh = 0
	}
	if err := t.SetSubImage(tr, mask, maskp); err != nil {
		d.ctx.Logger().Error("glyph upload failed", "rune", string(r), "error", err)
		return image.Point{}, nil, advance
	}
	d.p.X += tr.Dx() + 1
	if h := tr.Dy() + 1; h > d.lh {
		d.lh = h
	}
	index := len(d.glyphs)
	d.glyphs = append(d.glyphs, t.Region(tr, org))
	d.cache[key] = cacheValue{index, advance}
	return image.Point{X: ix, Y: iy}, d.glyphs[index], advance
}

// Close deletes the atlases and closes the font face.
func (d *Drawer) Close() error {
	for _, t := range d.ts {
		t.Delete()
	}
	d.ts = nil
	d.glyphs = nil
	d.cache = make(map[cacheKey]cacheValue)
	return d.face.Close()
}

// BoundBytes returns the bounding box of s with f, drawn at a dot equal to the origin, as well as the advance.
//
// It is equivalent to BoundString(string(s)) but may be more efficient.
func (d *Drawer) BoundBytes(s []byte) (bounds fixed.Rectangle26_6, advance fixed.Int26_6) {
	return font.BoundBytes(d.face, s)
}

// BoundString returns the bounding box of s with f, drawn at a dot equal to the origin, as well as the advance.
func (d *Drawer) BoundString(s string) (bounds fixed.Rectangle26_6, advance fixed.Int26_6) {
	return font.BoundString(d.face, s)
}

// MeasureBytes returns how far dot would advance by drawing s.
func (d *Drawer) MeasureBytes(s []byte) (advance fixed.Int26_6) {
	return font.MeasureBytes(d.face, s)
}

// MeasureString returns how far dot would advance by drawing s.
func (d *Drawer) MeasureString(s string) (advance fixed.Int26_6) {
	return font.MeasureString(d.face, s)
}
