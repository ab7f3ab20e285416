package asset_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/db47h/glw"
	"github.com/db47h/glw/asset"
	"github.com/db47h/glw/gl/gltest"
	"github.com/db47h/glw/text"
	"github.com/db47h/glw/texture"
	"github.com/db47h/ofs"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	flatVert = `#version 330 core
layout(location = 0) in vec3 aPos;
uniform mat4 matrix;
void main() { gl_Position = matrix * vec4(aPos, 1.0); }
`
	flatFrag = `#version 330 core
uniform vec4 uColour;
out vec4 fragColour;
void main() { fragColour = uColour; }
`
)

func writeFile(t *testing.T, name string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(name), 0o755))
	require.NoError(t, os.WriteFile(name, data, 0o644))
}

func newManager(t *testing.T) (*asset.Manager, *gltest.Driver, string) {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "files", "readme.txt"), []byte("hello"))
	writeFile(t, filepath.Join(dir, "fonts", "go.ttf"), goregular.TTF)
	writeFile(t, filepath.Join(dir, "shaders", "flat.vert"), []byte(flatVert))
	writeFile(t, filepath.Join(dir, "shaders", "flat.frag"), []byte(flatFrag))

	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	f, err := os.Create(filepath.Join(dir, "a.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	var ovl ofs.Overlay
	require.NoError(t, ovl.Add(false, dir))

	d := gltest.New()
	c, err := glw.New(d, glw.Config{Width: 640, Height: 480, CompilePolicy: glw.FailFast})
	require.NoError(t, err)
	d.Reset()
	m := asset.NewManager(c, &ovl,
		asset.FilePath("files"),
		asset.FontPath("fonts"),
		asset.ShaderPath("shaders"))
	return m, d, dir
}

func TestFile(t *testing.T) {
	m, _, _ := newManager(t)
	data, err := m.File("readme.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	_, err = m.File("missing.txt")
	assert.Error(t, err)
	// a file and a texture with the same name are different assets
	_, err = m.Texture("readme.txt")
	assert.Error(t, err)

	require.NoError(t, m.Discard(asset.File("readme.txt")))
	assert.True(t, errors.Is(m.Discard(asset.File("readme.txt")), asset.ErrMissingAsset))
}

func TestTexture(t *testing.T) {
	m, d, _ := newManager(t)
	img, err := m.Image("a.png")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 3), img.Bounds())

	tx, err := m.Texture("a.png", texture.Filter(texture.Nearest, texture.Nearest))
	require.NoError(t, err)
	assert.Equal(t, image.Pt(2, 3), tx.Size())
	require.Equal(t, 1, d.Count("TexImage2D"))
	assert.Equal(t, 2*3*4, d.CallsTo("TexImage2D")[0].Args[7])

	tx2, err := m.Texture("a.png")
	require.NoError(t, err)
	assert.Same(t, tx, tx2)
	assert.Equal(t, 1, d.Count("TexImage2D"))
	_, err = m.Image("a.png")
	assert.Error(t, err)

	require.NoError(t, m.Discard(asset.Texture("a.png")))
	assert.Equal(t, 1, d.Count("DeleteTexture"))
}

func TestFont(t *testing.T) {
	m, _, _ := newManager(t)
	f, err := m.Font("go.ttf")
	require.NoError(t, err)
	assert.NotNil(t, f)

	td, err := m.TextDrawer("go.ttf", 12, text.HintingFull, texture.Linear)
	require.NoError(t, err)
	td2, err := m.TextDrawer("go.ttf", 12, text.HintingFull, texture.Linear)
	require.NoError(t, err)
	assert.Same(t, td, td2)
	td3, err := m.TextDrawer("go.ttf", 16, text.HintingFull, texture.Linear)
	require.NoError(t, err)
	assert.NotSame(t, td, td3)
	assert.Greater(t, int(td3.MeasureString("glw")), int(td.MeasureString("glw")))

	_, err = m.Font("missing.ttf")
	assert.Error(t, err)
}

func TestShader(t *testing.T) {
	m, d, dir := newManager(t)
	s, err := m.Shader("flat")
	require.NoError(t, err)
	assert.True(t, s.Declared("uColour"))
	assert.True(t, s.Declared("matrix"))
	s2, err := m.Shader("flat")
	require.NoError(t, err)
	assert.Same(t, s, s2)
	assert.Equal(t, 1, d.Count("CreateProgram"))

	writeFile(t, filepath.Join(dir, "shaders", "flat.frag"), []byte(`#version 330 core
uniform vec4 uTint;
out vec4 fragColour;
void main() { fragColour = uTint; }
`))
	old := s.ID()
	s3, err := m.ReloadShader("flat")
	require.NoError(t, err)
	assert.Same(t, s, s3)
	assert.NotEqual(t, old, s.ID())
	assert.True(t, s.Declared("uTint"))
	assert.False(t, s.Declared("uColour"))

	// build failures follow the compile policy of the context
	d.CompileErrors["uTint"] = "0:2: syntax error"
	_, err = m.ReloadShader("flat")
	assert.Error(t, err)

	_, err = m.Shader("missing")
	assert.Error(t, err)
}

func TestPreload(t *testing.T) {
	m, d, _ := newManager(t)
	rc, n := m.Preload([]asset.Asset{
		asset.File("readme.txt"),
		asset.Texture("a.png"),
		asset.Font("go.ttf"),
		asset.File("missing.txt"),
	}, false)
	assert.Equal(t, 4, n)
	err := asset.Wait(rc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.txt")
	assert.NotContains(t, err.Error(), "readme.txt")
	// decoding does not touch the driver
	assert.Zero(t, d.Count("TexImage2D"))

	_, err = m.Texture("a.png")
	require.NoError(t, err)

	// only the failed asset is loaded again
	rc, n = m.Preload([]asset.Asset{asset.File("readme.txt"), asset.File("missing.txt")}, false)
	assert.Equal(t, 1, n)
	assert.Error(t, asset.Wait(rc))

	// flushing releases the texture
	rc, n = m.Preload([]asset.Asset{asset.File("readme.txt")}, true)
	assert.Zero(t, n)
	assert.NoError(t, asset.Wait(rc))
	assert.Equal(t, 1, d.Count("DeleteTexture"))

	assert.Panics(t, func() { m.Preload([]asset.Asset{{Type: 42, Name: "x"}}, false) })
}

func TestClose(t *testing.T) {
	m, d, _ := newManager(t)
	_, err := m.Texture("a.png")
	require.NoError(t, err)
	_, err = m.Shader("flat")
	require.NoError(t, err)
	require.NoError(t, m.Close())
	assert.Equal(t, 1, d.Count("DeleteTexture"))
	assert.Equal(t, 1, d.Count("DeleteProgram"))
	assert.True(t, errors.Is(m.Discard(asset.Texture("a.png")), asset.ErrMissingAsset))
}

func TestAssetString(t *testing.T) {
	assert.Equal(t, "font asset a", asset.Font("a").String())
	assert.Equal(t, "texture asset a", asset.Texture("a").String())
	assert.Equal(t, "file asset a", asset.File("a").String())
	assert.Equal(t, "shader asset a", asset.Shader("a").String())
	assert.Equal(t, "unknown asset a", asset.Asset{Type: 42, Name: "a"}.String())
}
