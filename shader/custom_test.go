package shader_test

import (
	"testing"

	"github.com/db47h/glw"
	"github.com/db47h/glw/shader"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeuristicScanner(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"two", "uniform mat4 matrix;\nuniform int uColour;", []string{"matrix", "uColour"}},
		{"spacing", "  uniform\tvec3   uLight ;\n", []string{"uLight"}},
		{"array", "uniform vec4 uColours[4];", []string{"uColours"}},
		{"qualified", "layout(location = 2) uniform float uScale;", []string{"uScale"}},
		{"unterminated", "uniform vec4 uColour", nil},
		{"type only", "uniform", nil},
		{"none", "void main() { gl_Position = vec4(0); }", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shader.HeuristicScanner{}.Scan(tt.src))
		})
	}
}

const (
	customVS = "#version 330 core\nuniform mat4 matrix;\nvoid main() {}\n"
	customFS = "#version 400 core\n" +
		"uniform vec4 uColour;\n" +
		"uniform int uMode;\n" +
		"uniform uint uFlags;\n" +
		"uniform double uScale;\n" +
		"uniform ivec2 uPairs[2];\n" +
		"void main() {}\n"
)

func TestCustomSetUniform(t *testing.T) {
	c, d, _ := newContext(t, glw.FailFast)
	cs, err := shader.NewCustom(c, customVS, customFS)
	require.NoError(t, err)
	for _, n := range []string{"matrix", "uColour", "uMode", "uFlags", "uScale", "uPairs"} {
		assert.True(t, cs.Declared(n), n)
	}
	assert.Zero(t, d.Count("GetUniformLocation"), "locations are resolved on first use")

	require.NoError(t, shader.SetUniform[float32](cs, "uColour", 1, 0, 0, 1))
	require.NoError(t, shader.SetUniform(cs, "uMode", int32(3)))
	require.NoError(t, shader.SetUniform(cs, "uFlags", uint32(0x10)))
	require.NoError(t, shader.SetUniform(cs, "uScale", 0.25))
	require.NoError(t, shader.SetUniformArray(cs, "uPairs", 2, []int32{1, 2, 3, 4}))

	assert.Equal(t, []interface{}{int32(0), 4, []float32{1, 0, 0, 1}}, d.CallsTo("Uniformfv")[0].Args)
	assert.Equal(t, []interface{}{int32(1), 1, []int32{3}}, d.CallsTo("Uniformiv")[0].Args)
	assert.Equal(t, []uint32{0x10}, d.UniformValues[2])
	assert.Equal(t, []float64{0.25}, d.UniformValues[3])
	assert.Equal(t, []interface{}{int32(4), 2, []int32{1, 2, 3, 4}}, d.CallsTo("Uniformiv")[1].Args)

	// locations are stable and cached
	for i := 0; i < 3; i++ {
		require.NoError(t, shader.SetUniform[float32](cs, "uColour", 0, 1, 0, 1))
		loc, err := cs.Location("uColour")
		require.NoError(t, err)
		assert.EqualValues(t, 0, loc)
	}
	assert.Equal(t, 5, d.Count("GetUniformLocation"))
}

func TestCustomErrors(t *testing.T) {
	c, d, _ := newContext(t, glw.FailFast)
	cs, err := shader.NewCustom(c, customVS, customFS)
	require.NoError(t, err)
	d.Reset()

	err = shader.SetUniform[float32](cs, "uBogus", 1)
	assert.True(t, errors.Is(err, shader.ErrUnknownUniform))
	assert.Contains(t, err.Error(), "uBogus")
	_, err = cs.Location("uBogus")
	assert.True(t, errors.Is(err, shader.ErrUnknownUniform))

	err = shader.SetUniform[float32](cs, "uColour", 1, 2, 3, 4, 5)
	assert.True(t, errors.Is(err, shader.ErrUnsupportedComponents))
	err = shader.SetUniformArray(cs, "uPairs", 0, []int32{1, 2})
	assert.True(t, errors.Is(err, shader.ErrUnsupportedComponents))

	assert.Zero(t, d.Count("Uniformfv"))
	assert.Zero(t, d.Count("Uniformiv"))
}

type fixedScanner []string

func (s fixedScanner) Scan(string) []string { return s }

func TestCustomScannerAndReload(t *testing.T) {
	c, d, _ := newContext(t, glw.FailFast)
	cs, err := shader.NewCustom(c, customVS, customFS, shader.WithScanner(fixedScanner{"uOnly"}))
	require.NoError(t, err)
	assert.True(t, cs.Declared("uOnly"))
	assert.False(t, cs.Declared("uColour"))
	require.NoError(t, shader.SetUniform[float32](cs, "uOnly", 1))

	old := cs.ID()
	require.NoError(t, cs.Reload(customVS, customFS))
	assert.NotEqual(t, old, cs.ID())
	assert.Equal(t, 1, d.Count("DeleteProgram"))
	d.Reset()
	require.NoError(t, shader.SetUniform[float32](cs, "uOnly", 1))
	assert.Equal(t, 1, d.Count("GetUniformLocation"), "reload forgets resolved locations")
}

func TestCustomBuildFailure(t *testing.T) {
	c, d, _ := newContext(t, glw.FailFast)
	d.CompileErrors["uFlags"] = "uint needs GLSL 1.30"
	_, err := shader.NewCustom(c, customVS, customFS)
	var be *shader.BuildError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, "fragment", be.Stage)
}
