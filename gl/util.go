package gl

import (
	"fmt"
	"image/color"
	"strings"
	"unsafe"

	"github.com/pkg/errors"
)

// Sizeof returns the size in bytes of v. v must be a fixed size numeric value
// or a slice thereof.
func Sizeof(v interface{}) int {
	switch v := v.(type) {
	case []int8:
		return len(v)
	case []uint8:
		return len(v)
	case []int16:
		return len(v) * 2
	case []uint16:
		return len(v) * 2
	case []int32:
		return len(v) * 4
	case []uint32:
		return len(v) * 4
	case []int64:
		return len(v) * 8
	case []uint64:
		return len(v) * 8
	case []float32:
		return len(v) * 4
	case []float64:
		return len(v) * 8
	case int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32, float32:
		return 4
	case int64, uint64, float64:
		return 8
	default:
		panic(errors.Errorf("sizeof: invalid type %T", v))
	}
}

// Bytes returns the raw memory of the numeric slice v as a byte slice, without
// copying. A nil or empty slice yields nil.
func Bytes(v interface{}) []byte {
	n := Sizeof(v)
	if n == 0 {
		return nil
	}
	var p unsafe.Pointer
	switch v := v.(type) {
	case []int8:
		p = unsafe.Pointer(&v[0])
	case []uint8:
		return v
	case []int16:
		p = unsafe.Pointer(&v[0])
	case []uint16:
		p = unsafe.Pointer(&v[0])
	case []int32:
		p = unsafe.Pointer(&v[0])
	case []uint32:
		p = unsafe.Pointer(&v[0])
	case []int64:
		p = unsafe.Pointer(&v[0])
	case []uint64:
		p = unsafe.Pointer(&v[0])
	case []float32:
		p = unsafe.Pointer(&v[0])
	case []float64:
		p = unsafe.Pointer(&v[0])
	default:
		panic(errors.Errorf("bytes: invalid type %T", v))
	}
	return unsafe.Slice((*byte)(p), n)
}

// CompileShader creates and compiles a shader of the given type. If
// compilation fails, the returned error carries the compiler log and the
// shader object is returned anyway: it is up to the caller to delete it.
func CompileShader(d Driver, typ uint32, source string) (uint32, error) {
	s := d.CreateShader(typ)
	d.ShaderSource(s, source)
	d.CompileShader(s)
	if d.GetShaderiv(s, GL_COMPILE_STATUS) == GL_FALSE {
		return s, errors.New(strings.TrimSpace(d.GetShaderInfoLog(s)))
	}
	return s, nil
}

// LinkProgram links the given shaders into a new program. The shaders are left
// attached. As with CompileShader, the program object is returned even when
// linking fails.
func LinkProgram(d Driver, shaders ...uint32) (uint32, error) {
	p := d.CreateProgram()
	for _, s := range shaders {
		d.AttachShader(p, s)
	}
	d.LinkProgram(p)
	if d.GetProgramiv(p, GL_LINK_STATUS) == GL_FALSE {
		return p, errors.New(strings.TrimSpace(d.GetProgramInfoLog(p)))
	}
	return p, nil
}

// Version is an OpenGL API version.
type Version struct {
	Major, Minor int
}

// AtLeast reports whether v is greater than or equal to major.minor.
func (v Version) AtLeast(major, minor int) bool {
	return v.Major > major || v.Major == major && v.Minor >= minor
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// ParseVersion extracts the major and minor version numbers from a GL_VERSION
// string like "4.6.0 NVIDIA 535.54" or "OpenGL ES 3.2 Mesa".
func ParseVersion(s string) (Version, error) {
	var v Version
	for _, f := range strings.Fields(s) {
		if _, err := fmt.Sscanf(f, "%d.%d", &v.Major, &v.Minor); err == nil {
			return v, nil
		}
	}
	return v, errors.Errorf("invalid GL version string %q", s)
}

// Color implements color.Color. It stores alpha premultiplied color components in
// the range [0, 1],
type Color struct {
	R, G, B, A float32
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return uint32(c.R*0xffff) & 0xffff, uint32(c.G*0xffff) & 0xffff, uint32(c.B*0xffff) & 0xffff, uint32(c.A*0xffff) & 0xffff
}

// ColorModel converts any color.Color to a Color; i.e. the result can safely be
// casted to a Color.
var ColorModel = color.ModelFunc(colorModel)

func colorModel(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	r, g, b, a := c.RGBA()
	return Color{R: float32(r) / 0xffff, G: float32(g) / 0xffff, B: float32(b) / 0xffff, A: float32(a) / 0xffff}
}

// ToColor converts c to a Color. A nil c yields opaque white.
func ToColor(c color.Color) Color {
	if c == nil {
		return Color{1, 1, 1, 1}
	}
	return ColorModel.Convert(c).(Color)
}
