package shader

import (
	"strings"
	"unicode"

	"github.com/db47h/glw"
	"github.com/pkg/errors"
)

// UniformScanner extracts the names of the uniforms declared by GLSL source
// code.
type UniformScanner interface {
	Scan(source string) []string
}

// HeuristicScanner finds uniforms without parsing GLSL: for every occurrence
// of the word "uniform", it skips the type name that follows and takes
// everything up to the next semicolon as the uniform name. A trailing array
// subscript is dropped.
//
// Comments, several names in one declaration, interface blocks and structs
// are not understood.
type HeuristicScanner struct{}

const uniformKeyword = "uniform"

func (HeuristicScanner) Scan(source string) []string {
	var names []string
	s := source
	for {
		i := strings.Index(s, uniformKeyword)
		if i < 0 {
			return names
		}
		s = s[i+len(uniformKeyword):]
		// type name
		s = strings.TrimLeftFunc(s, unicode.IsSpace)
		if j := strings.IndexFunc(s, unicode.IsSpace); j >= 0 {
			s = s[j:]
		} else {
			return names
		}
		end := strings.IndexByte(s, ';')
		if end < 0 {
			return names
		}
		name := strings.TrimSpace(s[:end])
		s = s[end+1:]
		if k := strings.IndexByte(name, '['); k > 0 {
			name = strings.TrimSpace(name[:k])
		}
		if name != "" {
			names = append(names, name)
		}
	}
}

// Custom is a Program whose uniform names are discovered in its source code.
// Its uniforms are set by name; locations are resolved on first use.
type Custom struct {
	*Program
	scanner UniformScanner
	known   map[string]bool
	locs    map[string]int32
}

// CustomOption configures a Custom shader.
type CustomOption func(*Custom)

// WithScanner replaces the HeuristicScanner used by default.
func WithScanner(s UniformScanner) CustomOption {
	return func(c *Custom) { c.scanner = s }
}

// NewCustom builds a program from the given sources and scans both for
// uniform declarations.
func NewCustom(c *glw.Context, vertexSrc, fragmentSrc string, opts ...CustomOption) (*Custom, error) {
	cs := &Custom{scanner: HeuristicScanner{}}
	for _, o := range opts {
		o(cs)
	}
	p, err := New(c, vertexSrc, fragmentSrc, -1)
	if err != nil {
		return nil, err
	}
	cs.Program = p
	cs.scan(vertexSrc, fragmentSrc)
	return cs, nil
}

func (c *Custom) scan(sources ...string) {
	c.known = make(map[string]bool)
	c.locs = make(map[string]int32)
	for _, src := range sources {
		for _, n := range c.scanner.Scan(src) {
			c.known[n] = true
		}
	}
}

// Declared reports whether name was found in the shader sources.
func (c *Custom) Declared(name string) bool { return c.known[name] }

// Reload rebuilds the program and scans the new sources. Previously resolved
// locations are forgotten.
func (c *Custom) Reload(vertexSrc, fragmentSrc string) error {
	if err := c.Program.Reload(vertexSrc, fragmentSrc); err != nil {
		return err
	}
	c.scan(vertexSrc, fragmentSrc)
	return nil
}

// Location returns the location of the named uniform, querying the driver the
// first time a name is used.
func (c *Custom) Location(name string) (int32, error) {
	if loc, ok := c.locs[name]; ok {
		return loc, nil
	}
	if !c.known[name] {
		return -1, errors.Wrap(ErrUnknownUniform, name)
	}
	loc := c.ctx.GL().GetUniformLocation(c.id, name)
	c.locs[name] = loc
	return loc, nil
}

// SetUniform uploads values as a single vector of len(values) components to
// the named uniform of c.
func SetUniform[T Scalar](c *Custom, name string, values ...T) error {
	return SetUniformArray(c, name, len(values), values)
}

// SetUniformArray uploads values as an array of vectors of the given number of
// components to the named uniform of c.
func SetUniformArray[T Scalar](c *Custom, name string, components int, values []T) error {
	loc, err := c.Location(name)
	if err != nil {
		return err
	}
	return upload(c.Program, loc, components, values)
}
