package asset

import (
	"io"

	"github.com/db47h/glw/shader"
	"github.com/db47h/ofs"
	"github.com/pkg/errors"
)

type shaderSrc struct {
	vertex, fragment string
}

type program shader.Custom

func (p *program) Close() error {
	(*shader.Custom)(p).Close()
	return nil
}

// ShaderPath returns an Option that sets the default shader path.
func ShaderPath(name string) Option {
	return cfn(func(cfg *config) {
		cfg.shaderPath = name
	})
}

func readString(fs ofs.FileSystem, name string) (string, error) {
	r, err := fs.Open(name)
	if err != nil {
		return "", err
	}
	defer r.Close()
	b, err := io.ReadAll(r)
	return string(b), err
}

func loadShader(fs ofs.FileSystem, name string) (interface{}, error) {
	vs, err := readString(fs, name+".vert")
	if err != nil {
		return nil, err
	}
	fs2, err := readString(fs, name+".frag")
	if err != nil {
		return nil, err
	}
	return &shaderSrc{vs, fs2}, nil
}

// Shader returns the program built from the name.vert and name.frag files,
// building it on first use. opts only apply to that first build.
//
// How build failures are reported depends on the compile policy of the
// Manager's context.
func (m *Manager) Shader(name string, opts ...shader.CustomOption) (*shader.Custom, error) {
	m.m.Lock()
	defer m.m.Unlock()
	a := Shader(name)
	data, err := m.get(a)
	if err != nil {
		return nil, err
	}
	switch s := data.(type) {
	case *program:
		return (*shader.Custom)(s), nil
	case *shaderSrc:
		return m.buildShader(a, s, opts...)
	}
	return nil, errors.Errorf("%s is not a shader", a)
}

func (m *Manager) buildShader(a Asset, src *shaderSrc, opts ...shader.CustomOption) (*shader.Custom, error) {
	p, err := shader.NewCustom(m.ctx, src.vertex, src.fragment, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "build %s", a)
	}
	m.assets[a] = (*program)(p)
	return p, nil
}

// ReloadShader reads the sources of a shader asset again and rebuilds it. If
// the program was already built, it is rebuilt in place and the same
// *shader.Custom is returned.
func (m *Manager) ReloadShader(name string) (*shader.Custom, error) {
	a := Shader(name)
	data, err := m.load(a)
	if err != nil {
		return nil, errors.Wrapf(err, "reload %s", a)
	}
	src := data.(*shaderSrc)

	m.m.Lock()
	defer m.m.Unlock()
	p, ok := m.assets[a].(*program)
	if !ok {
		return m.buildShader(a, src)
	}
	cs := (*shader.Custom)(p)
	if err := cs.Reload(src.vertex, src.fragment); err != nil {
		return nil, errors.Wrapf(err, "reload %s", a)
	}
	m.ctx.Logger().Info("shader reloaded", "asset", name, "program", cs.ID())
	return cs, nil
}
