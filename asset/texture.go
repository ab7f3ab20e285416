package asset

import (
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/db47h/glw/texture"
	"github.com/db47h/ofs"
	"github.com/pkg/errors"
)

type texImage struct {
	img image.Image
}

type tex texture.Texture

func (t *tex) Close() error {
	(*texture.Texture)(t).Delete()
	return nil
}

// TexturePath returns an Option that sets the default texture path.
func TexturePath(name string) Option {
	return cfn(func(cfg *config) {
		cfg.texturePath = name
	})
}

func loadTexture(fs ofs.FileSystem, name string) (interface{}, error) {
	r, err := fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return &texImage{src}, nil
}

// Texture returns the named texture, uploading the decoded image on first
// use. params are applied to the texture on every call.
func (m *Manager) Texture(name string, params ...texture.Parameter) (*texture.Texture, error) {
	m.m.Lock()
	defer m.m.Unlock()
	a := Texture(name)
	data, err := m.get(a)
	if err != nil {
		return nil, err
	}
	switch t := data.(type) {
	case *tex:
		tx := (*texture.Texture)(t)
		tx.Parameters(params...)
		return tx, nil
	case *texImage:
		tx, err := texture.FromImage(m.ctx, t.img, params...)
		if err != nil {
			return nil, errors.Wrapf(err, "create %s", a)
		}
		m.assets[a] = (*tex)(tx)
		return tx, nil
	}
	return nil, errors.Errorf("%s is not a texture", a)
}

// Image returns the decoded image of a texture asset that was not uploaded
// yet.
func (m *Manager) Image(name string) (image.Image, error) {
	m.m.Lock()
	defer m.m.Unlock()
	a := Texture(name)
	data, err := m.get(a)
	if err != nil {
		return nil, err
	}
	if t, ok := data.(*texImage); ok {
		return t.img, nil
	}
	return nil, errors.Errorf("%s already uploaded", a)
}
