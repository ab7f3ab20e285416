package asset

import (
	"io"

	"github.com/db47h/glw/text"
	"github.com/db47h/glw/texture"
	"github.com/db47h/ofs"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
)

type fnt struct {
	name string
	f    *truetype.Font
	ds   map[fntOpts]*text.Drawer
}

func (f *fnt) Close() error {
	var errs errorList
	for opts, d := range f.ds {
		if err := d.Close(); err != nil {
			errs = append(errs, errors.Wrapf(err, "close face %v", opts))
		}
	}
	f.ds = make(map[fntOpts]*text.Drawer)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type fntOpts struct {
	sz float64
	h  text.Hinting
	mf texture.FilterMode
}

// FontPath returns an Option that sets the default font path.
func FontPath(name string) Option {
	return cfn(func(cfg *config) {
		cfg.fontPath = name
	})
}

func loadFont(fs ofs.FileSystem, name string) (interface{}, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	return &fnt{name, ttf, make(map[fntOpts]*text.Drawer)}, nil
}

func (m *Manager) font(name string) (*fnt, error) {
	data, err := m.get(Font(name))
	if err != nil {
		return nil, err
	}
	f, ok := data.(*fnt)
	if !ok {
		return nil, errors.Errorf("asset %s is not a font", name)
	}
	return f, nil
}

// Font returns the named font asset.
func (m *Manager) Font(name string) (*truetype.Font, error) {
	m.m.Lock()
	defer m.m.Unlock()
	f, err := m.font(name)
	if err != nil {
		return nil, err
	}
	return f.f, nil
}

// TextDrawer returns a text.Drawer configured for the given font face (with
// a default DPI of 72).
//
// Note that this function caches any text.Drawer created. The only way to
// clean the cache is to Discard the corresponding font asset. If an
// application needs to be able to discard drawers, it should use Font instead
// and manage font.Face and text.Drawer creation and caching manually.
func (m *Manager) TextDrawer(name string, size float64, hinting text.Hinting, magFilter texture.FilterMode) (*text.Drawer, error) {
	m.m.Lock()
	defer m.m.Unlock()
	f, err := m.font(name)
	if err != nil {
		return nil, err
	}
	opts := fntOpts{size, hinting, magFilter}
	if d := f.ds[opts]; d != nil {
		return d, nil
	}
	d := text.NewDrawer(m.ctx, truetype.NewFace(f.f, &truetype.Options{
		Size:       size,
		Hinting:    font.Hinting(hinting),
		DPI:        72,
		SubPixelsX: text.SubPixelsX,
		SubPixelsY: text.SubPixelsY,
	}), magFilter)
	f.ds[opts] = d
	return d, nil
}
