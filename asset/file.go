package asset

import (
	"io"

	"github.com/db47h/ofs"
	"github.com/pkg/errors"
)

type file []byte

// FilePath returns an Option that sets the default path for raw files.
func FilePath(name string) Option {
	return cfn(func(cfg *config) {
		cfg.filePath = name
	})
}

func loadFile(fs ofs.FileSystem, name string) (interface{}, error) {
	r, err := fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return file(data), nil
}

// File returns the content of the named raw file.
func (m *Manager) File(name string) ([]byte, error) {
	m.m.Lock()
	defer m.m.Unlock()
	data, err := m.get(File(name))
	if err != nil {
		return nil, err
	}
	if data, ok := data.(file); ok {
		return data, nil
	}
	return nil, errors.Errorf("asset %s is not a raw file", name)
}
