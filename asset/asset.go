// Package asset loads and caches textures, fonts, shaders and raw files.
//
// Decoding happens on any goroutine, either synchronously on first use or in
// bulk with Preload. Driver objects (textures, glyph atlases, programs) are
// only created by the Manager getters, which must be called from the thread
// owning the Manager's context.
package asset

import (
	"path"
	"runtime"
	"strings"
	"sync"

	"github.com/db47h/glw"
	"github.com/db47h/ofs"
	"github.com/pkg/errors"
)

// ErrMissingAsset is returned when discarding an asset that is not cached.
var ErrMissingAsset = errors.New("asset not found")

type closer interface {
	Close() error
}

// A Manager manages asynchronous (pre)loading and caching of textures, fonts,
// shaders and raw files.
type Manager struct {
	ctx     *glw.Context
	fs      ofs.FileSystem
	cfg     *config
	m       sync.Mutex
	cond    *sync.Cond
	assets  map[Asset]interface{}
	pending map[Asset]struct{}
}

type config struct {
	texturePath string
	fontPath    string
	filePath    string
	shaderPath  string
}

// Option is implemented by option functions passed as arguments to NewManager.
type Option interface {
	set(*config)
}

type cfn func(*config)

func (f cfn) set(cfg *config) {
	f(cfg)
}

// NewManager returns a new asset Manager reading from fs. GPU resources are
// created on c.
func NewManager(c *glw.Context, fs ofs.FileSystem, options ...Option) *Manager {
	cfg := new(config)
	for _, o := range options {
		o.set(cfg)
	}

	m := &Manager{
		ctx:     c,
		fs:      fs,
		cfg:     cfg,
		assets:  make(map[Asset]interface{}),
		pending: make(map[Asset]struct{}),
	}
	m.cond = sync.NewCond(&m.m)
	return m
}

type loadState int

const (
	stateMissing loadState = iota
	statePending
	stateLoaded
)

func (m *Manager) lookup(a Asset) (data interface{}, state loadState) {
	if data, ok := m.assets[a]; ok {
		return data, stateLoaded
	}
	if _, ok := m.pending[a]; ok {
		return nil, statePending
	}
	return nil, stateMissing
}

type loader func(fs ofs.FileSystem, name string) (interface{}, error)

var loaders = [typeLast]loader{
	TypeFont:    loadFont,
	TypeTexture: loadTexture,
	TypeFile:    loadFile,
	TypeShader:  loadShader,
}

// load loads an asset from the file system.
func (m *Manager) load(a Asset) (interface{}, error) {
	return loaders[a.Type](m.fs, m.cfg.assetPath(a))
}

// get returns an asset from cache or synchronously loads it if not in the
// cache. If this asset is being loaded from another goroutine, get will wait
// for the asset to be loaded and return the cached version. m.m must be held.
func (m *Manager) get(a Asset) (data interface{}, err error) {
	for {
		data, s := m.lookup(a)
		switch s {
		case stateMissing:
			m.pending[a] = struct{}{}
			m.m.Unlock()
			data, err := m.load(a)
			m.m.Lock()
			delete(m.pending, a)
			m.cond.Broadcast()
			if err != nil {
				return nil, errors.Wrapf(err, "load %s", a)
			}
			m.assets[a] = data
			m.ctx.Logger().Debug("asset loaded", "asset", a.String())
			return data, nil
		case stateLoaded:
			return data, nil
		}
		m.cond.Wait()
	}
}

// Discard removes the given asset from the cache and releases its resources.
func (m *Manager) Discard(a Asset) error {
	m.m.Lock()
	for {
		if aa, ok := m.assets[a]; ok {
			delete(m.assets, a)
			m.m.Unlock()
			if cl, ok := aa.(closer); ok {
				return errors.Wrapf(cl.Close(), "discard %s", a)
			}
			return nil
		}
		if _, ok := m.pending[a]; !ok {
			m.m.Unlock()
			return errors.Wrapf(ErrMissingAsset, "discard %s", a)
		}
		m.cond.Wait()
	}
}

// Close discards all assets.
func (m *Manager) Close() error {
	m.m.Lock()
	defer m.m.Unlock()
	var errs errorList
	for k, a := range m.assets {
		if cl, ok := a.(closer); ok {
			if err := cl.Close(); err != nil {
				errs = append(errs, errors.Wrapf(err, "close %s", k))
			}
		}
		delete(m.assets, k)
	}
	if errs != nil {
		return errs
	}
	return nil
}

// Preload bulk preloads assets. If the flush argument is true, cached assets
// not present in the asset list will be removed from the cache. It returns a
// channel to read preload results from as well as the number of items that will
// actually be preloaded. This item count is informational only and callers
// should rely on the rc channel being closed to ensure that the operation is
// complete.
//
// While preload starts immediately, it will stall after a few assets have been
// preloaded until the rc channel is read from (or Wait is called).
//
// Flushed assets holding GPU resources are released, so Preload with flush
// set must be called from the thread owning the Manager's context.
func (m *Manager) Preload(assets []Asset, flush bool) (rc <-chan Result, n int) {
	m.m.Lock()
	if flush {
		amap := make(map[Asset]struct{}, len(assets))
		for i := range assets {
			amap[assets[i]] = struct{}{}
		}
		for k, a := range m.assets {
			if _, ok := amap[k]; ok {
				continue
			}
			delete(m.assets, k)
			if cl, ok := a.(closer); ok {
				if err := cl.Close(); err != nil {
					m.ctx.Logger().Warn("flushed asset close failed", "asset", k.String(), "error", err)
				}
			}
		}
	}

	// mark assets as pending and ignore loaded/pending assets
	todo := make([]Asset, 0, len(assets))
	for _, a := range assets {
		if a.Type < 0 || a.Type >= typeLast {
			m.m.Unlock()
			panic(errors.Errorf("invalid asset type %d", a.Type))
		}
		if _, state := m.lookup(a); state != stateMissing {
			continue
		}
		m.pending[a] = struct{}{}
		todo = append(todo, a)
	}
	m.m.Unlock()

	c := make(chan Result)
	go m.preload(todo, c)
	return c, len(todo)
}

func (m *Manager) preload(assets []Asset, rc chan Result) {
	// we use a buffered channel a semaphore to spawn a limited number of
	// workers. This is to prevent excessive simultaneous disk access on
	// mechanical hard drives.
	//
	// goroutines will release the semaphore as soon as they have finished
	// loading the asset but will remain alive until they have sent their result
	// over rc.
	sem := make(chan struct{}, 2*runtime.NumCPU())
	wg := new(sync.WaitGroup)
	for i := range assets {
		sem <- struct{}{}
		wg.Add(1)
		go func(a Asset) {
			data, err := m.load(a)
			m.m.Lock()
			if err != nil {
				err = errors.Wrapf(err, "preload %s", a)
			} else {
				m.assets[a] = data
			}
			delete(m.pending, a)
			m.cond.Broadcast()
			m.m.Unlock()
			<-sem
			rc <- Result{Asset: a, Err: err}
			wg.Done()
		}(assets[i])
	}
	wg.Wait()
	close(rc)
	close(sem)
}

// Wait waits for completion of a previous Preload and returns any load errors.
func Wait(rc <-chan Result) error {
	var errs errorList
	for r := range rc {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	if errs != nil {
		return errs
	}
	return nil
}

type errorList []error

func (e errorList) Error() string {
	var sb strings.Builder
	for i, err := range e {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Type designates the type of an asset.
type Type int

const (
	TypeFont Type = iota
	TypeTexture
	TypeFile
	TypeShader
	typeLast
)

// Asset uniquely describes an asset.
type Asset struct {
	Type
	Name string
}

func (a Asset) String() string {
	switch a.Type {
	case TypeFont:
		return "font asset " + a.Name
	case TypeTexture:
		return "texture asset " + a.Name
	case TypeFile:
		return "file asset " + a.Name
	case TypeShader:
		return "shader asset " + a.Name
	}
	return "unknown asset " + a.Name
}

// Result wraps the result from preloading an asset.
type Result struct {
	Asset
	Err error
}

func Font(name string) Asset    { return Asset{TypeFont, name} }
func Texture(name string) Asset { return Asset{TypeTexture, name} }
func File(name string) Asset    { return Asset{TypeFile, name} }

// Shader designates the program built from name.vert and name.frag.
func Shader(name string) Asset { return Asset{TypeShader, name} }

func (cfg *config) assetPath(a Asset) string {
	switch a.Type {
	case TypeFont:
		return path.Join(cfg.fontPath, a.Name)
	case TypeTexture:
		return path.Join(cfg.texturePath, a.Name)
	case TypeFile:
		return path.Join(cfg.filePath, a.Name)
	case TypeShader:
		return path.Join(cfg.shaderPath, a.Name)
	}
	return a.Name
}
