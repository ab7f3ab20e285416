package main

import (
	"io"
	"log/slog"

	"github.com/db47h/glw"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Config is the demo configuration, usually read from a TOML file and
// overridden by command line flags.
type Config struct {
	Window  WindowConfig  `toml:"window"`
	Log     LogConfig     `toml:"log"`
	Shaders ShadersConfig `toml:"shaders"`
	Assets  AssetsConfig  `toml:"assets"`
	Scene   SceneConfig   `toml:"scene"`
}

type WindowConfig struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	FullScreen bool   `toml:"fullscreen"`
	VSync      int    `toml:"vsync"`
	Samples    int    `toml:"samples"`
}

type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `toml:"level"`
}

type ShadersConfig struct {
	// Policy is "log" or "fail". See glw.CompilePolicy.
	Policy string `toml:"policy"`
}

type AssetsConfig struct {
	// Dirs are searched in order.
	Dirs []string `toml:"dirs"`
	// Font is the TrueType font used for text. The embedded Go Regular font is
	// used when empty or not found.
	Font string `toml:"font"`
}

type SceneConfig struct {
	ShadowMapSize int     `toml:"shadow_map_size"`
	Exposure      float32 `toml:"exposure"`
	Gamma         float32 `toml:"gamma"`
	Greyscale     bool    `toml:"greyscale"`
}

func defaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:   "glw demo",
			Width:   1024,
			Height:  768,
			VSync:   1,
			Samples: 4,
		},
		Log:     LogConfig{Level: "info"},
		Shaders: ShadersConfig{Policy: glw.LogAndContinue.String()},
		Assets:  AssetsConfig{Dirs: []string{"assets", "cmd/demo/assets"}},
		Scene: SceneConfig{
			ShadowMapSize: 2048,
			Exposure:      1,
			Gamma:         2.2,
		},
	}
}

// Load decodes a TOML document into cfg. Keys missing from the document keep
// their current value; unknown keys are an error.
func (cfg *Config) Load(r io.Reader) error {
	d := toml.NewDecoder(r)
	d.DisallowUnknownFields()
	if err := d.Decode(cfg); err != nil {
		var sme *toml.StrictMissingError
		if errors.As(err, &sme) {
			return errors.New(sme.String())
		}
		return errors.Wrap(err, "decode config")
	}
	return nil
}

// LogLevel returns the parsed log level.
func (cfg *Config) LogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return l, errors.Wrap(err, "log level")
	}
	return l, nil
}

// CompilePolicy returns the parsed shader compile policy.
func (cfg *Config) CompilePolicy() (glw.CompilePolicy, error) {
	return glw.ParseCompilePolicy(cfg.Shaders.Policy)
}

// Validate checks values that would otherwise fail late, once the window is
// open.
func (cfg *Config) Validate() error {
	if cfg.Window.Width <= 0 {
		return glw.SizeError("window width", cfg.Window.Width)
	}
	if cfg.Window.Height <= 0 {
		return glw.SizeError("window height", cfg.Window.Height)
	}
	if cfg.Scene.ShadowMapSize <= 0 {
		return glw.SizeError("shadow map size", cfg.Scene.ShadowMapSize)
	}
	if len(cfg.Assets.Dirs) == 0 {
		return errors.New("no asset directory")
	}
	if _, err := cfg.LogLevel(); err != nil {
		return err
	}
	_, err := cfg.CompilePolicy()
	return err
}
