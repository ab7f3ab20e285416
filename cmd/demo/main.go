// Command demo renders a small shadow mapped scene through a post-processing
// pass, with 2D widgets and text on top.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/db47h/glw/app"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func main() {
	a := &cli.App{
		Name:  "demo",
		Usage: "glw demo",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE`"},
			&cli.StringFlag{Name: "log-level", Usage: "log `LEVEL`: debug, info, warn or error"},
			&cli.StringFlag{Name: "compile-policy", Usage: "shader build failures: log or fail"},
			&cli.IntFlag{Name: "width", Usage: "window width"},
			&cli.IntFlag{Name: "height", Usage: "window height"},
			&cli.BoolFlag{Name: "fullscreen", Usage: "full screen on the primary monitor"},
			&cli.IntFlag{Name: "vsync", Usage: "swap interval"},
			&cli.StringSliceFlag{Name: "assets", Usage: "asset search `DIR`, may be repeated"},
		},
		Action: run,
	}
	if err := a.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(cc *cli.Context) (Config, error) {
	cfg := defaultConfig()
	if name := cc.String("config"); name != "" {
		f, err := os.Open(name)
		if err != nil {
			return cfg, err
		}
		defer f.Close()
		if err = cfg.Load(f); err != nil {
			return cfg, errors.Wrap(err, name)
		}
	}
	if cc.IsSet("log-level") {
		cfg.Log.Level = cc.String("log-level")
	}
	if cc.IsSet("compile-policy") {
		cfg.Shaders.Policy = cc.String("compile-policy")
	}
	if cc.IsSet("width") {
		cfg.Window.Width = cc.Int("width")
	}
	if cc.IsSet("height") {
		cfg.Window.Height = cc.Int("height")
	}
	if cc.IsSet("fullscreen") {
		cfg.Window.FullScreen = cc.Bool("fullscreen")
	}
	if cc.IsSet("vsync") {
		cfg.Window.VSync = cc.Int("vsync")
	}
	if cc.IsSet("assets") {
		cfg.Assets.Dirs = cc.StringSlice("assets")
	}
	return cfg, cfg.Validate()
}

func run(cc *cli.Context) error {
	cfg, err := loadConfig(cc)
	if err != nil {
		return err
	}
	level, _ := cfg.LogLevel()
	policy, _ := cfg.CompilePolicy()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cc.Context, os.Interrupt)
	defer stop()

	opts := []app.Option{
		app.Title(cfg.Window.Title),
		app.Size(cfg.Window.Width, cfg.Window.Height),
		app.VSync(cfg.Window.VSync),
		app.Samples(cfg.Window.Samples),
		app.Logger(logger),
		app.CompilePolicy(policy),
	}
	if cfg.Window.FullScreen {
		opts = append(opts, app.FullScreen())
	}
	return app.Main(ctx, &demo{cfg: cfg, log: logger}, opts...)
}
