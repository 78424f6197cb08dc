// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command sandbox opens a window and draws a triangle with WebGPU,
// clearing to a color that can be adjusted with held A/D/W/S keys
// (adjust mode) or switching between two shaders with Space
// (toggle mode). Releasing Escape or closing the window quits.
//
// Usage:
//
//	sandbox [flags] [config-file]
//
// Settings come from sandbox.toml in the current directory or
// ~/.config/sandbox, then the optional TOML or YAML config file,
// then the flags. Run sandbox -h for the list of flags.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"cogentcore.org/sandbox/config"
	"cogentcore.org/sandbox/gpu"
	"cogentcore.org/sandbox/render"
	"cogentcore.org/sandbox/sandbox"
	"cogentcore.org/sandbox/system"
	"github.com/muesli/termenv"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	logx.UseColor = termenv.NewOutput(os.Stderr).EnvColorProfile() != termenv.Ascii
	cli.Run(config.Options(), config.New(), run)
}

// setLogLevel sets the level of the default logger from cfg,
// unless it has been set with the -v, -vv or -q flags.
func setLogLevel(cfg *config.Config) {
	if logx.UserLevel == logx.LevelFromFlags(false, false, false) {
		logx.UserLevel = cfg.LogLevel.Level()
	}
}

// run opens the window and runs the frame loop until it is done.
func run(cfg *config.Config) error {
	setLogLevel(cfg)
	bg := errors.Log1(cfg.ClearColor())
	code, err := cfg.ShaderCode()
	if err != nil {
		return fmt.Errorf("reading shader: %w", err)
	}

	win, err := system.NewWindow(cfg.Size(), cfg.Title)
	if err != nil {
		return err
	}
	defer win.Close()

	gp := gpu.NewGPU("sandbox", cfg.PowerPreference.WebGPU())
	defer gp.Release()
	cx, err := gpu.NewContext(gp, win.SurfaceDescriptor(), code)
	if err != nil {
		return err
	}
	defer cx.Release()

	if cfg.Watch {
		file := errors.Log1(cfg.ShaderFile())
		sw, err := sandbox.WatchShader(file, win)
		if errors.Log(err) == nil {
			defer sw.Close()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	slog.Info("sandbox: running", "mode", cfg.Mode, "errors", cfg.Errors, "clear", bg)
	lp := sandbox.NewLoop(render.NewControllerColor(cfg.Mode, bg), cx, win, cfg.Errors)
	err = lp.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
