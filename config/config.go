// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config has the settings of the sandbox, set from
// `default:` struct tags, TOML or YAML files and command line flags.
package config

//go:generate core generate

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/core/cli"
	"cogentcore.org/sandbox/render"
	"cogentcore.org/sandbox/sandbox"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultDir is the directory searched for the default config file.
const DefaultDir = "~/.config/sandbox"

// DefaultFile is the name of the config file loaded by default,
// looked up in the current directory and [DefaultDir].
const DefaultFile = "sandbox.toml"

// Config has the settings of the sandbox.
type Config struct {

	// File is a TOML or YAML config file read on top of the
	// default config file. Flags take precedence over it.
	File string `toml:"-" yaml:"-" posarg:"0" required:"-"`

	// Title is the window title.
	Title string `toml:"title" yaml:"title" default:"Triangle Sandbox"`

	// Width is the initial window width in screen coordinates.
	Width int `toml:"width" yaml:"width" default:"1024"`

	// Height is the initial window height in screen coordinates.
	Height int `toml:"height" yaml:"height" default:"768"`

	// Mode is the input mode: adjust moves the clear color with
	// held A/D/W/S, toggle switches pipelines with Space.
	Mode render.Modes `toml:"mode" yaml:"mode" default:"toggle"`

	// Errors is the render error policy.
	Errors sandbox.ErrorPolicies `toml:"errors" yaml:"errors" default:"discard"`

	// Background is the initial clear color, in any form accepted by
	// [ParseColor]. Empty uses the default of the mode.
	Background string `toml:"background" yaml:"background"`

	// Shader is a WGSL file to use instead of the built-in shader.
	// It must define vs_main, fs_main and fs_color.
	Shader string `toml:"shader" yaml:"shader"`

	// Watch reloads Shader whenever the file changes.
	Watch bool `toml:"watch" yaml:"watch"`

	// PowerPreference selects the adapter.
	PowerPreference PowerPreferences `toml:"power" yaml:"power" default:"high"`

	// LogLevel is the level of the default logger, unless
	// set with the -v, -vv or -q flags.
	LogLevel LogLevels `toml:"log" yaml:"log" default:"info"`
}

// New returns a new Config with the default values.
func New() *Config {
	cfg := &Config{}
	errors.Log(reflectx.SetFromDefaultTags(cfg))
	return cfg
}

// Options returns the [cli.Options] for loading the config:
// [DefaultFile] is read from the current directory, or else
// from [DefaultDir].
func Options() *cli.Options {
	opts := cli.DefaultOptions("sandbox", "Sandbox draws a triangle with WebGPU.")
	opts.PrintSuccess = false
	opts.DefaultFiles = []string{DefaultFile}
	opts.IncludePaths = []string{"."}
	if dir, err := homedir.Expand(DefaultDir); err == nil {
		opts.IncludePaths = append(opts.IncludePaths, dir)
	}
	return opts
}

// OnConfig is called by [cli.Run] after the default config file
// and the flags have been applied. It reads File, if any, and
// validates the result.
func (cfg *Config) OnConfig(cmd string) error {
	return cfg.Apply(os.Args[1:])
}

// Apply reads File, if set, and then sets args on top of it
// so that flags keep precedence. It returns the validation error
// of the resulting config.
func (cfg *Config) Apply(args []string) error {
	if cfg.File != "" {
		if err := cfg.Open(cfg.File); err != nil {
			return err
		}
		if _, err := cli.SetFromArgs(cfg, args, cli.NoErrNotFound); err != nil {
			return err
		}
	}
	return cfg.Validate()
}

// Open reads the config from the given file on top of the current
// values. The format is chosen from the extension: .toml, .yaml or .yml.
// A relative Shader path in the file is relative to the file.
func (cfg *Config) Open(file string) error {
	file, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()
	shader := cfg.Shader
	if err := cfg.Read(f, filepath.Ext(file)); err != nil {
		return fmt.Errorf("config: %s: %w", file, err)
	}
	if cfg.Shader != shader && !filepath.IsAbs(cfg.Shader) && !strings.HasPrefix(cfg.Shader, "~") {
		cfg.Shader = filepath.Join(filepath.Dir(file), cfg.Shader)
	}
	return nil
}

// Read decodes settings from r on top of the current values.
// ext is the file extension giving the format. Unknown keys are errors.
// Unknown enum names are logged and leave the value unchanged.
func (cfg *Config) Read(r io.Reader, ext string) error {
	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		return dec.Decode(cfg)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err := dec.Decode(cfg)
		if err == io.EOF {
			return nil
		}
		return err
	default:
		return fmt.Errorf("unknown config format %q", ext)
	}
}

// Validate returns an error for settings that cannot be used.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.Width <= 0 || cfg.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive: %dx%d", cfg.Width, cfg.Height))
	}
	if cfg.Mode < 0 || cfg.Mode >= render.ModesN {
		errs = append(errs, fmt.Errorf("invalid mode %v", cfg.Mode))
	}
	if cfg.Errors < 0 || cfg.Errors >= sandbox.ErrorPoliciesN {
		errs = append(errs, fmt.Errorf("invalid error policy %v", cfg.Errors))
	}
	if cfg.PowerPreference < 0 || cfg.PowerPreference >= PowerPreferencesN {
		errs = append(errs, fmt.Errorf("invalid power preference %v", cfg.PowerPreference))
	}
	if cfg.LogLevel < 0 || cfg.LogLevel >= LogLevelsN {
		errs = append(errs, fmt.Errorf("invalid log level %v", cfg.LogLevel))
	}
	if _, err := cfg.ClearColor(); err != nil {
		errs = append(errs, err)
	}
	if cfg.Watch && cfg.Shader == "" {
		errs = append(errs, fmt.Errorf("watch needs a shader file"))
	}
	return errors.Join(errs...)
}

// Size returns the initial window size.
func (cfg *Config) Size() image.Point {
	return image.Pt(cfg.Width, cfg.Height)
}

// ClearColor returns the initial clear color: the parsed Background,
// or the default color of the mode if Background is empty.
func (cfg *Config) ClearColor() (render.Color, error) {
	if cfg.Background == "" {
		return cfg.Mode.DefaultColor(), nil
	}
	return ParseColor(cfg.Background)
}

// ShaderFile returns the Shader path with ~ expanded.
func (cfg *Config) ShaderFile() (string, error) {
	return homedir.Expand(cfg.Shader)
}

// ShaderCode returns the contents of the Shader file,
// or "" if no Shader is set.
func (cfg *Config) ShaderCode() (string, error) {
	if cfg.Shader == "" {
		return "", nil
	}
	file, err := cfg.ShaderFile()
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
