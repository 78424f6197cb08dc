// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"

	"cogentcore.org/sandbox/render"
)

// Headless is a graphics backend without a GPU or window.
// It follows the same rules as [Context] for configuration and
// rendering, and records what would have been drawn.
// Errors can be queued to make the next renders fail, which is
// used to test how render failures are handled.
type Headless struct {
	// Frames is the number of frames drawn.
	Frames int

	// Last is the most recently drawn frame.
	Last render.Frame

	// Drawn has every frame drawn, in order, when Record is set.
	Drawn []render.Frame

	// Record turns on recording of all frames in Drawn.
	Record bool

	// Configures counts successful reconfigurations.
	Configures int

	// Shader is the shader code most recently loaded.
	Shader string

	// ShaderErr, if set, is returned by ReloadShader and the
	// shader is not replaced.
	ShaderErr error

	// Format has the configured size. Format.Format is not used.
	Format TextureFormat

	configured bool
	errs       []error
}

// NewHeadless returns a new headless backend using the built-in shader.
func NewHeadless() *Headless {
	return &Headless{Shader: TriangleShader}
}

// FailNext queues errors to be returned by the next calls to Render,
// one per call. A nil entry lets that frame render normally.
func (hl *Headless) FailNext(errs ...error) {
	hl.errs = append(hl.errs, errs...)
}

// Reconfigure sets the size. A size with a zero dimension is ignored.
func (hl *Headless) Reconfigure(size image.Point) bool {
	if size.X <= 0 || size.Y <= 0 {
		return false
	}
	hl.Format.SetSize(size.X, size.Y)
	hl.configured = true
	hl.Configures++
	return true
}

// Configured returns true after the first successful Reconfigure.
func (hl *Headless) Configured() bool {
	return hl.configured
}

// Size returns the configured size.
func (hl *Headless) Size() image.Point {
	return hl.Format.Size
}

// Render records fr as drawn, or returns the next queued error.
func (hl *Headless) Render(fr render.Frame) error {
	if !hl.configured {
		return nil
	}
	if len(hl.errs) > 0 {
		err := hl.errs[0]
		hl.errs = hl.errs[1:]
		if err != nil {
			return err
		}
	}
	if fr.Pipeline != render.Secondary {
		fr.Pipeline = render.Primary
	}
	hl.Frames++
	hl.Last = fr
	if hl.Record {
		hl.Drawn = append(hl.Drawn, fr)
	}
	return nil
}

// ReloadShader replaces the shader code unless ShaderErr is set.
func (hl *Headless) ReloadShader(code string) error {
	if hl.ShaderErr != nil {
		return hl.ShaderErr
	}
	hl.Shader = code
	return nil
}

// Release does nothing.
func (hl *Headless) Release() {}
