// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// Surface manages the presentable surface of a window: its
// configuration for the current size, and the texture acquired
// for each frame.
type Surface struct {
	// Format has the current size and texture format.
	// The format is chosen when the surface is created.
	Format TextureFormat

	// GPU is the device this surface renders with.
	GPU *GPU

	surface *wgpu.Surface

	config wgpu.SurfaceConfiguration

	configured bool
}

// SurfaceFrame is the texture acquired from a [Surface] for one frame.
// It must be released with [SurfaceFrame.Release] after presenting.
type SurfaceFrame struct {
	Texture *wgpu.Texture
	View    *wgpu.TextureView
}

// Release releases the texture view.
func (fr *SurfaceFrame) Release() {
	if fr.View != nil {
		fr.View.Release()
		fr.View = nil
	}
}

func newSurface(gp *GPU, ws *wgpu.Surface) *Surface {
	sf := &Surface{GPU: gp, surface: ws}
	sf.initConfig()
	return sf
}

// initConfig chooses the format, present mode and alpha mode
// from the capabilities of the surface on the adapter.
func (sf *Surface) initConfig() {
	caps := sf.surface.GetCapabilities(sf.GPU.Adapter)
	sf.Format.Format = ChooseFormat(caps.Formats)
	sf.config = wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      sf.Format.Format,
		PresentMode: firstOr(caps.PresentModes, wgpu.PresentModeFifo),
		AlphaMode:   firstOr(caps.AlphaModes, wgpu.CompositeAlphaModeAuto),
	}
	slog.Info("gpu: surface format", "format", sf.Format.Format, "srgb", IsSRGB(sf.Format.Format))
}

// Configured returns true once the surface has been configured
// with a non-empty size. Nothing can be rendered before that.
func (sf *Surface) Configured() bool {
	return sf.configured
}

// Size returns the configured size, which is zero until configured.
func (sf *Surface) Size() image.Point {
	return sf.Format.Size
}

// Reconfigure configures the surface for the given size.
// It is a no-op that returns false if either dimension is zero
// (e.g., a minimized window), leaving the current configuration
// and size unchanged.
func (sf *Surface) Reconfigure(size image.Point) bool {
	if size.X <= 0 || size.Y <= 0 {
		return false
	}
	sf.Format.SetSize(size.X, size.Y)
	sf.config.Width, sf.config.Height = sf.Format.Size32()
	sf.surface.Configure(sf.GPU.Adapter, sf.GPU.Device, &sf.config)
	sf.configured = true
	if Debug {
		slog.Debug("gpu: surface configured", "format", sf.Format.String())
	}
	return true
}

// AcquireFrame returns the texture to render the next frame into.
// Failures wrap one of [ErrSurfaceLost], [ErrSurfaceOutdated],
// [ErrOutOfMemory] or [ErrTimeout] when the cause is known.
func (sf *Surface) AcquireFrame() (*SurfaceFrame, error) {
	tex, err := sf.surface.GetCurrentTexture()
	if err != nil {
		return nil, wrapStatus(err)
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		return nil, err
	}
	return &SurfaceFrame{Texture: tex, View: view}, nil
}

// Present shows the most recently acquired texture on the window.
func (sf *Surface) Present() {
	sf.surface.Present()
}

// Release releases the surface.
func (sf *Surface) Release() {
	if sf.surface != nil {
		sf.surface.Release()
		sf.surface = nil
	}
	sf.configured = false
}

func firstOr[T any](s []T, def T) T {
	if len(s) > 0 {
		return s[0]
	}
	return def
}
