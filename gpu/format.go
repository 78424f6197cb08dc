// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"
	"slices"

	"github.com/cogentcore/webgpu/wgpu"
)

// TextureFormat describes the size and WebGPU format of the
// surface textures.
type TextureFormat struct {
	// Size of image
	Size image.Point

	// Texture format: an sRGB format is preferred when the surface supports one
	Format wgpu.TextureFormat
}

// String returns human-readable version of format
func (im *TextureFormat) String() string {
	return fmt.Sprintf("Size: %v  Format: %v", im.Size, im.Format)
}

// SetSize sets the width, height
func (im *TextureFormat) SetSize(w, h int) {
	im.Size = image.Point{X: w, Y: h}
}

// Size32 returns size as uint32 values
func (im *TextureFormat) Size32() (width, height uint32) {
	width = uint32(im.Size.X)
	height = uint32(im.Size.Y)
	return
}

// srgbFormats are the sRGB surface formats, in order of preference.
var srgbFormats = []wgpu.TextureFormat{
	wgpu.TextureFormatBGRA8UnormSrgb,
	wgpu.TextureFormatRGBA8UnormSrgb,
}

// IsSRGB returns true if the format is one of the sRGB color formats.
func IsSRGB(ft wgpu.TextureFormat) bool {
	return slices.Contains(srgbFormats, ft)
}

// ChooseFormat returns the first sRGB format among the supported
// formats, or else the first supported format.
// It returns [wgpu.TextureFormatUndefined] if there are none.
func ChooseFormat(supported []wgpu.TextureFormat) wgpu.TextureFormat {
	for _, ft := range supported {
		if IsSRGB(ft) {
			return ft
		}
	}
	if len(supported) > 0 {
		return supported[0]
	}
	return wgpu.TextureFormatUndefined
}
