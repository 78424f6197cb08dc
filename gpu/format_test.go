// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestChooseFormat(t *testing.T) {
	assert.Equal(t, wgpu.TextureFormatBGRA8UnormSrgb,
		ChooseFormat([]wgpu.TextureFormat{wgpu.TextureFormatBGRA8Unorm, wgpu.TextureFormatBGRA8UnormSrgb}))
	assert.Equal(t, wgpu.TextureFormatRGBA8UnormSrgb,
		ChooseFormat([]wgpu.TextureFormat{wgpu.TextureFormatRGBA8Unorm, wgpu.TextureFormatRGBA8UnormSrgb}))
	assert.Equal(t, wgpu.TextureFormatRGBA8Unorm,
		ChooseFormat([]wgpu.TextureFormat{wgpu.TextureFormatRGBA8Unorm, wgpu.TextureFormatBGRA8Unorm}))
	assert.Equal(t, wgpu.TextureFormatUndefined, ChooseFormat(nil))
}

func TestTextureFormatSize(t *testing.T) {
	var tf TextureFormat
	tf.SetSize(640, 480)
	w, h := tf.Size32()
	assert.Equal(t, uint32(640), w)
	assert.Equal(t, uint32(480), h)
	assert.Equal(t, image.Pt(640, 480), tf.Size)
}
