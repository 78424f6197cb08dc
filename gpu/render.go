// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"cogentcore.org/sandbox/render"
	"github.com/cogentcore/webgpu/wgpu"
)

// ClearRenderPass returns a render pass descriptor that clears
// the view to the given color and stores the result.
func ClearRenderPass(view *wgpu.TextureView, clear render.Color) *wgpu.RenderPassDescriptor {
	return &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:   view,
			LoadOp: wgpu.LoadOpClear,
			ClearValue: wgpu.Color{
				R: clear.R,
				G: clear.G,
				B: clear.B,
				A: clear.A,
			},
			StoreOp: wgpu.StoreOpStore,
		}},
	}
}
