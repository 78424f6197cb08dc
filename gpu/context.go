// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/sandbox/render"
	"github.com/cogentcore/webgpu/wgpu"
)

// Context is the graphics context of one window: its surface and
// the two triangle pipelines targeting it.
type Context struct {
	GPU       *GPU
	Surface   *Surface
	Pipelines *PipelineSet
}

// NewContext creates the surface for the window described by desc,
// and builds the pipelines from the given WGSL code, or from
// [TriangleShader] if code is empty.
// Nothing is rendered until the first [Context.Reconfigure].
func NewContext(gp *GPU, desc *wgpu.SurfaceDescriptor, code string) (*Context, error) {
	sf, err := gp.NewSurface(desc)
	if errors.Log(err) != nil {
		return nil, err
	}
	if code == "" {
		code = TriangleShader
	}
	ps, err := NewPipelineSet(gp.Name, gp.Device, sf.Format.Format, code)
	if errors.Log(err) != nil {
		sf.Release()
		return nil, err
	}
	return &Context{GPU: gp, Surface: sf, Pipelines: ps}, nil
}

// Reconfigure configures the surface for a new window size.
// A size with a zero dimension is ignored and false is returned.
func (cx *Context) Reconfigure(size image.Point) bool {
	return cx.Surface.Reconfigure(size)
}

// Configured returns whether the surface can be rendered to.
func (cx *Context) Configured() bool {
	return cx.Surface.Configured()
}

// Size returns the configured surface size.
func (cx *Context) Size() image.Point {
	return cx.Surface.Size()
}

// ReloadShader rebuilds both pipelines from new WGSL code.
// The old pipelines stay in use if the code does not compile.
func (cx *Context) ReloadShader(code string) error {
	err := cx.Pipelines.Rebuild(cx.GPU.Device, code)
	if err != nil {
		return err
	}
	slog.Info("gpu: shader reloaded", "bytes", len(code))
	return nil
}

// AcquireFrame returns the surface texture for the next frame.
func (cx *Context) AcquireFrame() (*SurfaceFrame, error) {
	return cx.Surface.AcquireFrame()
}

// Submit finishes the command encoder and submits it to the queue,
// releasing the render pass and the encoder.
// rp.End must have been called.
func (cx *Context) Submit(rp *wgpu.RenderPassEncoder, cmd *wgpu.CommandEncoder) error {
	rp.Release() // must happen before Finish
	defer cmd.Release()
	cmdBuffer, err := cmd.Finish(nil)
	if err != nil {
		return fmt.Errorf("gpu: finish commands: %w", err)
	}
	cx.GPU.Queue.Submit(cmdBuffer)
	cmdBuffer.Release()
	return nil
}

// Present shows the rendered frame.
func (cx *Context) Present() {
	cx.Surface.Present()
}

// Render draws one frame: it clears the surface texture to fr.Clear,
// draws the triangle with the pipeline fr.Pipeline, submits and
// presents. Before the surface has been configured it does nothing.
func (cx *Context) Render(fr render.Frame) error {
	if !cx.Surface.Configured() {
		return nil
	}
	frame, err := cx.AcquireFrame()
	if err != nil {
		return err
	}
	defer frame.Release()
	cmd, err := cx.GPU.Device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: cx.GPU.Name})
	if err != nil {
		return fmt.Errorf("gpu: create command encoder: %w", err)
	}
	rp := cmd.BeginRenderPass(ClearRenderPass(frame.View, fr.Clear))
	if err := cx.Pipelines.Bind(rp, fr.Pipeline); err != nil {
		rp.End()
		rp.Release()
		cmd.Release()
		return err
	}
	rp.Draw(3, 1, 0, 0)
	rp.End()
	if err := cx.Submit(rp, cmd); err != nil {
		return err
	}
	cx.Present()
	return nil
}

// Release releases the pipelines and the surface.
// The [GPU] is released separately.
func (cx *Context) Release() {
	if cx.Pipelines != nil {
		cx.Pipelines.Release()
		cx.Pipelines = nil
	}
	if cx.Surface != nil {
		cx.Surface.Release()
		cx.Surface = nil
	}
}
