// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/sandbox/render"
	"github.com/cogentcore/webgpu/wgpu"
)

// Entry point names in the triangle shader.
const (
	VertexEntry          = "vs_main"
	PrimaryFragmentEntry = "fs_main"
	ColorFragmentEntry   = "fs_color"
)

// GraphicsPipeline is a render pipeline made of a vertex and a
// fragment [ShaderEntry] plus fixed-function state. It draws without
// vertex buffers or bind groups: the vertices come from the shader.
type GraphicsPipeline struct {
	// unique name of this pipeline
	Name string

	Vertex   *ShaderEntry
	Fragment *ShaderEntry

	// Primitive has the topology, front face and culling.
	Primitive wgpu.PrimitiveState

	// Multisample has the sample count and mask.
	Multisample wgpu.MultisampleState

	renderPipeline *wgpu.RenderPipeline
}

// NewGraphicsPipeline returns a new pipeline with the default
// triangle settings: see [GraphicsPipeline.SetGraphicsDefaults].
func NewGraphicsPipeline(name string, vertex, fragment *ShaderEntry) *GraphicsPipeline {
	pl := &GraphicsPipeline{Name: name, Vertex: vertex, Fragment: fragment}
	pl.SetGraphicsDefaults()
	return pl
}

// SetGraphicsDefaults sets a triangle list, counter-clockwise front
// faces, back face culling and no multisampling.
func (pl *GraphicsPipeline) SetGraphicsDefaults() *GraphicsPipeline {
	pl.Primitive.Topology = wgpu.PrimitiveTopologyTriangleList
	pl.SetFrontFace(wgpu.FrontFaceCCW)
	pl.SetCullMode(wgpu.CullModeBack)
	pl.SetMultisample(1)
	return pl
}

// SetFrontFace sets the winding order for what counts as a front face.
func (pl *GraphicsPipeline) SetFrontFace(face wgpu.FrontFace) *GraphicsPipeline {
	pl.Primitive.FrontFace = face
	return pl
}

// SetCullMode sets the face culling mode.
func (pl *GraphicsPipeline) SetCullMode(mode wgpu.CullMode) *GraphicsPipeline {
	pl.Primitive.CullMode = mode
	return pl
}

// SetMultisample sets the number of samples, 1 for none.
func (pl *GraphicsPipeline) SetMultisample(ms int) *GraphicsPipeline {
	pl.Multisample.Count = uint32(ms)
	pl.Multisample.Mask = 0xFFFFFFFF
	return pl
}

// Config builds the pipeline for the given layout and target format.
// An existing pipeline is released first when rebuild is set,
// otherwise Config is a no-op for a built pipeline.
func (pl *GraphicsPipeline) Config(dev *wgpu.Device, layout *wgpu.PipelineLayout, format wgpu.TextureFormat, rebuild bool) error {
	if pl.renderPipeline != nil {
		if !rebuild {
			return nil
		}
		pl.ReleasePipeline()
	}
	if pl.Vertex == nil || pl.Fragment == nil {
		return fmt.Errorf("gpu: pipeline %q needs a vertex and a fragment entry", pl.Name)
	}
	pd := &wgpu.RenderPipelineDescriptor{
		Label:       pl.Name,
		Layout:      layout,
		Primitive:   pl.Primitive,
		Multisample: pl.Multisample,
		Vertex: wgpu.VertexState{
			Module:     pl.Vertex.Shader.module,
			EntryPoint: pl.Vertex.Entry,
		},
		Fragment: &wgpu.FragmentState{
			Module:     pl.Fragment.Shader.module,
			EntryPoint: pl.Fragment.Entry,
			Targets: []wgpu.ColorTargetState{{
				Format:    format,
				Blend:     &wgpu.BlendStateReplace,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
	}
	rp, err := dev.CreateRenderPipeline(pd)
	if err != nil {
		slog.Error(err.Error())
		return err
	}
	pl.renderPipeline = rp
	return nil
}

// BindPipeline binds the pipeline to the render pass.
func (pl *GraphicsPipeline) BindPipeline(rp *wgpu.RenderPassEncoder) error {
	if pl.renderPipeline == nil {
		return fmt.Errorf("gpu: pipeline %q is not configured", pl.Name)
	}
	rp.SetPipeline(pl.renderPipeline)
	return nil
}

// ReleasePipeline releases the built pipeline, keeping the entries.
func (pl *GraphicsPipeline) ReleasePipeline() {
	if pl.renderPipeline != nil {
		pl.renderPipeline.Release()
		pl.renderPipeline = nil
	}
}

// PipelineSet holds the two triangle pipelines, built from one
// shader module. They share the vertex entry and the layout and
// differ only in their fragment entry.
type PipelineSet struct {
	Name string

	// Format is the color target format the pipelines render to.
	Format wgpu.TextureFormat

	shader    *Shader
	layout    *wgpu.PipelineLayout
	pipelines [2]*GraphicsPipeline
}

// NewPipelineSet compiles code and builds both pipelines for the
// given target format.
func NewPipelineSet(name string, dev *wgpu.Device, format wgpu.TextureFormat, code string) (*PipelineSet, error) {
	ps := &PipelineSet{Name: name, Format: format}
	layout, err := dev.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{Label: name})
	if errors.Log(err) != nil {
		return nil, err
	}
	ps.layout = layout
	if err := ps.Rebuild(dev, code); err != nil {
		ps.Release()
		return nil, err
	}
	return ps, nil
}

// Rebuild compiles new shader code and rebuilds both pipelines from it.
// If anything fails the previous pipelines are kept, so a bad edit of
// the shader file does not stop rendering.
func (ps *PipelineSet) Rebuild(dev *wgpu.Device, code string) error {
	sh, err := NewShader(ps.Name, dev, code)
	if err != nil {
		return err
	}
	vs := NewShaderEntry(sh, VertexShader, VertexEntry)
	var pls [2]*GraphicsPipeline
	for i, fs := range [2]string{PrimaryFragmentEntry, ColorFragmentEntry} {
		id := render.PipelineID(i)
		pl := NewGraphicsPipeline(ps.Name+":"+id.String(), vs, NewShaderEntry(sh, FragmentShader, fs))
		if err := pl.Config(dev, ps.layout, ps.Format, false); err != nil {
			for _, p := range pls {
				if p != nil {
					p.ReleasePipeline()
				}
			}
			sh.Release()
			return fmt.Errorf("gpu: build pipeline %s: %w", id, err)
		}
		pls[i] = pl
	}
	ps.releasePipelines()
	ps.shader = sh
	ps.pipelines = pls
	return nil
}

// Pipeline returns the pipeline for id. Any id other than
// [render.Secondary] selects the primary pipeline.
func (ps *PipelineSet) Pipeline(id render.PipelineID) *GraphicsPipeline {
	if id == render.Secondary {
		return ps.pipelines[render.Secondary]
	}
	return ps.pipelines[render.Primary]
}

// Bind binds the pipeline for id to the render pass.
func (ps *PipelineSet) Bind(rp *wgpu.RenderPassEncoder, id render.PipelineID) error {
	pl := ps.Pipeline(id)
	if pl == nil {
		return fmt.Errorf("gpu: no pipeline for %v", id)
	}
	return pl.BindPipeline(rp)
}

func (ps *PipelineSet) releasePipelines() {
	for i, pl := range ps.pipelines {
		if pl != nil {
			pl.ReleasePipeline()
			ps.pipelines[i] = nil
		}
	}
	if ps.shader != nil {
		ps.shader.Release()
		ps.shader = nil
	}
}

// Release releases the pipelines, the shader and the layout.
func (ps *PipelineSet) Release() {
	ps.releasePipelines()
	if ps.layout != nil {
		ps.layout.Release()
		ps.layout = nil
	}
}
