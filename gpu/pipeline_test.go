// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"testing"

	"cogentcore.org/sandbox/render"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestPipelineSetLookup(t *testing.T) {
	sh := &Shader{Name: "triangle"}
	vs := NewShaderEntry(sh, VertexShader, VertexEntry)
	primary := NewGraphicsPipeline("primary", vs, NewShaderEntry(sh, FragmentShader, PrimaryFragmentEntry))
	secondary := NewGraphicsPipeline("secondary", vs, NewShaderEntry(sh, FragmentShader, ColorFragmentEntry))
	ps := &PipelineSet{pipelines: [2]*GraphicsPipeline{primary, secondary}}

	assert.Same(t, primary, ps.Pipeline(render.Primary))
	assert.Same(t, secondary, ps.Pipeline(render.Secondary))
	assert.Same(t, primary, ps.Pipeline(render.PipelineID(5)))
	assert.Same(t, primary, ps.Pipeline(render.PipelineID(-1)))
	assert.Same(t, ps.Pipeline(render.Primary).Vertex, ps.Pipeline(render.Secondary).Vertex)
}

func TestGraphicsDefaults(t *testing.T) {
	pl := NewGraphicsPipeline("tri", nil, nil)
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, pl.Primitive.Topology)
	assert.Equal(t, wgpu.FrontFaceCCW, pl.Primitive.FrontFace)
	assert.Equal(t, wgpu.CullModeBack, pl.Primitive.CullMode)
	assert.Equal(t, uint32(1), pl.Multisample.Count)

	err := pl.Config(nil, nil, wgpu.TextureFormatBGRA8UnormSrgb, false)
	assert.Error(t, err)
	assert.Error(t, pl.BindPipeline(nil))
}
