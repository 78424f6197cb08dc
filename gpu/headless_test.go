// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"errors"
	"image"
	"testing"

	"cogentcore.org/sandbox/render"
	"github.com/stretchr/testify/assert"
)

func TestHeadlessNotConfigured(t *testing.T) {
	hl := NewHeadless()
	assert.NoError(t, hl.Render(render.Frame{Pipeline: render.Secondary}))
	assert.Equal(t, 0, hl.Frames)
	assert.False(t, hl.Configured())
}

func TestHeadlessZeroResize(t *testing.T) {
	hl := NewHeadless()
	assert.True(t, hl.Reconfigure(image.Pt(640, 480)))
	assert.False(t, hl.Reconfigure(image.Pt(0, 480)))
	assert.False(t, hl.Reconfigure(image.Pt(640, 0)))
	assert.Equal(t, image.Pt(640, 480), hl.Size())
	assert.Equal(t, 1, hl.Configures)
	w, h := hl.Format.Size32()
	assert.Equal(t, uint32(640), w)
	assert.Equal(t, uint32(480), h)

	fr := render.Frame{Clear: render.Color{R: 0.5, A: 1}, Pipeline: render.Secondary}
	assert.NoError(t, hl.Render(fr))
	assert.Equal(t, fr, hl.Last)
}

func TestHeadlessFailNext(t *testing.T) {
	hl := NewHeadless()
	hl.Record = true
	hl.Reconfigure(image.Pt(10, 10))
	hl.FailNext(ErrSurfaceLost, nil, ErrOutOfMemory)

	err := hl.Render(render.Frame{})
	assert.ErrorIs(t, err, ErrSurfaceLost)
	assert.NoError(t, hl.Render(render.Frame{}))
	assert.Equal(t, OutOfMemory, Classify(hl.Render(render.Frame{})))
	assert.NoError(t, hl.Render(render.Frame{Pipeline: 7}))

	assert.Equal(t, 2, hl.Frames)
	assert.Len(t, hl.Drawn, 2)
	assert.Equal(t, render.Primary, hl.Last.Pipeline)
}

func TestHeadlessReloadShader(t *testing.T) {
	hl := NewHeadless()
	assert.Equal(t, TriangleShader, hl.Shader)
	assert.NoError(t, hl.ReloadShader("new"))
	assert.Equal(t, "new", hl.Shader)

	hl.ShaderErr = errors.New("bad shader")
	assert.Error(t, hl.ReloadShader("worse"))
	assert.Equal(t, "new", hl.Shader)
}

func TestTriangleShaderEntries(t *testing.T) {
	for _, entry := range []string{VertexEntry, PrimaryFragmentEntry, ColorFragmentEntry} {
		assert.Contains(t, TriangleShader, "fn "+entry+"(")
	}
}
