// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	_ "embed"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// TriangleShader is the built-in WGSL code for the triangle pipelines.
// It defines the vertex entry vs_main and the fragment entries
// fs_main and fs_color.
//
//go:embed shaders/triangle.wgsl
var TriangleShader string

// ShaderTypes are the shader stages an entry point is used for.
type ShaderTypes int32 //enums:enum

const (
	VertexShader ShaderTypes = iota
	FragmentShader
)

// Shader manages a single compiled WGSL module,
// which can have multiple entry points.
type Shader struct {
	Name string

	module *wgpu.ShaderModule
}

// NewShader compiles the given WGSL code on the device.
func NewShader(name string, dev *wgpu.Device, code string) (*Shader, error) {
	module, err := dev.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          name,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: code},
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: compile shader %q: %w", name, err)
	}
	return &Shader{Name: name, module: module}, nil
}

// Release releases the shader module.
func (sh *Shader) Release() {
	if sh.module != nil {
		sh.module.Release()
		sh.module = nil
	}
}

// ShaderEntry is an entry point into a [Shader] for a given stage.
type ShaderEntry struct {
	Shader *Shader
	Type   ShaderTypes
	Entry  string
}

// NewShaderEntry returns a new ShaderEntry.
func NewShaderEntry(sh *Shader, typ ShaderTypes, entry string) *ShaderEntry {
	return &ShaderEntry{Shader: sh, Type: typ, Entry: entry}
}
