// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "fmt"

// Color is a clear color with float64 channels, matching the WebGPU
// clear value. Channels are not limited to [0, 1]: out-of-range
// values are passed to the GPU as is.
type Color struct {
	R, G, B, A float64
}

func (c Color) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
}

// PipelineID selects one of the two render pipelines.
type PipelineID int32 //enums:enum

const (
	// Primary is the pipeline using the solid fragment shader.
	Primary PipelineID = iota

	// Secondary is the pipeline using the position-colored fragment shader.
	Secondary
)

// Other returns the pipeline that is not id.
func (id PipelineID) Other() PipelineID {
	if id == Secondary {
		return Primary
	}
	return Secondary
}

// Modes are the input modes of the [Controller].
type Modes int32 //enums:enum -transform lower

const (
	// Adjust lets held A/D and W/S keys move the green and blue
	// channels of the clear color.
	Adjust Modes = iota

	// Toggle lets Space switch between the two pipelines.
	Toggle
)

// DefaultColor returns the initial clear color for the mode.
func (md Modes) DefaultColor() Color {
	if md == Toggle {
		return Color{0.01, 0.01, 0.01, 1}
	}
	return Color{0, 0, 0, 1}
}

// State is the render state mutated by input and read once per frame.
type State struct {
	// Clear is the accumulated clear color.
	Clear Color

	// Pipeline is the active pipeline.
	Pipeline PipelineID
}

// Frame holds the draw parameters for one frame.
type Frame struct {
	Clear    Color
	Pipeline PipelineID
}
