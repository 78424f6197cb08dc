// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types determines the type of window event delivered to the frame loop.
type Types int32 //enums:enum

const (
	// zero value is an unknown type: anything the window reports
	// that the sandbox does not interpret.
	UnknownType Types = iota

	// Key is a physical key transition: see [Event.Key], [Event.Action]
	// and [Event.Repeat] for which key and how.
	Key

	// WindowResize happens when the framebuffer of the window has been
	// resized. [Event.Size] holds the new size in pixels, which may
	// have a zero dimension while the window is minimized.
	WindowResize

	// WindowClose is sent when the user asks the window to close.
	WindowClose

	// WindowPaint requests that a new frame be rendered.
	WindowPaint

	// ShaderReload is sent when the shader source on disk has changed
	// and the pipelines should be rebuilt. [Event.Source] holds the
	// new WGSL code.
	ShaderReload
)
