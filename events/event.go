// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the window events consumed by the sandbox
// frame loop: key transitions, resizes, close requests, redraw
// requests and shader reloads.
package events

//go:generate core generate

import (
	"fmt"
	"image"

	"cogentcore.org/sandbox/events/key"
)

// Event is a tagged window event. Type selects which of the
// remaining fields are meaningful.
//
// A key event is described by three fields instead of separate
// pressed / released / repeated types: the physical Key, the Action
// (Press or Release), and whether the OS generated it as an
// auto-repeat of a held key.
type Event struct {
	Type Types

	// Key is the physical key for [Key] events.
	Key key.Codes

	// Action is the key transition for [Key] events.
	Action key.Actions

	// Repeat is set on [Key] Press events generated while the key is held.
	Repeat bool

	// Size is the new framebuffer size for [WindowResize] events.
	Size image.Point

	// Source is the new shader code for [ShaderReload] events.
	Source string
}

// NewKey returns a key event.
func NewKey(code key.Codes, action key.Actions, repeat bool) Event {
	return Event{Type: Key, Key: code, Action: action, Repeat: repeat}
}

// NewKeyPress returns a non-repeat key press.
func NewKeyPress(code key.Codes) Event {
	return NewKey(code, key.Press, false)
}

// NewKeyRelease returns a key release.
func NewKeyRelease(code key.Codes) Event {
	return NewKey(code, key.Release, false)
}

// NewKeyRepeat returns an auto-repeat key press.
func NewKeyRepeat(code key.Codes) Event {
	return NewKey(code, key.Press, true)
}

// NewResize returns a resize event for the given framebuffer size.
func NewResize(size image.Point) Event {
	return Event{Type: WindowResize, Size: size}
}

// NewClose returns a close request.
func NewClose() Event {
	return Event{Type: WindowClose}
}

// NewPaint returns a redraw request.
func NewPaint() Event {
	return Event{Type: WindowPaint}
}

// NewShaderReload returns a shader reload event carrying the new code.
func NewShaderReload(src string) Event {
	return Event{Type: ShaderReload, Source: src}
}

// IsKeyPressed reports whether ev is a first (non-repeat) press of code.
func (ev Event) IsKeyPressed(code key.Codes) bool {
	return ev.Type == Key && ev.Key == code && ev.Action == key.Press && !ev.Repeat
}

// IsKeyReleased reports whether ev is a release of code.
func (ev Event) IsKeyReleased(code key.Codes) bool {
	return ev.Type == Key && ev.Key == code && ev.Action == key.Release && !ev.Repeat
}

// IsKeyRepeated reports whether ev is an auto-repeat of a held code.
func (ev Event) IsKeyRepeated(code key.Codes) bool {
	return ev.Type == Key && ev.Key == code && ev.Repeat
}

// IsExit reports whether ev asks the sandbox to quit:
// a close request or releasing Escape.
func (ev Event) IsExit() bool {
	return ev.Type == WindowClose || ev.IsKeyReleased(key.CodeEscape)
}

func (ev Event) String() string {
	switch ev.Type {
	case Key:
		if ev.Repeat {
			return fmt.Sprintf("Key{%v %v repeat}", ev.Key, ev.Action)
		}
		return fmt.Sprintf("Key{%v %v}", ev.Key, ev.Action)
	case WindowResize:
		return fmt.Sprintf("WindowResize{%v}", ev.Size)
	case ShaderReload:
		return fmt.Sprintf("ShaderReload{%d bytes}", len(ev.Source))
	}
	return ev.Type.String()
}
