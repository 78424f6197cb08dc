// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render holds the input-driven render state of the sandbox:
// the clear color and the active pipeline, and the rules that
// turn key events into changes of that state.
package render

//go:generate core generate

import (
	"log/slog"

	"cogentcore.org/sandbox/events"
	"cogentcore.org/sandbox/events/key"
)

// ChannelStep is the amount a channel moves per key repeat.
const ChannelStep = 1.0 / 60.0

// Controller translates input events into changes of its [State]
// and decides the draw parameters of each frame.
// It is owned by the frame loop and is not safe for concurrent use.
type Controller struct {
	// Mode selects which keys have an effect.
	Mode Modes

	state State
}

// NewController returns a controller in the given mode,
// starting from the mode's default color and the Primary pipeline.
func NewController(mode Modes) *Controller {
	return NewControllerColor(mode, mode.DefaultColor())
}

// NewControllerColor returns a controller in the given mode,
// starting from the given clear color and the Primary pipeline.
func NewControllerColor(mode Modes, clear Color) *Controller {
	return &Controller{Mode: mode, state: State{Clear: clear, Pipeline: Primary}}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// Handle applies ev to the state and reports whether the event was
// consumed. A consumed event must not be given any further default
// handling. Close requests, Escape releases and resizes are never
// consumed, so that the caller can act on them.
func (c *Controller) Handle(ev events.Event) bool {
	if ev.Type != events.Key {
		return false
	}
	switch c.Mode {
	case Adjust:
		c.adjust(ev)
		return false
	case Toggle:
		if ev.IsKeyPressed(key.CodeSpacebar) {
			c.state.Pipeline = c.state.Pipeline.Other()
			slog.Debug("render: pipeline toggled", "pipeline", c.state.Pipeline)
			return true
		}
	}
	return false
}

// adjust moves the green / blue channels for held A, D, W, S keys.
// There is no clamping.
func (c *Controller) adjust(ev events.Event) {
	if !ev.Repeat {
		return
	}
	switch {
	case ev.IsKeyRepeated(key.CodeA):
		c.state.Clear.G -= ChannelStep
	case ev.IsKeyRepeated(key.CodeD):
		c.state.Clear.G += ChannelStep
	case ev.IsKeyRepeated(key.CodeW):
		c.state.Clear.B -= ChannelStep
	case ev.IsKeyRepeated(key.CodeS):
		c.state.Clear.B += ChannelStep
	default:
		return
	}
	slog.Debug("render: clear color", "color", c.state.Clear)
}

// DecideFrame returns the draw parameters for the next frame.
// It has no side effects.
func (c *Controller) DecideFrame() Frame {
	pl := c.state.Pipeline
	if pl != Secondary {
		pl = Primary
	}
	return Frame{Clear: c.state.Clear, Pipeline: pl}
}
