// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sandbox runs the frame loop of the triangle sandbox:
// it polls window events, applies them to the render state in
// order, and renders a frame whenever a redraw is due.
package sandbox

//go:generate core generate

import (
	"context"
	"image"
	"log/slog"
	"time"

	"cogentcore.org/sandbox/events"
	"cogentcore.org/sandbox/gpu"
	"cogentcore.org/sandbox/render"
)

// Graphics draws frames. It is implemented by [gpu.Context]
// and [gpu.Headless].
type Graphics interface {
	// Reconfigure sets the target size. A size with a zero dimension
	// is ignored and false is returned.
	Reconfigure(size image.Point) bool

	// Configured returns whether a Reconfigure has succeeded,
	// so that Render draws.
	Configured() bool

	// Render draws one frame.
	Render(fr render.Frame) error

	// ReloadShader rebuilds the pipelines from new shader code.
	ReloadShader(code string) error
}

// Source delivers events to the loop. It is implemented by [system.Window].
type Source interface {
	// Poll returns the pending events in delivery order.
	Poll() []events.Event

	// RequestRedraw asks for a [events.WindowPaint] event
	// from a following Poll.
	RequestRedraw()

	// Size returns the current size of the drawing area.
	Size() image.Point
}

// Loop is the frame loop. Its state is only touched from the
// goroutine calling [Loop.Run].
type Loop struct {
	Controller *render.Controller
	Graphics   Graphics
	Source     Source

	// Policy is what to do with render errors.
	Policy ErrorPolicies

	// Stats has the frame counts.
	Stats Stats

	// Now returns the current time, for the frame statistics.
	Now func() time.Time

	done bool
	err  error
}

// NewLoop returns a new loop.
func NewLoop(ctrl *render.Controller, gfx Graphics, src Source, policy ErrorPolicies) *Loop {
	return &Loop{Controller: ctrl, Graphics: gfx, Source: src, Policy: policy, Now: time.Now}
}

// Run runs the loop until the window is closed, Escape is released,
// a render error stops it under the [Strict] policy, or ctx is done.
// It returns the error that stopped it, or ctx.Err() if ctx is done.
func (lp *Loop) Run(ctx context.Context) error {
	lp.Source.RequestRedraw()
	for !lp.done {
		if err := ctx.Err(); err != nil {
			return err
		}
		lp.Step()
	}
	slog.Debug("sandbox: loop done", "rendered", lp.Stats.Rendered, "skipped", lp.Stats.Skipped)
	return lp.err
}

// Step runs one iteration of the loop: it polls the events and
// applies each of them in order. It returns false once the loop is done.
func (lp *Loop) Step() bool {
	for _, ev := range lp.Source.Poll() {
		lp.Handle(ev)
		if lp.done {
			break
		}
	}
	return !lp.done
}

// Done returns whether the loop has ended.
func (lp *Loop) Done() bool {
	return lp.done
}

// Handle applies one event. The controller sees it first; if it does
// not consume it, the default handling is done: exiting on close or
// Escape release, reconfiguring on resize, reloading the shader,
// and rendering on redraw once the graphics are configured.
func (lp *Loop) Handle(ev events.Event) {
	if lp.Controller.Handle(ev) {
		return
	}
	switch {
	case ev.IsExit():
		slog.Debug("sandbox: exit", "event", ev)
		lp.done = true
	case ev.Type == events.WindowResize:
		if !lp.Graphics.Reconfigure(ev.Size) {
			slog.Debug("sandbox: empty resize ignored", "size", ev.Size)
		}
	case ev.Type == events.ShaderReload:
		if err := lp.Graphics.ReloadShader(ev.Source); err != nil {
			slog.Error("sandbox: shader reload failed, keeping the previous pipelines", "err", err)
		}
	case ev.Type == events.WindowPaint:
		if lp.Graphics.Configured() {
			lp.renderFrame()
		}
		lp.Source.RequestRedraw()
	}
}

func (lp *Loop) renderFrame() {
	err := lp.Graphics.Render(lp.Controller.DecideFrame())
	lp.Stats.Frame(lp.Now(), err == nil)
	if err != nil {
		lp.renderError(err)
	}
}

func (lp *Loop) renderError(err error) {
	if lp.Policy != Strict {
		slog.Debug("sandbox: frame discarded", "err", err)
		return
	}
	kind := gpu.Classify(err)
	switch {
	case kind == gpu.OutOfMemory:
		slog.Error("sandbox: out of memory, stopping", "err", err)
		lp.err = err
		lp.done = true
	case kind.Recoverable():
		size := lp.Source.Size()
		slog.Warn("sandbox: surface needs reconfiguring", "kind", kind, "size", size)
		lp.Graphics.Reconfigure(size)
	default:
		slog.Warn("sandbox: frame skipped", "kind", kind, "err", err)
	}
}
