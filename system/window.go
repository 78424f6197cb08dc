// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system provides the desktop window of the sandbox using glfw,
// translating glfw callbacks into [events.Event] values that the
// frame loop polls.
//
// All functions here must be called on the main OS thread.
package system

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/sandbox/events"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is a glfw window without a client graphics API,
// for rendering with WebGPU.
type Window struct {
	// Glw is the glfw window.
	Glw *glfw.Window

	// Title is the window title.
	Title string

	// Event is the queue of events not yet polled.
	// Other goroutines may Send into it.
	Event events.Queue

	redraw bool
}

// Init initializes glfw.
// IMPORTANT: must be called on the main initial thread!
func Init() error {
	return errors.Log(glfw.Init())
}

// Terminate shuts down glfw. Call as the last thing before quitting.
func Terminate() {
	glfw.Terminate()
}

// NewWindow initializes glfw and opens a window of the given size.
// The first event delivered by [Window.Poll] is a resize to the
// actual framebuffer size, so that the surface gets configured.
func NewWindow(size image.Point, title string) (*Window, error) {
	if err := Init(); err != nil {
		return nil, fmt.Errorf("system: init glfw: %w", err)
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glw, err := glfw.CreateWindow(size.X, size.Y, title, nil, nil)
	if errors.Log(err) != nil {
		Terminate()
		return nil, fmt.Errorf("system: create window: %w", err)
	}
	w := &Window{Glw: glw, Title: title}
	w.Event.Init()
	glw.SetKeyCallback(w.KeyEvent)
	glw.SetFramebufferSizeCallback(w.FramebufferSizeEvent)
	glw.SetCloseCallback(w.CloseEvent)
	w.Event.Send(events.NewResize(w.Size()))
	slog.Info("system: window opened", "title", title, "size", w.Size())
	return w, nil
}

// SurfaceDescriptor returns the descriptor for creating
// the WebGPU surface of this window.
func (w *Window) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(w.Glw)
}

// Size returns the current framebuffer size in pixels.
func (w *Window) Size() image.Point {
	width, height := w.Glw.GetFramebufferSize()
	return image.Pt(width, height)
}

// KeyEvent is the glfw key callback.
func (w *Window) KeyEvent(gw *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mod glfw.ModifierKey) {
	act, repeat := GlfwAction(action)
	w.Event.Send(events.NewKey(GlfwKeyCode(ky), act, repeat))
}

// FramebufferSizeEvent is the glfw framebuffer size callback.
func (w *Window) FramebufferSizeEvent(gw *glfw.Window, width, height int) {
	w.Event.Send(events.NewResize(image.Pt(width, height)))
}

// CloseEvent is the glfw close callback.
func (w *Window) CloseEvent(gw *glfw.Window) {
	w.Event.Send(events.NewClose())
}

// Send adds an event to the queue. It is safe to call
// from any goroutine.
func (w *Window) Send(ev events.Event) {
	w.Event.Send(ev)
}

// RequestRedraw asks for a [events.WindowPaint] event at the end
// of the next [Window.Poll].
func (w *Window) RequestRedraw() {
	w.redraw = true
}

// Poll processes pending glfw events and returns all queued events
// in delivery order, followed by a paint event if a redraw was requested.
func (w *Window) Poll() []events.Event {
	glfw.PollEvents()
	return w.drain()
}

func (w *Window) drain() []events.Event {
	evs := w.Event.Drain(nil)
	if w.redraw {
		w.redraw = false
		evs = append(evs, events.NewPaint())
	}
	return evs
}

// Close destroys the window and terminates glfw.
func (w *Window) Close() {
	if w.Glw != nil {
		w.Glw.Destroy()
		w.Glw = nil
	}
	Terminate()
}
