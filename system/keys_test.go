// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"testing"

	"cogentcore.org/sandbox/events/key"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestGlfwKeyCode(t *testing.T) {
	tests := map[glfw.Key]key.Codes{
		glfw.KeyA:       key.CodeA,
		glfw.KeyD:       key.CodeD,
		glfw.KeyS:       key.CodeS,
		glfw.KeyW:       key.CodeW,
		glfw.KeySpace:   key.CodeSpacebar,
		glfw.KeyEscape:  key.CodeEscape,
		glfw.KeyEnter:   key.CodeReturnEnter,
		glfw.KeyKPEnter: key.CodeReturnEnter,
		glfw.KeyQ:       key.CodeUnknown,
		glfw.KeyF1:      key.CodeUnknown,
		glfw.KeyUnknown: key.CodeUnknown,
	}
	for gk, want := range tests {
		assert.Equal(t, want, GlfwKeyCode(gk), "glfw key %d", gk)
	}
}

func TestGlfwAction(t *testing.T) {
	act, rep := GlfwAction(glfw.Press)
	assert.Equal(t, key.Press, act)
	assert.False(t, rep)

	act, rep = GlfwAction(glfw.Repeat)
	assert.Equal(t, key.Press, act)
	assert.True(t, rep)

	act, rep = GlfwAction(glfw.Release)
	assert.Equal(t, key.Release, act)
	assert.False(t, rep)
}

func TestKeyEvent(t *testing.T) {
	w := &Window{}
	w.Event.Init()
	w.KeyEvent(nil, glfw.KeySpace, 0, glfw.Press, 0)
	w.KeyEvent(nil, glfw.KeyD, 0, glfw.Repeat, 0)
	w.KeyEvent(nil, glfw.KeyEscape, 0, glfw.Release, 0)
	w.FramebufferSizeEvent(nil, 800, 0)
	w.CloseEvent(nil)
	w.RequestRedraw()

	evs := w.drain()
	if assert.Len(t, evs, 6) {
		assert.True(t, evs[0].IsKeyPressed(key.CodeSpacebar))
		assert.True(t, evs[1].IsKeyRepeated(key.CodeD))
		assert.True(t, evs[2].IsKeyReleased(key.CodeEscape))
		assert.Equal(t, "WindowResize{(800,0)}", evs[3].String())
		assert.True(t, evs[4].IsExit())
		assert.Equal(t, "WindowPaint", evs[5].String())
	}
	assert.Empty(t, w.drain())
}
