// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"cogentcore.org/sandbox/events/key"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// GlfwKeyCode returns the key code for a glfw key.
// Keys the sandbox does not use map to [key.CodeUnknown].
func GlfwKeyCode(kcode glfw.Key) key.Codes {
	switch kcode {
	case glfw.KeyA:
		return key.CodeA
	case glfw.KeyD:
		return key.CodeD
	case glfw.KeyS:
		return key.CodeS
	case glfw.KeyW:
		return key.CodeW
	case glfw.KeySpace:
		return key.CodeSpacebar
	case glfw.KeyEscape:
		return key.CodeEscape
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return key.CodeReturnEnter
	default:
		return key.CodeUnknown
	}
}

// GlfwAction returns the key action for a glfw action.
// glfw reports auto-repeat as its own action; here it is
// a Press with repeat set.
func GlfwAction(action glfw.Action) (act key.Actions, repeat bool) {
	switch action {
	case glfw.Release:
		return key.Release, false
	case glfw.Repeat:
		return key.Press, true
	default:
		return key.Press, false
	}
}
