// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines the physical key codes and key actions
// understood by the sandbox.
package key

//go:generate core generate

// Codes are the physical key codes that the sandbox distinguishes.
// Every other key is reported as [CodeUnknown].
type Codes int32 //enums:enum -trim-prefix Code

const (
	CodeUnknown Codes = iota
	CodeA
	CodeD
	CodeS
	CodeW
	CodeSpacebar
	CodeEscape
	CodeReturnEnter
)

// Actions are the transitions a key can make.
type Actions int32 //enums:enum

const (
	// Press is a key going down. A held key produces further Press
	// actions flagged as repeats.
	Press Actions = iota

	// Release is a key coming back up.
	Release
)
