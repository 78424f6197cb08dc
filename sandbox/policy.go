// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sandbox

// ErrorPolicies determine what the [Loop] does when rendering
// a frame fails.
type ErrorPolicies int32 //enums:enum -transform lower

const (
	// Discard drops every render error: the frame is skipped and
	// the loop goes on. Errors are only logged at the Debug level.
	Discard ErrorPolicies = iota

	// Strict stops the loop on out-of-memory errors, reconfigures
	// the surface when it is lost or outdated, and logs other
	// errors as warnings.
	Strict
)
