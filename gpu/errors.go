// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned when acquiring the next surface texture fails.
// Errors from [Surface.AcquireFrame] wrap exactly one of these,
// except for failures that fit none of them.
var (
	// ErrSurfaceLost means the surface must be recreated or reconfigured.
	ErrSurfaceLost = errors.New("gpu: surface lost")

	// ErrSurfaceOutdated means the surface no longer matches the window
	// and must be reconfigured.
	ErrSurfaceOutdated = errors.New("gpu: surface outdated")

	// ErrOutOfMemory means the device could not allocate the frame.
	ErrOutOfMemory = errors.New("gpu: out of memory")

	// ErrTimeout means no texture became available in time.
	ErrTimeout = errors.New("gpu: timeout acquiring surface texture")
)

// ErrorKinds classify render errors.
type ErrorKinds int32 //enums:enum

const (
	// OtherError is any error that is not one of the surface errors.
	OtherError ErrorKinds = iota

	// SurfaceLost wraps [ErrSurfaceLost].
	SurfaceLost

	// SurfaceOutdated wraps [ErrSurfaceOutdated].
	SurfaceOutdated

	// OutOfMemory wraps [ErrOutOfMemory].
	OutOfMemory

	// Timeout wraps [ErrTimeout].
	Timeout
)

// Recoverable reports whether reconfiguring the surface is expected
// to fix errors of this kind.
func (ek ErrorKinds) Recoverable() bool {
	return ek == SurfaceLost || ek == SurfaceOutdated
}

// Classify returns the kind of err. A nil error is [OtherError].
func Classify(err error) ErrorKinds {
	switch {
	case err == nil:
		return OtherError
	case errors.Is(err, ErrSurfaceLost):
		return SurfaceLost
	case errors.Is(err, ErrSurfaceOutdated):
		return SurfaceOutdated
	case errors.Is(err, ErrOutOfMemory):
		return OutOfMemory
	case errors.Is(err, ErrTimeout):
		return Timeout
	}
	return OtherError
}

// wrapStatus wraps an error reported by the native surface with the
// matching sentinel, based on the status name in its message
// (e.g. "SurfaceGetCurrentTextureStatus_Outdated").
func wrapStatus(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	var base error
	switch {
	case strings.Contains(msg, "outofmemory"), strings.Contains(msg, "out of memory"):
		base = ErrOutOfMemory
	case strings.Contains(msg, "outdated"):
		base = ErrSurfaceOutdated
	case strings.Contains(msg, "lost"):
		base = ErrSurfaceLost
	case strings.Contains(msg, "timeout"):
		base = ErrTimeout
	default:
		return fmt.Errorf("gpu: acquire surface texture: %w", err)
	}
	return fmt.Errorf("%w: %v", base, err)
}
