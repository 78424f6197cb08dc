// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		kind ErrorKinds
	}{
		{nil, OtherError},
		{ErrSurfaceLost, SurfaceLost},
		{ErrSurfaceOutdated, SurfaceOutdated},
		{ErrOutOfMemory, OutOfMemory},
		{ErrTimeout, Timeout},
		{fmt.Errorf("render: %w", ErrSurfaceOutdated), SurfaceOutdated},
		{errors.New("validation error"), OtherError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.kind, Classify(tt.err), "%v", tt.err)
	}
}

func TestWrapStatus(t *testing.T) {
	tests := []struct {
		msg  string
		kind ErrorKinds
	}{
		{"SurfaceGetCurrentTextureStatus_Timeout", Timeout},
		{"SurfaceGetCurrentTextureStatus_Outdated", SurfaceOutdated},
		{"SurfaceGetCurrentTextureStatus_Lost", SurfaceLost},
		{"SurfaceGetCurrentTextureStatus_OutOfMemory", OutOfMemory},
		{"device out of memory", OutOfMemory},
		{"SurfaceGetCurrentTextureStatus_DeviceLost", SurfaceLost},
		{"something else", OtherError},
	}
	for _, tt := range tests {
		err := wrapStatus(errors.New(tt.msg))
		assert.Error(t, err)
		assert.Equal(t, tt.kind, Classify(err), tt.msg)
		assert.Contains(t, err.Error(), tt.msg)
	}
	assert.NoError(t, wrapStatus(nil))
}

func TestRecoverable(t *testing.T) {
	assert.True(t, SurfaceLost.Recoverable())
	assert.True(t, SurfaceOutdated.Recoverable())
	assert.False(t, OutOfMemory.Recoverable())
	assert.False(t, Timeout.Recoverable())
	assert.False(t, OtherError.Recoverable())
	assert.Equal(t, "OutOfMemory", OutOfMemory.String())
	assert.Equal(t, "OtherError", Classify(nil).String())
	assert.Len(t, ErrorKindsValues(), int(ErrorKindsN))
}
