// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// PowerPreferences select the GPU adapter.
type PowerPreferences int32 //enums:enum -trim-prefix Power -transform lower

const (
	// PowerHigh prefers a discrete, high performance adapter.
	PowerHigh PowerPreferences = iota

	// PowerLow prefers an integrated, low power adapter.
	PowerLow
)

// WebGPU returns the wgpu power preference.
func (pp PowerPreferences) WebGPU() wgpu.PowerPreference {
	if pp == PowerLow {
		return wgpu.PowerPreferenceLowPower
	}
	return wgpu.PowerPreferenceHighPerformance
}

// LogLevels are the levels of the default logger.
type LogLevels int32 //enums:enum -trim-prefix Level -transform lower

const (
	LevelDebug LogLevels = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Level returns the [slog.Level], which makes LogLevels a [slog.Leveler].
func (lv LogLevels) Level() slog.Level {
	switch lv {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	}
	return slog.LevelInfo
}
