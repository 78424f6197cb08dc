// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"testing"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/sandbox/config"
	"github.com/stretchr/testify/assert"
)

func TestSetLogLevel(t *testing.T) {
	old := logx.UserLevel
	defer func() { logx.UserLevel = old }()

	cfg := config.New()
	cfg.LogLevel = config.LevelDebug
	logx.UserLevel = logx.LevelFromFlags(false, false, false)
	setLogLevel(cfg)
	assert.Equal(t, slog.LevelDebug, logx.UserLevel)
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))

	logx.UserLevel = logx.LevelFromFlags(false, false, true)
	setLogLevel(cfg)
	assert.Equal(t, slog.LevelError, logx.UserLevel)
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelWarn))
}
