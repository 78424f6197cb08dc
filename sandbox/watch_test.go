// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sandbox

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/sandbox/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchShader(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "triangle.wgsl")
	other := filepath.Join(dir, "other.wgsl")
	require.NoError(t, os.WriteFile(file, []byte("v1"), 0o644))

	var q events.Queue
	q.Init()
	sw, err := WatchShader(file, &q)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o644))
	require.NoError(t, os.WriteFile(file, []byte("v2"), 0o644))

	var got events.Event
	require.Eventually(t, func() bool {
		for {
			ev, ok := q.NextEvent()
			if !ok {
				return false
			}
			got = ev
			if ev.Source == "v2" {
				return true
			}
		}
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, events.ShaderReload, got.Type)

	require.NoError(t, sw.Close())
	for {
		ev, ok := q.NextEvent()
		if !ok {
			break
		}
		assert.NotEqual(t, "ignored", ev.Source)
	}
}
