// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sandbox

import (
	"log/slog"
	"time"
)

// StatsInterval is how often the frame rate is logged.
const StatsInterval = 10 * time.Second

// Stats counts rendered and skipped frames, and logs the frame
// rate at the Debug level every [StatsInterval].
type Stats struct {
	// Rendered is the total number of frames rendered.
	Rendered int

	// Skipped is the total number of frames that failed to render.
	Skipped int

	// FPS is the frame rate over the last full interval.
	FPS float64

	frameCount int
	stTime     time.Time
}

// Frame records the outcome of one frame at time now.
func (st *Stats) Frame(now time.Time, ok bool) {
	if st.stTime.IsZero() {
		st.stTime = now
	}
	if !ok {
		st.Skipped++
		return
	}
	st.Rendered++
	st.frameCount++
	dur := now.Sub(st.stTime)
	if dur >= StatsInterval {
		st.FPS = float64(st.frameCount) / dur.Seconds()
		slog.Debug("sandbox: frame rate", "fps", int(st.FPS+0.5), "rendered", st.Rendered, "skipped", st.Skipped)
		st.frameCount = 0
		st.stTime = now
	}
}
