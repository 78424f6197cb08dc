// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"testing"

	"cogentcore.org/sandbox/events"
	"cogentcore.org/sandbox/events/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleScenario(t *testing.T) {
	c := NewController(Toggle)
	assert.Equal(t, State{Clear: Color{0.01, 0.01, 0.01, 1}, Pipeline: Primary}, c.State())

	assert.True(t, c.Handle(events.NewKeyPress(key.CodeSpacebar)))
	assert.Equal(t, Secondary, c.State().Pipeline)

	assert.True(t, c.Handle(events.NewKeyPress(key.CodeSpacebar)))
	assert.Equal(t, Primary, c.State().Pipeline)
}

func TestToggleParity(t *testing.T) {
	for n := range 7 {
		c := NewController(Toggle)
		for range n {
			c.Handle(events.NewKeyPress(key.CodeSpacebar))
		}
		want := Primary
		if n%2 == 1 {
			want = Secondary
		}
		assert.Equal(t, want, c.State().Pipeline, "presses: %d", n)
	}
}

func TestToggleIgnores(t *testing.T) {
	c := NewController(Toggle)
	ignored := []events.Event{
		events.NewKeyRelease(key.CodeSpacebar),
		events.NewKeyRepeat(key.CodeSpacebar),
		events.NewKeyRepeat(key.CodeD),
		events.NewKeyPress(key.CodeUnknown),
		events.NewKeyRelease(key.CodeEscape),
		events.NewClose(),
		events.NewResize(image.Pt(800, 600)),
		events.NewPaint(),
	}
	before := c.State()
	for _, ev := range ignored {
		assert.False(t, c.Handle(ev), ev.String())
	}
	assert.Equal(t, before, c.State())
}

func TestAdjustScenario(t *testing.T) {
	c := NewController(Adjust)
	require.Equal(t, 0.0, c.State().Clear.G)

	for range 3 {
		assert.False(t, c.Handle(events.NewKeyRepeat(key.CodeD)))
	}
	assert.InDelta(t, 0.05, c.State().Clear.G, 1e-6)

	assert.False(t, c.Handle(events.NewKeyRepeat(key.CodeA)))
	assert.InDelta(t, 0.0333, c.State().Clear.G, 1e-4)
}

func TestAdjustAccumulatesWithoutClamping(t *testing.T) {
	for _, n := range []int{1, 10, 60, 200} {
		c := NewController(Adjust)
		for range n {
			c.Handle(events.NewKeyRepeat(key.CodeA))
		}
		assert.InDelta(t, -float64(n)/60, c.State().Clear.G, 1e-9, "n: %d", n)
	}

	c := NewController(Adjust)
	for range 120 {
		c.Handle(events.NewKeyRepeat(key.CodeS))
	}
	assert.InDelta(t, 2.0, c.State().Clear.B, 1e-9)

	for range 180 {
		c.Handle(events.NewKeyRepeat(key.CodeW))
	}
	assert.InDelta(t, -1.0, c.State().Clear.B, 1e-9)
}

func TestAdjustIgnoresNonRepeats(t *testing.T) {
	c := NewController(Adjust)
	before := c.State()
	for _, code := range []key.Codes{key.CodeA, key.CodeD, key.CodeW, key.CodeS, key.CodeSpacebar} {
		assert.False(t, c.Handle(events.NewKeyPress(code)))
		assert.False(t, c.Handle(events.NewKeyRelease(code)))
	}
	assert.False(t, c.Handle(events.NewKeyRepeat(key.CodeUnknown)))
	assert.Equal(t, before, c.State())
}

func TestDecideFramePure(t *testing.T) {
	c := NewControllerColor(Toggle, Color{0.2, 0.4, 0.6, 1})
	c.Handle(events.NewKeyPress(key.CodeSpacebar))

	f1 := c.DecideFrame()
	f2 := c.DecideFrame()
	assert.Equal(t, f1, f2)
	assert.Equal(t, Frame{Clear: Color{0.2, 0.4, 0.6, 1}, Pipeline: Secondary}, f1)
	assert.Equal(t, c.State().Clear, f1.Clear)
}

func TestModesSetString(t *testing.T) {
	var md Modes
	assert.NoError(t, md.SetString("toggle"))
	assert.Equal(t, Toggle, md)
	assert.NoError(t, md.SetString("adjust"))
	assert.Equal(t, Adjust, md)
	assert.Error(t, md.SetString("spin"))
	assert.Equal(t, Adjust, md)
	assert.Equal(t, "toggle", Toggle.String())
	assert.Equal(t, []Modes{Adjust, Toggle}, ModesValues())

	b, err := Toggle.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "toggle", string(b))
	assert.NoError(t, md.UnmarshalText([]byte("toggle")))
	assert.Equal(t, Toggle, md)
}

func TestPipelineIDString(t *testing.T) {
	assert.Equal(t, "Primary", Primary.String())
	assert.Equal(t, "Secondary", Secondary.String())
	assert.Equal(t, "7", PipelineID(7).String())
	assert.Equal(t, Secondary, Primary.Other())
	assert.Equal(t, Primary, Secondary.Other())
}
