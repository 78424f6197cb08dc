// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu is the WebGPU side of the sandbox: the device and
// queue, the window surface, the two triangle pipelines, and the
// [Context] that draws one frame with them.
package gpu

//go:generate core generate

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Debug turns on extra logging of GPU setup.
var Debug = false

// GPU holds the WebGPU instance, the adapter selected for a window
// surface, and the logical device and queue created from it.
type GPU struct {
	// Name is used as the label of the device and other objects.
	Name string

	// PowerPreference is used when requesting the adapter.
	PowerPreference wgpu.PowerPreference

	Instance *wgpu.Instance
	Adapter  *wgpu.Adapter
	Device   *wgpu.Device
	Queue    *wgpu.Queue
}

// NewGPU returns a new GPU with a fresh WebGPU instance.
// The adapter and device are requested by [GPU.NewSurface],
// because they must be compatible with the surface.
func NewGPU(name string, power wgpu.PowerPreference) *GPU {
	return &GPU{
		Name:            name,
		PowerPreference: power,
		Instance:        wgpu.CreateInstance(nil),
	}
}

// NewSurface creates the window surface from the given descriptor
// and, on first use, requests an adapter compatible with it and
// a device on that adapter.
func (gp *GPU) NewSurface(desc *wgpu.SurfaceDescriptor) (*Surface, error) {
	ws := gp.Instance.CreateSurface(desc)
	if ws == nil {
		return nil, fmt.Errorf("gpu: could not create surface")
	}
	if gp.Device == nil {
		if err := gp.requestDevice(ws); err != nil {
			ws.Release()
			return nil, err
		}
	}
	return newSurface(gp, ws), nil
}

func (gp *GPU) requestDevice(ws *wgpu.Surface) error {
	adapter, err := gp.Instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface:    ws,
		PowerPreference:      gp.PowerPreference,
		ForceFallbackAdapter: false,
	})
	if errors.Log(err) != nil {
		return fmt.Errorf("gpu: request adapter: %w", err)
	}
	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: gp.Name,
	})
	if errors.Log(err) != nil {
		adapter.Release()
		return fmt.Errorf("gpu: request device: %w", err)
	}
	gp.Adapter = adapter
	gp.Device = device
	gp.Queue = device.GetQueue()
	slog.Info("gpu: device ready", "name", gp.Name, "power", gp.PowerPreference)
	return nil
}

// Release releases the device, adapter and instance.
func (gp *GPU) Release() {
	if gp.Queue != nil {
		gp.Queue.Release()
		gp.Queue = nil
	}
	if gp.Device != nil {
		gp.Device.Release()
		gp.Device = nil
	}
	if gp.Adapter != nil {
		gp.Adapter.Release()
		gp.Adapter = nil
	}
	if gp.Instance != nil {
		gp.Instance.Release()
		gp.Instance = nil
	}
}
