// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sandbox

import (
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/sandbox/events"
	"github.com/fsnotify/fsnotify"
)

// Sender accepts events from other goroutines.
// It is implemented by [system.Window].
type Sender interface {
	Send(ev events.Event)
}

// ShaderWatcher sends a [events.ShaderReload] event with the new
// code whenever a shader file is written.
type ShaderWatcher struct {
	// File is the shader file being watched.
	File string

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// WatchShader starts watching file, sending reload events to to.
// The directory of the file is watched, so that editors that
// replace the file on save are seen too.
func WatchShader(file string, to Sender) (*ShaderWatcher, error) {
	file, err := filepath.Abs(file)
	if err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(file)); err != nil {
		watcher.Close()
		return nil, err
	}
	sw := &ShaderWatcher{File: file, watcher: watcher, done: make(chan struct{})}
	go sw.watch(to)
	slog.Info("sandbox: watching shader", "file", file)
	return sw, nil
}

func (sw *ShaderWatcher) watch(to Sender) {
	defer close(sw.done)
	for {
		select {
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != sw.File {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			b, err := os.ReadFile(sw.File)
			if err != nil {
				slog.Error("sandbox: reading shader: " + err.Error())
				continue
			}
			if len(b) == 0 {
				continue
			}
			to.Send(events.NewShaderReload(string(b)))
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("sandbox: shader watcher error: " + err.Error())
		}
	}
}

// Close stops watching and waits for the watching goroutine to end.
func (sw *ShaderWatcher) Close() error {
	err := sw.watcher.Close()
	<-sw.done
	return err
}
