// Copyright (c) 2024 John Millikin <john@john-millikin.com>
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH
// REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
// AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT,
// INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
// LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
// OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
// PERFORMANCE OF THIS SOFTWARE.
//
// SPDX-License-Identifier: 0BSD

package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounceInterval = 100 * time.Millisecond

// fileWatcher reports writes to a fixed set of files. Directories are
// watched rather than the files themselves, so that editors which save by
// replacing the file are still seen.
type fileWatcher struct {
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	debounce *debouncer
	files    map[string]string

	mu      sync.Mutex
	pending map[string]bool
}

func newFileWatcher(paths []string, interval time.Duration, logger *slog.Logger) (*fileWatcher, error) {
	files := make(map[string]string, len(paths))
	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, err
		}
		files[abs] = path
		dirs[filepath.Dir(abs)] = true
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("failed to watch directory %q: %w", dir, err)
		}
		logger.Debug("Watching directory", "path", dir)
	}

	return &fileWatcher{
		watcher:  watcher,
		logger:   logger,
		debounce: newDebouncer(interval),
		files:    files,
		pending:  make(map[string]bool),
	}, nil
}

// watch calls onChange with the path (as given to newFileWatcher) of each
// input that changed, once per quiet period. It blocks until ctx is done.
func (fw *fileWatcher) watch(ctx context.Context, onChange func(path string)) error {
	fw.logger.Info("Watching for changes", "files", len(fw.files))
	for {
		select {
		case <-ctx.Done():
			fw.logger.Info("File watcher stopped")
			return nil

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			path, ok := fw.inputFor(event)
			if !ok {
				continue
			}
			fw.logger.Debug("File event detected", "path", event.Name, "op", event.Op.String())

			fw.mu.Lock()
			fw.pending[path] = true
			fw.mu.Unlock()
			fw.debounce.trigger(func() {
				for _, path := range fw.takePending() {
					onChange(path)
				}
			})

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			fw.logger.Error("File watcher error", "error", err)
		}
	}
}

// inputFor maps an event to the watched input it concerns. Only writes and
// creations of an input count.
func (fw *fileWatcher) inputFor(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return "", false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return "", false
	}
	path, ok := fw.files[abs]
	return path, ok
}

func (fw *fileWatcher) takePending() []string {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	paths := make([]string, 0, len(fw.pending))
	for path := range fw.pending {
		paths = append(paths, path)
	}
	clear(fw.pending)
	slices.Sort(paths)
	return paths
}

func (fw *fileWatcher) close() error {
	fw.debounce.stop()
	return fw.watcher.Close()
}

// debouncer runs the most recently triggered callback once no trigger has
// arrived for the interval. Callbacks never run concurrently.
type debouncer struct {
	interval time.Duration
	timer    *time.Timer
	mu       sync.Mutex
	callback func()
	stopCh   chan struct{}

	runMu sync.Mutex
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

func (d *debouncer) trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.callback = callback
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, func() {
		select {
		case <-d.stopCh:
			return
		default:
		}
		d.runMu.Lock()
		defer d.runMu.Unlock()
		d.mu.Lock()
		cb := d.callback
		d.mu.Unlock()
		if cb != nil {
			cb()
		}
	})
}

func (d *debouncer) stop() {
	close(d.stopCh)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.callback = nil
}
