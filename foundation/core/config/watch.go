// File: watch.go
// Title: Configuration File Watching Implementation
// Description: Reloads a configuration file when it changes on disk and
//              notifies registered handlers. Uses fsnotify on the parent
//              directory so editors that replace the file are also seen.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-02-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file watching
// - 2025-02-11 v0.2.0: fsnotify instead of one second polling
// - 2025-02-14 v0.2.1: Keep load defaults and env prefix across reloads

package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	mdwlog "github.com/msto63/textkit/foundation/core/log"
)

type watchState struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
	stop    sync.Once
}

// OnChange registers a handler called after every successful reload
func (c *Config) OnChange(handler ChangeHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, handler)
}

// Watch starts reloading the file on change until ctx is done or
// StopWatching is called. It returns once the watcher is registered.
func (c *Config) Watch(ctx context.Context) error {
	if c.filePath == "" {
		return mdwerror.New("file path required for watching").
			WithCode(mdwerror.CodeMissingConfig).
			WithOperation("config.Watch")
	}

	c.mu.Lock()
	if c.watch != nil {
		c.mu.Unlock()
		return nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		c.mu.Unlock()
		return mdwerror.Wrap(err, "failed to create file watcher").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Watch")
	}
	if err := w.Add(filepath.Dir(c.filePath)); err != nil {
		c.mu.Unlock()
		_ = w.Close()
		return mdwerror.Wrap(err, "failed to watch config directory").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Watch").
			WithDetail("filePath", c.filePath)
	}
	state := &watchState{watcher: w, done: make(chan struct{})}
	c.watch = state
	c.mu.Unlock()

	go c.watchLoop(ctx, state)
	return nil
}

func (c *Config) watchLoop(ctx context.Context, state *watchState) {
	defer state.watcher.Close()

	target := filepath.Clean(c.filePath)
	logger := mdwlog.GetDefault().WithName("config")

	for {
		select {
		case <-ctx.Done():
			c.StopWatching()
			return
		case <-state.done:
			return
		case ev, ok := <-state.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if err := c.reload(); err != nil {
				logger.WarnWithErr("config reload failed", err, mdwlog.Field("path", target))
			}
		case err, ok := <-state.watcher.Errors:
			if !ok {
				return
			}
			logger.WarnWithErr("config watcher error", err)
		}
	}
}

// reload re-reads the file, merges the load defaults again and notifies
// handlers. A file that fails to parse leaves the current values in place.
func (c *Config) reload() error {
	content, err := os.ReadFile(c.filePath)
	if err != nil {
		return mdwerror.Wrap(err, "failed to read config file during reload").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.reload").
			WithDetail("filePath", c.filePath)
	}
	newData, err := parseContent(content, c.format)
	if err != nil {
		return mdwerror.Wrap(err, "failed to parse config file during reload").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.reload").
			WithDetail("filePath", c.filePath)
	}

	c.mu.Lock()
	newData = mergeDefaults(newData, deepCopyMap(c.defaults))
	oldConfig := &Config{data: c.data, format: c.format, filePath: c.filePath, envPrefix: c.envPrefix, defaults: c.defaults}
	c.data = newData
	handlers := append([]ChangeHandler(nil), c.handlers...)
	newConfig := &Config{data: deepCopyMap(newData), format: c.format, filePath: c.filePath, envPrefix: c.envPrefix, defaults: c.defaults}
	c.mu.Unlock()

	for _, h := range handlers {
		if h != nil {
			h(oldConfig, newConfig)
		}
	}
	return nil
}

// StopWatching stops file monitoring
func (c *Config) StopWatching() {
	c.mu.Lock()
	state := c.watch
	c.watch = nil
	c.mu.Unlock()
	if state != nil {
		state.stop.Do(func() { close(state.done) })
	}
}

// IsWatching returns whether file monitoring is active
func (c *Config) IsWatching() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.watch != nil
}
