package config

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads configuration when the config file changes on disk and
// notifies subscribers. Reload failures keep the previous configuration.
type Watcher struct {
	watcher *fsnotify.Watcher
	logger  *zap.Logger

	mutex     sync.RWMutex
	current   *Config
	callbacks []func(*Config)
}

// NewWatcher creates a watcher over the directories Load reads from.
func NewWatcher(cfg *Config, logger *zap.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher: fsw,
		logger:  logger,
		current: cfg,
	}

	for _, dir := range []string{".", "./config"} {
		// Directories may not exist when config comes from env only.
		if err := fsw.Add(dir); err != nil {
			logger.Debug("config watch skipped", zap.String("dir", dir), zap.Error(err))
		}
	}

	go w.run()
	return w, nil
}

// Current returns the most recently loaded configuration.
func (w *Watcher) Current() *Config {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.current
}

// OnChange registers a callback invoked after each successful reload.
func (w *Watcher) OnChange(fn func(*Config)) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.callbacks = append(w.callbacks, fn)
}

// Close stops the underlying file system watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Base(event.Name) != "config.yaml" {
				continue
			}
			w.logger.Info("config file changed", zap.String("file", event.Name))
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("config watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load()
	if err != nil {
		w.logger.Error("config reload failed, keeping previous", zap.Error(err))
		return
	}

	w.mutex.Lock()
	w.current = cfg
	callbacks := make([]func(*Config), len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mutex.Unlock()

	for _, fn := range callbacks {
		fn(cfg)
	}
}
