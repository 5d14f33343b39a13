package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchDebounce is the quiet period after the last change before a reload.
var WatchDebounce = 100 * time.Millisecond

// Watch re-parses path after each change and passes the fresh list, or the
// load error, to onChange. It watches the parent directory so editors that
// replace the file by renaming are followed. Watch blocks until ctx is done.
func (s *Service) Watch(ctx context.Context, path string, onChange func(*List, error)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	log := s.Logger.WithField("path", abs)
	log.Debug("Watching file")

	timer := time.NewTimer(WatchDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug("Stopped watching file")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(WatchDebounce)

		case <-timer.C:
			list, err := s.Load(path)
			if err != nil {
				log.WithError(err).Debug("Reload failed")
			}
			onChange(list, err)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("File watcher error")
		}
	}
}
