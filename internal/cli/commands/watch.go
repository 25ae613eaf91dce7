package commands

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
)

// watchDebounce is how long a burst of writes is coalesced before render.
const watchDebounce = 100 * time.Millisecond

// watchFile calls render after each change to path until ctx is cancelled.
// The parent directory is watched so editors that replace the file on save
// are still seen. Render errors are logged and watching continues.
func watchFile(ctx context.Context, path string, logger *slog.Logger, render func() error) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	changes := make(chan struct{}, 1)
	eg, egctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer close(changes)
		for {
			select {
			case <-egctx.Done():
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(event.Name) != abs || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				select {
				case changes <- struct{}{}:
				default:
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				logger.Error("watcher error", "error", err)
			}
		}
	})

	eg.Go(func() error {
		for range changes {
			// Debounce
			select {
			case <-egctx.Done():
				return nil
			case <-time.After(watchDebounce):
			}
			select {
			case <-changes:
			default:
			}

			logger.Debug("file changed, re-rendering", "file", path)
			if err := render(); err != nil {
				logger.Error("render failed", "file", path, "error", err)
			}
		}
		return nil
	})

	return eg.Wait()
}
