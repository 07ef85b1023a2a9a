package server

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/jonfriesen/elementify"
)

// WatchDictionary reloads the JSON dictionary at path whenever it changes and
// passes each successfully loaded snapshot to onLoad. A file that fails to
// load is logged and skipped; the previous snapshot stays in use. It blocks
// until ctx is done.
func WatchDictionary(ctx context.Context, path string, logger *zap.Logger, onLoad func(*elementify.Dictionary) error) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch dictionary: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch dictionary: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file instead of writing it, so watch the
	// directory and filter by name.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch dictionary: %w", err)
	}
	logger.Info("watching dictionary", zap.String("path", path))

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			dict, err := elementify.LoadDictionaryFile(path)
			if err != nil {
				logger.Warn("dictionary reload failed", zap.String("path", path), zap.Error(err))
				continue
			}
			if err := onLoad(dict); err != nil {
				logger.Warn("dictionary reload rejected", zap.String("path", path), zap.Error(err))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("dictionary watcher", zap.Error(err))
		}
	}
}
