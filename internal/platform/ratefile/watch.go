package ratefile

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads path whenever it is written or replaced and passes the new
// tables to onChange. It blocks until ctx is cancelled.
//
// The parent directory is watched rather than the file so that editors that
// save through a rename keep triggering reloads. A file that fails to load
// is logged and skipped; onChange is only called with valid tables.
func Watch(ctx context.Context, path string, logger *slog.Logger, onChange func(*Tables)) error {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "ratefile_watcher", "path", path)

	target := filepath.Clean(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("rate file: create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("rate file: watch %q: %w", path, err)
	}

	logger.InfoContext(ctx, "watching rate file for changes")

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			tables, err := LoadFile(target)
			if err != nil {
				logger.ErrorContext(ctx, "rate file reload failed, keeping previous tables", "error", err)
				continue
			}

			logger.InfoContext(ctx, "rate file reloaded",
				"compensation_years", tables.Compensation.Years(),
				"smc_years", tables.SMC.Years())
			onChange(tables)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.ErrorContext(ctx, "rate file watcher error", "error", err)
		}
	}
}
