// Package watch re-runs a callback whenever a watched file is written,
// for the difflib-rs CLI's --watch mode.
package watch

import (
	"context"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// OnChange watches the given files and calls fn once immediately, then
// again each time fsnotify reports a Write event on any of them, until ctx
// is cancelled. Errors reported by the watcher are logged and do not stop
// the loop.
func OnChange(ctx context.Context, fn func(), files ...string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, f := range files {
		if err := watcher.Add(f); err != nil {
			return err
		}
	}

	fn()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == fsnotify.Write {
				fn()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch: " + err.Error())
		}
	}
}
