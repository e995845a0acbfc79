package folio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long Watch waits after the last change before
// rebuilding.
const DefaultDebounce = 300 * time.Millisecond

// Watch rebuilds the whole site whenever a file under the content or static
// directory changes, until ctx is canceled. Rebuilds run one at a time;
// onBuild, if non-nil, is called after each one. A failed rebuild is
// reported and watching continues.
func (s *Site) Watch(ctx context.Context, debounce time.Duration, onBuild func(BuildReport, error)) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("folio: create watcher: %w", err)
	}
	defer watcher.Close()

	for _, root := range []string{s.Config.ContentDir, s.Config.StaticDir} {
		if err := addTree(watcher, root); err != nil {
			return err
		}
	}

	timer := time.NewTimer(debounce)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			s.Logger.Debug("change detected", "path", event.Name, "op", event.Op.String())
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := addTree(watcher, event.Name); err != nil {
						s.Logger.Warn("watch new directory", "path", event.Name, "err", err)
					}
				}
			}
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.Logger.Warn("watcher error", "err", err)
		case <-timer.C:
			s.Logger.Info("rebuilding site")
			report, err := s.Build(ctx)
			if err != nil {
				s.Logger.Error("rebuild failed", "err", err)
			}
			if onBuild != nil {
				onBuild(report, err)
			}
		}
	}
}

// addTree watches root and every directory below it. A missing root is
// skipped.
func addTree(w *fsnotify.Watcher, root string) error {
	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.Add(path); err != nil {
			return fmt.Errorf("folio: watch %s: %w", path, err)
		}
		return nil
	})
}
