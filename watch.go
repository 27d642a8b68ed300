package landing

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watchAssets rebuilds the manifest and drops cached pages whenever a file
// under the static dir changes. It returns once the watcher is running; the
// watch loop exits when ctx is cancelled.
func (a *App) watchAssets(ctx context.Context) error {
	dir := a.Config.StaticDir
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		a.Echo.Logger.Debugf("asset watcher: %s is not a directory, skipping", dir)
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("landing: create asset watcher: %w", err)
	}
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		watcher.Close()
		return fmt.Errorf("landing: watch %s: %w", dir, err)
	}

	go a.watchLoop(ctx, watcher)
	a.Echo.Logger.Infof("watching %s for asset changes", dir)
	return nil
}

func (a *App) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			a.handleAssetEvent(watcher, event)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			a.Echo.Logger.Errorf("asset watcher: %v", err)
		}
	}
}

func (a *App) handleAssetEvent(watcher *fsnotify.Watcher, event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := watcher.Add(event.Name); err != nil {
				a.Echo.Logger.Errorf("asset watcher: add %s: %v", event.Name, err)
			}
		}
	}
	if err := a.Assets.Build(); err != nil {
		a.Echo.Logger.Errorf("asset watcher: %v", err)
		return
	}
	a.Cache.Invalidate()
	a.Echo.Logger.Debugf("asset %s: %s, manifest rebuilt", event.Op, event.Name)
}
