package runner

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/projectdiscovery/gologger"
)

// this much time must elapse without a file being further modified
// before it is reloaded
const debounce = 500 * time.Millisecond

// watch reloads paths whenever they change until ctx is done. The
// parent directories are watched so that files replaced by editors
// are picked up too. The returned bool is true when a check failed
// on any reload.
func (r *Runner) watch(ctx context.Context, paths []string) (bool, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return false, fmt.Errorf("could not create watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	watched := make(map[string]string)
	dirs := make(map[string]struct{})
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return false, fmt.Errorf("could not resolve %s: %w", path, err)
		}
		watched[abs] = path

		dir := filepath.Dir(abs)
		if _, ok := dirs[dir]; ok {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return false, fmt.Errorf("could not watch %s: %w", dir, err)
		}
		dirs[dir] = struct{}{}
	}
	gologger.Info().Msgf("Watching %d hosts files for changes\n", len(watched))

	failed := false
	pending := make(chan string)
	timers := make(map[string]*time.Timer)
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			gologger.Info().Msgf("Stopped watching hosts files\n")
			return failed, nil
		case event, ok := <-watcher.Events:
			if !ok {
				return failed, nil
			}
			path, ok := watched[filepath.Clean(event.Name)]
			if !ok || !event.Has(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) {
				continue
			}
			if t, ok := timers[path]; ok {
				// a timer that already fired has its reload queued and
				// the reload reads the file after this event
				if t.Stop() {
					t.Reset(debounce)
				}
				continue
			}
			timers[path] = time.AfterFunc(debounce, func() {
				select {
				case pending <- path:
				case <-ctx.Done():
				}
			})
		case path := <-pending:
			delete(timers, path)
			gologger.Info().Msgf("Reloading changed hosts file %s\n", path)
			ok, err := r.process(r.load(path))
			if err != nil {
				gologger.Error().Msgf("Could not reload %s: %s\n", path, err)
			}
			failed = failed || !ok
			r.flush()
		case err, ok := <-watcher.Errors:
			if !ok {
				return failed, nil
			}
			gologger.Warning().Msgf("Watcher error: %s\n", err)
		}
	}
}
