package audio

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher invalidates cached sounds when their files change on disk, so an
// edited sound is decoded again on its next playback.
type Watcher struct {
	mu     sync.Mutex
	logger *slog.Logger
	player *Player

	watcher *fsnotify.Watcher
	paths   map[string]bool // cleaned file paths being watched
	dirs    map[string]bool // directories added to fsnotify

	// onInvalidate is called after a cache entry is dropped (tests).
	onInvalidate func(path string)

	done    chan struct{}
	stopped chan struct{}
	running bool
}

// NewWatcher creates a new sound file watcher.
func NewWatcher(player *Player, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{
		logger: logger,
		player: player,
		paths:  make(map[string]bool),
		dirs:   make(map[string]bool),
	}
}

// Watch adds a file to the watch list. The containing directory is watched
// since editors commonly replace files rather than write them in place.
func (w *Watcher) Watch(path string) error {
	if path == "" {
		return nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	path = filepath.Clean(path)
	w.paths[path] = true

	if w.watcher == nil {
		return nil
	}
	return w.addDirLocked(filepath.Dir(path))
}

// Start begins watching. It is a no-op if already running.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.watcher = fw

	for path := range w.paths {
		if err := w.addDirLocked(filepath.Dir(path)); err != nil {
			w.logger.Warn("failed to watch sound directory", "path", path, "error", err)
		}
	}

	w.running = true
	w.done = make(chan struct{})
	w.stopped = make(chan struct{})

	go w.watchLoop(ctx, fw, w.done, w.stopped)

	w.logger.Debug("sound watcher started", "files", len(w.paths))
	return nil
}

// Stop stops watching and waits for the watch loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.done)
	stopped := w.stopped
	fw := w.watcher
	w.watcher = nil
	w.dirs = make(map[string]bool)
	w.mu.Unlock()

	<-stopped
	_ = fw.Close()
	w.logger.Debug("sound watcher stopped")
}

// IsRunning returns whether the watcher is currently running.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

func (w *Watcher) addDirLocked(dir string) error {
	if w.dirs[dir] {
		return nil
	}
	if err := w.watcher.Add(dir); err != nil {
		return err
	}
	w.dirs[dir] = true
	return nil
}

func (w *Watcher) watchLoop(ctx context.Context, fw *fsnotify.Watcher, done, stopped chan struct{}) {
	defer close(stopped)

	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			return

		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.handle(filepath.Clean(event.Name))

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("sound watcher error", "error", err)
		}
	}
}

func (w *Watcher) handle(path string) {
	w.mu.Lock()
	watched := w.paths[path]
	onInvalidate := w.onInvalidate
	w.mu.Unlock()

	if !watched {
		return
	}

	w.logger.Debug("sound file changed, invalidating cache", "path", path)
	if w.player != nil {
		w.player.InvalidateCache(path)
	}
	if onInvalidate != nil {
		onInvalidate(path)
	}
}
