// Package watch regenerates runners when the cases directory changes.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"frg/internal/logging"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounceDelay is how long the tree must stay quiet before a rerun
const DefaultDebounceDelay = 300 * time.Millisecond

// Config holds configuration for the cases directory watcher
type Config struct {
	// Delay after the last event before OnChange is called
	DebounceDelay time.Duration
	// Relevant reports whether a changed file should trigger a rerun.
	// Nil accepts every file.
	Relevant func(path string) bool
	// OnChange regenerates the runners. Calls never overlap.
	OnChange func() error
	// OnError receives watcher errors and OnChange failures
	OnError func(err error)
}

// DefaultConfig returns the default watcher configuration
func DefaultConfig() Config {
	return Config{
		DebounceDelay: DefaultDebounceDelay,
		OnChange:      func() error { return nil },
		OnError:       func(err error) {},
	}
}

// Watcher watches every directory below a root and calls OnChange once a
// burst of relevant events has settled
type Watcher struct {
	root    string
	config  Config
	watcher *fsnotify.Watcher
	logger  *logging.Logger

	// Directories currently watched, only touched by the event loop after New
	dirs map[string]struct{}

	debounceTimer *time.Timer
	debounceMutex sync.Mutex

	// Serializes OnChange calls
	runMutex sync.Mutex
}

// New creates a watcher for root and registers every directory below it
func New(root string, config Config, logger *logging.Logger) (*Watcher, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	defaults := DefaultConfig()
	if config.DebounceDelay <= 0 {
		config.DebounceDelay = defaults.DebounceDelay
	}
	if config.OnChange == nil {
		config.OnChange = defaults.OnChange
	}
	if config.OnError == nil {
		config.OnError = defaults.OnError
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		root:    absRoot,
		config:  config,
		watcher: watcher,
		logger:  logger,
		dirs:    make(map[string]struct{}),
	}

	if err := w.addTree(absRoot); err != nil {
		watcher.Close()
		return nil, err
	}

	return w, nil
}

// Dirs returns the number of watched directories
func (w *Watcher) Dirs() int {
	return len(w.dirs)
}

// Run processes events until ctx is cancelled. A regeneration in progress
// when ctx ends is allowed to finish before Run returns.
func (w *Watcher) Run(ctx context.Context) error {
	w.logger.WatchStarted(w.root, len(w.dirs))
	defer w.stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.config.OnError(fmt.Errorf("watcher error: %w", err))
		}
	}
}

// handleEvent updates the watch list and schedules a rerun for relevant events
func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := filepath.Clean(event.Name)

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if err := w.addTree(path); err != nil {
				w.config.OnError(err)
			}
			w.logger.ChangeDetected(path, event.Op.String())
			w.schedule()
			return
		}
	}

	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		if _, ok := w.dirs[path]; ok {
			w.forgetTree(path)
			w.logger.ChangeDetected(path, event.Op.String())
			w.schedule()
			return
		}
	}

	// Permission changes never alter file content
	if event.Op == fsnotify.Chmod {
		return
	}

	if w.config.Relevant != nil && !w.config.Relevant(path) {
		return
	}

	w.logger.ChangeDetected(path, event.Op.String())
	w.schedule()
}

// schedule (re)starts the debounce timer
func (w *Watcher) schedule() {
	w.debounceMutex.Lock()
	defer w.debounceMutex.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.config.DebounceDelay, w.regenerate)
}

// regenerate calls OnChange, one call at a time
func (w *Watcher) regenerate() {
	w.runMutex.Lock()
	defer w.runMutex.Unlock()

	if err := w.config.OnChange(); err != nil {
		w.logger.RegenerationFailed(err)
		w.config.OnError(err)
	}
}

// addTree watches dir and every directory below it. Unreadable
// sub-directories are skipped.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return fmt.Errorf("failed to walk %s: %w", dir, err)
			}
			w.logger.FileSkipped(path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if _, ok := w.dirs[path]; ok {
			return nil
		}
		if err := w.watcher.Add(path); err != nil {
			if path == dir && dir == w.root {
				return fmt.Errorf("failed to watch %s: %w", path, err)
			}
			w.logger.FileSkipped(path, err)
			return filepath.SkipDir
		}
		w.dirs[path] = struct{}{}
		return nil
	})
}

// forgetTree drops dir and its sub-directories from the watch list. fsnotify
// removes the kernel watches of deleted directories on its own.
func (w *Watcher) forgetTree(dir string) {
	prefix := dir + string(filepath.Separator)
	for path := range w.dirs {
		if path == dir || strings.HasPrefix(path, prefix) {
			_ = w.watcher.Remove(path)
			delete(w.dirs, path)
		}
	}
}

// stop cancels any pending rerun, closes the watcher and waits for a
// running regeneration to finish
func (w *Watcher) stop() {
	w.debounceMutex.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceMutex.Unlock()

	w.watcher.Close()

	w.runMutex.Lock()
	w.runMutex.Unlock()
}
