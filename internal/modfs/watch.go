package modfs

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"thunkd/internal/project"
)

// Watcher re-validates a modular project directory whenever its files
// change: after each settled burst of edits it reloads the directory and
// attempts a Merge, reporting the outcome through the OnResult callback.
// This catches a malformed edit (bad file name, broken JSON, unknown screen)
// at save time instead of at push time.
type Watcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	dir         string
	logger      *zap.Logger
	debounceMap map[string]time.Time
	debounceDur time.Duration
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool

	// OnResult receives the outcome of each validation pass: nil when the
	// directory merges cleanly, the merge or read error otherwise.
	OnResult func(err error)
}

// NewWatcher creates a Watcher for dir. Start must be called to begin
// watching.
func NewWatcher(dir string, logger *zap.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		watcher:     fsw,
		dir:         dir,
		logger:      logger,
		debounceMap: make(map[string]time.Time),
		debounceDur: 500 * time.Millisecond,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}
	if err := w.watcher.Add(w.dir); err != nil {
		return err
	}
	w.running = true
	w.logger.Info("watching modular project", zap.String("dir", w.dir))

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	_ = w.watcher.Close()
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", zap.Error(err))
		case <-ticker.C:
			w.processSettled()
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !strings.HasSuffix(event.Name, ".json") && !strings.HasSuffix(event.Name, ".xml") {
		return
	}
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}
	w.logger.Debug("file event", zap.String("file", event.Name), zap.String("op", event.Op.String()))

	w.mu.Lock()
	w.debounceMap[event.Name] = time.Now()
	w.mu.Unlock()
}

// processSettled runs one validation pass once every pending event has aged
// past the debounce window, so rapid editor saves trigger a single reload.
func (w *Watcher) processSettled() {
	w.mu.Lock()
	if len(w.debounceMap) == 0 {
		w.mu.Unlock()
		return
	}
	now := time.Now()
	for _, eventTime := range w.debounceMap {
		if now.Sub(eventTime) < w.debounceDur {
			w.mu.Unlock()
			return
		}
	}
	w.debounceMap = make(map[string]time.Time)
	w.mu.Unlock()

	w.validate()
}

func (w *Watcher) validate() {
	err := Validate(w.dir)
	if err != nil {
		w.logger.Warn("modular project does not merge", zap.Error(err))
	} else {
		w.logger.Info("modular project merges cleanly", zap.String("dir", w.dir))
	}
	if w.OnResult != nil {
		w.OnResult(err)
	}
}

// Validate loads the modular project in dir and checks that it reconstructs
// into a document.
func Validate(dir string) error {
	fs, _, err := ReadDir(dir)
	if err != nil {
		return err
	}
	_, err = project.Merge(fs)
	return err
}
