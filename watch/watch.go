// Package watch reloads a deck file when it changes on disk.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"infinite-slider/deck"
)

// DefaultDebounce batches the bursts of events editors produce on save.
const DefaultDebounce = 200 * time.Millisecond

// Watcher delivers a freshly loaded deck each time the file settles after a
// change. Loads that fail are logged and skipped.
type Watcher struct {
	path     string
	debounce time.Duration
	load     func(string) ([]deck.Slide, error)
	log      *zap.Logger

	fs   *fsnotify.Watcher
	out  chan []deck.Slide
	done chan struct{}
}

// New watches the directory holding path, so editors that replace the file
// on save are still seen.
func New(path string, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	return &Watcher{
		path:     abs,
		debounce: DefaultDebounce,
		load:     deck.Load,
		log:      log,
		fs:       fw,
		out:      make(chan []deck.Slide, 1),
		done:     make(chan struct{}),
	}, nil
}

// Decks returns the channel reloaded decks arrive on. Only the latest
// undelivered deck is kept.
func (w *Watcher) Decks() <-chan []deck.Slide { return w.out }

// Run blocks until ctx is cancelled, then closes the underlying watcher.
func (w *Watcher) Run(ctx context.Context) {
	defer close(w.done)
	defer w.fs.Close()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(w.debounce)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
		case <-timer.C:
			w.reload()
		}
	}
}

// Done is closed once Run has returned.
func (w *Watcher) Done() <-chan struct{} { return w.done }

func (w *Watcher) reload() {
	slides, err := w.load(w.path)
	if err != nil {
		w.log.Warn("deck reload failed", zap.String("path", w.path), zap.Error(err))
		return
	}
	w.log.Info("deck reloaded", zap.String("path", w.path), zap.Int("slides", len(slides)))
	select {
	case <-w.out:
	default:
	}
	w.out <- slides
}
