// Package watcher re-runs an analysis pipeline whenever its input files
// change on disk. It watches the containing directories rather than the
// files themselves, since editors and instrument software commonly replace
// files instead of writing them in place.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watcher triggers a callback when any of a set of files is written,
// created, or replaced. Rapid event bursts are coalesced so a single save
// produces a single rerun.
type Watcher struct {
	log      zerolog.Logger
	paths    map[string]bool
	rerun    func() error
	fsw      *fsnotify.Watcher
	debounce time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// New creates a Watcher over the given files. rerun is invoked once
// immediately from Start and again after every detected change.
func New(paths []string, rerun func() error, log zerolog.Logger) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no files to watch")
	}
	if rerun == nil {
		return nil, fmt.Errorf("rerun callback cannot be nil")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		log:      log,
		paths:    make(map[string]bool),
		rerun:    rerun,
		fsw:      fsw,
		debounce: 200 * time.Millisecond,
		stopCh:   make(chan struct{}),
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		w.paths[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	return w, nil
}

// Start runs the pipeline once, then begins watching for changes.
func (w *Watcher) Start() error {
	if err := w.rerun(); err != nil {
		w.log.Error().Err(err).Msg("initial analysis failed")
	}

	w.wg.Add(1)
	go w.run()
	return nil
}

// Stop halts the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() error {
	close(w.stopCh)
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.watched(ev.Name) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.log.Debug().Str("file", ev.Name).Str("op", ev.Op.String()).Msg("change detected")
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			if err := w.rerun(); err != nil {
				w.log.Error().Err(err).Msg("analysis failed")
			} else {
				w.log.Info().Msg("analysis refreshed")
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Error().Err(err).Msg("watch error")

		case <-w.stopCh:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

func (w *Watcher) watched(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	return w.paths[abs]
}
