package storage

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultDebounce is how long a watcher waits for a burst of file events to
// settle before reporting a change.
const DefaultDebounce = 200 * time.Millisecond

// Watcher watches settings files and calls back when they were written to.
//
// The containing directories are watched rather than the files themselves,
// as most editors (and the file providers) replace files by renaming a
// temporary file over them. Bursts of events are debounced into a single
// callback, which is called from the watcher's own goroutine.
type Watcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]bool
	debounce time.Duration
	onChange func()

	timerMtx sync.Mutex
	timer    *time.Timer

	done chan struct{}
	wg   sync.WaitGroup

	log zerolog.Logger
}

// NewWatcher starts watching the given files.
// A non-positive debounce duration means DefaultDebounce.
func NewWatcher(files []string, debounce time.Duration, onChange func()) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create file watcher (%w)", err)
	}

	w := &Watcher{
		watcher:  fsWatcher,
		files:    map[string]bool{},
		debounce: debounce,
		onChange: onChange,
		done:     make(chan struct{}),
		log:      log.With().Str("source", "watcher").Logger(),
	}

	dirs := map[string]bool{}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fsWatcher.Close()
			return nil, fmt.Errorf("could not resolve '%s' (%w)", f, err)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsWatcher.Add(dir); err != nil {
			fsWatcher.Close()
			return nil, fmt.Errorf("could not watch directory '%s' (%w)", dir, err)
		}
		w.log.Debug().Msgf("watching '%s'", dir)
	}

	w.wg.Add(1)
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.concerns(event) {
				continue
			}
			w.log.Trace().Msgf("event on '%s' (%s)", event.Name, event.Op)
			w.schedule()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("file watcher error")
		}
	}
}

func (w *Watcher) concerns(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	name, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return w.files[name]
}

func (w *Watcher) schedule() {
	w.timerMtx.Lock()
	defer w.timerMtx.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case <-w.done:
		default:
			w.onChange()
		}
	})
}

// Close stops watching. No callbacks are made after Close returned, apart
// from one that might already be running.
func (w *Watcher) Close() error {
	close(w.done)
	w.timerMtx.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timerMtx.Unlock()
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}
