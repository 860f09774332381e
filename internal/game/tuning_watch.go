package game

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const tuningDebounce = 100 * time.Millisecond

// TuningWatcher reloads a tuning file whenever it changes on disk. Valid
// reloads arrive on Updates; parse or validation failures arrive on Errors
// and leave the previous tuning in force.
type TuningWatcher struct {
	Updates chan Tuning
	Errors  chan error

	path    string
	watcher *fsnotify.Watcher
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// WatchTuning watches the file's directory, since editors often replace
// files rather than writing them in place.
func WatchTuning(path string) (*TuningWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch tuning: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch tuning: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch tuning %s: %w", filepath.Dir(abs), err)
	}

	tw := &TuningWatcher{
		Updates: make(chan Tuning, 1),
		Errors:  make(chan error, 1),
		path:    abs,
		watcher: w,
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go tw.run()
	return tw, nil
}

func (tw *TuningWatcher) Close() error {
	var err error
	tw.once.Do(func() {
		close(tw.closeCh)
		err = tw.watcher.Close()
		<-tw.done
	})
	return err
}

func (tw *TuningWatcher) run() {
	defer close(tw.done)
	var last time.Time
	for {
		select {
		case ev, ok := <-tw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != tw.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			now := time.Now()
			if now.Sub(last) < tuningDebounce {
				continue
			}
			last = now
			// Give the writer a moment to finish.
			time.Sleep(20 * time.Millisecond)
			t, err := LoadTuning(tw.path)
			if err != nil {
				tw.sendErr(err)
				continue
			}
			tw.sendUpdate(t)
		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return
			}
			tw.sendErr(err)
		case <-tw.closeCh:
			return
		}
	}
}

// sendUpdate keeps only the newest pending tuning.
func (tw *TuningWatcher) sendUpdate(t Tuning) {
	for {
		select {
		case tw.Updates <- t:
			return
		case <-tw.Updates:
		case <-tw.closeCh:
			return
		}
	}
}

func (tw *TuningWatcher) sendErr(err error) {
	select {
	case tw.Errors <- err:
	default:
	}
}

// Apply hands a pending reload to s without blocking. It returns a pending
// reload error, if any. A nil watcher does nothing.
func (tw *TuningWatcher) Apply(s *Sim) error {
	if tw == nil {
		return nil
	}
	select {
	case t := <-tw.Updates:
		s.SetTuning(t)
	case err := <-tw.Errors:
		return err
	default:
	}
	return nil
}
