// Package watcher reports changes to a configuration file for live reload.
//
// The parent directory is watched rather than the file itself so that
// editors which save by writing a new file and renaming it over the old one
// are still seen. Bursts of events are coalesced into one callback per quiet
// period.
package watcher

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrClosed is returned when using a closed watcher.
var ErrClosed = errors.New("watcher closed")

// Op is a set of file operations.
type Op uint8

// Operations.
const (
	OpCreate Op = 1 << iota
	OpWrite
	OpRemove
	OpRename
)

// Has reports whether op contains other.
func (op Op) Has(other Op) bool {
	return op&other != 0
}

// String returns the operation names joined by "|".
func (op Op) String() string {
	var s string
	for _, n := range []struct {
		op   Op
		name string
	}{{OpCreate, "create"}, {OpWrite, "write"}, {OpRemove, "remove"}, {OpRename, "rename"}} {
		if op.Has(n.op) {
			if s != "" {
				s += "|"
			}
			s += n.name
		}
	}
	if s == "" {
		return "none"
	}
	return s
}

// Event describes a settled change to the watched file.
type Event struct {
	// Path is the absolute path of the file.
	Path string
	// Op is every operation seen during the quiet period.
	Op Op
	// Time is when the last operation was seen.
	Time time.Time
}

// Handler is called when a change settles.
type Handler func(Event)

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period. Zero delivers every event at once.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithErrorHandler sets a callback for errors reported by the OS watcher.
func WithErrorHandler(fn func(error)) Option {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// Watcher watches a single file.
type Watcher struct {
	mu       sync.Mutex
	fsw      *fsnotify.Watcher
	path     string
	handler  Handler
	onError  func(error)
	debounce time.Duration

	timer   *time.Timer
	pending Event

	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// New starts watching path and calls handler for each settled change.
// The file need not exist yet, but its directory must.
func New(path string, handler Handler, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		path:     abs,
		handler:  handler,
		debounce: 100 * time.Millisecond,
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher. Pending events are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	w.wg.Wait()
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if op := convertOp(ev.Op); op != 0 {
				w.queue(op)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}
		}
	}
}

func convertOp(fsOp fsnotify.Op) Op {
	var op Op
	if fsOp.Has(fsnotify.Create) {
		op |= OpCreate
	}
	if fsOp.Has(fsnotify.Write) {
		op |= OpWrite
	}
	if fsOp.Has(fsnotify.Remove) {
		op |= OpRemove
	}
	if fsOp.Has(fsnotify.Rename) {
		op |= OpRename
	}
	return op
}

func (w *Watcher) queue(op Op) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	w.pending.Path = w.path
	w.pending.Op |= op
	w.pending.Time = time.Now()

	if w.debounce == 0 {
		ev := w.pending
		w.pending = Event{}
		go w.emit(ev)
		return
	}

	if w.timer == nil {
		w.timer = time.AfterFunc(w.debounce, w.flush)
		return
	}
	w.timer.Reset(w.debounce)
}

func (w *Watcher) flush() {
	w.mu.Lock()
	if w.closed || w.pending.Op == 0 {
		w.mu.Unlock()
		return
	}
	ev := w.pending
	w.pending = Event{}
	w.mu.Unlock()

	w.emit(ev)
}

// emit calls the handler, recovering from panics so one bad handler
// cannot stop later reloads.
func (w *Watcher) emit(ev Event) {
	defer func() {
		_ = recover()
	}()
	if w.handler != nil {
		w.handler(ev)
	}
}
