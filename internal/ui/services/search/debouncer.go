package search

import (
	"sync"
	"time"
)

// Debouncer turns keystroke-level input into committed search terms.
// A term is committed once the input has been quiet for the whole window;
// every new input restarts the window.
//
// The timer fires on its own goroutine and only hands a CommittedMsg to the
// emit callback. Messages carry the generation they were scheduled under, and
// Accept rejects any message overtaken by later input, a flush or Dispose.
type Debouncer struct {
	mu     sync.Mutex
	window time.Duration
	sched  Scheduler
	emit   func(CommittedMsg)

	state    State
	timer    Timer
	disposed bool
}

// Option configures a Debouncer
type Option func(*Debouncer)

// WithScheduler replaces the wall-clock scheduler
func WithScheduler(s Scheduler) Option {
	return func(d *Debouncer) {
		d.sched = s
	}
}

// NewDebouncer creates a debouncer that hands committed terms to emit.
// A non-positive window uses DefaultWindow.
func NewDebouncer(window time.Duration, emit func(CommittedMsg), opts ...Option) *Debouncer {
	if window <= 0 {
		window = DefaultWindow
	}
	d := &Debouncer{
		window: window,
		sched:  realScheduler{},
		emit:   emit,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Input records a raw value and restarts the quiescence window
func (d *Debouncer) Input(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.disposed {
		return
	}

	d.state.Raw = value
	d.state.Generation++
	d.state.Pending = true
	d.stopLocked()

	gen := d.state.Generation
	d.timer = d.sched.AfterFunc(d.window, func() { d.fire(gen) })
}

// Raw returns the value as typed
func (d *Debouncer) Raw() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state.Raw
}

// State returns a snapshot of the input state
func (d *Debouncer) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Flush cancels the pending timer and commits the raw value at once.
// It reports false when nothing was pending.
func (d *Debouncer) Flush() (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.disposed || !d.state.Pending {
		return "", false
	}
	d.stopLocked()
	d.state.Generation++
	d.state.Pending = false
	d.state.Committed = d.state.Raw
	return d.state.Raw, true
}

// Reset sets the raw value without scheduling a commit and drops any pending one
func (d *Debouncer) Reset(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.state.Generation++
	d.state.Pending = false
	d.state.Raw = value
	d.state.Committed = value
}

// Accept reports whether msg is the commit for the current input. It must be
// called before acting on a CommittedMsg.
func (d *Debouncer) Accept(msg CommittedMsg) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.disposed || msg.Generation != d.state.Generation {
		return false
	}
	d.state.Committed = msg.Term
	return true
}

// Dispose stops the pending timer. Nothing is emitted or accepted afterwards.
func (d *Debouncer) Dispose() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.disposed = true
	d.state.Pending = false
	d.state.Generation++
	d.stopLocked()
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if d.disposed || gen != d.state.Generation {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.state.Pending = false
	msg := CommittedMsg{Term: d.state.Raw, Generation: gen}
	d.mu.Unlock()

	if d.emit != nil {
		d.emit(msg)
	}
}

func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
