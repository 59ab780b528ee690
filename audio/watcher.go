package audio

import (
	"fmt"
	"sync"
	"time"
)

const (
	defaultBaseInterval = 250 * time.Millisecond
	defaultMaxInterval  = 2 * time.Second
	minInterval         = 10 * time.Millisecond

	// Consecutive unchanged polls before the interval starts backing off.
	idleThreshold = 10
	backoffFactor = 1.5
)

// Watcher adapts polling enumeration into a Notifier. Neither miniaudio
// nor the PulseAudio client deliver hotplug callbacks, so changes are
// detected by diffing device IDs between polls. Polling runs only while
// at least one callback is registered; the interval backs off while the
// device set is stable and snaps back to the base rate after a change.
type Watcher struct {
	ctx Context

	mu       sync.Mutex
	handlers map[Token]func()
	nextTok  Token
	running  bool
	stop     chan struct{}
	done     chan struct{}

	baseInterval    time.Duration
	maxInterval     time.Duration
	currentInterval time.Duration
	noChangeCount   int

	lastIDs map[string]bool
	primed  bool
}

func NewWatcher(ctx Context) *Watcher {
	return &Watcher{
		ctx:          ctx,
		handlers:     make(map[Token]func()),
		nextTok:      1,
		baseInterval: defaultBaseInterval,
		maxInterval:  defaultMaxInterval,
	}
}

// SetInterval adjusts the base polling interval. Minimum 10ms.
func (w *Watcher) SetInterval(d time.Duration) error {
	if d < minInterval {
		return fmt.Errorf("polling interval cannot be less than %v", minInterval)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.baseInterval = d
	w.currentInterval = d
	if w.maxInterval < d {
		w.maxInterval = d
	}
	return nil
}

// Register adds a change callback. The first registration starts the
// poll loop; the returned token removes this callback via Unregister.
func (w *Watcher) Register(fn func()) Token {
	w.mu.Lock()
	defer w.mu.Unlock()
	tok := w.nextTok
	w.nextTok++
	w.handlers[tok] = fn
	if !w.running {
		w.running = true
		w.stop = make(chan struct{})
		w.done = make(chan struct{})
		w.currentInterval = w.baseInterval
		w.noChangeCount = 0
		w.primed = false
		go w.pollLoop(w.stop, w.done)
	}
	return tok
}

// Unregister removes a callback. Removing the last one stops the poll
// loop and waits for it to exit. Unknown tokens are ignored.
func (w *Watcher) Unregister(tok Token) {
	w.mu.Lock()
	if _, ok := w.handlers[tok]; !ok {
		w.mu.Unlock()
		return
	}
	delete(w.handlers, tok)
	var stop, done chan struct{}
	if len(w.handlers) == 0 && w.running {
		w.running = false
		stop = w.stop
		done = w.done
	}
	w.mu.Unlock()
	if stop != nil {
		close(stop)
		<-done
	}
}

func (w *Watcher) pollLoop(stop, done chan struct{}) {
	defer close(done)
	for {
		w.mu.Lock()
		interval := w.currentInterval
		w.mu.Unlock()
		if interval <= 0 {
			interval = defaultBaseInterval
		}
		select {
		case <-stop:
			return
		case <-time.After(interval):
		}
		w.poll()
	}
}

func (w *Watcher) poll() {
	// Enumeration failure ranks as an empty set. A later successful
	// poll then shows up as an ordinary change.
	ids := make(map[string]bool)
	if devices, err := w.ctx.Devices(); err == nil {
		for _, d := range devices {
			ids[d.ID] = true
		}
	}

	w.mu.Lock()
	var fns []func()
	switch {
	case !w.primed:
		// First poll after start establishes the baseline only; the
		// initial synthetic emission is the observer's job.
		w.primed = true
	case !sameIDs(ids, w.lastIDs):
		fns = make([]func(), 0, len(w.handlers))
		for _, fn := range w.handlers {
			fns = append(fns, fn)
		}
		w.noChangeCount = 0
		w.currentInterval = w.baseInterval
	default:
		w.noChangeCount++
		if w.noChangeCount > idleThreshold {
			next := time.Duration(float64(w.currentInterval) * backoffFactor)
			if next > w.maxInterval {
				next = w.maxInterval
			}
			w.currentInterval = next
		}
	}
	w.lastIDs = ids
	w.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func sameIDs(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for id := range a {
		if !b[id] {
			return false
		}
	}
	return true
}
