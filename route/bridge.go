package route

import (
	"sync"

	"audioroute/audio"
)

// ChangeEvent is delivered to subscribers on every observed route
// change. Consecutive events may carry the same route; the bridge does
// not deduplicate or debounce.
type ChangeEvent struct {
	Route Route
}

const (
	eventBuffer = 16
	subBuffer   = 32
)

// Bridge exposes the pull query and the push subscription over one
// platform context. The first subscriber activates change observation;
// removing the last one deactivates it. Platform notifications are
// handed off through a buffered channel to a dedicated dispatch
// goroutine, so emission never blocks the platform's delivery thread.
type Bridge struct {
	ctx audio.Context

	mu     sync.Mutex
	obs    *Observer
	subs   map[int]*Subscription
	nextID int

	events    chan ChangeEvent
	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// New builds a Bridge over ctx with src as the change notification
// source. Either may be nil: a nil ctx classifies every query as
// Unknown, a nil src leaves the observer permanently idle (queries
// still work, push delivery never activates).
func New(ctx audio.Context, src audio.Notifier) *Bridge {
	b := &Bridge{
		ctx:    ctx,
		subs:   make(map[int]*Subscription),
		events: make(chan ChangeEvent, eventBuffer),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	b.obs = newObserver(src, b.emit)
	go b.dispatchLoop()
	return b
}

// CurrentRoute classifies the platform's output devices at call time.
// Never cached; enumeration failure ranks the same as an empty set.
func (b *Bridge) CurrentRoute() Route {
	return Classify(b.snapshot())
}

func (b *Bridge) snapshot() []audio.Device {
	if b.ctx == nil {
		return nil
	}
	devices, err := b.ctx.Devices()
	if err != nil {
		return nil
	}
	return devices
}

// emit classifies the current device set and queues one event. Runs on
// the notification delivery goroutine and must never block it: with the
// queue saturated the signal is dropped, which is safe because every
// queued event already re-classifies the full device set.
func (b *Bridge) emit() {
	ev := ChangeEvent{Route: b.CurrentRoute()}
	select {
	case b.events <- ev:
	case <-b.stop:
	default:
	}
}

func (b *Bridge) dispatchLoop() {
	defer close(b.done)
	for {
		select {
		case <-b.stop:
			return
		case ev := <-b.events:
			b.mu.Lock()
			subs := make([]*Subscription, 0, len(b.subs))
			for _, s := range b.subs {
				subs = append(subs, s)
			}
			b.mu.Unlock()
			for _, s := range subs {
				select {
				case s.ch <- ev:
				default:
					// Subscriber is not draining. Drop for this one
					// rather than stall delivery to the others.
				}
			}
		}
	}
}

// Subscription is one listener on the route change stream. Drain Events
// promptly: a subscription whose buffer is full misses events instead
// of stalling the dispatcher. The channel is never closed; stop reading
// after Cancel.
type Subscription struct {
	bridge *Bridge
	id     int
	ch     chan ChangeEvent
	once   sync.Once
}

// Events returns the delivery channel for this subscription.
func (s *Subscription) Events() <-chan ChangeEvent {
	return s.ch
}

// Cancel removes the subscription. Cancelling the last one stops change
// observation and tears down the platform registration. Safe to call
// more than once.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		b := s.bridge
		b.mu.Lock()
		delete(b.subs, s.id)
		if len(b.subs) == 0 {
			b.obs.Stop()
		}
		b.mu.Unlock()
	})
}

// Subscribe adds a listener. The first subscription activates the
// observer, which immediately emits one event carrying the route at
// that instant; later subscriptions see only subsequent changes.
func (b *Bridge) Subscribe() *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := &Subscription{
		bridge: b,
		id:     b.nextID,
		ch:     make(chan ChangeEvent, subBuffer),
	}
	b.nextID++
	b.subs[s.id] = s
	if len(b.subs) == 1 {
		b.obs.Start()
	}
	return s
}

// Observing reports whether a platform registration is currently active.
func (b *Bridge) Observing() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.obs.active()
}

// Close stops observation and the dispatch goroutine. Outstanding
// subscriptions stop receiving events. Safe to call more than once.
func (b *Bridge) Close() {
	b.closeOnce.Do(func() {
		b.mu.Lock()
		b.obs.Stop()
		b.subs = make(map[int]*Subscription)
		b.mu.Unlock()
		close(b.stop)
		<-b.done
	})
}
