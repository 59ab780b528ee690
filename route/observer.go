package route

import "audioroute/audio"

// Observer bridges the platform's device-change notifications into
// route re-classification. Start and Stop are idempotent; the
// registration token is owned here and nowhere else. Callers serialize
// transitions (the bridge holds its lock across them).
type Observer struct {
	src    audio.Notifier
	notify func()

	registered bool
	token      audio.Token
}

func newObserver(src audio.Notifier, notify func()) *Observer {
	return &Observer{src: src, notify: notify}
}

// Start registers with the notification source, then fires one
// synthetic change so subscribers see the current route without waiting
// for a hardware event. No-op when already registered, and when no
// source was ever acquired (permanent degraded mode until restart).
func (o *Observer) Start() {
	if o.registered || o.src == nil {
		return
	}
	o.token = o.src.Register(o.notify)
	o.registered = true
	o.notify()
}

// Stop unregisters and clears the stored token. No-op when idle.
func (o *Observer) Stop() {
	if !o.registered {
		return
	}
	o.src.Unregister(o.token)
	o.token = 0
	o.registered = false
}

func (o *Observer) active() bool {
	return o.registered
}
