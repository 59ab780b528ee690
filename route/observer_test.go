package route

import (
	"testing"

	"audioroute/audio"
)

func TestObserverStartIdempotent(t *testing.T) {
	fake := audio.NewFakeContext()
	obs := newObserver(fake, func() {})

	obs.Start()
	obs.Start()

	if got := fake.Registered(); got != 1 {
		t.Fatalf("registered callbacks = %d, want 1", got)
	}
	if !obs.active() {
		t.Fatal("observer should be active after Start")
	}
}

func TestObserverStopIdempotent(t *testing.T) {
	fake := audio.NewFakeContext()
	obs := newObserver(fake, func() {})

	obs.Start()
	obs.Stop()
	obs.Stop()

	if got := fake.Registered(); got != 0 {
		t.Fatalf("registered callbacks = %d, want 0", got)
	}
	if obs.active() {
		t.Fatal("observer should be idle after Stop")
	}
}

func TestObserverStopWithoutStart(t *testing.T) {
	fake := audio.NewFakeContext()
	obs := newObserver(fake, func() {})
	obs.Stop() // must not panic or unregister anything
	if got := fake.Registered(); got != 0 {
		t.Fatalf("registered callbacks = %d, want 0", got)
	}
}

func TestObserverSyntheticNotifyOnStart(t *testing.T) {
	fake := audio.NewFakeContext()
	calls := 0
	obs := newObserver(fake, func() { calls++ })

	obs.Start()
	if calls != 1 {
		t.Fatalf("notify calls after Start = %d, want 1", calls)
	}
	obs.Start()
	if calls != 1 {
		t.Fatalf("notify calls after second Start = %d, want 1", calls)
	}
}

func TestObserverNilSource(t *testing.T) {
	calls := 0
	obs := newObserver(nil, func() { calls++ })

	obs.Start() // degraded mode: no registration, no synthetic event
	obs.Stop()

	if calls != 0 {
		t.Fatalf("notify calls = %d, want 0", calls)
	}
	if obs.active() {
		t.Fatal("observer should stay idle with no source")
	}
}

func TestObserverRestart(t *testing.T) {
	fake := audio.NewFakeContext()
	obs := newObserver(fake, func() {})

	obs.Start()
	obs.Stop()
	obs.Start()

	if got := fake.Registered(); got != 1 {
		t.Fatalf("registered callbacks after restart = %d, want 1", got)
	}
}
