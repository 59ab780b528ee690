package audio

import "sync"

// FakeContext is an in-memory Context and Notifier for tests and the
// CLI's scripted demo mode. SetDevices replaces the device list and
// fires registered callbacks synchronously on the caller's goroutine,
// standing in for the platform's own delivery thread.
type FakeContext struct {
	mu       sync.Mutex
	devices  []Device
	err      error
	handlers map[Token]func()
	nextTok  Token
}

func NewFakeContext(devices ...Device) *FakeContext {
	return &FakeContext{
		devices:  devices,
		handlers: make(map[Token]func()),
		nextTok:  1,
	}
}

func (f *FakeContext) Devices() ([]Device, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]Device, len(f.devices))
	copy(out, f.devices)
	return out, nil
}

func (f *FakeContext) Close() {}

// SetError makes subsequent Devices calls fail, without firing a change.
func (f *FakeContext) SetError(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}

// SetDevices replaces the device list and notifies every registered
// callback once, covering both "device added" and "device removed".
func (f *FakeContext) SetDevices(devices ...Device) {
	f.mu.Lock()
	f.devices = devices
	fns := make([]func(), 0, len(f.handlers))
	for _, fn := range f.handlers {
		fns = append(fns, fn)
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (f *FakeContext) Register(fn func()) Token {
	f.mu.Lock()
	defer f.mu.Unlock()
	tok := f.nextTok
	f.nextTok++
	f.handlers[tok] = fn
	return tok
}

func (f *FakeContext) Unregister(tok Token) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.handlers, tok)
}

// Registered reports how many callbacks are currently registered.
func (f *FakeContext) Registered() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.handlers)
}
