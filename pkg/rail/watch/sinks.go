package watch

import (
	"context"
	"sync"
)

// Nop discards every event.
type Nop struct{}

func (Nop) Step(_ context.Context, _ Event) {}

// Capture records events in arrival order. Intended for tests.
type Capture struct {
	mu     sync.Mutex
	events []Event
}

// NewCapture returns an empty recorder.
func NewCapture() *Capture {
	return &Capture{}
}

func (c *Capture) Step(_ context.Context, e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

// Events returns a copy of everything recorded so far.
func (c *Capture) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// Ops returns just the recorded op names, in arrival order.
func (c *Capture) Ops() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	ops := make([]string, len(c.events))
	for i, e := range c.events {
		ops[i] = e.Op
	}
	return ops
}

// Reset drops everything recorded so far.
func (c *Capture) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = nil
}
