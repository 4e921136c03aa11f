// Package events provides a minimal named-event registry.
//
// Callbacks are grouped by event name and invoked synchronously, in
// registration order, by Publish. There is no filtering, priority or async
// delivery.
package events

import (
	"sync"

	"github.com/go-drift/visibility/pkg/errors"
)

// Callback receives the arguments passed to Publish.
type Callback func(args ...any)

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	registry *Registry
	event    string
	fn       Callback
}

// Event returns the event name the subscription was registered for.
func (s *Subscription) Event() string {
	return s.event
}

// Cancel removes the subscription from its registry. Calling it more than
// once is harmless.
func (s *Subscription) Cancel() {
	if s == nil || s.registry == nil {
		return
	}
	s.registry.Unsubscribe(s.event, s)
}

// Registry maps event names to ordered callback lists.
// It is safe for concurrent use; callbacks run outside the registry lock.
type Registry struct {
	mu   sync.RWMutex
	subs map[string][]*Subscription
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{subs: make(map[string][]*Subscription)}
}

// Subscribe appends fn to the callbacks for event. The same func may be
// subscribed several times; each subscription is invoked on every Publish.
func (r *Registry) Subscribe(event string, fn Callback) *Subscription {
	sub := &Subscription{registry: r, event: event, fn: fn}
	r.mu.Lock()
	r.subs[event] = append(r.subs[event], sub)
	r.mu.Unlock()
	return sub
}

// Unsubscribe removes sub from event. It reports whether anything was removed.
func (r *Registry) Unsubscribe(event string, sub *Subscription) bool {
	if sub == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	subs := r.subs[event]
	for i, s := range subs {
		if s == sub {
			// Copy so an in-flight Publish keeps its snapshot intact.
			next := make([]*Subscription, 0, len(subs)-1)
			next = append(next, subs[:i]...)
			next = append(next, subs[i+1:]...)
			if len(next) == 0 {
				delete(r.subs, event)
			} else {
				r.subs[event] = next
			}
			return true
		}
	}
	return false
}

// Publish invokes every callback registered for event with args.
// A panicking callback is reported and does not stop the remaining ones.
func (r *Registry) Publish(event string, args ...any) {
	r.mu.RLock()
	subs := r.subs[event]
	r.mu.RUnlock()

	for _, sub := range subs {
		if sub.fn == nil {
			continue
		}
		invoke(event, sub.fn, args)
	}
}

// Len returns the number of subscriptions for event.
func (r *Registry) Len(event string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs[event])
}

func invoke(event string, fn Callback, args []any) {
	defer errors.Recover("events.Publish:" + event)
	fn(args...)
}
