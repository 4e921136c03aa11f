// Package memhost provides in-memory host capabilities for visibility
// trackers: windows, documents with and without event targets, legacy
// documents, and a fake clock.
//
// Unlike a browser, targets keep duplicate registrations of the same
// listener, so tests can observe accidental double attachment.
package memhost

import (
	"sync"

	"github.com/go-drift/visibility/pkg/visibility"
)

type listenerKey struct {
	typ     string
	capture bool
}

// Target is an in-memory EventTarget.
type Target struct {
	mu        sync.Mutex
	listeners map[listenerKey][]visibility.EventListener
}

// AddEventListener registers l for typ in the given phase.
func (t *Target) AddEventListener(typ string, l visibility.EventListener, capture bool) {
	if l == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.listeners == nil {
		t.listeners = make(map[listenerKey][]visibility.EventListener)
	}
	key := listenerKey{typ, capture}
	t.listeners[key] = append(t.listeners[key], l)
}

// RemoveEventListener removes the first registration of l for typ in the given phase.
func (t *Target) RemoveEventListener(typ string, l visibility.EventListener, capture bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	key := listenerKey{typ, capture}
	ls := t.listeners[key]
	for i, x := range ls {
		if x == l {
			next := make([]visibility.EventListener, 0, len(ls)-1)
			next = append(next, ls[:i]...)
			next = append(next, ls[i+1:]...)
			t.listeners[key] = next
			return
		}
	}
}

// Dispatch delivers an event of type typ, capture listeners first.
// Listeners run outside the target lock.
func (t *Target) Dispatch(typ string) {
	t.mu.Lock()
	capture := t.listeners[listenerKey{typ, true}]
	bubble := t.listeners[listenerKey{typ, false}]
	t.mu.Unlock()

	ev := visibility.Event{Type: typ}
	for _, l := range capture {
		l.HandleEvent(ev)
	}
	for _, l := range bubble {
		l.HandleEvent(ev)
	}
}

// ListenerCount returns the number of registrations for typ in both phases.
func (t *Target) ListenerCount(typ string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.listeners[listenerKey{typ, true}]) + len(t.listeners[listenerKey{typ, false}])
}
