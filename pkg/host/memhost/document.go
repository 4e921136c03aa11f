package memhost

import (
	"strings"
	"sync"

	"github.com/go-drift/visibility/pkg/visibility"
)

// Window is an in-memory global scope.
type Window struct {
	Target
}

// NewWindow returns a window with no listeners.
func NewWindow() *Window {
	return &Window{}
}

// Focus dispatches a focus event.
func (w *Window) Focus() { w.Dispatch("focus") }

// Blur dispatches a blur event.
func (w *Window) Blur() { w.Dispatch("blur") }

// Document is a property bag. On its own it offers no event capability, so a
// tracker built on it selects the legacy strategy and cannot attach.
type Document struct {
	mu    sync.RWMutex
	props map[string]any
}

// NewDocument returns a document holding a copy of props.
func NewDocument(props map[string]any) *Document {
	return &Document{props: copyProps(props)}
}

func copyProps(props map[string]any) map[string]any {
	out := make(map[string]any, len(props))
	for k, v := range props {
		out[k] = v
	}
	return out
}

// Property implements visibility.Document.
func (d *Document) Property(name string) (any, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	v, ok := d.props[name]
	return v, ok
}

// SetProperty sets or replaces a property.
func (d *Document) SetProperty(name string, v any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.props == nil {
		d.props = make(map[string]any)
	}
	d.props[name] = v
}

// DeleteProperty removes a property.
func (d *Document) DeleteProperty(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.props, name)
}

// EventDocument is a document that is also an EventTarget and a
// FocusReporter.
type EventDocument struct {
	Document
	Target

	focusMu sync.RWMutex
	focused bool
}

// NewEventDocument returns an event-capable document.
func NewEventDocument(props map[string]any, focused bool) *EventDocument {
	return &EventDocument{Document: Document{props: copyProps(props)}, focused: focused}
}

// HasFocus implements visibility.FocusReporter.
func (d *EventDocument) HasFocus() bool {
	d.focusMu.RLock()
	defer d.focusMu.RUnlock()
	return d.focused
}

// SetFocus changes what HasFocus reports without dispatching anything.
func (d *EventDocument) SetFocus(focused bool) {
	d.focusMu.Lock()
	d.focused = focused
	d.focusMu.Unlock()
}

// LegacyDocument is a document with only attach/detach event support.
type LegacyDocument struct {
	Document

	// Reject makes AttachEvent refuse new listeners.
	Reject bool

	attachMu sync.Mutex
	attached map[string][]visibility.EventListener
}

// NewLegacyDocument returns a legacy document.
func NewLegacyDocument(props map[string]any) *LegacyDocument {
	return &LegacyDocument{Document: Document{props: copyProps(props)}}
}

// AttachEvent implements visibility.LegacyEventTarget.
func (d *LegacyDocument) AttachEvent(name string, l visibility.EventListener) bool {
	if d.Reject || l == nil {
		return false
	}
	d.attachMu.Lock()
	defer d.attachMu.Unlock()
	if d.attached == nil {
		d.attached = make(map[string][]visibility.EventListener)
	}
	d.attached[name] = append(d.attached[name], l)
	return true
}

// DetachEvent implements visibility.LegacyEventTarget.
func (d *LegacyDocument) DetachEvent(name string, l visibility.EventListener) {
	d.attachMu.Lock()
	defer d.attachMu.Unlock()
	ls := d.attached[name]
	for i, x := range ls {
		if x == l {
			next := make([]visibility.EventListener, 0, len(ls)-1)
			next = append(next, ls[:i]...)
			next = append(next, ls[i+1:]...)
			d.attached[name] = next
			return
		}
	}
}

// Fire delivers the legacy event name (e.g. "onfocusin") to attached listeners.
func (d *LegacyDocument) Fire(name string) {
	d.attachMu.Lock()
	ls := d.attached[name]
	d.attachMu.Unlock()

	ev := visibility.Event{Type: strings.TrimPrefix(name, "on")}
	for _, l := range ls {
		l.HandleEvent(ev)
	}
}

// AttachedCount returns the number of listeners attached for name.
func (d *LegacyDocument) AttachedCount(name string) int {
	d.attachMu.Lock()
	defer d.attachMu.Unlock()
	return len(d.attached[name])
}
