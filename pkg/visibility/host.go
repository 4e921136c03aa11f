package visibility

// Event is a native event delivered by a host.
type Event struct {
	// Type is the event name, e.g. "focus" or "webkitvisibilitychange".
	Type string
}

// EventListener receives native events. Hosts compare listeners with == when
// removing them, so implementations should be pointer types.
type EventListener interface {
	HandleEvent(ev Event)
}

// EventTarget is the standard add/remove listener capability.
type EventTarget interface {
	AddEventListener(typ string, l EventListener, capture bool)
	RemoveEventListener(typ string, l EventListener, capture bool)
}

// LegacyEventTarget is the attach/detach capability of older hosts.
// Names carry the "on" prefix, e.g. "onfocusin".
type LegacyEventTarget interface {
	AttachEvent(name string, l EventListener) bool
	DetachEvent(name string, l EventListener)
}

// FocusReporter reports whether the host currently has input focus.
type FocusReporter interface {
	HasFocus() bool
}

// Window is the global-scope capability. The focus-blur strategy listens on it.
type Window interface {
	EventTarget
}

// Document is the document-like capability. Property looks up a named
// property and reports whether the host exposes it at all.
//
// A Document may also implement EventTarget, LegacyEventTarget and
// FocusReporter; the tracker probes for them once at construction.
type Document interface {
	Property(name string) (any, bool)
}
