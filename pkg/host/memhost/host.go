package memhost

import (
	"github.com/go-drift/visibility/pkg/visibility"
)

// Profile names the capability set a Host simulates.
type Profile string

const (
	// ProfileModern exposes the (prefixed) hidden and visibility properties.
	ProfileModern Profile = "modern"
	// ProfileFocus exposes an event-capable document without visibility properties.
	ProfileFocus Profile = "focus"
	// ProfileLegacy exposes only attach/detach events.
	ProfileLegacy Profile = "legacy"
)

// Host bundles a window and document for one capability profile.
type Host struct {
	Window   *Window
	Document visibility.Document

	profile Profile
	prefix  string
	events  *EventDocument
	legacy  *LegacyDocument
}

// NewModern returns a host whose document carries the visibility properties
// under prefix (empty for unprefixed) and reports state.
func NewModern(prefix string, state visibility.State) *Host {
	hidden, vis, _ := visibility.PropertyNames(prefix)
	doc := NewEventDocument(map[string]any{
		hidden: state != visibility.StateVisible,
		vis:    string(state),
	}, state == visibility.StateVisible)
	return &Host{
		Window:   NewWindow(),
		Document: doc,
		profile:  ProfileModern,
		prefix:   prefix,
		events:   doc,
	}
}

// NewFocus returns a host that only reports focus and blur.
func NewFocus(focused bool) *Host {
	doc := NewEventDocument(nil, focused)
	return &Host{
		Window:   NewWindow(),
		Document: doc,
		profile:  ProfileFocus,
		events:   doc,
	}
}

// NewLegacy returns a host with only attach/detach events.
func NewLegacy() *Host {
	doc := NewLegacyDocument(nil)
	return &Host{
		Window:   NewWindow(),
		Document: doc,
		profile:  ProfileLegacy,
		legacy:   doc,
	}
}

// New returns a host for profile. prefix applies to ProfileModern only;
// initial seeds the visibility property or the focus flag.
func New(profile Profile, prefix string, initial visibility.State) (*Host, bool) {
	switch profile {
	case ProfileModern:
		return NewModern(prefix, initial), true
	case ProfileFocus:
		return NewFocus(initial == visibility.StateVisible), true
	case ProfileLegacy:
		return NewLegacy(), true
	default:
		return nil, false
	}
}

// Profile returns the simulated capability profile.
func (h *Host) Profile() Profile {
	return h.profile
}

// Config returns a tracker configuration wired to this host.
func (h *Host) Config() visibility.Config {
	return visibility.Config{Window: h.Window, Document: h.Document}
}

// EventDocument returns the event-capable document, or nil for legacy hosts.
func (h *Host) EventDocument() *EventDocument {
	return h.events
}

// LegacyDocument returns the legacy document, or nil for other profiles.
func (h *Host) LegacyDocument() *LegacyDocument {
	return h.legacy
}

// Signal makes the host emit the native signal for state:
//   - modern: update the properties and dispatch the change event;
//   - focus: dispatch focus for visible, blur otherwise;
//   - legacy: fire onfocusin for visible, onfocusout otherwise.
func (h *Host) Signal(state visibility.State) {
	switch h.profile {
	case ProfileModern:
		hidden, vis, change := visibility.PropertyNames(h.prefix)
		h.events.SetProperty(hidden, state != visibility.StateVisible)
		h.events.SetProperty(vis, string(state))
		h.events.Dispatch(change)
	case ProfileFocus:
		visible := state == visibility.StateVisible
		h.events.SetFocus(visible)
		if visible {
			h.Window.Focus()
		} else {
			h.Window.Blur()
		}
	case ProfileLegacy:
		if state == visibility.StateVisible {
			h.legacy.Fire("onfocusin")
		} else {
			h.legacy.Fire("onfocusout")
		}
	}
}

// ListenerCount returns how many native listeners the host currently holds
// across every event a tracker may wire.
func (h *Host) ListenerCount() int {
	n := h.Window.ListenerCount("focus") + h.Window.ListenerCount("blur")
	if h.events != nil {
		_, _, change := visibility.PropertyNames(h.prefix)
		n += h.events.ListenerCount(change)
	}
	if h.legacy != nil {
		n += h.legacy.AttachedCount("onfocusin") + h.legacy.AttachedCount("onfocusout")
	}
	return n
}
