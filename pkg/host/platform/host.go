// Package platform adapts a native app-lifecycle event stream into visibility
// host capabilities.
//
// Native code sends JSON events such as {"state":"paused"} on the
// "visibility/lifecycle/events" channel. The Host turns them into an
// unprefixed document with hidden/visibilityState properties and a
// visibilitychange event, plus focus/blur on its window, so a
// visibility.Tracker built on it selects the modern strategy.
package platform

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-drift/visibility/pkg/errors"
	"github.com/go-drift/visibility/pkg/host/memhost"
	"github.com/go-drift/visibility/pkg/visibility"
)

// LifecycleChannel is the event channel native code publishes lifecycle changes on.
const LifecycleChannel = "visibility/lifecycle/events"

// Host is a visibility host driven by native lifecycle events.
type Host struct {
	codec  MessageCodec
	events *EventChannel
	sub    *Subscription
	window *memhost.Window
	doc    *memhost.EventDocument
	closed atomic.Bool

	// deliverMu keeps the document and window in step with state across
	// concurrent HandleEvent calls.
	deliverMu sync.Mutex

	mu    sync.RWMutex
	state LifecycleState
}

// NewHost creates a host seeded with initial and starts listening on the
// lifecycle channel through bridge. A nil bridge leaves the host usable but
// reports ErrNotConnected.
func NewHost(bridge NativeBridge, initial LifecycleState) *Host {
	if !initial.Valid() {
		initial = LifecycleStateResumed
	}
	h := &Host{
		codec:  DefaultCodec,
		events: newEventChannel(LifecycleChannel, bridge),
		window: memhost.NewWindow(),
		doc: memhost.NewEventDocument(map[string]any{
			"hidden":          initial.Visibility() != visibility.StateVisible,
			"visibilityState": string(initial.Visibility()),
		}, initial.Focused()),
		state: initial,
	}
	h.sub = h.events.Listen(EventHandler{
		OnEvent: h.onEvent,
		OnError: func(err error) {
			reportStream("platform.streamError", LifecycleChannel, err)
		},
	})
	return h
}

// Window returns the host's global-scope capability.
func (h *Host) Window() visibility.Window {
	return h.window
}

// Document returns the host's document capability.
func (h *Host) Document() visibility.Document {
	return h.doc
}

// Config returns a tracker configuration wired to this host.
func (h *Host) Config() visibility.Config {
	return visibility.Config{Window: h.window, Document: h.doc}
}

// Lifecycle returns the last lifecycle state received from native code.
func (h *Host) Lifecycle() LifecycleState {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state
}

// HandleEvent is called from the bridge when native sends an event.
func (h *Host) HandleEvent(channel string, eventData []byte) error {
	if err := h.check(channel, "platform.HandleEvent"); err != nil {
		return err
	}
	data, err := h.codec.Decode(eventData)
	if err != nil {
		h.events.dispatchError(err)
		return err
	}
	h.events.dispatchEvent(data)
	return nil
}

// HandleEventError is called from the bridge when the event stream errors.
func (h *Host) HandleEventError(channel, code, message string) error {
	if err := h.check(channel, "platform.HandleEventError"); err != nil {
		return err
	}
	h.events.dispatchError(NewChannelError(code, message))
	return nil
}

// HandleEventDone is called from the bridge when the event stream ends.
// The host stops receiving lifecycle changes afterwards.
func (h *Host) HandleEventDone(channel string) error {
	if err := h.check(channel, "platform.HandleEventDone"); err != nil {
		return err
	}
	h.events.dispatchDone()
	h.closed.Store(true)
	return nil
}

// Close cancels the lifecycle subscription, stopping the native stream.
func (h *Host) Close() {
	if h.closed.CompareAndSwap(false, true) {
		h.sub.Cancel()
	}
}

func (h *Host) check(channel, op string) error {
	if channel != LifecycleChannel {
		err := fmt.Errorf("%w: %s", ErrChannelNotRegistered, channel)
		reportStream(op, channel, err)
		return err
	}
	if h.closed.Load() {
		return ErrClosed
	}
	return nil
}

func (h *Host) onEvent(data any) {
	m, ok := data.(map[string]any)
	if !ok {
		reportParse(data)
		return
	}
	raw, ok := m["state"].(string)
	state := LifecycleState(raw)
	if !ok || !state.Valid() {
		reportParse(data)
		return
	}
	h.updateState(state)
}

// updateState records the lifecycle state and emits the native signals that
// changed: visibilitychange on the document, focus/blur on the window.
func (h *Host) updateState(next LifecycleState) {
	h.deliverMu.Lock()
	defer h.deliverMu.Unlock()

	h.mu.Lock()
	prev := h.state
	if prev == next {
		h.mu.Unlock()
		return
	}
	h.state = next
	h.mu.Unlock()

	if prev.Visibility() != next.Visibility() {
		h.doc.SetProperty("hidden", next.Visibility() != visibility.StateVisible)
		h.doc.SetProperty("visibilityState", string(next.Visibility()))
		h.doc.Dispatch("visibilitychange")
	}
	if prev.Focused() != next.Focused() {
		h.doc.SetFocus(next.Focused())
		if next.Focused() {
			h.window.Focus()
		} else {
			h.window.Blur()
		}
	}
}

func reportParse(data any) {
	errors.Report(&errors.Error{
		Op:      "platform.parseEvent",
		Kind:    errors.KindParsing,
		Channel: LifecycleChannel,
		Err: &errors.ParseError{
			Channel:  LifecycleChannel,
			DataType: "LifecycleState",
			Got:      data,
		},
	})
}

func reportStream(op, channel string, err error) {
	errors.Report(&errors.Error{
		Op:      op,
		Kind:    errors.KindPlatform,
		Channel: channel,
		Err:     err,
	})
}
