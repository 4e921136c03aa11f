package visibility

import (
	stderrors "errors"

	"github.com/go-drift/visibility/pkg/errors"
)

// Legacy event names attached by the focus-blur-ie strategy.
const (
	legacyFocusIn  = "onfocusin"
	legacyFocusOut = "onfocusout"
)

var (
	// ErrNoEventTarget is reported when the chosen strategy needs an EventTarget the host lacks.
	ErrNoEventTarget = stderrors.New("visibility: host has no event target")
	// ErrNoLegacyTarget is reported when the legacy strategy finds no attach/detach capability.
	ErrNoLegacyTarget = stderrors.New("visibility: host has no legacy event target")
	// ErrAttachRejected is reported when a legacy host refuses an attachment.
	ErrAttachRejected = stderrors.New("visibility: host rejected listener")
)

// wiring is the strategy variant chosen once per tracker.
type wiring struct {
	strategy Strategy
	attach   func()
	detach   func()
}

// visibilityListener reads the visibility property on every change event.
type visibilityListener struct {
	t *Tracker
}

func (l *visibilityListener) HandleEvent(Event) {
	l.t.handleProperty()
}

// focusListener turns a focus-style event into a fixed state.
type focusListener struct {
	t     *Tracker
	state State
}

func (l *focusListener) HandleEvent(Event) {
	l.t.handle(l.state)
}

// selectWiring picks the strategy in priority order: modern, focus-blur,
// focus-blur-ie.
func selectWiring(t *Tracker, win Window, doc Document) wiring {
	if _, ok := doc.Property(t.hiddenProperty); ok {
		return modernWiring(t, doc)
	}
	if _, ok := doc.(EventTarget); ok {
		return focusBlurWiring(t, win)
	}
	return legacyWiring(t, doc)
}

func modernWiring(t *Tracker, doc Document) wiring {
	l := &visibilityListener{t: t}
	event := t.changeEvent
	target, ok := doc.(EventTarget)
	return wiring{
		strategy: StrategyModern,
		attach: func() {
			if !ok {
				reportAttach("visibility.attach", event, ErrNoEventTarget)
				return
			}
			target.AddEventListener(event, l, false)
		},
		detach: func() {
			if ok {
				target.RemoveEventListener(event, l, false)
			}
		},
	}
}

func focusBlurWiring(t *Tracker, win Window) wiring {
	focus := &focusListener{t: t, state: StateVisible}
	blur := &focusListener{t: t, state: StateHidden}
	return wiring{
		strategy: StrategyFocusBlur,
		attach: func() {
			win.AddEventListener("focus", focus, true)
			win.AddEventListener("blur", blur, true)
		},
		detach: func() {
			win.RemoveEventListener("focus", focus, true)
			win.RemoveEventListener("blur", blur, true)
		},
	}
}

func legacyWiring(t *Tracker, doc Document) wiring {
	focusIn := &focusListener{t: t, state: StateVisible}
	focusOut := &focusListener{t: t, state: StateHidden}
	target, ok := doc.(LegacyEventTarget)
	return wiring{
		strategy: StrategyFocusBlurLegacy,
		attach: func() {
			if !ok {
				reportAttach("visibility.attach", legacyFocusIn, ErrNoLegacyTarget)
				return
			}
			if !target.AttachEvent(legacyFocusIn, focusIn) {
				reportAttach("visibility.attach", legacyFocusIn, ErrAttachRejected)
			}
			if !target.AttachEvent(legacyFocusOut, focusOut) {
				reportAttach("visibility.attach", legacyFocusOut, ErrAttachRejected)
			}
		},
		detach: func() {
			if ok {
				target.DetachEvent(legacyFocusIn, focusIn)
				target.DetachEvent(legacyFocusOut, focusOut)
			}
		},
	}
}

func reportAttach(op, channel string, err error) {
	errors.Report(&errors.Error{
		Op:      op,
		Kind:    errors.KindPlatform,
		Channel: channel,
		Err:     err,
	})
}
