package visibility

import (
	"fmt"
	"reflect"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/go-drift/visibility/pkg/errors"
	"github.com/go-drift/visibility/pkg/events"
)

// DefaultUpdateEvent is the channel transitions are published on.
const DefaultUpdateEvent = "update"

// EventNames overrides the notification channel names.
type EventNames struct {
	// Update is the channel accepted transitions are published on.
	Update string
}

// Config configures a Tracker. Every field is optional, but a tracker without
// both Window and Document records ErrInvalidGlobals and never starts.
type Config struct {
	Window     Window
	Document   Document
	EventNames EventNames

	// Clock stamps transitions. Defaults to the wall clock.
	Clock Clock
	// Logger receives debug output. Defaults to a no-op logger.
	Logger *zap.Logger
	// Registry fans transitions out. Defaults to a registry owned by the tracker.
	Registry *events.Registry
}

// Tracker follows a host's visibility and publishes transitions.
// All methods are safe for concurrent use. Transitions are published one at a
// time, in the order they were accepted, outside the state lock; a subscriber
// may query the tracker but must not deliver host signals synchronously.
type Tracker struct {
	// lifeMu serializes Start, Pause and Destroy so host callbacks fired during
	// attach/detach never contend with the state lock.
	lifeMu sync.Mutex
	// emitMu serializes signal handling from acceptance through publish.
	emitMu sync.Mutex
	mu     sync.Mutex

	errorCode ErrorCode
	started   bool
	paused    bool
	current   State

	doc                Document
	prefix             string
	hiddenProperty     string
	visibilityProperty string
	changeEvent        string
	wiring             wiring

	lastChange time.Time
	changes    int

	updateEvent string
	registry    *events.Registry
	clock       Clock
	log         *zap.Logger
}

// New probes the host described by cfg and seeds the initial state.
// It never panics; missing capabilities are recorded and reported via HasError.
func New(cfg Config) *Tracker {
	t := &Tracker{
		current:     DefaultState,
		updateEvent: cfg.EventNames.Update,
		registry:    cfg.Registry,
		clock:       cfg.Clock,
		log:         cfg.Logger,
	}
	if t.updateEvent == "" {
		t.updateEvent = DefaultUpdateEvent
	}
	if t.registry == nil {
		t.registry = events.NewRegistry()
	}
	if t.clock == nil {
		t.clock = systemClock{}
	}
	if t.log == nil {
		t.log = zap.NewNop()
	}

	if isNil(cfg.Window) || isNil(cfg.Document) {
		t.errorCode = ErrInvalidGlobals
		errors.Report(&errors.Error{
			Op:   "visibility.New",
			Kind: errors.KindInit,
			Err:  fmt.Errorf("window or document capability missing: %w", ErrInvalidGlobals),
		})
		t.log.Debug("visibility tracker disabled", zap.String("error", string(ErrInvalidGlobals)))
		return t
	}

	t.doc = cfg.Document
	t.prefix = resolvePrefix(cfg.Document)
	t.hiddenProperty, t.visibilityProperty, t.changeEvent = PropertyNames(t.prefix)
	t.wiring = selectWiring(t, cfg.Window, cfg.Document)
	t.current = t.seed()

	t.log.Debug("visibility tracker created",
		zap.Stringer("strategy", t.wiring.strategy),
		zap.String("prefix", t.prefix),
		zap.String("state", string(t.current)),
	)
	return t
}

// seed reads the host's current state instead of assuming the default.
func (t *Tracker) seed() State {
	if t.wiring.strategy == StrategyModern {
		if v, ok := t.doc.Property(t.visibilityProperty); ok {
			if s, ok := v.(string); ok && s != "" {
				return State(s)
			}
		}
		return DefaultState
	}
	if fr, ok := t.doc.(FocusReporter); ok {
		if fr.HasFocus() {
			return StateVisible
		}
		return StateHidden
	}
	return DefaultState
}

// On subscribes fn to event on the tracker's registry.
func (t *Tracker) On(event string, fn events.Callback) *events.Subscription {
	return t.registry.Subscribe(event, fn)
}

// OnUpdate subscribes fn to accepted transitions.
func (t *Tracker) OnUpdate(fn func(State)) *events.Subscription {
	return t.registry.Subscribe(t.updateEvent, func(args ...any) {
		if len(args) == 0 {
			return
		}
		if s, ok := args[0].(State); ok {
			fn(s)
		}
	})
}

// Off removes a subscription made with On or OnUpdate.
func (t *Tracker) Off(sub *events.Subscription) bool {
	if sub == nil {
		return false
	}
	return t.registry.Unsubscribe(sub.Event(), sub)
}

// Start attaches the strategy's native listeners. It returns false only when
// construction failed; starting a started tracker is a successful no-op.
func (t *Tracker) Start() bool {
	if t.errorCode != "" {
		return false
	}
	t.lifeMu.Lock()
	defer t.lifeMu.Unlock()

	t.mu.Lock()
	if t.started {
		t.mu.Unlock()
		return true
	}
	t.started = true
	t.paused = false
	t.mu.Unlock()

	t.wiring.attach()
	t.log.Debug("visibility tracker started", zap.Stringer("strategy", t.wiring.strategy))
	return true
}

// Pause detaches the native listeners and drops any signal that still
// arrives. It returns false only when construction failed.
func (t *Tracker) Pause() bool {
	if t.errorCode != "" {
		return false
	}
	t.lifeMu.Lock()
	defer t.lifeMu.Unlock()

	t.mu.Lock()
	if !t.started {
		t.mu.Unlock()
		return true
	}
	t.started = false
	t.paused = true
	t.mu.Unlock()

	t.wiring.detach()
	t.log.Debug("visibility tracker paused")
	return true
}

// Destroy detaches the native listeners if attached and resets the lifecycle
// flags. The tracker can be started again afterwards.
func (t *Tracker) Destroy() {
	t.lifeMu.Lock()
	defer t.lifeMu.Unlock()

	t.mu.Lock()
	wasStarted := t.started
	t.started = false
	t.paused = false
	t.mu.Unlock()

	if wasStarted {
		t.wiring.detach()
		t.log.Debug("visibility tracker destroyed")
	}
}

// handleProperty reads the visibility property and normalizes it.
func (t *Tracker) handleProperty() {
	v, ok := t.doc.Property(t.visibilityProperty)
	if !ok {
		return
	}
	s, ok := v.(string)
	if !ok {
		errors.Report(&errors.Error{
			Op:      "visibility.handle",
			Kind:    errors.KindParsing,
			Channel: t.visibilityProperty,
			Err: &errors.ParseError{
				Channel:  t.visibilityProperty,
				DataType: "string",
				Got:      v,
			},
		})
		return
	}
	if s == "" {
		return
	}
	t.handle(State(s))
}

// handle is the single normalization point every strategy funnels into.
func (t *Tracker) handle(next State) {
	t.emitMu.Lock()
	defer t.emitMu.Unlock()

	t.mu.Lock()
	if t.paused || !t.started || next == t.current {
		t.mu.Unlock()
		return
	}
	now := t.clock.Now()
	if now.Before(t.lastChange) {
		now = t.lastChange
	}
	prev := t.current
	t.current = next
	t.lastChange = now
	t.changes++
	count := t.changes
	t.mu.Unlock()

	t.log.Debug("visibility changed",
		zap.String("from", string(prev)),
		zap.String("to", string(next)),
		zap.Int("count", count),
	)
	t.registry.Publish(t.updateEvent, next)
}

// State returns the current canonical state.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// LastStateChangeTime returns when the last transition was accepted. ok is
// false until the first transition.
func (t *Tracker) LastStateChangeTime() (ts time.Time, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.changes == 0 {
		return time.Time{}, false
	}
	return t.lastChange, true
}

// LastStateChangeMillis is LastStateChangeTime in Unix milliseconds.
func (t *Tracker) LastStateChangeMillis() (int64, bool) {
	ts, ok := t.LastStateChangeTime()
	if !ok {
		return 0, false
	}
	return ts.UnixMilli(), true
}

// StateChangeCount returns the number of accepted transitions.
func (t *Tracker) StateChangeCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.changes
}

// HasError reports whether construction failed.
func (t *Tracker) HasError() bool {
	return t.errorCode != ""
}

// ErrorCode returns the construction error code, if any.
func (t *Tracker) ErrorCode() (ErrorCode, bool) {
	return t.errorCode, t.errorCode != ""
}

// Err returns the construction error code as an error, or nil.
func (t *Tracker) Err() error {
	if t.errorCode == "" {
		return nil
	}
	return t.errorCode
}

// Strategy returns the wiring strategy chosen at construction.
func (t *Tracker) Strategy() Strategy {
	return t.wiring.strategy
}

// VendorPrefix returns the vendor prefix the tracker resolved.
func (t *Tracker) VendorPrefix() string {
	return t.prefix
}

// UpdateEvent returns the channel transitions are published on.
func (t *Tracker) UpdateEvent() string {
	return t.updateEvent
}

// IsStarted reports whether native listeners are attached.
func (t *Tracker) IsStarted() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.started
}

// IsPaused reports whether the tracker was paused and not restarted.
func (t *Tracker) IsPaused() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.paused
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
