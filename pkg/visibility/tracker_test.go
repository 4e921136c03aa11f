package visibility_test

import (
	stderrors "errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/go-drift/visibility/pkg/errors"
	"github.com/go-drift/visibility/pkg/host/memhost"
	"github.com/go-drift/visibility/pkg/visibility"
)

// newTracker builds a tracker against h with a fresh prefix cache.
func newTracker(t *testing.T, h *memhost.Host, opts ...func(*visibility.Config)) *visibility.Tracker {
	t.Helper()
	visibility.ResetPrefixCache()
	t.Cleanup(visibility.ResetPrefixCache)
	cfg := h.Config()
	for _, o := range opts {
		o(&cfg)
	}
	tr := visibility.New(cfg)
	t.Cleanup(tr.Destroy)
	return tr
}

// collect subscribes to update transitions and returns the received states.
func collect(tr *visibility.Tracker) *[]visibility.State {
	var got []visibility.State
	tr.OnUpdate(func(s visibility.State) { got = append(got, s) })
	return &got
}

func TestModernScenario(t *testing.T) {
	h := memhost.NewModern("", visibility.StateVisible)
	tr := newTracker(t, h)
	got := collect(tr)

	if !tr.Start() {
		t.Fatal("Start() = false")
	}

	h.Signal(visibility.StateHidden)
	if len(*got) != 1 || (*got)[0] != visibility.StateHidden {
		t.Fatalf("callbacks = %v, want [hidden]", *got)
	}
	if n := tr.StateChangeCount(); n != 1 {
		t.Errorf("StateChangeCount() = %d, want 1", n)
	}

	h.Signal(visibility.StateHidden)
	if len(*got) != 1 {
		t.Errorf("repeated hidden fired a callback: %v", *got)
	}

	h.Signal(visibility.StateVisible)
	if len(*got) != 2 {
		t.Errorf("callbacks = %v, want 2 entries", *got)
	}
	if s := tr.State(); s != visibility.StateVisible {
		t.Errorf("State() = %q, want %q", s, visibility.StateVisible)
	}
}

func TestInitialStateFromHost(t *testing.T) {
	tests := []struct {
		name string
		host *memhost.Host
		want visibility.State
	}{
		{"modern hidden", memhost.NewModern("", visibility.StateHidden), visibility.StateHidden},
		{"modern prerender", memhost.NewModern("webkit", visibility.StatePrerender), visibility.StatePrerender},
		{"focus unfocused", memhost.NewFocus(false), visibility.StateHidden},
		{"focus focused", memhost.NewFocus(true), visibility.StateVisible},
		{"legacy", memhost.NewLegacy(), visibility.DefaultState},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTracker(t, tt.host)
			if s := tr.State(); s != tt.want {
				t.Errorf("State() = %q, want %q", s, tt.want)
			}
			if n := tr.StateChangeCount(); n != 0 {
				t.Errorf("StateChangeCount() = %d, want 0", n)
			}
			if _, ok := tr.LastStateChangeTime(); ok {
				t.Error("LastStateChangeTime() reported a time before any transition")
			}
			if _, ok := tr.LastStateChangeMillis(); ok {
				t.Error("LastStateChangeMillis() reported a time before any transition")
			}
		})
	}
}

func TestEmptyVisibilityPropertySeedsDefault(t *testing.T) {
	h := memhost.NewModern("", visibility.StateHidden)
	h.EventDocument().SetProperty("visibilityState", "")
	tr := newTracker(t, h)
	if s := tr.State(); s != visibility.DefaultState {
		t.Errorf("State() = %q, want %q", s, visibility.DefaultState)
	}
}

func TestStrategySelection(t *testing.T) {
	tests := []struct {
		name       string
		host       *memhost.Host
		strategy   visibility.Strategy
		prefix     string
		strategyID string
	}{
		{"unprefixed modern", memhost.NewModern("", visibility.StateVisible), visibility.StrategyModern, "", "modern"},
		{"webkit modern", memhost.NewModern("webkit", visibility.StateVisible), visibility.StrategyModern, "webkit", "modern"},
		{"moz modern", memhost.NewModern("moz", visibility.StateVisible), visibility.StrategyModern, "moz", "modern"},
		{"focus blur", memhost.NewFocus(true), visibility.StrategyFocusBlur, "", "focus-blur"},
		{"legacy", memhost.NewLegacy(), visibility.StrategyFocusBlurLegacy, "", "focus-blur-ie"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTracker(t, tt.host)
			if got := tr.Strategy(); got != tt.strategy {
				t.Errorf("Strategy() = %v, want %v", got, tt.strategy)
			}
			if got := tr.Strategy().String(); got != tt.strategyID {
				t.Errorf("Strategy().String() = %q, want %q", got, tt.strategyID)
			}
			if got := tr.VendorPrefix(); got != tt.prefix {
				t.Errorf("VendorPrefix() = %q, want %q", got, tt.prefix)
			}
		})
	}
}

func TestVendorPrefixPriority(t *testing.T) {
	tests := []struct {
		name  string
		props map[string]any
		want  string
	}{
		{"ms before moz", map[string]any{"mozHidden": false, "msHidden": false}, "ms"},
		{"webkit before khtml", map[string]any{"khtmlHidden": false, "webkitHidden": false}, "webkit"},
		{"o before moz", map[string]any{"mozHidden": false, "oHidden": false}, "o"},
		{"none", map[string]any{"hidden": false}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &memhost.Host{Window: memhost.NewWindow(), Document: memhost.NewEventDocument(tt.props, true)}
			tr := newTracker(t, h)
			if got := tr.VendorPrefix(); got != tt.want {
				t.Errorf("VendorPrefix() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVendorPrefixCachedProcessWide(t *testing.T) {
	first := newTracker(t, memhost.NewModern("webkit", visibility.StateVisible))
	if first.VendorPrefix() != "webkit" {
		t.Fatalf("first VendorPrefix() = %q, want webkit", first.VendorPrefix())
	}
	if p, ok := visibility.CachedVendorPrefix(); !ok || p != "webkit" {
		t.Fatalf("CachedVendorPrefix() = %q, %v; want webkit, true", p, ok)
	}

	// No reset: the second host is unprefixed, but the cached probe wins, so
	// webkitHidden is looked up, not found, and focus-blur is chosen.
	second := visibility.New(memhost.NewModern("", visibility.StateVisible).Config())
	if got := second.VendorPrefix(); got != "webkit" {
		t.Errorf("second VendorPrefix() = %q, want webkit", got)
	}
	if got := second.Strategy(); got != visibility.StrategyFocusBlur {
		t.Errorf("second Strategy() = %v, want focus-blur", got)
	}

	visibility.ResetPrefixCache()
	if _, ok := visibility.CachedVendorPrefix(); ok {
		t.Error("CachedVendorPrefix() still set after reset")
	}
}

func TestPropertyNames(t *testing.T) {
	tests := []struct {
		prefix                   string
		hidden, state, changeEvt string
	}{
		{"", "hidden", "visibilityState", "visibilitychange"},
		{"webkit", "webkitHidden", "webkitVisibilityState", "webkitvisibilitychange"},
		{"ms", "msHidden", "msVisibilityState", "msvisibilitychange"},
	}
	for _, tt := range tests {
		hidden, state, change := visibility.PropertyNames(tt.prefix)
		if hidden != tt.hidden || state != tt.state || change != tt.changeEvt {
			t.Errorf("PropertyNames(%q) = %q, %q, %q; want %q, %q, %q",
				tt.prefix, hidden, state, change, tt.hidden, tt.state, tt.changeEvt)
		}
	}
}

func TestPausedSignalsDropped(t *testing.T) {
	hosts := map[string]*memhost.Host{
		"modern": memhost.NewModern("", visibility.StateVisible),
		"focus":  memhost.NewFocus(true),
		"legacy": memhost.NewLegacy(),
	}
	for name, h := range hosts {
		t.Run(name, func(t *testing.T) {
			tr := newTracker(t, h)
			got := collect(tr)
			tr.Start()
			if !tr.Pause() {
				t.Fatal("Pause() = false")
			}
			if !tr.IsPaused() || tr.IsStarted() {
				t.Errorf("IsPaused() = %v, IsStarted() = %v; want true, false", tr.IsPaused(), tr.IsStarted())
			}
			if n := h.ListenerCount(); n != 0 {
				t.Errorf("listeners after Pause = %d, want 0", n)
			}

			h.Signal(visibility.StateHidden)
			h.Signal(visibility.StateVisible)
			h.Signal(visibility.StateHidden)

			if len(*got) != 0 {
				t.Errorf("callbacks while paused = %v", *got)
			}
			if n := tr.StateChangeCount(); n != 0 {
				t.Errorf("StateChangeCount() = %d, want 0", n)
			}
			if s := tr.State(); s != visibility.StateVisible {
				t.Errorf("State() = %q, want visible", s)
			}
		})
	}
}

func TestStartIsIdempotent(t *testing.T) {
	hosts := map[string]*memhost.Host{
		"modern": memhost.NewModern("", visibility.StateVisible),
		"focus":  memhost.NewFocus(true),
		"legacy": memhost.NewLegacy(),
	}
	for name, h := range hosts {
		t.Run(name, func(t *testing.T) {
			tr := newTracker(t, h)
			got := collect(tr)

			if !tr.Start() || !tr.Start() {
				t.Fatal("Start() returned false")
			}
			want := 1
			if name != "modern" {
				want = 2
			}
			if n := h.ListenerCount(); n != want {
				t.Errorf("listeners = %d, want %d", n, want)
			}

			h.Signal(visibility.StateHidden)
			if len(*got) != 1 {
				t.Errorf("callbacks = %d, want 1", len(*got))
			}
		})
	}
}

func TestDestroyThenStart(t *testing.T) {
	h := memhost.NewFocus(true)
	tr := newTracker(t, h)
	got := collect(tr)

	tr.Start()
	tr.Destroy()
	if tr.IsStarted() || tr.IsPaused() {
		t.Errorf("after Destroy IsStarted() = %v, IsPaused() = %v; want false, false", tr.IsStarted(), tr.IsPaused())
	}
	if n := h.ListenerCount(); n != 0 {
		t.Errorf("listeners after Destroy = %d, want 0", n)
	}
	h.Signal(visibility.StateHidden)
	if len(*got) != 0 {
		t.Errorf("callbacks after Destroy = %v", *got)
	}

	if !tr.Start() {
		t.Fatal("Start() after Destroy = false")
	}
	h.Signal(visibility.StateHidden)
	if want := []visibility.State{visibility.StateHidden}; !reflect.DeepEqual(*got, want) {
		t.Errorf("callbacks = %v, want %v", *got, want)
	}
}

func TestDestroyIsIdempotent(t *testing.T) {
	h := memhost.NewModern("", visibility.StateVisible)
	tr := newTracker(t, h)

	tr.Destroy()
	tr.Destroy()
	tr.Start()
	tr.Pause()
	tr.Destroy()
	if tr.IsPaused() {
		t.Error("Destroy should clear the paused flag")
	}
	tr.Destroy()
	if n := h.ListenerCount(); n != 0 {
		t.Errorf("listeners = %d, want 0", n)
	}
}

func TestPauseWhenNotStarted(t *testing.T) {
	tr := newTracker(t, memhost.NewFocus(true))
	if !tr.Pause() {
		t.Fatal("Pause() = false")
	}
	if tr.IsPaused() {
		t.Error("Pause() on a stopped tracker should be a no-op")
	}
}

func TestStartClearsPause(t *testing.T) {
	h := memhost.NewFocus(true)
	tr := newTracker(t, h)
	got := collect(tr)

	tr.Start()
	tr.Pause()
	tr.Start()
	if tr.IsPaused() {
		t.Error("IsPaused() = true after Start")
	}
	h.Signal(visibility.StateHidden)
	if len(*got) != 1 {
		t.Errorf("callbacks = %d, want 1", len(*got))
	}
}

func TestInvalidGlobals(t *testing.T) {
	var nilWindow *memhost.Window
	var nilDoc *memhost.EventDocument
	tests := []struct {
		name string
		cfg  visibility.Config
	}{
		{"nothing", visibility.Config{}},
		{"no window", visibility.Config{Document: memhost.NewEventDocument(nil, true)}},
		{"no document", visibility.Config{Window: memhost.NewWindow()}},
		{"typed nil window", visibility.Config{Window: nilWindow, Document: memhost.NewEventDocument(nil, true)}},
		{"typed nil document", visibility.Config{Window: memhost.NewWindow(), Document: nilDoc}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &errors.Recorder{}
			rec.Install(t.Cleanup)
			visibility.ResetPrefixCache()

			tr := visibility.New(tt.cfg)
			if !tr.HasError() {
				t.Fatal("HasError() = false")
			}
			code, ok := tr.ErrorCode()
			if !ok || code != visibility.ErrInvalidGlobals || string(code) != "INVALID_GLOBALS" {
				t.Errorf("ErrorCode() = %q, %v; want INVALID_GLOBALS, true", code, ok)
			}
			if !stderrors.Is(tr.Err(), visibility.ErrInvalidGlobals) {
				t.Errorf("Err() = %v, want ErrInvalidGlobals", tr.Err())
			}
			if tr.Start() {
				t.Error("Start() = true")
			}
			if tr.Pause() {
				t.Error("Pause() = true")
			}
			tr.Destroy()
			if tr.IsStarted() || tr.IsPaused() {
				t.Error("lifecycle flags moved on a failed tracker")
			}
			if tr.State() != visibility.DefaultState {
				t.Errorf("State() = %q, want %q", tr.State(), visibility.DefaultState)
			}
			if tr.Strategy() != visibility.StrategyNone {
				t.Errorf("Strategy() = %v, want none", tr.Strategy())
			}
			if _, probed := visibility.CachedVendorPrefix(); probed {
				t.Error("prefix probed despite missing globals")
			}

			errs := rec.Errors()
			if len(errs) != 1 || errs[0].Kind != errors.KindInit {
				t.Errorf("reported errors = %v, want one init error", errs)
			}
		})
	}
}

func TestNoErrorAccessors(t *testing.T) {
	tr := newTracker(t, memhost.NewFocus(true))
	if tr.HasError() {
		t.Error("HasError() = true")
	}
	if code, ok := tr.ErrorCode(); ok || code != "" {
		t.Errorf("ErrorCode() = %q, %v; want empty, false", code, ok)
	}
	if tr.Err() != nil {
		t.Errorf("Err() = %v, want nil", tr.Err())
	}
}

func TestMultipleSubscribers(t *testing.T) {
	h := memhost.NewModern("ms", visibility.StateVisible)
	tr := newTracker(t, h)

	var order []string
	var args [][]any
	for _, name := range []string{"a", "b", "c"} {
		name := name
		tr.On("update", func(a ...any) {
			order = append(order, name)
			args = append(args, a)
		})
	}
	tr.Start()
	h.Signal(visibility.StateHidden)

	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
	for _, a := range args {
		if want := []any{visibility.StateHidden}; !reflect.DeepEqual(a, want) {
			t.Errorf("args = %v, want %v", a, want)
		}
	}
}

func TestCustomUpdateEvent(t *testing.T) {
	h := memhost.NewFocus(true)
	tr := newTracker(t, h, func(c *visibility.Config) { c.EventNames.Update = "visibility" })
	if tr.UpdateEvent() != "visibility" {
		t.Fatalf("UpdateEvent() = %q, want visibility", tr.UpdateEvent())
	}

	var onDefault, onCustom int
	tr.On("update", func(...any) { onDefault++ })
	tr.On("visibility", func(...any) { onCustom++ })
	tr.Start()
	h.Signal(visibility.StateHidden)

	if onDefault != 0 || onCustom != 1 {
		t.Errorf("default = %d, custom = %d; want 0, 1", onDefault, onCustom)
	}
}

func TestOff(t *testing.T) {
	h := memhost.NewFocus(true)
	tr := newTracker(t, h)
	count := 0
	sub := tr.On("update", func(...any) { count++ })
	tr.Start()

	if !tr.Off(sub) {
		t.Fatal("Off() = false")
	}
	if tr.Off(sub) || tr.Off(nil) {
		t.Error("Off() of a removed or nil subscription should be false")
	}
	h.Signal(visibility.StateHidden)
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestTransitionTimestamps(t *testing.T) {
	h := memhost.NewModern("", visibility.StateVisible)
	clock := memhost.NewFakeClock()
	tr := newTracker(t, h, func(c *visibility.Config) { c.Clock = clock })
	tr.Start()

	clock.Advance(5 * time.Second)
	h.Signal(visibility.StateHidden)
	first, ok := tr.LastStateChangeTime()
	if !ok || !first.Equal(clock.Now()) {
		t.Fatalf("LastStateChangeTime() = %v, %v; want %v, true", first, ok, clock.Now())
	}
	if ms, _ := tr.LastStateChangeMillis(); ms != clock.Now().UnixMilli() {
		t.Errorf("LastStateChangeMillis() = %d, want %d", ms, clock.Now().UnixMilli())
	}

	// A repeated value does not touch the timestamp.
	clock.Advance(time.Second)
	h.Signal(visibility.StateHidden)
	if ts, _ := tr.LastStateChangeTime(); !ts.Equal(first) {
		t.Errorf("timestamp moved on a dropped signal: %v", ts)
	}

	// A clock stepping backwards never makes the timestamp decrease.
	clock.Advance(-time.Hour)
	h.Signal(visibility.StateVisible)
	if ts, _ := tr.LastStateChangeTime(); ts.Before(first) {
		t.Errorf("timestamp decreased: %v before %v", ts, first)
	}
	if n := tr.StateChangeCount(); n != 2 {
		t.Errorf("StateChangeCount() = %d, want 2", n)
	}
}

func TestOpenStateValuesPassThrough(t *testing.T) {
	h := memhost.NewModern("", visibility.StateVisible)
	tr := newTracker(t, h)
	got := collect(tr)
	tr.Start()

	h.Signal(visibility.StatePrerender)
	h.Signal(visibility.State("unloaded"))

	want := []visibility.State{visibility.StatePrerender, "unloaded"}
	if !reflect.DeepEqual(*got, want) {
		t.Errorf("callbacks = %v, want %v", *got, want)
	}
}

func TestNonStringVisibilityReported(t *testing.T) {
	rec := &errors.Recorder{}
	rec.Install(t.Cleanup)

	h := memhost.NewModern("", visibility.StateVisible)
	tr := newTracker(t, h)
	got := collect(tr)
	tr.Start()

	doc := h.EventDocument()
	doc.SetProperty("visibilityState", 7)
	doc.Dispatch("visibilitychange")
	doc.SetProperty("visibilityState", "")
	doc.Dispatch("visibilitychange")

	if len(*got) != 0 {
		t.Errorf("callbacks = %v, want none", *got)
	}
	errs := rec.Errors()
	if len(errs) != 1 || errs[0].Kind != errors.KindParsing {
		t.Fatalf("reported errors = %v, want one parsing error", errs)
	}
	var pe *errors.ParseError
	if !stderrors.As(errs[0], &pe) || pe.Got != 7 {
		t.Errorf("ParseError = %+v, want Got 7", pe)
	}
}

func TestLegacyWiring(t *testing.T) {
	h := memhost.NewLegacy()
	tr := newTracker(t, h)
	got := collect(tr)
	doc := h.LegacyDocument()

	tr.Start()
	if doc.AttachedCount("onfocusin") != 1 || doc.AttachedCount("onfocusout") != 1 {
		t.Fatalf("attached = %d/%d, want 1/1", doc.AttachedCount("onfocusin"), doc.AttachedCount("onfocusout"))
	}
	doc.Fire("onfocusout")
	doc.Fire("onfocusin")

	want := []visibility.State{visibility.StateHidden, visibility.StateVisible}
	if !reflect.DeepEqual(*got, want) {
		t.Errorf("callbacks = %v, want %v", *got, want)
	}
}

func TestLegacyAttachFailuresReported(t *testing.T) {
	tests := []struct {
		name string
		host *memhost.Host
		want int
	}{
		{
			name: "no legacy capability",
			host: &memhost.Host{Window: memhost.NewWindow(), Document: memhost.NewDocument(nil)},
			want: 1,
		},
		{
			name: "host rejects",
			host: func() *memhost.Host {
				h := memhost.NewLegacy()
				h.LegacyDocument().Reject = true
				return h
			}(),
			want: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &errors.Recorder{}
			rec.Install(t.Cleanup)

			tr := newTracker(t, tt.host)
			if tr.Strategy() != visibility.StrategyFocusBlurLegacy {
				t.Fatalf("Strategy() = %v, want focus-blur-ie", tr.Strategy())
			}
			if !tr.Start() {
				t.Fatal("Start() = false")
			}
			errs := rec.Errors()
			if len(errs) != tt.want {
				t.Fatalf("reported %d errors, want %d", len(errs), tt.want)
			}
			for _, e := range errs {
				if e.Kind != errors.KindPlatform {
					t.Errorf("Kind = %v, want platform", e.Kind)
				}
			}
		})
	}
}

func TestModernWithoutEventTargetReported(t *testing.T) {
	rec := &errors.Recorder{}
	rec.Install(t.Cleanup)

	doc := memhost.NewDocument(map[string]any{"hidden": true, "visibilityState": "hidden"})
	h := &memhost.Host{Window: memhost.NewWindow(), Document: doc}
	tr := newTracker(t, h)

	if tr.Strategy() != visibility.StrategyModern {
		t.Fatalf("Strategy() = %v, want modern", tr.Strategy())
	}
	if tr.State() != visibility.StateHidden {
		t.Errorf("State() = %q, want hidden", tr.State())
	}
	tr.Start()
	if errs := rec.Errors(); len(errs) != 1 || !stderrors.Is(errs[0], visibility.ErrNoEventTarget) {
		t.Errorf("reported errors = %v, want ErrNoEventTarget", errs)
	}
}

func TestSubscriberMayQueryTracker(t *testing.T) {
	h := memhost.NewFocus(true)
	tr := newTracker(t, h)
	var seen visibility.State
	var count int
	tr.OnUpdate(func(visibility.State) {
		seen = tr.State()
		count = tr.StateChangeCount()
	})
	tr.Start()
	h.Signal(visibility.StateHidden)

	if seen != visibility.StateHidden || count != 1 {
		t.Errorf("inside callback State() = %q, count = %d; want hidden, 1", seen, count)
	}
}

func TestConcurrentDeliveryPublishesInOrder(t *testing.T) {
	h := memhost.NewFocus(true)
	tr := newTracker(t, h)

	var mu sync.Mutex
	var got []visibility.State
	tr.OnUpdate(func(s visibility.State) {
		mu.Lock()
		got = append(got, s)
		mu.Unlock()
	})
	tr.Start()

	const workers, rounds = 4, 2000
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				h.Window.Blur()
				h.Window.Focus()
			}
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if len(got) != tr.StateChangeCount() {
		t.Fatalf("published %d transitions, StateChangeCount() = %d", len(got), tr.StateChangeCount())
	}
	for i := 1; i < len(got); i++ {
		if got[i] == got[i-1] {
			t.Fatalf("transition %d repeats %q; publishes were reordered", i, got[i])
		}
	}
	if len(got) > 0 && got[len(got)-1] != tr.State() {
		t.Errorf("last published = %q, State() = %q", got[len(got)-1], tr.State())
	}
}

func TestInvalidGlobalsLoggedOnce(t *testing.T) {
	rec := &errors.Recorder{}
	rec.Install(t.Cleanup)
	core, logs := observer.New(zapcore.InfoLevel)

	tr := visibility.New(visibility.Config{Logger: zap.New(core)})
	if !tr.HasError() {
		t.Fatal("HasError() = false, want true")
	}
	if n := len(rec.Errors()); n != 1 {
		t.Errorf("reported %d errors, want 1", n)
	}
	if logs.Len() != 0 {
		t.Errorf("tracker logger got %d entries at info or above, want 0", logs.Len())
	}
}
