// Package terminal provides a visibility host backed by terminal focus
// reporting.
//
// Terminals that support focus reporting send focus-in and focus-out escape
// sequences, which tcell surfaces as *tcell.EventFocus. The host turns them
// into focus and blur events on its window, so a visibility.Tracker built on
// it selects the focus-blur strategy.
package terminal

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/visibility/pkg/host/memhost"
	"github.com/go-drift/visibility/pkg/visibility"
)

// KeyHandler receives key presses that the host does not consume.
// Returning false stops Run.
type KeyHandler func(ev *tcell.EventKey) bool

// Host is a visibility host driven by a tcell screen.
type Host struct {
	screen tcell.Screen
	window *memhost.Window
	doc    *memhost.EventDocument

	mu      sync.Mutex
	focused bool
}

// New creates a host on the process terminal.
func New() (*Host, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen creates a host on an existing, uninitialized screen.
// Terminals report focus only after the first change, so the host starts
// out focused.
func NewWithScreen(screen tcell.Screen) *Host {
	return &Host{
		screen:  screen,
		window:  memhost.NewWindow(),
		doc:     memhost.NewEventDocument(nil, true),
		focused: true,
	}
}

// Init initializes the screen and enables focus reporting.
func (h *Host) Init() error {
	if err := h.screen.Init(); err != nil {
		return err
	}
	h.screen.EnableFocus()
	return nil
}

// Fini restores the terminal.
func (h *Host) Fini() {
	h.screen.DisableFocus()
	h.screen.Fini()
}

// Screen returns the underlying screen for drawing.
func (h *Host) Screen() tcell.Screen {
	return h.screen
}

// Config returns a tracker configuration wired to this host.
func (h *Host) Config() visibility.Config {
	return visibility.Config{Window: h.window, Document: h.doc}
}

// Focused reports the last focus state seen from the terminal.
func (h *Host) Focused() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.focused
}

// Run polls screen events until ctx is done, the screen is finalized, or
// onKey returns false. Focus events are dispatched to the window; key events
// go to onKey; resizes trigger a sync.
func (h *Host) Run(ctx context.Context, onKey KeyHandler) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go h.screen.ChannelEvents(events, quit)
	defer close(quit)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !h.HandleEvent(ev, onKey) {
				return nil
			}
		}
	}
}

// HandleEvent processes one screen event and reports whether Run should
// continue.
func (h *Host) HandleEvent(ev tcell.Event, onKey KeyHandler) bool {
	switch e := ev.(type) {
	case *tcell.EventFocus:
		h.setFocus(e.Focused)
	case *tcell.EventKey:
		if onKey != nil {
			return onKey(e)
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

func (h *Host) setFocus(focused bool) {
	h.mu.Lock()
	h.focused = focused
	h.mu.Unlock()

	h.doc.SetFocus(focused)
	if focused {
		h.window.Focus()
	} else {
		h.window.Blur()
	}
}
