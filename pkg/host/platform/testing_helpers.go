package platform

import "sync"

// RecordingBridge is a NativeBridge that records stream starts and stops.
// It is meant for tests of code built on Host.
type RecordingBridge struct {
	// StartErr is returned from StartEventStream when set.
	StartErr error

	mu      sync.Mutex
	started []string
	stopped []string
}

// StartEventStream implements NativeBridge.
func (b *RecordingBridge) StartEventStream(channel string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.StartErr != nil {
		return b.StartErr
	}
	b.started = append(b.started, channel)
	return nil
}

// StopEventStream implements NativeBridge.
func (b *RecordingBridge) StopEventStream(channel string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopped = append(b.stopped, channel)
	return nil
}

// Started returns the channels whose streams were started.
func (b *RecordingBridge) Started() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.started...)
}

// Stopped returns the channels whose streams were stopped.
func (b *RecordingBridge) Stopped() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.stopped...)
}

// SetupTestHost returns a host on a RecordingBridge and registers Close with
// cleanup, usually testing.T.Cleanup.
//
//	h, bridge := platform.SetupTestHost(t.Cleanup, platform.LifecycleStateResumed)
func SetupTestHost(cleanup func(func()), initial LifecycleState) (*Host, *RecordingBridge) {
	bridge := &RecordingBridge{}
	h := NewHost(bridge, initial)
	cleanup(h.Close)
	return h, bridge
}
