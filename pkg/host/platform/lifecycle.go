package platform

import "github.com/go-drift/visibility/pkg/visibility"

// LifecycleState represents the native app lifecycle state.
type LifecycleState string

const (
	// LifecycleStateResumed indicates the app is visible and responding to user input.
	LifecycleStateResumed LifecycleState = "resumed"

	// LifecycleStateInactive indicates the app is visible but not receiving input,
	// e.g. while the app switcher or a system dialog is shown.
	LifecycleStateInactive LifecycleState = "inactive"

	// LifecycleStatePaused indicates the app is not visible but still running.
	LifecycleStatePaused LifecycleState = "paused"

	// LifecycleStateDetached indicates the app is still hosted but detached from any view.
	LifecycleStateDetached LifecycleState = "detached"
)

// Valid reports whether s is one of the known lifecycle states.
func (s LifecycleState) Valid() bool {
	switch s {
	case LifecycleStateResumed, LifecycleStateInactive, LifecycleStatePaused, LifecycleStateDetached:
		return true
	}
	return false
}

// Visibility maps the lifecycle state to a canonical visibility state.
func (s LifecycleState) Visibility() visibility.State {
	switch s {
	case LifecycleStateResumed, LifecycleStateInactive:
		return visibility.StateVisible
	default:
		return visibility.StateHidden
	}
}

// Focused reports whether the app receives input in this state.
func (s LifecycleState) Focused() bool {
	return s == LifecycleStateResumed
}
