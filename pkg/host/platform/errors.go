package platform

import "errors"

// Sentinel errors for the lifecycle bridge.
var (
	// ErrClosed is returned when delivering to a closed host.
	ErrClosed = errors.New("platform: host closed")

	// ErrNotConnected is returned when the host has no native bridge.
	ErrNotConnected = errors.New("platform: not connected")

	// ErrChannelNotRegistered is returned for events on an unknown channel.
	ErrChannelNotRegistered = errors.New("platform: event channel not registered")
)

// ChannelError represents a stream error reported by native code.
type ChannelError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ChannelError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

// NewChannelError creates a ChannelError with the given code and message.
func NewChannelError(code, message string) *ChannelError {
	return &ChannelError{Code: code, Message: message}
}
