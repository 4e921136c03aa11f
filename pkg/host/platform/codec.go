package platform

import (
	"encoding/json"
)

// MessageCodec decodes event payloads received from native code.
type MessageCodec interface {
	// Decode converts bytes received from native code to a Go value.
	Decode(data []byte) (any, error)
}

// JSONCodec implements MessageCodec using JSON encoding.
type JSONCodec struct{}

// Decode deserializes JSON bytes to a Go value. Empty input decodes to nil.
func (JSONCodec) Decode(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var result any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// DefaultCodec is the codec used when a Host is built without one.
var DefaultCodec MessageCodec = JSONCodec{}
