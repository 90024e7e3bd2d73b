// Package platform connects host-driven components to the native runtime.
// It carries lifecycle calls from native code to Go over named method
// channels, forwards Go requests (stop a task, set screen content, write a
// log line) back to native code, and exposes the environment queries the
// components depend on.
package platform

import (
	"encoding/json"
	"errors"
	"fmt"

	drifterrors "github.com/go-drift/blocks/pkg/errors"
)

var (
	// ErrChannelNotFound is returned for calls naming an unregistered channel.
	ErrChannelNotFound = errors.New("platform channel not found")
	// ErrMethodNotFound is returned when the receiving side has no handler
	// for the method.
	ErrMethodNotFound = errors.New("method not implemented")
	// ErrInvalidArguments is returned when call arguments are malformed or
	// not a key/value map.
	ErrInvalidArguments = errors.New("invalid arguments")
	// ErrPlatformUnavailable is returned for Go-to-native calls made with
	// no native bridge installed.
	ErrPlatformUnavailable = errors.New("platform feature unavailable")
)

// MessageCodec converts call arguments and results to and from the bytes
// that cross the native bridge.
type MessageCodec interface {
	Encode(value any) ([]byte, error)
	Decode(data []byte) (any, error)
}

// JsonCodec is the MessageCodec the native side speaks. Numbers decode as
// float64 and objects as map[string]any.
type JsonCodec struct{}

// Encode marshals value as JSON.
func (JsonCodec) Encode(value any) ([]byte, error) {
	return json.Marshal(value)
}

// Decode unmarshals data. Empty input is a call without arguments and
// decodes to nil.
func (JsonCodec) Decode(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// DefaultCodec is used for every channel.
var DefaultCodec MessageCodec = JsonCodec{}

// decodeArgs turns an incoming payload into Args. Undecodable payloads and
// payloads that are not maps are reported as parsing errors on channel and
// returned wrapped in ErrInvalidArguments. An empty payload yields nil Args.
func decodeArgs(channel string, data []byte) (Args, error) {
	var got any = string(data)
	decoded, err := DefaultCodec.Decode(data)
	if err == nil {
		if args := toArgs(decoded); args != nil || decoded == nil {
			return args, nil
		}
		got = decoded
	}
	perr := &drifterrors.ParseError{Channel: channel, DataType: "Args", Got: got}
	drifterrors.ReportOp("platform.HandleMethodCall", drifterrors.KindParsing, channel, perr)
	return nil, fmt.Errorf("%w: %v", ErrInvalidArguments, perr)
}
