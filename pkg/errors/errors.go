// Package errors provides structured error handling for host-driven components.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindPlatform indicates a platform channel or native bridge error.
	KindPlatform
	// KindParsing indicates a failure to decode channel arguments.
	KindParsing
	// KindLifecycle indicates a callback that is not valid in the current lifecycle state.
	KindLifecycle
	// KindRender indicates a failure to install or draw screen content.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindPlatform:
		return "platform"
	case KindParsing:
		return "parsing"
	case KindLifecycle:
		return "lifecycle"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// HostError represents a structured error raised while serving a host callback.
type HostError struct {
	// Op is the operation that failed (e.g., "host.onStart").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Channel is the platform channel name, if applicable.
	Channel string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *HostError) Error() string {
	if e.Channel != "" {
		return fmt.Sprintf("%s [%s] channel=%s: %v", e.Op, e.Kind, e.Channel, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *HostError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "host.dispatch").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ParseError represents a failure to parse channel arguments.
type ParseError struct {
	// Channel is the platform channel that received the call.
	Channel string
	// DataType is the expected type name.
	DataType string
	// Got is the actual data received.
	Got any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s from channel %s: got %T", e.DataType, e.Channel, e.Got)
}

// TransitionError reports a lifecycle callback delivered in a state that
// does not accept it.
type TransitionError struct {
	// Component names the receiver (e.g., "service").
	Component string
	// From is the state the component was in.
	From string
	// Event is the rejected callback (e.g., "onStart").
	Event string
	// Err is the sentinel describing the rejection.
	Err error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s not allowed in state %s: %v", e.Component, e.Event, e.From, e.Err)
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by host-driven components.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *HostError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
