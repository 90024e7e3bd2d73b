package service

import "fmt"

// State is a task's lifecycle phase.
type State int32

const (
	// StateCreated is the phase between construction and the first start.
	StateCreated State = iota
	// StateStarted is entered at the beginning of every start callback.
	StateStarted
	// StateStopRequested is entered once the task has asked the host to stop it.
	StateStopRequested
	// StateDestroyed is terminal.
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateStarted:
		return "started"
	case StateStopRequested:
		return "stop_requested"
	case StateDestroyed:
		return "destroyed"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// A start is accepted before the first start and after a stop request the
// host has not acted on yet. A start while StateStarted means a callback
// re-entered the task.
func canStart(s State) bool {
	return s == StateCreated || s == StateStopRequested
}

func canDestroy(s State) bool {
	return s != StateDestroyed
}
