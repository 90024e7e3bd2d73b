// Package service implements a host-driven background task.
//
// A [Task] is driven entirely by its host: the host binds it, starts it and
// destroys it. On every start the task reports its process identifier to
// the diagnostic log and asks the host to stop it; on destroy it reports
// that it stopped. The lifecycle is an explicit state machine:
//
//	created -> started -> stop_requested -> destroyed
//
// Callbacks that the current state does not accept return a
// *errors.TransitionError and have no other effect.
package service

import (
	"errors"
	"strconv"

	"go.uber.org/atomic"

	drifterrors "github.com/go-drift/blocks/pkg/errors"
	"github.com/go-drift/blocks/pkg/platform"
)

// LogTag is the category label of every record the task emits.
const LogTag = "=========="

// Messages written to the diagnostic log.
const (
	MessageStart = "service start"
	MessageStop  = "service stop"
)

var (
	// ErrDestroyed is returned for callbacks delivered after destroy.
	ErrDestroyed = errors.New("task already destroyed")
	// ErrReentrantStart is returned for a start delivered while a start is running.
	ErrReentrantStart = errors.New("start already in progress")
)

// Request is a start or bind request from the host.
type Request struct {
	Action string
	Extras map[string]any
}

// Binder is the interface a bound client would talk to.
type Binder interface{}

// Host executes stop requests. StopSelf must not block on the teardown;
// the host destroys the task later, at a time of its choosing.
type Host interface {
	StopSelf(id string)
}

// HostFunc adapts a function to Host.
type HostFunc func(id string)

// StopSelf calls f.
func (f HostFunc) StopSelf(id string) { f(id) }

// Config holds a task's collaborators.
type Config struct {
	// ID identifies the task to its host.
	ID string
	// Host receives stop requests. A nil Host drops them.
	Host Host
	// Env answers the process identifier query. Defaults to platform.SystemEnv.
	Env platform.EnvInfo
	// Logger receives diagnostic records. Defaults to the slog default logger.
	Logger platform.Logger
}

// Task is a background unit of work that reports its process identity and
// immediately asks to be stopped.
type Task struct {
	id     string
	host   Host
	env    platform.EnvInfo
	logger platform.Logger

	state      atomic.Int32
	starts     atomic.Int32
	invocation atomic.Int64
}

// New returns a task in StateCreated.
func New(cfg Config) *Task {
	t := &Task{
		id:     cfg.ID,
		host:   cfg.Host,
		env:    cfg.Env,
		logger: cfg.Logger,
	}
	if t.env == nil {
		t.env = platform.SystemEnv{}
	}
	if t.logger == nil {
		t.logger = platform.SlogLogger{}
	}
	return t
}

// ID returns the task identifier.
func (t *Task) ID() string {
	return t.id
}

// State returns the current lifecycle phase.
func (t *Task) State() State {
	return State(t.state.Load())
}

// Bind always returns nil: the task offers no bindable interface.
func (t *Task) Bind(Request) Binder {
	return nil
}

// OnStart handles a start request. It logs the start announcement and the
// process identifier, then asks the host to stop the task. The stop request
// is the last thing it does.
func (t *Task) OnStart(req Request, invocationID int) error {
	if err := t.transition("onStart", canStart, StateStarted); err != nil {
		return err
	}
	t.starts.Inc()
	t.invocation.Store(int64(invocationID))

	t.logger.Log(platform.PriorityWarn, LogTag, MessageStart)
	pid := t.env.ProcessID()
	t.logger.Log(platform.PriorityWarn, LogTag, strconv.Itoa(pid))

	// The state must read stop_requested before the host sees the request:
	// a host running StopSelf inline destroys the task before we return.
	t.state.Store(int32(StateStopRequested))
	if t.host != nil {
		t.host.StopSelf(t.id)
	}
	return nil
}

// OnDestroy handles teardown. It runs at most once.
func (t *Task) OnDestroy() error {
	if err := t.transition("onDestroy", canDestroy, StateDestroyed); err != nil {
		return err
	}
	t.logger.Log(platform.PriorityWarn, LogTag, MessageStop)
	return nil
}

func (t *Task) transition(event string, allowed func(State) bool, to State) error {
	for {
		from := t.State()
		if !allowed(from) {
			sentinel := ErrReentrantStart
			if from == StateDestroyed {
				sentinel = ErrDestroyed
			}
			return &drifterrors.TransitionError{
				Component: "service",
				From:      from.String(),
				Event:     event,
				Err:       sentinel,
			}
		}
		if t.state.CompareAndSwap(int32(from), int32(to)) {
			return nil
		}
	}
}

// Info is a point-in-time view of a task.
type Info struct {
	ID               string
	State            State
	Starts           int
	LastInvocationID int
}

// Info returns the task's current state and counters.
func (t *Task) Info() Info {
	return Info{
		ID:               t.id,
		State:            t.State(),
		Starts:           int(t.starts.Load()),
		LastInvocationID: int(t.invocation.Load()),
	}
}
