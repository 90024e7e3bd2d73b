package testing

import (
	"sync"

	"github.com/go-drift/blocks/pkg/platform"
	"github.com/go-drift/blocks/pkg/widgets"
)

// EventKind classifies a journal entry.
type EventKind int

const (
	// EventLog is a diagnostic record.
	EventLog EventKind = iota
	// EventStopRequest is a task asking its host to stop it.
	EventStopRequest
	// EventContent is screen content being installed.
	EventContent
)

func (k EventKind) String() string {
	switch k {
	case EventLog:
		return "log"
	case EventStopRequest:
		return "stop"
	case EventContent:
		return "content"
	default:
		return "unknown"
	}
}

// Event is one journal entry. Only the fields of its kind are set.
type Event struct {
	Kind     EventKind
	Priority platform.Priority
	Tag      string
	Message  string
	TaskID   string
	Content  widgets.Widget
}

// Journal records host-visible events in order.
type Journal struct {
	// OnStop, when set, runs after a stop request is recorded. Tests use it
	// to emulate a host that tears the task down immediately.
	OnStop func(id string)

	mu     sync.Mutex
	events []Event
}

// NewJournal returns an empty journal.
func NewJournal() *Journal {
	return &Journal{}
}

func (j *Journal) add(e Event) {
	j.mu.Lock()
	j.events = append(j.events, e)
	j.mu.Unlock()
}

// Log records a diagnostic record.
func (j *Journal) Log(priority platform.Priority, tag, message string) {
	j.add(Event{Kind: EventLog, Priority: priority, Tag: tag, Message: message})
}

// StopSelf records a stop request and then runs OnStop.
func (j *Journal) StopSelf(id string) {
	j.add(Event{Kind: EventStopRequest, TaskID: id})
	if j.OnStop != nil {
		j.OnStop(id)
	}
}

// SetContent records installed content. It never fails.
func (j *Journal) SetContent(root widgets.Widget) error {
	j.add(Event{Kind: EventContent, Content: root})
	return nil
}

// Events returns a copy of every entry in order.
func (j *Journal) Events() []Event {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]Event, len(j.events))
	copy(out, j.events)
	return out
}

// Filter returns the entries of the given kind in order.
func (j *Journal) Filter(kind EventKind) []Event {
	var out []Event
	for _, e := range j.Events() {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Messages returns the messages of every diagnostic record in order.
func (j *Journal) Messages() []string {
	var out []string
	for _, e := range j.Filter(EventLog) {
		out = append(out, e.Message)
	}
	return out
}

// Kinds returns the kind of every entry in order.
func (j *Journal) Kinds() []EventKind {
	events := j.Events()
	out := make([]EventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}

// Content returns the most recently installed content, or nil.
func (j *Journal) Content() widgets.Widget {
	events := j.Filter(EventContent)
	if len(events) == 0 {
		return nil
	}
	return events[len(events)-1].Content
}

// Reset discards every entry.
func (j *Journal) Reset() {
	j.mu.Lock()
	j.events = nil
	j.mu.Unlock()
}

// FixedEnv returns an environment that always reports pid.
func FixedEnv(pid int) platform.EnvInfo {
	return platform.EnvFunc(func() int { return pid })
}
