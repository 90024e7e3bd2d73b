package testing

import (
	"reflect"
	"testing"

	"github.com/go-drift/blocks/pkg/platform"
	"github.com/go-drift/blocks/pkg/widgets"
)

func TestJournalOrdering(t *testing.T) {
	j := NewJournal()
	var stopped []string
	j.OnStop = func(id string) { stopped = append(stopped, id) }

	j.Log(platform.PriorityWarn, "tag", "one")
	j.StopSelf("task")
	_ = j.SetContent(widgets.Button{Label: "b"})
	j.Log(platform.PriorityInfo, "tag", "two")

	want := []EventKind{EventLog, EventStopRequest, EventContent, EventLog}
	if got := j.Kinds(); !reflect.DeepEqual(got, want) {
		t.Errorf("Kinds() = %v, want %v", got, want)
	}
	if got := j.Messages(); !reflect.DeepEqual(got, []string{"one", "two"}) {
		t.Errorf("Messages() = %v", got)
	}
	if !reflect.DeepEqual(stopped, []string{"task"}) {
		t.Errorf("OnStop calls = %v", stopped)
	}
	if b, ok := j.Content().(widgets.Button); !ok || b.Label != "b" {
		t.Errorf("Content() = %#v", j.Content())
	}

	j.Reset()
	if len(j.Events()) != 0 || j.Content() != nil {
		t.Error("Reset should clear the journal")
	}
}

func TestEventKindString(t *testing.T) {
	for kind, want := range map[EventKind]string{
		EventLog:         "log",
		EventStopRequest: "stop",
		EventContent:     "content",
		EventKind(9):     "unknown",
	} {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", kind, got, want)
		}
	}
}

func TestFixedEnv(t *testing.T) {
	if got := FixedEnv(4242).ProcessID(); got != 4242 {
		t.Errorf("ProcessID() = %d", got)
	}
}
