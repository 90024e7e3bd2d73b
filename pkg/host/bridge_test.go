package host_test

import (
	"bytes"
	stderrors "errors"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/go-drift/blocks/pkg/errors"
	"github.com/go-drift/blocks/pkg/host"
	"github.com/go-drift/blocks/pkg/platform"
	"github.com/go-drift/blocks/pkg/service"
	hosttest "github.com/go-drift/blocks/pkg/testing"
)

func attached(t *testing.T, j *hosttest.Journal) (*host.Runtime, *platform.RecordingBridge, *[]*errors.HostError) {
	t.Helper()
	bridge := platform.SetupTestBridge(t.Cleanup)
	var reported []*errors.HostError
	errors.SetHandler(&captureHandler{onError: func(e *errors.HostError) { reported = append(reported, e) }})
	t.Cleanup(func() { errors.SetHandler(nil) })

	rt := host.New(host.Config{Env: hosttest.FixedEnv(31337), Logger: j})
	rt.Attach()
	return rt, bridge, &reported
}

func call(t *testing.T, channel, method, args string) error {
	t.Helper()
	_, err := platform.HandleMethodCall(channel, method, []byte(args))
	return err
}

func TestNativeStartAndDestroy(t *testing.T) {
	j := hosttest.NewJournal()
	rt, bridge, reported := attached(t, j)

	if err := call(t, host.ServiceChannel, "onStart", `{"id":"sync","invocationId":7}`); err != nil {
		t.Fatalf("onStart: %v", err)
	}
	if len(j.Messages()) != 0 {
		t.Fatal("callback should wait for the main queue")
	}
	rt.Drain()

	if got := j.Messages(); !reflect.DeepEqual(got, []string{service.MessageStart, "31337"}) {
		t.Errorf("records = %v", got)
	}
	calls := bridge.Calls()
	if len(calls) != 1 {
		t.Fatalf("native calls = %+v, want one stopSelf", calls)
	}
	if calls[0].Channel != host.ServiceChannel || calls[0].Method != "stopSelf" {
		t.Errorf("call = %+v", calls[0])
	}
	if args, _ := calls[0].Args.(map[string]any); args["id"] != "sync" {
		t.Errorf("stopSelf args = %v", calls[0].Args)
	}
	if rt.Pending() != 0 {
		t.Error("an attached runtime leaves the destroy to native code")
	}

	if err := call(t, host.ServiceChannel, "onDestroy", `{"id":"sync"}`); err != nil {
		t.Fatalf("onDestroy: %v", err)
	}
	rt.Drain()
	want := []string{service.MessageStart, "31337", service.MessageStop}
	if got := j.Messages(); !reflect.DeepEqual(got, want) {
		t.Errorf("records = %v, want %v", got, want)
	}
	if len(*reported) != 0 {
		t.Errorf("unexpected reports: %v", *reported)
	}
}

func TestNativeBind(t *testing.T) {
	_, _, _ = attached(t, hosttest.NewJournal())
	out, err := platform.HandleMethodCall(host.ServiceChannel, "onBind", []byte(`{"id":"sync","action":"x"}`))
	if err != nil {
		t.Fatalf("onBind: %v", err)
	}
	if string(out) != `{"binder":null}` {
		t.Errorf("onBind = %s", out)
	}
}

func TestNativeStartMissingInvocationID(t *testing.T) {
	j := hosttest.NewJournal()
	rt, _, reported := attached(t, j)

	err := call(t, host.ServiceChannel, "onStart", `{"id":"sync"}`)
	if !stderrors.Is(err, platform.ErrInvalidArguments) {
		t.Fatalf("err = %v, want ErrInvalidArguments", err)
	}
	if rt.Drain() != 0 || len(j.Events()) != 0 {
		t.Error("a rejected call should not reach the task")
	}
	if len(*reported) != 1 || (*reported)[0].Kind != errors.KindParsing {
		t.Errorf("reported = %v", *reported)
	}
}

func TestNativeCallErrors(t *testing.T) {
	_, _, _ = attached(t, hosttest.NewJournal())

	tests := []struct {
		name    string
		channel string
		method  string
		args    string
		want    error
	}{
		{"missing id", host.ServiceChannel, "onDestroy", `{}`, platform.ErrInvalidArguments},
		{"unknown service method", host.ServiceChannel, "onRebind", `{"id":"a"}`, platform.ErrMethodNotFound},
		{"unknown activity method", host.ActivityChannel, "onPause", `{"id":"a"}`, platform.ErrMethodNotFound},
		{"unknown channel", "drift/receiver", "onReceive", `{"id":"a"}`, platform.ErrChannelNotFound},
		{"non-map args", host.ActivityChannel, "onCreate", `[1,2]`, platform.ErrInvalidArguments},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := call(t, tt.channel, tt.method, tt.args); !stderrors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNativeDestroyUnknownIsReported(t *testing.T) {
	rt, _, reported := attached(t, hosttest.NewJournal())
	if err := call(t, host.ServiceChannel, "onDestroy", `{"id":"ghost"}`); err != nil {
		t.Fatal(err)
	}
	rt.Drain()
	if len(*reported) != 1 {
		t.Fatalf("reported = %v", *reported)
	}
	got := (*reported)[0]
	if got.Kind != errors.KindLifecycle || !stderrors.Is(got, host.ErrUnknownComponent) {
		t.Errorf("report = %v", got)
	}
}

func TestNativeCreateScreenSetsContentView(t *testing.T) {
	rt, bridge, reported := attached(t, hosttest.NewJournal())

	if err := call(t, host.ActivityChannel, "onCreate", `{"id":"main","savedState":null}`); err != nil {
		t.Fatalf("onCreate: %v", err)
	}
	rt.Drain()

	calls := bridge.Calls()
	if len(calls) != 1 || calls[0].Channel != host.ActivityChannel || calls[0].Method != "setContentView" {
		t.Fatalf("calls = %+v", calls)
	}
	args, _ := calls[0].Args.(map[string]any)
	if args["id"] != "main" {
		t.Errorf("id = %v", args["id"])
	}
	content, _ := args["content"].(map[string]any)
	if content["type"] != "flex" || content["axis"] != "vertical" {
		t.Errorf("content = %v", content)
	}
	children, _ := content["children"].([]any)
	if len(children) != 1 {
		t.Fatalf("children = %v", children)
	}
	child, _ := children[0].(map[string]any)
	widget, _ := child["widget"].(map[string]any)
	if widget["type"] != "button" || widget["label"] != "Button!" {
		t.Errorf("widget = %v", widget)
	}
	if child["width"] != "wrap_content" || child["height"] != "wrap_content" {
		t.Errorf("params = %v", child)
	}

	if c, ok := rt.Screen("main"); !ok || c.SavedState() != nil {
		t.Errorf("screen = %v, %v", c, ok)
	}

	if err := call(t, host.ActivityChannel, "onDestroy", `{"id":"main"}`); err != nil {
		t.Fatal(err)
	}
	rt.Drain()
	if _, ok := rt.Screen("main"); ok {
		t.Error("screen should be forgotten after onDestroy")
	}
	if len(*reported) != 0 {
		t.Errorf("unexpected reports: %v", *reported)
	}
}

func TestNativeRenderFailureIsReported(t *testing.T) {
	rt, bridge, reported := attached(t, hosttest.NewJournal())
	bridge.Err = stderrors.New("surface gone")

	if err := call(t, host.ActivityChannel, "onCreate", `{"id":"main"}`); err != nil {
		t.Fatal(err)
	}
	rt.Drain()
	if len(*reported) != 1 || (*reported)[0].Kind != errors.KindRender {
		t.Errorf("reported = %v", *reported)
	}
}

func TestAttachedTaskWritesNativeLog(t *testing.T) {
	bridge := platform.SetupTestBridge(t.Cleanup)
	var logs bytes.Buffer
	rt := host.New(host.Config{
		Env: hosttest.FixedEnv(4242),
		Log: slog.New(slog.NewTextHandler(&logs, nil)),
	})
	rt.Attach()

	if err := call(t, host.ServiceChannel, "onStart", `{"id":"s","invocationId":7}`); err != nil {
		t.Fatalf("onStart: %v", err)
	}
	rt.Drain()

	type step struct{ channel, method, detail string }
	var got []step
	for _, c := range bridge.Calls() {
		args, _ := c.Args.(map[string]any)
		detail, _ := args["message"].(string)
		if c.Method == "stopSelf" {
			detail, _ = args["id"].(string)
		}
		got = append(got, step{c.Channel, c.Method, detail})
	}
	want := []step{
		{platform.LogChannelName, "log", service.MessageStart},
		{platform.LogChannelName, "log", "4242"},
		{host.ServiceChannel, "stopSelf", "s"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("native calls = %+v, want %+v", got, want)
	}
	if args, _ := bridge.Calls()[0].Args.(map[string]any); args["tag"] != service.LogTag {
		t.Errorf("log tag = %v, want %q", args["tag"], service.LogTag)
	}
	if !strings.Contains(logs.String(), "service start") {
		t.Errorf("records should still reach slog:\n%s", logs.String())
	}
}

func TestScreenCreatedBeforeAttachRendersAfter(t *testing.T) {
	rt := host.New(host.Config{Env: hosttest.FixedEnv(1), Logger: hosttest.NewJournal()})
	if _, err := rt.CreateScreen("main", nil); !stderrors.Is(err, host.ErrNoRenderer) {
		t.Fatalf("err = %v, want ErrNoRenderer", err)
	}

	bridge := platform.SetupTestBridge(t.Cleanup)
	rt.Attach()
	if err := call(t, host.ActivityChannel, "onCreate", `{"id":"main"}`); err != nil {
		t.Fatal(err)
	}
	rt.Drain()

	calls := bridge.Calls()
	if len(calls) != 1 || calls[0].Method != "setContentView" {
		t.Errorf("calls = %+v, want one setContentView", calls)
	}
}
