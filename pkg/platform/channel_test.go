package platform

import (
	stderrors "errors"
	"testing"
)

func TestHandleMethodCallRoundTrip(t *testing.T) {
	SetupTestBridge(t.Cleanup)

	ch := NewMethodChannel("drift/test")
	var gotMethod string
	var gotArgs Args
	ch.SetHandler(func(method string, args Args) (any, error) {
		gotMethod = method
		gotArgs = args
		return map[string]any{"ok": true}, nil
	})

	out, err := HandleMethodCall("drift/test", "onStart", []byte(`{"id":"task","invocationId":7}`))
	if err != nil {
		t.Fatalf("HandleMethodCall: %v", err)
	}
	if gotMethod != "onStart" {
		t.Errorf("method = %q, want onStart", gotMethod)
	}
	if id := gotArgs.String("id"); id != "task" {
		t.Errorf("id = %q, want task", id)
	}
	if n, ok := gotArgs.Int("invocationId"); !ok || n != 7 {
		t.Errorf("invocationId = %d, %v; want 7, true", n, ok)
	}
	if string(out) != `{"ok":true}` {
		t.Errorf("result = %s", out)
	}
}

func TestHandleMethodCallErrors(t *testing.T) {
	SetupTestBridge(t.Cleanup)

	if _, err := HandleMethodCall("drift/missing", "x", nil); !stderrors.Is(err, ErrChannelNotFound) {
		t.Errorf("unknown channel: err = %v, want ErrChannelNotFound", err)
	}

	NewMethodChannel("drift/nohandler")
	if _, err := HandleMethodCall("drift/nohandler", "x", nil); !stderrors.Is(err, ErrMethodNotFound) {
		t.Errorf("no handler: err = %v, want ErrMethodNotFound", err)
	}

	ch := NewMethodChannel("drift/args")
	ch.SetHandler(func(string, Args) (any, error) { return nil, nil })
	if _, err := HandleMethodCall("drift/args", "x", []byte(`[1,2]`)); !stderrors.Is(err, ErrInvalidArguments) {
		t.Errorf("array args: err = %v, want ErrInvalidArguments", err)
	}
	if _, err := HandleMethodCall("drift/args", "x", []byte(`{`)); !stderrors.Is(err, ErrInvalidArguments) {
		t.Errorf("malformed JSON: err = %v, want ErrInvalidArguments", err)
	}
}

func TestInvokeWithoutBridge(t *testing.T) {
	t.Cleanup(ResetForTest)
	ResetForTest()

	ch := NewMethodChannel("drift/test")
	if _, err := ch.Invoke("stopSelf", nil); !stderrors.Is(err, ErrPlatformUnavailable) {
		t.Errorf("err = %v, want ErrPlatformUnavailable", err)
	}
}

func TestInvokeRecordsCall(t *testing.T) {
	bridge := SetupTestBridge(t.Cleanup)

	ch := NewMethodChannel("drift/service")
	if _, err := ch.Invoke("stopSelf", map[string]any{"id": "sync"}); err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	calls := bridge.Calls()
	if len(calls) != 1 {
		t.Fatalf("got %d calls, want 1", len(calls))
	}
	if calls[0].Channel != "drift/service" || calls[0].Method != "stopSelf" {
		t.Errorf("call = %+v", calls[0])
	}
	if args := toArgs(calls[0].Args); args.String("id") != "sync" {
		t.Errorf("args = %v", calls[0].Args)
	}
}

func TestDispatch(t *testing.T) {
	t.Cleanup(ResetForTest)
	ResetForTest()

	if Dispatch(func() {}) {
		t.Error("Dispatch should fail without a registered function")
	}

	var queued []func()
	RegisterDispatch(func(cb func()) { queued = append(queued, cb) })
	ran := false
	if !Dispatch(func() { ran = true }) {
		t.Fatal("Dispatch should succeed once registered")
	}
	if Dispatch(nil) {
		t.Error("Dispatch(nil) should report false")
	}
	if ran {
		t.Error("callback must not run before the host drains its queue")
	}
	queued[0]()
	if !ran {
		t.Error("callback did not run")
	}

	RegisterDispatch(nil)
	if Dispatch(func() {}) {
		t.Error("Dispatch should fail after the function is removed")
	}
}

func TestArgsAccessors(t *testing.T) {
	args := Args{
		"s":   "x",
		"n":   float64(3),
		"m":   map[string]any{"k": "v"},
		"bad": true,
	}
	if args.String("missing") != "" || args.String("bad") != "" {
		t.Error("non-string values should read as empty")
	}
	if _, ok := args.Int("s"); ok {
		t.Error("string should not parse as int")
	}
	if m := args.Map("m"); m["k"] != "v" {
		t.Errorf("Map = %v", m)
	}
	var nilArgs Args
	if nilArgs.String("s") != "" || nilArgs.Map("m") != nil {
		t.Error("nil Args should be safe to read")
	}
}
