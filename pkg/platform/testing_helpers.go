package platform

import "sync"

// NativeCall records one Go-to-native invocation.
type NativeCall struct {
	Channel string
	Method  string
	Args    any
}

// RecordingBridge is a NativeBridge that records every call and answers nil.
type RecordingBridge struct {
	mu    sync.Mutex
	calls []NativeCall
	// Err, when set, is returned from every call.
	Err error
}

// InvokeMethod records the call.
func (b *RecordingBridge) InvokeMethod(channel, method string, args []byte) ([]byte, error) {
	decoded, _ := DefaultCodec.Decode(args)
	b.mu.Lock()
	b.calls = append(b.calls, NativeCall{Channel: channel, Method: method, Args: decoded})
	b.mu.Unlock()
	if b.Err != nil {
		return nil, b.Err
	}
	return DefaultCodec.Encode(nil)
}

// Calls returns a copy of the recorded calls in order.
func (b *RecordingBridge) Calls() []NativeCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]NativeCall, len(b.calls))
	copy(out, b.calls)
	return out
}

// SetupTestBridge installs a RecordingBridge and a synchronous dispatch
// function for testing. The cleanup function should be testing.T.Cleanup or
// equivalent; it registers a teardown that calls ResetForTest.
//
//	bridge := platform.SetupTestBridge(t.Cleanup)
func SetupTestBridge(cleanup func(func())) *RecordingBridge {
	bridge := &RecordingBridge{}
	SetNativeBridge(bridge)
	RegisterDispatch(func(cb func()) { cb() })
	cleanup(ResetForTest)
	return bridge
}
