package platform

import (
	"fmt"
	"sync"

	"github.com/go-drift/blocks/pkg/errors"
)

type channelRegistry struct {
	channels map[string]*MethodChannel
	mu       sync.RWMutex
}

var registry = &channelRegistry{
	channels: make(map[string]*MethodChannel),
}

func (r *channelRegistry) register(name string, ch *MethodChannel) {
	r.mu.Lock()
	r.channels[name] = ch
	r.mu.Unlock()
}

func (r *channelRegistry) lookup(name string) *MethodChannel {
	r.mu.RLock()
	ch := r.channels[name]
	r.mu.RUnlock()
	return ch
}

// NativeBridge is the interface to native platform code.
type NativeBridge interface {
	// InvokeMethod calls a method on the native side.
	InvokeMethod(channel, method string, args []byte) ([]byte, error)
}

var (
	bridgeMu     sync.RWMutex
	nativeBridge NativeBridge
)

// SetNativeBridge installs the native bridge implementation.
// Called by the embedding host during initialization.
func SetNativeBridge(bridge NativeBridge) {
	bridgeMu.Lock()
	nativeBridge = bridge
	bridgeMu.Unlock()
}

func currentBridge() NativeBridge {
	bridgeMu.RLock()
	defer bridgeMu.RUnlock()
	return nativeBridge
}

func invokeNative(channel, method string, args any) (any, error) {
	bridge := currentBridge()
	if bridge == nil {
		return nil, ErrPlatformUnavailable
	}

	argsData, err := DefaultCodec.Encode(args)
	if err != nil {
		return nil, err
	}

	resultData, err := bridge.InvokeMethod(channel, method, argsData)
	if err != nil {
		return nil, err
	}

	return DefaultCodec.Decode(resultData)
}

// HandleMethodCall is called from the bridge when native invokes a Go method.
func HandleMethodCall(channel, method string, argsData []byte) ([]byte, error) {
	ch := registry.lookup(channel)
	if ch == nil {
		err := fmt.Errorf("%w: %s", ErrChannelNotFound, channel)
		errors.ReportOp("platform.HandleMethodCall", errors.KindPlatform, channel, err)
		return nil, err
	}

	args, err := decodeArgs(channel, argsData)
	if err != nil {
		return nil, err
	}

	result, err := ch.handleCall(method, args)
	if err != nil {
		return nil, err
	}

	return DefaultCodec.Encode(result)
}

// ResetForTest clears the native bridge, the dispatch function and every
// channel handler. This should only be called from tests.
func ResetForTest() {
	SetNativeBridge(nil)

	registry.mu.Lock()
	registry.channels = make(map[string]*MethodChannel)
	registry.mu.Unlock()

	RegisterDispatch(nil)
}
