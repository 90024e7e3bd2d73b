package platform

import "go.uber.org/atomic"

// DispatchFunc schedules a callback on the host main thread.
type DispatchFunc func(callback func())

var dispatcher atomic.Pointer[DispatchFunc]

// RegisterDispatch installs fn as the main-thread scheduler, replacing any
// earlier one. A host runtime calls it when it attaches; nil uninstalls.
func RegisterDispatch(fn DispatchFunc) {
	if fn == nil {
		dispatcher.Store(nil)
		return
	}
	dispatcher.Store(&fn)
}

// Dispatch hands callback to the registered scheduler and returns without
// waiting for it to run. It reports false, and drops callback, when no
// scheduler is registered or callback is nil.
func Dispatch(callback func()) bool {
	fn := dispatcher.Load()
	if fn == nil || callback == nil {
		return false
	}
	(*fn)(callback)
	return true
}
