package errors

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"go.uber.org/atomic"
)

// handlerSlot boxes the handler so the atomic pointer always holds one type.
type handlerSlot struct {
	h ErrorHandler
}

var current = atomic.NewPointer(&handlerSlot{h: &LogHandler{}})

// SetHandler installs h as the process-wide error handler and returns the
// handler it replaced. A nil h restores a LogHandler writing to stderr.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	return current.Swap(&handlerSlot{h: h}).h
}

// Handler returns the installed error handler.
func Handler() ErrorHandler {
	return current.Load().h
}

// Report stamps err with the current time if it has none and passes it to
// the installed handler. A nil err is ignored.
func Report(err *HostError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportOp reports err as a HostError for op and returns what was reported.
// A nil err reports nothing and returns nil.
func ReportOp(op string, kind ErrorKind, channel string, err error) *HostError {
	if err == nil {
		return nil
	}
	he := &HostError{Op: op, Kind: kind, Channel: channel, Err: err}
	Report(he)
	return he
}

// ReportPanic passes a recovered panic to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	Handler().HandlePanic(err)
}

// Recover reports a panic in progress as a PanicError for op. It only
// works when deferred directly:
//
//	defer errors.Recover("host.dispatch")
func Recover(op string) {
	r := recover()
	if r == nil {
		return
	}
	ReportPanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	})
}

// CaptureStack formats the stack of its caller's caller, one
// "function\n\tfile:line" entry per frame.
func CaptureStack() string {
	pcs := make([]uintptr, 32)
	pcs = pcs[:runtime.Callers(3, pcs)]
	if len(pcs) == 0 {
		return ""
	}

	var sb strings.Builder
	frames := runtime.CallersFrames(pcs)
	for {
		f, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		if !more {
			return sb.String()
		}
	}
}
