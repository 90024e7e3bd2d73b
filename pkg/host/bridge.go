package host

import (
	stderrors "errors"

	"github.com/go-drift/blocks/pkg/errors"
	"github.com/go-drift/blocks/pkg/platform"
	"github.com/go-drift/blocks/pkg/screen"
	"github.com/go-drift/blocks/pkg/service"
)

// Channel names used between the runtime and native code.
const (
	ServiceChannel  = "drift/service"
	ActivityChannel = "drift/activity"
)

var (
	// ErrUnknownComponent is returned for callbacks naming a component the
	// runtime does not hold.
	ErrUnknownComponent = stderrors.New("unknown component")
	// ErrNoRenderer is returned when a screen is created with no renderer
	// configured and no native host attached.
	ErrNoRenderer = stderrors.New("no renderer available")
)

// Attach connects the runtime to native code. It registers the service
// and activity channels and points platform.Dispatch at the main queue.
// Unless Config.Logger was set, services created from now on also write
// their records to the native log channel.
// Lifecycle calls from native return at once; the callbacks themselves run
// when the queue is drained.
//
// Native to Go:
//
//	drift/service   onBind {id, action, extras}
//	drift/service   onStart {id, invocationId, action, extras}
//	drift/service   onDestroy {id}
//	drift/activity  onCreate {id, savedState}
//	drift/activity  onDestroy {id}
//
// Go to native:
//
//	drift/service   stopSelf {id}
//	drift/activity  setContentView {id, content}
//	drift/log       log {priority, tag, message}
func (r *Runtime) Attach() {
	serviceCh := platform.NewMethodChannel(ServiceChannel)
	activityCh := platform.NewMethodChannel(ActivityChannel)
	serviceCh.SetHandler(r.handleService)
	activityCh.SetHandler(r.handleActivity)

	r.mu.Lock()
	r.serviceCh = serviceCh
	r.activityCh = activityCh
	if r.ownSink {
		r.sink = platform.MultiLogger{platform.SlogLogger{Logger: r.log}, platform.NewChannelLogger()}
	}
	r.mu.Unlock()

	platform.RegisterDispatch(func(cb func()) { r.Post(cb) })
}

func requestFrom(args platform.Args) service.Request {
	return service.Request{Action: args.String("action"), Extras: args.Map("extras")}
}

func (r *Runtime) handleService(method string, args platform.Args) (any, error) {
	id := args.String("id")
	if id == "" {
		return nil, r.parseError(ServiceChannel, method, args)
	}
	switch method {
	case "onBind":
		// Binding answers synchronously: there is never an interface to hand out.
		return map[string]any{"binder": r.BindService(id, requestFrom(args))}, nil
	case "onStart":
		invocationID, ok := args.Int("invocationId")
		if !ok {
			return nil, r.parseError(ServiceChannel, method, args)
		}
		req := requestFrom(args)
		platform.Dispatch(func() {
			if err := r.StartService(id, req, invocationID); err != nil {
				r.reportLifecycle("host.onStart", ServiceChannel, err)
			}
		})
		return nil, nil
	case "onDestroy":
		platform.Dispatch(func() {
			if err := r.DestroyService(id); err != nil {
				r.reportLifecycle("host.onDestroy", ServiceChannel, err)
			}
		})
		return nil, nil
	default:
		return nil, platform.ErrMethodNotFound
	}
}

func (r *Runtime) handleActivity(method string, args platform.Args) (any, error) {
	id := args.String("id")
	if id == "" {
		return nil, r.parseError(ActivityChannel, method, args)
	}
	switch method {
	case "onCreate":
		saved := screen.SavedState(args.Map("savedState"))
		platform.Dispatch(func() {
			if _, err := r.CreateScreen(id, saved); err != nil {
				errors.ReportOp("host.onCreate", errors.KindRender, ActivityChannel, err)
			}
		})
		return nil, nil
	case "onDestroy":
		platform.Dispatch(func() {
			if err := r.DestroyScreen(id); err != nil {
				r.reportLifecycle("host.onDestroy", ActivityChannel, err)
			}
		})
		return nil, nil
	default:
		return nil, platform.ErrMethodNotFound
	}
}

func (r *Runtime) parseError(channel, method string, args platform.Args) error {
	err := &errors.ParseError{Channel: channel, DataType: method, Got: map[string]any(args)}
	errors.ReportOp("host." + method, errors.KindParsing, channel, err)
	return platform.ErrInvalidArguments
}
