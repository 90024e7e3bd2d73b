// Package host is the runtime that drives services and screens.
//
// A [Runtime] owns the sequential main-thread queue every lifecycle
// callback runs on. It creates components on demand, delivers their
// callbacks, and carries out stop requests later, from the queue, after the
// requesting callback has returned.
//
// Embedded in a native app, the runtime is reached through two platform
// channels (see [Runtime.Attach]). In tests and in the blocks CLI it is
// driven directly.
package host

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/go-drift/blocks/pkg/errors"
	"github.com/go-drift/blocks/pkg/platform"
	"github.com/go-drift/blocks/pkg/rendering"
	"github.com/go-drift/blocks/pkg/screen"
	"github.com/go-drift/blocks/pkg/service"
	"github.com/go-drift/blocks/pkg/widgets"
)

// Config holds the collaborators handed to every component.
type Config struct {
	// Env is given to services. Defaults to platform.SystemEnv.
	Env platform.EnvInfo
	// Logger is the services' diagnostic sink. Defaults to platform.SlogLogger,
	// joined by the native log channel once attached.
	Logger platform.Logger
	// Renderer returns the renderer for a screen. Defaults to a
	// rendering.ChannelRenderer on the activity channel once attached.
	Renderer func(screenID string) rendering.Renderer
	// Log receives the runtime's own debug records. Defaults to slog.Default().
	Log *slog.Logger
	// Registerer, when set, receives the runtime's metrics.
	Registerer prometheus.Registerer
}

// Runtime drives services and screens on one sequential queue.
type Runtime struct {
	cfg     Config
	queue   *mainQueue
	log     *slog.Logger
	metrics *Metrics

	mu       sync.Mutex
	sink     platform.Logger
	ownSink  bool
	services map[string]*service.Task
	screens  map[string]*screen.Controller

	serviceCh  *platform.MethodChannel
	activityCh *platform.MethodChannel
}

// New returns a runtime with an empty queue.
func New(cfg Config) *Runtime {
	if cfg.Env == nil {
		cfg.Env = platform.SystemEnv{}
	}
	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}
	sink, ownSink := cfg.Logger, cfg.Logger == nil
	if ownSink {
		sink = platform.SlogLogger{Logger: log}
	}
	r := &Runtime{
		cfg:      cfg,
		queue:    newMainQueue(),
		log:      log,
		sink:     sink,
		ownSink:  ownSink,
		services: make(map[string]*service.Task),
		screens:  make(map[string]*screen.Controller),
	}
	if cfg.Registerer != nil {
		r.metrics = NewMetrics(cfg.Registerer)
		cfg.Registerer.MustRegister(queueDepth(r))
	}
	return r
}

// Post schedules fn on the main queue and returns immediately.
// It reports false after Close or for a nil fn.
func (r *Runtime) Post(fn func()) bool {
	return r.queue.post(fn)
}

// Drain runs queued callbacks on the calling goroutine until the queue is
// empty and returns how many ran.
func (r *Runtime) Drain() int {
	return r.queue.drain()
}

// Pending returns the number of queued callbacks.
func (r *Runtime) Pending() int {
	return r.queue.len()
}

// Run drains the queue as work arrives until ctx is done.
func (r *Runtime) Run(ctx context.Context) error {
	return r.queue.run(ctx)
}

// Close stops accepting new callbacks. Queued callbacks can still be drained.
func (r *Runtime) Close() {
	r.queue.close()
}

func (r *Runtime) task(id string) *service.Task {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.services[id]
	if !ok {
		t = service.New(service.Config{
			ID:     id,
			Host:   r,
			Env:    r.cfg.Env,
			Logger: r.sink,
		})
		r.services[id] = t
	}
	return t
}

// Service returns the live task with the given id.
func (r *Runtime) Service(id string) (*service.Task, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.services[id]
	return t, ok
}

// Services returns a snapshot of every live task.
func (r *Runtime) Services() []service.Info {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]service.Info, 0, len(r.services))
	for _, t := range r.services {
		out = append(out, t.Info())
	}
	return out
}

// BindService delivers a bind request, creating the task if needed.
func (r *Runtime) BindService(id string, req service.Request) service.Binder {
	b := r.task(id).Bind(req)
	r.metrics.observe("service", "onBind", nil)
	return b
}

// StartService delivers a start request, creating the task if needed.
// Call it from the main queue.
func (r *Runtime) StartService(id string, req service.Request, invocationID int) error {
	r.log.Debug("start service", "id", id, "invocation", invocationID)
	err := r.task(id).OnStart(req, invocationID)
	r.metrics.observe("service", "onStart", err)
	return err
}

// DestroyService delivers the destroy callback and forgets the task.
// Call it from the main queue.
func (r *Runtime) DestroyService(id string) error {
	t, ok := r.Service(id)
	if !ok {
		return fmt.Errorf("service %q: %w", id, ErrUnknownComponent)
	}
	r.log.Debug("destroy service", "id", id)
	err := t.OnDestroy()
	r.metrics.observe("service", "onDestroy", err)

	r.mu.Lock()
	if r.services[id] == t {
		delete(r.services, id)
	}
	r.mu.Unlock()
	return err
}

// StopSelf implements service.Host. When attached to a native host the
// request is forwarded there and native code delivers onDestroy later.
// Otherwise the destroy is queued and runs after the current callback.
func (r *Runtime) StopSelf(id string) {
	r.metrics.stopRequested()
	if ch := r.channel(); ch != nil {
		if _, err := ch.Invoke("stopSelf", map[string]any{"id": id}); err != nil {
			errors.ReportOp("host.StopSelf", errors.KindPlatform, ch.Name(), err)
		}
		return
	}
	r.Post(func() {
		if err := r.DestroyService(id); err != nil {
			r.reportLifecycle("host.StopSelf", "", err)
		}
	})
}

func (r *Runtime) channel() *platform.MethodChannel {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.serviceCh
}

func (r *Runtime) renderer(id string) rendering.Renderer {
	if r.cfg.Renderer != nil {
		return r.cfg.Renderer(id)
	}
	r.mu.Lock()
	ch := r.activityCh
	r.mu.Unlock()
	if ch == nil {
		return rendering.RendererFunc(func(widgets.Widget) error { return ErrNoRenderer })
	}
	return rendering.NewChannelRenderer(ch, id)
}

// CreateScreen creates a screen controller and delivers its create callback.
// Creating an existing screen again rebuilds its content. The renderer is
// looked up on every install, so a screen created before Attach reaches the
// native host once attached.
func (r *Runtime) CreateScreen(id string, saved screen.SavedState) (*screen.Controller, error) {
	r.mu.Lock()
	c, ok := r.screens[id]
	if !ok {
		c = screen.New(id, rendering.RendererFunc(func(root widgets.Widget) error {
			return r.renderer(id).SetContent(root)
		}))
		r.screens[id] = c
	}
	r.mu.Unlock()
	r.log.Debug("create screen", "id", id)
	err := c.OnCreate(saved)
	r.metrics.observe("screen", "onCreate", err)
	return c, err
}

// Screen returns the live screen with the given id.
func (r *Runtime) Screen(id string) (*screen.Controller, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.screens[id]
	return c, ok
}

// DestroyScreen delivers the destroy callback and forgets the screen.
func (r *Runtime) DestroyScreen(id string) error {
	r.mu.Lock()
	c, ok := r.screens[id]
	delete(r.screens, id)
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("screen %q: %w", id, ErrUnknownComponent)
	}
	c.OnDestroy()
	r.metrics.observe("screen", "onDestroy", nil)
	return nil
}

func (r *Runtime) reportLifecycle(op, channel string, err error) {
	errors.ReportOp(op, errors.KindLifecycle, channel, err)
}
