package host

import (
	"context"
	"sync"

	"github.com/go-drift/blocks/pkg/errors"
)

// mainQueue is the host's sequential execution context. Callbacks posted
// to it run one at a time, in posting order, on whichever goroutine drains it.
type mainQueue struct {
	mu      sync.Mutex
	pending []func()
	closed  bool
	notify  chan struct{}
}

func newMainQueue() *mainQueue {
	return &mainQueue{notify: make(chan struct{}, 1)}
}

// post appends fn and returns immediately. It never blocks, so callbacks
// running on the queue may post more work.
func (q *mainQueue) post(fn func()) bool {
	if fn == nil {
		return false
	}
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.pending = append(q.pending, fn)
	q.mu.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
	return true
}

func (q *mainQueue) pop() (func(), bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil, false
	}
	fn := q.pending[0]
	q.pending[0] = nil
	q.pending = q.pending[1:]
	return fn, true
}

// drain runs callbacks until the queue is empty, including callbacks posted
// while draining, and returns how many ran.
func (q *mainQueue) drain() int {
	n := 0
	for {
		fn, ok := q.pop()
		if !ok {
			return n
		}
		runCallback(fn)
		n++
	}
}

func runCallback(fn func()) {
	defer errors.Recover("host.dispatch")
	fn()
}

func (q *mainQueue) run(ctx context.Context) error {
	for {
		q.drain()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-q.notify:
		}
	}
}

func (q *mainQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

func (q *mainQueue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
}
