// Package pipeline implements the bounded, FIFO inter-stage queues the
// executor wires pipeline stages through, grounded on the channel and
// semaphore idioms of the teacher's worker dispatcher.
package pipeline

import "go.uber.org/zap"

// DefaultCapacity bounds a stage queue's buffered size, per spec §5
// ("should default to a small value (e.g., 64) to bound memory").
const DefaultCapacity = 64

// Object is one item flowing between pipeline stages: either a
// regular value or an error object produced by a faulted stage.
type Object struct {
	Value   any
	IsError bool
	Err     error
}

// Queue is a bounded, single-producer FIFO channel of Objects with an
// explicit completion signal, matching the "blocking take / blocking
// put / mark complete" suspension model of spec §5.
type Queue struct {
	ch     chan Object
	done   chan struct{}
	logger *zap.Logger
}

// NewQueue allocates a Queue with the given capacity. A non-positive
// capacity falls back to DefaultCapacity.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Queue{ch: make(chan Object, capacity), done: make(chan struct{}), logger: zap.NewNop()}
}

// SetLogger attaches a logger for diagnostics such as dropped
// post-close Puts. A nil logger is ignored.
func (q *Queue) SetLogger(logger *zap.Logger) {
	if logger != nil {
		q.logger = logger
	}
}

// Put enqueues an item, blocking while the queue is full. A Put
// arriving after Close is silently dropped and logged rather than
// sent on the closed channel, per spec §3.
func (q *Queue) Put(obj Object) {
	select {
	case <-q.done:
		q.logger.Warn("dropped pipeline object enqueued after queue close")
	default:
		select {
		case q.ch <- obj:
		case <-q.done:
			q.logger.Warn("dropped pipeline object enqueued after queue close")
		}
	}
}

// Close marks the queue complete: no further Puts are valid, and
// pending or future Takes will drain remaining buffered items before
// reporting end-of-stream. Safe to call more than once.
func (q *Queue) Close() {
	select {
	case <-q.done:
	default:
		close(q.done)
		close(q.ch)
	}
}

// Take blocks until an item is available or the queue is closed and
// drained, in which case ok is false.
func (q *Queue) Take() (Object, bool) {
	obj, ok := <-q.ch
	return obj, ok
}

// Channel exposes the underlying channel for use in select statements
// (e.g. alongside a context's cancellation channel).
func (q *Queue) Channel() <-chan Object {
	return q.ch
}
