// Package renderthread provides the designated rendering thread: a goroutine locked to a single
// OS thread that owns all swapchain work. Tasks executed on the thread receive a context that
// identifies it, which lets callees check thread affinity explicitly.
package renderthread

import (
	"context"
	"runtime"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"
)

// ErrStopped is returned when a task is submitted to a thread that is no longer running
var ErrStopped = errors.New("render thread has stopped")

// Task is a unit of work executed on the render thread. ctx is the thread's context and will
// satisfy Thread.IsCurrent.
type Task func(ctx context.Context)

type threadKey struct{}

const defaultQueueDepth int = 64

type Thread struct {
	logger  *slog.Logger
	tasks   chan Task
	stopped chan struct{}
	running atomic.Bool
}

// New creates a Thread that is not yet running. queueDepth is the number of tasks that can be
// pending before Post blocks; 0 selects a default.
func New(logger *slog.Logger, queueDepth int) *Thread {
	if queueDepth <= 0 {
		queueDepth = defaultQueueDepth
	}

	return &Thread{
		logger:  logger,
		tasks:   make(chan Task, queueDepth),
		stopped: make(chan struct{}),
	}
}

// Run locks the calling goroutine to its OS thread and executes posted tasks in order until ctx
// is cancelled. Tasks still queued at that point are dropped. Run may only be called once.
func (t *Thread) Run(ctx context.Context) error {
	if !t.running.CompareAndSwap(false, true) {
		return errors.New("render thread has already been started")
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(t.stopped)

	t.logger.Debug("Thread::Run")

	threadCtx := context.WithValue(ctx, threadKey{}, t)
	for {
		select {
		case <-ctx.Done():
			t.logger.Debug("Thread::Run stopping", slog.Int("DroppedTasks", len(t.tasks)))
			return ctx.Err()
		case task := <-t.tasks:
			task(threadCtx)
		}
	}
}

// Post queues a task without waiting for it to execute
func (t *Thread) Post(ctx context.Context, task Task) error {
	select {
	case <-t.stopped:
		return ErrStopped
	default:
	}

	select {
	case t.tasks <- task:
		return nil
	case <-t.stopped:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Do executes a task on the thread and waits for it to finish. If ctx already belongs to this
// thread, the task runs inline.
func (t *Thread) Do(ctx context.Context, task Task) error {
	if t.IsCurrent(ctx) {
		task(ctx)
		return nil
	}

	done := make(chan struct{})
	err := t.Post(ctx, func(threadCtx context.Context) {
		defer close(done)
		task(threadCtx)
	})
	if err != nil {
		return err
	}

	select {
	case <-done:
		return nil
	case <-t.stopped:
		// The task may have been the last thing executed before the thread stopped
		select {
		case <-done:
			return nil
		default:
			return ErrStopped
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsCurrent reports whether ctx was handed out by this thread to a task it is executing
func (t *Thread) IsCurrent(ctx context.Context) bool {
	if ctx == nil {
		return false
	}

	owner, ok := ctx.Value(threadKey{}).(*Thread)
	return ok && owner == t
}

// Stopped is closed once Run has returned
func (t *Thread) Stopped() <-chan struct{} {
	return t.stopped
}
