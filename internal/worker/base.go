package worker

import (
	"context"
	"sync"
	"time"

	"github.com/dhanushlnaik/mimisanv2/internal/logger"
)

// BaseWorker provides common functionality for background workers that manage timers
type BaseWorker struct {
	mu       sync.Mutex
	timers   map[string]*time.Timer
	closed   bool
	shutdown chan struct{}
	wg       sync.WaitGroup
}

func (w *BaseWorker) init() {
	if w.timers == nil {
		w.timers = make(map[string]*time.Timer)
	}
	if w.shutdown == nil {
		w.shutdown = make(chan struct{})
	}
}

// registerTimer replaces the named timer. After shutdown the timer is stopped instead.
func (w *BaseWorker) registerTimer(name string, timer *time.Timer) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		timer.Stop()
		return
	}
	if old, ok := w.timers[name]; ok {
		old.Stop()
	}
	w.timers[name] = timer
}

func (w *BaseWorker) isShutdown() bool {
	select {
	case <-w.shutdown:
		return true
	default:
		return false
	}
}

// track runs fn in a goroutine that shutdown waits for
func (w *BaseWorker) track(fn func()) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		fn()
	}()
}

func (w *BaseWorker) shutdownInternal(ctx context.Context, workerName string) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down " + workerName)

	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.shutdown)
	}
	for name, timer := range w.timers {
		timer.Stop()
		log.Info("Cancelled pending "+workerName+" execution", "job", name)
	}
	w.timers = make(map[string]*time.Timer)
	w.mu.Unlock()

	// Wait for in-flight executions
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(workerName + " shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn(workerName + " shutdown timeout")
		return ctx.Err()
	}
}
