// Package schedule keeps background tasks keyed by session so that the owner
// can replace or cancel them explicitly.
package schedule

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

type task struct {
	id     uint64
	cancel context.CancelFunc
	done   chan struct{}
}

// Registry runs at most one task per key
type Registry struct {
	mu     sync.Mutex
	tasks  map[string]*task
	nextID uint64
	wg     sync.WaitGroup
	closed bool
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		tasks: make(map[string]*task),
	}
}

// Go starts fn for key, cancelling any task already running under that key.
// fn must return once its context is done. Go returns false after Close.
func (r *Registry) Go(key string, fn func(ctx context.Context)) bool {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return false
	}
	if existing, ok := r.tasks[key]; ok {
		existing.cancel()
		delete(r.tasks, key)
		log.Debug().Str("key", key).Uint64("task_id", existing.id).Msg("replaced scheduled task")
	}

	r.nextID++
	ctx, cancel := context.WithCancel(context.Background())
	t := &task{id: r.nextID, cancel: cancel, done: make(chan struct{})}
	r.tasks[key] = t
	r.wg.Add(1)
	r.mu.Unlock()

	go func() {
		defer r.wg.Done()
		defer close(t.done)
		defer r.release(key, t.id)
		fn(ctx)
	}()
	return true
}

// release drops the entry for key if it still belongs to the finished task
func (r *Registry) release(key string, id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.tasks[key]; ok && t.id == id {
		t.cancel()
		delete(r.tasks, key)
	}
}

// Cancel stops the task running under key. It reports whether one was running.
func (r *Registry) Cancel(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[key]
	if !ok {
		return false
	}
	t.cancel()
	delete(r.tasks, key)
	return true
}

// CancelAndWait stops the task under key and blocks until it has returned
func (r *Registry) CancelAndWait(key string) bool {
	r.mu.Lock()
	t, ok := r.tasks[key]
	if ok {
		t.cancel()
		delete(r.tasks, key)
	}
	r.mu.Unlock()

	if ok {
		<-t.done
	}
	return ok
}

// Running reports whether a task is registered under key
func (r *Registry) Running(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.tasks[key]
	return ok
}

// Close cancels every task and waits for all of them to return
func (r *Registry) Close() {
	r.mu.Lock()
	r.closed = true
	for key, t := range r.tasks {
		t.cancel()
		delete(r.tasks, key)
	}
	r.mu.Unlock()

	r.wg.Wait()
}
