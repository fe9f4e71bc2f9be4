package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRegistry_CancelStopsTask(t *testing.T) {
	r := NewRegistry()
	defer r.Close()

	stopped := make(chan struct{})
	require.True(t, r.Go("session-1", func(ctx context.Context) {
		<-ctx.Done()
		close(stopped)
	}))
	assert.True(t, r.Running("session-1"))

	assert.True(t, r.Cancel("session-1"))
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("task did not observe cancellation")
	}
	assert.False(t, r.Running("session-1"))
	assert.False(t, r.Cancel("session-1"))
}

func TestRegistry_GoReplacesExistingTask(t *testing.T) {
	r := NewRegistry()
	defer r.Close()

	first := make(chan struct{})
	r.Go("session-1", func(ctx context.Context) {
		<-ctx.Done()
		close(first)
	})
	r.Go("session-1", func(ctx context.Context) {
		<-ctx.Done()
	})

	select {
	case <-first:
	case <-time.After(time.Second):
		t.Fatal("first task was not cancelled by its replacement")
	}
	assert.True(t, r.Running("session-1"))
}

func TestRegistry_FinishedTaskIsReleased(t *testing.T) {
	r := NewRegistry()
	defer r.Close()

	r.Go("session-1", func(ctx context.Context) {})
	assert.Eventually(t, func() bool {
		return !r.Running("session-1")
	}, time.Second, 5*time.Millisecond)
}

func TestRegistry_CancelAndWait(t *testing.T) {
	r := NewRegistry()
	defer r.Close()

	var observed bool
	r.Go("session-1", func(ctx context.Context) {
		<-ctx.Done()
		observed = true
	})

	assert.True(t, r.CancelAndWait("session-1"))
	assert.True(t, observed)
}

func TestRegistry_CloseWaitsAndRefusesNewTasks(t *testing.T) {
	r := NewRegistry()

	for _, key := range []string{"a", "b", "c"} {
		r.Go(key, func(ctx context.Context) {
			<-ctx.Done()
		})
	}
	r.Close()

	assert.False(t, r.Running("a"))
	assert.False(t, r.Go("d", func(ctx context.Context) {}))
}
