package eventbus

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"rating/internal/domain/event"
	"rating/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBus_EmitInRegistrationOrder(t *testing.T) {
	collector := metrics.NewCollector()
	bus := NewBus(discardLogger(), collector)

	var calls []string
	On(bus, event.CommentAdded, func(_ context.Context, p event.CommentAddedPayload) {
		calls = append(calls, "first:"+p.CommentID)
	})
	On(bus, event.CommentAdded, func(_ context.Context, p event.CommentAddedPayload) {
		calls = append(calls, "second:"+p.CommentID)
	})

	event.Emit(context.Background(), bus, event.CommentAdded, event.CommentAddedPayload{BuildingID: "b1", CommentID: "c1"})

	assert.Equal(t, []string{"first:c1", "second:c1"}, calls)
	assert.InDelta(t, 1, testutil.ToFloat64(collector.EventsEmitted.WithLabelValues("COMMENT_ADDED")), 0)
}

func TestBus_PanickingHandlerDoesNotStopFanOut(t *testing.T) {
	collector := metrics.NewCollector()
	bus := NewBus(discardLogger(), collector)

	reached := false
	On(bus, event.CommentAdded, func(context.Context, event.CommentAddedPayload) {
		panic("boom")
	})
	On(bus, event.CommentAdded, func(context.Context, event.CommentAddedPayload) {
		reached = true
	})

	assert.NotPanics(t, func() {
		event.Emit(context.Background(), bus, event.CommentAdded, event.CommentAddedPayload{})
	})
	assert.True(t, reached)
	assert.InDelta(t, 1, testutil.ToFloat64(collector.HandlerPanics.WithLabelValues("COMMENT_ADDED")), 0)
}

func TestBus_Off(t *testing.T) {
	bus := NewBus(discardLogger(), nil)

	count := 0
	sub := On(bus, event.CommentAdded, func(context.Context, event.CommentAddedPayload) { count++ })
	other := On(bus, event.CommentAdded, func(context.Context, event.CommentAddedPayload) { count += 10 })
	require.Equal(t, 2, bus.HandlerCount("COMMENT_ADDED"))

	bus.Off(sub)
	bus.Off(sub)
	event.Emit(context.Background(), bus, event.CommentAdded, event.CommentAddedPayload{})

	assert.Equal(t, 10, count)
	assert.Equal(t, 1, bus.HandlerCount("COMMENT_ADDED"))

	bus.Off(other)
	assert.Zero(t, bus.HandlerCount("COMMENT_ADDED"))
}

func TestBus_EmitWithoutHandlers(t *testing.T) {
	bus := NewBus(discardLogger(), nil)

	assert.NotPanics(t, func() {
		bus.EmitEvent(context.Background(), "UNKNOWN", struct{}{})
	})
}

func TestBus_WrongPayloadTypeIsSkipped(t *testing.T) {
	bus := NewBus(discardLogger(), nil)

	called := false
	On(bus, event.CommentAdded, func(context.Context, event.CommentAddedPayload) { called = true })

	bus.EmitEvent(context.Background(), event.CommentAdded.Name(), "not a payload")

	assert.False(t, called)
}

func TestBus_ConcurrentRegistration(t *testing.T) {
	bus := NewBus(discardLogger(), nil)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			On(bus, event.CommentAdded, func(context.Context, event.CommentAddedPayload) {})
		}()
		go func() {
			defer wg.Done()
			event.Emit(context.Background(), bus, event.CommentAdded, event.CommentAddedPayload{})
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, bus.HandlerCount("COMMENT_ADDED"))
}

func TestDispatcher_RunsSubmittedTasks(t *testing.T) {
	collector := metrics.NewCollector()
	d := NewDispatcher(DispatcherConfig{QueueSize: 4, Workers: 2, TaskTimeout: time.Second}, discardLogger(), collector)
	d.Start()

	var wg sync.WaitGroup
	wg.Add(3)
	for range 3 {
		require.True(t, d.Submit(func(ctx context.Context) {
			defer wg.Done()
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
		}))
	}
	wg.Wait()

	require.NoError(t, d.Stop(context.Background()))
	assert.InDelta(t, 3, testutil.ToFloat64(collector.TasksCompleted), 0)
}

func TestDispatcher_RejectsWhenFull(t *testing.T) {
	collector := metrics.NewCollector()
	d := NewDispatcher(DispatcherConfig{QueueSize: 1, Workers: 1}, discardLogger(), collector)
	d.Start()

	release := make(chan struct{})
	started := make(chan struct{})
	require.True(t, d.Submit(func(context.Context) {
		close(started)
		<-release
	}))
	<-started

	require.True(t, d.Submit(func(context.Context) {}))
	assert.False(t, d.Submit(func(context.Context) {}), "queue of one is already occupied")
	assert.InDelta(t, 1, testutil.ToFloat64(collector.TasksDropped), 0)

	close(release)
	require.NoError(t, d.Stop(context.Background()))
}

func TestDispatcher_SubmitAfterStop(t *testing.T) {
	d := NewDispatcher(DispatcherConfig{QueueSize: 1, Workers: 1}, discardLogger(), nil)
	d.Start()
	require.NoError(t, d.Stop(context.Background()))

	assert.False(t, d.Submit(func(context.Context) {}))
	require.NoError(t, d.Stop(context.Background()))
}

func TestDispatcher_StopDeadlineCancelsRunningTask(t *testing.T) {
	d := NewDispatcher(DispatcherConfig{QueueSize: 1, Workers: 1}, discardLogger(), nil)
	d.Start()

	started := make(chan struct{})
	cancelled := make(chan struct{})
	require.True(t, d.Submit(func(ctx context.Context) {
		close(started)
		<-ctx.Done()
		close(cancelled)
	}))
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := d.Stop(ctx)
	require.Error(t, err)

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("running task was not cancelled")
	}
}

func TestDispatcher_RecoversTaskPanic(t *testing.T) {
	d := NewDispatcher(DispatcherConfig{QueueSize: 2, Workers: 1}, discardLogger(), nil)
	d.Start()

	done := make(chan struct{})
	require.True(t, d.Submit(func(context.Context) { panic("boom") }))
	require.True(t, d.Submit(func(context.Context) { close(done) }))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker died after panic")
	}

	require.NoError(t, d.Stop(context.Background()))
}
