package event

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	deliverycontext "rating/internal/delivery/context"
	"rating/internal/domain/event"
	"rating/internal/domain/service"
	"rating/internal/infra/eventbus"
	mockService "rating/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestDeps(t *testing.T, queueSize int) (*eventbus.Bus, *eventbus.Dispatcher, *mockService.MockSummarizationTrigger, *slog.Logger) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus := eventbus.NewBus(logger, nil)
	dispatcher := eventbus.NewDispatcher(eventbus.DispatcherConfig{QueueSize: queueSize, Workers: 1, TaskTimeout: time.Second}, logger, nil)
	trigger := mockService.NewMockSummarizationTrigger(t)

	return bus, dispatcher, trigger, logger
}

func TestRegisterHandlers_RequestsSummary(t *testing.T) {
	bus, dispatcher, trigger, logger := newTestDeps(t, 4)
	dispatcher.Start()
	t.Cleanup(func() { _ = dispatcher.Stop(context.Background()) })

	done := make(chan *service.SummarizeRequest, 1)
	trigger.EXPECT().
		RequestSummary(mock.Anything, mock.AnythingOfType("*service.SummarizeRequest")).
		Run(func(_ context.Context, req *service.SummarizeRequest) { done <- req }).
		Return(nil)

	RegisterHandlers(HandlerParams{Bus: bus, Dispatcher: dispatcher, Trigger: trigger, Logger: logger})

	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	event.Emit(ctx, bus, event.CommentAdded, event.CommentAddedPayload{BuildingID: "b1", CommentID: "c1"})

	select {
	case req := <-done:
		assert.Equal(t, "b1", req.BuildingID)
		assert.Equal(t, "req-42", req.RequestID)
	case <-time.After(time.Second):
		t.Fatal("summary was not requested")
	}
}

func TestRegisterHandlers_TriggerFailureIsContained(t *testing.T) {
	bus, dispatcher, trigger, logger := newTestDeps(t, 4)
	dispatcher.Start()
	t.Cleanup(func() { _ = dispatcher.Stop(context.Background()) })

	called := make(chan struct{})
	trigger.EXPECT().
		RequestSummary(mock.Anything, mock.Anything).
		Run(func(context.Context, *service.SummarizeRequest) { close(called) }).
		Return(errors.New("summarizer unavailable"))

	RegisterHandlers(HandlerParams{Bus: bus, Dispatcher: dispatcher, Trigger: trigger, Logger: logger})

	assert.NotPanics(t, func() {
		event.Emit(context.Background(), bus, event.CommentAdded, event.CommentAddedPayload{BuildingID: "b1", CommentID: "c1"})
	})

	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("summary was not requested")
	}
}

func TestRegisterHandlers_EmitDoesNotWaitForTrigger(t *testing.T) {
	bus, dispatcher, trigger, logger := newTestDeps(t, 4)
	dispatcher.Start()

	release := make(chan struct{})
	trigger.EXPECT().
		RequestSummary(mock.Anything, mock.Anything).
		Run(func(context.Context, *service.SummarizeRequest) { <-release }).
		Return(nil)

	RegisterHandlers(HandlerParams{Bus: bus, Dispatcher: dispatcher, Trigger: trigger, Logger: logger})

	emitted := make(chan struct{})
	go func() {
		event.Emit(context.Background(), bus, event.CommentAdded, event.CommentAddedPayload{BuildingID: "b1", CommentID: "c1"})
		close(emitted)
	}()

	select {
	case <-emitted:
	case <-time.After(time.Second):
		t.Fatal("emit blocked on the summarizer")
	}

	close(release)
	require.NoError(t, dispatcher.Stop(context.Background()))
}

func TestRegisterHandlers_StoppedDispatcherDrops(t *testing.T) {
	bus, dispatcher, trigger, logger := newTestDeps(t, 1)
	require.NoError(t, dispatcher.Stop(context.Background()))

	RegisterHandlers(HandlerParams{Bus: bus, Dispatcher: dispatcher, Trigger: trigger, Logger: logger})

	assert.NotPanics(t, func() {
		event.Emit(context.Background(), bus, event.CommentAdded, event.CommentAddedPayload{BuildingID: "b1", CommentID: "c1"})
	})
	trigger.AssertNotCalled(t, "RequestSummary", mock.Anything, mock.Anything)
}

func TestRegisterHandlers_SubscribesOnce(t *testing.T) {
	bus, dispatcher, trigger, logger := newTestDeps(t, 1)
	t.Cleanup(func() { _ = dispatcher.Stop(context.Background()) })

	sub := RegisterHandlers(HandlerParams{Bus: bus, Dispatcher: dispatcher, Trigger: trigger, Logger: logger})
	assert.Equal(t, 1, bus.HandlerCount(event.CommentAdded.Name()))

	bus.Off(sub)
	assert.Zero(t, bus.HandlerCount(event.CommentAdded.Name()))
}
