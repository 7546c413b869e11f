// Package event wires event bus topics to their handlers.
package event

import (
	"context"
	"log/slog"

	deliverycontext "rating/internal/delivery/context"
	"rating/internal/domain/event"
	"rating/internal/domain/service"
	"rating/internal/infra/eventbus"

	"go.uber.org/fx"
)

// HandlerParams holds dependencies for the event handlers, injected by Fx
type HandlerParams struct {
	fx.In

	Bus *eventbus.Bus
	// Trigger is resolved before Dispatcher so its close hook runs after the
	// dispatcher has drained.
	Trigger    service.SummarizationTrigger
	Dispatcher *eventbus.Dispatcher
	Logger     *slog.Logger
}

// RegisterHandlers subscribes the summarization trigger to COMMENT_ADDED.
// The handler only enqueues; the trigger call runs on a dispatcher worker so
// comment creation never waits for the summarizer.
func RegisterHandlers(params HandlerParams) eventbus.Subscription {
	logger := params.Logger

	sub := eventbus.On(params.Bus, event.CommentAdded, func(ctx context.Context, payload event.CommentAddedPayload) {
		req := &service.SummarizeRequest{
			RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
			BuildingID: payload.BuildingID,
		}

		accepted := params.Dispatcher.Submit(func(taskCtx context.Context) {
			if err := params.Trigger.RequestSummary(taskCtx, req); err != nil {
				logger.Warn("Summarization request failed",
					slog.String("building_id", req.BuildingID),
					slog.String("comment_id", payload.CommentID),
					slog.String("request_id", req.RequestID),
					slog.Any("error", err),
				)
			}
		})
		if !accepted {
			deliverycontext.GetLoggerOrDefault(ctx, logger).Warn("Summarization request dropped",
				slog.String("building_id", req.BuildingID),
				slog.String("comment_id", payload.CommentID),
			)
		}
	})

	logger.Info("Event handlers registered",
		slog.String("topic", event.CommentAdded.Name()),
		slog.Int("handlers", params.Bus.HandlerCount(event.CommentAdded.Name())),
	)

	return sub
}

// Module registers the event handlers with the Fx application
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Invoke(RegisterHandlers),
)
