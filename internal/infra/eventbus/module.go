package eventbus

import (
	"context"
	"log/slog"

	"rating/config"
	"rating/internal/domain/event"
	"rating/internal/domain/lifecycle"
	"rating/internal/infra/metrics"

	"go.uber.org/fx"
)

// DispatcherParams holds dependencies for the Dispatcher, injected by Fx
type DispatcherParams struct {
	fx.In

	Lc      fx.Lifecycle
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Collector
}

// NewManagedDispatcher builds a Dispatcher sized from config and ties it to the
// application lifecycle.
func NewManagedDispatcher(params DispatcherParams) *Dispatcher {
	d := NewDispatcher(DispatcherConfig{
		QueueSize:   params.Config.EventBus.QueueSize,
		Workers:     params.Config.EventBus.Workers,
		TaskTimeout: params.Config.Summarizer.Timeout,
	}, params.Logger, params.Metrics)

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			d.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			return d.Stop(stopCtx)
		},
	})

	return d
}

// Module provides the event bus FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewBus,
		func(b *Bus) event.Emitter { return b },
		NewManagedDispatcher,
	),
)
