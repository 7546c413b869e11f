// Package pubsub delivers summarization requests to the external summarizer.
package pubsub

import (
	"context"
	"log/slog"

	"rating/config"
	"rating/internal/domain/service"
	"rating/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopTrigger is used when no summarizer is configured
type noopTrigger struct {
	logger *slog.Logger
}

func (t *noopTrigger) RequestSummary(ctx context.Context, req *service.SummarizeRequest) error {
	t.logger.DebugContext(ctx, "[Noop] Summarizer disabled, skipping",
		slog.String("building_id", req.BuildingID),
	)

	return nil
}

func (t *noopTrigger) Close() error {
	return nil
}

// TriggerParams holds dependencies for SummarizationTrigger, injected by Fx
type TriggerParams struct {
	fx.In

	Lc      fx.Lifecycle
	Ctx     context.Context
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Collector
}

// NewSummarizationTrigger creates a SummarizationTrigger based on configuration
func NewSummarizationTrigger(params TriggerParams) (service.SummarizationTrigger, error) {
	cfg := params.Config.Summarizer
	logger := params.Logger

	var trigger service.SummarizationTrigger
	var err error

	switch cfg.Provider {
	case config.SummarizerProviderNoop, "":
		logger.Info("Summarizer not configured, using no-op trigger")

		return &noopTrigger{logger: logger}, nil

	case config.SummarizerProviderWebhook:
		if cfg.BaseURL == "" {
			return nil, errors.New("base URL is required for webhook provider")
		}
		logger.Info("Using webhook summarization trigger",
			slog.String("base_url", cfg.BaseURL),
		)

		trigger = NewWebhookTrigger(cfg.BaseURL, cfg.Timeout, cfg.Breaker, logger, params.Metrics)

	case config.SummarizerProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub summarization trigger",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		trigger, err = NewGooglePubSubTrigger(params.Ctx, cfg.ProjectID, cfg.TopicID, logger, params.Metrics)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown summarizer provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close trigger on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing SummarizationTrigger")

			return trigger.Close()
		},
	})

	return trigger, nil
}

// Module provides the summarization trigger FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSummarizationTrigger),
)
