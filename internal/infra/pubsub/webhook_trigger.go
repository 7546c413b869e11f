package pubsub

import (
	"context"
	"log/slog"
	"time"

	"rating/config"
	"rating/internal/domain/service"
	"rating/internal/infra/metrics"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/sony/gobreaker"
)

const summarizePath = "/api/summarize"

// webhookTrigger implements SummarizationTrigger by POSTing to the summarizer
// service. Calls are never retried; the circuit breaker sheds load while the
// summarizer is down.
type webhookTrigger struct {
	client  *resty.Client
	breaker *gobreaker.CircuitBreaker
	logger  *slog.Logger
	metrics *metrics.Collector
}

// NewWebhookTrigger creates a trigger that calls {baseURL}/api/summarize.
func NewWebhookTrigger(baseURL string, timeout time.Duration, breakerCfg config.BreakerConfig, logger *slog.Logger, collector *metrics.Collector) service.SummarizationTrigger {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &webhookTrigger{
		client:  client,
		breaker: newBreaker("summarizer-webhook", breakerCfg, logger),
		logger:  logger,
		metrics: collector,
	}
}

func newBreaker(name string, cfg config.BreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// Only trip if we have enough requests to make a decision
			if counts.Requests < cfg.MinRequests {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)

			return failureRatio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// RequestSummary asks the summarizer to rebuild the summary of one building.
func (t *webhookTrigger) RequestSummary(ctx context.Context, req *service.SummarizeRequest) error {
	_, err := t.breaker.Execute(func() (any, error) {
		r := t.client.R().
			SetContext(ctx).
			SetBody(req)
		if req.RequestID != "" {
			r.SetHeader("X-Request-Id", req.RequestID)
		}

		resp, err := r.Post(summarizePath)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if !resp.IsSuccess() {
			return nil, errors.Errorf("summarizer returned non-success status: %d", resp.StatusCode())
		}

		return nil, nil
	})

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		t.observe("rejected")

		return errors.Wrap(err, "summarizer circuit open")
	case err != nil:
		t.observe("error")

		return err
	}

	t.observe("ok")
	t.logger.DebugContext(ctx, "[Webhook] Summary requested",
		slog.String("building_id", req.BuildingID),
	)

	return nil
}

func (t *webhookTrigger) observe(status string) {
	if t.metrics != nil {
		t.metrics.SummaryRequests.WithLabelValues(config.SummarizerProviderWebhook, status).Inc()
	}
}

// Close releases resources (no-op for HTTP client)
func (t *webhookTrigger) Close() error {
	return nil
}
