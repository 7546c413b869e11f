package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"rating/config"
	"rating/internal/domain/service"
	"rating/internal/infra/metrics"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubTrigger implements SummarizationTrigger using Google Cloud Pub/Sub.
// The summarizer consumes the topic through its own subscription.
type googlePubSubTrigger struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
	metrics   *metrics.Collector
}

// NewGooglePubSubTrigger creates a new Google Pub/Sub trigger
func NewGooglePubSubTrigger(ctx context.Context, projectID, topicID string, logger *slog.Logger, collector *metrics.Collector) (service.SummarizationTrigger, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Check if topic exists using TopicAdminClient
	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	logger.Info("Google Pub/Sub trigger initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubTrigger{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
		metrics:   collector,
	}, nil
}

// RequestSummary publishes {"buildingId"} and waits for the server ack.
func (t *googlePubSubTrigger) RequestSummary(ctx context.Context, req *service.SummarizeRequest) error {
	data, err := json.Marshal(req)
	if err != nil {
		return errors.WithStack(err)
	}

	attributes := map[string]string{
		"building_id": req.BuildingID,
	}
	if req.RequestID != "" {
		attributes["request_id"] = req.RequestID
	}

	result := t.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: attributes,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		t.observe("error")

		return errors.WithStack(err)
	}

	t.observe("ok")
	t.logger.DebugContext(ctx, "[GooglePubSub] Summary requested",
		slog.String("building_id", req.BuildingID),
		slog.String("server_id", serverID),
	)

	return nil
}

func (t *googlePubSubTrigger) observe(status string) {
	if t.metrics != nil {
		t.metrics.SummaryRequests.WithLabelValues(config.SummarizerProviderGoogle, status).Inc()
	}
}

// Close flushes pending messages and releases Pub/Sub client resources
func (t *googlePubSubTrigger) Close() error {
	if t.publisher != nil {
		t.publisher.Stop()
	}
	if t.client != nil {
		return errors.WithStack(t.client.Close())
	}

	return nil
}
