package service

import (
	"context"
)

// SummarizeRequest asks the external summarizer to regenerate a building summary.
type SummarizeRequest struct {
	RequestID  string `json:"-"` // For distributed tracing, sent as X-Request-Id / attribute
	BuildingID string `json:"buildingId"`
}

// SummarizationTrigger hands a summarize request to the external summarizer.
// Implementations must not retry; callers treat failures as best-effort.
type SummarizationTrigger interface {
	// RequestSummary dispatches the request and reports whether it was accepted.
	RequestSummary(ctx context.Context, req *SummarizeRequest) error

	// Close releases any resources held by the trigger
	Close() error
}
