package repository

import (
	"context"

	"rating/internal/domain/entity"
)

// SummaryRepository defines the interface for summary-related database operations.
type SummaryRepository interface {
	// FindSummaryByBuilding retrieves the summary of a building.
	// Returns ErrSummaryNotFound if the building has none.
	FindSummaryByBuilding(ctx context.Context, buildingID string) (*entity.Summary, error)

	// UpsertSummary inserts or fully replaces the summary keyed by BuildingID and
	// sets LastUpdated to the store's current time.
	UpsertSummary(ctx context.Context, summary *entity.Summary) error
}
