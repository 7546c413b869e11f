package usecase

import (
	"context"

	"rating/internal/domain/entity"
)

// UpdateSummaryInput replaces a building summary wholesale.
type UpdateSummaryInput struct {
	Content       string  `json:"content"`
	AverageRating float64 `json:"averageRating"`
	CommentCount  int     `json:"commentCount"`
}

// SummaryUsecase defines the interface for summary use cases
type SummaryUsecase interface {
	// GetByBuildingID returns nil without error when the building has no summary.
	GetByBuildingID(ctx context.Context, buildingID string) (*entity.Summary, error)
	Update(ctx context.Context, buildingID string, input *UpdateSummaryInput) (*entity.Summary, error)
}
