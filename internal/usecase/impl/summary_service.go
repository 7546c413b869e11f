package impl

import (
	"context"

	"rating/internal/domain/entity"
	domainerrors "rating/internal/domain/errors"
	"rating/internal/domain/repository"
	"rating/internal/errors"
	"rating/internal/usecase"
)

type summaryService struct {
	buildings   usecase.BuildingUsecase
	summaryRepo repository.SummaryRepository
}

// NewSummaryService creates a new summary service instance
func NewSummaryService(buildings usecase.BuildingUsecase, summaryRepo repository.SummaryRepository) usecase.SummaryUsecase {
	return &summaryService{
		buildings:   buildings,
		summaryRepo: summaryRepo,
	}
}

// GetByBuildingID returns the summary, or nil when none has been written yet
func (s *summaryService) GetByBuildingID(ctx context.Context, buildingID string) (*entity.Summary, error) {
	summary, err := s.summaryRepo.FindSummaryByBuilding(ctx, buildingID)
	if err != nil {
		if errors.Is(err, repository.ErrSummaryNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find summary")
	}

	return summary, nil
}

// Update replaces the building summary and refreshes LastUpdated
func (s *summaryService) Update(ctx context.Context, buildingID string, input *usecase.UpdateSummaryInput) (*entity.Summary, error) {
	exists, err := s.buildings.Exists(ctx, buildingID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domainerrors.NewBuildingNotFoundError(buildingID)
	}

	if input.AverageRating < entity.MinAverageRating || input.AverageRating > entity.MaxAverageRating {
		return nil, domainerrors.NewValidationError("Average rating must be between 0 and 5")
	}

	if input.CommentCount < 0 {
		return nil, domainerrors.NewValidationError("Comment count cannot be negative")
	}

	summary := &entity.Summary{
		BuildingID:    buildingID,
		Content:       input.Content,
		AverageRating: input.AverageRating,
		CommentCount:  input.CommentCount,
	}

	if err := s.summaryRepo.UpsertSummary(ctx, summary); err != nil {
		return nil, errors.Wrap(err, "failed to upsert summary")
	}

	return summary, nil
}
