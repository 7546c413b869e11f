package memory

import (
	"context"
	"time"

	"rating/internal/domain/entity"
	domainerrors "rating/internal/domain/errors"
	"rating/internal/domain/repository"
)

type summaryRepository struct {
	store *Store
}

// NewSummaryRepository returns a SummaryRepository backed by store.
func NewSummaryRepository(store *Store) repository.SummaryRepository {
	return &summaryRepository{store: store}
}

func (repo *summaryRepository) FindSummaryByBuilding(_ context.Context, buildingID string) (*entity.Summary, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	row, ok := repo.store.summaries[buildingID]
	if !ok {
		return nil, repository.ErrSummaryNotFound
	}

	summary := *row

	return &summary, nil
}

// UpsertSummary replaces the row wholesale. LastUpdated always moves forward,
// even when the clock has not ticked since the previous write.
func (repo *summaryRepository) UpsertSummary(_ context.Context, summary *entity.Summary) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, ok := repo.store.buildings[summary.BuildingID]; !ok {
		return domainerrors.NewBuildingNotFoundError(summary.BuildingID)
	}

	now := repo.store.now()
	if prev, ok := repo.store.summaries[summary.BuildingID]; ok && !now.After(prev.LastUpdated) {
		now = prev.LastUpdated.Add(time.Microsecond)
	}

	summary.LastUpdated = now
	row := *summary
	repo.store.summaries[summary.BuildingID] = &row

	return nil
}
