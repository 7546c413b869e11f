package postgres

import (
	"context"

	"rating/internal/domain/entity"
	domainerrors "rating/internal/domain/errors"
	"rating/internal/domain/repository"
	"rating/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// last_updated is taken from clock_timestamp() so two writes inside one
// transaction still move it forward.
const upsertSummarySQL = `INSERT INTO summaries (building_id, content, average_rating, comment_count, last_updated)
VALUES (?, ?, ?, ?, clock_timestamp())
ON CONFLICT (building_id) DO UPDATE SET
	content = EXCLUDED.content,
	average_rating = EXCLUDED.average_rating,
	comment_count = EXCLUDED.comment_count,
	last_updated = GREATEST(clock_timestamp(), summaries.last_updated + INTERVAL '1 microsecond')
RETURNING building_id, content, average_rating, comment_count, last_updated`

// summaryRepository implements the repository.SummaryRepository interface.
type summaryRepository struct {
	db *gorm.DB
}

// NewSummaryRepository is the constructor for summaryRepository.
func NewSummaryRepository(db *gorm.DB) repository.SummaryRepository {
	return &summaryRepository{db: db}
}

// FindSummaryByBuilding retrieves the summary of a building.
func (repo *summaryRepository) FindSummaryByBuilding(ctx context.Context, buildingID string) (*entity.Summary, error) {
	if !isUUID(buildingID) {
		return nil, repository.ErrSummaryNotFound
	}

	var summaryM model.SummaryModel
	err := repo.db.WithContext(ctx).
		Where("building_id = ?", buildingID).
		First(&summaryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSummaryNotFound
		}

		return nil, errors.Wrap(err, "failed to find summary by building")
	}

	return toSummaryDomain(&summaryM), nil
}

// UpsertSummary inserts or replaces the summary and refreshes LastUpdated.
func (repo *summaryRepository) UpsertSummary(ctx context.Context, summary *entity.Summary) error {
	var summaryM model.SummaryModel
	err := repo.db.WithContext(ctx).
		Raw(upsertSummarySQL, summary.BuildingID, summary.Content, summary.AverageRating, summary.CommentCount).
		Scan(&summaryM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewBuildingNotFoundError(summary.BuildingID)
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.NewValidationError("summary violates rating or count bounds")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert summary")
	}

	*summary = *toSummaryDomain(&summaryM)

	return nil
}

func toSummaryDomain(data *model.SummaryModel) *entity.Summary {
	if data == nil {
		return nil
	}

	return &entity.Summary{
		BuildingID:    data.BuildingID,
		Content:       data.Content,
		AverageRating: data.AverageRating,
		CommentCount:  data.CommentCount,
		LastUpdated:   data.LastUpdated,
	}
}
