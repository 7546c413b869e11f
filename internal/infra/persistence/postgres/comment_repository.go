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

// commentRepository implements the repository.CommentRepository interface.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

// CreateComment persists a new comment.
func (repo *commentRepository) CreateComment(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewBuildingNotFoundError(comment.BuildingID)
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.NewValidationError("Rating must be between 1 and 5")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	return nil
}

// FindCommentsByBuilding lists a building's comments newest first.
func (repo *commentRepository) FindCommentsByBuilding(ctx context.Context, buildingID string, limit, offset int) ([]*entity.Comment, error) {
	if !isUUID(buildingID) {
		return []*entity.Comment{}, nil
	}

	var commentModels []*model.CommentModel
	err := repo.db.WithContext(ctx).
		Where("building_id = ?", buildingID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&commentModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find comments by building")
	}

	comments := make([]*entity.Comment, 0, len(commentModels))
	for _, commentM := range commentModels {
		comments = append(comments, toCommentDomain(commentM))
	}

	return comments, nil
}

// CountCommentsByBuilding returns the number of comments for a building.
func (repo *commentRepository) CountCommentsByBuilding(ctx context.Context, buildingID string) (int64, error) {
	if !isUUID(buildingID) {
		return 0, nil
	}

	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("building_id = ?", buildingID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count comments")
	}

	return count, nil
}

// AverageRatingByBuilding returns the mean rating, 0 when there are no comments.
func (repo *commentRepository) AverageRatingByBuilding(ctx context.Context, buildingID string) (float64, error) {
	if !isUUID(buildingID) {
		return 0, nil
	}

	var avg float64
	err := repo.db.WithContext(ctx).
		Raw("SELECT COALESCE(AVG(rating), 0) FROM comments WHERE building_id = ?", buildingID).
		Row().
		Scan(&avg)
	if err != nil {
		return 0, errors.Wrap(err, "failed to average comment ratings")
	}

	return avg, nil
}

func toCommentDomain(data *model.CommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	return &entity.Comment{
		ID:         data.ID,
		BuildingID: data.BuildingID,
		Rating:     data.Rating,
		Content:    data.Content,
		CreatedAt:  data.CreatedAt,
	}
}

func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	if data == nil {
		return nil
	}

	return &model.CommentModel{
		ID:         data.ID,
		BuildingID: data.BuildingID,
		Rating:     data.Rating,
		Content:    data.Content,
		CreatedAt:  data.CreatedAt,
	}
}
