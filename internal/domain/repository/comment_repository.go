package repository

import (
	"context"

	"rating/internal/domain/entity"
)

// CommentRepository defines the interface for comment-related database operations.
type CommentRepository interface {
	// CreateComment persists a new comment. ID and CreatedAt must already be set.
	CreateComment(ctx context.Context, comment *entity.Comment) error

	// FindCommentsByBuilding lists a building's comments newest first.
	FindCommentsByBuilding(ctx context.Context, buildingID string, limit, offset int) ([]*entity.Comment, error)

	// CountCommentsByBuilding returns the number of comments for a building.
	CountCommentsByBuilding(ctx context.Context, buildingID string) (int64, error)

	// AverageRatingByBuilding returns the mean rating, or 0 when there are no comments.
	AverageRatingByBuilding(ctx context.Context, buildingID string) (float64, error)
}
