package usecase

import (
	"context"

	"rating/internal/domain/entity"
)

// ListCommentsQuery pages a building's comments.
type ListCommentsQuery struct {
	Limit  *int
	Offset *int
}

// CreateCommentInput represents a new resident review. A zero Rating means
// the rating was not supplied.
type CreateCommentInput struct {
	Rating  int    `json:"rating"`
	Content string `json:"content"`
}

// CommentUsecase defines the interface for comment use cases
type CommentUsecase interface {
	ListByBuildingID(ctx context.Context, buildingID string, query ListCommentsQuery) ([]*entity.Comment, error)
	Create(ctx context.Context, buildingID string, input *CreateCommentInput) (*entity.Comment, error)
	GetStats(ctx context.Context, buildingID string) (*entity.CommentStats, error)
}
