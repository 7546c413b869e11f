package impl

import (
	"context"
	"strings"
	"time"

	"rating/internal/domain/entity"
	domainerrors "rating/internal/domain/errors"
	"rating/internal/domain/event"
	"rating/internal/domain/repository"
	"rating/internal/errors"
	"rating/internal/usecase"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type commentService struct {
	buildings   usecase.BuildingUsecase
	commentRepo repository.CommentRepository
	emitter     event.Emitter
}

// NewCommentService creates a new comment service instance
func NewCommentService(buildings usecase.BuildingUsecase, commentRepo repository.CommentRepository, emitter event.Emitter) usecase.CommentUsecase {
	return &commentService{
		buildings:   buildings,
		commentRepo: commentRepo,
		emitter:     emitter,
	}
}

// ListByBuildingID returns a building's comments newest first
func (s *commentService) ListByBuildingID(ctx context.Context, buildingID string, query usecase.ListCommentsQuery) ([]*entity.Comment, error) {
	if err := s.requireBuilding(ctx, buildingID); err != nil {
		return nil, err
	}

	limit, offset := pageOrDefault(query.Limit, query.Offset)
	comments, err := s.commentRepo.FindCommentsByBuilding(ctx, buildingID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}
	if comments == nil {
		comments = []*entity.Comment{}
	}

	return comments, nil
}

// Create validates and persists a comment, then announces it on the event bus
func (s *commentService) Create(ctx context.Context, buildingID string, input *usecase.CreateCommentInput) (*entity.Comment, error) {
	if err := s.requireBuilding(ctx, buildingID); err != nil {
		return nil, err
	}

	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, domainerrors.NewValidationError("Comment content is required")
	}

	if input.Rating < entity.MinRating || input.Rating > entity.MaxRating {
		return nil, domainerrors.NewValidationError("Rating must be between 1 and 5")
	}

	comment := &entity.Comment{
		ID:         uuid.NewString(),
		BuildingID: buildingID,
		Rating:     input.Rating,
		Content:    content,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to create comment")
	}

	event.Emit(ctx, s.emitter, event.CommentAdded, event.CommentAddedPayload{
		BuildingID: buildingID,
		CommentID:  comment.ID,
	})

	return comment, nil
}

// GetStats runs the count and average aggregates concurrently
func (s *commentService) GetStats(ctx context.Context, buildingID string) (*entity.CommentStats, error) {
	if err := s.requireBuilding(ctx, buildingID); err != nil {
		return nil, err
	}

	stats := &entity.CommentStats{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.commentRepo.CountCommentsByBuilding(gctx, buildingID)
		if err != nil {
			return errors.Wrap(err, "failed to count comments")
		}
		stats.Count = count

		return nil
	})
	g.Go(func() error {
		avg, err := s.commentRepo.AverageRatingByBuilding(gctx, buildingID)
		if err != nil {
			return errors.Wrap(err, "failed to average ratings")
		}
		stats.AverageRating = avg

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if stats.Count == 0 {
		stats.AverageRating = 0
	}

	return stats, nil
}

func (s *commentService) requireBuilding(ctx context.Context, buildingID string) error {
	exists, err := s.buildings.Exists(ctx, buildingID)
	if err != nil {
		return err
	}
	if !exists {
		return domainerrors.NewBuildingNotFoundError(buildingID)
	}

	return nil
}
