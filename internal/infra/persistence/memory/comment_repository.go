package memory

import (
	"context"
	"sort"

	"rating/internal/domain/entity"
	domainerrors "rating/internal/domain/errors"
	"rating/internal/domain/repository"
)

type commentRepository struct {
	store *Store
}

// NewCommentRepository returns a CommentRepository backed by store.
func NewCommentRepository(store *Store) repository.CommentRepository {
	return &commentRepository{store: store}
}

func (repo *commentRepository) CreateComment(_ context.Context, comment *entity.Comment) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, ok := repo.store.buildings[comment.BuildingID]; !ok {
		return domainerrors.NewBuildingNotFoundError(comment.BuildingID)
	}

	row := *comment
	repo.store.comments[comment.BuildingID] = append(repo.store.comments[comment.BuildingID], &row)

	return nil
}

func (repo *commentRepository) FindCommentsByBuilding(_ context.Context, buildingID string, limit, offset int) ([]*entity.Comment, error) {
	repo.store.mu.RLock()
	rows := repo.store.comments[buildingID]
	comments := make([]*entity.Comment, 0, len(rows))
	// Walk backwards so equal timestamps keep newest-inserted first.
	for i := len(rows) - 1; i >= 0; i-- {
		comment := *rows[i]
		comments = append(comments, &comment)
	}
	repo.store.mu.RUnlock()

	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})

	return page(comments, limit, offset), nil
}

func (repo *commentRepository) CountCommentsByBuilding(_ context.Context, buildingID string) (int64, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	return int64(len(repo.store.comments[buildingID])), nil
}

func (repo *commentRepository) AverageRatingByBuilding(_ context.Context, buildingID string) (float64, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	rows := repo.store.comments[buildingID]
	if len(rows) == 0 {
		return 0, nil
	}

	total := 0
	for _, row := range rows {
		total += row.Rating
	}

	return float64(total) / float64(len(rows)), nil
}
