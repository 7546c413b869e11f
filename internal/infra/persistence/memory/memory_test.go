package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"rating/internal/domain/entity"
	domainerrors "rating/internal/domain/errors"
	"rating/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedBuilding(t *testing.T, repo repository.BuildingRepository, id, name, address string, createdAt time.Time) {
	t.Helper()

	require.NoError(t, repo.CreateBuilding(context.Background(), &entity.Building{
		ID:        id,
		Name:      name,
		Address:   address,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}))
}

func TestBuildingRepository_FindBuildings(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewBuildingRepository(store)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range 5 {
		seedBuilding(t, repo, fmt.Sprintf("b%d", i), fmt.Sprintf("Building %d", i), "Main St", base.Add(time.Duration(i)*time.Hour))
	}

	t.Run("newest first", func(t *testing.T) {
		buildings, err := repo.FindBuildings(ctx, repository.BuildingFilter{Limit: 50})
		require.NoError(t, err)
		require.Len(t, buildings, 5)
		assert.Equal(t, "b4", buildings[0].ID)
		assert.Equal(t, "b0", buildings[4].ID)
	})

	t.Run("limit and offset", func(t *testing.T) {
		buildings, err := repo.FindBuildings(ctx, repository.BuildingFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		require.Len(t, buildings, 2)
		assert.Equal(t, "b3", buildings[0].ID)
		assert.Equal(t, "b2", buildings[1].ID)
	})

	t.Run("offset past end", func(t *testing.T) {
		buildings, err := repo.FindBuildings(ctx, repository.BuildingFilter{Limit: 10, Offset: 10})
		require.NoError(t, err)
		assert.NotNil(t, buildings)
		assert.Empty(t, buildings)
	})
}

func TestBuildingRepository_Search(t *testing.T) {
	ctx := context.Background()
	repo := NewBuildingRepository(NewStore())

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seedBuilding(t, repo, "older-park", "Park View", "2 Park Ave", base)
	seedBuilding(t, repo, "newer-park", "Park Lofts", "9 Elm St", base.Add(time.Hour))
	seedBuilding(t, repo, "elm", "Elm House", "3 Elm St", base.Add(2*time.Hour))

	buildings, err := repo.FindBuildings(ctx, repository.BuildingFilter{Search: "PARK", Limit: 50})
	require.NoError(t, err)
	require.Len(t, buildings, 2)
	assert.Equal(t, "older-park", buildings[0].ID, "two occurrences outrank one")
	assert.Equal(t, "newer-park", buildings[1].ID)

	buildings, err = repo.FindBuildings(ctx, repository.BuildingFilter{Search: "park elm", Limit: 50})
	require.NoError(t, err)
	require.Len(t, buildings, 1)
	assert.Equal(t, "newer-park", buildings[0].ID)
}

func TestCommentRepository(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	buildings := NewBuildingRepository(store)
	comments := NewCommentRepository(store)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seedBuilding(t, buildings, "b1", "Maple Court", "1 Maple St", base)

	err := comments.CreateComment(ctx, &entity.Comment{ID: "c0", BuildingID: "missing", Rating: 3, Content: "x"})
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))

	avg, err := comments.AverageRatingByBuilding(ctx, "b1")
	require.NoError(t, err)
	assert.Zero(t, avg)

	for i, rating := range []int{1, 2, 3, 4, 5} {
		require.NoError(t, comments.CreateComment(ctx, &entity.Comment{
			ID:         fmt.Sprintf("c%d", i+1),
			BuildingID: "b1",
			Rating:     rating,
			Content:    "fine",
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}))
	}

	list, err := comments.FindCommentsByBuilding(ctx, "b1", 2, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "c4", list[0].ID)
	assert.Equal(t, "c3", list[1].ID)

	count, err := comments.CountCommentsByBuilding(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)

	avg, err = comments.AverageRatingByBuilding(ctx, "b1")
	require.NoError(t, err)
	assert.InDelta(t, 3.0, avg, 1e-9)
}

func TestSummaryRepository_UpsertAdvancesLastUpdated(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	frozen := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return frozen }

	seedBuilding(t, NewBuildingRepository(store), "b1", "Maple Court", "1 Maple St", frozen)
	repo := NewSummaryRepository(store)

	_, err := repo.FindSummaryByBuilding(ctx, "b1")
	require.ErrorIs(t, err, repository.ErrSummaryNotFound)

	first := &entity.Summary{BuildingID: "b1", Content: "Good", AverageRating: 4, CommentCount: 2}
	require.NoError(t, repo.UpsertSummary(ctx, first))
	second := &entity.Summary{BuildingID: "b1", Content: "Good", AverageRating: 4, CommentCount: 2}
	require.NoError(t, repo.UpsertSummary(ctx, second))

	assert.True(t, second.LastUpdated.After(first.LastUpdated))

	stored, err := repo.FindSummaryByBuilding(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, second.LastUpdated, stored.LastUpdated)
	assert.Equal(t, "Good", stored.Content)

	err = repo.UpsertSummary(ctx, &entity.Summary{BuildingID: "missing"})
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}
