package impl

import (
	"context"
	"testing"

	"rating/internal/domain/entity"
	domainerrors "rating/internal/domain/errors"
	"rating/internal/domain/event"
	mockEvent "rating/internal/mocks/event"
	mockRepo "rating/internal/mocks/repository"
	"rating/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// commentServiceFixtures holds all test dependencies for comment service tests.
type commentServiceFixtures struct {
	service      usecase.CommentUsecase
	buildingRepo *mockRepo.MockBuildingRepository
	commentRepo  *mockRepo.MockCommentRepository
	emitter      *mockEvent.MockEmitter
}

func createTestCommentService(t *testing.T) commentServiceFixtures {
	buildingRepo := mockRepo.NewMockBuildingRepository(t)
	summaryRepo := mockRepo.NewMockSummaryRepository(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)
	emitter := mockEvent.NewMockEmitter(t)

	buildings := NewBuildingService(buildingRepo, summaryRepo)

	return commentServiceFixtures{
		service:      NewCommentService(buildings, commentRepo, emitter),
		buildingRepo: buildingRepo,
		commentRepo:  commentRepo,
		emitter:      emitter,
	}
}

func TestCommentService_Create_Success(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()

	var persisted *entity.Comment
	fx.buildingRepo.EXPECT().ExistsBuilding(ctx, "b1").Return(true, nil)
	fx.commentRepo.EXPECT().
		CreateComment(ctx, mock.AnythingOfType("*entity.Comment")).
		Run(func(_ context.Context, comment *entity.Comment) { persisted = comment }).
		Return(nil)
	fx.emitter.EXPECT().
		EmitEvent(ctx, "COMMENT_ADDED", mock.AnythingOfType("event.CommentAddedPayload")).
		Run(func(_ context.Context, _ string, payload interface{}) {
			require.NotNil(t, persisted, "comment must be persisted before the event fires")
			p := payload.(event.CommentAddedPayload)
			assert.Equal(t, "b1", p.BuildingID)
			assert.Equal(t, persisted.ID, p.CommentID)
		})

	comment, err := fx.service.Create(ctx, "b1", &usecase.CreateCommentInput{Rating: 4, Content: "  Quiet and clean  "})

	require.NoError(t, err)
	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, "b1", comment.BuildingID)
	assert.Equal(t, 4, comment.Rating)
	assert.Equal(t, "Quiet and clean", comment.Content)
	assert.False(t, comment.CreatedAt.IsZero())
}

func TestCommentService_Create_RatingBounds(t *testing.T) {
	tests := []struct {
		rating  int
		wantErr bool
	}{
		{rating: 0, wantErr: true},
		{rating: -1, wantErr: true},
		{rating: 1},
		{rating: 3},
		{rating: 5},
		{rating: 6, wantErr: true},
	}

	for _, tt := range tests {
		fx := createTestCommentService(t)
		ctx := context.Background()

		fx.buildingRepo.EXPECT().ExistsBuilding(ctx, "b1").Return(true, nil)
		if !tt.wantErr {
			fx.commentRepo.EXPECT().CreateComment(ctx, mock.AnythingOfType("*entity.Comment")).Return(nil)
			fx.emitter.EXPECT().EmitEvent(ctx, "COMMENT_ADDED", mock.Anything).Return()
		}

		comment, err := fx.service.Create(ctx, "b1", &usecase.CreateCommentInput{Rating: tt.rating, Content: "ok"})

		if tt.wantErr {
			require.Error(t, err, "rating %d", tt.rating)
			assert.Equal(t, "Rating must be between 1 and 5", err.Error())
			assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
			assert.Nil(t, comment)

			continue
		}
		require.NoError(t, err, "rating %d", tt.rating)
		assert.Equal(t, tt.rating, comment.Rating)
	}
}

func TestCommentService_Create_ContentCheckedBeforeRating(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()

	fx.buildingRepo.EXPECT().ExistsBuilding(ctx, "b1").Return(true, nil)

	_, err := fx.service.Create(ctx, "b1", &usecase.CreateCommentInput{Rating: 9, Content: "   "})

	require.Error(t, err)
	assert.Equal(t, "Comment content is required", err.Error())
}

func TestCommentService_Create_MissingBuildingWins(t *testing.T) {
	inputs := []usecase.CreateCommentInput{
		{Rating: 4, Content: "fine"},
		{Rating: 0, Content: ""},
		{Rating: 42, Content: "x"},
	}

	for _, input := range inputs {
		fx := createTestCommentService(t)
		ctx := context.Background()

		fx.buildingRepo.EXPECT().ExistsBuilding(ctx, "missing").Return(false, nil)

		_, err := fx.service.Create(ctx, "missing", &input)

		require.Error(t, err)
		assert.Equal(t, "Building not found: missing", err.Error())
		assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
	}
}

func TestCommentService_Create_PersistFailureSkipsEvent(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()

	fx.buildingRepo.EXPECT().ExistsBuilding(ctx, "b1").Return(true, nil)
	fx.commentRepo.EXPECT().CreateComment(ctx, mock.Anything).Return(errors.New("disk full"))

	_, err := fx.service.Create(ctx, "b1", &usecase.CreateCommentInput{Rating: 3, Content: "ok"})

	require.Error(t, err)
	assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
	fx.emitter.AssertNotCalled(t, "EmitEvent", mock.Anything, mock.Anything, mock.Anything)
}

func TestCommentService_ListByBuildingID(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		fx := createTestCommentService(t)
		fx.buildingRepo.EXPECT().ExistsBuilding(ctx, "b1").Return(true, nil)
		fx.commentRepo.EXPECT().FindCommentsByBuilding(ctx, "b1", 50, 0).Return(nil, nil)

		comments, err := fx.service.ListByBuildingID(ctx, "b1", usecase.ListCommentsQuery{})

		require.NoError(t, err)
		assert.NotNil(t, comments)
		assert.Empty(t, comments)
	})

	t.Run("explicit paging", func(t *testing.T) {
		fx := createTestCommentService(t)
		fx.buildingRepo.EXPECT().ExistsBuilding(ctx, "b1").Return(true, nil)
		fx.commentRepo.EXPECT().FindCommentsByBuilding(ctx, "b1", 2, 1).
			Return([]*entity.Comment{{ID: "c4"}, {ID: "c3"}}, nil)

		comments, err := fx.service.ListByBuildingID(ctx, "b1", usecase.ListCommentsQuery{Limit: ptr(2), Offset: ptr(1)})

		require.NoError(t, err)
		assert.Len(t, comments, 2)
	})

	t.Run("missing building", func(t *testing.T) {
		fx := createTestCommentService(t)
		fx.buildingRepo.EXPECT().ExistsBuilding(ctx, "missing").Return(false, nil)

		_, err := fx.service.ListByBuildingID(ctx, "missing", usecase.ListCommentsQuery{})

		assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
	})
}

func TestCommentService_GetStats(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates", func(t *testing.T) {
		fx := createTestCommentService(t)
		fx.buildingRepo.EXPECT().ExistsBuilding(ctx, "b1").Return(true, nil)
		fx.commentRepo.EXPECT().CountCommentsByBuilding(mock.Anything, "b1").Return(int64(4), nil)
		fx.commentRepo.EXPECT().AverageRatingByBuilding(mock.Anything, "b1").Return(3.75, nil)

		stats, err := fx.service.GetStats(ctx, "b1")

		require.NoError(t, err)
		assert.Equal(t, int64(4), stats.Count)
		assert.InDelta(t, 3.75, stats.AverageRating, 1e-9)
	})

	t.Run("no comments", func(t *testing.T) {
		fx := createTestCommentService(t)
		fx.buildingRepo.EXPECT().ExistsBuilding(ctx, "b1").Return(true, nil)
		fx.commentRepo.EXPECT().CountCommentsByBuilding(mock.Anything, "b1").Return(int64(0), nil)
		fx.commentRepo.EXPECT().AverageRatingByBuilding(mock.Anything, "b1").Return(0.0, nil)

		stats, err := fx.service.GetStats(ctx, "b1")

		require.NoError(t, err)
		assert.Zero(t, stats.Count)
		assert.Zero(t, stats.AverageRating)
	})

	t.Run("aggregate failure", func(t *testing.T) {
		fx := createTestCommentService(t)
		fx.buildingRepo.EXPECT().ExistsBuilding(ctx, "b1").Return(true, nil)
		fx.commentRepo.EXPECT().CountCommentsByBuilding(mock.Anything, "b1").Return(int64(0), errors.New("boom"))
		fx.commentRepo.EXPECT().AverageRatingByBuilding(mock.Anything, "b1").Return(0.0, nil).Maybe()

		_, err := fx.service.GetStats(ctx, "b1")

		require.Error(t, err)
	})
}
