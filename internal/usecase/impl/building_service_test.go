package impl

import (
	"context"
	"testing"

	"rating/internal/domain/entity"
	domainerrors "rating/internal/domain/errors"
	"rating/internal/domain/repository"
	mockRepo "rating/internal/mocks/repository"
	"rating/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// buildingServiceFixtures holds all test dependencies for building service tests.
type buildingServiceFixtures struct {
	service      usecase.BuildingUsecase
	buildingRepo *mockRepo.MockBuildingRepository
	summaryRepo  *mockRepo.MockSummaryRepository
}

func createTestBuildingService(t *testing.T) buildingServiceFixtures {
	buildingRepo := mockRepo.NewMockBuildingRepository(t)
	summaryRepo := mockRepo.NewMockSummaryRepository(t)

	return buildingServiceFixtures{
		service:      NewBuildingService(buildingRepo, summaryRepo),
		buildingRepo: buildingRepo,
		summaryRepo:  summaryRepo,
	}
}

func ptr[T any](v T) *T {
	return &v
}

func TestBuildingService_Create_Success(t *testing.T) {
	fx := createTestBuildingService(t)
	ctx := context.Background()

	fx.buildingRepo.EXPECT().
		CreateBuilding(ctx, mock.AnythingOfType("*entity.Building")).
		Return(nil)

	building, err := fx.service.Create(ctx, &usecase.CreateBuildingInput{
		Name:        "  Maple Court ",
		Address:     " 1 Maple St",
		PriceRange:  ptr(" $1000-$1500 "),
		Description: nil,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, building.ID)
	assert.Equal(t, "Maple Court", building.Name)
	assert.Equal(t, "1 Maple St", building.Address)
	require.NotNil(t, building.PriceRange)
	assert.Equal(t, "$1000-$1500", *building.PriceRange)
	assert.Nil(t, building.Description)
	assert.Equal(t, building.CreatedAt, building.UpdatedAt)
}

func TestBuildingService_Create_FreshIDs(t *testing.T) {
	fx := createTestBuildingService(t)
	ctx := context.Background()

	fx.buildingRepo.EXPECT().
		CreateBuilding(ctx, mock.AnythingOfType("*entity.Building")).
		Return(nil).
		Times(2)

	input := &usecase.CreateBuildingInput{Name: "A", Address: "B"}
	first, err := fx.service.Create(ctx, input)
	require.NoError(t, err)
	second, err := fx.service.Create(ctx, input)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestBuildingService_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.CreateBuildingInput
		wantMsg string
	}{
		{"missing name", usecase.CreateBuildingInput{Address: "1 Maple St"}, "Building name is required"},
		{"blank name", usecase.CreateBuildingInput{Name: "   ", Address: "1 Maple St"}, "Building name is required"},
		{"both missing reports name first", usecase.CreateBuildingInput{}, "Building name is required"},
		{"blank address", usecase.CreateBuildingInput{Name: "Maple Court", Address: "\t"}, "Building address is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestBuildingService(t)

			building, err := fx.service.Create(context.Background(), &tt.input)

			assert.Nil(t, building)
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
		})
	}
}

func TestBuildingService_GetByID(t *testing.T) {
	ctx := context.Background()
	building := &entity.Building{ID: "b1", Name: "Maple Court", Address: "1 Maple St"}

	t.Run("with summary", func(t *testing.T) {
		fx := createTestBuildingService(t)
		fx.buildingRepo.EXPECT().FindBuildingByID(ctx, "b1").Return(building, nil)
		fx.summaryRepo.EXPECT().FindSummaryByBuilding(ctx, "b1").
			Return(&entity.Summary{BuildingID: "b1", Content: "Nice", AverageRating: 4.5, CommentCount: 2}, nil)

		result, err := fx.service.GetByID(ctx, "b1")

		require.NoError(t, err)
		assert.Equal(t, "Maple Court", result.Name)
		require.NotNil(t, result.Summary)
		assert.Equal(t, "Nice", result.Summary.Content)
		assert.Equal(t, 2, result.Summary.CommentCount)
	})

	t.Run("without summary", func(t *testing.T) {
		fx := createTestBuildingService(t)
		fx.buildingRepo.EXPECT().FindBuildingByID(ctx, "b1").Return(building, nil)
		fx.summaryRepo.EXPECT().FindSummaryByBuilding(ctx, "b1").Return(nil, repository.ErrSummaryNotFound)

		result, err := fx.service.GetByID(ctx, "b1")

		require.NoError(t, err)
		assert.Nil(t, result.Summary)
	})

	t.Run("missing building", func(t *testing.T) {
		fx := createTestBuildingService(t)
		fx.buildingRepo.EXPECT().FindBuildingByID(ctx, "unknown-id").Return(nil, repository.ErrBuildingNotFound)

		result, err := fx.service.GetByID(ctx, "unknown-id")

		assert.Nil(t, result)
		require.Error(t, err)
		assert.Equal(t, "Building not found: unknown-id", err.Error())
		assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
	})

	t.Run("database failure", func(t *testing.T) {
		fx := createTestBuildingService(t)
		fx.buildingRepo.EXPECT().FindBuildingByID(ctx, "b1").Return(nil, errors.New("connection reset"))

		_, err := fx.service.GetByID(ctx, "b1")

		require.Error(t, err)
		assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
	})
}

func TestBuildingService_List_Defaults(t *testing.T) {
	fx := createTestBuildingService(t)
	ctx := context.Background()

	fx.buildingRepo.EXPECT().
		FindBuildings(ctx, repository.BuildingFilter{Search: "maple", Limit: 50, Offset: 0}).
		Return(nil, nil)

	buildings, err := fx.service.List(ctx, usecase.ListBuildingsQuery{Search: "  maple  "})

	require.NoError(t, err)
	assert.NotNil(t, buildings)
	assert.Empty(t, buildings)
}

func TestBuildingService_List_Paging(t *testing.T) {
	fx := createTestBuildingService(t)
	ctx := context.Background()

	fx.buildingRepo.EXPECT().
		FindBuildings(ctx, repository.BuildingFilter{Limit: 2, Offset: 1}).
		Return([]*entity.Building{{ID: "b2"}, {ID: "b3"}}, nil)

	buildings, err := fx.service.List(ctx, usecase.ListBuildingsQuery{Limit: ptr(2), Offset: ptr(1)})

	require.NoError(t, err)
	assert.Len(t, buildings, 2)
}

func TestBuildingService_Exists(t *testing.T) {
	fx := createTestBuildingService(t)
	ctx := context.Background()

	fx.buildingRepo.EXPECT().ExistsBuilding(ctx, "b1").Return(true, nil)
	fx.buildingRepo.EXPECT().ExistsBuilding(ctx, "b2").Return(false, errors.New("timeout"))

	exists, err := fx.service.Exists(ctx, "b1")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = fx.service.Exists(ctx, "b2")
	assert.Error(t, err)
}
