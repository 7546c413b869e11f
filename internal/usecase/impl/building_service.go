package impl

import (
	"context"
	"strings"
	"time"

	"rating/internal/domain/entity"
	domainerrors "rating/internal/domain/errors"
	"rating/internal/domain/repository"
	"rating/internal/errors"
	"rating/internal/usecase"

	"github.com/google/uuid"
)

type buildingService struct {
	buildingRepo repository.BuildingRepository
	summaryRepo  repository.SummaryRepository
}

// NewBuildingService creates a new building service instance
func NewBuildingService(buildingRepo repository.BuildingRepository, summaryRepo repository.SummaryRepository) usecase.BuildingUsecase {
	return &buildingService{
		buildingRepo: buildingRepo,
		summaryRepo:  summaryRepo,
	}
}

// List returns buildings newest first, or by relevance when a search term is set
func (s *buildingService) List(ctx context.Context, query usecase.ListBuildingsQuery) ([]*entity.Building, error) {
	limit, offset := pageOrDefault(query.Limit, query.Offset)

	buildings, err := s.buildingRepo.FindBuildings(ctx, repository.BuildingFilter{
		Search: strings.TrimSpace(query.Search),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list buildings")
	}
	if buildings == nil {
		buildings = []*entity.Building{}
	}

	return buildings, nil
}

// GetByID returns a building merged with its summary, if any
func (s *buildingService) GetByID(ctx context.Context, id string) (*entity.BuildingWithSummary, error) {
	building, err := s.buildingRepo.FindBuildingByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBuildingNotFound) {
			return nil, domainerrors.NewBuildingNotFoundError(id)
		}

		return nil, errors.Wrap(err, "failed to find building by ID")
	}

	summary, err := s.summaryRepo.FindSummaryByBuilding(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrSummaryNotFound) {
			return nil, errors.Wrap(err, "failed to find building summary")
		}
		summary = nil
	}

	return entity.NewBuildingWithSummary(building, summary), nil
}

// Create validates and persists a new building
func (s *buildingService) Create(ctx context.Context, input *usecase.CreateBuildingInput) (*entity.Building, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.NewValidationError("Building name is required")
	}

	address := strings.TrimSpace(input.Address)
	if address == "" {
		return nil, domainerrors.NewValidationError("Building address is required")
	}

	now := time.Now().UTC()
	building := &entity.Building{
		ID:          uuid.NewString(),
		Name:        name,
		Address:     address,
		PriceRange:  trimOptional(input.PriceRange),
		Description: trimOptional(input.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.buildingRepo.CreateBuilding(ctx, building); err != nil {
		return nil, errors.Wrap(err, "failed to create building")
	}

	return building, nil
}

// Exists reports whether the building is present
func (s *buildingService) Exists(ctx context.Context, id string) (bool, error) {
	exists, err := s.buildingRepo.ExistsBuilding(ctx, id)
	if err != nil {
		return false, errors.Wrap(err, "failed to check building existence")
	}

	return exists, nil
}

func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*value)

	return &trimmed
}

func pageOrDefault(limit, offset *int) (int, int) {
	l, o := usecase.DefaultListLimit, 0
	if limit != nil {
		l = *limit
	}
	if offset != nil {
		o = *offset
	}

	return l, o
}
