// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"rating/internal/domain/entity"
	domainerrors "rating/internal/domain/errors"
	"rating/internal/domain/repository"
	"rating/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const searchRankOrder = "ts_rank(search_vector, plainto_tsquery('english', ?)) DESC, created_at DESC"

// buildingRepository implements the repository.BuildingRepository interface.
type buildingRepository struct {
	db *gorm.DB
}

// NewBuildingRepository is the constructor for buildingRepository.
func NewBuildingRepository(db *gorm.DB) repository.BuildingRepository {
	return &buildingRepository{db: db}
}

// CreateBuilding persists a new building.
func (repo *buildingRepository) CreateBuilding(ctx context.Context, building *entity.Building) error {
	buildingM := fromBuildingDomain(building)

	if err := repo.db.WithContext(ctx).Create(buildingM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewValidationError("missing required building information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create building")
	}

	return nil
}

// FindBuildingByID retrieves a building by its unique ID.
func (repo *buildingRepository) FindBuildingByID(ctx context.Context, id string) (*entity.Building, error) {
	if !isUUID(id) {
		return nil, repository.ErrBuildingNotFound
	}

	var buildingM model.BuildingModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&buildingM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBuildingNotFound
		}

		return nil, errors.Wrap(err, "failed to find building by ID")
	}

	return toBuildingDomain(&buildingM), nil
}

// FindBuildings lists buildings by recency, or by full-text rank when a search term is set.
func (repo *buildingRepository) FindBuildings(ctx context.Context, filter repository.BuildingFilter) ([]*entity.Building, error) {
	query := repo.db.WithContext(ctx).Model(&model.BuildingModel{})

	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.
			Where("search_vector @@ plainto_tsquery('english', ?)", search).
			Order(clause.OrderBy{Expression: clause.Expr{SQL: searchRankOrder, Vars: []any{search}, WithoutParentheses: true}})
	} else {
		query = query.Order("created_at DESC")
	}

	var buildingModels []*model.BuildingModel
	err := query.
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&buildingModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find buildings")
	}

	buildings := make([]*entity.Building, 0, len(buildingModels))
	for _, buildingM := range buildingModels {
		buildings = append(buildings, toBuildingDomain(buildingM))
	}

	return buildings, nil
}

// ExistsBuilding reports whether a building with the ID exists.
func (repo *buildingRepository) ExistsBuilding(ctx context.Context, id string) (bool, error) {
	if !isUUID(id) {
		return false, nil
	}

	var exists bool
	err := repo.db.WithContext(ctx).
		Raw("SELECT EXISTS(SELECT 1 FROM buildings WHERE id = ?)", id).
		Scan(&exists).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check building existence")
	}

	return exists, nil
}

// --- Mapper Functions ---

func toBuildingDomain(data *model.BuildingModel) *entity.Building {
	if data == nil {
		return nil
	}

	return &entity.Building{
		ID:          data.ID,
		Name:        data.Name,
		Address:     data.Address,
		PriceRange:  data.PriceRange,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromBuildingDomain(data *entity.Building) *model.BuildingModel {
	if data == nil {
		return nil
	}

	return &model.BuildingModel{
		ID:          data.ID,
		Name:        data.Name,
		Address:     data.Address,
		PriceRange:  data.PriceRange,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
