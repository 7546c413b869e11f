package usecase

import (
	"context"

	"rating/internal/domain/entity"
)

// DefaultListLimit applies when a listing does not specify a limit.
const DefaultListLimit = 50

// ListBuildingsQuery pages and optionally searches the building listing.
// Nil Limit/Offset fall back to DefaultListLimit and 0.
type ListBuildingsQuery struct {
	Search string
	Limit  *int
	Offset *int
}

// CreateBuildingInput represents the input for registering a building
type CreateBuildingInput struct {
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	PriceRange  *string `json:"priceRange,omitempty"`
	Description *string `json:"description,omitempty"`
}

// BuildingUsecase defines the interface for building use cases
type BuildingUsecase interface {
	List(ctx context.Context, query ListBuildingsQuery) ([]*entity.Building, error)
	GetByID(ctx context.Context, id string) (*entity.BuildingWithSummary, error)
	Create(ctx context.Context, input *CreateBuildingInput) (*entity.Building, error)
	// Exists is the referential check the comment and summary use cases share.
	Exists(ctx context.Context, id string) (bool, error)
}
