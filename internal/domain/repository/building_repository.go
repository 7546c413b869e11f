// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"rating/internal/domain/entity"
	"rating/internal/errors"
)

// Domain-specific errors for persistence lookups.
var (
	// ErrBuildingNotFound is returned when a building is not found.
	ErrBuildingNotFound = errors.New("building not found")
	// ErrSummaryNotFound is returned when a building has no summary yet.
	ErrSummaryNotFound = errors.New("summary not found")
)

// BuildingFilter narrows and pages a building listing.
type BuildingFilter struct {
	// Search is a full-text query over name and address. Empty means recency ordering.
	Search string
	Limit  int
	Offset int
}

// BuildingRepository defines the interface for building-related database operations.
type BuildingRepository interface {
	// CreateBuilding persists a new building. ID and timestamps must already be set.
	CreateBuilding(ctx context.Context, building *entity.Building) error

	// FindBuildingByID retrieves a building by ID.
	// Returns ErrBuildingNotFound if no building matches.
	FindBuildingByID(ctx context.Context, id string) (*entity.Building, error)

	// FindBuildings lists buildings newest first, or by relevance then recency when
	// filter.Search is set.
	FindBuildings(ctx context.Context, filter BuildingFilter) ([]*entity.Building, error)

	// ExistsBuilding reports whether a building with the ID exists.
	ExistsBuilding(ctx context.Context, id string) (bool, error)
}
