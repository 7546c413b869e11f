package memory

import (
	"context"
	"sort"
	"strings"

	"rating/internal/domain/entity"
	"rating/internal/domain/repository"
)

type buildingRepository struct {
	store *Store
}

// NewBuildingRepository returns a BuildingRepository backed by store.
func NewBuildingRepository(store *Store) repository.BuildingRepository {
	return &buildingRepository{store: store}
}

func (repo *buildingRepository) CreateBuilding(_ context.Context, building *entity.Building) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	row := *building
	repo.store.buildings[building.ID] = &row

	return nil
}

func (repo *buildingRepository) FindBuildingByID(_ context.Context, id string) (*entity.Building, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	row, ok := repo.store.buildings[id]
	if !ok {
		return nil, repository.ErrBuildingNotFound
	}

	building := *row

	return &building, nil
}

type rankedBuilding struct {
	building *entity.Building
	rank     int
}

// FindBuildings approximates PostgreSQL full-text search: every search token
// must occur in name or address, and rank counts token occurrences.
func (repo *buildingRepository) FindBuildings(_ context.Context, filter repository.BuildingFilter) ([]*entity.Building, error) {
	repo.store.mu.RLock()
	tokens := strings.Fields(strings.ToLower(filter.Search))
	ranked := make([]rankedBuilding, 0, len(repo.store.buildings))
	for _, row := range repo.store.buildings {
		rank, ok := matchRank(row, tokens)
		if !ok {
			continue
		}
		building := *row
		ranked = append(ranked, rankedBuilding{building: &building, rank: rank})
	}
	repo.store.mu.RUnlock()

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].rank != ranked[j].rank {
			return ranked[i].rank > ranked[j].rank
		}
		if !ranked[i].building.CreatedAt.Equal(ranked[j].building.CreatedAt) {
			return ranked[i].building.CreatedAt.After(ranked[j].building.CreatedAt)
		}

		return ranked[i].building.ID < ranked[j].building.ID
	})

	buildings := make([]*entity.Building, 0, len(ranked))
	for _, r := range ranked {
		buildings = append(buildings, r.building)
	}

	return page(buildings, filter.Limit, filter.Offset), nil
}

func matchRank(building *entity.Building, tokens []string) (int, bool) {
	if len(tokens) == 0 {
		return 0, true
	}

	haystack := strings.ToLower(building.Name + " " + building.Address)
	rank := 0
	for _, token := range tokens {
		n := strings.Count(haystack, token)
		if n == 0 {
			return 0, false
		}
		rank += n
	}

	return rank, true
}

func (repo *buildingRepository) ExistsBuilding(_ context.Context, id string) (bool, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	_, ok := repo.store.buildings[id]

	return ok, nil
}
