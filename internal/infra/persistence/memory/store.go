// Package memory is an in-process implementation of the repositories. It backs
// local runs without PostgreSQL and the end-to-end HTTP tests.
package memory

import (
	"sync"
	"time"

	"rating/internal/domain/entity"
)

// Store holds every table behind one mutex. Rows are copied in and out so
// callers never share memory with the store.
type Store struct {
	mu        sync.RWMutex
	buildings map[string]*entity.Building
	comments  map[string][]*entity.Comment // keyed by building id, insertion order
	summaries map[string]*entity.Summary
	now       func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		buildings: make(map[string]*entity.Building),
		comments:  make(map[string][]*entity.Comment),
		summaries: make(map[string]*entity.Summary),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) || limit <= 0 {
		return []T{}
	}

	end := offset + limit
	if end > len(items) {
		end = len(items)
	}

	return items[offset:end]
}
