// Package entity contains the core business objects of the project.
package entity

import "time"

// Building is a rentable property that residents review.
type Building struct {
	ID          string    `json:"id"`          // Opaque identifier (UUID string).
	Name        string    `json:"name"`        // Display name, never blank.
	Address     string    `json:"address"`     // Street address, never blank.
	PriceRange  *string   `json:"priceRange"`  // Optional free-form price range, e.g. "$1000-$1500".
	Description *string   `json:"description"` // Optional description.
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BuildingSummary is the summary block embedded in a building detail response.
type BuildingSummary struct {
	Content       string    `json:"content"`
	AverageRating float64   `json:"averageRating"`
	CommentCount  int       `json:"commentCount"`
	LastUpdated   time.Time `json:"lastUpdated"`
}

// BuildingWithSummary is a building merged with its optional summary.
type BuildingWithSummary struct {
	Building
	Summary *BuildingSummary `json:"summary"`
}

// NewBuildingWithSummary merges a building and an optional summary.
func NewBuildingWithSummary(building *Building, summary *Summary) *BuildingWithSummary {
	result := &BuildingWithSummary{Building: *building}
	if summary != nil {
		result.Summary = &BuildingSummary{
			Content:       summary.Content,
			AverageRating: summary.AverageRating,
			CommentCount:  summary.CommentCount,
			LastUpdated:   summary.LastUpdated,
		}
	}

	return result
}
