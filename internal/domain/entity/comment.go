package entity

import "time"

const (
	// MinRating is the lowest rating a resident can give.
	MinRating = 1
	// MaxRating is the highest rating a resident can give.
	MaxRating = 5
)

// Comment is a single resident review of a building.
type Comment struct {
	ID         string    `json:"id"`
	BuildingID string    `json:"buildingId"`
	Rating     int       `json:"rating"` // 1..5 inclusive.
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CommentStats aggregates the comments of one building.
type CommentStats struct {
	Count         int64   `json:"count"`
	AverageRating float64 `json:"averageRating"` // 0 when Count is 0.
}
