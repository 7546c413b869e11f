package entity

import "time"

const (
	// MinAverageRating is the lower bound of a summary average.
	MinAverageRating = 0.0
	// MaxAverageRating is the upper bound of a summary average.
	MaxAverageRating = 5.0
)

// Summary is the externally generated digest of a building's comments.
// There is at most one summary per building and it is always replaced wholesale.
type Summary struct {
	BuildingID    string    `json:"buildingId"`
	Content       string    `json:"content"`
	AverageRating float64   `json:"averageRating"`
	CommentCount  int       `json:"commentCount"`
	LastUpdated   time.Time `json:"lastUpdated"` // Assigned by the store on every write.
}
