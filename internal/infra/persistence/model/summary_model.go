package model

import "time"

// SummaryModel is the GORM-specific struct for the 'summaries' table.
type SummaryModel struct {
	BuildingID    string    `gorm:"type:uuid;primaryKey"`
	Content       string    `gorm:"type:text;not null"`
	AverageRating float64   `gorm:"type:numeric(3,2);not null"`
	CommentCount  int       `gorm:"not null"`
	LastUpdated   time.Time `gorm:"column:last_updated;not null"`
}

// TableName explicitly sets the table name for GORM.
func (SummaryModel) TableName() string {
	return "summaries"
}
