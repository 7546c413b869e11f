package model

import "time"

// CommentModel is the GORM-specific struct for the 'comments' table.
type CommentModel struct {
	ID         string    `gorm:"type:uuid;primaryKey"`
	BuildingID string    `gorm:"type:uuid;not null;index:idx_comments_building_created"`
	Rating     int       `gorm:"type:smallint;not null"`
	Content    string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"index:idx_comments_building_created"`
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}
