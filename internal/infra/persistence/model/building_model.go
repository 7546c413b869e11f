package model

import "time"

// BuildingModel is the GORM-specific struct for the 'buildings' table.
// The generated search_vector column is maintained by PostgreSQL and never written.
type BuildingModel struct {
	ID          string  `gorm:"type:uuid;primaryKey"`
	Name        string  `gorm:"type:text;not null"`
	Address     string  `gorm:"type:text;not null"`
	PriceRange  *string `gorm:"type:text"`
	Description *string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BuildingModel) TableName() string {
	return "buildings"
}
