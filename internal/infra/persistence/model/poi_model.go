// Package model contains the GORM-specific structs mapped to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// PoiModel is the GORM-specific struct for the 'pois' table.
type PoiModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Category    string    `gorm:"type:varchar(100);not null;index"`
	Description string    `gorm:"type:text"`
	Address     string    `gorm:"type:text"`
	City        string    `gorm:"type:varchar(100)"`
	Contact     string    `gorm:"type:varchar(255)"`
	ImageURLs   []string  `gorm:"type:jsonb;serializer:json"`
	Amenities   []string  `gorm:"type:jsonb;serializer:json"`
	Keywords    []string  `gorm:"type:jsonb;serializer:json"`
	Latitude    float64   `gorm:"type:decimal(10,8);not null;index:idx_pois_on_location"`
	Longitude   float64   `gorm:"type:decimal(11,8);not null;index:idx_pois_on_location"`
	IsActive    bool      `gorm:"not null;default:false;index"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PoiModel) TableName() string {
	return "pois"
}
