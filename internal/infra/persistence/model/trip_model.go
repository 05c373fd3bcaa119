package model

import (
	"time"

	"github.com/google/uuid"
)

// TripModel is the GORM-specific struct for the 'trips' table.
type TripModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	PoiID      *uuid.UUID `gorm:"type:uuid;index"`
	DepartName string     `gorm:"type:varchar(255);not null"`
	ArriveName string     `gorm:"type:varchar(255);not null"`
	DistanceM  float64    `gorm:"not null"`
	DurationS  int64      `gorm:"not null"`
	Mode       string     `gorm:"type:varchar(20);not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (TripModel) TableName() string {
	return "trips"
}
