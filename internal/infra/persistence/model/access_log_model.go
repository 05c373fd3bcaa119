package model

import (
	"time"

	"github.com/google/uuid"
)

// AccessLogModel is the GORM-specific struct for the 'access_logs' table.
type AccessLogModel struct {
	ID             uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	PoiID          uuid.UUID         `gorm:"type:uuid;not null;index"`
	UserID         uuid.UUID         `gorm:"type:uuid;not null;index"`
	OrganizationID uuid.UUID         `gorm:"type:uuid;index"`
	PlatformType   string            `gorm:"type:varchar(50);not null"`
	AccessType     string            `gorm:"type:varchar(20);not null;index"`
	Metadata       map[string]string `gorm:"type:jsonb;serializer:json"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccessLogModel) TableName() string {
	return "access_logs"
}
