package postgres

import (
	"context"

	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/repository"
	"wayfinder/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// accessLogRepository implements the repository.AccessLogRepository interface.
type accessLogRepository struct {
	db *gorm.DB
}

// NewAccessLogRepository is the constructor for accessLogRepository.
func NewAccessLogRepository(db *gorm.DB) repository.AccessLogRepository {
	return &accessLogRepository{db: db}
}

// Create persists one access event.
func (repo *accessLogRepository) Create(ctx context.Context, log *entity.AccessLog) error {
	logM := fromAccessLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create access log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

// --- Mapper Functions ---

// fromAccessLogDomain converts a domain AccessLog entity to a GORM AccessLogModel.
func fromAccessLogDomain(data *entity.AccessLog) *model.AccessLogModel {
	if data == nil {
		return nil
	}

	return &model.AccessLogModel{
		ID:             data.ID,
		PoiID:          data.PoiID,
		UserID:         data.UserID,
		OrganizationID: data.OrganizationID,
		PlatformType:   data.PlatformType,
		AccessType:     data.AccessType.String(),
		Metadata:       data.Metadata,
		CreatedAt:      data.CreatedAt,
	}
}
