package postgres

import (
	"context"
	"time"

	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/repository"
	"wayfinder/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tripRepository implements the repository.TripRepository interface.
type tripRepository struct {
	db *gorm.DB
}

// NewTripRepository is the constructor for tripRepository.
func NewTripRepository(db *gorm.DB) repository.TripRepository {
	return &tripRepository{db: db}
}

// Create persists the summary of a successfully computed route.
func (repo *tripRepository) Create(ctx context.Context, trip *entity.Trip) error {
	tripM := fromTripDomain(trip)

	if err := repo.db.WithContext(ctx).Create(tripM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPoiNotFound.WrapMessage("trip references an unknown poi")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required trip information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create trip")
	}

	// Update the entity with generated values
	trip.ID = tripM.ID
	trip.CreatedAt = tripM.CreatedAt

	return nil
}

// FindByUser retrieves the trip history of a user, newest first.
func (repo *tripRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Trip, error) {
	var tripModels []*model.TripModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tripModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find trips by user")
	}

	trips := make([]*entity.Trip, 0, len(tripModels))
	for _, tripM := range tripModels {
		trips = append(trips, toTripDomain(tripM))
	}

	return trips, nil
}

// --- Mapper Functions ---

// toTripDomain converts a GORM TripModel to a domain Trip entity.
func toTripDomain(data *model.TripModel) *entity.Trip {
	if data == nil {
		return nil
	}

	return &entity.Trip{
		ID:         data.ID,
		UserID:     data.UserID,
		PoiID:      data.PoiID,
		DepartName: data.DepartName,
		ArriveName: data.ArriveName,
		Distance:   data.DistanceM,
		Duration:   time.Duration(data.DurationS) * time.Second,
		Mode:       entity.TransportMode(data.Mode),
		CreatedAt:  data.CreatedAt,
	}
}

// fromTripDomain converts a domain Trip entity to a GORM TripModel.
func fromTripDomain(data *entity.Trip) *model.TripModel {
	if data == nil {
		return nil
	}

	return &model.TripModel{
		ID:         data.ID,
		UserID:     data.UserID,
		PoiID:      data.PoiID,
		DepartName: data.DepartName,
		ArriveName: data.ArriveName,
		DistanceM:  data.Distance,
		DurationS:  int64(data.Duration / time.Second),
		Mode:       data.Mode.String(),
		CreatedAt:  data.CreatedAt,
	}
}
