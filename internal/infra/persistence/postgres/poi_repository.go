package postgres

import (
	"context"

	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/repository"
	"wayfinder/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// haversineSQL computes the great-circle distance in kilometers between a POI
// row and the given center, entirely inside PostgreSQL.
const haversineSQL = `(6371 * acos(least(1.0,
	cos(radians(?)) * cos(radians(latitude)) * cos(radians(longitude) - radians(?)) +
	sin(radians(?)) * sin(radians(latitude)))))`

// poiRepository implements the repository.PoiRepository interface.
type poiRepository struct {
	db *gorm.DB
}

// NewPoiRepository is the constructor for poiRepository.
func NewPoiRepository(db *gorm.DB) repository.PoiRepository {
	return &poiRepository{db: db}
}

// Create persists a new POI submission.
func (repo *poiRepository) Create(ctx context.Context, poi *entity.POI) error {
	poiM := fromPoiDomain(poi)

	if err := repo.db.WithContext(ctx).Create(poiM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrPoiCreationFailed.WrapMessage("poi already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPoiCreationFailed.WrapMessage("invalid creator reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrPoiCreationFailed.WrapMessage("missing required poi information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create poi")
	}

	// Update the entity with generated values
	poi.ID = poiM.ID
	poi.CreatedAt = poiM.CreatedAt
	poi.UpdatedAt = poiM.UpdatedAt

	return nil
}

// FindByID retrieves a POI by its unique ID.
func (repo *poiRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.POI, error) {
	var poiM model.PoiModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&poiM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPoiNotFound
		}

		return nil, errors.Wrap(err, "failed to find poi by ID")
	}

	return toPoiDomain(&poiM), nil
}

// FindApproved retrieves all moderation-approved POIs.
func (repo *poiRepository) FindApproved(ctx context.Context) ([]*entity.POI, error) {
	var poiModels []*model.PoiModel
	err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&poiModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find approved pois")
	}

	return toPoiDomainList(poiModels), nil
}

// FindByCreator retrieves all POIs submitted by a user, approved or not.
func (repo *poiRepository) FindByCreator(ctx context.Context, userID uuid.UUID) ([]*entity.POI, error) {
	var poiModels []*model.PoiModel
	err := repo.db.WithContext(ctx).
		Where("created_by = ?", userID).
		Order("created_at DESC").
		Find(&poiModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find pois by creator")
	}

	return toPoiDomainList(poiModels), nil
}

// SearchByLocation retrieves approved POIs within radiusKm of center,
// closest first.
func (repo *poiRepository) SearchByLocation(ctx context.Context, center entity.Coordinate, radiusKm float64) ([]*entity.POI, error) {
	var poiModels []*model.PoiModel
	err := repo.db.WithContext(ctx).
		Select("*, "+haversineSQL+" AS distance_km", center.Latitude, center.Longitude, center.Latitude).
		Where("is_active = ?", true).
		Where(haversineSQL+" <= ?", center.Latitude, center.Longitude, center.Latitude, radiusKm).
		Order("distance_km ASC").
		Find(&poiModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to search pois by location")
	}

	return toPoiDomainList(poiModels), nil
}

// SetActive flips the moderation state of a POI.
func (repo *poiRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PoiModel{}).
		Where("id = ?", id).
		Update("is_active", active)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update poi moderation state")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPoiNotFound
	}

	return nil
}

// Delete removes a POI permanently.
func (repo *poiRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PoiModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete poi")
	}

	// If no rows were affected, it means the POI was not found.
	if result.RowsAffected == 0 {
		return repository.ErrPoiNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPoiDomain converts a GORM PoiModel to a domain POI entity.
func toPoiDomain(data *model.PoiModel) *entity.POI {
	if data == nil {
		return nil
	}

	return &entity.POI{
		ID:          data.ID,
		Name:        data.Name,
		Category:    data.Category,
		Description: data.Description,
		Address:     data.Address,
		City:        data.City,
		Contact:     data.Contact,
		ImageURLs:   data.ImageURLs,
		Amenities:   data.Amenities,
		Keywords:    data.Keywords,
		Location: entity.Coordinate{
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
		},
		IsActive:  data.IsActive,
		CreatedBy: data.CreatedBy,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toPoiDomainList(data []*model.PoiModel) []*entity.POI {
	pois := make([]*entity.POI, 0, len(data))
	for _, poiM := range data {
		pois = append(pois, toPoiDomain(poiM))
	}

	return pois
}

// fromPoiDomain converts a domain POI entity to a GORM PoiModel.
func fromPoiDomain(data *entity.POI) *model.PoiModel {
	if data == nil {
		return nil
	}

	return &model.PoiModel{
		ID:          data.ID,
		Name:        data.Name,
		Category:    data.Category,
		Description: data.Description,
		Address:     data.Address,
		City:        data.City,
		Contact:     data.Contact,
		ImageURLs:   data.ImageURLs,
		Amenities:   data.Amenities,
		Keywords:    data.Keywords,
		Latitude:    data.Location.Latitude,
		Longitude:   data.Location.Longitude,
		IsActive:    data.IsActive,
		CreatedBy:   data.CreatedBy,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
