// Package memory provides mutex-guarded in-memory implementations of the
// repository interfaces. They back unit tests and local development where a
// PostgreSQL instance is not available.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"wayfinder/internal/domain/entity"
	"wayfinder/internal/domain/repository"
	"wayfinder/internal/geo"

	"github.com/google/uuid"
)

// PoiRepository is an in-memory implementation of repository.PoiRepository.
type PoiRepository struct {
	mu   sync.RWMutex
	pois map[uuid.UUID]*entity.POI
}

// NewPoiRepository is the constructor for the in-memory PoiRepository.
func NewPoiRepository() *PoiRepository {
	return &PoiRepository{
		pois: make(map[uuid.UUID]*entity.POI),
	}
}

// Create persists a new POI submission.
func (repo *PoiRepository) Create(_ context.Context, poi *entity.POI) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if poi.ID == uuid.Nil {
		poi.ID = uuid.New()
	}
	now := time.Now()
	if poi.CreatedAt.IsZero() {
		poi.CreatedAt = now
	}
	poi.UpdatedAt = now

	cloned := *poi
	repo.pois[poi.ID] = &cloned

	return nil
}

// FindByID retrieves a POI by its unique ID.
func (repo *PoiRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.POI, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	poi, ok := repo.pois[id]
	if !ok {
		return nil, repository.ErrPoiNotFound
	}

	cloned := *poi

	return &cloned, nil
}

// FindApproved retrieves all moderation-approved POIs.
func (repo *PoiRepository) FindApproved(_ context.Context) ([]*entity.POI, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return repo.collect(func(poi *entity.POI) bool {
		return poi.IsActive
	}), nil
}

// FindByCreator retrieves all POIs submitted by a user, approved or not.
func (repo *PoiRepository) FindByCreator(_ context.Context, userID uuid.UUID) ([]*entity.POI, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return repo.collect(func(poi *entity.POI) bool {
		return poi.CreatedBy == userID
	}), nil
}

// SearchByLocation retrieves approved POIs within radiusKm of center,
// closest first.
func (repo *PoiRepository) SearchByLocation(_ context.Context, center entity.Coordinate, radiusKm float64) ([]*entity.POI, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	radiusM := radiusKm * 1000
	matches := repo.collect(func(poi *entity.POI) bool {
		return poi.IsActive && geo.Distance(center, poi.Location) <= radiusM
	})

	sort.Slice(matches, func(i, j int) bool {
		return geo.Distance(center, matches[i].Location) < geo.Distance(center, matches[j].Location)
	})

	return matches, nil
}

// SetActive flips the moderation state of a POI.
func (repo *PoiRepository) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	poi, ok := repo.pois[id]
	if !ok {
		return repository.ErrPoiNotFound
	}

	poi.IsActive = active
	poi.UpdatedAt = time.Now()

	return nil
}

// Delete removes a POI permanently.
func (repo *PoiRepository) Delete(_ context.Context, id uuid.UUID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.pois[id]; !ok {
		return repository.ErrPoiNotFound
	}

	delete(repo.pois, id)

	return nil
}

// collect returns clones of the stored POIs matching the predicate, newest
// first. Callers must hold at least the read lock.
func (repo *PoiRepository) collect(match func(*entity.POI) bool) []*entity.POI {
	pois := make([]*entity.POI, 0, len(repo.pois))
	for _, poi := range repo.pois {
		if match(poi) {
			cloned := *poi
			pois = append(pois, &cloned)
		}
	}

	sort.Slice(pois, func(i, j int) bool {
		return pois[i].CreatedAt.After(pois[j].CreatedAt)
	})

	return pois
}
