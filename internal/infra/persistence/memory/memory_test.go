package memory

import (
	"context"
	"testing"

	"wayfinder/internal/domain/entity"
	"wayfinder/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPoi(name string, active bool, lat, lon float64) *entity.POI {
	return &entity.POI{
		Name:      name,
		Category:  "restaurant",
		Location:  entity.Coordinate{Latitude: lat, Longitude: lon},
		IsActive:  active,
		CreatedBy: uuid.New(),
	}
}

func TestPoiRepository_CreateAndFindByID(t *testing.T) {
	repo := NewPoiRepository()
	ctx := context.Background()

	poi := newTestPoi("Marche Central", true, 3.8480, 11.5021)
	require.NoError(t, repo.Create(ctx, poi))
	require.NotEqual(t, uuid.Nil, poi.ID)

	found, err := repo.FindByID(ctx, poi.ID)
	require.NoError(t, err)
	assert.Equal(t, "Marche Central", found.Name)
	assert.True(t, found.IsActive)
}

func TestPoiRepository_FindByID_NotFound(t *testing.T) {
	repo := NewPoiRepository()

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrPoiNotFound)
}

func TestPoiRepository_FindApproved_FiltersInactive(t *testing.T) {
	repo := NewPoiRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestPoi("approved", true, 3.85, 11.50)))
	require.NoError(t, repo.Create(ctx, newTestPoi("pending", false, 3.86, 11.51)))

	pois, err := repo.FindApproved(ctx)
	require.NoError(t, err)
	require.Len(t, pois, 1)
	assert.Equal(t, "approved", pois[0].Name)
}

func TestPoiRepository_FindByCreator_IncludesPending(t *testing.T) {
	repo := NewPoiRepository()
	ctx := context.Background()

	creator := uuid.New()
	mine := newTestPoi("mine", false, 3.85, 11.50)
	mine.CreatedBy = creator
	require.NoError(t, repo.Create(ctx, mine))
	require.NoError(t, repo.Create(ctx, newTestPoi("other", true, 3.86, 11.51)))

	pois, err := repo.FindByCreator(ctx, creator)
	require.NoError(t, err)
	require.Len(t, pois, 1)
	assert.Equal(t, "mine", pois[0].Name)
	assert.False(t, pois[0].IsActive)
}

func TestPoiRepository_SearchByLocation(t *testing.T) {
	repo := NewPoiRepository()
	ctx := context.Background()

	center := entity.Coordinate{Latitude: 3.8480, Longitude: 11.5021}
	near := newTestPoi("near", true, 3.8490, 11.5030)
	far := newTestPoi("far", true, 3.8667, 11.5167)
	veryFar := newTestPoi("another city", true, 4.0511, 9.7679)
	require.NoError(t, repo.Create(ctx, near))
	require.NoError(t, repo.Create(ctx, far))
	require.NoError(t, repo.Create(ctx, veryFar))

	pois, err := repo.SearchByLocation(ctx, center, 5)
	require.NoError(t, err)
	require.Len(t, pois, 2)
	assert.Equal(t, "near", pois[0].Name)
	assert.Equal(t, "far", pois[1].Name)
}

func TestPoiRepository_SetActive(t *testing.T) {
	repo := NewPoiRepository()
	ctx := context.Background()

	poi := newTestPoi("pending", false, 3.85, 11.50)
	require.NoError(t, repo.Create(ctx, poi))

	require.NoError(t, repo.SetActive(ctx, poi.ID, true))

	found, err := repo.FindByID(ctx, poi.ID)
	require.NoError(t, err)
	assert.True(t, found.IsActive)

	assert.ErrorIs(t, repo.SetActive(ctx, uuid.New(), true), repository.ErrPoiNotFound)
}

func TestPoiRepository_Delete(t *testing.T) {
	repo := NewPoiRepository()
	ctx := context.Background()

	poi := newTestPoi("doomed", true, 3.85, 11.50)
	require.NoError(t, repo.Create(ctx, poi))
	require.NoError(t, repo.Delete(ctx, poi.ID))

	_, err := repo.FindByID(ctx, poi.ID)
	assert.ErrorIs(t, err, repository.ErrPoiNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, poi.ID), repository.ErrPoiNotFound)
}

func TestTripRepository_FindByUser_NewestFirst(t *testing.T) {
	repo := NewTripRepository()
	ctx := context.Background()

	userID := uuid.New()
	first := &entity.Trip{UserID: userID, DepartName: "A", ArriveName: "B", Mode: entity.ModeDriving}
	second := &entity.Trip{UserID: userID, DepartName: "B", ArriveName: "C", Mode: entity.ModeWalking}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, &entity.Trip{UserID: uuid.New(), DepartName: "X", ArriveName: "Y", Mode: entity.ModeDriving}))

	trips, err := repo.FindByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, "C", trips[0].ArriveName)
	assert.Equal(t, "B", trips[1].ArriveName)
}

func TestAccessLogRepository_Create(t *testing.T) {
	repo := NewAccessLogRepository()
	ctx := context.Background()

	log := &entity.AccessLog{
		PoiID:      uuid.New(),
		UserID:     uuid.New(),
		AccessType: entity.AccessTypeView,
	}
	require.NoError(t, repo.Create(ctx, log))
	require.NotEqual(t, uuid.Nil, log.ID)

	all := repo.All()
	require.Len(t, all, 1)
	assert.Equal(t, entity.AccessTypeView, all[0].AccessType)
}
