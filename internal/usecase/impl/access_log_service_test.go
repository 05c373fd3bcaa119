package impl

import (
	"testing"
	"time"

	"wayfinder/internal/domain/entity"
	"wayfinder/internal/infra/persistence/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessLog_RecordPersistsAndPublishes(t *testing.T) {
	repo := memory.NewAccessLogRepository()
	publisher := &fakePublisher{}
	svc := NewAccessLogService(repo, publisher, testLogger(), 16)

	poiID := uuid.New()
	svc.Record(&entity.AccessLog{
		PoiID:      poiID,
		UserID:     uuid.New(),
		AccessType: entity.AccessTypeView,
	})

	require.Eventually(t, func() bool {
		return len(repo.All()) == 1 && len(publisher.published()) == 1
	}, time.Second, 5*time.Millisecond)

	event := publisher.published()[0]
	assert.Equal(t, poiID, event.PoiID)
	assert.Equal(t, entity.AccessTypeView.String(), event.AccessType)
	assert.NotEmpty(t, event.EventID)

	require.NoError(t, svc.Close())
}

func TestAccessLog_CloseDrainsQueue(t *testing.T) {
	repo := memory.NewAccessLogRepository()
	svc := NewAccessLogService(repo, &fakePublisher{}, testLogger(), 64)

	for range 10 {
		svc.Record(&entity.AccessLog{
			PoiID:      uuid.New(),
			UserID:     uuid.New(),
			AccessType: entity.AccessTypeTrip,
		})
	}

	require.NoError(t, svc.Close())
	assert.Len(t, repo.All(), 10)

	// Records after close are silently dropped, never a panic.
	svc.Record(&entity.AccessLog{PoiID: uuid.New(), AccessType: entity.AccessTypeView})
	assert.Len(t, repo.All(), 10)

	// Close is idempotent.
	require.NoError(t, svc.Close())
}

func TestAccessLog_NeverBlocksWhenFull(t *testing.T) {
	repo := memory.NewAccessLogRepository()
	// Tiny queue to force overflow.
	svc := NewAccessLogService(repo, &fakePublisher{}, testLogger(), 1)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range 100 {
			svc.Record(&entity.AccessLog{
				PoiID:      uuid.New(),
				UserID:     uuid.New(),
				AccessType: entity.AccessTypeView,
			})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Record must never block")
	}

	require.NoError(t, svc.Close())
	// Some events may be dropped under load; the ones kept are persisted.
	assert.NotEmpty(t, repo.All())
	assert.LessOrEqual(t, len(repo.All()), 100)
}
