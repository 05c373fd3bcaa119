package memory

import (
	"context"
	"sync"
	"time"

	"wayfinder/internal/domain/entity"

	"github.com/google/uuid"
)

// AccessLogRepository is an in-memory implementation of repository.AccessLogRepository.
type AccessLogRepository struct {
	mu   sync.RWMutex
	logs []*entity.AccessLog
}

// NewAccessLogRepository is the constructor for the in-memory AccessLogRepository.
func NewAccessLogRepository() *AccessLogRepository {
	return &AccessLogRepository{}
}

// Create persists one access event.
func (repo *AccessLogRepository) Create(_ context.Context, log *entity.AccessLog) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}

	cloned := *log
	repo.logs = append(repo.logs, &cloned)

	return nil
}

// All returns a snapshot of every recorded event, oldest first.
func (repo *AccessLogRepository) All() []*entity.AccessLog {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	logs := make([]*entity.AccessLog, 0, len(repo.logs))
	for _, log := range repo.logs {
		cloned := *log
		logs = append(logs, &cloned)
	}

	return logs
}
