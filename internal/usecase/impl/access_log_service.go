// Package impl contains the concrete implementations of the usecase
// interfaces.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"wayfinder/internal/domain/entity"
	"wayfinder/internal/domain/repository"
	"wayfinder/internal/domain/service"
	"wayfinder/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultAccessLogQueueSize = 256
	accessLogWriteTimeout     = 5 * time.Second
)

// accessLogService implements the AccessLogUsecase interface as a best-effort
// queue: a buffered channel drained by a single worker. Record drops events
// on overflow instead of blocking.
type accessLogService struct {
	queue     chan *entity.AccessLog
	repo      repository.AccessLogRepository
	publisher service.EventPublisher
	logger    *slog.Logger

	mu     sync.Mutex
	closed bool

	done      chan struct{}
	closeOnce sync.Once
}

// NewAccessLogService creates the access log queue and starts its worker.
func NewAccessLogService(
	repo repository.AccessLogRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
	queueSize int,
) usecase.AccessLogUsecase {
	if queueSize <= 0 {
		queueSize = defaultAccessLogQueueSize
	}

	s := &accessLogService{
		queue:     make(chan *entity.AccessLog, queueSize),
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		done:      make(chan struct{}),
	}

	go s.worker()

	return s
}

// Record enqueues one access event. It never blocks and never fails; events
// are dropped when the queue is full or already closed.
func (s *accessLogService) Record(log *entity.AccessLog) {
	if log == nil {
		return
	}

	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	select {
	case s.queue <- log:
	default:
		s.logger.Warn("access log queue full, dropping event",
			slog.String("poi_id", log.PoiID.String()),
			slog.String("access_type", log.AccessType.String()),
		)
	}
}

// Close drains the queue and stops the worker.
func (s *accessLogService) Close() error {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		close(s.queue)
		s.mu.Unlock()

		<-s.done
	})

	return nil
}

func (s *accessLogService) worker() {
	defer close(s.done)

	for log := range s.queue {
		s.process(log)
	}
}

// process persists and publishes one event. Failures are logged only.
func (s *accessLogService) process(log *entity.AccessLog) {
	ctx, cancel := context.WithTimeout(context.Background(), accessLogWriteTimeout)
	defer cancel()

	if err := s.repo.Create(ctx, log); err != nil {
		s.logger.Warn("failed to persist access log",
			slog.String("poi_id", log.PoiID.String()),
			slog.String("access_type", log.AccessType.String()),
			slog.Any("error", err),
		)
	}

	event := &service.AccessEvent{
		EventID:        log.ID.String(),
		PoiID:          log.PoiID,
		UserID:         log.UserID,
		OrganizationID: log.OrganizationID,
		PlatformType:   log.PlatformType,
		AccessType:     log.AccessType.String(),
		Metadata:       log.Metadata,
		OccurredAt:     log.CreatedAt,
	}
	if err := s.publisher.PublishAccessEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish access event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
	}
}
