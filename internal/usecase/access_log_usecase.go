package usecase

import (
	"wayfinder/internal/domain/entity"
)

// AccessLogUsecase records analytics events with a strict never-blocks,
// never-fails contract: failures are logged and swallowed, and events may be
// dropped under load.
type AccessLogUsecase interface {
	// Record enqueues one access event.
	Record(log *entity.AccessLog)

	// Close drains the queue and stops the worker.
	Close() error
}
