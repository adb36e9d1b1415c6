package ports

import (
	"context"

	"feedback-service/internal/feedback/core/domain"
	"feedback-service/internal/result"
)

// FeedbackRepositoryPort is the store surface the usecases depend on.
// Every operation reports failure through the envelope, never by panicking
// or returning a Go error. Get's zero-match behavior and AlreadyExists'
// inverted Succeeded semantics follow the storage contract (see
// internal/storage/postgres).
type FeedbackRepositoryPort interface {
	Add(ctx context.Context, f *domain.Feedback) result.Result
	Update(ctx context.Context, f *domain.Feedback) result.Result
	Delete(ctx context.Context, f *domain.Feedback) result.Result
	GetAll(ctx context.Context) result.Of[[]*domain.Feedback]
	Get(ctx context.Context, pred func(*domain.Feedback) bool) result.Of[*domain.Feedback]
	AlreadyExists(ctx context.Context, pred func(*domain.Feedback) bool) result.Result
}
