package ports

import (
	"context"

	"feedback-service/internal/feedback/core/domain"
	"feedback-service/internal/result"
)

// CategoryRepositoryPort mirrors FeedbackRepositoryPort for the category
// reference data. No public operation writes categories; the port exists
// so the shared repository implementation has its second entity binding.
type CategoryRepositoryPort interface {
	Add(ctx context.Context, c *domain.Category) result.Result
	Update(ctx context.Context, c *domain.Category) result.Result
	Delete(ctx context.Context, c *domain.Category) result.Result
	GetAll(ctx context.Context) result.Of[[]*domain.Category]
	Get(ctx context.Context, pred func(*domain.Category) bool) result.Of[*domain.Category]
	AlreadyExists(ctx context.Context, pred func(*domain.Category) bool) result.Result
}
