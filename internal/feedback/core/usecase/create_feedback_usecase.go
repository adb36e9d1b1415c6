package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"feedback-service/internal/feedback/core/domain"
	"feedback-service/internal/feedback/core/ports"
	"feedback-service/internal/result"
)

// CreateFeedbackInput is the validated creation request. Range and
// required checks happen at the HTTP boundary before this layer runs.
type CreateFeedbackInput struct {
	EventID     string
	EventName   *string
	UserID      *string
	UserName    *string
	Content     *string
	Rating      int
	IsAnonymous bool

	// Accepted but not persisted: the entity has no fields for the
	// category reference or the per-aspect ratings, so they are dropped
	// here. Callers relying on them being stored will be surprised; the
	// gap is part of the current contract.
	CategoryID         *int64
	CategoryName       *string
	VenueRating        *int
	LineupRating       *int
	SoundRating        *int
	OrganizationRating *int
	CrowdRating        *int
	ValueRating        *int
}

type CreateFeedbackUseCase struct {
	repo ports.FeedbackRepositoryPort
}

func NewCreateFeedbackUseCase(repo ports.FeedbackRepositoryPort) *CreateFeedbackUseCase {
	return &CreateFeedbackUseCase{repo: repo}
}

// Execute builds a new Feedback with a generated id and a UTC creation
// timestamp, persists it through the repository, and returns the
// constructed entity on success.
func (uc *CreateFeedbackUseCase) Execute(ctx context.Context, in CreateFeedbackInput) result.Of[*domain.Feedback] {
	f := &domain.Feedback{
		ID:          uuid.NewString(),
		EventID:     in.EventID,
		EventName:   in.EventName,
		UserID:      in.UserID,
		UserName:    in.UserName,
		Content:     in.Content,
		Rating:      in.Rating,
		CreatedAt:   time.Now().UTC(),
		IsAnonymous: in.IsAnonymous,
	}

	if res := uc.repo.Add(ctx, f); !res.Succeeded {
		return result.ErrOf[*domain.Feedback](res.Error)
	}

	return result.OkOf(f)
}
