package usecase

import (
	"context"

	"feedback-service/internal/feedback/core/domain"
	"feedback-service/internal/result"
)

// ErrTextFeedbackNotFound is the exact error text GetFeedback reports for
// an unknown id.
const ErrTextFeedbackNotFound = "Feedback not found"

// QueryFeedbackUseCase serves all read operations from the static sample
// fixture, never from the store. Writes go through the repository, so a
// freshly created feedback will not show up in any read result. The
// mismatch is deliberate and documented.
//
// TODO: serve reads from the repository once the feedbacks table is
// populated in all environments.
type QueryFeedbackUseCase struct{}

func NewQueryFeedbackUseCase() *QueryFeedbackUseCase {
	return &QueryFeedbackUseCase{}
}

// GetFeedbacks returns the full fixture, always the same records.
func (uc *QueryFeedbackUseCase) GetFeedbacks(ctx context.Context) result.Of[[]*domain.Feedback] {
	return result.OkOf(sampleFeedbacks)
}

// GetFeedback scans the fixture for a matching id.
func (uc *QueryFeedbackUseCase) GetFeedback(ctx context.Context, id string) result.Of[*domain.Feedback] {
	for _, f := range sampleFeedbacks {
		if f.ID == id {
			return result.OkOf(f)
		}
	}
	return result.ErrOf[*domain.Feedback](ErrTextFeedbackNotFound)
}

// GetFeedbacksByEvent filters the fixture by event id. No matches is a
// success with an empty sequence.
func (uc *QueryFeedbackUseCase) GetFeedbacksByEvent(ctx context.Context, eventID string) result.Of[[]*domain.Feedback] {
	matches := make([]*domain.Feedback, 0)
	for _, f := range sampleFeedbacks {
		if f.EventID == eventID {
			matches = append(matches, f)
		}
	}
	return result.OkOf(matches)
}
