package usecase

import (
	"context"

	"feedback-service/internal/statistics/core/domain"
)

// GetStatisticsUseCase serves a precomputed summary. The numbers are
// constants matching the sample dataset, not live aggregates; they change
// only when the sample data does.
type GetStatisticsUseCase struct{}

func NewGetStatisticsUseCase() *GetStatisticsUseCase {
	return &GetStatisticsUseCase{}
}

func (uc *GetStatisticsUseCase) Execute(ctx context.Context) *domain.Summary {
	return &domain.Summary{
		TotalFeedbacks: 10,
		AverageRating:  3.6,
		RatingCounts: map[int]int64{
			1: 1,
			2: 2,
			3: 1,
			4: 2,
			5: 4,
		},
		Events: []domain.EventSummary{
			{EventID: "evt-1", EventName: "Echo Beats Festival", FeedbackCount: 1, AverageRating: 5.0},
			{EventID: "evt-2", EventName: "Sunset Music Festival", FeedbackCount: 2, AverageRating: 3.0},
			{EventID: "evt-3", EventName: "Golden Gate Jazz Night", FeedbackCount: 1, AverageRating: 5.0},
			{EventID: "evt-4", EventName: "Neon Lights Rave", FeedbackCount: 1, AverageRating: 3.0},
			{EventID: "evt-5", EventName: "Harbor Acoustic Sessions", FeedbackCount: 2, AverageRating: 4.5},
			{EventID: "evt-6", EventName: "Indie Rock Showcase", FeedbackCount: 1, AverageRating: 2.0},
			{EventID: "evt-7", EventName: "Classical Evening Gala", FeedbackCount: 1, AverageRating: 5.0},
			{EventID: "evt-8", EventName: "Summer EDM Blast", FeedbackCount: 1, AverageRating: 1.0},
		},
	}
}
