package fiber

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"feedback-service/internal/statistics/core/domain"
)

type GetStatisticsUseCase interface {
	Execute(ctx context.Context) *domain.Summary
}

type StatisticsHandler struct {
	uc GetStatisticsUseCase
}

func NewStatisticsHandler(uc GetStatisticsUseCase) *StatisticsHandler {
	return &StatisticsHandler{uc: uc}
}

// GetStatistics godoc
// @Summary Feedback statistics summary
// @Description Returns totals, average rating, rating histogram and per-event rows
// @Tags Statistics
// @Produce json
// @Success 200 {object} StatisticsResponse
// @Router /api/feedbacks/statistics [get]
func (h *StatisticsHandler) GetStatistics(c *fiber.Ctx) error {
	s := h.uc.Execute(c.UserContext())

	resp := StatisticsResponse{
		TotalFeedbacks: s.TotalFeedbacks,
		AverageRating:  s.AverageRating,
		RatingCounts:   make(map[string]int64, len(s.RatingCounts)),
		Events:         make([]EventSummaryResponse, 0, len(s.Events)),
	}
	for rating, count := range s.RatingCounts {
		resp.RatingCounts[strconv.Itoa(rating)] = count
	}
	for _, e := range s.Events {
		resp.Events = append(resp.Events, EventSummaryResponse{
			EventID:       e.EventID,
			EventName:     e.EventName,
			FeedbackCount: e.FeedbackCount,
			AverageRating: e.AverageRating,
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}
