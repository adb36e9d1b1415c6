package fiber

type StatisticsResponse struct {
	TotalFeedbacks int64                  `json:"totalFeedbacks"`
	AverageRating  float64                `json:"averageRating"`
	RatingCounts   map[string]int64       `json:"ratingCounts"`
	Events         []EventSummaryResponse `json:"events"`
}

type EventSummaryResponse struct {
	EventID       string  `json:"eventId"`
	EventName     string  `json:"eventName"`
	FeedbackCount int64   `json:"feedbackCount"`
	AverageRating float64 `json:"averageRating"`
}
