package domain

// Summary is the feedback analytics snapshot served by the statistics
// endpoint.
type Summary struct {
	TotalFeedbacks int64
	AverageRating  float64
	RatingCounts   map[int]int64
	Events         []EventSummary
}

type EventSummary struct {
	EventID       string
	EventName     string
	FeedbackCount int64
	AverageRating float64
}
