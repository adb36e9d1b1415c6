package fiber

import "time"

// CreateFeedbackRequest is the creation payload
// @Description Feedback creation DTO
type CreateFeedbackRequest struct {
	EventID      string  `json:"eventId" validate:"required"`
	EventName    *string `json:"eventName"`
	UserID       *string `json:"userId"`
	UserName     *string `json:"userName"`
	Content      *string `json:"content"`
	Rating       int     `json:"rating" validate:"required,min=1,max=5"`
	CategoryID   *int64  `json:"categoryId"`
	CategoryName *string `json:"categoryName"`
	IsAnonymous  bool    `json:"isAnonymous"`

	VenueRating        *int `json:"venueRating" validate:"omitempty,min=1,max=5"`
	LineupRating       *int `json:"lineupRating" validate:"omitempty,min=1,max=5"`
	SoundRating        *int `json:"soundRating" validate:"omitempty,min=1,max=5"`
	OrganizationRating *int `json:"organizationRating" validate:"omitempty,min=1,max=5"`
	CrowdRating        *int `json:"crowdRating" validate:"omitempty,min=1,max=5"`
	ValueRating        *int `json:"valueRating" validate:"omitempty,min=1,max=5"`
}

type FeedbackResponse struct {
	ID           string    `json:"id"`
	EventID      string    `json:"eventId"`
	EventName    *string   `json:"eventName"`
	UserID       *string   `json:"userId"`
	UserName     *string   `json:"userName"`
	Content      *string   `json:"content"`
	Rating       int       `json:"rating"`
	CategoryID   *int64    `json:"categoryId"`
	CategoryName *string   `json:"categoryName"`
	CreatedAt    time.Time `json:"createdAt"`
	IsAnonymous  bool      `json:"isAnonymous"`
}

// FeedbackEnvelope is the single-item response body. Error is null on
// success; Result is null on failure.
type FeedbackEnvelope struct {
	Success bool              `json:"success"`
	Error   *string           `json:"error"`
	Result  *FeedbackResponse `json:"result"`
}

type FeedbackListEnvelope struct {
	Success bool               `json:"success"`
	Error   *string            `json:"error"`
	Result  []FeedbackResponse `json:"result"`
}
