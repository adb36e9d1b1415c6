package domain

import "time"

// Category is reference data administered out of band; the service only
// ever reads it.
type Category struct {
	ID          int64
	Name        string
	Description *string
}

// Feedback is one submission for an event. UserID and UserName are both
// nil when the submission is anonymous; that pairing is documented intent,
// not enforced anywhere. CreatedAt is stamped once, in UTC, at
// construction and never mutated. CategoryID/CategoryName are denormalized
// alongside the record for display.
type Feedback struct {
	ID           string
	EventID      string
	EventName    *string
	UserID       *string
	UserName     *string
	Content      *string
	Rating       int // inclusive 1-5
	CategoryID   *int64
	CategoryName *string
	CreatedAt    time.Time
	IsAnonymous  bool
}
