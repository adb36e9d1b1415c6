package usecase

import (
	"time"

	"feedback-service/internal/feedback/core/domain"
)

// sampleFeedbacks is the read fixture: ten records, assembled once at
// process start and read-only afterwards, so concurrent requests may share
// it without synchronization.
var sampleFeedbacks = []*domain.Feedback{
	{
		ID:           "f9b2c6e0-4a3d-4c11-9a74-8b1f2d5e6a01",
		EventID:      "evt-1",
		EventName:    strPtr("Echo Beats Festival"),
		UserID:       strPtr("usr-101"),
		UserName:     strPtr("Sophie Taylor"),
		Content:      strPtr("Incredible lineup and flawless sound. Best festival I have been to in years."),
		Rating:       5,
		CategoryID:   i64Ptr(2),
		CategoryName: strPtr("Sound & Stage"),
		CreatedAt:    time.Date(2025, 6, 14, 21, 35, 0, 0, time.UTC),
	},
	{
		ID:           "a1d4e8f2-7b65-4f09-bd2e-3c9a0f7b1c02",
		EventID:      "evt-2",
		EventName:    strPtr("Sunset Music Festival"),
		UserID:       strPtr("usr-102"),
		UserName:     strPtr("Liam Carter"),
		Content:      strPtr("Great atmosphere, though the food stalls ran out early."),
		Rating:       4,
		CategoryID:   i64Ptr(5),
		CategoryName: strPtr("Facilities"),
		CreatedAt:    time.Date(2025, 6, 21, 19, 12, 0, 0, time.UTC),
	},
	{
		ID:           "c3f6a9b1-2e48-4d77-8c05-6d1e4b8f2a03",
		EventID:      "evt-2",
		EventName:    strPtr("Sunset Music Festival"),
		Content:      strPtr("Queues at the entrance were far too long."),
		Rating:       2,
		CategoryID:   i64Ptr(3),
		CategoryName: strPtr("Organization"),
		CreatedAt:    time.Date(2025, 6, 22, 10, 4, 0, 0, time.UTC),
		IsAnonymous:  true,
	},
	{
		ID:           "e5a8b0c4-9d12-4e36-af67-1f2b3c4d5e04",
		EventID:      "evt-3",
		EventName:    strPtr("Golden Gate Jazz Night"),
		UserID:       strPtr("usr-103"),
		UserName:     strPtr("Ava Mitchell"),
		Content:      strPtr("Intimate venue and a world-class quartet."),
		Rating:       5,
		CategoryID:   i64Ptr(1),
		CategoryName: strPtr("Venue"),
		CreatedAt:    time.Date(2025, 7, 2, 23, 48, 0, 0, time.UTC),
	},
	{
		ID:        "b7c0d2e6-3f54-4a89-9b10-5e6f7a8b9c05",
		EventID:   "evt-4",
		EventName: strPtr("Neon Lights Rave"),
		UserID:    strPtr("usr-104"),
		UserName:  strPtr("Noah Bennett"),
		Content:   strPtr("Decent night, but the set times slipped by almost an hour."),
		Rating:    3,
		CreatedAt: time.Date(2025, 7, 9, 2, 17, 0, 0, time.UTC),
	},
	{
		ID:           "d9e2f4a8-5b76-4c01-8d23-7a8b9c0d1e06",
		EventID:      "evt-5",
		EventName:    strPtr("Harbor Acoustic Sessions"),
		UserID:       strPtr("usr-105"),
		UserName:     strPtr("Mia Rodriguez"),
		Content:      strPtr("Lovely setting by the water. Sound could carry better on windy nights."),
		Rating:       4,
		CategoryID:   i64Ptr(2),
		CategoryName: strPtr("Sound & Stage"),
		CreatedAt:    time.Date(2025, 7, 16, 20, 55, 0, 0, time.UTC),
	},
	{
		ID:          "f1a4b6c0-7d98-4e23-af45-9b0c1d2e3f07",
		EventID:     "evt-5",
		EventName:   strPtr("Harbor Acoustic Sessions"),
		Content:     strPtr("Perfect evening from start to finish."),
		Rating:      5,
		CreatedAt:   time.Date(2025, 7, 17, 8, 30, 0, 0, time.UTC),
		IsAnonymous: true,
	},
	{
		ID:           "a3b6c8d2-9e10-4f45-8a67-1c2d3e4f5a08",
		EventID:      "evt-6",
		EventName:    strPtr("Indie Rock Showcase"),
		UserID:       strPtr("usr-106"),
		UserName:     strPtr("Ethan Walsh"),
		Content:      strPtr("Two of the four bands cancelled last minute."),
		Rating:       2,
		CategoryID:   i64Ptr(4),
		CategoryName: strPtr("Lineup"),
		CreatedAt:    time.Date(2025, 7, 23, 22, 41, 0, 0, time.UTC),
	},
	{
		ID:           "c5d8e0f4-1a32-4b67-9c89-3e4f5a6b7c09",
		EventID:      "evt-7",
		EventName:    strPtr("Classical Evening Gala"),
		UserID:       strPtr("usr-107"),
		UserName:     strPtr("Olivia Hughes"),
		Content:      strPtr("An impeccable programme, beautifully performed."),
		Rating:       5,
		CategoryID:   i64Ptr(1),
		CategoryName: strPtr("Venue"),
		CreatedAt:    time.Date(2025, 8, 1, 21, 20, 0, 0, time.UTC),
	},
	{
		ID:           "e7f0a2b6-3c54-4d89-8e01-5a6b7c8d9e10",
		EventID:      "evt-8",
		EventName:    strPtr("Summer EDM Blast"),
		Content:      strPtr("Overcrowded and overpriced. Left before the headliner."),
		Rating:       1,
		CategoryID:   i64Ptr(3),
		CategoryName: strPtr("Organization"),
		CreatedAt:    time.Date(2025, 8, 8, 1, 2, 0, 0, time.UTC),
		IsAnonymous:  true,
	},
}

func strPtr(s string) *string { return &s }

func i64Ptr(v int64) *int64 { return &v }
