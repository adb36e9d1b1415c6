package postgres

import (
	"feedback-service/internal/feedback/core/domain"
	"feedback-service/internal/feedback/core/ports"
	storage "feedback-service/internal/storage/postgres"
)

// FeedbackRepository binds the shared CRUD implementation to the Feedback
// entity. No feedback-specific query methods exist; everything is
// inherited from the generic repository.
type FeedbackRepository struct {
	*storage.Repository[*domain.Feedback]
}

func NewFeedbackRepository(db storage.DB) *FeedbackRepository {
	return &FeedbackRepository{
		Repository: storage.NewRepository(db, feedbackMapper()),
	}
}

var _ ports.FeedbackRepositoryPort = (*FeedbackRepository)(nil)

func feedbackMapper() storage.Mapper[*domain.Feedback] {
	return storage.Mapper[*domain.Feedback]{
		Table: "feedbacks",
		PK:    "id",
		Columns: []string{
			"id",
			"event_id",
			"event_name",
			"user_id",
			"user_name",
			"content",
			"rating",
			"category_id",
			"category_name",
			"created_at",
			"is_anonymous",
		},
		InsertArgs: func(f *domain.Feedback) []any {
			return []any{
				f.ID,
				f.EventID,
				f.EventName,
				f.UserID,
				f.UserName,
				f.Content,
				f.Rating,
				f.CategoryID,
				f.CategoryName,
				f.CreatedAt,
				f.IsAnonymous,
			}
		},
		UpdateArgs: func(f *domain.Feedback) []any {
			return []any{
				f.EventID,
				f.EventName,
				f.UserID,
				f.UserName,
				f.Content,
				f.Rating,
				f.CategoryID,
				f.CategoryName,
				f.CreatedAt,
				f.IsAnonymous,
			}
		},
		PKValue: func(f *domain.Feedback) any {
			return f.ID
		},
		ScanRow: func(scan func(dest ...any) error) (*domain.Feedback, error) {
			var f domain.Feedback
			if err := scan(
				&f.ID,
				&f.EventID,
				&f.EventName,
				&f.UserID,
				&f.UserName,
				&f.Content,
				&f.Rating,
				&f.CategoryID,
				&f.CategoryName,
				&f.CreatedAt,
				&f.IsAnonymous,
			); err != nil {
				return nil, err
			}
			return &f, nil
		},
	}
}

// CategoryRepository is the second binding of the shared implementation.
// Categories are reference data; nothing on the public surface writes
// them, but the full CRUD set is available for administrative tooling.
type CategoryRepository struct {
	*storage.Repository[*domain.Category]
}

func NewCategoryRepository(db storage.DB) *CategoryRepository {
	return &CategoryRepository{
		Repository: storage.NewRepository(db, categoryMapper()),
	}
}

var _ ports.CategoryRepositoryPort = (*CategoryRepository)(nil)

func categoryMapper() storage.Mapper[*domain.Category] {
	return storage.Mapper[*domain.Category]{
		Table:   "categories",
		PK:      "id",
		Columns: []string{"id", "name", "description"},
		InsertArgs: func(c *domain.Category) []any {
			return []any{c.ID, c.Name, c.Description}
		},
		UpdateArgs: func(c *domain.Category) []any {
			return []any{c.Name, c.Description}
		},
		PKValue: func(c *domain.Category) any {
			return c.ID
		},
		ScanRow: func(scan func(dest ...any) error) (*domain.Category, error) {
			var c domain.Category
			if err := scan(&c.ID, &c.Name, &c.Description); err != nil {
				return nil, err
			}
			return &c, nil
		},
	}
}
