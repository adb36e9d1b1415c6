package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"feedback-service/internal/feedback/core/domain"
	storage "feedback-service/internal/storage/postgres"
)

// fakeResult implements sql.Result for tests.
type fakeResult struct {
	rowsAffected int64
}

func (f *fakeResult) LastInsertId() (int64, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeResult) RowsAffected() (int64, error) {
	return f.rowsAffected, nil
}

// fakeRowScanner implements storage.RowScanner for tests. Nil row values
// map to nil pointer destinations, mirroring NULL columns.
type fakeRowScanner struct {
	rows [][]any
	i    int
}

func (f *fakeRowScanner) Next() bool {
	return f.i < len(f.rows)
}

func (f *fakeRowScanner) Scan(dest ...any) error {
	if f.i >= len(f.rows) {
		return errors.New("no more rows")
	}
	row := f.rows[f.i]
	if len(dest) != len(row) {
		return errors.New("dest length mismatch")
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *string:
			v, ok := row[i].(string)
			if !ok {
				return errors.New("type assertion to string failed")
			}
			*d = v
		case **string:
			if row[i] == nil {
				*d = nil
				continue
			}
			v, ok := row[i].(string)
			if !ok {
				return errors.New("type assertion to string failed")
			}
			*d = &v
		case *int:
			v, ok := row[i].(int)
			if !ok {
				return errors.New("type assertion to int failed")
			}
			*d = v
		case *int64:
			v, ok := row[i].(int64)
			if !ok {
				return errors.New("type assertion to int64 failed")
			}
			*d = v
		case **int64:
			if row[i] == nil {
				*d = nil
				continue
			}
			v, ok := row[i].(int64)
			if !ok {
				return errors.New("type assertion to int64 failed")
			}
			*d = &v
		case *bool:
			v, ok := row[i].(bool)
			if !ok {
				return errors.New("type assertion to bool failed")
			}
			*d = v
		case *time.Time:
			v, ok := row[i].(time.Time)
			if !ok {
				return errors.New("type assertion to time.Time failed")
			}
			*d = v
		default:
			return errors.New("unsupported dest type")
		}
	}
	f.i++
	return nil
}

func (f *fakeRowScanner) Err() error {
	return nil
}

func (f *fakeRowScanner) Close() error {
	return nil
}

// fakeDB implements storage.DB for tests.
type fakeDB struct {
	ExecFn  func(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryFn func(ctx context.Context, query string, args ...any) (storage.RowScanner, error)

	lastExecQuery string
	lastExecArgs  []any
}

func (f *fakeDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.lastExecQuery = query
	f.lastExecArgs = args
	if f.ExecFn != nil {
		return f.ExecFn(ctx, query, args...)
	}
	return &fakeResult{rowsAffected: 1}, nil
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (storage.RowScanner, error) {
	if f.QueryFn != nil {
		return f.QueryFn(ctx, query, args...)
	}
	return &fakeRowScanner{}, nil
}

func strPtr(s string) *string { return &s }

func TestFeedbackRepository_Add_AnonymousNulls(t *testing.T) {
	db := &fakeDB{}
	repo := NewFeedbackRepository(db)

	f := &domain.Feedback{
		ID:          "fb-1",
		EventID:     "evt-1",
		Content:     strPtr("great show"),
		Rating:      5,
		CreatedAt:   time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC),
		IsAnonymous: true,
	}

	res := repo.Add(context.Background(), f)

	if !res.Succeeded {
		t.Fatalf("expected success, got error %q", res.Error)
	}
	if !strings.HasPrefix(db.lastExecQuery, "INSERT INTO feedbacks") {
		t.Fatalf("unexpected query: %s", db.lastExecQuery)
	}
	if len(db.lastExecArgs) != 11 {
		t.Fatalf("expected 11 args, got %d", len(db.lastExecArgs))
	}

	// user_id and user_name are nil pointers, persisted as NULL
	if userID := db.lastExecArgs[3].(*string); userID != nil {
		t.Fatalf("expected nil user_id, got %v", *userID)
	}
	if userName := db.lastExecArgs[4].(*string); userName != nil {
		t.Fatalf("expected nil user_name, got %v", *userName)
	}
	if categoryID := db.lastExecArgs[7].(*int64); categoryID != nil {
		t.Fatalf("expected nil category_id, got %v", *categoryID)
	}
}

func TestFeedbackRepository_GetAll_ScansNullableColumns(t *testing.T) {
	created := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (storage.RowScanner, error) {
			return &fakeRowScanner{rows: [][]any{
				{"fb-1", "evt-1", "Echo Beats Festival", "usr-1", "Sophie", "great", 5, int64(2), "Sound & Stage", created, false},
				{"fb-2", "evt-2", nil, nil, nil, nil, 2, nil, nil, created, true},
			}}, nil
		},
	}
	repo := NewFeedbackRepository(db)

	res := repo.GetAll(context.Background())

	if !res.Succeeded {
		t.Fatalf("expected success, got error %q", res.Error)
	}
	if len(res.Value) != 2 {
		t.Fatalf("expected 2 items, got %d", len(res.Value))
	}

	first := res.Value[0]
	if first.ID != "fb-1" || first.EventName == nil || *first.EventName != "Echo Beats Festival" {
		t.Fatalf("first row scanned incorrectly: %+v", first)
	}
	if first.CategoryID == nil || *first.CategoryID != 2 {
		t.Fatalf("expected category id 2, got %v", first.CategoryID)
	}

	second := res.Value[1]
	if second.UserID != nil || second.UserName != nil || second.CategoryID != nil {
		t.Fatalf("expected NULL columns to scan as nil: %+v", second)
	}
	if !second.IsAnonymous {
		t.Fatalf("expected anonymous flag set")
	}
}

func TestFeedbackRepository_Get_NotFoundText(t *testing.T) {
	db := &fakeDB{}
	repo := NewFeedbackRepository(db)

	res := repo.Get(context.Background(), func(f *domain.Feedback) bool { return f.ID == "missing" })

	if res.Succeeded {
		t.Fatalf("expected failure for zero matches")
	}
	if res.Error != storage.ErrTextNotFound {
		t.Fatalf("expected %q, got %q", storage.ErrTextNotFound, res.Error)
	}
}

func TestCategoryRepository_Update(t *testing.T) {
	db := &fakeDB{}
	repo := NewCategoryRepository(db)

	res := repo.Update(context.Background(), &domain.Category{ID: 3, Name: "Organization"})

	if !res.Succeeded {
		t.Fatalf("expected success, got error %q", res.Error)
	}
	if !strings.HasPrefix(db.lastExecQuery, "UPDATE categories SET name = $1, description = $2 WHERE id = $3") {
		t.Fatalf("unexpected query: %s", db.lastExecQuery)
	}
	if db.lastExecArgs[2] != int64(3) {
		t.Fatalf("expected pk last, got %v", db.lastExecArgs[2])
	}
}

func TestCategoryRepository_AlreadyExists_NoMatch(t *testing.T) {
	db := &fakeDB{}
	repo := NewCategoryRepository(db)

	res := repo.AlreadyExists(context.Background(), func(c *domain.Category) bool { return c.Name == "Venue" })

	if res.Succeeded {
		t.Fatalf("expected Succeeded=false for zero matches")
	}
	if res.Error != "" {
		t.Fatalf("expected no error text, got %q", res.Error)
	}
}
