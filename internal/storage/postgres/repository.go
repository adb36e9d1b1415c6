package postgres

import (
	"context"
	"fmt"
	"strings"

	"feedback-service/internal/result"
)

// ErrTextNotFound is the exact error text Get reports when no record
// matches the predicate. Kept as-is for contract compatibility: consumers
// cannot distinguish "no match" from a store fault through Get alone.
const ErrTextNotFound = "Not found"

const errTextNoMatchingRecord = "no matching record"

// Mapper binds an entity type to its table. All mapping is explicit:
// Columns lists every persisted column with the primary key first, and the
// argument extractors must produce values in the same order.
type Mapper[T any] struct {
	Table   string
	PK      string
	Columns []string

	// InsertArgs returns values for every column in Columns order.
	InsertArgs func(e T) []any
	// UpdateArgs returns values for every non-PK column in Columns order.
	UpdateArgs func(e T) []any
	PKValue    func(e T) any
	// ScanRow builds an entity from one cursor row; scan receives
	// destinations in Columns order.
	ScanRow func(scan func(dest ...any) error) (T, error)
}

// Repository is the shared CRUD implementation every entity repository is
// an instance of. Operations never panic and never return Go errors across
// the boundary; all failure is carried in the result envelope.
type Repository[T any] struct {
	db DB
	m  Mapper[T]

	insertSQL string
	updateSQL string
	deleteSQL string
	selectSQL string
}

func NewRepository[T any](db DB, m Mapper[T]) *Repository[T] {
	return &Repository[T]{
		db:        db,
		m:         m,
		insertSQL: buildInsertSQL(m.Table, m.Columns),
		updateSQL: buildUpdateSQL(m.Table, m.PK, m.Columns),
		deleteSQL: fmt.Sprintf("DELETE FROM %s WHERE %s = $1", m.Table, m.PK),
		selectSQL: fmt.Sprintf("SELECT %s FROM %s", strings.Join(m.Columns, ", "), m.Table),
	}
}

func buildInsertSQL(table string, columns []string) string {
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	)
}

func buildUpdateSQL(table, pk string, columns []string) string {
	assignments := make([]string, 0, len(columns)-1)
	i := 1
	for _, col := range columns {
		if col == pk {
			continue
		}
		assignments = append(assignments, fmt.Sprintf("%s = $%d", col, i))
		i++
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
		table,
		strings.Join(assignments, ", "),
		pk,
		i,
	)
}

// Add inserts a new record. The entity's shape is not validated here;
// that is the caller's responsibility.
func (r *Repository[T]) Add(ctx context.Context, e T) result.Result {
	if _, err := r.db.ExecContext(ctx, r.insertSQL, r.m.InsertArgs(e)...); err != nil {
		return result.Err(err.Error())
	}
	return result.Ok()
}

// Update applies the entity's current field values to the stored record
// matched by primary key. A missing record is a failure.
func (r *Repository[T]) Update(ctx context.Context, e T) result.Result {
	args := append(r.m.UpdateArgs(e), r.m.PKValue(e))
	res, err := r.db.ExecContext(ctx, r.updateSQL, args...)
	if err != nil {
		return result.Err(err.Error())
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return result.Err(err.Error())
	}
	if rows == 0 {
		return result.Err(errTextNoMatchingRecord)
	}
	return result.Ok()
}

// Delete removes the stored record matched by primary key.
func (r *Repository[T]) Delete(ctx context.Context, e T) result.Result {
	res, err := r.db.ExecContext(ctx, r.deleteSQL, r.m.PKValue(e))
	if err != nil {
		return result.Err(err.Error())
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return result.Err(err.Error())
	}
	if rows == 0 {
		return result.Err(errTextNoMatchingRecord)
	}
	return result.Ok()
}

// GetAll loads every record of the type eagerly. An empty table is a
// success with an empty sequence, never an error.
func (r *Repository[T]) GetAll(ctx context.Context) result.Of[[]T] {
	items, err := r.loadAll(ctx)
	if err != nil {
		return result.ErrOf[[]T](err.Error())
	}
	return result.OkOf(items)
}

// Get returns the first record satisfying pred. Zero matches are reported
// as a failure with ErrTextNotFound (see the constant's note).
func (r *Repository[T]) Get(ctx context.Context, pred func(T) bool) result.Of[T] {
	items, err := r.loadAll(ctx)
	if err != nil {
		return result.ErrOf[T](err.Error())
	}
	for _, item := range items {
		if pred(item) {
			return result.OkOf(item)
		}
	}
	return result.ErrOf[T](ErrTextNotFound)
}

// AlreadyExists reports whether at least one record satisfies pred.
// Unlike every other operation, Succeeded here means "exists": a clean
// zero-match lookup yields Succeeded=false with empty error text, while a
// store fault yields Succeeded=false with the fault's message.
func (r *Repository[T]) AlreadyExists(ctx context.Context, pred func(T) bool) result.Result {
	items, err := r.loadAll(ctx)
	if err != nil {
		return result.Err(err.Error())
	}
	for _, item := range items {
		if pred(item) {
			return result.Ok()
		}
	}
	return result.Result{}
}

func (r *Repository[T]) loadAll(ctx context.Context) ([]T, error) {
	rows, err := r.db.QueryContext(ctx, r.selectSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := r.m.ScanRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
