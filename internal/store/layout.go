package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const layoutsTable = "layouts"

// LayoutRecord is one persisted group layout. Data is opaque to the store.
type LayoutRecord struct {
	ID         int64
	InputHash  string
	Seed       int64
	Format     string
	EntryCount int
	GroupCount int
	Data       []byte
	CreatedAt  time.Time
}

// LayoutRepo reads and writes layouts. Statements are built with the ent
// SQL builder and run on the shared *sql.DB.
type LayoutRepo struct {
	db  *sql.DB
	b   *entsql.DialectBuilder
	now func() time.Time
}

func newLayoutRepo(db *sql.DB) *LayoutRepo {
	return &LayoutRepo{db: db, b: entsql.Dialect(dialect.SQLite), now: time.Now}
}

var layoutColumns = []string{
	"id", "input_hash", "seed", "format", "entry_count", "group_count", "data", "created_at",
}

// Save stores rec, replacing any layout with the same input hash and seed.
func (r *LayoutRepo) Save(ctx context.Context, rec *LayoutRecord) error {
	created := r.now()
	query, args := r.b.Insert(layoutsTable).
		Columns("input_hash", "seed", "format", "entry_count", "group_count", "data", "created_at").
		Values(rec.InputHash, rec.Seed, rec.Format, rec.EntryCount, rec.GroupCount, rec.Data, created.UnixNano()).
		OnConflict(
			entsql.ConflictColumns("input_hash", "seed"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save layout: %w", err)
	}
	rec.CreatedAt = created
	return nil
}

// Get returns the layout for hash and seed, or nil if none is stored.
func (r *LayoutRepo) Get(ctx context.Context, hash string, seed int64) (*LayoutRecord, error) {
	query, args := r.b.Select(layoutColumns...).
		From(r.b.Table(layoutsTable)).
		Where(entsql.And(
			entsql.EQ("input_hash", hash),
			entsql.EQ("seed", seed),
		)).
		Limit(1).
		Query()

	rec, err := scanLayout(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query layout: %w", err)
	}
	return rec, nil
}

// List returns stored layouts, newest first, without their data.
func (r *LayoutRepo) List(ctx context.Context, limit int) ([]*LayoutRecord, error) {
	sel := r.b.Select("id", "input_hash", "seed", "format", "entry_count", "group_count", "created_at").
		From(r.b.Table(layoutsTable)).
		OrderBy(entsql.Desc("created_at"), entsql.Desc("id"))
	if limit > 0 {
		sel.Limit(limit)
	}
	query, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}
	defer rows.Close()

	var out []*LayoutRecord
	for rows.Next() {
		var rec LayoutRecord
		var created int64
		if err := rows.Scan(&rec.ID, &rec.InputHash, &rec.Seed, &rec.Format, &rec.EntryCount, &rec.GroupCount, &created); err != nil {
			return nil, fmt.Errorf("scan layout: %w", err)
		}
		rec.CreatedAt = time.Unix(0, created)
		out = append(out, &rec)
	}
	return out, rows.Err()
}

// Count returns the number of stored layouts.
func (r *LayoutRepo) Count(ctx context.Context) (int, error) {
	query, args := r.b.Select(entsql.Count("*")).
		From(r.b.Table(layoutsTable)).
		Query()

	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count layouts: %w", err)
	}
	return n, nil
}

// Prune deletes all but the keep most recently saved layouts and returns
// how many were removed.
func (r *LayoutRepo) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}

	// The newest layout past the keep window marks the cut.
	query, args := r.b.Select("id", "created_at").
		From(r.b.Table(layoutsTable)).
		OrderBy(entsql.Desc("created_at"), entsql.Desc("id")).
		Offset(keep).
		Limit(1).
		Query()

	var id, created int64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&id, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil // fewer than keep layouts exist
	}
	if err != nil {
		return 0, fmt.Errorf("query layouts for prune: %w", err)
	}

	query, args = r.b.Delete(layoutsTable).
		Where(entsql.Or(
			entsql.LT("created_at", created),
			entsql.And(entsql.EQ("created_at", created), entsql.LTE("id", id)),
		)).
		Query()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("prune layouts: %w", err)
	}
	return res.RowsAffected()
}

func scanLayout(row *sql.Row) (*LayoutRecord, error) {
	var rec LayoutRecord
	var created int64
	err := row.Scan(&rec.ID, &rec.InputHash, &rec.Seed, &rec.Format,
		&rec.EntryCount, &rec.GroupCount, &rec.Data, &created)
	if err != nil {
		return nil, err
	}
	rec.CreatedAt = time.Unix(0, created)
	return &rec, nil
}
