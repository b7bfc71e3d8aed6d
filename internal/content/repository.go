package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// Repository provides CRUD operations for parts and their property bags.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a part repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// newID returns a time-ordered identifier, falling back to a random one.
func newID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}

// Create adds a new, never-saved part.
func (r *Repository) Create(ctx context.Context, title string) (*Part, error) {
	id := newID()

	query, args, err := sq.Insert("parts").
		Columns("id", "title").
		Values(id, title).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("inserting part: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID returns a part by its ID.
func (r *Repository) GetByID(ctx context.Context, id string) (*Part, error) {
	query, args, err := sq.Select(partColumns...).
		From("parts").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select: %w", err)
	}

	p, err := scanPart(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("part %s: %w", id, ErrPartNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying part %s: %w", id, err)
	}

	return p, nil
}

// List returns all parts, oldest first.
func (r *Repository) List(ctx context.Context) (parts []*Part, err error) {
	query, args, err := sq.Select(partColumns...).
		From("parts").
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing parts: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		p, err := scanPart(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning part: %w", err)
		}
		parts = append(parts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating parts: %w", err)
	}

	return parts, nil
}

// Delete removes a part and its property bag.
func (r *Repository) Delete(ctx context.Context, id string) error {
	query, args, err := sq.Delete("parts").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("building delete: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting part: %w", err)
	}

	return expectOneRow(result, id)
}

// LoadBag returns the raw property bag of a part, or nil if it was never saved.
func (r *Repository) LoadBag(ctx context.Context, id string) (json.RawMessage, error) {
	query, args, err := sq.Select("bag").
		From("parts").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select: %w", err)
	}

	var bag sql.NullString
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&bag)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("part %s: %w", id, ErrPartNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying bag for part %s: %w", id, err)
	}

	if !bag.Valid {
		return nil, nil
	}
	return json.RawMessage(bag.String), nil
}

// SaveBag overwrites the property bag of a part. Last writer wins.
func (r *Repository) SaveBag(ctx context.Context, id string, bag json.RawMessage) error {
	query, args, err := sq.Update("parts").
		Set("bag", string(bag)).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building update: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating bag: %w", err)
	}

	return expectOneRow(result, id)
}

// Store returns the part.Store for the part with the given ID.
func (r *Repository) Store(id string) *Store {
	return &Store{repo: r, partID: id}
}

func expectOneRow(result sql.Result, id string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("part %s: %w", id, ErrPartNotFound)
	}
	return nil
}
