package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rbndelrio/microsoft-teams-stickers-app/pkg/stickers"
)

// DBTX is an interface that allows us to use either a database connection or a transaction
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Repository implements stickers.Repository using PostgreSQL
type Repository struct {
	db DBTX
}

// New creates a new PostgreSQL repository
func New(db DBTX) stickers.Repository {
	return &Repository{db: db}
}

// NewWithPool creates a new PostgreSQL repository with connection pool
func NewWithPool(pool *pgxpool.Pool) stickers.Repository {
	return &Repository{db: pool}
}

// handlePostgresError maps driver errors onto the domain error taxonomy. A
// store that is unreachable or erroring surfaces as ErrStorageUnavailable.
func (r *Repository) handlePostgresError(operation string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("sticker already exists")
		case "23502": // not_null_violation
			return fmt.Errorf("required field %s is missing", pgErr.ColumnName)
		case "42P01": // undefined_table
			return fmt.Errorf("%w: table does not exist - database migration required", stickers.ErrStorageUnavailable)
		default:
			return fmt.Errorf("%w: %s: %s (code: %s)", stickers.ErrStorageUnavailable, operation, pgErr.Message, pgErr.Code)
		}
	}

	return fmt.Errorf("%w: %s: %v", stickers.ErrStorageUnavailable, operation, err)
}

func (r *Repository) CreateSticker(ctx context.Context, sticker *stickers.Sticker) error {
	query := `
		INSERT INTO stickers (
			id, name, keywords, image_uri, state, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		sticker.ID, sticker.Name, sticker.Keywords, sticker.ImageURI,
		string(sticker.State), sticker.CreatedAt, sticker.UpdatedAt)

	if err != nil {
		return r.handlePostgresError("create sticker", err)
	}

	return nil
}

func (r *Repository) GetSticker(ctx context.Context, id string) (*stickers.Sticker, error) {
	query := `
		SELECT id, name, keywords, image_uri, state, created_at, updated_at
		FROM stickers WHERE id = $1`

	sticker, err := scanSticker(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, stickers.ErrStickerNotFound
		}
		return nil, r.handlePostgresError("get sticker", err)
	}

	return sticker, nil
}

func (r *Repository) ListStickers(ctx context.Context) ([]*stickers.Sticker, error) {
	query := `
		SELECT id, name, keywords, image_uri, state, created_at, updated_at
		FROM stickers
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, r.handlePostgresError("list stickers", err)
	}
	defer rows.Close()

	var result []*stickers.Sticker
	for rows.Next() {
		sticker, err := scanSticker(rows)
		if err != nil {
			return nil, r.handlePostgresError("list stickers", err)
		}
		result = append(result, sticker)
	}
	if err := rows.Err(); err != nil {
		return nil, r.handlePostgresError("list stickers", err)
	}

	return result, nil
}

func (r *Repository) UpdateSticker(ctx context.Context, sticker *stickers.Sticker) error {
	query := `
		UPDATE stickers SET
			name = $2, keywords = $3, image_uri = $4, state = $5, updated_at = $6
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		sticker.ID, sticker.Name, sticker.Keywords, sticker.ImageURI,
		string(sticker.State), sticker.UpdatedAt)
	if err != nil {
		return r.handlePostgresError("update sticker", err)
	}
	if tag.RowsAffected() == 0 {
		return stickers.ErrStickerNotFound
	}

	return nil
}

func (r *Repository) DeleteSticker(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM stickers WHERE id = $1`, id)
	if err != nil {
		return r.handlePostgresError("delete sticker", err)
	}
	if tag.RowsAffected() == 0 {
		return stickers.ErrStickerNotFound
	}

	return nil
}

func scanSticker(row pgx.Row) (*stickers.Sticker, error) {
	var sticker stickers.Sticker
	var state string
	if err := row.Scan(
		&sticker.ID, &sticker.Name, &sticker.Keywords, &sticker.ImageURI,
		&state, &sticker.CreatedAt, &sticker.UpdatedAt); err != nil {
		return nil, err
	}
	sticker.State = stickers.StickerState(state)
	return &sticker, nil
}
