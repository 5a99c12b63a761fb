package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lostfound-app/apiserver/types"
)

const itemColumns = `id, type, status, title, description, category, location, date,
		contact_name, contact_phone, contact_email, contact_telegram, image_url,
		user_id, created_at, updated_at`

// ItemRepository handles persistence for lost/found items.
type ItemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// List returns all items, newest first.
func (r *ItemRepository) List(ctx context.Context) ([]types.Item, error) {
	const query = `
		SELECT ` + itemColumns + `
		FROM items
		ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanItems(rows)
}

// ListByType returns items of the given type, newest first.
func (r *ItemRepository) ListByType(ctx context.Context, itemType string) ([]types.Item, error) {
	const query = `
		SELECT ` + itemColumns + `
		FROM items
		WHERE type = $1
		ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, itemType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *ItemRepository) Get(ctx context.Context, id string) (types.Item, error) {
	const query = `
		SELECT ` + itemColumns + `
		FROM items
		WHERE id = $1`
	item, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Item{}, ErrNotFound
		}
		return types.Item{}, err
	}
	return item, nil
}

// Create inserts a new item, assigning its id and stamping both record
// timestamps. Client-supplied values for those fields are ignored.
func (r *ItemRepository) Create(ctx context.Context, item types.Item) (types.Item, error) {
	now := time.Now()
	item.ID = uuid.NewString()
	item.CreatedAt = now
	item.UpdatedAt = now

	const query = `
		INSERT INTO items (id, type, status, title, description, category, location, date,
			contact_name, contact_phone, contact_email, contact_telegram, image_url,
			user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	if _, err := r.db.ExecContext(
		ctx,
		query,
		item.ID,
		item.Type,
		item.Status,
		item.Title,
		item.Description,
		item.Category,
		item.Location,
		item.Date,
		item.ContactName,
		item.ContactPhone,
		item.ContactEmail,
		item.ContactTelegram,
		item.ImageURL,
		item.UserID,
		item.CreatedAt,
		item.UpdatedAt,
	); err != nil {
		return types.Item{}, err
	}
	return item, nil
}

// Update replaces every field of the item except id, user_id, and
// created_at, and stamps updated_at.
func (r *ItemRepository) Update(ctx context.Context, item types.Item) (types.Item, error) {
	item.UpdatedAt = time.Now()

	const query = `
		UPDATE items
		SET type = $1,
			status = $2,
			title = $3,
			description = $4,
			category = $5,
			location = $6,
			date = $7,
			contact_name = $8,
			contact_phone = $9,
			contact_email = $10,
			contact_telegram = $11,
			image_url = $12,
			updated_at = $13
		WHERE id = $14`
	result, err := r.db.ExecContext(
		ctx,
		query,
		item.Type,
		item.Status,
		item.Title,
		item.Description,
		item.Category,
		item.Location,
		item.Date,
		item.ContactName,
		item.ContactPhone,
		item.ContactEmail,
		item.ContactTelegram,
		item.ImageURL,
		item.UpdatedAt,
		item.ID,
	)
	if err != nil {
		return types.Item{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.Item{}, err
	}
	if affected == 0 {
		return types.Item{}, ErrNotFound
	}
	return item, nil
}

func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM items WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (types.Item, error) {
	var item types.Item
	err := row.Scan(
		&item.ID,
		&item.Type,
		&item.Status,
		&item.Title,
		&item.Description,
		&item.Category,
		&item.Location,
		&item.Date,
		&item.ContactName,
		&item.ContactPhone,
		&item.ContactEmail,
		&item.ContactTelegram,
		&item.ImageURL,
		&item.UserID,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	return item, err
}

func scanItems(rows *sql.Rows) ([]types.Item, error) {
	items := make([]types.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
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
