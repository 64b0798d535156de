package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dcdesk/dcdesk/application/port/outbound"
	"github.com/dcdesk/dcdesk/domain/entity"
)

const itemColumns = "id, name, unit, created_at, updated_at, deleted_at"

type ItemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) FindByID(ctx context.Context, id int64) (*entity.Item, error) {
	query := fmt.Sprintf("SELECT %s FROM items WHERE id = $1 AND deleted_at IS NULL", itemColumns)
	item, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, outbound.ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *ItemRepository) FindAll(ctx context.Context) ([]*entity.Item, error) {
	query := fmt.Sprintf("SELECT %s FROM items WHERE deleted_at IS NULL ORDER BY name ASC", itemColumns)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []*entity.Item
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

func (r *ItemRepository) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO items (name, unit, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		item.Name, item.Unit, item.CreatedAt, item.UpdatedAt).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

func (r *ItemRepository) Update(ctx context.Context, item *entity.Item) error {
	query := "UPDATE items SET name = $2, unit = $3, updated_at = $4 WHERE id = $1 AND deleted_at IS NULL"
	result, err := r.db.ExecContext(ctx, query, item.ID, item.Name, item.Unit, time.Now())
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return checkAffected(result, outbound.ErrItemNotFound)
}

func (r *ItemRepository) SoftDelete(ctx context.Context, id int64) error {
	query := "UPDATE items SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL"
	result, err := r.db.ExecContext(ctx, query, id, time.Now())
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return checkAffected(result, outbound.ErrItemNotFound)
}

func scanItem(row rowScanner) (*entity.Item, error) {
	var item entity.Item
	var deletedAt sql.NullTime

	err := row.Scan(&item.ID, &item.Name, &item.Unit,
		&item.CreatedAt, &item.UpdatedAt, &deletedAt)
	if err != nil {
		return nil, err
	}
	if deletedAt.Valid {
		item.DeletedAt = &deletedAt.Time
	}
	return &item, nil
}
