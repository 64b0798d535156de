package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dcdesk/dcdesk/application/port/outbound"
	"github.com/dcdesk/dcdesk/domain/entity"
)

// ChallanRepository stores delivery challans. Item names live in a jsonb
// column; the creator reference is joined from users on reads.
type ChallanRepository struct {
	db *sql.DB
}

func NewChallanRepository(db *sql.DB) *ChallanRepository {
	return &ChallanRepository{db: db}
}

const challanSelect = `
	SELECT dc.id, dc.dc_number, dc.customer_name, dc.item_names,
	       dc.total_dispatch_qty, dc.total_received_qty, dc.status,
	       dc.created_by, dc.created_at, dc.updated_at, dc.deleted_at,
	       u.id, u.user_id, u.name
	FROM delivery_challans dc
	LEFT JOIN users u ON u.id = dc.created_by`

func (r *ChallanRepository) FindByID(ctx context.Context, id string) (*entity.DeliveryChallan, error) {
	query := challanSelect + " WHERE dc.id = $1 AND dc.deleted_at IS NULL"
	dc, err := scanChallan(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, outbound.ErrChallanNotFound
		}
		return nil, err
	}
	return dc, nil
}

func (r *ChallanRepository) FindAll(ctx context.Context, offset, limit int, filters outbound.ChallanFilters) ([]*entity.DeliveryChallan, int, error) {
	where := "dc.deleted_at IS NULL"
	args := []interface{}{}
	idx := 1

	if filters.Status != "" {
		where += fmt.Sprintf(" AND dc.status = $%d", idx)
		args = append(args, string(filters.Status))
		idx++
	}
	if filters.Search != "" {
		where += fmt.Sprintf(" AND (dc.dc_number ILIKE $%d OR dc.customer_name ILIKE $%d)", idx, idx)
		args = append(args, "%"+filters.Search+"%")
		idx++
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM delivery_challans dc WHERE " + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count challans: %w", err)
	}

	query := fmt.Sprintf("%s WHERE %s ORDER BY dc.created_at DESC LIMIT $%d OFFSET $%d",
		challanSelect, where, idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list challans: %w", err)
	}
	defer rows.Close()

	var challans []*entity.DeliveryChallan
	for rows.Next() {
		dc, err := scanChallan(rows)
		if err != nil {
			return nil, 0, err
		}
		challans = append(challans, dc)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return challans, total, nil
}

func (r *ChallanRepository) Create(ctx context.Context, dc *entity.DeliveryChallan) error {
	itemNames, err := json.Marshal(dc.ItemNames)
	if err != nil {
		return fmt.Errorf("encode item names: %w", err)
	}

	query := `
		INSERT INTO delivery_challans
			(id, dc_number, customer_name, item_names, total_dispatch_qty,
			 total_received_qty, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = r.db.ExecContext(ctx, query,
		dc.ID, dc.DCNumber, dc.CustomerName, itemNames,
		dc.TotalDispatchQty, dc.TotalReceivedQty, string(dc.Status),
		dc.CreatedBy, dc.CreatedAt, dc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create challan: %w", err)
	}
	return nil
}

func (r *ChallanRepository) Update(ctx context.Context, dc *entity.DeliveryChallan) error {
	itemNames, err := json.Marshal(dc.ItemNames)
	if err != nil {
		return fmt.Errorf("encode item names: %w", err)
	}

	query := `
		UPDATE delivery_challans
		SET customer_name = $2, item_names = $3, total_dispatch_qty = $4,
		    total_received_qty = $5, status = $6, updated_at = $7
		WHERE id = $1 AND deleted_at IS NULL`
	result, err := r.db.ExecContext(ctx, query,
		dc.ID, dc.CustomerName, itemNames,
		dc.TotalDispatchQty, dc.TotalReceivedQty, string(dc.Status), time.Now())
	if err != nil {
		return fmt.Errorf("update challan: %w", err)
	}
	return checkAffected(result, outbound.ErrChallanNotFound)
}

func (r *ChallanRepository) UpdateStatus(ctx context.Context, id string, status entity.ChallanStatus) error {
	query := "UPDATE delivery_challans SET status = $2, updated_at = $3 WHERE id = $1 AND deleted_at IS NULL"
	result, err := r.db.ExecContext(ctx, query, id, string(status), time.Now())
	if err != nil {
		return fmt.Errorf("update challan status: %w", err)
	}
	return checkAffected(result, outbound.ErrChallanNotFound)
}

func (r *ChallanRepository) SoftDelete(ctx context.Context, id string) error {
	query := `
		UPDATE delivery_challans
		SET deleted_at = $2, status = $3, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL`
	result, err := r.db.ExecContext(ctx, query, id, time.Now(), string(entity.StatusDeleted))
	if err != nil {
		return fmt.Errorf("delete challan: %w", err)
	}
	return checkAffected(result, outbound.ErrChallanNotFound)
}

func (r *ChallanRepository) ExistsByNumber(ctx context.Context, dcNumber string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM delivery_challans WHERE dc_number = $1 AND deleted_at IS NULL)"
	if err := r.db.QueryRowContext(ctx, query, dcNumber).Scan(&exists); err != nil {
		return false, fmt.Errorf("check dc number: %w", err)
	}
	return exists, nil
}

func scanChallan(row rowScanner) (*entity.DeliveryChallan, error) {
	var dc entity.DeliveryChallan
	var itemNames []byte
	var status string
	var deletedAt sql.NullTime
	var creatorID, creatorUserID, creatorName sql.NullString

	err := row.Scan(&dc.ID, &dc.DCNumber, &dc.CustomerName, &itemNames,
		&dc.TotalDispatchQty, &dc.TotalReceivedQty, &status,
		&dc.CreatedBy, &dc.CreatedAt, &dc.UpdatedAt, &deletedAt,
		&creatorID, &creatorUserID, &creatorName)
	if err != nil {
		return nil, err
	}

	dc.Status = entity.ChallanStatus(status)
	if len(itemNames) > 0 {
		if err := json.Unmarshal(itemNames, &dc.ItemNames); err != nil {
			return nil, fmt.Errorf("decode item names: %w", err)
		}
	}
	if dc.ItemNames == nil {
		dc.ItemNames = []string{}
	}
	if deletedAt.Valid {
		dc.DeletedAt = &deletedAt.Time
	}
	if creatorID.Valid {
		dc.Creator = &entity.UserRef{
			ID:     creatorID.String,
			UserID: creatorUserID.String,
			Name:   creatorName.String,
		}
	}
	return &dc, nil
}
