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

const draftColumns = `id, draft_id, supplier_id, vehicle_no, process,
	total_dispatch_qty, total_rate, status, show_weight, show_square_feet,
	notes, created_by, created_at, updated_at, deleted_at`

type DraftChallanRepository struct {
	db *sql.DB
}

func NewDraftChallanRepository(db *sql.DB) *DraftChallanRepository {
	return &DraftChallanRepository{db: db}
}

func (r *DraftChallanRepository) FindByID(ctx context.Context, id int64) (*entity.DraftChallan, error) {
	query := fmt.Sprintf("SELECT %s FROM draft_challans WHERE id = $1 AND deleted_at IS NULL", draftColumns)
	draft, err := scanDraft(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, outbound.ErrDraftNotFound
		}
		return nil, err
	}
	return draft, nil
}

func (r *DraftChallanRepository) FindAll(ctx context.Context, offset, limit int) ([]*entity.DraftChallan, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM draft_challans WHERE deleted_at IS NULL").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count drafts: %w", err)
	}

	query := fmt.Sprintf("SELECT %s FROM draft_challans WHERE deleted_at IS NULL ORDER BY created_at DESC LIMIT $1 OFFSET $2", draftColumns)
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list drafts: %w", err)
	}
	defer rows.Close()

	var drafts []*entity.DraftChallan
	for rows.Next() {
		draft, err := scanDraft(rows)
		if err != nil {
			return nil, 0, err
		}
		drafts = append(drafts, draft)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return drafts, total, nil
}

func (r *DraftChallanRepository) Create(ctx context.Context, draft *entity.DraftChallan) error {
	query := `
		INSERT INTO draft_challans
			(draft_id, supplier_id, vehicle_no, process, total_dispatch_qty,
			 total_rate, status, show_weight, show_square_feet, notes,
			 created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		draft.DraftID, draft.SupplierID, draft.VehicleNo, draft.Process,
		draft.TotalDispatchQty, draft.TotalRate, string(draft.Status),
		draft.ShowWeight, draft.ShowSquareFeet, draft.Notes,
		draft.CreatedBy, draft.CreatedAt, draft.UpdatedAt).Scan(&draft.ID)
	if err != nil {
		return fmt.Errorf("create draft: %w", err)
	}
	return nil
}

func (r *DraftChallanRepository) Update(ctx context.Context, draft *entity.DraftChallan) error {
	query := `
		UPDATE draft_challans
		SET vehicle_no = $2, process = $3, total_dispatch_qty = $4,
		    total_rate = $5, status = $6, show_weight = $7,
		    show_square_feet = $8, notes = $9, updated_at = $10
		WHERE id = $1 AND deleted_at IS NULL`
	result, err := r.db.ExecContext(ctx, query,
		draft.ID, draft.VehicleNo, draft.Process, draft.TotalDispatchQty,
		draft.TotalRate, string(draft.Status), draft.ShowWeight,
		draft.ShowSquareFeet, draft.Notes, time.Now())
	if err != nil {
		return fmt.Errorf("update draft: %w", err)
	}
	return checkAffected(result, outbound.ErrDraftNotFound)
}

func (r *DraftChallanRepository) SoftDelete(ctx context.Context, id int64) error {
	query := "UPDATE draft_challans SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL"
	result, err := r.db.ExecContext(ctx, query, id, time.Now())
	if err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return checkAffected(result, outbound.ErrDraftNotFound)
}

// NextDraftID allocates the next human-facing draft number. Soft-deleted
// drafts still count so numbers are never reused.
func (r *DraftChallanRepository) NextDraftID(ctx context.Context) (int64, error) {
	var next int64
	query := "SELECT COALESCE(MAX(draft_id), 0) + 1 FROM draft_challans"
	if err := r.db.QueryRowContext(ctx, query).Scan(&next); err != nil {
		return 0, fmt.Errorf("next draft id: %w", err)
	}
	return next, nil
}

func scanDraft(row rowScanner) (*entity.DraftChallan, error) {
	var draft entity.DraftChallan
	var status string
	var deletedAt sql.NullTime

	err := row.Scan(&draft.ID, &draft.DraftID, &draft.SupplierID, &draft.VehicleNo,
		&draft.Process, &draft.TotalDispatchQty, &draft.TotalRate, &status,
		&draft.ShowWeight, &draft.ShowSquareFeet, &draft.Notes,
		&draft.CreatedBy, &draft.CreatedAt, &draft.UpdatedAt, &deletedAt)
	if err != nil {
		return nil, err
	}

	draft.Status = entity.ChallanStatus(status)
	if deletedAt.Valid {
		draft.DeletedAt = &deletedAt.Time
	}
	return &draft, nil
}
