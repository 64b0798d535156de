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

const supplierColumns = "id, name, contact, address, gstin, created_at, updated_at, deleted_at"

type SupplierRepository struct {
	db *sql.DB
}

func NewSupplierRepository(db *sql.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

func (r *SupplierRepository) FindByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	query := fmt.Sprintf("SELECT %s FROM suppliers WHERE id = $1 AND deleted_at IS NULL", supplierColumns)
	supplier, err := scanSupplier(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, outbound.ErrSupplierNotFound
		}
		return nil, err
	}
	return supplier, nil
}

func (r *SupplierRepository) FindAll(ctx context.Context) ([]*entity.Supplier, error) {
	query := fmt.Sprintf("SELECT %s FROM suppliers WHERE deleted_at IS NULL ORDER BY name ASC", supplierColumns)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []*entity.Supplier
	for rows.Next() {
		supplier, err := scanSupplier(rows)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, supplier)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *SupplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (name, contact, address, gstin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		supplier.Name, supplier.Contact, supplier.Address, supplier.GSTIN,
		supplier.CreatedAt, supplier.UpdatedAt).Scan(&supplier.ID)
	if err != nil {
		return fmt.Errorf("create supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepository) Update(ctx context.Context, supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $2, contact = $3, address = $4, gstin = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL`
	result, err := r.db.ExecContext(ctx, query,
		supplier.ID, supplier.Name, supplier.Contact, supplier.Address,
		supplier.GSTIN, time.Now())
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return checkAffected(result, outbound.ErrSupplierNotFound)
}

func (r *SupplierRepository) SoftDelete(ctx context.Context, id int64) error {
	query := "UPDATE suppliers SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL"
	result, err := r.db.ExecContext(ctx, query, id, time.Now())
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return checkAffected(result, outbound.ErrSupplierNotFound)
}

func scanSupplier(row rowScanner) (*entity.Supplier, error) {
	var supplier entity.Supplier
	var deletedAt sql.NullTime

	err := row.Scan(&supplier.ID, &supplier.Name, &supplier.Contact,
		&supplier.Address, &supplier.GSTIN,
		&supplier.CreatedAt, &supplier.UpdatedAt, &deletedAt)
	if err != nil {
		return nil, err
	}
	if deletedAt.Valid {
		supplier.DeletedAt = &deletedAt.Time
	}
	return &supplier, nil
}
