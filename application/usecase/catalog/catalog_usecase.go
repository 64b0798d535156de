package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dcdesk/dcdesk/application/port/inbound"
	"github.com/dcdesk/dcdesk/application/port/outbound"
	"github.com/dcdesk/dcdesk/domain/entity"
)

var (
	ErrSupplierNotFound = outbound.ErrSupplierNotFound
	ErrItemNotFound     = outbound.ErrItemNotFound
	ErrNameRequired     = errors.New("name is required")
)

// CatalogUseCase manages the supplier and standard-item reference data.
type CatalogUseCase struct {
	supplierRepo outbound.SupplierRepository
	itemRepo     outbound.ItemRepository
}

func NewCatalogUseCase(supplierRepo outbound.SupplierRepository, itemRepo outbound.ItemRepository) *CatalogUseCase {
	return &CatalogUseCase{supplierRepo: supplierRepo, itemRepo: itemRepo}
}

func (uc *CatalogUseCase) ListSuppliers(ctx context.Context) ([]*entity.Supplier, error) {
	return uc.supplierRepo.FindAll(ctx)
}

func (uc *CatalogUseCase) CreateSupplier(ctx context.Context, req inbound.SupplierRequest) (*entity.Supplier, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	now := time.Now()
	supplier := &entity.Supplier{
		Name:      strings.TrimSpace(req.Name),
		Contact:   req.Contact,
		Address:   req.Address,
		GSTIN:     req.GSTIN,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, fmt.Errorf("create supplier: %w", err)
	}
	return supplier, nil
}

func (uc *CatalogUseCase) UpdateSupplier(ctx context.Context, id int64, req inbound.SupplierRequest) (*entity.Supplier, error) {
	supplier, err := uc.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	supplier.Name = strings.TrimSpace(req.Name)
	supplier.Contact = req.Contact
	supplier.Address = req.Address
	supplier.GSTIN = req.GSTIN
	supplier.UpdatedAt = time.Now()

	if err := uc.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, fmt.Errorf("update supplier: %w", err)
	}
	return supplier, nil
}

func (uc *CatalogUseCase) DeleteSupplier(ctx context.Context, id int64) error {
	return uc.supplierRepo.SoftDelete(ctx, id)
}

func (uc *CatalogUseCase) ListItems(ctx context.Context) ([]*entity.Item, error) {
	return uc.itemRepo.FindAll(ctx)
}

func (uc *CatalogUseCase) CreateItem(ctx context.Context, req inbound.ItemRequest) (*entity.Item, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	now := time.Now()
	item := &entity.Item{
		Name:      strings.TrimSpace(req.Name),
		Unit:      req.Unit,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return item, nil
}

func (uc *CatalogUseCase) UpdateItem(ctx context.Context, id int64, req inbound.ItemRequest) (*entity.Item, error) {
	item, err := uc.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	item.Name = strings.TrimSpace(req.Name)
	item.Unit = req.Unit
	item.UpdatedAt = time.Now()

	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	return item, nil
}

func (uc *CatalogUseCase) DeleteItem(ctx context.Context, id int64) error {
	return uc.itemRepo.SoftDelete(ctx, id)
}
