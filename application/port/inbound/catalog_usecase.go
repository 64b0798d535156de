package inbound

import (
	"context"

	"github.com/dcdesk/dcdesk/domain/entity"
)

type SupplierRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Address string `json:"address"`
	GSTIN   string `json:"gstin"`
}

type ItemRequest struct {
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// CatalogUseCase manages the supplier and standard-item reference data the
// challan screens draw from.
type CatalogUseCase interface {
	ListSuppliers(ctx context.Context) ([]*entity.Supplier, error)
	CreateSupplier(ctx context.Context, req SupplierRequest) (*entity.Supplier, error)
	UpdateSupplier(ctx context.Context, id int64, req SupplierRequest) (*entity.Supplier, error)
	DeleteSupplier(ctx context.Context, id int64) error

	ListItems(ctx context.Context) ([]*entity.Item, error)
	CreateItem(ctx context.Context, req ItemRequest) (*entity.Item, error)
	UpdateItem(ctx context.Context, id int64, req ItemRequest) (*entity.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}
