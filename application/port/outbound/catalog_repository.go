package outbound

import (
	"context"
	"errors"

	"github.com/dcdesk/dcdesk/domain/entity"
)

var (
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrItemNotFound     = errors.New("item not found")
)

type SupplierRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Supplier, error)
	FindAll(ctx context.Context) ([]*entity.Supplier, error)
	Create(ctx context.Context, supplier *entity.Supplier) error
	Update(ctx context.Context, supplier *entity.Supplier) error
	SoftDelete(ctx context.Context, id int64) error
}

type ItemRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Item, error)
	FindAll(ctx context.Context) ([]*entity.Item, error)
	Create(ctx context.Context, item *entity.Item) error
	Update(ctx context.Context, item *entity.Item) error
	SoftDelete(ctx context.Context, id int64) error
}
