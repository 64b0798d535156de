package outbound

import (
	"context"
	"errors"

	"github.com/dcdesk/dcdesk/domain/entity"
)

var (
	ErrChallanNotFound = errors.New("delivery challan not found")
	ErrDraftNotFound   = errors.New("draft challan not found")
)

// ChallanFilters narrows FindAll results. An empty status means all statuses.
type ChallanFilters struct {
	Status entity.ChallanStatus
	Search string
}

type ChallanRepository interface {
	FindByID(ctx context.Context, id string) (*entity.DeliveryChallan, error)
	FindAll(ctx context.Context, offset, limit int, filters ChallanFilters) ([]*entity.DeliveryChallan, int, error)
	Create(ctx context.Context, dc *entity.DeliveryChallan) error
	Update(ctx context.Context, dc *entity.DeliveryChallan) error
	UpdateStatus(ctx context.Context, id string, status entity.ChallanStatus) error
	SoftDelete(ctx context.Context, id string) error
	ExistsByNumber(ctx context.Context, dcNumber string) (bool, error)
}

type DraftChallanRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.DraftChallan, error)
	FindAll(ctx context.Context, offset, limit int) ([]*entity.DraftChallan, int, error)
	Create(ctx context.Context, draft *entity.DraftChallan) error
	Update(ctx context.Context, draft *entity.DraftChallan) error
	SoftDelete(ctx context.Context, id int64) error
	NextDraftID(ctx context.Context) (int64, error)
}
