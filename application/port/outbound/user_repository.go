package outbound

import (
	"context"
	"errors"

	"github.com/dcdesk/dcdesk/domain/entity"
)

var ErrUserNotFound = errors.New("user not found")

// UserFilters narrows FindAll results. Zero values mean no filtering.
type UserFilters struct {
	Name string
	Role entity.Role
}

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByUserID(ctx context.Context, userID string) (*entity.User, error)
	FindAll(ctx context.Context, offset, limit int, filters UserFilters) ([]*entity.User, int, error)
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	SoftDelete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	ExistsByUserID(ctx context.Context, userID string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
