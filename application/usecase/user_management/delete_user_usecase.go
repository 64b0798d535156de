package user_management

import (
	"context"

	"github.com/dcdesk/dcdesk/application/port/outbound"
)

// DeleteUserUseCase soft-deletes an identity. Users are never hard-deleted.
type DeleteUserUseCase struct {
	userRepo outbound.UserRepository
}

func NewDeleteUserUseCase(userRepo outbound.UserRepository) *DeleteUserUseCase {
	return &DeleteUserUseCase{userRepo: userRepo}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, id string) error {
	return uc.userRepo.SoftDelete(ctx, id)
}
