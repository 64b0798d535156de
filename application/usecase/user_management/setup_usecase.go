package user_management

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dcdesk/dcdesk/application/port/inbound"
	"github.com/dcdesk/dcdesk/application/port/outbound"
	"github.com/dcdesk/dcdesk/domain/entity"
)

// SetupUseCase seeds the first identity. It only succeeds on an empty user
// table and always creates a super_admin, regardless of the requested role.
type SetupUseCase struct {
	userRepo    outbound.UserRepository
	passwordSvc outbound.PasswordService
}

func NewSetupUseCase(userRepo outbound.UserRepository, passwordSvc outbound.PasswordService) *SetupUseCase {
	return &SetupUseCase{userRepo: userRepo, passwordSvc: passwordSvc}
}

func (uc *SetupUseCase) Execute(ctx context.Context, req inbound.CreateUserRequest) (*inbound.UserData, error) {
	count, err := uc.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil, ErrSetupAlreadyDone
	}

	req.Role = entity.RoleSuperAdmin
	if err := validateCreateRequest(&req); err != nil {
		return nil, err
	}

	hash, err := uc.passwordSvc.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := entity.NewUser(uuid.New().String(), req.UserID, req.Name, req.Email, hash, entity.RoleSuperAdmin)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create super admin: %w", err)
	}

	return toUserData(user), nil
}
