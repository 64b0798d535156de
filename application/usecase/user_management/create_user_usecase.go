package user_management

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/dcdesk/dcdesk/application/port/inbound"
	"github.com/dcdesk/dcdesk/application/port/outbound"
	"github.com/dcdesk/dcdesk/domain/entity"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type CreateUserUseCase struct {
	userRepo    outbound.UserRepository
	passwordSvc outbound.PasswordService
}

func NewCreateUserUseCase(userRepo outbound.UserRepository, passwordSvc outbound.PasswordService) *CreateUserUseCase {
	return &CreateUserUseCase{userRepo: userRepo, passwordSvc: passwordSvc}
}

// Execute creates a new identity. Admins may only create user-role
// identities; super_admin may create any role.
func (uc *CreateUserUseCase) Execute(ctx context.Context, actorRole entity.Role, req inbound.CreateUserRequest) (*inbound.UserData, error) {
	if req.Role == "" {
		req.Role = entity.RoleUser
	}

	if err := validateCreateRequest(&req); err != nil {
		return nil, err
	}

	if actorRole == entity.RoleAdmin && req.Role != entity.RoleUser {
		return nil, ErrRoleNotPermitted
	}

	if taken, err := uc.userRepo.ExistsByUserID(ctx, req.UserID); err != nil {
		return nil, fmt.Errorf("check user id: %w", err)
	} else if taken {
		return nil, ErrUserIDTaken
	}

	if taken, err := uc.userRepo.ExistsByEmail(ctx, req.Email); err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	} else if taken {
		return nil, ErrEmailTaken
	}

	hash, err := uc.passwordSvc.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := entity.NewUser(uuid.New().String(), req.UserID, req.Name, req.Email, hash, req.Role)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return toUserData(user), nil
}

func validateCreateRequest(req *inbound.CreateUserRequest) error {
	req.UserID = strings.TrimSpace(req.UserID)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)

	if len(req.UserID) < 3 {
		return ErrInvalidUserID
	}
	if len(req.Name) < 2 {
		return ErrInvalidName
	}
	if !emailRegex.MatchString(req.Email) {
		return ErrInvalidEmail
	}
	if len(req.Password) < 6 {
		return ErrInvalidPassword
	}
	if !req.Role.Valid() {
		return ErrInvalidRole
	}
	return nil
}
