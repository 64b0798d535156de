package user_management

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dcdesk/dcdesk/application/port/inbound"
	"github.com/dcdesk/dcdesk/application/port/outbound"
)

type UpdateUserUseCase struct {
	userRepo outbound.UserRepository
}

func NewUpdateUserUseCase(userRepo outbound.UserRepository) *UpdateUserUseCase {
	return &UpdateUserUseCase{userRepo: userRepo}
}

// Execute applies only the fields present in the request. Deactivation here
// is the lever that locks an account out of login.
func (uc *UpdateUserUseCase) Execute(ctx context.Context, id string, req inbound.UpdateUserRequest) (*inbound.UserData, error) {
	user, err := uc.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if len(name) < 2 {
			return nil, ErrInvalidName
		}
		user.Name = name
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if !emailRegex.MatchString(email) {
			return nil, ErrInvalidEmail
		}
		if email != user.Email {
			taken, err := uc.userRepo.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, fmt.Errorf("check email: %w", err)
			}
			if taken {
				return nil, ErrEmailTaken
			}
		}
		user.Email = email
	}
	if req.Role != nil {
		if !req.Role.Valid() {
			return nil, ErrInvalidRole
		}
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	return toUserData(user), nil
}
