package user_management

import (
	"context"
	"errors"

	"github.com/dcdesk/dcdesk/application/port/inbound"
	"github.com/dcdesk/dcdesk/application/port/outbound"
	"github.com/dcdesk/dcdesk/domain/entity"
)

var (
	ErrInvalidUserID    = errors.New("user id must be at least 3 characters")
	ErrInvalidName      = errors.New("name must be at least 2 characters")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrInvalidPassword  = errors.New("password must be at least 6 characters")
	ErrInvalidRole      = errors.New("invalid role")
	ErrUserIDTaken      = errors.New("user id already exists")
	ErrEmailTaken       = errors.New("email already exists")
	ErrRoleNotPermitted = errors.New("admins can only create users with user role")
	ErrSetupAlreadyDone = errors.New("users already exist")
	ErrUserNotFound     = outbound.ErrUserNotFound
)

// UserManagementUseCase is the facade over the per-operation use cases,
// satisfying inbound.UserManagementUseCase.
type UserManagementUseCase struct {
	create *CreateUserUseCase
	setup  *SetupUseCase
	list   *ListUsersUseCase
	get    *GetUserDetailUseCase
	update *UpdateUserUseCase
	delete *DeleteUserUseCase
}

func NewUserManagementUseCase(userRepo outbound.UserRepository, passwordSvc outbound.PasswordService) *UserManagementUseCase {
	return &UserManagementUseCase{
		create: NewCreateUserUseCase(userRepo, passwordSvc),
		setup:  NewSetupUseCase(userRepo, passwordSvc),
		list:   NewListUsersUseCase(userRepo),
		get:    NewGetUserDetailUseCase(userRepo),
		update: NewUpdateUserUseCase(userRepo),
		delete: NewDeleteUserUseCase(userRepo),
	}
}

func (uc *UserManagementUseCase) CreateUser(ctx context.Context, actorRole entity.Role, req inbound.CreateUserRequest) (*inbound.UserData, error) {
	return uc.create.Execute(ctx, actorRole, req)
}

func (uc *UserManagementUseCase) SetupFirstUser(ctx context.Context, req inbound.CreateUserRequest) (*inbound.UserData, error) {
	return uc.setup.Execute(ctx, req)
}

func (uc *UserManagementUseCase) ListUsers(ctx context.Context, req inbound.ListUsersRequest) (*inbound.ListUsersResponse, error) {
	return uc.list.Execute(ctx, req)
}

func (uc *UserManagementUseCase) GetUser(ctx context.Context, id string) (*inbound.UserData, error) {
	return uc.get.Execute(ctx, id)
}

func (uc *UserManagementUseCase) UpdateUser(ctx context.Context, id string, req inbound.UpdateUserRequest) (*inbound.UserData, error) {
	return uc.update.Execute(ctx, id, req)
}

func (uc *UserManagementUseCase) DeleteUser(ctx context.Context, id string) error {
	return uc.delete.Execute(ctx, id)
}

func toUserData(user *entity.User) *inbound.UserData {
	return &inbound.UserData{
		ID:       user.ID,
		UserID:   user.UserID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		IsActive: user.IsActive,
	}
}
