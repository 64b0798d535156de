package inbound

import (
	"context"

	"github.com/dcdesk/dcdesk/domain/entity"
)

type CreateUserRequest struct {
	UserID   string      `json:"userId"`
	Email    string      `json:"email"`
	Name     string      `json:"name"`
	Password string      `json:"password"`
	Role     entity.Role `json:"role"`
}

// UpdateUserRequest uses pointers so absent fields are left untouched.
type UpdateUserRequest struct {
	Name     *string      `json:"name"`
	Email    *string      `json:"email"`
	Role     *entity.Role `json:"role"`
	IsActive *bool        `json:"isActive"`
}

type ListUsersRequest struct {
	Page  int
	Limit int
	Name  string
	Role  entity.Role
}

type ListUsersResponse struct {
	Users      []UserData `json:"users"`
	Pagination Pagination `json:"pagination"`
}

type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

type UserManagementUseCase interface {
	// CreateUser enforces the actor's role: admins may only create user-role
	// identities, super_admin may create any role.
	CreateUser(ctx context.Context, actorRole entity.Role, req CreateUserRequest) (*UserData, error)
	// SetupFirstUser seeds the very first identity as super_admin; it fails
	// once any user exists.
	SetupFirstUser(ctx context.Context, req CreateUserRequest) (*UserData, error)
	ListUsers(ctx context.Context, req ListUsersRequest) (*ListUsersResponse, error)
	GetUser(ctx context.Context, id string) (*UserData, error)
	UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*UserData, error)
	DeleteUser(ctx context.Context, id string) error
}
