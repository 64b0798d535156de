package inbound

import (
	"context"

	"github.com/dcdesk/dcdesk/domain/entity"
)

// UserData is the public identity shape returned to clients. It never
// carries the password hash.
type UserData struct {
	ID       string      `json:"id"`
	UserID   string      `json:"userId"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Role     entity.Role `json:"role"`
	IsActive bool        `json:"isActive"`
}

type LoginRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User         UserData `json:"user"`
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	ExpiresIn    int      `json:"expiresIn"`
}

type RefreshResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"`
}

type VerifyUserResponse struct {
	Exists  bool   `json:"exists"`
	Message string `json:"-"`
}

// AuthUseCase covers the credential verifier and session refresh flows.
// Every method is total: failures come back as sentinel errors, never panics.
type AuthUseCase interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*RefreshResponse, error)
	VerifyUser(ctx context.Context, userID string) (*VerifyUserResponse, error)
}
