package usecase

import (
	"context"
	"errors"

	"github.com/dcdesk/dcdesk/application/port/inbound"
	"github.com/dcdesk/dcdesk/application/port/outbound"
	"github.com/dcdesk/dcdesk/domain/entity"
	"github.com/dcdesk/dcdesk/domain/valueobject"
	"github.com/dcdesk/dcdesk/infrastructure/service/logger"
)

var (
	// ErrInvalidCredentials covers both unknown user id and wrong password,
	// so callers cannot tell which ids exist.
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInactiveAccount     = errors.New("user account is inactive")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	// ErrAuthInternal hides storage and signing failures from clients.
	ErrAuthInternal = errors.New("authentication error")
)

type AuthUseCase struct {
	userRepo     outbound.UserRepository
	tokenService outbound.TokenService
	passwordSvc  outbound.PasswordService
	log          logger.Logger
}

func NewAuthUseCase(
	userRepo outbound.UserRepository,
	tokenService outbound.TokenService,
	passwordSvc outbound.PasswordService,
	log logger.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		tokenService: tokenService,
		passwordSvc:  passwordSvc,
		log:          log,
	}
}

// Login verifies credentials and mints a fresh token pair. Exactly one
// lookup and one hash comparison decide the outcome; nothing is mutated.
func (uc *AuthUseCase) Login(ctx context.Context, req inbound.LoginRequest) (*inbound.LoginResponse, error) {
	creds, err := valueobject.NewCredentials(req.UserID, req.Password)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := uc.userRepo.FindByUserID(ctx, creds.UserID())
	if err != nil {
		if errors.Is(err, outbound.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		uc.log.Error(ctx, "login lookup failed", err, map[string]interface{}{"user_id": req.UserID})
		return nil, ErrAuthInternal
	}

	if err := uc.passwordSvc.Compare(user.Password, creds.Password()); err != nil {
		if errors.Is(err, outbound.ErrPasswordMismatch) {
			return nil, ErrInvalidCredentials
		}
		uc.log.Error(ctx, "password comparison failed", err, map[string]interface{}{"user_id": req.UserID})
		return nil, ErrAuthInternal
	}

	// Inactive accounts never authenticate, even with the right password.
	if !user.IsActive {
		return nil, ErrInactiveAccount
	}

	pair, err := uc.mintPair(user.ID, user.UserID, user.Email, user.Name, user.Role)
	if err != nil {
		uc.log.Error(ctx, "token minting failed", err, map[string]interface{}{"user_id": req.UserID})
		return nil, ErrAuthInternal
	}

	logger.LogAuthEvent(ctx, uc.log, "login", user.UserID, true, nil)

	return &inbound.LoginResponse{
		User: inbound.UserData{
			ID:       user.ID,
			UserID:   user.UserID,
			Name:     user.Name,
			Email:    user.Email,
			Role:     user.Role,
			IsActive: user.IsActive,
		},
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    int(uc.tokenService.AccessTTL().Seconds()),
	}, nil
}

// Refresh rotates the token pair. Claims are re-derived from the refresh
// token payload as trusted at mint time; there is no database lookup and no
// server-side invalidation of the old pair.
func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (*inbound.RefreshResponse, error) {
	claims, err := uc.tokenService.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	pair, err := uc.mintPair(claims.ID, claims.UserID, claims.Email, claims.Name, claims.Role)
	if err != nil {
		uc.log.Error(ctx, "token rotation failed", err, map[string]interface{}{"user_id": claims.UserID})
		return nil, ErrAuthInternal
	}

	return &inbound.RefreshResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    int(uc.tokenService.AccessTTL().Seconds()),
	}, nil
}

// VerifyUser is the pre-login existence check; it needs no secret.
func (uc *AuthUseCase) VerifyUser(ctx context.Context, userID string) (*inbound.VerifyUserResponse, error) {
	_, err := uc.userRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, outbound.ErrUserNotFound) {
			return &inbound.VerifyUserResponse{Exists: false, Message: "User ID not found"}, nil
		}
		uc.log.Error(ctx, "verify-user lookup failed", err, map[string]interface{}{"user_id": userID})
		return nil, ErrAuthInternal
	}
	return &inbound.VerifyUserResponse{Exists: true, Message: "User found"}, nil
}

func (uc *AuthUseCase) mintPair(id, userID, email, name string, role entity.Role) (*valueobject.TokenPair, error) {
	claims := outbound.TokenClaims{
		ID:     id,
		UserID: userID,
		Email:  email,
		Name:   name,
		Role:   role,
	}
	access, err := uc.tokenService.SignAccess(claims)
	if err != nil {
		return nil, err
	}
	refresh, err := uc.tokenService.SignRefresh(claims)
	if err != nil {
		return nil, err
	}
	return valueobject.NewTokenPair(access, refresh), nil
}
