package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/dcdesk/dcdesk/application/port/inbound"
	"github.com/dcdesk/dcdesk/application/usecase"
	"github.com/dcdesk/dcdesk/infrastructure/http/middleware"
	"github.com/dcdesk/dcdesk/infrastructure/http/response"
	"github.com/dcdesk/dcdesk/infrastructure/http/validator"
	"github.com/dcdesk/dcdesk/infrastructure/service/logger"
)

const (
	accessTokenCookie  = "accessToken"
	refreshTokenCookie = "refreshToken"
	userDataCookie     = "user_data"
)

type AuthHandler struct {
	authUseCase inbound.AuthUseCase
	userMgmt    inbound.UserManagementUseCase
	secure      bool
	accessTTL   time.Duration
	refreshTTL  time.Duration
	log         logger.Logger
}

func NewAuthHandler(authUseCase inbound.AuthUseCase, userMgmt inbound.UserManagementUseCase, secure bool, accessTTL, refreshTTL time.Duration, log logger.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		userMgmt:    userMgmt,
		secure:      secure,
		accessTTL:   accessTTL,
		refreshTTL:  refreshTTL,
		log:         log,
	}
}

// Login authenticates with userId and password. On success the token pair
// is returned in the body and mirrored into cookies for browser clients.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req inbound.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if !validator.ValidateRequired(req.UserID) || !validator.ValidateRequired(req.Password) {
		response.BadRequest(w, "User ID and password are required")
		return
	}

	result, err := h.authUseCase.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			response.Unauthorized(w, "Invalid credentials")
		case errors.Is(err, usecase.ErrInactiveAccount):
			response.Unauthorized(w, "User account is inactive")
		default:
			response.InternalServerError(w, "Login failed")
		}
		return
	}

	h.setAuthCookies(w, result)
	response.Success(w, http.StatusOK, "Login successful", result)
}

// Refresh rotates the token pair. The refresh token is read from the body
// first and the cookie as a fallback.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RefreshToken string `json:"refreshToken"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	token := body.RefreshToken
	if token == "" {
		if c, err := r.Cookie(refreshTokenCookie); err == nil {
			token = c.Value
		}
	}
	if token == "" {
		response.Unauthorized(w, "No refresh token provided")
		return
	}

	result, err := h.authUseCase.Refresh(r.Context(), token)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidRefreshToken) {
			h.clearAuthCookies(w)
			response.Unauthorized(w, "Invalid or expired refresh token")
			return
		}
		response.InternalServerError(w, "Token refresh failed")
		return
	}

	h.setTokenCookies(w, result.AccessToken, result.RefreshToken)
	response.Success(w, http.StatusOK, "Token refreshed", result)
}

// VerifyUser is the pre-login existence check used by the login screen.
func (h *AuthHandler) VerifyUser(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || !validator.ValidateRequired(body.UserID) {
		response.BadRequest(w, "User ID is required")
		return
	}

	result, err := h.authUseCase.VerifyUser(r.Context(), body.UserID)
	if err != nil {
		response.InternalServerError(w, "Verification failed")
		return
	}

	// Unknown ids come back 200 with exists=false; the login screen reads
	// the flag, not the status code.
	if !result.Exists {
		response.WriteJSON(w, http.StatusOK, false, result.Message, result)
		return
	}
	response.Success(w, http.StatusOK, result.Message, result)
}

// Logout clears the auth cookies. Tokens are stateless so already-issued
// tokens stay valid until they expire.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearAuthCookies(w)
	response.Success(w, http.StatusOK, "Logged out", nil)
}

// Me returns the identity decoded from the access token.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		response.Unauthorized(w, "No token provided")
		return
	}
	response.Success(w, http.StatusOK, "Authenticated", inbound.UserData{
		ID:       claims.ID,
		UserID:   claims.UserID,
		Name:     claims.Name,
		Email:    claims.Email,
		Role:     claims.Role,
		IsActive: true,
	})
}

// Setup seeds the very first user as super_admin. It only works while the
// user table is empty.
func (h *AuthHandler) Setup(w http.ResponseWriter, r *http.Request) {
	var req inbound.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	user, err := h.userMgmt.SetupFirstUser(r.Context(), req)
	if err != nil {
		writeUserMgmtError(w, err)
		return
	}
	response.Success(w, http.StatusCreated, "Initial admin created", user)
}

func (h *AuthHandler) setAuthCookies(w http.ResponseWriter, result *inbound.LoginResponse) {
	h.setTokenCookies(w, result.AccessToken, result.RefreshToken)

	if data, err := json.Marshal(result.User); err == nil {
		http.SetCookie(w, &http.Cookie{
			Name:     userDataCookie,
			Value:    url.QueryEscape(string(data)),
			Path:     "/",
			MaxAge:   int(h.refreshTTL.Seconds()),
			Secure:   h.secure,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

// Cookie lifetimes track the configured token TTLs so a cookie never
// outlives (or undercuts) the token it carries.
func (h *AuthHandler) setTokenCookies(w http.ResponseWriter, accessToken, refreshToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    accessToken,
		Path:     "/",
		MaxAge:   int(h.accessTTL.Seconds()),
		Secure:   h.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    refreshToken,
		Path:     "/",
		MaxAge:   int(h.refreshTTL.Seconds()),
		Secure:   h.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearAuthCookies(w http.ResponseWriter) {
	for _, name := range []string{accessTokenCookie, refreshTokenCookie, userDataCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			Secure:   h.secure,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
}
