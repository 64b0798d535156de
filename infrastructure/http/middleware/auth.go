package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dcdesk/dcdesk/application/port/outbound"
	"github.com/dcdesk/dcdesk/domain/entity"
	"github.com/dcdesk/dcdesk/infrastructure/http/response"
)

type contextKey string

const authClaimsKey contextKey = "auth_claims"

// AuthMiddleware is the request authenticator: it extracts the bearer
// token, verifies it, and injects the decoded claims into the context.
type AuthMiddleware struct {
	tokenService outbound.TokenService
}

func NewAuthMiddleware(tokenService outbound.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService}
}

func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearer(r)
		if token == "" {
			response.Unauthorized(w, "No token provided")
			return
		}

		claims, err := m.tokenService.VerifyAccess(token)
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), authClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a handler on role membership. It implies RequireAuth.
// Membership is an exact match against the closed role set; an unknown
// role is rejected, never defaulted to allowed.
func (m *AuthMiddleware) RequireRole(next http.Handler, allowed ...entity.Role) http.Handler {
	return m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := GetClaims(r.Context())
		if claims == nil {
			response.Unauthorized(w, "No token provided")
			return
		}
		if !claims.Role.In(allowed...) {
			response.Forbidden(w, "Insufficient role for this operation")
			return
		}
		next.ServeHTTP(w, r)
	}))
}

// GetClaims returns the authenticated claims, or nil outside RequireAuth.
func GetClaims(ctx context.Context) *outbound.TokenClaims {
	claims, _ := ctx.Value(authClaimsKey).(*outbound.TokenClaims)
	return claims
}

func extractBearer(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
