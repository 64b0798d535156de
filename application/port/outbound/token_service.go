package outbound

import (
	"errors"
	"time"

	"github.com/dcdesk/dcdesk/domain/entity"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// TokenClaims is the identity slice carried inside signed tokens. The same
// schema is used by signer and verifier so the two cannot drift apart.
type TokenClaims struct {
	ID     string
	UserID string
	Email  string
	Name   string
	Role   entity.Role
}

// TokenService signs and verifies access and refresh tokens. The two kinds
// use independent secrets and TTLs; verifying a token against the wrong kind
// fails with ErrInvalidToken.
type TokenService interface {
	SignAccess(claims TokenClaims) (string, error)
	SignRefresh(claims TokenClaims) (string, error)
	VerifyAccess(token string) (*TokenClaims, error)
	VerifyRefresh(token string) (*TokenClaims, error)
	AccessTTL() time.Duration
	RefreshTTL() time.Duration
}
