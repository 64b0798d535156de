package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dcdesk/dcdesk/application/port/outbound"
	"github.com/dcdesk/dcdesk/domain/entity"
)

var (
	ErrMissingSecret = errors.New("jwt secret must not be empty")
	ErrSameSecrets   = errors.New("access and refresh secrets must differ")
)

// tokenClaims is the wire schema shared by signer and verifier. Keeping it a
// single tagged struct prevents field drift between the two sides.
type tokenClaims struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Service signs and verifies HS256 tokens. Access and refresh tokens use
// independent secrets and TTLs, so one kind never verifies as the other.
type Service struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) (*Service, error) {
	if accessSecret == "" || refreshSecret == "" {
		return nil, ErrMissingSecret
	}
	if accessSecret == refreshSecret {
		return nil, ErrSameSecrets
	}
	return &Service{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}, nil
}

func (s *Service) SignAccess(claims outbound.TokenClaims) (string, error) {
	return s.sign(claims, s.accessSecret, s.accessTTL)
}

func (s *Service) SignRefresh(claims outbound.TokenClaims) (string, error) {
	return s.sign(claims, s.refreshSecret, s.refreshTTL)
}

func (s *Service) VerifyAccess(token string) (*outbound.TokenClaims, error) {
	return s.verify(token, s.accessSecret)
}

func (s *Service) VerifyRefresh(token string) (*outbound.TokenClaims, error) {
	return s.verify(token, s.refreshSecret)
}

func (s *Service) AccessTTL() time.Duration {
	return s.accessTTL
}

func (s *Service) RefreshTTL() time.Duration {
	return s.refreshTTL
}

func (s *Service) sign(claims outbound.TokenClaims, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		ID:     claims.ID,
		UserID: claims.UserID,
		Email:  claims.Email,
		Name:   claims.Name,
		Role:   string(claims.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return token.SignedString(secret)
}

// verify maps every failure mode (malformed token, wrong signature, expiry)
// to a sentinel error so callers branch instead of recovering.
func (s *Service) verify(token string, secret []byte) (*outbound.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, outbound.ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, outbound.ErrTokenExpired
		}
		return nil, outbound.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return nil, outbound.ErrInvalidToken
	}
	return &outbound.TokenClaims{
		ID:     claims.ID,
		UserID: claims.UserID,
		Email:  claims.Email,
		Name:   claims.Name,
		Role:   entity.Role(claims.Role),
	}, nil
}
