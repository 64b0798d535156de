package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcdesk/dcdesk/application/port/outbound"
	"github.com/dcdesk/dcdesk/domain/entity"
)

func newTestService(t *testing.T, accessTTL, refreshTTL time.Duration) *Service {
	t.Helper()
	svc, err := NewService("access-secret-for-tests", "refresh-secret-for-tests", accessTTL, refreshTTL)
	require.NoError(t, err)
	return svc
}

func testClaims() outbound.TokenClaims {
	return outbound.TokenClaims{
		ID:     "6b9f8a34-1111-2222-3333-444455556666",
		UserID: "jdoe",
		Email:  "jdoe@example.com",
		Name:   "John Doe",
		Role:   entity.RoleAdmin,
	}
}

func TestNewService_RequiresSecrets(t *testing.T) {
	_, err := NewService("", "refresh", time.Hour, time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = NewService("access", "", time.Hour, time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = NewService("same", "same", time.Hour, time.Hour)
	assert.ErrorIs(t, err, ErrSameSecrets)
}

func TestAccessToken_RoundTrip(t *testing.T) {
	svc := newTestService(t, time.Hour, 7*24*time.Hour)
	claims := testClaims()

	token, err := svc.SignAccess(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	decoded, err := svc.VerifyAccess(token)
	require.NoError(t, err)
	assert.Equal(t, claims.ID, decoded.ID)
	assert.Equal(t, claims.UserID, decoded.UserID)
	assert.Equal(t, claims.Email, decoded.Email)
	assert.Equal(t, claims.Name, decoded.Name)
	assert.Equal(t, claims.Role, decoded.Role)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	svc := newTestService(t, time.Hour, 7*24*time.Hour)

	token, err := svc.SignRefresh(testClaims())
	require.NoError(t, err)

	decoded, err := svc.VerifyRefresh(token)
	require.NoError(t, err)
	assert.Equal(t, "jdoe", decoded.UserID)
}

func TestVerify_ExpiredToken(t *testing.T) {
	svc := newTestService(t, -time.Minute, 7*24*time.Hour)

	token, err := svc.SignAccess(testClaims())
	require.NoError(t, err)

	_, err = svc.VerifyAccess(token)
	assert.ErrorIs(t, err, outbound.ErrTokenExpired)
}

func TestVerify_SecretIsolation(t *testing.T) {
	svc := newTestService(t, time.Hour, 7*24*time.Hour)

	access, err := svc.SignAccess(testClaims())
	require.NoError(t, err)
	refresh, err := svc.SignRefresh(testClaims())
	require.NoError(t, err)

	// A refresh token must never pass access verification and vice versa.
	_, err = svc.VerifyAccess(refresh)
	assert.ErrorIs(t, err, outbound.ErrInvalidToken)

	_, err = svc.VerifyRefresh(access)
	assert.ErrorIs(t, err, outbound.ErrInvalidToken)
}

func TestVerify_TamperedAndGarbageTokens(t *testing.T) {
	svc := newTestService(t, time.Hour, 7*24*time.Hour)

	token, err := svc.SignAccess(testClaims())
	require.NoError(t, err)

	_, err = svc.VerifyAccess(token + "x")
	assert.ErrorIs(t, err, outbound.ErrInvalidToken)

	_, err = svc.VerifyAccess("not-a-jwt")
	assert.ErrorIs(t, err, outbound.ErrInvalidToken)

	_, err = svc.VerifyAccess("")
	assert.ErrorIs(t, err, outbound.ErrInvalidToken)
}

func TestVerify_WrongSigningService(t *testing.T) {
	svc := newTestService(t, time.Hour, 7*24*time.Hour)
	other, err := NewService("other-access-secret", "other-refresh-secret", time.Hour, time.Hour)
	require.NoError(t, err)

	token, err := other.SignAccess(testClaims())
	require.NoError(t, err)

	_, err = svc.VerifyAccess(token)
	assert.ErrorIs(t, err, outbound.ErrInvalidToken)
}

func TestTTLAccessors(t *testing.T) {
	svc := newTestService(t, time.Hour, 7*24*time.Hour)
	assert.Equal(t, time.Hour, svc.AccessTTL())
	assert.Equal(t, 7*24*time.Hour, svc.RefreshTTL())
}
