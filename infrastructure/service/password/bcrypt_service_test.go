package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcdesk/dcdesk/application/port/outbound"
)

func TestHashAndCompare(t *testing.T) {
	svc := NewBcryptService(4) // min cost keeps the test fast

	hash, err := svc.Hash("secret123")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", hash)

	assert.NoError(t, svc.Compare(hash, "secret123"))
	assert.ErrorIs(t, svc.Compare(hash, "wrong-password"), outbound.ErrPasswordMismatch)
}

func TestHash_EmptyPassword(t *testing.T) {
	svc := NewBcryptService(4)
	_, err := svc.Hash("")
	assert.Error(t, err)
}

func TestCompare_EmptyInputs(t *testing.T) {
	svc := NewBcryptService(4)
	assert.ErrorIs(t, svc.Compare("", "secret123"), outbound.ErrPasswordMismatch)

	hash, err := svc.Hash("secret123")
	require.NoError(t, err)
	assert.ErrorIs(t, svc.Compare(hash, ""), outbound.ErrPasswordMismatch)
}

func TestHash_ProducesDistinctSalts(t *testing.T) {
	svc := NewBcryptService(4)

	first, err := svc.Hash("secret123")
	require.NoError(t, err)
	second, err := svc.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
