package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndVerify(t *testing.T) {
	token, err := Generate(testSecret, "owner-1", "owner", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := Verify(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "owner-1", claims.UserID)
	assert.Equal(t, "owner", claims.Role)
	assert.Equal(t, "taskdesk", claims.Issuer)
}

func TestVerifyEmptyToken(t *testing.T) {
	_, err := Verify(testSecret, "")
	assert.ErrorIs(t, err, ErrTokenEmpty)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := Generate(testSecret, "owner-1", "owner", time.Hour)
	require.NoError(t, err)

	_, err = Verify("other-secret", token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyExpiredToken(t *testing.T) {
	token, err := Generate(testSecret, "owner-1", "owner", -time.Minute)
	require.NoError(t, err)

	_, err = Verify(testSecret, token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyGarbageToken(t *testing.T) {
	_, err := Verify(testSecret, "not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
