package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken("user-1", secret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := GetUserIDFromToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("user-1", []byte("right"), time.Hour)
	require.NoError(t, err)

	_, err = GetUserIDFromToken(token, []byte("wrong"))
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	token, err := GenerateToken("user-1", []byte("s"), -time.Minute)
	require.NoError(t, err)

	_, err = GetUserIDFromToken(token, []byte("s"))
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	_, err := GetUserIDFromToken("not.a.token", []byte("s"))
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22hunter22", hash)

	assert.True(t, CheckPassword(hash, "hunter22hunter22"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
