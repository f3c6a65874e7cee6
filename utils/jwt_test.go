package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtractToken(t *testing.T) {
	token, err := GenerateToken("user-123", "asha@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", id)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-123", "asha@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractIDFromToken(token)
	assert.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-123", "asha@example.com", time.Hour)
	require.NoError(t, err)

	_, err = ExtractIDFromToken(token + "x")
	assert.Error(t, err)
}

func TestHashTokenIsDeterministic(t *testing.T) {
	a := HashToken("some-token")
	b := HashToken("some-token")
	c := HashToken("other-token")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
