package jwttoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "curio/pkg/domain-errors"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewService("test-key", "curio", "curio")

	token, err := svc.GenerateAccessToken("alice", time.Minute)
	require.NoError(t, err)

	account, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", string(account))
}

func TestValidateToken(t *testing.T) {
	svc := NewService("test-key", "curio", "curio")

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		token, err := svc.GenerateAccessToken("alice", -time.Minute)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("rejects a token signed with another key", func(t *testing.T) {
		other := NewService("other-key", "curio", "curio")
		token, err := other.GenerateAccessToken("alice", time.Minute)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}
