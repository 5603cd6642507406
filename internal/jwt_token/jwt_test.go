package jwttoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "pixclaim/pkg/domain-errors"
)

var jwtService = NewJWTService(
	"test-signing-key",
	"pixclaim",
	"pix-key-service",
)

func Test_GenerateServiceToken(t *testing.T) {
	token, err := jwtService.GenerateServiceToken("pixclaim", "claims:write", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "pixclaim", claims.Subject)
	assert.Equal(t, "claims:write", claims.Scope)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func Test_ValidateToken_InvalidToken(t *testing.T) {
	_, err := jwtService.ValidateToken("invalid-token-string")
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeUnauthorized))
}

func Test_ValidateToken_WrongKey(t *testing.T) {
	other := NewJWTService("other-key", "pixclaim", "pix-key-service")
	token, err := other.GenerateServiceToken("pixclaim", "", time.Minute)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	assert.True(t, dErrors.Is(err, dErrors.CodeUnauthorized))
}

func Test_ValidateToken_WrongAudience(t *testing.T) {
	other := NewJWTService("test-signing-key", "pixclaim", "someone-else")
	token, err := other.GenerateServiceToken("pixclaim", "", time.Minute)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	assert.True(t, dErrors.Is(err, dErrors.CodeUnauthorized))
}

func Test_ValidateToken_Expired(t *testing.T) {
	svc := NewJWTService("test-signing-key", "pixclaim", "pix-key-service")
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }
	token, err := svc.GenerateServiceToken("pixclaim", "", time.Minute)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	require.Error(t, err)
	assert.Equal(t, "token has expired", err.Error())
}
