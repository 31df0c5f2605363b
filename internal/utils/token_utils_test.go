package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("user-1", "secret", time.Hour, time.Now())
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, TokenIssuer, claims.Issuer)
}

func TestParseAndValidateJWT_Rejects(t *testing.T) {
	expired, err := GenerateJWT("user-1", "secret", time.Minute, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(expired, "secret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	valid, err := GenerateJWT("user-1", "secret", time.Hour, time.Now())
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(valid, "other-secret")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	_, err = ParseAndValidateJWT("not-a-token", "secret")
	assert.Error(t, err)
}

func TestGenerateJWT_RequiresSubjectAndSecret(t *testing.T) {
	_, err := GenerateJWT("", "secret", time.Hour, time.Now())
	assert.Error(t, err)
	_, err = GenerateJWT("user-1", "", time.Hour, time.Now())
	assert.Error(t, err)
}
