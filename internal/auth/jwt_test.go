package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("runner@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "runner@example.com", claims.Username)
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	claims, err := ParseJWT("not-a-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseJWTRejectsTamperedToken(t *testing.T) {
	token, err := GenerateJWT("runner@example.com")
	require.NoError(t, err)

	claims, err := ParseJWT(token + "x")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
