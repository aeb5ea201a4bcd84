package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	Init("test-secret")

	token, err := GenerateToken(42)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.EmployeeID)
}

func TestValidateRejectsGarbage(t *testing.T) {
	Init("test-secret")

	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	Init("secret-a")
	token, err := GenerateToken(1)
	require.NoError(t, err)

	Init("secret-b")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}
