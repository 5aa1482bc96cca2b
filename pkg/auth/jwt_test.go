package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateToken_RoundTrip(t *testing.T) {
	v := NewValidator("s3cret")

	token, err := v.GenerateToken("picker-7", "operator", time.Minute)
	require.NoError(t, err)

	claims, err := v.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "picker-7", claims.Username)
	assert.Equal(t, "operator", claims.Role)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := NewValidator("one").GenerateToken("picker-7", "operator", time.Minute)
	require.NoError(t, err)

	_, err = NewValidator("two").ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	v := NewValidator("s3cret")
	token, err := v.GenerateToken("picker-7", "operator", -time.Minute)
	require.NoError(t, err)

	_, err = v.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
