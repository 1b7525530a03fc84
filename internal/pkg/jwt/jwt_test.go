package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := New("test-secret", time.Hour)

	token, err := svc.GenerateToken(7)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
}

func TestValidateRejectsForeignAndExpiredTokens(t *testing.T) {
	other, err := New("other-secret", time.Hour).GenerateToken(7)
	require.NoError(t, err)

	_, err = New("test-secret", time.Hour).ValidateToken(other)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := New("test-secret", -time.Minute).GenerateToken(7)
	require.NoError(t, err)

	_, err = New("test-secret", time.Hour).ValidateToken(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = New("test-secret", time.Hour).ValidateToken("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
