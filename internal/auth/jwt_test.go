package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	mgr := NewJWTManager("test-secret-at-least-32-characters!", time.Hour)
	owner := uuid.New()

	token, err := mgr.GenerateToken(owner, "user01@teste.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := mgr.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, owner.String(), claims.Subject)
	assert.Equal(t, "user01@teste.com", claims.Email)
}

func TestJWTManager_RejectsWrongSecret(t *testing.T) {
	mgr := NewJWTManager("test-secret-at-least-32-characters!", time.Hour)
	other := NewJWTManager("another-secret-also-32-characters!!", time.Hour)

	token, err := mgr.GenerateToken(uuid.New(), "")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTManager_RejectsExpiredToken(t *testing.T) {
	mgr := NewJWTManager("test-secret-at-least-32-characters!", -time.Minute)

	token, err := mgr.GenerateToken(uuid.New(), "")
	require.NoError(t, err)

	_, err = mgr.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTManager_RejectsGarbage(t *testing.T) {
	mgr := NewJWTManager("test-secret-at-least-32-characters!", time.Hour)
	_, err := mgr.ValidateToken("not.a.token")
	assert.Error(t, err)
}
