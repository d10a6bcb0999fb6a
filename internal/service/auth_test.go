package service

import (
	"context"
	"testing"
	"time"

	"github.com/apostaguard/platform/internal/auth"
	"github.com/apostaguard/platform/internal/domain"
	"github.com/apostaguard/platform/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService() *AuthService {
	store := repository.NewMemoryStore()
	jwtMgr := auth.NewJWTManager("test-secret-at-least-32-characters!", time.Hour)
	return NewAuthService(store.Users(), jwtMgr, nopPublisher{})
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, "user01@teste.com", "Senha@123")
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)

	loggedIn, err := svc.Login(ctx, "user01@teste.com", "Senha@123")
	require.NoError(t, err)
	assert.Equal(t, registered.OwnerID, loggedIn.OwnerID)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "user01@teste.com", "Senha@123")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "user01@teste.com", "wrong-pass")
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	svc := newTestAuthService()
	_, err := svc.Login(context.Background(), "nobody@teste.com", "whatever1")
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "not-an-email", "Senha@123")
	assert.Error(t, err)

	_, err = svc.Register(ctx, "user01@teste.com", "short")
	assert.Error(t, err)
}

func TestAuthService_SeedAccountIsIdempotent(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	require.NoError(t, svc.SeedAccount(ctx, "user01@teste.com", "Senha@123"))
	require.NoError(t, svc.SeedAccount(ctx, "user01@teste.com", "Senha@123"))

	_, err := svc.Login(ctx, "user01@teste.com", "Senha@123")
	assert.NoError(t, err)
}
