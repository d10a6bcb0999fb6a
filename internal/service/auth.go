package service

import (
	"context"
	"time"

	"github.com/apostaguard/platform/internal/auth"
	"github.com/apostaguard/platform/internal/domain"
	"github.com/apostaguard/platform/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles account registration and login.
type AuthService struct {
	users  repository.AuthUserRepository
	jwtMgr *auth.JWTManager
	events EventPublisher
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repository.AuthUserRepository, jwtMgr *auth.JWTManager, events EventPublisher) *AuthService {
	return &AuthService{users: users, jwtMgr: jwtMgr, events: events}
}

// AuthResult is returned on successful registration or login.
type AuthResult struct {
	Token   string    `json:"token"`
	OwnerID uuid.UUID `json:"owner_id"`
	Email   string    `json:"email"`
}

// Register creates a new account and returns a signed token.
func (s *AuthService) Register(ctx context.Context, email, password string) (*AuthResult, error) {
	if err := domain.ValidateEmail(email); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}
	if len(password) < 8 {
		return nil, domain.ErrValidation("password must be at least 8 characters")
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInternal("find user", err)
	}
	if existing != nil {
		return nil, domain.ErrConflict("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.ErrInternal("hash password", err)
	}

	user := &domain.AuthUser{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.jwtMgr.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, domain.ErrInternal("generate token", err)
	}

	s.events.Publish(ctx, domain.NewAccountCreatedEvent(user.ID, user.Email))

	return &AuthResult{Token: token, OwnerID: user.ID, Email: user.Email}, nil
}

// Login verifies credentials and returns a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInternal("find user", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized("invalid email or password")
	}

	token, err := s.jwtMgr.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, domain.ErrInternal("generate token", err)
	}

	return &AuthResult{Token: token, OwnerID: user.ID, Email: user.Email}, nil
}

// SeedAccount registers a demo account at startup, ignoring duplicates.
// Used with the memory backend, which starts empty on every boot.
func (s *AuthService) SeedAccount(ctx context.Context, email, password string) error {
	_, err := s.Register(ctx, email, password)
	if appErr, ok := err.(*domain.AppError); ok && appErr.Code == "CONFLICT" {
		return nil
	}
	return err
}
