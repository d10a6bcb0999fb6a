package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/apostaguard/platform/internal/domain"
	"github.com/jackc/pgx/v5"
)

type pgAuthUserRepo struct {
	db DBTX
}

// NewPgAuthUserRepository returns a pgx-backed AuthUserRepository.
func NewPgAuthUserRepository(db DBTX) AuthUserRepository {
	return &pgAuthUserRepo{db: db}
}

func (r *pgAuthUserRepo) FindByEmail(ctx context.Context, email string) (*domain.AuthUser, error) {
	var u domain.AuthUser
	err := r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, created_at
		FROM auth_users WHERE lower(email) = lower($1)`, email).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query auth user: %w", err)
	}
	return &u, nil
}

func (r *pgAuthUserRepo) Create(ctx context.Context, user *domain.AuthUser) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO auth_users (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)`,
		user.ID, user.Email, user.PasswordHash, user.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert auth user: %w", err)
	}
	return nil
}
