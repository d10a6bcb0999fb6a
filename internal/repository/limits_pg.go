package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/apostaguard/platform/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type pgLimitRepo struct {
	db DBTX
}

// NewPgLimitRepository returns a pgx-backed LimitRepository.
func NewPgLimitRepository(db DBTX) LimitRepository {
	return &pgLimitRepo{db: db}
}

func (r *pgLimitRepo) Find(ctx context.Context, ownerID uuid.UUID) (*domain.LimitConfig, error) {
	var cfg domain.LimitConfig
	err := r.db.QueryRow(ctx, `
		SELECT daily, weekly, monthly
		FROM limit_configs WHERE owner_id = $1`, ownerID).
		Scan(&cfg.Daily, &cfg.Weekly, &cfg.Monthly)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query limits: %w", err)
	}
	return &cfg, nil
}

func (r *pgLimitRepo) Save(ctx context.Context, ownerID uuid.UUID, cfg domain.LimitConfig) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO limit_configs (owner_id, daily, weekly, monthly, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (owner_id) DO UPDATE
		SET daily = EXCLUDED.daily, weekly = EXCLUDED.weekly,
		    monthly = EXCLUDED.monthly, updated_at = now()`,
		ownerID, cfg.Daily, cfg.Weekly, cfg.Monthly)
	if err != nil {
		return fmt.Errorf("save limits: %w", err)
	}
	return nil
}
