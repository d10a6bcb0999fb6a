package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/apostaguard/platform/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type pgExclusionRepo struct {
	db DBTX
}

// NewPgExclusionRepository returns a pgx-backed ExclusionRepository.
func NewPgExclusionRepository(db DBTX) ExclusionRepository {
	return &pgExclusionRepo{db: db}
}

func (r *pgExclusionRepo) Find(ctx context.Context, ownerID uuid.UUID) (*domain.Exclusion, error) {
	excl := domain.Exclusion{OwnerID: ownerID}
	err := r.db.QueryRow(ctx, `
		SELECT expires_at FROM self_exclusions WHERE owner_id = $1`, ownerID).
		Scan(&excl.ExpiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query exclusion: %w", err)
	}
	return &excl, nil
}

func (r *pgExclusionRepo) Save(ctx context.Context, excl domain.Exclusion) error {
	// Replaces rather than extends a previous lock.
	_, err := r.db.Exec(ctx, `
		INSERT INTO self_exclusions (owner_id, expires_at, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (owner_id) DO UPDATE
		SET expires_at = EXCLUDED.expires_at, updated_at = now()`,
		excl.OwnerID, excl.ExpiresAt)
	if err != nil {
		return fmt.Errorf("save exclusion: %w", err)
	}
	return nil
}
