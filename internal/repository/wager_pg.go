package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/apostaguard/platform/internal/domain"
	"github.com/google/uuid"
)

type pgWagerRepo struct {
	db DBTX
}

// NewPgWagerRepository returns a pgx-backed WagerRepository.
func NewPgWagerRepository(db DBTX) WagerRepository {
	return &pgWagerRepo{db: db}
}

func (r *pgWagerRepo) Append(ctx context.Context, w *domain.Wager) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO wagers (id, owner_id, amount, note, occurred_at)
		VALUES ($1, $2, $3, $4, $5)`,
		w.ID, w.OwnerID, w.Amount, w.Note, w.OccurredAt)
	if err != nil {
		return fmt.Errorf("insert wager: %w", err)
	}
	return nil
}

func (r *pgWagerRepo) ListInRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]domain.Wager, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, owner_id, amount, note, occurred_at
		FROM wagers
		WHERE owner_id = $1 AND occurred_at >= $2 AND occurred_at < $3
		ORDER BY occurred_at ASC, id ASC`,
		ownerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("query wagers: %w", err)
	}
	defer rows.Close()

	var out []domain.Wager
	for rows.Next() {
		var w domain.Wager
		if err := rows.Scan(&w.ID, &w.OwnerID, &w.Amount, &w.Note, &w.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan wager: %w", err)
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wagers: %w", err)
	}
	return out, nil
}
