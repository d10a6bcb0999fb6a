// Package repository defines the persistence contracts for the wagering
// core and provides two interchangeable backends: an in-process memory store
// (the default, and what the core tests run against) and a pgx-backed
// Postgres store.
package repository

import (
	"context"
	"time"

	"github.com/apostaguard/platform/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX abstracts pgx.Tx and pgxpool.Pool so the pg repositories work with both.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// WagerRepository is the append-only wager ledger for all owners.
type WagerRepository interface {
	// Append stores a new wager. Wagers are never updated or deleted.
	Append(ctx context.Context, w *domain.Wager) error

	// ListInRange returns the owner's wagers with occurred_at in [from, to),
	// ordered ascending by occurred_at.
	ListInRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]domain.Wager, error)
}

// LimitRepository stores explicitly saved limit configs.
type LimitRepository interface {
	// Find returns the owner's saved config, or nil if none was ever saved.
	Find(ctx context.Context, ownerID uuid.UUID) (*domain.LimitConfig, error)

	// Save stores or replaces the owner's config.
	Save(ctx context.Context, ownerID uuid.UUID, cfg domain.LimitConfig) error
}

// ExclusionRepository stores self-exclusion locks.
type ExclusionRepository interface {
	// Find returns the owner's lock (possibly expired), or nil if none exists.
	Find(ctx context.Context, ownerID uuid.UUID) (*domain.Exclusion, error)

	// Save stores or replaces the owner's lock.
	Save(ctx context.Context, excl domain.Exclusion) error
}

// AuthUserRepository stores registered accounts.
type AuthUserRepository interface {
	// FindByEmail returns an account by email, or nil if not registered.
	FindByEmail(ctx context.Context, email string) (*domain.AuthUser, error)

	// Create inserts a new account.
	Create(ctx context.Context, user *domain.AuthUser) error
}
