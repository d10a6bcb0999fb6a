// Package service implements the application operations on top of the
// repositories: wager admission, limit management, self-exclusion, and the
// monthly reports.
package service

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/apostaguard/platform/internal/calendar"
	"github.com/apostaguard/platform/internal/domain"
	"github.com/apostaguard/platform/internal/guard"
	"github.com/apostaguard/platform/internal/policy"
	"github.com/apostaguard/platform/internal/repository"
	"github.com/google/uuid"
)

// EventPublisher receives domain events emitted by the services. Publishing
// is advisory: implementations must not fail the emitting operation.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.EventDraft)
}

// BettingService is the write/read surface for an owner's wagering state.
type BettingService struct {
	wagers     repository.WagerRepository
	limits     repository.LimitRepository
	exclusions repository.ExclusionRepository
	locks      *guard.KeyedMutex
	events     EventPublisher
	logger     *slog.Logger
	loc        *time.Location
	now        func() time.Time
}

// NewBettingService creates a BettingService. loc is the reporting timezone
// used for all calendar windows and CSV timestamps.
func NewBettingService(
	wagers repository.WagerRepository,
	limits repository.LimitRepository,
	exclusions repository.ExclusionRepository,
	events EventPublisher,
	logger *slog.Logger,
	loc *time.Location,
) *BettingService {
	return &BettingService{
		wagers:     wagers,
		limits:     limits,
		exclusions: exclusions,
		locks:      guard.NewKeyedMutex(),
		events:     events,
		logger:     logger,
		loc:        loc,
		now:        time.Now,
	}
}

// PlaceBetResult is returned when a wager passes admission.
type PlaceBetResult struct {
	Wager            domain.Wager
	RemainingDaily   int64 // cents, post-insert
	RemainingWeekly  int64
	RemainingMonthly int64
}

// PlaceBet runs the admission sequence: validate amount, resolve the instant,
// check self-exclusion, enforce the daily cap against the current window sum,
// and append on success. The whole sequence holds the owner's lock so
// concurrent wagers cannot both pass the cap check. No state changes on any
// rejection path.
//
// Weekly and monthly caps are tracked and returned but do not gate writes.
func (s *BettingService) PlaceBet(ctx context.Context, ownerID uuid.UUID, amount int64, note, occurredAtRaw string) (*PlaceBetResult, error) {
	if err := domain.ValidatePositiveAmount(amount); err != nil {
		return nil, domain.ErrInvalidAmount()
	}

	ts := s.resolveInstant(occurredAtRaw)

	unlock := s.locks.Lock(ownerID.String())
	defer unlock()

	excl, err := s.exclusions.Find(ctx, ownerID)
	if err != nil {
		return nil, domain.ErrInternal("find exclusion", err)
	}
	if excl.Active(s.now()) {
		s.events.Publish(ctx, domain.NewWagerRejectedEvent(ownerID, amount, "self_excluded"))
		return nil, domain.ErrSelfExcluded()
	}

	cfg, err := s.effectiveLimits(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	daySum, err := s.sumInWindow(ctx, ownerID, calendar.Day(ts))
	if err != nil {
		return nil, err
	}
	weekSum, err := s.sumInWindow(ctx, ownerID, calendar.ISOWeek(ts))
	if err != nil {
		return nil, err
	}
	monthSum, err := s.sumInWindow(ctx, ownerID, calendar.Month(ts))
	if err != nil {
		return nil, err
	}

	eval := policy.EvaluateAdmission(cfg, daySum, amount)
	if !eval.Allowed {
		s.logger.Info("wager rejected",
			"owner_id", ownerID,
			"cap", eval.BreachedCap,
			"cap_value", eval.CapValue,
			"projected_sum", eval.ProjectedSum,
		)
		s.events.Publish(ctx, domain.NewWagerRejectedEvent(ownerID, amount, "daily_limit_exceeded"))
		return nil, domain.ErrDailyLimitExceeded()
	}

	wager := domain.Wager{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Amount:     amount,
		Note:       note,
		OccurredAt: ts,
	}
	if err := s.wagers.Append(ctx, &wager); err != nil {
		return nil, domain.ErrInternal("append wager", err)
	}

	s.events.Publish(ctx, domain.NewWagerAcceptedEvent(&wager))

	return &PlaceBetResult{
		Wager:            wager,
		RemainingDaily:   policy.Remaining(cfg.Daily, daySum+amount),
		RemainingWeekly:  policy.Remaining(cfg.Weekly, weekSum+amount),
		RemainingMonthly: policy.Remaining(cfg.Monthly, monthSum+amount),
	}, nil
}

// GetLimits returns the owner's effective config (saved or default).
func (s *BettingService) GetLimits(ctx context.Context, ownerID uuid.UUID) (domain.LimitConfig, error) {
	return s.effectiveLimits(ctx, ownerID)
}

// SetLimits validates and replaces the owner's caps. A rejected update
// leaves the prior (or default) config intact.
func (s *BettingService) SetLimits(ctx context.Context, ownerID uuid.UUID, cfg domain.LimitConfig) (domain.LimitConfig, error) {
	if err := domain.ValidateLimitConfig(cfg); err != nil {
		return domain.LimitConfig{}, domain.ErrValidation(err.Error())
	}
	if err := s.limits.Save(ctx, ownerID, cfg); err != nil {
		return domain.LimitConfig{}, domain.ErrInternal("save limits", err)
	}
	s.events.Publish(ctx, domain.NewLimitsUpdatedEvent(ownerID, cfg))
	return cfg, nil
}

// SelfExclude sets or replaces the owner's exclusion lock to now + days*24h
// and returns the expiry. days == 0 falls back to 7. Always succeeds.
func (s *BettingService) SelfExclude(ctx context.Context, ownerID uuid.UUID, days float64) (time.Time, error) {
	if days == 0 {
		days = 7
	}
	expiresAt := s.now().Add(time.Duration(days * 24 * float64(time.Hour)))

	excl := domain.Exclusion{OwnerID: ownerID, ExpiresAt: expiresAt}
	if err := s.exclusions.Save(ctx, excl); err != nil {
		return time.Time{}, domain.ErrInternal("save exclusion", err)
	}

	s.logger.Info("self-exclusion enabled", "owner_id", ownerID, "expires_at", expiresAt)
	s.events.Publish(ctx, domain.NewSelfExclusionEvent(ownerID, expiresAt))
	return expiresAt, nil
}

// sumInWindow returns the sum of the owner's wager amounts with occurred_at
// in the window. Recomputed on every call; no memoization.
func (s *BettingService) sumInWindow(ctx context.Context, ownerID uuid.UUID, w calendar.Window) (int64, error) {
	wagers, err := s.wagers.ListInRange(ctx, ownerID, w.Start, w.End)
	if err != nil {
		return 0, domain.ErrInternal("list wagers", err)
	}
	var sum int64
	for _, wg := range wagers {
		sum += wg.Amount
	}
	return sum, nil
}

func (s *BettingService) effectiveLimits(ctx context.Context, ownerID uuid.UUID) (domain.LimitConfig, error) {
	cfg, err := s.limits.Find(ctx, ownerID)
	if err != nil {
		return domain.LimitConfig{}, domain.ErrInternal("find limits", err)
	}
	if cfg == nil {
		return domain.DefaultLimitConfig(), nil
	}
	return *cfg, nil
}

// resolveInstant parses an optional timestamp: ISO-8601 layouts first, then
// a bare number as epoch milliseconds. Absent or unparseable values fall
// back to the current instant, never an error.
func (s *BettingService) resolveInstant(raw string) time.Time {
	if raw == "" {
		return s.now().In(s.loc)
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, raw, s.loc); err == nil {
			return t.In(s.loc)
		}
	}
	if ms, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsInf(ms, 0) && !math.IsNaN(ms) {
		return time.UnixMilli(int64(ms)).In(s.loc)
	}
	return s.now().In(s.loc)
}
