package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/apostaguard/platform/internal/domain"
	"github.com/google/uuid"
)

// MemoryStore is an in-process implementation of all repository interfaces.
// State lives for the process lifetime and resets on restart.
type MemoryStore struct {
	mu         sync.RWMutex
	wagers     map[uuid.UUID][]domain.Wager
	limits     map[uuid.UUID]domain.LimitConfig
	exclusions map[uuid.UUID]domain.Exclusion
	users      map[string]domain.AuthUser // keyed by lowercase email
}

// NewMemoryStore creates an empty memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		wagers:     make(map[uuid.UUID][]domain.Wager),
		limits:     make(map[uuid.UUID]domain.LimitConfig),
		exclusions: make(map[uuid.UUID]domain.Exclusion),
		users:      make(map[string]domain.AuthUser),
	}
}

func (s *MemoryStore) Append(_ context.Context, w *domain.Wager) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wagers[w.OwnerID] = append(s.wagers[w.OwnerID], *w)
	return nil
}

func (s *MemoryStore) ListInRange(_ context.Context, ownerID uuid.UUID, from, to time.Time) ([]domain.Wager, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Wager
	for _, w := range s.wagers[ownerID] {
		if !w.OccurredAt.Before(from) && w.OccurredAt.Before(to) {
			out = append(out, w)
		}
	}
	// Insertion order is not timestamp order: callers may backdate.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OccurredAt.Before(out[j].OccurredAt)
	})
	return out, nil
}

func (s *MemoryStore) Find(_ context.Context, ownerID uuid.UUID) (*domain.LimitConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cfg, ok := s.limits[ownerID]
	if !ok {
		return nil, nil
	}
	return &cfg, nil
}

func (s *MemoryStore) Save(_ context.Context, ownerID uuid.UUID, cfg domain.LimitConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limits[ownerID] = cfg
	return nil
}

// Exclusions returns the store's ExclusionRepository view. The method
// indirection keeps the identically named Find/Save pairs apart.
func (s *MemoryStore) Exclusions() ExclusionRepository { return (*memoryExclusions)(s) }

type memoryExclusions MemoryStore

func (s *memoryExclusions) Find(_ context.Context, ownerID uuid.UUID) (*domain.Exclusion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	excl, ok := s.exclusions[ownerID]
	if !ok {
		return nil, nil
	}
	return &excl, nil
}

func (s *memoryExclusions) Save(_ context.Context, excl domain.Exclusion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exclusions[excl.OwnerID] = excl
	return nil
}

// Users returns the store's AuthUserRepository view.
func (s *MemoryStore) Users() AuthUserRepository { return (*memoryUsers)(s) }

type memoryUsers MemoryStore

func (s *memoryUsers) FindByEmail(_ context.Context, email string) (*domain.AuthUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *memoryUsers) Create(_ context.Context, user *domain.AuthUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(user.Email)
	if _, exists := s.users[key]; exists {
		return domain.ErrConflict("email already registered")
	}
	s.users[key] = *user
	return nil
}
