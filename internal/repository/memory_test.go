package repository

import (
	"context"
	"testing"
	"time"

	"github.com/apostaguard/platform/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_ListInRange(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	owner := uuid.New()
	other := uuid.New()

	at := func(day, hour int) time.Time {
		return time.Date(2024, 1, day, hour, 0, 0, 0, time.UTC)
	}

	// Appended out of timestamp order: the second wager is backdated.
	require.NoError(t, store.Append(ctx, &domain.Wager{ID: uuid.New(), OwnerID: owner, Amount: 1000, OccurredAt: at(15, 12)}))
	require.NoError(t, store.Append(ctx, &domain.Wager{ID: uuid.New(), OwnerID: owner, Amount: 2000, OccurredAt: at(14, 9)}))
	require.NoError(t, store.Append(ctx, &domain.Wager{ID: uuid.New(), OwnerID: other, Amount: 9000, OccurredAt: at(15, 10)}))

	t.Run("returns only the owner's wagers, timestamp ascending", func(t *testing.T) {
		got, err := store.ListInRange(ctx, owner, at(1, 0), at(31, 0))
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int64(2000), got[0].Amount)
		assert.Equal(t, int64(1000), got[1].Amount)
	})

	t.Run("range is half-open", func(t *testing.T) {
		// from == the wager instant: included; to == the instant: excluded.
		got, err := store.ListInRange(ctx, owner, at(15, 12), at(16, 0))
		require.NoError(t, err)
		assert.Len(t, got, 1)

		got, err = store.ListInRange(ctx, owner, at(15, 0), at(15, 12))
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestMemoryStore_Limits(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	owner := uuid.New()

	t.Run("absent config reads as nil", func(t *testing.T) {
		cfg, err := store.Find(ctx, owner)
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("save then read back", func(t *testing.T) {
		want := domain.LimitConfig{Daily: 100, Weekly: 200, Monthly: 300}
		require.NoError(t, store.Save(ctx, owner, want))
		cfg, err := store.Find(ctx, owner)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, want, *cfg)
	})
}

func TestMemoryStore_Exclusions(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	excls := store.Exclusions()
	owner := uuid.New()

	got, err := excls.Find(ctx, owner)
	require.NoError(t, err)
	assert.Nil(t, got)

	first := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	require.NoError(t, excls.Save(ctx, domain.Exclusion{OwnerID: owner, ExpiresAt: first}))

	// Saving again replaces, not extends.
	second := time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC)
	require.NoError(t, excls.Save(ctx, domain.Exclusion{OwnerID: owner, ExpiresAt: second}))

	got, err = excls.Find(ctx, owner)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.ExpiresAt.Equal(second))
}

func TestMemoryStore_Users(t *testing.T) {
	ctx := context.Background()
	users := NewMemoryStore().Users()

	u := &domain.AuthUser{ID: uuid.New(), Email: "User01@teste.com", PasswordHash: "x", CreatedAt: time.Now()}
	require.NoError(t, users.Create(ctx, u))

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		got, err := users.FindByEmail(ctx, "user01@TESTE.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, u.ID, got.ID)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		err := users.Create(ctx, &domain.AuthUser{ID: uuid.New(), Email: "user01@teste.com"})
		require.Error(t, err)
		var appErr *domain.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "CONFLICT", appErr.Code)
	})
}
