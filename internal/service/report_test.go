package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/apostaguard/platform/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedWager(t *testing.T, svc *BettingService, owner uuid.UUID, amount int64, note, ts string) {
	t.Helper()
	_, err := svc.PlaceBet(context.Background(), owner, amount, note, ts)
	require.NoError(t, err)
}

func TestMonthlyReport_RollsUpPerDay(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	owner := uuid.New()

	seedWager(t, svc, owner, 1_000, "", "2024-01-10T09:00:00Z")
	seedWager(t, svc, owner, 2_000, "", "2024-01-10T21:00:00Z")
	seedWager(t, svc, owner, 500, "", "2024-01-20T12:00:00Z")
	// Different month, excluded from the January report.
	seedWager(t, svc, owner, 4_000, "", "2024-02-01T00:00:00Z")

	report, err := svc.MonthlyReport(ctx, owner, 2024, 1)
	require.NoError(t, err)

	assert.Equal(t, 2024, report.Year)
	assert.Equal(t, 1, report.Month)
	require.Len(t, report.Days, 2)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), report.Days[0].Date)
	assert.Equal(t, int64(3_000), report.Days[0].Total)
	assert.Equal(t, int64(500), report.Days[1].Total)
	assert.Equal(t, int64(3_500), report.TotalMonth)
}

func TestMonthlyReport_ExcludesZeroTotalDays(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	owner := uuid.New()

	// A zero-amount record cannot enter through PlaceBet, but the report
	// must still skip it if one exists.
	require.NoError(t, store.Append(ctx, &domain.Wager{
		ID: uuid.New(), OwnerID: owner, Amount: 0,
		OccurredAt: time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC),
	}))

	report, err := svc.MonthlyReport(ctx, owner, 2024, 1)
	require.NoError(t, err)
	assert.Empty(t, report.Days)
	assert.Equal(t, int64(0), report.TotalMonth)
}

func TestMonthlyReport_Idempotent(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	owner := uuid.New()

	seedWager(t, svc, owner, 1_500, "", "2024-01-10T09:00:00Z")

	first, err := svc.MonthlyReport(ctx, owner, 2024, 1)
	require.NoError(t, err)
	second, err := svc.MonthlyReport(ctx, owner, 2024, 1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMonthlyReport_MonthOverflowRollsIntoNextYear(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	owner := uuid.New()

	seedWager(t, svc, owner, 1_000, "", "2025-01-10T09:00:00Z")

	report, err := svc.MonthlyReport(ctx, owner, 2024, 13)
	require.NoError(t, err)
	assert.Equal(t, 2025, report.Year)
	assert.Equal(t, 1, report.Month)
	assert.Equal(t, int64(1_000), report.TotalMonth)
}

func TestMonthlyReport_DefaultsToCurrentMonth(t *testing.T) {
	svc, _ := newTestService()
	report, err := svc.MonthlyReport(context.Background(), uuid.New(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2024, report.Year)
	assert.Equal(t, 1, report.Month)
}

func TestExportCSV_HeaderAndFormatting(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	owner := uuid.New()

	seedWager(t, svc, owner, 3_000, `aposta "teste"`, "2024-01-15T10:00:00Z")

	csv, err := svc.ExportCSV(ctx, owner, 2024, 1)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "data,descricao,valor,limiteDiarioRestante,limiteSemanalRestante", lines[0])
	// Internal quotes doubled, decimal comma, remaining after this wager:
	// daily 50-30=20, weekly 200-30=170.
	assert.Equal(t, `2024-01-15 10:00:00,"aposta ""teste""",30,00,20,00,170,00`, lines[1])
}

func TestExportCSV_DayResetsWeekAccumulates(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	owner := uuid.New()

	// Same ISO week (Mon 15th and Tue 16th), different days.
	seedWager(t, svc, owner, 3_000, "", "2024-01-15T10:00:00Z")
	seedWager(t, svc, owner, 2_000, "", "2024-01-16T20:30:00Z")

	csv, err := svc.ExportCSV(ctx, owner, 2024, 1)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `2024-01-15 10:00:00,"",30,00,20,00,170,00`, lines[1])
	// Day accumulator reset (50-20=30); week keeps accumulating (200-50=150).
	assert.Equal(t, `2024-01-16 20:30:00,"",20,00,30,00,150,00`, lines[2])
}

func TestExportCSV_WeekChangeResetsWeekAccumulator(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	owner := uuid.New()

	// Sunday 21st closes one ISO week; Monday 22nd opens the next.
	seedWager(t, svc, owner, 3_000, "", "2024-01-21T18:00:00Z")
	seedWager(t, svc, owner, 2_000, "", "2024-01-22T09:00:00Z")

	csv, err := svc.ExportCSV(ctx, owner, 2024, 1)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `2024-01-21 18:00:00,"",30,00,20,00,170,00`, lines[1])
	// New week: the accumulator starts from zero, not from history.
	assert.Equal(t, `2024-01-22 09:00:00,"",20,00,30,00,180,00`, lines[2])
}

func TestExportCSV_RowsAreChronological(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	owner := uuid.New()

	// Appended out of order; export must sort by occurred_at.
	seedWager(t, svc, owner, 2_000, "", "2024-01-16T09:00:00Z")
	seedWager(t, svc, owner, 3_000, "", "2024-01-15T10:00:00Z")

	csv, err := svc.ExportCSV(ctx, owner, 2024, 1)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "2024-01-15"))
	assert.True(t, strings.HasPrefix(lines[2], "2024-01-16"))
}

func TestExportCSV_EmptyMonthIsHeaderOnly(t *testing.T) {
	svc, _ := newTestService()
	csv, err := svc.ExportCSV(context.Background(), uuid.New(), 2024, 3)
	require.NoError(t, err)
	assert.Equal(t, "data,descricao,valor,limiteDiarioRestante,limiteSemanalRestante\n", csv)
}
