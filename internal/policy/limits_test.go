package policy

import (
	"testing"

	"github.com/apostaguard/platform/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateAdmission_AllowsWithinDailyCap(t *testing.T) {
	cfg := domain.DefaultLimitConfig()
	result := EvaluateAdmission(cfg, 0, 3_000)
	assert.True(t, result.Allowed)
}

func TestEvaluateAdmission_AllowsExactlyAtCap(t *testing.T) {
	cfg := domain.DefaultLimitConfig()
	// 20 + 30 = exactly 50; only exceeding blocks.
	result := EvaluateAdmission(cfg, 2_000, 3_000)
	assert.True(t, result.Allowed)
}

func TestEvaluateAdmission_BlocksOverDailyCap(t *testing.T) {
	cfg := domain.DefaultLimitConfig()
	// Already wagered 30, trying 25 more (total 55 > 50).
	result := EvaluateAdmission(cfg, 3_000, 2_500)
	assert.False(t, result.Allowed)
	assert.Equal(t, "daily", result.BreachedCap)
	assert.Equal(t, int64(5_000), result.CapValue)
	assert.Equal(t, int64(5_500), result.ProjectedSum)
}

func TestEvaluateAdmission_WeeklyCapDoesNotBlock(t *testing.T) {
	// Weekly cap would be breached but admission only enforces daily.
	cfg := domain.LimitConfig{Daily: 100_000, Weekly: 1_000, Monthly: 1_000}
	result := EvaluateAdmission(cfg, 0, 50_000)
	assert.True(t, result.Allowed)
}

func TestRemaining(t *testing.T) {
	assert.Equal(t, int64(2_000), Remaining(5_000, 3_000))
	assert.Equal(t, int64(0), Remaining(5_000, 5_000))
	assert.Equal(t, int64(0), Remaining(5_000, 9_000))
}
