package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCentsComma(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{3000, "30,00"},
		{3050, "30,50"},
		{5, "0,05"},
		{0, "0,00"},
		{123456, "1234,56"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCentsComma(tt.cents))
	}
}

func TestUnitsToCents_Rounds(t *testing.T) {
	assert.Equal(t, int64(3000), UnitsToCents(30))
	assert.Equal(t, int64(2550), UnitsToCents(25.5))
	assert.Equal(t, int64(1), UnitsToCents(0.005))
	assert.Equal(t, int64(1999), UnitsToCents(19.99))
}

func TestValidateLimitConfig(t *testing.T) {
	assert.NoError(t, ValidateLimitConfig(LimitConfig{Daily: 0, Weekly: 0, Monthly: 0}))
	assert.NoError(t, ValidateLimitConfig(DefaultLimitConfig()))
	assert.Error(t, ValidateLimitConfig(LimitConfig{Daily: -1, Weekly: 100, Monthly: 100}))
}

func TestExclusionActive(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	t.Run("nil lock is inactive", func(t *testing.T) {
		var e *Exclusion
		assert.False(t, e.Active(now))
	})

	t.Run("future expiry is active", func(t *testing.T) {
		e := &Exclusion{ExpiresAt: now.Add(time.Hour)}
		assert.True(t, e.Active(now))
	})

	t.Run("expiry instant itself is inactive", func(t *testing.T) {
		e := &Exclusion{ExpiresAt: now}
		assert.False(t, e.Active(now))
	})
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("user01@teste.com"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
}
