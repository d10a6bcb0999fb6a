package domain

// LimitConfig holds an owner's spending caps per window granularity.
type LimitConfig struct {
	Daily   int64 `json:"daily"`   // cents
	Weekly  int64 `json:"weekly"`  // cents
	Monthly int64 `json:"monthly"` // cents
}

// DefaultLimitConfig returns the implicit caps used for owners who never
// saved an explicit config (R$50 daily, R$200 weekly, R$500 monthly).
// It is applied on every read without being persisted.
func DefaultLimitConfig() LimitConfig {
	return LimitConfig{
		Daily:   5_000,
		Weekly:  20_000,
		Monthly: 50_000,
	}
}
