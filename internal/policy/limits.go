// Package policy holds the pure admission arithmetic for wager limits.
// Functions here are deterministic and side-effect free; the betting service
// supplies the window sums.
package policy

import "github.com/apostaguard/platform/internal/domain"

// Evaluation holds the result of a cap check.
type Evaluation struct {
	Allowed      bool   `json:"allowed"`
	BreachedCap  string `json:"breached_cap,omitempty"`
	CapValue     int64  `json:"cap_value,omitempty"`
	ProjectedSum int64  `json:"projected_sum,omitempty"`
}

// EvaluateAdmission checks an incoming wager amount against the daily cap.
// Weekly and monthly caps are tracked and reported to the owner but do not
// gate writes; only the daily cap blocks.
func EvaluateAdmission(cfg domain.LimitConfig, daySum, amount int64) Evaluation {
	if daySum+amount > cfg.Daily {
		return Evaluation{
			Allowed:      false,
			BreachedCap:  "daily",
			CapValue:     cfg.Daily,
			ProjectedSum: daySum + amount,
		}
	}
	return Evaluation{Allowed: true}
}

// Remaining returns how much of a cap is left after the given window sum,
// floored at zero.
func Remaining(cap, windowSum int64) int64 {
	if r := cap - windowSum; r > 0 {
		return r
	}
	return 0
}
