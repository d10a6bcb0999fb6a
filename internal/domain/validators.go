package domain

import (
	"fmt"
	"regexp"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks if an email address is valid.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidatePositiveAmount checks that an amount is positive (in cents).
func ValidatePositiveAmount(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive, got %d", amount)
	}
	return nil
}

// ValidateLimitConfig checks that no cap is negative.
func ValidateLimitConfig(cfg LimitConfig) error {
	if cfg.Daily < 0 || cfg.Weekly < 0 || cfg.Monthly < 0 {
		return fmt.Errorf("limit values must not be negative")
	}
	return nil
}
