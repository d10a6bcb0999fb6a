package domain

import (
	"time"

	"github.com/google/uuid"
)

// Exclusion is a time-boxed self-exclusion lock. Saving a new lock replaces
// the previous one rather than extending it.
type Exclusion struct {
	OwnerID   uuid.UUID `json:"owner_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Active reports whether the lock still blocks wagers at the given instant.
func (e *Exclusion) Active(now time.Time) bool {
	return e != nil && now.Before(e.ExpiresAt)
}
