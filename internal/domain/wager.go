package domain

import (
	"time"

	"github.com/google/uuid"
)

// Wager is an append-only self-reported bet record. Immutable once stored;
// ordering within an owner is by OccurredAt, which the caller may backdate.
type Wager struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	Amount     int64     `json:"amount"` // cents
	Note       string    `json:"note"`
	OccurredAt time.Time `json:"occurred_at"`
}
