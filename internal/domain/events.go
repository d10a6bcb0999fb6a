package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType enumerates all domain event types.
type EventType string

const (
	EventAccountCreated       EventType = "rg.account.created"
	EventWagerAccepted        EventType = "rg.wager.accepted"
	EventWagerRejected        EventType = "rg.wager.rejected"
	EventLimitsUpdated        EventType = "rg.limits.updated"
	EventSelfExclusionEnabled EventType = "rg.selfexclusion.enabled"
)

// EventDraft is the envelope published to the domain-event topic.
type EventDraft struct {
	EventID      uuid.UUID       `json:"eventId"`
	EventType    EventType       `json:"eventType"`
	OwnerID      string          `json:"ownerId"`
	PartitionKey string          `json:"partitionKey"`
	Payload      json.RawMessage `json:"payload"`
	OccurredAt   time.Time       `json:"occurredAt"`
}

func newEvent(evtType EventType, ownerID uuid.UUID, payload any) EventDraft {
	body, _ := json.Marshal(payload)
	return EventDraft{
		EventID:      uuid.New(),
		EventType:    evtType,
		OwnerID:      ownerID.String(),
		PartitionKey: ownerID.String(),
		Payload:      body,
		OccurredAt:   time.Now(),
	}
}

// NewWagerAcceptedEvent is emitted after a wager passes admission and is appended.
func NewWagerAcceptedEvent(w *Wager) EventDraft {
	return newEvent(EventWagerAccepted, w.OwnerID, w)
}

// NewWagerRejectedEvent is emitted when admission rejects a wager.
func NewWagerRejectedEvent(ownerID uuid.UUID, amount int64, reason string) EventDraft {
	return newEvent(EventWagerRejected, ownerID, map[string]any{
		"owner_id": ownerID.String(),
		"amount":   amount,
		"reason":   reason,
	})
}

// NewLimitsUpdatedEvent is emitted when an owner saves new caps.
func NewLimitsUpdatedEvent(ownerID uuid.UUID, cfg LimitConfig) EventDraft {
	return newEvent(EventLimitsUpdated, ownerID, cfg)
}

// NewSelfExclusionEvent is emitted when an owner enables a self-exclusion lock.
func NewSelfExclusionEvent(ownerID uuid.UUID, expiresAt time.Time) EventDraft {
	return newEvent(EventSelfExclusionEnabled, ownerID, map[string]any{
		"owner_id":   ownerID.String(),
		"expires_at": expiresAt,
	})
}

// NewAccountCreatedEvent is emitted on registration.
func NewAccountCreatedEvent(ownerID uuid.UUID, email string) EventDraft {
	return newEvent(EventAccountCreated, ownerID, map[string]string{
		"owner_id": ownerID.String(),
		"email":    email,
	})
}
