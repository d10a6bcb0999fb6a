package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuthUser is a registered account. The account ID doubles as the owner ID
// for all wagering state.
type AuthUser struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
