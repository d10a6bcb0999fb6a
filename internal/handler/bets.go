package handler

import (
	"net/http"
	"time"

	"github.com/apostaguard/platform/internal/auth"
	"github.com/apostaguard/platform/internal/domain"
	"github.com/apostaguard/platform/internal/service"
)

// BetsHandler handles the wager submission endpoint.
type BetsHandler struct {
	betting *service.BettingService
}

// NewBetsHandler creates a new BetsHandler.
func NewBetsHandler(betting *service.BettingService) *BetsHandler {
	return &BetsHandler{betting: betting}
}

type placeBetRequest struct {
	Amount      looseNumber    `json:"amount"`
	Description string         `json:"description"`
	Timestamp   looseTimestamp `json:"timestamp"`
}

type placeBetResponse struct {
	OK               bool        `json:"ok"`
	Bet              betResponse `json:"bet"`
	RemainingDaily   float64     `json:"remainingDaily"`
	RemainingWeekly  float64     `json:"remainingWeekly"`
	RemainingMonthly float64     `json:"remainingMonthly"`
}

type betResponse struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Timestamp   string  `json:"timestamp"`
}

// PlaceBet handles POST /bets.
func (h *BetsHandler) PlaceBet(w http.ResponseWriter, r *http.Request) {
	ownerID := auth.OwnerIDFromContext(r.Context())

	var req placeBetRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondError(w, domain.ErrInvalidAmount())
		return
	}
	if !req.Amount.ok {
		RespondError(w, domain.ErrInvalidAmount())
		return
	}

	result, err := h.betting.PlaceBet(r.Context(), ownerID,
		domain.UnitsToCents(req.Amount.value), req.Description, req.Timestamp.value)
	if err != nil {
		RespondError(w, err)
		return
	}

	RespondJSON(w, http.StatusCreated, placeBetResponse{
		OK: true,
		Bet: betResponse{
			Amount:      domain.CentsToUnits(result.Wager.Amount),
			Description: result.Wager.Note,
			Timestamp:   result.Wager.OccurredAt.Format(time.RFC3339),
		},
		RemainingDaily:   domain.CentsToUnits(result.RemainingDaily),
		RemainingWeekly:  domain.CentsToUnits(result.RemainingWeekly),
		RemainingMonthly: domain.CentsToUnits(result.RemainingMonthly),
	})
}
