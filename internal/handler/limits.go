package handler

import (
	"net/http"

	"github.com/apostaguard/platform/internal/auth"
	"github.com/apostaguard/platform/internal/domain"
	"github.com/apostaguard/platform/internal/service"
)

// LimitsHandler handles the limit config endpoints.
type LimitsHandler struct {
	betting *service.BettingService
}

// NewLimitsHandler creates a new LimitsHandler.
func NewLimitsHandler(betting *service.BettingService) *LimitsHandler {
	return &LimitsHandler{betting: betting}
}

type limitsResponse struct {
	Daily   float64 `json:"daily"`
	Weekly  float64 `json:"weekly"`
	Monthly float64 `json:"monthly"`
}

func toLimitsResponse(cfg domain.LimitConfig) limitsResponse {
	return limitsResponse{
		Daily:   domain.CentsToUnits(cfg.Daily),
		Weekly:  domain.CentsToUnits(cfg.Weekly),
		Monthly: domain.CentsToUnits(cfg.Monthly),
	}
}

// GetLimits handles GET /limits.
func (h *LimitsHandler) GetLimits(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.betting.GetLimits(r.Context(), auth.OwnerIDFromContext(r.Context()))
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, toLimitsResponse(cfg))
}

type updateLimitsRequest struct {
	Daily   looseNumber `json:"daily"`
	Weekly  looseNumber `json:"weekly"`
	Monthly looseNumber `json:"monthly"`
}

// UpdateLimits handles PUT /limits. All three caps must be present and
// numeric; a rejected update leaves the prior config in place.
func (h *LimitsHandler) UpdateLimits(w http.ResponseWriter, r *http.Request) {
	var req updateLimitsRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}
	if !req.Daily.ok || !req.Weekly.ok || !req.Monthly.ok {
		RespondError(w, domain.ErrValidation("limit values must be numeric"))
		return
	}

	saved, err := h.betting.SetLimits(r.Context(), auth.OwnerIDFromContext(r.Context()), domain.LimitConfig{
		Daily:   domain.UnitsToCents(req.Daily.value),
		Weekly:  domain.UnitsToCents(req.Weekly.value),
		Monthly: domain.UnitsToCents(req.Monthly.value),
	})
	if err != nil {
		RespondError(w, err)
		return
	}

	RespondJSON(w, http.StatusOK, map[string]interface{}{
		"ok":    true,
		"saved": toLimitsResponse(saved),
	})
}
