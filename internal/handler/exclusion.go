package handler

import (
	"net/http"
	"time"

	"github.com/apostaguard/platform/internal/auth"
	"github.com/apostaguard/platform/internal/service"
)

// ExclusionHandler handles the self-exclusion endpoint.
type ExclusionHandler struct {
	betting *service.BettingService
}

// NewExclusionHandler creates a new ExclusionHandler.
func NewExclusionHandler(betting *service.BettingService) *ExclusionHandler {
	return &ExclusionHandler{betting: betting}
}

type selfExcludeRequest struct {
	Days looseNumber `json:"days"`
}

// SelfExclude handles POST /self-exclusion. Non-numeric or missing days
// coerce to zero, which the service maps to the 7-day default.
func (h *ExclusionHandler) SelfExclude(w http.ResponseWriter, r *http.Request) {
	var req selfExcludeRequest
	_ = DecodeJSON(r, &req) // an empty or malformed body means default days

	expiresAt, err := h.betting.SelfExclude(r.Context(), auth.OwnerIDFromContext(r.Context()), req.Days.value)
	if err != nil {
		RespondError(w, err)
		return
	}

	RespondJSON(w, http.StatusOK, map[string]interface{}{
		"ok":       true,
		"untilISO": expiresAt.UTC().Format(time.RFC3339),
	})
}
