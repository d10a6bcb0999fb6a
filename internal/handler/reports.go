package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/apostaguard/platform/internal/auth"
	"github.com/apostaguard/platform/internal/domain"
	"github.com/apostaguard/platform/internal/service"
)

// ReportsHandler handles the monthly report and CSV export endpoints.
type ReportsHandler struct {
	betting *service.BettingService
}

// NewReportsHandler creates a new ReportsHandler.
func NewReportsHandler(betting *service.BettingService) *ReportsHandler {
	return &ReportsHandler{betting: betting}
}

type dayTotalResponse struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

type monthlyReportResponse struct {
	Year       int                `json:"year"`
	Month      int                `json:"month"`
	Days       []dayTotalResponse `json:"days"`
	TotalMonth float64            `json:"totalMonth"`
}

// MonthlyReport handles GET /reports/month?year=&month=.
func (h *ReportsHandler) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	year, month := parseYearMonth(r)

	report, err := h.betting.MonthlyReport(r.Context(), auth.OwnerIDFromContext(r.Context()), year, month)
	if err != nil {
		RespondError(w, err)
		return
	}

	resp := monthlyReportResponse{
		Year:       report.Year,
		Month:      report.Month,
		Days:       make([]dayTotalResponse, 0, len(report.Days)),
		TotalMonth: domain.CentsToUnits(report.TotalMonth),
	}
	for _, d := range report.Days {
		resp.Days = append(resp.Days, dayTotalResponse{
			Date:  d.Date.Format(time.RFC3339),
			Total: domain.CentsToUnits(d.Total),
		})
	}
	RespondJSON(w, http.StatusOK, resp)
}

// ExportCSV handles GET /reports/export.csv?year=&month=.
func (h *ReportsHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	year, month := parseYearMonth(r)

	csv, err := h.betting.ExportCSV(r.Context(), auth.OwnerIDFromContext(r.Context()), year, month)
	if err != nil {
		RespondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(csv))
}

// parseYearMonth reads optional year/month query params; non-numeric or
// absent values come back as zero, which the service resolves to "current".
func parseYearMonth(r *http.Request) (int, int) {
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	return year, month
}
