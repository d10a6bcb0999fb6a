package service

import (
	"context"
	"strings"
	"time"

	"github.com/apostaguard/platform/internal/calendar"
	"github.com/apostaguard/platform/internal/domain"
	"github.com/apostaguard/platform/internal/policy"
	"github.com/google/uuid"
)

// csvHeader is fixed; downstream consumers parse it byte-for-byte.
const csvHeader = "data,descricao,valor,limiteDiarioRestante,limiteSemanalRestante"

// DayTotal is one calendar day's wager total inside a monthly report.
type DayTotal struct {
	Date  time.Time
	Total int64 // cents
}

// MonthlyReport is the per-day rollup over one calendar month.
type MonthlyReport struct {
	Year       int
	Month      int
	Days       []DayTotal // only days with a positive total
	TotalMonth int64      // cents
}

// MonthlyReport walks every calendar day of the month, sums that day's
// wagers, and includes the day only when the total is positive. Zeroed
// year/month default to the current calendar date.
func (s *BettingService) MonthlyReport(ctx context.Context, ownerID uuid.UUID, year, month int) (*MonthlyReport, error) {
	year, month = s.resolveMonth(year, month)
	window := calendar.MonthOf(year, time.Month(month), s.loc)

	report := &MonthlyReport{
		Year:  window.Start.Year(),
		Month: int(window.Start.Month()),
		Days:  []DayTotal{},
	}
	for d := window.Start; d.Before(window.End); d = d.AddDate(0, 0, 1) {
		total, err := s.sumInWindow(ctx, ownerID, calendar.Day(d))
		if err != nil {
			return nil, err
		}
		if total > 0 {
			report.Days = append(report.Days, DayTotal{Date: d, Total: total})
			report.TotalMonth += total
		}
	}
	return report, nil
}

// ExportCSV renders the owner's wagers for the month in timestamp order with
// running remaining-daily and remaining-weekly columns. Both accumulators
// start from zero whenever the row's window differs from the previous row's;
// the weekly accumulator is NOT reseeded from historical weeks that started
// before the month.
func (s *BettingService) ExportCSV(ctx context.Context, ownerID uuid.UUID, year, month int) (string, error) {
	year, month = s.resolveMonth(year, month)
	window := calendar.MonthOf(year, time.Month(month), s.loc)

	wagers, err := s.wagers.ListInRange(ctx, ownerID, window.Start, window.End)
	if err != nil {
		return "", domain.ErrInternal("list wagers", err)
	}

	cfg, err := s.effectiveLimits(ctx, ownerID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteByte('\n')

	var dayStart, weekStart time.Time
	var daySum, weekSum int64
	for _, w := range wagers {
		ts := w.OccurredAt.In(s.loc)

		if ds := calendar.Day(ts).Start; !ds.Equal(dayStart) {
			dayStart = ds
			daySum = 0
		}
		if ws := calendar.ISOWeek(ts).Start; !ws.Equal(weekStart) {
			weekStart = ws
			weekSum = 0
		}

		daySum += w.Amount
		weekSum += w.Amount

		b.WriteString(ts.Format("2006-01-02 15:04:05"))
		b.WriteByte(',')
		b.WriteString(quoteCSV(w.Note))
		b.WriteByte(',')
		b.WriteString(domain.FormatCentsComma(w.Amount))
		b.WriteByte(',')
		b.WriteString(domain.FormatCentsComma(policy.Remaining(cfg.Daily, daySum)))
		b.WriteByte(',')
		b.WriteString(domain.FormatCentsComma(policy.Remaining(cfg.Weekly, weekSum)))
		b.WriteByte('\n')
	}

	return b.String(), nil
}

// quoteCSV wraps a note in double quotes, doubling internal quote characters.
func quoteCSV(note string) string {
	return `"` + strings.ReplaceAll(note, `"`, `""`) + `"`
}

// resolveMonth fills absent (zero) year/month with the current calendar
// date. Out-of-range months are kept and roll over arithmetically when the
// window is built, so month 13 of 2024 is January 2025.
func (s *BettingService) resolveMonth(year, month int) (int, int) {
	now := s.now().In(s.loc)
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	return year, month
}
