package backend

import (
	"context"
	"net/http"

	"salesdesk/internal/domain/reports"
)

const reportsPath = "/reportes"

// Reports adapts the client to reports.Source.
type Reports struct {
	*Client
}

var _ reports.Source = Reports{}

// Daily returns today's summary.
func (g Reports) Daily(ctx context.Context) (*reports.Summary, error) {
	return g.summary(ctx, "report.daily", reportsPath+"/diario", nil)
}

// Monthly returns the current month's summary.
func (g Reports) Monthly(ctx context.Context) (*reports.Summary, error) {
	return g.summary(ctx, "report.monthly", reportsPath+"/mensual", nil)
}

// Range returns the summary between two dates.
func (g Reports) Range(ctx context.Context, r reports.DateRange) (*reports.Summary, error) {
	return g.summary(ctx, "report.range", reportsPath+"/rango", map[string]string{
		"inicio": r.From.Format(reports.DateLayout),
		"fin":    r.To.Format(reports.DateLayout),
	})
}

// Commissions returns the commission report.
func (g Reports) Commissions(ctx context.Context) (*reports.Commissions, error) {
	body, err := g.do(ctx, call{op: "report.commissions", method: http.MethodGet, path: reportsPath + "/comisiones"})
	if err != nil {
		return nil, err
	}
	c := &reports.Commissions{}
	if err := decodeRecord(body, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DailyDetail returns today's sold lines.
func (g Reports) DailyDetail(ctx context.Context) ([]reports.DetailRow, error) {
	return g.detail(ctx, "report.daily_detail", reportsPath+"/detalle/diario")
}

// MonthlyDetail returns the current month's sold lines.
func (g Reports) MonthlyDetail(ctx context.Context) ([]reports.DetailRow, error) {
	return g.detail(ctx, "report.monthly_detail", reportsPath+"/detalle/mensual")
}

func (g Reports) summary(ctx context.Context, op, path string, query map[string]string) (*reports.Summary, error) {
	body, err := g.do(ctx, call{op: op, method: http.MethodGet, path: path, query: query})
	if err != nil {
		return nil, err
	}
	s := &reports.Summary{}
	if err := decodeRecord(body, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (g Reports) detail(ctx context.Context, op, path string) ([]reports.DetailRow, error) {
	body, err := g.do(ctx, call{op: op, method: http.MethodGet, path: path})
	if err != nil {
		return nil, err
	}
	rows := make([]reports.DetailRow, 0)
	if err := decodeList(body, &rows, "detalle"); err != nil {
		return nil, err
	}
	return rows, nil
}
