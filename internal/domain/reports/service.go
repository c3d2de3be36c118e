package reports

import (
	"context"
	"fmt"

	"salesdesk/internal/core/types"
)

// Service fetches report read models and attaches display strings.
type Service struct {
	source Source
	format *Formatter
}

// NewService creates a new reports service.
func NewService(source Source, format *Formatter) *Service {
	return &Service{source: source, format: format}
}

// Daily returns today's sales summary.
func (s *Service) Daily(ctx context.Context) (*SummaryView, error) {
	sum, err := s.source.Daily(ctx)
	if err != nil {
		return nil, fmt.Errorf("get daily report: %w", err)
	}
	return s.summaryView(sum), nil
}

// Monthly returns the current month's sales summary.
func (s *Service) Monthly(ctx context.Context) (*SummaryView, error) {
	sum, err := s.source.Monthly(ctx)
	if err != nil {
		return nil, fmt.Errorf("get monthly report: %w", err)
	}
	return s.summaryView(sum), nil
}

// Range returns the sales summary between two dates.
func (s *Service) Range(ctx context.Context, r DateRange) (*SummaryView, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	sum, err := s.source.Range(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("get range report: %w", err)
	}
	return s.summaryView(sum), nil
}

// Commissions returns the commission report.
func (s *Service) Commissions(ctx context.Context) (*CommissionsView, error) {
	c, err := s.source.Commissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("get commissions report: %w", err)
	}
	if c == nil {
		c = &Commissions{}
	}
	return &CommissionsView{
		Commissions: *c,
		RateText:    s.format.Money(c.Rate.Money()),
		TotalText:   s.format.Money(c.Total.Money()),
	}, nil
}

// DailyDetail returns today's sold lines.
func (s *Service) DailyDetail(ctx context.Context) ([]DetailRowView, error) {
	rows, err := s.source.DailyDetail(ctx)
	if err != nil {
		return nil, fmt.Errorf("get daily detail: %w", err)
	}
	return s.detailViews(rows), nil
}

// MonthlyDetail returns the current month's sold lines.
func (s *Service) MonthlyDetail(ctx context.Context) ([]DetailRowView, error) {
	rows, err := s.source.MonthlyDetail(ctx)
	if err != nil {
		return nil, fmt.Errorf("get monthly detail: %w", err)
	}
	return s.detailViews(rows), nil
}

func (s *Service) summaryView(sum *Summary) *SummaryView {
	if sum == nil {
		sum = &Summary{}
	}
	return &SummaryView{
		Summary:       *sum,
		TotalSoldText: s.format.Money(sum.TotalSold.Money()),
	}
}

func (s *Service) detailViews(rows []DetailRow) []DetailRowView {
	out := make([]DetailRowView, 0, len(rows))
	for _, r := range rows {
		out = append(out, DetailRowView{
			DetailRow:    r,
			LineCostText: s.format.Money(types.LineAmount(int(r.Quantity), r.Cost.Money())),
			SaleText:     s.format.Money(r.Sale.Money()),
			ProfitText:   s.format.Money(r.Profit.Money()),
		})
	}
	return out
}
