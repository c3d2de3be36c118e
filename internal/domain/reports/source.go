package reports

import (
	"context"
)

// Source is the backend's report endpoint set.
type Source interface {
	Daily(ctx context.Context) (*Summary, error)
	Monthly(ctx context.Context) (*Summary, error)
	Range(ctx context.Context, r DateRange) (*Summary, error)
	Commissions(ctx context.Context) (*Commissions, error)
	DailyDetail(ctx context.Context) ([]DetailRow, error)
	MonthlyDetail(ctx context.Context) ([]DetailRow, error)
}
