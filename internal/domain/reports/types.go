// Package reports serves the sales read models computed by the backend and
// formats their money values for display. No totals are computed here.
package reports

import (
	"time"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/types"
	"salesdesk/internal/domain/documents"
)

// DateLayout is the date format of range bounds on the wire.
const DateLayout = "2006-01-02"

// Summary is a sales summary for a period.
type Summary struct {
	TotalSold types.WireMoney `json:"total_vendido"`
	Generated types.Count     `json:"notas_generadas"`
	Voided    types.Count     `json:"notas_anuladas"`
	Active    types.Count     `json:"notas_activas"`
}

// Commissions is the commission read model.
type Commissions struct {
	Generated types.Count     `json:"notas_generadas"`
	Rate      types.WireMoney `json:"tarifa_aplicada"`
	Total     types.WireMoney `json:"total_comision"`
}

// DetailRow is one sold line of a detail report. Cost is the unit cost.
type DetailRow struct {
	Number   documents.Number `json:"numero"`
	Product  string           `json:"producto"`
	Quantity types.Count      `json:"cantidad"`
	Cost     types.WireMoney  `json:"costo"`
	Sale     types.WireMoney  `json:"venta"`
	Profit   types.WireMoney  `json:"ganancia"`
}

// DateRange bounds a range report, both ends inclusive.
type DateRange struct {
	From time.Time
	To   time.Time
}

// ParseDateRange parses two YYYY-MM-DD dates.
func ParseDateRange(from, to string) (DateRange, error) {
	f, err := time.Parse(DateLayout, from)
	if err != nil {
		return DateRange{}, apperror.NewValidation("invalid start date, expected YYYY-MM-DD").
			WithDetail("field", "from").
			WithDetail("value", from)
	}
	t, err := time.Parse(DateLayout, to)
	if err != nil {
		return DateRange{}, apperror.NewValidation("invalid end date, expected YYYY-MM-DD").
			WithDetail("field", "to").
			WithDetail("value", to)
	}
	r := DateRange{From: f, To: t}
	return r, r.Validate()
}

// Validate checks that both bounds are set and ordered.
func (r DateRange) Validate() error {
	if r.From.IsZero() || r.To.IsZero() {
		return apperror.NewValidation("from and to are required")
	}
	if r.From.After(r.To) {
		return apperror.NewValidation("from must not be after to").
			WithDetail("from", r.From.Format(DateLayout)).
			WithDetail("to", r.To.Format(DateLayout))
	}
	return nil
}

// SummaryView is a summary with display strings.
type SummaryView struct {
	Summary
	TotalSoldText string `json:"total_vendido_texto"`
}

// CommissionsView is the commission read model with display strings.
type CommissionsView struct {
	Commissions
	RateText  string `json:"tarifa_aplicada_texto"`
	TotalText string `json:"total_comision_texto"`
}

// DetailRowView is a detail row with display strings.
// LineCostText shows unit cost × quantity, as the detail table prints it.
type DetailRowView struct {
	DetailRow
	LineCostText string `json:"costo_texto"`
	SaleText     string `json:"venta_texto"`
	ProfitText   string `json:"ganancia_texto"`
}
