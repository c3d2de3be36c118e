package documents

import (
	"strings"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/types"
	"salesdesk/internal/domain/catalog"
	"salesdesk/internal/domain/customer"
)

// QuotationSource is what a conversion needs from a persisted quotation.
type QuotationSource struct {
	ID       int64
	ClientID int64
	Lines    []Line
}

// ComposeQuotation builds the quotation payload. Walk-in customers are not
// accepted: a quotation is always addressed to an identified client.
func ComposeQuotation(b *customer.Binding, l *Ledger) (*QuotationPayload, error) {
	if err := checkComposable(b, l); err != nil {
		return nil, err
	}
	if b.Mode() == customer.ModeWalkIn {
		return nil, apperror.NewValidation("a quotation cannot be issued to the final consumer").
			WithDetail("field", "client")
	}

	p := &QuotationPayload{}
	p.ClientID, p.Client = clientShape(b)

	lines := l.Lines()
	p.Lines = make([]QuotationLine, 0, len(lines))
	for _, line := range lines {
		p.Lines = append(p.Lines, QuotationLine{
			ProductID: line.ProductID,
			Name:      line.Description,
			ListPrice: types.NewWireMoney(line.UnitPrice),
			Quantity:  line.Quantity,
			Subtotal:  types.NewWireMoney(line.Subtotal),
		})
	}
	p.Total = types.NewWireMoney(l.Total())
	return p, nil
}

// ComposeSalesNote builds the sales-note payload. Unit prices are taken from
// the ledger as they stand, so manual overrides are sent verbatim.
func ComposeSalesNote(b *customer.Binding, l *Ledger, method catalog.PaymentMethod, note string) (*SalesNotePayload, error) {
	if !method.Valid() {
		return nil, apperror.NewUnknownPaymentMethod(string(method))
	}
	if err := checkComposable(b, l); err != nil {
		return nil, err
	}

	p := salesNoteBody(l.Lines(), method, note)
	p.ClientID, p.Client = clientShape(b)
	return p, nil
}

// ComposeConversion builds the payload turning a quotation into a sales note.
// The client travels by reference; the payment method has to be chosen since
// a quotation does not imply one.
func ComposeConversion(q QuotationSource, method catalog.PaymentMethod, note string) (*ConversionPayload, error) {
	if method == "" {
		return nil, apperror.NewValidation("a payment method is required to convert a quotation").
			WithDetail("field", "paymentMethod")
	}
	if !method.Valid() {
		return nil, apperror.NewUnknownPaymentMethod(string(method))
	}
	if q.ID == 0 {
		return nil, apperror.NewValidation("quotation id is required")
	}
	if q.ClientID == 0 {
		return nil, apperror.NewValidation("quotation has no persisted client").
			WithDetail("quotation_id", q.ID)
	}
	if len(q.Lines) == 0 {
		return nil, emptyLedger()
	}

	body := salesNoteBody(q.Lines, method, note)
	clientID := q.ClientID
	body.ClientID = &clientID

	return &ConversionPayload{
		QuotationID:      q.ID,
		SalesNotePayload: *body,
	}, nil
}

func checkComposable(b *customer.Binding, l *Ledger) error {
	if l.IsEmpty() {
		return emptyLedger()
	}
	return b.Validate()
}

func emptyLedger() error {
	return apperror.NewValidation("document must contain at least one line").
		WithDetail("field", "lines")
}

func salesNoteBody(lines []Line, method catalog.PaymentMethod, note string) *SalesNotePayload {
	p := &SalesNotePayload{
		Lines:         make([]SalesNoteLine, 0, len(lines)),
		PaymentMethod: string(method),
		PriceTier:     string(method),
		Note:          strings.TrimSpace(note),
	}
	total := types.Zero()
	for _, line := range lines {
		p.Lines = append(p.Lines, SalesNoteLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: types.NewWireMoney(line.UnitPrice),
			Subtotal:  types.NewWireMoney(line.Subtotal),
		})
		total = total.Add(line.Subtotal)
	}
	p.Total = types.NewWireMoney(total)
	return p
}

// clientShape picks the payload's client form from the binding mode.
func clientShape(b *customer.Binding) (*int64, *ClientPayload) {
	switch b.Mode() {
	case customer.ModeWalkIn:
		walkIn := customer.WalkIn()
		empty := ""
		return nil, &ClientPayload{
			Identification: walkIn.Identification,
			Name:           walkIn.Name,
			Phone:          &empty,
			Email:          &empty,
		}
	case customer.ModeResolved:
		id := b.Client().ID
		return &id, nil
	case customer.ModeNew:
		d := b.Draft()
		return nil, &ClientPayload{
			Identification: d.Identification,
			Name:           d.Name,
			Phone:          d.Phone,
			Email:          d.Email,
			Address:        d.Address,
		}
	default:
		return nil, nil
	}
}
