package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"salesdesk/internal/domain/documents"
	"salesdesk/internal/domain/documents/quotation"
	"salesdesk/internal/domain/documents/sales_note"
)

const quotationsPath = "/cotizaciones"

func quotationPath(quotationID int64) string {
	return quotationsPath + "/" + strconv.FormatInt(quotationID, 10)
}

// Quotations adapts the client to quotation.Gateway.
type Quotations struct {
	*Client
}

var _ quotation.Gateway = Quotations{}

// List returns every quotation.
func (g Quotations) List(ctx context.Context) ([]*quotation.Quotation, error) {
	body, err := g.do(ctx, call{op: "quotation.list", method: http.MethodGet, path: quotationsPath})
	if err != nil {
		return nil, err
	}
	list := make([]*quotation.Quotation, 0)
	if err := decodeList(body, &list, "cotizaciones"); err != nil {
		return nil, err
	}
	return list, nil
}

// Get returns one quotation.
func (g Quotations) Get(ctx context.Context, quotationID int64) (*quotation.Quotation, error) {
	q := &quotation.Quotation{}
	if err := g.get(ctx, "quotation", quotationPath(quotationID), q, "cotizacion"); err != nil {
		return nil, err
	}
	return q, nil
}

// GetByNumber returns the quotation with a document number.
func (g Quotations) GetByNumber(ctx context.Context, number string) (*quotation.Quotation, error) {
	q := &quotation.Quotation{}
	if err := g.get(ctx, "quotation", quotationsPath+"/numero/"+url.PathEscape(number), q, "cotizacion"); err != nil {
		return nil, err
	}
	return q, nil
}

// Create posts a new quotation.
func (g Quotations) Create(ctx context.Context, p *documents.QuotationPayload) (*quotation.Quotation, error) {
	q := &quotation.Quotation{}
	if err := g.send(ctx, "quotation.create", http.MethodPost, quotationsPath, p, q, "cotizacion"); err != nil {
		return nil, err
	}
	return q, nil
}

// Update replaces a quotation.
func (g Quotations) Update(ctx context.Context, quotationID int64, p *documents.QuotationPayload) (*quotation.Quotation, error) {
	q := &quotation.Quotation{}
	if err := g.send(ctx, "quotation.update", http.MethodPut, quotationPath(quotationID), p, q, "cotizacion"); err != nil {
		return nil, err
	}
	if q.ID == 0 {
		q.ID = quotationID
	}
	return q, nil
}

// Delete removes a quotation.
func (g Quotations) Delete(ctx context.Context, quotationID int64) error {
	return g.send(ctx, "quotation.delete", http.MethodDelete, quotationPath(quotationID), nil, nil)
}

// Convert asks the backend to turn a quotation into a sales note.
func (g Quotations) Convert(ctx context.Context, quotationID int64) (*sales_note.SalesNote, error) {
	n := &sales_note.SalesNote{}
	if err := g.send(ctx, "quotation.convert", http.MethodPost, quotationPath(quotationID)+"/convertir", nil, n, "nota"); err != nil {
		return nil, err
	}
	return n, nil
}
