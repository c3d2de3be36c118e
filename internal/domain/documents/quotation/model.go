// Package quotation provides the Quotation document: a priced proposal with
// no lifecycle states, convertible into a sales note.
package quotation

import (
	"strings"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/types"
	"salesdesk/internal/domain/customer"
	"salesdesk/internal/domain/documents"
)

// Quotation is a persisted quotation as the backend returns it.
type Quotation struct {
	ID         int64                  `json:"id"`
	Number     documents.Number       `json:"numero"`
	ClientID   *int64                 `json:"cliente_id,omitempty"`
	Client     *customer.Client       `json:"cliente,omitempty"`
	ClientName string                 `json:"cliente_nombre,omitempty"`
	Lines      []documents.StoredLine `json:"productos"`
	Total      types.WireMoney        `json:"total"`
	Date       string                 `json:"fecha,omitempty"`
}

// ClientRef returns the persisted client id, from cliente_id or the nested client.
func (q *Quotation) ClientRef() int64 {
	if q.ClientID != nil && *q.ClientID != 0 {
		return *q.ClientID
	}
	if q.Client != nil {
		return q.Client.ID
	}
	return 0
}

// DisplayClientName returns the client name for listings.
func (q *Quotation) DisplayClientName() string {
	if q.Client != nil && strings.TrimSpace(q.Client.Name) != "" {
		return q.Client.Name
	}
	return q.ClientName
}

// Binding hydrates the customer side of an edit session.
func (q *Quotation) Binding() (*customer.Binding, error) {
	c := customer.Client{ID: q.ClientRef(), Name: q.ClientName}
	if q.Client != nil {
		c = *q.Client
		c.ID = q.ClientRef()
	}
	if c.ID == 0 {
		return nil, apperror.NewValidation("quotation has no persisted client").
			WithDetail("quotation_id", q.ID)
	}
	return customer.ResolvedBinding(c)
}

// LedgerLines converts the stored rows into ledger lines.
func (q *Quotation) LedgerLines() []documents.Line {
	return documents.LinesFromStored(q.Lines)
}

// Source is the part of the quotation a conversion carries over.
func (q *Quotation) Source() documents.QuotationSource {
	return documents.QuotationSource{
		ID:       q.ID,
		ClientID: q.ClientRef(),
		Lines:    q.LedgerLines(),
	}
}
