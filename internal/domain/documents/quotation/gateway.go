package quotation

import (
	"context"

	"salesdesk/internal/domain/documents"
	"salesdesk/internal/domain/documents/sales_note"
)

// Gateway is the quotation side of the sales backend.
// Get and GetByNumber return an apperror NOT_FOUND for unknown quotations.
type Gateway interface {
	List(ctx context.Context) ([]*Quotation, error)
	Get(ctx context.Context, quotationID int64) (*Quotation, error)
	GetByNumber(ctx context.Context, number string) (*Quotation, error)
	Create(ctx context.Context, p *documents.QuotationPayload) (*Quotation, error)
	Update(ctx context.Context, quotationID int64, p *documents.QuotationPayload) (*Quotation, error)
	Delete(ctx context.Context, quotationID int64) error

	// Convert asks the backend to build the sales note itself.
	Convert(ctx context.Context, quotationID int64) (*sales_note.SalesNote, error)
}
