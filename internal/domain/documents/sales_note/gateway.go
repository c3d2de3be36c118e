package sales_note

import (
	"context"

	"salesdesk/internal/domain/documents"
)

// Gateway is the sales-note side of the sales backend.
// Get returns an apperror NOT_FOUND for unknown ids.
type Gateway interface {
	List(ctx context.Context) ([]*SalesNote, error)
	Get(ctx context.Context, noteID int64) (*SalesNote, error)
	Create(ctx context.Context, p *documents.SalesNotePayload) (*SalesNote, error)
	CreateFromQuotation(ctx context.Context, p *documents.ConversionPayload) (*SalesNote, error)
	Update(ctx context.Context, noteID int64, p *documents.SalesNotePayload) (*SalesNote, error)
	Void(ctx context.Context, noteID int64, reason string) (*SalesNote, error)
	Delete(ctx context.Context, noteID int64) error
}
