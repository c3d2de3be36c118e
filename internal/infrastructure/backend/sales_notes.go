package backend

import (
	"context"
	"net/http"
	"strconv"

	"salesdesk/internal/domain/documents"
	"salesdesk/internal/domain/documents/sales_note"
)

const salesNotesPath = "/notas-venta"

func salesNotePath(noteID int64) string {
	return salesNotesPath + "/" + strconv.FormatInt(noteID, 10)
}

// SalesNotes adapts the client to sales_note.Gateway.
type SalesNotes struct {
	*Client
}

var _ sales_note.Gateway = SalesNotes{}

// List returns every sales note.
func (g SalesNotes) List(ctx context.Context) ([]*sales_note.SalesNote, error) {
	body, err := g.do(ctx, call{op: "sales_note.list", method: http.MethodGet, path: salesNotesPath})
	if err != nil {
		return nil, err
	}
	notes := make([]*sales_note.SalesNote, 0)
	if err := decodeList(body, &notes, "notas"); err != nil {
		return nil, err
	}
	return notes, nil
}

// Get returns one sales note.
func (g SalesNotes) Get(ctx context.Context, noteID int64) (*sales_note.SalesNote, error) {
	n := &sales_note.SalesNote{}
	if err := g.get(ctx, "sales_note", salesNotePath(noteID), n, "nota"); err != nil {
		return nil, err
	}
	return n, nil
}

// Create posts a new sales note.
func (g SalesNotes) Create(ctx context.Context, p *documents.SalesNotePayload) (*sales_note.SalesNote, error) {
	n := &sales_note.SalesNote{}
	if err := g.send(ctx, "sales_note.create", http.MethodPost, salesNotesPath, p, n, "nota"); err != nil {
		return nil, err
	}
	return n, nil
}

// CreateFromQuotation posts a sales note converted from a quotation.
func (g SalesNotes) CreateFromQuotation(ctx context.Context, p *documents.ConversionPayload) (*sales_note.SalesNote, error) {
	n := &sales_note.SalesNote{}
	if err := g.send(ctx, "sales_note.from_quotation", http.MethodPost, salesNotesPath+"/desde-cotizacion", p, n, "nota"); err != nil {
		return nil, err
	}
	return n, nil
}

// Update replaces a sales note.
func (g SalesNotes) Update(ctx context.Context, noteID int64, p *documents.SalesNotePayload) (*sales_note.SalesNote, error) {
	n := &sales_note.SalesNote{}
	if err := g.send(ctx, "sales_note.update", http.MethodPut, salesNotePath(noteID), p, n, "nota"); err != nil {
		return nil, err
	}
	if n.ID == 0 {
		n.ID = noteID
	}
	return n, nil
}

// Void cancels a sales note with a reason.
func (g SalesNotes) Void(ctx context.Context, noteID int64, reason string) (*sales_note.SalesNote, error) {
	n := &sales_note.SalesNote{}
	payload := documents.VoidPayload{Reason: reason}
	if err := g.send(ctx, "sales_note.void", http.MethodPut, salesNotePath(noteID)+"/anular", payload, n, "nota"); err != nil {
		return nil, err
	}
	return n, nil
}

// Delete removes a sales note.
func (g SalesNotes) Delete(ctx context.Context, noteID int64) error {
	return g.send(ctx, "sales_note.delete", http.MethodDelete, salesNotePath(noteID), nil, nil)
}
