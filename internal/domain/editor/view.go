package editor

import (
	"salesdesk/internal/core/types"
	"salesdesk/internal/domain/catalog"
	"salesdesk/internal/domain/customer"
	"salesdesk/internal/domain/documents"
	"salesdesk/internal/domain/documents/quotation"
	"salesdesk/internal/domain/documents/sales_note"
)

// View is a read-only snapshot of a session.
type View struct {
	ID             string                `json:"id"`
	Kind           Kind                  `json:"kind"`
	SourceID       int64                 `json:"sourceId,omitempty"`
	State          State                 `json:"state"`
	Client         ClientView            `json:"client"`
	Lines          []documents.Line      `json:"lines"`
	Total          types.Money           `json:"total"`
	PaymentMethod  catalog.PaymentMethod `json:"paymentMethod,omitempty"`
	Note           string                `json:"note"`
	AllowPriceEdit bool                  `json:"allowPriceEdit"`
}

// ClientView describes the customer binding.
type ClientView struct {
	Mode           string  `json:"mode"`
	Identification string  `json:"identification,omitempty"`
	ID             int64   `json:"id,omitempty"`
	Name           string  `json:"name,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Email          *string `json:"email,omitempty"`
	Address        *string `json:"address,omitempty"`
}

func clientView(b *customer.Binding) ClientView {
	v := ClientView{
		Mode:           b.Mode().String(),
		Identification: b.Identification(),
	}
	switch b.Mode() {
	case customer.ModeWalkIn:
		w := customer.WalkIn()
		v.Identification = w.Identification
		v.Name = w.Name
	case customer.ModeResolved:
		c := b.Client()
		v.ID = c.ID
		v.Name = c.Name
		v.Phone = nonEmpty(c.Phone)
		v.Email = nonEmpty(c.Email)
		v.Address = nonEmpty(c.Address)
	case customer.ModeNew:
		d := b.Draft()
		v.Identification = d.Identification
		v.Name = d.Name
		v.Phone = d.Phone
		v.Email = d.Email
		v.Address = d.Address
	}
	return v
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// SubmitResult is the backend record produced by a submission.
// Exactly one of the two documents is set, matching the session kind.
type SubmitResult struct {
	Session   *View                 `json:"session"`
	SalesNote *sales_note.SalesNote `json:"salesNote,omitempty"`
	Quotation *quotation.Quotation  `json:"quotation,omitempty"`
}
