package dto

import (
	"salesdesk/internal/core/types"
	"salesdesk/internal/domain/customer"
	"salesdesk/internal/domain/editor"
)

// OpenDraftRequest starts a blank edit session.
type OpenDraftRequest struct {
	Kind string `json:"kind" binding:"required"`
}

// LookupClientRequest searches the client directory.
type LookupClientRequest struct {
	Identification string `json:"identification" binding:"required"`
}

// LookupClientResponse tells whether the client exists. When it does not,
// the draft is waiting for the new-client fields.
type LookupClientResponse struct {
	Found bool         `json:"found"`
	Draft *editor.View `json:"draft"`
}

// CaptureClientRequest holds the new-client form.
type CaptureClientRequest struct {
	Identification string `json:"identification"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Address        string `json:"address"`
}

// ToFields converts the request to domain input.
func (r CaptureClientRequest) ToFields() customer.Fields {
	return customer.Fields{
		Identification: r.Identification,
		Name:           r.Name,
		Phone:          r.Phone,
		Email:          r.Email,
		Address:        r.Address,
	}
}

// FinalConsumerRequest toggles the walk-in client.
type FinalConsumerRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// PaymentMethodRequest selects the tariff of a sales note.
type PaymentMethodRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// NoteRequest sets the observation.
type NoteRequest struct {
	Note string `json:"note"`
}

// AddLineRequest adds a product by code.
type AddLineRequest struct {
	Code     string `json:"code" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
}

// AddLineResponse tells whether the code matched a product.
type AddLineResponse struct {
	Found bool         `json:"found"`
	Draft *editor.View `json:"draft"`
}

// UpdateLineRequest changes a line. At least one field must be present.
type UpdateLineRequest struct {
	Quantity  *int         `json:"quantity"`
	UnitPrice *types.Money `json:"unitPrice"`
}
