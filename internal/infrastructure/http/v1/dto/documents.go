package dto

// VoidRequest carries the mandatory void reason.
type VoidRequest struct {
	Reason string `json:"reason"`
}

// ConvertRequest turns a quotation into a sales note.
type ConvertRequest struct {
	PaymentMethod string `json:"paymentMethod"`
	Note          string `json:"note"`
}
