// Package customer resolves who a quotation or sales note is issued to.
package customer

import (
	"strings"

	"salesdesk/internal/core/apperror"
)

// Walk-in identity used for final-consumer sales.
const (
	WalkInIdentification = "9999999999"
	WalkInName           = "CONSUMIDOR FINAL"
)

// Client is a client record from the backend directory.
type Client struct {
	ID             int64  `json:"id"`
	Identification string `json:"identificacion"`
	Name           string `json:"nombre"`
	Phone          string `json:"telefono,omitempty"`
	Email          string `json:"email,omitempty"`
	Address        string `json:"direccion,omitempty"`
}

// WalkIn returns the fixed final-consumer record. It has no directory id.
func WalkIn() Client {
	return Client{
		Identification: WalkInIdentification,
		Name:           WalkInName,
	}
}

// Fields is the raw input of the new-client form.
type Fields struct {
	Identification string
	Name           string
	Phone          string
	Email          string
	Address        string
}

// Draft is a client that does not exist yet. It travels embedded in the
// document payload and the backend creates it. Optional contact fields are
// nil when blank so the backend stores NULL rather than "".
type Draft struct {
	Identification string
	Name           string
	Phone          *string
	Email          *string
	Address        *string
}

// NewDraft validates and normalizes new-client input.
func NewDraft(f Fields) (*Draft, error) {
	identification := strings.TrimSpace(f.Identification)
	if identification == "" {
		return nil, apperror.NewValidation("client identification is required").
			WithDetail("field", "identification")
	}
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return nil, apperror.NewValidation("client name is required").
			WithDetail("field", "name")
	}

	return &Draft{
		Identification: identification,
		Name:           name,
		Phone:          optional(f.Phone),
		Email:          optional(f.Email),
		Address:        optional(f.Address),
	}, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
