// Package sales_note provides the SalesNote document and its lifecycle.
package sales_note

import (
	"encoding/json"
	"strings"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/types"
	"salesdesk/internal/domain/catalog"
	"salesdesk/internal/domain/customer"
	"salesdesk/internal/domain/documents"
)

// Status is the lifecycle state of a sales note.
type Status string

const (
	StatusActive Status = "ACTIVA"
	StatusVoided Status = "ANULADA"

	// StatusDeleted is never stored by the backend: a deleted note is gone.
	// It marks the local copy once the delete was accepted.
	StatusDeleted Status = "ELIMINADA"
)

// UnmarshalJSON normalizes case and treats a missing state as ACTIVA.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		*s = StatusActive
		return nil
	}
	*s = Status(strings.ToUpper(strings.TrimSpace(*raw)))
	return nil
}

// transitions lists the only allowed moves. Nothing leads back to ACTIVA.
var transitions = map[Status]Status{
	StatusActive: StatusVoided,
	StatusVoided: StatusDeleted,
}

// Transition checks that a note may move from one state to another.
func Transition(from, to Status) error {
	if next, ok := transitions[from]; ok && next == to {
		return nil
	}
	return apperror.NewInvalidTransition("sales note", string(from), string(to))
}

// SalesNote is a persisted sales note as the backend returns it.
type SalesNote struct {
	ID                   int64                  `json:"id"`
	Number               documents.Number       `json:"numero"`
	ClientID             *int64                 `json:"cliente_id"`
	ClientIdentification string                 `json:"cliente_identificacion"`
	ClientName           string                 `json:"cliente_nombre"`
	ClientPhone          string                 `json:"cliente_telefono,omitempty"`
	ClientEmail          string                 `json:"cliente_email,omitempty"`
	Lines                []documents.StoredLine `json:"productos"`
	PaymentMethod        string                 `json:"forma_pago"`
	PriceTier            string                 `json:"tipo_precio,omitempty"`
	Note                 string                 `json:"observacion"`
	Total                types.WireMoney        `json:"total"`
	Status               Status                 `json:"estado"`
	VoidReason           string                 `json:"motivo_anulacion,omitempty"`
	Date                 string                 `json:"fecha,omitempty"`
}

// State returns the lifecycle state. A record without estado is active.
func (n *SalesNote) State() Status {
	if n.Status == "" {
		return StatusActive
	}
	return n.Status
}

// CanModify reports whether the note may still be edited.
func (n *SalesNote) CanModify() bool {
	return n.State() == StatusActive
}

// CanDelete reports whether the note may be deleted. Only voided notes can.
func (n *SalesNote) CanDelete() bool {
	return n.State() == StatusVoided
}

// Void moves an active note to ANULADA. The reason is mandatory.
func (n *SalesNote) Void(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return apperror.NewValidation("a void reason is required").
			WithDetail("field", "reason")
	}
	if err := Transition(n.State(), StatusVoided); err != nil {
		return err
	}
	n.Status = StatusVoided
	n.VoidReason = reason
	return nil
}

// MarkDeleted records that the backend deleted the note.
func (n *SalesNote) MarkDeleted() error {
	if err := Transition(n.State(), StatusDeleted); err != nil {
		return err
	}
	n.Status = StatusDeleted
	return nil
}

// CheckModifiable fails unless the note is ACTIVA.
func (n *SalesNote) CheckModifiable() error {
	if !n.CanModify() {
		return apperror.NewBusinessRule(apperror.CodeInvalidTransition, "only active sales notes can be edited").
			WithDetail("status", string(n.State()))
	}
	return nil
}

// Client rebuilds the client the note was issued to.
func (n *SalesNote) Client() customer.Client {
	c := customer.Client{
		Identification: n.ClientIdentification,
		Name:           n.ClientName,
		Phone:          n.ClientPhone,
		Email:          n.ClientEmail,
	}
	if n.ClientID != nil {
		c.ID = *n.ClientID
	}
	return c
}

// Binding hydrates the customer side of an edit session.
// A note issued to the final consumer without a client id reopens as walk-in.
func (n *SalesNote) Binding() (*customer.Binding, error) {
	c := n.Client()
	if c.ID == 0 && c.Identification == customer.WalkInIdentification {
		b := customer.NewBinding()
		b.SetFinalConsumer(true)
		return b, nil
	}
	return customer.ResolvedBinding(c)
}

// Method returns the stored payment method, defaulting to cash when absent.
func (n *SalesNote) Method() (catalog.PaymentMethod, error) {
	if strings.TrimSpace(n.PaymentMethod) == "" {
		return catalog.DefaultPaymentMethod, nil
	}
	return catalog.ParsePaymentMethod(n.PaymentMethod)
}

// LedgerLines converts the stored rows into ledger lines.
func (n *SalesNote) LedgerLines() []documents.Line {
	return documents.LinesFromStored(n.Lines)
}
