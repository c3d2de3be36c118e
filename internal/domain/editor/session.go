// Package editor owns the server-side state of quotation and sales-note
// edit sessions: the customer binding, the line ledger and the sale options
// of one document until it is submitted.
package editor

import (
	"sync"
	"time"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/id"
	"salesdesk/internal/domain/catalog"
	"salesdesk/internal/domain/customer"
	"salesdesk/internal/domain/documents"
)

// Kind is the document type a session edits.
type Kind string

const (
	KindQuotation Kind = "quotation"
	KindSalesNote Kind = "sales_note"
)

// Valid reports whether k is a known document kind.
func (k Kind) Valid() bool {
	return k == KindQuotation || k == KindSalesNote
}

// State is the session state.
type State string

const (
	StateOpen State = "open"
	// StateSubmitted: the backend owns the document now; the session is a stale draft.
	StateSubmitted State = "submitted"
	// StateClosed: closed explicitly or because the source document changed state.
	StateClosed State = "closed"
)

// Session is one document under edit. All access goes through its mutex,
// which is held for the whole command including backend lookups.
type Session struct {
	mu sync.Mutex

	id       id.ID
	kind     Kind
	sourceID int64

	binding *customer.Binding
	ledger  *documents.Ledger
	method  catalog.PaymentMethod
	note    string

	state    State
	lastUsed time.Time
}

func newSession(kind Kind, sourceID int64, allowPriceEdit bool, now time.Time) *Session {
	s := &Session{
		id:       id.New(),
		kind:     kind,
		sourceID: sourceID,
		binding:  customer.NewBinding(),
		ledger:   documents.NewLedger(allowPriceEdit),
		state:    StateOpen,
		lastUsed: now,
	}
	if kind == KindSalesNote {
		s.method = catalog.DefaultPaymentMethod
	}
	return s
}

// ID returns the session id.
func (s *Session) ID() id.ID {
	return s.id
}

// Kind returns the edited document kind.
func (s *Session) Kind() Kind {
	return s.kind
}

// SourceID is the backend id of the edited document, 0 for a new one.
func (s *Session) SourceID() int64 {
	return s.sourceID
}

// checkOpen must be called with mu held.
func (s *Session) checkOpen() error {
	if s.state != StateOpen {
		return apperror.NewSessionClosed(s.id.String()).
			WithDetail("state", string(s.state))
	}
	return nil
}

// checkSalesNote must be called with mu held.
func (s *Session) checkSalesNote(what string) error {
	if s.kind != KindSalesNote {
		return apperror.NewBusinessRule(apperror.CodeBusinessRule, what+" applies to sales notes only").
			WithDetail("kind", string(s.kind))
	}
	return nil
}

// view must be called with mu held.
func (s *Session) view() *View {
	v := &View{
		ID:             s.id.String(),
		Kind:           s.kind,
		SourceID:       s.sourceID,
		State:          s.state,
		Client:         clientView(s.binding),
		Lines:          s.ledger.Lines(),
		Total:          s.ledger.Total(),
		Note:           s.note,
		AllowPriceEdit: s.ledger.AllowsPriceEdit(),
	}
	if s.kind == KindSalesNote {
		v.PaymentMethod = s.method
	}
	return v
}
