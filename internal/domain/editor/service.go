package editor

import (
	"context"
	"strings"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/id"
	"salesdesk/internal/core/types"
	"salesdesk/internal/domain"
	"salesdesk/internal/domain/catalog"
	"salesdesk/internal/domain/customer"
	"salesdesk/internal/domain/documents"
	"salesdesk/internal/domain/documents/quotation"
	"salesdesk/internal/domain/documents/sales_note"
	"salesdesk/pkg/logger"
)

// Config holds editor options.
type Config struct {
	// AllowPriceEdit enables manual unit prices on sales-note lines.
	AllowPriceEdit bool
}

// Service runs edit-session commands.
type Service struct {
	store      *Store
	products   *catalog.Service
	customers  *customer.Service
	notes      *sales_note.Service
	quotations *quotation.Service
	cfg        Config
}

// NewService creates the editor service and subscribes the store to
// lifecycle changes that make open sessions stale.
func NewService(
	store *Store,
	products *catalog.Service,
	customers *customer.Service,
	notes *sales_note.Service,
	quotations *quotation.Service,
	cfg Config,
) *Service {
	s := &Service{
		store:      store,
		products:   products,
		customers:  customers,
		notes:      notes,
		quotations: quotations,
		cfg:        cfg,
	}

	closeNote := func(ctx context.Context, n *sales_note.SalesNote) error {
		if closed := store.CloseSource(KindSalesNote, n.ID); closed > 0 {
			logger.Info(ctx, "edit sessions closed", "sales_note_id", n.ID, "count", closed)
		}
		return nil
	}
	notes.Hooks().On(domain.AfterVoid, closeNote)
	notes.Hooks().On(domain.AfterDelete, closeNote)

	quotations.Hooks().On(domain.AfterDelete, func(ctx context.Context, q *quotation.Quotation) error {
		if closed := store.CloseSource(KindQuotation, q.ID); closed > 0 {
			logger.Info(ctx, "edit sessions closed", "quotation_id", q.ID, "count", closed)
		}
		return nil
	})

	return s
}

func (s *Service) allowPriceEdit(kind Kind) bool {
	return kind == KindSalesNote && s.cfg.AllowPriceEdit
}

// Open starts a blank session.
func (s *Service) Open(ctx context.Context, kind Kind) (*View, error) {
	if !kind.Valid() {
		return nil, apperror.NewValidation("unknown document kind").
			WithDetail("kind", string(kind))
	}

	sess := newSession(kind, 0, s.allowPriceEdit(kind), s.store.now())
	v := sess.view()
	s.store.put(sess)

	logger.Debug(ctx, "edit session opened", "session_id", v.ID, "kind", string(kind))
	return v, nil
}

// OpenSalesNote starts a session editing an active sales note.
func (s *Service) OpenSalesNote(ctx context.Context, noteID int64) (*View, error) {
	note, err := s.notes.Get(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if err := note.CheckModifiable(); err != nil {
		return nil, err
	}

	binding, err := note.Binding()
	if err != nil {
		return nil, err
	}
	method, err := note.Method()
	if err != nil {
		return nil, err
	}

	sess := newSession(KindSalesNote, note.ID, s.allowPriceEdit(KindSalesNote), s.store.now())
	sess.binding = binding
	sess.method = method
	sess.note = note.Note
	sess.ledger.Load(note.LedgerLines())
	v := sess.view()
	s.store.put(sess)

	logger.Debug(ctx, "edit session opened",
		"session_id", v.ID,
		"sales_note_id", note.ID)
	return v, nil
}

// OpenQuotation starts a session editing a quotation.
func (s *Service) OpenQuotation(ctx context.Context, quotationID int64) (*View, error) {
	q, err := s.quotations.Get(ctx, quotationID)
	if err != nil {
		return nil, err
	}

	binding, err := q.Binding()
	if err != nil {
		return nil, err
	}

	sess := newSession(KindQuotation, q.ID, s.allowPriceEdit(KindQuotation), s.store.now())
	sess.binding = binding
	sess.ledger.Load(q.LedgerLines())
	v := sess.view()
	s.store.put(sess)

	logger.Debug(ctx, "edit session opened",
		"session_id", v.ID,
		"quotation_id", q.ID)
	return v, nil
}

// Get returns a snapshot of a session, whatever its state.
func (s *Service) Get(sessionID id.ID) (*View, error) {
	sess, err := s.store.acquire(sessionID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()
	return sess.view(), nil
}

// Close discards a session.
func (s *Service) Close(ctx context.Context, sessionID id.ID) error {
	sess, err := s.store.acquire(sessionID)
	if err != nil {
		return err
	}
	sess.state = StateClosed
	sess.mu.Unlock()

	s.store.remove(sessionID)
	logger.Debug(ctx, "edit session closed", "session_id", sessionID.String())
	return nil
}

// mutate runs fn on an open session under its lock and returns the new snapshot.
func (s *Service) mutate(sessionID id.ID, fn func(*Session) error) (*View, error) {
	sess, err := s.store.acquire(sessionID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	if err := sess.checkOpen(); err != nil {
		return nil, err
	}
	if err := fn(sess); err != nil {
		return nil, err
	}
	return sess.view(), nil
}

// LookupClient searches the directory. A miss is not an error: found is
// false and the session waits for new-client capture.
func (s *Service) LookupClient(ctx context.Context, sessionID id.ID, identification string) (*View, bool, error) {
	found := false
	v, err := s.mutate(sessionID, func(sess *Session) error {
		ok, err := s.customers.Bind(ctx, sess.binding, identification)
		found = ok
		return err
	})
	return v, found, err
}

// CaptureClient switches the session to a new client with the given fields.
func (s *Service) CaptureClient(sessionID id.ID, f customer.Fields) (*View, error) {
	return s.mutate(sessionID, func(sess *Session) error {
		return sess.binding.Capture(f)
	})
}

// SetFinalConsumer toggles the walk-in customer on a sales note.
func (s *Service) SetFinalConsumer(sessionID id.ID, on bool) (*View, error) {
	return s.mutate(sessionID, func(sess *Session) error {
		if err := sess.checkSalesNote("final consumer"); err != nil {
			return err
		}
		sess.binding.SetFinalConsumer(on)
		return nil
	})
}

// SetPaymentMethod selects the tariff for lines added from now on.
// Lines already in the ledger keep their price.
func (s *Service) SetPaymentMethod(sessionID id.ID, method string) (*View, error) {
	return s.mutate(sessionID, func(sess *Session) error {
		if err := sess.checkSalesNote("payment method"); err != nil {
			return err
		}
		m, err := catalog.ParsePaymentMethod(method)
		if err != nil {
			return err
		}
		sess.method = m
		return nil
	})
}

// SetNote sets the free-text observation.
func (s *Service) SetNote(sessionID id.ID, note string) (*View, error) {
	return s.mutate(sessionID, func(sess *Session) error {
		sess.note = strings.TrimSpace(note)
		return nil
	})
}

// AddProduct looks code up and adds it to the ledger, merging with an
// existing line for the same product. A sales note is priced by its payment
// method, a quotation by the list price. An unknown code returns found=false.
func (s *Service) AddProduct(ctx context.Context, sessionID id.ID, code string, quantity int) (*View, bool, error) {
	found := false
	v, err := s.mutate(sessionID, func(sess *Session) error {
		p, ok, err := s.products.FindByCode(ctx, code)
		if err != nil || !ok {
			return err
		}
		found = true

		price := catalog.ListPrice(p)
		if sess.kind == KindSalesNote {
			if price, err = catalog.ResolveUnitPrice(p, sess.method); err != nil {
				return err
			}
		}

		_, err = sess.ledger.AddLine(documents.LineProduct{ID: p.ID, Description: p.DisplayName()}, quantity, price)
		return err
	})
	return v, found, err
}

// RemoveLine deletes a line by 0-based position.
func (s *Service) RemoveLine(sessionID id.ID, position int) (*View, error) {
	return s.mutate(sessionID, func(sess *Session) error {
		_, err := sess.ledger.RemoveLine(position)
		return err
	})
}

// UpdateLine changes the quantity and/or unit price of a line.
// Both are validated before either is applied.
func (s *Service) UpdateLine(sessionID id.ID, position int, quantity *int, unitPrice *types.Money) (*View, error) {
	if quantity == nil && unitPrice == nil {
		return nil, apperror.NewValidation("nothing to update: quantity or unitPrice is required")
	}
	if quantity != nil && *quantity < 1 {
		return nil, apperror.NewValidation("quantity must be at least 1").
			WithDetail("field", "quantity")
	}
	if quantity != nil && *quantity > documents.MaxQuantity {
		return nil, apperror.NewValidation("quantity exceeds the per-line maximum").
			WithDetail("field", "quantity").
			WithDetail("max", documents.MaxQuantity)
	}
	if unitPrice != nil && unitPrice.IsNegative() {
		return nil, apperror.NewValidation("unit price must not be negative").
			WithDetail("field", "unitPrice")
	}

	return s.mutate(sessionID, func(sess *Session) error {
		if unitPrice != nil && !sess.ledger.AllowsPriceEdit() {
			return apperror.NewBusinessRule(apperror.CodePriceEditDisabled, "unit price editing is disabled")
		}
		if quantity != nil {
			if _, err := sess.ledger.SetQuantity(position, *quantity); err != nil {
				return err
			}
		}
		if unitPrice != nil {
			if _, err := sess.ledger.SetUnitPrice(position, *unitPrice); err != nil {
				return err
			}
		}
		return nil
	})
}

// Submit composes the payload and sends it to the backend. The session lock
// is held until the backend answers, so a second submit waits and then fails
// with SESSION_CLOSED. A failed submission leaves the session open.
func (s *Service) Submit(ctx context.Context, sessionID id.ID) (*SubmitResult, error) {
	sess, err := s.store.acquire(sessionID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	if err := sess.checkOpen(); err != nil {
		return nil, err
	}

	result := &SubmitResult{}
	switch sess.kind {
	case KindSalesNote:
		result.SalesNote, err = s.submitSalesNote(ctx, sess)
	case KindQuotation:
		result.Quotation, err = s.submitQuotation(ctx, sess)
	}
	if err != nil {
		logger.Warn(ctx, "submission failed",
			"session_id", sess.id.String(),
			"kind", string(sess.kind),
			"error", err)
		return nil, err
	}

	sess.state = StateSubmitted
	result.Session = sess.view()
	return result, nil
}

func (s *Service) submitSalesNote(ctx context.Context, sess *Session) (*sales_note.SalesNote, error) {
	p, err := documents.ComposeSalesNote(sess.binding, sess.ledger, sess.method, sess.note)
	if err != nil {
		return nil, err
	}
	if sess.sourceID != 0 {
		return s.notes.Update(ctx, sess.sourceID, p)
	}
	return s.notes.Create(ctx, p)
}

func (s *Service) submitQuotation(ctx context.Context, sess *Session) (*quotation.Quotation, error) {
	p, err := documents.ComposeQuotation(sess.binding, sess.ledger)
	if err != nil {
		return nil, err
	}
	if sess.sourceID != 0 {
		return s.quotations.Update(ctx, sess.sourceID, p)
	}
	return s.quotations.Create(ctx, p)
}
