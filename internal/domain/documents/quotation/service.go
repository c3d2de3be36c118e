package quotation

import (
	"context"
	"fmt"
	"strings"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/domain"
	"salesdesk/internal/domain/catalog"
	"salesdesk/internal/domain/documents"
	"salesdesk/internal/domain/documents/sales_note"
	"salesdesk/pkg/logger"
)

// Service provides business operations for quotations.
type Service struct {
	gateway Gateway
	notes   *sales_note.Service
	hooks   *domain.HookRegistry[*Quotation]
}

// NewService creates a new quotation service. Conversions are submitted through notes.
func NewService(gateway Gateway, notes *sales_note.Service) *Service {
	return &Service{
		gateway: gateway,
		notes:   notes,
		hooks:   domain.NewHookRegistry[*Quotation](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*Quotation] {
	return s.hooks
}

// Create submits a new quotation.
func (s *Service) Create(ctx context.Context, p *documents.QuotationPayload) (*Quotation, error) {
	if err := validatePayload(p); err != nil {
		return nil, err
	}

	q, err := s.gateway.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create quotation: %w", err)
	}

	s.runHook(ctx, domain.AfterCreate, q)
	logger.Info(ctx, "quotation created",
		"id", q.ID,
		"number", q.Number,
		"total", p.Total.Money().String())

	return q, nil
}

// Update replaces a quotation's content.
func (s *Service) Update(ctx context.Context, quotationID int64, p *documents.QuotationPayload) (*Quotation, error) {
	if err := validateID(quotationID); err != nil {
		return nil, err
	}
	if err := validatePayload(p); err != nil {
		return nil, err
	}

	q, err := s.gateway.Update(ctx, quotationID, p)
	if err != nil {
		return nil, fmt.Errorf("update quotation %d: %w", quotationID, err)
	}

	s.runHook(ctx, domain.AfterUpdate, q)
	logger.Info(ctx, "quotation updated", "id", quotationID)

	return q, nil
}

// Delete removes a quotation.
func (s *Service) Delete(ctx context.Context, quotationID int64) error {
	q, err := s.Get(ctx, quotationID)
	if err != nil {
		return err
	}

	if err := s.gateway.Delete(ctx, quotationID); err != nil {
		return fmt.Errorf("delete quotation %d: %w", quotationID, err)
	}

	s.runHook(ctx, domain.AfterDelete, q)
	logger.Info(ctx, "quotation deleted", "id", quotationID)

	return nil
}

// Get retrieves a quotation.
func (s *Service) Get(ctx context.Context, quotationID int64) (*Quotation, error) {
	if err := validateID(quotationID); err != nil {
		return nil, err
	}
	return s.gateway.Get(ctx, quotationID)
}

// GetByNumber retrieves a quotation by its document number.
func (s *Service) GetByNumber(ctx context.Context, number string) (*Quotation, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, apperror.NewValidation("quotation number is required").
			WithDetail("field", "number")
	}
	return s.gateway.GetByNumber(ctx, number)
}

// List retrieves every quotation.
func (s *Service) List(ctx context.Context) ([]*Quotation, error) {
	list, err := s.gateway.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	return list, nil
}

// Convert turns a quotation into a sales note priced as stored on the
// quotation, under the chosen payment method. The quotation is kept.
func (s *Service) Convert(ctx context.Context, quotationID int64, method catalog.PaymentMethod, note string) (*sales_note.SalesNote, error) {
	q, err := s.Get(ctx, quotationID)
	if err != nil {
		return nil, err
	}

	payload, err := documents.ComposeConversion(q.Source(), method, note)
	if err != nil {
		return nil, err
	}

	created, err := s.notes.CreateFromQuotation(ctx, payload)
	if err != nil {
		return nil, err
	}

	s.runHook(ctx, domain.AfterConvert, q)
	logger.Info(ctx, "quotation converted",
		"quotation_id", quotationID,
		"sales_note_id", created.ID,
		"payment_method", string(method))

	return created, nil
}

// ConvertOnBackend delegates the whole conversion to the backend.
func (s *Service) ConvertOnBackend(ctx context.Context, quotationID int64) (*sales_note.SalesNote, error) {
	q, err := s.Get(ctx, quotationID)
	if err != nil {
		return nil, err
	}

	created, err := s.gateway.Convert(ctx, quotationID)
	if err != nil {
		return nil, fmt.Errorf("convert quotation %d: %w", quotationID, err)
	}
	if created == nil {
		created = &sales_note.SalesNote{}
	}

	s.runHook(ctx, domain.AfterConvert, q)
	logger.Info(ctx, "quotation converted by backend",
		"quotation_id", quotationID,
		"sales_note_id", created.ID)

	return created, nil
}

// runHook runs after-change hooks; failures are logged only.
func (s *Service) runHook(ctx context.Context, event domain.HookEvent, q *Quotation) {
	if err := s.hooks.Run(ctx, event, q); err != nil {
		logger.Warn(ctx, "quotation hook failed",
			"event", string(event),
			"id", q.ID,
			"error", err)
	}
}

func validateID(quotationID int64) error {
	if quotationID <= 0 {
		return apperror.NewValidation("invalid quotation id").
			WithDetail("id", quotationID)
	}
	return nil
}

func validatePayload(p *documents.QuotationPayload) error {
	if p == nil {
		return apperror.NewValidation("quotation payload is required")
	}
	if len(p.Lines) == 0 {
		return apperror.NewValidation("document must contain at least one line").
			WithDetail("field", "lines")
	}
	if (p.ClientID == nil) == (p.Client == nil) {
		return apperror.NewValidation("exactly one of client id and embedded client is required").
			WithDetail("field", "client")
	}
	return nil
}
