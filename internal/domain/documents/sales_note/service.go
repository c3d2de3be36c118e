package sales_note

import (
	"context"
	"fmt"
	"strings"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/domain"
	"salesdesk/internal/domain/documents"
	"salesdesk/pkg/logger"
)

// Service provides business operations for sales notes.
// The backend owns every record; the service enforces the lifecycle before
// forwarding a change.
type Service struct {
	gateway Gateway
	hooks   *domain.HookRegistry[*SalesNote]
}

// NewService creates a new sales note service.
func NewService(gateway Gateway) *Service {
	return &Service{
		gateway: gateway,
		hooks:   domain.NewHookRegistry[*SalesNote](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*SalesNote] {
	return s.hooks
}

// Create submits a new sales note.
func (s *Service) Create(ctx context.Context, p *documents.SalesNotePayload) (*SalesNote, error) {
	if err := validatePayload(p); err != nil {
		return nil, err
	}

	note, err := s.gateway.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create sales note: %w", err)
	}

	s.runHook(ctx, domain.AfterCreate, note)
	logger.Info(ctx, "sales note created",
		"id", note.ID,
		"number", note.Number,
		"payment_method", p.PaymentMethod,
		"total", p.Total.Money().String())

	return note, nil
}

// CreateFromQuotation submits a sales note converted from a quotation.
// The quotation is left in place.
func (s *Service) CreateFromQuotation(ctx context.Context, p *documents.ConversionPayload) (*SalesNote, error) {
	if p == nil || p.QuotationID == 0 {
		return nil, apperror.NewValidation("quotation id is required")
	}
	if err := validatePayload(&p.SalesNotePayload); err != nil {
		return nil, err
	}

	note, err := s.gateway.CreateFromQuotation(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create sales note from quotation %d: %w", p.QuotationID, err)
	}

	s.runHook(ctx, domain.AfterCreate, note)
	logger.Info(ctx, "sales note created from quotation",
		"id", note.ID,
		"number", note.Number,
		"quotation_id", p.QuotationID)

	return note, nil
}

// Update replaces an active note's content.
func (s *Service) Update(ctx context.Context, noteID int64, p *documents.SalesNotePayload) (*SalesNote, error) {
	if err := validatePayload(p); err != nil {
		return nil, err
	}

	current, err := s.Get(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if err := current.CheckModifiable(); err != nil {
		return nil, err
	}

	note, err := s.gateway.Update(ctx, noteID, p)
	if err != nil {
		return nil, fmt.Errorf("update sales note %d: %w", noteID, err)
	}

	s.runHook(ctx, domain.AfterUpdate, note)
	logger.Info(ctx, "sales note updated", "id", noteID)

	return note, nil
}

// Void cancels an active note. A second void of the same note fails.
func (s *Service) Void(ctx context.Context, noteID int64, reason string) (*SalesNote, error) {
	reason = strings.TrimSpace(reason)

	note, err := s.Get(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if err := note.Void(reason); err != nil {
		return nil, err
	}

	voided, err := s.gateway.Void(ctx, noteID, reason)
	if err != nil {
		return nil, fmt.Errorf("void sales note %d: %w", noteID, err)
	}
	if voided == nil || voided.ID == 0 {
		voided = note
	}
	voided.Status = StatusVoided
	if voided.VoidReason == "" {
		voided.VoidReason = reason
	}

	s.runHook(ctx, domain.AfterVoid, voided)
	logger.Info(ctx, "sales note voided",
		"id", noteID,
		"reason", reason)

	return voided, nil
}

// Delete removes a voided note. An active note has to be voided first.
func (s *Service) Delete(ctx context.Context, noteID int64) (*SalesNote, error) {
	note, err := s.Get(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if !note.CanDelete() {
		return nil, Transition(note.State(), StatusDeleted)
	}

	if err := s.gateway.Delete(ctx, noteID); err != nil {
		return nil, fmt.Errorf("delete sales note %d: %w", noteID, err)
	}
	if err := note.MarkDeleted(); err != nil {
		return nil, err
	}

	s.runHook(ctx, domain.AfterDelete, note)
	logger.Info(ctx, "sales note deleted", "id", noteID)

	return note, nil
}

// Get retrieves a sales note.
func (s *Service) Get(ctx context.Context, noteID int64) (*SalesNote, error) {
	if noteID <= 0 {
		return nil, apperror.NewValidation("invalid sales note id").
			WithDetail("id", noteID)
	}
	return s.gateway.Get(ctx, noteID)
}

// List retrieves every sales note.
func (s *Service) List(ctx context.Context) ([]*SalesNote, error) {
	notes, err := s.gateway.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sales notes: %w", err)
	}
	return notes, nil
}

// runHook runs after-change hooks. The backend already accepted the change,
// so a failing hook is logged and not returned.
func (s *Service) runHook(ctx context.Context, event domain.HookEvent, note *SalesNote) {
	if err := s.hooks.Run(ctx, event, note); err != nil {
		logger.Warn(ctx, "sales note hook failed",
			"event", string(event),
			"id", note.ID,
			"error", err)
	}
}

func validatePayload(p *documents.SalesNotePayload) error {
	if p == nil {
		return apperror.NewValidation("sales note payload is required")
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
