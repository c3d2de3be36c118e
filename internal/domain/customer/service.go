package customer

import (
	"context"
	"strings"

	"salesdesk/internal/core/apperror"
	"salesdesk/pkg/logger"
)

// Directory is the external client registry, keyed by national identification.
// FindByIdentification returns an apperror NOT_FOUND on a miss.
type Directory interface {
	FindByIdentification(ctx context.Context, identification string) (*Client, error)
}

// Service looks clients up for edit sessions.
type Service struct {
	directory Directory
}

// NewService creates a new customer service.
func NewService(directory Directory) *Service {
	return &Service{directory: directory}
}

// Lookup queries the directory by exact identification.
// A miss is not an error: it returns found=false.
func (s *Service) Lookup(ctx context.Context, identification string) (*Client, bool, error) {
	identification = strings.TrimSpace(identification)
	if identification == "" {
		return nil, false, apperror.NewValidation("client identification is required").
			WithDetail("field", "identification")
	}

	c, err := s.directory.FindByIdentification(ctx, identification)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return c, true, nil
}

// Bind looks identification up and applies the outcome to b:
// a hit resolves the client, a miss leaves b ready for new-client capture.
func (s *Service) Bind(ctx context.Context, b *Binding, identification string) (bool, error) {
	c, found, err := s.Lookup(ctx, identification)
	if err != nil {
		return false, err
	}

	b.Typed(identification)
	if !found {
		b.Unresolve()
		logger.Debug(ctx, "client not found, capture mode", "identification", identification)
		return false, nil
	}
	if err := b.Resolve(*c); err != nil {
		return false, err
	}
	return true, nil
}
