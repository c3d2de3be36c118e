package catalog

import (
	"context"

	"salesdesk/internal/core/apperror"
)

// ProductDirectory is the external product registry.
// FindByCode returns an apperror NOT_FOUND when no product has the code.
type ProductDirectory interface {
	FindByCode(ctx context.Context, code string) (*Product, error)
}

// Service resolves typed product codes against the directory.
type Service struct {
	directory ProductDirectory
}

// NewService creates a new catalog service.
func NewService(directory ProductDirectory) *Service {
	return &Service{directory: directory}
}

// FindByCode normalizes code and looks it up.
// A miss is reported as found=false so callers can surface a "product not found" notice.
func (s *Service) FindByCode(ctx context.Context, code string) (*Product, bool, error) {
	normalized := NormalizeCode(code)
	if normalized == "" {
		return nil, false, apperror.NewValidation("product code is required").
			WithDetail("field", "code")
	}

	product, err := s.directory.FindByCode(ctx, normalized)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return product, true, nil
}
