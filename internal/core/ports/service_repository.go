package ports

import (
	"context"

	"github.com/servnect/marketplace-api/internal/core/domain"
)

// ServiceFilter narrows the public catalog listing.
type ServiceFilter struct {
	Category string // exact match on category
	Query    string // case-insensitive substring match on title
}

// ServiceRepository defines persistence operations for catalog entries.
type ServiceRepository interface {
	Create(ctx context.Context, s *domain.ServiceOffering) (*domain.ServiceOffering, error)
	FindByID(ctx context.Context, id string) (*domain.ServiceOffering, error)
	// ListActive returns active offerings matching filter, for the public catalog.
	ListActive(ctx context.Context, filter ServiceFilter) ([]*domain.ServiceOffering, error)
	ListByExpert(ctx context.Context, expertID string) ([]*domain.ServiceOffering, error)
	Count(ctx context.Context) (int64, error)
}
