package ports

import (
	"context"

	"github.com/servnect/marketplace-api/internal/core/domain"
)

// CreateServiceInput carries the fields of a new catalog entry.
type CreateServiceInput struct {
	ExpertID    string
	Title       string
	Description string
	Category    string
	BasePrice   float64
}

// CatalogEntry pairs an offering with the public summary of its expert.
type CatalogEntry struct {
	Service *domain.ServiceOffering
	Expert  *domain.Identity
}

// CatalogService defines the service-catalog use cases.
type CatalogService interface {
	Create(ctx context.Context, input CreateServiceInput) (*domain.ServiceOffering, error)
	// ListPublic returns active offerings with sanitized expert summaries.
	ListPublic(ctx context.Context, filter ServiceFilter) ([]CatalogEntry, error)
	ListForExpert(ctx context.Context, expertID string) ([]*domain.ServiceOffering, error)
}
