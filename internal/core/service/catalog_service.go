package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/servnect/marketplace-api/internal/core/domain"
	"github.com/servnect/marketplace-api/internal/core/ports"
)

// CatalogService implements the public service catalog and the expert's own
// offering management.
type CatalogService struct {
	services ports.ServiceRepository
	experts  ports.ExpertRepository
	logger   zerolog.Logger
}

func NewCatalogService(services ports.ServiceRepository, experts ports.ExpertRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{services: services, experts: experts, logger: logger}
}

func (s *CatalogService) Create(ctx context.Context, input ports.CreateServiceInput) (*domain.ServiceOffering, error) {
	if input.ExpertID == "" || input.Title == "" || input.BasePrice <= 0 {
		return nil, domain.ErrInvalidInput
	}

	category := input.Category
	if category == "" {
		category = "general"
	}

	offering := &domain.ServiceOffering{
		ExpertID:    input.ExpertID,
		Title:       input.Title,
		Description: input.Description,
		Category:    category,
		BasePrice:   input.BasePrice,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.services.Create(ctx, offering)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create service")
		return nil, err
	}

	s.logger.Info().
		Str("service_id", created.ID).
		Str("expert_id", created.ExpertID).
		Msg("service created")

	return created, nil
}

// ListPublic returns active offerings with each expert's public summary
// attached. Offerings whose expert record has vanished are listed without
// one rather than dropped.
func (s *CatalogService) ListPublic(ctx context.Context, filter ports.ServiceFilter) ([]ports.CatalogEntry, error) {
	offerings, err := s.services.ListActive(ctx, filter)
	if err != nil {
		return nil, err
	}

	cache := make(map[string]*domain.Identity)
	entries := make([]ports.CatalogEntry, 0, len(offerings))
	for _, o := range offerings {
		entry := ports.CatalogEntry{Service: o}
		if identity, ok := cache[o.ExpertID]; ok {
			entry.Expert = identity
		} else if expert, err := s.experts.FindByID(ctx, o.ExpertID); err == nil {
			id := domain.ExpertIdentity(expert)
			cache[o.ExpertID] = &id
			entry.Expert = &id
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *CatalogService) ListForExpert(ctx context.Context, expertID string) ([]*domain.ServiceOffering, error) {
	return s.services.ListByExpert(ctx, expertID)
}
